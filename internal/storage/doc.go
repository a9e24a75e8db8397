// Package storage provides the backing arrays of quantity vectors.
//
// Two interchangeable strategies implement the Storage interface:
//   - Dense: contiguous []float64, O(1) access, O(n) memory
//   - Sparse: roaring bitmap of non-zero cells plus their values ordered by
//     index, memory proportional to the number of non-zero cells
//
// Cells always hold SI values. Index checks are the caller's job; Get and Set
// assume 0 <= i < Size().
package storage
