package storage

import (
	"fmt"
	"iter"
)

// Kind identifies a storage strategy.
type Kind uint8

const (
	KindDense Kind = iota
	KindSparse
)

func (k Kind) String() string {
	switch k {
	case KindDense:
		return "Dense"
	case KindSparse:
		return "Sparse"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Storage is a fixed-length sequence of SI cells.
type Storage interface {
	// Kind returns the storage strategy.
	Kind() Kind
	// Size returns the number of cells.
	Size() int
	// Get returns cell i. Unchecked.
	Get(i int) float64
	// Set stores v in cell i. Unchecked.
	Set(i int, v float64)
	// Sum returns the sum over all cells.
	Sum() float64
	// Cardinality returns the number of non-zero cells.
	Cardinality() int
	// Clone returns an independent deep copy of the same kind.
	Clone() Storage
	// Values returns all cells as a new dense slice.
	Values() []float64
	// Apply replaces every cell c with fn(c).
	Apply(fn func(float64) float64)
	// NonZero iterates the non-zero cells in index order.
	NonZero() iter.Seq2[int, float64]
}

// New allocates a zeroed storage of the given kind and size.
func New(kind Kind, size int) (Storage, error) {
	switch kind {
	case KindDense:
		if size < 0 {
			return nil, fmt.Errorf("invalid size %d: negative", size)
		}
		return NewDense(size), nil
	case KindSparse:
		return NewSparse(size)
	default:
		return nil, fmt.Errorf("unknown storage kind: %s", kind)
	}
}

// FromValues builds a storage of the given kind holding a copy of values.
func FromValues(kind Kind, values []float64) (Storage, error) {
	switch kind {
	case KindDense:
		return DenseFromValues(values), nil
	case KindSparse:
		return SparseFromValues(values)
	default:
		return nil, fmt.Errorf("unknown storage kind: %s", kind)
	}
}

// Convert returns a storage of the requested kind with equal logical contents.
// The result never aliases s.
func Convert(s Storage, kind Kind) (Storage, error) {
	if s.Kind() == kind {
		return s.Clone(), nil
	}
	switch kind {
	case KindDense:
		return ToDense(s), nil
	case KindSparse:
		return ToSparse(s)
	default:
		return nil, fmt.Errorf("unknown storage kind: %s", kind)
	}
}
