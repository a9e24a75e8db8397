package storage

import (
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/quantity/internal/conv"
	"github.com/hupe1980/quantity/internal/math64"
)

// Sparse stores only non-zero cells.
//
// index holds the positions of the non-zero cells; vals holds their values in
// index order, so the value of cell i lives at vals[Rank(i)-1].
type Sparse struct {
	size  int
	index *roaring.Bitmap
	vals  []float64
}

// NewSparse allocates an all-zero Sparse storage of size cells.
func NewSparse(size int) (*Sparse, error) {
	if err := conv.CheckIndexSpace(size); err != nil {
		return nil, err
	}
	return &Sparse{size: size, index: roaring.New()}, nil
}

// SparseFromValues copies the non-zero entries of values into a new Sparse storage.
func SparseFromValues(values []float64) (*Sparse, error) {
	s, err := NewSparse(len(values))
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if v != 0 {
			s.index.Add(uint32(i))
			s.vals = append(s.vals, v)
		}
	}
	return s, nil
}

// Kind implements Storage.
func (s *Sparse) Kind() Kind { return KindSparse }

// Size implements Storage.
func (s *Sparse) Size() int { return s.size }

// Get implements Storage.
func (s *Sparse) Get(i int) float64 {
	x := uint32(i)
	if !s.index.Contains(x) {
		return 0
	}
	return s.vals[s.index.Rank(x)-1]
}

// Set implements Storage. Writing zero removes the cell.
func (s *Sparse) Set(i int, v float64) {
	x := uint32(i)
	if s.index.Contains(x) {
		pos := int(s.index.Rank(x)) - 1
		if v == 0 {
			s.vals = slices.Delete(s.vals, pos, pos+1)
			s.index.Remove(x)
			return
		}
		s.vals[pos] = v
		return
	}
	if v == 0 {
		return
	}
	pos := int(s.index.Rank(x)) // cells strictly before x
	s.index.Add(x)
	s.vals = slices.Insert(s.vals, pos, v)
}

// Sum implements Storage.
func (s *Sparse) Sum() float64 { return math64.Sum(s.vals) }

// Cardinality implements Storage.
func (s *Sparse) Cardinality() int { return len(s.vals) }

// Clone implements Storage.
func (s *Sparse) Clone() Storage {
	return &Sparse{
		size:  s.size,
		index: s.index.Clone(),
		vals:  slices.Clone(s.vals),
	}
}

// Values implements Storage.
func (s *Sparse) Values() []float64 {
	out := make([]float64, s.size)
	for i, v := range s.NonZero() {
		out[i] = v
	}
	return out
}

// Apply implements Storage.
//
// When fn maps zero to zero only the stored cells are visited; otherwise every
// cell may become non-zero and the storage is rebuilt from a dense image.
func (s *Sparse) Apply(fn func(float64) float64) {
	if fn(0) != 0 {
		values := s.Values()
		math64.Apply(values, fn)
		rebuilt, _ := SparseFromValues(values) // size already validated
		*s = *rebuilt
		return
	}

	var dropped *roaring.Bitmap
	keep := s.vals[:0]
	k := 0
	it := s.index.Iterator()
	for it.HasNext() {
		x := it.Next()
		v := fn(s.vals[k])
		k++
		if v == 0 {
			if dropped == nil {
				dropped = roaring.New()
			}
			dropped.Add(x)
			continue
		}
		keep = append(keep, v)
	}
	s.vals = keep
	if dropped != nil {
		s.index.AndNot(dropped)
	}
}

// NonZero implements Storage.
func (s *Sparse) NonZero() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		k := 0
		it := s.index.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next()), s.vals[k]) {
				return
			}
			k++
		}
	}
}
