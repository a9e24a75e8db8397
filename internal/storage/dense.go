package storage

import (
	"iter"
	"slices"

	"github.com/hupe1980/quantity/internal/math64"
)

// Dense stores every cell contiguously.
type Dense struct {
	data []float64
}

// NewDense allocates size zero cells.
func NewDense(size int) *Dense {
	return &Dense{data: make([]float64, size)}
}

// DenseFromValues copies values into a new Dense storage.
func DenseFromValues(values []float64) *Dense {
	return &Dense{data: slices.Clone(values)}
}

// Kind implements Storage.
func (d *Dense) Kind() Kind { return KindDense }

// Size implements Storage.
func (d *Dense) Size() int { return len(d.data) }

// Get implements Storage.
func (d *Dense) Get(i int) float64 { return d.data[i] }

// Set implements Storage.
func (d *Dense) Set(i int, v float64) { d.data[i] = v }

// Sum implements Storage.
func (d *Dense) Sum() float64 { return math64.Sum(d.data) }

// Cardinality implements Storage.
func (d *Dense) Cardinality() int { return math64.CountNonZero(d.data) }

// Clone implements Storage.
func (d *Dense) Clone() Storage { return DenseFromValues(d.data) }

// Values implements Storage.
func (d *Dense) Values() []float64 { return slices.Clone(d.data) }

// Apply implements Storage.
func (d *Dense) Apply(fn func(float64) float64) { math64.Apply(d.data, fn) }

// NonZero implements Storage.
func (d *Dense) NonZero() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, v := range d.data {
			if v == 0 {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}
