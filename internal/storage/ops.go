package storage

import (
	"iter"
	"math"
	"slices"

	"github.com/hupe1980/quantity/internal/math64"
)

// The kernels below mutate dst in place. Sizes must already match; dst and
// src may be the same storage.

// Add adds src to dst cell-wise.
func Add(dst, src Storage) {
	additive(dst, src, math64.Add, func(a, b float64) float64 { return a + b })
}

// Sub subtracts src from dst cell-wise.
func Sub(dst, src Storage) {
	additive(dst, src, math64.Sub, func(a, b float64) float64 { return a - b })
}

// Mul multiplies dst by src cell-wise.
func Mul(dst, src Storage) {
	if dst == src {
		src = src.Clone()
	}
	switch d := dst.(type) {
	case *Dense:
		if s, ok := src.(*Dense); ok {
			math64.Mul(d.data, s.data)
			return
		}
		for i := range d.data {
			d.data[i] *= src.Get(i)
		}
	case *Sparse:
		mulSparse(d, src.NonZero(), src.Get)
	default:
		for i := range dst.Size() {
			dst.Set(i, dst.Get(i)*src.Get(i))
		}
	}
}

// MulValues multiplies dst by factors cell-wise.
func MulValues(dst Storage, factors []float64) {
	switch d := dst.(type) {
	case *Dense:
		math64.Mul(d.data, factors)
	case *Sparse:
		mulSparse(d, slices.All(factors), func(i int) float64 { return factors[i] })
	default:
		for i, f := range factors {
			dst.Set(i, dst.Get(i)*f)
		}
	}
}

// Scale multiplies every cell of dst by f.
func Scale(dst Storage, f float64) {
	if d, ok := dst.(*Dense); ok {
		math64.ScaleInPlace(d.data, f)
		return
	}
	dst.Apply(func(v float64) float64 { return v * f })
}

func additive(dst, src Storage, kernel func(dst, src []float64), op func(a, b float64) float64) {
	if dst == src {
		src = src.Clone()
	}
	if d, ok := dst.(*Dense); ok {
		if s, ok := src.(*Dense); ok {
			kernel(d.data, s.data)
			return
		}
	}
	for i, v := range src.NonZero() {
		dst.Set(i, op(dst.Get(i), v))
	}
}

type cell struct {
	i int
	v float64
}

// mulSparse keeps dense semantics for the implicit zeros: 0*Inf and 0*NaN
// are NaN, so such factors materialize a cell.
func mulSparse(dst *Sparse, factors iter.Seq2[int, float64], at func(int) float64) {
	updates := make([]cell, 0, len(dst.vals))
	for i, v := range dst.NonZero() {
		updates = append(updates, cell{i: i, v: v * at(i)})
	}
	for i, f := range factors {
		if (math.IsInf(f, 0) || math.IsNaN(f)) && !dst.index.Contains(uint32(i)) {
			updates = append(updates, cell{i: i, v: math.NaN()})
		}
	}
	for _, c := range updates {
		dst.Set(c.i, c.v)
	}
}
