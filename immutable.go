package quantity

import (
	"runtime"

	"github.com/hupe1980/quantity/internal/cow"
	"github.com/hupe1980/quantity/internal/storage"
	"github.com/hupe1980/quantity/unit"
)

// Vector is a read-only, fixed-size vector of tag T (Absolute or Relative)
// backed by storage layout L (Dense or Sparse).
//
// Use NewVector, NewVectorFromScalars, NewVectorFromMap or Zeros to create one.
type Vector[T Tag, L Layout] struct {
	core[T, L]
}

func newVector[T Tag, L Layout](data *cow.Ref[storage.Storage], u *unit.Unit, opts *options) *Vector[T, L] {
	v := &Vector[T, L]{core: core[T, L]{data: data, unit: u, opts: opts}}
	cow.Track(v, data)
	return v
}

// Mutable returns a writable view in O(1). The cells are copied on the
// first write through the returned view, never before.
func (v *Vector[T, L]) Mutable() *MutableVector[T, L] {
	m := newMutable[T, L](v.data.Share(), v.unit, v.opts)
	runtime.KeepAlive(v)
	return m
}

// Copy returns v: a read-only vector cannot be changed by anyone.
func (v *Vector[T, L]) Copy() *Vector[T, L] { return v }
