package quantity

import (
	"runtime"

	"github.com/hupe1980/quantity/internal/cow"
	"github.com/hupe1980/quantity/internal/storage"
	"github.com/hupe1980/quantity/unit"
)

// MutableVector is a writable, fixed-size vector of tag T backed by layout L.
//
// A MutableVector obtained from Vector.Mutable, Immutable or Copy shares its
// cells with the source until the first write, which copies them. A write is
// therefore never visible through any other view.
type MutableVector[T Tag, L Layout] struct {
	core[T, L]
}

func newMutable[T Tag, L Layout](data *cow.Ref[storage.Storage], u *unit.Unit, opts *options) *MutableVector[T, L] {
	m := &MutableVector[T, L]{core: core[T, L]{data: data, unit: u, opts: opts}}
	cow.Track(m, data)
	return m
}

// NewMutableVector builds a writable vector from values expressed in u.
func NewMutableVector[T Tag, L Layout](values []float64, u *unit.Unit, opts ...Option) (*MutableVector[T, L], error) {
	s, err := buildStorage[T, L](values, u)
	if err != nil {
		return nil, err
	}
	return newMutable[T, L](cow.New(s), u, applyOptions(opts)), nil
}

// Immutable returns a read-only view in O(1), sharing the cells until the
// next write through m.
func (m *MutableVector[T, L]) Immutable() *Vector[T, L] {
	v := newVector[T, L](m.data.Share(), m.unit, m.opts)
	runtime.KeepAlive(m)
	return v
}

// Copy returns an independent writable vector in O(1).
//
// The copy is deferred: m and the result share cells until one of them is
// written. The first writer copies; the other then owns the original cells
// and writes in place, so the data is copied at most once.
func (m *MutableVector[T, L]) Copy() *MutableVector[T, L] {
	c := newMutable[T, L](m.data.Share(), m.unit, m.opts)
	runtime.KeepAlive(m)
	return c
}

// CopyOnWrite reports whether the next write will copy the cells first.
func (m *MutableVector[T, L]) CopyOnWrite() bool { return m.data.Shared() }

// writable returns storage exclusively owned by m, copying it if shared.
func (m *MutableVector[T, L]) writable() storage.Storage {
	s, _ := m.data.Mut(m.opts.cloneStorage)
	runtime.KeepAlive(m)
	return s
}

// Set stores s in cell i.
func (m *MutableVector[T, L]) Set(i int, s Scalar[T]) error {
	if err := checkIndex(i, m.Size()); err != nil {
		return err
	}
	if err := checkUnit(m.unit, s.Unit()); err != nil {
		return err
	}
	m.writable().Set(i, s.SI())
	return nil
}

// SetSI stores the SI value v in cell i.
func (m *MutableVector[T, L]) SetSI(i int, v float64) error {
	if err := checkIndex(i, m.Size()); err != nil {
		return err
	}
	m.writable().Set(i, v)
	return nil
}

// SetInUnit stores v, expressed in the display unit, in cell i.
func (m *MutableVector[T, L]) SetInUnit(i int, v float64) error {
	return m.SetSI(i, toSI[T](m.unit, v))
}

// SetIn stores v, expressed in u, in cell i.
func (m *MutableVector[T, L]) SetIn(i int, v float64, u *unit.Unit) error {
	if err := checkUnit(m.unit, u); err != nil {
		return err
	}
	return m.SetSI(i, toSI[T](u, v))
}

// Normalize divides every cell by the sum of all cells, so that the sum
// becomes 1. It fails with ErrZeroSum, leaving m untouched, if the sum is
// exactly zero.
func (m *MutableVector[T, L]) Normalize() error {
	sum := m.Sum()
	if sum == 0 {
		return ErrZeroSum
	}
	m.writable().Apply(func(v float64) float64 { return v / sum })
	return nil
}

// IncrementBy adds the cells of a relative vector of equal size.
func (m *MutableVector[T, L]) IncrementBy(o View[Relative]) error {
	if err := m.compatible(o); err != nil {
		return err
	}
	storage.Add(m.writable(), o.backing())
	runtime.KeepAlive(o)
	return nil
}

// DecrementBy subtracts the cells of a relative vector of equal size.
func (m *MutableVector[T, L]) DecrementBy(o View[Relative]) error {
	if err := m.compatible(o); err != nil {
		return err
	}
	storage.Sub(m.writable(), o.backing())
	runtime.KeepAlive(o)
	return nil
}

// IncrementByScalar adds s to every cell.
func (m *MutableVector[T, L]) IncrementByScalar(s Scalar[Relative]) error {
	if err := checkUnit(m.unit, s.Unit()); err != nil {
		return err
	}
	d := s.SI()
	m.writable().Apply(func(v float64) float64 { return v + d })
	return nil
}

// DecrementByScalar subtracts s from every cell.
func (m *MutableVector[T, L]) DecrementByScalar(s Scalar[Relative]) error {
	if err := checkUnit(m.unit, s.Unit()); err != nil {
		return err
	}
	d := s.SI()
	m.writable().Apply(func(v float64) float64 { return v - d })
	return nil
}

// ScaleValueByValue multiplies every cell by the matching SI cell of f.
// The unit of m is kept.
func (m *MutableVector[T, L]) ScaleValueByValue(f Source) error {
	if err := checkSize(m.Size(), f.Size()); err != nil {
		return err
	}
	storage.Mul(m.writable(), f.backing())
	runtime.KeepAlive(f)
	return nil
}

// ScaleValueByArray multiplies every cell by the matching factor.
func (m *MutableVector[T, L]) ScaleValueByArray(factors []float64) error {
	if err := checkSize(m.Size(), len(factors)); err != nil {
		return err
	}
	storage.MulValues(m.writable(), factors)
	return nil
}

func (m *MutableVector[T, L]) compatible(o View[Relative]) error {
	if err := checkSize(m.Size(), o.Size()); err != nil {
		return err
	}
	return checkUnit(m.unit, o.Unit())
}
