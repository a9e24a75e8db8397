package quantity

import (
	"strconv"

	"github.com/hupe1980/quantity/unit"
)

// Scalar is a single value with a display unit, stored in SI.
//
// The zero Scalar has a nil unit and is only useful as a placeholder.
type Scalar[T Tag] struct {
	si   float64
	unit *unit.Unit
}

// NewScalar converts v from u to SI.
func NewScalar[T Tag](v float64, u *unit.Unit) Scalar[T] {
	return Scalar[T]{si: toSI[T](u, v), unit: u}
}

// NewScalarSI wraps a value that is already in SI, displayed in u.
func NewScalarSI[T Tag](si float64, u *unit.Unit) Scalar[T] {
	return Scalar[T]{si: si, unit: u}
}

// SI returns the value in the standard unit.
func (s Scalar[T]) SI() float64 { return s.si }

// In returns the value expressed in u.
func (s Scalar[T]) In(u *unit.Unit) float64 { return fromSI[T](u, s.si) }

// Value returns the value expressed in the display unit.
func (s Scalar[T]) Value() float64 { return s.In(s.unit) }

// Unit returns the display unit.
func (s Scalar[T]) Unit() *unit.Unit { return s.unit }

// Equal reports whether s and o have the same SI value and standard unit.
func (s Scalar[T]) Equal(o Scalar[T]) bool {
	return s.si == o.si && s.unit.Compatible(o.unit)
}

func (s Scalar[T]) String() string {
	if s.unit == nil {
		return strconv.FormatFloat(s.si, 'g', -1, 64)
	}
	return strconv.FormatFloat(s.Value(), 'g', -1, 64) + " " + s.unit.Symbol()
}

// ScalarPlus returns a + b in a's unit.
func ScalarPlus[T Tag](a Scalar[T], b Scalar[Relative]) (Scalar[T], error) {
	if err := checkUnit(a.unit, b.unit); err != nil {
		return Scalar[T]{}, err
	}
	return NewScalarSI[T](a.si+b.si, a.unit), nil
}

// ScalarMinus returns a - b in a's unit.
func ScalarMinus[T Tag](a Scalar[T], b Scalar[Relative]) (Scalar[T], error) {
	if err := checkUnit(a.unit, b.unit); err != nil {
		return Scalar[T]{}, err
	}
	return NewScalarSI[T](a.si-b.si, a.unit), nil
}

// ScalarDiff returns the relative distance a - b between two absolute values.
func ScalarDiff(a, b Scalar[Absolute]) (Scalar[Relative], error) {
	if err := checkUnit(a.unit, b.unit); err != nil {
		return Scalar[Relative]{}, err
	}
	return NewScalarSI[Relative](a.si-b.si, a.unit), nil
}
