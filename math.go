package quantity

import (
	"math"

	"github.com/hupe1980/quantity/internal/storage"
)

// The functions below map every SI cell in place and return the receiver.
// The display unit is not changed; callers applying e.g. Sqrt to a length
// take responsibility for the meaning of the result.

func (m *MutableVector[T, L]) apply(fn func(float64) float64) *MutableVector[T, L] {
	m.writable().Apply(fn)
	return m
}

func (m *MutableVector[T, L]) Abs() *MutableVector[T, L]   { return m.apply(math.Abs) }
func (m *MutableVector[T, L]) Acos() *MutableVector[T, L]  { return m.apply(math.Acos) }
func (m *MutableVector[T, L]) Asin() *MutableVector[T, L]  { return m.apply(math.Asin) }
func (m *MutableVector[T, L]) Atan() *MutableVector[T, L]  { return m.apply(math.Atan) }
func (m *MutableVector[T, L]) Cbrt() *MutableVector[T, L]  { return m.apply(math.Cbrt) }
func (m *MutableVector[T, L]) Ceil() *MutableVector[T, L]  { return m.apply(math.Ceil) }
func (m *MutableVector[T, L]) Cos() *MutableVector[T, L]   { return m.apply(math.Cos) }
func (m *MutableVector[T, L]) Cosh() *MutableVector[T, L]  { return m.apply(math.Cosh) }
func (m *MutableVector[T, L]) Exp() *MutableVector[T, L]   { return m.apply(math.Exp) }
func (m *MutableVector[T, L]) Expm1() *MutableVector[T, L] { return m.apply(math.Expm1) }
func (m *MutableVector[T, L]) Floor() *MutableVector[T, L] { return m.apply(math.Floor) }
func (m *MutableVector[T, L]) Log() *MutableVector[T, L]   { return m.apply(math.Log) }
func (m *MutableVector[T, L]) Log10() *MutableVector[T, L] { return m.apply(math.Log10) }
func (m *MutableVector[T, L]) Log1p() *MutableVector[T, L] { return m.apply(math.Log1p) }
func (m *MutableVector[T, L]) Sin() *MutableVector[T, L]   { return m.apply(math.Sin) }
func (m *MutableVector[T, L]) Sinh() *MutableVector[T, L]  { return m.apply(math.Sinh) }
func (m *MutableVector[T, L]) Sqrt() *MutableVector[T, L]  { return m.apply(math.Sqrt) }
func (m *MutableVector[T, L]) Tan() *MutableVector[T, L]   { return m.apply(math.Tan) }
func (m *MutableVector[T, L]) Tanh() *MutableVector[T, L]  { return m.apply(math.Tanh) }

// Rint rounds half to even.
func (m *MutableVector[T, L]) Rint() *MutableVector[T, L] { return m.apply(math.RoundToEven) }

// Round rounds half away from zero.
func (m *MutableVector[T, L]) Round() *MutableVector[T, L] { return m.apply(math.Round) }

// Pow raises every cell to x.
func (m *MutableVector[T, L]) Pow(x float64) *MutableVector[T, L] {
	return m.apply(func(v float64) float64 { return math.Pow(v, x) })
}

// Signum replaces every cell by -1, 0 or 1. NaN and signed zeros are kept.
func (m *MutableVector[T, L]) Signum() *MutableVector[T, L] {
	return m.apply(func(v float64) float64 {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		default:
			return v
		}
	})
}

func (m *MutableVector[T, L]) ToDegrees() *MutableVector[T, L] {
	return m.apply(func(v float64) float64 { return v * 180 / math.Pi })
}

func (m *MutableVector[T, L]) ToRadians() *MutableVector[T, L] {
	return m.apply(func(v float64) float64 { return v * math.Pi / 180 })
}

// Inv replaces every cell v by 1/v. Zero cells become +Inf.
func (m *MutableVector[T, L]) Inv() *MutableVector[T, L] {
	return m.apply(func(v float64) float64 { return 1 / v })
}

func (m *MutableVector[T, L]) Neg() *MutableVector[T, L] {
	storage.Scale(m.writable(), -1)
	return m
}

// MultiplyBy multiplies every cell by f.
func (m *MutableVector[T, L]) MultiplyBy(f float64) *MutableVector[T, L] {
	storage.Scale(m.writable(), f)
	return m
}

// DivideBy divides every cell by f.
func (m *MutableVector[T, L]) DivideBy(f float64) *MutableVector[T, L] {
	return m.apply(func(v float64) float64 { return v / f })
}
