package unit

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversions(t *testing.T) {
	tests := []struct {
		name string
		unit *Unit
		v    float64
		si   float64
	}{
		{"Meter", Meter, 2, 2},
		{"Kilometer", Kilometer, 1.5, 1500},
		{"Mile", Mile, 1, 1609.344},
		{"Hour", Hour, 2, 7200},
		{"KilometerPerHour", KilometerPerHour, 36, 10},
		{"Celsius", Celsius, 20, 293.15},
		{"Fahrenheit", Fahrenheit, 32, 273.15},
		{"Percent", Percent, 50, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.si, tc.unit.ToSI(tc.v), 1e-9)
			assert.InDelta(t, tc.v, tc.unit.FromSI(tc.si), 1e-9)
		})
	}
}

func TestScaleConversionIgnoresOffset(t *testing.T) {
	assert.InDelta(t, 10.0, Celsius.ScaleToSI(10), 1e-12)
	assert.InDelta(t, 5.0/9.0, Fahrenheit.ScaleToSI(1), 1e-12)
	assert.InDelta(t, 1.0, Fahrenheit.ScaleFromSI(5.0/9.0), 1e-12)
}

func TestStandardUnit(t *testing.T) {
	assert.Same(t, Meter, Kilometer.StandardUnit())
	assert.Same(t, Meter, Meter.StandardUnit())
	assert.Same(t, Kelvin, Celsius.StandardUnit())
	assert.True(t, Meter.IsStandard())
	assert.False(t, Kilometer.IsStandard())

	assert.True(t, Kilometer.Compatible(Mile))
	assert.False(t, Kilometer.Compatible(Hour))
	assert.False(t, Kilometer.Compatible(nil))
	assert.Equal(t, "Length", Inch.Quantity())
	assert.Equal(t, Meter.SICoefficients(), NauticalMile.SICoefficients())
}

func TestSICoefficients(t *testing.T) {
	speed := MeterPerSecond.SICoefficients()
	duration := Second.SICoefficients()

	assert.Equal(t, Meter.SICoefficients(), Multiply(speed, duration))
	assert.Equal(t, speed, Divide(Meter.SICoefficients(), duration))
	assert.True(t, Divide(speed, speed).Dimensionless())

	tests := []struct {
		c        SICoefficients
		expected string
	}{
		{SICoefficients{}, "1"},
		{coeffs(0, 1, 0), "m"},
		{coeffs(0, 0, -1), "1/s"},
		{coeffs(1, 2, -3), "kg.m2/s3"},
		{SICoefficients{BaseAmpere: 1, BaseSecond: 1}, "s.A"},
		{SICoefficients{BaseMole: -1, BaseKelvin: -2}, "1/K2.mol"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.c.String())
	}
}

func TestForSI(t *testing.T) {
	t.Run("named", func(t *testing.T) {
		assert.Same(t, Meter, ForSI(coeffs(0, 1, 0)))
		assert.Same(t, SquareMeter, ForSI(Multiply(Meter.SICoefficients(), Meter.SICoefficients())))
		assert.Same(t, Meter, ForSI(Multiply(MeterPerSecond.SICoefficients(), Second.SICoefficients())))
		assert.Same(t, Newton, ForSI(Multiply(Kilogram.SICoefficients(), MeterPerSecond2.SICoefficients())))
	})

	t.Run("unnamed", func(t *testing.T) {
		c := Multiply(MeterPerSecond.SICoefficients(), MeterPerSecond.SICoefficients())
		u := ForSI(c)
		require.NotNil(t, u)
		assert.False(t, u.Named())
		assert.True(t, u.IsStandard())
		assert.Equal(t, "m2/s2", u.Symbol())
		assert.Equal(t, c, u.SICoefficients())
		assert.Same(t, u, ForSI(c))
	})

	t.Run("concurrent", func(t *testing.T) {
		c := SICoefficients{BaseCandela: 3, BaseMole: 1}
		got := make([]*Unit, 16)

		var wg sync.WaitGroup
		for i := range got {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got[i] = ForSI(c)
			}()
		}
		wg.Wait()

		for _, u := range got {
			assert.Same(t, got[0], u)
		}
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "km/h", KilometerPerHour.String())
	assert.Equal(t, "kilometer per hour", KilometerPerHour.Name())
	var u *Unit
	assert.Equal(t, "<nil>", u.String())
}
