// Package unit provides units of measure and their SI decomposition.
//
// A Unit relates a display form (kilometer, hour, degree Celsius) to the
// standard SI unit of its quantity:
//
//	si := unit.Kilometer.ToSI(1.5)      // 1500 (meters)
//	km := unit.Kilometer.FromSI(1500)   // 1.5
//
// Every unit carries the exponents of the seven SI base units (kg, m, s, A,
// K, mol, cd). Multiplying quantities adds exponents, and ForSI returns the
// canonical standard unit for an exponent combination, creating an unnamed
// one when no predefined quantity matches:
//
//	c := unit.Multiply(unit.MeterPerSecond.SICoefficients(), unit.Second.SICoefficients())
//	unit.ForSI(c) == unit.Meter // true
//
// ForSI is idempotent and safe for concurrent use.
package unit
