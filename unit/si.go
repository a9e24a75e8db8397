package unit

import (
	"strconv"
	"strings"
)

// Base dimension positions within SICoefficients.
const (
	BaseKilogram = iota
	BaseMeter
	BaseSecond
	BaseAmpere
	BaseKelvin
	BaseMole
	BaseCandela

	numBase
)

var baseSymbols = [numBase]string{"kg", "m", "s", "A", "K", "mol", "cd"}

// SICoefficients holds the exponents of the SI base units, indexed by the Base* constants.
type SICoefficients [numBase]int

// Multiply returns the coefficients of a product: exponents are summed.
func Multiply(a, b SICoefficients) SICoefficients {
	var c SICoefficients
	for i := range c {
		c[i] = a[i] + b[i]
	}
	return c
}

// Divide returns the coefficients of a quotient: exponents are subtracted.
func Divide(a, b SICoefficients) SICoefficients {
	var c SICoefficients
	for i := range c {
		c[i] = a[i] - b[i]
	}
	return c
}

// Dimensionless reports whether every exponent is zero.
func (c SICoefficients) Dimensionless() bool {
	return c == SICoefficients{}
}

// String renders the coefficients as a unit symbol, e.g. "kg.m2/s3", "1/s" or "1".
func (c SICoefficients) String() string {
	var num, den []string
	for i, e := range c {
		switch {
		case e > 0:
			num = append(num, power(baseSymbols[i], e))
		case e < 0:
			den = append(den, power(baseSymbols[i], -e))
		}
	}

	var sb strings.Builder
	if len(num) == 0 {
		sb.WriteString("1")
	} else {
		sb.WriteString(strings.Join(num, "."))
	}
	if len(den) > 0 {
		sb.WriteString("/")
		sb.WriteString(strings.Join(den, "."))
	}
	return sb.String()
}

func power(symbol string, e int) string {
	if e == 1 {
		return symbol
	}
	return symbol + strconv.Itoa(e)
}
