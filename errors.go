package quantity

import (
	"errors"
	"fmt"

	"github.com/hupe1980/quantity/unit"
)

var (
	// ErrEmptyInput is returned when a vector is built from an empty slice of scalars.
	ErrEmptyInput = errors.New("empty input")

	// ErrZeroSum is returned by Normalize when the cells sum to exactly zero.
	ErrZeroSum = errors.New("sum of cells is zero")

	// ErrNilUnit is returned when a vector or scalar operation receives a nil unit.
	ErrNilUnit = errors.New("unit must not be nil")
)

// ErrIndexOutOfRange indicates an index outside [0, Size).
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d)", e.Index, e.Size)
}

// ErrSizeMismatch indicates operands of different lengths.
type ErrSizeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrUnitMismatch indicates units that do not share a standard unit.
type ErrUnitMismatch struct {
	Expected *unit.Unit
	Actual   *unit.Unit
}

func (e *ErrUnitMismatch) Error() string {
	return fmt.Sprintf("unit mismatch: %s is not compatible with %s", e.Actual, e.Expected)
}

// ErrInvalidSize indicates a size the requested storage cannot hold.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidSize struct {
	Size  int
	cause error
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("invalid size: %d", e.Size)
}

func (e *ErrInvalidSize) Unwrap() error { return e.cause }

func checkIndex(i, size int) error {
	if i < 0 || i >= size {
		return &ErrIndexOutOfRange{Index: i, Size: size}
	}
	return nil
}

func checkSize(expected, actual int) error {
	if expected != actual {
		return &ErrSizeMismatch{Expected: expected, Actual: actual}
	}
	return nil
}

func checkUnit(expected, actual *unit.Unit) error {
	if actual == nil {
		return ErrNilUnit
	}
	if !expected.Compatible(actual) {
		return &ErrUnitMismatch{Expected: expected, Actual: actual}
	}
	return nil
}
