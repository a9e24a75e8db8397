package quantity

import (
	"fmt"

	"github.com/hupe1980/quantity/internal/storage"
	"github.com/hupe1980/quantity/unit"
)

// TagKind distinguishes absolute from relative values at run time.
type TagKind uint8

const (
	KindAbsolute TagKind = iota
	KindRelative
)

func (k TagKind) String() string {
	switch k {
	case KindAbsolute:
		return "Absolute"
	case KindRelative:
		return "Relative"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Absolute tags values that are points on a scale, such as a position or a
// time of day. Only relative values may be added to them.
type Absolute struct{}

// Relative tags differences, such as a displacement or a duration.
type Relative struct{}

func (Absolute) kind() TagKind { return KindAbsolute }
func (Relative) kind() TagKind { return KindRelative }

func (Absolute) String() string { return "Absolute" }
func (Relative) String() string { return "Relative" }

// Tag is the closed set of value tags.
type Tag interface {
	Absolute | Relative
	kind() TagKind
}

// Dense selects contiguous storage.
type Dense struct{}

// Sparse selects storage that only keeps non-zero cells.
type Sparse struct{}

func (Dense) storageKind() storage.Kind  { return storage.KindDense }
func (Sparse) storageKind() storage.Kind { return storage.KindSparse }

func (Dense) String() string  { return "Dense" }
func (Sparse) String() string { return "Sparse" }

// Layout is the closed set of storage layouts.
type Layout interface {
	Dense | Sparse
	storageKind() storage.Kind
}

func tagOf[T Tag]() TagKind {
	var t T
	return t.kind()
}

func kindOf[L Layout]() storage.Kind {
	var l L
	return l.storageKind()
}

// toSI converts v from u to SI. Relative values are differences, so unit
// offsets (degree Celsius) do not apply to them.
func toSI[T Tag](u *unit.Unit, v float64) float64 {
	if tagOf[T]() == KindAbsolute {
		return u.ToSI(v)
	}
	return u.ScaleToSI(v)
}

func fromSI[T Tag](u *unit.Unit, si float64) float64 {
	if tagOf[T]() == KindAbsolute {
		return u.FromSI(si)
	}
	return u.ScaleFromSI(si)
}
