package quantity

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/hupe1980/quantity/internal/cow"
	"github.com/hupe1980/quantity/internal/storage"
	"github.com/hupe1980/quantity/unit"
)

type opKind uint8

const (
	opPlus opKind = iota
	opMinus
	opTimes
)

func (o opKind) String() string {
	switch o {
	case opPlus:
		return "plus"
	case opMinus:
		return "minus"
	case opTimes:
		return "times"
	default:
		return fmt.Sprintf("op(%d)", o)
	}
}

type tagRule struct {
	op          opKind
	left, right TagKind
}

// tagRules maps every permitted (operator, left tag, right tag) triple to the
// tag of its result. Absolute + Absolute is deliberately absent.
var tagRules = map[tagRule]TagKind{
	{opPlus, KindAbsolute, KindRelative}:  KindAbsolute,
	{opPlus, KindRelative, KindRelative}:  KindRelative,
	{opMinus, KindAbsolute, KindAbsolute}: KindRelative,
	{opMinus, KindAbsolute, KindRelative}: KindAbsolute,
	{opMinus, KindRelative, KindRelative}: KindRelative,
	{opTimes, KindAbsolute, KindAbsolute}: KindAbsolute,
	{opTimes, KindRelative, KindRelative}: KindRelative,
}

// resultTag looks up the tag produced by op on the given operand tags.
func resultTag(op opKind, left, right TagKind) (TagKind, bool) {
	k, ok := tagRules[tagRule{op: op, left: left, right: right}]
	return k, ok
}

// operand is the tag-erased read side of a combinator argument.
type operand interface {
	Source
	Unit() *unit.Unit
	config() *options
}

// Plus returns a + b as a new vector with the unit of a.
//
// Adding a relative vector to an absolute one yields an absolute vector;
// adding two relative vectors yields a relative one.
func Plus[T Tag, L Layout](a Operand[T, L], b Operand[Relative, L]) (*MutableVector[T, L], error) {
	return combine[T, L](opPlus, a.Tag().kind(), a, KindRelative, b)
}

// Minus returns a - b as a new vector with the unit of a.
func Minus[T Tag, L Layout](a Operand[T, L], b Operand[Relative, L]) (*MutableVector[T, L], error) {
	return combine[T, L](opMinus, a.Tag().kind(), a, KindRelative, b)
}

// Diff returns the relative difference a - b of two absolute vectors.
func Diff[L Layout](a, b Operand[Absolute, L]) (*MutableVector[Relative, L], error) {
	return combine[Relative, L](opMinus, KindAbsolute, a, KindAbsolute, b)
}

// Times returns the cell-wise product of a and b. The result unit is derived
// from the SI coefficients of both units, e.g. m times m gives m2.
func Times[T Tag, L Layout](a, b Operand[T, L]) (*MutableVector[T, L], error) {
	return combine[T, L](opTimes, a.Tag().kind(), a, a.Tag().kind(), b)
}

// TimesArray returns a copy of a with every cell multiplied by the matching
// factor. The unit of a is kept.
func TimesArray[T Tag, L Layout](a Operand[T, L], factors []float64) (*MutableVector[T, L], error) {
	if err := checkSize(a.Size(), len(factors)); err != nil {
		return nil, err
	}
	opts := a.config()
	dst := opts.copier.Clone(a.backing())
	storage.MulValues(dst, factors)
	runtime.KeepAlive(a)
	return newMutable[T, L](cow.New(dst), a.Unit(), opts), nil
}

// PlusDense is Plus for operands of any layouts. The result is dense.
func PlusDense[T Tag, LA, LB Layout](a Operand[T, LA], b Operand[Relative, LB]) (*MutableVector[T, Dense], error) {
	return combine[T, Dense](opPlus, a.Tag().kind(), a, KindRelative, b)
}

// MinusDense is Minus for operands of any layouts. The result is dense.
func MinusDense[T Tag, LA, LB Layout](a Operand[T, LA], b Operand[Relative, LB]) (*MutableVector[T, Dense], error) {
	return combine[T, Dense](opMinus, a.Tag().kind(), a, KindRelative, b)
}

// DiffDense is Diff for operands of any layouts. The result is dense.
func DiffDense[LA, LB Layout](a Operand[Absolute, LA], b Operand[Absolute, LB]) (*MutableVector[Relative, Dense], error) {
	return combine[Relative, Dense](opMinus, KindAbsolute, a, KindAbsolute, b)
}

// TimesDense is Times for operands of any layouts. The result is dense.
func TimesDense[T Tag, LA, LB Layout](a Operand[T, LA], b Operand[T, LB]) (*MutableVector[T, Dense], error) {
	return combine[T, Dense](opTimes, a.Tag().kind(), a, a.Tag().kind(), b)
}

// DenseToSparse returns a sparse copy of v with the same unit and tag.
func DenseToSparse[T Tag](v Operand[T, Dense]) (*MutableVector[T, Sparse], error) {
	s, err := storage.ToSparse(v.backing())
	runtime.KeepAlive(v)
	if err != nil {
		return nil, &ErrInvalidSize{Size: v.Size(), cause: err}
	}
	return newMutable[T, Sparse](cow.New[storage.Storage](s), v.Unit(), v.config()), nil
}

// SparseToDense returns a dense copy of v with the same unit and tag.
func SparseToDense[T Tag](v Operand[T, Sparse]) *MutableVector[T, Dense] {
	d := storage.ToDense(v.backing())
	runtime.KeepAlive(v)
	return newMutable[T, Dense](cow.New[storage.Storage](d), v.Unit(), v.config())
}

// combine evaluates a binary operator into a fresh vector of tag R and
// layout RL. The result inherits the options of a.
func combine[R Tag, RL Layout](op opKind, lt TagKind, a operand, rt TagKind, b operand) (*MutableVector[R, RL], error) {
	if k, ok := resultTag(op, lt, rt); !ok || k != tagOf[R]() {
		panic(fmt.Sprintf("quantity: %s(%s, %s) cannot produce %s", op, lt, rt, tagOf[R]()))
	}

	opts := a.config()
	start := time.Now()
	m, err := evaluate[R, RL](op, a, b, opts)
	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
	opts.metricsCollector.RecordOperation(op.String(), time.Since(start), err)
	if opts.logger.Enabled(context.Background(), slog.LevelDebug) {
		opts.logger.WithSize(a.Size()).LogOperation(op.String(), err)
	}
	return m, err
}

func evaluate[R Tag, RL Layout](op opKind, a, b operand, opts *options) (*MutableVector[R, RL], error) {
	if err := checkSize(a.Size(), b.Size()); err != nil {
		return nil, err
	}

	u := a.Unit()
	if op == opTimes {
		u = unit.ForSI(unit.Multiply(a.Unit().SICoefficients(), b.Unit().SICoefficients()))
		if !u.Named() {
			opts.logger.LogUnnamedUnit(u.Symbol())
		}
	} else if err := checkUnit(a.Unit(), b.Unit()); err != nil {
		return nil, err
	}

	dst, err := convertFor[RL](a.backing(), opts)
	if err != nil {
		return nil, err
	}

	switch op {
	case opPlus:
		storage.Add(dst, b.backing())
	case opMinus:
		storage.Sub(dst, b.backing())
	case opTimes:
		storage.Mul(dst, b.backing())
	}
	return newMutable[R, RL](cow.New(dst), u, opts), nil
}

// convertFor returns an exclusively owned copy of s in layout RL.
func convertFor[RL Layout](s storage.Storage, opts *options) (storage.Storage, error) {
	kind := kindOf[RL]()
	if s.Kind() == kind {
		return opts.copier.Clone(s), nil
	}
	c, err := storage.Convert(s, kind)
	if err != nil {
		return nil, &ErrInvalidSize{Size: s.Size(), cause: err}
	}
	return c, nil
}
