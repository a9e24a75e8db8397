package quantity

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/hupe1980/quantity/internal/cow"
	"github.com/hupe1980/quantity/internal/storage"
	"github.com/hupe1980/quantity/unit"
)

// Source is anything that can supply a fixed number of SI cells, e.g. the
// factor vector of ScaleValueByValue. It is implemented by Vector and
// MutableVector only.
type Source interface {
	Size() int
	backing() storage.Storage
}

// View is the read-only API shared by Vector and MutableVector of tag T,
// regardless of storage layout.
type View[T Tag] interface {
	Source
	Tag() T
	Unit() *unit.Unit
	GetSI(i int) (float64, error)
	ValuesSI() []float64
	Sum() float64
	config() *options
}

// Operand is a View with a statically known storage layout.
type Operand[T Tag, L Layout] interface {
	View[T]
	Layout() L
}

// core is the read path shared by both façades. Cells are held in SI in a
// copy-on-write handle that may be shared with other views.
type core[T Tag, L Layout] struct {
	data *cow.Ref[storage.Storage]
	unit *unit.Unit
	opts *options
}

// backing returns the current cells. A caller that keeps reading them must
// keep the owning view alive until it is done: once the view is collected its
// claim is released and another view may write the same cells in place.
func (c *core[T, L]) backing() storage.Storage { return c.data.Load() }
func (c *core[T, L]) config() *options         { return c.opts }

// Tag returns the value tag (Absolute or Relative).
func (c *core[T, L]) Tag() T {
	var t T
	return t
}

// Layout returns the storage layout (Dense or Sparse).
func (c *core[T, L]) Layout() L {
	var l L
	return l
}

// Size returns the fixed number of cells.
func (c *core[T, L]) Size() int { return c.backing().Size() }

// Unit returns the display unit.
func (c *core[T, L]) Unit() *unit.Unit { return c.unit }

// GetSI returns cell i in SI.
func (c *core[T, L]) GetSI(i int) (float64, error) {
	defer runtime.KeepAlive(c)
	s := c.backing()
	if err := checkIndex(i, s.Size()); err != nil {
		return 0, err
	}
	return s.Get(i), nil
}

// Get returns cell i as a Scalar in the display unit.
func (c *core[T, L]) Get(i int) (Scalar[T], error) {
	si, err := c.GetSI(i)
	if err != nil {
		return Scalar[T]{}, err
	}
	return NewScalarSI[T](si, c.unit), nil
}

// GetInUnit returns cell i expressed in the display unit.
func (c *core[T, L]) GetInUnit(i int) (float64, error) {
	si, err := c.GetSI(i)
	if err != nil {
		return 0, err
	}
	return fromSI[T](c.unit, si), nil
}

// GetIn returns cell i expressed in u, which must be compatible with the display unit.
func (c *core[T, L]) GetIn(i int, u *unit.Unit) (float64, error) {
	if err := checkUnit(c.unit, u); err != nil {
		return 0, err
	}
	si, err := c.GetSI(i)
	if err != nil {
		return 0, err
	}
	return fromSI[T](u, si), nil
}

// ValuesSI returns a copy of all cells in SI.
func (c *core[T, L]) ValuesSI() []float64 {
	defer runtime.KeepAlive(c)
	return c.backing().Values()
}

// ValuesInUnit returns a copy of all cells in the display unit.
func (c *core[T, L]) ValuesInUnit() []float64 {
	vals := c.ValuesSI()
	if c.unit.IsStandard() {
		return vals
	}
	for i, v := range vals {
		vals[i] = fromSI[T](c.unit, v)
	}
	return vals
}

// ValuesIn returns a copy of all cells expressed in u.
func (c *core[T, L]) ValuesIn(u *unit.Unit) ([]float64, error) {
	if err := checkUnit(c.unit, u); err != nil {
		return nil, err
	}
	vals := c.ValuesSI()
	for i, v := range vals {
		vals[i] = fromSI[T](u, v)
	}
	return vals, nil
}

// Sum returns the sum of all cells in SI.
func (c *core[T, L]) Sum() float64 {
	defer runtime.KeepAlive(c)
	return c.backing().Sum()
}

// Cardinality returns the number of non-zero cells.
func (c *core[T, L]) Cardinality() int {
	defer runtime.KeepAlive(c)
	return c.backing().Cardinality()
}

// Equal reports whether o has the same size, a compatible unit and equal SI
// cells. The storage layouts of c and o may differ.
func (c *core[T, L]) Equal(o View[T]) bool {
	if o == nil || c.Size() != o.Size() || !c.unit.Compatible(o.Unit()) {
		return false
	}
	defer runtime.KeepAlive(o)
	defer runtime.KeepAlive(c)
	a, b := c.backing(), o.backing()
	if a.Cardinality() != b.Cardinality() {
		return false
	}
	for i, v := range a.NonZero() {
		if b.Get(i) != v {
			return false
		}
	}
	return true
}

// FormatIn renders the cells expressed in u, e.g. "[1 2.5 3] km".
// It is meant for logs and debugging, not as an exchange format.
func (c *core[T, L]) FormatIn(u *unit.Unit) string {
	defer runtime.KeepAlive(c)
	s := c.backing()

	var sb strings.Builder
	sb.WriteByte('[')
	for i := range s.Size() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(fromSI[T](u, s.Get(i)), 'g', -1, 64))
	}
	sb.WriteString("] ")
	sb.WriteString(u.Symbol())
	return sb.String()
}

func (c *core[T, L]) String() string { return c.FormatIn(c.unit) }

// NewVector builds a read-only vector from values expressed in u.
func NewVector[T Tag, L Layout](values []float64, u *unit.Unit, opts ...Option) (*Vector[T, L], error) {
	s, err := buildStorage[T, L](values, u)
	if err != nil {
		return nil, err
	}
	return newVector[T, L](cow.New(s), u, applyOptions(opts)), nil
}

// NewVectorFromScalars builds a read-only vector from scalars. The display
// unit is taken from the first scalar; every scalar must be compatible with it.
func NewVectorFromScalars[T Tag, L Layout](scalars []Scalar[T], opts ...Option) (*Vector[T, L], error) {
	if len(scalars) == 0 {
		return nil, ErrEmptyInput
	}
	u := scalars[0].Unit()
	if u == nil {
		return nil, ErrNilUnit
	}
	s, err := newStorage[L](len(scalars))
	if err != nil {
		return nil, err
	}
	for i, sc := range scalars {
		if err := checkUnit(u, sc.Unit()); err != nil {
			return nil, err
		}
		if v := sc.SI(); v != 0 {
			s.Set(i, v)
		}
	}
	return newVector[T, L](cow.New(s), u, applyOptions(opts)), nil
}

// NewVectorFromMap builds a read-only vector of the given size whose cells
// are zero except for the entries of values (index -> value in u).
func NewVectorFromMap[T Tag, L Layout](values map[int]float64, size int, u *unit.Unit, opts ...Option) (*Vector[T, L], error) {
	if u == nil {
		return nil, ErrNilUnit
	}
	s, err := newStorage[L](size)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if err := checkIndex(i, size); err != nil {
			return nil, err
		}
		s.Set(i, toSI[T](u, v))
	}
	return newVector[T, L](cow.New(s), u, applyOptions(opts)), nil
}

// Zeros builds a read-only vector of size zero cells.
func Zeros[T Tag, L Layout](size int, u *unit.Unit, opts ...Option) (*Vector[T, L], error) {
	return NewVectorFromMap[T, L](nil, size, u, opts...)
}

func newStorage[L Layout](size int) (storage.Storage, error) {
	s, err := storage.New(kindOf[L](), size)
	if err != nil {
		return nil, &ErrInvalidSize{Size: size, cause: err}
	}
	return s, nil
}

// buildStorage converts values to SI. Values already in a standard unit are
// bulk-copied without per-cell conversion.
func buildStorage[T Tag, L Layout](values []float64, u *unit.Unit) (storage.Storage, error) {
	if u == nil {
		return nil, ErrNilUnit
	}
	if u.IsStandard() {
		s, err := storage.FromValues(kindOf[L](), values)
		if err != nil {
			return nil, &ErrInvalidSize{Size: len(values), cause: err}
		}
		return s, nil
	}

	s, err := newStorage[L](len(values))
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if si := toSI[T](u, v); si != 0 {
			s.Set(i, si)
		}
	}
	return s, nil
}
