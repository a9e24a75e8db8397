package quantity

import (
	"runtime"
	"sync"
	"testing"

	"github.com/hupe1980/quantity/testutil"
	"github.com/hupe1980/quantity/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyOnWrite(t *testing.T) {
	t.Run("Isolation", func(t *testing.T) {
		a, err := NewVector[Absolute, Dense]([]float64{1, 2, 3}, unit.Meter)
		require.NoError(t, err)

		m1 := a.Mutable()
		m2 := a.Mutable()
		assert.True(t, m1.CopyOnWrite())

		require.NoError(t, m1.SetSI(0, 10))
		require.NoError(t, m2.SetSI(0, 20))

		assert.Equal(t, []float64{1, 2, 3}, a.ValuesSI())
		assert.Equal(t, []float64{10, 2, 3}, m1.ValuesSI())
		assert.Equal(t, []float64{20, 2, 3}, m2.ValuesSI())
	})

	t.Run("ImmutableSnapshot", func(t *testing.T) {
		m, err := NewMutableVector[Relative, Sparse]([]float64{0, 1}, unit.Second)
		require.NoError(t, err)
		assert.False(t, m.CopyOnWrite())

		snap := m.Immutable()
		assert.True(t, m.CopyOnWrite())

		require.NoError(t, m.SetSI(0, 5))
		assert.Equal(t, []float64{0, 1}, snap.ValuesSI())
		assert.Equal(t, []float64{5, 1}, m.ValuesSI())
	})

	t.Run("ImmutableCopyIsSelf", func(t *testing.T) {
		a, err := Zeros[Absolute, Dense](1, unit.Meter)
		require.NoError(t, err)
		assert.Same(t, a, a.Copy())
	})

	t.Run("CopiedOnce", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}
		m, err := NewMutableVector[Relative, Dense]([]float64{1, 2, 3}, unit.Meter, WithMetricsCollector(metrics))
		require.NoError(t, err)

		c := m.Copy()
		require.NoError(t, m.SetSI(0, 10))
		assert.False(t, c.CopyOnWrite())
		require.NoError(t, c.SetSI(1, 20))
		require.NoError(t, m.SetSI(2, 30))

		assert.Equal(t, []float64{10, 2, 30}, m.ValuesSI())
		assert.Equal(t, []float64{1, 20, 3}, c.ValuesSI())

		stats := metrics.GetStats()
		assert.Equal(t, int64(1), stats.CopyCount)
		assert.Equal(t, int64(3), stats.CopyCells)
		runtime.KeepAlive(c)
	})

	t.Run("FailedWriteDoesNotCopy", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}
		a, err := NewVector[Absolute, Dense]([]float64{1, 2}, unit.Meter, WithMetricsCollector(metrics))
		require.NoError(t, err)

		m := a.Mutable()
		assert.Error(t, m.SetSI(5, 1))
		assert.Error(t, m.SetIn(0, 1, unit.Second))
		assert.True(t, m.CopyOnWrite())
		assert.Zero(t, metrics.GetStats().CopyCount)
		runtime.KeepAlive(a)
	})

	t.Run("ParallelCopy", func(t *testing.T) {
		rng := testutil.NewRNG(4711)
		values := rng.Uniform(10_000, -1, 1)

		a, err := NewVector[Absolute, Dense](values, unit.Meter, WithParallelCopy(1024, 4))
		require.NoError(t, err)

		m := a.Mutable()
		require.NoError(t, m.SetSI(0, 99))

		assert.Equal(t, values[1:], m.ValuesSI()[1:])
		assert.Equal(t, values, a.ValuesSI())
	})
}

func TestCopyOnWriteWithCollectedViews(t *testing.T) {
	a, err := NewVector[Absolute, Sparse]([]float64{1, 0, 3}, unit.Meter)
	require.NoError(t, err)
	d, err := NewVector[Relative, Dense]([]float64{1, 1, 1}, unit.Meter)
	require.NoError(t, err)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				runtime.GC()
			}
		}
	}()

	for i := range 2000 {
		// Temporary views die as soon as their last method starts.
		require.NoError(t, a.Mutable().SetSI(1, float64(i)))
		require.NoError(t, a.Mutable().Immutable().Mutable().IncrementBy(d))

		p, err := PlusDense(a.Mutable().Immutable(), d.Mutable())
		require.NoError(t, err)
		require.Equal(t, []float64{2, 1, 4}, p.ValuesSI())
		require.Equal(t, []float64{1, 0, 3}, a.ValuesSI())
	}

	close(done)
	wg.Wait()
}

func TestSet(t *testing.T) {
	m, err := NewMutableVector[Absolute, Sparse]([]float64{0, 0, 0}, unit.Kilometer)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, NewScalar[Absolute](500, unit.Meter)))
	require.NoError(t, m.SetInUnit(1, 2))
	require.NoError(t, m.SetIn(2, 1, unit.Mile))

	assert.Equal(t, []float64{500, 2000, 1609.344}, m.ValuesSI())
	assert.Equal(t, 3, m.Cardinality())

	require.NoError(t, m.SetSI(1, 0))
	assert.Equal(t, 2, m.Cardinality())

	err = m.Set(0, NewScalar[Absolute](1, unit.Second))
	var unitErr *ErrUnitMismatch
	assert.ErrorAs(t, err, &unitErr)

	assert.ErrorIs(t, m.Set(0, Scalar[Absolute]{}), ErrNilUnit)

	var idxErr *ErrIndexOutOfRange
	assert.ErrorAs(t, m.SetInUnit(-1, 1), &idxErr)
}

func TestNormalize(t *testing.T) {
	t.Run("SumsToOne", func(t *testing.T) {
		rng := testutil.NewRNG(4711)
		m, err := NewMutableVector[Relative, Sparse](rng.Sparse(1000, 0.2, 0.5, 5), unit.Unitless)
		require.NoError(t, err)

		require.NoError(t, m.Normalize())
		assert.InDelta(t, 1.0, m.Sum(), 1e-12)
	})

	t.Run("Exact", func(t *testing.T) {
		m, err := NewMutableVector[Relative, Dense]([]float64{1, 3}, unit.Unitless)
		require.NoError(t, err)

		require.NoError(t, m.Normalize())
		assert.Equal(t, []float64{0.25, 0.75}, m.ValuesSI())
	})

	t.Run("ZeroSum", func(t *testing.T) {
		a, err := NewVector[Relative, Dense]([]float64{1, -1}, unit.Unitless)
		require.NoError(t, err)

		m := a.Mutable()
		assert.ErrorIs(t, m.Normalize(), ErrZeroSum)
		assert.Equal(t, []float64{1, -1}, m.ValuesSI())
		assert.True(t, m.CopyOnWrite())
		runtime.KeepAlive(a)
	})
}

func TestIncrementBy(t *testing.T) {
	pos, err := NewMutableVector[Absolute, Dense]([]float64{1, 2, 3}, unit.Kilometer)
	require.NoError(t, err)
	step, err := NewVector[Relative, Sparse]([]float64{0, 500, 0}, unit.Meter)
	require.NoError(t, err)

	require.NoError(t, pos.IncrementBy(step))
	assert.Equal(t, []float64{1000, 2500, 3000}, pos.ValuesSI())

	require.NoError(t, pos.DecrementBy(step))
	require.NoError(t, pos.DecrementBy(step))
	assert.Equal(t, []float64{1000, 1500, 3000}, pos.ValuesSI())

	require.NoError(t, pos.IncrementByScalar(NewScalar[Relative](1, unit.Kilometer)))
	require.NoError(t, pos.DecrementByScalar(NewScalar[Relative](500, unit.Meter)))
	assert.Equal(t, []float64{1500, 2000, 3500}, pos.ValuesSI())

	t.Run("SizeMismatch", func(t *testing.T) {
		short, err := Zeros[Relative, Dense](2, unit.Meter)
		require.NoError(t, err)

		var sizeErr *ErrSizeMismatch
		require.ErrorAs(t, pos.IncrementBy(short), &sizeErr)
		assert.Equal(t, 3, sizeErr.Expected)
		assert.Equal(t, 2, sizeErr.Actual)
		assert.Equal(t, []float64{1500, 2000, 3500}, pos.ValuesSI())
	})

	t.Run("UnitMismatch", func(t *testing.T) {
		dt, err := Zeros[Relative, Dense](3, unit.Second)
		require.NoError(t, err)

		var unitErr *ErrUnitMismatch
		assert.ErrorAs(t, pos.DecrementBy(dt), &unitErr)
		assert.ErrorAs(t, pos.IncrementByScalar(NewScalar[Relative](1, unit.Second)), &unitErr)
	})

	t.Run("Self", func(t *testing.T) {
		m, err := NewMutableVector[Relative, Sparse]([]float64{1, 0, 2}, unit.Meter)
		require.NoError(t, err)

		require.NoError(t, m.IncrementBy(m))
		assert.Equal(t, []float64{2, 0, 4}, m.ValuesSI())
	})

	t.Run("RelativeCelsius", func(t *testing.T) {
		temp, err := NewMutableVector[Absolute, Dense]([]float64{20}, unit.Celsius)
		require.NoError(t, err)

		require.NoError(t, temp.IncrementByScalar(NewScalar[Relative](10, unit.Celsius)))
		c, err := temp.GetInUnit(0)
		require.NoError(t, err)
		assert.InDelta(t, 30.0, c, 1e-9)
	})
}

func TestScaleValue(t *testing.T) {
	m, err := NewMutableVector[Relative, Sparse]([]float64{1, 0, 3}, unit.Meter)
	require.NoError(t, err)
	f, err := NewVector[Relative, Dense]([]float64{2, 5, 0}, unit.Unitless)
	require.NoError(t, err)

	require.NoError(t, m.ScaleValueByValue(f))
	assert.Equal(t, []float64{2, 0, 0}, m.ValuesSI())
	assert.Equal(t, 1, m.Cardinality())
	assert.Same(t, unit.Meter, m.Unit())

	require.NoError(t, m.ScaleValueByArray([]float64{0.5, 1, 1}))
	assert.Equal(t, []float64{1, 0, 0}, m.ValuesSI())

	var sizeErr *ErrSizeMismatch
	assert.ErrorAs(t, m.ScaleValueByArray([]float64{1}), &sizeErr)
	short, err := Zeros[Relative, Sparse](2, unit.Unitless)
	require.NoError(t, err)
	assert.ErrorAs(t, m.ScaleValueByValue(short), &sizeErr)
}
