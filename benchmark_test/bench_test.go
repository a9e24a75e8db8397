package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/quantity"
	"github.com/hupe1980/quantity/testutil"
	"github.com/hupe1980/quantity/unit"
)

var sizes = []int{1 << 10, 1 << 16, 1 << 20}

// BenchmarkCopyOnWrite measures the first write through a shared view, which
// pays for the full copy.
func BenchmarkCopyOnWrite(b *testing.B) {
	rng := testutil.NewRNG(4711)

	for _, n := range sizes {
		values := rng.Uniform(n, 0, 1)

		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, workers), func(b *testing.B) {
				v, err := quantity.NewVector[quantity.Absolute, quantity.Dense](values, unit.Meter,
					quantity.WithParallelCopy(1<<14, workers))
				if err != nil {
					b.Fatal(err)
				}

				b.SetBytes(int64(n * 8))
				b.ResetTimer()
				for b.Loop() {
					m := v.Mutable()
					if err := m.SetSI(0, 1); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkPlus compares the layouts across densities.
func BenchmarkPlus(b *testing.B) {
	rng := testutil.NewRNG(4711)
	const n = 1 << 16

	for _, density := range []float64{0.001, 0.01, 0.1, 1} {
		left := rng.Sparse(n, density, 1, 2)
		right := rng.Sparse(n, density, 1, 2)

		b.Run(fmt.Sprintf("Dense/density=%g", density), func(b *testing.B) {
			benchPlus[quantity.Dense](b, left, right)
		})
		b.Run(fmt.Sprintf("Sparse/density=%g", density), func(b *testing.B) {
			benchPlus[quantity.Sparse](b, left, right)
		})
	}
}

func benchPlus[L quantity.Layout](b *testing.B, left, right []float64) {
	x, err := quantity.NewVector[quantity.Absolute, L](left, unit.Meter)
	if err != nil {
		b.Fatal(err)
	}
	y, err := quantity.NewVector[quantity.Relative, L](right, unit.Meter)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for b.Loop() {
		if _, err := quantity.Plus[quantity.Absolute, L](x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSum(b *testing.B) {
	rng := testutil.NewRNG(4711)

	for _, n := range sizes {
		v, err := quantity.NewVector[quantity.Relative, quantity.Dense](rng.Uniform(n, 0, 1), unit.Second)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n * 8))
			for b.Loop() {
				_ = v.Sum()
			}
		})
	}
}

func BenchmarkSparseSet(b *testing.B) {
	rng := testutil.NewRNG(4711)
	const n = 1 << 20

	m, err := quantity.NewMutableVector[quantity.Relative, quantity.Sparse](rng.Sparse(n, 0.01, 1, 2), unit.Meter)
	if err != nil {
		b.Fatal(err)
	}
	idx := rng.Indices(n, 1024)

	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		if err := m.SetSI(idx[i%len(idx)], float64(i)); err != nil {
			b.Fatal(err)
		}
	}
}
