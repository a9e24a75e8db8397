package storage

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelThreshold is the cell count from which Copier splits a copy
// across workers.
const DefaultParallelThreshold = 1 << 16

// Copier deep-copies storages, using several goroutines for large ones.
//
// Clone returns only after every chunk has been written.
type Copier struct {
	// Threshold is the minimum cell count for a parallel copy; <= 0 disables it.
	Threshold int
	// Workers bounds the number of concurrent chunk copies.
	Workers int
}

// DefaultCopier returns a Copier using DefaultParallelThreshold and GOMAXPROCS workers.
func DefaultCopier() Copier {
	return Copier{
		Threshold: DefaultParallelThreshold,
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// Clone returns a deep copy of s.
func (c Copier) Clone(s Storage) Storage {
	switch v := s.(type) {
	case *Dense:
		return &Dense{data: c.copySlice(v.data)}
	case *Sparse:
		return &Sparse{
			size:  v.size,
			index: v.index.Clone(),
			vals:  c.copySlice(v.vals),
		}
	default:
		return s.Clone()
	}
}

func (c Copier) parallel(n int) bool {
	return c.Threshold > 0 && c.Workers > 1 && n >= c.Threshold
}

func (c Copier) copySlice(src []float64) []float64 {
	if src == nil {
		return nil
	}
	dst := make([]float64, len(src))
	if !c.parallel(len(src)) {
		copy(dst, src)
		return dst
	}

	chunk := (len(src) + c.Workers - 1) / c.Workers

	var g errgroup.Group
	g.SetLimit(c.Workers)

	for start := 0; start < len(src); start += chunk {
		end := min(start+chunk, len(src))
		g.Go(func() error {
			copy(dst[start:end], src[start:end])
			return nil
		})
	}
	// Chunk copies cannot fail; Wait is the barrier.
	_ = g.Wait()

	return dst
}
