// Package math64 provides float64 slice kernels used by the storage layer.
// This is an internal package - callers go through the quantity vectors.
//
// Every kernel has a generic loop and a 4-way unrolled loop, both pure Go.
// The unrolled loops keep four independent accumulators or stores in flight,
// which only pays off on cores that can retire several FP operations per
// cycle. There is no portable way to ask for that, so the AVX2 (amd64) and
// ASIMD (arm64) feature bits stand in for it: every core that reports them
// has at least two FP pipes. The unrolled Sum adds in a different order and
// may differ from the generic one in the last bits.
package math64

// useUnrolled selects the unrolled kernels. It is set per architecture in init
// and is false on all other targets.
var useUnrolled bool

// Sum returns the sum of all elements of a.
func Sum(a []float64) float64 {
	if useUnrolled {
		return sumUnrolled(a)
	}
	return sumGeneric(a)
}

// Add adds src to dst element-wise. Assumes equal lengths (caller's responsibility).
func Add(dst, src []float64) {
	if useUnrolled {
		addUnrolled(dst, src)
		return
	}
	addGeneric(dst, src)
}

// Sub subtracts src from dst element-wise. Assumes equal lengths.
func Sub(dst, src []float64) {
	if useUnrolled {
		subUnrolled(dst, src)
		return
	}
	subGeneric(dst, src)
}

// Mul multiplies dst by src element-wise. Assumes equal lengths.
func Mul(dst, src []float64) {
	if useUnrolled {
		mulUnrolled(dst, src)
		return
	}
	mulGeneric(dst, src)
}

// ScaleInPlace multiplies all elements of a by scalar.
func ScaleInPlace(a []float64, scalar float64) {
	if useUnrolled {
		scaleUnrolled(a, scalar)
		return
	}
	scaleGeneric(a, scalar)
}

// Apply replaces every element of a with fn(a[i]).
func Apply(a []float64, fn func(float64) float64) {
	for i, v := range a {
		a[i] = fn(v)
	}
}

// CountNonZero returns the number of elements that differ from zero.
func CountNonZero(a []float64) int {
	n := 0
	for _, v := range a {
		if v != 0 {
			n++
		}
	}
	return n
}

func sumGeneric(a []float64) float64 {
	var ret float64
	for _, v := range a {
		ret += v
	}

	return ret
}

func addGeneric(dst, src []float64) {
	for i := range dst {
		dst[i] += src[i]
	}
}

func subGeneric(dst, src []float64) {
	for i := range dst {
		dst[i] -= src[i]
	}
}

func mulGeneric(dst, src []float64) {
	for i := range dst {
		dst[i] *= src[i]
	}
}

func scaleGeneric(a []float64, scalar float64) {
	for i := range a {
		a[i] *= scalar
	}
}
