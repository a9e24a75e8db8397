package math64

// Four-way unrolled variants. They keep independent accumulators so wide
// out-of-order cores can overlap the adds; results may differ from the
// generic versions in the last ulp for Sum.

func sumUnrolled(a []float64) float64 {
	var s0, s1, s2, s3 float64
	n := len(a) &^ 3
	for i := 0; i < n; i += 4 {
		s0 += a[i]
		s1 += a[i+1]
		s2 += a[i+2]
		s3 += a[i+3]
	}
	for i := n; i < len(a); i++ {
		s0 += a[i]
	}
	return (s0 + s1) + (s2 + s3)
}

func addUnrolled(dst, src []float64) {
	n := len(dst) &^ 3
	src = src[:len(dst)]
	for i := 0; i < n; i += 4 {
		dst[i] += src[i]
		dst[i+1] += src[i+1]
		dst[i+2] += src[i+2]
		dst[i+3] += src[i+3]
	}
	for i := n; i < len(dst); i++ {
		dst[i] += src[i]
	}
}

func subUnrolled(dst, src []float64) {
	n := len(dst) &^ 3
	src = src[:len(dst)]
	for i := 0; i < n; i += 4 {
		dst[i] -= src[i]
		dst[i+1] -= src[i+1]
		dst[i+2] -= src[i+2]
		dst[i+3] -= src[i+3]
	}
	for i := n; i < len(dst); i++ {
		dst[i] -= src[i]
	}
}

func mulUnrolled(dst, src []float64) {
	n := len(dst) &^ 3
	src = src[:len(dst)]
	for i := 0; i < n; i += 4 {
		dst[i] *= src[i]
		dst[i+1] *= src[i+1]
		dst[i+2] *= src[i+2]
		dst[i+3] *= src[i+3]
	}
	for i := n; i < len(dst); i++ {
		dst[i] *= src[i]
	}
}

func scaleUnrolled(a []float64, scalar float64) {
	n := len(a) &^ 3
	for i := 0; i < n; i += 4 {
		a[i] *= scalar
		a[i+1] *= scalar
		a[i+2] *= scalar
		a[i+3] *= scalar
	}
	for i := n; i < len(a); i++ {
		a[i] *= scalar
	}
}
