//go:build amd64

package math64

import "golang.org/x/sys/cpu"

// AVX2 is a proxy for a core with multiple FP pipes, not an instruction
// set the kernels use.
func init() {
	useUnrolled = cpu.X86.HasAVX2
}
