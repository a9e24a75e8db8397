//go:build arm64

package math64

import "golang.org/x/sys/cpu"

// ASIMD is a proxy for a core with multiple FP pipes, not an instruction
// set the kernels use.
func init() {
	useUnrolled = cpu.ARM64.HasASIMD
}
