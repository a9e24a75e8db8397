package conv

import (
	"fmt"
	"math"
)

// MaxIndex is the largest cell count addressable by a uint32 index space.
const MaxIndex = math.MaxUint32 + 1

// CheckIndexSpace reports whether n cells fit a uint32 index space.
func CheckIndexSpace(n int) error {
	if n < 0 {
		return fmt.Errorf("invalid size %d: negative", n)
	}
	// On 32-bit platforms int cannot exceed the index space.
	if uint64(n) > MaxIndex {
		return fmt.Errorf("invalid size %d: exceeds uint32 index space", n)
	}
	return nil
}
