package math64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/cpu"
)

func TestDispatchFollowsCPU(t *testing.T) {
	assert.Equal(t, cpu.ARM64.HasASIMD, useUnrolled)
}
