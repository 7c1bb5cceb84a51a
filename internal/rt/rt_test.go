package rt_test

import (
	"testing"

	"codeberg.org/ssidwatch/ssidwatch/internal/errors"
	"codeberg.org/ssidwatch/ssidwatch/internal/rt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefaultStack(t *testing.T) {
	// Must be callable repeatedly without side effects.
	rt.PrefaultStack()
	rt.PrefaultStack()
}

func TestPinCPURejectsInvalidCore(t *testing.T) {
	err := rt.PinCPU(-1)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCPUAffinity))
}

func TestMakeRealtimeRejectsInvalidPriority(t *testing.T) {
	for _, priority := range []int{0, -1, 100} {
		err := rt.MakeRealtime(priority)
		require.Error(t, err, "priority %d", priority)
		assert.True(t, errors.HasCode(err, errors.ErrSchedPolicy))
	}
}
