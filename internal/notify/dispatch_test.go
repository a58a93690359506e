package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDispatcherBackendSelection(t *testing.T) {
	t.Run("none selects the unsupported dispatcher", func(t *testing.T) {
		d, err := NewDispatcher(BackendNone, "test-app")
		require.NoError(t, err)
		assert.Equal(t, "unsupported", d.Name())
	})

	t.Run("beeep selects the cross-platform dispatcher", func(t *testing.T) {
		d, err := NewDispatcher(BackendBeeep, "test-app")
		require.NoError(t, err)
		assert.Equal(t, "beeep", d.Name())
	})

	t.Run("auto and empty select the platform dispatcher", func(t *testing.T) {
		auto, err := NewDispatcher(BackendAuto, "test-app")
		require.NoError(t, err)

		implicit, err := NewDispatcher("", "test-app")
		require.NoError(t, err)

		assert.Equal(t, auto.Name(), implicit.Name())
	})

	t.Run("unknown backend is rejected", func(t *testing.T) {
		_, err := NewDispatcher("growl", "test-app")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "growl")
	})
}

func TestUnsupportedDispatcher(t *testing.T) {
	d, err := NewDispatcher(BackendNone, "")
	require.NoError(t, err)

	out := d.Deliver(context.Background(), New().Summary("ignored"))

	assert.Equal(t, StatusUnsupported, out.Status)
	assert.Empty(t, out.Reason)
}

func TestOutcomeConstructors(t *testing.T) {
	assert.Equal(t, Outcome{Status: StatusDelivered}, Delivered())
	assert.Equal(t, Outcome{Status: StatusUnsupported}, Unsupported())
	assert.Equal(t, Outcome{Status: StatusFailed, Reason: "daemon gone"}, Failed("daemon gone"))
	assert.Equal(t, "attempt 3 failed", Failedf("attempt %d failed", 3).Reason)
}
