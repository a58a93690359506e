package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewNotificationDefaults(t *testing.T) {
	n := New()

	assert.Empty(t, n.summary)
	assert.Empty(t, n.body)
	assert.False(t, n.hasSubtitle)
	assert.False(t, n.hasID)
	assert.Equal(t, TimeoutDefault, n.timeout)
}

func TestNotificationChaining(t *testing.T) {
	n := New().
		Summary("A").
		Body("B").
		TimeoutMillis(0)

	assert.Equal(t, "A", n.summary)
	assert.Equal(t, "B", n.body)
	assert.Equal(t, TimeoutNever, n.timeout)

	// Independent fields commute; repeated writes to one field do not
	// (last write wins).
	reordered := New().
		TimeoutMillis(0).
		Body("B").
		Summary("ignored").
		Summary("A")
	assert.Equal(t, n, reordered)
}

func TestNotificationValueSemantics(t *testing.T) {
	base := New().Summary("base")

	// Each setter returns a new value; the original is untouched.
	modified := base.Body("extra")
	assert.Empty(t, base.body)
	assert.Equal(t, "extra", modified.body)
}

func TestNotificationFinalizeIsIdempotent(t *testing.T) {
	n := New().
		Summary("backup finished").
		Subtitle("nightly").
		Body("37 files archived").
		TimeoutAfter(2 * time.Second).
		ID(42)

	first := n.Finalize()
	second := n.Finalize()

	assert.Equal(t, first, second)
	// Finalize does not change the builder's subsequent behavior.
	assert.Equal(t, first, n.Finalize())
}

func TestNotificationSubtitleAndID(t *testing.T) {
	n := New().Subtitle("sub").ID(7)

	assert.True(t, n.hasSubtitle)
	assert.Equal(t, "sub", n.subtitle)
	assert.True(t, n.hasID)
	assert.Equal(t, uint32(7), n.replaceID)
}

func TestNotificationTimeoutSetters(t *testing.T) {
	assert.Equal(t, TimeoutDefault, New().TimeoutMillis(-1).timeout)
	assert.Equal(t, TimeoutNever, New().TimeoutAfter(0).timeout)
	assert.Equal(t, TimeoutFromMillis(2000), New().TimeoutAfter(2*time.Second).timeout)
	assert.Equal(t, TimeoutNever, New().Timeout(TimeoutNever).timeout)
}
