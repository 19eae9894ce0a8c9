package throttle

import (
	"testing"
	"time"

	"agentkit-backend/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPrefersAgentOverIP(t *testing.T) {
	assert.Equal(t, "agent:bot-1", Key("bot-1", "1.2.3.4"))
	assert.Equal(t, "ip:1.2.3.4", Key("", "1.2.3.4"))
	assert.Equal(t, "ip:unknown", Key("", "unknown"))
}

func TestIsThrottledWindow(t *testing.T) {
	store := database.NewMemoryThrottleStore()
	gate := &Gate{Store: store}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// No entry: never throttled.
	limited, err := gate.IsThrottled("agent:x", now)
	require.NoError(t, err)
	assert.False(t, limited)

	// Entry inside the window throttles.
	require.NoError(t, gate.Touch("agent:x", now.Add(-time.Hour)))
	limited, err = gate.IsThrottled("agent:x", now)
	require.NoError(t, err)
	assert.True(t, limited)

	// Exactly one full window old: strict inequality, no longer throttled.
	require.NoError(t, gate.Touch("agent:x", now.Add(-Window)))
	limited, err = gate.IsThrottled("agent:x", now)
	require.NoError(t, err)
	assert.False(t, limited)

	// One second fresher than the window edge throttles again.
	require.NoError(t, gate.Touch("agent:x", now.Add(-Window).Add(time.Second)))
	limited, err = gate.IsThrottled("agent:x", now)
	require.NoError(t, err)
	assert.True(t, limited)
}

func TestTouchReplacesEntry(t *testing.T) {
	store := database.NewMemoryThrottleStore()
	gate := &Gate{Store: store}
	now := time.Now().UTC()

	require.NoError(t, gate.Touch("ip:1.2.3.4", now.Add(-48*time.Hour)))
	require.NoError(t, gate.Touch("ip:1.2.3.4", now))

	entry, err := store.Get("ip:1.2.3.4")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, now, entry.LastRequestAt)
}
