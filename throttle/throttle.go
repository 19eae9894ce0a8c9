package throttle

import (
	"time"

	"agentkit-backend/database"
)

// Window is the rolling period within which a key may be accepted once.
const Window = 24 * time.Hour

// Key derives the throttle bucket for a submission. A declared agent id
// scopes the bucket to that agent regardless of network origin; otherwise
// the bucket is scoped to the client IP.
func Key(agentID, clientIP string) string {
	if agentID != "" {
		return "agent:" + agentID
	}
	return "ip:" + clientIP
}

// Gate decides admission against the durable throttle table. It is a
// single-row lookup, not a counter: at most one accepted submission per
// key per rolling window, best-effort under concurrency.
type Gate struct {
	Store database.ThrottleStore
}

// IsThrottled reports whether key was accepted strictly within the window
// before now. An entry aged exactly one full window no longer throttles.
func (g *Gate) IsThrottled(key string, now time.Time) (bool, error) {
	entry, err := g.Store.Get(key)
	if err != nil {
		return false, err
	}
	if entry == nil {
		return false, nil
	}
	return entry.LastRequestAt.After(now.Add(-Window)), nil
}

// Touch records an acceptance for key, replacing any previous entry.
func (g *Gate) Touch(key string, at time.Time) error {
	return g.Store.Upsert(key, at)
}
