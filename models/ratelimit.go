package models

import "time"

// RateLimit tracks the most recent accepted submission per throttle key
// (agent:<id> or ip:<addr>). One row per key, replaced on every acceptance.
type RateLimit struct {
	Key           string    `json:"key" gorm:"primaryKey;size:255"`
	LastRequestAt time.Time `json:"last_request_at" gorm:"not null"`
}
