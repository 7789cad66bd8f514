package domain

import "time"

// Timestamps is the audit pair shared by every persisted entity. Repositories
// persist both columns; the service layer is responsible for calling Touch on
// every mutation.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTimestamps returns a pair with both fields set to now.
func NewTimestamps(now time.Time) Timestamps {
	return Timestamps{CreatedAt: now, UpdatedAt: now}
}

// Touch refreshes UpdatedAt, leaving CreatedAt immutable.
func (t *Timestamps) Touch(now time.Time) {
	t.UpdatedAt = now
}
