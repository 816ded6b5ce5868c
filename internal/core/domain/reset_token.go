package domain

import "time"

// ResetToken is a single-use password reset grant. Used tokens are retained
// and rejected via the Used flag; the housekeeping sweeper prunes them later.
type ResetToken struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the token has passed its expiry at the given time.
func (t *ResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
