package ports

import (
	"context"

	"github.com/assetbridge/investment-platform/internal/core/domain"
)

// SessionService issues and validates login sessions. Absent, unparsable,
// and expired sessions all collapse to "not authenticated"; callers cannot
// distinguish corrupt state from no session.
type SessionService interface {
	// Create issues a fresh session for the user and returns it together
	// with the signed bearer token.
	Create(ctx context.Context, user *domain.User) (*domain.Session, string, error)
	// IsActive reports whether the session exists and has not expired.
	// It never returns an error; failures read as false.
	IsActive(ctx context.Context, sessionID string) bool
	// Current resolves the session's user against the live user set.
	// Returns domain.ErrNotAuthenticated when the session is gone, expired,
	// or its user id no longer resolves.
	Current(ctx context.Context, sessionID string) (*domain.User, error)
	// Destroy removes the session. Destroying an absent session is a no-op.
	Destroy(ctx context.Context, sessionID string) error
}
