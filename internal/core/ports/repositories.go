package ports

import (
	"context"
	"time"

	"github.com/assetbridge/investment-platform/internal/core/domain"
)

// UserRepository exposes the merged user set: an immutable seed set plus the
// durable registered set. Reads always return copies, never live references.
type UserRepository interface {
	// FindByEmail looks a user up by exact (case-sensitive) email match.
	// Returns domain.ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when the id does not resolve.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create appends a new user to the registered set. Returns
	// domain.ErrEmailTaken when the email exists in the merged set.
	Create(ctx context.Context, user *domain.User) error
	// Update persists a mutated user. The write lands in the registered set
	// even for seed users, which stay untouched and are shadowed at read.
	Update(ctx context.Context, user *domain.User) error
	// All returns the merged set.
	All(ctx context.Context) ([]domain.User, error)
}

// CredentialRepository is the durable email → password-hash map. One entry per
// email; entries without an explicit hash fall back to the configured default
// password at the service layer.
type CredentialRepository interface {
	// Get returns the stored hash and whether an explicit entry exists.
	Get(ctx context.Context, email string) (string, bool, error)
	Set(ctx context.Context, email, hash string) error
}

// SessionRepository stores live sessions keyed by session ID. Find returns
// (nil, nil) for absent or unparsable sessions.
type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session) error
	Find(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// ResetTokenRepository stores password-reset grants keyed by token value.
type ResetTokenRepository interface {
	Save(ctx context.Context, token *domain.ResetToken) error
	// Find returns domain.ErrResetTokenInvalid when the token is unknown.
	Find(ctx context.Context, token string) (*domain.ResetToken, error)
	// MarkUsed flips the Used flag; the record itself is retained.
	MarkUsed(ctx context.Context, token string) error
	// PruneExpired removes tokens that are used or expired as of now and
	// reports how many were removed.
	PruneExpired(ctx context.Context, now time.Time) (int, error)
}

// InvestmentRepository is the append-mostly investment collection.
type InvestmentRepository interface {
	Append(ctx context.Context, inv *domain.Investment) error
	// FindByID returns domain.ErrInvestmentNotFound when the id is unknown.
	FindByID(ctx context.Context, id string) (*domain.Investment, error)
	Update(ctx context.Context, inv *domain.Investment) error
	ListByUser(ctx context.Context, userID string) ([]domain.Investment, error)
}

// NotificationRepository is the append-only notification collection; only the
// Read flag is ever mutated.
type NotificationRepository interface {
	Append(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	// MarkRead returns domain.ErrNotificationNotFound when the id is unknown
	// and is idempotent on an already-read notification.
	MarkRead(ctx context.Context, id string) error
}
