package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/assetbridge/investment-platform/internal/core/domain"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// SessionService issues bearer tokens backed by a durable session record.
// The JWT carries the claims; the session record makes logout effective and
// bounds the session lifetime independently of the token.
type SessionService struct {
	sessions  ports.SessionRepository
	users     ports.UserRepository
	jwtSecret string
	ttl       time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

func NewSessionService(sessions ports.SessionRepository, users ports.UserRepository, jwtSecret string, ttl time.Duration, log zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{
		sessions:  sessions,
		users:     users,
		jwtSecret: jwtSecret,
		ttl:       ttl,
		log:       log,
		now:       time.Now,
	}
}

// Create issues a fresh session and its signed bearer token. Each login gets
// its own session; earlier sessions for the same user are left to expire.
func (s *SessionService) Create(ctx context.Context, user *domain.User) (*domain.Session, string, error) {
	now := s.now().UTC()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		LoginTime: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, "", fmt.Errorf("save session: %w", err)
	}

	token, err := s.signToken(session)
	if err != nil {
		return nil, "", fmt.Errorf("sign session token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("session_id", session.ID).Msg("session created")
	return session, token, nil
}

// IsActive reports whether the session exists and has not expired. Lookup
// failures read as not authenticated, never as errors.
func (s *SessionService) IsActive(ctx context.Context, sessionID string) bool {
	session, err := s.sessions.Find(ctx, sessionID)
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("session lookup failed")
		return false
	}
	return session != nil && !session.Expired(s.now().UTC())
}

// Current returns the session's user, cross-checked against the live user set.
// A session whose user id no longer resolves reads as not authenticated.
func (s *SessionService) Current(ctx context.Context, sessionID string) (*domain.User, error) {
	session, err := s.sessions.Find(ctx, sessionID)
	if err != nil || session == nil || session.Expired(s.now().UTC()) {
		return nil, domain.ErrNotAuthenticated
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("resolve session user: %w", err)
	}
	return user, nil
}

// Destroy removes the session record. Destroying an absent session is a no-op.
func (s *SessionService) Destroy(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.log.Info().Str("session_id", sessionID).Msg("session destroyed")
	return nil
}

func (s *SessionService) signToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":   session.ID,
		"sub":   session.UserID,
		"email": session.Email,
		"role":  string(session.Role),
		"exp":   session.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
