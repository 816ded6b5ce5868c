package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/assetbridge/investment-platform/internal/api/metrics"
	"github.com/assetbridge/investment-platform/internal/core/domain"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

const resetTokenTTL = time.Hour

// AuthService implements registration, login, password reset, and profile
// mutation. Credentials are bcrypt hashes; accounts without an explicit
// credential entry fall back to one configured default password, preserving
// the platform's demo login behaviour.
type AuthService struct {
	users       ports.UserRepository
	credentials ports.CredentialRepository
	tokens      ports.ResetTokenRepository
	sessions    ports.SessionService
	mailer      ports.Mailer
	defaultHash []byte
	log         zerolog.Logger
	now         func() time.Time
}

func NewAuthService(
	users ports.UserRepository,
	credentials ports.CredentialRepository,
	tokens ports.ResetTokenRepository,
	sessions ports.SessionService,
	mailer ports.Mailer,
	defaultPassword string,
	log zerolog.Logger,
) (*AuthService, error) {
	defaultHash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash default password: %w", err)
	}
	return &AuthService{
		users:       users,
		credentials: credentials,
		tokens:      tokens,
		sessions:    sessions,
		mailer:      mailer,
		defaultHash: defaultHash,
		log:         log,
		now:         time.Now,
	}, nil
}

// Register creates a new account in the registered set. The email must be
// unique across the merged seed and registered sets.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" || !in.Role.Valid() || in.Role == domain.RoleAdmin {
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now().UTC()
	user := &domain.User{
		ID:              uuid.NewString(),
		Email:           in.Email,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Role:            in.Role,
		Status:          domain.UserStatusPending,
		KYCStatus:       domain.KYCNotStarted,
		Company:         in.Company,
		Phone:           in.Phone,
		Country:         in.Country,
		InvestmentLimit: domain.DefaultInvestmentLimit(in.Role),
		CreatedAt:       now,
		UpdatedAt:       now,
		Preferences:     domain.DefaultPreferences(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := s.credentials.Set(ctx, user.Email, string(hash)); err != nil {
		return nil, fmt.Errorf("store credential: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues(string(user.Role)).Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return user, nil
}

// Login authenticates an email/password pair and, when the account status
// allows it, issues a session. Pending and suspended accounts fail with a
// distinguishing flag but still carry the user so the caller can render an
// appropriate message.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if err := s.comparePassword(ctx, user.Email, password); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	switch user.Status {
	case domain.UserStatusPending:
		metrics.LoginsTotal.WithLabelValues("pending").Inc()
		return &ports.LoginResult{User: user, RequiresApproval: true}, domain.ErrAccountPending
	case domain.UserStatusSuspended:
		metrics.LoginsTotal.WithLabelValues("suspended").Inc()
		return &ports.LoginResult{User: user, AccountSuspended: true}, domain.ErrAccountSuspended
	}

	_, token, err := s.sessions.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	lastLogin := s.now().UTC()
	user.LastLogin = &lastLogin
	user.UpdatedAt = lastLogin
	if err := s.users.Update(ctx, user); err != nil {
		// Non-fatal: the session is already valid, only the timestamp is stale.
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to persist last login")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("login succeeded")
	return &ports.LoginResult{Token: token, User: user}, nil
}

// RequestPasswordReset issues a single-use reset token. Unknown emails report
// success to prevent account enumeration, and mail dispatch failure does not
// invalidate the token.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("look up user: %w", err)
	}

	now := s.now().UTC()
	token := &domain.ResetToken{
		Token:     uuid.NewString(),
		Email:     email,
		ExpiresAt: now.Add(resetTokenTTL),
		CreatedAt: now,
	}
	if err := s.tokens.Save(ctx, token); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	metrics.ResetTokensIssuedTotal.Inc()

	if err := s.mailer.SendPasswordResetEmail(ctx, email, token.Token); err != nil {
		s.log.Warn().Err(err).Str("email", email).
			Str("reset_link", "/reset-password?token="+token.Token).
			Msg("reset email dispatch failed, token remains valid")
	}
	return nil
}

// ResetPassword consumes a reset token and replaces the credential for its
// email. Tokens are single-use: the record is marked used and retained.
func (s *AuthService) ResetPassword(ctx context.Context, tokenValue, newPassword string) error {
	token, err := s.tokens.Find(ctx, tokenValue)
	if err != nil {
		return err
	}
	if token.Expired(s.now().UTC()) {
		return domain.ErrResetTokenExpired
	}
	if token.Used {
		return domain.ErrResetTokenUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.credentials.Set(ctx, token.Email, string(hash)); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	if err := s.tokens.MarkUsed(ctx, tokenValue); err != nil {
		return fmt.Errorf("mark token used: %w", err)
	}

	s.log.Info().Str("email", token.Email).Msg("password reset completed")
	return nil
}

// UpdateUser applies an administrative mutation. The id is immutable and nil
// fields are left unchanged.
func (s *AuthService) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		user.Status = *in.Status
	}
	if in.KYCStatus != nil {
		user.KYCStatus = *in.KYCStatus
	}
	if in.InvestmentLimit != nil {
		user.InvestmentLimit = *in.InvestmentLimit
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Company != nil {
		user.Company = *in.Company
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Country != nil {
		user.Country = *in.Country
	}
	user.UpdatedAt = s.now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("status", string(user.Status)).Msg("user updated")
	return user, nil
}

// UpdateBranding replaces an issuer's white-label theme.
func (s *AuthService) UpdateBranding(ctx context.Context, userID string, branding domain.Branding) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Branding = &branding
	user.UpdatedAt = s.now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update branding: %w", err)
	}
	return user, nil
}

// Users returns the merged seed and registered sets.
func (s *AuthService) Users(ctx context.Context) ([]domain.User, error) {
	return s.users.All(ctx)
}

// comparePassword checks the supplied password against the explicit credential
// entry when one exists, otherwise against the configured default password.
func (s *AuthService) comparePassword(ctx context.Context, email, password string) error {
	hash, ok, err := s.credentials.Get(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return bcrypt.CompareHashAndPassword(s.defaultHash, []byte(password))
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
