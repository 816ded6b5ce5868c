package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/assetbridge/investment-platform/internal/core/domain"
)

// RegisterInput carries the fields supplied at registration.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role
	Company   string
	Phone     string
	Country   string
}

// LoginResult is returned by Login. On gated failures (pending approval,
// suspension) the User is still populated so the caller can render an
// appropriate message, and exactly one of the flags is set.
type LoginResult struct {
	Token            string
	User             *domain.User
	RequiresApproval bool
	AccountSuspended bool
}

// UpdateUserInput is the administrative mutation surface. Nil fields are left
// unchanged; the user ID is immutable.
type UpdateUserInput struct {
	Status          *domain.UserStatus
	KYCStatus       *domain.KYCStatus
	InvestmentLimit *decimal.Decimal
	FirstName       *string
	LastName        *string
	Company         *string
	Phone           *string
	Country         *string
}

// AuthService implements registration, login, password reset, and profile
// mutation over the merged user set.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	UpdateBranding(ctx context.Context, userID string, branding domain.Branding) (*domain.User, error)
	Users(ctx context.Context) ([]domain.User, error)
}

// Mailer is the outbound email collaborator. Delivery is best-effort: a
// dispatch failure never fails the operation that triggered it.
type Mailer interface {
	SendPasswordResetEmail(ctx context.Context, email, token string) error
}
