package domain

import "errors"

var (
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords so login failures do not leak account existence.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken       = errors.New("email already registered")
	ErrUserNotFound     = errors.New("user not found")
	ErrAccountPending   = errors.New("account pending approval")
	ErrAccountSuspended = errors.New("account suspended")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("access forbidden")

	ErrResetTokenInvalid = errors.New("invalid or unknown reset token")
	ErrResetTokenExpired = errors.New("reset token expired")
	ErrResetTokenUsed    = errors.New("reset token already used")

	ErrInvestmentNotFound   = errors.New("investment not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
