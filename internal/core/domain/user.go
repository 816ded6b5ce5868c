package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role identifies what an account can do on the platform.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleIssuer   Role = "issuer"
	RoleInvestor Role = "investor"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleIssuer || r == RoleInvestor
}

// UserStatus is the administrative lifecycle state of an account.
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusPending     UserStatus = "pending"
	UserStatusSuspended   UserStatus = "suspended"
	UserStatusKYCPending  UserStatus = "kyc_pending"
	UserStatusKYCApproved UserStatus = "kyc_approved"
	UserStatusKYCRejected UserStatus = "kyc_rejected"
)

// KYCStatus tracks the identity-verification workflow independently of the
// account status.
type KYCStatus string

const (
	KYCNotStarted    KYCStatus = "not_started"
	KYCInProgress    KYCStatus = "in_progress"
	KYCPendingReview KYCStatus = "pending_review"
	KYCApproved      KYCStatus = "approved"
	KYCRejected      KYCStatus = "rejected"
)

// Preferences holds per-user UI and contact settings.
type Preferences struct {
	EmailNotifications bool   `json:"email_notifications"`
	Language           string `json:"language"`
	Currency           string `json:"currency"`
}

// Branding carries the white-label theme an issuer applies to its
// investor-facing pages.
type Branding struct {
	CompanyName  string `json:"company_name,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
	PrimaryColor string `json:"primary_color,omitempty"`
	SupportEmail string `json:"support_email,omitempty"`
}

// User is the identity record. The ID is immutable once created and the email
// is the login lookup key; accounts are never hard-deleted.
type User struct {
	ID              string          `json:"id"`
	Email           string          `json:"email"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Role            Role            `json:"role"`
	Status          UserStatus      `json:"status"`
	KYCStatus       KYCStatus       `json:"kyc_status"`
	Company         string          `json:"company,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	Country         string          `json:"country,omitempty"`
	InvestmentLimit decimal.Decimal `json:"investment_limit"`
	TotalInvested   decimal.Decimal `json:"total_invested"`
	LastLogin       *time.Time      `json:"last_login,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Preferences     *Preferences    `json:"preferences,omitempty"`
	Branding        *Branding       `json:"branding,omitempty"`
}

// DefaultPreferences returns the preferences assigned at registration.
func DefaultPreferences() *Preferences {
	return &Preferences{
		EmailNotifications: true,
		Language:           "en",
		Currency:           "USD",
	}
}

// DefaultInvestmentLimit returns the registration-time investment ceiling for
// a role: issuers do not invest, investors start with a fixed ceiling.
func DefaultInvestmentLimit(role Role) decimal.Decimal {
	if role == RoleInvestor {
		return decimal.NewFromInt(100000)
	}
	return decimal.Zero
}
