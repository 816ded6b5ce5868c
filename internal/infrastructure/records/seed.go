package records

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/assetbridge/investment-platform/internal/core/domain"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

// Built-in demo accounts. The seed set is effectively immutable: it is
// constructed fresh per call and administrative updates shadow these entries
// in the registered set instead of mutating them.
const (
	SeedAdminEmail    = "admin@assetbridge.io"
	SeedIssuerEmail   = "issuer@assetbridge.io"
	SeedInvestorEmail = "investor@assetbridge.io"
)

var seedPasswords = map[string]string{
	SeedAdminEmail:    "admin123",
	SeedIssuerEmail:   "issuer123",
	SeedInvestorEmail: "investor123",
}

// SeedUsers returns the built-in account set. Each call returns fresh copies.
func SeedUsers() []domain.User {
	created := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	return []domain.User{
		{
			ID:        "00000000-0000-0000-0000-000000000001",
			Email:     SeedAdminEmail,
			FirstName: "Platform",
			LastName:  "Admin",
			Role:      domain.RoleAdmin,
			Status:    domain.UserStatusActive,
			KYCStatus: domain.KYCApproved,
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:              "00000000-0000-0000-0000-000000000002",
			Email:           SeedIssuerEmail,
			FirstName:       "Demo",
			LastName:        "Issuer",
			Role:            domain.RoleIssuer,
			Status:          domain.UserStatusActive,
			KYCStatus:       domain.KYCApproved,
			Company:         "Harborview Capital",
			CreatedAt:       created,
			UpdatedAt:       created,
			Preferences:     domain.DefaultPreferences(),
			InvestmentLimit: decimal.Zero,
		},
		{
			ID:              "00000000-0000-0000-0000-000000000003",
			Email:           SeedInvestorEmail,
			FirstName:       "Demo",
			LastName:        "Investor",
			Role:            domain.RoleInvestor,
			Status:          domain.UserStatusActive,
			KYCStatus:       domain.KYCApproved,
			CreatedAt:       created,
			UpdatedAt:       created,
			Preferences:     domain.DefaultPreferences(),
			InvestmentLimit: decimal.NewFromInt(100000),
		},
	}
}

// SeedCredentials writes bcrypt hashes for the demo accounts into the
// credential map, skipping emails that already have an explicit entry (a
// demo account that reset its password keeps the new one).
func SeedCredentials(ctx context.Context, creds ports.CredentialRepository) error {
	for email, password := range seedPasswords {
		if _, ok, err := creds.Get(ctx, email); err != nil {
			return fmt.Errorf("check credential for %s: %w", email, err)
		} else if ok {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		if err := creds.Set(ctx, email, string(hash)); err != nil {
			return fmt.Errorf("store credential for %s: %w", email, err)
		}
	}
	return nil
}
