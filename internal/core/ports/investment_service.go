package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/assetbridge/investment-platform/internal/core/domain"
)

// CreateInvestmentInput carries all data needed to record a new investment.
// The service performs no bounds or asset-existence validation; the caller is
// trusted.
type CreateInvestmentInput struct {
	UserID       string
	AssetID      string
	Amount       decimal.Decimal
	KYCRequired  bool
	KYCCompleted bool
	Documents    []string
}

// InvestmentService owns the investment collection and emits one notification
// per successful mutation.
type InvestmentService interface {
	Create(ctx context.Context, in CreateInvestmentInput) (*domain.Investment, error)
	// UpdateStatus mutates an investment's status in place. Returns
	// domain.ErrInvestmentNotFound (and emits nothing) when the id is
	// unknown. Transitions are not guarded; any status can be set.
	UpdateStatus(ctx context.Context, id string, status domain.InvestmentStatus, reason string) (*domain.Investment, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Investment, error)
}

// CreateNotificationInput carries the fields for a new notification.
type CreateNotificationInput struct {
	UserID    string
	Type      domain.NotificationType
	Title     string
	Message   string
	ActionURL string
	Priority  domain.NotificationPriority
}

// NotificationService owns the per-user notification feed.
type NotificationService interface {
	Create(ctx context.Context, in CreateNotificationInput) (*domain.Notification, error)
	List(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
