package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/assetbridge/investment-platform/internal/api/metrics"
	"github.com/assetbridge/investment-platform/internal/core/domain"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

// InvestmentService owns the investment collection. Every successful mutation
// emits exactly one notification scoped to the investment's owner.
type InvestmentService struct {
	investments   ports.InvestmentRepository
	notifications ports.NotificationService
	log           zerolog.Logger
	now           func() time.Time
}

func NewInvestmentService(investments ports.InvestmentRepository, notifications ports.NotificationService, log zerolog.Logger) *InvestmentService {
	return &InvestmentService{
		investments:   investments,
		notifications: notifications,
		log:           log,
		now:           time.Now,
	}
}

// Create records a new investment and notifies its owner. Amount bounds,
// asset existence, and duplicate submissions are not validated here; the
// caller is trusted.
func (s *InvestmentService) Create(ctx context.Context, in ports.CreateInvestmentInput) (*domain.Investment, error) {
	now := s.now().UTC()
	inv := &domain.Investment{
		ID:           uuid.NewString(),
		UserID:       in.UserID,
		AssetID:      in.AssetID,
		Amount:       in.Amount,
		Status:       domain.InvestmentPending,
		KYCRequired:  in.KYCRequired,
		KYCCompleted: in.KYCCompleted,
		Documents:    in.Documents,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.investments.Append(ctx, inv); err != nil {
		return nil, fmt.Errorf("append investment: %w", err)
	}

	s.notify(ctx, inv, "Investment Submitted",
		fmt.Sprintf("Your investment of %s in asset %s has been submitted and is pending review.", inv.Amount.StringFixed(2), inv.AssetID),
		domain.PriorityMedium)

	metrics.InvestmentsCreatedTotal.Inc()
	s.log.Info().Str("investment_id", inv.ID).Str("user_id", inv.UserID).Str("amount", inv.Amount.String()).Msg("investment created")
	return inv, nil
}

// UpdateStatus mutates an investment's status in place. Status transitions are
// not guarded — any status can be set at any time — but transitions outside
// the conventional graph are logged. One notification is emitted per
// successful update, with elevated priority on rejection.
func (s *InvestmentService) UpdateStatus(ctx context.Context, id string, status domain.InvestmentStatus, reason string) (*domain.Investment, error) {
	inv, err := s.investments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !inv.Status.IsConventionalTransition(status) {
		s.log.Warn().
			Str("investment_id", inv.ID).
			Str("from", string(inv.Status)).
			Str("to", string(status)).
			Msg("unconventional status transition")
	}

	now := s.now().UTC()
	inv.Status = status
	inv.UpdatedAt = now
	if reason != "" {
		inv.RejectionReason = reason
	}
	if status == domain.InvestmentCompleted {
		inv.CompletedAt = &now
	}

	if err := s.investments.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("update investment: %w", err)
	}

	priority := domain.PriorityMedium
	if status == domain.InvestmentRejected {
		priority = domain.PriorityHigh
	}
	s.notify(ctx, inv, statusTitle(status), statusMessage(inv, reason), priority)

	metrics.InvestmentStatusUpdatesTotal.WithLabelValues(string(status)).Inc()
	s.log.Info().Str("investment_id", inv.ID).Str("status", string(status)).Msg("investment status updated")
	return inv, nil
}

// ListByUser returns the investments owned by a user.
func (s *InvestmentService) ListByUser(ctx context.Context, userID string) ([]domain.Investment, error) {
	return s.investments.ListByUser(ctx, userID)
}

// notify emits an investment_update notification. Emission failure is
// non-fatal: the investment write has already landed.
func (s *InvestmentService) notify(ctx context.Context, inv *domain.Investment, title, message string, priority domain.NotificationPriority) {
	_, err := s.notifications.Create(ctx, ports.CreateNotificationInput{
		UserID:    inv.UserID,
		Type:      domain.NotificationInvestmentUpdate,
		Title:     title,
		Message:   message,
		ActionURL: "/investments/" + inv.ID,
		Priority:  priority,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("investment_id", inv.ID).Msg("failed to emit notification")
	}
}

func statusTitle(status domain.InvestmentStatus) string {
	switch status {
	case domain.InvestmentApproved:
		return "Investment Approved"
	case domain.InvestmentRejected:
		return "Investment Rejected"
	case domain.InvestmentCompleted:
		return "Investment Completed"
	case domain.InvestmentCancelled:
		return "Investment Cancelled"
	default:
		return "Investment Updated"
	}
}

func statusMessage(inv *domain.Investment, reason string) string {
	msg := fmt.Sprintf("Your investment of %s in asset %s is now %s.", inv.Amount.StringFixed(2), inv.AssetID, inv.Status)
	if reason != "" {
		msg += " Reason: " + reason
	}
	return msg
}
