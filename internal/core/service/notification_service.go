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

// NotificationService owns the per-user notification feed. Records are
// append-only except for the read flag.
type NotificationService struct {
	notifications ports.NotificationRepository
	log           zerolog.Logger
	now           func() time.Time
}

func NewNotificationService(notifications ports.NotificationRepository, log zerolog.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		log:           log,
		now:           time.Now,
	}
}

// Create appends a notification to the feed.
func (s *NotificationService) Create(ctx context.Context, in ports.CreateNotificationInput) (*domain.Notification, error) {
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	n := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		Type:      in.Type,
		Title:     in.Title,
		Message:   in.Message,
		ActionURL: in.ActionURL,
		Priority:  priority,
		CreatedAt: s.now().UTC(),
	}

	if err := s.notifications.Append(ctx, n); err != nil {
		return nil, fmt.Errorf("append notification: %w", err)
	}

	metrics.NotificationsEmittedTotal.WithLabelValues(string(n.Type)).Inc()
	return n, nil
}

// List returns a user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.notifications.ListByUser(ctx, userID)
}

// MarkRead flips the read flag. Unknown ids fail with
// domain.ErrNotificationNotFound; re-marking an already-read notification
// succeeds.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.notifications.MarkRead(ctx, id)
}
