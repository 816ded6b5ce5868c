package records

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/assetbridge/investment-platform/internal/core/domain"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

// NotificationRepository is the append-only notification collection; the only
// mutation ever applied is flipping the read flag.
type NotificationRepository struct {
	store ports.RecordStore
	log   zerolog.Logger
}

func NewNotificationRepository(store ports.RecordStore, log zerolog.Logger) *NotificationRepository {
	return &NotificationRepository{store: store, log: log}
}

func (r *NotificationRepository) Append(ctx context.Context, n *domain.Notification) error {
	notifications, err := r.load(ctx)
	if err != nil {
		return err
	}
	notifications = append(notifications, *n)
	return writeJSON(ctx, r.store, keyNotifications, notifications)
}

// ListByUser returns a user's notifications newest first.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	notifications, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Notification, 0)
	for i := len(notifications) - 1; i >= 0; i-- {
		if notifications[i].UserID == userID {
			out = append(out, notifications[i])
		}
	}
	return out, nil
}

// MarkRead flips the read flag. Re-marking an already-read notification is a
// successful no-op.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	notifications, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range notifications {
		if notifications[i].ID == id {
			if notifications[i].Read {
				return nil
			}
			notifications[i].Read = true
			return writeJSON(ctx, r.store, keyNotifications, notifications)
		}
	}
	return domain.ErrNotificationNotFound
}

func (r *NotificationRepository) load(ctx context.Context) ([]domain.Notification, error) {
	var notifications []domain.Notification
	if err := readJSON(ctx, r.store, keyNotifications, &notifications, r.log); err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	return notifications, nil
}
