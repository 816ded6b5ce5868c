package domain

import "time"

// NotificationType classifies the business event behind a notification.
type NotificationType string

const (
	NotificationInvestmentUpdate NotificationType = "investment_update"
	NotificationKYCStatus        NotificationType = "kyc_status"
	NotificationAccountStatus    NotificationType = "account_status"
	NotificationPasswordReset    NotificationType = "password_reset"
)

// NotificationPriority orders notifications in the investor dashboard.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// Notification is a user-facing event record. Records are append-only except
// for the Read flag.
type Notification struct {
	ID        string               `json:"id"`
	UserID    string               `json:"user_id"`
	Type      NotificationType     `json:"type"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Read      bool                 `json:"read"`
	ActionURL string               `json:"action_url,omitempty"`
	Priority  NotificationPriority `json:"priority"`
	CreatedAt time.Time            `json:"created_at"`
}
