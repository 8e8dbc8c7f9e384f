package notifications

import (
	"context"
	"time"
)

// NotificationService defines in-app notification operations
type NotificationService interface {
	// NotifyAdmins creates one notification per admin and pushes each to live subscribers
	NotifyAdmins(ctx context.Context, notificationType, title, message string, link *string) error
	List(ctx context.Context, query *NotificationQuery) ([]*Notification, int64, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	// MarkRead marks one of the user's notifications read
	MarkRead(ctx context.Context, userID, notificationID string) (*Notification, error)
	// MarkAllRead returns the number of notifications updated
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, userID, notificationID string) error
	// Subscribe streams new notifications for userID until cancel is called
	Subscribe(userID string) (events <-chan *Notification, cancel func())
}

// NotificationRepository defines the interface for Notification-related operations
type NotificationRepository interface {
	CreateBatch(ctx context.Context, notifications []*Notification) error
	// GetByID returns a notification only when owned by userID
	GetByID(ctx context.Context, userID, notificationID string) (*Notification, error)
	List(ctx context.Context, query *NotificationQuery) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID string, at time.Time) error
	MarkAllRead(ctx context.Context, userID string, at time.Time) (int64, error)
	DeleteByID(ctx context.Context, userID, notificationID string) error
}

// Broadcaster fans notifications out to live subscribers
type Broadcaster interface {
	Publish(n *Notification)
	Subscribe(userID string) (<-chan *Notification, func())
}
