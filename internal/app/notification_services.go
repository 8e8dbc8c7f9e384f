package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/events"
	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/strutil"

	"github.com/google/uuid"
)

// notificationService implements the NotificationService interface
type notificationService struct {
	repo        notifications.NotificationRepository
	userRepo    users.UserRepository
	broadcaster notifications.Broadcaster
	publisher   events.Publisher
	logger      logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(
	repo notifications.NotificationRepository,
	userRepo users.UserRepository,
	broadcaster notifications.Broadcaster,
	publisher events.Publisher,
	logger logger.Logger,
) (notifications.NotificationService, error) {
	return &notificationService{
		repo:        repo,
		userRepo:    userRepo,
		broadcaster: broadcaster,
		publisher:   publisher,
		logger:      logger,
	}, nil
}

// NotifyAdmins stores one notification per admin, then pushes them to live
// subscribers and the message bus.
func (s *notificationService) NotifyAdmins(ctx context.Context, notificationType, title, message string, link *string) error {
	admins, err := s.userRepo.ListByRole(ctx, users.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to list admins: %w", err)
	}
	if len(admins) == 0 {
		return nil
	}

	now := time.Now().UTC()
	list := make([]*notifications.Notification, 0, len(admins))
	for _, admin := range admins {
		n := &notifications.Notification{
			ID:        uuid.NewString(),
			UserID:    admin.ID,
			Type:      notificationType,
			Title:     strutil.Truncate(title, 200),
			Message:   strutil.Truncate(message, 1000),
			Link:      link,
			CreatedAt: now,
		}
		if err := n.Validate(); err != nil {
			return err
		}
		list = append(list, n)
	}

	if err := s.repo.CreateBatch(ctx, list); err != nil {
		return fmt.Errorf("failed to store notifications: %w", err)
	}

	for _, n := range list {
		if s.broadcaster != nil {
			s.broadcaster.Publish(n)
		}
		publishEvent(ctx, s.publisher, s.logger, events.SubjectNotificationCreated, n)
	}
	return nil
}

// List returns the caller's notifications newest first
func (s *notificationService) List(ctx context.Context, query *notifications.NotificationQuery) ([]*notifications.Notification, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, query)
}

// UnreadCount returns the number of unread notifications of userID
func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

// MarkRead marks one of the user's notifications read
func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) (*notifications.Notification, error) {
	if err := s.repo.MarkRead(ctx, userID, notificationID, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, userID, notificationID)
}

// MarkAllRead marks every unread notification of userID read
func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID, time.Now().UTC())
}

// Delete removes one of the user's notifications
func (s *notificationService) Delete(ctx context.Context, userID, notificationID string) error {
	return s.repo.DeleteByID(ctx, userID, notificationID)
}

// Subscribe streams new notifications for userID until cancel is called
func (s *notificationService) Subscribe(userID string) (<-chan *notifications.Notification, func()) {
	return s.broadcaster.Subscribe(userID)
}
