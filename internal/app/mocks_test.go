//go:build unit
// +build unit

package app

import (
	"context"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"

	"github.com/stretchr/testify/mock"
)

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *posts.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *mockPostRepository) GetByID(ctx context.Context, postID string) (*posts.Post, error) {
	args := m.Called(ctx, postID)
	post, _ := args.Get(0).(*posts.Post)
	return post, args.Error(1)
}

func (m *mockPostRepository) GetBySlug(ctx context.Context, slug string) (*posts.Post, error) {
	args := m.Called(ctx, slug)
	post, _ := args.Get(0).(*posts.Post)
	return post, args.Error(1)
}

func (m *mockPostRepository) Update(ctx context.Context, post *posts.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *mockPostRepository) DeleteByID(ctx context.Context, postID string) error {
	return m.Called(ctx, postID).Error(0)
}

func (m *mockPostRepository) List(ctx context.Context, query *posts.PostQuery) ([]*posts.Post, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*posts.Post)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockPostRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPostRepository) IncrementViews(ctx context.Context, postID string) error {
	return m.Called(ctx, postID).Error(0)
}

func (m *mockPostRepository) PublishScheduled(ctx context.Context, now time.Time) ([]*posts.Post, error) {
	args := m.Called(ctx, now)
	list, _ := args.Get(0).([]*posts.Post)
	return list, args.Error(1)
}

type mockAuditLogService struct {
	mock.Mock
}

func (m *mockAuditLogService) Record(ctx context.Context, action, resourceType, resourceID string, metadata map[string]interface{}) {
	m.Called(ctx, action, resourceType, resourceID, metadata)
}

func (m *mockAuditLogService) List(ctx context.Context, query *auditlogs.AuditLogQuery) ([]*auditlogs.AuditLog, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*auditlogs.AuditLog)
	return list, args.Get(1).(int64), args.Error(2)
}

type mockNotificationService struct {
	mock.Mock
	notifications.NotificationService
}

func (m *mockNotificationService) NotifyAdmins(ctx context.Context, notificationType, title, message string, link *string) error {
	return m.Called(ctx, notificationType, title, message, link).Error(0)
}

type stubProcessor struct{}

func (stubProcessor) Process(content, format string) (*posts.ProcessedContent, error) {
	return &posts.ProcessedContent{Markdown: content, PlainText: content}, nil
}
