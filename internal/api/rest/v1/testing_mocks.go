//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/analytics"
	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/domain/comments"
	"github.com/MGTheTrain/portfolio-api/internal/domain/leads"
	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, in *users.LoginInput) (*users.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.AuthResult), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, in *users.RegisterInput) (*users.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.AuthResult), args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID string, in *users.ChangePasswordInput) error {
	args := m.Called(ctx, userID, in)
	return args.Error(0)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	args := m.Called(ctx, name, email, password)
	return args.Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*users.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Claims), args.Error(1)
}

// MockPostService is a mock implementation of PostService
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) List(ctx context.Context, query *posts.PostQuery, includeUnpublished bool) ([]*posts.Post, int64, error) {
	args := m.Called(ctx, query, includeUnpublished)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*posts.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostService) GetByID(ctx context.Context, postID string, includeUnpublished bool) (*posts.Post, error) {
	args := m.Called(ctx, postID, includeUnpublished)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostService) GetBySlug(ctx context.Context, slug string) (*posts.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostService) Create(ctx context.Context, authorID string, in *posts.PostInput) (*posts.Post, error) {
	args := m.Called(ctx, authorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostService) Update(ctx context.Context, postID string, in *posts.PostUpdate) (*posts.Post, error) {
	args := m.Called(ctx, postID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostService) Publish(ctx context.Context, postID string) (*posts.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostService) Unpublish(ctx context.Context, postID string) (*posts.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostService) PublishScheduled(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context, query *projects.ProjectQuery, includeUnpublished bool) ([]*projects.Project, int64, error) {
	args := m.Called(ctx, query, includeUnpublished)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*projects.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectService) GetByID(ctx context.Context, projectID string, includeUnpublished bool) (*projects.Project, error) {
	args := m.Called(ctx, projectID, includeUnpublished)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) GetBySlug(ctx context.Context, slug string) (*projects.Project, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, in *projects.ProjectInput) (*projects.Project, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, projectID string, in *projects.ProjectUpdate) (*projects.Project, error) {
	args := m.Called(ctx, projectID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// MockLeadService is a mock implementation of LeadService
type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) Submit(ctx context.Context, in *leads.LeadInput, ipAddress, userAgent string) (*leads.Lead, error) {
	args := m.Called(ctx, in, ipAddress, userAgent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leads.Lead), args.Error(1)
}

func (m *MockLeadService) List(ctx context.Context, query *leads.LeadQuery) ([]*leads.Lead, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*leads.Lead), args.Get(1).(int64), args.Error(2)
}

func (m *MockLeadService) GetByID(ctx context.Context, leadID string) (*leads.Lead, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leads.Lead), args.Error(1)
}

func (m *MockLeadService) Update(ctx context.Context, leadID string, in *leads.LeadUpdate) (*leads.Lead, error) {
	args := m.Called(ctx, leadID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leads.Lead), args.Error(1)
}

func (m *MockLeadService) Delete(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Submit(ctx context.Context, in *comments.CommentInput, ipAddress string) (*comments.Comment, error) {
	args := m.Called(ctx, in, ipAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comments.Comment), args.Error(1)
}

func (m *MockCommentService) List(ctx context.Context, query *comments.CommentQuery, moderator bool) ([]*comments.Comment, int64, error) {
	args := m.Called(ctx, query, moderator)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*comments.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentService) UpdateStatus(ctx context.Context, commentID string, in *comments.StatusUpdate) (*comments.Comment, error) {
	args := m.Called(ctx, commentID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comments.Comment), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, file *multipart.FileHeader, userID string) (*uploads.Upload, error) {
	args := m.Called(ctx, file, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uploads.Upload), args.Error(1)
}

func (m *MockUploadService) List(ctx context.Context, query *uploads.UploadQuery) ([]*uploads.Upload, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*uploads.Upload), args.Get(1).(int64), args.Error(2)
}

func (m *MockUploadService) Delete(ctx context.Context, uploadID string) error {
	args := m.Called(ctx, uploadID)
	return args.Error(0)
}

// MockNotificationService is a mock implementation of NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) NotifyAdmins(ctx context.Context, notificationType, title, message string, link *string) error {
	args := m.Called(ctx, notificationType, title, message, link)
	return args.Error(0)
}

func (m *MockNotificationService) List(ctx context.Context, query *notifications.NotificationQuery) ([]*notifications.Notification, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*notifications.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, userID, notificationID string) (*notifications.Notification, error) {
	args := m.Called(ctx, userID, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notifications.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) Delete(ctx context.Context, userID, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

func (m *MockNotificationService) Subscribe(userID string) (<-chan *notifications.Notification, func()) {
	args := m.Called(userID)
	return args.Get(0).(<-chan *notifications.Notification), args.Get(1).(func())
}

// MockAuditLogService is a mock implementation of AuditLogService
type MockAuditLogService struct {
	mock.Mock
}

func (m *MockAuditLogService) Record(ctx context.Context, action, resourceType, resourceID string, metadata map[string]interface{}) {
	m.Called(ctx, action, resourceType, resourceID, metadata)
}

func (m *MockAuditLogService) List(ctx context.Context, query *auditlogs.AuditLogQuery) ([]*auditlogs.AuditLog, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*auditlogs.AuditLog), args.Get(1).(int64), args.Error(2)
}

// MockAnalyticsService is a mock implementation of AnalyticsService
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) RecordVisit(ctx context.Context, in *analytics.VisitInput, ipAddress, userAgent string) error {
	args := m.Called(ctx, in, ipAddress, userAgent)
	return args.Error(0)
}

func (m *MockAnalyticsService) Summary(ctx context.Context, from, to time.Time) (*analytics.Summary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.Summary), args.Error(1)
}
