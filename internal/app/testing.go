//go:build integration
// +build integration

package app

import (
	"context"
	"sync"
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/domain/analytics"
	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/domain/comments"
	"github.com/MGTheTrain/portfolio-api/internal/domain/leads"
	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/connector"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/content"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/realtime"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// Test settings
const (
	TestJWTSecret    = "integration-test-secret-of-32-bytes!"
	TestIssuer       = "portfolio-api-test"
	TestMaxSizeBytes = 1 << 20
)

// RecordedEvent is an event captured by RecordingPublisher
type RecordedEvent struct {
	Subject string
	Payload interface{}
}

// RecordingPublisher keeps published events in memory
type RecordingPublisher struct {
	mu     sync.Mutex
	events []RecordedEvent
}

// Publish records the event
func (p *RecordingPublisher) Publish(ctx context.Context, subject string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, RecordedEvent{Subject: subject, Payload: payload})
	return nil
}

// Close does nothing
func (p *RecordingPublisher) Close() {}

// Subjects returns the subjects published so far, in order
func (p *RecordingPublisher) Subjects() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	subjects := make([]string, len(p.events))
	for i, e := range p.events {
		subjects[i] = e.Subject
	}
	return subjects
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuthService         users.AuthService
	PostService         posts.PostService
	ProjectService      projects.ProjectService
	LeadService         leads.LeadService
	CommentService      comments.CommentService
	UploadService       uploads.UploadService
	NotificationService notifications.NotificationService
	AuditLogService     auditlogs.AuditLogService
	AnalyticsService    analytics.AnalyticsService

	// Infrastructure
	DBContext *persistence.TestContext
	Hub       *realtime.Hub
	Publisher *RecordingPublisher
	UploadDir string
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	hasher, err := cryptography.NewBcryptPasswordHasher(4)
	require.NoError(t, err, "Failed to create password hasher")

	tokens, err := cryptography.NewJWTTokenIssuer(TestJWTSecret, TestIssuer, config.DefaultTokenTTL)
	require.NoError(t, err, "Failed to create token issuer")

	uploadDir := t.TempDir()
	uploadConnector, err := connector.NewDiskUploadConnector(uploadDir, logger)
	require.NoError(t, err, "Failed to create upload connector")

	hub := realtime.NewHub(realtime.DefaultBufferSize, logger)
	publisher := &RecordingPublisher{}

	auditLogService, err := NewAuditLogService(dbContext.AuditLogRepo, logger)
	require.NoError(t, err, "Failed to create AuditLogService")

	notificationService, err := NewNotificationService(dbContext.NotificationRepo, dbContext.UserRepo, hub, publisher, logger)
	require.NoError(t, err, "Failed to create NotificationService")

	authService, err := NewAuthService(dbContext.UserRepo, hasher, tokens, auditLogService, true, logger)
	require.NoError(t, err, "Failed to create AuthService")

	postService, err := NewPostService(dbContext.PostRepo, content.NewMarkdownProcessor(), auditLogService, notificationService, publisher, logger)
	require.NoError(t, err, "Failed to create PostService")

	projectService, err := NewProjectService(dbContext.ProjectRepo, auditLogService, logger)
	require.NoError(t, err, "Failed to create ProjectService")

	leadService, err := NewLeadService(dbContext.LeadRepo, auditLogService, notificationService, publisher, logger)
	require.NoError(t, err, "Failed to create LeadService")

	commentService, err := NewCommentService(dbContext.CommentRepo, dbContext.PostRepo, auditLogService, notificationService, publisher, logger)
	require.NoError(t, err, "Failed to create CommentService")

	uploadService, err := NewUploadService(dbContext.UploadRepo, uploadConnector, auditLogService, &config.UploadSettings{
		Dir:              uploadDir,
		PublicPath:       "/uploads",
		MaxSizeBytes:     TestMaxSizeBytes,
		AllowedMimeTypes: config.DefaultAllowedMimeTypes,
	}, logger)
	require.NoError(t, err, "Failed to create UploadService")

	analyticsService, err := NewAnalyticsService(dbContext.AnalyticsRepo, "test-salt", logger)
	require.NoError(t, err, "Failed to create AnalyticsService")

	return &TestServices{
		AuthService:         authService,
		PostService:         postService,
		ProjectService:      projectService,
		LeadService:         leadService,
		CommentService:      commentService,
		UploadService:       uploadService,
		NotificationService: notificationService,
		AuditLogService:     auditLogService,
		AnalyticsService:    analyticsService,
		DBContext:           dbContext,
		Hub:                 hub,
		Publisher:           publisher,
		UploadDir:           uploadDir,
	}
}

// ActorContext returns a context attributed to user, as the auth middleware does
func ActorContext(user *users.User) context.Context {
	return auditlogs.WithActor(context.Background(), &auditlogs.Actor{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		IPAddress: "127.0.0.1",
		UserAgent: "integration-test",
	})
}
