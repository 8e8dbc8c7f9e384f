//go:build integration
// +build integration

package persistence

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
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
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB               *gorm.DB
	UserRepo         users.UserRepository
	PostRepo         posts.PostRepository
	ProjectRepo      projects.ProjectRepository
	LeadRepo         leads.LeadRepository
	CommentRepo      comments.CommentRepository
	UploadRepo       uploads.UploadRepository
	NotificationRepo notifications.NotificationRepository
	AuditLogRepo     auditlogs.AuditLogRepository
	AnalyticsRepo    analytics.AnalyticsRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup.
// Postgres tests are skipped unless POSTGRES_TEST_DSN is set.
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		}

	case config.PostgresDbType:
		dsn := os.Getenv("POSTGRES_TEST_DSN")
		if dsn == "" {
			t.Skip("POSTGRES_TEST_DSN not set")
		}
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  dsn,
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(dsn+" dbname=postgres", uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	log := testutil.SetupTestLogger(t)

	db, err := NewDBConnection(context.Background(), settings, log)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	tc := &TestContext{DB: db}
	tc.UserRepo, err = NewGormUserRepository(db, log)
	require.NoError(t, err)
	tc.PostRepo, err = NewGormPostRepository(db, log)
	require.NoError(t, err)
	tc.ProjectRepo, err = NewGormProjectRepository(db, log)
	require.NoError(t, err)
	tc.LeadRepo, err = NewGormLeadRepository(db, log)
	require.NoError(t, err)
	tc.CommentRepo, err = NewGormCommentRepository(db, log)
	require.NoError(t, err)
	tc.UploadRepo, err = NewGormUploadRepository(db, log)
	require.NoError(t, err)
	tc.NotificationRepo, err = NewGormNotificationRepository(db, log)
	require.NoError(t, err)
	tc.AuditLogRepo, err = NewGormAuditLogRepository(db, log)
	require.NoError(t, err)
	tc.AnalyticsRepo, err = NewGormAnalyticsRepository(db, log)
	require.NoError(t, err)

	return tc
}

// CreateTestUser creates and persists a user with the given role
func CreateTestUser(t *testing.T, tc *TestContext, role string) *users.User {
	t.Helper()

	now := time.Now().UTC()
	user := &users.User{
		ID:           uuid.NewString(),
		Name:         "Test " + role,
		Email:        uuid.NewString()[:8] + "@example.com",
		PasswordHash: "$2a$04$not-a-real-hash",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, tc.UserRepo.Create(context.Background(), user))
	return user
}

// CreateTestPost creates and persists a post
func CreateTestPost(t *testing.T, tc *TestContext, authorID, slug, status string) *posts.Post {
	t.Helper()

	now := time.Now().UTC()
	post := &posts.Post{
		ID:          uuid.NewString(),
		Title:       "Post " + slug,
		Slug:        slug,
		Content:     "Content of " + slug,
		Tags:        []string{"go"},
		Status:      status,
		AuthorID:    authorID,
		ReadingTime: 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	switch status {
	case posts.StatusPublished:
		post.PublishedAt = &now
	case posts.StatusScheduled:
		at := now.Add(time.Hour)
		post.ScheduledAt = &at
	}
	require.NoError(t, tc.PostRepo.Create(context.Background(), post))
	return post
}

// CreateTestComment creates and persists a comment
func CreateTestComment(t *testing.T, tc *TestContext, postID string, parentID *string, status string) *comments.Comment {
	t.Helper()

	now := time.Now().UTC()
	comment := &comments.Comment{
		ID:          uuid.NewString(),
		PostID:      postID,
		ParentID:    parentID,
		AuthorName:  "Reader",
		AuthorEmail: "reader@example.com",
		Content:     "Great post",
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, tc.CommentRepo.Create(context.Background(), comment))
	return comment
}
