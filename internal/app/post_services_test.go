//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/connector"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type postServiceFixture struct {
	service  *postService
	repo     *mockPostRepository
	audit    *mockAuditLogService
	notifier *mockNotificationService
}

func newPostServiceFixture(t *testing.T) *postServiceFixture {
	t.Helper()

	f := &postServiceFixture{
		repo:     &mockPostRepository{},
		audit:    &mockAuditLogService{},
		notifier: &mockNotificationService{},
	}
	service, err := NewPostService(f.repo, stubProcessor{}, f.audit, f.notifier, connector.NewNoopEventPublisher(), testutil.SetupTestLogger(t))
	require.NoError(t, err)
	f.service = service.(*postService)
	return f
}

func TestPostService_PublishScheduledSurvivesNotificationFailure(t *testing.T) {
	f := newPostServiceFixture(t)
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	scheduled := now.Add(-time.Minute)

	published := []*posts.Post{
		{ID: uuid.NewString(), Title: "One", Slug: "one", Status: posts.StatusPublished, ScheduledAt: &scheduled, PublishedAt: &now},
		{ID: uuid.NewString(), Title: "Two", Slug: "two", Status: posts.StatusPublished, ScheduledAt: &scheduled, PublishedAt: &now},
	}

	f.repo.On("PublishScheduled", mock.Anything, now).Return(published, nil)
	f.audit.On("Record", mock.MatchedBy(func(ctx context.Context) bool {
		return auditlogs.ActorFromContext(ctx) == nil
	}), auditlogs.ActionPostAutoPublished, auditlogs.ResourcePost, mock.Anything, mock.Anything).Return()
	f.notifier.On("NotifyAdmins", mock.Anything, notifications.TypePostPublished, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp down"))

	ctx := auditlogs.WithActor(context.Background(), &auditlogs.Actor{UserID: uuid.NewString()})
	n, err := f.service.PublishScheduled(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	f.audit.AssertNumberOfCalls(t, "Record", 2)
	f.notifier.AssertNumberOfCalls(t, "NotifyAdmins", 2)
}

func TestPostService_PublishScheduledRepositoryError(t *testing.T) {
	f := newPostServiceFixture(t)
	f.repo.On("PublishScheduled", mock.Anything, mock.Anything).Return(nil, errors.New("locked"))

	_, err := f.service.PublishScheduled(context.Background(), time.Now())
	assert.ErrorContains(t, err, "locked")
	f.audit.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPostService_CreateWithTakenSlug(t *testing.T) {
	f := newPostServiceFixture(t)
	f.repo.On("SlugExists", mock.Anything, "taken", "").Return(true, nil)

	_, err := f.service.Create(context.Background(), uuid.NewString(), &posts.PostInput{Title: "Hello", Slug: "taken", Content: "x"})
	assert.ErrorIs(t, err, errs.ErrConflict)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostService_CreateDerivesExcerptAndReadingTime(t *testing.T) {
	f := newPostServiceFixture(t)
	f.repo.On("SlugExists", mock.Anything, mock.Anything, "").Return(false, nil)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*posts.Post")).Return(nil)
	f.audit.On("Record", mock.Anything, auditlogs.ActionPostCreated, auditlogs.ResourcePost, mock.Anything, mock.Anything).Return()

	words := make([]byte, 0, 401*5)
	for i := 0; i < 401; i++ {
		words = append(words, "word "...)
	}

	post, err := f.service.Create(context.Background(), uuid.NewString(), &posts.PostInput{
		Title:   "Long read",
		Content: string(words),
		Status:  posts.StatusPublished,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, post.ReadingTime)
	assert.LessOrEqual(t, len([]rune(post.Excerpt)), posts.ExcerptLength)
	assert.Contains(t, post.Excerpt, "…")
	assert.NotNil(t, post.PublishedAt)
}

func TestPostService_GetBySlugHidesDrafts(t *testing.T) {
	f := newPostServiceFixture(t)
	f.repo.On("GetBySlug", mock.Anything, "draft").Return(&posts.Post{ID: "1", Status: posts.StatusDraft}, nil)

	_, err := f.service.GetBySlug(context.Background(), "draft")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	f.repo.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
}
