//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/domain/events"
	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreateDerivesFields(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	author := persistence.CreateTestUser(t, services.DBContext, users.RoleEditor)
	ctx := ActorContext(author)

	post, err := services.PostService.Create(ctx, author.ID, &posts.PostInput{
		Title:   "Héllo, Wörld!",
		Content: "# Intro\n\nSome **bold** words.",
		Tags:    []string{"go", " go ", "web"},
	})
	require.NoError(t, err)

	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, posts.StatusDraft, post.Status)
	assert.Equal(t, "Intro Some bold words.", post.Excerpt)
	assert.Equal(t, 1, post.ReadingTime)
	assert.Equal(t, []string{"go", "web"}, post.Tags)
	assert.Nil(t, post.PublishedAt)

	entries, _, err := services.AuditLogService.List(context.Background(), &auditlogs.AuditLogQuery{ResourceID: post.ID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, auditlogs.ActionPostCreated, entries[0].Action)
	assert.Equal(t, author.ID, *entries[0].UserID)
}

func TestPostService_CreateConvertsHTML(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	author := persistence.CreateTestUser(t, services.DBContext, users.RoleEditor)

	post, err := services.PostService.Create(ActorContext(author), author.ID, &posts.PostInput{
		Title:         "From the editor",
		Content:       "<h2>Heading</h2><p>Hello <em>there</em></p>",
		ContentFormat: posts.FormatHTML,
	})
	require.NoError(t, err)

	assert.Contains(t, post.Content, "## Heading")
	assert.Equal(t, "Heading Hello there", post.Excerpt)
}

func TestPostService_SlugCollisions(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	author := persistence.CreateTestUser(t, services.DBContext, users.RoleEditor)
	ctx := ActorContext(author)

	var slugs []string
	for i := 0; i < 3; i++ {
		post, err := services.PostService.Create(ctx, author.ID, &posts.PostInput{Title: "Same Title", Content: "x"})
		require.NoError(t, err)
		slugs = append(slugs, post.Slug)
	}
	assert.Equal(t, []string{"same-title", "same-title-2", "same-title-3"}, slugs)

	_, err := services.PostService.Create(ctx, author.ID, &posts.PostInput{Title: "Other", Slug: "same-title", Content: "x"})
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestPostService_StatusRules(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	author := persistence.CreateTestUser(t, services.DBContext, users.RoleEditor)
	ctx := ActorContext(author)

	past := time.Now().Add(-time.Hour)
	_, err := services.PostService.Create(ctx, author.ID, &posts.PostInput{Title: "Late", Content: "x", Status: posts.StatusScheduled, ScheduledAt: &past})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = services.PostService.Create(ctx, author.ID, &posts.PostInput{Title: "Missing", Content: "x", Status: posts.StatusScheduled})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	future := time.Now().Add(time.Hour)
	scheduled, err := services.PostService.Create(ctx, author.ID, &posts.PostInput{Title: "Soon", Content: "x", Status: posts.StatusScheduled, ScheduledAt: &future})
	require.NoError(t, err)
	require.NotNil(t, scheduled.ScheduledAt)

	draft := posts.StatusDraft
	updated, err := services.PostService.Update(ctx, scheduled.ID, &posts.PostUpdate{Status: &draft})
	require.NoError(t, err)
	assert.Nil(t, updated.ScheduledAt)

	published, err := services.PostService.Publish(ctx, scheduled.ID)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstPublishedAt := *published.PublishedAt

	again, err := services.PostService.Publish(ctx, scheduled.ID)
	require.NoError(t, err)
	assert.True(t, firstPublishedAt.Equal(*again.PublishedAt))

	unpublished, err := services.PostService.Unpublish(ctx, scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, posts.StatusDraft, unpublished.Status)
	assert.Nil(t, unpublished.PublishedAt)

	rescheduled, err := services.PostService.Update(ctx, scheduled.ID, &posts.PostUpdate{Status: stringPtr(posts.StatusScheduled), ScheduledAt: &future})
	require.NoError(t, err)
	require.NotNil(t, rescheduled.ScheduledAt)

	viaUpdate, err := services.PostService.Update(ctx, scheduled.ID, &posts.PostUpdate{Status: stringPtr(posts.StatusPublished)})
	require.NoError(t, err)
	assert.Equal(t, posts.StatusPublished, viaUpdate.Status)
	assert.Nil(t, viaUpdate.ScheduledAt)
	require.NotNil(t, viaUpdate.PublishedAt)

	stored, err := services.PostService.GetByID(ctx, scheduled.ID, true)
	require.NoError(t, err)
	assert.Nil(t, stored.ScheduledAt)
}

func TestPostService_UpdatePartial(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	author := persistence.CreateTestUser(t, services.DBContext, users.RoleEditor)
	ctx := ActorContext(author)

	post, err := services.PostService.Create(ctx, author.ID, &posts.PostInput{
		Title:   "Original",
		Excerpt: "Hand written",
		Content: "body",
		Tags:    []string{"go"},
	})
	require.NoError(t, err)

	title := "Renamed"
	updated, err := services.PostService.Update(ctx, post.ID, &posts.PostUpdate{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "original", updated.Slug)
	assert.Equal(t, "Hand written", updated.Excerpt)
	assert.Equal(t, []string{"go"}, updated.Tags)

	emptySlug := ""
	updated, err = services.PostService.Update(ctx, post.ID, &posts.PostUpdate{Slug: &emptySlug})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Slug)

	_, err = services.PostService.Update(ctx, "00000000-0000-4000-8000-000000000000", &posts.PostUpdate{Title: &title})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestPostService_VisibilityAndViews(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	author := persistence.CreateTestUser(t, services.DBContext, users.RoleEditor)
	draft := persistence.CreateTestPost(t, services.DBContext, author.ID, "draft-post", posts.StatusDraft)
	live := persistence.CreateTestPost(t, services.DBContext, author.ID, "live-post", posts.StatusPublished)
	ctx := context.Background()

	_, err := services.PostService.GetByID(ctx, draft.ID, false)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = services.PostService.GetByID(ctx, draft.ID, true)
	assert.NoError(t, err)

	_, err = services.PostService.GetBySlug(ctx, draft.Slug)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	got, err := services.PostService.GetBySlug(ctx, live.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Views)

	got, err = services.PostService.GetBySlug(ctx, live.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Views)

	list, total, err := services.PostService.List(ctx, &posts.PostQuery{Status: posts.StatusDraft}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, live.ID, list[0].ID)

	_, total, err = services.PostService.List(ctx, &posts.PostQuery{}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestPostService_DeleteCascadesComments(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	author := persistence.CreateTestUser(t, services.DBContext, users.RoleEditor)
	post := persistence.CreateTestPost(t, services.DBContext, author.ID, "doomed", posts.StatusPublished)
	comment := persistence.CreateTestComment(t, services.DBContext, post.ID, nil, "approved")

	require.NoError(t, services.PostService.Delete(ActorContext(author), post.ID))

	_, err := services.DBContext.CommentRepo.GetByID(context.Background(), comment.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	err = services.PostService.Delete(ActorContext(author), post.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestPostService_PublishScheduled(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	admin := persistence.CreateTestUser(t, services.DBContext, users.RoleAdmin)
	author := persistence.CreateTestUser(t, services.DBContext, users.RoleEditor)
	due := persistence.CreateTestPost(t, services.DBContext, author.ID, "due", posts.StatusScheduled)
	later := persistence.CreateTestPost(t, services.DBContext, author.ID, "later", posts.StatusScheduled)

	stream, cancel := services.Hub.Subscribe(admin.ID)
	defer cancel()

	// due is scheduled an hour from now, later moves further out
	laterAt := time.Now().Add(48 * time.Hour)
	later.ScheduledAt = &laterAt
	require.NoError(t, services.DBContext.PostRepo.Update(context.Background(), later))

	now := time.Now().Add(2 * time.Hour).UTC()
	n, err := services.PostService.PublishScheduled(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = services.PostService.PublishScheduled(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	got, err := services.PostService.GetByID(context.Background(), due.ID, true)
	require.NoError(t, err)
	assert.Equal(t, posts.StatusPublished, got.Status)
	require.NotNil(t, got.PublishedAt)
	assert.WithinDuration(t, now, *got.PublishedAt, time.Second)

	got, err = services.PostService.GetByID(context.Background(), later.ID, true)
	require.NoError(t, err)
	assert.Equal(t, posts.StatusScheduled, got.Status)

	entries, _, err := services.AuditLogService.List(context.Background(), &auditlogs.AuditLogQuery{Action: auditlogs.ActionPostAutoPublished})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].UserID)

	select {
	case n := <-stream:
		assert.Equal(t, notifications.TypePostPublished, n.Type)
		assert.Equal(t, admin.ID, n.UserID)
	case <-time.After(time.Second):
		t.Fatal("expected a live notification")
	}

	assert.Contains(t, services.Publisher.Subjects(), events.SubjectPostPublished)
}
