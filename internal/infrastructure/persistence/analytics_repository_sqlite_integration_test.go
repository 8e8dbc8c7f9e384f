//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/analytics"
	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/domain/comments"
	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordVisit(t *testing.T, tc *TestContext, path, visitor string, at time.Time) {
	t.Helper()
	visit := &analytics.PageVisit{
		ID:          uuid.NewString(),
		Path:        path,
		VisitorHash: analytics.VisitorHash(visitor, "ua", "salt"),
		CreatedAt:   at.UTC(),
	}
	require.NoError(t, tc.AnalyticsRepo.CreateVisit(context.Background(), visit))
}

func TestAnalyticsSqliteRepository_Aggregates(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	day1 := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	recordVisit(t, tc, "/", "1.1.1.1", day1)
	recordVisit(t, tc, "/", "2.2.2.2", day1)
	recordVisit(t, tc, "/blog", "1.1.1.1", day2)
	recordVisit(t, tc, "/", "1.1.1.1", day2.AddDate(0, 1, 0)) // outside range

	from := day1.Add(-time.Hour)
	to := day2.Add(time.Hour)

	total, err := tc.AnalyticsRepo.CountVisits(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	unique, err := tc.AnalyticsRepo.CountUniqueVisitors(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unique)

	top, err := tc.AnalyticsRepo.TopPages(ctx, from, to, analytics.TopPagesLimit)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, analytics.PageCount{Path: "/", Visits: 2}, top[0])
	assert.Equal(t, analytics.PageCount{Path: "/blog", Visits: 1}, top[1])

	byDay, err := tc.AnalyticsRepo.VisitsByDay(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"2026-02-01": 2, "2026-02-02": 1}, byDay)
}

func TestAnalyticsSqliteRepository_ContentCounts(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	author := CreateTestUser(t, tc, users.RoleEditor)

	post := CreateTestPost(t, tc, author.ID, "published", posts.StatusPublished)
	CreateTestPost(t, tc, author.ID, "draft", posts.StatusDraft)
	CreateTestComment(t, tc, post.ID, nil, comments.StatusPending)
	CreateTestComment(t, tc, post.ID, nil, comments.StatusApproved)

	from := time.Now().UTC().Add(-time.Hour)
	to := time.Now().UTC().Add(time.Hour)

	published, err := tc.AnalyticsRepo.CountPublishedPosts(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(1), published)

	pending, err := tc.AnalyticsRepo.CountPendingComments(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)

	leads, err := tc.AnalyticsRepo.CountNewLeads(ctx, from, to)
	require.NoError(t, err)
	assert.Zero(t, leads)
}

func TestAuditLogSqliteRepository_ListFilters(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	userID := uuid.NewString()
	postID := uuid.NewString()
	base := time.Now().UTC().Add(-time.Hour)
	entries := []*auditlogs.AuditLog{
		{ID: uuid.NewString(), UserID: &userID, Action: auditlogs.ActionPostCreated, ResourceType: auditlogs.ResourcePost, ResourceID: &postID, CreatedAt: base},
		{ID: uuid.NewString(), UserID: &userID, Action: auditlogs.ActionPostUpdated, ResourceType: auditlogs.ResourcePost, ResourceID: &postID, Metadata: map[string]interface{}{"title": "x"}, CreatedAt: base.Add(time.Minute)},
		{ID: uuid.NewString(), Action: auditlogs.ActionPostAutoPublished, ResourceType: auditlogs.ResourcePost, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, tc.AuditLogRepo.Create(ctx, e))
	}

	list, total, err := tc.AuditLogRepo.List(ctx, &auditlogs.AuditLogQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, auditlogs.ActionPostAutoPublished, list[0].Action)
	assert.Nil(t, list[0].UserID)

	list, total, err = tc.AuditLogRepo.List(ctx, &auditlogs.AuditLogQuery{UserID: userID, Action: auditlogs.ActionPostUpdated})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "x", list[0].Metadata["title"])

	from := base.Add(30 * time.Second)
	list, _, err = tc.AuditLogRepo.List(ctx, &auditlogs.AuditLogQuery{ResourceID: postID, From: &from})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, auditlogs.ActionPostUpdated, list[0].Action)
}
