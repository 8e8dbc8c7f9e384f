//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/domain/comments"
	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentSqliteRepository_ListByPostAndStatus(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	author := CreateTestUser(t, tc, users.RoleEditor)
	post := CreateTestPost(t, tc, author.ID, "commented", posts.StatusPublished)
	other := CreateTestPost(t, tc, author.ID, "other", posts.StatusPublished)

	approved := CreateTestComment(t, tc, post.ID, nil, comments.StatusApproved)
	CreateTestComment(t, tc, post.ID, nil, comments.StatusPending)
	CreateTestComment(t, tc, other.ID, nil, comments.StatusApproved)

	list, total, err := tc.CommentRepo.List(ctx, &comments.CommentQuery{PostID: post.ID, Status: comments.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, approved.ID, list[0].ID)

	list, total, err = tc.CommentRepo.List(ctx, &comments.CommentQuery{PostID: post.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.False(t, list[0].CreatedAt.After(list[1].CreatedAt))
}

func TestCommentSqliteRepository_DeleteRemovesReplies(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	author := CreateTestUser(t, tc, users.RoleEditor)
	post := CreateTestPost(t, tc, author.ID, "thread", posts.StatusPublished)

	parent := CreateTestComment(t, tc, post.ID, nil, comments.StatusApproved)
	reply := CreateTestComment(t, tc, post.ID, &parent.ID, comments.StatusApproved)

	require.NoError(t, tc.CommentRepo.DeleteByID(ctx, parent.ID))

	_, err := tc.CommentRepo.GetByID(ctx, reply.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.ErrorIs(t, tc.CommentRepo.DeleteByID(ctx, parent.ID), errs.ErrNotFound)
}

func TestCommentSqliteRepository_UpdateStatus(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	author := CreateTestUser(t, tc, users.RoleEditor)
	post := CreateTestPost(t, tc, author.ID, "moderated", posts.StatusPublished)
	comment := CreateTestComment(t, tc, post.ID, nil, comments.StatusPending)

	comment.Status = comments.StatusSpam
	require.NoError(t, tc.CommentRepo.Update(ctx, comment))

	fetched, err := tc.CommentRepo.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, comments.StatusSpam, fetched.Status)
}
