//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotification(userID string) *notifications.Notification {
	return &notifications.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      notifications.TypeLeadCreated,
		Title:     "New lead",
		Message:   "Grace sent a message",
		CreatedAt: time.Now().UTC(),
	}
}

func TestNotificationSqliteRepository_ReadState(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	owner := uuid.NewString()
	stranger := uuid.NewString()
	n1 := newTestNotification(owner)
	n2 := newTestNotification(owner)
	n3 := newTestNotification(stranger)
	require.NoError(t, tc.NotificationRepo.CreateBatch(ctx, []*notifications.Notification{n1, n2, n3}))

	count, err := tc.NotificationRepo.CountUnread(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// other users cannot touch the notification
	assert.ErrorIs(t, tc.NotificationRepo.MarkRead(ctx, stranger, n1.ID, time.Now()), errs.ErrNotFound)
	_, err = tc.NotificationRepo.GetByID(ctx, stranger, n1.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, tc.NotificationRepo.MarkRead(ctx, owner, n1.ID, time.Now()))
	fetched, err := tc.NotificationRepo.GetByID(ctx, owner, n1.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Read)
	assert.NotNil(t, fetched.ReadAt)

	list, total, err := tc.NotificationRepo.List(ctx, &notifications.NotificationQuery{UserID: owner, Unread: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, n2.ID, list[0].ID)

	updated, err := tc.NotificationRepo.MarkAllRead(ctx, owner, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	count, err = tc.NotificationRepo.CountUnread(ctx, stranger)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, tc.NotificationRepo.DeleteByID(ctx, owner, n2.ID))
	assert.ErrorIs(t, tc.NotificationRepo.DeleteByID(ctx, owner, n2.ID), errs.ErrNotFound)
}
