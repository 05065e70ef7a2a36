package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupService(t *testing.T) Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Notification{}))

	return NewService(NewRepository(db))
}

func TestNotifyAndMarkRead(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.NotifyDonationVerified(ctx, 1, 2500, "NPR"))
	require.NoError(t, svc.NotifyDonationRejected(ctx, 1, 100, "NPR"))
	require.NoError(t, svc.NotifyDonationVerified(ctx, 2, 50, "NPR"))

	mine, err := svc.ListForUser(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	unread, err := svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	require.NoError(t, svc.MarkRead(ctx, 1, mine[0].ID))
	unread, err = svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	// Another user's notification is off limits.
	other, err := svc.ListForUser(ctx, 2, false)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.ErrorIs(t, svc.MarkRead(ctx, 1, other[0].ID), ErrNotFound)

	require.NoError(t, svc.MarkAllRead(ctx, 1))
	unread, err = svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, unread)
}
