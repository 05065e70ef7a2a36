package auditlog

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
	require.NoError(t, db.AutoMigrate(&AuditLog{}))

	return NewService(NewRepository(db))
}

func TestLogActionAndFilter(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	adminID := uint(1)
	svc.LogAction(ctx, &adminID, "donation.verify", map[string]interface{}{"donation_id": 7}, "10.0.0.1", "success")
	svc.LogAction(ctx, &adminID, "donation.reject", nil, "10.0.0.1", "success")
	svc.LogAction(ctx, nil, "donation.submit", nil, "203.0.113.9", "failure")

	all, err := svc.GetAuditLogs(ctx, AuditLogFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)

	failures, err := svc.GetAuditLogs(ctx, AuditLogFilter{Status: "failure"})
	require.NoError(t, err)
	require.Len(t, failures.Data, 1)
	assert.Equal(t, "donation.submit", failures.Data[0].Action)
	assert.Nil(t, failures.Data[0].UserID)

	byUser, err := svc.GetAuditLogs(ctx, AuditLogFilter{UserID: &adminID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), byUser.Total)
}

func TestPaginationDefaults(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		svc.LogAction(ctx, nil, "auth.login", nil, "10.0.0.1", "success")
	}

	page, err := svc.GetAuditLogs(ctx, AuditLogFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Len(t, page.Data, 20)
	assert.Equal(t, 2, page.TotalPages)
}
