package transaction

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
	require.NoError(t, db.AutoMigrate(&Transaction{}))

	return NewService(NewRepository(db))
}

func TestCreateValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Type: "donation", Amount: 100, Description: "x", RecordedBy: 1})
	assert.Error(t, err)

	_, err = svc.Create(ctx, CreateInput{Type: TypeIncome, Amount: 0, Description: "x", RecordedBy: 1})
	assert.Error(t, err)

	_, err = svc.Create(ctx, CreateInput{Type: TypeIncome, Amount: 100, Description: " ", RecordedBy: 1})
	assert.Error(t, err)
}

func TestSummaryBalances(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Type: TypeIncome, Amount: 5000, Description: "Verified donations", RecordedBy: 1})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{Type: TypeIncome, Amount: 2500, Description: "Fundraiser", RecordedBy: 1})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{Type: TypeExpense, Amount: 3000, Description: "School supplies", Category: "education", RecordedBy: 1})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7500.0, summary.TotalIncome)
	assert.Equal(t, 3000.0, summary.TotalExpense)
	assert.Equal(t, 4500.0, summary.Balance)

	expenses, err := svc.List(ctx, TypeExpense)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "School supplies", expenses[0].Description)
}
