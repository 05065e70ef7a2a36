package transaction

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	List(ctx context.Context, txType string) ([]Transaction, error)
	Summary(ctx context.Context) (*LedgerSummary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) List(ctx context.Context, txType string) ([]Transaction, error) {
	var transactions []Transaction
	query := r.db.WithContext(ctx)
	if txType != "" {
		query = query.Where("type = ?", txType)
	}
	err := query.Order("occurred_at DESC").Find(&transactions).Error
	return transactions, err
}

func (r *repository) Summary(ctx context.Context) (*LedgerSummary, error) {
	var summary LedgerSummary

	row := struct{ Total float64 }{}
	if err := r.db.WithContext(ctx).Model(&Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("type = ?", TypeIncome).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	summary.TotalIncome = row.Total

	if err := r.db.WithContext(ctx).Model(&Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("type = ?", TypeExpense).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	summary.TotalExpense = row.Total

	summary.Balance = summary.TotalIncome - summary.TotalExpense
	return &summary, nil
}
