package transaction

import "time"

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is one ledger entry published for transparency: verified
// donation income and charity spending.
type Transaction struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Type        string    `gorm:"size:20;not null;index" json:"type"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Currency    string    `gorm:"size:10;not null;default:NPR" json:"currency"`
	Description string    `gorm:"size:500;not null" json:"description"`
	Category    string    `gorm:"size:100" json:"category,omitempty"`
	OccurredAt  time.Time `gorm:"not null;index" json:"occurred_at"`
	RecordedBy  uint      `gorm:"not null" json:"recorded_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// LedgerSummary is totals for the public transparency page.
type LedgerSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}
