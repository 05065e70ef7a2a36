package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type CreateInput struct {
	Type        string
	Amount      float64
	Currency    string
	Description string
	Category    string
	OccurredAt  *time.Time
	RecordedBy  uint
}

type Service interface {
	Create(ctx context.Context, input CreateInput) (*Transaction, error)
	List(ctx context.Context, txType string) ([]Transaction, error)
	Summary(ctx context.Context) (*LedgerSummary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Transaction, error) {
	txType := strings.ToLower(strings.TrimSpace(input.Type))
	if txType != TypeIncome && txType != TypeExpense {
		return nil, fmt.Errorf("type must be %q or %q", TypeIncome, TypeExpense)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("amount must be a positive number")
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "NPR"
	}
	occurredAt := time.Now()
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	t := &Transaction{
		Type:        txType,
		Amount:      input.Amount,
		Currency:    currency,
		Description: description,
		Category:    strings.TrimSpace(input.Category),
		OccurredAt:  occurredAt,
		RecordedBy:  input.RecordedBy,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) List(ctx context.Context, txType string) ([]Transaction, error) {
	if txType != "" && txType != TypeIncome && txType != TypeExpense {
		return nil, fmt.Errorf("invalid type %q", txType)
	}
	return s.repo.List(ctx, txType)
}

func (s *service) Summary(ctx context.Context) (*LedgerSummary, error) {
	return s.repo.Summary(ctx)
}
