package bankincome

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bankincome
type Repository interface {
	Create(ctx context.Context, b *BankIncome) error
	List(ctx context.Context) ([]*BankIncome, error)
	Update(ctx context.Context, id string, fn func(*BankIncome) error) (*BankIncome, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	Date          time.Time
	Bank          string
	AccountNumber string
	Amount        decimal.Decimal
	Concept       string
	Reference     string
	Status        Status
	ConfirmedDate *time.Time
}

type ListFilter struct {
	Search string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*BankIncome, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating bank income id: %w", err)
	}

	b := &BankIncome{
		ID:            id.String(),
		Date:          params.Date,
		Bank:          params.Bank,
		AccountNumber: params.AccountNumber,
		Amount:        params.Amount,
		Concept:       params.Concept,
		Reference:     params.Reference,
		Status:        params.Status,
		CreatedAt:     s.now(),
	}
	if params.Status == StatusConfirmed {
		confirmed := params.Date
		if params.ConfirmedDate != nil {
			confirmed = *params.ConfirmedDate
		}

		b.ConfirmedDate = &confirmed
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*BankIncome, error) {
	incomes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing bank incomes: %w", err)
	}

	return Filter(incomes, filter.Search), nil
}

// Confirm moves a pending deposit to confirmado, stamping today as the
// confirmation date regardless of the deposit's own date.
func (s *Service) Confirm(ctx context.Context, id string, today time.Time) (*BankIncome, error) {
	b, err := s.repo.Update(ctx, id, func(b *BankIncome) error {
		return b.Confirm(Today(today))
	})
	if err != nil {
		return nil, fmt.Errorf("confirming bank income %s: %w", id, err)
	}

	return b, nil
}
