package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	Create(ctx context.Context, e *Expense) error
	List(ctx context.Context) ([]*Expense, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	Date        time.Time
	Vendor      string
	Description string
	Category    string
	Amount      decimal.Decimal
	VAT         decimal.Decimal
	Deductible  bool
	HasReceipt  bool
}

type ListFilter struct {
	Search string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating expense id: %w", err)
	}

	e := &Expense{
		ID:          id.String(),
		Date:        params.Date,
		Vendor:      params.Vendor,
		Description: params.Description,
		Category:    params.Category,
		Amount:      params.Amount,
		VAT:         params.VAT,
		Total:       params.Amount.Add(params.VAT),
		Deductible:  params.Deductible,
		HasReceipt:  params.HasReceipt,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Expense, error) {
	expenses, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	return Filter(expenses, filter.Search), nil
}
