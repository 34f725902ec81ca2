package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=sale
type Repository interface {
	Create(ctx context.Context, s *Sale) error
	List(ctx context.Context) ([]*Sale, error)
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
	Client      string
	Description string
	Subtotal    decimal.Decimal
	VAT         decimal.Decimal
	Status      Status
}

type ListFilter struct {
	Search string
}

// Create registers a sale at the top of the ledger.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Sale, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating sale id: %w", err)
	}

	sl := &Sale{
		ID:          id.String(),
		Date:        params.Date,
		Client:      params.Client,
		Description: params.Description,
		Subtotal:    params.Subtotal,
		VAT:         params.VAT,
		Total:       params.Subtotal.Add(params.VAT),
		Status:      params.Status,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, sl); err != nil {
		return nil, err
	}

	return sl, nil
}

// List returns the sales newest first, narrowed by the search term.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Sale, error) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}

	return Filter(sales, filter.Search), nil
}
