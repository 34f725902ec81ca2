package importer

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/MrJamesThe3rd/contasimple/internal/bankincome"
)

// IncomeCreator is the part of the bank income ledger the importer writes to.
type IncomeCreator interface {
	Create(ctx context.Context, params bankincome.CreateParams) (*bankincome.BankIncome, error)
}

type Service struct {
	incomes IncomeCreator
}

func NewService(incomes IncomeCreator) *Service {
	return &Service{incomes: incomes}
}

// Parse reads a statement without registering anything.
func (s *Service) Parse(bank Bank, r io.Reader) ([]Entry, error) {
	p, ok := ProfileFor(bank)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBank, bank)
	}

	return p.Parse(r)
}

// Import registers every credit of the statement as a pending bank income on the
// given account.
func (s *Service) Import(ctx context.Context, bank Bank, account string, r io.Reader) ([]*bankincome.BankIncome, error) {
	p, ok := ProfileFor(bank)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBank, bank)
	}

	entries, err := p.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s statement: %w", p.Name, err)
	}

	return s.Register(ctx, bank, account, entries)
}

// Register creates a pending bank income per entry. Entries are created oldest
// first so the ledger ends up newest first; an entry without reference gets
// IMP-<date>-<n>.
func (s *Service) Register(ctx context.Context, bank Bank, account string, entries []Entry) ([]*bankincome.BankIncome, error) {
	p, ok := ProfileFor(bank)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBank, bank)
	}

	entries = slices.Clone(entries)
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.Date.Compare(b.Date)
	})

	created := make([]*bankincome.BankIncome, 0, len(entries))

	for i, e := range entries {
		ref := cmp.Or(e.Reference, fmt.Sprintf("IMP-%s-%03d", e.Date.Format("20060102"), i+1))

		b, err := s.incomes.Create(ctx, bankincome.CreateParams{
			Date:          e.Date,
			Bank:          p.Name,
			AccountNumber: account,
			Amount:        e.Amount,
			Concept:       e.Description,
			Reference:     ref,
			Status:        bankincome.StatusPending,
		})
		if err != nil {
			return created, fmt.Errorf("registering entry %s: %w", ref, err)
		}

		created = append(created, b)
	}

	return created, nil
}
