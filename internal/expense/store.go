package expense

import "github.com/MrJamesThe3rd/contasimple/internal/memstore"

// NewStore returns an in-memory ledger, optionally holding the sample records.
func NewStore(seed bool) *memstore.Store[Expense] {
	var records []*Expense
	if seed {
		records = Seed()
	}

	return memstore.New(func(e *Expense) string { return e.ID }, ErrNotFound, records...)
}
