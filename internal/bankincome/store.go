package bankincome

import "github.com/MrJamesThe3rd/contasimple/internal/memstore"

// NewStore returns an in-memory ledger, optionally holding the sample records.
func NewStore(seed bool) *memstore.Store[BankIncome] {
	var records []*BankIncome
	if seed {
		records = Seed()
	}

	return memstore.New(func(b *BankIncome) string { return b.ID }, ErrNotFound, records...)
}
