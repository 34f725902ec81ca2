package sale

import "github.com/MrJamesThe3rd/contasimple/internal/memstore"

// NewStore returns an in-memory ledger, optionally holding the sample records.
func NewStore(seed bool) *memstore.Store[Sale] {
	var records []*Sale
	if seed {
		records = Seed()
	}

	return memstore.New(func(s *Sale) string { return s.ID }, ErrNotFound, records...)
}
