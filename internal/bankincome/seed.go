package bankincome

import (
	"time"

	"github.com/shopspring/decimal"
)

func Seed() []*BankIncome {
	confirmed := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	return []*BankIncome{
		{
			ID:            "1",
			Date:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Bank:          "Bancolombia",
			AccountNumber: "****-1234",
			Amount:        decimal.NewFromInt(2500000),
			Concept:       "Pago de factura - Cliente ABC",
			Reference:     "TRF-20240115-001",
			Status:        StatusConfirmed,
			ConfirmedDate: &confirmed,
		},
		{
			ID:            "2",
			Date:          time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
			Bank:          "Davivienda",
			AccountNumber: "****-5678",
			Amount:        decimal.NewFromInt(1800000),
			Concept:       "Transferencia por servicios",
			Reference:     "TRF-20240114-002",
			Status:        StatusPending,
		},
	}
}
