package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

func Seed() []*Expense {
	return []*Expense{
		{
			ID:          "1",
			Date:        time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
			Vendor:      "Papelería Central",
			Description: "Compra de suministros de oficina",
			Category:    "Suministros de oficina",
			Amount:      decimal.NewFromInt(378000),
			VAT:         decimal.NewFromInt(72000),
			Total:       decimal.NewFromInt(450000),
			Deductible:  true,
			HasReceipt:  true,
		},
		{
			ID:          "2",
			Date:        time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
			Vendor:      "EPM",
			Description: "Pago de servicios públicos - Enero",
			Category:    "Servicios públicos",
			Amount:      decimal.NewFromInt(269000),
			VAT:         decimal.NewFromInt(51000),
			Total:       decimal.NewFromInt(320000),
			Deductible:  true,
			HasReceipt:  true,
		},
	}
}
