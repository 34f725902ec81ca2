package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seed returns the sample sales a fresh session starts with, newest first.
func Seed() []*Sale {
	return []*Sale{
		{
			ID:          "1",
			Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Client:      "Empresa ABC SAS",
			Description: "Servicios de consultoría empresarial",
			Subtotal:    decimal.NewFromInt(2100000),
			VAT:         decimal.NewFromInt(399000),
			Total:       decimal.NewFromInt(2499000),
			Status:      StatusPaid,
		},
		{
			ID:          "2",
			Date:        time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
			Client:      "Comercial XYZ Ltda",
			Description: "Desarrollo de software personalizado",
			Subtotal:    decimal.NewFromInt(5000000),
			VAT:         decimal.NewFromInt(950000),
			Total:       decimal.NewFromInt(5950000),
			Status:      StatusPending,
		},
	}
}
