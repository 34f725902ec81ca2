package bankincome

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/contasimple/internal/bankincome"
	"github.com/MrJamesThe3rd/contasimple/internal/money"
)

type bankIncomeResponse struct {
	ID            string            `json:"id"`
	Date          string            `json:"fecha"`
	Bank          string            `json:"banco"`
	AccountNumber string            `json:"numeroCuenta"`
	Amount        decimal.Decimal   `json:"monto"`
	AmountDisplay string            `json:"monto_display"`
	Concept       string            `json:"concepto"`
	Reference     string            `json:"referencia"`
	Status        bankincome.Status `json:"estado"`
	ConfirmedDate string            `json:"fechaConfirmacion,omitempty"`
	CreatedAt     time.Time         `json:"created_at,omitzero"`
}

func toResponse(b *bankincome.BankIncome) bankIncomeResponse {
	resp := bankIncomeResponse{
		ID:            b.ID,
		Date:          b.Date.Format(time.DateOnly),
		Bank:          b.Bank,
		AccountNumber: b.AccountNumber,
		Amount:        b.Amount,
		AmountDisplay: money.Format(b.Amount),
		Concept:       b.Concept,
		Reference:     b.Reference,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}

	if b.ConfirmedDate != nil {
		resp.ConfirmedDate = b.ConfirmedDate.Format(time.DateOnly)
	}

	return resp
}

func toResponseList(incomes []*bankincome.BankIncome) []bankIncomeResponse {
	resp := make([]bankIncomeResponse, len(incomes))
	for i, b := range incomes {
		resp[i] = toResponse(b)
	}

	return resp
}
