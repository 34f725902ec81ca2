package expense

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/contasimple/internal/expense"
	"github.com/MrJamesThe3rd/contasimple/internal/money"
)

type expenseResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"fecha"`
	Vendor       string          `json:"proveedor"`
	Description  string          `json:"descripcion"`
	Category     string          `json:"categoria"`
	Amount       decimal.Decimal `json:"monto"`
	VAT          decimal.Decimal `json:"iva"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"total_display"`
	Deductible   bool            `json:"deducible"`
	HasReceipt   bool            `json:"comprobante"`
	CreatedAt    time.Time       `json:"created_at,omitzero"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:           e.ID,
		Date:         e.Date.Format(time.DateOnly),
		Vendor:       e.Vendor,
		Description:  e.Description,
		Category:     e.Category,
		Amount:       e.Amount,
		VAT:          e.VAT,
		Total:        e.Total,
		TotalDisplay: money.Format(e.Total),
		Deductible:   e.Deductible,
		HasReceipt:   e.HasReceipt,
		CreatedAt:    e.CreatedAt,
	}
}

func toResponseList(expenses []*expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toResponse(e)
	}

	return resp
}
