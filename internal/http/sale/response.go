package sale

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/contasimple/internal/money"
	"github.com/MrJamesThe3rd/contasimple/internal/sale"
)

type saleResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"fecha"`
	Client       string          `json:"cliente"`
	Description  string          `json:"descripcion"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	VAT          decimal.Decimal `json:"iva"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"total_display"`
	Status       sale.Status     `json:"estado"`
	CreatedAt    time.Time       `json:"created_at,omitzero"`
}

func toResponse(s *sale.Sale) saleResponse {
	return saleResponse{
		ID:           s.ID,
		Date:         s.Date.Format(time.DateOnly),
		Client:       s.Client,
		Description:  s.Description,
		Subtotal:     s.Subtotal,
		VAT:          s.VAT,
		Total:        s.Total,
		TotalDisplay: money.Format(s.Total),
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
	}
}

func toResponseList(sales []*sale.Sale) []saleResponse {
	resp := make([]saleResponse, len(sales))
	for i, s := range sales {
		resp[i] = toResponse(s)
	}

	return resp
}
