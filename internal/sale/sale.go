package sale

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/contasimple/internal/notify"
	"github.com/MrJamesThe3rd/contasimple/internal/textfilter"
)

// Status represents the collection state of a sale.
type Status string

const (
	StatusPaid    Status = "pagada"
	StatusPending Status = "pendiente"
	StatusOverdue Status = "vencida"
)

// Statuses lists every status in the order the form offers them.
var Statuses = []Status{StatusPending, StatusPaid, StatusOverdue}

func (s Status) Label() string {
	switch s {
	case StatusPaid:
		return "Pagada"
	case StatusPending:
		return "Pendiente"
	case StatusOverdue:
		return "Vencida"
	}

	return string(s)
}

var (
	ErrNotFound     = errors.New("sale not found")
	ErrUnknownField = errors.New("unknown sale field")
)

// Sale is one invoiced sale. Total is always Subtotal + VAT.
type Sale struct {
	ID          string
	Date        time.Time
	Client      string
	Description string
	Subtotal    decimal.Decimal
	VAT         decimal.Decimal
	Total       decimal.Decimal
	Status      Status
	CreatedAt   time.Time
}

// Filter keeps the sales whose client or description contains term.
func Filter(sales []*Sale, term string) []*Sale {
	return textfilter.Apply(sales, term, func(s *Sale) []string {
		return []string{s.Client, s.Description}
	})
}

// Created is the notification shown after a sale is registered.
func Created() notify.Notification {
	return notify.New("Venta registrada", "La venta ha sido registrada exitosamente.")
}
