package expense

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/contasimple/internal/notify"
	"github.com/MrJamesThe3rd/contasimple/internal/textfilter"
)

// Categories is the fixed list offered by the expense form.
var Categories = []string{
	"Suministros de oficina",
	"Servicios públicos",
	"Transporte",
	"Alimentación",
	"Tecnología",
	"Marketing",
	"Capacitación",
	"Mantenimiento",
	"Otros",
}

var (
	ErrNotFound     = errors.New("expense not found")
	ErrUnknownField = errors.New("unknown expense field")
)

// Expense is one purchase. Total is always Amount + VAT.
type Expense struct {
	ID          string
	Date        time.Time
	Vendor      string
	Description string
	Category    string
	Amount      decimal.Decimal
	VAT         decimal.Decimal
	Total       decimal.Decimal
	Deductible  bool
	HasReceipt  bool
	CreatedAt   time.Time
}

// Filter keeps the expenses whose vendor, description or category contains term.
func Filter(expenses []*Expense, term string) []*Expense {
	return textfilter.Apply(expenses, term, func(e *Expense) []string {
		return []string{e.Vendor, e.Description, e.Category}
	})
}

func Created() notify.Notification {
	return notify.New("Gasto registrado", "El gasto ha sido registrado exitosamente.")
}
