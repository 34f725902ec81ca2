package bankincome

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/contasimple/internal/notify"
	"github.com/MrJamesThe3rd/contasimple/internal/textfilter"
)

// Status is the reconciliation state of a deposit.
type Status string

const (
	StatusConfirmed Status = "confirmado"
	StatusPending   Status = "pendiente"
	StatusRejected  Status = "rechazado"
)

var Statuses = []Status{StatusPending, StatusConfirmed, StatusRejected}

func (s Status) Label() string {
	switch s {
	case StatusConfirmed:
		return "Confirmado"
	case StatusPending:
		return "Pendiente"
	case StatusRejected:
		return "Rechazado"
	}

	return string(s)
}

// Banks is the fixed list offered by the bank income form.
var Banks = []string{
	"Bancolombia",
	"Banco de Bogotá",
	"Davivienda",
	"BBVA Colombia",
	"Banco Popular",
	"Banco Caja Social",
	"Banco AV Villas",
	"Banco Falabella",
	"Nequi",
	"Daviplata",
	"Otros",
}

var (
	ErrNotFound     = errors.New("bank income not found")
	ErrNotPending   = errors.New("bank income is not pending")
	ErrUnknownField = errors.New("unknown bank income field")
)

// BankIncome is a deposit seen on a bank account. ConfirmedDate is set exactly
// when Status is StatusConfirmed.
type BankIncome struct {
	ID            string
	Date          time.Time
	Bank          string
	AccountNumber string
	Amount        decimal.Decimal
	Concept       string
	Reference     string
	Status        Status
	ConfirmedDate *time.Time
	CreatedAt     time.Time
}

// Confirm marks a pending deposit as confirmed on the given day.
func (b *BankIncome) Confirm(today time.Time) error {
	if b.Status != StatusPending {
		return ErrNotPending
	}

	b.Status = StatusConfirmed
	b.ConfirmedDate = &today

	return nil
}

// Today returns the calendar day of t, as a date at UTC midnight.
func Today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Filter keeps the deposits whose bank, concept or reference contains term.
func Filter(incomes []*BankIncome, term string) []*BankIncome {
	return textfilter.Apply(incomes, term, func(b *BankIncome) []string {
		return []string{b.Bank, b.Concept, b.Reference}
	})
}

func Created() notify.Notification {
	return notify.New("Ingreso registrado", "El ingreso bancario ha sido registrado exitosamente.")
}

func Confirmed() notify.Notification {
	return notify.New("Ingreso confirmado", "El ingreso bancario ha sido confirmado exitosamente.")
}
