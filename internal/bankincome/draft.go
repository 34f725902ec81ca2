package bankincome

import (
	"fmt"
	"slices"
	"time"

	"github.com/MrJamesThe3rd/contasimple/internal/money"
	"github.com/MrJamesThe3rd/contasimple/internal/validation"
)

const (
	FieldDate          = "fecha"
	FieldBank          = "banco"
	FieldAccountNumber = "numeroCuenta"
	FieldAmount        = "monto"
	FieldConcept       = "concepto"
	FieldReference     = "referencia"
	FieldStatus        = "estado"
)

// Draft holds the "Registrar Nuevo Ingreso Bancario" form.
type Draft struct {
	Date          string `json:"fecha" validate:"required,datetime=2006-01-02"`
	Bank          string `json:"banco"`
	AccountNumber string `json:"numeroCuenta" validate:"required"`
	Amount        string `json:"monto" validate:"required"`
	Concept       string `json:"concepto" validate:"required"`
	Reference     string `json:"referencia" validate:"required"`
	Status        Status `json:"estado" validate:"required,oneof=confirmado pendiente rechazado"`
}

func NewDraft() Draft {
	return Draft{Status: StatusPending}
}

func (d Draft) Get(field string) string {
	switch field {
	case FieldDate:
		return d.Date
	case FieldBank:
		return d.Bank
	case FieldAccountNumber:
		return d.AccountNumber
	case FieldAmount:
		return d.Amount
	case FieldConcept:
		return d.Concept
	case FieldReference:
		return d.Reference
	case FieldStatus:
		return string(d.Status)
	}

	return ""
}

func (d *Draft) Set(field, value string) error {
	switch field {
	case FieldDate:
		d.Date = value
	case FieldBank:
		d.Bank = value
	case FieldAccountNumber:
		d.AccountNumber = value
	case FieldAmount:
		d.Amount = value
	case FieldConcept:
		d.Concept = value
	case FieldReference:
		d.Reference = value
	case FieldStatus:
		d.Status = Status(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return nil
}

// Params validates the draft. A deposit registered as already confirmed takes its
// own date as the confirmation date.
func (d Draft) Params() (CreateParams, error) {
	if err := validation.Struct(d); err != nil {
		return CreateParams{}, err
	}

	if d.Bank != "" && !slices.Contains(Banks, d.Bank) {
		return CreateParams{}, fmt.Errorf("%w: %s %q no es un banco conocido", validation.ErrInvalid, FieldBank, d.Bank)
	}

	date, err := time.Parse(time.DateOnly, d.Date)
	if err != nil {
		return CreateParams{}, fmt.Errorf("%s: %w", FieldDate, err)
	}

	amount, err := money.Parse(d.Amount)
	if err != nil {
		return CreateParams{}, fmt.Errorf("%s: %w", FieldAmount, err)
	}

	params := CreateParams{
		Date:          date,
		Bank:          d.Bank,
		AccountNumber: d.AccountNumber,
		Amount:        amount,
		Concept:       d.Concept,
		Reference:     d.Reference,
		Status:        d.Status,
	}
	if d.Status == StatusConfirmed {
		params.ConfirmedDate = &date
	}

	return params, nil
}
