package sale

import (
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/contasimple/internal/money"
	"github.com/MrJamesThe3rd/contasimple/internal/validation"
)

// Form field names, shared by the TUI form and the JSON API.
const (
	FieldDate        = "fecha"
	FieldClient      = "cliente"
	FieldDescription = "descripcion"
	FieldSubtotal    = "subtotal"
	FieldVAT         = "iva"
	FieldStatus      = "estado"
)

// Draft holds the text of the "Registrar Nueva Venta" form until it is submitted.
type Draft struct {
	Date        string `json:"fecha" validate:"required,datetime=2006-01-02"`
	Client      string `json:"cliente" validate:"required"`
	Description string `json:"descripcion" validate:"required"`
	Subtotal    string `json:"subtotal" validate:"required"`
	VAT         string `json:"iva" validate:"required"`
	Status      Status `json:"estado" validate:"required,oneof=pagada pendiente vencida"`
}

// NewDraft returns an empty form; new sales start pending.
func NewDraft() Draft {
	return Draft{Status: StatusPending}
}

func (d Draft) Get(field string) string {
	switch field {
	case FieldDate:
		return d.Date
	case FieldClient:
		return d.Client
	case FieldDescription:
		return d.Description
	case FieldSubtotal:
		return d.Subtotal
	case FieldVAT:
		return d.VAT
	case FieldStatus:
		return string(d.Status)
	}

	return ""
}

// Set updates a field. Changing the subtotal recomputes the IVA at the fixed rate,
// overwriting whatever was typed there; an IVA typed afterwards is kept until the
// subtotal changes again. A subtotal that does not parse leaves the IVA untouched.
func (d *Draft) Set(field, value string) error {
	switch field {
	case FieldDate:
		d.Date = value
	case FieldClient:
		d.Client = value
	case FieldDescription:
		d.Description = value
	case FieldSubtotal:
		d.Subtotal = value
		if amount, err := money.Parse(value); err == nil {
			d.VAT = money.VAT(amount).String()
		}
	case FieldVAT:
		d.VAT = value
	case FieldStatus:
		d.Status = Status(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return nil
}

// Params validates the draft and converts it into creation parameters.
func (d Draft) Params() (CreateParams, error) {
	if err := validation.Struct(d); err != nil {
		return CreateParams{}, err
	}

	date, err := time.Parse(time.DateOnly, d.Date)
	if err != nil {
		return CreateParams{}, fmt.Errorf("%s: %w", FieldDate, err)
	}

	subtotal, err := money.Parse(d.Subtotal)
	if err != nil {
		return CreateParams{}, fmt.Errorf("%s: %w", FieldSubtotal, err)
	}

	vat, err := money.Parse(d.VAT)
	if err != nil {
		return CreateParams{}, fmt.Errorf("%s: %w", FieldVAT, err)
	}

	return CreateParams{
		Date:        date,
		Client:      d.Client,
		Description: d.Description,
		Subtotal:    subtotal,
		VAT:         vat,
		Status:      d.Status,
	}, nil
}
