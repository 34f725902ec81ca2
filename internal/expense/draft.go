package expense

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/MrJamesThe3rd/contasimple/internal/money"
	"github.com/MrJamesThe3rd/contasimple/internal/validation"
)

const (
	FieldDate        = "fecha"
	FieldVendor      = "proveedor"
	FieldDescription = "descripcion"
	FieldCategory    = "categoria"
	FieldAmount      = "monto"
	FieldVAT         = "iva"
	FieldDeductible  = "deducible"
	FieldHasReceipt  = "comprobante"
)

// Draft holds the "Registrar Nuevo Gasto" form. The category is optional.
type Draft struct {
	Date        string `json:"fecha" validate:"required,datetime=2006-01-02"`
	Vendor      string `json:"proveedor" validate:"required"`
	Description string `json:"descripcion" validate:"required"`
	Category    string `json:"categoria"`
	Amount      string `json:"monto" validate:"required"`
	VAT         string `json:"iva" validate:"required"`
	Deductible  bool   `json:"deducible"`
	HasReceipt  bool   `json:"comprobante"`
}

// NewDraft returns an empty form: deductible, without receipt.
func NewDraft() Draft {
	return Draft{Deductible: true}
}

func (d Draft) Get(field string) string {
	switch field {
	case FieldDate:
		return d.Date
	case FieldVendor:
		return d.Vendor
	case FieldDescription:
		return d.Description
	case FieldCategory:
		return d.Category
	case FieldAmount:
		return d.Amount
	case FieldVAT:
		return d.VAT
	case FieldDeductible:
		return strconv.FormatBool(d.Deductible)
	case FieldHasReceipt:
		return strconv.FormatBool(d.HasReceipt)
	}

	return ""
}

// Set updates a field. Changing the amount recomputes the IVA at the fixed rate
// when the amount parses. Flags take "true"/"false".
func (d *Draft) Set(field, value string) error {
	switch field {
	case FieldDate:
		d.Date = value
	case FieldVendor:
		d.Vendor = value
	case FieldDescription:
		d.Description = value
	case FieldCategory:
		d.Category = value
	case FieldAmount:
		d.Amount = value
		if amount, err := money.Parse(value); err == nil {
			d.VAT = money.VAT(amount).String()
		}
	case FieldVAT:
		d.VAT = value
	case FieldDeductible, FieldHasReceipt:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}

		if field == FieldDeductible {
			d.Deductible = b
		} else {
			d.HasReceipt = b
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return nil
}

func (d Draft) Params() (CreateParams, error) {
	if err := validation.Struct(d); err != nil {
		return CreateParams{}, err
	}

	if d.Category != "" && !slices.Contains(Categories, d.Category) {
		return CreateParams{}, fmt.Errorf("%w: %s %q no es una categoría conocida", validation.ErrInvalid, FieldCategory, d.Category)
	}

	date, err := time.Parse(time.DateOnly, d.Date)
	if err != nil {
		return CreateParams{}, fmt.Errorf("%s: %w", FieldDate, err)
	}

	amount, err := money.Parse(d.Amount)
	if err != nil {
		return CreateParams{}, fmt.Errorf("%s: %w", FieldAmount, err)
	}

	vat, err := money.Parse(d.VAT)
	if err != nil {
		return CreateParams{}, fmt.Errorf("%s: %w", FieldVAT, err)
	}

	return CreateParams{
		Date:        date,
		Vendor:      d.Vendor,
		Description: d.Description,
		Category:    d.Category,
		Amount:      amount,
		VAT:         vat,
		Deductible:  d.Deductible,
		HasReceipt:  d.HasReceipt,
	}, nil
}
