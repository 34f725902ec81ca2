package report

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeGeneralSummary Type = "resumen-general"
	TypeSalesDetail    Type = "ventas-detallado"
	TypeExpensesDetail Type = "gastos-detallado"
	TypeBankIncomes    Type = "ingresos-bancarios"
	TypeVATReturn      Type = "declaracion-iva"
)

var Types = []Type{TypeGeneralSummary, TypeSalesDetail, TypeExpensesDetail, TypeBankIncomes, TypeVATReturn}

func (t Type) Label() string {
	switch t {
	case TypeGeneralSummary:
		return "Resumen General"
	case TypeSalesDetail:
		return "Ventas Detallado"
	case TypeExpensesDetail:
		return "Gastos Detallado"
	case TypeBankIncomes:
		return "Ingresos Bancarios"
	case TypeVATReturn:
		return "Declaración IVA"
	}

	return string(t)
}

type Period string

const (
	PeriodCurrentMonth   Period = "mes-actual"
	PeriodPreviousMonth  Period = "mes-anterior"
	PeriodCurrentQuarter Period = "trimestre-actual"
	PeriodCurrentYear    Period = "año-actual"
	PeriodCustom         Period = "personalizado"
)

var Periods = []Period{PeriodCurrentMonth, PeriodPreviousMonth, PeriodCurrentQuarter, PeriodCurrentYear, PeriodCustom}

func (p Period) Label() string {
	switch p {
	case PeriodCurrentMonth:
		return "Mes Actual"
	case PeriodPreviousMonth:
		return "Mes Anterior"
	case PeriodCurrentQuarter:
		return "Trimestre Actual"
	case PeriodCurrentYear:
		return "Año Actual"
	case PeriodCustom:
		return "Personalizado"
	}

	return string(p)
}

// Selection is what the "Configuración de Reportes" card holds. From and To are
// free text and only meaningful for PeriodCustom.
type Selection struct {
	Type   Type   `json:"tipo"`
	Period Period `json:"periodo"`
	From   string `json:"fechaInicio,omitempty"`
	To     string `json:"fechaFin,omitempty"`
}

func DefaultSelection() Selection {
	return Selection{Type: TypeGeneralSummary, Period: PeriodCurrentMonth}
}

// Valid reports whether type and period are known values.
func (s Selection) Valid() bool {
	return slices.Contains(Types, s.Type) && slices.Contains(Periods, s.Period)
}

// Describe renders the selection for the configuration line,
// e.g. "Resumen General · Personalizado (2024-01-01 a 2024-01-31)".
func (s Selection) Describe() string {
	out := s.Type.Label() + " · " + s.Period.Label()
	if s.Period == PeriodCustom && (s.From != "" || s.To != "") {
		out += fmt.Sprintf(" (%s a %s)", orDash(s.From), orDash(s.To))
	}

	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

type Summary struct {
	Sales       decimal.Decimal `json:"totalVentas"`
	Expenses    decimal.Decimal `json:"totalGastos"`
	Income      decimal.Decimal `json:"totalIngresos"`
	GrossProfit decimal.Decimal `json:"utilidadBruta"`
	SalesVAT    decimal.Decimal `json:"ivaVentas"`
	ExpenseVAT  decimal.Decimal `json:"ivaGastos"`
	VATPayable  decimal.Decimal `json:"ivaAPagar"`
}

type CategoryShare struct {
	Category string          `json:"categoria"`
	Amount   decimal.Decimal `json:"monto"`
	Percent  decimal.Decimal `json:"porcentaje"`
}

type Month struct {
	Label    string          `json:"mes"`
	Sales    decimal.Decimal `json:"ventas"`
	Expenses decimal.Decimal `json:"gastos"`
	Profit   decimal.Decimal `json:"utilidad"`
}

// Margin is profit over sales as a percentage, rounded to one decimal.
func (m Month) Margin() decimal.Decimal {
	if m.Sales.IsZero() {
		return decimal.Zero
	}

	return m.Profit.Div(m.Sales).Mul(decimal.NewFromInt(100)).Round(1)
}

// Report is the content of the reports page. None of it is derived from the
// ledgers; the selection only changes the labels.
type Report struct {
	Selection          Selection       `json:"seleccion"`
	PeriodLabel        string          `json:"etiquetaPeriodo"`
	Summary            Summary         `json:"resumen"`
	SalesByCategory    []CategoryShare `json:"ventasPorCategoria"`
	ExpensesByCategory []CategoryShare `json:"gastosPorCategoria"`
	Months             []Month         `json:"resumenMensual"`
}
