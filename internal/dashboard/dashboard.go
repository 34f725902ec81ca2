// Package dashboard holds the figures shown on the landing page. They are sample
// values and are not computed from the ledgers.
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
)

type ActivityKind string

const (
	KindSale    ActivityKind = "venta"
	KindExpense ActivityKind = "gasto"
	KindIncome  ActivityKind = "ingreso"
)

type Stat struct {
	Title string          `json:"titulo"`
	Value decimal.Decimal `json:"valor"`
	// Change against the previous month, in percent.
	Change decimal.Decimal `json:"variacion"`
	// Whether the change is good news; expenses going up is not.
	Favorable bool `json:"favorable"`
}

// ChangeLabel renders the delta line, e.g. "+12.5% vs mes anterior".
func (s Stat) ChangeLabel() string {
	sign := "+"
	if s.Change.IsNegative() {
		sign = ""
	}

	return sign + s.Change.StringFixed(1) + "% vs mes anterior"
}

// Activity is one line of "Actividad Reciente". Amount is signed: expenses are negative.
type Activity struct {
	ID          int             `json:"id"`
	Kind        ActivityKind    `json:"tipo"`
	Description string          `json:"descripcion"`
	Amount      decimal.Decimal `json:"monto"`
	Date        time.Time       `json:"fecha"`
}

type Dashboard struct {
	Period       string     `json:"periodo"`
	Stats        []Stat     `json:"estadisticas"`
	QuickActions []string   `json:"accionesRapidas"`
	Recent       []Activity `json:"actividadReciente"`
}

const (
	ActionRegisterSale  = "Registrar Venta"
	ActionAddExpense    = "Agregar Gasto"
	ActionConfirmIncome = "Confirmar Ingreso"
)

func day(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func Static() Dashboard {
	return Dashboard{
		Period: "Enero 2024",
		Stats: []Stat{
			{Title: "Total Ventas", Value: decimal.NewFromInt(15420000), Change: decimal.RequireFromString("12.5"), Favorable: true},
			{Title: "Total Gastos", Value: decimal.NewFromInt(8750000), Change: decimal.RequireFromString("8.2")},
			{Title: "Ingresos Bancarios", Value: decimal.NewFromInt(14200000), Change: decimal.RequireFromString("15.3"), Favorable: true},
			{Title: "Utilidad Neta", Value: decimal.NewFromInt(6670000), Change: decimal.RequireFromString("18.7"), Favorable: true},
		},
		QuickActions: []string{ActionRegisterSale, ActionAddExpense, ActionConfirmIncome},
		Recent: []Activity{
			{ID: 1, Kind: KindSale, Description: "Venta de servicios - Cliente ABC", Amount: decimal.NewFromInt(2500000), Date: day("2024-01-15")},
			{ID: 2, Kind: KindExpense, Description: "Compra de suministros de oficina", Amount: decimal.NewFromInt(-450000), Date: day("2024-01-14")},
			{ID: 3, Kind: KindIncome, Description: "Transferencia bancaria confirmada", Amount: decimal.NewFromInt(2500000), Date: day("2024-01-14")},
			{ID: 4, Kind: KindExpense, Description: "Pago de servicios públicos", Amount: decimal.NewFromInt(-320000), Date: day("2024-01-13")},
		},
	}
}
