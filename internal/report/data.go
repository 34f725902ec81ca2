package report

import "github.com/shopspring/decimal"

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func pct(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Static returns the sample figures shown for every selection.
func Static(sel Selection) Report {
	return Report{
		Selection:   sel,
		PeriodLabel: "Enero 2024",
		Summary: Summary{
			Sales:       d(15420000),
			Expenses:    d(8750000),
			Income:      d(14200000),
			GrossProfit: d(6670000),
			SalesVAT:    d(2929800),
			ExpenseVAT:  d(1662500),
			VATPayable:  d(1267300),
		},
		SalesByCategory: []CategoryShare{
			{Category: "Servicios de consultoría", Amount: d(8500000), Percent: pct("55.1")},
			{Category: "Desarrollo de software", Amount: d(4200000), Percent: pct("27.2")},
			{Category: "Capacitación", Amount: d(1800000), Percent: pct("11.7")},
			{Category: "Otros servicios", Amount: d(920000), Percent: pct("6.0")},
		},
		ExpensesByCategory: []CategoryShare{
			{Category: "Suministros de oficina", Amount: d(2100000), Percent: pct("24.0")},
			{Category: "Servicios públicos", Amount: d(1800000), Percent: pct("20.6")},
			{Category: "Tecnología", Amount: d(1500000), Percent: pct("17.1")},
			{Category: "Transporte", Amount: d(1200000), Percent: pct("13.7")},
			{Category: "Marketing", Amount: d(950000), Percent: pct("10.9")},
			{Category: "Otros", Amount: d(1200000), Percent: pct("13.7")},
		},
		Months: []Month{
			{Label: "Enero 2024", Sales: d(15420000), Expenses: d(8750000), Profit: d(6670000)},
			{Label: "Diciembre 2023", Sales: d(13800000), Expenses: d(7900000), Profit: d(5900000)},
			{Label: "Noviembre 2023", Sales: d(12500000), Expenses: d(7200000), Profit: d(5300000)},
			{Label: "Octubre 2023", Sales: d(14200000), Expenses: d(8100000), Profit: d(6100000)},
		},
	}
}
