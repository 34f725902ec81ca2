package view

// Page identifies one screen of the app. The values match the ids used by the
// command line flag.
type Page string

const (
	PageDashboard  Page = "dashboard"
	PageSales      Page = "ventas"
	PageExpenses   Page = "gastos"
	PageBankIncome Page = "ingresos"
	PageReports    Page = "reportes"
)

// Pages lists the menu in display order; the number keys follow it.
var Pages = []Page{PageDashboard, PageSales, PageExpenses, PageBankIncome, PageReports}

// ParsePage returns the page for s, or PageDashboard when s is unknown.
func ParsePage(s string) Page {
	for _, p := range Pages {
		if string(p) == s {
			return p
		}
	}

	return PageDashboard
}

// MenuLabel is the sidebar entry.
func (p Page) MenuLabel() string {
	switch p {
	case PageSales:
		return "Ventas"
	case PageExpenses:
		return "Gastos"
	case PageBankIncome:
		return "Ingresos Bancarios"
	case PageReports:
		return "Reportes"
	}

	return "Dashboard"
}

func (p Page) Subtitle() string {
	switch p {
	case PageSales:
		return "Registra y gestiona todas tus ventas"
	case PageExpenses:
		return "Registra y controla todos tus gastos empresariales"
	case PageBankIncome:
		return "Confirma y gestiona todos los ingresos a tus cuentas bancarias"
	case PageReports:
		return "Genera reportes detallados de tu actividad contable"
	}

	return "Gestiona tu contabilidad de forma simple"
}

func (p Page) index() int {
	for i, q := range Pages {
		if q == p {
			return i
		}
	}

	return 0
}
