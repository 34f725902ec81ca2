package view

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/contasimple/internal/report"
)

type ReportsModel struct {
	CommonModel
	svc *report.Service

	sel    report.Selection
	data   report.Report
	months table.Model

	// Custom range form; the bound strings live on the heap so the form keeps
	// writing to them after the model is copied.
	form     *huh.Form
	fromDate *string
	toDate   *string

	status string
}

func NewReportsModel(svc *report.Service) ReportsModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Período", Width: 16},
			{Title: "Ventas", Width: 14},
			{Title: "Gastos", Width: 14},
			{Title: "Utilidad", Width: 14},
			{Title: "Margen", Width: 8},
		}),
		table.WithHeight(7),
	)
	t.SetStyles(tableStyles())

	m := ReportsModel{svc: svc, sel: report.DefaultSelection(), months: t}
	m.refresh()

	return m
}

func (m ReportsModel) Selection() report.Selection {
	return m.sel
}

// Capturing is true while the custom range form is open.
func (m ReportsModel) Capturing() bool {
	return m.form != nil
}

func (m ReportsModel) ShortHelp() string {
	if m.form != nil {
		return "Tab: siguiente | Enter: aplicar | Esc: cancelar"
	}

	return "t: tipo de reporte | p: período | x: exportar reporte"
}

func (m ReportsModel) Init() tea.Cmd {
	return nil
}

func (m ReportsModel) Update(msg tea.Msg) (ReportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportExportedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error al exportar: %v", msg.err)
		} else {
			m.status = "Exportación solicitada: " + msg.sel.Describe()
		}

		return m, nil
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "t":
		m.sel.Type = next(report.Types, m.sel.Type)
		m.refresh()
	case "p":
		m.sel.Period = next(report.Periods, m.sel.Period)
		if m.sel.Period == report.PeriodCustom {
			return m.openRangeForm()
		}

		m.refresh()
	case "x":
		m.status = "Exportando..."
		return m, m.exportCmd()
	}

	return m, nil
}

func next[T comparable](all []T, cur T) T {
	i := slices.Index(all, cur)
	return all[(i+1)%len(all)]
}

func (m ReportsModel) openRangeForm() (ReportsModel, tea.Cmd) {
	from, to := m.sel.From, m.sel.To
	m.fromDate, m.toDate = &from, &to

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("fechaInicio").
				Title("Fecha Inicio").
				Placeholder("AAAA-MM-DD").
				Value(m.fromDate),
			huh.NewInput().
				Key("fechaFin").
				Title("Fecha Fin").
				Placeholder("AAAA-MM-DD").
				Value(m.toDate),
		),
	).WithWidth(36).WithShowHelp(false)

	m.refresh()

	return m, m.form.Init()
}

func (m ReportsModel) updateForm(msg tea.Msg) (ReportsModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.sel.From, m.sel.To = *m.fromDate, *m.toDate
		m.form = nil
		m.refresh()

		return m, nil
	case huh.StateAborted:
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m *ReportsModel) refresh() {
	m.data = m.svc.Get(context.Background(), m.sel)

	rows := make([]table.Row, 0, len(m.data.Months))
	for _, mo := range m.data.Months {
		rows = append(rows, table.Row{
			mo.Label,
			FormatAmount(mo.Sales),
			FormatAmount(mo.Expenses),
			FormatAmount(mo.Profit),
			mo.Margin().StringFixed(1) + "%",
		})
	}

	m.months.SetRows(rows)
}

func (m ReportsModel) View() string {
	config := panelStyle.Render(
		titleStyle.Render("Configuración de Reportes") + "\n\n" +
			fmt.Sprintf("[t] Tipo de Reporte: %s\n", activeStyle(m.sel.Type.Label())) +
			fmt.Sprintf("[p] Período: %s\n", activeStyle(m.sel.Period.Label())) +
			subtitleStyle.Render(m.sel.Describe()),
	)

	if m.form != nil {
		config = lipgloss.JoinHorizontal(lipgloss.Top, config, panelStyle.Render(m.form.View()))
	}

	s := m.data.Summary
	card := func(title, v string) string {
		return boxStyle.Width(24).Padding(0, 1).Render(
			subtitleStyle.Render(title) + "\n" + titleStyle.Render(v) + "\n" + subtitleStyle.Render(m.data.PeriodLabel),
		)
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Ventas", FormatAmount(s.Sales)),
		card("Total Gastos", FormatAmount(s.Expenses)),
		card("Utilidad Bruta", FormatAmount(s.GrossProfit)),
		card("IVA a Pagar", FormatAmount(s.VATPayable)),
	)

	categories := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Width(56).Render(shares("Ventas por Categoría", m.data.SalesByCategory)),
		panelStyle.Width(56).Render(shares("Gastos por Categoría", m.data.ExpensesByCategory)),
	)

	monthly := titleStyle.Render("Resumen Mensual") + "\n" + boxStyle.Render(m.months.View())

	sections := []string{config, cards, categories, monthly}
	if m.status != "" {
		sections = append(sections, helpStyle.Render(m.status))
	}

	sections = append(sections, helpStyle.Render(m.ShortHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func shares(title string, items []report.CategoryShare) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title) + "\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "%-26s %12s %6s%%\n", it.Category, FormatAmount(it.Amount), it.Percent.StringFixed(1))
	}

	return b.String()
}

type reportExportedMsg struct {
	sel report.Selection
	err error
}

func (reportExportedMsg) targetPage() Page { return PageReports }

func (m ReportsModel) exportCmd() tea.Cmd {
	svc, sel := m.svc, m.sel

	return func() tea.Msg {
		ctx, cancel := svcCtx()
		defer cancel()

		return reportExportedMsg{sel: sel, err: svc.Export(ctx, sel)}
	}
}
