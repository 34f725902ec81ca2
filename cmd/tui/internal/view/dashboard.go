package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/contasimple/internal/dashboard"
)

type DashboardModel struct {
	CommonModel
	data dashboard.Dashboard
}

func NewDashboardModel(data dashboard.Dashboard) DashboardModel {
	return DashboardModel{data: data}
}

func (m DashboardModel) ShortHelp() string {
	return "v: registrar venta | g: agregar gasto | i: confirmar ingreso"
}

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update binds the quick actions to the matching pages. Registering a sale or
// an expense also opens the form.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
	case tea.KeyMsg:
		var target SwitchPageMsg

		switch msg.String() {
		case "v":
			target = SwitchPageMsg{Page: PageSales, OpenForm: true}
		case "g":
			target = SwitchPageMsg{Page: PageExpenses, OpenForm: true}
		case "i":
			target = SwitchPageMsg{Page: PageBankIncome}
		default:
			return m, nil
		}

		return m, func() tea.Msg { return target }
	}

	return m, nil
}

func (m DashboardModel) View() string {
	banner := panelStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(52).Render(
			titleStyle.Render("¡Bienvenido de vuelta!")+"\n"+
				"Aquí tienes un resumen de tu actividad contable",
		),
		subtitleStyle.Render("Período actual")+"\n"+titleStyle.Render(m.data.Period),
	))

	cards := make([]string, 0, len(m.data.Stats))
	for _, s := range m.data.Stats {
		change := lipgloss.NewStyle().Foreground(colorOK)
		if !s.Favorable {
			change = change.Foreground(colorError)
		}

		cards = append(cards, boxStyle.Width(24).Padding(0, 1).Render(
			subtitleStyle.Render(s.Title)+"\n"+
				titleStyle.Render(FormatAmount(s.Value))+"\n"+
				change.Render(s.ChangeLabel()),
		))
	}

	keys := []string{"v", "g", "i"}

	var actions strings.Builder

	actions.WriteString(titleStyle.Render("Acciones Rápidas") + "\n\n")
	for i, a := range m.data.QuickActions {
		key := ""
		if i < len(keys) {
			key = activeStyle("["+keys[i]+"]") + " "
		}

		actions.WriteString(key + "+ " + a + "\n")
	}

	var recent strings.Builder

	recent.WriteString(titleStyle.Render("Actividad Reciente") + "\n\n")
	for _, a := range m.data.Recent {
		amount := lipgloss.NewStyle().Foreground(colorOK)
		if a.Amount.IsNegative() {
			amount = amount.Foreground(colorError)
		}

		fmt.Fprintf(&recent, "%-40s %s\n%s\n",
			a.Description,
			amount.Render(FormatAmount(a.Amount.Abs())),
			subtitleStyle.Render(FormatDate(a.Date)),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		banner,
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		lipgloss.JoinHorizontal(lipgloss.Top,
			panelStyle.Width(34).Render(actions.String()),
			panelStyle.Width(64).Render(recent.String()),
		),
		helpStyle.Render(m.ShortHelp()),
	)
}
