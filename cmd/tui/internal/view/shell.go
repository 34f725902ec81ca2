package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/contasimple/internal/bankincome"
	"github.com/MrJamesThe3rd/contasimple/internal/dashboard"
	"github.com/MrJamesThe3rd/contasimple/internal/expense"
	"github.com/MrJamesThe3rd/contasimple/internal/importer"
	"github.com/MrJamesThe3rd/contasimple/internal/notify"
	"github.com/MrJamesThe3rd/contasimple/internal/report"
	"github.com/MrJamesThe3rd/contasimple/internal/sale"
)

const sidebarWidth = 30

type Services struct {
	Sales      *sale.Service
	Expenses   *expense.Service
	BankIncome *bankincome.Service
	Importer   *importer.Service
	Reports    *report.Service
	Dashboard  dashboard.Dashboard
}

// ShellModel is the root model: sidebar, header, toast and the current page.
// Every page is built once and keeps its state while other pages are shown.
type ShellModel struct {
	CommonModel
	page Page

	dashboard  DashboardModel
	sales      LedgerModel
	expenses   LedgerModel
	bankIncome LedgerModel
	reports    ReportsModel

	// Statement import, shown over the bank income page.
	imports   ImportModel
	importing bool
	importSvc *importer.Service

	toast    *notify.Notification
	toastSeq int
	toastTTL time.Duration
}

func NewShellModel(svcs Services, start Page, toastTTL time.Duration) ShellModel {
	return ShellModel{
		page:       start,
		dashboard:  NewDashboardModel(svcs.Dashboard),
		sales:      NewSalesModel(svcs.Sales),
		expenses:   NewExpensesModel(svcs.Expenses),
		bankIncome: NewBankIncomeModel(svcs.BankIncome),
		reports:    NewReportsModel(svcs.Reports),
		imports:    NewImportModel(svcs.Importer),
		importSvc:  svcs.Importer,
		toastTTL:   toastTTL,
	}
}

func (m ShellModel) Page() Page {
	return m.page
}

func (m *ShellModel) SetPage(p Page) {
	m.page = p
}

// Toast returns the notification on screen, if any.
func (m ShellModel) Toast() *notify.Notification {
	return m.toast
}

func (m ShellModel) Init() tea.Cmd {
	return tea.Batch(
		m.dashboard.Init(),
		m.sales.Init(),
		m.expenses.Init(),
		m.bankIncome.Init(),
		m.reports.Init(),
	)
}

type toastExpiredMsg struct {
	seq int
}

func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		inner := tea.WindowSizeMsg{Width: msg.Width - sidebarWidth, Height: msg.Height - 4}

		var cmds []tea.Cmd
		for _, p := range Pages {
			var cmd tea.Cmd
			m, cmd = m.updatePage(p, inner)
			cmds = append(cmds, cmd)
		}

		return m, tea.Batch(cmds...)

	case NotifyMsg:
		n := msg.Notification
		m.toast = &n
		m.toastSeq++
		seq := m.toastSeq

		return m, tea.Tick(m.toastTTL, func(time.Time) tea.Msg {
			return toastExpiredMsg{seq: seq}
		})

	case toastExpiredMsg:
		// A newer toast restarted the timer.
		if msg.seq == m.toastSeq {
			m.toast = nil
		}

		return m, nil

	case SwitchPageMsg:
		m.SetPage(msg.Page)
		if !msg.OpenForm {
			return m, nil
		}

		var cmd tea.Cmd

		switch msg.Page {
		case PageSales:
			m.sales, cmd = m.sales.OpenForm()
		case PageExpenses:
			m.expenses, cmd = m.expenses.OpenForm()
		case PageBankIncome:
			m.bankIncome, cmd = m.bankIncome.OpenForm()
		}

		return m, cmd

	case pageMsg:
		return m.updatePage(msg.targetPage(), msg)

	case importClosedMsg:
		m.importing = false

		var cmd tea.Cmd
		m.bankIncome, cmd = m.bankIncome.Reload()

		if msg.imported > 0 {
			cmd = tea.Batch(cmd, notifyCmd(importer.Imported(msg.imported)))
		}

		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if !m.capturing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1", "2", "3", "4", "5":
				m.SetPage(Pages[int(msg.String()[0]-'1')])
				return m, nil
			case "tab":
				m.SetPage(Pages[(m.page.index()+1)%len(Pages)])
				return m, nil
			case "shift+tab":
				m.SetPage(Pages[(m.page.index()+len(Pages)-1)%len(Pages)])
				return m, nil
			case "i":
				if m.page == PageBankIncome {
					m.imports = NewImportModel(m.importSvc)
					m.importing = true

					return m, m.imports.Init()
				}
			}
		}
	}

	if m.importing {
		var cmd tea.Cmd
		m.imports, cmd = m.imports.Update(msg)

		return m, cmd
	}

	return m.updatePage(m.page, msg)
}

// capturing reports whether the current page is reading text or a dialog, in
// which case the shell shortcuts are off.
func (m ShellModel) capturing() bool {
	if m.importing {
		return true
	}

	switch m.page {
	case PageSales:
		return m.sales.Capturing()
	case PageExpenses:
		return m.expenses.Capturing()
	case PageBankIncome:
		return m.bankIncome.Capturing()
	case PageReports:
		return m.reports.Capturing()
	}

	return false
}

func (m ShellModel) updatePage(p Page, msg tea.Msg) (ShellModel, tea.Cmd) {
	var cmd tea.Cmd

	switch p {
	case PageDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case PageSales:
		m.sales, cmd = m.sales.Update(msg)
	case PageExpenses:
		m.expenses, cmd = m.expenses.Update(msg)
	case PageBankIncome:
		m.bankIncome, cmd = m.bankIncome.Update(msg)
	case PageReports:
		m.reports, cmd = m.reports.Update(msg)
	}

	return m, cmd
}

func (m ShellModel) View() string {
	var content string

	switch m.page {
	case PageSales:
		content = m.sales.View()
	case PageExpenses:
		content = m.expenses.View()
	case PageBankIncome:
		content = m.bankIncome.View()
		if m.importing {
			content = m.imports.View()
		}
	case PageReports:
		content = m.reports.View()
	default:
		content = m.dashboard.View()
	}

	main := lipgloss.JoinVertical(lipgloss.Left, m.header(), content)
	if m.toast != nil {
		toast := panelStyle.Render(titleStyle.Render(m.toast.Title) + "\n" + m.toast.Description)
		main = lipgloss.JoinVertical(lipgloss.Left, toast, main)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebar(),
		lipgloss.NewStyle().PaddingLeft(2).Render(main),
	)
}

func (m ShellModel) sidebar() string {
	var menu strings.Builder
	for i, p := range Pages {
		line := fmt.Sprintf("%d  %s", i+1, p.MenuLabel())
		if p == m.page {
			line = activeStyle("> " + line)
		} else {
			line = "  " + line
		}

		menu.WriteString(line + "\n")
	}

	return lipgloss.NewStyle().
		Width(sidebarWidth-2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(colorMuted).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("ContaSimple"),
			subtitleStyle.Render("Portal Cliente"),
			"",
			menu.String(),
			subtitleStyle.Render("Régimen Simple · Colombia"),
			"",
			helpStyle.Render("tab: siguiente | q: salir"),
		))
}

func (m ShellModel) header() string {
	title := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.page.MenuLabel()),
		subtitleStyle.Render(m.page.Subtitle()),
	)

	user := lipgloss.JoinVertical(lipgloss.Right,
		"Juan Pérez",
		subtitleStyle.Render("Empresa ABC SAS"),
	)

	gap := max(m.Width-sidebarWidth-lipgloss.Width(title)-lipgloss.Width(user)-4, 2)

	return lipgloss.NewStyle().PaddingBottom(1).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", gap), user),
	)
}
