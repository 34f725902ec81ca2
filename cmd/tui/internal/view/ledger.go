package view

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/contasimple/internal/notify"
)

// ledger adapts one record type (sales, expenses, bank incomes) to LedgerModel.
type ledger interface {
	FormTitle() string
	SearchPlaceholder() string
	Columns() []table.Column
	Fields() []formField
	NewDraft() editableDraft
	Load(ctx context.Context, search string) ([]ledgerRow, error)
	// Submit validates the draft right away; the returned func performs the
	// creation and runs as a command.
	Submit(d editableDraft) (func(ctx context.Context) error, error)
	Created() notify.Notification
}

// confirmer is implemented by ledgers whose pending rows can be confirmed.
type confirmer interface {
	Confirm(ctx context.Context, id string) error
	Confirmed() notify.Notification
}

type ledgerRow struct {
	ID    string
	Cells table.Row
	// One-line description used by the confirm dialog.
	Summary string
	Pending bool
}

type ledgerFocus int

const (
	focusTable ledgerFocus = iota
	focusSearch
	focusForm
	focusDialog
)

type LedgerModel struct {
	CommonModel
	page Page
	src  ledger

	table  table.Model
	rows   []ledgerRow
	search textinput.Model
	form   draftForm

	formVisible bool
	focus       ledgerFocus

	dialog    *huh.Form
	confirmID string
	confirmed *bool

	// Page specific keys handled by the shell, shown in the help line.
	extraHelp string

	loadSeq int
	err     error
}

func newLedgerModel(page Page, src ledger) LedgerModel {
	t := table.New(
		table.WithColumns(src.Columns()),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	t.SetStyles(tableStyles())

	search := textinput.New()
	search.Placeholder = src.SearchPlaceholder()
	search.Prompt = "/ "
	search.Width = 48

	return LedgerModel{
		page:   page,
		src:    src,
		table:  t,
		search: search,
		form:   newDraftForm(src.Fields(), src.NewDraft()),
	}
}

// Capturing reports whether keys should stay on this page instead of reaching
// the shell shortcuts.
func (m LedgerModel) Capturing() bool {
	return m.focus != focusTable
}

func (m LedgerModel) FormVisible() bool {
	return m.formVisible
}

// Rows returns what the table currently shows, newest first.
func (m LedgerModel) Rows() []ledgerRow {
	return m.rows
}

func (m LedgerModel) ShortHelp() string {
	switch m.focus {
	case focusSearch:
		return "Escribe para filtrar | Enter/Esc: volver a la tabla"
	case focusForm:
		return "Tab: siguiente campo | ←/→: opciones | Espacio: marcar | Ctrl+S: guardar | Esc: salir del formulario"
	case focusDialog:
		return "←/→: elegir | Enter: aceptar | Esc: cancelar"
	}

	help := "n: nuevo registro | /: buscar | r: recargar"
	if m.formVisible {
		help += " | f: ir al formulario"
	}

	if _, ok := m.src.(confirmer); ok {
		help += " | c: confirmar"
	}

	if m.extraHelp != "" {
		help += " | " + m.extraHelp
	}

	return help
}

func (m LedgerModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m LedgerModel) Update(msg tea.Msg) (LedgerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ledgerLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}

		m.err = msg.err
		if msg.err == nil {
			m.rows = msg.rows
			m.refreshTable()
		}

		return m, nil

	case ledgerSavedMsg:
		if msg.err != nil {
			m.form.err = msg.err
			return m, nil
		}

		m.form = newDraftForm(m.src.Fields(), m.src.NewDraft())
		m.formVisible = false
		m.focus = focusTable
		m.table.Focus()
		cmd := m.reload()

		return m, tea.Batch(cmd, notifyCmd(m.src.Created()))

	case ledgerConfirmedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		c, _ := m.src.(confirmer)
		cmd := m.reload()

		return m, tea.Batch(cmd, notifyCmd(c.Confirmed()))

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-24, 5))

		return m, nil
	}

	switch m.focus {
	case focusSearch:
		return m.updateSearch(msg)
	case focusForm:
		return m.updateForm(msg)
	case focusDialog:
		return m.updateDialog(msg)
	}

	return m.updateTable(msg)
}

func (m LedgerModel) updateTable(msg tea.Msg) (LedgerModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "n":
			if m.formVisible {
				m.formVisible = false
				m.form.Blur()

				return m, nil
			}

			m.formVisible = true

			return m.enterForm()
		case "f":
			if m.formVisible {
				return m.enterForm()
			}

			return m, nil
		case "/":
			m.focus = focusSearch
			m.table.Blur()
			cmd := m.search.Focus()

			return m, cmd
		case "r":
			cmd := m.reload()
			return m, cmd
		case "c":
			return m.openConfirm()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

// Reload fetches the rows again, keeping the current search.
func (m LedgerModel) Reload() (LedgerModel, tea.Cmd) {
	cmd := m.reload()
	return m, cmd
}

// OpenForm shows the registration form and focuses it.
func (m LedgerModel) OpenForm() (LedgerModel, tea.Cmd) {
	m.formVisible = true
	return m.enterForm()
}

func (m LedgerModel) enterForm() (LedgerModel, tea.Cmd) {
	m.focus = focusForm
	m.table.Blur()
	cmd := m.form.Focus()

	return m, cmd
}

func (m *LedgerModel) leaveFocus() {
	m.focus = focusTable
	m.search.Blur()
	m.form.Blur()
	m.table.Focus()
}

func (m LedgerModel) updateSearch(msg tea.Msg) (LedgerModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.leaveFocus()
			return m, nil
		}
	}

	var cmd tea.Cmd

	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)

	if m.search.Value() != before {
		load := m.reload()
		return m, tea.Batch(cmd, load)
	}

	return m, cmd
}

func (m LedgerModel) updateForm(msg tea.Msg) (LedgerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)

		return m, cmd
	}

	if keyMsg.Type == tea.KeyEsc {
		m.leaveFocus()
		return m, nil
	}

	var (
		cmd    tea.Cmd
		submit bool
	)

	m.form, cmd, submit = m.form.Update(keyMsg)
	if !submit {
		return m, cmd
	}

	create, err := m.src.Submit(m.form.draft)
	if err != nil {
		m.form.err = err
		return m, cmd
	}

	m.form.err = nil

	return m, m.saveCmd(create)
}

func (m LedgerModel) openConfirm() (LedgerModel, tea.Cmd) {
	if _, ok := m.src.(confirmer); !ok {
		return m, nil
	}

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) || !m.rows[idx].Pending {
		return m, nil
	}

	m.confirmID = m.rows[idx].ID
	m.confirmed = new(bool)
	m.dialog = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("¿Confirmar este ingreso?").
				Description(m.rows[idx].Summary).
				Affirmative("Confirmar").
				Negative("Cancelar").
				Value(m.confirmed),
		),
	).WithWidth(44).WithShowHelp(false)

	m.focus = focusDialog
	m.table.Blur()

	return m, m.dialog.Init()
}

func (m LedgerModel) updateDialog(msg tea.Msg) (LedgerModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeDialog()
		return m, nil
	}

	form, cmd := m.dialog.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.dialog = f
	}

	switch m.dialog.State {
	case huh.StateCompleted:
		id, ok := m.confirmID, *m.confirmed
		m.closeDialog()

		if !ok {
			return m, nil
		}

		return m, m.confirmCmd(id)
	case huh.StateAborted:
		m.closeDialog()
		return m, nil
	}

	return m, cmd
}

func (m *LedgerModel) closeDialog() {
	m.dialog = nil
	m.confirmID = ""
	m.confirmed = nil
	m.focus = focusTable
	m.table.Focus()
}

func (m *LedgerModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.rows))
	for _, r := range m.rows {
		rows = append(rows, r.Cells)
	}

	m.table.SetRows(rows)
}

func (m LedgerModel) View() string {
	var sections []string

	if m.formVisible {
		panel := panelStyle.Render(
			titleStyle.Render(m.src.FormTitle()) + "\n\n" + m.form.View(),
		)
		sections = append(sections, panel)
	}

	sections = append(sections, m.search.View())

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if len(m.rows) == 0 {
		sections = append(sections, subtitleStyle.Render("No hay registros que coincidan con la búsqueda."))
	} else {
		sections = append(sections, boxStyle.Render(m.table.View()))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.dialog != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panelStyle.Render(m.dialog.View()))
	}

	return content + "\n" + helpStyle.Render(m.ShortHelp())
}

// Messages

type ledgerLoadedMsg struct {
	page Page
	seq  int
	rows []ledgerRow
	err  error
}

func (msg ledgerLoadedMsg) targetPage() Page { return msg.page }

type ledgerSavedMsg struct {
	page Page
	err  error
}

func (msg ledgerSavedMsg) targetPage() Page { return msg.page }

type ledgerConfirmedMsg struct {
	page Page
	err  error
}

func (msg ledgerConfirmedMsg) targetPage() Page { return msg.page }

// reload bumps the load sequence so results of older searches are dropped.
func (m *LedgerModel) reload() tea.Cmd {
	m.loadSeq++
	return m.loadCmd()
}

func (m LedgerModel) loadCmd() tea.Cmd {
	src, page, seq, term := m.src, m.page, m.loadSeq, m.search.Value()

	return func() tea.Msg {
		ctx, cancel := svcCtx()
		defer cancel()

		rows, err := src.Load(ctx, term)

		return ledgerLoadedMsg{page: page, seq: seq, rows: rows, err: err}
	}
}

func (m LedgerModel) saveCmd(create func(ctx context.Context) error) tea.Cmd {
	page := m.page

	return func() tea.Msg {
		ctx, cancel := svcCtx()
		defer cancel()

		return ledgerSavedMsg{page: page, err: create(ctx)}
	}
}

func (m LedgerModel) confirmCmd(id string) tea.Cmd {
	c, _ := m.src.(confirmer)
	page := m.page

	return func() tea.Msg {
		ctx, cancel := svcCtx()
		defer cancel()

		return ledgerConfirmedMsg{page: page, err: c.Confirm(ctx, id)}
	}
}
