package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/contasimple/internal/importer"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateBankSelect importState = iota
	importStateAccount
	importStateFilePick
	importStateParsing
	importStatePreview
	importStateResult
)

// ImportModel walks through a bank statement import: pick the bank, type the
// account, pick the file, then choose which credits become pending incomes.
type ImportModel struct {
	CommonModel
	importService *importer.Service

	state       importState
	bankOptions []importer.Bank
	bankCursor  int
	account     textinput.Model
	filePicker  filepicker.Model

	entries   []importer.Entry
	entryList list.Model
	selected  map[int]bool

	imported int
	status   string
	err      error
}

func NewImportModel(impSvc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	account := textinput.New()
	account.Placeholder = "****-1234"
	account.Width = 20

	return ImportModel{
		importService: impSvc,
		filePicker:    fp,
		account:       account,
		bankOptions:   importer.Banks(),
		selected:      make(map[int]bool),
	}
}

func (m ImportModel) ShortHelp() string {
	switch m.state {
	case importStateAccount:
		return "Enter: continuar | Esc: volver"
	case importStatePreview:
		return "Espacio: marcar | a: todos | n: ninguno | Enter: registrar | Esc: cancelar"
	case importStateResult:
		return "Esc/Enter: cerrar"
	}

	return "Enter: seleccionar | Esc: volver"
}

func (m ImportModel) Init() tea.Cmd {
	return nil
}

// importClosedMsg tells the shell the import view is done.
type importClosedMsg struct {
	imported int
}

func (m ImportModel) close() tea.Cmd {
	n := m.imported
	return func() tea.Msg { return importClosedMsg{imported: n} }
}

func (m ImportModel) Update(msg tea.Msg) (ImportModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		switch m.state {
		case importStateBankSelect:
			return m.updateBankSelect(msg)
		case importStateAccount:
			return m.updateAccount(msg)
		case importStatePreview:
			return m.updatePreview(msg)
		case importStateResult:
			if msg.Type == tea.KeyEnter {
				return m, m.close()
			}

			return m, nil
		}

	case importParsedMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.entries = msg.entries
		m.selected = make(map[int]bool, len(msg.entries))
		items := make([]list.Item, len(msg.entries))
		for i, e := range msg.entries {
			m.selected[i] = true
			items[i] = entryItem{entry: e, index: i}
		}

		delegate := entryDelegate{selected: m.selected}
		m.entryList = list.New(items, delegate, 90, 16)
		m.entryList.Title = fmt.Sprintf("Abonos encontrados (%d)", len(msg.entries))
		m.entryList.SetShowStatusBar(false)
		m.entryList.SetFilteringEnabled(false)
		m.entryList.SetShowHelp(false)
		m.state = importStatePreview

		return m, nil

	case importRegisteredMsg:
		m.state = importStateResult
		m.imported += msg.count

		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Se registraron %d ingresos pendientes.", msg.count)

		return m, nil
	}

	switch m.state {
	case importStateAccount:
		var cmd tea.Cmd
		m.account, cmd = m.account.Update(msg)

		return m, cmd
	case importStateFilePick:
		return m.updateFilePick(msg)
	}

	return m, nil
}

func (m ImportModel) handleEsc() (ImportModel, tea.Cmd) {
	switch m.state {
	case importStateAccount:
		m.state = importStateBankSelect
		m.account.Blur()

		return m, nil
	case importStateFilePick:
		m.state = importStateAccount
		cmd := m.account.Focus()

		return m, cmd
	case importStatePreview:
		m.state = importStateBankSelect
		m.entries = nil
		m.selected = make(map[int]bool)

		return m, nil
	}

	return m, m.close()
}

func (m ImportModel) updateBankSelect(msg tea.KeyMsg) (ImportModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.bankCursor > 0 {
			m.bankCursor--
		}
	case tea.KeyDown:
		if m.bankCursor < len(m.bankOptions)-1 {
			m.bankCursor++
		}
	case tea.KeyEnter:
		m.state = importStateAccount
		m.err = nil
		cmd := m.account.Focus()

		return m, cmd
	}

	return m, nil
}

func (m ImportModel) updateAccount(msg tea.KeyMsg) (ImportModel, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.account, cmd = m.account.Update(msg)

		return m, cmd
	}

	if strings.TrimSpace(m.account.Value()) == "" {
		m.err = errors.New("ingresa el número de cuenta")
		return m, nil
	}

	m.err = nil
	m.account.Blur()
	m.state = importStateFilePick

	return m, m.filePicker.Init()
}

func (m ImportModel) updateFilePick(msg tea.Msg) (ImportModel, tea.Cmd) {
	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateParsing
		m.status = fmt.Sprintf("Leyendo %s...", path)

		return m, m.parseCmd(path)
	}

	return m, cmd
}

func (m ImportModel) updatePreview(msg tea.KeyMsg) (ImportModel, tea.Cmd) {
	switch msg.String() {
	case " ":
		idx := m.entryList.Index()
		m.selected[idx] = !m.selected[idx]

		return m, nil
	case "a":
		for i := range m.entries {
			m.selected[i] = true
		}

		return m, nil
	case "n":
		for i := range m.entries {
			m.selected[i] = false
		}

		return m, nil
	case "enter":
		return m, m.registerCmd()
	}

	var cmd tea.Cmd
	m.entryList, cmd = m.entryList.Update(msg)

	return m, cmd
}

func (m ImportModel) bank() importer.Bank {
	return m.bankOptions[m.bankCursor]
}

func (m ImportModel) View() string {
	var body string

	switch m.state {
	case importStateBankSelect:
		body = m.viewBankSelect()
	case importStateAccount:
		body = fmt.Sprintf("Número de cuenta (%s):\n\n%s", profileName(m.bank()), m.account.View())
	case importStateFilePick:
		body = fmt.Sprintf("Selecciona el extracto (%s):\n\n%s", profileName(m.bank()), m.filePicker.View())
	case importStateParsing:
		body = m.status
	case importStatePreview:
		body = m.entryList.View()
	case importStateResult:
		body = m.viewResult()
	}

	if m.err != nil && m.state != importStateResult {
		body += "\n\n" + errorStyle.Render(m.err.Error())
	}

	return panelStyle.Render(
		titleStyle.Render("Importar Extracto Bancario") + "\n\n" + body + "\n\n" + helpStyle.Render(m.ShortHelp()),
	)
}

func profileName(b importer.Bank) string {
	if p, ok := importer.ProfileFor(b); ok {
		return p.Name
	}

	return string(b)
}

func (m ImportModel) viewBankSelect() string {
	s := "Selecciona el banco:\n\n"

	for i, bank := range m.bankOptions {
		cursor := " "
		if i == m.bankCursor {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, profileName(bank))
	}

	return s
}

func (m ImportModel) viewResult() string {
	if m.err != nil {
		return errorStyle.Render(m.status)
	}

	return lipgloss.NewStyle().Foreground(colorOK).Render(m.status)
}

// Messages

type importParsedMsg struct {
	entries []importer.Entry
	err     error
}

type importRegisteredMsg struct {
	count int
	err   error
}

func (m ImportModel) parseCmd(path string) tea.Cmd {
	svc, bank := m.importService, m.bank()

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importParsedMsg{err: err}
		}
		defer f.Close()

		entries, err := svc.Parse(bank, f)
		if err == nil && len(entries) == 0 {
			err = errors.New("el extracto no tiene abonos")
		}

		return importParsedMsg{entries: entries, err: err}
	}
}

func (m ImportModel) registerCmd() tea.Cmd {
	svc, bank := m.importService, m.bank()
	account := strings.TrimSpace(m.account.Value())

	var chosen []importer.Entry
	for i, e := range m.entries {
		if m.selected[i] {
			chosen = append(chosen, e)
		}
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		created, err := svc.Register(ctx, bank, account, chosen)

		return importRegisteredMsg{count: len(created), err: err}
	}
}

// Entry list item

type entryItem struct {
	entry importer.Entry
	index int
}

func (i entryItem) Title() string       { return i.entry.Description }
func (i entryItem) Description() string { return i.entry.Reference }
func (i entryItem) FilterValue() string { return i.entry.Description }

// Entry list delegate

type entryDelegate struct {
	selected map[int]bool
}

func (d entryDelegate) Height() int                             { return 1 }
func (d entryDelegate) Spacing() int                            { return 0 }
func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(entryItem)
	if !ok {
		return
	}

	checkbox := "[ ]"
	if d.selected[item.index] {
		checkbox = "[x]"
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	ref := item.entry.Reference
	if ref == "" {
		ref = "-"
	}

	fmt.Fprintf(w, "%s%s %s  %14s  %-36s %s",
		cursor, checkbox,
		FormatDate(item.entry.Date),
		FormatAmount(item.entry.Amount),
		item.entry.Description,
		ref,
	)
}
