package view

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/contasimple/internal/notify"
	"github.com/MrJamesThe3rd/contasimple/internal/sale"
)

func newShell(start Page) ShellModel {
	return NewShellModel(testServices(), start, time.Millisecond)
}

func send(m ShellModel, msgs ...tea.Msg) (ShellModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(ShellModel)
	}

	return m, cmd
}

func TestShell_NumberKeysAndTabSelectPages(t *testing.T) {
	m := newShell(PageDashboard)

	tests := []struct {
		key  string
		want Page
	}{
		{key: "2", want: PageSales},
		{key: "3", want: PageExpenses},
		{key: "4", want: PageBankIncome},
		{key: "5", want: PageReports},
		{key: "tab", want: PageDashboard},
		{key: "shift+tab", want: PageReports},
		{key: "1", want: PageDashboard},
	}

	for _, tt := range tests {
		m, _ = send(m, key(tt.key))
		assert.Equal(t, tt.want, m.Page(), "after %q", tt.key)
	}
}

func TestShell_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := send(newShell(PageSales), key(k))
		require.NotNil(t, cmd, k)
		assert.Equal(t, tea.QuitMsg{}, cmd(), k)
	}
}

func TestShell_TextInputCapturesShortcuts(t *testing.T) {
	m := newShell(PageSales)

	m, _ = send(m, key("n"), key("3"), key("q"))
	assert.Equal(t, PageSales, m.Page())
	assert.Equal(t, "3q", m.sales.form.draft.Get(sale.FieldDate))

	m, cmd := send(m, key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m, _ = send(m, key("esc"), key("3"))
	assert.Equal(t, PageExpenses, m.Page())
}

func TestShell_PagesKeepStateAcrossSwitches(t *testing.T) {
	m := newShell(PageSales)

	m, _ = send(m, key("n"), key("tab"), key("Cliente Nuevo"), key("esc"), key("5"), key("2"))
	assert.Equal(t, PageSales, m.Page())
	assert.True(t, m.sales.FormVisible())
	assert.Equal(t, "Cliente Nuevo", m.sales.form.draft.Get(sale.FieldClient))
}

func TestShell_RoutesPageResultsToTheirPage(t *testing.T) {
	m := newShell(PageDashboard)
	require.Empty(t, m.sales.Rows())

	m, _ = send(m, m.sales.loadCmd()())
	assert.Equal(t, PageDashboard, m.Page())
	assert.Len(t, m.sales.Rows(), 2)
	assert.Empty(t, m.expenses.Rows())
}

func TestShell_Toast(t *testing.T) {
	m := newShell(PageDashboard)

	first := notify.New("Venta registrada", "La venta ha sido registrada exitosamente.")
	second := notify.New("Gasto registrado", "El gasto ha sido registrado exitosamente.")

	m, tick1 := send(m, NotifyMsg{Notification: first})
	require.NotNil(t, m.Toast())
	assert.Contains(t, m.View(), "Venta registrada")

	m, tick2 := send(m, NotifyMsg{Notification: second})
	assert.Equal(t, second, *m.Toast(), "the newest toast replaces the previous one")

	m, _ = send(m, tick1())
	require.NotNil(t, m.Toast(), "an older timer does not dismiss a newer toast")

	m, _ = send(m, tick2())
	assert.Nil(t, m.Toast())
}

func TestShell_DashboardQuickActions(t *testing.T) {
	tests := []struct {
		key      string
		page     Page
		formOpen bool
	}{
		{key: "v", page: PageSales, formOpen: true},
		{key: "g", page: PageExpenses, formOpen: true},
		{key: "i", page: PageBankIncome},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, cmd := send(newShell(PageDashboard), key(tt.key))
			require.NotNil(t, cmd)

			m, _ = send(m, cmd())
			assert.Equal(t, tt.page, m.Page())

			if tt.formOpen {
				assert.True(t, m.capturing())
			}
		})
	}
}

func TestShell_View(t *testing.T) {
	m, _ := send(newShell(PageBankIncome), tea.WindowSizeMsg{Width: 160, Height: 50})

	view := m.View()
	for _, want := range []string{
		"ContaSimple",
		"Portal Cliente",
		"Régimen Simple · Colombia",
		"Juan Pérez",
		"Empresa ABC SAS",
		"Ingresos Bancarios",
		"Confirma y gestiona todos los ingresos a tus cuentas bancarias",
	} {
		assert.Contains(t, view, want)
	}
}

func TestShell_ImportOverlay(t *testing.T) {
	m := newShell(PageBankIncome)

	m, _ = send(m, key("i"))
	require.True(t, m.importing)
	assert.True(t, m.capturing())
	assert.Contains(t, m.View(), "Importar Extracto Bancario")

	m, _ = send(m, key("2"))
	assert.Equal(t, PageBankIncome, m.Page(), "page keys are off while importing")

	m, cmd := send(m, key("esc"))
	require.NotNil(t, cmd)

	m, _ = send(m, cmd())
	assert.False(t, m.importing)
	assert.Nil(t, m.Toast())
}
