package view

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/contasimple/internal/bankincome"
	"github.com/MrJamesThe3rd/contasimple/internal/dashboard"
	"github.com/MrJamesThe3rd/contasimple/internal/expense"
	"github.com/MrJamesThe3rd/contasimple/internal/importer"
	"github.com/MrJamesThe3rd/contasimple/internal/report"
	"github.com/MrJamesThe3rd/contasimple/internal/sale"
)

func testServices() Services {
	incomes := bankincome.NewService(bankincome.NewStore(true))

	return Services{
		Sales:      sale.NewService(sale.NewStore(true)),
		Expenses:   expense.NewService(expense.NewStore(true)),
		BankIncome: incomes,
		Importer:   importer.NewService(incomes),
		Reports:    report.NewService(slog.New(slog.NewTextHandler(io.Discard, nil))),
		Dashboard:  dashboard.Static(),
	}
}

var specialKeys = map[string]tea.KeyType{
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"esc":       tea.KeyEsc,
	"enter":     tea.KeyEnter,
	"ctrl+s":    tea.KeyCtrlS,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+u":    tea.KeyCtrlU,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	" ":         tea.KeySpace,
}

func key(s string) tea.KeyMsg {
	if t, ok := specialKeys[s]; ok {
		return tea.KeyMsg{Type: t}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and every command of a batch it returns. Only use it on
// commands that do not block (no cursor blinking, no ticks).
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()

	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(t, c)...)
		}

		return out
	}

	return []tea.Msg{msg}
}

func loadLedger(t *testing.T, m LedgerModel) LedgerModel {
	t.Helper()

	m, _ = m.Update(m.loadCmd()())

	return m
}

func typeInto(m LedgerModel, keys ...string) LedgerModel {
	for _, k := range keys {
		m, _ = m.Update(key(k))
	}

	return m
}
