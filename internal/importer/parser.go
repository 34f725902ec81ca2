package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/contasimple/internal/encoding"
	"github.com/MrJamesThe3rd/contasimple/internal/money"
)

// Parse reads a statement in the layout of p and returns its credits in file order.
// Lines before the header (account details, balances) and footer lines without a
// date are ignored. Debits and zero amounts are dropped.
func (p Profile) Parse(r io.Reader) ([]Entry, error) {
	utf8r, charset, err := encoding.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	slog.Debug("reading statement", "bank", p.Bank, "charset", charset)

	reader := csv.NewReader(utf8r)
	reader.Comma = p.Comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := p.findHeader(rows)
	if !ok {
		return nil, fmt.Errorf("%w: expected %s columns %s", ErrNoHeader, p.Name, strings.Join(p.requiredCols(), ", "))
	}

	var entries []Entry

	for _, row := range rows[headerIdx+1:] {
		date, ok := p.parseDate(cellValue(row, cols, p.DateCol))
		if !ok {
			continue
		}

		amount, ok := p.credit(row, cols)
		if !ok {
			continue
		}

		entries = append(entries, Entry{
			Date:        date,
			Description: cellValue(row, cols, p.DescCol),
			Reference:   cellValue(row, cols, p.RefCol),
			Amount:      amount,
		})
	}

	return entries, nil
}

// colIndex maps header names, case-folded, to their position.
type colIndex map[string]int

func (p Profile) findHeader(rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := strings.TrimSpace(cell); name != "" {
				cols[strings.ToLower(name)] = i
			}
		}

		if p.matches(cols) {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}

func (p Profile) matches(cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[strings.ToLower(name)]; !ok {
			return false
		}
	}

	return true
}

func (p Profile) parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range p.DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func (p Profile) credit(row []string, cols colIndex) (decimal.Decimal, bool) {
	var s string

	switch p.AmountMode {
	case amountSingle:
		s = cellValue(row, cols, p.AmountCol)
	case amountSplit:
		s = cellValue(row, cols, p.CreditCol)
	}

	if s == "" {
		return decimal.Zero, false
	}

	amount, err := money.ParseStatement(s)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}

	return amount, true
}

// cellValue returns the trimmed cell under the named column, or "" when the
// column is unknown or the row is short.
func cellValue(row []string, cols colIndex, name string) string {
	if name == "" {
		return ""
	}

	idx, ok := cols[strings.ToLower(name)]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
