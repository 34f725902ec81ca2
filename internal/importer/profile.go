package importer

type amountMode int

const (
	// One signed column, debits negative.
	amountSingle amountMode = iota
	// Separate unsigned debit and credit columns.
	amountSplit
)

// Profile describes the column layout of one bank's CSV export.
type Profile struct {
	Bank Bank
	// Name as listed in the bank income form.
	Name        string
	Comma       rune
	DateLayouts []string
	DateCol     string
	DescCol     string
	// Optional; a reference is generated when the column is absent or empty.
	RefCol     string
	AmountMode amountMode
	AmountCol  string
	DebitCol   string
	CreditCol  string
}

func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

var profiles = map[Bank]Profile{
	BankBancolombia: {
		Bank:        BankBancolombia,
		Name:        "Bancolombia",
		Comma:       ',',
		DateLayouts: []string{"2006/01/02", "02/01/2006"},
		DateCol:     "FECHA",
		DescCol:     "DESCRIPCIÓN",
		RefCol:      "DCTO.",
		AmountMode:  amountSingle,
		AmountCol:   "VALOR",
	},
	BankDavivienda: {
		Bank:        BankDavivienda,
		Name:        "Davivienda",
		Comma:       ';',
		DateLayouts: []string{"02/01/2006", "2006-01-02"},
		DateCol:     "Fecha",
		DescCol:     "Descripción",
		RefCol:      "Referencia",
		AmountMode:  amountSplit,
		DebitCol:    "Débitos",
		CreditCol:   "Créditos",
	},
}

// Banks lists the banks whose statements can be imported.
func Banks() []Bank {
	return []Bank{BankBancolombia, BankDavivienda}
}

func ProfileFor(bank Bank) (Profile, bool) {
	p, ok := profiles[bank]
	return p, ok
}
