package view

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/table"

	"github.com/MrJamesThe3rd/contasimple/internal/bankincome"
	"github.com/MrJamesThe3rd/contasimple/internal/notify"
)

type bankIncomeLedger struct {
	svc *bankincome.Service
	now func() time.Time
}

func NewBankIncomeModel(svc *bankincome.Service) LedgerModel {
	m := newLedgerModel(PageBankIncome, bankIncomeLedger{svc: svc, now: time.Now})
	m.extraHelp = "i: importar extracto"

	return m
}

func (bankIncomeLedger) FormTitle() string { return "Registrar Nuevo Ingreso Bancario" }

func (bankIncomeLedger) SearchPlaceholder() string {
	return "Buscar por banco, concepto o referencia..."
}

func (bankIncomeLedger) Columns() []table.Column {
	return []table.Column{
		{Title: "Fecha", Width: 10},
		{Title: "Banco", Width: 16},
		{Title: "Cuenta", Width: 10},
		{Title: "Concepto", Width: 26},
		{Title: "Referencia", Width: 17},
		{Title: "Monto", Width: 13},
		{Title: "Estado", Width: 11},
		{Title: "Acciones", Width: 30},
	}
}

func (bankIncomeLedger) Fields() []formField {
	banks := make([]choice, 0, len(bankincome.Banks))
	for _, b := range bankincome.Banks {
		banks = append(banks, choice{Value: b, Label: b})
	}

	statuses := make([]choice, 0, len(bankincome.Statuses))
	for _, s := range bankincome.Statuses {
		statuses = append(statuses, choice{Value: string(s), Label: s.Label()})
	}

	return []formField{
		{Key: bankincome.FieldDate, Label: "Fecha del Ingreso", Placeholder: "AAAA-MM-DD"},
		{Key: bankincome.FieldBank, Label: "Banco", Kind: fieldChoice, Options: banks},
		{Key: bankincome.FieldAccountNumber, Label: "Número de Cuenta", Placeholder: "****-1234"},
		{Key: bankincome.FieldAmount, Label: "Monto (COP)", Placeholder: "0"},
		{Key: bankincome.FieldConcept, Label: "Concepto", Placeholder: "Descripción del ingreso"},
		{Key: bankincome.FieldReference, Label: "Referencia/Comprobante", Placeholder: "TRF-20240115-001"},
		{Key: bankincome.FieldStatus, Label: "Estado", Kind: fieldChoice, Options: statuses},
	}
}

func (bankIncomeLedger) NewDraft() editableDraft {
	d := bankincome.NewDraft()
	return &d
}

func (l bankIncomeLedger) Load(ctx context.Context, search string) ([]ledgerRow, error) {
	incomes, err := l.svc.List(ctx, bankincome.ListFilter{Search: search})
	if err != nil {
		return nil, err
	}

	rows := make([]ledgerRow, 0, len(incomes))
	for _, b := range incomes {
		pending := b.Status == bankincome.StatusPending

		actions := rowActions
		if pending {
			actions = "[c] Confirmar · " + rowActions
		}

		rows = append(rows, ledgerRow{
			ID:      b.ID,
			Summary: b.Bank + " · " + FormatAmount(b.Amount),
			Pending: pending,
			Cells: table.Row{
				FormatDate(b.Date),
				b.Bank,
				b.AccountNumber,
				b.Concept,
				b.Reference,
				FormatAmount(b.Amount),
				b.Status.Label(),
				actions,
			},
		})
	}

	return rows, nil
}

func (l bankIncomeLedger) Submit(d editableDraft) (func(ctx context.Context) error, error) {
	params, err := d.(*bankincome.Draft).Params()
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) error {
		_, err := l.svc.Create(ctx, params)
		return err
	}, nil
}

func (bankIncomeLedger) Created() notify.Notification { return bankincome.Created() }

func (l bankIncomeLedger) Confirm(ctx context.Context, id string) error {
	_, err := l.svc.Confirm(ctx, id, l.now())
	return err
}

func (bankIncomeLedger) Confirmed() notify.Notification { return bankincome.Confirmed() }
