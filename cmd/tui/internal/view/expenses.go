package view

import (
	"context"

	"github.com/charmbracelet/bubbles/table"

	"github.com/MrJamesThe3rd/contasimple/internal/expense"
	"github.com/MrJamesThe3rd/contasimple/internal/notify"
)

type expensesLedger struct {
	svc *expense.Service
}

func NewExpensesModel(svc *expense.Service) LedgerModel {
	return newLedgerModel(PageExpenses, expensesLedger{svc: svc})
}

func (expensesLedger) FormTitle() string { return "Registrar Nuevo Gasto" }

func (expensesLedger) SearchPlaceholder() string {
	return "Buscar por proveedor, descripción o categoría..."
}

func (expensesLedger) Columns() []table.Column {
	return []table.Column{
		{Title: "Fecha", Width: 10},
		{Title: "Proveedor", Width: 20},
		{Title: "Descripción", Width: 24},
		{Title: "Categoría", Width: 20},
		{Title: "Monto", Width: 12},
		{Title: "IVA", Width: 11},
		{Title: "Total", Width: 12},
		{Title: "Estado", Width: 22},
		{Title: "Acciones", Width: 17},
	}
}

func (expensesLedger) Fields() []formField {
	categories := make([]choice, 0, len(expense.Categories))
	for _, c := range expense.Categories {
		categories = append(categories, choice{Value: c, Label: c})
	}

	return []formField{
		{Key: expense.FieldDate, Label: "Fecha", Placeholder: "AAAA-MM-DD"},
		{Key: expense.FieldVendor, Label: "Proveedor", Placeholder: "Nombre del proveedor"},
		{Key: expense.FieldDescription, Label: "Descripción", Placeholder: "Descripción del gasto"},
		{Key: expense.FieldCategory, Label: "Categoría", Kind: fieldChoice, Options: categories},
		{Key: expense.FieldAmount, Label: "Monto (COP)", Placeholder: "0"},
		{Key: expense.FieldVAT, Label: "IVA (COP)", Placeholder: "0"},
		{Key: expense.FieldDeductible, Label: "Gasto deducible", Kind: fieldFlag},
		{Key: expense.FieldHasReceipt, Label: "Tengo comprobante", Kind: fieldFlag},
	}
}

func (expensesLedger) NewDraft() editableDraft {
	d := expense.NewDraft()
	return &d
}

// expenseState renders the Estado column: "Deducible" or "No deducible", plus
// "Comprobante" when there is a receipt.
func expenseState(e *expense.Expense) string {
	state := "No deducible"
	if e.Deductible {
		state = "Deducible"
	}

	if e.HasReceipt {
		state += " · Comprobante"
	}

	return state
}

func (l expensesLedger) Load(ctx context.Context, search string) ([]ledgerRow, error) {
	expenses, err := l.svc.List(ctx, expense.ListFilter{Search: search})
	if err != nil {
		return nil, err
	}

	rows := make([]ledgerRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, ledgerRow{
			ID: e.ID,
			Cells: table.Row{
				FormatDate(e.Date),
				e.Vendor,
				e.Description,
				e.Category,
				FormatAmount(e.Amount),
				FormatAmount(e.VAT),
				FormatAmount(e.Total),
				expenseState(e),
				rowActions,
			},
		})
	}

	return rows, nil
}

func (l expensesLedger) Submit(d editableDraft) (func(ctx context.Context) error, error) {
	params, err := d.(*expense.Draft).Params()
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) error {
		_, err := l.svc.Create(ctx, params)
		return err
	}, nil
}

func (expensesLedger) Created() notify.Notification { return expense.Created() }
