package view

import (
	"context"

	"github.com/charmbracelet/bubbles/table"

	"github.com/MrJamesThe3rd/contasimple/internal/notify"
	"github.com/MrJamesThe3rd/contasimple/internal/sale"
)

// rowActions is the actions column. Edit and delete are shown but not bound.
const rowActions = "Editar · Eliminar"

type salesLedger struct {
	svc *sale.Service
}

func NewSalesModel(svc *sale.Service) LedgerModel {
	return newLedgerModel(PageSales, salesLedger{svc: svc})
}

func (salesLedger) FormTitle() string { return "Registrar Nueva Venta" }

func (salesLedger) SearchPlaceholder() string { return "Buscar por cliente o descripción..." }

func (salesLedger) Columns() []table.Column {
	return []table.Column{
		{Title: "Fecha", Width: 10},
		{Title: "Cliente", Width: 22},
		{Title: "Descripción", Width: 28},
		{Title: "Subtotal", Width: 13},
		{Title: "IVA", Width: 12},
		{Title: "Total", Width: 13},
		{Title: "Estado", Width: 9},
		{Title: "Acciones", Width: 17},
	}
}

func (salesLedger) Fields() []formField {
	statuses := make([]choice, 0, len(sale.Statuses))
	for _, s := range sale.Statuses {
		statuses = append(statuses, choice{Value: string(s), Label: s.Label()})
	}

	return []formField{
		{Key: sale.FieldDate, Label: "Fecha", Placeholder: "AAAA-MM-DD"},
		{Key: sale.FieldClient, Label: "Cliente", Placeholder: "Nombre del cliente"},
		{Key: sale.FieldDescription, Label: "Descripción", Placeholder: "Descripción de la venta"},
		{Key: sale.FieldSubtotal, Label: "Subtotal (COP)", Placeholder: "0"},
		{Key: sale.FieldVAT, Label: "IVA (COP)", Placeholder: "0"},
		{Key: sale.FieldStatus, Label: "Estado", Kind: fieldChoice, Options: statuses},
	}
}

func (salesLedger) NewDraft() editableDraft {
	d := sale.NewDraft()
	return &d
}

func (l salesLedger) Load(ctx context.Context, search string) ([]ledgerRow, error) {
	sales, err := l.svc.List(ctx, sale.ListFilter{Search: search})
	if err != nil {
		return nil, err
	}

	rows := make([]ledgerRow, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, ledgerRow{
			ID: s.ID,
			Cells: table.Row{
				FormatDate(s.Date),
				s.Client,
				s.Description,
				FormatAmount(s.Subtotal),
				FormatAmount(s.VAT),
				FormatAmount(s.Total),
				s.Status.Label(),
				rowActions,
			},
		})
	}

	return rows, nil
}

func (l salesLedger) Submit(d editableDraft) (func(ctx context.Context) error, error) {
	params, err := d.(*sale.Draft).Params()
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) error {
		_, err := l.svc.Create(ctx, params)
		return err
	}, nil
}

func (salesLedger) Created() notify.Notification { return sale.Created() }
