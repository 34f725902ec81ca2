package bankincome_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/contasimple/internal/bankincome"
	"github.com/MrJamesThe3rd/contasimple/internal/money"
	"github.com/MrJamesThe3rd/contasimple/internal/validation"
)

func validDraft() bankincome.Draft {
	d := bankincome.NewDraft()
	d.Date = "2024-01-14"
	d.Bank = "Davivienda"
	d.AccountNumber = "****-5678"
	d.Amount = "1800000"
	d.Concept = "Transferencia por servicios"
	d.Reference = "TRF-20240114-002"

	return d
}

func TestDraft_Params(t *testing.T) {
	p, err := validDraft().Params()
	require.NoError(t, err)
	assert.Equal(t, bankincome.StatusPending, p.Status)
	assert.Nil(t, p.ConfirmedDate)
	assert.Equal(t, "1800000", p.Amount.String())

	d := validDraft()
	require.NoError(t, d.Set(bankincome.FieldStatus, string(bankincome.StatusConfirmed)))
	p, err = d.Params()
	require.NoError(t, err)
	require.NotNil(t, p.ConfirmedDate)
	assert.Equal(t, "2024-01-14", p.ConfirmedDate.Format(time.DateOnly))

	d = validDraft()
	d.Bank = ""
	_, err = d.Params()
	assert.NoError(t, err)
}

func TestDraft_ParamsRejectsInvalidInput(t *testing.T) {
	d := validDraft()
	d.Reference = ""
	_, err := d.Params()
	assert.ErrorIs(t, err, validation.ErrInvalid)

	d = validDraft()
	d.Bank = "Banco Imaginario"
	_, err = d.Params()
	assert.ErrorIs(t, err, validation.ErrInvalid)

	d = validDraft()
	d.Status = "anulado"
	_, err = d.Params()
	assert.ErrorIs(t, err, validation.ErrInvalid)

	d = validDraft()
	d.Amount = "1.800.000,00"
	_, err = d.Params()
	assert.ErrorIs(t, err, money.ErrInvalidAmount)

	assert.ErrorIs(t, d.Set("iva", "1"), bankincome.ErrUnknownField)
}

func TestBankIncome_Confirm(t *testing.T) {
	today := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	for _, status := range []bankincome.Status{bankincome.StatusConfirmed, bankincome.StatusRejected} {
		b := &bankincome.BankIncome{Status: status}
		assert.ErrorIs(t, b.Confirm(today), bankincome.ErrNotPending, string(status))
	}

	b := &bankincome.BankIncome{Status: bankincome.StatusPending}
	require.NoError(t, b.Confirm(today))
	assert.Equal(t, bankincome.StatusConfirmed, b.Status)
	assert.Equal(t, today, *b.ConfirmedDate)
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("COT", -5*60*60)
	got := bankincome.Today(time.Date(2024, 3, 5, 23, 30, 0, 0, loc))
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestFilter(t *testing.T) {
	seed := bankincome.Seed()

	got := bankincome.Filter(seed, "trf-20240114")
	require.Len(t, got, 1)
	assert.Equal(t, "Davivienda", got[0].Bank)

	assert.Len(t, bankincome.Filter(seed, "BANCOLOMBIA"), 1)
	assert.Len(t, bankincome.Filter(seed, ""), 2)
	assert.Len(t, seed, 2)
}
