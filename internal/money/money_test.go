package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/contasimple/internal/money"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Zero", in: "0", want: "$\u00a00"},
		{name: "Hundreds", in: "950", want: "$\u00a0950"},
		{name: "Thousands", in: "450000", want: "$\u00a0450.000"},
		{name: "Millions", in: "2499000", want: "$\u00a02.499.000"},
		{name: "RoundsHalfUp", in: "71820.5", want: "$\u00a071.821"},
		{name: "DropsFraction", in: "1999.4", want: "$\u00a01.999"},
		{name: "Negative", in: "-450000", want: "-$\u00a0450.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestParse(t *testing.T) {
	got, err := money.Parse(" 378000 ")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(378000)))

	got, err = money.Parse("1500.50")
	require.NoError(t, err)
	assert.Equal(t, "1500.5", got.String())

	for _, in := range []string{"", "abc", "12,5", "-1"} {
		_, err := money.Parse(in)
		assert.ErrorIs(t, err, money.ErrInvalidAmount, "input %q", in)
	}
}

func TestParseStatement(t *testing.T) {
	tests := map[string]string{
		"1.234.567,89":   "1234567.89",
		"-450.000":       "-450000",
		"$ 2.500.000":    "2500000",
		"$\u00a01.800,5": "1800.5",
	}

	for in, want := range tests {
		got, err := money.ParseStatement(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}

	_, err := money.ParseStatement("n/a")
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestVAT(t *testing.T) {
	assert.Equal(t, "190000", money.VAT(decimal.NewFromInt(1000000)).String())
	assert.Equal(t, "71820", money.VAT(decimal.NewFromInt(378000)).String())
}
