package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// VATRate is the general IVA rate applied to every sale and expense draft.
var VATRate = decimal.RequireFromString("0.19")

var ErrInvalidAmount = errors.New("invalid amount")

// Separator between the peso sign and the digits, as browsers render es-CO currency.
const nbsp = "\u00a0"

// Parse reads an amount typed into a form ("378000", "1500.5").
// Empty, non-numeric and negative input is rejected.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}

	return d, nil
}

// ParseStatement parses a signed amount as Colombian banks print it.
// Format examples: "$ 1.234.567,89" -> 1234567.89, "-450.000" -> -450000, "2500000" -> 2500000.
func ParseStatement(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer("$", "", " ", "", nbsp, "").Replace(strings.TrimSpace(s))
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return d, nil
}

// VAT returns the IVA owed on a pre-tax amount.
func VAT(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(VATRate)
}

// Format renders an amount as Colombian pesos with no fraction digits,
// e.g. 2499000 -> "$\u00a02.499.000" and -450000 -> "-$\u00a0450.000".
func Format(d decimal.Decimal) string {
	v := d.Round(0)

	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Neg()
	}

	return sign + "$" + nbsp + humanize.FormatInteger("#.###,", int(v.IntPart()))
}
