package view

import (
	"context"
	"time"

	"github.com/MrJamesThe3rd/contasimple/internal/money"
	"github.com/shopspring/decimal"
)

const svcTimeout = 5 * time.Second

// FormatAmount renders an amount the way every table shows money: "$ 2.499.000".
func FormatAmount(d decimal.Decimal) string {
	return money.Format(d)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}

	return "No"
}

// svcCtx returns a context with a standard timeout for service calls.
func svcCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), svcTimeout)
}
