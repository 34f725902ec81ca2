// Package importer reads bank statement exports and turns their credits into
// pending bank incomes waiting for confirmation.
package importer

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/contasimple/internal/notify"
)

type Bank string

const (
	BankBancolombia Bank = "bancolombia"
	BankDavivienda  Bank = "davivienda"
)

var (
	ErrUnknownBank = errors.New("unknown bank")
	ErrNoHeader    = errors.New("statement header not found")
)

// Entry is one credit read from a statement. Amount is always positive.
type Entry struct {
	Date        time.Time
	Description string
	Reference   string
	Amount      decimal.Decimal
}

// Imported is the notification shown after n statement credits were registered.
func Imported(n int) notify.Notification {
	return notify.New("Extracto importado", fmt.Sprintf("Se registraron %d ingresos pendientes de confirmación.", n))
}
