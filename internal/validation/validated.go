package validation

import (
	"strings"

	"github.com/okatiev/banking_api/internal/models"
	"github.com/shopspring/decimal"
)

// Validated wraps transaction parameters that passed every validation rule.
// The field is unexported so the only way to obtain a non-zero Validated is
// through ValidateTransaction; the ledger commit path accepts nothing else.
type Validated struct {
	params models.CreateTransactionParams
}

func newValidated(params models.CreateTransactionParams) Validated {
	params.Currency = strings.ToUpper(params.Currency)
	return Validated{params: params}
}

func (v Validated) FromAccount() string { return v.params.FromAccount }

func (v Validated) ToAccount() string { return v.params.ToAccount }

func (v Validated) Amount() decimal.Decimal { return v.params.Amount }

func (v Validated) Currency() string { return v.params.Currency }

func (v Validated) Type() models.TransactionType { return v.params.Type }
