package models

import "github.com/shopspring/decimal"

// Money fields marshal as JSON numbers, matching the wire format.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeTransfer   TransactionType = "transfer"
)

func (t TransactionType) Known() bool {
	switch t {
	case TypeDeposit, TypeWithdrawal, TypeTransfer:
		return true
	default:
		return false
	}
}

// TransactionStatus keeps the full pending/completed/failed set for wire
// compatibility, but the service only ever produces StatusCompleted.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is an immutable committed record. FromAccount and ToAccount are
// optional, which of them is set depends on Type. Timestamp is a fixed-width
// UTC string, lexicographic order equals chronological order.
type Transaction struct {
	ID          string            `json:"id"`
	FromAccount string            `json:"fromAccount,omitempty"`
	ToAccount   string            `json:"toAccount,omitempty"`
	Amount      decimal.Decimal   `json:"amount"`
	Currency    string            `json:"currency"`
	Type        TransactionType   `json:"type"`
	Timestamp   string            `json:"timestamp"`
	Status      TransactionStatus `json:"status"`
}

// CreateTransactionParams is the wire shape of a create request before
// validation. Amount decodes through shopspring/decimal, so a non-numeric
// amount fails at the adapter and never reaches the validator.
type CreateTransactionParams struct {
	FromAccount string          `json:"fromAccount"`
	ToAccount   string          `json:"toAccount"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Type        TransactionType `json:"type"`
}

// TransactionFilters narrows listings and exports. All fields are optional and
// conjunctive; empty string means "no filter".
type TransactionFilters struct {
	AccountID string
	Type      TransactionType
	From      string
	To        string
}
