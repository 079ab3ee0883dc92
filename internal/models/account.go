package models

import "github.com/shopspring/decimal"

type AccountBalance struct {
	AccountID string          `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
}

// AccountSummary aggregates every transaction referencing the account.
// MostRecentTransactionDate is nil when the account has no transactions.
type AccountSummary struct {
	AccountID                 string          `json:"accountId"`
	TotalDeposits             decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals          decimal.Decimal `json:"totalWithdrawals"`
	NumberOfTransactions      int             `json:"numberOfTransactions"`
	MostRecentTransactionDate *string         `json:"mostRecentTransactionDate"`
	CurrentBalance            decimal.Decimal `json:"currentBalance"`
}

type InterestProjection struct {
	AccountID          string          `json:"accountId"`
	Principal          decimal.Decimal `json:"principal"`
	Rate               decimal.Decimal `json:"rate"`
	Days               int64           `json:"days"`
	Interest           decimal.Decimal `json:"interest"`
	TotalAfterInterest decimal.Decimal `json:"totalAfterInterest"`
}
