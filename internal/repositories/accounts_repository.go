package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/okatiev/banking_api/internal/logging"
	"github.com/okatiev/banking_api/internal/models"
	"github.com/okatiev/banking_api/internal/storage"
)

var daysPerYear = decimal.NewFromInt(365)

// AccountsRepository answers read-only account queries over the ledger. It
// never mutates state.
type AccountsRepository struct {
	ledger AccountsStorage
	lg     *logging.ZapLogger
}

type AccountsStorage interface {
	Balance(accountID string) decimal.Decimal
	Transactions() []models.Transaction
}

func NewAccountsRepository(ldgr *storage.Ledger, lg *logging.ZapLogger) *AccountsRepository {
	return &AccountsRepository{ledger: ldgr, lg: lg}
}

func (rep *AccountsRepository) Balance(ctx context.Context, accountID string) models.AccountBalance {
	return models.AccountBalance{
		AccountID: accountID,
		Balance:   rep.ledger.Balance(accountID).Round(2),
		Currency:  "USD",
	}
}

// Summary folds every transaction referencing the account into totals.
// Deposits count money arriving at the account (deposits and incoming
// transfers), withdrawals count money leaving it (withdrawals and outgoing
// transfers).
func (rep *AccountsRepository) Summary(ctx context.Context, accountID string) models.AccountSummary {
	totalDeposits := decimal.Zero
	totalWithdrawals := decimal.Zero
	count := 0
	var mostRecent *string

	for _, t := range rep.ledger.Transactions() {
		if t.FromAccount != accountID && t.ToAccount != accountID {
			continue
		}

		count++
		if mostRecent == nil || t.Timestamp > *mostRecent {
			ts := t.Timestamp
			mostRecent = &ts
		}

		if t.ToAccount == accountID && (t.Type == models.TypeDeposit || t.Type == models.TypeTransfer) {
			totalDeposits = totalDeposits.Add(t.Amount)
		}

		if t.FromAccount == accountID && (t.Type == models.TypeWithdrawal || t.Type == models.TypeTransfer) {
			totalWithdrawals = totalWithdrawals.Add(t.Amount)
		}
	}

	return models.AccountSummary{
		AccountID:                 accountID,
		TotalDeposits:             totalDeposits.Round(2),
		TotalWithdrawals:          totalWithdrawals.Round(2),
		NumberOfTransactions:      count,
		MostRecentTransactionDate: mostRecent,
		CurrentBalance:            rep.ledger.Balance(accountID).Round(2),
	}
}

// Interest projects simple interest on the current balance:
// interest = principal * rate * days / 365.
func (rep *AccountsRepository) Interest(ctx context.Context, accountID string, rate decimal.Decimal, days int64) models.InterestProjection {
	principal := rep.ledger.Balance(accountID).Round(2)
	interest := principal.Mul(rate).Mul(decimal.NewFromInt(days)).Div(daysPerYear).Round(2)

	return models.InterestProjection{
		AccountID:          accountID,
		Principal:          principal,
		Rate:               rate,
		Days:               days,
		Interest:           interest,
		TotalAfterInterest: principal.Add(interest).Round(2),
	}
}
