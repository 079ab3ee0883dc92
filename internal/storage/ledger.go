package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okatiev/banking_api/internal/logging"
	"github.com/okatiev/banking_api/internal/models"
	"github.com/okatiev/banking_api/internal/validation"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// TimestampLayout renders commit time as a fixed-width UTC string with a
// literal Z suffix, so lexicographic comparison equals chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

var ErrTransactionNotFound = errors.New("transaction not found")

// Ledger owns all mutable state: the append-only transaction log and the
// balance map derived from it. Commit is the only mutating operation and
// applies both inside one critical section, so readers never observe a
// transaction without its balance effect.
type Ledger struct {
	mu           sync.RWMutex
	transactions []models.Transaction
	balances     map[string]decimal.Decimal

	now   func() time.Time
	newID func() string
}

func NewLedger(lc fx.Lifecycle, lg *logging.ZapLogger) *Ledger {
	ldgr := &Ledger{
		balances: make(map[string]decimal.Decimal),
		now:      time.Now,
		newID:    uuid.NewString,
	}

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				lg.InfoCtx(ctx, "in-memory ledger ready")
				return nil
			},
		},
	)

	return ldgr
}

// Commit assigns a fresh id and timestamp, appends the transaction and
// applies its balance effect. It only accepts validation.Validated, so an
// unvalidated transaction cannot reach the log by construction. Commit
// cannot fail once validation has passed.
func (l *Ledger) Commit(v validation.Validated) models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	transaction := models.Transaction{
		ID:          l.newID(),
		FromAccount: v.FromAccount(),
		ToAccount:   v.ToAccount(),
		Amount:      v.Amount(),
		Currency:    v.Currency(),
		Type:        v.Type(),
		Timestamp:   l.now().UTC().Format(TimestampLayout),
		Status:      models.StatusCompleted,
	}

	l.transactions = append(l.transactions, transaction)
	l.applyBalanceEffect(transaction)

	return transaction
}

// applyBalanceEffect folds one transaction into the balance map. Balances may
// go negative: the validator never consults balances and no overdraft rule
// exists. Callers must hold l.mu.
func (l *Ledger) applyBalanceEffect(t models.Transaction) {
	switch t.Type {
	case models.TypeDeposit:
		if t.ToAccount != "" {
			l.balances[t.ToAccount] = l.balances[t.ToAccount].Add(t.Amount)
		}
	case models.TypeWithdrawal:
		if t.FromAccount != "" {
			l.balances[t.FromAccount] = l.balances[t.FromAccount].Sub(t.Amount)
		}
	case models.TypeTransfer:
		if t.FromAccount != "" {
			l.balances[t.FromAccount] = l.balances[t.FromAccount].Sub(t.Amount)
		}
		if t.ToAccount != "" {
			l.balances[t.ToAccount] = l.balances[t.ToAccount].Add(t.Amount)
		}
	}
}

// FindByID returns the transaction with the given id or
// ErrTransactionNotFound. An unknown id is a normal outcome, not a failure.
func (l *Ledger) FindByID(id string) (models.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, t := range l.transactions {
		if t.ID == id {
			return t, nil
		}
	}

	return models.Transaction{}, ErrTransactionNotFound
}

// Transactions returns a snapshot of the log in commit order.
func (l *Ledger) Transactions() []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Transaction, len(l.transactions))
	copy(out, l.transactions)

	return out
}

// Balance returns the current balance for the account; an account that never
// appeared in any transaction reads as zero.
func (l *Ledger) Balance(accountID string) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.balances[accountID]
}
