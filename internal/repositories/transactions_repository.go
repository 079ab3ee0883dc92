package repositories

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/okatiev/banking_api/internal/logging"
	"github.com/okatiev/banking_api/internal/models"
	"github.com/okatiev/banking_api/internal/storage"
	"github.com/okatiev/banking_api/internal/validation"
)

// endOfDaySuffix extends a bare-date "to" filter to cover the whole day.
// Appending the literal string keeps the comparison purely textual, which is
// correct because stored timestamps are fixed-width UTC strings ending in Z.
const endOfDaySuffix = "T23:59:59.999Z"

var csvHeader = []string{"id", "fromAccount", "toAccount", "amount", "currency", "type", "timestamp", "status"}

type TransactionsRepository struct {
	ledger LedgerStorage
	lg     *logging.ZapLogger
}

type LedgerStorage interface {
	Commit(v validation.Validated) models.Transaction
	FindByID(id string) (models.Transaction, error)
	Transactions() []models.Transaction
}

func NewTransactionsRepository(ldgr *storage.Ledger, lg *logging.ZapLogger) *TransactionsRepository {
	return &TransactionsRepository{ledger: ldgr, lg: lg}
}

// Create commits an already-validated transaction. Commit cannot fail, so
// there is no error path here.
func (rep *TransactionsRepository) Create(ctx context.Context, v validation.Validated) models.Transaction {
	transaction := rep.ledger.Commit(v)

	rep.lg.DebugCtx(
		ctx,
		"transaction committed",
		zap.String("transaction_id", transaction.ID),
		zap.String("type", string(transaction.Type)),
	)

	return transaction
}

func (rep *TransactionsRepository) FindByID(ctx context.Context, id string) (models.Transaction, error) {
	transaction, err := rep.ledger.FindByID(id)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("transactions_repository: find transaction error %w", err)
	}

	return transaction, nil
}

// Search returns transactions matching every supplied filter, preserving
// commit order.
func (rep *TransactionsRepository) Search(ctx context.Context, filters models.TransactionFilters) []models.Transaction {
	result := []models.Transaction{}

	for _, t := range rep.ledger.Transactions() {
		if matchesFilters(t, filters) {
			result = append(result, t)
		}
	}

	return result
}

// ExportCSV serializes the filtered transactions with a fixed header row.
// Absent account fields render as empty strings; none of the value domains
// contain commas, so no quoting is ever emitted.
func (rep *TransactionsRepository) ExportCSV(ctx context.Context, filters models.TransactionFilters) (string, error) {
	var b strings.Builder

	w := csv.NewWriter(&b)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("transactions_repository: write csv header error %w", err)
	}

	for _, t := range rep.Search(ctx, filters) {
		row := []string{
			t.ID,
			t.FromAccount,
			t.ToAccount,
			t.Amount.String(),
			t.Currency,
			string(t.Type),
			t.Timestamp,
			string(t.Status),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("transactions_repository: write csv row error %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("transactions_repository: flush csv error %w", err)
	}

	return b.String(), nil
}

func matchesFilters(t models.Transaction, filters models.TransactionFilters) bool {
	if filters.AccountID != "" && t.FromAccount != filters.AccountID && t.ToAccount != filters.AccountID {
		return false
	}

	if filters.Type != "" && t.Type != filters.Type {
		return false
	}

	if filters.From != "" && t.Timestamp < filters.From {
		return false
	}

	if filters.To != "" {
		to := filters.To
		if !strings.Contains(to, "T") {
			to += endOfDaySuffix
		}
		if t.Timestamp > to {
			return false
		}
	}

	return true
}
