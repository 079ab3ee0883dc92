package repositories

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/fx/fxtest"

	"github.com/okatiev/banking_api/internal/config"
	"github.com/okatiev/banking_api/internal/logging"
	"github.com/okatiev/banking_api/internal/models"
	"github.com/okatiev/banking_api/internal/storage"
	"github.com/okatiev/banking_api/internal/validation"
	"github.com/shopspring/decimal"
)

// fakeLedger serves read paths with a fixed log, so filter tests control
// timestamps exactly.
type fakeLedger struct {
	transactions []models.Transaction
}

func (f *fakeLedger) Commit(v validation.Validated) models.Transaction {
	panic("not used")
}

func (f *fakeLedger) FindByID(id string) (models.Transaction, error) {
	for _, t := range f.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Transaction{}, storage.ErrTransactionNotFound
}

func (f *fakeLedger) Transactions() []models.Transaction {
	return f.transactions
}

func testLogger(t *testing.T) *logging.ZapLogger {
	t.Helper()
	lg, err := logging.NewZapLogger(&config.Config{LogLevel: 3})
	if err != nil {
		t.Fatal(err)
	}
	return lg
}

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fixedLog() []models.Transaction {
	return []models.Transaction{
		{
			ID: "tx-1", ToAccount: "ACC-12345", Amount: amount("1000"), Currency: "USD",
			Type: models.TypeDeposit, Timestamp: "2024-01-14T09:00:00.000Z", Status: models.StatusCompleted,
		},
		{
			ID: "tx-2", FromAccount: "ACC-12345", ToAccount: "ACC-67890", Amount: amount("300.5"), Currency: "USD",
			Type: models.TypeTransfer, Timestamp: "2024-01-15T10:30:00.000Z", Status: models.StatusCompleted,
		},
		{
			ID: "tx-3", FromAccount: "ACC-67890", Amount: amount("50"), Currency: "EUR",
			Type: models.TypeWithdrawal, Timestamp: "2024-01-16T23:59:59.999Z", Status: models.StatusCompleted,
		},
	}
}

func ids(transactions []models.Transaction) []string {
	out := make([]string, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, t.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	rep := &TransactionsRepository{ledger: &fakeLedger{transactions: fixedLog()}, lg: testLogger(t)}
	ctx := context.Background()

	tests := []struct {
		name    string
		filters models.TransactionFilters
		want    []string
	}{
		{name: "no filters returns all in commit order", want: []string{"tx-1", "tx-2", "tx-3"}},
		{name: "by account matches from or to", filters: models.TransactionFilters{AccountID: "ACC-67890"}, want: []string{"tx-2", "tx-3"}},
		{name: "by type", filters: models.TransactionFilters{Type: models.TypeDeposit}, want: []string{"tx-1"}},
		{name: "account and type are conjunctive", filters: models.TransactionFilters{AccountID: "ACC-67890", Type: models.TypeTransfer}, want: []string{"tx-2"}},
		{name: "from bound is inclusive", filters: models.TransactionFilters{From: "2024-01-15T10:30:00.000Z"}, want: []string{"tx-2", "tx-3"}},
		{name: "to bound is inclusive", filters: models.TransactionFilters{To: "2024-01-15T10:30:00.000Z"}, want: []string{"tx-1", "tx-2"}},
		{name: "bare date to includes whole day", filters: models.TransactionFilters{To: "2024-01-16"}, want: []string{"tx-1", "tx-2", "tx-3"}},
		{name: "bare date to excludes later days", filters: models.TransactionFilters{To: "2024-01-14"}, want: []string{"tx-1"}},
		{name: "no match", filters: models.TransactionFilters{AccountID: "ACC-AAAAA"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(rep.Search(ctx, tt.filters))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestExportCSV(t *testing.T) {
	rep := &TransactionsRepository{ledger: &fakeLedger{transactions: fixedLog()}, lg: testLogger(t)}

	content, err := rep.ExportCSV(context.Background(), models.TransactionFilters{})
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"id,fromAccount,toAccount,amount,currency,type,timestamp,status",
		"tx-1,,ACC-12345,1000,USD,deposit,2024-01-14T09:00:00.000Z,completed",
		"tx-2,ACC-12345,ACC-67890,300.5,USD,transfer,2024-01-15T10:30:00.000Z,completed",
		"tx-3,ACC-67890,,50,EUR,withdrawal,2024-01-16T23:59:59.999Z,completed",
	}, "\n") + "\n"

	if content != want {
		t.Fatalf("csv mismatch\ngot:\n%s\nwant:\n%s", content, want)
	}
}

func TestExportCSVAppliesFilters(t *testing.T) {
	rep := &TransactionsRepository{ledger: &fakeLedger{transactions: fixedLog()}, lg: testLogger(t)}

	content, err := rep.ExportCSV(context.Background(), models.TransactionFilters{Type: models.TypeWithdrawal})
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines=%d want header plus one row: %q", len(lines), content)
	}
	if !strings.HasPrefix(lines[1], "tx-3,") {
		t.Fatalf("row=%q want tx-3", lines[1])
	}
}

func TestFindByIDNotFound(t *testing.T) {
	rep := &TransactionsRepository{ledger: &fakeLedger{}, lg: testLogger(t)}

	_, err := rep.FindByID(context.Background(), "missing")
	if !errors.Is(err, storage.ErrTransactionNotFound) {
		t.Fatalf("want ErrTransactionNotFound, got %v", err)
	}
}

func TestCreateThenFindByID(t *testing.T) {
	lg := testLogger(t)
	rep := NewTransactionsRepository(storage.NewLedger(fxtest.NewLifecycle(t), lg), lg)
	ctx := context.Background()

	v, errs := validation.ValidateTransaction(models.CreateTransactionParams{
		ToAccount: "ACC-12345",
		Amount:    amount("1000"),
		Currency:  "usd",
		Type:      models.TypeDeposit,
	})
	if len(errs) > 0 {
		t.Fatalf("unexpected validation errors %v", errs)
	}

	committed := rep.Create(ctx, v)
	if committed.Currency != "USD" {
		t.Fatalf("currency=%q want upper-cased USD", committed.Currency)
	}

	found, err := rep.FindByID(ctx, committed.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(found, committed) {
		t.Fatalf("got=%+v want=%+v", found, committed)
	}
}
