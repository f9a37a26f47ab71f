package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
)

// mockTransactionService implements every consumer interface in this package.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) PostTransaction(ctx context.Context, create service.TransactionCreate) (*service.Transaction, error) {
	args := m.Called(ctx, create)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context) ([]service.Transaction, error) {
	args := m.Called(ctx)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionService) GetByDateRange(ctx context.Context, start, end time.Time) ([]service.Transaction, error) {
	args := m.Called(ctx, start, end)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionService) GetByID(ctx context.Context, id int64) (*service.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, id int64) (*service.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) ListForAccount(ctx context.Context, name string) ([]service.Transaction, error) {
	args := m.Called(ctx, name)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionService) TagTransaction(ctx context.Context, id int64, tags []string) (*service.Transaction, error) {
	args := m.Called(ctx, id, tags)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) ListTags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	tags, _ := args.Get(0).([]string)
	return tags, args.Error(1)
}

func (m *mockTransactionService) AddAttachment(ctx context.Context, a service.Attachment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockTransactionService) GetAttachment(ctx context.Context, transactionID int64, name string) (*service.Attachment, error) {
	args := m.Called(ctx, transactionID, name)
	a, _ := args.Get(0).(*service.Attachment)
	return a, args.Error(1)
}

// newTestAPI registers every handler against a humatest API and returns it.
func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewTransactionHandler(svc).Register(api)
	NewAccountTransactionsHandler(svc).Register(api)
	NewTagsHandler(svc).Register(api)
	NewAttachmentsHandler(svc).Register(api)
	return api
}

func makeTransaction(id int64, date time.Time) service.Transaction {
	return service.Transaction{
		ID:            id,
		Date:          date,
		Amount:        decimal.RequireFromString("12.50"),
		Currency:      "USD",
		DebitAccount:  "Groceries",
		CreditAccount: "Checking",
	}
}
