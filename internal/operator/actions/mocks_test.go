package actions

import (
	"context"
	"iter"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/attachment"
	"github.com/carson-networks/ledger-server/internal/storage/tag"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type mockSchemaWriter struct {
	mock.Mock
}

func (m *mockSchemaWriter) Create(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockAccountWriter struct {
	mock.Mock
}

func (m *mockAccountWriter) FindByName(ctx context.Context, name string) (*account.Account, error) {
	args := m.Called(ctx, name)
	acc, _ := args.Get(0).(*account.Account)
	return acc, args.Error(1)
}

func (m *mockAccountWriter) List(ctx context.Context, filter *account.AccountFilter) (*account.AccountListResult, error) {
	args := m.Called(ctx, filter)
	result, _ := args.Get(0).(*account.AccountListResult)
	return result, args.Error(1)
}

func (m *mockAccountWriter) Descendants(ctx context.Context, name string) ([]*account.Account, error) {
	args := m.Called(ctx, name)
	accs, _ := args.Get(0).([]*account.Account)
	return accs, args.Error(1)
}

func (m *mockAccountWriter) Ancestors(ctx context.Context, name string) ([]*account.Account, error) {
	args := m.Called(ctx, name)
	accs, _ := args.Get(0).([]*account.Account)
	return accs, args.Error(1)
}

func (m *mockAccountWriter) FindByNameForUpdate(ctx context.Context, name string) (*account.Account, error) {
	args := m.Called(ctx, name)
	acc, _ := args.Get(0).(*account.Account)
	return acc, args.Error(1)
}

func (m *mockAccountWriter) InsertIgnore(ctx context.Context, creates []account.AccountCreate) error {
	return m.Called(ctx, creates).Error(0)
}

func (m *mockAccountWriter) LinkIgnore(ctx context.Context, links []ledger.AncestorLink) error {
	return m.Called(ctx, links).Error(0)
}

func (m *mockAccountWriter) UpdateBalance(ctx context.Context, update account.BalanceUpdate) error {
	return m.Called(ctx, update).Error(0)
}

type mockTransactionWriter struct {
	mock.Mock
}

func (m *mockTransactionWriter) All(ctx context.Context) iter.Seq2[*transaction.Transaction, error] {
	args := m.Called(ctx)
	seq, _ := args.Get(0).(iter.Seq2[*transaction.Transaction, error])
	return seq
}

func (m *mockTransactionWriter) ByDateRange(ctx context.Context, dateRange transaction.DateRange) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, dateRange)
	txs, _ := args.Get(0).([]*transaction.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionWriter) FindByID(ctx context.Context, id int64) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*transaction.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionWriter) ForAccountSubtree(ctx context.Context, accountName string) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, accountName)
	txs, _ := args.Get(0).([]*transaction.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionWriter) Insert(ctx context.Context, create *transaction.TransactionCreate) (int64, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionWriter) LinkDebit(ctx context.Context, link transaction.AccountLink) error {
	return m.Called(ctx, link).Error(0)
}

func (m *mockTransactionWriter) LinkCredit(ctx context.Context, link transaction.AccountLink) error {
	return m.Called(ctx, link).Error(0)
}

func (m *mockTransactionWriter) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockTagWriter struct {
	mock.Mock
}

func (m *mockTagWriter) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *mockTagWriter) InsertIgnore(ctx context.Context, names []string) error {
	return m.Called(ctx, names).Error(0)
}

func (m *mockTagWriter) LinkIgnore(ctx context.Context, links []tag.Categorization) error {
	return m.Called(ctx, links).Error(0)
}

type mockAttachmentWriter struct {
	mock.Mock
}

func (m *mockAttachmentWriter) Find(ctx context.Context, transactionID int64, name string) (*attachment.Attachment, error) {
	args := m.Called(ctx, transactionID, name)
	a, _ := args.Get(0).(*attachment.Attachment)
	return a, args.Error(1)
}

func (m *mockAttachmentWriter) Insert(ctx context.Context, a *attachment.Attachment) error {
	return m.Called(ctx, a).Error(0)
}

type testWriter struct {
	*storage.Writer
	schema      *mockSchemaWriter
	account     *mockAccountWriter
	transaction *mockTransactionWriter
	tag         *mockTagWriter
	attachment  *mockAttachmentWriter
}

func newTestWriter() *testWriter {
	w := &testWriter{
		schema:      new(mockSchemaWriter),
		account:     new(mockAccountWriter),
		transaction: new(mockTransactionWriter),
		tag:         new(mockTagWriter),
		attachment:  new(mockAttachmentWriter),
	}
	w.Writer = &storage.Writer{
		Schema:      w.schema,
		Account:     w.account,
		Transaction: w.transaction,
		Tag:         w.tag,
		Attachment:  w.attachment,
	}
	return w
}

func (w *testWriter) assertExpectations(t mock.TestingT) {
	w.schema.AssertExpectations(t)
	w.account.AssertExpectations(t)
	w.transaction.AssertExpectations(t)
	w.tag.AssertExpectations(t)
	w.attachment.AssertExpectations(t)
}
