package service

import (
	"context"
	"iter"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/attachment"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	return m.Called(ctx, action).Error(0)
}

type mockAccountReader struct {
	mock.Mock
}

func (m *mockAccountReader) FindByName(ctx context.Context, name string) (*account.Account, error) {
	args := m.Called(ctx, name)
	acc, _ := args.Get(0).(*account.Account)
	return acc, args.Error(1)
}

func (m *mockAccountReader) List(ctx context.Context, filter *account.AccountFilter) (*account.AccountListResult, error) {
	args := m.Called(ctx, filter)
	result, _ := args.Get(0).(*account.AccountListResult)
	return result, args.Error(1)
}

func (m *mockAccountReader) Descendants(ctx context.Context, name string) ([]*account.Account, error) {
	args := m.Called(ctx, name)
	accs, _ := args.Get(0).([]*account.Account)
	return accs, args.Error(1)
}

func (m *mockAccountReader) Ancestors(ctx context.Context, name string) ([]*account.Account, error) {
	args := m.Called(ctx, name)
	accs, _ := args.Get(0).([]*account.Account)
	return accs, args.Error(1)
}

type mockTransactionReader struct {
	mock.Mock
}

func (m *mockTransactionReader) All(ctx context.Context) iter.Seq2[*transaction.Transaction, error] {
	args := m.Called(ctx)
	seq, _ := args.Get(0).(iter.Seq2[*transaction.Transaction, error])
	return seq
}

func (m *mockTransactionReader) ByDateRange(ctx context.Context, dateRange transaction.DateRange) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, dateRange)
	txs, _ := args.Get(0).([]*transaction.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionReader) FindByID(ctx context.Context, id int64) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*transaction.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionReader) ForAccountSubtree(ctx context.Context, accountName string) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, accountName)
	txs, _ := args.Get(0).([]*transaction.Transaction)
	return txs, args.Error(1)
}

type mockTagReader struct {
	mock.Mock
}

func (m *mockTagReader) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

type mockAttachmentReader struct {
	mock.Mock
}

func (m *mockAttachmentReader) Find(ctx context.Context, transactionID int64, name string) (*attachment.Attachment, error) {
	args := m.Called(ctx, transactionID, name)
	a, _ := args.Get(0).(*attachment.Attachment)
	return a, args.Error(1)
}

type testDeps struct {
	processor    *mockProcessor
	accounts     *mockAccountReader
	transactions *mockTransactionReader
	tags         *mockTagReader
	attachments  *mockAttachmentReader
	service      *Service
}

func newTestDeps() *testDeps {
	d := &testDeps{
		processor:    new(mockProcessor),
		accounts:     new(mockAccountReader),
		transactions: new(mockTransactionReader),
		tags:         new(mockTagReader),
		attachments:  new(mockAttachmentReader),
	}
	d.service = NewService(&storage.Reader{
		Accounts:     d.accounts,
		Transactions: d.transactions,
		Tags:         d.tags,
		Attachments:  d.attachments,
	}, d.processor)
	return d
}
