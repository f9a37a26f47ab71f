package service

import (
	"context"
	"errors"
	"iter"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/attachment"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

func makeStorageTransaction(id int64, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		ID:            id,
		Date:          date,
		Amount:        decimal.RequireFromString("12.50"),
		Currency:      "USD",
		DebitAccount:  "Groceries",
		CreditAccount: "Checking",
		Tags:          pq.StringArray{"food"},
		Attachments:   pq.StringArray{},
	}
}

func seqOf(rows []*transaction.Transaction, err error) iter.Seq2[*transaction.Transaction, error] {
	return func(yield func(*transaction.Transaction, error) bool) {
		for _, row := range rows {
			if !yield(row, nil) {
				return
			}
		}
		if err != nil {
			yield(nil, err)
		}
	}
}

// -- PostTransaction tests --

func TestPostTransaction_Success(t *testing.T) {
	d := newTestDeps()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	d.processor.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.PostTransaction) bool {
		return a.DebitAccount == "Groceries" &&
			a.CreditAccount == "Checking" &&
			a.Amount.Equal(decimal.RequireFromString("12.50")) &&
			len(a.Attachments) == 1 && a.Attachments[0].Name == "receipt.png"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.PostTransaction).Result = makeStorageTransaction(11, date)
	}).Return(nil).Once()

	tx, err := d.service.Transaction.PostTransaction(context.Background(), TransactionCreate{
		Date:          date,
		Amount:        decimal.RequireFromString("12.50"),
		Currency:      "USD",
		DebitAccount:  "Groceries",
		CreditAccount: "Checking",
		Tags:          []string{"food"},
		Attachments:   []Attachment{{Name: "receipt.png", Data: []byte{0x89}}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), tx.ID)
	assert.Equal(t, []string{"food"}, tx.Tags)
	d.processor.AssertExpectations(t)
}

func TestPostTransaction_Rejected(t *testing.T) {
	d := newTestDeps()
	d.processor.On("Process", mock.Anything, mock.Anything).Return(ledger.ErrSameAccount).Once()

	tx, err := d.service.Transaction.PostTransaction(context.Background(), TransactionCreate{})

	assert.ErrorIs(t, err, ledger.ErrSameAccount)
	assert.Nil(t, tx)
}

// -- Query tests --

func TestGetAll_IsRestartable(t *testing.T) {
	d := newTestDeps()
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []*transaction.Transaction{makeStorageTransaction(1, date), makeStorageTransaction(2, date)}
	d.transactions.On("All", mock.Anything).Return(seqOf(rows, nil))

	all := d.service.Transaction.GetAll(context.Background())
	for range 2 {
		var ids []int64
		for tx, err := range all {
			require.NoError(t, err)
			ids = append(ids, tx.ID)
		}
		assert.Equal(t, []int64{1, 2}, ids)
	}
}

func TestListTransactions_StopsOnError(t *testing.T) {
	d := newTestDeps()
	rows := []*transaction.Transaction{makeStorageTransaction(1, time.Now())}
	d.transactions.On("All", mock.Anything).Return(seqOf(rows, ledger.ErrStorageUnavailable))

	txs, err := d.service.Transaction.ListTransactions(context.Background())

	assert.ErrorIs(t, err, ledger.ErrStorageUnavailable)
	assert.Nil(t, txs)
}

func TestGetByDateRange(t *testing.T) {
	d := newTestDeps()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	d.transactions.On("ByDateRange", mock.Anything, transaction.DateRange{Start: start, End: end}).
		Return([]*transaction.Transaction{
			makeStorageTransaction(1, start),
			makeStorageTransaction(2, start.AddDate(0, 0, 14)),
		}, nil).Once()

	txs, err := d.service.Transaction.GetByDateRange(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.True(t, txs[0].Date.Before(txs[1].Date))
}

func TestGetByID_NotFound(t *testing.T) {
	d := newTestDeps()
	d.transactions.On("FindByID", mock.Anything, int64(99)).Return(nil, ledger.ErrNotFound).Once()

	tx, err := d.service.Transaction.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ledger.ErrNotFound)
	assert.Nil(t, tx)
}

func TestListForAccount(t *testing.T) {
	d := newTestDeps()
	d.accounts.On("FindByName", mock.Anything, "Expenses").Return(makeStorageAccounts("Expenses")[0], nil).Once()
	d.transactions.On("ForAccountSubtree", mock.Anything, "Expenses").
		Return([]*transaction.Transaction{makeStorageTransaction(4, time.Now())}, nil).Once()

	txs, err := d.service.Transaction.ListForAccount(context.Background(), "Expenses")

	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestListForAccount_UnknownAccount(t *testing.T) {
	d := newTestDeps()
	d.accounts.On("FindByName", mock.Anything, "Nope").Return(nil, ledger.ErrAccountNotFound).Once()

	_, err := d.service.Transaction.ListForAccount(context.Background(), "Nope")

	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
	d.transactions.AssertNotCalled(t, "ForAccountSubtree", mock.Anything, mock.Anything)
}

// -- Supplementary write tests --

func TestDeleteTransaction(t *testing.T) {
	d := newTestDeps()
	d.processor.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.DeleteTransaction) bool {
		return a.ID == 8
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.DeleteTransaction).Result = makeStorageTransaction(8, time.Now())
	}).Return(nil).Once()

	tx, err := d.service.Transaction.DeleteTransaction(context.Background(), 8)

	require.NoError(t, err)
	assert.Equal(t, int64(8), tx.ID)
}

func TestTagTransaction_ReturnsUpdated(t *testing.T) {
	d := newTestDeps()
	d.processor.On("Process", mock.Anything, &actions.TagTransaction{TransactionID: 3, Tags: []string{"food"}}).Return(nil).Once()
	d.transactions.On("FindByID", mock.Anything, int64(3)).Return(makeStorageTransaction(3, time.Now()), nil).Once()

	tx, err := d.service.Transaction.TagTransaction(context.Background(), 3, []string{"food"})

	require.NoError(t, err)
	assert.Equal(t, []string{"food"}, tx.Tags)
}

func TestAttachments(t *testing.T) {
	d := newTestDeps()
	d.processor.On("Process", mock.Anything, &actions.AddAttachment{TransactionID: 3, Name: "a.txt", Data: []byte("hi")}).Return(nil).Once()
	d.attachments.On("Find", mock.Anything, int64(3), "a.txt").
		Return(&attachment.Attachment{Name: "a.txt", TransactionID: 3, Data: []byte("hi")}, nil).Once()

	require.NoError(t, d.service.Transaction.AddAttachment(context.Background(), Attachment{TransactionID: 3, Name: "a.txt", Data: []byte("hi")}))

	got, err := d.service.Transaction.GetAttachment(context.Background(), 3, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), got.Data)
}

func TestListTags(t *testing.T) {
	d := newTestDeps()
	d.tags.On("List", mock.Anything).Return(nil, errors.New("down")).Once()

	_, err := d.service.Transaction.ListTags(context.Background())

	assert.EqualError(t, err, "down")
}
