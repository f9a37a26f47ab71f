package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/attachment"
	"github.com/carson-networks/ledger-server/internal/storage/tag"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

func newPost() *PostTransaction {
	return &PostTransaction{
		Date:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.RequireFromString("25.00"),
		Currency:      "USD",
		DebitAccount:  "Groceries",
		CreditAccount: "Checking",
	}
}

func expectAccounts(w *testWriter, debitOn, creditOn ledger.IncreaseOn) {
	w.account.On("FindByNameForUpdate", mock.Anything, "Checking").Return(&account.Account{
		Name: "Checking", Balance: decimal.RequireFromString("100"), IncreaseOn: creditOn,
	}, nil).Once()
	w.account.On("FindByNameForUpdate", mock.Anything, "Groceries").Return(&account.Account{
		Name: "Groceries", Balance: decimal.RequireFromString("10"), IncreaseOn: debitOn,
	}, nil).Once()
}

func balanceIs(name, want string) interface{} {
	return mock.MatchedBy(func(u account.BalanceUpdate) bool {
		return u.Name == name && u.Balance.Equal(decimal.RequireFromString(want))
	})
}

func TestPostTransaction_BalanceTable(t *testing.T) {
	cases := []struct {
		debitOn, creditOn     ledger.IncreaseOn
		debitWant, creditWant string
	}{
		{ledger.OnDebit, ledger.OnCredit, "35", "125"},
		{ledger.OnDebit, ledger.OnDebit, "35", "75"},
		{ledger.OnCredit, ledger.OnCredit, "-15", "125"},
		{ledger.OnCredit, ledger.OnDebit, "-15", "75"},
	}

	for _, tc := range cases {
		t.Run(string(tc.debitOn)+"_"+string(tc.creditOn), func(t *testing.T) {
			w := newTestWriter()
			expectAccounts(w, tc.debitOn, tc.creditOn)
			w.account.On("UpdateBalance", mock.Anything, balanceIs("Groceries", tc.debitWant)).Return(nil).Once()
			w.account.On("UpdateBalance", mock.Anything, balanceIs("Checking", tc.creditWant)).Return(nil).Once()
			w.transaction.On("Insert", mock.Anything, mock.Anything).Return(int64(7), nil).Once()
			w.transaction.On("LinkDebit", mock.Anything, transaction.AccountLink{TransactionID: 7, AccountName: "Groceries"}).Return(nil).Once()
			w.transaction.On("LinkCredit", mock.Anything, transaction.AccountLink{TransactionID: 7, AccountName: "Checking"}).Return(nil).Once()
			w.transaction.On("FindByID", mock.Anything, int64(7)).Return(&transaction.Transaction{ID: 7}, nil).Once()

			action := newPost()
			require.NoError(t, action.Perform(context.Background(), w.Writer))
			assert.Equal(t, int64(7), action.Result.ID)
			w.assertExpectations(t)
			w.tag.AssertNotCalled(t, "InsertIgnore", mock.Anything, mock.Anything)
		})
	}
}

func TestPostTransaction_TagsAndAttachments(t *testing.T) {
	w := newTestWriter()
	expectAccounts(w, ledger.OnDebit, ledger.OnCredit)
	w.account.On("UpdateBalance", mock.Anything, mock.Anything).Return(nil).Twice()
	w.transaction.On("Insert", mock.Anything, mock.MatchedBy(func(c *transaction.TransactionCreate) bool {
		return c.Currency == "USD" && c.Amount.Equal(decimal.RequireFromString("25")) && *c.Description == "weekly shop"
	})).Return(int64(3), nil).Once()
	w.transaction.On("LinkDebit", mock.Anything, mock.Anything).Return(nil).Once()
	w.transaction.On("LinkCredit", mock.Anything, mock.Anything).Return(nil).Once()
	w.tag.On("InsertIgnore", mock.Anything, []string{"food", "weekly"}).Return(nil).Once()
	w.tag.On("LinkIgnore", mock.Anything, []tag.Categorization{
		{TagName: "food", TransactionID: 3},
		{TagName: "weekly", TransactionID: 3},
	}).Return(nil).Once()
	w.attachment.On("Insert", mock.Anything, &attachment.Attachment{
		Name: "receipt.pdf", TransactionID: 3, Data: []byte("%PDF"),
	}).Return(nil).Once()
	w.transaction.On("FindByID", mock.Anything, int64(3)).Return(&transaction.Transaction{ID: 3}, nil).Once()

	description := "weekly shop"
	action := newPost()
	action.Description = &description
	action.Tags = []string{"food", "weekly", "food"}
	action.Attachments = []AttachmentInput{{Name: "receipt.pdf", Data: []byte("%PDF")}}

	require.NoError(t, action.Perform(context.Background(), w.Writer))
	w.assertExpectations(t)
}

func TestPostTransaction_ValidationWritesNothing(t *testing.T) {
	cases := map[string]struct {
		mutate func(*PostTransaction)
		want   error
	}{
		"zero amount":     {func(p *PostTransaction) { p.Amount = decimal.Zero }, ledger.ErrInvalidAmount},
		"negative amount": {func(p *PostTransaction) { p.Amount = decimal.RequireFromString("-1") }, ledger.ErrInvalidAmount},
		"no currency":     {func(p *PostTransaction) { p.Currency = " " }, ledger.ErrInvalidCurrency},
		"self posting":    {func(p *PostTransaction) { p.CreditAccount = p.DebitAccount }, ledger.ErrSameAccount},
		"blank tag":       {func(p *PostTransaction) { p.Tags = []string{""} }, ledger.ErrInvalidTag},
		"duplicate attachment": {func(p *PostTransaction) {
			p.Attachments = []AttachmentInput{{Name: "a"}, {Name: "a"}}
		}, ledger.ErrInvalidAttachment},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := newTestWriter()
			action := newPost()
			tc.mutate(action)

			err := action.Perform(context.Background(), w.Writer)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, action.Result)
			w.account.AssertNotCalled(t, "FindByNameForUpdate", mock.Anything, mock.Anything)
			w.transaction.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestPostTransaction_UnknownAccount(t *testing.T) {
	w := newTestWriter()
	w.account.On("FindByNameForUpdate", mock.Anything, "Checking").
		Return(nil, ledger.ErrAccountNotFound).Once()

	err := newPost().Perform(context.Background(), w.Writer)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
	w.account.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything)
	w.transaction.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestPostTransaction_AttachmentFailureReturnsError(t *testing.T) {
	w := newTestWriter()
	expectAccounts(w, ledger.OnDebit, ledger.OnCredit)
	w.account.On("UpdateBalance", mock.Anything, mock.Anything).Return(nil).Twice()
	w.transaction.On("Insert", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	w.transaction.On("LinkDebit", mock.Anything, mock.Anything).Return(nil).Once()
	w.transaction.On("LinkCredit", mock.Anything, mock.Anything).Return(nil).Once()
	diskFull := errors.New("could not extend file")
	w.attachment.On("Insert", mock.Anything, mock.Anything).Return(diskFull).Once()

	action := newPost()
	action.Attachments = []AttachmentInput{{Name: "scan.png", Data: []byte{1}}}

	err := action.Perform(context.Background(), w.Writer)
	assert.ErrorIs(t, err, diskFull)
	assert.Nil(t, action.Result)
	w.transaction.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
