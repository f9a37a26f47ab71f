package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Transaction represents a posted transaction in the service layer.
type Transaction struct {
	ID            int64
	Date          time.Time
	Amount        decimal.Decimal
	Currency      string
	Description   *string
	DebitAccount  string
	CreditAccount string
	Tags          []string
	Attachments   []string
}

// Attachment is a named file stored on a transaction.
type Attachment struct {
	Name          string
	TransactionID int64
	Data          []byte
}

// TransactionCreate holds everything needed to post a transaction.
type TransactionCreate struct {
	Date          time.Time
	Amount        decimal.Decimal
	Currency      string
	Description   *string
	DebitAccount  string
	CreditAccount string
	Tags          []string
	Attachments   []Attachment
}

func (c TransactionCreate) action() *actions.PostTransaction {
	attachments := make([]actions.AttachmentInput, len(c.Attachments))
	for i, a := range c.Attachments {
		attachments[i] = actions.AttachmentInput{Name: a.Name, Data: a.Data}
	}
	return &actions.PostTransaction{
		Date:          c.Date,
		Amount:        c.Amount,
		Currency:      c.Currency,
		Description:   c.Description,
		DebitAccount:  c.DebitAccount,
		CreditAccount: c.CreditAccount,
		Tags:          c.Tags,
		Attachments:   attachments,
	}
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:            row.ID,
		Date:          row.Date,
		Amount:        row.Amount,
		Currency:      row.Currency,
		Description:   row.Description,
		DebitAccount:  row.DebitAccount,
		CreditAccount: row.CreditAccount,
		Tags:          []string(row.Tags),
		Attachments:   []string(row.Attachments),
	}
}

func transactionsFromStorage(rows []*transaction.Transaction) []Transaction {
	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions
}
