package transaction

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID            int64    `json:"id" doc:"Transaction id"`
	Date          string   `json:"date" doc:"RFC3339 transaction date"`
	Amount        string   `json:"amount" doc:"Decimal amount"`
	Currency      string   `json:"currency" doc:"Currency code"`
	Description   *string  `json:"description,omitempty" doc:"Free text description"`
	DebitAccount  string   `json:"debitAccount" doc:"Account posted on the debit side"`
	CreditAccount string   `json:"creditAccount" doc:"Account posted on the credit side"`
	Tags          []string `json:"tags" doc:"Tag names"`
	Attachments   []string `json:"attachments" doc:"Attachment names"`
}

// TransactionListBody wraps a list of transactions.
type TransactionListBody struct {
	Transactions []Transaction `json:"transactions"`
}

func transactionToAPI(tx service.Transaction) Transaction {
	tags := tx.Tags
	if tags == nil {
		tags = []string{}
	}
	attachments := tx.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	return Transaction{
		ID:            tx.ID,
		Date:          tx.Date.Format(time.RFC3339),
		Amount:        tx.Amount.String(),
		Currency:      tx.Currency,
		Description:   tx.Description,
		DebitAccount:  tx.DebitAccount,
		CreditAccount: tx.CreditAccount,
		Tags:          tags,
		Attachments:   attachments,
	}
}

func transactionsToAPI(txs []service.Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	for i, tx := range txs {
		out[i] = transactionToAPI(tx)
	}
	return out
}
