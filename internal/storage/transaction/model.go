package transaction

import (
	"context"
	"iter"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record joined with its account links,
// tag names and attachment names.
type Transaction struct {
	ID            int64           `db:"id"`
	Date          time.Time       `db:"date"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	Description   *string         `db:"description"`
	DebitAccount  string          `db:"debit_account"`
	CreditAccount string          `db:"credit_account"`
	Tags          pq.StringArray  `db:"tags"`
	Attachments   pq.StringArray  `db:"attachments"`
}

// TransactionCreate is the input for inserting the transactions row.
type TransactionCreate struct {
	Date        time.Time
	Amount      decimal.Decimal
	Currency    string
	Description *string
}

// AccountLink ties a transaction to the account on one side of it.
type AccountLink struct {
	TransactionID int64
	AccountName   string
}

// DateRange bounds a query on transaction date, both ends inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ITransactionReader defines the read side of transaction storage.
type ITransactionReader interface {
	All(ctx context.Context) iter.Seq2[*Transaction, error]
	ByDateRange(ctx context.Context, dateRange DateRange) ([]*Transaction, error)
	FindByID(ctx context.Context, id int64) (*Transaction, error)
	ForAccountSubtree(ctx context.Context, accountName string) ([]*Transaction, error)
}

// ITransactionWriter defines transaction operations that must run inside a write transaction.
type ITransactionWriter interface {
	ITransactionReader
	Insert(ctx context.Context, create *TransactionCreate) (int64, error)
	LinkDebit(ctx context.Context, link AccountLink) error
	LinkCredit(ctx context.Context, link AccountLink) error
	Delete(ctx context.Context, id int64) error
}
