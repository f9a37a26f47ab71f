package account

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Account represents an account record.
type Account struct {
	Name       string            `db:"name"`
	Balance    decimal.Decimal   `db:"balance"`
	IncreaseOn ledger.IncreaseOn `db:"increase_on"`
}

// AccountCreate is the input for registering an account. Balance always starts at zero.
type AccountCreate struct {
	Name       string
	IncreaseOn ledger.IncreaseOn
}

// BalanceUpdate sets the stored balance of one account.
type BalanceUpdate struct {
	Name    string
	Balance decimal.Decimal
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	Limit  int
	Offset int
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// AccountListResult contains a page of accounts and an optional next cursor.
type AccountListResult struct {
	Accounts   []*Account
	NextCursor *AccountCursor
}

// IAccountReader defines the read side of account storage.
type IAccountReader interface {
	FindByName(ctx context.Context, name string) (*Account, error)
	List(ctx context.Context, filter *AccountFilter) (*AccountListResult, error)
	Descendants(ctx context.Context, name string) ([]*Account, error)
	Ancestors(ctx context.Context, name string) ([]*Account, error)
}

// IAccountWriter defines account operations that must run inside a write transaction.
type IAccountWriter interface {
	IAccountReader
	FindByNameForUpdate(ctx context.Context, name string) (*Account, error)
	InsertIgnore(ctx context.Context, creates []AccountCreate) error
	LinkIgnore(ctx context.Context, links []ledger.AncestorLink) error
	UpdateBalance(ctx context.Context, update BalanceUpdate) error
}
