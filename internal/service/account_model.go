package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// Account represents an account in the service layer.
type Account struct {
	Name       string
	Balance    decimal.Decimal
	IncreaseOn ledger.IncreaseOn
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// RegisteredPath describes what a path registration ensured exists.
type RegisteredPath struct {
	Accounts []string
	Links    []ledger.AncestorLink
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		Name:       row.Name,
		Balance:    row.Balance,
		IncreaseOn: row.IncreaseOn,
	}
}

func accountsFromStorage(rows []*account.Account) []Account {
	accounts := make([]Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}
	return accounts
}
