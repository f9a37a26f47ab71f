package actions

import (
	"context"
	"slices"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// IAction is one unit of write work. Perform runs inside a single database
// transaction that the operator commits when it returns nil and rolls back
// otherwise, so an action never has to undo its own partial writes.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// lockAccounts row-locks the debit and credit accounts in name order so two
// postings touching the same pair cannot deadlock each other.
func lockAccounts(ctx context.Context, accounts account.IAccountWriter, debitName, creditName string) (debit, credit *account.Account, err error) {
	names := []string{debitName, creditName}
	slices.Sort(names)

	locked := make(map[string]*account.Account, len(names))
	for _, name := range names {
		acc, err := accounts.FindByNameForUpdate(ctx, name)
		if err != nil {
			return nil, nil, err
		}
		locked[name] = acc
	}
	return locked[debitName], locked[creditName], nil
}
