package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// DeleteTransaction removes a transaction and undoes its effect on both
// account balances.
type DeleteTransaction struct {
	ID int64

	// Set by Perform.
	Result *transaction.Transaction
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transaction.FindByID(ctx, d.ID)
	if err != nil {
		return err
	}

	debit, credit, err := lockAccounts(ctx, writer.Account, existing.DebitAccount, existing.CreditAccount)
	if err != nil {
		return err
	}

	reversal := ledger.Post(debit.IncreaseOn, credit.IncreaseOn, existing.Amount).Reverse()
	if err = applyPosting(ctx, writer.Account, debit, credit, reversal); err != nil {
		return err
	}

	// A concurrent delete of the same id makes this report ErrNotFound and
	// the rollback discards the reversal above.
	if err = writer.Transaction.Delete(ctx, d.ID); err != nil {
		return err
	}

	d.Result = existing
	return nil
}
