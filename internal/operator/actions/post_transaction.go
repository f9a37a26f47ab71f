package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/attachment"
	"github.com/carson-networks/ledger-server/internal/storage/tag"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type AttachmentInput struct {
	Name string
	Data []byte
}

// PostTransaction records one double-entry transaction and moves both
// account balances according to their increase_on direction.
type PostTransaction struct {
	Date          time.Time
	Amount        decimal.Decimal
	Currency      string
	Description   *string
	DebitAccount  string
	CreditAccount string
	Tags          []string
	Attachments   []AttachmentInput

	// Set by Perform.
	Result *transaction.Transaction
}

func (p *PostTransaction) request() ledger.PostingRequest {
	names := make([]string, len(p.Attachments))
	for i, a := range p.Attachments {
		names[i] = a.Name
	}
	return ledger.PostingRequest{
		Amount:          p.Amount,
		Currency:        p.Currency,
		DebitAccount:    p.DebitAccount,
		CreditAccount:   p.CreditAccount,
		Tags:            p.Tags,
		AttachmentNames: names,
	}
}

func (p *PostTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := p.request().Validate(); err != nil {
		return err
	}

	debit, credit, err := lockAccounts(ctx, writer.Account, p.DebitAccount, p.CreditAccount)
	if err != nil {
		return err
	}

	posting := ledger.Post(debit.IncreaseOn, credit.IncreaseOn, p.Amount)
	if err = applyPosting(ctx, writer.Account, debit, credit, posting); err != nil {
		return err
	}

	id, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		Date:        p.Date,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Description: p.Description,
	})
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	if err = writer.Transaction.LinkDebit(ctx, transaction.AccountLink{TransactionID: id, AccountName: debit.Name}); err != nil {
		return fmt.Errorf("link debit: %w", err)
	}
	if err = writer.Transaction.LinkCredit(ctx, transaction.AccountLink{TransactionID: id, AccountName: credit.Name}); err != nil {
		return fmt.Errorf("link credit: %w", err)
	}

	if err = tagTransaction(ctx, writer.Tag, id, p.Tags); err != nil {
		return err
	}

	for _, a := range p.Attachments {
		err = writer.Attachment.Insert(ctx, &attachment.Attachment{
			Name:          a.Name,
			TransactionID: id,
			Data:          a.Data,
		})
		if err != nil {
			return fmt.Errorf("attachment %q: %w", a.Name, err)
		}
	}

	p.Result, err = writer.Transaction.FindByID(ctx, id)
	return err
}

func applyPosting(ctx context.Context, accounts account.IAccountWriter, debit, credit *account.Account, posting ledger.Posting) error {
	err := accounts.UpdateBalance(ctx, account.BalanceUpdate{
		Name:    debit.Name,
		Balance: debit.Balance.Add(posting.DebitDelta),
	})
	if err != nil {
		return fmt.Errorf("update balance %q: %w", debit.Name, err)
	}
	err = accounts.UpdateBalance(ctx, account.BalanceUpdate{
		Name:    credit.Name,
		Balance: credit.Balance.Add(posting.CreditDelta),
	})
	if err != nil {
		return fmt.Errorf("update balance %q: %w", credit.Name, err)
	}
	return nil
}

func tagTransaction(ctx context.Context, tags tag.ITagWriter, transactionID int64, names []string) error {
	unique := ledger.UniqueTags(names)
	if len(unique) == 0 {
		return nil
	}
	if err := tags.InsertIgnore(ctx, unique); err != nil {
		return fmt.Errorf("insert tags: %w", err)
	}
	links := make([]tag.Categorization, len(unique))
	for i, name := range unique {
		links[i] = tag.Categorization{TagName: name, TransactionID: transactionID}
	}
	if err := tags.LinkIgnore(ctx, links); err != nil {
		return fmt.Errorf("link tags: %w", err)
	}
	return nil
}
