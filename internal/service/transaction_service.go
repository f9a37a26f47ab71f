package service

import (
	"context"
	"iter"
	"time"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/attachment"
	"github.com/carson-networks/ledger-server/internal/storage/tag"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	transactions transaction.ITransactionReader
	accounts     account.IAccountReader
	tags         tag.ITagReader
	attachments  attachment.IAttachmentReader
	processor    Processor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(reader *storage.Reader, processor Processor) *TransactionService {
	return &TransactionService{
		transactions: reader.Transactions,
		accounts:     reader.Accounts,
		tags:         reader.Tags,
		attachments:  reader.Attachments,
		processor:    processor,
	}
}

// PostTransaction records the transaction and updates both account balances
// in one database transaction.
func (s *TransactionService) PostTransaction(ctx context.Context, create TransactionCreate) (*Transaction, error) {
	action := create.action()
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	tx := transactionFromStorage(action.Result)
	return &tx, nil
}

// GetAll streams every transaction in storage order. Each call to the
// returned sequence runs a fresh query.
func (s *TransactionService) GetAll(ctx context.Context) iter.Seq2[Transaction, error] {
	return func(yield func(Transaction, error) bool) {
		for row, err := range s.transactions.All(ctx) {
			if err != nil {
				yield(Transaction{}, err)
				return
			}
			if !yield(transactionFromStorage(row), nil) {
				return
			}
		}
	}
}

// ListTransactions collects GetAll into a slice.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]Transaction, error) {
	var transactions []Transaction
	for tx, err := range s.GetAll(ctx) {
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// GetByDateRange returns transactions with start <= date <= end, oldest first.
func (s *TransactionService) GetByDateRange(ctx context.Context, start, end time.Time) ([]Transaction, error) {
	rows, err := s.transactions.ByDateRange(ctx, transaction.DateRange{Start: start, End: end})
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}

// GetByID returns ledger.ErrNotFound when no transaction has the id.
func (s *TransactionService) GetByID(ctx context.Context, id int64) (*Transaction, error) {
	row, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tx := transactionFromStorage(row)
	return &tx, nil
}

// ListForAccount returns transactions posted to name or to any account below it.
func (s *TransactionService) ListForAccount(ctx context.Context, name string) ([]Transaction, error) {
	if _, err := s.accounts.FindByName(ctx, name); err != nil {
		return nil, err
	}
	rows, err := s.transactions.ForAccountSubtree(ctx, name)
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}

// DeleteTransaction removes the transaction and reverses its balance changes.
// It returns the transaction as it was before deletion.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) (*Transaction, error) {
	action := &actions.DeleteTransaction{ID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	tx := transactionFromStorage(action.Result)
	return &tx, nil
}

// TagTransaction adds tags to the transaction and returns it updated.
func (s *TransactionService) TagTransaction(ctx context.Context, id int64, tags []string) (*Transaction, error) {
	if err := s.processor.Process(ctx, &actions.TagTransaction{TransactionID: id, Tags: tags}); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *TransactionService) AddAttachment(ctx context.Context, a Attachment) error {
	return s.processor.Process(ctx, &actions.AddAttachment{
		TransactionID: a.TransactionID,
		Name:          a.Name,
		Data:          a.Data,
	})
}

func (s *TransactionService) GetAttachment(ctx context.Context, transactionID int64, name string) (*Attachment, error) {
	row, err := s.attachments.Find(ctx, transactionID, name)
	if err != nil {
		return nil, err
	}
	return &Attachment{Name: row.Name, TransactionID: row.TransactionID, Data: row.Data}, nil
}

func (s *TransactionService) ListTags(ctx context.Context) ([]string, error) {
	return s.tags.List(ctx)
}
