package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

const defaultAccountLimit = 20

// AccountService handles account business logic.
type AccountService struct {
	accounts  account.IAccountReader
	processor Processor
}

// NewAccountService creates a new AccountService.
func NewAccountService(reader *storage.Reader, processor Processor) *AccountService {
	return &AccountService{accounts: reader.Accounts, processor: processor}
}

// RegisterAccountPath creates any missing account on a dotted path such as
// "Assets.Bank.Checking" and links every ancestor to every descendant.
// Accounts that already exist keep their original direction.
func (s *AccountService) RegisterAccountPath(ctx context.Context, path string, increaseOn ledger.IncreaseOn) (*RegisteredPath, error) {
	action := &actions.RegisterAccountPath{Path: path, IncreaseOn: increaseOn}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return &RegisteredPath{Accounts: action.Accounts, Links: action.Links}, nil
}

// GetAccount retrieves an account by name.
func (s *AccountService) GetAccount(ctx context.Context, name string) (*Account, error) {
	row, err := s.accounts.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	acc := accountFromStorage(row)
	return &acc, nil
}

// ListAccounts returns a page of accounts ordered by name.
func (s *AccountService) ListAccounts(ctx context.Context, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	filter := &account.AccountFilter{Limit: defaultAccountLimit}
	if cursor != nil {
		filter.Limit = cursor.Limit
		filter.Offset = cursor.Position
	}

	result, err := s.accounts.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	if len(result.Accounts) == 0 {
		return nil, nil, nil
	}

	var nextCursor *AccountCursor
	if result.NextCursor != nil {
		nextCursor = &AccountCursor{
			Position: result.NextCursor.Position,
			Limit:    result.NextCursor.Limit,
		}
	}
	return accountsFromStorage(result.Accounts), nextCursor, nil
}

// ListDescendants returns every account below name, at any depth.
func (s *AccountService) ListDescendants(ctx context.Context, name string) ([]Account, error) {
	rows, err := s.accounts.Descendants(ctx, name)
	if err != nil {
		return nil, err
	}
	return accountsFromStorage(rows), nil
}

// ListAncestors returns every account above name, at any depth.
func (s *AccountService) ListAncestors(ctx context.Context, name string) ([]Account, error) {
	rows, err := s.accounts.Ancestors(ctx, name)
	if err != nil {
		return nil, err
	}
	return accountsFromStorage(rows), nil
}
