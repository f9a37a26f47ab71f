package actions

import (
	"context"
	"fmt"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// RegisterAccountPath ensures every segment of a dotted path exists as an
// account and records the full ancestor closure between them. Registering the
// same path twice is a no-op.
type RegisterAccountPath struct {
	Path       string
	IncreaseOn ledger.IncreaseOn

	// Set by Perform.
	Accounts []string
	Links    []ledger.AncestorLink
}

func (r *RegisterAccountPath) Perform(ctx context.Context, writer *storage.Writer) error {
	segments, err := ledger.ParseAccountPath(r.Path)
	if err != nil {
		return err
	}
	direction := r.IncreaseOn
	if direction == "" {
		direction = ledger.OnDebit
	}
	if !direction.Valid() {
		return fmt.Errorf("%w: got %q", ledger.ErrInvalidIncreaseOn, string(direction))
	}

	creates := make([]account.AccountCreate, len(segments))
	for i, name := range segments {
		creates[i] = account.AccountCreate{Name: name, IncreaseOn: direction}
	}
	links := ledger.ClosureLinks(segments)

	// Accounts go first so the closure rows' foreign keys resolve.
	if err = writer.Account.InsertIgnore(ctx, creates); err != nil {
		return fmt.Errorf("register %q: accounts: %w", r.Path, err)
	}
	if err = writer.Account.LinkIgnore(ctx, links); err != nil {
		return fmt.Errorf("register %q: closure: %w", r.Path, err)
	}

	r.Accounts = segments
	r.Links = links
	return nil
}
