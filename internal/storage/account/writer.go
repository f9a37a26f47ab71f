package account

import (
	"cmp"
	"context"
	"slices"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/pgerr"
)

type Writer struct {
	tx bob.Executor
	Reader
}

var _ IAccountWriter = (*Writer)(nil)

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByNameForUpdate reads the account and locks its row until the
// surrounding transaction ends.
func (w *Writer) FindByNameForUpdate(ctx context.Context, name string) (*Account, error) {
	return findByName(ctx, w.tx, name, sm.ForUpdate())
}

// InsertIgnore inserts every account in one statement. Names that already
// exist are left untouched, including their direction and balance. Rows go in
// name order so overlapping registrations take index locks in the same order.
func (w *Writer) InsertIgnore(ctx context.Context, creates []AccountCreate) error {
	if len(creates) == 0 {
		return nil
	}
	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into(tableAccounts, "name", "increase_on"),
	}
	sorted := slices.SortedFunc(slices.Values(creates), func(a, b AccountCreate) int {
		return cmp.Compare(a.Name, b.Name)
	})
	for _, c := range sorted {
		queryMods = append(queryMods, im.Values(psql.Arg(c.Name), psql.Arg(c.IncreaseOn)))
	}
	queryMods = append(queryMods, im.OnConflict("name").DoNothing())

	if _, err := psql.Insert(queryMods...).Exec(ctx, w.tx); err != nil {
		return pgerr.Classify(err)
	}
	return nil
}

// LinkIgnore records closure pairs, sorted by (ancestor, descendant). Pairs
// already present are no-ops.
func (w *Writer) LinkIgnore(ctx context.Context, links []ledger.AncestorLink) error {
	if len(links) == 0 {
		return nil
	}
	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into(tableAncestorTo, "ancestor_name", "descendant_name"),
	}
	sorted := slices.SortedFunc(slices.Values(links), func(a, b ledger.AncestorLink) int {
		return cmp.Or(cmp.Compare(a.Ancestor, b.Ancestor), cmp.Compare(a.Descendant, b.Descendant))
	})
	for _, l := range sorted {
		queryMods = append(queryMods, im.Values(psql.Arg(l.Ancestor), psql.Arg(l.Descendant)))
	}
	queryMods = append(queryMods, im.OnConflict("ancestor_name", "descendant_name").DoNothing())

	if _, err := psql.Insert(queryMods...).Exec(ctx, w.tx); err != nil {
		return pgerr.Classify(err)
	}
	return nil
}

func (w *Writer) UpdateBalance(ctx context.Context, update BalanceUpdate) error {
	_, err := psql.Update(
		um.Table(tableAccounts),
		um.SetCol("balance").ToArg(update.Balance),
		um.Where(psql.Quote("name").EQ(psql.Arg(update.Name))),
	).Exec(ctx, w.tx)
	return pgerr.Classify(err)
}
