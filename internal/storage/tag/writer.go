package tag

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"

	"github.com/carson-networks/ledger-server/internal/storage/pgerr"
)

type Writer struct {
	tx bob.Executor
	Reader
}

var _ ITagWriter = (*Writer)(nil)

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// InsertIgnore creates any tags that do not exist yet.
func (w *Writer) InsertIgnore(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	queryMods := []bob.Mod[*dialect.InsertQuery]{im.Into(tableTags, "name")}
	for _, name := range names {
		queryMods = append(queryMods, im.Values(psql.Arg(name)))
	}
	queryMods = append(queryMods, im.OnConflict("name").DoNothing())

	_, err := psql.Insert(queryMods...).Exec(ctx, w.tx)
	return pgerr.Classify(err)
}

// LinkIgnore writes Categorizes rows; links already present are no-ops.
func (w *Writer) LinkIgnore(ctx context.Context, links []Categorization) error {
	if len(links) == 0 {
		return nil
	}
	queryMods := []bob.Mod[*dialect.InsertQuery]{im.Into(tableCategorizes, "tag_name", "transaction_id")}
	for _, l := range links {
		queryMods = append(queryMods, im.Values(psql.Arg(l.TagName), psql.Arg(l.TransactionID)))
	}
	queryMods = append(queryMods, im.OnConflict("tag_name", "transaction_id").DoNothing())

	_, err := psql.Insert(queryMods...).Exec(ctx, w.tx)
	return pgerr.Classify(err)
}
