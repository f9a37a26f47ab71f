package tag

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/storage/pgerr"
)

const (
	tableTags        = "tags"
	tableCategorizes = "categorizes"
)

type Reader struct {
	exec bob.Executor
}

var _ ITagReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns every tag name in alphabetical order.
func (r *Reader) List(ctx context.Context) ([]string, error) {
	query := psql.Select(
		sm.Columns("name"),
		sm.From(tableTags),
		sm.OrderBy(psql.Quote("name")).Asc(),
	)
	names, err := bob.All(ctx, r.exec, query, scan.SingleColumnMapper[string])
	if err != nil {
		return nil, pgerr.Classify(err)
	}
	return names, nil
}
