package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/attachment"
	"github.com/carson-networks/ledger-server/internal/storage/tag"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Reader groups the read side of every table. Fields are interfaces so
// services can be tested against fakes.
type Reader struct {
	Accounts     account.IAccountReader
	Transactions transaction.ITransactionReader
	Tags         tag.ITagReader
	Attachments  attachment.IAttachmentReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts:     account.NewReader(exec),
		Transactions: transaction.NewReader(exec),
		Tags:         tag.NewReader(exec),
		Attachments:  attachment.NewReader(exec),
	}
}
