package operator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// WriteOpener begins the database transaction an action runs in.
type WriteOpener interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	opener WriteOpener
	queue  chan ActionItem
	logger *logrus.Logger
}

func NewOperator(opener WriteOpener, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		opener: opener,
		queue:  queue,
		logger: logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) (err error) {
	if err = item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.opener.Write(item.ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("operator: action %s panicked: %v", item.name(), r)
		}
		if err != nil {
			o.rollback(item, writer, err)
		}
	}()

	if err = item.action.Perform(item.ctx, writer); err != nil {
		return err
	}

	return writer.Commit()
}

func (o *Operator) rollback(item ActionItem, writer *storage.Writer, cause error) {
	entry := o.logger.WithField("action", item.name()).WithError(cause)
	if err := writer.Rollback(); err != nil {
		entry.WithField("rollbackError", err.Error()).Error("Operator.processItem.rollbackFailed")
		return
	}
	entry.Warn("Operator.processItem.rollback")
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

func (i ActionItem) name() string {
	return fmt.Sprintf("%T", i.action)
}

type ActionItemResponse struct {
	err error
}
