// Package pgerr translates Postgres driver errors into ledger error kinds.
package pgerr

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

const (
	codeDuplicateTable  pq.ErrorCode = "42P07"
	codeDuplicateObject pq.ErrorCode = "42710"
	codeAdminShutdown   pq.ErrorCode = "57P01"
	codeCannotConnect   pq.ErrorCode = "57P03"

	classIntegrityConstraint pq.ErrorClass = "23"
	classTransactionRollback pq.ErrorClass = "40"
	classConnection          pq.ErrorClass = "08"
	classInsufficientRes     pq.ErrorClass = "53"
)

// Classify wraps err with the matching ledger kind while keeping the driver
// error in the chain. Errors it does not recognise are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == codeDuplicateTable || pqErr.Code == codeDuplicateObject:
			return fmt.Errorf("%w: %w", ledger.ErrSchemaAlreadyExists, err)
		case pqErr.Code.Class() == classIntegrityConstraint,
			pqErr.Code.Class() == classTransactionRollback:
			return fmt.Errorf("%w: %w", ledger.ErrConstraintViolation, err)
		case pqErr.Code.Class() == classConnection,
			pqErr.Code.Class() == classInsufficientRes,
			pqErr.Code == codeAdminShutdown,
			pqErr.Code == codeCannotConnect:
			return fmt.Errorf("%w: %w", ledger.ErrStorageUnavailable, err)
		}
		return err
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ledger.ErrStorageUnavailable, err)
	}

	return err
}
