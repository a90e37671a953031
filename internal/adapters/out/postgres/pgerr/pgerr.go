// Package pgerr classifies PostgreSQL driver errors into the error kinds of
// the core: storage and connectivity problems become ServiceUnavailable,
// unique violations are recognized for callers that retry with a new key.
package pgerr

import (
	"context"
	"database/sql/driver"
	"errors"

	"fastereats/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const serviceName = "postgres"

// Classify maps err to *errs.ServiceUnavailableError when the failure is
// transient or its outcome is unknown. Any other error is returned unchanged.
//
// Every repository and query handler passes raw gorm and database/sql errors
// through it, so callers can map storage outages to 503.
//
// Example:
//
//	rows, err := h.db.WithContext(ctx).Raw(query, args...).Rows()
//	if err != nil {
//	    return nil, pgerr.Classify(err)
//	}
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if IsTransient(err) {
		return errs.NewServiceUnavailableError(serviceName, err)
	}
	return err
}

// IsTransient reports whether retrying the operation after re-reading state
// may succeed: timeouts, cancellations, lost connections, serialization
// failures and deadlocks.
func IsTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, gorm.ErrInvalidDB) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgerrcode.IsInsufficientResources(pgErr.Code),
			pgerrcode.IsOperatorIntervention(pgErr.Code):
			return true
		case pgErr.Code == pgerrcode.SerializationFailure,
			pgErr.Code == pgerrcode.DeadlockDetected,
			pgErr.Code == pgerrcode.LockNotAvailable:
			return true
		}
		return false
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	return pgconn.Timeout(err) || pgconn.SafeToRetry(err)
}

// IsUniqueViolation recognizes duplicate keys both as raw driver errors and
// as translated by gorm.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
