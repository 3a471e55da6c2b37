package postgres

import (
	"strings"

	domainerrors "gsync/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports a duplicate natural key. Upserts never
// raise it; plain inserts of append-only rows can.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isNotNullConstraintViolation reports a missing required column (SQLSTATE 23502).
func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502")
}

// isLockNotAvailable reports a row lock that could not be taken (SQLSTATE 55P03).
func isLockNotAvailable(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "55p03") ||
		strings.Contains(errMsg, "could not obtain lock")
}

// classifyWriteError converts a failed write into a domain error.
func classifyWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage(details + ": duplicate key")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage(details + ": missing required column")
	case isLockNotAvailable(err):
		return domainerrors.ErrTransactionFailed.WrapMessage(details + ": row is locked")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
