package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// The partial unique index on addresses.is_default surfaces as a raw
	// pq error rather than gorm.ErrDuplicatedKey on bulk writes.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

func isLockContention(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "deadlock detected") ||
		strings.Contains(errMsg, "could not obtain lock") ||
		strings.Contains(errMsg, "55p03") || // PostgreSQL lock_not_available error code
		strings.Contains(errMsg, "40001") || // PostgreSQL serialization_failure error code
		strings.Contains(errMsg, "40p01") // PostgreSQL deadlock_detected error code
}

func isCheckConstraintViolation(err error) bool {
	// Check for GORM's check constraint violation error
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	// The stock >= 0 check fires here when a decrement races past the
	// application-level guard.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "23514") // PostgreSQL check_violation error code
}
