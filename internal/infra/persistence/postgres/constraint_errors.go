package postgres

import (
	"strings"

	"eligibility/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports a duplicate key, whether or not the
// dialector translated the driver error
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}
