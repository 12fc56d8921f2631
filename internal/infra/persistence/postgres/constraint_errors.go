package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// GORM translates the PostgreSQL unique_violation error code when the
	// driver supports error translation.
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
