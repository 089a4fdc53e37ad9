package postgres

import (
	"strings"

	"prepai/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation relies on gorm's TranslateError mapping, with the driver
// messages as a fallback for connections opened without it.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, "SQLSTATE 23505") || strings.Contains(msg, "UNIQUE constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), "SQLSTATE 23503")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "sqlstate 23502")
}
