package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = gorm.ErrRecordNotFound
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNoGenerationsLeft = errors.New("no generations remaining")
)

// isUniqueViolation recognises unique constraint errors from both drivers,
// translated or not.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
