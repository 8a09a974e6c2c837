package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a referenced entity or edge does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a unique edge (follow, like) already
	// exists for the given pair. Also produced when two concurrent identical
	// requests race: the store's uniqueness constraint rejects the loser.
	ErrAlreadyExists = errors.New("already exists")
)

// isDuplicateKeyError reports whether err is a uniqueness-constraint
// violation. GORM translates these for the postgres driver; the sqlite
// driver used in tests reports them as plain errors, so fall back to
// matching the message.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
