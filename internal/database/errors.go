package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrInit means the storage engine could not be opened or the schema
	// could not be applied. Fatal: no other operation may be attempted.
	ErrInit = errors.New("storage initialization failed")

	// ErrConstraint covers uniqueness violations (duplicate email) and
	// foreign-key violations (referenced parent row absent) on writes.
	ErrConstraint = errors.New("constraint violation")
)

// TranslateWriteError maps GORM's translated SQLite constraint faults onto
// ErrConstraint so callers can match with errors.Is. Other errors pass
// through unchanged.
func TranslateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return err
}
