package database

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/facsched/planner/internal/entities"
)

func silent() logger.Interface {
	return logger.Default.LogMode(logger.Silent)
}

func TestNewDatabase_Idempotent(t *testing.T) {
	dbPath := "./test_database_" + t.Name() + ".db"
	defer os.Remove(dbPath)

	db, err := NewDatabaseWithLogger(dbPath, silent())
	require.NoError(t, err)

	err = db.DB.Create(&entities.User{
		ID: "u1", Name: "Dana", Email: "dana@example.edu",
		PasswordHash: "x", Role: entities.RoleStudent,
	}).Error
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening migrates again without error and keeps existing rows.
	db, err = NewDatabaseWithLogger(dbPath, silent())
	require.NoError(t, err)
	defer db.Close()

	var count int64
	require.NoError(t, db.DB.Model(&entities.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestNewDatabase_UnopenablePath(t *testing.T) {
	_, err := NewDatabaseWithLogger("/definitely/missing/dir/planner.db", silent())

	assert.ErrorIs(t, err, ErrInit)
}

func TestNewDatabase_ForeignKeysEnforced(t *testing.T) {
	dbPath := "./test_database_" + t.Name() + ".db"
	defer os.Remove(dbPath)

	db, err := NewDatabaseWithLogger(dbPath, silent())
	require.NoError(t, err)
	defer db.Close()

	err = db.DB.Create(&entities.Subject{ID: "sub-1", UserID: "nobody", Name: "Orphan"}).Error

	assert.ErrorIs(t, TranslateWriteError(err), ErrConstraint)
}

func TestTranslateWriteError(t *testing.T) {
	assert.NoError(t, TranslateWriteError(nil))

	plain := errors.New("disk gone")
	assert.Equal(t, plain, TranslateWriteError(plain))

	dup := fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, TranslateWriteError(dup), ErrConstraint)

	fk := fmt.Errorf("insert: %w", gorm.ErrForeignKeyViolated)
	assert.ErrorIs(t, TranslateWriteError(fk), ErrConstraint)
}
