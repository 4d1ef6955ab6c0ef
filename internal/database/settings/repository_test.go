package settings

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/facsched/planner/internal/database"
	"github.com/facsched/planner/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_settings_" + t.Name() + ".db"

	db, err := database.NewDatabaseWithLogger(dbPath, logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)

	repo := NewRepository(db.DB)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func seedUser(t *testing.T, repo *Repository, id string) {
	t.Helper()
	err := repo.db.Create(&entities.User{
		ID:           id,
		Name:         "User " + id,
		Email:        id + "@example.edu",
		PasswordHash: "x",
		Role:         entities.RoleStudent,
	}).Error
	require.NoError(t, err)
}

func TestRepository_GetSettingsByUserID_SynthesizesDefault(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	setting, err := repo.GetSettingsByUserID("stu-1")

	require.NoError(t, err)
	require.NotNil(t, setting)
	assert.Equal(t, "stu-1", setting.UserID)
	assert.False(t, setting.CompactLayout)
	assert.False(t, setting.Notify)
	assert.Equal(t, "white", setting.BackgroundColor)

	// The default must not be written as a side effect.
	var count int64
	err = repo.db.Model(&entities.Setting{}).Count(&count).Error
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRepository_UpsertSettings_InsertThenReplace(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedUser(t, repo, "stu-1")

	_, err := repo.UpsertSettings(&entities.Setting{
		UserID:          "stu-1",
		CompactLayout:   true,
		Notify:          true,
		BackgroundColor: "#E6D7C4",
	})
	require.NoError(t, err)

	// Whole-record replace: notify flips off, color changes.
	_, err = repo.UpsertSettings(&entities.Setting{
		UserID:          "stu-1",
		CompactLayout:   true,
		BackgroundColor: "#0000FF",
	})
	require.NoError(t, err)

	setting, err := repo.GetSettingsByUserID("stu-1")
	require.NoError(t, err)
	assert.True(t, setting.CompactLayout)
	assert.False(t, setting.Notify)
	assert.Equal(t, "#0000FF", setting.BackgroundColor)

	var count int64
	err = repo.db.Model(&entities.Setting{}).Count(&count).Error
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestRepository_UpsertSettings_EmptyColorDefaultsToWhite(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedUser(t, repo, "stu-1")

	saved, err := repo.UpsertSettings(&entities.Setting{UserID: "stu-1"})

	require.NoError(t, err)
	assert.Equal(t, "white", saved.BackgroundColor)
}

func TestRepository_UpsertSettings_OrphanUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.UpsertSettings(&entities.Setting{UserID: "nobody"})

	assert.ErrorIs(t, err, database.ErrConstraint)
}
