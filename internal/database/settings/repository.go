// Package settings provides database operations for per-user display
// settings.
//
// # Usage
//
//	repo := settings.NewRepository(db)
//	s, err := repo.GetSettingsByUserID(userID)
package settings

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/facsched/planner/internal/database"
	"github.com/facsched/planner/internal/entities"
)

// Repository handles all settings database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new settings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetSettingsByUserID returns the user's stored settings row. When none
// exists it synthesizes the defaults (compact layout off, notifications
// off, white background) keyed to the requested user id without writing
// anything.
func (r *Repository) GetSettingsByUserID(userID string) (*entities.Setting, error) {
	var setting entities.Setting
	err := r.db.Where("user_id = ?", userID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entities.Setting{
			UserID:          userID,
			BackgroundColor: entities.DefaultBackgroundColor,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// UpsertSettings replaces the whole settings row for the user, creating it
// when absent. There is no partial merge: callers pre-merge field updates
// into a complete record before calling. Fails with database.ErrConstraint
// when the user does not exist.
func (r *Repository) UpsertSettings(setting *entities.Setting) (*entities.Setting, error) {
	if setting.BackgroundColor == "" {
		setting.BackgroundColor = entities.DefaultBackgroundColor
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(setting).Error
	if err != nil {
		return nil, database.TranslateWriteError(err)
	}
	return setting, nil
}
