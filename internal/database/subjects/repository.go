// Package subjects provides database operations for the subjects faculty
// members publish and the office-hour schedules nested under them.
//
// # Usage
//
//	repo := subjects.NewRepository(db)
//	subs, err := repo.GetSubjectsByUserID(facultyID)
package subjects

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/facsched/planner/internal/database"
	"github.com/facsched/planner/internal/entities"
)

// Repository handles subject and schedule database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new subjects repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateSubject inserts a single subject row. Fails with
// database.ErrConstraint when the owning user does not exist.
func (r *Repository) CreateSubject(subject *entities.Subject) (*entities.Subject, error) {
	if err := r.db.Omit(clause.Associations).Create(subject).Error; err != nil {
		return nil, database.TranslateWriteError(err)
	}
	return subject, nil
}

// GetSubjectsByUserID returns the user's subjects, most recent first.
// Callers rely on this ordering.
func (r *Repository) GetSubjectsByUserID(userID string) ([]entities.Subject, error) {
	var subs []entities.Subject
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&subs).Error
	return subs, err
}

// DeleteSubject removes a subject by id. Its schedules are removed by the
// engine's cascade rule in the same statement; there is no application-level
// child loop.
func (r *Repository) DeleteSubject(subjectID string) error {
	return r.db.Where("id = ?", subjectID).Delete(&entities.Subject{}).Error
}
