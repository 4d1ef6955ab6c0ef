// Package enrollments provides database operations for the courses a
// student records themselves as enrolled in.
//
// Subject and faculty email are stored as free text on purpose: an
// enrollment must outlive the faculty member later renaming or removing
// the published subject.
package enrollments

import (
	"gorm.io/gorm"

	"github.com/facsched/planner/internal/database"
	"github.com/facsched/planner/internal/entities"
)

// Repository handles all enrollment database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new enrollments repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateEnrollment inserts a single enrollment row. Fails with
// database.ErrConstraint when the student id does not exist.
func (r *Repository) CreateEnrollment(enrollment *entities.Enrollment) (*entities.Enrollment, error) {
	if err := r.db.Create(enrollment).Error; err != nil {
		return nil, database.TranslateWriteError(err)
	}
	return enrollment, nil
}

// GetEnrollmentsByStudentID returns the student's enrollments, most
// recently enrolled first.
func (r *Repository) GetEnrollmentsByStudentID(studentID string) ([]entities.Enrollment, error) {
	var enrollments []entities.Enrollment
	err := r.db.Where("student_id = ?", studentID).Order("enrolled_at DESC").Find(&enrollments).Error
	return enrollments, err
}

// DeleteEnrollment removes a single enrollment by id.
func (r *Repository) DeleteEnrollment(enrollmentID string) error {
	return r.db.Where("id = ?", enrollmentID).Delete(&entities.Enrollment{}).Error
}
