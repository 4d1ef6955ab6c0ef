// Package requests provides database operations for consultation requests
// students send to faculty.
//
// # Usage
//
//	repo := requests.NewRepository(db)
//	pending, err := repo.GetConsultationRequestsByFacultyID(facultyID)
package requests

import (
	"gorm.io/gorm"

	"github.com/facsched/planner/internal/database"
	"github.com/facsched/planner/internal/entities"
)

// Repository handles all consultation request database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new requests repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateConsultationRequest inserts a single request row. Status defaults
// to pending when unset. Fails with database.ErrConstraint when either the
// faculty or the student id does not reference an existing user.
func (r *Repository) CreateConsultationRequest(req *entities.ConsultationRequest) (*entities.ConsultationRequest, error) {
	if req.Status == "" {
		req.Status = entities.RequestStatusPending
	}
	if err := r.db.Create(req).Error; err != nil {
		return nil, database.TranslateWriteError(err)
	}
	return req, nil
}

// GetConsultationRequestsByFacultyID returns all requests addressed to the
// faculty member, most recent first.
func (r *Repository) GetConsultationRequestsByFacultyID(facultyID string) ([]entities.ConsultationRequest, error) {
	var reqs []entities.ConsultationRequest
	err := r.db.Where("faculty_id = ?", facultyID).Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

// GetConsultationRequestsByStudentID returns all requests the student has
// sent, most recent first.
func (r *Repository) GetConsultationRequestsByStudentID(studentID string) ([]entities.ConsultationRequest, error) {
	var reqs []entities.ConsultationRequest
	err := r.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

// UpdateConsultationRequestStatus sets the status of a request by id.
// The status string is stored as given; enum validation belongs to the
// caller (the reconciler enforces it on its batch path).
func (r *Repository) UpdateConsultationRequestStatus(requestID string, status entities.RequestStatus) error {
	return r.db.Model(&entities.ConsultationRequest{}).
		Where("id = ?", requestID).
		Update("status", status).Error
}
