// Package aggregates provides composite read operations that assemble a
// user's full aggregate (profile, subjects with nested schedules, and for
// faculty the incoming consultation requests) from multiple tables.
package aggregates

import (
	"gorm.io/gorm"

	"github.com/facsched/planner/internal/database/requests"
	"github.com/facsched/planner/internal/database/subjects"
	"github.com/facsched/planner/internal/database/users"
	"github.com/facsched/planner/internal/format"
)

// Repository assembles aggregates on top of the entity repositories so the
// ordering contracts (most recent first) come from one place.
type Repository struct {
	users    *users.Repository
	subjects *subjects.Repository
	requests *requests.Repository
}

// NewRepository creates a new aggregates repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		users:    users.NewRepository(db),
		subjects: subjects.NewRepository(db),
		requests: requests.NewRepository(db),
	}
}

// UserData is a user with their subject/schedule tree.
type UserData struct {
	format.Profile
	Subjects []format.SubjectNode `json:"subjects"`
}

// FacultyData extends UserData with the faculty's consultation requests.
type FacultyData struct {
	UserData
	Requests []format.RequestView `json:"requests"`
}

// GetUserWithSubjectsAndSchedules reads the user and nests each subject's
// schedules under it. Returns (nil, nil) when the user does not exist.
// Subjects and schedules both carry the repositories' descending-creation
// order.
func (r *Repository) GetUserWithSubjectsAndSchedules(userID string) (*UserData, error) {
	user, err := r.users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	subs, err := r.subjects.GetSubjectsByUserID(userID)
	if err != nil {
		return nil, err
	}

	nodes := make([]format.SubjectNode, 0, len(subs))
	for _, sub := range subs {
		schedules, err := r.subjects.GetSchedulesBySubjectID(sub.ID)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, format.SubjectNode{
			ID:        sub.ID,
			Name:      sub.Name,
			Schedules: format.FormatSchedules(schedules),
		})
	}

	return &UserData{
		Profile:  *format.FormatUser(user),
		Subjects: nodes,
	}, nil
}

// GetFacultyDataWithRequests is GetUserWithSubjectsAndSchedules plus the
// faculty's consultation requests, reshaped to expose the sender's id and
// name. Returns (nil, nil) when the faculty user does not exist.
func (r *Repository) GetFacultyDataWithRequests(facultyID string) (*FacultyData, error) {
	userData, err := r.GetUserWithSubjectsAndSchedules(facultyID)
	if err != nil {
		return nil, err
	}
	if userData == nil {
		return nil, nil
	}

	reqs, err := r.requests.GetConsultationRequestsByFacultyID(facultyID)
	if err != nil {
		return nil, err
	}

	return &FacultyData{
		UserData: *userData,
		Requests: format.FormatRequests(reqs),
	}, nil
}
