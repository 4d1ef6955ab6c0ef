// Package reconcile converges persisted state to a caller-supplied desired
// state with minimal create/delete operations.
//
// The caller edits an in-memory tree (subjects with nested schedules, an
// enrollment map, a request list) and hands the whole desired state to one
// of the Sync methods. Each pass diffs desired against persisted rows by id
// and applies only the difference: rows are created or deleted, never
// updated in place. A row that changed must therefore arrive under a new
// id. Each pass runs in a single transaction, so a failing step rolls the
// database back to its pre-pass state.
package reconcile

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/facsched/planner/internal/database"
	"github.com/facsched/planner/internal/entities"
	"github.com/facsched/planner/internal/format"
)

// ErrUnknownStatus is returned by ApplyRequestStatuses for a status outside
// the pending/accepted/rejected set, before anything is written.
var ErrUnknownStatus = errors.New("unknown request status")

// StepError reports which sub-operation of a reconciliation pass failed.
// The pass it belongs to was rolled back.
type StepError struct {
	Op  string // e.g. "create subject", "delete enrollment"
	ID  string // id of the row the step operated on
	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("reconciliation step %q failed for id %s: %v", e.Op, e.ID, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// StatusUpdate is one requested status transition.
type StatusUpdate struct {
	ID     string
	Status entities.RequestStatus
}

// Reconciler applies diff passes against the store.
type Reconciler struct {
	db *gorm.DB
}

// New creates a reconciler on the given connection handle.
func New(db *gorm.DB) *Reconciler {
	return &Reconciler{db: db}
}

// SyncSubjectTree converges the faculty's persisted subjects and schedules
// to the desired tree. Subjects and schedules present in the tree but not
// in storage are created; subjects in storage but not in the tree are
// deleted (cascading their schedules). Schedules of a retained subject are
// create-only here; single-schedule removal goes through RemoveSchedule.
// Applying the same tree twice performs no writes on the second pass.
func (r *Reconciler) SyncSubjectTree(userID string, desired []format.SubjectNode) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var current []entities.Subject
		if err := tx.Where("user_id = ?", userID).Find(&current).Error; err != nil {
			return err
		}

		currentIDs := make(map[string]bool, len(current))
		for _, sub := range current {
			currentIDs[sub.ID] = true
		}
		desiredIDs := make(map[string]bool, len(desired))
		for _, node := range desired {
			desiredIDs[node.ID] = true
		}

		for _, node := range desired {
			if !currentIDs[node.ID] {
				if err := createSubjectWithSchedules(tx, userID, node); err != nil {
					return err
				}
				continue
			}
			if err := syncSchedules(tx, node); err != nil {
				return err
			}
		}

		for _, sub := range current {
			if desiredIDs[sub.ID] {
				continue
			}
			// Schedules go with it via the engine's cascade.
			if err := tx.Where("id = ?", sub.ID).Delete(&entities.Subject{}).Error; err != nil {
				return &StepError{Op: "delete subject", ID: sub.ID, Err: err}
			}
		}

		return nil
	})
}

func createSubjectWithSchedules(tx *gorm.DB, userID string, node format.SubjectNode) error {
	subject := entities.Subject{ID: node.ID, UserID: userID, Name: node.Name}
	if err := tx.Create(&subject).Error; err != nil {
		return &StepError{Op: "create subject", ID: node.ID, Err: database.TranslateWriteError(err)}
	}
	for _, item := range node.Schedules {
		schedule := entities.Schedule{ID: item.ID, SubjectID: node.ID, Title: item.Title, When: item.When}
		if err := tx.Create(&schedule).Error; err != nil {
			return &StepError{Op: "create schedule", ID: item.ID, Err: database.TranslateWriteError(err)}
		}
	}
	return nil
}

func syncSchedules(tx *gorm.DB, node format.SubjectNode) error {
	var existing []entities.Schedule
	if err := tx.Where("subject_id = ?", node.ID).Find(&existing).Error; err != nil {
		return err
	}
	existingIDs := make(map[string]bool, len(existing))
	for _, s := range existing {
		existingIDs[s.ID] = true
	}

	for _, item := range node.Schedules {
		if existingIDs[item.ID] {
			continue
		}
		schedule := entities.Schedule{ID: item.ID, SubjectID: node.ID, Title: item.Title, When: item.When}
		if err := tx.Create(&schedule).Error; err != nil {
			return &StepError{Op: "create schedule", ID: item.ID, Err: database.TranslateWriteError(err)}
		}
	}
	return nil
}

// RemoveSchedule deletes one schedule from the named subject. This is the
// narrow single-selection operation the caller invokes for the active
// subject; it is deliberately not part of the tree-level diff.
func (r *Reconciler) RemoveSchedule(subjectID, scheduleID string) error {
	return r.db.Where("id = ? AND subject_id = ?", scheduleID, subjectID).
		Delete(&entities.Schedule{}).Error
}

// SyncEnrollments converges the student's persisted enrollments to the
// desired map (id → enrollment). Ids only in desired are created, ids only
// in storage are deleted, ids in both are left untouched (their original
// enrollment timestamps survive).
func (r *Reconciler) SyncEnrollments(studentID string, desired map[string]entities.Enrollment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var current []entities.Enrollment
		if err := tx.Where("student_id = ?", studentID).Find(&current).Error; err != nil {
			return err
		}

		currentIDs := make(map[string]bool, len(current))
		for _, enr := range current {
			currentIDs[enr.ID] = true
		}

		for id, enr := range desired {
			if currentIDs[id] {
				continue
			}
			enr.ID = id
			enr.StudentID = studentID
			if err := tx.Create(&enr).Error; err != nil {
				return &StepError{Op: "create enrollment", ID: id, Err: database.TranslateWriteError(err)}
			}
		}

		for _, enr := range current {
			if _, ok := desired[enr.ID]; ok {
				continue
			}
			if err := tx.Where("id = ?", enr.ID).Delete(&entities.Enrollment{}).Error; err != nil {
				return &StepError{Op: "delete enrollment", ID: enr.ID, Err: err}
			}
		}

		return nil
	})
}

// ApplyRequestStatuses applies a batch of status transitions. Statuses are
// validated against the enum before anything is written; the batch itself
// is transactional. Reapplying the same transition is a no-op in effect.
func (r *Reconciler) ApplyRequestStatuses(updates []StatusUpdate) error {
	for _, u := range updates {
		switch u.Status {
		case entities.RequestStatusPending, entities.RequestStatusAccepted, entities.RequestStatusRejected:
		default:
			return fmt.Errorf("%w: %q for request %s", ErrUnknownStatus, u.Status, u.ID)
		}
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			err := tx.Model(&entities.ConsultationRequest{}).
				Where("id = ?", u.ID).
				Update("status", u.Status).Error
			if err != nil {
				return &StepError{Op: "update request status", ID: u.ID, Err: err}
			}
		}
		return nil
	})
}
