package subjects

import (
	"github.com/facsched/planner/internal/database"
	"github.com/facsched/planner/internal/entities"
)

// CreateSchedule inserts a single schedule row under a subject. Fails with
// database.ErrConstraint when the subject does not exist.
func (r *Repository) CreateSchedule(schedule *entities.Schedule) (*entities.Schedule, error) {
	if err := r.db.Create(schedule).Error; err != nil {
		return nil, database.TranslateWriteError(err)
	}
	return schedule, nil
}

// GetSchedulesBySubjectID returns the subject's schedules, most recent first.
func (r *Repository) GetSchedulesBySubjectID(subjectID string) ([]entities.Schedule, error) {
	var schedules []entities.Schedule
	err := r.db.Where("subject_id = ?", subjectID).Order("created_at DESC").Find(&schedules).Error
	return schedules, err
}

// DeleteSchedule removes a single schedule by id.
func (r *Repository) DeleteSchedule(scheduleID string) error {
	return r.db.Where("id = ?", scheduleID).Delete(&entities.Schedule{}).Error
}
