// Package format holds the pure mapping functions that translate stored
// rows into the application-facing shapes, and the view types those shapes
// are made of. Every function tolerates a nil input and propagates absence
// instead of failing, so "not found" flows through untouched.
package format

import (
	"github.com/facsched/planner/internal/entities"
)

// Profile is the application-facing shape of a user row.
type Profile struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Email        string                 `json:"email"`
	Role         entities.Role          `json:"role"`
	StudentID    string                 `json:"studentID,omitempty"`
	Status       entities.FacultyStatus `json:"status,omitempty"`
	ProfilePhoto string                 `json:"profilePhoto,omitempty"`
}

// SettingsView is the application-facing shape of a settings row.
type SettingsView struct {
	CompactLayout   bool   `json:"compactLayout"`
	Notify          bool   `json:"notify"`
	BackgroundColor string `json:"backgroundColor"`
}

// ScheduleItem is one office-hour slot as the caller sees it.
type ScheduleItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	When  string `json:"when"`
}

// SubjectNode is a subject with its schedules nested under it. The same
// shape doubles as the reconciler's desired-state input.
type SubjectNode struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Schedules []ScheduleItem `json:"schedules"`
}

// RequestView is a consultation request reshaped to expose the sender's
// identity instead of raw foreign keys.
type RequestView struct {
	ID       string                 `json:"id"`
	FromID   string                 `json:"fromId"`
	FromName string                 `json:"fromName"`
	Datetime string                 `json:"datetime"`
	Message  string                 `json:"message,omitempty"`
	Status   entities.RequestStatus `json:"status"`
}

// FormatUser maps a user row to its profile shape. The password hash is
// intentionally omitted: credentials never leave the store. Nil in, nil out.
func FormatUser(user *entities.User) *Profile {
	if user == nil {
		return nil
	}
	return &Profile{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		StudentID:    user.StudentID,
		Status:       user.Status,
		ProfilePhoto: user.ProfilePhoto,
	}
}

// FormatSettings maps a settings row to its view shape, defaulting the
// background color to white. A nil row maps to the zero view.
func FormatSettings(setting *entities.Setting) SettingsView {
	if setting == nil {
		return SettingsView{}
	}
	color := setting.BackgroundColor
	if color == "" {
		color = entities.DefaultBackgroundColor
	}
	return SettingsView{
		CompactLayout:   setting.CompactLayout,
		Notify:          setting.Notify,
		BackgroundColor: color,
	}
}

// FormatSchedule maps a schedule row to its slot shape, dropping ownership
// and timestamp columns. Nil in, nil out.
func FormatSchedule(schedule *entities.Schedule) *ScheduleItem {
	if schedule == nil {
		return nil
	}
	return &ScheduleItem{
		ID:    schedule.ID,
		Title: schedule.Title,
		When:  schedule.When,
	}
}

// FormatSchedules maps schedule rows in order.
func FormatSchedules(schedules []entities.Schedule) []ScheduleItem {
	items := make([]ScheduleItem, 0, len(schedules))
	for i := range schedules {
		items = append(items, *FormatSchedule(&schedules[i]))
	}
	return items
}

// FormatRequest maps a request row to the faculty-facing shape: the
// student's denormalized id/name become fromId/fromName. Nil in, nil out.
func FormatRequest(req *entities.ConsultationRequest) *RequestView {
	if req == nil {
		return nil
	}
	return &RequestView{
		ID:       req.ID,
		FromID:   req.StudentID,
		FromName: req.StudentName,
		Datetime: req.Datetime,
		Message:  req.Message,
		Status:   req.Status,
	}
}

// FormatRequests maps request rows in order.
func FormatRequests(reqs []entities.ConsultationRequest) []RequestView {
	views := make([]RequestView, 0, len(reqs))
	for i := range reqs {
		views = append(views, *FormatRequest(&reqs[i]))
	}
	return views
}
