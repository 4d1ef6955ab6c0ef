package entities

import (
	"time"
)

type Role string

const (
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// FacultyStatus is the availability flag faculty members toggle on their profile.
type FacultyStatus string

const (
	FacultyStatusAvailable FacultyStatus = "available"
	FacultyStatusBusy      FacultyStatus = "busy"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// DefaultBackgroundColor is applied when a user has no stored settings row.
const DefaultBackgroundColor = "white"

// User is a faculty member or student. IDs are opaque strings supplied by
// the caller at signup; the store never generates them.
type User struct {
	ID           string        `gorm:"primaryKey;size:64" json:"id"`
	Name         string        `gorm:"size:255;not null" json:"name"`
	Email        string        `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string        `gorm:"size:128;not null" json:"-"`
	Role         Role          `gorm:"size:20;not null" json:"role"`
	StudentID    string        `gorm:"size:64" json:"student_id,omitempty"` // students only
	Status       FacultyStatus `gorm:"size:20" json:"status,omitempty"`     // faculty only
	ProfilePhoto string        `gorm:"size:2048" json:"profile_photo,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`

	Subjects         []Subject             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	RequestsReceived []ConsultationRequest `gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE" json:"-"`
	RequestsSent     []ConsultationRequest `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Enrollments      []Enrollment          `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Settings         *Setting              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// Subject is a course a faculty member publishes office hours for.
// Deleting a subject cascades to its schedules at the storage engine.
type Subject struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	UserID    string    `gorm:"index;size:64;not null" json:"user_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Schedules []Schedule `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"-"`
}

// Schedule is one office-hour slot under a subject. When is free-text
// time/notes, not a parsed timestamp.
type Schedule struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	SubjectID string    `gorm:"index;size:64;not null" json:"subject_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	When      string    `gorm:"column:schedule_time;size:255;not null" json:"when"`
	CreatedAt time.Time `json:"created_at"`
}

// ConsultationRequest is a student's request for a consultation slot with a
// faculty member. The sender's name is denormalized so the request list
// renders without a join.
type ConsultationRequest struct {
	ID          string        `gorm:"primaryKey;size:64" json:"id"`
	FacultyID   string        `gorm:"index;size:64;not null" json:"faculty_id"`
	StudentID   string        `gorm:"index;size:64;not null" json:"student_id"`
	StudentName string        `gorm:"size:255;not null" json:"student_name"`
	Datetime    string        `gorm:"size:255;not null" json:"datetime"`
	Message     string        `gorm:"type:text" json:"message,omitempty"`
	Status      RequestStatus `gorm:"size:20;default:'pending'" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Enrollment records a course a student signed up for. Subject and
// FacultyEmail are free text, not foreign keys, so an enrollment survives
// the faculty later removing the published subject.
type Enrollment struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	StudentID    string    `gorm:"index;size:64;not null" json:"student_id"`
	Subject      string    `gorm:"size:255;not null" json:"subject"`
	FacultyEmail string    `gorm:"size:255;not null" json:"faculty_email"`
	EnrolledAt   time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
}

// Setting holds per-user display preferences, one row per user keyed by the
// user id. Replaced wholesale on update, never patched field by field.
type Setting struct {
	UserID          string `gorm:"primaryKey;size:64" json:"user_id"`
	CompactLayout   bool   `gorm:"default:false" json:"compact_layout"`
	Notify          bool   `gorm:"default:false" json:"notify"`
	BackgroundColor string `gorm:"size:32;default:'white'" json:"background_color"`
}

func (User) TableName() string {
	return "users"
}

func (Subject) TableName() string {
	return "subjects"
}

func (Schedule) TableName() string {
	return "schedules"
}

func (ConsultationRequest) TableName() string {
	return "consultation_requests"
}

func (Enrollment) TableName() string {
	return "enrollments"
}

func (Setting) TableName() string {
	return "settings"
}
