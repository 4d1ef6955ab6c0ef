// Package demo seeds a sample database: a faculty member with published
// office hours, a student with enrollments, and an accepted consultation
// request. Both the root CLI's demo command and cmd/generate_demo use it.
package demo

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/facsched/planner/internal/database"
	"github.com/facsched/planner/internal/database/requests"
	"github.com/facsched/planner/internal/database/settings"
	"github.com/facsched/planner/internal/database/users"
	"github.com/facsched/planner/internal/entities"
	"github.com/facsched/planner/internal/format"
	"github.com/facsched/planner/internal/reconcile"
)

// DefaultDatabasePath is where the demo database is written unless the
// caller overrides it.
const DefaultDatabasePath = "./demo/demo.db"

const bcryptCost = 10

// Generate recreates the database file at dbPath and fills it with the
// sample dataset. An existing file at that path is removed first.
func Generate(dbPath string) error {
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing demo database: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("failed to create demo directory: %w", err)
	}

	db, err := database.NewDatabase(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	return Seed(db)
}

// Seed writes the sample dataset into an already-open database, driving
// the same repositories and reconciliation passes the app uses.
func Seed(db *database.Database) error {
	usersRepo := users.NewRepository(db.DB)
	settingsRepo := settings.NewRepository(db.DB)
	requestsRepo := requests.NewRepository(db.DB)
	rec := reconcile.New(db.DB)

	faculty, err := createUser(usersRepo, &entities.User{
		Name:   "Prof. Emmy Noether",
		Email:  "noether@example.edu",
		Role:   entities.RoleFaculty,
		Status: entities.FacultyStatusAvailable,
	})
	if err != nil {
		return err
	}
	student, err := createUser(usersRepo, &entities.User{
		Name:      "Dana Whitfield",
		Email:     "dana@example.edu",
		Role:      entities.RoleStudent,
		StudentID: "S-2025-0142",
	})
	if err != nil {
		return err
	}

	// Publish the faculty's subject/schedule tree through the reconciler,
	// the same path the app uses after an edit session.
	tree := []format.SubjectNode{
		{ID: uuid.NewString(), Name: "Abstract Algebra", Schedules: []format.ScheduleItem{
			{ID: uuid.NewString(), Title: "Office hours", When: "Mon 10:00-12:00, room 214"},
			{ID: uuid.NewString(), Title: "Problem session", When: "Thu 15:00"},
		}},
		{ID: uuid.NewString(), Name: "Linear Algebra", Schedules: []format.ScheduleItem{
			{ID: uuid.NewString(), Title: "Office hours", When: "Wed 09:00-10:30"},
		}},
	}
	if err := rec.SyncSubjectTree(faculty.ID, tree); err != nil {
		return fmt.Errorf("failed to publish subjects: %w", err)
	}
	log.Printf("Published %d subjects for %s", len(tree), faculty.Name)

	enrollments := map[string]entities.Enrollment{
		uuid.NewString(): {Subject: "Abstract Algebra", FacultyEmail: faculty.Email},
		uuid.NewString(): {Subject: "Linear Algebra", FacultyEmail: faculty.Email},
	}
	if err := rec.SyncEnrollments(student.ID, enrollments); err != nil {
		return fmt.Errorf("failed to record enrollments: %w", err)
	}
	log.Printf("Recorded %d enrollments for %s", len(enrollments), student.Name)

	req, err := requestsRepo.CreateConsultationRequest(&entities.ConsultationRequest{
		ID:          uuid.NewString(),
		FacultyID:   faculty.ID,
		StudentID:   student.ID,
		StudentName: student.Name,
		Datetime:    "2025-09-15 10:30",
		Message:     "Could we go over the ideals homework?",
	})
	if err != nil {
		return fmt.Errorf("failed to create consultation request: %w", err)
	}
	if err := rec.ApplyRequestStatuses([]reconcile.StatusUpdate{
		{ID: req.ID, Status: entities.RequestStatusAccepted},
	}); err != nil {
		return fmt.Errorf("failed to accept request: %w", err)
	}

	if _, err := settingsRepo.UpsertSettings(&entities.Setting{
		UserID:          student.ID,
		CompactLayout:   true,
		Notify:          true,
		BackgroundColor: "#E6D7C4",
	}); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

func createUser(repo *users.Repository, user *entities.User) (*entities.User, error) {
	user.ID = uuid.NewString()
	created, err := repo.CreateUser(user, "demo-password-123", bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", user.Email, err)
	}
	log.Printf("Created user: %s <%s>", created.Name, created.Email)
	return created, nil
}
