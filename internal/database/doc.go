// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, schema migration
//	├── errors.go        # Error sentinels shared by the sub-packages
//	├── users/           # User CRUD and credential checks
//	├── subjects/        # Subject and schedule CRUD
//	├── requests/        # Consultation request CRUD
//	├── enrollments/     # Enrollment CRUD
//	├── settings/        # Per-user display settings
//	└── aggregates/      # Composite multi-table readers
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./planner.db")
//
//	// Create domain-specific repositories
//	usersRepo := users.NewRepository(db.DB)
//	subjectsRepo := subjects.NewRepository(db.DB)
//
//	// Use repositories
//	user, err := usersRepo.GetUserByEmail("prof@example.edu")
//	subs, err := subjectsRepo.GetSubjectsByUserID(user.ID)
//
// # Conventions
//
// Primary keys are opaque strings chosen by the caller; the store performs
// no id generation. Single-row getters return (nil, nil) when no row
// matches: absence is an ordinary result, not an error. Write failures
// caused by uniqueness or foreign-key constraints wrap database.ErrConstraint.
// List reads return rows in descending creation order (most recent first);
// the formatters and aggregate readers rely on that ordering.
//
// Cascade deletes (user→subjects→schedules, user→requests, user→enrollments,
// user→settings) are declared in the schema and enforced by SQLite itself;
// no repository deletes child rows in a loop.
package database
