// Package users provides database operations for user management.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetUserByEmail(email)
package users

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/facsched/planner/internal/auth"
	"github.com/facsched/planner/internal/database"
	"github.com/facsched/planner/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser persists a new user, hashing the plaintext password before it
// touches storage. The caller supplies the id. Fails with
// database.ErrConstraint when the email is already registered.
func (r *Repository) CreateUser(user *entities.User, password string, bcryptCost int) (*entities.User, error) {
	hash, err := auth.HashPassword(password, bcryptCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	if err := r.db.Omit(clause.Associations).Create(user).Error; err != nil {
		return nil, database.TranslateWriteError(err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email. Returns (nil, nil) when no user
// has that email.
func (r *Repository) GetUserByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by id. Returns (nil, nil) when absent.
func (r *Repository) GetUserByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAllUsers returns every user, ordered by name. The student-facing
// caller uses this to list faculty to enroll with.
func (r *Repository) GetAllUsers() ([]entities.User, error) {
	var users []entities.User
	err := r.db.Order("name ASC").Find(&users).Error
	return users, err
}

// UpdateUser replaces the mutable profile fields (name, email, studentID,
// status, profilePhoto) of the user with the given id. Id, role and
// password are immutable after creation and are never touched here.
func (r *Repository) UpdateUser(user *entities.User) error {
	err := r.db.Model(&entities.User{}).
		Where("id = ?", user.ID).
		Select("name", "email", "student_id", "status", "profile_photo").
		Updates(user).Error
	return database.TranslateWriteError(err)
}

// Authenticate checks the email/password pair against the stored bcrypt
// hash. An unknown email and a wrong password are indistinguishable to the
// caller: both return auth.ErrInvalidPassword.
func (r *Repository) Authenticate(email, password string) (*entities.User, error) {
	user, err := r.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, auth.ErrInvalidPassword
	}
	if err := auth.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, err
	}
	return user, nil
}
