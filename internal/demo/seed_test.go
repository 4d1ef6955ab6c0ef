package demo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facsched/planner/internal/database"
	"github.com/facsched/planner/internal/entities"
)

func TestGenerate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "demo.db")

	require.NoError(t, Generate(dbPath))

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var userCount int64
	require.NoError(t, db.DB.Model(&entities.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(2), userCount)

	var faculty entities.User
	require.NoError(t, db.DB.Where("role = ?", entities.RoleFaculty).First(&faculty).Error)

	var subjectCount, scheduleCount int64
	require.NoError(t, db.DB.Model(&entities.Subject{}).Where("user_id = ?", faculty.ID).Count(&subjectCount).Error)
	assert.Equal(t, int64(2), subjectCount)
	require.NoError(t, db.DB.Model(&entities.Schedule{}).Count(&scheduleCount).Error)
	assert.Equal(t, int64(3), scheduleCount)

	var student entities.User
	require.NoError(t, db.DB.Where("role = ?", entities.RoleStudent).First(&student).Error)

	var enrollmentCount int64
	require.NoError(t, db.DB.Model(&entities.Enrollment{}).Where("student_id = ?", student.ID).Count(&enrollmentCount).Error)
	assert.Equal(t, int64(2), enrollmentCount)

	var req entities.ConsultationRequest
	require.NoError(t, db.DB.First(&req).Error)
	assert.Equal(t, entities.RequestStatusAccepted, req.Status)
	assert.Equal(t, faculty.ID, req.FacultyID)
	assert.Equal(t, student.ID, req.StudentID)

	var setting entities.Setting
	require.NoError(t, db.DB.Where("user_id = ?", student.ID).First(&setting).Error)
	assert.True(t, setting.CompactLayout)
}

func TestGenerate_ReplacesExistingFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "demo.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("not a database"), 0o644))

	require.NoError(t, Generate(dbPath))

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var userCount int64
	require.NoError(t, db.DB.Model(&entities.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(2), userCount)
}
