package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"github.com/volunteerhub-dev/volunteerhub/internal/types"
	"gorm.io/driver/sqlite"
)

func TestMigrateDatabaseCreatesUniqueIndexes(t *testing.T) {
	gdb, err := Open(sqlite.Open("file:" + uuid.NewString() + "?mode=memory&cache=shared"))
	require.NoError(t, err)

	require.NoError(t, MigrateDatabase(gdb))

	migrator := gdb.Migrator()
	for _, table := range []any{
		&models.User{}, &models.Project{}, &models.Event{},
		&models.Application{}, &models.Volunteer{}, &models.Notification{},
	} {
		assert.True(t, migrator.HasTable(table))
	}

	assert.True(t, migrator.HasIndex(&models.Application{}, "idx_application_project_volunteer"))
	assert.True(t, migrator.HasIndex(&models.Volunteer{}, "idx_volunteer_project_volunteer"))
}

func TestOpenUsesUTC(t *testing.T) {
	gdb, err := Open(sqlite.Open("file:" + uuid.NewString() + "?mode=memory&cache=shared"))
	require.NoError(t, err)

	now := gdb.NowFunc()
	assert.Equal(t, "UTC", now.Location().String())
}

func TestNotificationTypeRoundTrip(t *testing.T) {
	gdb, err := Open(sqlite.Open("file:" + uuid.NewString() + "?mode=memory&cache=shared"))
	require.NoError(t, err)
	require.NoError(t, MigrateDatabase(gdb))

	user := models.User{Name: "Noor", Email: "noor@example.com", PasswordHash: "x"}
	require.NoError(t, gdb.Create(&user).Error)

	note := models.Notification{
		UserID:  user.ID,
		Type:    types.NotificationApplicationAccepted,
		Title:   "Application accepted",
		Message: "Welcome aboard",
	}
	require.NoError(t, gdb.Create(&note).Error)

	var stored models.Notification
	require.NoError(t, gdb.First(&stored, "id = ?", note.ID).Error)
	assert.Equal(t, types.NotificationApplicationAccepted, stored.Type)
	assert.False(t, stored.Read)
}
