package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunteerhub-dev/volunteerhub/db"
	"github.com/volunteerhub-dev/volunteerhub/internal/apperr"
	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"github.com/volunteerhub-dev/volunteerhub/internal/testutil"
	"gorm.io/driver/postgres"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	return New(testutil.NewTestDB(t))
}

func createTestUser(t *testing.T, s *Store, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "User " + email, Email: email, PasswordHash: "x"}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func createTestProject(t *testing.T, s *Store, ownerID string) *models.Project {
	t.Helper()
	project := &models.Project{
		OwnerID:             ownerID,
		Title:               "Beach cleanup",
		ShortDescription:    "Clean the beach",
		DetailedDescription: "Bring gloves",
		Category:            "Environment",
		ProjectType:         "Onsite",
		ImageURL:            "/volunteer-project.jpg",
		StartDate:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:             time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreateProject(context.Background(), project))
	return project
}

func strPtr(s string) *string { return &s }

func TestCreateProjectWithEvents(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	owner := createTestUser(t, s, "owner@example.com")

	project := &models.Project{
		OwnerID:     owner.ID,
		Title:       "Food bank",
		Category:    "Community",
		ProjectType: "Hybrid",
		StartDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Events: []models.Event{
			{Name: "Second shift", Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), Time: "14:00", SlotsAvailable: 3},
			{Name: "First shift", Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Time: "09:00", SlotsAvailable: 5},
		},
	}
	require.NoError(t, s.CreateProject(ctx, project))
	assert.NotEmpty(t, project.ID)

	detail, err := s.GetProjectDetail(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, detail.Events, 2)
	assert.Equal(t, "First shift", detail.Events[0].Name)
	assert.Equal(t, "Second shift", detail.Events[1].Name)
	assert.Equal(t, owner.Email, detail.Owner.Email)
}

func TestGetProjectNotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.GetProject(context.Background(), "missing")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestListProjectsFilters(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	alice := createTestUser(t, s, "alice@example.com")
	bob := createTestUser(t, s, "bob@example.com")
	createTestProject(t, s, alice.ID)
	createTestProject(t, s, bob.ID)

	all, err := s.ListProjects(ctx, ProjectFilter{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := s.ListProjects(ctx, ProjectFilter{OwnerID: alice.ID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, alice.ID, mine[0].OwnerID)

	none, err := s.ListProjects(ctx, ProjectFilter{Category: "Health", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListApplicationsNewestFirstWithPaging(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	owner := createTestUser(t, s, "owner@example.com")
	project := createTestProject(t, s, owner.ID)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		v := createTestUser(t, s, email)
		require.NoError(t, s.CreateApplication(ctx, &models.Application{
			ProjectID:      project.ID,
			VolunteerID:    strPtr(v.ID),
			VolunteerName:  v.Name,
			VolunteerEmail: v.Email,
			Status:         "Pending",
			AppliedAt:      base.Add(time.Duration(i) * time.Hour),
		}))
	}

	apps, err := s.ListApplications(ctx, project.ID, 0, 100)
	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.Equal(t, "c@example.com", apps[0].VolunteerEmail)
	assert.Equal(t, "a@example.com", apps[2].VolunteerEmail)

	page, err := s.ListApplications(ctx, project.ID, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b@example.com", page[0].VolunteerEmail)
}

func TestUniqueApplicationPerVolunteer(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	owner := createTestUser(t, s, "owner@example.com")
	volunteer := createTestUser(t, s, "v@example.com")
	project := createTestProject(t, s, owner.ID)

	newApp := func() *models.Application {
		return &models.Application{
			ProjectID:      project.ID,
			VolunteerID:    strPtr(volunteer.ID),
			VolunteerName:  volunteer.Name,
			VolunteerEmail: volunteer.Email,
			Status:         "Pending",
		}
	}

	require.NoError(t, s.CreateApplication(ctx, newApp()))

	exists, err := s.ApplicationExists(ctx, project.ID, volunteer.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	err = s.CreateApplication(ctx, newApp())
	assert.True(t, errors.Is(err, apperr.ErrConflict), "got %v", err)
}

func TestUniqueRosterEntry(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	owner := createTestUser(t, s, "owner@example.com")
	volunteer := createTestUser(t, s, "v@example.com")
	project := createTestProject(t, s, owner.ID)

	found, err := s.FindVolunteer(ctx, project.ID, volunteer.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	require.NoError(t, s.CreateVolunteer(ctx, &models.Volunteer{ProjectID: project.ID, VolunteerID: volunteer.ID, Status: "Active"}))

	found, err = s.FindVolunteer(ctx, project.ID, volunteer.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Active", found.Status)

	err = s.CreateVolunteer(ctx, &models.Volunteer{ProjectID: project.ID, VolunteerID: volunteer.ID, Status: "Active"})
	assert.True(t, errors.Is(err, apperr.ErrConflict), "got %v", err)
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	boom := errors.New("boom")
	err := s.Transaction(ctx, func(tx *Store) error {
		if err := tx.CreateUser(ctx, &models.User{Name: "Temp", Email: "temp@example.com", PasswordHash: "x"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.GetUserByEmail(ctx, "temp@example.com")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestEmailAndPhoneTaken(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	user := &models.User{Name: "P", Email: "p@example.com", PhoneNumber: strPtr("+100"), PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, user))

	taken, err := s.EmailTaken(ctx, "p@example.com", "")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = s.EmailTaken(ctx, "p@example.com", user.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = s.PhoneTaken(ctx, "+100", "")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestGetUsersByIDsSkipsMissing(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	u := createTestUser(t, s, "u@example.com")

	users, err := s.GetUsersByIDs(ctx, []string{u.ID, "gone"})
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, u.Email, users[u.ID].Email)
}

func TestStorageFailureIsInternal(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := db.Open(postgres.New(postgres.Config{Conn: sqlDB}))
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "projects"`).WillReturnError(errors.New("connection reset"))

	_, err = New(gdb).GetProject(context.Background(), "p1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInternal))
	assert.False(t, errors.Is(err, apperr.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
