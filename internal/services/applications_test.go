package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunteerhub-dev/volunteerhub/internal/apperr"
	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"github.com/volunteerhub-dev/volunteerhub/internal/store"
	"github.com/volunteerhub-dev/volunteerhub/internal/testutil"
	"github.com/volunteerhub-dev/volunteerhub/internal/types"
)

type workflowFixture struct {
	store     *store.Store
	projects  *ProjectService
	apps      *ApplicationService
	publisher *recordingPublisher
	clock     *testutil.FixedClock
	owner     *models.User
	volunteer *models.User
	project   *models.Project
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	s := createTestStore(t)
	f := &workflowFixture{
		store:     s,
		projects:  NewProjectService(s),
		publisher: &recordingPublisher{},
		clock:     testutil.NewFixedClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)),
	}
	f.apps = NewApplicationService(s, f.publisher)
	f.apps.now = f.clock.Now

	f.owner = createTestUser(t, s, "Olive Owner", "owner@example.com")
	f.volunteer = createTestUser(t, s, "Vic Volunteer", "vic@example.com")
	f.project = createTestProject(t, f.projects, f.owner)
	return f
}

func (f *workflowFixture) rosterSize(t *testing.T) int {
	t.Helper()
	entries, err := f.store.ListVolunteers(context.Background(), f.project.ID)
	require.NoError(t, err)
	return len(entries)
}

func TestSubmitApplicationSnapshotsCaller(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	app, err := f.apps.Submit(ctx, f.volunteer, f.project.ID, ApplyInput{
		Skills:  []string{"Swimming"},
		Message: strPtr("Happy to help"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(types.ApplicationPending), app.Status)
	assert.Equal(t, "Vic Volunteer", app.VolunteerName)
	assert.Equal(t, "vic@example.com", app.VolunteerEmail)
	require.NotNil(t, app.VolunteerPhone)
	assert.Equal(t, *f.volunteer.PhoneNumber, *app.VolunteerPhone)
	assert.Equal(t, f.clock.Now(), app.AppliedAt.UTC())
	assert.Equal(t, []string{f.project.ID}, f.publisher.calls())

	// The snapshot does not follow later profile changes.
	users := NewUserService(f.store, nil)
	_, err = users.UpdateProfile(ctx, f.volunteer, ProfileUpdate{Name: strPtr("Victoria")})
	require.NoError(t, err)

	stored, err := f.store.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vic Volunteer", stored.VolunteerName)
}

func TestSubmitApplicationNameFallsBackToEmail(t *testing.T) {
	f := newWorkflowFixture(t)
	nameless := createTestUser(t, f.store, "", "anon@example.com")

	app, err := f.apps.Submit(context.Background(), nameless, f.project.ID, ApplyInput{})
	require.NoError(t, err)
	assert.Equal(t, "anon@example.com", app.VolunteerName)
	assert.Equal(t, []string{}, []string(app.Skills))
}

func TestSubmitApplicationErrors(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	_, err := f.apps.Submit(ctx, f.volunteer, "missing", ApplyInput{})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.apps.Submit(ctx, f.volunteer, f.project.ID, ApplyInput{})
	require.NoError(t, err)

	_, err = f.apps.Submit(ctx, f.volunteer, f.project.ID, ApplyInput{})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestListForProjectRequiresOwner(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	first, err := f.apps.Submit(ctx, f.volunteer, f.project.ID, ApplyInput{})
	require.NoError(t, err)
	f.clock.Advance(time.Hour)
	second, err := f.apps.Submit(ctx, createTestUser(t, f.store, "Sam", "sam@example.com"), f.project.ID, ApplyInput{})
	require.NoError(t, err)

	apps, err := f.apps.ListForProject(ctx, f.owner, f.project.ID, 0, 100)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, second.ID, apps[0].ID)
	assert.Equal(t, first.ID, apps[1].ID)

	apps, err = f.apps.ListForProject(ctx, f.owner, f.project.ID, -1, 0)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, second.ID, apps[0].ID)

	_, err = f.apps.ListForProject(ctx, f.volunteer, f.project.ID, 0, 100)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = f.apps.ListForProject(ctx, f.owner, "missing", 0, 100)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAcceptIsIdempotent(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	app, err := f.apps.Submit(ctx, f.volunteer, f.project.ID, ApplyInput{})
	require.NoError(t, err)

	updated, err := f.apps.UpdateStatus(ctx, f.owner, f.project.ID, app.ID, "Accepted")
	require.NoError(t, err)
	assert.Equal(t, string(types.ApplicationAccepted), updated.Status)
	assert.Equal(t, 1, f.rosterSize(t))

	entry, err := f.store.FindVolunteer(ctx, f.project.ID, f.volunteer.ID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, string(types.VolunteerActive), entry.Status)
	assert.Nil(t, entry.Role)
	assert.Nil(t, entry.HoursContributed)

	// Second acceptance through the project-less route.
	_, err = f.apps.UpdateStatus(ctx, f.owner, "", app.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, 1, f.rosterSize(t))
}

func TestRejectAfterAcceptKeepsRosterEntry(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	app, err := f.apps.Submit(ctx, f.volunteer, f.project.ID, ApplyInput{})
	require.NoError(t, err)

	_, err = f.apps.UpdateStatus(ctx, f.owner, f.project.ID, app.ID, "Rejected")
	require.NoError(t, err)
	assert.Equal(t, 0, f.rosterSize(t))

	_, err = f.apps.UpdateStatus(ctx, f.owner, f.project.ID, app.ID, "Accepted")
	require.NoError(t, err)
	updated, err := f.apps.UpdateStatus(ctx, f.owner, f.project.ID, app.ID, "Rejected")
	require.NoError(t, err)
	assert.Equal(t, string(types.ApplicationRejected), updated.Status)
	assert.Equal(t, 1, f.rosterSize(t))

	_, err = f.apps.UpdateStatus(ctx, f.owner, f.project.ID, app.ID, "Pending")
	require.NoError(t, err)
	assert.Equal(t, 1, f.rosterSize(t))
}

func TestUpdateStatusErrors(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	app, err := f.apps.Submit(ctx, f.volunteer, f.project.ID, ApplyInput{})
	require.NoError(t, err)
	other := createTestProject(t, f.projects, f.owner)

	tests := []struct {
		name      string
		caller    *models.User
		projectID string
		appID     string
		status    string
		want      error
	}{
		{"unknown project", f.owner, "missing", app.ID, "Accepted", apperr.ErrNotFound},
		{"unknown application", f.owner, f.project.ID, "missing", "Accepted", apperr.ErrNotFound},
		{"application of another project", f.owner, other.ID, app.ID, "Accepted", apperr.ErrNotFound},
		{"not the owner", f.volunteer, f.project.ID, app.ID, "Accepted", apperr.ErrForbidden},
		{"not the owner without project", f.volunteer, "", app.ID, "Accepted", apperr.ErrForbidden},
		{"unknown status", f.owner, f.project.ID, app.ID, "Maybe", apperr.ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.apps.UpdateStatus(ctx, tt.caller, tt.projectID, tt.appID, tt.status)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Equal(t, 0, f.rosterSize(t))
	stored, err := f.store.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, string(types.ApplicationPending), stored.Status)
}

func TestListMine(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	_, err := f.apps.Submit(ctx, f.volunteer, f.project.ID, ApplyInput{})
	require.NoError(t, err)

	mine, err := f.apps.ListMine(ctx, f.volunteer)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	mine, err = f.apps.ListMine(ctx, f.owner)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestListVolunteersJoinsLiveProfile(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	app, err := f.apps.Submit(ctx, f.volunteer, f.project.ID, ApplyInput{})
	require.NoError(t, err)
	_, err = f.apps.UpdateStatus(ctx, f.owner, f.project.ID, app.ID, "Accepted")
	require.NoError(t, err)

	users := NewUserService(f.store, nil)
	_, err = users.UpdateProfile(ctx, f.volunteer, ProfileUpdate{
		Name:   strPtr("Victoria"),
		Skills: &[]string{"First aid"},
	})
	require.NoError(t, err)

	// An entry whose status is outside the enumeration reads as Active.
	ghostJoined := f.clock.Now().Add(time.Minute)
	ghost := createTestUser(t, f.store, "Ghost", "ghost@example.com")
	require.NoError(t, f.store.CreateVolunteer(ctx, &models.Volunteer{
		ProjectID:   f.project.ID,
		VolunteerID: ghost.ID,
		Status:      "Legacy",
		JoinedAt:    &ghostJoined,
	}))

	roster, err := f.apps.ListVolunteers(ctx, f.owner, f.project.ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)

	require.NotNil(t, roster[0].Name)
	assert.Equal(t, "Victoria", *roster[0].Name)
	assert.Equal(t, []string{"First aid"}, roster[0].Skills)
	assert.Equal(t, types.VolunteerActive, roster[0].Status)
	assert.Equal(t, types.VolunteerActive, roster[1].Status)

	_, err = f.apps.ListVolunteers(ctx, f.volunteer, f.project.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestJoinRosterWithoutProfile(t *testing.T) {
	joined := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	roster := []models.Volunteer{
		{ProjectID: "p1", VolunteerID: "gone", Status: "Inactive", JoinedAt: &joined},
		{ProjectID: "p1", VolunteerID: "kept"},
	}
	roster[0].ID = "v1"
	roster[1].ID = "v2"

	users := map[string]models.User{
		"kept": {Name: "Kim", Email: "kim@example.com"},
	}

	got := joinRoster(roster, users)
	require.Len(t, got, 2)

	assert.Equal(t, "v1", got[0].ID)
	assert.Equal(t, "gone", got[0].VolunteerID)
	assert.Nil(t, got[0].Name)
	assert.Nil(t, got[0].Email)
	assert.Equal(t, []string{}, got[0].Skills)
	assert.Equal(t, types.VolunteerInactive, got[0].Status)
	assert.Equal(t, &joined, got[0].JoinedAt)

	require.NotNil(t, got[1].Name)
	assert.Equal(t, "Kim", *got[1].Name)
	assert.Equal(t, "kim@example.com", *got[1].Email)
	assert.Equal(t, []string{}, got[1].Skills)

	assert.Empty(t, joinRoster(nil, map[string]models.User{}))
}
