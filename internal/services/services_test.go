package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"github.com/volunteerhub-dev/volunteerhub/internal/store"
	"github.com/volunteerhub-dev/volunteerhub/internal/testutil"
)

type recordingPublisher struct {
	mu       sync.Mutex
	projects []string
}

func (p *recordingPublisher) ProjectChanged(projectID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.projects = append(p.projects, projectID)
}

func (p *recordingPublisher) calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.projects...)
}

func createTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(testutil.NewTestDB(t))
}

func createTestUser(t *testing.T, s *store.Store, name, email string) *models.User {
	t.Helper()
	phone := "555-" + email
	user := &models.User{Name: name, Email: email, PhoneNumber: &phone, PasswordHash: "x"}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func createTestProject(t *testing.T, svc *ProjectService, owner *models.User) *models.Project {
	t.Helper()
	project, err := svc.Create(context.Background(), owner, ProjectInput{
		Title:               "Beach cleanup",
		ShortDescription:    "Clean the beach",
		DetailedDescription: "Bring gloves",
		Category:            "Environment",
		ProjectType:         "Onsite",
		SkillsNeeded:        []string{"Lifting"},
		StartDate:           "2024-01-01",
		EndDate:             "2024-01-10",
	})
	require.NoError(t, err)
	return project
}

func strPtr(s string) *string { return &s }

func TestClampPage(t *testing.T) {
	tests := []struct {
		name              string
		skip, limit       int
		wantSkip, wantLim int
	}{
		{"in range", 10, 50, 10, 50},
		{"negative skip", -5, 50, 0, 50},
		{"zero limit", 0, 0, 0, 1},
		{"limit too large", 0, 1000, 0, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, limit := ClampPage(tt.skip, tt.limit)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLim, limit)
		})
	}
}

func TestClampDays(t *testing.T) {
	assert.Equal(t, 1, ClampDays(0))
	assert.Equal(t, 1, ClampDays(-3))
	assert.Equal(t, 30, ClampDays(30))
	assert.Equal(t, 365, ClampDays(400))
}
