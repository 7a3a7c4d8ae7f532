// Package services holds the domain operations behind the HTTP surface. Each
// operation receives the authenticated caller explicitly and runs its writes
// in a single store transaction.
package services

import (
	"context"
	"time"

	"github.com/volunteerhub-dev/volunteerhub/internal/apperr"
	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"github.com/volunteerhub-dev/volunteerhub/internal/store"
	"github.com/volunteerhub-dev/volunteerhub/internal/types"
)

// Publisher is told when a project's applications or roster changed.
type Publisher interface {
	ProjectChanged(projectID string)
}

type nopPublisher struct{}

func (nopPublisher) ProjectChanged(string) {}

// Clock returns the current time. Services default to UTC wall time.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

// ClampPage bounds pagination input: skip is at least 0 and limit falls in
// [1, MaxPageLimit].
func ClampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = 1
	}
	if limit > types.MaxPageLimit {
		limit = types.MaxPageLimit
	}
	return skip, limit
}

// ClampDays bounds an analytics window to [1, MaxWindowDays].
func ClampDays(days int) int {
	if days < 1 {
		return 1
	}
	if days > types.MaxWindowDays {
		return types.MaxWindowDays
	}
	return days
}

// ownedProject loads projectID and checks that callerID owns it.
func ownedProject(ctx context.Context, s *store.Store, callerID, projectID string) (*models.Project, error) {
	project, err := s.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != callerID {
		return nil, apperr.Forbidden("Not authorized to manage this project")
	}
	return project, nil
}
