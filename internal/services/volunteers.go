package services

import (
	"context"

	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"github.com/volunteerhub-dev/volunteerhub/internal/types"
)

// ListVolunteers returns the project's roster joined with each volunteer's
// current profile. Only the owner may view it.
func (s *ApplicationService) ListVolunteers(ctx context.Context, caller *models.User, projectID string) ([]types.VolunteerResponse, error) {
	if _, err := ownedProject(ctx, s.store, caller.ID, projectID); err != nil {
		return nil, err
	}

	roster, err := s.store.ListVolunteers(ctx, projectID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(roster))
	for _, entry := range roster {
		ids = append(ids, entry.VolunteerID)
	}
	users, err := s.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return joinRoster(roster, users), nil
}

// joinRoster pairs roster entries with profiles keyed by user ID. Entries
// without a profile keep their roster fields only.
func joinRoster(roster []models.Volunteer, users map[string]models.User) []types.VolunteerResponse {
	result := make([]types.VolunteerResponse, 0, len(roster))
	for _, entry := range roster {
		resp := types.VolunteerResponse{
			ID:          entry.ID,
			ProjectID:   entry.ProjectID,
			VolunteerID: entry.VolunteerID,
			Skills:      []string{},
			Status:      types.VolunteerStatusOrActive(entry.Status),
			JoinedAt:    entry.JoinedAt,
		}
		if user, ok := users[entry.VolunteerID]; ok {
			name, email := user.Name, user.Email
			resp.Name = &name
			resp.Email = &email
			resp.Skills = nonNil(user.Skills)
		}
		result = append(result, resp)
	}

	return result
}
