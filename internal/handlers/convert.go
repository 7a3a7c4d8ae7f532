package handlers

import (
	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"github.com/volunteerhub-dev/volunteerhub/internal/types"
)

func stringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func toUserResponse(u *models.User) types.UserResponse {
	return types.UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		PhoneNumber:     u.PhoneNumber,
		City:            u.City,
		Country:         u.Country,
		Skills:          stringsOrEmpty(u.Skills),
		Interests:       stringsOrEmpty(u.Interests),
		Story:           u.Story,
		ProfileImageURL: u.ProfileImageURL,
		LastLoginAt:     u.LastLoginAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func toUserResponses(users []models.User) []types.UserResponse {
	response := make([]types.UserResponse, 0, len(users))
	for i := range users {
		response = append(response, toUserResponse(&users[i]))
	}
	return response
}

func toEventResponse(e *models.Event) types.EventResponse {
	return types.EventResponse{
		ID:             e.ID,
		ProjectID:      e.ProjectID,
		Name:           e.Name,
		Description:    e.Description,
		Date:           e.Date.Format(types.DateLayout),
		Time:           e.Time,
		SlotsAvailable: e.SlotsAvailable,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toEventResponses(events []models.Event) []types.EventResponse {
	response := make([]types.EventResponse, 0, len(events))
	for i := range events {
		response = append(response, toEventResponse(&events[i]))
	}
	return response
}

func toProjectResponse(p *models.Project) types.ProjectResponse {
	response := types.ProjectResponse{
		ID:                  p.ID,
		OwnerID:             p.OwnerID,
		Title:               p.Title,
		ShortDescription:    p.ShortDescription,
		DetailedDescription: p.DetailedDescription,
		Category:            p.Category,
		ProjectType:         types.ProjectType(p.ProjectType),
		Location:            p.Location,
		ImageURL:            p.ImageURL,
		SkillsNeeded:        stringsOrEmpty(p.SkillsNeeded),
		StartDate:           p.StartDate.Format(types.DateLayout),
		EndDate:             p.EndDate.Format(types.DateLayout),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
		Events:              toEventResponses(p.Events),
	}

	if p.Owner.ID != "" {
		response.Owner = &types.ProjectOwnerSummary{
			ID:          p.Owner.ID,
			Name:        p.Owner.Name,
			Email:       p.Owner.Email,
			PhoneNumber: p.Owner.PhoneNumber,
		}
	}

	return response
}

func toProjectResponses(projects []models.Project) []types.ProjectResponse {
	response := make([]types.ProjectResponse, 0, len(projects))
	for i := range projects {
		response = append(response, toProjectResponse(&projects[i]))
	}
	return response
}

func toApplicationResponse(a *models.Application) types.ApplicationResponse {
	status, err := types.ParseApplicationStatus(a.Status)
	if err != nil {
		status = types.ApplicationStatus(a.Status)
	}

	return types.ApplicationResponse{
		ID:             a.ID,
		ProjectID:      a.ProjectID,
		VolunteerID:    a.VolunteerID,
		VolunteerName:  a.VolunteerName,
		VolunteerEmail: a.VolunteerEmail,
		VolunteerPhone: a.VolunteerPhone,
		Skills:         stringsOrEmpty(a.Skills),
		Message:        a.Message,
		Status:         status,
		AppliedAt:      a.AppliedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toApplicationResponses(apps []models.Application) []types.ApplicationResponse {
	response := make([]types.ApplicationResponse, 0, len(apps))
	for i := range apps {
		response = append(response, toApplicationResponse(&apps[i]))
	}
	return response
}
