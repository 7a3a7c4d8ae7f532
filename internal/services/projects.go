package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/volunteerhub-dev/volunteerhub/internal/apperr"
	"github.com/volunteerhub-dev/volunteerhub/internal/log"
	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"github.com/volunteerhub-dev/volunteerhub/internal/store"
	"github.com/volunteerhub-dev/volunteerhub/internal/types"
	"gorm.io/datatypes"
)

type EventInput struct {
	Name           string  `json:"name" binding:"required,max=255"`
	Description    *string `json:"description"`
	Date           string  `json:"date" binding:"required,isodate"`
	Time           string  `json:"time" binding:"required,max=16"`
	SlotsAvailable int     `json:"slots_available" binding:"min=0"`
}

type ProjectInput struct {
	Title               string       `json:"title" binding:"required,max=255"`
	ShortDescription    string       `json:"short_description" binding:"required,max=512"`
	DetailedDescription string       `json:"detailed_description" binding:"required"`
	Category            string       `json:"category" binding:"required,max=128"`
	ProjectType         string       `json:"project_type" binding:"required,projecttype"`
	Location            *string      `json:"location" binding:"omitempty,max=255"`
	ImageURL            *string      `json:"image_url" binding:"omitempty,max=512"`
	SkillsNeeded        []string     `json:"skills_needed"`
	StartDate           string       `json:"start_date" binding:"required,isodate"`
	EndDate             string       `json:"end_date" binding:"required,isodate"`
	Events              []EventInput `json:"events" binding:"dive"`
}

// ProjectUpdate is a partial update; nil fields are left unchanged.
type ProjectUpdate struct {
	Title               *string   `json:"title" binding:"omitempty,max=255"`
	ShortDescription    *string   `json:"short_description" binding:"omitempty,max=512"`
	DetailedDescription *string   `json:"detailed_description"`
	Category            *string   `json:"category" binding:"omitempty,max=128"`
	ProjectType         *string   `json:"project_type" binding:"omitempty,projecttype"`
	Location            *string   `json:"location" binding:"omitempty,max=255"`
	ImageURL            *string   `json:"image_url" binding:"omitempty,max=512"`
	SkillsNeeded        *[]string `json:"skills_needed"`
	StartDate           *string   `json:"start_date" binding:"omitempty,isodate"`
	EndDate             *string   `json:"end_date" binding:"omitempty,isodate"`
}

type ProjectQuery struct {
	Mine        bool
	Category    string
	ProjectType string
	Skip        int
	Limit       int
}

type ProjectService struct {
	store  *store.Store
	logger zerolog.Logger
}

func NewProjectService(s *store.Store) *ProjectService {
	return &ProjectService{store: s, logger: log.WithComponent("catalog")}
}

// ParseDate reads a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(field, value string) (time.Time, error) {
	d, err := time.Parse(types.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperr.BadRequest("%s must be a date in YYYY-MM-DD format", field)
	}
	return d.UTC(), nil
}

func checkDateRange(start, end time.Time) error {
	if end.Before(start) {
		return apperr.BadRequest("end_date must be on or after start_date")
	}
	return nil
}

func imageURLOrDefault(url *string) string {
	if url == nil || strings.TrimSpace(*url) == "" {
		return types.DefaultProjectImageURL
	}
	return *url
}

func buildEvent(in EventInput) (models.Event, error) {
	date, err := ParseDate("date", in.Date)
	if err != nil {
		return models.Event{}, err
	}
	if in.SlotsAvailable < 0 {
		return models.Event{}, apperr.BadRequest("slots_available must not be negative")
	}
	return models.Event{
		Name:           in.Name,
		Description:    in.Description,
		Date:           date,
		Time:           in.Time,
		SlotsAvailable: in.SlotsAvailable,
	}, nil
}

func (s *ProjectService) Create(ctx context.Context, caller *models.User, in ProjectInput) (*models.Project, error) {
	projectType, err := types.ParseProjectType(in.ProjectType)
	if err != nil {
		return nil, apperr.BadRequest("project_type must be one of Online, Onsite, Hybrid")
	}

	start, err := ParseDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate("end_date", in.EndDate)
	if err != nil {
		return nil, err
	}
	if err := checkDateRange(start, end); err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(in.Events))
	for _, ev := range in.Events {
		event, err := buildEvent(ev)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	project := &models.Project{
		OwnerID:             caller.ID,
		Title:               in.Title,
		ShortDescription:    in.ShortDescription,
		DetailedDescription: in.DetailedDescription,
		Category:            in.Category,
		ProjectType:         string(projectType),
		Location:            in.Location,
		ImageURL:            imageURLOrDefault(in.ImageURL),
		SkillsNeeded:        datatypes.JSONSlice[string](nonNil(in.SkillsNeeded)),
		StartDate:           start,
		EndDate:             end,
		Events:              events,
	}

	err = s.store.Transaction(ctx, func(tx *store.Store) error {
		return tx.CreateProject(ctx, project)
	})
	if err != nil {
		return nil, err
	}

	project.Owner = *caller
	s.logger.Info().Str("project_id", project.ID).Str("owner_id", caller.ID).Int("events", len(events)).Msg("project created")
	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, projectID string) (*models.Project, error) {
	return s.store.GetProjectDetail(ctx, projectID)
}

func (s *ProjectService) List(ctx context.Context, caller *models.User, q ProjectQuery) ([]models.Project, error) {
	skip, limit := ClampPage(q.Skip, q.Limit)
	filter := store.ProjectFilter{
		Category: q.Category,
		Skip:     skip,
		Limit:    limit,
	}
	if q.Mine {
		filter.OwnerID = caller.ID
	}
	if q.ProjectType != "" {
		projectType, err := types.ParseProjectType(q.ProjectType)
		if err != nil {
			return nil, apperr.BadRequest("type must be one of Online, Onsite, Hybrid")
		}
		filter.ProjectType = string(projectType)
	}
	return s.store.ListProjects(ctx, filter)
}

// Update applies a partial update. The date range is checked on the merged values.
func (s *ProjectService) Update(ctx context.Context, caller *models.User, projectID string, upd ProjectUpdate) (*models.Project, error) {
	var updated *models.Project

	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		project, err := ownedProject(ctx, tx, caller.ID, projectID)
		if err != nil {
			return err
		}

		updates := make(map[string]any)
		start, end := project.StartDate, project.EndDate

		if upd.Title != nil {
			updates["title"] = *upd.Title
		}
		if upd.ShortDescription != nil {
			updates["short_description"] = *upd.ShortDescription
		}
		if upd.DetailedDescription != nil {
			updates["detailed_description"] = *upd.DetailedDescription
		}
		if upd.Category != nil {
			updates["category"] = *upd.Category
		}
		if upd.ProjectType != nil {
			projectType, err := types.ParseProjectType(*upd.ProjectType)
			if err != nil {
				return apperr.BadRequest("project_type must be one of Online, Onsite, Hybrid")
			}
			updates["project_type"] = string(projectType)
		}
		if upd.Location != nil {
			updates["location"] = *upd.Location
		}
		if upd.ImageURL != nil {
			updates["image_url"] = imageURLOrDefault(upd.ImageURL)
		}
		if upd.SkillsNeeded != nil {
			updates["skills_needed"] = datatypes.JSONSlice[string](nonNil(*upd.SkillsNeeded))
		}
		if upd.StartDate != nil {
			if start, err = ParseDate("start_date", *upd.StartDate); err != nil {
				return err
			}
			updates["start_date"] = start
		}
		if upd.EndDate != nil {
			if end, err = ParseDate("end_date", *upd.EndDate); err != nil {
				return err
			}
			updates["end_date"] = end
		}
		if err := checkDateRange(start, end); err != nil {
			return err
		}

		if len(updates) == 0 {
			return apperr.BadRequest("No valid fields to update")
		}

		if err := tx.UpdateProject(ctx, project, updates); err != nil {
			return err
		}

		updated, err = tx.GetProjectDetail(ctx, projectID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *ProjectService) AddEvent(ctx context.Context, caller *models.User, projectID string, in EventInput) (*models.Event, error) {
	event, err := buildEvent(in)
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx *store.Store) error {
		if _, err := ownedProject(ctx, tx, caller.ID, projectID); err != nil {
			return err
		}
		event.ProjectID = projectID
		return tx.CreateEvent(ctx, &event)
	})
	if err != nil {
		return nil, err
	}

	return &event, nil
}

func (s *ProjectService) ListEvents(ctx context.Context, projectID string) ([]models.Event, error) {
	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.store.ListEvents(ctx, projectID)
}

// Owned returns the project when caller owns it.
func (s *ProjectService) Owned(ctx context.Context, caller *models.User, projectID string) (*models.Project, error) {
	return ownedProject(ctx, s.store, caller.ID, projectID)
}
