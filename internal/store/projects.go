package store

import (
	"context"

	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"gorm.io/gorm"
)

type ProjectFilter struct {
	OwnerID     string
	Category    string
	ProjectType string
	Skip        int
	Limit       int
}

// CreateProject inserts the project together with its Events.
func (s *Store) CreateProject(ctx context.Context, project *models.Project) error {
	return translate(s.conn(ctx).Create(project).Error, "Project")
}

func (s *Store) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := s.conn(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, translate(err, "Project")
	}
	return &project, nil
}

// GetProjectDetail loads the project with its events, ordered by date, and owner.
func (s *Store) GetProjectDetail(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := s.conn(ctx).
		Preload("Events", orderEvents).
		Preload("Owner").
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, translate(err, "Project")
	}
	return &project, nil
}

func (s *Store) ListProjects(ctx context.Context, filter ProjectFilter) ([]models.Project, error) {
	q := s.conn(ctx).Preload("Events", orderEvents).Preload("Owner")

	if filter.OwnerID != "" {
		q = q.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.ProjectType != "" {
		q = q.Where("project_type = ?", filter.ProjectType)
	}

	var projects []models.Project
	err := q.Order("created_at DESC").Offset(filter.Skip).Limit(filter.Limit).Find(&projects).Error
	if err != nil {
		return nil, translate(err, "Project")
	}
	return projects, nil
}

// ListProjectsByOwner returns every project owned by ownerID without associations.
func (s *Store) ListProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	var projects []models.Project
	if err := s.conn(ctx).Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&projects).Error; err != nil {
		return nil, translate(err, "Project")
	}
	return projects, nil
}

func (s *Store) UpdateProject(ctx context.Context, project *models.Project, updates map[string]any) error {
	if err := s.conn(ctx).Model(project).Updates(updates).Error; err != nil {
		return translate(err, "Project")
	}
	return nil
}

func (s *Store) CreateEvent(ctx context.Context, event *models.Event) error {
	return translate(s.conn(ctx).Create(event).Error, "Event")
}

func (s *Store) ListEvents(ctx context.Context, projectID string) ([]models.Event, error) {
	var events []models.Event
	if err := orderEvents(s.conn(ctx)).Where("project_id = ?", projectID).Find(&events).Error; err != nil {
		return nil, translate(err, "Event")
	}
	return events, nil
}

func (s *Store) ListEventsByProjects(ctx context.Context, projectIDs []string) ([]models.Event, error) {
	var events []models.Event
	if len(projectIDs) == 0 {
		return events, nil
	}
	if err := orderEvents(s.conn(ctx)).Where("project_id IN ?", projectIDs).Find(&events).Error; err != nil {
		return nil, translate(err, "Event")
	}
	return events, nil
}

func orderEvents(db *gorm.DB) *gorm.DB {
	return db.Order("date ASC").Order("created_at ASC")
}
