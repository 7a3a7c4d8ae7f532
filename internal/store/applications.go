package store

import (
	"context"

	"github.com/volunteerhub-dev/volunteerhub/internal/models"
)

// ApplicationExists reports whether volunteerID already applied to projectID.
func (s *Store) ApplicationExists(ctx context.Context, projectID, volunteerID string) (bool, error) {
	var count int64
	err := s.conn(ctx).Model(&models.Application{}).
		Where("project_id = ? AND volunteer_id = ?", projectID, volunteerID).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "Application")
	}
	return count > 0, nil
}

func (s *Store) CreateApplication(ctx context.Context, app *models.Application) error {
	return translate(s.conn(ctx).Create(app).Error, "Application")
}

func (s *Store) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	if err := s.conn(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		return nil, translate(err, "Application")
	}
	return &app, nil
}

// ListApplications returns a page of a project's applications, newest first.
func (s *Store) ListApplications(ctx context.Context, projectID string, skip, limit int) ([]models.Application, error) {
	var apps []models.Application
	err := s.conn(ctx).
		Where("project_id = ?", projectID).
		Order("applied_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&apps).Error
	if err != nil {
		return nil, translate(err, "Application")
	}
	return apps, nil
}

func (s *Store) ListApplicationsByVolunteer(ctx context.Context, volunteerID string) ([]models.Application, error) {
	var apps []models.Application
	err := s.conn(ctx).Where("volunteer_id = ?", volunteerID).Order("applied_at DESC").Find(&apps).Error
	if err != nil {
		return nil, translate(err, "Application")
	}
	return apps, nil
}

func (s *Store) ListApplicationsByProjects(ctx context.Context, projectIDs []string) ([]models.Application, error) {
	var apps []models.Application
	if len(projectIDs) == 0 {
		return apps, nil
	}
	if err := s.conn(ctx).Where("project_id IN ?", projectIDs).Find(&apps).Error; err != nil {
		return nil, translate(err, "Application")
	}
	return apps, nil
}

func (s *Store) SetApplicationStatus(ctx context.Context, app *models.Application, status string) error {
	if err := s.conn(ctx).Model(app).Update("status", status).Error; err != nil {
		return translate(err, "Application")
	}
	return nil
}
