package store

import (
	"context"
	"errors"

	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"gorm.io/gorm"
)

// FindVolunteer returns the roster entry for (projectID, volunteerID), or nil
// when there is none.
func (s *Store) FindVolunteer(ctx context.Context, projectID, volunteerID string) (*models.Volunteer, error) {
	var v models.Volunteer
	err := s.conn(ctx).Where("project_id = ? AND volunteer_id = ?", projectID, volunteerID).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, "Volunteer")
	}
	return &v, nil
}

func (s *Store) CreateVolunteer(ctx context.Context, v *models.Volunteer) error {
	return translate(s.conn(ctx).Create(v).Error, "Volunteer")
}

func (s *Store) ListVolunteers(ctx context.Context, projectID string) ([]models.Volunteer, error) {
	var roster []models.Volunteer
	if err := s.conn(ctx).Where("project_id = ?", projectID).Order("joined_at ASC").Find(&roster).Error; err != nil {
		return nil, translate(err, "Volunteer")
	}
	return roster, nil
}

func (s *Store) ListVolunteersByProjects(ctx context.Context, projectIDs []string) ([]models.Volunteer, error) {
	var roster []models.Volunteer
	if len(projectIDs) == 0 {
		return roster, nil
	}
	if err := s.conn(ctx).Where("project_id IN ?", projectIDs).Find(&roster).Error; err != nil {
		return nil, translate(err, "Volunteer")
	}
	return roster, nil
}
