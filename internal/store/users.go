package store

import (
	"context"
	"time"

	"github.com/volunteerhub-dev/volunteerhub/internal/models"
)

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.conn(ctx).Create(user).Error, "User")
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.conn(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err, "User")
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.conn(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err, "User")
	}
	return &user, nil
}

// GetUsersByIDs returns the users that exist among ids, keyed by id.
func (s *Store) GetUsersByIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	users := make(map[string]models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	var rows []models.User
	if err := s.conn(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, translate(err, "User")
	}
	for _, u := range rows {
		users[u.ID] = u
	}
	return users, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.conn(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, translate(err, "User")
	}
	return users, nil
}

// EmailTaken reports whether another user than excludeID owns email.
func (s *Store) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	return s.userExists(ctx, "email = ?", email, excludeID)
}

// PhoneTaken reports whether another user than excludeID owns phone.
func (s *Store) PhoneTaken(ctx context.Context, phone, excludeID string) (bool, error) {
	return s.userExists(ctx, "phonenumber = ?", phone, excludeID)
}

func (s *Store) userExists(ctx context.Context, cond, value, excludeID string) (bool, error) {
	var count int64
	q := s.conn(ctx).Model(&models.User{}).Where(cond, value)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, translate(err, "User")
	}
	return count > 0, nil
}

func (s *Store) UpdateUser(ctx context.Context, user *models.User, updates map[string]any) error {
	if err := s.conn(ctx).Model(user).Updates(updates).Error; err != nil {
		return translate(err, "User")
	}
	return nil
}

func (s *Store) TouchLastLogin(ctx context.Context, user *models.User, at time.Time) error {
	if err := s.conn(ctx).Model(user).UpdateColumn("last_login_at", at).Error; err != nil {
		return translate(err, "User")
	}
	user.LastLoginAt = &at
	return nil
}
