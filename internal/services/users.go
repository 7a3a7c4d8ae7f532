package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/volunteerhub-dev/volunteerhub/internal/apperr"
	"github.com/volunteerhub-dev/volunteerhub/internal/auth"
	"github.com/volunteerhub-dev/volunteerhub/internal/log"
	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"github.com/volunteerhub-dev/volunteerhub/internal/store"
	"gorm.io/datatypes"
)

type RegisterInput struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Email       string   `json:"email" binding:"required,email,max=255"`
	PhoneNumber string   `json:"phonenumber" binding:"required,max=32"`
	Password    string   `json:"password" binding:"required,min=8,max=200"`
	City        *string  `json:"city"`
	Country     *string  `json:"country"`
	Skills      []string `json:"skills"`
	Interests   []string `json:"interests"`
	Story       *string  `json:"story"`
}

// ProfileUpdate is a partial update; nil fields are left unchanged.
type ProfileUpdate struct {
	Name        *string   `json:"name" binding:"omitempty,max=255"`
	Email       *string   `json:"email" binding:"omitempty,email,max=255"`
	PhoneNumber *string   `json:"phonenumber" binding:"omitempty,max=32"`
	City        *string   `json:"city"`
	Country     *string   `json:"country"`
	Skills      *[]string `json:"skills"`
	Interests   *[]string `json:"interests"`
	Story       *string   `json:"story"`

	ProfileImageURL *string `json:"profile_image_url" binding:"omitempty,max=512"`
	CurrentPassword string  `json:"current_password"`
	NewPassword     string  `json:"new_password" binding:"omitempty,min=8,max=200"`
}

type UserService struct {
	store  *store.Store
	tokens *auth.TokenIssuer
	now    Clock
	logger zerolog.Logger
}

func NewUserService(s *store.Store, tokens *auth.TokenIssuer) *UserService {
	return &UserService{
		store:  s,
		tokens: tokens,
		now:    utcNow,
		logger: log.WithComponent("identity"),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := normalizeEmail(in.Email)
	phone := strings.TrimSpace(in.PhoneNumber)

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Internal(err, "failed to hash password")
	}

	user := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		City:         in.City,
		Country:      in.Country,
		Skills:       datatypes.JSONSlice[string](nonNil(in.Skills)),
		Interests:    datatypes.JSONSlice[string](nonNil(in.Interests)),
		Story:        in.Story,
	}
	if phone != "" {
		user.PhoneNumber = &phone
	}

	err = s.store.Transaction(ctx, func(tx *store.Store) error {
		if err := checkContactAvailable(ctx, tx, email, user.PhoneNumber, ""); err != nil {
			return err
		}
		return tx.CreateUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

func checkContactAvailable(ctx context.Context, tx *store.Store, email string, phone *string, excludeID string) error {
	if email != "" {
		taken, err := tx.EmailTaken(ctx, email, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Conflict("Email already registered")
		}
	}
	if phone != nil && *phone != "" {
		taken, err := tx.PhoneTaken(ctx, *phone, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Conflict("Phone number already registered")
		}
	}
	return nil
}

// Login checks credentials and issues an access token.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.store.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, "", apperr.Unauthorized("Incorrect email or password")
	}
	if err != nil {
		return nil, "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", apperr.Unauthorized("Incorrect email or password")
	}

	token, err := s.tokens.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", apperr.Internal(err, "failed to issue token")
	}

	if err := s.store.TouchLastLogin(ctx, user, s.now()); err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Authenticate resolves a bearer token to the current user record.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.VerifyJWT(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	user, err := s.store.GetUserByID(ctx, claims.Subject)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.Unauthorized("User not found")
	}
	return user, err
}

func (s *UserService) UpdateProfile(ctx context.Context, caller *models.User, upd ProfileUpdate) (*models.User, error) {
	updates := make(map[string]any)

	var email string
	if upd.Name != nil {
		updates["name"] = strings.TrimSpace(*upd.Name)
	}
	if upd.Email != nil {
		email = normalizeEmail(*upd.Email)
		if email == "" {
			return nil, apperr.BadRequest("Email cannot be empty")
		}
		updates["email"] = email
	}
	var phone *string
	if upd.PhoneNumber != nil {
		trimmed := strings.TrimSpace(*upd.PhoneNumber)
		phone = &trimmed
		if trimmed == "" {
			updates["phonenumber"] = nil
		} else {
			updates["phonenumber"] = trimmed
		}
	}
	if upd.City != nil {
		updates["city"] = *upd.City
	}
	if upd.Country != nil {
		updates["country"] = *upd.Country
	}
	if upd.Skills != nil {
		updates["skills"] = datatypes.JSONSlice[string](nonNil(*upd.Skills))
	}
	if upd.Interests != nil {
		updates["interests"] = datatypes.JSONSlice[string](nonNil(*upd.Interests))
	}
	if upd.Story != nil {
		updates["story"] = *upd.Story
	}
	if upd.ProfileImageURL != nil {
		updates["profile_image_url"] = *upd.ProfileImageURL
	}

	if upd.NewPassword != "" {
		if upd.CurrentPassword == "" {
			return nil, apperr.BadRequest("Current password is required to change password")
		}
		if !auth.CheckPassword(caller.PasswordHash, upd.CurrentPassword) {
			return nil, apperr.BadRequest("Current password is incorrect")
		}
		hash, err := auth.HashPassword(upd.NewPassword)
		if err != nil {
			return nil, apperr.Internal(err, "failed to hash password")
		}
		updates["password_hash"] = hash
	}

	if len(updates) == 0 {
		return nil, apperr.BadRequest("No valid fields to update")
	}

	var updated *models.User
	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		if err := checkContactAvailable(ctx, tx, email, phone, caller.ID); err != nil {
			return err
		}
		if err := tx.UpdateUser(ctx, &models.User{BaseModel: models.BaseModel{ID: caller.ID}}, updates); err != nil {
			return err
		}
		var err error
		updated, err = tx.GetUserByID(ctx, caller.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
