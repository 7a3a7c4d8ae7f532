package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/volunteerhub-dev/volunteerhub/internal/apperr"
	"github.com/volunteerhub-dev/volunteerhub/internal/log"
	"github.com/volunteerhub-dev/volunteerhub/internal/metrics"
	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"github.com/volunteerhub-dev/volunteerhub/internal/store"
	"github.com/volunteerhub-dev/volunteerhub/internal/types"
	"gorm.io/datatypes"
)

type ApplyInput struct {
	Skills  []string `json:"skills"`
	Message *string  `json:"message"`
}

type StatusInput struct {
	Status string `json:"status" binding:"required"`
}

// ApplicationService runs the application workflow: volunteers apply, owners
// review, and acceptance enrolls the volunteer in the project roster.
type ApplicationService struct {
	store     *store.Store
	publisher Publisher
	now       Clock
	logger    zerolog.Logger
}

func NewApplicationService(s *store.Store, publisher Publisher) *ApplicationService {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &ApplicationService{
		store:     s,
		publisher: publisher,
		now:       utcNow,
		logger:    log.WithComponent("workflow"),
	}
}

// Submit records caller's application to projectID with a snapshot of the
// caller's contact details.
func (s *ApplicationService) Submit(ctx context.Context, caller *models.User, projectID string, in ApplyInput) (*models.Application, error) {
	app := &models.Application{
		ProjectID:      projectID,
		VolunteerID:    &caller.ID,
		VolunteerName:  caller.DisplayName(),
		VolunteerEmail: caller.Email,
		VolunteerPhone: caller.PhoneNumber,
		Skills:         datatypes.JSONSlice[string](nonNil(in.Skills)),
		Message:        in.Message,
		Status:         string(types.ApplicationPending),
		AppliedAt:      s.now(),
	}

	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		if _, err := tx.GetProject(ctx, projectID); err != nil {
			return err
		}

		exists, err := tx.ApplicationExists(ctx, projectID, caller.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflict("You have already applied to this project")
		}

		return tx.CreateApplication(ctx, app)
	})
	if err != nil {
		return nil, err
	}

	metrics.ApplicationsSubmitted.Inc()
	s.logger.Info().
		Str("application_id", app.ID).
		Str("project_id", projectID).
		Str("volunteer_id", caller.ID).
		Msg("application submitted")
	s.publisher.ProjectChanged(projectID)

	return app, nil
}

// ListForProject returns a page of the project's applications, newest first.
// Only the owner may list them.
func (s *ApplicationService) ListForProject(ctx context.Context, caller *models.User, projectID string, skip, limit int) ([]models.Application, error) {
	if _, err := ownedProject(ctx, s.store, caller.ID, projectID); err != nil {
		return nil, err
	}

	skip, limit = ClampPage(skip, limit)
	return s.store.ListApplications(ctx, projectID, skip, limit)
}

// ListMine returns the caller's own applications, newest first.
func (s *ApplicationService) ListMine(ctx context.Context, caller *models.User) ([]models.Application, error) {
	return s.store.ListApplicationsByVolunteer(ctx, caller.ID)
}

// UpdateStatus moves an application to the status named by label. projectID
// is optional; when set, the application must belong to that project.
//
// Any status may follow any other. Accepting an application with a volunteer
// reference adds that volunteer to the roster once; later transitions away from
// Accepted leave the roster entry in place.
func (s *ApplicationService) UpdateStatus(ctx context.Context, caller *models.User, projectID, applicationID, label string) (*models.Application, error) {
	var (
		app      *models.Application
		status   types.ApplicationStatus
		enlisted bool
	)

	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		if projectID != "" {
			if _, err := tx.GetProject(ctx, projectID); err != nil {
				return err
			}
		}

		var err error
		app, err = tx.GetApplication(ctx, applicationID)
		if err != nil {
			return err
		}
		if projectID != "" && app.ProjectID != projectID {
			return apperr.NotFound("Application not found")
		}

		if _, err := ownedProject(ctx, tx, caller.ID, app.ProjectID); err != nil {
			return err
		}

		status, err = types.ParseApplicationStatus(label)
		if err != nil {
			return apperr.BadRequest("status must be one of Pending, Accepted, Rejected")
		}

		if err := tx.SetApplicationStatus(ctx, app, string(status)); err != nil {
			return err
		}
		app.Status = string(status)

		if status == types.ApplicationAccepted && app.VolunteerID != nil {
			enlisted, err = s.enlist(ctx, tx, app.ProjectID, *app.VolunteerID)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ApplicationTransitions.WithLabelValues(string(status)).Inc()
	if enlisted {
		metrics.RosterEntriesCreated.Inc()
	}
	s.logger.Info().
		Str("application_id", app.ID).
		Str("project_id", app.ProjectID).
		Str("status", string(status)).
		Bool("roster_entry_created", enlisted).
		Msg("application status changed")
	s.publisher.ProjectChanged(app.ProjectID)

	return app, nil
}

// enlist creates the roster entry for (projectID, volunteerID) unless one
// exists. It reports whether an entry was created.
func (s *ApplicationService) enlist(ctx context.Context, tx *store.Store, projectID, volunteerID string) (bool, error) {
	existing, err := tx.FindVolunteer(ctx, projectID, volunteerID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	joined := s.now()
	entry := &models.Volunteer{
		ProjectID:   projectID,
		VolunteerID: volunteerID,
		Status:      string(types.VolunteerActive),
		JoinedAt:    &joined,
	}
	if err := tx.CreateVolunteer(ctx, entry); err != nil {
		return false, err
	}
	return true, nil
}
