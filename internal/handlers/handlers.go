package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/volunteerhub-dev/volunteerhub/internal/apperr"
	"github.com/volunteerhub-dev/volunteerhub/internal/log"
	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"github.com/volunteerhub-dev/volunteerhub/internal/realtime"
	"github.com/volunteerhub-dev/volunteerhub/internal/services"
	"github.com/volunteerhub-dev/volunteerhub/internal/store"
	"github.com/volunteerhub-dev/volunteerhub/internal/utils"
)

// Handler serves the HTTP API on top of the domain services.
type Handler struct {
	store        *store.Store
	users        *services.UserService
	projects     *services.ProjectService
	applications *services.ApplicationService
	analytics    *services.AnalyticsService
	images       *services.ImageService
	hub          *realtime.Hub

	domain   string
	tokenTTL time.Duration
	logger   zerolog.Logger
}

type Deps struct {
	Store        *store.Store
	Users        *services.UserService
	Projects     *services.ProjectService
	Applications *services.ApplicationService
	Analytics    *services.AnalyticsService
	Images       *services.ImageService
	Hub          *realtime.Hub

	// Domain is the cookie domain of the session token.
	Domain   string
	TokenTTL time.Duration
}

func New(deps Deps) *Handler {
	return &Handler{
		store:        deps.Store,
		users:        deps.Users,
		projects:     deps.Projects,
		applications: deps.Applications,
		analytics:    deps.Analytics,
		images:       deps.Images,
		hub:          deps.Hub,
		domain:       deps.Domain,
		tokenTTL:     deps.TokenTTL,
		logger:       log.WithComponent("api"),
	}
}

// respondError renders a service failure. Internal failures are logged and
// reported without detail.
func (h *Handler) respondError(ctx *gin.Context, err error) {
	appErr := apperr.From(err)

	if appErr.Code == apperr.CodeInternal {
		h.logger.Error().
			Err(err).
			Str("method", ctx.Request.Method).
			Str("path", ctx.FullPath()).
			Msg("request failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(appErr.Status, gin.H{"error": appErr.Message})
}

// bindJSON decodes the request body into dst, answering 400 on failure.
func (h *Handler) bindJSON(ctx *gin.Context, dst any) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err)})
		return false
	}

	return true
}

func (h *Handler) currentUser(ctx *gin.Context) (*models.User, bool) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}

	return user, true
}

func (h *Handler) projectID(ctx *gin.Context) (string, bool) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}

	return projectID, true
}
