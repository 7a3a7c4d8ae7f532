package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub-dev/volunteerhub/internal/services"
	"github.com/volunteerhub-dev/volunteerhub/internal/utils"
)

func (h *Handler) CreateProject(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)

	if !ok {
		return
	}

	var body services.ProjectInput

	if !h.bindJSON(ctx, &body) {
		return
	}

	project, err := h.projects.Create(ctx.Request.Context(), user, body)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toProjectResponse(project))
}

// ListProjects serves the public catalog. mine=true narrows it to the
// caller's own projects.
func (h *Handler) ListProjects(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)

	if !ok {
		return
	}

	skip, limit := utils.GetPagination(ctx)

	projects, err := h.projects.List(ctx.Request.Context(), user, services.ProjectQuery{
		Mine:        strings.EqualFold(ctx.Query("mine"), "true"),
		Category:    strings.TrimSpace(ctx.Query("category")),
		ProjectType: strings.TrimSpace(ctx.Query("type")),
		Skip:        skip,
		Limit:       limit,
	})

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toProjectResponses(projects))
}

func (h *Handler) GetProject(ctx *gin.Context) {
	projectID, ok := h.projectID(ctx)

	if !ok {
		return
	}

	project, err := h.projects.Get(ctx.Request.Context(), projectID)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *Handler) UpdateProject(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)

	if !ok {
		return
	}

	projectID, ok := h.projectID(ctx)

	if !ok {
		return
	}

	var body services.ProjectUpdate

	if !h.bindJSON(ctx, &body) {
		return
	}

	project, err := h.projects.Update(ctx.Request.Context(), user, projectID, body)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *Handler) CreateEvent(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)

	if !ok {
		return
	}

	projectID, ok := h.projectID(ctx)

	if !ok {
		return
	}

	var body services.EventInput

	if !h.bindJSON(ctx, &body) {
		return
	}

	event, err := h.projects.AddEvent(ctx.Request.Context(), user, projectID, body)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toEventResponse(event))
}

func (h *Handler) ListEvents(ctx *gin.Context) {
	projectID, ok := h.projectID(ctx)

	if !ok {
		return
	}

	events, err := h.projects.ListEvents(ctx.Request.Context(), projectID)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toEventResponses(events))
}
