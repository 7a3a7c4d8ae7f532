package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub-dev/volunteerhub/internal/services"
	"github.com/volunteerhub-dev/volunteerhub/internal/utils"
)

func (h *Handler) ApplyToProject(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)

	if !ok {
		return
	}

	projectID, ok := h.projectID(ctx)

	if !ok {
		return
	}

	var body services.ApplyInput

	if !h.bindJSON(ctx, &body) {
		return
	}

	app, err := h.applications.Submit(ctx.Request.Context(), user, projectID, body)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toApplicationResponse(app))
}

func (h *Handler) ListApplications(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)

	if !ok {
		return
	}

	projectID, ok := h.projectID(ctx)

	if !ok {
		return
	}

	skip, limit := utils.GetPagination(ctx)

	apps, err := h.applications.ListForProject(ctx.Request.Context(), user, projectID, skip, limit)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toApplicationResponses(apps))
}

// UpdateApplicationStatus backs every status route. The project segment is
// optional in the path.
func (h *Handler) UpdateApplicationStatus(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)

	if !ok {
		return
	}

	projectID, applicationID, err := utils.GetProjectApplicationID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body services.StatusInput

	if !h.bindJSON(ctx, &body) {
		return
	}

	app, err := h.applications.UpdateStatus(ctx.Request.Context(), user, projectID, applicationID, body.Status)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toApplicationResponse(app))
}

func (h *Handler) MyApplications(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)

	if !ok {
		return
	}

	apps, err := h.applications.ListMine(ctx.Request.Context(), user)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toApplicationResponses(apps))
}

func (h *Handler) ListVolunteers(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)

	if !ok {
		return
	}

	projectID, ok := h.projectID(ctx)

	if !ok {
		return
	}

	roster, err := h.applications.ListVolunteers(ctx.Request.Context(), user, projectID)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, roster)
}
