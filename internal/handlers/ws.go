package handlers

import (
	"github.com/gin-gonic/gin"
)

// WebSocket streams refresh notices for a project to its owner's dashboard.
func (h *Handler) WebSocket(c *gin.Context) {
	user, ok := h.currentUser(c)

	if !ok {
		return
	}

	projectID, ok := h.projectID(c)

	if !ok {
		return
	}

	if _, err := h.projects.Owned(c.Request.Context(), user, projectID); err != nil {
		h.respondError(c, err)
		return
	}

	h.hub.Serve(c.Writer, c.Request, projectID)
}
