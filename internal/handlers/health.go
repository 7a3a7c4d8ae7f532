package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) HealthCheck(c *gin.Context) {
	status, code, message := "ok", http.StatusOK, "VolunteerHub is running"

	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Error().Err(err).Msg("health check: database unreachable")
		status, code, message = "degraded", http.StatusServiceUnavailable, "Database unreachable"
	}

	c.JSON(code, gin.H{
		"status":    status,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
