package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"github.com/volunteerhub-dev/volunteerhub/internal/utils"
)

// analyticsHandler adapts one windowed rollup to a GET endpoint.
func analyticsHandler[T any](h *Handler, compute func(context.Context, *models.User, int) (T, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := h.currentUser(ctx)

		if !ok {
			return
		}

		result, err := compute(ctx.Request.Context(), user, utils.GetDays(ctx))

		if err != nil {
			h.respondError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

func (h *Handler) AnalyticsOverview() gin.HandlerFunc {
	return analyticsHandler(h, h.analytics.Overview)
}

func (h *Handler) ProjectsByCategory() gin.HandlerFunc {
	return analyticsHandler(h, h.analytics.ProjectsByCategory)
}

func (h *Handler) SkillsDistribution() gin.HandlerFunc {
	return analyticsHandler(h, h.analytics.SkillsDistribution)
}

func (h *Handler) MonthlyHours() gin.HandlerFunc {
	return analyticsHandler(h, h.analytics.MonthlyHours)
}

func (h *Handler) ApplicationStats() gin.HandlerFunc {
	return analyticsHandler(h, h.analytics.ApplicationStats)
}
