package utils

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub-dev/volunteerhub/internal/types"
)

func pathID(ctx *gin.Context, param, label string) (string, error) {
	raw := ctx.Param(param)

	if raw == "" {
		return "", errors.New(label + " not found")
	}

	return raw, nil
}

func GetProjectID(ctx *gin.Context) (string, error) {
	return pathID(ctx, "project_id", "Project ID")
}

func GetApplicationID(ctx *gin.Context) (string, error) {
	return pathID(ctx, "application_id", "Application ID")
}

// GetProjectApplicationID reads both path identifiers. The project ID is
// empty on routes that address an application on its own.
func GetProjectApplicationID(ctx *gin.Context) (string, string, error) {
	var projectID string

	if ctx.Param("project_id") != "" {
		var err error

		projectID, err = GetProjectID(ctx)

		if err != nil {
			return "", "", err
		}
	}

	applicationID, err := GetApplicationID(ctx)

	if err != nil {
		return "", "", err
	}

	return projectID, applicationID, nil
}

func queryInt(ctx *gin.Context, key string, fallback int) int {
	raw := strings.TrimSpace(ctx.Query(key))

	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)

	if err != nil {
		return fallback
	}

	return n
}

// GetPagination reads skip and limit. Missing or malformed values fall back
// to the defaults; range clamping happens in the service layer.
func GetPagination(ctx *gin.Context) (int, int) {
	return queryInt(ctx, "skip", 0), queryInt(ctx, "limit", types.DefaultPageLimit)
}

// GetDays reads the analytics lookback window, defaulting to 30.
func GetDays(ctx *gin.Context) int {
	return queryInt(ctx, "days", types.DefaultWindowDays)
}
