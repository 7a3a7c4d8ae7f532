package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"github.com/volunteerhub-dev/volunteerhub/internal/types"
)

func testContext(target string, params ...gin.Param) *gin.Context {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, target, nil)
	ctx.Params = params
	return ctx
}

func TestGetCurrentUser(t *testing.T) {
	ctx := testContext("/")
	_, err := GetCurrentUser(ctx)
	assert.Error(t, err)

	ctx.Set(types.ContextUserKey, "not a user")
	_, err = GetCurrentUser(ctx)
	assert.Error(t, err)

	user := &models.User{Name: "Robin"}
	user.ID = "user-1"
	ctx.Set(types.ContextUserKey, user)

	id, err := GetCurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestGetProjectApplicationID(t *testing.T) {
	ctx := testContext("/", gin.Param{Key: "project_id", Value: "p1"}, gin.Param{Key: "application_id", Value: "a1"})
	projectID, appID, err := GetProjectApplicationID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p1", projectID)
	assert.Equal(t, "a1", appID)

	ctx = testContext("/", gin.Param{Key: "application_id", Value: "a1"})
	projectID, appID, err = GetProjectApplicationID(ctx)
	require.NoError(t, err)
	assert.Empty(t, projectID)
	assert.Equal(t, "a1", appID)

	// Blank identifiers are left for the lookup to reject.
	ctx = testContext("/", gin.Param{Key: "project_id", Value: "  "}, gin.Param{Key: "application_id", Value: "a1"})
	projectID, appID, err = GetProjectApplicationID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "  ", projectID)
	assert.Equal(t, "a1", appID)

	ctx = testContext("/")
	_, _, err = GetProjectApplicationID(ctx)
	assert.Error(t, err)
}

func TestQueryDefaults(t *testing.T) {
	skip, limit := GetPagination(testContext("/"))
	assert.Equal(t, 0, skip)
	assert.Equal(t, types.DefaultPageLimit, limit)

	skip, limit = GetPagination(testContext("/?skip=20&limit=abc"))
	assert.Equal(t, 20, skip)
	assert.Equal(t, types.DefaultPageLimit, limit)

	assert.Equal(t, types.DefaultWindowDays, GetDays(testContext("/")))
	assert.Equal(t, types.DefaultWindowDays, GetDays(testContext("/?days=lots")))
	assert.Equal(t, 500, GetDays(testContext("/?days=500")))
}

type datedRequest struct {
	Type  string  `json:"project_type" binding:"required,projecttype"`
	Start string  `json:"start_date" binding:"required,isodate"`
	End   *string `json:"end_date" binding:"omitempty,isodate"`
}

func bindDated(t *testing.T, body string) error {
	t.Helper()
	ctx := testContext("/")
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")
	var req datedRequest
	return ctx.ShouldBindJSON(&req)
}

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())

	assert.NoError(t, bindDated(t, `{"project_type":"online","start_date":"2024-01-01"}`))
	assert.NoError(t, bindDated(t, `{"project_type":"Hybrid","start_date":"2024-01-01","end_date":"2024-02-01"}`))

	err := bindDated(t, `{"project_type":"Remote","start_date":"2024-01-01"}`)
	require.Error(t, err)
	assert.Equal(t, "project_type must be one of Online, Onsite, Hybrid", ValidationMessage(err))

	err = bindDated(t, `{"project_type":"Online","start_date":"01/02/2024"}`)
	require.Error(t, err)
	assert.Equal(t, "start_date must be a date in YYYY-MM-DD format", ValidationMessage(err))

	err = bindDated(t, `{"project_type":"Online"}`)
	require.Error(t, err)
	assert.Equal(t, "start_date is required", ValidationMessage(err))

	assert.NoError(t, bindDated(t, `{"project_type":"Online","start_date":"2024-01-01","end_date":null}`))
	assert.Error(t, bindDated(t, `{"project_type":"Online","start_date":"2024-01-01","end_date":"x"}`))
}
