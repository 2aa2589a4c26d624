package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobportal_backend/internal/models"
	"jobportal_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminUserList(t *testing.T) {
	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "admin", "admin-secret", models.UserRoleAdmin)
	userToken, _ := helpers.CreateAndLoginUser(t, ts, "alice", "secret123", models.UserRoleUser)
	helpers.CreateAndLoginUser(t, ts, "bob", "secret123", models.UserRoleUser)

	// Only admins may list users.
	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/users", userToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var listing struct {
		Users []struct {
			Username string `json:"username"`
		} `json:"users"`
		Total int64 `json:"total"`
		Page  int   `json:"page"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Equal(t, int64(3), listing.Total)
	assert.Len(t, listing.Users, 3)

	// Password hashes never appear in the response.
	assert.NotContains(t, body, "password")
}

func TestAdminStats(t *testing.T) {
	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "admin", "admin-secret", models.UserRoleAdmin)
	userToken, _ := helpers.CreateAndLoginUser(t, ts, "alice", "secret123", models.UserRoleUser)

	job := helpers.CreateTestJob(t, ts.DB, "Backend Engineer", "Acme", "Berlin")
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/applications", userToken, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/stats", userToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stats struct {
		Users        int64 `json:"users"`
		Jobs         int64 `json:"jobs"`
		Applications int64 `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.Equal(t, int64(2), stats.Users)
	assert.Equal(t, int64(1), stats.Jobs)
	assert.Equal(t, int64(1), stats.Applications)
}
