package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobportal_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user directly, hashing the raw password placed in
// PasswordHash.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	require.NoError(t, err, "failed to hash test password")
	user.PasswordHash = string(hashed)

	if user.Role == "" {
		user.Role = models.UserRoleUser
	}

	require.NoError(t, db.Create(user).Error, "failed to create test user")
}

// CreateAndLoginUser registers a user through the database and signs in
// through the API, returning the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, username, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: password,
		Role:         role,
		Email:        username + "@test.example.com",
	}
	CreateUser(t, ts.DB, user)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+body)

	var loginResponse struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.AccessToken)

	return loginResponse.AccessToken, user
}

// CreateTestJob inserts a job listing directly.
func CreateTestJob(t *testing.T, db *gorm.DB, title, company, location string) *models.Job {
	t.Helper()

	job := &models.Job{
		Title:       title,
		Company:     company,
		Location:    location,
		Description: "Test description for " + title,
	}
	require.NoError(t, db.Create(job).Error, "failed to create test job")
	return job
}
