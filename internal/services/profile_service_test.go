package services

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/storage"
	"jobportal_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture(t *testing.T) (*ProfileServiceImpl, *fakeUserRepo, *fakeApplicationRepo, *fakeJobRepo) {
	t.Helper()
	cfg := setTestConfig(t)

	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	userRepo := newFakeUserRepo()
	applicationRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()

	svc := NewProfileService(userRepo, applicationRepo, jobRepo, store, cfg).(*ProfileServiceImpl)
	return svc, userRepo, applicationRepo, jobRepo
}

func TestProfileService_GetProfile(t *testing.T) {
	svc, userRepo, applicationRepo, jobRepo := newProfileFixture(t)

	user := userRepo.add(&models.User{Username: "alice", Email: "alice@example.com"})
	kept := jobRepo.add(models.Job{Title: "Backend Engineer", Company: "Acme"})

	require.NoError(t, applicationRepo.Create(nil, &models.Application{
		UserID: user.ID, JobID: kept.ID, AppliedAt: time.Now(),
	}))
	// Application to a job that has since been removed.
	require.NoError(t, applicationRepo.Create(nil, &models.Application{
		UserID: user.ID, JobID: "removed-job", AppliedAt: time.Now().Add(-time.Hour),
	}))

	resp, err := svc.GetProfile(nil, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice@example.com", resp.Email)

	// Only the application whose job survives shows up.
	require.Len(t, resp.Applications, 1)
	assert.Equal(t, kept.ID, resp.Applications[0].JobID)
	assert.Equal(t, "Backend Engineer", resp.Applications[0].Title)
}

func TestProfileService_GetProfile_UnknownUser(t *testing.T) {
	svc, _, _, _ := newProfileFixture(t)

	_, err := svc.GetProfile(nil, "missing")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestProfileService_UpdateEmail(t *testing.T) {
	svc, userRepo, _, _ := newProfileFixture(t)
	user := userRepo.add(&models.User{Username: "alice"})

	require.NoError(t, svc.UpdateEmail(nil, user.ID, "new@example.com"))
	assert.Equal(t, "new@example.com", userRepo.users[user.ID].Email)
}

func TestProfileService_UploadResume(t *testing.T) {
	svc, userRepo, _, _ := newProfileFixture(t)
	user := userRepo.add(&models.User{Username: "alice"})

	content := "%PDF-1.4 fake resume"
	err := svc.UploadResume(context.Background(), nil, user.ID, "resume.pdf", "application/pdf", int64(len(content)), strings.NewReader(content))
	require.NoError(t, err)
	require.NotEmpty(t, user.ResumeKey)

	reader, filename, err := svc.GetResume(context.Background(), nil, user.ID)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
}

func TestProfileService_UploadResume_ReplacesPrevious(t *testing.T) {
	svc, userRepo, _, _ := newProfileFixture(t)
	user := userRepo.add(&models.User{Username: "alice"})

	require.NoError(t, svc.UploadResume(context.Background(), nil, user.ID, "v1.pdf", "application/pdf", 4, strings.NewReader("one!")))
	firstKey := user.ResumeKey

	require.NoError(t, svc.UploadResume(context.Background(), nil, user.ID, "v2.pdf", "application/pdf", 4, strings.NewReader("two!")))
	assert.NotEqual(t, firstKey, user.ResumeKey)

	reader, _, err := svc.GetResume(context.Background(), nil, user.ID)
	require.NoError(t, err)
	defer reader.Close()
	data, _ := io.ReadAll(reader)
	assert.Equal(t, "two!", string(data))
}

func TestProfileService_UploadResume_TooLarge(t *testing.T) {
	svc, userRepo, _, _ := newProfileFixture(t)
	user := userRepo.add(&models.User{Username: "alice"})

	err := svc.UploadResume(context.Background(), nil, user.ID, "big.pdf", "application/pdf", svc.cfg.Upload.MaxSize+1, strings.NewReader("x"))
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestProfileService_UploadResume_BadType(t *testing.T) {
	svc, userRepo, _, _ := newProfileFixture(t)
	user := userRepo.add(&models.User{Username: "alice"})

	err := svc.UploadResume(context.Background(), nil, user.ID, "script.sh", "application/x-sh", 10, strings.NewReader("echo hi"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
}

func TestProfileService_GetResume_NoneUploaded(t *testing.T) {
	svc, userRepo, _, _ := newProfileFixture(t)
	user := userRepo.add(&models.User{Username: "alice"})

	_, _, err := svc.GetResume(context.Background(), nil, user.ID)
	assert.ErrorIs(t, err, apperrors.ErrResumeNotFound)
}
