package services

import (
	"fmt"
	"testing"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedJobs(repo *fakeJobRepo, n int) {
	for i := 0; i < n; i++ {
		repo.add(models.Job{
			Title:    fmt.Sprintf("Engineer %d", i),
			Company:  "Acme",
			Location: "Berlin",
		})
	}
}

func TestJobService_SearchJobs_Pagination(t *testing.T) {
	repo := newFakeJobRepo()
	seedJobs(repo, 25)
	svc := NewJobService(repo, &fakeNotifier{})

	page1, err := svc.SearchJobs(nil, dto.SearchJobsRequest{Page: 1})
	require.NoError(t, err)
	assert.Len(t, page1.Jobs, 10)
	assert.Equal(t, int64(25), page1.Total)
	assert.Equal(t, int64(3), page1.Pages)

	page3, err := svc.SearchJobs(nil, dto.SearchJobsRequest{Page: 3})
	require.NoError(t, err)
	assert.Len(t, page3.Jobs, 5)

	// Newest first across page boundaries: the last job added is first.
	assert.Equal(t, "Engineer 24", page1.Jobs[0].Title)
	assert.Equal(t, "Engineer 0", page3.Jobs[4].Title)
}

func TestJobService_SearchJobs_PageNormalization(t *testing.T) {
	repo := newFakeJobRepo()
	seedJobs(repo, 5)
	svc := NewJobService(repo, &fakeNotifier{})

	resp, err := svc.SearchJobs(nil, dto.SearchJobsRequest{Page: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Len(t, resp.Jobs, 5)

	resp, err = svc.SearchJobs(nil, dto.SearchJobsRequest{Page: -3})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
}

func TestJobService_SearchJobs_OutOfRangePage(t *testing.T) {
	repo := newFakeJobRepo()
	seedJobs(repo, 5)
	svc := NewJobService(repo, &fakeNotifier{})

	resp, err := svc.SearchJobs(nil, dto.SearchJobsRequest{Page: 99})
	require.NoError(t, err)
	assert.Empty(t, resp.Jobs)
	assert.Equal(t, int64(5), resp.Total, "total reflects all matches so clients can step back")
	assert.Equal(t, 99, resp.Page)
}

func TestJobService_SearchJobs_Filters(t *testing.T) {
	repo := newFakeJobRepo()
	repo.add(models.Job{Title: "Backend Engineer", Company: "Acme", Location: "Berlin"})
	repo.add(models.Job{Title: "Frontend Engineer", Company: "Acme", Location: "Remote"})
	repo.add(models.Job{Title: "Data Scientist", Company: "Initech", Location: "Berlin"})
	svc := NewJobService(repo, &fakeNotifier{})

	// Case-insensitive substring match.
	resp, err := svc.SearchJobs(nil, dto.SearchJobsRequest{Title: "engineer", Page: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Jobs, 2)

	// Filters compose with AND.
	resp, err = svc.SearchJobs(nil, dto.SearchJobsRequest{Title: "engineer", Location: "berlin", Page: 1})
	require.NoError(t, err)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "Backend Engineer", resp.Jobs[0].Title)

	resp, err = svc.SearchJobs(nil, dto.SearchJobsRequest{Company: "initech", Page: 1})
	require.NoError(t, err)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "Data Scientist", resp.Jobs[0].Title)
}

func TestJobService_GetJob(t *testing.T) {
	repo := newFakeJobRepo()
	job := repo.add(models.Job{Title: "Backend Engineer", Company: "Acme", Location: "Berlin"})
	svc := NewJobService(repo, &fakeNotifier{})

	resp, err := svc.GetJob(nil, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.Title, resp.Title)

	_, err = svc.GetJob(nil, "missing-id")
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestJobService_CreateJob_TriggersNotification(t *testing.T) {
	repo := newFakeJobRepo()
	notifier := &fakeNotifier{}
	svc := NewJobService(repo, notifier)

	resp, err := svc.CreateJob(nil, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Berlin",
		Description: "Build things",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, []string{resp.ID}, notifier.notified)
}

func TestJobService_DeleteJob_Idempotent(t *testing.T) {
	repo := newFakeJobRepo()
	job := repo.add(models.Job{Title: "Backend Engineer", Company: "Acme"})
	svc := NewJobService(repo, &fakeNotifier{})

	require.NoError(t, svc.DeleteJob(nil, job.ID))
	_, err := svc.GetJob(nil, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)

	// Deleting again is still a success.
	assert.NoError(t, svc.DeleteJob(nil, job.ID))
}
