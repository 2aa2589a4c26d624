package services

import (
	"sort"
	"strings"
	"time"

	"jobportal_backend/internal/email"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. The db parameter is ignored; these exist so
// service logic can be exercised without Postgres.

type fakeUserRepo struct {
	users         map[string]*models.User
	refreshTokens map[string]*models.RefreshToken
	err           error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:         make(map[string]*models.User),
		refreshTokens: make(map[string]*models.RefreshToken),
	}
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(_ *gorm.DB, username string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) UpdateEmail(_ *gorm.DB, userID, emailAddr string) error {
	if r.err != nil {
		return r.err
	}
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Email = emailAddr
	return nil
}

func (r *fakeUserRepo) UpdateResumeKey(_ *gorm.DB, userID, resumeKey string) error {
	if r.err != nil {
		return r.err
	}
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.ResumeKey = resumeKey
	return nil
}

func (r *fakeUserRepo) FindAllWithEmail(_ *gorm.DB) ([]models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []models.User
	for _, user := range r.users {
		if user.Email != "" {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindAll(_ *gorm.DB, limit, offset int) ([]models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	all := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, *user)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeUserRepo) CountAll(_ *gorm.DB) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CreateRefreshToken(_ *gorm.DB, token *models.RefreshToken) error {
	if r.err != nil {
		return r.err
	}
	r.refreshTokens[token.Token] = token
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(_ *gorm.DB, token string) (*models.RefreshToken, error) {
	if r.err != nil {
		return nil, r.err
	}
	if rt, ok := r.refreshTokens[token]; ok {
		return rt, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) DeleteRefreshToken(_ *gorm.DB, token string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.refreshTokens, token)
	return nil
}

func (r *fakeUserRepo) DeleteUserRefreshTokens(_ *gorm.DB, userID string) error {
	for token, rt := range r.refreshTokens {
		if rt.UserID == userID {
			delete(r.refreshTokens, token)
		}
	}
	return nil
}

func (r *fakeUserRepo) CleanExpiredRefreshTokens(_ *gorm.DB) error {
	now := time.Now()
	for token, rt := range r.refreshTokens {
		if rt.ExpiresAt.Before(now) {
			delete(r.refreshTokens, token)
		}
	}
	return nil
}

type fakeJobRepo struct {
	jobs []models.Job
	err  error
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{}
}

func (r *fakeJobRepo) add(job models.Job) models.Job {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().Add(time.Duration(len(r.jobs)) * time.Millisecond)
	}
	r.jobs = append(r.jobs, job)
	return job
}

func (r *fakeJobRepo) Create(_ *gorm.DB, job *models.Job) error {
	if r.err != nil {
		return r.err
	}
	*job = r.add(*job)
	return nil
}

func (r *fakeJobRepo) FindByID(_ *gorm.DB, id string) (*models.Job, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			return &r.jobs[i], nil
		}
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindByIDs(_ *gorm.DB, ids []string) ([]models.Job, error) {
	if r.err != nil {
		return nil, r.err
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []models.Job
	for _, job := range r.jobs {
		if wanted[job.ID] {
			out = append(out, job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindWithFilter(_ *gorm.DB, criteria repositories.JobFilter) ([]models.Job, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}

	contains := func(haystack, needle string) bool {
		return needle == "" || strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}

	var matched []models.Job
	for _, job := range r.jobs {
		if contains(job.Title, criteria.Title) &&
			contains(job.Location, criteria.Location) &&
			contains(job.Company, criteria.Company) {
			matched = append(matched, job)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	offset := (criteria.Page - 1) * criteria.PageSize
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + criteria.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeJobRepo) Delete(_ *gorm.DB, id string) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeJobRepo) Count(_ *gorm.DB) (int64, error) {
	return int64(len(r.jobs)), nil
}

type fakeApplicationRepo struct {
	applications []models.Application
	err          error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{}
}

func (r *fakeApplicationRepo) Create(_ *gorm.DB, application *models.Application) error {
	if r.err != nil {
		return r.err
	}
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	r.applications = append(r.applications, *application)
	return nil
}

func (r *fakeApplicationRepo) FindByUserID(_ *gorm.DB, userID string) ([]models.Application, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []models.Application
	for _, application := range r.applications {
		if application.UserID == userID {
			out = append(out, application)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

func (r *fakeApplicationRepo) CountByJobID(_ *gorm.DB, jobID string) (int64, error) {
	var count int64
	for _, application := range r.applications {
		if application.JobID == jobID {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplicationRepo) Count(_ *gorm.DB) (int64, error) {
	return int64(len(r.applications)), nil
}

// fakeEnqueuer records enqueued messages; when full is set it refuses all
// of them, mimicking a saturated queue.
type fakeEnqueuer struct {
	enqueued []email.Email
	full     bool
}

func (q *fakeEnqueuer) Enqueue(task email.Email) bool {
	if q.full {
		return false
	}
	q.enqueued = append(q.enqueued, task)
	return true
}

// fakeNotifier counts NotifyNewJob calls.
type fakeNotifier struct {
	notified []string
}

func (n *fakeNotifier) NotifyNewJob(_ *gorm.DB, job *models.Job) {
	n.notified = append(n.notified, job.ID)
}
