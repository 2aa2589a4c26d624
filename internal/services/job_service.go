package services

import (
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// JobsPerPage is the fixed page size of the listing query.
const JobsPerPage = 10

type JobService interface {
	SearchJobs(db *gorm.DB, criteria dto.SearchJobsRequest) (*dto.JobListResponse, error)
	GetJob(db *gorm.DB, jobID string) (*dto.JobResponse, error)
	CreateJob(db *gorm.DB, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	DeleteJob(db *gorm.DB, jobID string) error
}

type JobServiceImpl struct {
	jobRepo             repositories.JobRepository
	notificationService NotificationService
}

func NewJobService(jobRepo repositories.JobRepository, notificationService NotificationService) JobService {
	return &JobServiceImpl{
		jobRepo:             jobRepo,
		notificationService: notificationService,
	}
}

// SearchJobs runs the listing query: optional contains-filters on title,
// location and company, sorted by creation time descending, ten per page.
// A page number below 1 is normalized to 1; a page beyond the last returns
// an empty list with the real total so clients can step back.
func (s *JobServiceImpl) SearchJobs(db *gorm.DB, criteria dto.SearchJobsRequest) (*dto.JobListResponse, error) {
	page := criteria.Page
	if page < 1 {
		page = 1
	}

	jobs, total, err := s.jobRepo.FindWithFilter(db, repositories.JobFilter{
		Title:    criteria.Title,
		Location: criteria.Location,
		Company:  criteria.Company,
		Page:     page,
		PageSize: JobsPerPage,
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, *buildJobResponse(&jobs[i]))
	}

	return &dto.JobListResponse{
		Jobs:  items,
		Total: total,
		Page:  page,
		Pages: (total + JobsPerPage - 1) / JobsPerPage,
	}, nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return buildJobResponse(job), nil
}

// CreateJob inserts the listing with a server-side timestamp and, on
// success, triggers the notification fan-out. Notification delivery never
// affects the outcome of the posting.
func (s *JobServiceImpl) CreateJob(db *gorm.DB, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	job := &models.Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		ApplyLink:   req.ApplyLink,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.notificationService.NotifyNewJob(db, job)

	return buildJobResponse(job), nil
}

// DeleteJob removes the listing by id. Removing an id that does not exist
// is a no-op, not an error.
func (s *JobServiceImpl) DeleteJob(db *gorm.DB, jobID string) error {
	if err := s.jobRepo.Delete(db, jobID); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func buildJobResponse(job *models.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Description: job.Description,
		ApplyLink:   job.ApplyLink,
		CreatedAt:   job.CreatedAt,
	}
}
