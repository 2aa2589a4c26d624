package repositories

import (
	"errors"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter holds the listing query criteria. Text filters are
// case-insensitive substring matches, AND-composed. Page is 1-based.
type JobFilter struct {
	Title    string
	Location string
	Company  string
	Page     int
	PageSize int
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.Job, error)

	// FindWithFilter returns one page of matching jobs, newest first, plus
	// the total match count. An out-of-range page yields an empty slice.
	FindWithFilter(db *gorm.DB, criteria JobFilter) ([]models.Job, int64, error)

	// Delete removes a job by id. Deleting a nonexistent id is a no-op.
	Delete(db *gorm.DB, id string) error

	Count(db *gorm.DB) (int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) ([]models.Job, error) {
	var jobs []models.Job
	if len(ids) == 0 {
		return jobs, nil
	}
	err := db.Where("id IN ?", ids).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindWithFilter(db *gorm.DB, criteria JobFilter) ([]models.Job, int64, error) {
	var jobs []models.Job
	query := db.Model(&models.Job{})

	if criteria.Title != "" {
		query = query.Where("title ILIKE ?", "%"+criteria.Title+"%")
	}
	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.Company != "" {
		query = query.Where("company ILIKE ?", "%"+criteria.Company+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&models.Job{}).Error
}

func (r *JobRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Job{}).Count(&count).Error
	return count, err
}
