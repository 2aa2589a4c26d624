package repositories

import (
	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error

	// FindByUserID returns the user's applications, newest first. Job
	// existence is not guaranteed; applications may reference removed jobs.
	FindByUserID(db *gorm.DB, userID string) ([]models.Application, error)

	CountByJobID(db *gorm.DB, jobID string) (int64, error)
	Count(db *gorm.DB) (int64, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	return db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByUserID(db *gorm.DB, userID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Where("user_id = ?", userID).Order("applied_at DESC").Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) CountByJobID(db *gorm.DB, jobID string) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).Count(&count).Error
	return count, err
}
