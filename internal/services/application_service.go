package services

import (
	"time"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	// Apply appends an application record with the current timestamp.
	// Succeeds unconditionally for any authenticated user: the referenced
	// job is not checked at write time, and duplicate applications by the
	// same user to the same job are allowed.
	Apply(db *gorm.DB, userID, jobID string) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
}

func NewApplicationService(applicationRepo repositories.ApplicationRepository) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
	}
}

func (s *ApplicationServiceImpl) Apply(db *gorm.DB, userID, jobID string) error {
	application := &models.Application{
		UserID:    userID,
		JobID:     jobID,
		AppliedAt: time.Now().UTC(),
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}
