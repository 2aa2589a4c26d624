package services

import (
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	// ListUsers returns one page of registered users, newest first. Admin
	// surface only.
	ListUsers(db *gorm.DB, page, pageSize int) ([]dto.UserResponse, int64, error)

	// Stats returns the headline counters for the admin dashboard.
	Stats(db *gorm.DB) (*dto.AdminStatsResponse, error)
}

type UserServiceImpl struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB, page, pageSize int) ([]dto.UserResponse, int64, error) {
	total, err := s.userRepo.CountAll(db)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}

	users, err := s.userRepo.FindAll(db, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *buildUserResponse(&users[i]))
	}

	return responses, total, nil
}

func (s *UserServiceImpl) Stats(db *gorm.DB) (*dto.AdminStatsResponse, error) {
	users, err := s.userRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	jobs, err := s.jobRepo.Count(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	applications, err := s.applicationRepo.Count(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.AdminStatsResponse{
		Users:        users,
		Jobs:         jobs,
		Applications: applications,
	}, nil
}
