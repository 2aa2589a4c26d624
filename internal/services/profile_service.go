package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"jobportal_backend/internal/config"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/storage"
	"jobportal_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	UpdateEmail(db *gorm.DB, userID, newEmail string) error
	UploadResume(ctx context.Context, db *gorm.DB, userID, filename, contentType string, size int64, reader io.Reader) error
	GetResume(ctx context.Context, db *gorm.DB, userID string) (io.ReadCloser, string, error)
}

type ProfileServiceImpl struct {
	userRepo        repositories.UserRepository
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	storage         storage.Storage
	cfg             *config.Config
}

func NewProfileService(
	userRepo repositories.UserRepository,
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	storageInstance storage.Storage,
	cfg *config.Config,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:        userRepo,
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		storage:         storageInstance,
		cfg:             cfg,
	}
}

// GetProfile returns the user's identity plus their application history
// joined with the jobs that still exist. Applications whose job has been
// removed are skipped rather than failing the whole view.
func (s *ProfileServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	applications, err := s.applicationRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	jobIDs := make([]string, 0, len(applications))
	for _, application := range applications {
		jobIDs = append(jobIDs, application.JobID)
	}
	jobs, err := s.jobRepo.FindByIDs(db, jobIDs)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	jobsByID := make(map[string]int, len(jobs))
	for i := range jobs {
		jobsByID[jobs[i].ID] = i
	}

	views := make([]dto.ApplicationView, 0, len(applications))
	for _, application := range applications {
		idx, ok := jobsByID[application.JobID]
		if !ok {
			continue
		}
		views = append(views, dto.ApplicationView{
			JobID:     application.JobID,
			Title:     jobs[idx].Title,
			Company:   jobs[idx].Company,
			AppliedAt: application.AppliedAt,
		})
	}

	response := &dto.ProfileResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		Applications: views,
	}

	if user.ResumeKey != "" {
		if url, err := s.storage.GetURL(context.Background(), user.ResumeKey); err == nil {
			response.ResumeURL = url
		}
	}

	return response, nil
}

func (s *ProfileServiceImpl) UpdateEmail(db *gorm.DB, userID, newEmail string) error {
	if err := s.userRepo.UpdateEmail(db, userID, newEmail); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

// UploadResume validates size and content type, stores the file and records
// its key on the user. A re-upload replaces the previous file.
func (s *ProfileServiceImpl) UploadResume(ctx context.Context, db *gorm.DB, userID, filename, contentType string, size int64, reader io.Reader) error {
	if size > s.cfg.Upload.MaxSize {
		return apperrors.ErrFileTooLarge
	}
	if !s.isAllowedType(contentType) {
		return apperrors.ErrInvalidFileType
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}

	ext := filepath.Ext(filename)
	key := fmt.Sprintf("resumes/%s/%s%s", userID, uuid.NewString(), ext)

	if err := s.storage.Save(ctx, key, reader, contentType); err != nil {
		return apperrors.Wrap(err, apperrors.CodeExternalServiceError, "storage", "Failed to store resume", 500)
	}

	if err := s.userRepo.UpdateResumeKey(db, userID, key); err != nil {
		return apperrors.DatabaseError(err)
	}

	if user.ResumeKey != "" && user.ResumeKey != key {
		_ = s.storage.Delete(ctx, user.ResumeKey)
	}

	return nil
}

// GetResume streams the stored resume. The returned name is the base name
// of the stored key, for the Content-Disposition header.
func (s *ProfileServiceImpl) GetResume(ctx context.Context, db *gorm.DB, userID string) (io.ReadCloser, string, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", apperrors.ErrNotFound(err)
		}
		return nil, "", apperrors.DatabaseError(err)
	}

	if user.ResumeKey == "" {
		return nil, "", apperrors.ErrResumeNotFound
	}

	reader, err := s.storage.Get(ctx, user.ResumeKey)
	if err != nil {
		return nil, "", apperrors.ErrResumeNotFound
	}

	return reader, filepath.Base(user.ResumeKey), nil
}

func (s *ProfileServiceImpl) isAllowedType(contentType string) bool {
	for _, allowed := range s.cfg.Upload.AllowedTypes {
		if strings.EqualFold(contentType, allowed) {
			return true
		}
	}
	return false
}
