package services

import (
	"jobportal_backend/internal/config"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"

	"gorm.io/gorm"
)

// Enqueuer hands a message to the outbound mail queue without blocking.
// Implemented by workers.EmailWorker.
type Enqueuer interface {
	Enqueue(task email.Email) bool
}

type NotificationService interface {
	// NotifyNewJob fans out one email task per user with a known email
	// address. Fire-and-forget: enqueue failures are logged and dropped,
	// and the caller never learns about them.
	NotifyNewJob(db *gorm.DB, job *models.Job)
}

type NotificationServiceImpl struct {
	userRepo repositories.UserRepository
	queue    Enqueuer
	cfg      *config.Config
}

func NewNotificationService(userRepo repositories.UserRepository, queue Enqueuer, cfg *config.Config) NotificationService {
	return &NotificationServiceImpl{
		userRepo: userRepo,
		queue:    queue,
		cfg:      cfg,
	}
}

func (s *NotificationServiceImpl) NotifyNewJob(db *gorm.DB, job *models.Job) {
	recipients, err := s.userRepo.FindAllWithEmail(db)
	if err != nil {
		logger.Error("Failed to load notification recipients", "error", err, "job_id", job.ID)
		return
	}

	subject := email.NewJobSubject(job.Title, job.Company)
	body, err := email.RenderNewJob(email.NewJobData{
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Description: job.Description,
		ApplyLink:   job.ApplyLink,
		SiteName:    s.cfg.Site.Name,
		SiteURL:     s.cfg.Site.URL,
	})
	if err != nil {
		logger.Error("Failed to render job notification", "error", err, "job_id", job.ID)
		return
	}

	enqueued := 0
	for _, user := range recipients {
		ok := s.queue.Enqueue(email.Email{
			To:      user.Email,
			Subject: subject,
			Body:    body,
		})
		if ok {
			enqueued++
		}
	}

	logger.Info("Job notification fan-out",
		"job_id", job.ID,
		"recipients", len(recipients),
		"enqueued", enqueued,
	)
}
