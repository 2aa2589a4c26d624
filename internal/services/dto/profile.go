package dto

import "time"

type UpdateEmailRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

// ApplicationView is one entry of the profile's application history: the
// application joined with its job, when the job still exists.
type ApplicationView struct {
	JobID     string    `json:"job_id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	AppliedAt time.Time `json:"applied_at"`
}

type ProfileResponse struct {
	ID           string            `json:"id"`
	Username     string            `json:"username"`
	Email        string            `json:"email,omitempty"`
	ResumeURL    string            `json:"resume_url,omitempty"`
	Applications []ApplicationView `json:"applications"`
}
