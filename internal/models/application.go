package models

import "time"

// Application records a user's intent to apply to a job. Append-only; there
// is no uniqueness constraint, so the same user may apply to the same job
// more than once.
type Application struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	JobID     string    `gorm:"not null;index" json:"job_id"`
	AppliedAt time.Time `gorm:"not null" json:"applied_at"`
}
