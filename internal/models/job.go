package models

// Job is a posted listing. Created and deleted by admins, immutable
// otherwise.
type Job struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Company     string `gorm:"not null" json:"company"`
	Location    string `gorm:"not null" json:"location"`
	Description string `gorm:"type:text" json:"description"`
	ApplyLink   string `json:"apply_link,omitempty"`
}
