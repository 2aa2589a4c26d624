package models

import "time"

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// AdminUsername is the reserved bootstrap account. Exactly one user with
// this username and the admin role exists after startup.
const AdminUsername = "admin"

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	// Email is optional. Users without one are skipped by the notification
	// dispatcher.
	Email string `gorm:"index" json:"email,omitempty"`

	// ResumeKey is the storage path of the uploaded resume, if any.
	ResumeKey string `json:"-"`

	Applications  []Application  `gorm:"foreignKey:UserID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
