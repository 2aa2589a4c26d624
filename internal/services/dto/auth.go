package dto

import "jobportal_backend/internal/models"

type RegisterRequest struct {
	Username        string `json:"username" binding:"required" validate:"required,min=3,max=64"`
	Password        string `json:"password" binding:"required" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required" validate:"required,eqfield=Password"`
	Email           string `json:"email" validate:"omitempty,email"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" validate:"required"`
}

type UserResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	Email    string          `json:"email,omitempty"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}
