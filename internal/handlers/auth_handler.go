package handlers

import (
	"net/http"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	userRepo    repositories.UserRepository
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, userRepo repositories.UserRepository) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		userRepo:    userRepo,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
		auth.POST("/logout-all", middleware.AuthMiddleware(), h.LogoutAll)
		auth.GET("/me", middleware.AuthMiddleware(), h.Me)
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.Register(h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "User registered", "username", req.Username)
	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully"})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "User logged in", "user_id", resp.User.ID)
	c.JSON(http.StatusOK, resp)
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.RefreshToken(h.GetDB(c), req.RefreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.Logout(h.GetDB(c), req.RefreshToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// LogoutAll handles POST /auth/logout-all and revokes every refresh token
// of the current user.
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	if err := h.authService.LogoutAll(h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "All sessions revoked")
	c.JSON(http.StatusOK, gin.H{"message": "Logged out everywhere"})
}

// Me handles GET /auth/me and returns the current session's account.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	user, err := h.userRepo.FindByID(h.GetDB(c), userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			h.HandleServiceError(c, apperrors.ErrNotFound(err))
			return
		}
		h.HandleServiceError(c, apperrors.DatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Email:    user.Email,
	})
}
