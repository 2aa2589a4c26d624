package handlers

import (
	"fmt"
	"net/http"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", h.Get)
		profile.PUT("/email", h.UpdateEmail)
		profile.POST("/resume", h.UploadResume)
		profile.GET("/resume", h.DownloadResume)
	}
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetProfile(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateEmail handles PUT /profile/email.
func (h *ProfileHandler) UpdateEmail(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmailRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.profileService.UpdateEmail(h.GetDB(c), userID, req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Email updated")
	c.JSON(http.StatusOK, gin.H{"message": "Email updated"})
}

// UploadResume handles POST /profile/resume as multipart form data with a
// "resume" file field.
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Resume file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	err = h.profileService.UploadResume(
		c.Request.Context(),
		h.GetDB(c),
		userID,
		fileHeader.Filename,
		contentType,
		fileHeader.Size,
		file,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Resume uploaded", "filename", fileHeader.Filename, "size", fileHeader.Size)
	c.JSON(http.StatusOK, gin.H{"message": "Resume uploaded"})
}

// DownloadResume handles GET /profile/resume and streams the stored file.
func (h *ProfileHandler) DownloadResume(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	reader, filename, err := h.profileService.GetResume(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", reader, nil)
}
