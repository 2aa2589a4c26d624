package handlers

import (
	"net/http"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, applicationService services.ApplicationService) *JobHandler {
	return &JobHandler{
		BaseHandler:        base,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Browsing is open to anonymous visitors; only applying needs a session.
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.Search)
		jobs.GET("/:jobId", h.Get)
		jobs.POST("/:jobId/applications", middleware.AuthMiddleware(), h.Apply)
	}

	admin := rg.Group("/jobs")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", h.Create)
		admin.DELETE("/:jobId", h.Delete)
	}
}

// Search handles GET /jobs with optional title, location, company and page
// query parameters.
func (h *JobHandler) Search(c *gin.Context) {
	var req dto.SearchJobsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.jobService.SearchJobs(h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get handles GET /jobs/:jobId.
func (h *JobHandler) Get(c *gin.Context) {
	resp, err := h.jobService.GetJob(h.GetDB(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Apply handles POST /jobs/:jobId/applications for the current user.
func (h *JobHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	jobID := c.Param("jobId")
	if err := h.applicationService.Apply(h.GetDB(c), userID, jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Application submitted", "job_id", jobID)
	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted"})
}

// Create handles POST /jobs (admin only).
func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobService.CreateJob(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Job posted", "job_id", resp.ID, "title", resp.Title)
	c.JSON(http.StatusCreated, resp)
}

// Delete handles DELETE /jobs/:jobId (admin only). Deleting an id that does
// not exist still returns 200.
func (h *JobHandler) Delete(c *gin.Context) {
	jobID := c.Param("jobId")
	if err := h.jobService.DeleteJob(h.GetDB(c), jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Job removed", "job_id", jobID)
	c.JSON(http.StatusOK, gin.H{"message": "Job removed"})
}
