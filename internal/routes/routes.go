package routes

import (
	"net/http"

	"jobportal_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the whole API under /api/v1.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(v1)
		h.Job.RegisterRoutes(v1)
		h.Profile.RegisterRoutes(v1)
		h.Admin.RegisterRoutes(v1)
	}
}
