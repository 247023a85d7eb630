package department

import (
	"github.com/SopitaJW/leave-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	departments := r.Group("/departments")
	departments.Use(middleware.Identity())
	{
		departments.GET("", h.GetAll)
		departments.GET("/:id", h.GetById)
		departments.POST("", h.Create)
	}
}
