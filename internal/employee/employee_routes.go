package employee

import (
	"github.com/SopitaJW/leave-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.Identity())
	{
		employees.POST("", h.Create)
		employees.GET("/:id", h.GetById)
		employees.GET("/:id/team", h.GetTeam)
	}
}
