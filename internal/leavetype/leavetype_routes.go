package leavetype

import (
	"github.com/SopitaJW/leave-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	types := r.Group("/leave-types")
	types.Use(middleware.Identity())
	{
		types.GET("", h.GetAll)
		types.GET("/:id", h.GetById)
		types.POST("", h.Create)
	}
}
