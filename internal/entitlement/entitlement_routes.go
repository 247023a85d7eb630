package entitlement

import (
	"github.com/SopitaJW/leave-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	summary := r.Group("/summary")
	summary.Use(middleware.Identity())
	{
		summary.GET("/:employeeId", h.GetSummary)
	}

	entitlements := r.Group("/entitlements")
	entitlements.Use(middleware.Identity())
	{
		entitlements.POST("", h.Grant)
	}
}
