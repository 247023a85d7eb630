package leave

import (
	"github.com/SopitaJW/leave-management/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	request := r.Group("/request")
	request.Use(middleware.Identity())
	request.Use(middleware.RateLimitByEmployee(rate.Limit(5), 10))
	if rdb != nil {
		request.Use(middleware.Idempotency(rdb))
	}
	{
		request.POST("", h.Create)
	}

	history := r.Group("/history")
	history.Use(middleware.Identity())
	{
		history.GET("/:employeeId", h.GetHistory)
	}

	manager := r.Group("/manager")
	manager.Use(middleware.Identity())
	{
		manager.GET("/requests", h.GetManagerRequests)
		manager.PUT("/requests/:id", h.Decide)
		manager.GET("/dashboard-stats/:managerId", h.GetDashboardStats)
		manager.GET("/team-history/:managerId", h.GetTeamHistory)
	}
}
