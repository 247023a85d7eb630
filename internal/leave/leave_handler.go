package leave

import (
	"encoding/json"
	"net/http"
	"time"

	leaveerrors "github.com/SopitaJW/leave-management/internal/leave/errors"
	"github.com/SopitaJW/leave-management/internal/middleware"
	"github.com/SopitaJW/leave-management/internal/shared/apperror"
	"github.com/SopitaJW/leave-management/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyResponseTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// parseFilter reads the shared listing query params. Unknown status values
// are rejected rather than silently matching nothing.
func parseFilter(c *gin.Context, defaultStatus string) (Filter, error) {
	status, err := ParseStatusFilter(c.DefaultQuery("status", defaultStatus))
	if err != nil {
		return Filter{}, err
	}
	return Filter{
		Search:   c.Query("search"),
		Status:   status,
		TypeName: c.Query("type"),
	}, nil
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.finalizeIdempotency(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

// finalizeIdempotency stores the successful response under the middleware's
// cache key and releases its in-flight lock, so retries replay instead of
// resubmitting.
func (h *Handler) finalizeIdempotency(c *gin.Context, resp any) {
	cacheKey := c.GetString(middleware.IdempotencyCacheKeyField)
	if h.rdb == nil || cacheKey == "" {
		return
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		h.logger.Warn("idempotency response marshal failed", zap.Error(err))
		return
	}
	if err := h.rdb.Set(c.Request.Context(), cacheKey, raw, idempotencyResponseTTL).Err(); err != nil {
		h.logger.Warn("idempotency response store failed", zap.Error(err))
	}
	if lockKey := c.GetString(middleware.IdempotencyLockKeyField); lockKey != "" {
		_ = h.rdb.Del(c.Request.Context(), lockKey).Err()
	}
}

func (h *Handler) GetHistory(c *gin.Context) {
	f, err := parseFilter(c, "all")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetHistory(c.Request.Context(), c.Param("employeeId"), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetManagerRequests(c *gin.Context) {
	f, err := parseFilter(c, "pending")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	managerID := c.GetString("employee_id")
	resp, err := h.service.GetManagerRequests(c.Request.Context(), managerID, f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetTeamHistory(c *gin.Context) {
	f, err := parseFilter(c, "all")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetTeamHistory(c.Request.Context(), c.Param("managerId"), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Decide(c *gin.Context) {
	var req DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http decide leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	id := c.Param("id")
	if id == "" {
		h.writeServiceError(c, leaveerrors.ErrInvalidRequestID)
		return
	}

	resp, err := h.service.Decide(c.Request.Context(), c.GetString("employee_id"), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDashboardStats(c *gin.Context) {
	resp, err := h.service.GetDashboardStats(c.Request.Context(), c.Param("managerId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
