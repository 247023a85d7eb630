package middleware

import (
	"net/http"

	"github.com/SopitaJW/leave-management/internal/shared/contextutil"
	"github.com/SopitaJW/leave-management/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity resolves the acting employee from the X-Employee-ID header set by
// the front door. Real authentication lives outside this service; the header
// is trusted here the same way a gateway-verified JWT claim would be.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetHeader("X-Employee-ID")
		if employeeID == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Employee identity not found", nil)
			c.Abort()
			return
		}

		if _, err := uuid.Parse(employeeID); err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Employee identity is malformed", nil)
			c.Abort()
			return
		}

		c.Set("employee_id", employeeID)

		ctx := contextutil.WithEmployeeID(c.Request.Context(), employeeID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
