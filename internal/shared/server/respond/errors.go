package respond

import (
	"github.com/gin-gonic/gin"

	"resume-matcher/internal/shared/telemetry"
)

// ErrorResponse is the standardized error body. The "detail" field name is
// part of the public API contract and must not change.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Error sends a standardized error response and logs it.
func Error(c *gin.Context, status int, detail string) {
	fields := map[string]any{
		"status":     status,
		"detail":     detail,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}
