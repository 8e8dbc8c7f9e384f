package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// PingFunc checks a dependency and returns an error when it is unavailable
type PingFunc func(ctx context.Context) error

// Health handles GET /health. The reply is 503 when the database does not answer.
func Health(ping PingFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthCheckTimeout)
		defer cancel()

		if ping == nil || ping(pingCtx) != nil {
			ctx.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "unavailable"})
			return
		}
		ctx.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
	}
}
