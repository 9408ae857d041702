package middleware

import (
	"net/http"

	"dealstack/internal/handler/httperr"
	"dealstack/internal/pkg/errs"
	"dealstack/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// IPRateLimit is the coarse per-IP guard used on the subscribe path. The
// finer per-offer limiter lives inside the click command.
func IPRateLimit(pool *ratelimit.IPLimiterPool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !pool.Allow(c.ClientIP()) {
			httperr.AbortWithError(c, http.StatusTooManyRequests,
				errs.New("ip rate limit exceeded"), "Too many requests", nil)
			return
		}
		c.Next()
	}
}
