package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"school_backend/internal/platform/http/response"
	"school_backend/internal/shared/ratelimiter"
)

// Throttle はクライアント IP ごとにリクエスト数を制限します。
// 上限を超えた場合は 429 を返し、後続のハンドラは実行しません。
func Throttle(limiter ratelimiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !limiter.Allow(ip) {
			slog.Warn("request throttled",
				"path", c.FullPath(),
				"remote_addr", ip,
				"request_id", c.GetString(response.ContextRequestID))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorResponse{Error: "too many requests"})
			return
		}
		c.Next()
	}
}
