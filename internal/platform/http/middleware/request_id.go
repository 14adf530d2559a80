// Package middleware holds the gin middlewares shared by every route.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"school_backend/internal/platform/http/response"
)

// HeaderRequestID is echoed back on every response.
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLen bounds client supplied IDs before they reach the logs.
const maxRequestIDLen = 128

// RequestID は X-Request-ID ヘッダを引き継ぐか新規に UUID を発行し、
// gin.Context とレスポンスヘッダに設定します。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(response.ContextRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
