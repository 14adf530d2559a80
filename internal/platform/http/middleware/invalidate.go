package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Invalidator drops a cached view.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// InvalidateOnWrite calls inv after every successful POST, PUT or DELETE so
// cached counts follow record changes.
func InvalidateOnWrite(inv Invalidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodDelete:
		default:
			return
		}
		if status := c.Writer.Status(); status < 200 || status >= 300 {
			return
		}
		inv.Invalidate(c.Request.Context())
	}
}
