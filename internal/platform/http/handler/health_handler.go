// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// pingTimeout はDBへの疎通確認の上限時間です。
const pingTimeout = 2 * time.Second

// Pinger はデータベース接続の疎通確認を抽象化します。*sql.DB が満たします。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// DBに到達できない場合は503を返し、キャッシュを防止します。
func Health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()
		status, body := http.StatusOK, gin.H{"status": "ok", "database": "ok"}
		if err := db.PingContext(ctx); err != nil {
			slog.Error("health check failed", "error", err)
			status, body = http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "unreachable"}
		}

		if c.Request.Method == http.MethodHead {
			c.Status(status)
			return
		}
		c.JSON(status, body)
	}
}
