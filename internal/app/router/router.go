// Package router mounts every route of the API on a gin engine.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"school_backend/internal/app/di"
	"school_backend/internal/platform/http/handler"
	"school_backend/internal/platform/http/middleware"
	"school_backend/internal/platform/metrics"
	"school_backend/internal/shared/ratelimiter"
)

// Options carries the cross-cutting pieces the router needs besides the handlers.
type Options struct {
	// DB is pinged by /healthz.
	DB handler.Pinger
	// Metrics serves /metrics. A nil value disables request metrics.
	Metrics *metrics.HTTP
	// LoginLimiter throttles the two login endpoints per client IP.
	LoginLimiter ratelimiter.Limiter
	// Invalidator is notified after successful record writes.
	Invalidator middleware.Invalidator
	// CORSAllowOrigins lists allowed origins. Empty or "*" allows every origin.
	CORSAllowOrigins []string
}

// NewRouter builds the gin engine.
func NewRouter(h di.Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	r.Use(cors.New(corsConfig(opts.CORSAllowOrigins)))
	r.Use(middleware.RequestID())
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	// 導通確認用
	r.Match([]string{http.MethodGet, http.MethodHead, http.MethodOptions}, "/healthz", handler.Health(opts.DB))

	// ログイン（トークンは発行しない）
	login := r.Group("/")
	if opts.LoginLimiter != nil {
		login.Use(middleware.Throttle(opts.LoginLimiter))
	}
	{
		login.POST("/student-login", h.Auth.StudentLogin)
		login.POST("/teacher-login", h.Auth.TeacherLogin)
	}

	r.GET("/summary", h.Summary.Get)

	// レコード操作
	records := r.Group("/")
	if opts.Invalidator != nil {
		records.Use(middleware.InvalidateOnWrite(opts.Invalidator))
	}
	{
		records.POST("/users", h.Users.Create)
		records.GET("/users", h.Users.List)
		records.GET("/users/:id", h.Users.Get)
		records.PUT("/users/:id", h.Users.Update)
		records.DELETE("/users/:id", h.Users.Deactivate)

		records.POST("/classes", h.Classes.Create)
		records.GET("/classes", h.Classes.List)
		records.GET("/classes/:id", h.Classes.Get)
		records.PUT("/classes/:id", h.Classes.Update)
		records.DELETE("/classes/:id", h.Classes.Deactivate)

		records.POST("/subjects", h.Subjects.Create)
		records.GET("/subjects", h.Subjects.List)
		records.GET("/subjects/:id", h.Subjects.Get)
		records.PUT("/subjects/:id", h.Subjects.Update)
		records.DELETE("/subjects/:id", h.Subjects.Deactivate)

		records.POST("/teachers", h.Teachers.Create)
		records.GET("/teachers", h.Teachers.List)
		records.GET("/teachers/:id", h.Teachers.Get)
		records.PUT("/teachers/:id", h.Teachers.Update)
		records.DELETE("/teachers/:id", h.Teachers.Deactivate)

		records.POST("/students", h.Students.Create)
		records.GET("/students", h.Students.List)
		records.GET("/students/:id", h.Students.Get)
		records.PUT("/students/:id", h.Students.Update)
		records.DELETE("/students/:id", h.Students.Deactivate)

		records.POST("/results", h.Results.Create)
		records.GET("/results", h.Results.List)
		records.GET("/results/student/:code", h.Results.Report)
		records.GET("/results/:id", h.Results.Get)
		records.PUT("/results/:id", h.Results.Update)
		records.DELETE("/results/:id", h.Results.Deactivate)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
