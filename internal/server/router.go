package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRouter wires the HTTP boundary: request-id + logging middleware and the
// profile routes.
func NewRouter(h *ProfileHandler, pool *pgxpool.Pool, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))

	r.GET("/healthz", healthHandler(pool))

	v1 := r.Group("/v1")
	{
		v1.POST("/profiles/:user_id/resume", h.UploadResume)
		v1.GET("/profiles/:user_id", h.GetProfile)
		v1.GET("/profiles/:user_id/export", h.ExportProfile)
	}
	return r
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set("request_id", reqID)
		c.Header("X-Request-ID", reqID)

		start := time.Now()
		c.Next()

		logger.Info("http.request",
			"req_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}

func healthHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(503, gin.H{"status": "down", "error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	}
}
