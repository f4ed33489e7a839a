package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/technova/inventory-service/internal/metrics"
	"github.com/technova/inventory-service/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(handler *handlers.ItemsHandler, m *metrics.Metrics, logger *zap.Logger, maxBodyBytes int64) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(securityHeaders())
	r.Use(bodyLimit(maxBodyBytes))
	r.Use(zapLoggerMiddleware(logger))
	r.Use(metricsMiddleware(m))

	r.GET("/", handler.Index)
	r.GET("/health", handler.Health)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.GET("/items", handler.ListItems)
	r.POST("/items", handler.AddItem)
	r.GET("/items/:id", handler.GetItem)
	r.PUT("/items/:id", handler.UpdateItem)
	r.DELETE("/items/:id", handler.DeleteItem)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

func metricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// securityHeaders applies the response header policy: a restrictive CSP,
// clickjacking and sniffing protection, and HSTS for TLS-terminating proxies.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Content-Security-Policy", "default-src 'self'; frame-ancestors 'none'")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		h.Del("Server")
		c.Next()
	}
}

// bodyLimit caps request body size so an oversized payload fails during JSON
// decoding instead of being buffered whole.
func bodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
