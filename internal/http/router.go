package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"emotion-classifier/internal/metrics"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	sessionH *SessionHandler,
	classifyH *ClassifyHandler,
	analyticsH *AnalyticsHandler,
	healthH *HealthHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), requestMetricsMiddleware())

	r.GET("/healthz", healthH.Healthz)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("", jsonContentTypeMiddleware())
	api.GET("/form", analyticsH.Form)
	api.GET("/analytics", analyticsH.Analytics)
	api.GET("/insights", analyticsH.Insights)
	api.POST("/session", sessionH.CreateSession)

	classify := api.Group("/classify", SessionAuthMiddleware(sessionH.tokens))
	classify.POST("", classifyH.Classify)
	classify.GET("/last", classifyH.Last)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func requestMetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
