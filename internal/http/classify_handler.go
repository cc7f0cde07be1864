package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"emotion-classifier/internal/domain"
	"emotion-classifier/internal/metrics"
	"emotion-classifier/internal/service"
)

// ClassifyHandler mantiene dependencias para los endpoints de clasificación.
type ClassifyHandler struct {
	logger         *zap.Logger
	classification *service.ClassificationService
	limiter        service.ClassifyRateLimiter
}

// NewClassifyHandler crea el handler. limiter puede ser nil (sin límite).
func NewClassifyHandler(
	logger *zap.Logger,
	classification *service.ClassificationService,
	limiter service.ClassifyRateLimiter,
) *ClassifyHandler {
	return &ClassifyHandler{
		logger:         logger,
		classification: classification,
		limiter:        limiter,
	}
}

type classifyRequest struct {
	Age               int      `json:"age" binding:"required"`
	Gender            string   `json:"gender" binding:"required"`
	Platform          string   `json:"platform" binding:"required"`
	DailyUsageMinutes int      `json:"daily_usage_minutes" binding:"required"`
	PostsPerDay       *float64 `json:"posts_per_day" binding:"required"`
	LikesCategory     string   `json:"likes_category" binding:"required"`
	CommentsCategory  string   `json:"comments_category" binding:"required"`
	MessagesCategory  string   `json:"messages_category" binding:"required"`
}

func (r classifyRequest) raw() service.RawClassificationInput {
	return service.RawClassificationInput{
		Age:               r.Age,
		Gender:            r.Gender,
		Platform:          r.Platform,
		DailyUsageMinutes: r.DailyUsageMinutes,
		PostsPerDay:       *r.PostsPerDay,
		LikesCategory:     r.LikesCategory,
		CommentsCategory:  r.CommentsCategory,
		MessagesCategory:  r.MessagesCategory,
	}
}

func predictionResponse(p domain.Prediction) gin.H {
	return gin.H{
		"prediction": p,
		"breakdown":  service.ScoreBreakdown(p.Result.Scores),
	}
}

// retryAfterSeconds redondea hacia arriba; Retry-After nunca baja de 1.
func retryAfterSeconds(d time.Duration) int {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

// Classify maneja POST /classify.
func (h *ClassifyHandler) Classify(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid classify request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.limiter != nil {
		decision := h.limiter.Allow(c.Request.Context(), sessionID)
		if !decision.Allowed {
			metrics.RateLimitedTotal.Inc()
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(decision.RetryAfter)))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many classifications, try again later"})
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
	}

	prediction, err := h.classification.Classify(c.Request.Context(), sessionID, req.raw())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		h.logger.Error("classify failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not classify"})
		return
	}

	c.JSON(http.StatusOK, predictionResponse(prediction))
}

// Last maneja GET /classify/last y devuelve la última predicción de la sesión.
func (h *ClassifyHandler) Last(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	prediction, found, err := h.classification.Last(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("load last prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load last prediction"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no prediction yet"})
		return
	}
	c.JSON(http.StatusOK, predictionResponse(prediction))
}
