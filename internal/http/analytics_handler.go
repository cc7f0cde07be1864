package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"emotion-classifier/internal/service"
)

// AnalyticsHandler sirve las opciones del formulario y las vistas de analítica.
type AnalyticsHandler struct {
	analytics service.AnalyticsService
}

func NewAnalyticsHandler(analytics service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Form maneja GET /form.
func (h *AnalyticsHandler) Form(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.FormOptions())
}

// Analytics maneja GET /analytics.
func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Dataset())
}

// Insights maneja GET /insights.
func (h *AnalyticsHandler) Insights(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Insights())
}
