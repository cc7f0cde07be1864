package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"emotion-classifier/internal/service"
)

// SessionHandler emite sesiones del formulario.
type SessionHandler struct {
	logger *zap.Logger
	tokens *service.SessionTokenService
}

func NewSessionHandler(logger *zap.Logger, tokens *service.SessionTokenService) *SessionHandler {
	return &SessionHandler{logger: logger, tokens: tokens}
}

// CreateSession maneja POST /session.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	if h.tokens == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sessions not configured"})
		return
	}
	session, err := h.tokens.NewSession()
	if err != nil {
		h.logger.Error("create session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}
