package handler

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/salepointhq/salepoint-api/internal/config"
	"github.com/salepointhq/salepoint-api/internal/presentation/http/dto/request"
	"github.com/salepointhq/salepoint-api/internal/presentation/http/dto/response"
	"github.com/salepointhq/salepoint-api/pkg/utils"
)

// SessionHandler issues terminal session tokens
type SessionHandler struct {
	jwtManager *utils.JWTManager
	authCfg    *config.AuthConfig
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(jwtManager *utils.JWTManager, authCfg *config.AuthConfig) *SessionHandler {
	return &SessionHandler{jwtManager: jwtManager, authCfg: authCfg}
}

// Create opens a new cart session for a terminal
func (h *SessionHandler) Create(c *gin.Context) {
	var req request.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "terminal_id and api_key are required")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(h.authCfg.TerminalAPIKey)) != 1 {
		response.Unauthorized(c, "Invalid terminal key")
		return
	}

	token, sessionID, err := h.jwtManager.GenerateSessionToken(req.TerminalID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Session created", gin.H{
		"token":      token,
		"session_id": sessionID,
	})
}
