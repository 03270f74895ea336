package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetSessionID extracts the cart session ID from the Gin context
func GetSessionID(c *gin.Context) string {
	return c.GetString("session_id")
}

// GetTerminalID extracts the terminal ID from the Gin context
func GetTerminalID(c *gin.Context) string {
	return c.GetString("terminal_id")
}

// parseUUID parses a UUID string, returning false on malformed input
func parseUUID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalUUID parses a UUID string into a pointer; empty input yields nil
func parseOptionalUUID(s string) (*uuid.UUID, bool) {
	if s == "" {
		return nil, true
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, false
	}
	return &id, true
}
