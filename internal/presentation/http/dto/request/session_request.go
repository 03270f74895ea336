package request

// CreateSessionRequest represents the request to open a terminal session
type CreateSessionRequest struct {
	TerminalID string `json:"terminal_id" binding:"required"`
	APIKey     string `json:"api_key" binding:"required"`
}
