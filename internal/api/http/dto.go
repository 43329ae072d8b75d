package http

import "puyo-puyo/internal/shared"

// CreateSessionRequest is the payload for POST /sessions.
type CreateSessionRequest struct {
	PlayerName string `json:"playerName"`
}

// CreateSessionResponse carries the new session code and its first frame.
type CreateSessionResponse struct {
	Code  string       `json:"code"`
	Frame shared.Frame `json:"frame"`
}

// CommandRequest is the payload for POST /sessions/:code/commands.
type CommandRequest struct {
	Command string `json:"command" binding:"required"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
