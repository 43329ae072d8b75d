package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"puyo-puyo/internal/match"
	"puyo-puyo/internal/shared"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, match.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, match.ErrUnknownCommand):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// @Summary Create a session
// @Description Create a new single-player match. The match waits for a start command.
// @Tags Session
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest false "Player info"
// @Success 200 {object} CreateSessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /sessions [post]
func CreateSessionHandler(m *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payload"})
			return
		}
		code, _ := m.CreateSession(req.PlayerName)
		frame, err := m.Frame(code)
		if err != nil {
			c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, CreateSessionResponse{Code: code, Frame: frame})
	}
}

// @Summary Get a session frame
// @Description Board snapshot, upcoming pieces, HUD and state of a session
// @Tags Session
// @Produce json
// @Param code path string true "Session code"
// @Success 200 {object} shared.Frame
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{code} [get]
func GetSessionHandler(m *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		frame, err := m.Frame(c.Param("code"))
		if err != nil {
			c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, frame)
	}
}

// @Summary Send a command
// @Description Apply one command (start, move_left, move_right, rotate_cw, rotate_ccw, drop, pause, new_game, faster, help, highscores, quit)
// @Tags Session
// @Accept json
// @Produce json
// @Param code path string true "Session code"
// @Param request body CommandRequest true "Command"
// @Success 200 {object} shared.Frame
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{code}/commands [post]
func CommandHandler(m *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CommandRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "command required"})
			return
		}
		frame, err := m.Command(c.Param("code"), req.Command)
		if err != nil {
			c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, frame)
	}
}

// @Summary Close a session
// @Tags Session
// @Param code path string true "Session code"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{code} [delete]
func DeleteSessionHandler(m *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.Close(c.Param("code")); err != nil {
			c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary List high scores
// @Description Best scores first; an unreadable store gives an empty list
// @Tags HighScore
// @Produce json
// @Success 200 {object} shared.HighScores
// @Router /highscores [get]
func HighScoresHandler(m *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, shared.HighScores{Entries: m.HighScores()})
	}
}
