package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"puyo-puyo/internal/api/ws"
	"puyo-puyo/internal/match"
)

func NewRouter(m *match.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket for renderer updates and commands
	r.GET("/ws", hub.HandleWS)

	// --- SESSION ENDPOINTS ---
	r.POST("/sessions", CreateSessionHandler(m))
	r.GET("/sessions/:code", GetSessionHandler(m))
	r.POST("/sessions/:code/commands", CommandHandler(m))
	r.DELETE("/sessions/:code", DeleteSessionHandler(m))

	// --- SCORE ENDPOINTS ---
	r.GET("/highscores", HighScoresHandler(m))

	// --- CONFIG ENDPOINTS ---
	r.GET("/api/config", NewConfigHandler(m.Config()).GetConfigHandler)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}
