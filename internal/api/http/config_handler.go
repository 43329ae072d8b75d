package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"puyo-puyo/internal/config"
)

type ConfigHandler struct {
	cfg config.Config
}

func NewConfigHandler(cfg config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// GetConfigHandler returns the settings new sessions are created with
// @Summary Get server configuration
// @Description Timing, persistence and naming defaults in effect
// @Tags Config
// @Produce json
// @Success 200 {object} config.Config
// @Router /api/config [get]
func (h *ConfigHandler) GetConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.cfg)
}
