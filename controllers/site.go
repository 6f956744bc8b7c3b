package controllers

import (
	"productlib/config"
	"productlib/models"
	"productlib/tools"

	"github.com/gin-gonic/gin"
)

// GET /
func (h *Handler) GetRoot(c *gin.Context) {
	RespondSuccess(c, gin.H{"message": "Welcome to Product Library Backend API", "version": config.Version})
}

// GET /health
func (h *Handler) GetHealth(c *gin.Context) {
	RespondSuccess(c, gin.H{"status": "healthy"})
}

// GET /api/banner
func (h *Handler) GetBanner(c *gin.Context) {
	RespondSuccess(c, models.Banner{
		Title:    models.BANNER_TITLE,
		Subtitle: models.BANNER_SUBTITLE,
		Img:      tools.StaticURL(h.Conf.StaticPrefix, models.BANNER_IMAGE),
	})
}

// GET /api/footer
func (h *Handler) GetFooter(c *gin.Context) {
	RespondSuccess(c, models.Footer{
		Message: models.FOOTER_MESSAGE,
		Version: "v" + config.Version,
	})
}
