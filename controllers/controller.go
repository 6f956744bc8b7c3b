package controllers

import (
	"net/http"

	"productlib/config"

	"github.com/gin-gonic/gin"
)

// Handler serves the catalog endpoints. Conf carries the path prefixes
// and directories the handlers render and write with.
type Handler struct {
	Conf config.Configuration
}

func NewHandler(conf config.Configuration) *Handler {
	return &Handler{Conf: conf}
}

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
