package api

import (
	"net/http"

	"habitbloom/internal/config"

	"github.com/gin-gonic/gin"
)

// GET /health
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// GET /config
func configHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only return non-sensitive config fields
		c.JSON(http.StatusOK, gin.H{
			"server": gin.H{
				"host":    cfg.Server.Host,
				"port":    cfg.Server.Port,
				"subpath": cfg.Server.Subpath,
			},
			"gemini": gin.H{
				"model": cfg.Gemini.Model,
			},
			"reflect": gin.H{
				"max_requests":   cfg.Reflect.MaxRequests,
				"window_seconds": cfg.Reflect.WindowSeconds,
			},
		})
	}
}
