package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bharatexplore/internal/pkg/config"
)

// distDir is where the built web client lands in production images.
const distDir = "./dist"

// setupSPA serves the compiled web client in production and routes every
// unknown non-API path to its index.html. Unknown API paths always get a
// JSON 404.
func setupSPA(r *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	production := cfg.Mode == "production"
	indexFile := filepath.Join(distDir, "index.html")

	if production {
		if _, err := os.Stat(indexFile); err != nil {
			logger.Warn("Client build not found, static serving disabled", zap.String("dir", distDir))
			production = false
		} else {
			r.Static("/assets", filepath.Join(distDir, "assets"))
		}
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		if production {
			c.File(indexFile)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
