package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"idscan-backend/internal/extractions"
	"idscan-backend/internal/shared/metrics"
	"idscan-backend/internal/shared/server/middleware"
	"idscan-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router needs.
type RouterDeps struct {
	ExtractionHandler *extractions.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())
	deps.ExtractionHandler.RegisterRoutes(r)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
