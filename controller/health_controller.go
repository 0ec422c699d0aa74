// controller/health_controller.go
package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusFunc reports "up" or "down" for one dependency.
type StatusFunc func(ctx context.Context) string

type HealthController struct {
	database StatusFunc
	cache    StatusFunc
}

func NewHealthController(database, cache StatusFunc) *HealthController {
	return &HealthController{database: database, cache: cache}
}

// RegisterRoutes registers the API routes
func (hc *HealthController) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health", hc.Health)
}

// Health reports dependency status. A down cache only degrades the
// service; a down database makes it unavailable.
func (hc *HealthController) Health(c *gin.Context) {
	ctx := c.Request.Context()
	database := hc.database(ctx)
	cache := hc.cache(ctx)

	status, code := "ok", http.StatusOK
	switch {
	case database != "up":
		status, code = "unavailable", http.StatusServiceUnavailable
	case cache != "up":
		status = "degraded"
	}

	c.JSON(code, gin.H{
		"status":   status,
		"database": database,
		"redis":    cache,
	})
}
