// router/router.go

package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dev-mohitbeniwal/bookfeed/controller"
	"github.com/dev-mohitbeniwal/bookfeed/middleware"
)

// SetupRouter mounts health and metrics at the root and every other route
// under /api/v1 behind authentication and rate limiting.
func SetupRouter(
	controllers *controller.Controllers,
	authenticate gin.HandlerFunc,
	rateLimiter gin.HandlerFunc,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())

	controllers.Health.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	api.Use(authenticate, rateLimiter)

	controllers.Feed.RegisterRoutes(api)
	controllers.Book.RegisterRoutes(api)
	controllers.Library.RegisterRoutes(api)
	controllers.User.RegisterRoutes(api)

	return router
}
