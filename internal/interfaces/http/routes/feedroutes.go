package routes

import (
	"github.com/gin-gonic/gin"

	"revu/internal/interfaces/http/handlers"
	"revu/internal/interfaces/http/middleware"
)

// FeedRouteConfig holds dependencies for feed routes.
type FeedRouteConfig struct {
	FeedHandler    *handlers.FeedHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupFeedRoutes configures the activity feed and own-posts routes.
func SetupFeedRoutes(engine *gin.Engine, cfg *FeedRouteConfig) {
	api := engine.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	{
		api.GET("/feed", cfg.FeedHandler.Feed)
		api.GET("/posts", cfg.FeedHandler.Posts)
	}
}
