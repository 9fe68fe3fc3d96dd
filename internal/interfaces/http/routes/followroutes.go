package routes

import (
	"github.com/gin-gonic/gin"

	"revu/internal/interfaces/http/handlers"
	"revu/internal/interfaces/http/middleware"
)

// FollowRouteConfig holds dependencies for follow routes.
type FollowRouteConfig struct {
	FollowHandler  *handlers.FollowHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupFollowRoutes configures follow management routes.
func SetupFollowRoutes(engine *gin.Engine, cfg *FollowRouteConfig) {
	follows := engine.Group("/api/follows")
	follows.Use(cfg.AuthMiddleware.RequireAuth())
	{
		follows.GET("", cfg.FollowHandler.List)
		follows.POST("", cfg.FollowHandler.Create)
		follows.DELETE("/:id", cfg.FollowHandler.Delete)
	}
}
