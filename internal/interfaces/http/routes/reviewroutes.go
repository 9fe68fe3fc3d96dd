package routes

import (
	"github.com/gin-gonic/gin"

	"revu/internal/interfaces/http/handlers"
	"revu/internal/interfaces/http/middleware"
)

// ReviewRouteConfig holds dependencies for review routes.
type ReviewRouteConfig struct {
	ReviewHandler  *handlers.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupReviewRoutes configures the combined ticket-and-review creation
// route and review mutation routes.
func SetupReviewRoutes(engine *gin.Engine, cfg *ReviewRouteConfig) {
	reviews := engine.Group("/api/reviews")
	reviews.Use(cfg.AuthMiddleware.RequireAuth())
	{
		reviews.POST("", cfg.ReviewHandler.CreateWithTicket)
		reviews.PUT("/:id", cfg.ReviewHandler.Update)
		reviews.DELETE("/:id", cfg.ReviewHandler.Delete)
	}
}
