package routes

import (
	"github.com/gin-gonic/gin"

	"revu/internal/interfaces/http/handlers"
	"revu/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	ReviewHandler  *handlers.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket CRUD routes plus the nested
// reply-review route.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.Create)

		// Specific paths before parameterized ones to avoid route conflicts.
		tickets.POST("/:id/reviews", cfg.ReviewHandler.Create)

		tickets.GET("/:id", cfg.TicketHandler.Get)
		tickets.PUT("/:id", cfg.TicketHandler.Update)
		tickets.DELETE("/:id", cfg.TicketHandler.Delete)
	}
}
