package server

import (
	"github.com/nexus-nlp/nexus/internal/server/middleware"
	"github.com/nexus-nlp/nexus/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Network routes
	apiRoutes.GET("/networks", routes.GetNetworksHandler, middleware.RequireAnyPermission("network.view", "network.view:all"))
	apiRoutes.POST("/networks", routes.CreateNetworkHandler, middleware.RequirePermission("network.create"))
	apiRoutes.GET("/networks/:id", routes.GetNetworkHandler, middleware.RequireAnyPermission("network.view", "network.view:all"))
	apiRoutes.DELETE("/networks/:id", routes.DeleteNetworkHandler, middleware.RequirePermission("network.delete"))
}
