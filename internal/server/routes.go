package server

import (
	"github.com/labstack/echo/v4"

	"github.com/lattice-kg/lattice/internal/server/middleware"
	"github.com/lattice-kg/lattice/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Proof subgraph routes
	apiRoutes.POST("/proof", routes.BuildProofHandler)
}
