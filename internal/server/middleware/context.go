package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/lattice-kg/lattice/pkg/proof"
)

// App bundles the shared service dependencies handed to every request.
type App struct {
	Builder *proof.Builder
	APIKey  string
}

// AppContext wraps the echo context with the service dependencies and the
// request id minted by RequestIDMiddleware.
type AppContext struct {
	echo.Context
	App       *App
	RequestID string
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{
				Context: c,
				App:     app,
			})
		}
	}
}
