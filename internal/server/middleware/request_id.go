package middleware

import (
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with a nanoid so log lines from a
// single proof build can be correlated. An id supplied by the caller wins.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(requestIDHeader)
		if id == "" {
			generated, err := gonanoid.New()
			if err == nil {
				id = generated
			}
		}
		c.Response().Header().Set(requestIDHeader, id)
		if cc, ok := c.(*AppContext); ok {
			cc.RequestID = id
		}
		return next(c)
	}
}
