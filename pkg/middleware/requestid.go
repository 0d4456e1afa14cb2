package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gearguard/pkg/contextkeys"
)

const RequestIDHeader = "X-Request-ID"

// RequestID attaches a generated id to every request for log correlation;
// an id supplied by the caller is kept as-is.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(RequestIDHeader)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(RequestIDHeader, rid)

			ctx := context.WithValue(c.Request().Context(), contextkeys.RequestIDKey, rid)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
