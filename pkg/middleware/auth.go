package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth guards protected routes. Missing, malformed and invalid tokens all
// surface as the same 401 to the client.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("empty Authorization header")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("malformed Authorization header")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("token validation failed", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.UserIDKey, claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
