package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

func callAuth(t *testing.T, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	jwtSvc := service.NewJWTService("test-secret", time.Hour, zap.NewNop())
	mw := NewAuthMiddleware(jwtSvc, zap.NewNop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := mw.Auth(func(c echo.Context) error {
		reached = true
		_, err := utils.GetUserIDFromCtx(c.Request().Context())
		require.NoError(t, err)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, reached
}

func validToken(t *testing.T) string {
	t.Helper()
	jwtSvc := service.NewJWTService("test-secret", time.Hour, zap.NewNop())
	token, err := jwtSvc.GenerateToken(42)
	require.NoError(t, err)
	return token
}

func TestAuthAcceptsValidBearerToken(t *testing.T) {
	rec, reached := callAuth(t, "Bearer "+validToken(t))
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	rec, reached := callAuth(t, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	rec, reached := callAuth(t, "Token abc")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsTamperedToken(t *testing.T) {
	rec, reached := callAuth(t, "Bearer "+validToken(t)+"x")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
