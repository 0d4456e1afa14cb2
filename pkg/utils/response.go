package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "gearguard/pkg/errors"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

// ErrorResponse is the single choke point turning service errors into HTTP
// responses: HttpError keeps its code and message, validation failures become
// 400 with field detail, sentinels map through apperrors.StatusCode and
// everything else is an opaque 500.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("http error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("details", httpErr.Details),
			)
		}
		return c.JSON(httpErr.Code, &HTTPResponse{Status: false, Message: httpErr.Message})
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return c.JSON(http.StatusBadRequest, &HTTPResponse{Status: false, Message: invalidInput.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on rule '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, &HTTPResponse{
			Status:  false,
			Message: "validation failed: " + strings.Join(msgs, "; "),
		})
	}

	code := apperrors.StatusCode(err)
	if code == http.StatusInternalServerError {
		logger.Error("unexpected error", zap.Error(err))
		return c.JSON(code, &HTTPResponse{Status: false, Message: "internal server error"})
	}
	return c.JSON(code, &HTTPResponse{Status: false, Message: err.Error()})
}
