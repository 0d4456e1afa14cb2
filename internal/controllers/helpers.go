package controllers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "gearguard/pkg/errors"
)

func parseIDParam(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewInvalidInputError("invalid id %q", ctx.Param("id"))
	}
	return id, nil
}
