package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type TeamController struct {
	teamService services.TeamServiceInterface
	logger      *zap.Logger
}

func NewTeamController(teamService services.TeamServiceInterface, logger *zap.Logger) *TeamController {
	return &TeamController{teamService: teamService, logger: logger}
}

func (c *TeamController) GetTeams(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.teamService.GetTeams(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "teams fetched", http.StatusOK)
}

func (c *TeamController) FindTeam(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.teamService.FindTeam(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "team found", http.StatusOK)
}

func (c *TeamController) CreateTeam(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateTeamDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.teamService.CreateTeam(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "team created", http.StatusCreated)
}

func (c *TeamController) UpdateTeam(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateTeamDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.teamService.UpdateTeam(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "team updated", http.StatusOK)
}

func (c *TeamController) DeleteTeam(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.teamService.DeleteTeam(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "team deleted", http.StatusOK)
}
