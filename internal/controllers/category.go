package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
	logger          *zap.Logger
}

func NewCategoryController(categoryService services.CategoryServiceInterface, logger *zap.Logger) *CategoryController {
	return &CategoryController{categoryService: categoryService, logger: logger}
}

func (c *CategoryController) GetCategories(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.categoryService.GetCategories(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "categories fetched", http.StatusOK)
}

func (c *CategoryController) CreateCategory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateCategoryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.categoryService.CreateCategory(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "category created", http.StatusCreated)
}

func (c *CategoryController) UpdateCategory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateCategoryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.categoryService.UpdateCategory(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "category updated", http.StatusOK)
}

func (c *CategoryController) DeleteCategory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.categoryService.DeleteCategory(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "category deleted", http.StatusOK)
}
