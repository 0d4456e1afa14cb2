package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

var reportHeader = []interface{}{
	"ID", "Subject", "Equipment", "Work Center", "Type",
	"Priority", "Status", "Due Date", "Team", "Technician", "Requester", "Created",
}

// GetRequestReport serves the maintenance-request listing. With
// ?format=xlsx the rows leave as a spreadsheet attachment, otherwise JSON.
// The same requesterId/equipmentId filters apply as on the list endpoint.
func (c *ReportController) GetRequestReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter, err := parseRequestFilter(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	items, err := c.reportService.GetRequestReport(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		return c.respondWithXLSX(ctx, items)
	}
	return utils.SuccessResponse(ctx, items, "request report built", http.StatusOK)
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, items []dto.RequestReportItemDTO) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Requests"
	f.SetSheetName(f.GetSheetName(0), sheet)
	f.SetSheetRow(sheet, "A1", &reportHeader)

	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "L1", style)

	for i, item := range items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			item.ID, item.Subject, item.EquipmentName, item.WorkCenterName,
			item.RequestType, item.Priority, item.Status, item.DueDate,
			item.TeamName, item.TechnicianName, item.RequesterName, item.CreatedAt,
		}
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 35)
	f.SetColWidth(sheet, "C", "D", 22)
	f.SetColWidth(sheet, "I", "K", 20)

	fileName := fmt.Sprintf("maintenance_requests_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
