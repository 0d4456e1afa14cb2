package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

type ReportServiceInterface interface {
	GetRequestReport(ctx context.Context, filter dto.RequestListFilter) ([]dto.RequestReportItemDTO, error)
}

// ReportService produces the request listing joined with reference names;
// the controller decides whether it leaves as JSON or as a spreadsheet.
type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{reportRepo: reportRepo, logger: logger}
}

func (s *ReportService) GetRequestReport(ctx context.Context, filter dto.RequestListFilter) ([]dto.RequestReportItemDTO, error) {
	items, err := s.reportRepo.GetRequestReport(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.logger.Info("request report built", zap.Int("rows", len(items)))
	return items, nil
}
