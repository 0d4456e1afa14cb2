package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

type WorkCenterServiceInterface interface {
	GetWorkCenters(ctx context.Context) ([]dto.WorkCenterDTO, error)
	CreateWorkCenter(ctx context.Context, payload dto.CreateWorkCenterDTO) (*dto.WorkCenterDTO, error)
	UpdateWorkCenter(ctx context.Context, id uint64, payload dto.UpdateWorkCenterDTO) (*dto.WorkCenterDTO, error)
	DeleteWorkCenter(ctx context.Context, id uint64) error
}

type WorkCenterService struct {
	workCenterRepo repositories.WorkCenterRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	logger         *zap.Logger
}

func NewWorkCenterService(
	workCenterRepo repositories.WorkCenterRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) WorkCenterServiceInterface {
	return &WorkCenterService{workCenterRepo: workCenterRepo, cacheRepo: cacheRepo, logger: logger}
}

func (s *WorkCenterService) GetWorkCenters(ctx context.Context) ([]dto.WorkCenterDTO, error) {
	return s.workCenterRepo.GetWorkCenters(ctx)
}

func (s *WorkCenterService) CreateWorkCenter(ctx context.Context, payload dto.CreateWorkCenterDTO) (*dto.WorkCenterDTO, error) {
	workCenter, err := s.workCenterRepo.CreateWorkCenter(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("work center created", zap.Uint64("workCenterId", workCenter.ID))
	s.invalidateMeta(ctx)
	return workCenter, nil
}

func (s *WorkCenterService) UpdateWorkCenter(ctx context.Context, id uint64, payload dto.UpdateWorkCenterDTO) (*dto.WorkCenterDTO, error) {
	workCenter, err := s.workCenterRepo.UpdateWorkCenter(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.invalidateMeta(ctx)
	return workCenter, nil
}

func (s *WorkCenterService) DeleteWorkCenter(ctx context.Context, id uint64) error {
	if err := s.workCenterRepo.DeleteWorkCenter(ctx, id); err != nil {
		return err
	}
	s.invalidateMeta(ctx)
	return nil
}

func (s *WorkCenterService) invalidateMeta(ctx context.Context) {
	if err := s.cacheRepo.Del(ctx, createEquipmentMetaKey); err != nil {
		s.logger.Warn("failed to invalidate meta cache", zap.Error(err))
	}
}
