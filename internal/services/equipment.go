package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context) ([]dto.EquipmentDTO, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	cacheRepo     repositories.CacheRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{equipmentRepo: equipmentRepo, cacheRepo: cacheRepo, logger: logger}
}

func (s *EquipmentService) GetEquipment(ctx context.Context) ([]dto.EquipmentDTO, error) {
	return s.equipmentRepo.GetEquipment(ctx)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepo.CreateEquipment(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("equipment created", zap.Uint64("equipmentId", equipment.ID))
	s.invalidateMeta(ctx)
	return equipment, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepo.UpdateEquipment(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.invalidateMeta(ctx)
	return equipment, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	if err := s.equipmentRepo.DeleteEquipment(ctx, id); err != nil {
		return err
	}
	s.invalidateMeta(ctx)
	return nil
}

func (s *EquipmentService) invalidateMeta(ctx context.Context) {
	// Equipment feeds the create-request picker and the dashboard count.
	if err := s.cacheRepo.Del(ctx, createRequestMetaKey, dashboardCacheKey); err != nil {
		s.logger.Warn("failed to invalidate meta cache", zap.Error(err))
	}
}
