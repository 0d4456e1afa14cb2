package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

type CategoryServiceInterface interface {
	GetCategories(ctx context.Context) ([]dto.CategoryDTO, error)
	CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uint64, payload dto.UpdateCategoryDTO) (*dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	cacheRepo    repositories.CacheRepositoryInterface
	logger       *zap.Logger
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo, cacheRepo: cacheRepo, logger: logger}
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	return s.categoryRepo.GetCategories(ctx)
}

func (s *CategoryService) CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.CreateCategory(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("category created", zap.Uint64("categoryId", category.ID))
	s.invalidateMeta(ctx)
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint64, payload dto.UpdateCategoryDTO) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.UpdateCategory(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.invalidateMeta(ctx)
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint64) error {
	if err := s.categoryRepo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.invalidateMeta(ctx)
	return nil
}

func (s *CategoryService) invalidateMeta(ctx context.Context) {
	if err := s.cacheRepo.Del(ctx, createEquipmentMetaKey); err != nil {
		s.logger.Warn("failed to invalidate meta cache", zap.Error(err))
	}
}
