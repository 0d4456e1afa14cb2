package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

const (
	createRequestMetaKey   = "meta:create-request"
	createEquipmentMetaKey = "meta:create-equipment"
)

type MetaServiceInterface interface {
	CreateRequestMeta(ctx context.Context) (*dto.CreateRequestMetaDTO, error)
	CreateEquipmentMeta(ctx context.Context) (*dto.CreateEquipmentMetaDTO, error)
}

// MetaService assembles the cross-entity reference lists that populate the
// creation forms. Reads fan out concurrently and any single failure fails
// the whole aggregate; there is no partial-result degradation.
type MetaService struct {
	equipmentRepo  repositories.EquipmentRepositoryInterface
	categoryRepo   repositories.CategoryRepositoryInterface
	teamRepo       repositories.TeamRepositoryInterface
	technicianRepo repositories.TechnicianRepositoryInterface
	workCenterRepo repositories.WorkCenterRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	cacheTTL       time.Duration
	logger         *zap.Logger
}

func NewMetaService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	technicianRepo repositories.TechnicianRepositoryInterface,
	workCenterRepo repositories.WorkCenterRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) MetaServiceInterface {
	return &MetaService{
		equipmentRepo:  equipmentRepo,
		categoryRepo:   categoryRepo,
		teamRepo:       teamRepo,
		technicianRepo: technicianRepo,
		workCenterRepo: workCenterRepo,
		cacheRepo:      cacheRepo,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

func (s *MetaService) CreateRequestMeta(ctx context.Context) (*dto.CreateRequestMetaDTO, error) {
	var cached dto.CreateRequestMetaDTO
	if s.fromCache(ctx, createRequestMetaKey, &cached) {
		return &cached, nil
	}

	var (
		meta dto.CreateRequestMetaDTO
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	addTask := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	addTask(func() (err error) { meta.Equipment, err = s.equipmentRepo.GetEquipmentRefs(ctx); return })
	addTask(func() (err error) { meta.Teams, err = s.teamRepo.GetTeamRefs(ctx); return })
	addTask(func() (err error) { meta.Technicians, err = s.technicianRepo.GetTechnicianRefs(ctx); return })
	wg.Wait()

	if len(errs) > 0 {
		s.logger.Error("create-request meta aggregation failed", zap.Errors("errors", errs))
		return nil, errs[0]
	}

	s.toCache(ctx, createRequestMetaKey, &meta)
	return &meta, nil
}

func (s *MetaService) CreateEquipmentMeta(ctx context.Context) (*dto.CreateEquipmentMetaDTO, error) {
	var cached dto.CreateEquipmentMetaDTO
	if s.fromCache(ctx, createEquipmentMetaKey, &cached) {
		return &cached, nil
	}

	var (
		meta dto.CreateEquipmentMetaDTO
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	addTask := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	addTask(func() (err error) { meta.Categories, err = s.categoryRepo.GetCategoryRefs(ctx); return })
	addTask(func() (err error) { meta.Teams, err = s.teamRepo.GetTeamRefs(ctx); return })
	addTask(func() (err error) { meta.Technicians, err = s.technicianRepo.GetTechnicianRefs(ctx); return })
	addTask(func() (err error) { meta.Employees, err = s.technicianRepo.GetEmployeeRefs(ctx); return })
	addTask(func() (err error) { meta.WorkCenters, err = s.workCenterRepo.GetWorkCenterRefs(ctx); return })
	wg.Wait()

	if len(errs) > 0 {
		s.logger.Error("create-equipment meta aggregation failed", zap.Errors("errors", errs))
		return nil, errs[0]
	}

	s.toCache(ctx, createEquipmentMetaKey, &meta)
	return &meta, nil
}

func (s *MetaService) fromCache(ctx context.Context, key string, out interface{}) bool {
	raw, err := s.cacheRepo.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.logger.Warn("corrupt meta cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *MetaService) toCache(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cacheRepo.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache meta response", zap.String("key", key), zap.Error(err))
	}
}
