package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/domain"
	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

const dashboardCacheKey = "dashboard:summary"

type DashboardServiceInterface interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	cacheRepo     repositories.CacheRepositoryInterface
	cacheTTL      time.Duration
	logger        *zap.Logger
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		cacheRepo:     cacheRepo,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// GetSummary returns the headline counts for the landing page. The counts
// are computed from three independent queries running concurrently and the
// assembled result is cached for a short window; request write paths drop
// the cache entry.
func (s *DashboardService) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if raw, err := s.cacheRepo.Get(ctx, dashboardCacheKey); err == nil {
		var cached dto.DashboardSummaryDTO
		uerr := json.Unmarshal([]byte(raw), &cached)
		if uerr == nil {
			return &cached, nil
		}
		s.logger.Warn("corrupt dashboard cache entry", zap.Error(uerr))
	}

	var (
		summary dto.DashboardSummaryDTO
		wg      sync.WaitGroup
		mu      sync.Mutex
		errs    []error
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

	addTask(func() (err error) { summary.EquipmentCount, err = s.dashboardRepo.CountEquipment(ctx); return })
	addTask(func() (err error) { summary.ByStatus, err = s.dashboardRepo.CountRequestsByStatus(ctx); return })
	addTask(func() (err error) { summary.ByTeam, err = s.dashboardRepo.CountRequestsByTeam(ctx); return })
	wg.Wait()

	if len(errs) > 0 {
		s.logger.Error("dashboard aggregation failed", zap.Errors("errors", errs))
		return nil, errs[0]
	}

	for _, group := range summary.ByStatus {
		if group.Name == string(domain.StatusNew) {
			summary.OpenRequests = group.Count
		}
	}

	if raw, err := json.Marshal(&summary); err == nil {
		if err := s.cacheRepo.Set(ctx, dashboardCacheKey, raw, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache dashboard summary", zap.Error(err))
		}
	}

	return &summary, nil
}
