package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"gearguard/internal/domain"
	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, filter dto.RequestListFilter) ([]dto.RequestDTO, error)
	FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.RequestDTO, error)
	UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error)
	UpdateRequestStatus(ctx context.Context, id uint64, rawStatus string) (*dto.RequestDTO, error)
}

// RequestService owns the maintenance-request lifecycle: creation defaults,
// the status workflow and the team/technician consistency rule.
type RequestService struct {
	requestRepo repositories.RequestRepositoryInterface
	cacheRepo   repositories.CacheRepositoryInterface
	logger      *zap.Logger
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepo: requestRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

func (s *RequestService) GetRequests(ctx context.Context, filter dto.RequestListFilter) ([]dto.RequestDTO, error) {
	return s.requestRepo.GetRequests(ctx, filter)
}

func (s *RequestService) FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error) {
	return s.requestRepo.FindRequest(ctx, id)
}

func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.RequestDTO, error) {
	requesterID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	// The DTO tags enforce this on the HTTP path; the guard keeps direct
	// service callers honest too.
	if strings.TrimSpace(payload.Subject) == "" {
		return nil, apperrors.NewInvalidInputError("subject is required")
	}

	// A request targets either a piece of equipment or a work center.
	if payload.EquipmentID == nil && payload.WorkCenterID == nil {
		return nil, apperrors.NewInvalidInputError("either equipmentId or workCenterId is required")
	}

	if payload.RequestType == "" {
		payload.RequestType = string(domain.TypeCorrective)
	}
	if payload.Priority == "" {
		payload.Priority = string(domain.PriorityMedium)
	}

	created, err := s.requestRepo.CreateRequest(ctx, requesterID, payload)
	if err != nil {
		s.logger.Error("failed to create maintenance request", zap.Error(err))
		return nil, err
	}

	s.invalidateDashboard(ctx)
	s.logger.Info("maintenance request created",
		zap.Uint64("id", created.ID),
		zap.Uint64("requesterId", requesterID),
	)
	return created, nil
}

// UpdateRequest is a full-record overwrite of the client-editable fields.
// When the team changes, a technician carried over from the old team is
// dropped; a technician different from the current one counts as an explicit
// reassignment and is kept. Membership of the technician in the new team is
// not checked.
func (s *RequestService) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	current, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	teamChanged := current.TeamID == nil || *current.TeamID != payload.TeamID
	if teamChanged && payload.TechnicianID != nil &&
		current.TechnicianID != nil && *payload.TechnicianID == *current.TechnicianID {
		payload.TechnicianID = nil
	}

	updated, err := s.requestRepo.UpdateRequest(ctx, id, payload)
	if err != nil {
		s.logger.Error("failed to update maintenance request", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	s.invalidateDashboard(ctx)
	return updated, nil
}

// UpdateRequestStatus is the narrow mutation behind the Kanban drag: it sets
// status only, independent of all other fields.
func (s *RequestService) UpdateRequestStatus(ctx context.Context, id uint64, rawStatus string) (*dto.RequestDTO, error) {
	newStatus, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	current, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(domain.Status(current.Status), newStatus) {
		return nil, apperrors.NewInvalidInputError("transition from %s to %s is not allowed", current.Status, newStatus)
	}

	updated, err := s.requestRepo.UpdateRequestStatus(ctx, id, string(newStatus))
	if err != nil {
		s.logger.Error("failed to update request status",
			zap.Uint64("id", id), zap.String("status", string(newStatus)), zap.Error(err))
		return nil, err
	}

	s.invalidateDashboard(ctx)
	s.logger.Info("request status updated",
		zap.Uint64("id", id),
		zap.String("from", current.Status),
		zap.String("to", string(newStatus)),
	)
	return updated, nil
}

func (s *RequestService) invalidateDashboard(ctx context.Context) {
	if err := s.cacheRepo.Del(ctx, dashboardCacheKey); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}
