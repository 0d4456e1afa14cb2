package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]dto.TeamDTO, error)
	FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error)
	UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*dto.TeamDTO, error)
	DeleteTeam(ctx context.Context, id uint64) error
}

// TeamService keeps a team row and its member roster consistent: both are
// written in one transaction so a failed roster insert never leaves a team
// with a half-applied member list.
type TeamService struct {
	teamRepo  repositories.TeamRepositoryInterface
	txManager repositories.TxManagerInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
}

func NewTeamService(
	teamRepo repositories.TeamRepositoryInterface,
	txManager repositories.TxManagerInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) TeamServiceInterface {
	return &TeamService{
		teamRepo:  teamRepo,
		txManager: txManager,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	return s.teamRepo.GetTeams(ctx)
}

func (s *TeamService) FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error) {
	return s.teamRepo.FindTeam(ctx, id)
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error) {
	var teamID uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		id, err := s.teamRepo.CreateTeamInTx(ctx, tx, payload)
		if err != nil {
			return err
		}
		teamID = id
		return s.teamRepo.ReplaceMembersInTx(ctx, tx, teamID, payload.Members)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("team created", zap.Uint64("teamId", teamID))
	s.invalidateMeta(ctx)
	return s.teamRepo.FindTeam(ctx, teamID)
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*dto.TeamDTO, error) {
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.teamRepo.UpdateTeamInTx(ctx, tx, id, payload); err != nil {
			return err
		}
		return s.teamRepo.ReplaceMembersInTx(ctx, tx, id, payload.Members)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateMeta(ctx)
	return s.teamRepo.FindTeam(ctx, id)
}

func (s *TeamService) DeleteTeam(ctx context.Context, id uint64) error {
	if err := s.teamRepo.DeleteTeam(ctx, id); err != nil {
		return err
	}
	s.invalidateMeta(ctx)
	return nil
}

func (s *TeamService) invalidateMeta(ctx context.Context) {
	if err := s.cacheRepo.Del(ctx, createRequestMetaKey, createEquipmentMetaKey); err != nil {
		s.logger.Warn("failed to invalidate meta cache", zap.Error(err))
	}
}
