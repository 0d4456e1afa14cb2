package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context) ([]dto.UserDTO, error)
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context) ([]dto.UserDTO, error) {
	return s.userRepo.GetUsers(ctx)
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	return s.userRepo.FindUserByID(ctx, id)
}
