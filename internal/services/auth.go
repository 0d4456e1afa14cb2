package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type AuthServiceInterface interface {
	Signup(ctx context.Context, payload dto.SignupDTO) error
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
}

type AuthService struct {
	userRepo repositories.UserRepositoryInterface
	jwtSvc   service.JWTService
	logger   *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		logger:   logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, payload dto.SignupDTO) error {
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return err
	}

	if _, err := s.userRepo.CreateUser(ctx, payload.FullName, payload.Email, hash); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return apperrors.NewInvalidInputError("a user with this email already exists")
		}
		s.logger.Error("signup failed", zap.Error(err))
		return err
	}

	s.logger.Info("user registered", zap.String("email", payload.Email))
	return nil
}

// Login verifies the credentials and issues a bearer token with a fixed
// 7-day expiry. A wrong email and a wrong password are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(payload.Password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtSvc.GenerateToken(user.ID)
	if err != nil {
		s.logger.Error("token generation failed", zap.Uint64("userId", user.ID), zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponseDTO{
		Token: token,
		User: dto.UserDTO{
			ID:    user.ID,
			Name:  user.FullName,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
