package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
)

type fakeUserRepo struct {
	byEmail map[string]*repositories.UserRecord
	nextID  uint64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*repositories.UserRecord), nextID: 1}
}

func (f *fakeUserRepo) GetUsers(context.Context) ([]dto.UserDTO, error) { return nil, nil }

func (f *fakeUserRepo) FindUserByID(context.Context, uint64) (*dto.UserDTO, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*repositories.UserRecord, error) {
	rec, ok := f.byEmail[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return rec, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, fullName, email, passwordHash string) (uint64, error) {
	if _, exists := f.byEmail[email]; exists {
		return 0, apperrors.ErrConflict
	}
	id := f.nextID
	f.nextID++
	f.byEmail[email] = &repositories.UserRecord{
		ID: id, FullName: fullName, Email: email, Password: passwordHash, Role: "user",
	}
	return id, nil
}

func newAuthService(repo repositories.UserRepositoryInterface) AuthServiceInterface {
	jwtSvc := service.NewJWTService("test-secret", time.Hour, zap.NewNop())
	return NewAuthService(repo, jwtSvc, zap.NewNop())
}

func TestSignupAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	err := svc.Signup(context.Background(), dto.SignupDTO{
		FullName: "Dana Smith",
		Email:    "dana@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "dana@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "Dana Smith", res.User.Name)
	assert.Equal(t, "dana@example.com", res.User.Email)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	payload := dto.SignupDTO{FullName: "Dana Smith", Email: "dana@example.com", Password: "s3cret-pass"}
	require.NoError(t, svc.Signup(context.Background(), payload))

	err := svc.Signup(context.Background(), payload)
	require.Error(t, err)
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	require.NoError(t, svc.Signup(context.Background(), dto.SignupDTO{
		FullName: "Dana Smith", Email: "dana@example.com", Password: "s3cret-pass",
	}))

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email: "dana@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmailLooksLikeWrongPassword(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email: "nobody@example.com", Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
