package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/domain"
	"gearguard/internal/dto"
	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
)

type fakeRequestRepo struct {
	requests map[uint64]*dto.RequestDTO
	nextID   uint64

	createCalls int
	updateCalls int
	statusCalls int

	lastUpdatePayload dto.UpdateRequestDTO
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uint64]*dto.RequestDTO), nextID: 1}
}

func (f *fakeRequestRepo) GetRequests(_ context.Context, filter dto.RequestListFilter) ([]dto.RequestDTO, error) {
	var out []dto.RequestDTO
	for _, r := range f.requests {
		if filter.RequesterID != 0 && (r.RequesterID == nil || *r.RequesterID != filter.RequesterID) {
			continue
		}
		if filter.EquipmentID != 0 && (r.EquipmentID == nil || *r.EquipmentID != filter.EquipmentID) {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRequestRepo) FindRequest(_ context.Context, id uint64) (*dto.RequestDTO, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRequestRepo) CreateRequest(_ context.Context, requesterID uint64, payload dto.CreateRequestDTO) (*dto.RequestDTO, error) {
	f.createCalls++
	id := f.nextID
	f.nextID++
	r := &dto.RequestDTO{
		ID:           id,
		Subject:      payload.Subject,
		EquipmentID:  payload.EquipmentID,
		WorkCenterID: payload.WorkCenterID,
		RequestType:  payload.RequestType,
		Priority:     payload.Priority,
		Status:       string(domain.StatusNew),
		TeamID:       &payload.TeamID,
		TechnicianID: payload.TechnicianID,
		RequesterID:  &requesterID,
	}
	f.requests[id] = r
	cp := *r
	return &cp, nil
}

func (f *fakeRequestRepo) UpdateRequest(_ context.Context, id uint64, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	f.updateCalls++
	f.lastUpdatePayload = payload
	r, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	r.Subject = payload.Subject
	r.EquipmentID = payload.EquipmentID
	r.WorkCenterID = payload.WorkCenterID
	r.RequestType = payload.RequestType
	r.Priority = payload.Priority
	r.Status = payload.Status
	r.TeamID = &payload.TeamID
	r.TechnicianID = payload.TechnicianID
	cp := *r
	return &cp, nil
}

func (f *fakeRequestRepo) UpdateRequestStatus(_ context.Context, id uint64, status string) (*dto.RequestDTO, error) {
	f.statusCalls++
	r, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	r.Status = status
	cp := *r
	return &cp, nil
}

type fakeCacheRepo struct {
	deleted []string
}

func (f *fakeCacheRepo) Get(context.Context, string) (string, error) {
	return "", errors.New("cache miss")
}

func (f *fakeCacheRepo) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}

func (f *fakeCacheRepo) Del(_ context.Context, keys ...string) error {
	f.deleted = append(f.deleted, keys...)
	return nil
}

func authedCtx(userID uint64) context.Context {
	return context.WithValue(context.Background(), contextkeys.UserIDKey, userID)
}

func newRequestService(repo *fakeRequestRepo, cache *fakeCacheRepo) RequestServiceInterface {
	return NewRequestService(repo, cache, zap.NewNop())
}

func ptr[T any](v T) *T { return &v }

func TestCreateRequestDefaults(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newRequestService(repo, &fakeCacheRepo{})

	created, err := svc.CreateRequest(authedCtx(7), dto.CreateRequestDTO{
		Subject:     "Grinder overheating",
		EquipmentID: ptr(uint64(3)),
		DueDate:     "2026-09-15",
		TeamID:      2,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusNew), created.Status)
	assert.Equal(t, string(domain.TypeCorrective), created.RequestType)
	assert.Equal(t, string(domain.PriorityMedium), created.Priority)
	require.NotNil(t, created.RequesterID)
	assert.Equal(t, uint64(7), *created.RequesterID)
}

func TestCreateRequestRequiresSubject(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newRequestService(repo, &fakeCacheRepo{})

	_, err := svc.CreateRequest(authedCtx(7), dto.CreateRequestDTO{
		Subject:     "   ",
		EquipmentID: ptr(uint64(3)),
		DueDate:     "2026-09-15",
		TeamID:      2,
	})
	require.Error(t, err)
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
	assert.Zero(t, repo.createCalls, "nothing must be persisted")
}

func TestCreateRequestRequiresTarget(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newRequestService(repo, &fakeCacheRepo{})

	_, err := svc.CreateRequest(authedCtx(7), dto.CreateRequestDTO{
		Subject: "Grinder overheating",
		DueDate: "2026-09-15",
		TeamID:  2,
	})
	require.Error(t, err)
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
	assert.Zero(t, repo.createCalls, "nothing must be persisted")
}

func TestCreateRequestRequiresAuthenticatedUser(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newRequestService(repo, &fakeCacheRepo{})

	_, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Grinder overheating",
		EquipmentID: ptr(uint64(3)),
		DueDate:     "2026-09-15",
		TeamID:      2,
	})
	require.Error(t, err)
	assert.Zero(t, repo.createCalls)
}

func TestUpdateRequestTeamChangeClearsStaleTechnician(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newRequestService(repo, &fakeCacheRepo{})

	created, err := svc.CreateRequest(authedCtx(7), dto.CreateRequestDTO{
		Subject:      "Belt misaligned",
		EquipmentID:  ptr(uint64(3)),
		DueDate:      "2026-09-15",
		TeamID:       2,
		TechnicianID: ptr(uint64(11)),
	})
	require.NoError(t, err)

	// Same technician carried over to a new team gets dropped.
	updated, err := svc.UpdateRequest(authedCtx(7), created.ID, dto.UpdateRequestDTO{
		Subject:      "Belt misaligned",
		EquipmentID:  ptr(uint64(3)),
		RequestType:  "CORRECTIVE",
		Priority:     "MEDIUM",
		Status:       "NEW",
		DueDate:      "2026-09-15",
		TeamID:       5,
		TechnicianID: ptr(uint64(11)),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.TechnicianID)
	assert.Nil(t, repo.lastUpdatePayload.TechnicianID)
}

func TestUpdateRequestTeamChangeKeepsExplicitReassignment(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newRequestService(repo, &fakeCacheRepo{})

	created, err := svc.CreateRequest(authedCtx(7), dto.CreateRequestDTO{
		Subject:      "Belt misaligned",
		EquipmentID:  ptr(uint64(3)),
		DueDate:      "2026-09-15",
		TeamID:       2,
		TechnicianID: ptr(uint64(11)),
	})
	require.NoError(t, err)

	// A different technician alongside the team change is an explicit
	// reassignment and survives. Roster membership is not checked.
	updated, err := svc.UpdateRequest(authedCtx(7), created.ID, dto.UpdateRequestDTO{
		Subject:      "Belt misaligned",
		EquipmentID:  ptr(uint64(3)),
		RequestType:  "CORRECTIVE",
		Priority:     "MEDIUM",
		Status:       "NEW",
		DueDate:      "2026-09-15",
		TeamID:       5,
		TechnicianID: ptr(uint64(42)),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.TechnicianID)
	assert.Equal(t, uint64(42), *updated.TechnicianID)
}

func TestUpdateRequestStatusNotFoundHasNoSideEffect(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newRequestService(repo, &fakeCacheRepo{})

	_, err := svc.UpdateRequestStatus(authedCtx(7), 999, "IN_PROGRESS")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Zero(t, repo.statusCalls)
}

func TestUpdateRequestStatusRejectsUnknownValue(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newRequestService(repo, &fakeCacheRepo{})

	_, err := svc.UpdateRequestStatus(authedCtx(7), 1, "DONE")
	require.Error(t, err)
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
	assert.Zero(t, repo.statusCalls)
}

func TestUpdateRequestStatusAnyToAny(t *testing.T) {
	repo := newFakeRequestRepo()
	cache := &fakeCacheRepo{}
	svc := newRequestService(repo, cache)

	created, err := svc.CreateRequest(authedCtx(7), dto.CreateRequestDTO{
		Subject:     "Spindle noise",
		EquipmentID: ptr(uint64(3)),
		DueDate:     "2026-09-15",
		TeamID:      2,
	})
	require.NoError(t, err)

	// The workflow graph is total, including moves out of SCRAP.
	for _, target := range []string{"SCRAP", "REPAIRED", "NEW", "IN_PROGRESS"} {
		updated, err := svc.UpdateRequestStatus(authedCtx(7), created.ID, target)
		require.NoError(t, err)
		assert.Equal(t, target, updated.Status)
	}

	assert.Contains(t, cache.deleted, dashboardCacheKey)
}

func TestGetRequestsFilters(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newRequestService(repo, &fakeCacheRepo{})

	_, err := svc.CreateRequest(authedCtx(1), dto.CreateRequestDTO{
		Subject: "A", EquipmentID: ptr(uint64(3)), DueDate: "2026-09-15", TeamID: 2,
	})
	require.NoError(t, err)
	_, err = svc.CreateRequest(authedCtx(2), dto.CreateRequestDTO{
		Subject: "B", EquipmentID: ptr(uint64(4)), DueDate: "2026-09-15", TeamID: 2,
	})
	require.NoError(t, err)

	byRequester, err := svc.GetRequests(context.Background(), dto.RequestListFilter{RequesterID: 1})
	require.NoError(t, err)
	require.Len(t, byRequester, 1)
	assert.Equal(t, "A", byRequester[0].Subject)

	byEquipment, err := svc.GetRequests(context.Background(), dto.RequestListFilter{EquipmentID: 4})
	require.NoError(t, err)
	require.Len(t, byEquipment, 1)
	assert.Equal(t, "B", byEquipment[0].Subject)
}
