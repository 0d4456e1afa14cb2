package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	apperrors "gearguard/pkg/errors"
)

// fakeTxManager runs the callback without a real transaction; the fakes
// below track whether earlier writes would have been rolled back.
type fakeTxManager struct {
	rolledBack bool
}

func (f *fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	if err := fn(nil); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

type fakeTeamRepo struct {
	teams      map[uint64]*dto.TeamDTO
	nextID     uint64
	membersErr error

	replacedMembers map[uint64][]uint64
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{
		teams:           make(map[uint64]*dto.TeamDTO),
		nextID:          1,
		replacedMembers: make(map[uint64][]uint64),
	}
}

func (f *fakeTeamRepo) GetTeams(context.Context) ([]dto.TeamDTO, error) {
	var out []dto.TeamDTO
	for _, t := range f.teams {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTeamRepo) GetTeamRefs(context.Context) ([]dto.RefItemDTO, error) { return nil, nil }

func (f *fakeTeamRepo) FindTeam(_ context.Context, id uint64) (*dto.TeamDTO, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTeamRepo) CreateTeamInTx(_ context.Context, _ pgx.Tx, payload dto.CreateTeamDTO) (uint64, error) {
	id := f.nextID
	f.nextID++
	f.teams[id] = &dto.TeamDTO{ID: id, Name: payload.Name}
	return id, nil
}

func (f *fakeTeamRepo) UpdateTeamInTx(_ context.Context, _ pgx.Tx, id uint64, payload dto.UpdateTeamDTO) error {
	t, ok := f.teams[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	t.Name = payload.Name
	return nil
}

func (f *fakeTeamRepo) ReplaceMembersInTx(_ context.Context, _ pgx.Tx, teamID uint64, members []uint64) error {
	if f.membersErr != nil {
		return f.membersErr
	}
	f.replacedMembers[teamID] = members
	return nil
}

func (f *fakeTeamRepo) DeleteTeam(_ context.Context, id uint64) error {
	if _, ok := f.teams[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.teams, id)
	return nil
}

func TestCreateTeamWithRoster(t *testing.T) {
	repo := newFakeTeamRepo()
	tm := &fakeTxManager{}
	svc := NewTeamService(repo, tm, &fakeCacheRepo{}, zap.NewNop())

	team, err := svc.CreateTeam(context.Background(), dto.CreateTeamDTO{
		Name:    "Mechanics",
		Members: []uint64{3, 5},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mechanics", team.Name)
	assert.Equal(t, []uint64{3, 5}, repo.replacedMembers[team.ID])
	assert.False(t, tm.rolledBack)
}

func TestCreateTeamRollsBackOnBadMember(t *testing.T) {
	repo := newFakeTeamRepo()
	repo.membersErr = apperrors.NewInvalidInputError("technician 99 does not exist")
	tm := &fakeTxManager{}
	svc := NewTeamService(repo, tm, &fakeCacheRepo{}, zap.NewNop())

	_, err := svc.CreateTeam(context.Background(), dto.CreateTeamDTO{
		Name:    "Mechanics",
		Members: []uint64{99},
	})
	require.Error(t, err)
	assert.True(t, tm.rolledBack)
}

func TestUpdateTeamNotFound(t *testing.T) {
	repo := newFakeTeamRepo()
	svc := NewTeamService(repo, &fakeTxManager{}, &fakeCacheRepo{}, zap.NewNop())

	_, err := svc.UpdateTeam(context.Background(), 404, dto.UpdateTeamDTO{Name: "Ghost"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateTeamReplacesRoster(t *testing.T) {
	repo := newFakeTeamRepo()
	tm := &fakeTxManager{}
	svc := NewTeamService(repo, tm, &fakeCacheRepo{}, zap.NewNop())

	created, err := svc.CreateTeam(context.Background(), dto.CreateTeamDTO{
		Name:    "Mechanics",
		Members: []uint64{3},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTeam(context.Background(), created.ID, dto.UpdateTeamDTO{
		Name:    "Electrics",
		Members: []uint64{8, 9},
	})
	require.NoError(t, err)
	assert.Equal(t, "Electrics", updated.Name)
	assert.Equal(t, []uint64{8, 9}, repo.replacedMembers[created.ID])
}
