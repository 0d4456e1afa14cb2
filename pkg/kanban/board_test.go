package kanban

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/domain"
)

type fakeUpdater struct {
	err   error
	calls []struct {
		ID     uint64
		Status domain.Status
	}
}

func (f *fakeUpdater) UpdateStatus(_ context.Context, id uint64, status domain.Status) error {
	f.calls = append(f.calls, struct {
		ID     uint64
		Status domain.Status
	}{id, status})
	return f.err
}

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (f *fakeNotifier) Success(msg string) { f.successes = append(f.successes, msg) }
func (f *fakeNotifier) Error(msg string)   { f.errors = append(f.errors, msg) }

func seededBoard(updater StatusUpdater, notifier Notifier) *Board {
	b := NewBoard(updater, notifier)
	b.Load([]Card{
		{ID: 1, Subject: "Grinder overheating", Status: domain.StatusNew},
		{ID: 2, Subject: "Belt misaligned", Status: domain.StatusNew},
		{ID: 3, Subject: "Spindle noise", Status: domain.StatusInProgress},
	})
	return b
}

func cardIDs(cards []Card) []uint64 {
	ids := make([]uint64, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func TestMoveCardOptimisticSuccess(t *testing.T) {
	updater := &fakeUpdater{}
	notifier := &fakeNotifier{}
	b := seededBoard(updater, notifier)

	err := b.MoveCard(context.Background(), 1, domain.StatusInProgress, 0)
	require.NoError(t, err)

	assert.Equal(t, []uint64{2}, cardIDs(b.Column(domain.StatusNew)))
	assert.Equal(t, []uint64{1, 3}, cardIDs(b.Column(domain.StatusInProgress)))

	require.Len(t, updater.calls, 1)
	assert.Equal(t, uint64(1), updater.calls[0].ID)
	assert.Equal(t, domain.StatusInProgress, updater.calls[0].Status)

	assert.Len(t, notifier.successes, 1)
	assert.Empty(t, notifier.errors)
}

func TestMoveCardRevertsOnFailure(t *testing.T) {
	updater := &fakeUpdater{err: errors.New("server rejected")}
	notifier := &fakeNotifier{}
	b := seededBoard(updater, notifier)

	err := b.MoveCard(context.Background(), 1, domain.StatusRepaired, 0)
	require.Error(t, err)

	// Original column and position restored.
	assert.Equal(t, []uint64{1, 2}, cardIDs(b.Column(domain.StatusNew)))
	assert.Empty(t, b.Column(domain.StatusRepaired))

	moved := b.Column(domain.StatusNew)[0]
	assert.Equal(t, domain.StatusNew, moved.Status)

	assert.Len(t, notifier.errors, 1)
	assert.Empty(t, notifier.successes)

	// One attempt only, no retry.
	assert.Len(t, updater.calls, 1)
}

func TestSameColumnReorderIsLocalOnly(t *testing.T) {
	updater := &fakeUpdater{}
	notifier := &fakeNotifier{}
	b := seededBoard(updater, notifier)

	err := b.MoveCard(context.Background(), 2, domain.StatusNew, 0)
	require.NoError(t, err)

	assert.Equal(t, []uint64{2, 1}, cardIDs(b.Column(domain.StatusNew)))
	assert.Empty(t, updater.calls, "reordering within a column must not hit the server")
	assert.Empty(t, notifier.successes)
	assert.Empty(t, notifier.errors)
}

func TestMoveCardUnknownCard(t *testing.T) {
	b := seededBoard(&fakeUpdater{}, &fakeNotifier{})
	err := b.MoveCard(context.Background(), 99, domain.StatusScrap, 0)
	assert.Error(t, err)
}

func TestMoveCardUnknownStatus(t *testing.T) {
	b := seededBoard(&fakeUpdater{}, &fakeNotifier{})
	err := b.MoveCard(context.Background(), 1, domain.Status("ARCHIVED"), 0)
	assert.Error(t, err)
}

func TestMoveCardAppendsWhenPositionOutOfRange(t *testing.T) {
	updater := &fakeUpdater{}
	b := seededBoard(updater, &fakeNotifier{})

	err := b.MoveCard(context.Background(), 1, domain.StatusInProgress, 50)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 1}, cardIDs(b.Column(domain.StatusInProgress)))
}

func TestLoadDropsUnknownStatuses(t *testing.T) {
	b := NewBoard(&fakeUpdater{}, &fakeNotifier{})
	b.Load([]Card{
		{ID: 1, Status: domain.StatusNew},
		{ID: 2, Status: domain.Status("ARCHIVED")},
	})
	assert.Equal(t, []uint64{1}, cardIDs(b.Column(domain.StatusNew)))
	total := 0
	for _, s := range domain.AllStatuses {
		total += len(b.Column(s))
	}
	assert.Equal(t, 1, total)
}
