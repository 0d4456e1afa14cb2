// Package kanban is a client-side model of the maintenance-request board.
// It keeps requests grouped into status columns and applies drag-and-drop
// moves optimistically: the local state changes first, the server is told
// second, and the move is rolled back if the server rejects it.
package kanban

import (
	"context"
	"fmt"
	"sync"

	"gearguard/internal/domain"
)

// Card is the board's view of a maintenance request.
type Card struct {
	ID      uint64
	Subject string
	Status  domain.Status
}

// StatusUpdater persists a status change. Client implements it over HTTP.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id uint64, status domain.Status) error
}

// Notifier surfaces the outcome of a move to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Board holds the columns. All mutation goes through one mutex, mirroring
// the single event-handling turn the board is driven from.
type Board struct {
	mu       sync.Mutex
	columns  map[domain.Status][]Card
	updater  StatusUpdater
	notifier Notifier
}

func NewBoard(updater StatusUpdater, notifier Notifier) *Board {
	columns := make(map[domain.Status][]Card, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		columns[s] = nil
	}
	return &Board{columns: columns, updater: updater, notifier: notifier}
}

// Load replaces the board contents, distributing cards into their status
// columns in the order given. Cards with an unknown status are dropped.
func (b *Board) Load(cards []Card) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range domain.AllStatuses {
		b.columns[s] = nil
	}
	for _, card := range cards {
		if !card.Status.Valid() {
			continue
		}
		b.columns[card.Status] = append(b.columns[card.Status], card)
	}
}

// Column returns a copy of the cards in the given status column.
func (b *Board) Column(status domain.Status) []Card {
	b.mu.Lock()
	defer b.mu.Unlock()

	col := b.columns[status]
	out := make([]Card, len(col))
	copy(out, col)
	return out
}

// MoveCard handles a drag onto another column. The card moves locally
// before the server call; if the call fails the card is restored to its
// previous column and position and the failure is surfaced through the
// notifier. There is no automatic retry.
//
// Dropping a card within its own column only reorders the local list and
// never talks to the server; ordering is a presentation concern.
func (b *Board) MoveCard(ctx context.Context, id uint64, to domain.Status, position int) error {
	if !to.Valid() {
		return fmt.Errorf("unknown status %q", to)
	}

	b.mu.Lock()
	card, from, fromIndex, ok := b.locate(id)
	if !ok {
		b.mu.Unlock()
		return fmt.Errorf("card %d not on board", id)
	}

	if from == to {
		b.removeAt(from, fromIndex)
		b.insertAt(to, card, position)
		b.mu.Unlock()
		return nil
	}

	card.Status = to
	b.removeAt(from, fromIndex)
	b.insertAt(to, card, position)
	b.mu.Unlock()

	if err := b.updater.UpdateStatus(ctx, id, to); err != nil {
		b.mu.Lock()
		if moved, col, idx, found := b.locate(id); found && col == to {
			moved.Status = from
			b.removeAt(col, idx)
			b.insertAt(from, moved, fromIndex)
		}
		b.mu.Unlock()

		b.notifier.Error(fmt.Sprintf("failed to move request %d to %s", id, to))
		return err
	}

	b.notifier.Success(fmt.Sprintf("request %d moved to %s", id, to))
	return nil
}

// locate must be called with the mutex held.
func (b *Board) locate(id uint64) (Card, domain.Status, int, bool) {
	for _, s := range domain.AllStatuses {
		for i, card := range b.columns[s] {
			if card.ID == id {
				return card, s, i, true
			}
		}
	}
	return Card{}, "", 0, false
}

func (b *Board) removeAt(status domain.Status, index int) {
	col := b.columns[status]
	b.columns[status] = append(col[:index], col[index+1:]...)
}

func (b *Board) insertAt(status domain.Status, card Card, position int) {
	col := b.columns[status]
	if position < 0 || position > len(col) {
		position = len(col)
	}
	col = append(col, Card{})
	copy(col[position+1:], col[position:])
	col[position] = card
	b.columns[status] = col
}
