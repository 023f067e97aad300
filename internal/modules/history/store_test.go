package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapechart/internal/domain"
	"tapechart/internal/modules/allocation"
)

func setWithGuest(name string) allocation.Set {
	return allocation.Set{{
		ID:        "res-1",
		Room:      "102",
		GuestName: name,
		CheckIn:   "2026-03-30",
		CheckOut:  "2026-03-31",
		Status:    domain.ReservationConfirmed,
	}}
}

func TestStore_SetUndoRedo(t *testing.T) {
	initial := setWithGuest("initial")
	s := New(initial)

	next := setWithGuest("after move")
	s.Set(next)

	assert.True(t, s.CanUndo())
	assert.False(t, s.CanRedo())
	assert.Equal(t, "after move", s.Present()[0].GuestName)

	// undo(set(x)) restores the exact prior set.
	s.Undo()
	assert.Equal(t, "initial", s.Present()[0].GuestName)
	assert.True(t, s.CanRedo())

	// redo(undo(set(x))) restores x.
	s.Redo()
	assert.Equal(t, "after move", s.Present()[0].GuestName)
	assert.False(t, s.CanRedo())
}

func TestStore_UndoEmptyIsNoop(t *testing.T) {
	s := New(setWithGuest("only"))
	s.Undo()
	assert.Equal(t, "only", s.Present()[0].GuestName)
	s.Redo()
	assert.Equal(t, "only", s.Present()[0].GuestName)
}

func TestStore_SetSameSliceIsNoop(t *testing.T) {
	initial := setWithGuest("initial")
	s := New(initial)

	s.Set(initial)
	assert.False(t, s.CanUndo())
}

func TestStore_SetEmptyOnEmptyIsNoop(t *testing.T) {
	empty := allocation.Set{}
	s := New(empty)

	// Neither the identical empty slice nor a fresh one records a frame;
	// there is no content change to undo.
	s.Set(empty)
	assert.False(t, s.CanUndo())
	s.Set(allocation.Set{})
	assert.False(t, s.CanUndo())
	s.Set(nil)
	assert.False(t, s.CanUndo())
}

func TestStore_NewMutationClearsFuture(t *testing.T) {
	s := New(setWithGuest("a"))
	s.Set(setWithGuest("b"))
	s.Undo()
	require.True(t, s.CanRedo())

	s.Set(setWithGuest("c"))
	assert.False(t, s.CanRedo())
	assert.Equal(t, "c", s.Present()[0].GuestName)
	s.Undo()
	assert.Equal(t, "a", s.Present()[0].GuestName)
}

func TestStore_DepthNeverExceedsMax(t *testing.T) {
	s := New(setWithGuest("v0"))
	for i := 1; i <= 20; i++ {
		s.Set(setWithGuest(fmt.Sprintf("v%d", i)))
	}

	// Only the last MaxDepth frames are recoverable.
	undone := 0
	for s.CanUndo() {
		s.Undo()
		undone++
	}
	assert.Equal(t, MaxDepth, undone)
	assert.Equal(t, "v15", s.Present()[0].GuestName)
}

func TestStore_HydrateClearsHistory(t *testing.T) {
	s := New(setWithGuest("a"))
	s.Set(setWithGuest("b"))
	s.Set(setWithGuest("c"))
	s.Undo()
	require.True(t, s.CanUndo())
	require.True(t, s.CanRedo())

	s.Hydrate(setWithGuest("server"))
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())
	assert.Equal(t, "server", s.Present()[0].GuestName)
}

func TestStore_ReplacePresentKeepsStacks(t *testing.T) {
	s := New(setWithGuest("a"))
	s.Set(setWithGuest("optimistic"))

	s.ReplacePresent(setWithGuest("confirmed"))
	assert.Equal(t, "confirmed", s.Present()[0].GuestName)
	assert.True(t, s.CanUndo())

	// Undo jumps over the reconciliation straight to the prior frame.
	s.Undo()
	assert.Equal(t, "a", s.Present()[0].GuestName)
}
