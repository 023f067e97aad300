package history

import "tapechart/internal/modules/allocation"

// MaxDepth bounds the past stack. Whole-set snapshots make undo a
// single uniform rule for moves, creates and splits (which all change
// set membership), at the cost of at most MaxDepth copies of a small
// list.
const MaxDepth = 5

// Store is the linear undo/redo container owning one view's current
// reservation set. Not safe for concurrent use; each open grid view
// constructs its own Store and drives it from a single goroutine.
type Store struct {
	present allocation.Set
	past    []allocation.Set
	future  []allocation.Set
}

// New seeds a store with the initial snapshot and empty stacks.
func New(initial allocation.Set) *Store {
	return &Store{present: initial}
}

// Present returns the current reservation set.
func (s *Store) Present() allocation.Set { return s.present }

// CanUndo reports whether an undo frame exists.
func (s *Store) CanUndo() bool { return len(s.past) > 0 }

// CanRedo reports whether a redo frame exists.
func (s *Store) CanRedo() bool { return len(s.future) > 0 }

// Set installs next as the present set, pushing the outgoing present
// onto the past stack (trimmed to MaxDepth) and clearing future.
// Passing the identical slice back is a no-op: mutating operations
// always produce a fresh slice, so identity means nothing changed.
func (s *Store) Set(next allocation.Set) {
	if sameSlice(next, s.present) {
		return
	}
	s.past = append(s.past, s.present)
	if len(s.past) > MaxDepth {
		s.past = s.past[len(s.past)-MaxDepth:]
	}
	s.present = next
	s.future = nil
}

// Undo restores the most recent past frame, moving the outgoing
// present to the front of future. No-op when the past is empty.
func (s *Store) Undo() {
	if len(s.past) == 0 {
		return
	}
	top := s.past[len(s.past)-1]
	s.past = s.past[:len(s.past)-1]
	s.future = append([]allocation.Set{s.present}, s.future...)
	s.present = top
}

// Redo is the symmetric inverse of Undo.
func (s *Store) Redo() {
	if len(s.future) == 0 {
		return
	}
	next := s.future[0]
	s.future = s.future[1:]
	s.past = append(s.past, s.present)
	s.present = next
}

// Hydrate replaces the present set and clears both stacks. Used when
// the server pushes a fresh snapshot that must not be undoable past.
func (s *Store) Hydrate(set allocation.Set) {
	s.present = set
	s.past = nil
	s.future = nil
}

// ResetToInitial is Hydrate under its view-mount name.
func (s *Store) ResetToInitial(set allocation.Set) { s.Hydrate(set) }

// ReplacePresent swaps the present set without creating an undo point.
// Used for server reconciliation of an optimistic change (id backfill),
// which must not cost the user an undo frame.
func (s *Store) ReplacePresent(set allocation.Set) {
	s.present = set
}

// sameSlice is the Go rendition of reference equality on the snapshot:
// same backing array and length. Empty sets have no backing element to
// compare, and two empty sets hold identical content anyway, so any
// empty-for-empty Set is a no-op.
func sameSlice(a, b allocation.Set) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
