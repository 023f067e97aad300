package allocation

import (
	"fmt"

	"tapechart/internal/domain"
)

// Set is one rendered reservation list. It is the unit of undo/redo:
// every mutating operation returns a fresh slice and leaves its input
// untouched, so history frames stay valid snapshots.
type Set []domain.Reservation

// Placement describes a proposed landing spot for a stay.
type Placement struct {
	// ReservationID is empty for a brand-new stay, otherwise the stay
	// being moved (it is excluded from its own overlap check).
	ReservationID string
	Room          string
	CheckIn       string
	CheckOut      string
}

// CheckPlacement is the single legality gate. Every path that lands a
// stay on the grid (drop, keyboard move, create, split-into) must pass
// through here; there is no second gate. Reasons are checked in fixed
// priority order: invalid dates, then the room guard, then overlap.
//
// The check and a later apply are not atomic against concurrent edits
// from other sessions; callers re-validate immediately before applying.
func CheckPlacement(set Set, p Placement, statuses domain.RoomStatuses) error {
	if p.CheckOut <= p.CheckIn {
		return ErrInvalidDates
	}
	if status, ok := statuses[p.Room]; ok && !IsRoomUsable(status) {
		return fmt.Errorf("%w: room %s is %s", ErrRoomNotUsable, p.Room, status)
	}
	for _, r := range set {
		if r.ID == p.ReservationID || r.Room != p.Room || !r.Active() {
			continue
		}
		if r.Overlaps(p.CheckIn, p.CheckOut) {
			return fmt.Errorf("%w: room %s, %s occupies %s to %s",
				ErrOverlap, p.Room, r.GuestName, r.CheckIn, r.CheckOut)
		}
	}
	return nil
}

// Move relocates one stay to a new room and date range. Pure: the input
// set is never mutated. Callers must have passed CheckPlacement first.
func Move(set Set, id, room, checkIn, checkOut string) Set {
	next := make(Set, len(set))
	copy(next, set)
	for i := range next {
		if next[i].ID == id {
			next[i].Room = room
			next[i].CheckIn = checkIn
			next[i].CheckOut = checkOut
			break
		}
	}
	return next
}

// Create appends a stay, returning a new set.
func Create(set Set, r domain.Reservation) Set {
	next := make(Set, len(set), len(set)+1)
	copy(next, set)
	return append(next, r)
}

// Remove drops the stay with the given id, returning a new set.
func Remove(set Set, id string) Set {
	next := make(Set, 0, len(set))
	for _, r := range set {
		if r.ID != id {
			next = append(next, r)
		}
	}
	return next
}

// Replace swaps the stay with prev's id for next. Used when the server
// confirms an optimistic change and the canonical record (real id,
// server-filled fields) must take the optimistic one's place.
func Replace(set Set, prevID string, next domain.Reservation) Set {
	out := make(Set, len(set))
	copy(out, set)
	for i := range out {
		if out[i].ID == prevID {
			out[i] = next
			break
		}
	}
	return out
}

// ByID finds a stay by id.
func ByID(set Set, id string) (domain.Reservation, bool) {
	for _, r := range set {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Reservation{}, false
}

// FindAt returns the active stay occupying the night starting on date
// in the given room, if any. Drives cell clicks and keyboard lookups.
func FindAt(set Set, room, date string) (domain.Reservation, bool) {
	for _, r := range set {
		if r.Room == room && r.Active() && r.Occupies(date) {
			return r, true
		}
	}
	return domain.Reservation{}, false
}
