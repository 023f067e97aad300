package split

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"tapechart/internal/domain"
	"tapechart/internal/modules/allocation"
)

var (
	// ErrSplitDateOutOfRange means splitDate is not strictly inside the stay.
	ErrSplitDateOutOfRange = errors.New("split date must fall between check-in and check-out")
	// ErrNotFound means the reservation id is not in the set.
	ErrNotFound = allocation.ErrNotFound
)

// Result carries the two halves of a split. First keeps the original
// identifier; Second is brand new.
type Result struct {
	First  domain.Reservation
	Second domain.Reservation
	Set    allocation.Set
}

// Split partitions one stay into two contiguous stays at splitDate:
// the first keeps the original id and room with [checkIn, splitDate),
// the second covers [splitDate, checkOut) in the same room unless
// secondRoom names another one. Guest identity, group membership,
// privacy and status are copied to both halves.
//
// When secondRoom differs from the original room, the second half runs
// through the same legality gate as every other placement; on any
// violation the set is returned unchanged along with the error.
func Split(set allocation.Set, id, splitDate, secondRoom string, statuses domain.RoomStatuses) (Result, error) {
	orig, ok := allocation.ByID(set, id)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if splitDate <= orig.CheckIn || splitDate >= orig.CheckOut {
		return Result{}, fmt.Errorf("%w: %s is outside (%s, %s)",
			ErrSplitDateOutOfRange, splitDate, orig.CheckIn, orig.CheckOut)
	}

	room := orig.Room
	if secondRoom != "" && secondRoom != orig.Room {
		room = secondRoom
		if err := allocation.CheckPlacement(set, allocation.Placement{
			ReservationID: orig.ID,
			Room:          room,
			CheckIn:       splitDate,
			CheckOut:      orig.CheckOut,
		}, statuses); err != nil {
			return Result{}, err
		}
	}

	first := orig
	first.CheckOut = splitDate

	second := orig
	second.ID = uuid.NewString()
	second.Room = room
	second.CheckIn = splitDate

	next := allocation.Replace(set, orig.ID, first)
	next = allocation.Create(next, second)

	return Result{First: first, Second: second, Set: next}, nil
}
