package allocation

import "errors"

var (
	// ErrInvalidDates means checkOut is not after checkIn.
	ErrInvalidDates = errors.New("check-out must be after check-in")
	// ErrRoomNotUsable means the room guard rejected the target room.
	ErrRoomNotUsable = errors.New("room is not sellable in its current housekeeping state")
	// ErrOverlap means the target range collides with another active stay.
	ErrOverlap = errors.New("room is already occupied in the requested date range")
	// ErrNotFound means the reservation id is not in the set.
	ErrNotFound = errors.New("reservation not found")
)
