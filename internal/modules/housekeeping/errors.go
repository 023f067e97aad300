package housekeeping

import "errors"

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrInvalidStatus = errors.New("invalid room status")
	ErrRoomOccupied  = errors.New("room has a checked-in guest")
)
