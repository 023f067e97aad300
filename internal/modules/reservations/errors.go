package reservations

import "errors"

var (
	ErrNotFound                = errors.New("reservation not found")
	ErrValidation              = errors.New("validation error")
	ErrConflict                = errors.New("reservation conflict")
	ErrRoomBlocked             = errors.New("room is out of order")
	ErrRoomUnknown             = errors.New("room not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
