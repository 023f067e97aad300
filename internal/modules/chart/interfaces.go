package chart

import (
	"context"

	"tapechart/internal/domain"
)

// SnapshotFilter narrows the initial load to a date range (YYYY-MM-DD,
// To exclusive). Zero value loads everything.
type SnapshotFilter struct {
	From string
	To   string
}

// Client is the persistence collaborator the controller talks to. Every
// mutation is tentative until the client confirms it; a failed call is
// rolled back, never ignored. Implementations must return user-facing
// reason messages in their errors — the controller surfaces them
// verbatim.
type Client interface {
	LoadSnapshot(ctx context.Context, filter SnapshotFilter) (domain.Snapshot, error)
	MoveReservation(ctx context.Context, id, room, checkIn, checkOut string) (domain.Reservation, error)
	CreateReservation(ctx context.Context, draft domain.Reservation) (domain.Reservation, error)
	SplitReservation(ctx context.Context, id, splitDate, secondRoom string) (first, second domain.Reservation, err error)
	UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) (domain.Reservation, error)
	RoomStatuses(ctx context.Context) (domain.RoomStatuses, error)
}
