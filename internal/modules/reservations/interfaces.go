package reservations

import (
	"context"

	"tapechart/internal/domain"
)

// ReservationRepository defines the persistence operations the service needs.
type ReservationRepository interface {
	List(ctx context.Context, from, to string) ([]domain.Reservation, error)
	GetByID(ctx context.Context, id string) (domain.Reservation, error)
	CountOverlapping(ctx context.Context, room, checkIn, checkOut, excludeID string) (int64, error)
	Create(ctx context.Context, r *domain.Reservation) error
	UpdatePlacement(ctx context.Context, id, room, checkIn, checkOut string) (domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (domain.Reservation, error)
	// Split rewrites the first half and inserts the second in one
	// transaction, so a crash can never leave a truncated stay without
	// its second half.
	Split(ctx context.Context, first, second domain.Reservation) error
}

// RoomRepository defines the room lookups the service needs.
type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
	GetByNumber(ctx context.Context, number string) (domain.Room, error)
}
