package housekeeping

import (
	"context"

	"tapechart/internal/domain"
)

// RoomRepository defines the room persistence the service needs.
type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
	GetByNumber(ctx context.Context, number string) (domain.Room, error)
	UpdateStatus(ctx context.Context, number string, status domain.RoomStatus) (domain.Room, error)
}

// OccupancyChecker answers whether a room currently hosts a checked-in
// guest, which blocks pulling it out of order.
type OccupancyChecker interface {
	HasCheckedInGuest(ctx context.Context, room string) (bool, error)
}

// StatusPublisher pushes confirmed status changes to other surfaces.
type StatusPublisher interface {
	PublishRoomStatus(room string, status domain.RoomStatus)
}
