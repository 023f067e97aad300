package housekeeping

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tapechart/internal/domain"
)

// Service owns housekeeping status writes. Every confirmed change is
// published so open grid views learn it without reloading reservations.
type Service struct {
	rooms     RoomRepository
	occupancy OccupancyChecker
	publisher StatusPublisher
}

func NewService(rooms RoomRepository, occupancy OccupancyChecker, publisher StatusPublisher) *Service {
	return &Service{rooms: rooms, occupancy: occupancy, publisher: publisher}
}

// ListRooms returns the full room inventory.
func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

// SetStatus writes a room's housekeeping status and broadcasts it. A
// room hosting a checked-in guest cannot be pulled out of order.
func (s *Service) SetStatus(ctx context.Context, number string, status domain.RoomStatus) (domain.Room, error) {
	if !domain.ValidRoomStatus(status) {
		return domain.Room{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if _, err := s.rooms.GetByNumber(ctx, number); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Room{}, fmt.Errorf("%w: %s", ErrRoomNotFound, number)
		}
		return domain.Room{}, err
	}

	if status == domain.RoomOutOfOrder {
		occupied, err := s.occupancy.HasCheckedInGuest(ctx, number)
		if err != nil {
			return domain.Room{}, err
		}
		if occupied {
			return domain.Room{}, fmt.Errorf("%w: %s", ErrRoomOccupied, number)
		}
	}

	room, err := s.rooms.UpdateStatus(ctx, number, status)
	if err != nil {
		return domain.Room{}, err
	}

	if s.publisher != nil {
		s.publisher.PublishRoomStatus(room.Number, room.Status)
	}
	return room, nil
}
