package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"tapechart/internal/domain"
	"tapechart/internal/modules/dategrid"
	"tapechart/internal/pkg/validator"
)

// Service is the server-side authority on reservation placement. The
// grid controller validates optimistically against its own snapshot;
// this service re-validates against the database: when two sessions
// drop into the same nights, the later request fails the overlap check
// with ErrConflict.
type Service struct {
	reservations ReservationRepository
	rooms        RoomRepository
}

func NewService(reservations ReservationRepository, rooms RoomRepository) *Service {
	return &Service{reservations: reservations, rooms: rooms}
}

// Snapshot returns the rooms and the reservations intersecting
// [from, to). Empty bounds load everything.
func (s *Service) Snapshot(ctx context.Context, from, to string) (domain.Snapshot, error) {
	if from != "" {
		if _, err := dategrid.ParseDate(from); err != nil {
			return domain.Snapshot{}, fmt.Errorf("%w: invalid from date %q", ErrValidation, from)
		}
	}
	if to != "" {
		if _, err := dategrid.ParseDate(to); err != nil {
			return domain.Snapshot{}, fmt.Errorf("%w: invalid to date %q", ErrValidation, to)
		}
	}

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	list, err := s.reservations.List(ctx, from, to)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return domain.Snapshot{Rooms: rooms, Reservations: list}, nil
}

// Get returns one reservation.
func (s *Service) Get(ctx context.Context, id string) (domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, mapNotFound(err)
	}
	return r, nil
}

// Create lands a brand-new stay after full server-side validation.
func (s *Service) Create(ctx context.Context, req CreateReservationRequest) (domain.Reservation, error) {
	if err := validateRange(req.CheckIn, req.CheckOut); err != nil {
		return domain.Reservation{}, err
	}
	if req.GuestName == "" {
		return domain.Reservation{}, fmt.Errorf("%w: guest name is required", ErrValidation)
	}
	if err := s.checkRoom(ctx, req.Room); err != nil {
		return domain.Reservation{}, err
	}
	if err := s.checkOverlap(ctx, req.Room, req.CheckIn, req.CheckOut, ""); err != nil {
		return domain.Reservation{}, err
	}

	r := domain.Reservation{
		ID:        uuid.NewString(),
		Room:      req.Room,
		GuestName: req.GuestName,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Status:    domain.ReservationConfirmed,
		GroupID:   req.GroupID,
		Private:   req.Private,
	}
	if fields := validator.Validate(r); fields != nil {
		return domain.Reservation{}, fmt.Errorf("%w: %v", ErrValidation, fields)
	}
	if err := s.reservations.Create(ctx, &r); err != nil {
		return domain.Reservation{}, mapConflict(err)
	}
	return r, nil
}

// Move relocates a stay. The overlap query excludes the stay itself so
// shrinking or shifting within its own range is always legal.
func (s *Service) Move(ctx context.Context, id, room, checkIn, checkOut string) (domain.Reservation, error) {
	if err := validateRange(checkIn, checkOut); err != nil {
		return domain.Reservation{}, err
	}
	if _, err := s.reservations.GetByID(ctx, id); err != nil {
		return domain.Reservation{}, mapNotFound(err)
	}
	if err := s.checkRoom(ctx, room); err != nil {
		return domain.Reservation{}, err
	}
	if err := s.checkOverlap(ctx, room, checkIn, checkOut, id); err != nil {
		return domain.Reservation{}, err
	}

	updated, err := s.reservations.UpdatePlacement(ctx, id, room, checkIn, checkOut)
	if err != nil {
		return domain.Reservation{}, mapConflict(err)
	}
	return updated, nil
}

// Split partitions a stay at splitDate. The first half keeps the id
// with its check-out truncated; the second half is a new reservation
// starting at splitDate, in secondRoom when given, carrying over guest,
// group and privacy. Both writes commit in one transaction.
func (s *Service) Split(ctx context.Context, id, splitDate, secondRoom string) (domain.Reservation, domain.Reservation, error) {
	orig, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, domain.Reservation{}, mapNotFound(err)
	}
	if _, err := dategrid.ParseDate(splitDate); err != nil {
		return domain.Reservation{}, domain.Reservation{}, fmt.Errorf("%w: invalid split date %q", ErrValidation, splitDate)
	}
	if splitDate <= orig.CheckIn || splitDate >= orig.CheckOut {
		return domain.Reservation{}, domain.Reservation{},
			fmt.Errorf("%w: split date must fall strictly inside %s to %s", ErrValidation, orig.CheckIn, orig.CheckOut)
	}

	room := secondRoom
	if room == "" {
		room = orig.Room
	}
	if room != orig.Room {
		if err := s.checkRoom(ctx, room); err != nil {
			return domain.Reservation{}, domain.Reservation{}, err
		}
		if err := s.checkOverlap(ctx, room, splitDate, orig.CheckOut, orig.ID); err != nil {
			return domain.Reservation{}, domain.Reservation{}, err
		}
	}

	first := orig
	first.CheckOut = splitDate

	second := domain.Reservation{
		ID:        uuid.NewString(),
		Room:      room,
		GuestName: orig.GuestName,
		CheckIn:   splitDate,
		CheckOut:  orig.CheckOut,
		Status:    orig.Status,
		GroupID:   orig.GroupID,
		Private:   orig.Private,
	}

	if err := s.reservations.Split(ctx, first, second); err != nil {
		return domain.Reservation{}, domain.Reservation{}, mapConflict(err)
	}
	return first, second, nil
}

// UpdateStatus advances the lifecycle. Allowed transitions:
// CONFIRMED -> CHECKED_IN, CANCELLED or NO_SHOW; CHECKED_IN -> CHECKED_OUT.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (domain.Reservation, error) {
	if !domain.ValidReservationStatus(status) {
		return domain.Reservation{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, mapNotFound(err)
	}
	if !allowedTransition(r.Status, status) {
		return domain.Reservation{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, r.Status, status)
	}
	// No check-in into a room pulled from inventory.
	if status == domain.ReservationCheckedIn {
		if err := s.checkRoom(ctx, r.Room); err != nil {
			return domain.Reservation{}, err
		}
	}
	updated, err := s.reservations.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Reservation{}, err
	}
	return updated, nil
}

func allowedTransition(from, to domain.ReservationStatus) bool {
	switch from {
	case domain.ReservationConfirmed:
		return to == domain.ReservationCheckedIn ||
			to == domain.ReservationCancelled ||
			to == domain.ReservationNoShow
	case domain.ReservationCheckedIn:
		return to == domain.ReservationCheckedOut
	}
	return false
}

func validateRange(checkIn, checkOut string) error {
	if _, err := dategrid.ParseDate(checkIn); err != nil {
		return fmt.Errorf("%w: invalid check-in date %q", ErrValidation, checkIn)
	}
	if _, err := dategrid.ParseDate(checkOut); err != nil {
		return fmt.Errorf("%w: invalid check-out date %q", ErrValidation, checkOut)
	}
	if checkOut <= checkIn {
		return fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	}
	return nil
}

// checkRoom rejects unknown rooms and rooms pulled from inventory.
// DIRTY rooms pass here: the server guards physical availability only,
// the stricter sellability rule lives in the grid's room guard.
func (s *Service) checkRoom(ctx context.Context, number string) error {
	room, err := s.rooms.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrRoomUnknown, number)
		}
		return err
	}
	if room.Status == domain.RoomOutOfOrder {
		return fmt.Errorf("%w: %s", ErrRoomBlocked, number)
	}
	return nil
}

func (s *Service) checkOverlap(ctx context.Context, room, checkIn, checkOut, excludeID string) error {
	cnt, err := s.reservations.CountOverlapping(ctx, room, checkIn, checkOut, excludeID)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return fmt.Errorf("%w: room %s already has a reservation between %s and %s",
			ErrConflict, room, checkIn, checkOut)
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// mapConflict translates a postgres unique-constraint violation
// (duplicate id on a retried create) into ErrConflict so callers see
// one conflict error instead of a driver error. Overlap protection
// comes from the CountOverlapping check; the schema carries no
// exclusion constraint over date ranges.
func mapConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrConflict
	}
	return err
}
