package domain

// ReservationStatus drives both lifecycle rules and bar color on the grid.
type ReservationStatus string

const (
	ReservationConfirmed  ReservationStatus = "CONFIRMED"
	ReservationCheckedIn  ReservationStatus = "CHECKED_IN"
	ReservationCheckedOut ReservationStatus = "CHECKED_OUT"
	ReservationCancelled  ReservationStatus = "CANCELLED"
	ReservationNoShow     ReservationStatus = "NO_SHOW"
)

// ValidReservationStatus reports whether s is one of the known lifecycle states.
func ValidReservationStatus(s ReservationStatus) bool {
	switch s {
	case ReservationConfirmed, ReservationCheckedIn, ReservationCheckedOut,
		ReservationCancelled, ReservationNoShow:
		return true
	}
	return false
}

// Reservation is one stay on the grid. CheckIn and CheckOut are calendar
// dates (YYYY-MM-DD); CheckOut is exclusive, so the stay occupies the
// nights [CheckIn, CheckOut). Room references the room by number.
type Reservation struct {
	ID        string            `json:"id"`
	Room      string            `json:"room" validate:"required"`
	GuestName string            `json:"guest_name" validate:"required"`
	CheckIn   string            `json:"check_in" validate:"required"`
	CheckOut  string            `json:"check_out" validate:"required"`
	Status    ReservationStatus `json:"status"`
	GroupID   string            `json:"group_id,omitempty"`
	// Private masks the guest name in shared views.
	Private bool `json:"private,omitempty"`
}

// Active reports whether the reservation still holds its room.
// Cancelled and no-show stays release their nights.
func (r Reservation) Active() bool {
	return r.Status != ReservationCancelled && r.Status != ReservationNoShow
}

// Occupies reports whether the stay covers the night starting on date.
// Date strings compare lexically because the format is fixed-width.
func (r Reservation) Occupies(date string) bool {
	return r.CheckIn <= date && date < r.CheckOut
}

// Overlaps reports whether two half-open date ranges intersect.
func (r Reservation) Overlaps(checkIn, checkOut string) bool {
	return r.CheckIn < checkOut && checkIn < r.CheckOut
}

// Snapshot is the unit the persistence collaborator hands to a view on
// mount: the rooms to draw and the reservations to place on them.
type Snapshot struct {
	Rooms        []Room        `json:"rooms"`
	Reservations []Reservation `json:"reservations"`
}
