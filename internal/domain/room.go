package domain

// RoomStatus is the housekeeping state of a room. Only CLEAN rooms are
// sellable for new placements.
type RoomStatus string

const (
	RoomClean      RoomStatus = "CLEAN"
	RoomDirty      RoomStatus = "DIRTY"
	RoomOutOfOrder RoomStatus = "OUT_OF_ORDER"
)

// ValidRoomStatus reports whether s is one of the known housekeeping states.
func ValidRoomStatus(s RoomStatus) bool {
	switch s {
	case RoomClean, RoomDirty, RoomOutOfOrder:
		return true
	}
	return false
}

// Room is the grid's view of a physical room. The tape chart addresses
// rooms by Number (sortable numerically), never by database ID, so the
// grid stays decoupled from persistence identifiers.
type Room struct {
	ID            int64      `json:"id"`
	Number        string     `json:"number" validate:"required"`
	Type          string     `json:"type"`
	Status        RoomStatus `json:"status"`
	ActiveForSale bool       `json:"active_for_sale"`
}

// RoomStatuses is a housekeeping snapshot keyed by room number,
// refreshed independently of reservations via the roomsync signal.
type RoomStatuses map[string]RoomStatus
