package allocation

import "tapechart/internal/domain"

// IsRoomUsable is the room guard: only CLEAN rooms accept new
// placements (create, move, split-into). A room turning DIRTY or
// OUT_OF_ORDER never evicts the stays already sitting in it; the guard
// only fences off where new allocation may land.
func IsRoomUsable(status domain.RoomStatus) bool {
	return status == domain.RoomClean
}
