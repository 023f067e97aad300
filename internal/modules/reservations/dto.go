package reservations

type CreateReservationRequest struct {
	Room      string `json:"room" binding:"required"`
	GuestName string `json:"guest_name" binding:"required"`
	CheckIn   string `json:"check_in" binding:"required"`
	CheckOut  string `json:"check_out" binding:"required"`
	GroupID   string `json:"group_id"`
	Private   bool   `json:"private"`
}

type MoveReservationRequest struct {
	Room     string `json:"room" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

type SplitReservationRequest struct {
	SplitDate  string `json:"split_date" binding:"required"`
	SecondRoom string `json:"second_room"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SnapshotQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}
