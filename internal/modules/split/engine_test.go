package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapechart/internal/domain"
	"tapechart/internal/modules/allocation"
)

func fixture() (allocation.Set, domain.RoomStatuses) {
	set := allocation.Set{
		{
			ID:        "res-1",
			Room:      "106",
			GuestName: "Jan Testowy",
			GroupID:   "grp-9",
			CheckIn:   "2026-03-30",
			CheckOut:  "2026-04-01",
			Status:    domain.ReservationCheckedIn,
		},
		{
			ID:        "res-2",
			Room:      "108",
			GuestName: "Anna Nowak",
			CheckIn:   "2026-03-31",
			CheckOut:  "2026-04-02",
			Status:    domain.ReservationConfirmed,
		},
	}
	statuses := domain.RoomStatuses{
		"106": domain.RoomClean,
		"108": domain.RoomClean,
		"110": domain.RoomClean,
		"112": domain.RoomDirty,
	}
	return set, statuses
}

func TestSplit_SameRoom(t *testing.T) {
	set, statuses := fixture()

	res, err := Split(set, "res-1", "2026-03-31", "", statuses)
	require.NoError(t, err)

	assert.Equal(t, "res-1", res.First.ID)
	assert.Equal(t, "106", res.First.Room)
	assert.Equal(t, "2026-03-30", res.First.CheckIn)
	assert.Equal(t, "2026-03-31", res.First.CheckOut)

	assert.NotEqual(t, "res-1", res.Second.ID)
	assert.NotEmpty(t, res.Second.ID)
	assert.Equal(t, "106", res.Second.Room)
	assert.Equal(t, "2026-03-31", res.Second.CheckIn)
	assert.Equal(t, "2026-04-01", res.Second.CheckOut)

	// Guest identity, group and status copied to both halves.
	for _, half := range []domain.Reservation{res.First, res.Second} {
		assert.Equal(t, "Jan Testowy", half.GuestName)
		assert.Equal(t, "grp-9", half.GroupID)
		assert.Equal(t, domain.ReservationCheckedIn, half.Status)
	}

	// Re-union reconstructs the original range with zero gap or overlap.
	assert.Equal(t, res.First.CheckOut, res.Second.CheckIn)
	assert.Equal(t, "2026-03-30", res.First.CheckIn)
	assert.Equal(t, "2026-04-01", res.Second.CheckOut)
	assert.Len(t, res.Set, 3)
}

func TestSplit_SecondRoom(t *testing.T) {
	set, statuses := fixture()

	res, err := Split(set, "res-1", "2026-03-31", "110", statuses)
	require.NoError(t, err)
	assert.Equal(t, "106", res.First.Room)
	assert.Equal(t, "110", res.Second.Room)
}

func TestSplit_SecondRoomOccupied(t *testing.T) {
	set, statuses := fixture()

	// Room 108 holds res-2 over 2026-03-31..04-02, colliding with the
	// second half.
	_, err := Split(set, "res-1", "2026-03-31", "108", statuses)
	assert.ErrorIs(t, err, allocation.ErrOverlap)
}

func TestSplit_SecondRoomNotUsable(t *testing.T) {
	set, statuses := fixture()

	_, err := Split(set, "res-1", "2026-03-31", "112", statuses)
	assert.ErrorIs(t, err, allocation.ErrRoomNotUsable)
}

func TestSplit_DateOutOfRange(t *testing.T) {
	set, statuses := fixture()

	for _, date := range []string{"2026-03-30", "2026-04-01", "2026-03-29", "2026-04-05"} {
		_, err := Split(set, "res-1", date, "", statuses)
		assert.ErrorIs(t, err, ErrSplitDateOutOfRange, date)
	}
}

func TestSplit_UnknownReservation(t *testing.T) {
	set, statuses := fixture()

	_, err := Split(set, "missing", "2026-03-31", "", statuses)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSplit_RejectionLeavesSetUntouched(t *testing.T) {
	set, statuses := fixture()

	_, err := Split(set, "res-1", "2026-03-31", "108", statuses)
	require.Error(t, err)

	orig, ok := allocation.ByID(set, "res-1")
	require.True(t, ok)
	assert.Equal(t, "2026-04-01", orig.CheckOut)
	assert.Len(t, set, 2)
}
