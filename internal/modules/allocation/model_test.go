package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapechart/internal/domain"
)

func fixtureSet() Set {
	return Set{
		{
			ID:        "res-1",
			Room:      "102",
			GuestName: "Jan Testowy",
			CheckIn:   "2026-03-30",
			CheckOut:  "2026-03-31",
			Status:    domain.ReservationConfirmed,
		},
		{
			ID:        "res-2",
			Room:      "104",
			GuestName: "Anna Nowak",
			CheckIn:   "2026-03-29",
			CheckOut:  "2026-04-02",
			Status:    domain.ReservationCheckedIn,
		},
		{
			ID:        "res-3",
			Room:      "102",
			GuestName: "Piotr Wiśniewski",
			CheckIn:   "2026-04-02",
			CheckOut:  "2026-04-04",
			Status:    domain.ReservationCancelled,
		},
	}
}

func cleanStatuses() domain.RoomStatuses {
	return domain.RoomStatuses{
		"102": domain.RoomClean,
		"104": domain.RoomClean,
		"106": domain.RoomClean,
	}
}

func TestCheckPlacement_Legal(t *testing.T) {
	set := fixtureSet()

	err := CheckPlacement(set, Placement{
		Room:     "106",
		CheckIn:  "2026-03-30",
		CheckOut: "2026-03-31",
	}, cleanStatuses())
	assert.NoError(t, err)
}

func TestCheckPlacement_InvalidDates(t *testing.T) {
	set := fixtureSet()

	for _, tc := range []struct{ in, out string }{
		{"2026-03-31", "2026-03-30"},
		{"2026-03-30", "2026-03-30"},
	} {
		err := CheckPlacement(set, Placement{
			Room:     "106",
			CheckIn:  tc.in,
			CheckOut: tc.out,
		}, cleanStatuses())
		assert.ErrorIs(t, err, ErrInvalidDates)
	}
}

func TestCheckPlacement_RoomGuard(t *testing.T) {
	set := fixtureSet()
	statuses := cleanStatuses()
	statuses["106"] = domain.RoomOutOfOrder

	err := CheckPlacement(set, Placement{
		Room:     "106",
		CheckIn:  "2026-03-30",
		CheckOut: "2026-03-31",
	}, statuses)
	assert.ErrorIs(t, err, ErrRoomNotUsable)

	statuses["106"] = domain.RoomDirty
	err = CheckPlacement(set, Placement{
		Room:     "106",
		CheckIn:  "2026-03-30",
		CheckOut: "2026-03-31",
	}, statuses)
	assert.ErrorIs(t, err, ErrRoomNotUsable)
}

// Invalid dates outrank the room guard, which outranks overlap.
func TestCheckPlacement_ReasonPriority(t *testing.T) {
	set := fixtureSet()
	statuses := cleanStatuses()
	statuses["102"] = domain.RoomOutOfOrder

	err := CheckPlacement(set, Placement{
		Room:     "102",
		CheckIn:  "2026-03-31",
		CheckOut: "2026-03-30",
	}, statuses)
	assert.ErrorIs(t, err, ErrInvalidDates)

	err = CheckPlacement(set, Placement{
		Room:     "102",
		CheckIn:  "2026-03-30",
		CheckOut: "2026-03-31",
	}, statuses)
	assert.ErrorIs(t, err, ErrRoomNotUsable)
}

func TestCheckPlacement_Overlap(t *testing.T) {
	set := fixtureSet()

	err := CheckPlacement(set, Placement{
		Room:     "102",
		CheckIn:  "2026-03-30",
		CheckOut: "2026-03-31",
	}, cleanStatuses())
	assert.ErrorIs(t, err, ErrOverlap)

	// Back-to-back is legal: check-out day equals the next check-in.
	err = CheckPlacement(set, Placement{
		Room:     "102",
		CheckIn:  "2026-03-31",
		CheckOut: "2026-04-02",
	}, cleanStatuses())
	assert.NoError(t, err)
}

func TestCheckPlacement_IgnoresCancelledAndSelf(t *testing.T) {
	set := fixtureSet()

	// res-3 is cancelled, its range is free.
	err := CheckPlacement(set, Placement{
		Room:     "102",
		CheckIn:  "2026-04-02",
		CheckOut: "2026-04-04",
	}, cleanStatuses())
	assert.NoError(t, err)

	// Moving res-2 inside its own range must not collide with itself.
	err = CheckPlacement(set, Placement{
		ReservationID: "res-2",
		Room:          "104",
		CheckIn:       "2026-03-30",
		CheckOut:      "2026-04-01",
	}, cleanStatuses())
	assert.NoError(t, err)
}

func TestMove_Pure(t *testing.T) {
	set := fixtureSet()

	next := Move(set, "res-1", "106", "2026-03-30", "2026-03-31")

	moved, ok := ByID(next, "res-1")
	require.True(t, ok)
	assert.Equal(t, "106", moved.Room)

	// The input set is untouched.
	orig, ok := ByID(set, "res-1")
	require.True(t, ok)
	assert.Equal(t, "102", orig.Room)
	assert.Len(t, next, len(set))
}

func TestCreateAndRemove_Pure(t *testing.T) {
	set := fixtureSet()

	created := Create(set, domain.Reservation{
		ID:       "res-4",
		Room:     "106",
		CheckIn:  "2026-03-30",
		CheckOut: "2026-03-31",
		Status:   domain.ReservationConfirmed,
	})
	assert.Len(t, created, 4)
	assert.Len(t, set, 3)

	removed := Remove(created, "res-4")
	assert.Len(t, removed, 3)
	assert.Len(t, created, 4)
	_, ok := ByID(removed, "res-4")
	assert.False(t, ok)
}

func TestReplace(t *testing.T) {
	set := fixtureSet()

	next := Replace(set, "res-1", domain.Reservation{
		ID:       "srv-77",
		Room:     "102",
		CheckIn:  "2026-03-30",
		CheckOut: "2026-03-31",
		Status:   domain.ReservationConfirmed,
	})

	_, ok := ByID(next, "res-1")
	assert.False(t, ok)
	_, ok = ByID(next, "srv-77")
	assert.True(t, ok)
	_, ok = ByID(set, "res-1")
	assert.True(t, ok)
}

func TestFindAt(t *testing.T) {
	set := fixtureSet()

	r, ok := FindAt(set, "102", "2026-03-30")
	require.True(t, ok)
	assert.Equal(t, "res-1", r.ID)

	// Check-out day is free for the departing stay.
	_, ok = FindAt(set, "102", "2026-03-31")
	assert.False(t, ok)

	// Cancelled stays do not occupy cells.
	_, ok = FindAt(set, "102", "2026-04-02")
	assert.False(t, ok)
}

func TestIsRoomUsable(t *testing.T) {
	assert.True(t, IsRoomUsable(domain.RoomClean))
	assert.False(t, IsRoomUsable(domain.RoomDirty))
	assert.False(t, IsRoomUsable(domain.RoomOutOfOrder))
}
