package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tapechart/internal/domain"
)

func TestValidate_Reservation(t *testing.T) {
	valid := domain.Reservation{
		ID:        "res-1",
		Room:      "102",
		GuestName: "Jan Testowy",
		CheckIn:   "2026-03-30",
		CheckOut:  "2026-03-31",
		Status:    domain.ReservationConfirmed,
	}
	assert.Nil(t, Validate(valid))

	missing := valid
	missing.GuestName = ""
	missing.Room = ""
	fields := Validate(missing)
	assert.Equal(t, "required", fields["GuestName"])
	assert.Equal(t, "required", fields["Room"])
	assert.NotContains(t, fields, "CheckIn")
}
