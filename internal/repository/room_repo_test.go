package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapechart/internal/database"
	"tapechart/internal/domain"
)

func TestRoomRepository_ListSortsNumerically(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	repo := NewRoomRepository(db)
	ctx := context.Background()

	// Inserted out of order on purpose; lexical text order would yield
	// 102, 15, 9.
	for _, number := range []string{"102", "9", "15", "201"} {
		room := domain.Room{Number: number, Type: "standard", Status: domain.RoomClean, ActiveForSale: true}
		require.NoError(t, repo.Create(ctx, &room))
	}

	rooms, err := repo.List(ctx)
	require.NoError(t, err)

	numbers := make([]string, 0, len(rooms))
	for _, r := range rooms {
		numbers = append(numbers, r.Number)
	}
	assert.Equal(t, []string{"9", "15", "102", "201"}, numbers)
}

func TestNaturalLess(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		less bool
	}{
		{"9", "15", true},
		{"15", "102", true},
		{"102", "15", false},
		{"102", "102", false},
		{"A-9", "A-12", true},
		{"A-12", "B-2", true},
		{"2", "2A", true},
		{"007", "7", true}, // equal value, more zeros first
	} {
		assert.Equal(t, tc.less, naturalLess(tc.a, tc.b), "%s < %s", tc.a, tc.b)
	}
}
