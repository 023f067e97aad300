package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"tapechart/internal/config"
	"tapechart/internal/database"
	"tapechart/internal/domain"
	"tapechart/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM rooms")

	ctx := context.Background()
	rooms := repository.NewRoomRepository(db)
	reservations := repository.NewReservationRepository(db)

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	type roomSeed struct {
		number string
		typ    string
		status domain.RoomStatus
	}
	roomSeeds := []roomSeed{
		{"101", "STANDARD", domain.RoomClean},
		{"102", "STANDARD", domain.RoomClean},
		{"103", "STANDARD", domain.RoomDirty},
		{"104", "STANDARD", domain.RoomClean},
		{"105", "STANDARD", domain.RoomOutOfOrder},
		{"106", "DELUXE", domain.RoomClean},
		{"107", "DELUXE", domain.RoomClean},
		{"108", "DELUXE", domain.RoomDirty},
		{"201", "SUITE", domain.RoomClean},
		{"202", "SUITE", domain.RoomClean},
	}
	for _, s := range roomSeeds {
		room := domain.Room{
			Number:        s.number,
			Type:          s.typ,
			Status:        s.status,
			ActiveForSale: true,
		}
		if err := rooms.Create(ctx, &room); err != nil {
			log.Fatalf("seed room %s: %v", s.number, err)
		}
	}

	// ================== RESERVATIONS ==================
	log.Println("Creating reservations...")

	groupID := uuid.NewString()
	seeds := []domain.Reservation{
		{Room: "102", GuestName: "Jan Testowy", CheckIn: "2026-03-30", CheckOut: "2026-03-31", Status: domain.ReservationConfirmed},
		{Room: "104", GuestName: "Anna Nowak", CheckIn: "2026-03-29", CheckOut: "2026-04-02", Status: domain.ReservationCheckedIn},
		{Room: "101", GuestName: "Piotr Wolny", CheckIn: "2026-03-28", CheckOut: "2026-03-30", Status: domain.ReservationCheckedOut},
		{Room: "106", GuestName: "Maria Kowalska", CheckIn: "2026-04-01", CheckOut: "2026-04-04", Status: domain.ReservationConfirmed},
		{Room: "201", GuestName: "Conference Group A", CheckIn: "2026-03-30", CheckOut: "2026-04-02", Status: domain.ReservationConfirmed, GroupID: groupID},
		{Room: "202", GuestName: "Conference Group A", CheckIn: "2026-03-30", CheckOut: "2026-04-02", Status: domain.ReservationConfirmed, GroupID: groupID},
		{Room: "107", GuestName: "VIP Guest", CheckIn: "2026-03-31", CheckOut: "2026-04-03", Status: domain.ReservationConfirmed, Private: true},
		// Released nights: cancelled stays keep their row but free the room.
		{Room: "102", GuestName: "Odwolana Rezerwacja", CheckIn: "2026-04-02", CheckOut: "2026-04-05", Status: domain.ReservationCancelled},
	}
	for i := range seeds {
		seeds[i].ID = uuid.NewString()
		if err := reservations.Create(ctx, &seeds[i]); err != nil {
			log.Fatalf("seed reservation for %s: %v", seeds[i].GuestName, err)
		}
	}

	log.Printf("Seed complete: %d rooms, %d reservations", len(roomSeeds), len(seeds))
}
