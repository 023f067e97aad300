package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tapechart/internal/config"
	"tapechart/internal/database"
	"tapechart/internal/middleware"
	"tapechart/internal/modules/housekeeping"
	"tapechart/internal/modules/reservations"
	"tapechart/internal/modules/roomsync"
	jwtsvc "tapechart/internal/pkg/jwt"
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
		log.Fatal(err)
	}

	roomRepo := repository.NewRoomRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	bus := roomsync.NewBus()
	hub := roomsync.NewHub()
	go hub.Relay(bus)

	reservationService := reservations.NewService(reservationRepo, roomRepo)
	reservationHandler := reservations.NewHandler(reservationService)

	housekeepingService := housekeeping.NewService(roomRepo, reservationRepo, bus)
	housekeepingHandler := housekeeping.NewHandler(housekeepingService)

	wsHandler := roomsync.NewWSHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// websocket authenticates via ?token=, outside JWTAuth
		wsHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			housekeepingHandler.RegisterRoutes(protected)

			desk := protected.Group("/")
			desk.Use(middleware.RequireRole("frontdesk", "manager"))
			{
				reservationHandler.RegisterRoutes(desk)
			}
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
