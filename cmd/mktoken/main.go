package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"tapechart/internal/config"
	jwtsvc "tapechart/internal/pkg/jwt"
)

// mktoken prints a signed staff token for local development and the
// websocket ?token= parameter. There is no login endpoint; staff
// identity is issued out of band.
func main() {
	userID := flag.Int64("user", 1, "staff user id")
	role := flag.String("role", "frontdesk", "staff role: frontdesk, housekeeping or manager")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	token, err := j.GenerateToken(*userID, *role)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
