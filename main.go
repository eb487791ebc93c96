package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "github.com/Yarwood-cmd/texas-airport-fullstack/internal/config"
	router "github.com/Yarwood-cmd/texas-airport-fullstack/internal/http"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/http/handlers"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/inventory"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/repositories"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/seed"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/services"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	var (
		flightDir  services.FlightDirectory
		userDir    services.UserDirectory
		bookingDir services.BookingStore
		seatStore  inventory.FlightStore
	)

	if env.MySQLDSN != "" {
		db, err := intconfig.ConnectDB(env.MySQLDSN)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer intconfig.CloseDB()

		if err := repositories.EnsureSchema(db); err != nil {
			log.Fatalf("Failed to prepare schema: %v", err)
		}

		flightRepo := repositories.FlightRepository{DB: db}
		flightDir = flightRepo
		userDir = repositories.UserRepository{DB: db}
		bookingDir = repositories.BookingRepository{DB: db}
		seatStore = flightRepo
	} else {
		log.Println("MYSQL_DSN not set, running with in-memory storage (demo mode)")
		flights := repositories.NewMemoryFlightStore()
		flightDir = flights
		userDir = repositories.NewMemoryUserStore()
		bookingDir = repositories.NewMemoryBookingStore()
		seatStore = flights
	}

	if env.SeedOnStart {
		if err := seed.Run(flightDir, userDir); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
	}

	bookingSvc := services.BookingService{
		Flights:   flightDir,
		Users:     userDir,
		Bookings:  bookingDir,
		Inventory: inventory.New(seatStore),
		Refs:      services.NewReferenceGenerator(),
	}
	handler := handlers.Handler{
		Auth:     services.AuthService{Users: userDir, JWTSecret: []byte(env.JWTSecret)},
		Flights:  services.FlightService{Flights: flightDir},
		Bookings: bookingSvc,
		Docs:     services.DocsService{Bookings: bookingSvc},
	}

	r := router.NewRouter(env, handler)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
