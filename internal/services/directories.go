package services

import "github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"

// The services accept their storage as narrow interfaces so the MySQL
// repositories and the in-memory stores are interchangeable.

type FlightDirectory interface {
	List() ([]models.Flight, error)
	ListAvailable() ([]models.Flight, error)
	SearchByOrigin(origin string) ([]models.Flight, error)
	SearchByDestination(destination string) ([]models.Flight, error)
	SearchByRoute(origin, destination string) ([]models.Flight, error)
	FindByID(id int64) (models.Flight, error)
	FindByNumber(flightNumber string) (models.Flight, error)
	Create(f models.Flight) (models.Flight, error)
	Update(f models.Flight) error
	Delete(id int64) error
	UpdateAvailableSeats(flightNumber string, availableSeats int) error
}

type UserDirectory interface {
	FindByID(id int64) (models.User, error)
	FindByEmail(email string) (models.User, error)
	EmailExists(email string) (bool, error)
	Create(u models.User) (models.User, error)
	Update(u models.User) error
}

type BookingStore interface {
	FindByID(id int64) (models.Booking, error)
	FindByReference(reference string) (models.Booking, error)
	ListByUser(userID int64) ([]models.Booking, error)
	ListByUserAndStatus(userID int64, status models.BookingStatus) ([]models.Booking, error)
	Create(b models.Booking) (models.Booking, error)
	Update(b models.Booking) error
	// MarkCancelled flips the booking to CANCELLED as one conditional
	// write, failing with a state error when it already is.
	MarkCancelled(id int64) (models.Booking, error)
	CreatePassenger(p models.Passenger) (models.Passenger, error)
	FindPassenger(id int64) (models.Passenger, error)
	DeletePassenger(id int64) error
}

// SeatInventory guards the seat counters. Reserve reports false when the
// flight is sold out.
type SeatInventory interface {
	Reserve(flightNumber string) (bool, error)
	Release(flightNumber string) error
	HasAvailability(flightNumber string) (bool, error)
}
