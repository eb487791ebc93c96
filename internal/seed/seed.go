package seed

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/fare"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/services"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/utils"
)

var flights = []models.Flight{
	{FlightNumber: "TX101", Origin: "Dallas", Destination: "Austin", DepartureTime: "08:00 AM", Capacity: 150, BasePrice: 199.99},
	{FlightNumber: "TX102", Origin: "Houston", Destination: "San Antonio", DepartureTime: "10:30 AM", Capacity: 120, BasePrice: 149.99},
	{FlightNumber: "TX103", Origin: "Austin", Destination: "Dallas", DepartureTime: "02:00 PM", Capacity: 150, BasePrice: 199.99},
	{FlightNumber: "TX104", Origin: "El Paso", Destination: "Lubbock", DepartureTime: "09:15 AM", Capacity: 80, BasePrice: 129.99},
	{FlightNumber: "TX105", Origin: "Corpus Christi", Destination: "Amarillo", DepartureTime: "11:45 AM", Capacity: 100, BasePrice: 179.99},
	{FlightNumber: "TX106", Origin: "Dallas", Destination: "Houston", DepartureTime: "07:00 AM", Capacity: 180, BasePrice: 159.99},
	{FlightNumber: "TX107", Origin: "San Antonio", Destination: "Austin", DepartureTime: "09:00 AM", Capacity: 100, BasePrice: 89.99},
	{FlightNumber: "TX108", Origin: "Houston", Destination: "Dallas", DepartureTime: "03:30 PM", Capacity: 180, BasePrice: 159.99},
	{FlightNumber: "TX109", Origin: "Austin", Destination: "El Paso", DepartureTime: "12:00 PM", Capacity: 120, BasePrice: 229.99},
	{FlightNumber: "TX110", Origin: "Lubbock", Destination: "Dallas", DepartureTime: "04:00 PM", Capacity: 80, BasePrice: 149.99},
}

type seedUser struct {
	name         string
	email        string
	password     string
	phone        string
	customerType models.CustomerType
	miles        int
	role         models.Role
}

var users = []seedUser{
	{name: "Admin", email: "admin@texasairport.com", password: "admin123", phone: "555-0001", customerType: models.CustomerRegular, role: models.RoleAdmin},
	{name: "John Doe", email: "john@example.com", password: "password123", phone: "555-0100", customerType: models.CustomerRegular, role: models.RoleUser},
	{name: "Jane Smith", email: "jane@example.com", password: "password123", phone: "555-0101", customerType: models.CustomerFrequentFlyer, miles: 30000, role: models.RoleUser},
}

// Run loads the demo flights and accounts. Records that already exist
// are left untouched, so running it on every start is safe.
func Run(flightDir services.FlightDirectory, userDir services.UserDirectory) error {
	for _, f := range flights {
		_, err := flightDir.FindByNumber(f.FlightNumber)
		if err == nil {
			continue
		}
		if !domain.IsNotFound(err) {
			return fmt.Errorf("seed flight %s: %w", f.FlightNumber, err)
		}
		f.AvailableSeats = f.Capacity
		if _, err := flightDir.Create(f); err != nil {
			return fmt.Errorf("seed flight %s: %w", f.FlightNumber, err)
		}
	}

	for _, u := range users {
		exists, err := userDir.EmailExists(u.email)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
		if exists {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
		level := models.MembershipNone
		if u.customerType == models.CustomerFrequentFlyer {
			level = fare.MembershipLevelFor(u.miles)
		}
		if _, err := userDir.Create(models.User{
			Name:            u.name,
			Email:           u.email,
			PasswordHash:    string(hash),
			PhoneNumber:     u.phone,
			CustomerType:    u.customerType,
			MilesFlown:      u.miles,
			MembershipLevel: level,
			Role:            u.role,
		}); err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}

	utils.LogEvent("", "seed", "done", fmt.Sprintf("%d flights, %d users", len(flights), len(users)))
	return nil
}
