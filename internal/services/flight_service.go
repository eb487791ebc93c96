package services

import (
	"strings"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/utils"
)

type FlightService struct {
	Flights   FlightDirectory
	RequestID string
}

func (s FlightService) WithRequestID(requestID string) FlightService {
	s.RequestID = requestID
	return s
}

type FlightInput struct {
	FlightNumber  string  `json:"flight_number"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureTime string  `json:"departure_time"`
	Capacity      int     `json:"capacity"`
	BasePrice     float64 `json:"base_price"`
}

func (in FlightInput) validate() error {
	if strings.TrimSpace(in.FlightNumber) == "" {
		return domain.ValidationError{Field: "flight_number", Msg: "required"}
	}
	if strings.TrimSpace(in.Origin) == "" {
		return domain.ValidationError{Field: "origin", Msg: "required"}
	}
	if strings.TrimSpace(in.Destination) == "" {
		return domain.ValidationError{Field: "destination", Msg: "required"}
	}
	if in.Capacity <= 0 {
		return domain.ValidationError{Field: "capacity", Msg: "must be positive"}
	}
	if in.BasePrice < 0 {
		return domain.ValidationError{Field: "base_price", Msg: "must not be negative"}
	}
	return nil
}

func (s FlightService) List() ([]models.Flight, error) {
	return s.Flights.List()
}

func (s FlightService) ListAvailable() ([]models.Flight, error) {
	return s.Flights.ListAvailable()
}

// Search filters flights by origin and/or destination. Empty filters
// fall back to the full list.
func (s FlightService) Search(origin, destination string) ([]models.Flight, error) {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)
	switch {
	case origin != "" && destination != "":
		return s.Flights.SearchByRoute(origin, destination)
	case origin != "":
		return s.Flights.SearchByOrigin(origin)
	case destination != "":
		return s.Flights.SearchByDestination(destination)
	}
	return s.Flights.List()
}

func (s FlightService) FindByID(id int64) (models.Flight, error) {
	if id <= 0 {
		return models.Flight{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	return s.Flights.FindByID(id)
}

func (s FlightService) FindByNumber(flightNumber string) (models.Flight, error) {
	flightNumber = strings.TrimSpace(flightNumber)
	if flightNumber == "" {
		return models.Flight{}, domain.ValidationError{Field: "flight_number", Msg: "required"}
	}
	return s.Flights.FindByNumber(flightNumber)
}

// Create registers a new flight with all seats available.
func (s FlightService) Create(in FlightInput) (models.Flight, error) {
	if err := in.validate(); err != nil {
		return models.Flight{}, err
	}
	flight, err := s.Flights.Create(models.Flight{
		FlightNumber:   strings.ToUpper(strings.TrimSpace(in.FlightNumber)),
		Origin:         strings.TrimSpace(in.Origin),
		Destination:    strings.TrimSpace(in.Destination),
		DepartureTime:  strings.TrimSpace(in.DepartureTime),
		Capacity:       in.Capacity,
		AvailableSeats: in.Capacity,
		BasePrice:      utils.RoundCents(in.BasePrice),
	})
	if err != nil {
		return models.Flight{}, err
	}
	utils.LogEvent(s.RequestID, "flight", "created", flight.FlightNumber)
	return flight, nil
}

// Update changes flight details. Capacity and the seat counter are left
// alone; inventory owns those.
func (s FlightService) Update(id int64, in FlightInput) (models.Flight, error) {
	if id <= 0 {
		return models.Flight{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	if err := in.validate(); err != nil {
		return models.Flight{}, err
	}
	existing, err := s.Flights.FindByID(id)
	if err != nil {
		return models.Flight{}, err
	}
	existing.Origin = strings.TrimSpace(in.Origin)
	existing.Destination = strings.TrimSpace(in.Destination)
	existing.DepartureTime = strings.TrimSpace(in.DepartureTime)
	existing.BasePrice = utils.RoundCents(in.BasePrice)
	if err := s.Flights.Update(existing); err != nil {
		return models.Flight{}, err
	}
	utils.LogEvent(s.RequestID, "flight", "updated", existing.FlightNumber)
	return existing, nil
}

func (s FlightService) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	if err := s.Flights.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "flight", "deleted", "")
	return nil
}
