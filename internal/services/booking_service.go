package services

import (
	"strings"
	"time"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/fare"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/utils"
)

// BookingMilesAward is credited to frequent flyer accounts after each
// confirmed booking. Cancellations do not claw miles back.
const BookingMilesAward = 500

type BookingService struct {
	Flights   FlightDirectory
	Users     UserDirectory
	Bookings  BookingStore
	Inventory SeatInventory
	Refs      *ReferenceGenerator
	RequestID string
}

// WithRequestID returns a copy of the service tagged for log correlation.
func (s BookingService) WithRequestID(requestID string) BookingService {
	s.RequestID = requestID
	return s
}

type CreateBookingInput struct {
	UserID       int64  `json:"user_id"`
	FlightNumber string `json:"flight_number"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Age          int    `json:"age"`
	SeatPref     string `json:"seat_preference"`
}

// BookingDetail bundles a booking with its passenger and flight for responses.
type BookingDetail struct {
	Booking   models.Booking   `json:"booking"`
	Passenger models.Passenger `json:"passenger"`
	Flight    models.Flight    `json:"flight"`
}

func normalizeSeatPref(raw string) (models.SeatPreference, error) {
	pref := models.SeatPreference(strings.ToUpper(strings.TrimSpace(raw)))
	if pref == "" {
		return models.SeatNoPreference, nil
	}
	switch pref {
	case models.SeatWindow, models.SeatAisle, models.SeatMiddle, models.SeatNoPreference:
		return pref, nil
	}
	return "", domain.ValidationError{Field: "seat_preference", Msg: "unknown seat preference"}
}

func (s BookingService) validateCreate(in CreateBookingInput) (models.SeatPreference, error) {
	if in.UserID <= 0 {
		return "", domain.ValidationError{Field: "user_id", Msg: "invalid id"}
	}
	if strings.TrimSpace(in.FlightNumber) == "" {
		return "", domain.ValidationError{Field: "flight_number", Msg: "required"}
	}
	if strings.TrimSpace(in.FirstName) == "" {
		return "", domain.ValidationError{Field: "first_name", Msg: "required"}
	}
	if strings.TrimSpace(in.LastName) == "" {
		return "", domain.ValidationError{Field: "last_name", Msg: "required"}
	}
	if in.Age <= 0 || in.Age > 120 {
		return "", domain.ValidationError{Field: "age", Msg: "out of range"}
	}
	return normalizeSeatPref(in.SeatPref)
}

// CreateBooking reserves a seat, prices it with the user's discount and
// persists the booking. The seat hold is released again when any later
// step fails, so a failed booking never leaks a seat.
func (s BookingService) CreateBooking(in CreateBookingInput) (BookingDetail, error) {
	seatPref, err := s.validateCreate(in)
	if err != nil {
		return BookingDetail{}, err
	}

	flight, err := s.Flights.FindByNumber(strings.TrimSpace(in.FlightNumber))
	if err != nil {
		return BookingDetail{}, err
	}
	user, err := s.Users.FindByID(in.UserID)
	if err != nil {
		return BookingDetail{}, err
	}

	ok, err := s.Inventory.Reserve(flight.FlightNumber)
	if err != nil {
		return BookingDetail{}, err
	}
	if !ok {
		return BookingDetail{}, domain.CapacityError{FlightNumber: flight.FlightNumber}
	}

	detail, err := s.persistBooking(flight, user, in, seatPref)
	if err != nil {
		if relErr := s.Inventory.Release(flight.FlightNumber); relErr != nil {
			utils.LogEvent(s.RequestID, "booking", "release_failed", relErr.Error())
		}
		return BookingDetail{}, err
	}

	s.awardMiles(user)
	utils.LogEvent(s.RequestID, "booking", "created", detail.Booking.Reference)
	return detail, nil
}

func (s BookingService) persistBooking(flight models.Flight, user models.User, in CreateBookingInput, seatPref models.SeatPreference) (BookingDetail, error) {
	rate := fare.DiscountRate(user.CustomerType, user.MembershipLevel)
	discount := utils.RoundCents(flight.BasePrice * rate)
	total := utils.RoundCents(flight.BasePrice - discount)

	ref, err := s.Refs.Next(s.Bookings)
	if err != nil {
		return BookingDetail{}, err
	}

	passenger, err := s.Bookings.CreatePassenger(models.Passenger{
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Age:            in.Age,
		SeatPreference: seatPref,
		UserID:         user.ID,
	})
	if err != nil {
		return BookingDetail{}, err
	}

	booking, err := s.Bookings.Create(models.Booking{
		Reference:      ref,
		UserID:         user.ID,
		FlightID:       flight.ID,
		PassengerID:    passenger.ID,
		SeatNumber:     assignSeat(flight, seatPref),
		TotalPrice:     total,
		DiscountAmount: discount,
		Status:         models.BookingConfirmed,
		BookingDate:    time.Now().UTC(),
	})
	if err != nil {
		// the passenger row has no booking to belong to
		if delErr := s.Bookings.DeletePassenger(passenger.ID); delErr != nil {
			utils.LogEvent(s.RequestID, "booking", "passenger_cleanup_failed", delErr.Error())
		}
		return BookingDetail{}, err
	}
	return BookingDetail{Booking: booking, Passenger: passenger, Flight: flight}, nil
}

// awardMiles credits the post-booking bonus to frequent flyers and
// recomputes their membership level. Failures only log; the booking
// itself already succeeded.
func (s BookingService) awardMiles(user models.User) {
	if user.CustomerType != models.CustomerFrequentFlyer {
		return
	}
	fresh, err := s.Users.FindByID(user.ID)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "miles_skip", err.Error())
		return
	}
	fresh.MilesFlown += BookingMilesAward
	fresh.MembershipLevel = fare.MembershipLevelFor(fresh.MilesFlown)
	if err := s.Users.Update(fresh); err != nil {
		utils.LogEvent(s.RequestID, "booking", "miles_skip", err.Error())
	}
}

// assignSeat picks a deterministic seat label from the remaining count
// and the preferred column letter.
func assignSeat(flight models.Flight, pref models.SeatPreference) string {
	taken := flight.Capacity - flight.AvailableSeats
	row := taken/6 + 1
	letter := "C"
	switch pref {
	case models.SeatWindow:
		letter = "A"
	case models.SeatAisle:
		letter = "D"
	case models.SeatMiddle:
		letter = "B"
	}
	return utils.FormatSeat(row, letter)
}

// CancelBooking releases the seat and marks the booking cancelled.
// Cancelling twice fails. Miles awarded at booking time are kept.
func (s BookingService) CancelBooking(reference string) (models.Booking, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return models.Booking{}, domain.ValidationError{Field: "reference", Msg: "required"}
	}
	booking, err := s.Bookings.FindByReference(reference)
	if err != nil {
		return models.Booking{}, err
	}
	return s.cancel(booking)
}

// CancelBookingByID is CancelBooking addressed by the numeric id.
func (s BookingService) CancelBookingByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	booking, err := s.Bookings.FindByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	return s.cancel(booking)
}

// cancel flips the status with a conditional store write before
// touching the seat counter, so two racing cancels of the same booking
// cannot both release a seat.
func (s BookingService) cancel(booking models.Booking) (models.Booking, error) {
	flight, err := s.Flights.FindByID(booking.FlightID)
	if err != nil {
		return models.Booking{}, err
	}

	cancelled, err := s.Bookings.MarkCancelled(booking.ID)
	if err != nil {
		return models.Booking{}, err
	}
	if err := s.Inventory.Release(flight.FlightNumber); err != nil {
		// restore the prior status so a retry runs the full path again
		if revErr := s.Bookings.Update(booking); revErr != nil {
			utils.LogEvent(s.RequestID, "booking", "cancel_revert_failed", revErr.Error())
		}
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "cancelled", cancelled.Reference)
	return cancelled, nil
}

// FindByReference loads a booking with its passenger and flight.
func (s BookingService) FindByReference(reference string) (BookingDetail, error) {
	booking, err := s.Bookings.FindByReference(strings.TrimSpace(reference))
	if err != nil {
		return BookingDetail{}, err
	}
	return s.detail(booking)
}

// FindByID loads a booking with its passenger and flight by numeric id.
func (s BookingService) FindByID(id int64) (BookingDetail, error) {
	if id <= 0 {
		return BookingDetail{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	booking, err := s.Bookings.FindByID(id)
	if err != nil {
		return BookingDetail{}, err
	}
	return s.detail(booking)
}

// ListActiveByUser returns the user's CONFIRMED bookings.
func (s BookingService) ListActiveByUser(userID int64) ([]models.Booking, error) {
	if userID <= 0 {
		return nil, domain.ValidationError{Field: "user_id", Msg: "invalid id"}
	}
	return s.Bookings.ListByUserAndStatus(userID, models.BookingConfirmed)
}

func (s BookingService) detail(booking models.Booking) (BookingDetail, error) {
	passenger, err := s.Bookings.FindPassenger(booking.PassengerID)
	if err != nil {
		return BookingDetail{}, err
	}
	flight, err := s.Flights.FindByID(booking.FlightID)
	if err != nil {
		return BookingDetail{}, err
	}
	return BookingDetail{Booking: booking, Passenger: passenger, Flight: flight}, nil
}

// ListByUser returns all bookings for a user, optionally filtered by status.
func (s BookingService) ListByUser(userID int64, status string) ([]models.Booking, error) {
	if userID <= 0 {
		return nil, domain.ValidationError{Field: "user_id", Msg: "invalid id"}
	}
	if status == "" {
		return s.Bookings.ListByUser(userID)
	}
	st := models.BookingStatus(strings.ToUpper(strings.TrimSpace(status)))
	switch st {
	case models.BookingPending, models.BookingConfirmed, models.BookingCancelled, models.BookingCompleted:
	default:
		return nil, domain.ValidationError{Field: "status", Msg: "unknown status"}
	}
	return s.Bookings.ListByUserAndStatus(userID, st)
}

// Stats aggregates a user's booking history. Cancelled bookings count
// toward the totals but not toward money spent.
func (s BookingService) Stats(userID int64) (models.BookingStats, error) {
	bookings, err := s.ListByUser(userID, "")
	if err != nil {
		return models.BookingStats{}, err
	}
	var stats models.BookingStats
	for _, b := range bookings {
		stats.TotalBookings++
		switch b.Status {
		case models.BookingCancelled:
			stats.CancelledBookings++
		case models.BookingConfirmed:
			stats.ConfirmedBookings++
		}
		if b.Status != models.BookingCancelled {
			stats.TotalSpent = utils.RoundCents(stats.TotalSpent + b.TotalPrice)
		}
	}
	return stats, nil
}
