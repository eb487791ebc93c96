package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

type SeatPreference string

const (
	SeatWindow       SeatPreference = "WINDOW"
	SeatAisle        SeatPreference = "AISLE"
	SeatMiddle       SeatPreference = "MIDDLE"
	SeatNoPreference SeatPreference = "NO_PREFERENCE"
)

// Passenger holds the travel document details attached to one booking.
type Passenger struct {
	ID             int64          `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Age            int            `json:"age"`
	SeatPreference SeatPreference `json:"seat_preference"`
	UserID         int64          `json:"user_id,omitempty"`
}

func (p Passenger) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Booking is the durable record of one reserved seat. TotalPrice and
// DiscountAmount are frozen at creation time; later loyalty changes do
// not alter them. CANCELLED is a terminal status.
type Booking struct {
	ID             int64         `json:"id"`
	Reference      string        `json:"reference"`
	UserID         int64         `json:"user_id"`
	FlightID       int64         `json:"flight_id"`
	PassengerID    int64         `json:"passenger_id"`
	SeatNumber     string        `json:"seat_number"`
	TotalPrice     float64       `json:"total_price"`
	DiscountAmount float64       `json:"discount_amount"`
	Status         BookingStatus `json:"status"`
	BookingDate    time.Time     `json:"booking_date"`
}

// BookingStats aggregates a traveler's booking history. TotalSpent
// excludes cancelled bookings.
type BookingStats struct {
	TotalBookings     int64   `json:"total_bookings"`
	ConfirmedBookings int64   `json:"confirmed_bookings"`
	CancelledBookings int64   `json:"cancelled_bookings"`
	TotalSpent        float64 `json:"total_spent"`
}
