package models

// Flight captures per-flight inventory: fixed capacity, live seat counter
// and the base fare bookings are priced from. AvailableSeats must only be
// mutated through the inventory component, never assigned directly.
type Flight struct {
	ID             int64   `json:"id"`
	FlightNumber   string  `json:"flight_number"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	DepartureTime  string  `json:"departure_time"`
	Capacity       int     `json:"capacity"`
	AvailableSeats int     `json:"available_seats"`
	BasePrice      float64 `json:"base_price"`
}

// HasAvailableSeats is a snapshot read; it is not a reservation.
func (f Flight) HasAvailableSeats() bool {
	return f.AvailableSeats > 0
}
