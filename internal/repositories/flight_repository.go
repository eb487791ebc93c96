package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "github.com/Yarwood-cmd/texas-airport-fullstack/internal/config"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
)

const flightColumns = `id, flight_number, origin, destination, departure_time, capacity, available_seats, base_price`

type FlightRepository struct {
	DB *sql.DB
}

func (r FlightRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanFlight(row interface{ Scan(...any) error }) (models.Flight, error) {
	var f models.Flight
	err := row.Scan(
		&f.ID,
		&f.FlightNumber,
		&f.Origin,
		&f.Destination,
		&f.DepartureTime,
		&f.Capacity,
		&f.AvailableSeats,
		&f.BasePrice,
	)
	return f, err
}

func (r FlightRepository) List() ([]models.Flight, error) {
	return r.queryFlights(`SELECT ` + flightColumns + ` FROM flights ORDER BY flight_number`)
}

func (r FlightRepository) ListAvailable() ([]models.Flight, error) {
	return r.queryFlights(`SELECT ` + flightColumns + ` FROM flights WHERE available_seats > 0 ORDER BY flight_number`)
}

func (r FlightRepository) SearchByOrigin(origin string) ([]models.Flight, error) {
	return r.queryFlights(`SELECT `+flightColumns+` FROM flights WHERE LOWER(origin)=LOWER(?) ORDER BY flight_number`, origin)
}

func (r FlightRepository) SearchByDestination(destination string) ([]models.Flight, error) {
	return r.queryFlights(`SELECT `+flightColumns+` FROM flights WHERE LOWER(destination)=LOWER(?) ORDER BY flight_number`, destination)
}

func (r FlightRepository) SearchByRoute(origin, destination string) ([]models.Flight, error) {
	return r.queryFlights(
		`SELECT `+flightColumns+` FROM flights WHERE LOWER(origin)=LOWER(?) AND LOWER(destination)=LOWER(?) ORDER BY flight_number`,
		origin, destination,
	)
}

func (r FlightRepository) queryFlights(query string, args ...any) ([]models.Flight, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query flights: %w", err)
	}
	defer rows.Close()

	out := []models.Flight{}
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flight: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r FlightRepository) FindByID(id int64) (models.Flight, error) {
	f, err := scanFlight(r.db().QueryRow(`SELECT `+flightColumns+` FROM flights WHERE id=? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Flight{}, domain.NotFoundError{Resource: "flight"}
		}
		return models.Flight{}, fmt.Errorf("get flight: %w", err)
	}
	return f, nil
}

func (r FlightRepository) FindByNumber(flightNumber string) (models.Flight, error) {
	f, err := scanFlight(r.db().QueryRow(`SELECT `+flightColumns+` FROM flights WHERE flight_number=? LIMIT 1`, flightNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Flight{}, domain.NotFoundError{Resource: "flight"}
		}
		return models.Flight{}, fmt.Errorf("get flight: %w", err)
	}
	return f, nil
}

func (r FlightRepository) Create(f models.Flight) (models.Flight, error) {
	res, err := r.db().Exec(`
		INSERT INTO flights (flight_number, origin, destination, departure_time, capacity, available_seats, base_price)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.FlightNumber, f.Origin, f.Destination, f.DepartureTime, f.Capacity, f.AvailableSeats, f.BasePrice,
	)
	if err != nil {
		return models.Flight{}, fmt.Errorf("insert flight: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Flight{}, fmt.Errorf("flight insert id: %w", err)
	}
	f.ID = id
	return f, nil
}

func (r FlightRepository) Update(f models.Flight) error {
	res, err := r.db().Exec(`
		UPDATE flights
		SET flight_number=?, origin=?, destination=?, departure_time=?, capacity=?, base_price=?
		WHERE id=?`,
		f.FlightNumber, f.Origin, f.Destination, f.DepartureTime, f.Capacity, f.BasePrice, f.ID,
	)
	if err != nil {
		return fmt.Errorf("update flight: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "flight"}
	}
	return nil
}

func (r FlightRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM flights WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete flight: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "flight"}
	}
	return nil
}

// UpdateAvailableSeats persists the seat counter decided by the
// inventory component. Only the inventory calls this.
func (r FlightRepository) UpdateAvailableSeats(flightNumber string, availableSeats int) error {
	res, err := r.db().Exec(`UPDATE flights SET available_seats=? WHERE flight_number=?`, availableSeats, flightNumber)
	if err != nil {
		return fmt.Errorf("update available seats: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "flight"}
	}
	return nil
}
