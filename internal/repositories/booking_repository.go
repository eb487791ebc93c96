package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "github.com/Yarwood-cmd/texas-airport-fullstack/internal/config"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
)

const bookingColumns = `id, reference, user_id, flight_id, passenger_id, seat_number, total_price, discount_amount, status, booking_date`

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.UserID,
		&b.FlightID,
		&b.PassengerID,
		&b.SeatNumber,
		&b.TotalPrice,
		&b.DiscountAmount,
		&b.Status,
		&b.BookingDate,
	)
	return b, err
}

func (r BookingRepository) FindByID(id int64) (models.Booking, error) {
	b, err := scanBooking(r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

func (r BookingRepository) FindByReference(reference string) (models.Booking, error) {
	b, err := scanBooking(r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE reference=? LIMIT 1`, reference))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	return r.queryBookings(`SELECT `+bookingColumns+` FROM bookings WHERE user_id=? ORDER BY booking_date DESC, id DESC`, userID)
}

func (r BookingRepository) ListByUserAndStatus(userID int64, status models.BookingStatus) ([]models.Booking, error) {
	return r.queryBookings(
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id=? AND status=? ORDER BY booking_date DESC, id DESC`,
		userID, status,
	)
}

func (r BookingRepository) queryBookings(query string, args ...any) ([]models.Booking, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BookingRepository) Create(b models.Booking) (models.Booking, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings (reference, user_id, flight_id, passenger_id, seat_number, total_price, discount_amount, status, booking_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.Reference, b.UserID, b.FlightID, b.PassengerID, b.SeatNumber, b.TotalPrice, b.DiscountAmount, b.Status, b.BookingDate,
	)
	if err != nil {
		return models.Booking{}, fmt.Errorf("insert booking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking insert id: %w", err)
	}
	b.ID = id
	return b, nil
}

func (r BookingRepository) Update(b models.Booking) error {
	res, err := r.db().Exec(`UPDATE bookings SET status=? WHERE id=?`, b.Status, b.ID)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// MySQL reports zero affected rows for no-op updates too, so
		// only treat a missing row as not found.
		var exists int
		if err := r.db().QueryRow(`SELECT COUNT(*) FROM bookings WHERE id=?`, b.ID).Scan(&exists); err == nil && exists == 0 {
			return domain.NotFoundError{Resource: "booking"}
		}
	}
	return nil
}

// MarkCancelled cancels the booking with a single conditional UPDATE so
// two concurrent cancels cannot both succeed.
func (r BookingRepository) MarkCancelled(id int64) (models.Booking, error) {
	res, err := r.db().Exec(`UPDATE bookings SET status=? WHERE id=? AND status<>?`,
		models.BookingCancelled, id, models.BookingCancelled)
	if err != nil {
		return models.Booking{}, fmt.Errorf("cancel booking: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		b, err := r.FindByID(id)
		if err != nil {
			return models.Booking{}, err
		}
		if b.Status == models.BookingCancelled {
			return models.Booking{}, domain.StateError{Msg: "booking already cancelled"}
		}
		return models.Booking{}, fmt.Errorf("cancel booking: no row updated")
	}
	return r.FindByID(id)
}

func (r BookingRepository) CreatePassenger(p models.Passenger) (models.Passenger, error) {
	res, err := r.db().Exec(`
		INSERT INTO passengers (first_name, last_name, age, seat_preference, user_id)
		VALUES (?, ?, ?, ?, ?)`,
		p.FirstName, p.LastName, p.Age, p.SeatPreference, p.UserID,
	)
	if err != nil {
		return models.Passenger{}, fmt.Errorf("insert passenger: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Passenger{}, fmt.Errorf("passenger insert id: %w", err)
	}
	p.ID = id
	return p, nil
}

func (r BookingRepository) FindPassenger(id int64) (models.Passenger, error) {
	var p models.Passenger
	err := r.db().QueryRow(`
		SELECT id, first_name, last_name, age, seat_preference, user_id
		FROM passengers WHERE id=? LIMIT 1`, id,
	).Scan(&p.ID, &p.FirstName, &p.LastName, &p.Age, &p.SeatPreference, &p.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Passenger{}, domain.NotFoundError{Resource: "passenger"}
		}
		return models.Passenger{}, fmt.Errorf("get passenger: %w", err)
	}
	return p, nil
}

func (r BookingRepository) DeletePassenger(id int64) error {
	if _, err := r.db().Exec(`DELETE FROM passengers WHERE id=?`, id); err != nil {
		return fmt.Errorf("delete passenger: %w", err)
	}
	return nil
}
