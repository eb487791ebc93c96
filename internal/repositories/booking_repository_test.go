package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
)

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "reference", "user_id", "flight_id", "passenger_id",
		"seat_number", "total_price", "discount_amount", "status", "booking_date",
	})
}

func TestBookingRepositoryFindByReference(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	when := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE reference=").
		WithArgs("TXR1001").
		WillReturnRows(bookingRows().AddRow(1, "TXR1001", 2, 3, 4, "12A", 169.99, 30.00, "CONFIRMED", when))

	repo := BookingRepository{DB: db}
	booking, err := repo.FindByReference("TXR1001")
	if err != nil {
		t.Fatalf("FindByReference returned error: %v", err)
	}
	if booking.Reference != "TXR1001" || booking.Status != models.BookingConfirmed {
		t.Fatalf("unexpected booking %+v", booking)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepositoryFindByReferenceMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE reference=").
		WithArgs("TXR0").
		WillReturnRows(bookingRows())

	repo := BookingRepository{DB: db}
	if _, err := repo.FindByReference("TXR0"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookingRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	when := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("TXR1002", int64(2), int64(3), int64(4), "14C", 199.99, 0.0, "CONFIRMED", when).
		WillReturnResult(sqlmock.NewResult(9, 1))

	repo := BookingRepository{DB: db}
	booking, err := repo.Create(models.Booking{
		Reference:      "TXR1002",
		UserID:         2,
		FlightID:       3,
		PassengerID:    4,
		SeatNumber:     "14C",
		TotalPrice:     199.99,
		DiscountAmount: 0.0,
		Status:         models.BookingConfirmed,
		BookingDate:    when,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if booking.ID != 9 {
		t.Fatalf("expected assigned id 9, got %d", booking.ID)
	}
}

func TestBookingRepositoryUpdateStatusNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// MySQL reports zero affected rows when the status value is unchanged
	mock.ExpectExec("UPDATE bookings SET status=").
		WithArgs("CANCELLED", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings WHERE id=").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	repo := BookingRepository{DB: db}
	err = repo.Update(models.Booking{ID: 9, Status: models.BookingCancelled})
	if err != nil {
		t.Fatalf("no-op status update must not fail: %v", err)
	}
}

func TestBookingRepositoryUpdateMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE bookings SET status=").
		WithArgs("CANCELLED", int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings WHERE id=").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := BookingRepository{DB: db}
	err = repo.Update(models.Booking{ID: 404, Status: models.BookingCancelled})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookingRepositoryListByUserAndStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	when := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE user_id=(.+) AND status=").
		WithArgs(int64(2), "CONFIRMED").
		WillReturnRows(bookingRows().
			AddRow(1, "TXR1001", 2, 3, 4, "12A", 169.99, 30.00, "CONFIRMED", when))

	repo := BookingRepository{DB: db}
	bookings, err := repo.ListByUserAndStatus(2, models.BookingConfirmed)
	if err != nil {
		t.Fatalf("ListByUserAndStatus returned error: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bookings))
	}
}

func TestBookingRepositoryCreatePassenger(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO passengers").
		WithArgs("Ada", "Lovelace", 36, "WINDOW", int64(2)).
		WillReturnResult(sqlmock.NewResult(5, 1))

	repo := BookingRepository{DB: db}
	p, err := repo.CreatePassenger(models.Passenger{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Age:            36,
		SeatPreference: models.SeatWindow,
		UserID:         2,
	})
	if err != nil {
		t.Fatalf("CreatePassenger returned error: %v", err)
	}
	if p.ID != 5 {
		t.Fatalf("expected assigned id 5, got %d", p.ID)
	}
}

func TestBookingRepositoryMarkCancelled(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	when := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE bookings SET status=").
		WithArgs("CANCELLED", int64(7), "CANCELLED").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(bookingRows().AddRow(7, "TXR1007", 2, 3, 4, "12A", 169.99, 30.00, "CANCELLED", when))

	repo := BookingRepository{DB: db}
	booking, err := repo.MarkCancelled(7)
	if err != nil {
		t.Fatalf("MarkCancelled returned error: %v", err)
	}
	if booking.Status != models.BookingCancelled {
		t.Fatalf("unexpected booking %+v", booking)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepositoryMarkCancelledTwice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	when := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE bookings SET status=").
		WithArgs("CANCELLED", int64(7), "CANCELLED").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(bookingRows().AddRow(7, "TXR1007", 2, 3, 4, "12A", 169.99, 30.00, "CANCELLED", when))

	repo := BookingRepository{DB: db}
	if _, err := repo.MarkCancelled(7); !domain.IsState(err) {
		t.Fatalf("expected state error, got %v", err)
	}
}

func TestBookingRepositoryDeletePassenger(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM passengers").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := BookingRepository{DB: db}
	if err := repo.DeletePassenger(5); err != nil {
		t.Fatalf("DeletePassenger returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
