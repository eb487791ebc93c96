package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
)

func flightRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "flight_number", "origin", "destination", "departure_time",
		"capacity", "available_seats", "base_price",
	})
}

func TestFlightRepositoryFindByNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM flights WHERE flight_number=").
		WithArgs("TX101").
		WillReturnRows(flightRows().AddRow(1, "TX101", "Dallas", "Austin", "08:00 AM", 150, 150, 199.99))

	repo := FlightRepository{DB: db}
	flight, err := repo.FindByNumber("TX101")
	if err != nil {
		t.Fatalf("FindByNumber returned error: %v", err)
	}
	if flight.FlightNumber != "TX101" || flight.Origin != "Dallas" || flight.AvailableSeats != 150 {
		t.Fatalf("unexpected flight %+v", flight)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFlightRepositoryFindByNumberMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM flights WHERE flight_number=").
		WithArgs("TX999").
		WillReturnRows(flightRows())

	repo := FlightRepository{DB: db}
	if _, err := repo.FindByNumber("TX999"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFlightRepositoryListAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM flights WHERE available_seats > 0").
		WillReturnRows(flightRows().
			AddRow(1, "TX101", "Dallas", "Austin", "08:00 AM", 150, 12, 199.99).
			AddRow(2, "TX102", "Houston", "San Antonio", "10:30 AM", 120, 1, 149.99))

	repo := FlightRepository{DB: db}
	flights, err := repo.ListAvailable()
	if err != nil {
		t.Fatalf("ListAvailable returned error: %v", err)
	}
	if len(flights) != 2 {
		t.Fatalf("expected 2 flights, got %d", len(flights))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFlightRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO flights").
		WithArgs("TX201", "Dallas", "El Paso", "06:00 AM", 100, 100, 209.99).
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := FlightRepository{DB: db}
	flight, err := repo.Create(models.Flight{
		FlightNumber:   "TX201",
		Origin:         "Dallas",
		Destination:    "El Paso",
		DepartureTime:  "06:00 AM",
		Capacity:       100,
		AvailableSeats: 100,
		BasePrice:      209.99,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if flight.ID != 7 {
		t.Fatalf("expected assigned id 7, got %d", flight.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFlightRepositoryUpdateAvailableSeats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE flights SET available_seats=").
		WithArgs(11, "TX101").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE flights SET available_seats=").
		WithArgs(11, "TX999").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := FlightRepository{DB: db}
	if err := repo.UpdateAvailableSeats("TX101", 11); err != nil {
		t.Fatalf("UpdateAvailableSeats returned error: %v", err)
	}
	if err := repo.UpdateAvailableSeats("TX999", 11); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for unknown flight, got %v", err)
	}
}
