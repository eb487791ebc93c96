package services

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/inventory"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/repositories"
)

type bookingFixture struct {
	flights  *repositories.MemoryFlightStore
	users    *repositories.MemoryUserStore
	bookings *repositories.MemoryBookingStore
	svc      BookingService
}

func newBookingFixture(t *testing.T, capacity int) bookingFixture {
	t.Helper()
	flights := repositories.NewMemoryFlightStore()
	users := repositories.NewMemoryUserStore()
	bookings := repositories.NewMemoryBookingStore()

	_, err := flights.Create(models.Flight{
		FlightNumber:   "TX101",
		Origin:         "Dallas",
		Destination:    "Austin",
		DepartureTime:  "08:00 AM",
		Capacity:       capacity,
		AvailableSeats: capacity,
		BasePrice:      199.99,
	})
	require.NoError(t, err)

	return bookingFixture{
		flights:  flights,
		users:    users,
		bookings: bookings,
		svc: BookingService{
			Flights:   flights,
			Users:     users,
			Bookings:  bookings,
			Inventory: inventory.New(flights),
			Refs:      NewReferenceGenerator(),
		},
	}
}

func (f bookingFixture) addUser(t *testing.T, ct models.CustomerType, miles int) models.User {
	t.Helper()
	level := models.MembershipNone
	if ct == models.CustomerFrequentFlyer {
		switch {
		case miles >= 50000:
			level = models.MembershipPlatinum
		case miles >= 25000:
			level = models.MembershipGold
		case miles > 0:
			level = models.MembershipSilver
		}
	}
	u, err := f.users.Create(models.User{
		Name:            "Test Traveler",
		Email:           "traveler@example.com",
		CustomerType:    ct,
		MilesFlown:      miles,
		MembershipLevel: level,
		Role:            models.RoleUser,
	})
	require.NoError(t, err)
	return u
}

func bookingInput(userID int64) CreateBookingInput {
	return CreateBookingInput{
		UserID:       userID,
		FlightNumber: "TX101",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Age:          36,
		SeatPref:     "WINDOW",
	}
}

func TestCreateBookingSellsOutAndRecovers(t *testing.T) {
	f := newBookingFixture(t, 2)
	user := f.addUser(t, models.CustomerRegular, 0)

	first, err := f.svc.CreateBooking(bookingInput(user.ID))
	require.NoError(t, err)
	_, err = f.svc.CreateBooking(bookingInput(user.ID))
	require.NoError(t, err)

	_, err = f.svc.CreateBooking(bookingInput(user.ID))
	require.Error(t, err)
	assert.True(t, domain.IsCapacity(err), "expected capacity error, got %v", err)

	_, err = f.svc.CancelBooking(first.Booking.Reference)
	require.NoError(t, err)

	again, err := f.svc.CreateBooking(bookingInput(user.ID))
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, again.Booking.Status)
}

func TestCreateBookingGoldPricing(t *testing.T) {
	f := newBookingFixture(t, 10)
	user := f.addUser(t, models.CustomerFrequentFlyer, 30000)

	detail, err := f.svc.CreateBooking(bookingInput(user.ID))
	require.NoError(t, err)
	assert.InDelta(t, 30.00, detail.Booking.DiscountAmount, 0.001)
	assert.InDelta(t, 169.99, detail.Booking.TotalPrice, 0.001)
}

func TestCreateBookingRegularNoDiscount(t *testing.T) {
	f := newBookingFixture(t, 10)
	user := f.addUser(t, models.CustomerRegular, 60000)

	detail, err := f.svc.CreateBooking(bookingInput(user.ID))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, detail.Booking.DiscountAmount, 0.001)
	assert.InDelta(t, 199.99, detail.Booking.TotalPrice, 0.001)
}

func TestCreateBookingAwardsMilesToFrequentFlyer(t *testing.T) {
	f := newBookingFixture(t, 10)
	user := f.addUser(t, models.CustomerFrequentFlyer, 24600)

	_, err := f.svc.CreateBooking(bookingInput(user.ID))
	require.NoError(t, err)

	fresh, err := f.users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 25100, fresh.MilesFlown)
	assert.Equal(t, models.MembershipGold, fresh.MembershipLevel)
}

func TestCreateBookingNoMilesForRegular(t *testing.T) {
	f := newBookingFixture(t, 10)
	user := f.addUser(t, models.CustomerRegular, 0)

	_, err := f.svc.CreateBooking(bookingInput(user.ID))
	require.NoError(t, err)

	fresh, err := f.users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.MilesFlown)
}

func TestCreateBookingValidation(t *testing.T) {
	f := newBookingFixture(t, 10)
	user := f.addUser(t, models.CustomerRegular, 0)

	cases := []struct {
		name   string
		mutate func(*CreateBookingInput)
	}{
		{"missing flight", func(in *CreateBookingInput) { in.FlightNumber = " " }},
		{"missing first name", func(in *CreateBookingInput) { in.FirstName = "" }},
		{"missing last name", func(in *CreateBookingInput) { in.LastName = "" }},
		{"zero age", func(in *CreateBookingInput) { in.Age = 0 }},
		{"bad user id", func(in *CreateBookingInput) { in.UserID = 0 }},
		{"bad seat pref", func(in *CreateBookingInput) { in.SeatPref = "FLOOR" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := bookingInput(user.ID)
			tc.mutate(&in)
			_, err := f.svc.CreateBooking(in)
			assert.True(t, domain.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreateBookingUnknownFlight(t *testing.T) {
	f := newBookingFixture(t, 10)
	user := f.addUser(t, models.CustomerRegular, 0)

	in := bookingInput(user.ID)
	in.FlightNumber = "TX999"
	_, err := f.svc.CreateBooking(in)
	assert.True(t, domain.IsNotFound(err), "expected not found, got %v", err)
}

func TestCancelBookingTwiceFails(t *testing.T) {
	f := newBookingFixture(t, 10)
	user := f.addUser(t, models.CustomerRegular, 0)

	detail, err := f.svc.CreateBooking(bookingInput(user.ID))
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(detail.Booking.Reference)
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(detail.Booking.Reference)
	require.Error(t, err)
	assert.True(t, domain.IsState(err), "expected state error, got %v", err)
}

func TestCancelBookingKeepsMiles(t *testing.T) {
	f := newBookingFixture(t, 10)
	user := f.addUser(t, models.CustomerFrequentFlyer, 1000)

	detail, err := f.svc.CreateBooking(bookingInput(user.ID))
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(detail.Booking.Reference)
	require.NoError(t, err)

	fresh, err := f.users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1500, fresh.MilesFlown)
}

func TestConcurrentBookingsNeverOversell(t *testing.T) {
	const seats = 7
	const attempts = 100

	f := newBookingFixture(t, seats)
	user := f.addUser(t, models.CustomerRegular, 0)

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	refs := make(chan string, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			detail, err := f.svc.CreateBooking(bookingInput(user.ID))
			results <- err
			if err == nil {
				refs <- detail.Booking.Reference
			}
		}()
	}
	wg.Wait()
	close(results)
	close(refs)

	var booked, full int
	for err := range results {
		switch {
		case err == nil:
			booked++
		case domain.IsCapacity(err):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, seats, booked)
	assert.Equal(t, attempts-seats, full)

	seen := map[string]bool{}
	for ref := range refs {
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}

	flight, err := f.flights.FindByNumber("TX101")
	require.NoError(t, err)
	assert.Equal(t, 0, flight.AvailableSeats)
}

type failingBookingStore struct {
	*repositories.MemoryBookingStore
}

func (s failingBookingStore) Create(models.Booking) (models.Booking, error) {
	return models.Booking{}, errors.New("write refused")
}

func TestCreateBookingReleasesSeatOnPersistFailure(t *testing.T) {
	f := newBookingFixture(t, 3)
	user := f.addUser(t, models.CustomerRegular, 0)
	f.svc.Bookings = failingBookingStore{f.bookings}

	_, err := f.svc.CreateBooking(bookingInput(user.ID))
	require.Error(t, err)

	flight, err := f.flights.FindByNumber("TX101")
	require.NoError(t, err)
	assert.Equal(t, 3, flight.AvailableSeats)

	// the passenger row created before the failed insert is cleaned up
	_, err = f.bookings.FindPassenger(1)
	assert.True(t, domain.IsNotFound(err))
}

func TestConcurrentCancelReleasesOneSeat(t *testing.T) {
	f := newBookingFixture(t, 5)
	user := f.addUser(t, models.CustomerRegular, 0)

	detail, err := f.svc.CreateBooking(bookingInput(user.ID))
	require.NoError(t, err)

	const cancellers = 20
	var wg sync.WaitGroup
	var succeeded atomic.Int64
	for i := 0; i < cancellers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.CancelBooking(detail.Booking.Reference); err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), succeeded.Load())
	flight, err := f.flights.FindByNumber("TX101")
	require.NoError(t, err)
	assert.Equal(t, 5, flight.AvailableSeats)
}

func TestStatsExcludeCancelledSpend(t *testing.T) {
	f := newBookingFixture(t, 10)
	user := f.addUser(t, models.CustomerRegular, 0)

	a, err := f.svc.CreateBooking(bookingInput(user.ID))
	require.NoError(t, err)
	_, err = f.svc.CreateBooking(bookingInput(user.ID))
	require.NoError(t, err)
	_, err = f.svc.CreateBooking(bookingInput(user.ID))
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(a.Booking.Reference)
	require.NoError(t, err)

	stats, err := f.svc.Stats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalBookings)
	assert.Equal(t, int64(2), stats.ConfirmedBookings)
	assert.Equal(t, int64(1), stats.CancelledBookings)
	assert.InDelta(t, 399.98, stats.TotalSpent, 0.001)
}

func TestListByUserFiltersStatus(t *testing.T) {
	f := newBookingFixture(t, 10)
	user := f.addUser(t, models.CustomerRegular, 0)

	a, err := f.svc.CreateBooking(bookingInput(user.ID))
	require.NoError(t, err)
	_, err = f.svc.CreateBooking(bookingInput(user.ID))
	require.NoError(t, err)
	_, err = f.svc.CancelBooking(a.Booking.Reference)
	require.NoError(t, err)

	confirmed, err := f.svc.ListByUser(user.ID, "confirmed")
	require.NoError(t, err)
	assert.Len(t, confirmed, 1)

	cancelled, err := f.svc.ListByUser(user.ID, "CANCELLED")
	require.NoError(t, err)
	assert.Len(t, cancelled, 1)

	_, err = f.svc.ListByUser(user.ID, "NOPE")
	assert.True(t, domain.IsValidation(err))
}
