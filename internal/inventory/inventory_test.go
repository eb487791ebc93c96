package inventory

import (
	"sync"
	"testing"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
)

type fakeStore struct {
	mu      sync.Mutex
	flights map[string]models.Flight
}

func newFakeStore(flights ...models.Flight) *fakeStore {
	s := &fakeStore{flights: map[string]models.Flight{}}
	for _, f := range flights {
		s.flights[f.FlightNumber] = f
	}
	return s
}

func (s *fakeStore) FindByNumber(number string) (models.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flights[number]
	if !ok {
		return models.Flight{}, domain.NotFoundError{Resource: "flight"}
	}
	return f, nil
}

func (s *fakeStore) UpdateAvailableSeats(number string, available int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flights[number]
	if !ok {
		return domain.NotFoundError{Resource: "flight"}
	}
	f.AvailableSeats = available
	s.flights[number] = f
	return nil
}

func TestReserveDecrementsUntilExhausted(t *testing.T) {
	store := newFakeStore(models.Flight{FlightNumber: "TX101", Capacity: 2, AvailableSeats: 2})
	inv := New(store)

	for i := 0; i < 2; i++ {
		ok, err := inv.Reserve("TX101")
		if err != nil {
			t.Fatalf("reserve %d: %v", i, err)
		}
		if !ok {
			t.Fatalf("reserve %d should succeed", i)
		}
	}

	ok, err := inv.Reserve("TX101")
	if err != nil {
		t.Fatalf("reserve on full flight: %v", err)
	}
	if ok {
		t.Fatal("reserve should fail once seats are exhausted")
	}

	f, _ := store.FindByNumber("TX101")
	if f.AvailableSeats != 0 {
		t.Fatalf("available seats = %d, want 0", f.AvailableSeats)
	}
}

func TestReserveUnknownFlight(t *testing.T) {
	inv := New(newFakeStore())
	ok, err := inv.Reserve("XX999")
	if ok {
		t.Fatal("reserve on unknown flight should not succeed")
	}
	if !domain.IsNotFound(err) {
		t.Fatalf("want not-found error, got %v", err)
	}
}

func TestReleaseCappedAtCapacity(t *testing.T) {
	store := newFakeStore(models.Flight{FlightNumber: "TX104", Capacity: 80, AvailableSeats: 80})
	inv := New(store)

	if err := inv.Release("TX104"); err != nil {
		t.Fatalf("release: %v", err)
	}
	f, _ := store.FindByNumber("TX104")
	if f.AvailableSeats != 80 {
		t.Fatalf("release pushed seats past capacity: %d", f.AvailableSeats)
	}
}

func TestConcurrentReserveExactlyKSucceed(t *testing.T) {
	const (
		available = 7
		callers   = 100
	)
	store := newFakeStore(models.Flight{FlightNumber: "TX102", Capacity: 120, AvailableSeats: available})
	inv := New(store)

	var wg sync.WaitGroup
	results := make(chan bool, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := inv.Reserve("TX102")
			if err != nil {
				t.Errorf("reserve: %v", err)
				return
			}
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for ok := range results {
		if ok {
			succeeded++
		}
	}
	if succeeded != available {
		t.Fatalf("%d reserves succeeded, want exactly %d", succeeded, available)
	}

	f, _ := store.FindByNumber("TX102")
	if f.AvailableSeats != 0 {
		t.Fatalf("available seats = %d, want 0", f.AvailableSeats)
	}
}

func TestConcurrentReserveReleaseInvariant(t *testing.T) {
	store := newFakeStore(models.Flight{FlightNumber: "TX103", Capacity: 10, AvailableSeats: 10})
	inv := New(store)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				ok, err := inv.Reserve("TX103")
				if err != nil {
					t.Errorf("reserve: %v", err)
					return
				}
				if ok {
					if err := inv.Release("TX103"); err != nil {
						t.Errorf("release: %v", err)
						return
					}
				}
			}
		}()
	}
	wg.Wait()

	f, _ := store.FindByNumber("TX103")
	if f.AvailableSeats < 0 || f.AvailableSeats > f.Capacity {
		t.Fatalf("invariant broken: available=%d capacity=%d", f.AvailableSeats, f.Capacity)
	}
	if f.AvailableSeats != 10 {
		t.Fatalf("all seats should be back after balanced reserve/release, got %d", f.AvailableSeats)
	}
}

func TestHasAvailability(t *testing.T) {
	store := newFakeStore(models.Flight{FlightNumber: "TX105", Capacity: 1, AvailableSeats: 1})
	inv := New(store)

	ok, err := inv.HasAvailability("TX105")
	if err != nil || !ok {
		t.Fatalf("expected availability, got ok=%v err=%v", ok, err)
	}

	if _, err := inv.Reserve("TX105"); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	ok, err = inv.HasAvailability("TX105")
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if ok {
		t.Fatal("flight should be sold out")
	}
}
