// Package inventory owns the per-flight seat counters. Reserve and
// Release are the only paths that mutate available-seat counts.
package inventory

import (
	"hash/fnv"
	"sync"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
)

// FlightStore is the slice of the flight directory the inventory needs.
type FlightStore interface {
	FindByNumber(flightNumber string) (models.Flight, error)
	UpdateAvailableSeats(flightNumber string, availableSeats int) error
}

const lockStripes = 64

// Inventory serializes seat mutations per flight. Lock striping keeps
// contention on one flight from blocking bookings on another, while the
// check-and-decrement inside Reserve stays a single critical section.
type Inventory struct {
	store FlightStore
	locks [lockStripes]sync.Mutex
}

func New(store FlightStore) *Inventory {
	return &Inventory{store: store}
}

func (inv *Inventory) lockFor(flightNumber string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(flightNumber))
	return &inv.locks[h.Sum32()%lockStripes]
}

// Reserve claims one seat on the flight. It returns false without
// touching state when the flight is sold out; that is a normal outcome,
// not an error. Errors are reserved for store failures and unknown
// flights.
func (inv *Inventory) Reserve(flightNumber string) (bool, error) {
	mu := inv.lockFor(flightNumber)
	mu.Lock()
	defer mu.Unlock()

	flight, err := inv.store.FindByNumber(flightNumber)
	if err != nil {
		return false, err
	}
	if flight.AvailableSeats <= 0 {
		return false, nil
	}
	if err := inv.store.UpdateAvailableSeats(flightNumber, flight.AvailableSeats-1); err != nil {
		return false, err
	}
	return true, nil
}

// Release returns one seat to the flight, capped at capacity so a
// double release cannot push the counter past the physical seat count.
// Callers must only release seats they successfully reserved.
func (inv *Inventory) Release(flightNumber string) error {
	mu := inv.lockFor(flightNumber)
	mu.Lock()
	defer mu.Unlock()

	flight, err := inv.store.FindByNumber(flightNumber)
	if err != nil {
		return err
	}
	if flight.AvailableSeats >= flight.Capacity {
		return nil
	}
	return inv.store.UpdateAvailableSeats(flightNumber, flight.AvailableSeats+1)
}

// HasAvailability is a non-mutating snapshot; it may be stale the moment
// it returns and must not be used to skip Reserve.
func (inv *Inventory) HasAvailability(flightNumber string) (bool, error) {
	flight, err := inv.store.FindByNumber(flightNumber)
	if err != nil {
		return false, err
	}
	return flight.HasAvailableSeats(), nil
}
