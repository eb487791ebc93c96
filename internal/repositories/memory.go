package repositories

import (
	"sort"
	"strings"
	"sync"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
)

// In-memory implementations of the flight, user and booking directories.
// They back demo mode (no MYSQL_DSN configured) and the service-level
// tests. All methods are safe for concurrent use.

type MemoryFlightStore struct {
	mu     sync.RWMutex
	byID   map[int64]models.Flight
	nextID int64
}

func NewMemoryFlightStore() *MemoryFlightStore {
	return &MemoryFlightStore{byID: map[int64]models.Flight{}}
}

func (s *MemoryFlightStore) List() ([]models.Flight, error) {
	return s.filter(func(models.Flight) bool { return true })
}

func (s *MemoryFlightStore) ListAvailable() ([]models.Flight, error) {
	return s.filter(models.Flight.HasAvailableSeats)
}

func (s *MemoryFlightStore) SearchByOrigin(origin string) ([]models.Flight, error) {
	return s.filter(func(f models.Flight) bool { return strings.EqualFold(f.Origin, origin) })
}

func (s *MemoryFlightStore) SearchByDestination(destination string) ([]models.Flight, error) {
	return s.filter(func(f models.Flight) bool { return strings.EqualFold(f.Destination, destination) })
}

func (s *MemoryFlightStore) SearchByRoute(origin, destination string) ([]models.Flight, error) {
	return s.filter(func(f models.Flight) bool {
		return strings.EqualFold(f.Origin, origin) && strings.EqualFold(f.Destination, destination)
	})
}

func (s *MemoryFlightStore) filter(keep func(models.Flight) bool) ([]models.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Flight{}
	for _, f := range s.byID {
		if keep(f) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FlightNumber < out[j].FlightNumber })
	return out, nil
}

func (s *MemoryFlightStore) FindByID(id int64) (models.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.byID[id]
	if !ok {
		return models.Flight{}, domain.NotFoundError{Resource: "flight"}
	}
	return f, nil
}

func (s *MemoryFlightStore) FindByNumber(flightNumber string) (models.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.byID {
		if f.FlightNumber == flightNumber {
			return f, nil
		}
	}
	return models.Flight{}, domain.NotFoundError{Resource: "flight"}
}

func (s *MemoryFlightStore) Create(f models.Flight) (models.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byID {
		if existing.FlightNumber == f.FlightNumber {
			return models.Flight{}, domain.ConflictError{Resource: "flight", Msg: "flight number already exists"}
		}
	}
	s.nextID++
	f.ID = s.nextID
	s.byID[f.ID] = f
	return f, nil
}

func (s *MemoryFlightStore) Update(f models.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.byID[f.ID]
	if !ok {
		return domain.NotFoundError{Resource: "flight"}
	}
	// the available-seats counter is owned by the inventory path
	f.AvailableSeats = existing.AvailableSeats
	s.byID[f.ID] = f
	return nil
}

func (s *MemoryFlightStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return domain.NotFoundError{Resource: "flight"}
	}
	delete(s.byID, id)
	return nil
}

func (s *MemoryFlightStore) UpdateAvailableSeats(flightNumber string, availableSeats int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, f := range s.byID {
		if f.FlightNumber == flightNumber {
			f.AvailableSeats = availableSeats
			s.byID[id] = f
			return nil
		}
	}
	return domain.NotFoundError{Resource: "flight"}
}

type MemoryUserStore struct {
	mu     sync.RWMutex
	byID   map[int64]models.User
	nextID int64
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{byID: map[int64]models.User{}}
}

func (s *MemoryUserStore) FindByID(id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, nil
}

func (s *MemoryUserStore) FindByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}

func (s *MemoryUserStore) EmailExists(email string) (bool, error) {
	_, err := s.FindByEmail(email)
	if err == nil {
		return true, nil
	}
	if domain.IsNotFound(err) {
		return false, nil
	}
	return false, err
}

func (s *MemoryUserStore) Create(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	u.ID = s.nextID
	s.byID[u.ID] = u
	return u, nil
}

func (s *MemoryUserStore) Update(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[u.ID]; !ok {
		return domain.NotFoundError{Resource: "user"}
	}
	s.byID[u.ID] = u
	return nil
}

type MemoryBookingStore struct {
	mu              sync.RWMutex
	byID            map[int64]models.Booking
	passengers      map[int64]models.Passenger
	nextID          int64
	nextPassengerID int64
}

func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{
		byID:       map[int64]models.Booking{},
		passengers: map[int64]models.Passenger{},
	}
}

func (s *MemoryBookingStore) FindByID(id int64) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.byID[id]
	if !ok {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, nil
}

func (s *MemoryBookingStore) FindByReference(reference string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.byID {
		if b.Reference == reference {
			return b, nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}

func (s *MemoryBookingStore) ListByUser(userID int64) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range s.byID {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryBookingStore) ListByUserAndStatus(userID int64, status models.BookingStatus) ([]models.Booking, error) {
	all, _ := s.ListByUser(userID)
	out := []models.Booking{}
	for _, b := range all {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemoryBookingStore) Create(b models.Booking) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byID {
		if existing.Reference == b.Reference {
			return models.Booking{}, domain.ConflictError{Resource: "booking", Msg: "reference already exists"}
		}
	}
	s.nextID++
	b.ID = s.nextID
	s.byID[b.ID] = b
	return b, nil
}

func (s *MemoryBookingStore) Update(b models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[b.ID]; !ok {
		return domain.NotFoundError{Resource: "booking"}
	}
	s.byID[b.ID] = b
	return nil
}

func (s *MemoryBookingStore) MarkCancelled(id int64) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byID[id]
	if !ok {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	if b.Status == models.BookingCancelled {
		return models.Booking{}, domain.StateError{Msg: "booking already cancelled"}
	}
	b.Status = models.BookingCancelled
	s.byID[id] = b
	return b, nil
}

func (s *MemoryBookingStore) CreatePassenger(p models.Passenger) (models.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPassengerID++
	p.ID = s.nextPassengerID
	s.passengers[p.ID] = p
	return p, nil
}

func (s *MemoryBookingStore) FindPassenger(id int64) (models.Passenger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.passengers[id]
	if !ok {
		return models.Passenger{}, domain.NotFoundError{Resource: "passenger"}
	}
	return p, nil
}

func (s *MemoryBookingStore) DeletePassenger(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.passengers, id)
	return nil
}
