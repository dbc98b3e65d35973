// Package registry holds the in-memory authoritative store of flights and
// customers. It is the single shared-state root: commands never hold entity
// maps of their own.
//
// The registry itself does no locking. Safety relies on the single-writer
// execution model enforced by the command dispatcher.
package registry

import (
	"fmt"
	"sort"
	"time"

	"flightbook/internal/domain"
)

type FlightBookingSystem struct {
	flights   map[int]*domain.Flight
	customers map[int]*domain.Customer

	// Last search result. Request-scoped working state, never persisted.
	filtered []*domain.Flight

	now func() time.Time
}

type Option func(*FlightBookingSystem)

// WithClock overrides the system clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *FlightBookingSystem) {
		s.now = now
	}
}

func New(opts ...Option) *FlightBookingSystem {
	s := &FlightBookingSystem{
		flights:   make(map[int]*domain.Flight),
		customers: make(map[int]*domain.Customer),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentDate returns the system's calendar date with no time component.
func (s *FlightBookingSystem) CurrentDate() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Flights returns all flights ordered by ascending id.
func (s *FlightBookingSystem) Flights() []*domain.Flight {
	out := make([]*domain.Flight, 0, len(s.flights))
	for _, f := range s.flights {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Customers returns all customers ordered by ascending id.
func (s *FlightBookingSystem) Customers() []*domain.Customer {
	out := make([]*domain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *FlightBookingSystem) FlightByID(id int) (*domain.Flight, error) {
	f, ok := s.flights[id]
	if !ok {
		return nil, fmt.Errorf("flight #%d: %w", id, domain.ErrNotFound)
	}
	return f, nil
}

func (s *FlightBookingSystem) CustomerByID(id int) (*domain.Customer, error) {
	c, ok := s.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer #%d: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// AddFlight inserts a flight. It fails with ErrDuplicateID when the id is
// taken and with ErrConflictingSchedule when another flight has the same
// number and departure date.
func (s *FlightBookingSystem) AddFlight(f *domain.Flight) error {
	if _, ok := s.flights[f.ID]; ok {
		return fmt.Errorf("flight #%d: %w", f.ID, domain.ErrDuplicateID)
	}
	for _, existing := range s.flights {
		if existing.FlightNumber == f.FlightNumber && sameDate(existing.DepartureDate, f.DepartureDate) {
			return fmt.Errorf("flight %s on %s: %w",
				f.FlightNumber, f.DepartureDate.Format(domain.DateLayout), domain.ErrConflictingSchedule)
		}
	}
	s.flights[f.ID] = f
	return nil
}

// AddCustomer inserts a customer. There is no uniqueness check beyond the
// id key; an existing customer with the same id is overwritten.
func (s *FlightBookingSystem) AddCustomer(c *domain.Customer) {
	s.customers[c.ID] = c
}

// RemoveFlight deletes the flight from the map. Callers are responsible for
// checking the no-passengers precondition first.
func (s *FlightBookingSystem) RemoveFlight(id int) {
	delete(s.flights, id)
}

// RemoveCustomer deletes the customer from the map. Callers are responsible
// for checking the no-bookings precondition first.
func (s *FlightBookingSystem) RemoveCustomer(id int) {
	delete(s.customers, id)
}

// NextFlightID returns max existing flight id + 1, or 1 when empty.
func (s *FlightBookingSystem) NextFlightID() int {
	max := 0
	for id := range s.flights {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// NextCustomerID returns max existing customer id + 1, or 1 when empty.
// The flight and customer id spaces are independent.
func (s *FlightBookingSystem) NextCustomerID() int {
	max := 0
	for id := range s.customers {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func (s *FlightBookingSystem) SetFilteredFlights(flights []*domain.Flight) {
	s.filtered = flights
}

func (s *FlightBookingSystem) FilteredFlights() []*domain.Flight {
	return s.filtered
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
