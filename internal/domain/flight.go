package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DateLayout is the calendar date format used in persisted records.
const DateLayout = "2006-01-02"

const shortDateLayout = "02/01/2006"

type Flight struct {
	ID            int
	FlightNumber  string
	Origin        string
	Destination   string
	DepartureDate time.Time
	Capacity      int
	Price         float64

	passengers map[int]*Customer
}

func NewFlight(id int, flightNumber, origin, destination string, departureDate time.Time, capacity int, price float64) *Flight {
	return &Flight{
		ID:            id,
		FlightNumber:  flightNumber,
		Origin:        origin,
		Destination:   destination,
		DepartureDate: departureDate,
		Capacity:      capacity,
		Price:         price,
		passengers:    make(map[int]*Customer),
	}
}

// Passengers returns the customers booked on this flight, ordered by id.
func (f *Flight) Passengers() []*Customer {
	out := make([]*Customer, 0, len(f.passengers))
	for _, c := range f.passengers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *Flight) PassengerCount() int {
	return len(f.passengers)
}

func (f *Flight) AvailableSeats() int {
	return f.Capacity - len(f.passengers)
}

func (f *Flight) HasPassenger(customerID int) bool {
	_, ok := f.passengers[customerID]
	return ok
}

// AddPassenger fails with ErrCapacityExceeded when the flight is full.
// Adding a customer that is already aboard is a no-op.
func (f *Flight) AddPassenger(c *Customer) error {
	if _, ok := f.passengers[c.ID]; ok {
		return nil
	}
	if len(f.passengers) >= f.Capacity {
		return fmt.Errorf("flight #%d: %w", f.ID, ErrCapacityExceeded)
	}
	f.passengers[c.ID] = c
	return nil
}

func (f *Flight) RemovePassenger(c *Customer) {
	delete(f.passengers, c.ID)
}

func (f *Flight) DetailsShort() string {
	return fmt.Sprintf("Flight #%d - %s - %s to %s on %s",
		f.ID, f.FlightNumber, f.Origin, f.Destination, f.DepartureDate.Format(shortDateLayout))
}

func (f *Flight) DetailsLong() string {
	var b strings.Builder
	b.WriteString("Flight Details:\n")
	fmt.Fprintf(&b, "ID: %d\n", f.ID)
	fmt.Fprintf(&b, "Flight Number: %s\n", f.FlightNumber)
	fmt.Fprintf(&b, "Origin: %s\n", f.Origin)
	fmt.Fprintf(&b, "Destination: %s\n", f.Destination)
	fmt.Fprintf(&b, "Departure Date: %s\n", f.DepartureDate.Format(DateLayout))
	fmt.Fprintf(&b, "Capacity: %d\n", f.Capacity)
	fmt.Fprintf(&b, "Price ($): %s\n", FormatPrice(f.Price))
	fmt.Fprintf(&b, "Passengers (%d/%d):\n", len(f.passengers), f.Capacity)
	for _, p := range f.Passengers() {
		fmt.Fprintf(&b, "- %s\n", p.DetailsShort())
	}
	return b.String()
}
