package command

import (
	"context"
	"fmt"
	"sort"

	"flightbook/internal/domain"
	"flightbook/internal/registry"
	"flightbook/internal/storage"
)

// ListFlights reports flights departing strictly after the current system
// date, ordered by departure date.
type ListFlights struct{}

func (c *ListFlights) Name() string { return "listflights" }

func (c *ListFlights) Execute(ctx context.Context, sys *registry.FlightBookingSystem, store *storage.Storage) (*Result, error) {
	today := sys.CurrentDate()

	var upcoming []*domain.Flight
	for _, f := range sys.Flights() {
		if f.DepartureDate.After(today) {
			upcoming = append(upcoming, f)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DepartureDate.Before(upcoming[j].DepartureDate)
	})

	if len(upcoming) == 0 {
		return &Result{Message: "No upcoming flights available."}, nil
	}

	lines := make([]string, 0, len(upcoming))
	for _, f := range upcoming {
		lines = append(lines, fmt.Sprintf("%s (Passengers: %d/%d)", f.DetailsShort(), f.PassengerCount(), f.Capacity))
	}
	return &Result{
		Message: fmt.Sprintf("%d upcoming flight(s) listed.", len(upcoming)),
		Lines:   lines,
		Flights: upcoming,
	}, nil
}

type ListCustomers struct{}

func (c *ListCustomers) Name() string { return "listcustomers" }

func (c *ListCustomers) Execute(ctx context.Context, sys *registry.FlightBookingSystem, store *storage.Storage) (*Result, error) {
	customers := sys.Customers()
	if len(customers) == 0 {
		return &Result{Message: "No customers found."}, nil
	}

	lines := make([]string, 0, len(customers))
	for _, cust := range customers {
		lines = append(lines, cust.DetailsShort())
	}
	return &Result{
		Message:   fmt.Sprintf("%d customer(s) found.", len(customers)),
		Lines:     lines,
		Customers: customers,
	}, nil
}

type ShowFlight struct {
	FlightID int
}

func (c *ShowFlight) Name() string { return "showflight" }

func (c *ShowFlight) Execute(ctx context.Context, sys *registry.FlightBookingSystem, store *storage.Storage) (*Result, error) {
	flight, err := sys.FlightByID(c.FlightID)
	if err != nil {
		return nil, err
	}
	return &Result{
		Message: flight.DetailsLong(),
		Flights: []*domain.Flight{flight},
	}, nil
}

type ShowCustomer struct {
	CustomerID int
}

func (c *ShowCustomer) Name() string { return "showcustomer" }

func (c *ShowCustomer) Execute(ctx context.Context, sys *registry.FlightBookingSystem, store *storage.Storage) (*Result, error) {
	customer, err := sys.CustomerByID(c.CustomerID)
	if err != nil {
		return nil, err
	}
	return &Result{
		Message:   customer.DetailsLong(),
		Customers: []*domain.Customer{customer},
	}, nil
}
