package command

import (
	"context"
	"fmt"
	"time"

	"flightbook/internal/domain"
	"flightbook/internal/registry"
	"flightbook/internal/storage"
)

type AddFlight struct {
	FlightNumber  string    `validate:"required"`
	Origin        string    `validate:"required"`
	Destination   string    `validate:"required"`
	DepartureDate time.Time `validate:"required"`
	Capacity      int       `validate:"gt=0"`
	Price         float64   `validate:"gte=0"`
}

func (c *AddFlight) Name() string { return "addflight" }

func (c *AddFlight) Execute(ctx context.Context, sys *registry.FlightBookingSystem, store *storage.Storage) (*Result, error) {
	if err := validateInput(c.Name(), c); err != nil {
		return nil, err
	}

	flight := domain.NewFlight(sys.NextFlightID(), c.FlightNumber, c.Origin, c.Destination, c.DepartureDate, c.Capacity, c.Price)
	if err := sys.AddFlight(flight); err != nil {
		return nil, err
	}

	if err := store.Flights.Store(sys); err != nil {
		return nil, fmt.Errorf("failed to save flight data: %w", err)
	}

	return &Result{
		Message: fmt.Sprintf("Flight #%d added.", flight.ID),
		Lines: []string{
			"Origin: " + flight.Origin,
			"Destination: " + flight.Destination,
			"Departure: " + flight.DepartureDate.Format(domain.DateLayout),
			fmt.Sprintf("Capacity: %d", flight.Capacity),
			"Price: $" + domain.FormatPrice(flight.Price),
		},
		Flights: []*domain.Flight{flight},
	}, nil
}
