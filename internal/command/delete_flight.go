package command

import (
	"context"
	"fmt"

	"flightbook/internal/domain"
	"flightbook/internal/registry"
	"flightbook/internal/storage"
)

type DeleteFlight struct {
	FlightID int
}

func (c *DeleteFlight) Name() string { return "deleteflight" }

func (c *DeleteFlight) Execute(ctx context.Context, sys *registry.FlightBookingSystem, store *storage.Storage) (*Result, error) {
	flight, err := sys.FlightByID(c.FlightID)
	if err != nil {
		return nil, err
	}
	if flight.PassengerCount() > 0 {
		return nil, fmt.Errorf("flight #%d has passengers: %w", c.FlightID, domain.ErrHasDependents)
	}

	sys.RemoveFlight(c.FlightID)

	if err := store.Flights.Store(sys); err != nil {
		return nil, fmt.Errorf("failed to save flight data: %w", err)
	}

	return &Result{
		Message: fmt.Sprintf("Flight #%d deleted successfully.", c.FlightID),
		Lines: []string{
			"Origin: " + flight.Origin,
			"Destination: " + flight.Destination,
		},
	}, nil
}
