package command

import (
	"context"
	"fmt"

	"flightbook/internal/domain"
	"flightbook/internal/registry"
	"flightbook/internal/storage"
)

type EditBooking struct {
	CustomerID  int
	OldFlightID int
	NewFlightID int
}

func (c *EditBooking) Name() string { return "editbooking" }

func (c *EditBooking) Execute(ctx context.Context, sys *registry.FlightBookingSystem, store *storage.Storage) (*Result, error) {
	customer, err := sys.CustomerByID(c.CustomerID)
	if err != nil {
		return nil, err
	}

	booking := customer.BookingForFlight(c.OldFlightID)
	if booking == nil {
		return nil, fmt.Errorf("customer #%d has no booking for flight #%d: %w", c.CustomerID, c.OldFlightID, domain.ErrNotFound)
	}

	newFlight, err := sys.FlightByID(c.NewFlightID)
	if err != nil {
		return nil, err
	}
	if newFlight.AvailableSeats() <= 0 {
		return nil, fmt.Errorf("flight #%d: %w", newFlight.ID, domain.ErrCapacityExceeded)
	}

	// The rebooking fee is reported on top of the new flight's price; the
	// booking keeps its stored default fees.
	cost := newFlight.Price + booking.RebookFee

	var oldFlight *domain.Flight
	if booking.Outbound.ID == c.OldFlightID {
		oldFlight = booking.Outbound
		booking.Outbound = newFlight
	} else {
		oldFlight = booking.Return
		booking.Return = newFlight
	}

	oldFlight.RemovePassenger(customer)
	if err := newFlight.AddPassenger(customer); err != nil {
		return nil, err
	}

	if err := store.Bookings.Store(sys); err != nil {
		return nil, fmt.Errorf("failed to save booking data: %w", err)
	}

	return &Result{
		Message: "Booking updated successfully.",
		Lines: []string{
			"Customer: " + customer.Name,
			fmt.Sprintf("Old Flight: %s (%s to %s)", oldFlight.FlightNumber, oldFlight.Origin, oldFlight.Destination),
			fmt.Sprintf("New Flight: %s (%s to %s)", newFlight.FlightNumber, newFlight.Origin, newFlight.Destination),
			"Rebooking Fee: $" + domain.FormatPrice(booking.RebookFee),
			"Total Cost After Rebooking: $" + domain.FormatPrice(cost),
		},
		Amount: cost,
	}, nil
}
