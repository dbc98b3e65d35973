package command

import (
	"context"
	"fmt"

	"flightbook/internal/domain"
	"flightbook/internal/registry"
	"flightbook/internal/storage"
)

type AddBooking struct {
	CustomerID       int
	OutboundFlightID int
	ReturnFlightID   *int // nil for a one-way booking
}

func (c *AddBooking) Name() string { return "addbooking" }

func (c *AddBooking) Execute(ctx context.Context, sys *registry.FlightBookingSystem, store *storage.Storage) (*Result, error) {
	customer, err := sys.CustomerByID(c.CustomerID)
	if err != nil {
		return nil, err
	}
	outbound, err := sys.FlightByID(c.OutboundFlightID)
	if err != nil {
		return nil, fmt.Errorf("outbound %w", err)
	}
	var returnFlight *domain.Flight
	if c.ReturnFlightID != nil {
		returnFlight, err = sys.FlightByID(*c.ReturnFlightID)
		if err != nil {
			return nil, fmt.Errorf("return %w", err)
		}
	}

	// Seat checks happen before anything is linked so a full return flight
	// does not leave a half-made booking behind.
	if outbound.AvailableSeats() <= 0 {
		return nil, fmt.Errorf("outbound flight #%d: %w", outbound.ID, domain.ErrCapacityExceeded)
	}
	if returnFlight != nil && returnFlight.AvailableSeats() <= 0 {
		return nil, fmt.Errorf("return flight #%d: %w", returnFlight.ID, domain.ErrCapacityExceeded)
	}

	booking := domain.NewBooking(customer, outbound, returnFlight, sys.CurrentDate())
	customer.AddBooking(booking)
	if err := outbound.AddPassenger(customer); err != nil {
		return nil, err
	}
	if returnFlight != nil {
		if err := returnFlight.AddPassenger(customer); err != nil {
			return nil, err
		}
	}

	if err := store.Bookings.Store(sys); err != nil {
		return nil, fmt.Errorf("failed to save booking data: %w", err)
	}

	lines := []string{
		"Customer: " + customer.Name,
		fmt.Sprintf("Outbound Flight: %s from %s to %s", outbound.FlightNumber, outbound.Origin, outbound.Destination),
		"Price: $" + domain.FormatPrice(outbound.Price),
		"Departure Date: " + outbound.DepartureDate.Format(domain.DateLayout),
	}
	if returnFlight != nil {
		lines = append(lines,
			fmt.Sprintf("Return Flight: %s from %s to %s", returnFlight.FlightNumber, returnFlight.Origin, returnFlight.Destination),
			"Return Price: $"+domain.FormatPrice(returnFlight.Price),
			"Return Date: "+returnFlight.DepartureDate.Format(domain.DateLayout),
		)
	}
	lines = append(lines, "Total Price: $"+domain.FormatPrice(booking.TotalPrice()))

	return &Result{
		Message: "Booking added successfully.",
		Lines:   lines,
		Amount:  booking.TotalPrice(),
	}, nil
}
