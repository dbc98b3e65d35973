package command

import (
	"context"
	"fmt"

	"flightbook/internal/domain"
	"flightbook/internal/registry"
	"flightbook/internal/storage"
)

type CancelBooking struct {
	CustomerID int
	FlightID   int
}

func (c *CancelBooking) Name() string { return "cancelbooking" }

func (c *CancelBooking) Execute(ctx context.Context, sys *registry.FlightBookingSystem, store *storage.Storage) (*Result, error) {
	customer, err := sys.CustomerByID(c.CustomerID)
	if err != nil {
		return nil, err
	}

	booking := customer.BookingForFlight(c.FlightID)
	if booking == nil {
		return nil, fmt.Errorf("customer #%d has no booking for flight #%d: %w", c.CustomerID, c.FlightID, domain.ErrNotFound)
	}

	outbound := booking.Outbound
	returnFlight := booking.Return

	// The cancellation fee is charged once per involved flight; the refund
	// is clamped at zero after summing, not per leg.
	refund := outbound.Price - booking.CancellationFee
	if returnFlight != nil {
		refund += returnFlight.Price - booking.CancellationFee
	}
	if refund < 0 {
		refund = 0
	}

	customer.RemoveBooking(booking)
	outbound.RemovePassenger(customer)
	if returnFlight != nil {
		returnFlight.RemovePassenger(customer)
	}

	if err := store.Bookings.Store(sys); err != nil {
		return nil, fmt.Errorf("failed to save booking data: %w", err)
	}

	lines := []string{
		"Customer: " + customer.Name,
		fmt.Sprintf("Outbound Flight: %s (%s to %s)", outbound.FlightNumber, outbound.Origin, outbound.Destination),
		"Cancellation Fee: $" + domain.FormatPrice(booking.CancellationFee),
	}
	if returnFlight != nil {
		lines = append(lines,
			fmt.Sprintf("Return Flight: %s (%s to %s)", returnFlight.FlightNumber, returnFlight.Origin, returnFlight.Destination),
			"Additional Cancellation Fee: $"+domain.FormatPrice(booking.CancellationFee),
		)
	}
	lines = append(lines, "Total Refund Amount: $"+domain.FormatPrice(refund))

	return &Result{
		Message: "Booking canceled successfully.",
		Lines:   lines,
		Amount:  refund,
	}, nil
}
