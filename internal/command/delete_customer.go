package command

import (
	"context"
	"fmt"

	"flightbook/internal/domain"
	"flightbook/internal/registry"
	"flightbook/internal/storage"
)

type DeleteCustomer struct {
	CustomerID int
}

func (c *DeleteCustomer) Name() string { return "deletecustomer" }

func (c *DeleteCustomer) Execute(ctx context.Context, sys *registry.FlightBookingSystem, store *storage.Storage) (*Result, error) {
	customer, err := sys.CustomerByID(c.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer.BookingCount() > 0 {
		return nil, fmt.Errorf("customer #%d has active bookings: %w", c.CustomerID, domain.ErrHasDependents)
	}

	sys.RemoveCustomer(c.CustomerID)

	if err := store.Customers.Store(sys); err != nil {
		return nil, fmt.Errorf("failed to save customer data: %w", err)
	}

	return &Result{
		Message: fmt.Sprintf("Customer #%d deleted successfully.", c.CustomerID),
	}, nil
}
