package command

import (
	"context"
	"fmt"

	"flightbook/internal/domain"
	"flightbook/internal/registry"
	"flightbook/internal/storage"
)

type AddCustomer struct {
	CustomerName string `validate:"required"`
	Phone        string `validate:"required"`
	Email        string `validate:"omitempty,email"`
}

func (c *AddCustomer) Name() string { return "addcustomer" }

func (c *AddCustomer) Execute(ctx context.Context, sys *registry.FlightBookingSystem, store *storage.Storage) (*Result, error) {
	if err := validateInput(c.Name(), c); err != nil {
		return nil, err
	}

	customer := domain.NewCustomer(sys.NextCustomerID(), c.CustomerName, c.Phone, c.Email)
	sys.AddCustomer(customer)

	if err := store.Customers.Store(sys); err != nil {
		return nil, fmt.Errorf("failed to save customer data: %w", err)
	}

	return &Result{
		Message: fmt.Sprintf("Customer #%d added.", customer.ID),
		Lines: []string{
			"Name: " + customer.Name,
			"Phone: " + customer.Phone,
			"Email: " + customer.Email,
		},
		Customers: []*domain.Customer{customer},
	}, nil
}
