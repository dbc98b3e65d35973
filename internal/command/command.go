// Package command implements the business operations of the booking system.
// Each command is constructed with already-parsed, typed arguments,
// validates them against current registry state, mutates the registry, and
// persists the affected record file. Validation always precedes mutation,
// so a failed command leaves the registry untouched.
package command

import (
	"context"
	"strings"

	"flightbook/internal/domain"
	"flightbook/internal/registry"
	"flightbook/internal/storage"
)

type Command interface {
	Name() string
	Execute(ctx context.Context, sys *registry.FlightBookingSystem, store *storage.Storage) (*Result, error)
}

// Result is the confirmation payload a command hands back to its caller.
type Result struct {
	// Message is the headline confirmation.
	Message string
	// Lines are additional rendered detail lines.
	Lines []string
	// Amount is the monetary outcome when the command has one: booking
	// total price, refund, or rebooking cost.
	Amount float64

	// Result sets for listing and search commands.
	Flights   []*domain.Flight
	Customers []*domain.Customer
}

// Render joins the message and detail lines for display.
func (r *Result) Render() string {
	if len(r.Lines) == 0 {
		return r.Message
	}
	return r.Message + "\n" + strings.Join(r.Lines, "\n")
}
