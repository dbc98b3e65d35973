package command

import (
	"context"
	"fmt"
	"strings"

	"flightbook/internal/domain"
	"flightbook/internal/registry"
	"flightbook/internal/storage"
)

// IgnoreSeats disables the minimum-available-seats filter.
const IgnoreSeats = -1

// SearchFlights filters flights by substring match on every non-empty text
// criterion plus a minimum available seat count. A flight matches only when
// it satisfies all given filters. The result is stored as the registry's
// filtered flight list for the next display.
type SearchFlights struct {
	FlightNumber  string
	Origin        string
	Destination   string
	DepartureDate string
	MinSeats      int
}

func (c *SearchFlights) Name() string { return "search" }

func (c *SearchFlights) Execute(ctx context.Context, sys *registry.FlightBookingSystem, store *storage.Storage) (*Result, error) {
	var matches []*domain.Flight
	for _, f := range sys.Flights() {
		if !c.matches(f) {
			continue
		}
		matches = append(matches, f)
	}

	if len(matches) == 0 {
		return nil, domain.ErrNoResults
	}

	sys.SetFilteredFlights(matches)

	lines := make([]string, 0, len(matches))
	for _, f := range matches {
		lines = append(lines, fmt.Sprintf("%s (Available seats: %d)", f.DetailsShort(), f.AvailableSeats()))
	}
	return &Result{
		Message: fmt.Sprintf("%d flight(s) found.", len(matches)),
		Lines:   lines,
		Flights: matches,
	}, nil
}

func (c *SearchFlights) matches(f *domain.Flight) bool {
	if c.FlightNumber != "" && !strings.Contains(f.FlightNumber, c.FlightNumber) {
		return false
	}
	if c.Origin != "" && !strings.Contains(f.Origin, c.Origin) {
		return false
	}
	if c.Destination != "" && !strings.Contains(f.Destination, c.Destination) {
		return false
	}
	if c.DepartureDate != "" && !strings.Contains(f.DepartureDate.Format(domain.DateLayout), c.DepartureDate) {
		return false
	}
	if c.MinSeats != IgnoreSeats && f.AvailableSeats() < c.MinSeats {
		return false
	}
	return true
}
