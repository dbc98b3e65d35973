package storage

import (
	"fmt"
	"strconv"
	"time"

	"flightbook/internal/domain"
	"flightbook/internal/registry"
)

// Flight line: id, flight number, origin, destination, departure date,
// capacity, price.
const flightFieldCount = 7

type FlightStore struct {
	path string
}

func NewFlightStore(path string) *FlightStore {
	return &FlightStore{path: path}
}

func (fs *FlightStore) Load(sys *registry.FlightBookingSystem) error {
	return forEachRecord(fs.path, flightFieldCount, func(line int, fields []string) error {
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return &ParseError{Line: line, Err: fmt.Errorf("flight id %q: %w", fields[0], err)}
		}
		departure, err := time.Parse(domain.DateLayout, fields[4])
		if err != nil {
			return &ParseError{Line: line, Err: err}
		}
		capacity, err := strconv.Atoi(fields[5])
		if err != nil {
			return &ParseError{Line: line, Err: fmt.Errorf("flight capacity %q: %w", fields[5], err)}
		}
		price, err := strconv.ParseFloat(fields[6], 64)
		if err != nil {
			return &ParseError{Line: line, Err: fmt.Errorf("flight price %q: %w", fields[6], err)}
		}

		flight := domain.NewFlight(id, fields[1], fields[2], fields[3], departure, capacity, price)
		if err := sys.AddFlight(flight); err != nil {
			return &FormatError{Line: line, Reason: err.Error()}
		}
		return nil
	})
}

func (fs *FlightStore) Store(sys *registry.FlightBookingSystem) error {
	flights := sys.Flights()
	records := make([][]string, 0, len(flights))
	for _, f := range flights {
		records = append(records, []string{
			strconv.Itoa(f.ID),
			f.FlightNumber,
			f.Origin,
			f.Destination,
			f.DepartureDate.Format(domain.DateLayout),
			strconv.Itoa(f.Capacity),
			domain.FormatPrice(f.Price),
		})
	}
	return writeRecords(fs.path, records)
}

var _ DataStore = (*FlightStore)(nil)
