package storage

import (
	"fmt"
	"strconv"
	"time"

	"flightbook/internal/domain"
	"flightbook/internal/registry"
)

// Booking line: customer id, outbound flight id, booking date, return
// flight id or NULL. Flights and customers must already be loaded when
// bookings are read.
const bookingFieldCount = 4

type BookingStore struct {
	path string
}

func NewBookingStore(path string) *BookingStore {
	return &BookingStore{path: path}
}

func (bs *BookingStore) Load(sys *registry.FlightBookingSystem) error {
	return forEachRecord(bs.path, bookingFieldCount, func(line int, fields []string) error {
		customerID, err := strconv.Atoi(fields[0])
		if err != nil {
			return &ParseError{Line: line, Err: fmt.Errorf("customer id %q: %w", fields[0], err)}
		}
		outboundID, err := strconv.Atoi(fields[1])
		if err != nil {
			return &ParseError{Line: line, Err: fmt.Errorf("outbound flight id %q: %w", fields[1], err)}
		}
		bookingDate, err := time.Parse(domain.DateLayout, fields[2])
		if err != nil {
			return &ParseError{Line: line, Err: err}
		}

		var returnFlight *domain.Flight
		if !isNullField(fields[3]) {
			returnID, err := strconv.Atoi(fields[3])
			if err != nil {
				return &ParseError{Line: line, Err: fmt.Errorf("return flight id %q: %w", fields[3], err)}
			}
			returnFlight, err = sys.FlightByID(returnID)
			if err != nil {
				return &FormatError{Line: line, Reason: fmt.Sprintf("unknown return flight id %d", returnID)}
			}
		}

		customer, err := sys.CustomerByID(customerID)
		if err != nil {
			return &FormatError{Line: line, Reason: fmt.Sprintf("unknown customer id %d", customerID)}
		}
		outbound, err := sys.FlightByID(outboundID)
		if err != nil {
			return &FormatError{Line: line, Reason: fmt.Sprintf("unknown outbound flight id %d", outboundID)}
		}

		booking := domain.NewBooking(customer, outbound, returnFlight, bookingDate)
		customer.AddBooking(booking)
		if err := outbound.AddPassenger(customer); err != nil {
			return &FormatError{Line: line, Reason: err.Error()}
		}
		if returnFlight != nil {
			if err := returnFlight.AddPassenger(customer); err != nil {
				return &FormatError{Line: line, Reason: err.Error()}
			}
		}
		return nil
	})
}

func (bs *BookingStore) Store(sys *registry.FlightBookingSystem) error {
	var records [][]string
	for _, customer := range sys.Customers() {
		for _, booking := range customer.Bookings() {
			returnField := nullToken
			if booking.Return != nil {
				returnField = strconv.Itoa(booking.Return.ID)
			}
			records = append(records, []string{
				strconv.Itoa(booking.Customer.ID),
				strconv.Itoa(booking.Outbound.ID),
				booking.Date.Format(domain.DateLayout),
				returnField,
			})
		}
	}
	return writeRecords(bs.path, records)
}

var _ DataStore = (*BookingStore)(nil)
