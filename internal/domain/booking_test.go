package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate(day int) time.Time {
	return time.Date(2025, 7, day, 0, 0, 0, 0, time.UTC)
}

func TestBooking_TotalPrice_OneWay(t *testing.T) {
	customer := NewCustomer(1, "Jo", "123", "j@x.com")
	outbound := NewFlight(1, "FL1", "NYC", "LON", testDate(1), 1, 500.0)

	booking := NewBooking(customer, outbound, nil, testDate(1))

	// 500 + 50 cancellation + 30 rebooking.
	assert.Equal(t, 580.0, booking.TotalPrice())
}

func TestBooking_TotalPrice_WithReturn(t *testing.T) {
	customer := NewCustomer(1, "Jo", "123", "j@x.com")
	outbound := NewFlight(1, "FL1", "NYC", "LON", testDate(1), 10, 500.0)
	returnFlight := NewFlight(2, "FL2", "LON", "NYC", testDate(8), 10, 450.0)

	booking := NewBooking(customer, outbound, returnFlight, testDate(1))

	assert.Equal(t, 500.0+450.0+50.0+30.0, booking.TotalPrice())
}

func TestBooking_DefaultFees(t *testing.T) {
	customer := NewCustomer(1, "Jo", "123", "")
	outbound := NewFlight(1, "FL1", "NYC", "LON", testDate(1), 10, 500.0)

	booking := NewBooking(customer, outbound, nil, testDate(1))

	assert.Equal(t, 50.0, booking.CancellationFee)
	assert.Equal(t, 30.0, booking.RebookFee)
}

func TestBooking_Details(t *testing.T) {
	customer := NewCustomer(1, "Jo", "123", "j@x.com")
	outbound := NewFlight(1, "FL1", "NYC", "LON", testDate(1), 10, 500.0)
	returnFlight := NewFlight(2, "FL2", "LON", "NYC", testDate(8), 10, 450.0)

	booking := NewBooking(customer, outbound, returnFlight, testDate(1))
	details := booking.Details()

	assert.Contains(t, details, "Customer: Jo")
	assert.Contains(t, details, "Outbound Flight: FL1 (NYC to LON)")
	assert.Contains(t, details, "Return Flight: FL2 (LON to NYC)")
	assert.Contains(t, details, "Total Price: $1030")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "500", FormatPrice(500.0))
	assert.Equal(t, "499.99", FormatPrice(499.99))
	assert.Equal(t, "0", FormatPrice(0))
}

func TestFlight_AddPassenger_CapacityExceeded(t *testing.T) {
	flight := NewFlight(1, "FL1", "NYC", "LON", testDate(1), 1, 500.0)
	first := NewCustomer(1, "Jo", "123", "")
	second := NewCustomer(2, "Sam", "456", "")

	require.NoError(t, flight.AddPassenger(first))

	err := flight.AddPassenger(second)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 1, flight.PassengerCount())
}

func TestFlight_AddPassenger_AlreadyAboardIsNoOp(t *testing.T) {
	flight := NewFlight(1, "FL1", "NYC", "LON", testDate(1), 1, 500.0)
	customer := NewCustomer(1, "Jo", "123", "")

	require.NoError(t, flight.AddPassenger(customer))
	require.NoError(t, flight.AddPassenger(customer))

	assert.Equal(t, 1, flight.PassengerCount())
	assert.Equal(t, 0, flight.AvailableSeats())
}

func TestFlight_RemovePassenger(t *testing.T) {
	flight := NewFlight(1, "FL1", "NYC", "LON", testDate(1), 2, 500.0)
	customer := NewCustomer(1, "Jo", "123", "")

	require.NoError(t, flight.AddPassenger(customer))
	flight.RemovePassenger(customer)

	assert.False(t, flight.HasPassenger(1))
	assert.Equal(t, 2, flight.AvailableSeats())
}

func TestFlight_Passengers_OrderedByID(t *testing.T) {
	flight := NewFlight(1, "FL1", "NYC", "LON", testDate(1), 5, 500.0)
	for _, id := range []int{3, 1, 2} {
		require.NoError(t, flight.AddPassenger(NewCustomer(id, "c", "p", "")))
	}

	passengers := flight.Passengers()
	require.Len(t, passengers, 3)
	assert.Equal(t, 1, passengers[0].ID)
	assert.Equal(t, 2, passengers[1].ID)
	assert.Equal(t, 3, passengers[2].ID)
}

func TestFlight_DetailsShort(t *testing.T) {
	flight := NewFlight(7, "FL1", "NYC", "LON", testDate(1), 5, 500.0)
	assert.Equal(t, "Flight #7 - FL1 - NYC to LON on 01/07/2025", flight.DetailsShort())
}

func TestCustomer_BookingForFlight(t *testing.T) {
	customer := NewCustomer(1, "Jo", "123", "")
	outbound := NewFlight(1, "FL1", "NYC", "LON", testDate(1), 10, 500.0)
	returnFlight := NewFlight(2, "FL2", "LON", "NYC", testDate(8), 10, 450.0)
	booking := NewBooking(customer, outbound, returnFlight, testDate(1))
	customer.AddBooking(booking)

	assert.Same(t, booking, customer.BookingForFlight(1))
	assert.Same(t, booking, customer.BookingForFlight(2))
	assert.Nil(t, customer.BookingForFlight(99))
}

func TestCustomer_AddBooking_NoDuplicates(t *testing.T) {
	customer := NewCustomer(1, "Jo", "123", "")
	outbound := NewFlight(1, "FL1", "NYC", "LON", testDate(1), 10, 500.0)
	booking := NewBooking(customer, outbound, nil, testDate(1))

	customer.AddBooking(booking)
	customer.AddBooking(booking)

	assert.Equal(t, 1, customer.BookingCount())
}

func TestCustomer_RemoveBooking(t *testing.T) {
	customer := NewCustomer(1, "Jo", "123", "")
	outbound := NewFlight(1, "FL1", "NYC", "LON", testDate(1), 10, 500.0)
	booking := NewBooking(customer, outbound, nil, testDate(1))
	customer.AddBooking(booking)

	customer.RemoveBooking(booking)

	assert.Equal(t, 0, customer.BookingCount())
	assert.Nil(t, customer.BookingForFlight(1))
}

func TestCustomer_DetailsLong_NoBookings(t *testing.T) {
	customer := NewCustomer(1, "Jo", "123", "j@x.com")
	assert.Contains(t, customer.DetailsLong(), "No bookings available.")
}
