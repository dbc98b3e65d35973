package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Every booking carries both default fees from creation. The fees are part
// of the total price whether or not a cancellation or rebooking ever
// happens; that is the provisioned fee liability of the booking.
const (
	DefaultCancellationFee = 50.0
	DefaultRebookFee       = 30.0
)

type Booking struct {
	Customer *Customer
	Outbound *Flight
	Return   *Flight // nil when the booking is one-way
	Date     time.Time

	CancellationFee float64
	RebookFee       float64
}

func NewBooking(customer *Customer, outbound, returnFlight *Flight, date time.Time) *Booking {
	return &Booking{
		Customer:        customer,
		Outbound:        outbound,
		Return:          returnFlight,
		Date:            date,
		CancellationFee: DefaultCancellationFee,
		RebookFee:       DefaultRebookFee,
	}
}

// TotalPrice is the outbound price, the return price when present, and both
// default fees.
func (b *Booking) TotalPrice() float64 {
	total := b.Outbound.Price + b.CancellationFee + b.RebookFee
	if b.Return != nil {
		total += b.Return.Price
	}
	return total
}

func (b *Booking) Details() string {
	var sb strings.Builder
	sb.WriteString("Booking Details:\n")
	fmt.Fprintf(&sb, "Customer: %s\n", b.Customer.Name)
	fmt.Fprintf(&sb, "Outbound Flight: %s (%s to %s)\n", b.Outbound.FlightNumber, b.Outbound.Origin, b.Outbound.Destination)
	fmt.Fprintf(&sb, "Departure Date: %s\n", b.Outbound.DepartureDate.Format(DateLayout))
	fmt.Fprintf(&sb, "Booking Date: %s\n", b.Date.Format(DateLayout))
	if b.Return != nil {
		fmt.Fprintf(&sb, "Return Flight: %s (%s to %s)\n", b.Return.FlightNumber, b.Return.Origin, b.Return.Destination)
		fmt.Fprintf(&sb, "Return Date: %s\n", b.Return.DepartureDate.Format(DateLayout))
	}
	fmt.Fprintf(&sb, "Total Price: $%s", FormatPrice(b.TotalPrice()))
	return sb.String()
}

// FormatPrice renders a price in plain decimal notation.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
