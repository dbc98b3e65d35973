package domain

import (
	"fmt"
	"strings"
)

type Customer struct {
	ID    int
	Name  string
	Phone string
	Email string

	bookings []*Booking
}

func NewCustomer(id int, name, phone, email string) *Customer {
	return &Customer{ID: id, Name: name, Phone: phone, Email: email}
}

// Bookings returns a copy of the customer's booking list in insertion order.
func (c *Customer) Bookings() []*Booking {
	out := make([]*Booking, len(c.bookings))
	copy(out, c.bookings)
	return out
}

func (c *Customer) BookingCount() int {
	return len(c.bookings)
}

func (c *Customer) AddBooking(b *Booking) {
	for _, existing := range c.bookings {
		if existing == b {
			return
		}
	}
	c.bookings = append(c.bookings, b)
}

func (c *Customer) RemoveBooking(b *Booking) {
	for i, existing := range c.bookings {
		if existing == b {
			c.bookings = append(c.bookings[:i], c.bookings[i+1:]...)
			return
		}
	}
}

// BookingForFlight finds the first booking that uses the given flight as
// either leg, or nil if the customer has no such booking.
func (c *Customer) BookingForFlight(flightID int) *Booking {
	for _, b := range c.bookings {
		if b.Outbound.ID == flightID || (b.Return != nil && b.Return.ID == flightID) {
			return b
		}
	}
	return nil
}

func (c *Customer) DetailsShort() string {
	return fmt.Sprintf("Customer #%d - %s - %s - %s", c.ID, c.Name, c.Phone, c.Email)
}

func (c *Customer) DetailsLong() string {
	var b strings.Builder
	b.WriteString("Customer Details:\n")
	fmt.Fprintf(&b, "ID: %d\n", c.ID)
	fmt.Fprintf(&b, "Name: %s\n", c.Name)
	fmt.Fprintf(&b, "Phone: %s\n", c.Phone)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	b.WriteString("Bookings:\n")
	if len(c.bookings) == 0 {
		b.WriteString("No bookings available.\n")
		return b.String()
	}
	for _, booking := range c.bookings {
		fmt.Fprintf(&b, "- %s\n", booking.Details())
	}
	return b.String()
}
