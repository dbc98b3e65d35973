package command

import (
	"context"

	"flightbook/internal/registry"
	"flightbook/internal/storage"
)

const HelpText = `Available commands:
  listflights                                            list upcoming flights
  listcustomers                                          list all customers
  addflight <number> <origin> <dest> <date> <cap> <price> add a new flight
  addcustomer <name> <phone> [email]                     add a new customer
  showflight <flight id>                                 show flight details
  showcustomer <customer id>                             show customer details
  addbooking <customer id> <flight id> [return id]       add a new booking
  cancelbooking <customer id> <flight id>                cancel a booking
  editbooking <customer id> <old flight id> <new id>     move a booking to another flight
  deleteflight <flight id>                               delete a flight (admin)
  deletecustomer <customer id>                           delete a customer (admin)
  search [number=] [origin=] [dest=] [date=] [seats=]    search flights
  help                                                   show this message
  exit                                                   save and quit`

type Help struct{}

func (c *Help) Name() string { return "help" }

func (c *Help) Execute(ctx context.Context, sys *registry.FlightBookingSystem, store *storage.Storage) (*Result, error) {
	return &Result{Message: HelpText}, nil
}
