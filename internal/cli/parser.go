// Package cli tokenizes user input lines into typed commands. It does no
// business validation of its own beyond turning text into the arguments a
// command expects.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"flightbook/internal/command"
	"flightbook/internal/domain"
)

var ErrUnknownCommand = errors.New("invalid command, enter 'help' to see available commands")

var adminOnly = map[string]bool{
	"deleteflight":   true,
	"deletecustomer": true,
}

// RequiresAdmin reports whether the command is reserved for the admin role.
func RequiresAdmin(cmd command.Command) bool {
	return adminOnly[cmd.Name()]
}

// Parse turns one input line into a command.
func Parse(line string) (command.Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, ErrUnknownCommand
	}

	verb := strings.ToLower(tokens[0])
	args := tokens[1:]

	switch verb {
	case "listflights":
		return &command.ListFlights{}, nil

	case "listcustomers":
		return &command.ListCustomers{}, nil

	case "help":
		return &command.Help{}, nil

	case "addflight":
		if len(args) != 6 {
			return nil, usage("addflight <number> <origin> <destination> <date> <capacity> <price>")
		}
		departure, err := time.Parse(domain.DateLayout, args[3])
		if err != nil {
			return nil, fmt.Errorf("departure date must be in YYYY-MM-DD format: %w", err)
		}
		capacity, err := parseInt(args[4])
		if err != nil {
			return nil, err
		}
		price, err := parseFloat(args[5])
		if err != nil {
			return nil, err
		}
		return &command.AddFlight{
			FlightNumber:  args[0],
			Origin:        args[1],
			Destination:   args[2],
			DepartureDate: departure,
			Capacity:      capacity,
			Price:         price,
		}, nil

	case "addcustomer":
		if len(args) < 2 || len(args) > 3 {
			return nil, usage("addcustomer <name> <phone> [email]")
		}
		email := ""
		if len(args) == 3 {
			email = args[2]
		}
		return &command.AddCustomer{CustomerName: args[0], Phone: args[1], Email: email}, nil

	case "showflight":
		id, err := singleID(args, "showflight <flight id>")
		if err != nil {
			return nil, err
		}
		return &command.ShowFlight{FlightID: id}, nil

	case "showcustomer":
		id, err := singleID(args, "showcustomer <customer id>")
		if err != nil {
			return nil, err
		}
		return &command.ShowCustomer{CustomerID: id}, nil

	case "addbooking":
		if len(args) != 2 && len(args) != 3 {
			return nil, usage("addbooking <customer id> <outbound flight id> [return flight id]")
		}
		customerID, err := parseInt(args[0])
		if err != nil {
			return nil, err
		}
		outboundID, err := parseInt(args[1])
		if err != nil {
			return nil, err
		}
		cmd := &command.AddBooking{CustomerID: customerID, OutboundFlightID: outboundID}
		if len(args) == 3 {
			returnID, err := parseInt(args[2])
			if err != nil {
				return nil, err
			}
			cmd.ReturnFlightID = &returnID
		}
		return cmd, nil

	case "cancelbooking":
		if len(args) != 2 {
			return nil, usage("cancelbooking <customer id> <flight id>")
		}
		customerID, err := parseInt(args[0])
		if err != nil {
			return nil, err
		}
		flightID, err := parseInt(args[1])
		if err != nil {
			return nil, err
		}
		return &command.CancelBooking{CustomerID: customerID, FlightID: flightID}, nil

	case "editbooking":
		if len(args) != 3 {
			return nil, usage("editbooking <customer id> <old flight id> <new flight id>")
		}
		customerID, err := parseInt(args[0])
		if err != nil {
			return nil, err
		}
		oldID, err := parseInt(args[1])
		if err != nil {
			return nil, err
		}
		newID, err := parseInt(args[2])
		if err != nil {
			return nil, err
		}
		return &command.EditBooking{CustomerID: customerID, OldFlightID: oldID, NewFlightID: newID}, nil

	case "deleteflight":
		id, err := singleID(args, "deleteflight <flight id>")
		if err != nil {
			return nil, err
		}
		return &command.DeleteFlight{FlightID: id}, nil

	case "deletecustomer":
		id, err := singleID(args, "deletecustomer <customer id>")
		if err != nil {
			return nil, err
		}
		return &command.DeleteCustomer{CustomerID: id}, nil

	case "search":
		return parseSearch(args)
	}

	return nil, ErrUnknownCommand
}

// parseSearch reads key=value filter arguments, all optional.
func parseSearch(args []string) (command.Command, error) {
	cmd := &command.SearchFlights{MinSeats: command.IgnoreSeats}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, usage("search [number=..] [origin=..] [dest=..] [date=..] [seats=..]")
		}
		switch strings.ToLower(key) {
		case "number":
			cmd.FlightNumber = value
		case "origin":
			cmd.Origin = value
		case "dest":
			cmd.Destination = value
		case "date":
			cmd.DepartureDate = value
		case "seats":
			seats, err := parseInt(value)
			if err != nil {
				return nil, err
			}
			cmd.MinSeats = seats
		default:
			return nil, fmt.Errorf("unknown search filter %q", key)
		}
	}
	return cmd, nil
}

func singleID(args []string, usageText string) (int, error) {
	if len(args) != 1 {
		return 0, usage(usageText)
	}
	return parseInt(args[0])
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return n, nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

func usage(text string) error {
	return fmt.Errorf("usage: %s", text)
}
