package storage

import (
	"fmt"
	"strconv"

	"flightbook/internal/domain"
	"flightbook/internal/registry"
)

// Customer line: id, name, phone, email.
const customerFieldCount = 4

type CustomerStore struct {
	path string
}

func NewCustomerStore(path string) *CustomerStore {
	return &CustomerStore{path: path}
}

func (cs *CustomerStore) Load(sys *registry.FlightBookingSystem) error {
	return forEachRecord(cs.path, customerFieldCount, func(line int, fields []string) error {
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return &ParseError{Line: line, Err: fmt.Errorf("customer id %q: %w", fields[0], err)}
		}
		sys.AddCustomer(domain.NewCustomer(id, fields[1], fields[2], fields[3]))
		return nil
	})
}

func (cs *CustomerStore) Store(sys *registry.FlightBookingSystem) error {
	customers := sys.Customers()
	records := make([][]string, 0, len(customers))
	for _, c := range customers {
		records = append(records, []string{
			strconv.Itoa(c.ID),
			c.Name,
			c.Phone,
			c.Email,
		})
	}
	return writeRecords(cs.path, records)
}

var _ DataStore = (*CustomerStore)(nil)
