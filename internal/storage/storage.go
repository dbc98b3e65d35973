// Package storage persists the registry as delimited text files, one record
// per line. Stores are full-snapshot rewrites from validated in-memory
// state; loads are fail-fast on any malformed record.
package storage

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"flightbook/config"
	"flightbook/internal/registry"
)

// Separator joins record fields. Field values must not contain it; there is
// no escaping.
const Separator = "::"

// nullToken marks an absent optional reference, compared case-insensitively.
const nullToken = "NULL"

type DataStore interface {
	Load(sys *registry.FlightBookingSystem) error
	Store(sys *registry.FlightBookingSystem) error
}

// Storage bundles the per-entity stores. Load order matters: bookings
// resolve customer and flight ids, so those must be loaded first.
type Storage struct {
	Flights   *FlightStore
	Customers *CustomerStore
	Bookings  *BookingStore
}

func New(cfg config.DataConfig) *Storage {
	return &Storage{
		Flights:   NewFlightStore(cfg.FlightsFile),
		Customers: NewCustomerStore(cfg.CustomersFile),
		Bookings:  NewBookingStore(cfg.BookingsFile),
	}
}

func (s *Storage) LoadAll(sys *registry.FlightBookingSystem) error {
	for _, ds := range []DataStore{s.Flights, s.Customers, s.Bookings} {
		if err := ds.Load(sys); err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) StoreAll(sys *registry.FlightBookingSystem) error {
	for _, ds := range []DataStore{s.Flights, s.Customers, s.Bookings} {
		if err := ds.Store(sys); err != nil {
			return err
		}
	}
	return nil
}

func isNullField(field string) bool {
	return field == "" || strings.EqualFold(field, nullToken)
}

// forEachRecord reads the file line by line, skipping blank lines, and
// calls fn with the 1-based line number and the split fields. The first
// error aborts the whole load.
func forEachRecord(path string, minFields int, fn func(line int, fields []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, Separator)
		if len(fields) < minFields {
			return &FormatError{Line: line, Reason: fmt.Sprintf("expected at least %d fields, got %d", minFields, len(fields))}
		}
		if err := fn(line, fields); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// writeRecords truncates and rewrites the file in full. Every field is
// followed by the separator, including the last one.
func writeRecords(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, fields := range records {
		for _, field := range fields {
			w.WriteString(field)
			w.WriteString(Separator)
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// EnsureFiles creates any missing data files so that a first run starts
// from empty collections instead of an open error.
func (s *Storage) EnsureFiles() error {
	for _, path := range []string{s.Flights.path, s.Customers.path, s.Bookings.path} {
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
	}
	return nil
}
