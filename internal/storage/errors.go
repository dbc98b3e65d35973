package storage

import "fmt"

// FormatError reports a structurally malformed record: too few fields or a
// reference to an id the registry does not hold.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid record on line %d: %s", e.Line, e.Reason)
}

// ParseError reports a field whose typed value could not be parsed.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse record on line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
