package netformat

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSource      = errors.New("no document source")
	ErrMissingDestination = errors.New("no document destination")

	ErrMissingLine     = errors.New("unexpected end of document")
	ErrBlankLine       = errors.New("blank line")
	ErrInvalidCount    = errors.New("invalid record count")
	ErrTrailingContent = errors.New("unexpected content after the vehicle section")
	ErrFieldCount      = errors.New("wrong number of fields")
	ErrExtraDelimiter  = errors.New("unexpected delimiter")
	ErrInvalidInteger  = errors.New("not an integer")
	ErrEmptyStopSlot   = errors.New("empty stop name in stop list")
	ErrUnknownStop     = errors.New("unknown stop")
)

type Section string

const (
	SectionStops    Section = "stops"
	SectionRoutes   Section = "routes"
	SectionVehicles Section = "vehicles"
	SectionEnd      Section = "end"
)

// FormatError reports a document that does not follow the network grammar or
// whose references do not resolve. Line is 1-based and zero when the record was
// parsed on its own.
type FormatError struct {
	Section Section
	Line    int
	Text    string
	Err     error
}

func (e *FormatError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("format error in %s section", e.Section)
	if e.Line > 0 {
		base += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Text != "" {
		base += fmt.Sprintf(" (%q)", e.Text)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *FormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AvailabilityError reports a document source or destination that could not
// be reached.
type AvailabilityError struct {
	Op     string
	Source string
	Err    error
}

func (e *AvailabilityError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: document unavailable", e.Op)
	if e.Source != "" {
		base += fmt.Sprintf(" (source=%s)", e.Source)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *AvailabilityError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

func IsAvailabilityError(err error) bool {
	var ae *AvailabilityError
	return errors.As(err, &ae)
}
