package netformat

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/transitnet/pkg/network"
)

// Decode reads a whole network document and assembles it. The reader is read
// to the end but never closed.
func Decode(reader io.Reader) (*network.Network, error) {
	if reader == nil {
		return nil, &AvailabilityError{Op: "read", Err: ErrMissingSource}
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, &AvailabilityError{Op: "read", Err: err}
	}

	return DecodeString(string(body))
}

// DecodeString assembles a network from a document held in memory. The final
// newline is optional and lines may end in \r\n.
func DecodeString(document string) (*network.Network, error) {
	d := newDocument(document)
	n := network.New()

	if err := d.decodeStops(n); err != nil {
		return nil, err
	}
	if err := d.decodeRoutes(n); err != nil {
		return nil, err
	}
	if err := d.decodeVehicles(n); err != nil {
		return nil, err
	}
	if err := d.finish(); err != nil {
		return nil, err
	}

	log.Debug().
		Int("stops", len(n.Stops())).
		Int("routes", len(n.Routes())).
		Int("vehicles", len(n.Vehicles())).
		Msg("Decoded network document")

	return n, nil
}

type document struct {
	lines []string
	next  int
}

func newDocument(text string) *document {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return &document{}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return &document{lines: lines}
}

// readLine returns the next line and its 1-based line number.
func (d *document) readLine(section Section) (string, int, error) {
	if d.next >= len(d.lines) {
		return "", d.next + 1, &FormatError{Section: section, Line: d.next + 1, Err: ErrMissingLine}
	}

	line := d.lines[d.next]
	d.next++

	return line, d.next, nil
}

func (d *document) readCount(section Section) (int, error) {
	line, lineNumber, err := d.readLine(section)
	if err != nil {
		return 0, err
	}

	if strings.TrimSpace(line) == "" {
		return 0, &FormatError{Section: section, Line: lineNumber, Err: ErrBlankLine}
	}

	count, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || count < 0 {
		return 0, &FormatError{Section: section, Line: lineNumber, Text: line, Err: ErrInvalidCount}
	}

	return count, nil
}

// readRecord returns the next non-blank line of a section.
func (d *document) readRecord(section Section) (string, int, error) {
	line, lineNumber, err := d.readLine(section)
	if err != nil {
		return "", lineNumber, err
	}

	if strings.TrimSpace(line) == "" {
		return "", lineNumber, &FormatError{Section: section, Line: lineNumber, Err: ErrBlankLine}
	}

	return line, lineNumber, nil
}

func (d *document) decodeStops(n *network.Network) error {
	count, err := d.readCount(SectionStops)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		line, lineNumber, err := d.readRecord(SectionStops)
		if err != nil {
			return err
		}

		record, err := ParseStopRecord(line)
		if err != nil {
			return atLine(err, lineNumber)
		}

		if _, err := n.AddStop(record.Name, record.X, record.Y); err != nil {
			return &FormatError{Section: SectionStops, Line: lineNumber, Text: line, Err: err}
		}
	}

	return nil
}

func (d *document) decodeRoutes(n *network.Network) error {
	count, err := d.readCount(SectionRoutes)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		line, lineNumber, err := d.readRecord(SectionRoutes)
		if err != nil {
			return err
		}

		record, err := ParseRouteRecord(line)
		if err != nil {
			return atLine(err, lineNumber)
		}

		// Resolve every stop before creating the route so a failed record
		// leaves nothing behind.
		stops := make([]network.StopIndex, 0, len(record.Stops))
		for _, stopName := range record.Stops {
			stop, ok := n.FindStop(stopName)
			if !ok {
				return &FormatError{Section: SectionRoutes, Line: lineNumber, Text: line, Err: fmt.Errorf("%q: %w", stopName, ErrUnknownStop)}
			}
			stops = append(stops, stop)
		}

		route, err := n.AddRoute(record.Type, record.Name, record.Number)
		if err != nil {
			return &FormatError{Section: SectionRoutes, Line: lineNumber, Text: line, Err: err}
		}

		for _, stop := range stops {
			n.AddStopToRoute(route, stop)
		}
	}

	return nil
}

func (d *document) decodeVehicles(n *network.Network) error {
	count, err := d.readCount(SectionVehicles)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		line, lineNumber, err := d.readRecord(SectionVehicles)
		if err != nil {
			return err
		}

		record, err := ParseVehicleRecord(line)
		if err != nil {
			return atLine(err, lineNumber)
		}

		route, ok := n.RouteByNumber(record.RouteNumber)
		if !ok {
			return &FormatError{Section: SectionVehicles, Line: lineNumber, Text: line, Err: fmt.Errorf("route %d: %w", record.RouteNumber, network.ErrUnknownRoute)}
		}

		if _, err := n.AddVehicle(record.ID, record.Capacity, route, record.Detail); err != nil {
			return &FormatError{Section: SectionVehicles, Line: lineNumber, Text: line, Err: err}
		}
	}

	return nil
}

// finish rejects anything after the last vehicle record, blank lines included.
func (d *document) finish() error {
	if d.next < len(d.lines) {
		return &FormatError{Section: SectionEnd, Line: d.next + 1, Text: d.lines[d.next], Err: ErrTrailingContent}
	}

	return nil
}

func atLine(err error, lineNumber int) error {
	if formatError, ok := err.(*FormatError); ok {
		formatError.Line = lineNumber
		return formatError
	}

	return err
}
