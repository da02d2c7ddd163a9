package netformat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/travigo/transitnet/pkg/network"
)

const (
	stopFieldSeparator    = ":"
	routeFieldSeparator   = ","
	routeStopsSeparator   = ":"
	routeStopSeparator    = "|"
	vehicleFieldSeparator = ","
)

// StopRecord is a single `name:x:y` line.
type StopRecord struct {
	Name string
	X    int
	Y    int
}

// ParseStopRecord parses a name:x:y stop line.
func ParseStopRecord(line string) (StopRecord, error) {
	if strings.ContainsAny(line, ",|") {
		return StopRecord{}, recordError(SectionStops, line, ErrExtraDelimiter)
	}

	fields := strings.Split(line, stopFieldSeparator)
	if len(fields) != 3 {
		return StopRecord{}, recordError(SectionStops, line, fmt.Errorf("%w: expected 3, got %d", ErrFieldCount, len(fields)))
	}

	if fields[0] == "" {
		return StopRecord{}, recordError(SectionStops, line, network.ErrNoName)
	}

	x, err := parseInteger(fields[1])
	if err != nil {
		return StopRecord{}, recordError(SectionStops, line, err)
	}
	y, err := parseInteger(fields[2])
	if err != nil {
		return StopRecord{}, recordError(SectionStops, line, err)
	}

	return StopRecord{Name: fields[0], X: x, Y: y}, nil
}

func (r StopRecord) String() string {
	return fmt.Sprintf("%s:%d:%d", r.Name, r.X, r.Y)
}

// RouteRecord is a single `type,name,number:stop0|stop1|...` line. Stop names
// are left unresolved.
type RouteRecord struct {
	Type   network.TransportType
	Name   string
	Number int
	Stops  []string
}

// ParseRouteRecord parses a type,name,number:stop|stop route line.
func ParseRouteRecord(line string) (RouteRecord, error) {
	switch strings.Count(line, routeStopsSeparator) {
	case 1:
	case 0:
		return RouteRecord{}, recordError(SectionRoutes, line, fmt.Errorf("%w: missing stop list", ErrFieldCount))
	default:
		return RouteRecord{}, recordError(SectionRoutes, line, fmt.Errorf("%w %q", ErrExtraDelimiter, routeStopsSeparator))
	}

	head, stopList, _ := strings.Cut(line, routeStopsSeparator)

	if strings.Contains(head, routeStopSeparator) || strings.Contains(stopList, routeFieldSeparator) {
		return RouteRecord{}, recordError(SectionRoutes, line, ErrExtraDelimiter)
	}

	fields := strings.Split(head, routeFieldSeparator)
	if len(fields) != 3 {
		return RouteRecord{}, recordError(SectionRoutes, line, fmt.Errorf("%w: expected 3, got %d", ErrFieldCount, len(fields)))
	}

	transportType, ok := network.ParseTransportType(fields[0])
	if !ok {
		return RouteRecord{}, recordError(SectionRoutes, line, fmt.Errorf("%q: %w", fields[0], network.ErrUnknownTransportType))
	}

	number, err := parseInteger(fields[2])
	if err != nil {
		return RouteRecord{}, recordError(SectionRoutes, line, err)
	}

	record := RouteRecord{
		Type:   transportType,
		Name:   fields[1],
		Number: number,
		Stops:  []string{},
	}

	if stopList == "" {
		return record, nil
	}

	for _, stopName := range strings.Split(stopList, routeStopSeparator) {
		if stopName == "" {
			return RouteRecord{}, recordError(SectionRoutes, line, ErrEmptyStopSlot)
		}
		record.Stops = append(record.Stops, stopName)
	}

	return record, nil
}

func (r RouteRecord) String() string {
	return fmt.Sprintf("%s,%s,%d:%s", r.Type, r.Name, r.Number, strings.Join(r.Stops, routeStopSeparator))
}

// VehicleRecord is a single `type,id,capacity,routeNumber,extra` line. The
// extra field is decoded into the detail matching the type.
type VehicleRecord struct {
	ID          int
	Capacity    int
	RouteNumber int
	Detail      network.Detail
}

// ParseVehicleRecord parses a type,id,capacity,route,detail vehicle line.
func ParseVehicleRecord(line string) (VehicleRecord, error) {
	if strings.ContainsAny(line, ":|") {
		return VehicleRecord{}, recordError(SectionVehicles, line, ErrExtraDelimiter)
	}

	fields := strings.Split(line, vehicleFieldSeparator)
	if len(fields) != 5 {
		return VehicleRecord{}, recordError(SectionVehicles, line, fmt.Errorf("%w: expected 5, got %d", ErrFieldCount, len(fields)))
	}

	transportType, ok := network.ParseTransportType(fields[0])
	if !ok {
		return VehicleRecord{}, recordError(SectionVehicles, line, fmt.Errorf("%q: %w", fields[0], network.ErrUnknownTransportType))
	}

	var integers [3]int
	for i, field := range fields[1:4] {
		value, err := parseInteger(field)
		if err != nil {
			return VehicleRecord{}, recordError(SectionVehicles, line, err)
		}
		integers[i] = value
	}

	var detail network.Detail
	switch transportType {
	case network.TransportTypeBus:
		detail = network.NewBusDetail(fields[4])
	case network.TransportTypeTrain:
		carriageCount, err := parseInteger(fields[4])
		if err != nil {
			return VehicleRecord{}, recordError(SectionVehicles, line, err)
		}
		detail = network.NewTrainDetail(carriageCount)
	case network.TransportTypeFerry:
		detail = network.NewFerryDetail(fields[4])
	}

	return VehicleRecord{
		ID:          integers[0],
		Capacity:    integers[1],
		RouteNumber: integers[2],
		Detail:      detail,
	}, nil
}

func (r VehicleRecord) Type() network.TransportType {
	return r.Detail.Type()
}

// Extra is the type specific last field of the record.
func (r VehicleRecord) Extra() string {
	switch d := r.Detail.(type) {
	case network.BusDetail:
		return d.Registration
	case network.TrainDetail:
		return strconv.Itoa(d.CarriageCount)
	case network.FerryDetail:
		return d.FerryType
	}
	return ""
}

func (r VehicleRecord) String() string {
	return fmt.Sprintf("%s,%d,%d,%d,%s", r.Type(), r.ID, r.Capacity, r.RouteNumber, r.Extra())
}

// parseInteger allows spaces around the number but nowhere else.
func parseInteger(field string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", field, ErrInvalidInteger)
	}

	return value, nil
}

func recordError(section Section, line string, err error) *FormatError {
	return &FormatError{
		Section: section,
		Text:    line,
		Err:     err,
	}
}
