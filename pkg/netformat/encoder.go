package netformat

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/travigo/transitnet/pkg/network"
)

// Encode writes the network document for n. Every line, the last one
// included, ends with a single \n. A nil network is written as an empty one.
func Encode(writer io.Writer, n *network.Network) error {
	if writer == nil {
		return &AvailabilityError{Op: "write", Err: ErrMissingDestination}
	}
	if n == nil {
		n = network.New()
	}

	buffered := bufio.NewWriter(writer)

	stops := n.Stops()
	fmt.Fprintf(buffered, "%d\n", len(stops))
	for _, stop := range stops {
		fmt.Fprintf(buffered, "%s\n", StopRecordFrom(stop))
	}

	routes := n.Routes()
	fmt.Fprintf(buffered, "%d\n", len(routes))
	for _, route := range routes {
		fmt.Fprintf(buffered, "%s\n", RouteRecordFrom(n, route))
	}

	vehicles := n.Vehicles()
	fmt.Fprintf(buffered, "%d\n", len(vehicles))
	for _, vehicle := range vehicles {
		fmt.Fprintf(buffered, "%s\n", VehicleRecordFrom(vehicle))
	}

	// bufio keeps the first write error and returns it again from Flush.
	if err := buffered.Flush(); err != nil {
		return &AvailabilityError{Op: "write", Err: err}
	}

	return nil
}

func EncodeToString(n *network.Network) string {
	var builder strings.Builder
	_ = Encode(&builder, n)

	return builder.String()
}

func StopRecordFrom(stop *network.Stop) StopRecord {
	return StopRecord{
		Name: stop.Name(),
		X:    stop.X(),
		Y:    stop.Y(),
	}
}

func RouteRecordFrom(n *network.Network, route *network.Route) RouteRecord {
	record := RouteRecord{
		Type:   route.Type(),
		Name:   route.Name(),
		Number: route.Number(),
		Stops:  []string{},
	}

	for _, stopIndex := range route.Stops() {
		record.Stops = append(record.Stops, n.Stop(stopIndex).Name())
	}

	return record
}

func VehicleRecordFrom(vehicle *network.Vehicle) VehicleRecord {
	return VehicleRecord{
		ID:          vehicle.ID(),
		Capacity:    vehicle.Capacity(),
		RouteNumber: vehicle.RouteNumber(),
		Detail:      vehicle.Detail(),
	}
}
