package netcli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/travigo/transitnet/pkg/netformat"
	"github.com/travigo/transitnet/pkg/network"
)

type stopRow struct {
	Name       string `csv:"name"`
	X          int    `csv:"x"`
	Y          int    `csv:"y"`
	Routes     string `csv:"routes"`
	Neighbours string `csv:"neighbours"`
	Waiting    int    `csv:"waiting_passengers"`
}

type routeRow struct {
	Number   int    `csv:"number"`
	Type     string `csv:"type"`
	Name     string `csv:"name"`
	Stops    string `csv:"stops"`
	Vehicles int    `csv:"vehicles"`
}

type vehicleRow struct {
	ID          int    `csv:"id"`
	Type        string `csv:"type"`
	Capacity    int    `csv:"capacity"`
	RouteNumber int    `csv:"route_number"`
	Detail      string `csv:"detail"`
	CurrentStop string `csv:"current_stop"`
	Passengers  int    `csv:"passengers"`
}

func export(writer io.Writer, n *network.Network, kind string) error {
	switch kind {
	case "stops":
		return gocsv.Marshal(stopRows(n), writer)
	case "routes":
		return gocsv.Marshal(routeRows(n), writer)
	case "vehicles":
		return gocsv.Marshal(vehicleRows(n), writer)
	default:
		return fmt.Errorf("unknown export kind %q", kind)
	}
}

func stopRows(n *network.Network) []*stopRow {
	rows := []*stopRow{}

	for _, stop := range n.Stops() {
		identity := n.StopIdentity(stop.Index())

		routeNumbers := make([]string, 0, len(identity.RouteNumbers))
		for _, number := range identity.RouteNumbers {
			routeNumbers = append(routeNumbers, strconv.Itoa(number))
		}

		neighbours := []string{}
		for _, neighbour := range stop.Neighbours() {
			neighbours = append(neighbours, n.Stop(neighbour).Name())
		}

		rows = append(rows, &stopRow{
			Name:       stop.Name(),
			X:          stop.X(),
			Y:          stop.Y(),
			Routes:     strings.Join(routeNumbers, " "),
			Neighbours: strings.Join(neighbours, " "),
			Waiting:    len(stop.WaitingPassengers()),
		})
	}

	return rows
}

func routeRows(n *network.Network) []*routeRow {
	rows := []*routeRow{}

	for _, route := range n.Routes() {
		record := netformat.RouteRecordFrom(n, route)

		rows = append(rows, &routeRow{
			Number:   route.Number(),
			Type:     string(route.Type()),
			Name:     route.Name(),
			Stops:    strings.Join(record.Stops, " "),
			Vehicles: len(route.Vehicles()),
		})
	}

	return rows
}

func vehicleRows(n *network.Network) []*vehicleRow {
	rows := []*vehicleRow{}

	for _, vehicle := range n.Vehicles() {
		row := &vehicleRow{
			ID:          vehicle.ID(),
			Type:        string(vehicle.Type()),
			Capacity:    vehicle.Capacity(),
			RouteNumber: vehicle.RouteNumber(),
			Detail:      netformat.VehicleRecordFrom(vehicle).Extra(),
			Passengers:  vehicle.PassengerCount(),
		}

		if current, ok := vehicle.CurrentStop(); ok {
			row.CurrentStop = n.Stop(current).Name()
		}

		rows = append(rows, row)
	}

	return rows
}
