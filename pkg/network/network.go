package network

import (
	"errors"
	"fmt"
	"strings"

	"github.com/travigo/transitnet/pkg/util"
	"golang.org/x/exp/slices"
)

// ReservedCharacters are the record delimiters of the document format. Names
// containing any of them could not be written back out.
const ReservedCharacters = ",:|"

// Network owns every stop, route and vehicle of one document. Entities refer
// to each other by index into the network's tables.
type Network struct {
	stops    []*Stop
	routes   []*Route
	vehicles []*Vehicle
}

type StopSpec struct {
	Name string
	X    int
	Y    int
}

func New() *Network {
	return &Network{}
}

func (n *Network) Stop(index StopIndex) *Stop {
	if index < 0 || int(index) >= len(n.stops) {
		return nil
	}
	return n.stops[index]
}

func (n *Network) Route(index RouteIndex) *Route {
	if index < 0 || int(index) >= len(n.routes) {
		return nil
	}
	return n.routes[index]
}

func (n *Network) Vehicle(index VehicleIndex) *Vehicle {
	if index < 0 || int(index) >= len(n.vehicles) {
		return nil
	}
	return n.vehicles[index]
}

// Stops returns the stops in insertion order.
func (n *Network) Stops() []*Stop {
	return slices.Clone(n.stops)
}

func (n *Network) Routes() []*Route {
	return slices.Clone(n.routes)
}

func (n *Network) Vehicles() []*Vehicle {
	return slices.Clone(n.vehicles)
}

// AddStop creates a stop. Stop names are unique within a network, a name
// already in use is rejected with ErrDuplicateStop and nothing is added.
func (n *Network) AddStop(name string, x int, y int) (StopIndex, error) {
	name = util.StripNewlines(name)

	if name == "" {
		return NoStop, ErrNoName
	}
	if strings.ContainsAny(name, ReservedCharacters) {
		return NoStop, fmt.Errorf("stop %q: %w", name, ErrReservedCharacter)
	}

	// Routes and vehicles are written against stop names.
	if _, exists := n.FindStop(name); exists {
		return NoStop, fmt.Errorf("stop %q at (%d, %d): %w", name, x, y, ErrDuplicateStop)
	}

	stop := &Stop{
		index: StopIndex(len(n.stops)),
		name:  name,
		x:     x,
		y:     y,
	}
	n.stops = append(n.stops, stop)

	return stop.index, nil
}

// AddStops adds every stop it can and reports the rest as a joined error.
func (n *Network) AddStops(specs []StopSpec) ([]StopIndex, error) {
	var added []StopIndex
	var errs []error

	for _, spec := range specs {
		index, err := n.AddStop(spec.Name, spec.X, spec.Y)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		added = append(added, index)
	}

	return added, errors.Join(errs...)
}

// AddRoute creates an empty route. Route numbers are unique within a network.
func (n *Network) AddRoute(transportType TransportType, name string, number int) (RouteIndex, error) {
	if _, ok := ParseTransportType(string(transportType)); !ok {
		return NoRoute, fmt.Errorf("%q: %w", transportType, ErrUnknownTransportType)
	}
	if _, exists := n.RouteByNumber(number); exists {
		return NoRoute, fmt.Errorf("route %d: %w", number, ErrDuplicateRoute)
	}

	name = util.StripNewlines(name)
	if strings.ContainsAny(name, ReservedCharacters) {
		return NoRoute, fmt.Errorf("route %q: %w", name, ErrReservedCharacter)
	}

	route := &Route{
		index:         RouteIndex(len(n.routes)),
		transportType: transportType,
		name:          name,
		number:        number,
	}
	n.routes = append(n.routes, route)

	return route.index, nil
}

// AddStopToRoute appends a stop to a route, registers the route on the stop
// and links the stop with the previous stop of the route in both directions.
// Unknown indexes are ignored.
func (n *Network) AddStopToRoute(routeIndex RouteIndex, stopIndex StopIndex) {
	route := n.Route(routeIndex)
	stop := n.Stop(stopIndex)
	if route == nil || stop == nil {
		return
	}

	stop.addRoute(routeIndex)
	route.stops = append(route.stops, stopIndex)

	if len(route.stops) == 1 {
		return
	}

	previous := n.stops[route.stops[len(route.stops)-2]]
	if previous == stop {
		return
	}
	previous.addNeighbour(stopIndex)
	stop.addNeighbour(previous.index)
}

// AddNeighbouringStop records neighbour as adjacent to stop. The link is one
// directional. Unknown indexes and self links are ignored.
func (n *Network) AddNeighbouringStop(stopIndex StopIndex, neighbour StopIndex) {
	stop := n.Stop(stopIndex)
	if stop == nil || n.Stop(neighbour) == nil || stopIndex == neighbour {
		return
	}

	stop.addNeighbour(neighbour)
}

// AddVehicle creates a vehicle on a route and positions it at the route's
// start stop. The route must exist, have at least one stop and be of the same
// transport type as the vehicle, checked in that order.
func (n *Network) AddVehicle(id int, capacity int, routeIndex RouteIndex, detail Detail) (VehicleIndex, error) {
	if detail == nil {
		return -1, ErrUnknownTransportType
	}

	route := n.Route(routeIndex)
	if route == nil {
		return -1, ErrUnknownRoute
	}

	detail, err := normaliseDetail(detail)
	if err != nil {
		return -1, fmt.Errorf("vehicle %d: %w", id, err)
	}

	startStop, err := route.StartStop()
	if err != nil {
		return -1, fmt.Errorf("route %d: %w", route.number, err)
	}

	if route.transportType != detail.Type() {
		return -1, fmt.Errorf("%s %d on %s route %d: %w", detail.Type(), id, route.transportType, route.number, ErrIncompatibleType)
	}

	vehicle := &Vehicle{
		index:       VehicleIndex(len(n.vehicles)),
		id:          id,
		capacity:    capacity,
		detail:      detail,
		route:       routeIndex,
		routeNumber: route.number,
		currentStop: startStop,
	}
	n.vehicles = append(n.vehicles, vehicle)
	route.vehicles = append(route.vehicles, vehicle.index)

	return vehicle.index, nil
}

func (n *Network) AddBus(id int, capacity int, route RouteIndex, registration string) (VehicleIndex, error) {
	return n.AddVehicle(id, capacity, route, NewBusDetail(registration))
}

func (n *Network) AddTrain(id int, capacity int, route RouteIndex, carriageCount int) (VehicleIndex, error) {
	return n.AddVehicle(id, capacity, route, NewTrainDetail(carriageCount))
}

func (n *Network) AddFerry(id int, capacity int, route RouteIndex, ferryType string) (VehicleIndex, error) {
	return n.AddVehicle(id, capacity, route, NewFerryDetail(ferryType))
}

// FindStop returns the stop with the given name.
func (n *Network) FindStop(name string) (StopIndex, bool) {
	for _, stop := range n.stops {
		if stop.name == name {
			return stop.index, true
		}
	}

	return NoStop, false
}

// RouteByNumber returns the route with the given number.
func (n *Network) RouteByNumber(number int) (RouteIndex, bool) {
	for _, route := range n.routes {
		if route.number == number {
			return route.index, true
		}
	}

	return NoRoute, false
}

// TransportArrive unloads the vehicle's passengers at the stop and records the
// vehicle as present. The vehicle's location is not changed.
func (n *Network) TransportArrive(stopIndex StopIndex, vehicleIndex VehicleIndex) {
	stop := n.Stop(stopIndex)
	vehicle := n.Vehicle(vehicleIndex)
	if stop == nil || vehicle == nil || stop.IsAtStop(vehicleIndex) {
		return
	}

	stop.waitingPassengers = append(stop.waitingPassengers, vehicle.Unload()...)
	stop.vehicles = append(stop.vehicles, vehicleIndex)
}

// TransportDepart moves a vehicle that is at stop on to next.
func (n *Network) TransportDepart(stopIndex StopIndex, vehicleIndex VehicleIndex, next StopIndex) {
	stop := n.Stop(stopIndex)
	nextStop := n.Stop(next)
	if stop == nil || nextStop == nil || n.Vehicle(vehicleIndex) == nil || !stop.IsAtStop(vehicleIndex) {
		return
	}

	stop.removeVehicle(vehicleIndex)
	if !nextStop.IsAtStop(vehicleIndex) {
		nextStop.vehicles = append(nextStop.vehicles, vehicleIndex)
	}

	n.TravelTo(vehicleIndex, next)
}

// TravelTo updates the vehicle's location. Stops that are not on the
// vehicle's route are ignored.
func (n *Network) TravelTo(vehicleIndex VehicleIndex, stopIndex StopIndex) {
	vehicle := n.Vehicle(vehicleIndex)
	if vehicle == nil || n.Stop(stopIndex) == nil {
		return
	}

	if !n.routes[vehicle.route].hasStop(stopIndex) {
		return
	}

	vehicle.currentStop = stopIndex
}

// normaliseDetail applies the constructor rules to details built as literals.
func normaliseDetail(detail Detail) (Detail, error) {
	switch d := detail.(type) {
	case BusDetail:
		d = NewBusDetail(d.Registration)
		if strings.ContainsAny(d.Registration, ReservedCharacters) {
			return nil, ErrReservedCharacter
		}
		return d, nil
	case TrainDetail:
		return NewTrainDetail(d.CarriageCount), nil
	case FerryDetail:
		d = NewFerryDetail(d.FerryType)
		if strings.ContainsAny(d.FerryType, ReservedCharacters) {
			return nil, ErrReservedCharacter
		}
		return d, nil
	}

	return nil, ErrUnknownTransportType
}
