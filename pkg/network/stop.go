package network

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type StopIndex int

// NoStop marks an absent stop reference.
const NoStop StopIndex = -1

type Stop struct {
	index StopIndex

	name string
	x    int
	y    int

	neighbours        []StopIndex
	routes            []RouteIndex
	waitingPassengers []*Passenger
	vehicles          []VehicleIndex
}

func (s *Stop) Index() StopIndex {
	return s.index
}

func (s *Stop) Name() string {
	return s.name
}

func (s *Stop) X() int {
	return s.x
}

func (s *Stop) Y() int {
	return s.y
}

func (s *Stop) Neighbours() []StopIndex {
	return slices.Clone(s.neighbours)
}

func (s *Stop) Routes() []RouteIndex {
	return slices.Clone(s.routes)
}

func (s *Stop) WaitingPassengers() []*Passenger {
	return slices.Clone(s.waitingPassengers)
}

func (s *Stop) Vehicles() []VehicleIndex {
	return slices.Clone(s.vehicles)
}

func (s *Stop) IsAtStop(vehicle VehicleIndex) bool {
	return slices.Contains(s.vehicles, vehicle)
}

// AddPassenger queues a passenger at the stop. Nil passengers are ignored.
func (s *Stop) AddPassenger(passenger *Passenger) {
	if passenger == nil {
		return
	}

	s.waitingPassengers = append(s.waitingPassengers, passenger)
}

// DistanceTo returns the Manhattan distance to other, or -1 when other is nil.
func (s *Stop) DistanceTo(other *Stop) int {
	if other == nil {
		return -1
	}

	return abs(s.x-other.x) + abs(s.y-other.y)
}

func (s *Stop) String() string {
	return fmt.Sprintf("%s (%d, %d)", s.name, s.x, s.y)
}

func (s *Stop) addNeighbour(neighbour StopIndex) {
	if neighbour == NoStop || slices.Contains(s.neighbours, neighbour) {
		return
	}

	s.neighbours = append(s.neighbours, neighbour)
}

func (s *Stop) addRoute(route RouteIndex) {
	s.routes = append(s.routes, route)
}

func (s *Stop) removeVehicle(vehicle VehicleIndex) {
	if i := slices.Index(s.vehicles, vehicle); i >= 0 {
		s.vehicles = slices.Delete(s.vehicles, i, i+1)
	}
}

// StopIdentity is the comparable identity of a stop. It is independent of
// which network the stop lives in.
type StopIdentity struct {
	Name         string
	X            int
	Y            int
	RouteNumbers []int
}

func (i StopIdentity) Equal(other StopIdentity) bool {
	return i.Name == other.Name &&
		i.X == other.X &&
		i.Y == other.Y &&
		slices.Equal(i.RouteNumbers, other.RouteNumbers)
}

// Key is a string form of the identity, usable as a map key.
func (i StopIdentity) Key() string {
	return fmt.Sprintf("%s:%d:%d:%v", i.Name, i.X, i.Y, i.RouteNumbers)
}

// StopIdentity resolves the route numbers of a stop into a sorted, deduplicated set.
func (n *Network) StopIdentity(stop StopIndex) StopIdentity {
	s := n.Stop(stop)
	if s == nil {
		return StopIdentity{}
	}

	routeNumbers := []int{}
	for _, route := range s.routes {
		number := n.routes[route].number
		if !slices.Contains(routeNumbers, number) {
			routeNumbers = append(routeNumbers, number)
		}
	}
	slices.Sort(routeNumbers)

	return StopIdentity{
		Name:         s.name,
		X:            s.x,
		Y:            s.y,
		RouteNumbers: routeNumbers,
	}
}

// StopsEqual compares two stops of the same network by identity.
func (n *Network) StopsEqual(a StopIndex, b StopIndex) bool {
	if n.Stop(a) == nil || n.Stop(b) == nil {
		return false
	}

	return n.StopIdentity(a).Equal(n.StopIdentity(b))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
