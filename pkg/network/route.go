package network

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type RouteIndex int

const NoRoute RouteIndex = -1

type Route struct {
	index RouteIndex

	transportType TransportType
	name          string
	number        int

	stops    []StopIndex
	vehicles []VehicleIndex
}

func (r *Route) Index() RouteIndex {
	return r.index
}

func (r *Route) Type() TransportType {
	return r.transportType
}

func (r *Route) Name() string {
	return r.name
}

func (r *Route) Number() int {
	return r.number
}

// Stops returns the stops in the order they were added.
func (r *Route) Stops() []StopIndex {
	return slices.Clone(r.stops)
}

func (r *Route) Vehicles() []VehicleIndex {
	return slices.Clone(r.vehicles)
}

func (r *Route) IsEmpty() bool {
	return len(r.stops) == 0
}

func (r *Route) StartStop() (StopIndex, error) {
	if r.IsEmpty() {
		return NoStop, ErrEmptyRoute
	}

	return r.stops[0], nil
}

func (r *Route) hasStop(stop StopIndex) bool {
	return slices.Contains(r.stops, stop)
}

// Equal compares routes by name and number.
func (r *Route) Equal(other *Route) bool {
	if other == nil {
		return false
	}

	return r.name == other.name && r.number == other.number
}

// Hash only uses the route number, so equal routes always hash equally.
func (r *Route) Hash() int {
	return r.number
}

func (r *Route) String() string {
	return fmt.Sprintf("%s route %d (%s)", r.transportType, r.number, r.name)
}
