package network

import (
	"fmt"

	"github.com/travigo/transitnet/pkg/util"
	"golang.org/x/exp/slices"
)

type VehicleIndex int

const DefaultFerryType = "CityCat"

// Detail carries the variant specific field of a vehicle. The concrete type
// decides which route type the vehicle can serve.
type Detail interface {
	Type() TransportType
	isDetail()
}

type BusDetail struct {
	Registration string
}

func (BusDetail) Type() TransportType { return TransportTypeBus }
func (BusDetail) isDetail() {}

type TrainDetail struct {
	CarriageCount int
}

func (TrainDetail) Type() TransportType { return TransportTypeTrain }
func (TrainDetail) isDetail() {}

type FerryDetail struct {
	FerryType string
}

func (FerryDetail) Type() TransportType { return TransportTypeFerry }
func (FerryDetail) isDetail() {}

func NewBusDetail(registration string) BusDetail {
	return BusDetail{Registration: util.StripNewlines(registration)}
}

func NewTrainDetail(carriageCount int) TrainDetail {
	if carriageCount <= 0 {
		carriageCount = 1
	}

	return TrainDetail{CarriageCount: carriageCount}
}

func NewFerryDetail(ferryType string) FerryDetail {
	ferryType = util.StripNewlines(ferryType)
	if ferryType == "" {
		ferryType = DefaultFerryType
	}

	return FerryDetail{FerryType: ferryType}
}

type Vehicle struct {
	index VehicleIndex

	id       int
	capacity int
	detail   Detail

	route       RouteIndex
	routeNumber int
	currentStop StopIndex

	passengers []*Passenger
}

func (v *Vehicle) Index() VehicleIndex {
	return v.index
}

func (v *Vehicle) ID() int {
	return v.id
}

func (v *Vehicle) Capacity() int {
	return v.capacity
}

func (v *Vehicle) Type() TransportType {
	return v.detail.Type()
}

func (v *Vehicle) Detail() Detail {
	return v.detail
}

func (v *Vehicle) Route() RouteIndex {
	return v.route
}

func (v *Vehicle) RouteNumber() int {
	return v.routeNumber
}

// CurrentStop returns false when the vehicle has not been placed at a stop.
func (v *Vehicle) CurrentStop() (StopIndex, bool) {
	return v.currentStop, v.currentStop != NoStop
}

func (v *Vehicle) Passengers() []*Passenger {
	return slices.Clone(v.passengers)
}

func (v *Vehicle) PassengerCount() int {
	return len(v.passengers)
}

// AddPassenger boards a passenger. Nil passengers are ignored.
func (v *Vehicle) AddPassenger(passenger *Passenger) error {
	if passenger == nil {
		return nil
	}

	if len(v.passengers) >= v.capacity {
		return &CapacityError{VehicleID: v.id, Capacity: v.capacity}
	}

	v.passengers = append(v.passengers, passenger)

	return nil
}

// RemovePassenger reports whether the passenger was on board.
func (v *Vehicle) RemovePassenger(passenger *Passenger) bool {
	if passenger == nil {
		return false
	}

	i := slices.Index(v.passengers, passenger)
	if i < 0 {
		return false
	}

	v.passengers = slices.Delete(v.passengers, i, i+1)

	return true
}

// Unload empties the vehicle and returns everyone who was on board.
func (v *Vehicle) Unload() []*Passenger {
	unloaded := v.passengers
	v.passengers = nil

	if unloaded == nil {
		return []*Passenger{}
	}
	return unloaded
}

func (v *Vehicle) String() string {
	return fmt.Sprintf("%s number %d (%d) on route %d", v.Type(), v.id, v.capacity, v.routeNumber)
}
