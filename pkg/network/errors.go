package network

import (
	"errors"
	"fmt"
)

var (
	ErrNoName               = errors.New("stop name is empty")
	ErrReservedCharacter    = errors.New("name contains a reserved delimiter")
	ErrDuplicateStop        = errors.New("duplicate stop")
	ErrDuplicateRoute       = errors.New("duplicate route number")
	ErrUnknownTransportType = errors.New("unknown transport type")
	ErrUnknownRoute         = errors.New("unknown route")
	ErrEmptyRoute           = errors.New("route has no stops")
	ErrIncompatibleType     = errors.New("vehicle type does not match route type")
)

// CapacityError is returned when boarding a vehicle that is already full.
// Callers can recover by leaving the passenger where they were.
type CapacityError struct {
	VehicleID int
	Capacity  int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("vehicle %d is at capacity (%d)", e.VehicleID, e.Capacity)
}
