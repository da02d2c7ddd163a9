package network

import (
	"time"

	"github.com/travigo/transitnet/pkg/util"
)

type Passenger struct {
	Name        string
	Destination StopIndex

	Concession *Concession
}

// NewPassenger creates a passenger with no destination.
func NewPassenger(name string) *Passenger {
	return &Passenger{
		Name:        util.StripNewlines(name),
		Destination: NoStop,
	}
}

func NewPassengerTo(name string, destination StopIndex) *Passenger {
	passenger := NewPassenger(name)
	passenger.Destination = destination

	return passenger
}

func NewConcessionPassenger(name string, destination StopIndex, concessionID int, validUntil time.Time) *Passenger {
	passenger := NewPassengerTo(name, destination)
	passenger.Concession = &Concession{
		ID:         concessionID,
		ValidUntil: validUntil,
	}

	return passenger
}

// HasDestination reports whether the passenger is travelling somewhere specific.
func (p *Passenger) HasDestination() bool {
	return p.Destination != NoStop
}

type Concession struct {
	ID         int
	ValidUntil time.Time

	expired bool
}

// Expire invalidates the concession until it is renewed.
func (c *Concession) Expire() {
	c.expired = true
}

func (c *Concession) Renew(concessionID int, validUntil time.Time) {
	c.ID = concessionID
	c.ValidUntil = validUntil
	c.expired = false
}

func (c *Concession) IsValid(now time.Time) bool {
	if c == nil || c.expired {
		return false
	}

	return now.Before(c.ValidUntil)
}
