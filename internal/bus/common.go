package bus

import (
	"time"
)

// Lines drives the two open-loop bus lines. Both setters are infallible from
// the point of view of the protocol.
type Lines interface {
	SetClock(high bool)
	SetData(high bool)
}

// Delayer blocks the caller for the given duration.
type Delayer interface {
	Delay(d time.Duration)
}

type State byte

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Start:
		return "start"
	case Transfer:
		return "transfer"
	case Stop:
		return "stop"
	}
	return "N/A"
}

const (
	Idle State = iota
	Start
	Transfer
	Stop

	DefaultClockPin = "GPIO13"
	DefaultDataPin  = "GPIO14"

	// unit is the wait between two level changes. The acknowledge slot is
	// held for twice as long even though nothing is read back.
	unit    = 3 * time.Microsecond
	ackHold = 2 * unit
)
