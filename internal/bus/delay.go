package bus

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// ClockDelay waits on a clockwork clock, so that protocol timing can be driven
// by a fake clock.
type ClockDelay struct {
	Clock clockwork.Clock
}

func NewClockDelay() *ClockDelay {
	return &ClockDelay{Clock: clockwork.NewRealClock()}
}

func (c *ClockDelay) Delay(d time.Duration) {
	c.Clock.Sleep(d)
}
