//go:build pi

package bus

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

func init() {
	if _, err := host.Init(); err != nil {
		log.Fatalln("Unable to initialize periph:", err)
	}
}

// OpenLines looks up the clock and data pins by name.
func OpenLines(clock, data string) (Lines, error) {
	log.Infof("Opening bus lines clock=%s data=%s", clock, data)
	c := gpioreg.ByName(clock)
	if c == nil {
		return nil, fmt.Errorf("no such clock pin: %s", clock)
	}
	d := gpioreg.ByName(data)
	if d == nil {
		return nil, fmt.Errorf("no such data pin: %s", data)
	}

	return &PinLines{Clock: c, Data: d}, nil
}
