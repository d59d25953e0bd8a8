package bus

import (
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

// PinLines drives the bus through two GPIO outputs.
type PinLines struct {
	Clock gpio.PinOut
	Data  gpio.PinOut
}

func (p *PinLines) SetClock(high bool) {
	out(p.Clock, high)
}

func (p *PinLines) SetData(high bool) {
	out(p.Data, high)
}

func out(pin gpio.PinOut, high bool) {
	if err := pin.Out(gpio.Level(high)); err != nil {
		log.Warnf("Unable to drive %v %v: %v", pin, gpio.Level(high), err)
	}
}
