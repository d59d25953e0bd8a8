package bus

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Bus bit-bangs a two-wire serial bus in write-only mode. Acknowledge bits are
// clocked but never sampled, so a missing or unpowered device is not detected.
type Bus struct {
	lines Lines
	delay Delayer

	mu    sync.Mutex
	state State
}

func New(lines Lines, delay Delayer) *Bus {
	return &Bus{
		lines: lines,
		delay: delay,
		state: Idle,
	}
}

// State returns the protocol state the bus is currently in. It is not
// synchronised with running transactions.
func (b *Bus) State() State {
	return b.state
}

// Release drives both lines to the idle (high) level and holds them there for
// settle.
func (b *Bus) Release(settle time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	log.Debug("Releasing bus lines")
	b.lines.SetClock(true)
	b.lines.SetData(true)
	b.delay.Delay(settle)
}

// Write sends address, register and then every payload byte in a single
// transaction.
func (b *Bus) Write(address, register byte, payload []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	log.Debugf("Writing %d bytes to 0x%02x at register 0x%02x", len(payload), address, register)
	b.start()
	b.sendByte(address)
	b.sendByte(register)
	for _, p := range payload {
		b.sendByte(p)
	}
	b.stop()
}

// Command sends address followed by the command bytes in a single transaction.
func (b *Bus) Command(address byte, cmds ...byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	log.Debugf("Sending commands % x to 0x%02x", cmds, address)
	b.start()
	b.sendByte(address)
	for _, c := range cmds {
		b.sendByte(c)
	}
	b.stop()
}

// Start issues a start condition: data falls while the clock is high.
func (b *Bus) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.start()
}

// Stop issues a stop condition: data rises while the clock is high.
func (b *Bus) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stop()
}

// SendByte clocks out v most significant bit first, followed by one ignored
// acknowledge slot.
func (b *Bus) SendByte(v byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sendByte(v)
}

func (b *Bus) start() {
	b.state = Start
	b.lines.SetData(true)
	b.delay.Delay(unit)
	b.lines.SetClock(true)
	b.delay.Delay(unit)
	b.lines.SetData(false)
	b.delay.Delay(unit)
	b.lines.SetClock(false)
	b.delay.Delay(unit)
}

func (b *Bus) stop() {
	b.state = Stop
	b.lines.SetClock(true)
	b.delay.Delay(unit)
	b.lines.SetData(false)
	b.delay.Delay(unit)
	b.lines.SetData(true)
	b.delay.Delay(unit)
	b.lines.SetData(false)
	b.lines.SetClock(false)
	b.state = Idle
}

func (b *Bus) sendByte(v byte) {
	b.state = Transfer
	b.lines.SetClock(false)
	for i := 0; i < 8; i++ {
		b.lines.SetClock(false)
		b.lines.SetData(v&0x80 != 0)
		b.lines.SetClock(true)
		v <<= 1
	}

	// ack slot
	b.lines.SetClock(false)
	b.delay.Delay(unit)
	b.lines.SetData(false)
	b.delay.Delay(unit)
	b.lines.SetClock(true)
	b.delay.Delay(ackHold)
	b.lines.SetClock(false)
	b.delay.Delay(unit)
}
