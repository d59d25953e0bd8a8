// Package tm1729 drives a TM1729 segment LCD controller.
//
// The controller is written over a bit-banged two-wire bus. Every update
// rewrites the complete segment memory, so the Dev keeps its own copy of the
// display state and merges single field changes into it.
package tm1729

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	Address = 0x7C

	icSet   = 0xEA
	disCtl  = 0xA2
	blkCtl  = 0xF0
	apCtl   = 0xFC
	modeSet = 0xC8
	adSet   = 0x00

	startupDelay = 10 * time.Millisecond
)

// Bus is the write-only transport the controller sits on.
type Bus interface {
	Release(settle time.Duration)
	Stop()
	Command(address byte, cmds ...byte)
	Write(address, register byte, payload []byte)
}

// Dev is a handle to one display.
type Dev struct {
	bus Bus

	mu  sync.Mutex
	mem *Memory
}

// New returns a display on b that owns mem. A nil mem starts from the default
// pattern.
func New(b Bus, mem *Memory) *Dev {
	if mem == nil {
		mem = NewMemory()
	}
	return &Dev{
		bus: b,
		mem: mem,
	}
}

// Init releases the bus, waits for the controller to power up and configures
// its operating mode. It must run before any data is written.
func (d *Dev) Init() {
	d.mu.Lock()
	defer d.mu.Unlock()

	log.Infoln("Initializing TM1729")
	d.bus.Release(startupDelay)
	d.bus.Stop()
	d.bus.Command(Address, icSet, disCtl, blkCtl, apCtl, modeSet)
}

// Clear blanks every segment. The field state is kept and shows again on the
// next Set.
func (d *Dev) Clear() {
	m := &Memory{}
	m.Clear()
	d.transfer(m)
}

// Fill lights every segment, as a lamp test. The field state is kept and
// shows again on the next Set.
func (d *Dev) Fill() {
	m := &Memory{}
	m.Fill()
	d.transfer(m)
}

// LoadDefault resets the display state to the startup pattern and writes it.
func (d *Dev) LoadDefault() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.mem.LoadDefault()
	d.flush()
}

// Set encodes v into the bits of field f and writes the whole display. Values
// outside the field's range give a *RangeError and unknown fields an
// *UnknownFieldError; in both cases nothing is changed or sent.
func (d *Dev) Set(f Field, v int) error {
	desc, ok := descriptors[f]
	if !ok {
		return &UnknownFieldError{Field: f}
	}
	if v < desc.min || v > desc.max {
		return &RangeError{Field: f, Value: v, Min: desc.min, Max: desc.max}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	log.Debugf("Setting %v to %d", f, v)
	desc.encode(d.mem, v)
	d.flush()
	return nil
}

// Memory returns a copy of the current display state.
func (d *Dev) Memory() [MemorySize]byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mem.Snapshot()
}

func (d *Dev) transfer(m *Memory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bus.Write(Address, adSet, m.Bytes())
}

func (d *Dev) flush() {
	d.bus.Write(Address, adSet, d.mem.Bytes())
}
