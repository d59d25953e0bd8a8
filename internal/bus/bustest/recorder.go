// Package bustest provides a recording double for the bus lines and delays.
//
// The Recorder keeps every level change and wait in order, and can decode the
// recorded waveform back into the frames a device on the bus would have seen.
package bustest

import (
	"sync"
	"time"
)

type Kind byte

const (
	Clock Kind = iota
	Data
	Wait
)

type Event struct {
	Kind Kind
	High bool
	D    time.Duration
}

// Recorder implements bus.Lines and bus.Delayer.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) SetClock(high bool) {
	r.add(Event{Kind: Clock, High: high})
}

func (r *Recorder) SetData(high bool) {
	r.add(Event{Kind: Data, High: high})
}

func (r *Recorder) Delay(d time.Duration) {
	r.add(Event{Kind: Wait, D: d})
}

func (r *Recorder) add(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// LineCalls counts the clock and data level changes requested.
func (r *Recorder) LineCalls() int {
	n := 0
	for _, e := range r.Events() {
		if e.Kind != Wait {
			n++
		}
	}
	return n
}

// Waited sums all recorded waits.
func (r *Recorder) Waited() time.Duration {
	var total time.Duration
	for _, e := range r.Events() {
		if e.Kind == Wait {
			total += e.D
		}
	}
	return total
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Frames decodes the recorded waveform. A frame opens on a start condition
// (data falls while clock is high) and closes on a stop condition (data rises
// while clock is high). Data is sampled on every rising clock edge; each byte
// is eight bits followed by one acknowledge slot that is discarded. Frames
// without a complete byte are dropped.
func (r *Recorder) Frames() [][]byte {
	var (
		frames [][]byte
		bits   []bool
		open   bool
		clk    bool
		dat    bool
	)

	for _, e := range r.Events() {
		switch e.Kind {
		case Clock:
			if e.High && !clk && open {
				bits = append(bits, dat)
			}
			clk = e.High
		case Data:
			switch {
			case clk && dat && !e.High:
				open = true
				bits = nil
			case clk && !dat && e.High && open:
				if f := toBytes(bits); len(f) > 0 {
					frames = append(frames, f)
				}
				open = false
			}
			dat = e.High
		}
	}
	return frames
}

func toBytes(bits []bool) []byte {
	var out []byte
	for i := 0; i+9 <= len(bits); i += 9 {
		var b byte
		for _, bit := range bits[i : i+8] {
			b <<= 1
			if bit {
				b |= 1
			}
		}
		out = append(out, b)
	}
	return out
}
