//go:build !pi

package bus

import (
	log "github.com/sirupsen/logrus"
)

// OpenLines returns lines that only log, for running off the target board.
func OpenLines(clock, data string) (Lines, error) {
	log.Infof("Opening dummy bus lines clock=%s data=%s", clock, data)
	return &LogLines{}, nil
}

type LogLines struct{}

func (LogLines) SetClock(high bool) {
	log.Tracef("clock: %v", high)
}

func (LogLines) SetData(high bool) {
	log.Tracef("data: %v", high)
}
