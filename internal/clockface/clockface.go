// Package clockface keeps the hour and minute fields of a display on the
// current time.
package clockface

import (
	"context"
	"time"

	"github.com/callebjorkell/tm1729/internal/tm1729"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
)

type Setter interface {
	Set(f tm1729.Field, v int) error
}

type Face struct {
	display Setter
	clock   clockwork.Clock
}

func New(display Setter, clock clockwork.Clock) *Face {
	return &Face{
		display: display,
		clock:   clock,
	}
}

// Run shows the current time and refreshes it on every minute boundary until
// ctx is done. Failed writes are logged and retried on the next minute.
func (f *Face) Run(ctx context.Context) {
	log.Info("Starting clock face")
	for {
		now := f.clock.Now()
		f.show(now)

		next := now.Truncate(time.Minute).Add(time.Minute)
		select {
		case <-f.clock.After(next.Sub(now)):
			// fall out of the select and refresh.
		case <-ctx.Done():
			log.Info("Stopping clock face")
			return
		}
	}
}

func (f *Face) show(t time.Time) {
	log.Debugf("Showing %02d:%02d", t.Hour(), t.Minute())
	if err := f.display.Set(tm1729.Hour, t.Hour()); err != nil {
		log.Warnf("Unable to show hour: %v", err)
	}
	if err := f.display.Set(tm1729.Minute, t.Minute()); err != nil {
		log.Warnf("Unable to show minute: %v", err)
	}
}
