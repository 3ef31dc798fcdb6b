package scheduler

import (
	"context"
	"log"
	"time"
)

// Daily fires a job once per day at a fixed local wall-clock time.
type Daily struct {
	hour   int
	minute int
	run    func()
}

// NewDaily expects at in HH:MM form; config validates the format at startup.
func NewDaily(at string, run func()) *Daily {
	t, err := time.Parse("15:04", at)
	if err != nil {
		log.Fatalf("[FATAL] invalid schedule time %q: %v", at, err)
	}
	return &Daily{hour: t.Hour(), minute: t.Minute(), run: run}
}

// Start launches the schedule loop; it stops when ctx is cancelled.
func (d *Daily) Start(ctx context.Context) {
	go func() {
		for {
			timer := time.NewTimer(time.Until(d.next(time.Now())))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
				d.run()
			}
		}
	}()
}

// next returns the first instant at hour:minute strictly after now.
func (d *Daily) next(now time.Time) time.Time {
	at := time.Date(now.Year(), now.Month(), now.Day(), d.hour, d.minute, 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}
