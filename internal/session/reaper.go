package session

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/robfig/cron/v3"

	pkgLog "antique-assistant/pkg/log"
)

// Reaper periodically evicts idle sessions from the store. It is started once
// at process startup and stopped at shutdown; a failing sweep never stops the
// schedule.
type Reaper struct {
	l        pkgLog.Logger
	store    *Store
	cron     *cron.Cron
	interval time.Duration
	idle     time.Duration
}

// NewReaper creates a reaper sweeping the store every interval, evicting
// sessions idle longer than idleTimeout.
func NewReaper(l pkgLog.Logger, store *Store, interval, idleTimeout time.Duration) *Reaper {
	if interval <= 0 {
		interval = DefaultReaperInterval
	}
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Reaper{
		l:        l,
		store:    store,
		cron:     cron.New(),
		interval: interval,
		idle:     idleTimeout,
	}
}

// Start registers the sweep job and starts the schedule.
func (r *Reaper) Start() error {
	spec := fmt.Sprintf("@every %s", r.interval)
	if _, err := r.cron.AddFunc(spec, r.sweep); err != nil {
		return fmt.Errorf("failed to schedule session reaper: %w", err)
	}
	r.cron.Start()
	r.l.Infof(context.Background(), "Session reaper started: sweep every %s, idle timeout %s", r.interval, r.idle)
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (r *Reaper) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.l.Info(context.Background(), "Session reaper stopped")
}

func (r *Reaper) sweep() {
	ctx := context.Background()
	defer func() {
		if rec := recover(); rec != nil {
			r.l.Errorf(ctx, "Session sweep panicked: %v", rec)
		}
	}()

	removed := r.store.EvictIdle(r.idle)
	if removed > 0 {
		r.l.Infof(ctx, "Evicted %d idle session(s), %d remaining", removed, r.store.Size())
	}

	// Hint the runtime to hand freed session memory back to the OS.
	debug.FreeOSMemory()
}
