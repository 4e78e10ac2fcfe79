package session

import (
	"context"
	"testing"
	"time"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}

func TestReaperEvictsIdleSessions(t *testing.T) {
	now := time.Now()
	store := New(DefaultMaxTurns)
	store.now = func() time.Time { return now.Add(-2 * time.Hour) }
	store.GetOrCreate("stale")
	store.now = func() time.Time { return now }
	store.GetOrCreate("fresh")

	reaper := NewReaper(nopLogger{}, store, 20*time.Millisecond, time.Hour)
	if err := reaper.Start(); err != nil {
		t.Fatalf("unexpected error starting reaper: %v", err)
	}
	defer reaper.Stop()

	deadline := time.After(2 * time.Second)
	for store.Size() != 1 {
		select {
		case <-deadline:
			t.Fatalf("reaper did not evict the stale session, %d sessions left", store.Size())
		case <-time.After(10 * time.Millisecond):
		}
	}

	if got := store.GetOrCreate("fresh"); got.UserID != "fresh" {
		t.Errorf("fresh session should survive the sweep")
	}
}

func TestReaperStartStop(t *testing.T) {
	store := New(DefaultMaxTurns)
	reaper := NewReaper(nopLogger{}, store, time.Minute, time.Hour)
	if err := reaper.Start(); err != nil {
		t.Fatalf("unexpected error starting reaper: %v", err)
	}
	reaper.Stop()
}
