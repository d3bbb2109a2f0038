package telemetry

import (
	"context"
	"time"
)

// Window bounds a telemetry query. A zero From or To leaves that side open.
type Window struct {
	From time.Time
	To   time.Time
}

// LastDays returns a window covering the trailing n days ending at now.
func LastDays(now time.Time, n int) Window {
	return Window{From: now.AddDate(0, 0, -n), To: now}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && t.After(w.To) {
		return false
	}
	return true
}

// Days returns the window span in whole days (0 for open windows).
func (w Window) Days() int {
	if w.From.IsZero() || w.To.IsZero() {
		return 0
	}
	return int(w.To.Sub(w.From).Hours() / 24)
}

// Repository is the read-only telemetry source every analyzer consumes.
// Implementations return rows ordered by time ascending.
type Repository interface {
	Sessions(ctx context.Context, userID string, w Window) ([]Session, error)
	Reviews(ctx context.Context, userID string, w Window) ([]Review, error)
	Missions(ctx context.Context, userID string, w Window) ([]Mission, error)
	LoadMetrics(ctx context.Context, userID string, w Window) ([]LoadMetric, error)
	PerformanceMetrics(ctx context.Context, userID string, w Window) ([]PerformanceMetric, error)
	Events(ctx context.Context, userID string, w Window) ([]Event, error)
}

// Clock abstracts wall-clock time so engines can be tested deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
