package adapt

import (
	"context"
	"time"
)

// LogEntry is one recorded adaptation decision.
type LogEntry struct {
	UserID           string
	Timestamp        time.Time
	Load             float64
	EffectiveLoad    float64
	Zone             Zone
	Action           Action
	DifficultyChange int
	ReviewRatio      float64
}

// AdaptationLog is the write-only sink for adaptation decisions.
type AdaptationLog interface {
	Append(ctx context.Context, entry LogEntry) error
}

// logAdaptation records the decision off the critical path. Failures are
// logged and dropped; the adjustment itself already happened.
func (a *Adapter) logAdaptation(userID string, load float64, ad Adaptation) {
	if a.Log == nil {
		return
	}
	entry := LogEntry{
		UserID:           userID,
		Timestamp:        a.Clock.Now(),
		Load:             load,
		EffectiveLoad:    ad.EffectiveLoad,
		Zone:             ad.Zone,
		Action:           ad.Action,
		DifficultyChange: ad.DifficultyChange,
		ReviewRatio:      ad.ReviewRatio,
	}
	a.pending.Add(1)
	go func() {
		defer a.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Log.Append(ctx, entry); err != nil {
			a.Slog.Warn("adaptation log append failed", "user", userID, "err", err)
		}
	}()
}

// Flush blocks until every in-flight log append has finished. Callers that
// close the underlying store must flush first or entries are lost.
func (a *Adapter) Flush() {
	a.pending.Wait()
}
