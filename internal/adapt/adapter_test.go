package adapt

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"
)

func TestAdjustment_Zones(t *testing.T) {
	cases := []struct {
		name       string
		load       float64
		wantZone   Zone
		wantAction Action
		wantChange int
		wantRatio  float64
	}{
		{"emergency", 85, ZoneEmergency, ActionEmergencyBrake, -2, 1.0},
		{"reduce", 70, ZoneReduce, ActionReduce, -1, 0.8},
		{"maintain", 50, ZoneMaintain, ActionMaintain, 0, 0.6},
		{"increase hold", 35, ZoneIncrease, ActionIncrease, 0, 0.5},
		{"increase step", 25, ZoneIncrease, ActionIncrease, 1, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ad := Adjustment(tc.load, DefaultTolerance, TrendStable)
			if ad.Zone != tc.wantZone {
				t.Errorf("zone = %s, want %s", ad.Zone, tc.wantZone)
			}
			if ad.Action != tc.wantAction {
				t.Errorf("action = %s, want %s", ad.Action, tc.wantAction)
			}
			if ad.DifficultyChange != tc.wantChange {
				t.Errorf("difficulty change = %d, want %d", ad.DifficultyChange, tc.wantChange)
			}
			if ad.ReviewRatio != tc.wantRatio {
				t.Errorf("review ratio = %.1f, want %.1f", ad.ReviewRatio, tc.wantRatio)
			}
			if ad.Mods != zoneMods[tc.wantZone] {
				t.Errorf("mods = %+v, want %+v", ad.Mods, zoneMods[tc.wantZone])
			}
		})
	}
}

func TestEffectiveLoad_ToleranceAndTrend(t *testing.T) {
	// High tolerance pulls a reduce-zone reading back into maintain.
	ad := Adjustment(70, 80, TrendStable)
	if ad.EffectiveLoad != 60 {
		t.Errorf("effective load = %.1f, want 60", ad.EffectiveLoad)
	}
	if ad.Zone != ZoneMaintain {
		t.Errorf("zone = %s, want MAINTAIN", ad.Zone)
	}

	// A rising trend pushes a borderline reading over the edge.
	if z := Adjustment(58, DefaultTolerance, TrendRising).Zone; z != ZoneReduce {
		t.Errorf("rising zone = %s, want REDUCE", z)
	}
	if z := Adjustment(44, DefaultTolerance, TrendFalling).Zone; z != ZoneIncrease {
		t.Errorf("falling zone = %s, want INCREASE", z)
	}

	// Zero tolerance falls back to the default.
	if ad := Adjustment(50, 0, TrendStable); ad.EffectiveLoad != 50 {
		t.Errorf("default-tolerance load = %.1f, want 50", ad.EffectiveLoad)
	}

	// Clamped at both ends.
	if ad := Adjustment(98, DefaultTolerance, TrendRising); ad.EffectiveLoad != 100 {
		t.Errorf("clamped high = %.1f, want 100", ad.EffectiveLoad)
	}
	if ad := Adjustment(2, DefaultTolerance, TrendFalling); ad.EffectiveLoad != 0 {
		t.Errorf("clamped low = %.1f, want 0", ad.EffectiveLoad)
	}
}

func TestContentEnvelope(t *testing.T) {
	env := ContentEnvelope(50, DefaultTolerance, TrendStable, 0.1)
	if len(env.Preferred) != 0 || len(env.Avoided) != 0 {
		t.Error("maintain zone should not constrain content types")
	}
	if env.MaxComplexity != "INTERMEDIATE" || env.Scaffolding != "light" {
		t.Errorf("maintain mods = %s/%s", env.MaxComplexity, env.Scaffolding)
	}
	if env.PromptComplexity != 0.8 {
		t.Errorf("prompt complexity = %.1f, want 0.8", env.PromptComplexity)
	}

	env = ContentEnvelope(85, DefaultTolerance, TrendStable, 0.1)
	if len(env.Preferred) == 0 || len(env.Avoided) == 0 {
		t.Error("emergency zone should prefer light content and avoid heavy")
	}
}

func TestContentEnvelope_HighErrorRateTightens(t *testing.T) {
	env := ContentEnvelope(50, DefaultTolerance, TrendStable, 0.4)
	if env.MaxComplexity != "BASIC" {
		t.Errorf("complexity = %s, want BASIC", env.MaxComplexity)
	}
	if env.Scaffolding != "moderate" {
		t.Errorf("scaffolding = %s, want moderate", env.Scaffolding)
	}
	if math.Abs(env.PromptComplexity-0.6) > 1e-9 {
		t.Errorf("prompt complexity = %.2f, want 0.6", env.PromptComplexity)
	}

	// Already at the floor in the emergency zone.
	env = ContentEnvelope(85, DefaultTolerance, TrendStable, 0.9)
	if env.PromptComplexity != minPromptComplexity {
		t.Errorf("prompt complexity = %.2f, want floor %.2f", env.PromptComplexity, minPromptComplexity)
	}
	if env.MaxComplexity != "BASIC" || env.Scaffolding != "high" {
		t.Errorf("emergency tightened = %s/%s", env.MaxComplexity, env.Scaffolding)
	}
}

func TestChallenge(t *testing.T) {
	// Lots of headroom buys difficulty and new content.
	level := Challenge(20, DefaultTolerance, 45)
	if level.Difficulty != 4 {
		t.Errorf("difficulty = %d, want 4", level.Difficulty)
	}
	if level.Complexity != "ADVANCED" {
		t.Errorf("complexity = %s, want ADVANCED", level.Complexity)
	}
	if level.NewContentRatio != 0.5 {
		t.Errorf("new content ratio = %.1f, want 0.5", level.NewContentRatio)
	}
	if level.SessionLenMin != 45 {
		t.Errorf("session length = %d, want 45", level.SessionLenMin)
	}

	// Overload sells both and shortens the session.
	level = Challenge(85, DefaultTolerance, 45)
	if level.Difficulty != 2 {
		t.Errorf("difficulty = %d, want 2", level.Difficulty)
	}
	if level.Complexity != "BASIC" {
		t.Errorf("complexity = %s, want BASIC", level.Complexity)
	}
	if level.NewContentRatio != 0 {
		t.Errorf("new content ratio = %.1f, want 0", level.NewContentRatio)
	}
	if level.SessionLenMin != 30 {
		t.Errorf("session length = %d, want 30", level.SessionLenMin)
	}
	if level.BreakEveryMin != 15 {
		t.Errorf("break interval = %d, want 15", level.BreakEveryMin)
	}
}

func TestChallenge_Bounds(t *testing.T) {
	if level := Challenge(100, DefaultTolerance, 45); level.Difficulty != 1 {
		t.Errorf("difficulty = %d, want 1", level.Difficulty)
	}
	// Session length never drops below 15 minutes.
	if level := Challenge(85, DefaultTolerance, 20); level.SessionLenMin != 15 {
		t.Errorf("session length = %d, want 15", level.SessionLenMin)
	}
	// Unknown habitual duration defaults to 45.
	if level := Challenge(50, DefaultTolerance, 0); level.SessionLenMin != 45 {
		t.Errorf("session length = %d, want 45", level.SessionLenMin)
	}
}

func TestAdjust_LogsDecision(t *testing.T) {
	sink := &chanLog{entries: make(chan LogEntry, 1)}
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	a := NewAdapter(sink, &fixedClock{t: now}, nil)

	ad := a.Adjust(context.Background(), "u1", 85, DefaultTolerance, TrendStable)
	if ad.Zone != ZoneEmergency {
		t.Fatalf("zone = %s, want EMERGENCY", ad.Zone)
	}

	select {
	case e := <-sink.entries:
		if e.UserID != "u1" || e.Load != 85 || e.Zone != ZoneEmergency {
			t.Errorf("logged entry = %+v", e)
		}
		if !e.Timestamp.Equal(now) {
			t.Errorf("timestamp = %v, want %v", e.Timestamp, now)
		}
		if e.DifficultyChange != -2 {
			t.Errorf("difficulty change = %d, want -2", e.DifficultyChange)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("adaptation was never logged")
	}
}

func TestAdjust_FlushBeforeClose(t *testing.T) {
	sink := &closableLog{}
	a := NewAdapter(sink, nil, nil)

	// Mirrors the CLI flow: adjust, drain the log, then close the store.
	a.Adjust(context.Background(), "u1", 70, DefaultTolerance, TrendStable)
	a.Flush()
	sink.close()

	if got := sink.count(); got != 1 {
		t.Fatalf("appended %d entries before close, want 1", got)
	}
}

func TestFlush_NoPendingAppends(t *testing.T) {
	a := NewAdapter(nil, nil, nil)
	a.Flush()
}

func TestAdjust_NilLog(t *testing.T) {
	a := NewAdapter(nil, nil, nil)
	if ad := a.Adjust(context.Background(), "u1", 50, DefaultTolerance, TrendStable); ad.Zone != ZoneMaintain {
		t.Errorf("zone = %s, want MAINTAIN", ad.Zone)
	}
}

// closableLog rejects appends once closed, like a store after Close.
type closableLog struct {
	mu       sync.Mutex
	closed   bool
	appended int
}

func (c *closableLog) Append(ctx context.Context, e LogEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.New("log is closed")
	}
	c.appended++
	return nil
}

func (c *closableLog) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *closableLog) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.appended
}

type chanLog struct {
	entries chan LogEntry
}

func (c *chanLog) Append(ctx context.Context, e LogEntry) error {
	c.entries <- e
	return nil
}

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time { return c.t }
