package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/cadence/internal/pattern"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPatternRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PatternRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	p := &pattern.Pattern{
		UserID:      "u1",
		PatternType: pattern.TypeOptimalStudyTime,
		PatternName: "Peak focus 09:00-11:00",
		Confidence:  0.8,
		Data: pattern.StudyTimePayload{
			Windows: []pattern.StudyWindow{{StartHour: 9, EndHour: 11, Score: 90}},
		},
		Evidence:        []string{"40 sessions"},
		OccurrenceCount: 1,
		FirstDetectedAt: now,
		LastSeenAt:      now,
	}
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	if p.ID == "" {
		t.Fatal("save did not assign an ID")
	}

	rows, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(rows))
	}
	got := rows[0]
	if got.Confidence != 0.8 || got.PatternType != pattern.TypeOptimalStudyTime {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	payload, ok := got.Data.(pattern.StudyTimePayload)
	if !ok {
		t.Fatalf("payload type = %T", got.Data)
	}
	if len(payload.Windows) != 1 || payload.Windows[0].StartHour != 9 {
		t.Errorf("payload mismatch: %+v", payload)
	}

	got.Confidence = 0.85
	got.OccurrenceCount = 2
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	rows, _ = repo.ListByUser(ctx, "u1")
	if rows[0].Confidence != 0.85 || rows[0].OccurrenceCount != 2 {
		t.Errorf("update not persisted: %+v", rows[0])
	}

	if err := repo.Delete(ctx, got.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	rows, _ = repo.ListByUser(ctx, "u1")
	if len(rows) != 0 {
		t.Errorf("expected no patterns after delete, got %d", len(rows))
	}
}

func TestProfileUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil profile when none exists")
	}

	p := &pattern.Profile{UserID: "u1", OptimalDurationMin: 45, DataQualityScore: 0.6}
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("upsert (create): %v", err)
	}

	p.OptimalDurationMin = 50
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("upsert (update): %v", err)
	}

	got, err = repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.OptimalDurationMin != 50 {
		t.Errorf("upsert did not replace: %+v", got)
	}
}

func TestSeedCountsAndReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SeedDemo(ctx, "u1", 7); err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, err := s.UserCounts(ctx, "u1")
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if c.Sessions == 0 || c.Reviews == 0 || c.Missions == 0 || c.LoadMetrics == 0 {
		t.Fatalf("seed left telemetry empty: %+v", c)
	}

	// Derive one row, then reset and keep the telemetry.
	p := &pattern.Pattern{
		UserID:      "u1",
		PatternType: pattern.TypeOptimalDuration,
		PatternName: "45-minute sessions",
		Confidence:  0.7,
		Data:        pattern.DurationPayload{RecommendedMinutes: 45, DurationRange: "40-50 min"},
	}
	if err := s.PatternRepo().Save(ctx, p); err != nil {
		t.Fatalf("save pattern: %v", err)
	}

	if err := s.ResetDerived(ctx, "u1"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	c, err = s.UserCounts(ctx, "u1")
	if err != nil {
		t.Fatalf("counts after reset: %v", err)
	}
	if c.Patterns != 0 || c.HasProfile {
		t.Errorf("derived rows survived reset: %+v", c)
	}
	if c.Sessions == 0 {
		t.Error("reset must not touch telemetry")
	}
}
