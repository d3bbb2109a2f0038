package pattern

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/cadence/internal/telemetry"
)

var engineNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

// richTelemetry builds a history that clears every sufficiency gate: 40
// completed sessions over 8 weeks, 100 reviews, 80 content events.
func richTelemetry() *memTelemetry {
	m := &memTelemetry{}
	start := engineNow.AddDate(0, 0, -56)

	for i := 0; i < 40; i++ {
		at := start.AddDate(0, 0, i).Add(9 * time.Hour)
		end := at.Add(45 * time.Minute)
		s := telemetry.Session{
			ID:          "s",
			UserID:      "u1",
			StartedAt:   at,
			CompletedAt: &end,
			DurationMs:  45 * 60_000,
			Objectives:  []telemetry.ObjectiveCompletion{{Completed: true}},
		}
		for j := 0; j < 3; j++ {
			s.Reviews = append(s.Reviews, telemetry.Review{
				ReviewedAt: at.Add(time.Duration(j*12) * time.Minute),
				Rating:     telemetry.RatingGood,
			})
		}
		m.sessions = append(m.sessions, s)
	}

	for i := 0; i < 100; i++ {
		m.reviews = append(m.reviews, telemetry.Review{
			ReviewedAt:     start.Add(time.Duration(i*13) * time.Hour),
			Rating:         telemetry.RatingGood,
			StabilityAfter: 3,
		})
	}

	for i := 0; i < 80; i++ {
		m.events = append(m.events, telemetry.Event{
			Timestamp:   start.Add(time.Duration(i*16) * time.Hour),
			EventType:   telemetry.EventContentEngagement,
			ContentType: telemetry.ContentClinicalCase,
			EngagedMs:   10 * 60_000,
			Score:       85,
			Completed:   true,
		})
	}

	for i := 0; i < 56; i++ {
		m.loads = append(m.loads, telemetry.LoadMetric{
			Timestamp: start.AddDate(0, 0, i),
			LoadScore: 45,
		})
	}
	return m
}

func newTestEngine(repo telemetry.Repository) (*Engine, *memPatterns, *memInsights, *memProfiles, *fixedClock) {
	patterns := newMemPatterns()
	insights := &memInsights{}
	profiles := newMemProfiles()
	clock := &fixedClock{t: engineNow}
	e := NewEngine(repo, patterns, insights, profiles, clock, nil, DefaultConfig())
	return e, patterns, insights, profiles, clock
}

func TestEngine_InsufficientData(t *testing.T) {
	repo := &memTelemetry{}
	start := engineNow.AddDate(0, 0, -14)
	for i := 0; i < 5; i++ {
		at := start.AddDate(0, 0, i)
		end := at.Add(30 * time.Minute)
		repo.sessions = append(repo.sessions, telemetry.Session{
			StartedAt: at, CompletedAt: &end, DurationMs: 30 * 60_000,
		})
	}
	for i := 0; i < 10; i++ {
		repo.reviews = append(repo.reviews, telemetry.Review{ReviewedAt: start, Rating: telemetry.RatingGood})
	}

	e, patterns, _, _, _ := newTestEngine(repo)
	res, err := e.RunFull(t.Context(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.InsufficientData {
		t.Fatal("expected insufficient data")
	}
	req := res.Requirements
	if req == nil {
		t.Fatal("expected requirements")
	}
	if req.WeeksNeeded != 4 {
		t.Errorf("expected 4 weeks needed, got %d", req.WeeksNeeded)
	}
	if req.SessionsNeeded != 15 {
		t.Errorf("expected 15 sessions needed, got %d", req.SessionsNeeded)
	}
	if req.ReviewsNeeded != 40 {
		t.Errorf("expected 40 reviews needed, got %d", req.ReviewsNeeded)
	}
	if len(patterns.rows) != 0 {
		t.Error("nothing should be persisted on an insufficient run")
	}
}

func TestEngine_FullRunPersistsPatterns(t *testing.T) {
	e, patterns, _, profiles, _ := newTestEngine(richTelemetry())

	res, err := e.RunFull(t.Context(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.InsufficientData || res.Degraded {
		t.Fatalf("expected a normal run, got %+v", res)
	}

	if len(res.Patterns) != 4 {
		t.Fatalf("expected 4 patterns, got %d", len(res.Patterns))
	}
	byType := map[Type]*Pattern{}
	for _, p := range res.Patterns {
		byType[p.PatternType] = p
		if p.ID == "" {
			t.Errorf("%s pattern was not persisted", p.PatternType)
		}
		if p.OccurrenceCount != 1 {
			t.Errorf("%s: expected first occurrence, got %d", p.PatternType, p.OccurrenceCount)
		}
		if len(p.Evidence) == 0 {
			t.Errorf("%s: expected evidence", p.PatternType)
		}
	}

	dur, ok := byType[TypeOptimalDuration].Data.(DurationPayload)
	if !ok || dur.RecommendedMinutes != 45 {
		t.Errorf("expected 45-minute duration payload, got %+v", byType[TypeOptimalDuration].Data)
	}

	if len(res.Insights) == 0 {
		t.Error("expected insights from high-confidence patterns")
	}

	profile, _ := profiles.Get(t.Context(), "u1")
	if profile == nil {
		t.Fatal("expected profile upsert")
	}
	if profile.OptimalDurationMin != 45 {
		t.Errorf("expected profile duration 45, got %d", profile.OptimalDurationMin)
	}
	if profile.DataQualityScore <= 0 {
		t.Error("expected positive data quality")
	}
	if len(patterns.rows) != 4 {
		t.Errorf("expected 4 stored patterns, got %d", len(patterns.rows))
	}
}

func TestEngine_SecondRunEvolves(t *testing.T) {
	e, _, insights, _, clock := newTestEngine(richTelemetry())

	first, err := e.RunFull(t.Context(), "u1")
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	firstInsights := len(insights.rows)

	clock.t = clock.t.AddDate(0, 0, 1)
	second, err := e.RunFull(t.Context(), "u1")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if len(second.Patterns) != len(first.Patterns) {
		t.Fatalf("pattern count changed across identical runs: %d vs %d", len(first.Patterns), len(second.Patterns))
	}
	for _, p := range second.Patterns {
		if p.OccurrenceCount != 2 {
			t.Errorf("%s: expected occurrence 2, got %d", p.PatternType, p.OccurrenceCount)
		}
		if p.ConsecutiveNonOccurrences != 0 {
			t.Errorf("%s: expected zero non-occurrences", p.PatternType)
		}
	}

	// Identical findings produce identical titles: all deduplicated.
	if len(insights.rows) != firstInsights {
		t.Errorf("expected no new insights on identical rerun, got %d new", len(insights.rows)-firstInsights)
	}
}

func TestEngine_DegradedOnTelemetryFailure(t *testing.T) {
	repo := &memTelemetry{err: errors.New("disk gone")}
	e, patterns, _, _, _ := newTestEngine(repo)

	res, err := e.RunFull(t.Context(), "u1")
	if err != nil {
		t.Fatalf("read failures must not propagate, got %v", err)
	}
	if !res.Degraded {
		t.Error("expected degraded result")
	}
	if len(patterns.rows) != 0 {
		t.Error("nothing should be persisted on a degraded run")
	}
}

func TestEngine_IncrementalSkipsWithFewNewSessions(t *testing.T) {
	repo := richTelemetry()
	e, _, _, _, clock := newTestEngine(repo)

	if _, err := e.RunFull(t.Context(), "u1"); err != nil {
		t.Fatalf("full run: %v", err)
	}

	// Five new sessions since the last run: below the ten-session gate.
	clock.t = clock.t.AddDate(0, 0, 7)
	for i := 0; i < 5; i++ {
		at := engineNow.AddDate(0, 0, i+1)
		end := at.Add(40 * time.Minute)
		repo.sessions = append(repo.sessions, telemetry.Session{
			StartedAt: at, CompletedAt: &end, DurationMs: 40 * 60_000,
		})
	}

	res, err := e.RunIncremental(t.Context(), "u1")
	if err != nil {
		t.Fatalf("incremental: %v", err)
	}
	if !res.Skipped {
		t.Error("expected skip below the new-session gate")
	}
	if res.Profile == nil {
		t.Error("skipped runs still return the current profile")
	}
}

func TestEngine_IncrementalRunsWithoutProfile(t *testing.T) {
	e, _, _, _, _ := newTestEngine(richTelemetry())

	res, err := e.RunIncremental(t.Context(), "u1")
	if err != nil {
		t.Fatalf("incremental: %v", err)
	}
	if res.Skipped || res.InsufficientData {
		t.Errorf("first incremental run should fall back to full analysis, got %+v", res)
	}
	if len(res.Patterns) == 0 {
		t.Error("expected patterns from the fallback full run")
	}
}
