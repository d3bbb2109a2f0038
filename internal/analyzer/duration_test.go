package analyzer

import (
	"testing"
	"time"

	"github.com/abhisek/cadence/internal/telemetry"
)

func TestDurationAnalyzer_PicksBestBucket(t *testing.T) {
	repo := &mockRepo{}
	// Four strong 45-minute sessions.
	for i := 0; i < 4; i++ {
		s := completedSession(testDay.AddDate(0, 0, i).Add(9*time.Hour), 45, ratings(telemetry.RatingGood, 4)...)
		repo.sessions = append(repo.sessions, withObjectives(s, 2, 0))
	}
	// Three weak short sessions.
	for i := 0; i < 3; i++ {
		s := completedSession(testDay.AddDate(0, 0, i).Add(20*time.Hour), 20, ratings(telemetry.RatingAgain, 4)...)
		repo.sessions = append(repo.sessions, withObjectives(s, 0, 2))
	}

	a := &DurationAnalyzer{Repo: repo}
	res, err := a.Analyze(t.Context(), "u1", telemetry.Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Optimal == nil {
		t.Fatal("expected an optimal bucket")
	}
	if res.Optimal.DurationRange != "40-50 min" {
		t.Errorf("expected 40-50 min bucket, got %q", res.Optimal.DurationRange)
	}
	if res.RecommendedMinutes != 45 {
		t.Errorf("expected 45 min recommendation, got %d", res.RecommendedMinutes)
	}
	if res.TotalSessions != 7 {
		t.Errorf("expected 7 sessions, got %d", res.TotalSessions)
	}

	// 4/4 correct, all objectives done, no fatigue drop.
	if res.Optimal.Score != 100 {
		t.Errorf("expected perfect bucket score, got %.1f", res.Optimal.Score)
	}
}

func TestDurationAnalyzer_NoSessions(t *testing.T) {
	a := &DurationAnalyzer{Repo: &mockRepo{}}
	res, err := a.Analyze(t.Context(), "u1", telemetry.Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RecommendedMinutes != DefaultDurationMinutes {
		t.Errorf("expected default %d min, got %d", DefaultDurationMinutes, res.RecommendedMinutes)
	}
	if res.Confidence != 0 {
		t.Errorf("expected zero confidence, got %.2f", res.Confidence)
	}
	if res.Optimal != nil {
		t.Error("expected no optimal bucket")
	}
}

func TestDurationAnalyzer_BucketBelowFloorKeepsDefault(t *testing.T) {
	repo := &mockRepo{}
	// Two sessions only: below the 3-session floor everywhere.
	for i := 0; i < 2; i++ {
		repo.sessions = append(repo.sessions,
			completedSession(testDay.AddDate(0, 0, i), 45, ratings(telemetry.RatingGood, 3)...))
	}

	a := &DurationAnalyzer{Repo: repo}
	res, err := a.Analyze(t.Context(), "u1", telemetry.Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Optimal != nil {
		t.Error("expected no bucket to clear the floor")
	}
	if res.RecommendedMinutes != DefaultDurationMinutes {
		t.Errorf("expected default recommendation, got %d", res.RecommendedMinutes)
	}
}

func TestDurationAnalyzer_OpenBucketDisplayRange(t *testing.T) {
	repo := &mockRepo{}
	for i := 0; i < 3; i++ {
		repo.sessions = append(repo.sessions,
			completedSession(testDay.AddDate(0, 0, i), 100, ratings(telemetry.RatingGood, 4)...))
	}

	a := &DurationAnalyzer{Repo: repo}
	res, err := a.Analyze(t.Context(), "u1", telemetry.Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RecommendedMinutes != 90 {
		t.Errorf("expected 90 min for the open bucket, got %d", res.RecommendedMinutes)
	}
	if res.DisplayRangeMin != 90 || res.DisplayRangeMax != 120 {
		t.Errorf("expected 90-120 display range, got %d-%d", res.DisplayRangeMin, res.DisplayRangeMax)
	}
}

func TestComplexityOffsets(t *testing.T) {
	offsets := complexityOffsets(45)
	if offsets[ComplexityBasic] != 35 {
		t.Errorf("basic: got %d", offsets[ComplexityBasic])
	}
	if offsets[ComplexityIntermediate] != 45 {
		t.Errorf("intermediate: got %d", offsets[ComplexityIntermediate])
	}
	if offsets[ComplexityAdvanced] != 60 {
		t.Errorf("advanced: got %d", offsets[ComplexityAdvanced])
	}

	// Floor and ceiling.
	low := complexityOffsets(35)
	if low[ComplexityBasic] != 30 {
		t.Errorf("basic floor: got %d", low[ComplexityBasic])
	}
	high := complexityOffsets(90)
	if high[ComplexityAdvanced] != 90 {
		t.Errorf("advanced ceiling: got %d", high[ComplexityAdvanced])
	}
}

func TestHalfSplitDrop(t *testing.T) {
	// First half all correct, second half all wrong: full drop.
	s := completedSession(testDay, 60,
		telemetry.RatingGood, telemetry.RatingGood, telemetry.RatingGood,
		telemetry.RatingAgain, telemetry.RatingAgain, telemetry.RatingAgain)
	if drop := halfSplitDrop(&s); drop != 1 {
		t.Errorf("expected drop 1.0, got %.2f", drop)
	}

	// Improvement clamps to zero.
	s = completedSession(testDay, 60,
		telemetry.RatingAgain, telemetry.RatingAgain, telemetry.RatingAgain,
		telemetry.RatingGood, telemetry.RatingGood, telemetry.RatingGood)
	if drop := halfSplitDrop(&s); drop != 0 {
		t.Errorf("expected drop 0, got %.2f", drop)
	}
}
