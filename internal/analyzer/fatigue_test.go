package analyzer

import (
	"testing"
	"time"

	"github.com/abhisek/cadence/internal/telemetry"
)

// fatigueSession builds a 70-minute session whose opening segment is all
// correct and whose reviews at dropMinute are all wrong.
func fatigueSession(start time.Time, dropMinute int) telemetry.Session {
	end := start.Add(70 * time.Minute)
	s := telemetry.Session{
		ID:          "f-" + start.Format("20060102"),
		UserID:      "u1",
		StartedAt:   start,
		CompletedAt: &end,
		DurationMs:  70 * 60_000,
	}
	for i := 0; i < 5; i++ {
		s.Reviews = append(s.Reviews, telemetry.Review{
			ReviewedAt: start.Add(time.Duration(i) * 2 * time.Minute),
			Rating:     telemetry.RatingGood,
		})
	}
	for i := 0; i < 5; i++ {
		s.Reviews = append(s.Reviews, telemetry.Review{
			ReviewedAt: start.Add(time.Duration(dropMinute)*time.Minute + time.Duration(i)*time.Minute),
			Rating:     telemetry.RatingAgain,
		})
	}
	return s
}

func TestFatigueAnalyzer_DetectsDropPoint(t *testing.T) {
	repo := &mockRepo{}
	for i := 0; i < 5; i++ {
		repo.sessions = append(repo.sessions, fatigueSession(testDay.AddDate(0, 0, i), 40))
	}

	a := &FatigueAnalyzer{Repo: repo}
	res, err := a.Analyze(t.Context(), "u1", telemetry.Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Detected {
		t.Fatal("expected fatigue detection")
	}
	if res.FatiguePointMinutes != 40 {
		t.Errorf("expected fatigue point 40, got %d", res.FatiguePointMinutes)
	}
	if res.BreakIntervalMinutes != 30 {
		t.Errorf("expected break interval 30, got %d", res.BreakIntervalMinutes)
	}
	if res.SessionsAnalyzed != 5 {
		t.Errorf("expected 5 sessions analyzed, got %d", res.SessionsAnalyzed)
	}
}

func TestFatigueAnalyzer_BreakIntervalFloor(t *testing.T) {
	repo := &mockRepo{}
	// Drop right after the opening segment: 20 - 10 would be below the floor.
	for i := 0; i < 5; i++ {
		repo.sessions = append(repo.sessions, fatigueSession(testDay.AddDate(0, 0, i), 20))
	}

	a := &FatigueAnalyzer{Repo: repo}
	res, err := a.Analyze(t.Context(), "u1", telemetry.Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Detected {
		t.Fatal("expected fatigue detection")
	}
	if res.BreakIntervalMinutes != 30 {
		t.Errorf("expected break floor 30, got %d", res.BreakIntervalMinutes)
	}
}

func TestFatigueAnalyzer_TooFewSessions(t *testing.T) {
	repo := &mockRepo{}
	for i := 0; i < 4; i++ {
		repo.sessions = append(repo.sessions, fatigueSession(testDay.AddDate(0, 0, i), 40))
	}

	a := &FatigueAnalyzer{Repo: repo}
	res, err := a.Analyze(t.Context(), "u1", telemetry.Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Detected {
		t.Error("expected no detection below 5 qualifying sessions")
	}
	if res.Confidence != 0 {
		t.Errorf("expected zero confidence, got %.2f", res.Confidence)
	}
}
