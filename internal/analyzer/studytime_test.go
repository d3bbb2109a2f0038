package analyzer

import (
	"testing"
	"time"

	"github.com/abhisek/cadence/internal/telemetry"
)

func TestStudyTimeAnalyzer_ScoresHours(t *testing.T) {
	repo := &mockRepo{}
	// Four perfect morning sessions at 09:00.
	for i := 0; i < 4; i++ {
		s := completedSession(testDay.AddDate(0, 0, i).Add(9*time.Hour), 40, ratings(telemetry.RatingGood, 4)...)
		repo.sessions = append(repo.sessions, withObjectives(s, 2, 0))
	}
	// Three weak evening sessions at 21:00.
	for i := 0; i < 3; i++ {
		s := completedSession(testDay.AddDate(0, 0, i).Add(21*time.Hour), 40, ratings(telemetry.RatingAgain, 4)...)
		repo.sessions = append(repo.sessions, withObjectives(s, 0, 2))
	}
	// One 07:00 session: below the 3-session floor, no bucket.
	repo.sessions = append(repo.sessions,
		completedSession(testDay.Add(7*time.Hour), 40, ratings(telemetry.RatingGood, 4)...))

	a := &StudyTimeAnalyzer{Repo: repo}
	res, err := a.Analyze(t.Context(), "u1", telemetry.Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Buckets) != 2 {
		t.Fatalf("expected 2 hour buckets, got %d", len(res.Buckets))
	}
	if res.Buckets[0].Hour != 9 || res.Buckets[0].Score != 100 {
		t.Errorf("morning bucket: hour=%d score=%.1f", res.Buckets[0].Hour, res.Buckets[0].Score)
	}
	if res.Buckets[1].Hour != 21 || res.Buckets[1].Score != 0 {
		t.Errorf("evening bucket: hour=%d score=%.1f", res.Buckets[1].Hour, res.Buckets[1].Score)
	}

	if len(res.OptimalWindows) == 0 || res.OptimalWindows[0].StartHour != 9 {
		t.Errorf("expected a 09:00 window first, got %+v", res.OptimalWindows)
	}
	if res.TotalSessions != 8 {
		t.Errorf("expected 8 completed sessions, got %d", res.TotalSessions)
	}
	if want := 8.0 / 40.0; res.Confidence != want {
		t.Errorf("expected confidence %.3f, got %.3f", want, res.Confidence)
	}
}

func TestStudyTimeAnalyzer_NoSessions(t *testing.T) {
	a := &StudyTimeAnalyzer{Repo: &mockRepo{}}
	res, err := a.Analyze(t.Context(), "u1", telemetry.Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Confidence != 0 || len(res.OptimalWindows) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestMergeTopHours_AdjacentHoursMerge(t *testing.T) {
	buckets := []TimeBucket{
		{Hour: 9, Score: 80},
		{Hour: 10, Score: 90},
		{Hour: 14, Score: 70},
	}
	windows := mergeTopHours(buckets)
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}
	if windows[0].StartHour != 9 || windows[0].EndHour != 11 {
		t.Errorf("expected merged 9-11 window, got %+v", windows[0])
	}
	if windows[0].Score != 90 {
		t.Errorf("merged window keeps the better score, got %.1f", windows[0].Score)
	}
	if windows[1].StartHour != 14 || windows[1].EndHour != 15 {
		t.Errorf("expected 14-15 window, got %+v", windows[1])
	}
}

func TestMergeTopHours_CapsAtThree(t *testing.T) {
	buckets := []TimeBucket{
		{Hour: 6, Score: 60},
		{Hour: 9, Score: 90},
		{Hour: 12, Score: 80},
		{Hour: 15, Score: 70},
		{Hour: 20, Score: 50},
	}
	windows := mergeTopHours(buckets)
	if len(windows) != 3 {
		t.Fatalf("expected top 3 hours, got %d windows", len(windows))
	}
	for _, w := range windows {
		if w.StartHour == 6 || w.StartHour == 20 {
			t.Errorf("low-scoring hour %d should not appear", w.StartHour)
		}
	}
}
