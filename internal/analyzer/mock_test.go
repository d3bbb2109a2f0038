package analyzer

import (
	"context"
	"time"

	"github.com/abhisek/cadence/internal/telemetry"
)

// mockRepo is an in-memory telemetry.Repository. The window argument is
// ignored; tests pass exactly the rows they want analyzed.
type mockRepo struct {
	sessions []telemetry.Session
	reviews  []telemetry.Review
	missions []telemetry.Mission
	loads    []telemetry.LoadMetric
	perf     []telemetry.PerformanceMetric
	events   []telemetry.Event
	err      error
}

func (m *mockRepo) Sessions(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Session, error) {
	return m.sessions, m.err
}

func (m *mockRepo) Reviews(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Review, error) {
	return m.reviews, m.err
}

func (m *mockRepo) Missions(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Mission, error) {
	return m.missions, m.err
}

func (m *mockRepo) LoadMetrics(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.LoadMetric, error) {
	return m.loads, m.err
}

func (m *mockRepo) PerformanceMetrics(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.PerformanceMetric, error) {
	return m.perf, m.err
}

func (m *mockRepo) Events(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Event, error) {
	return m.events, m.err
}

// completedSession builds a finished session of the given length whose
// reviews are evenly spread and carry the given ratings.
func completedSession(start time.Time, minutes int, ratings ...telemetry.Rating) telemetry.Session {
	end := start.Add(time.Duration(minutes) * time.Minute)
	s := telemetry.Session{
		ID:          "s-" + start.Format("20060102T1504"),
		UserID:      "u1",
		StartedAt:   start,
		CompletedAt: &end,
		DurationMs:  int64(minutes) * 60_000,
	}
	for i, r := range ratings {
		at := start.Add(time.Duration(i) * time.Duration(minutes) * time.Minute / time.Duration(len(ratings)))
		s.Reviews = append(s.Reviews, telemetry.Review{ReviewedAt: at, Rating: r})
	}
	return s
}

func withObjectives(s telemetry.Session, done, open int) telemetry.Session {
	for i := 0; i < done; i++ {
		s.Objectives = append(s.Objectives, telemetry.ObjectiveCompletion{Completed: true})
	}
	for i := 0; i < open; i++ {
		s.Objectives = append(s.Objectives, telemetry.ObjectiveCompletion{SelfAssessment: 2})
	}
	return s
}

func ratings(r telemetry.Rating, n int) []telemetry.Rating {
	out := make([]telemetry.Rating, n)
	for i := range out {
		out[i] = r
	}
	return out
}

var testDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
