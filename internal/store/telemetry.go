package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cadence/ent"
	"github.com/abhisek/cadence/ent/behavioralevent"
	"github.com/abhisek/cadence/ent/loadmetric"
	"github.com/abhisek/cadence/ent/mission"
	"github.com/abhisek/cadence/ent/performancemetric"
	"github.com/abhisek/cadence/ent/reviewevent"
	"github.com/abhisek/cadence/ent/studysession"
	"github.com/abhisek/cadence/internal/telemetry"
)

// telemetryRepo implements telemetry.Repository over the ent client.
type telemetryRepo struct {
	client *ent.Client
}

func (r *telemetryRepo) Sessions(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Session, error) {
	q := r.client.StudySession.Query().
		Where(studysession.UserID(userID))
	if !w.From.IsZero() {
		q = q.Where(studysession.StartedAtGTE(w.From))
	}
	if !w.To.IsZero() {
		q = q.Where(studysession.StartedAtLTE(w.To))
	}
	rows, err := q.Order(ent.Asc(studysession.FieldStartedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	out := make([]telemetry.Session, 0, len(rows))
	for _, row := range rows {
		s := telemetry.Session{
			ID:          row.SessionID,
			UserID:      row.UserID,
			StartedAt:   row.StartedAt,
			CompletedAt: row.CompletedAt,
			DurationMs:  row.DurationMs,
			MissionID:   row.MissionID,
		}
		for _, rv := range row.Reviews {
			s.Reviews = append(s.Reviews, telemetry.Review{
				ReviewedAt:     time.UnixMilli(rv.ReviewedAt),
				Rating:         telemetry.Rating(rv.Rating),
				StabilityAfter: rv.StabilityAfter,
			})
		}
		for _, ob := range row.Objectives {
			s.Objectives = append(s.Objectives, telemetry.ObjectiveCompletion{
				Completed:      ob.Completed,
				SelfAssessment: ob.SelfAssessment,
			})
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *telemetryRepo) Reviews(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Review, error) {
	q := r.client.ReviewEvent.Query().
		Where(reviewevent.UserID(userID))
	if !w.From.IsZero() {
		q = q.Where(reviewevent.ReviewedAtGTE(w.From))
	}
	if !w.To.IsZero() {
		q = q.Where(reviewevent.ReviewedAtLTE(w.To))
	}
	rows, err := q.Order(ent.Asc(reviewevent.FieldReviewedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}

	out := make([]telemetry.Review, 0, len(rows))
	for _, row := range rows {
		out = append(out, telemetry.Review{
			ReviewedAt:     row.ReviewedAt,
			Rating:         telemetry.Rating(row.Rating),
			StabilityAfter: row.StabilityAfter,
		})
	}
	return out, nil
}

func (r *telemetryRepo) Missions(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Mission, error) {
	q := r.client.Mission.Query().
		Where(mission.UserID(userID))
	if !w.From.IsZero() {
		q = q.Where(mission.DateGTE(w.From))
	}
	if !w.To.IsZero() {
		q = q.Where(mission.DateLTE(w.To))
	}
	rows, err := q.Order(ent.Asc(mission.FieldDate)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query missions: %w", err)
	}

	out := make([]telemetry.Mission, 0, len(rows))
	for _, row := range rows {
		out = append(out, telemetry.Mission{
			Date:             row.Date,
			Status:           telemetry.MissionStatus(row.Status),
			DifficultyRating: row.DifficultyRating,
		})
	}
	return out, nil
}

func (r *telemetryRepo) LoadMetrics(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.LoadMetric, error) {
	q := r.client.LoadMetric.Query().
		Where(loadmetric.UserID(userID))
	if !w.From.IsZero() {
		q = q.Where(loadmetric.TimestampGTE(w.From))
	}
	if !w.To.IsZero() {
		q = q.Where(loadmetric.TimestampLTE(w.To))
	}
	rows, err := q.Order(ent.Asc(loadmetric.FieldTimestamp)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query load metrics: %w", err)
	}

	out := make([]telemetry.LoadMetric, 0, len(rows))
	for _, row := range rows {
		out = append(out, telemetry.LoadMetric{
			Timestamp: row.Timestamp,
			LoadScore: row.LoadScore,
		})
	}
	return out, nil
}

func (r *telemetryRepo) PerformanceMetrics(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.PerformanceMetric, error) {
	q := r.client.PerformanceMetric.Query().
		Where(performancemetric.UserID(userID))
	if !w.From.IsZero() {
		q = q.Where(performancemetric.DateGTE(w.From))
	}
	if !w.To.IsZero() {
		q = q.Where(performancemetric.DateLTE(w.To))
	}
	rows, err := q.Order(ent.Asc(performancemetric.FieldDate)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query performance metrics: %w", err)
	}

	out := make([]telemetry.PerformanceMetric, 0, len(rows))
	for _, row := range rows {
		out = append(out, telemetry.PerformanceMetric{
			Date:           row.Date,
			RetentionScore: row.RetentionScore,
		})
	}
	return out, nil
}

func (r *telemetryRepo) Events(ctx context.Context, userID string, w telemetry.Window) ([]telemetry.Event, error) {
	q := r.client.BehavioralEvent.Query().
		Where(behavioralevent.UserID(userID))
	if !w.From.IsZero() {
		q = q.Where(behavioralevent.TimestampGTE(w.From))
	}
	if !w.To.IsZero() {
		q = q.Where(behavioralevent.TimestampLTE(w.To))
	}
	rows, err := q.Order(ent.Asc(behavioralevent.FieldTimestamp)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	out := make([]telemetry.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, telemetry.Event{
			Timestamp:          row.Timestamp,
			EventType:          row.EventType,
			ContentType:        telemetry.ContentType(row.ContentType),
			EngagedMs:          row.EngagedMs,
			Score:              row.Score,
			Completed:          row.Completed,
			SessionPerformance: row.SessionPerformance,
		})
	}
	return out, nil
}
