package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cadence/ent/adaptationevent"
	"github.com/abhisek/cadence/ent/appliedrecommendation"
	"github.com/abhisek/cadence/ent/behavioralevent"
	"github.com/abhisek/cadence/ent/behavioralinsight"
	"github.com/abhisek/cadence/ent/behavioralpattern"
	"github.com/abhisek/cadence/ent/burnoutassessment"
	"github.com/abhisek/cadence/ent/learningprofile"
	"github.com/abhisek/cadence/ent/loadmetric"
	"github.com/abhisek/cadence/ent/mission"
	"github.com/abhisek/cadence/ent/performancemetric"
	"github.com/abhisek/cadence/ent/recommendation"
	"github.com/abhisek/cadence/ent/reviewevent"
	"github.com/abhisek/cadence/ent/studysession"
)

// Counts summarizes a user's stored rows.
type Counts struct {
	Sessions           int
	Reviews            int
	Missions           int
	LoadMetrics        int
	PerformanceMetrics int
	Events             int
	Patterns           int
	Insights           int
	Recommendations    int
	Assessments        int
	Adaptations        int
	HasProfile         bool
}

// UserCounts returns per-table row counts for one user.
func (s *Store) UserCounts(ctx context.Context, userID string) (Counts, error) {
	var c Counts
	var err error

	if c.Sessions, err = s.client.StudySession.Query().
		Where(studysession.UserID(userID)).Count(ctx); err != nil {
		return c, fmt.Errorf("count sessions: %w", err)
	}
	if c.Reviews, err = s.client.ReviewEvent.Query().
		Where(reviewevent.UserID(userID)).Count(ctx); err != nil {
		return c, fmt.Errorf("count reviews: %w", err)
	}
	if c.Missions, err = s.client.Mission.Query().
		Where(mission.UserID(userID)).Count(ctx); err != nil {
		return c, fmt.Errorf("count missions: %w", err)
	}
	if c.LoadMetrics, err = s.client.LoadMetric.Query().
		Where(loadmetric.UserID(userID)).Count(ctx); err != nil {
		return c, fmt.Errorf("count load metrics: %w", err)
	}
	if c.PerformanceMetrics, err = s.client.PerformanceMetric.Query().
		Where(performancemetric.UserID(userID)).Count(ctx); err != nil {
		return c, fmt.Errorf("count performance metrics: %w", err)
	}
	if c.Events, err = s.client.BehavioralEvent.Query().
		Where(behavioralevent.UserID(userID)).Count(ctx); err != nil {
		return c, fmt.Errorf("count events: %w", err)
	}
	if c.Patterns, err = s.client.BehavioralPattern.Query().
		Where(behavioralpattern.UserID(userID)).Count(ctx); err != nil {
		return c, fmt.Errorf("count patterns: %w", err)
	}
	if c.Insights, err = s.client.BehavioralInsight.Query().
		Where(behavioralinsight.UserID(userID)).Count(ctx); err != nil {
		return c, fmt.Errorf("count insights: %w", err)
	}
	if c.Recommendations, err = s.client.Recommendation.Query().
		Where(recommendation.UserID(userID)).Count(ctx); err != nil {
		return c, fmt.Errorf("count recommendations: %w", err)
	}
	if c.Assessments, err = s.client.BurnoutAssessment.Query().
		Where(burnoutassessment.UserID(userID)).Count(ctx); err != nil {
		return c, fmt.Errorf("count assessments: %w", err)
	}
	if c.Adaptations, err = s.client.AdaptationEvent.Query().
		Where(adaptationevent.UserID(userID)).Count(ctx); err != nil {
		return c, fmt.Errorf("count adaptations: %w", err)
	}

	n, err := s.client.LearningProfile.Query().
		Where(learningprofile.UserID(userID)).Count(ctx)
	if err != nil {
		return c, fmt.Errorf("count profile: %w", err)
	}
	c.HasProfile = n > 0
	return c, nil
}

// ResetDerived deletes all engine-derived rows for a user. Telemetry is
// kept so the next analysis run starts from the full history.
func (s *Store) ResetDerived(ctx context.Context, userID string) error {
	if _, err := s.client.BehavioralPattern.Delete().
		Where(behavioralpattern.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete patterns: %w", err)
	}
	if _, err := s.client.BehavioralInsight.Delete().
		Where(behavioralinsight.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete insights: %w", err)
	}
	if _, err := s.client.Recommendation.Delete().
		Where(recommendation.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete recommendations: %w", err)
	}
	if _, err := s.client.AppliedRecommendation.Delete().
		Where(appliedrecommendation.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete applied records: %w", err)
	}
	if _, err := s.client.BurnoutAssessment.Delete().
		Where(burnoutassessment.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete assessments: %w", err)
	}
	if _, err := s.client.AdaptationEvent.Delete().
		Where(adaptationevent.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete adaptation events: %w", err)
	}
	if _, err := s.client.LearningProfile.Delete().
		Where(learningprofile.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
