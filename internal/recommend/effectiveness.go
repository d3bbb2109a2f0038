package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/cadence/internal/telemetry"
)

// MinEvaluationDays is the minimum elapsed time before an applied
// recommendation may be evaluated.
const MinEvaluationDays = 14

// ErrPrematureEvaluation is returned when effectiveness evaluation is
// requested before MinEvaluationDays have elapsed. This is the one error
// class that propagates to callers: it indicates misuse, not missing data.
var ErrPrematureEvaluation = errors.New("effectiveness evaluation requires 2 weeks since application")

// Apply marks a recommendation applied and snapshots baseline metrics.
func (e *Engine) Apply(ctx context.Context, recommendationID string) (*Applied, error) {
	now := e.clock.Now()

	rec, err := e.recs.Get(ctx, recommendationID)
	if err != nil {
		return nil, fmt.Errorf("load recommendation: %w", err)
	}
	if !rec.Open() {
		return nil, fmt.Errorf("recommendation %s is not open", recommendationID)
	}

	baseline, err := e.snapshotMetrics(ctx, rec.UserID, now)
	if err != nil {
		return nil, fmt.Errorf("snapshot baseline metrics: %w", err)
	}

	if err := e.recs.SetApplied(ctx, recommendationID, now); err != nil {
		return nil, fmt.Errorf("mark applied: %w", err)
	}

	a := &Applied{
		RecommendationID: recommendationID,
		UserID:           rec.UserID,
		AppliedAt:        now,
		Baseline:         baseline,
	}
	if err := e.applied.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("save applied record: %w", err)
	}
	return a, nil
}

// Dismiss marks a recommendation dismissed.
func (e *Engine) Dismiss(ctx context.Context, recommendationID string) error {
	rec, err := e.recs.Get(ctx, recommendationID)
	if err != nil {
		return fmt.Errorf("load recommendation: %w", err)
	}
	if !rec.Open() {
		return fmt.Errorf("recommendation %s is not open", recommendationID)
	}
	if err := e.recs.SetDismissed(ctx, recommendationID, e.clock.Now()); err != nil {
		return fmt.Errorf("mark dismissed: %w", err)
	}
	return nil
}

// Evaluate computes the effectiveness of an applied recommendation as the
// mean relative improvement across available metrics, clamped to [0,1].
// Before MinEvaluationDays it fails with ErrPrematureEvaluation.
func (e *Engine) Evaluate(ctx context.Context, appliedID string) (float64, error) {
	now := e.clock.Now()

	a, err := e.applied.Get(ctx, appliedID)
	if err != nil {
		return 0, fmt.Errorf("load applied record: %w", err)
	}
	if now.Sub(a.AppliedAt) < MinEvaluationDays*24*time.Hour {
		return 0, ErrPrematureEvaluation
	}

	current, err := e.snapshotMetrics(ctx, a.UserID, now)
	if err != nil {
		return 0, fmt.Errorf("snapshot current metrics: %w", err)
	}

	effectiveness := Effectiveness(a.Baseline, current)
	a.Current = &current
	a.Effectiveness = &effectiveness
	a.EvaluatedAt = &now
	if err := e.applied.Update(ctx, a); err != nil {
		return 0, fmt.Errorf("update applied record: %w", err)
	}
	return effectiveness, nil
}

// Effectiveness averages per-metric relative improvement over metrics with
// a usable (non-zero) baseline.
func Effectiveness(baseline, current Metrics) float64 {
	var improvements []float64
	if baseline.MeanPatternConfidence > 0 {
		improvements = append(improvements, (current.MeanPatternConfidence-baseline.MeanPatternConfidence)/baseline.MeanPatternConfidence)
	}
	if baseline.DataQualityScore > 0 {
		improvements = append(improvements, (current.DataQualityScore-baseline.DataQualityScore)/baseline.DataQualityScore)
	}
	if baseline.WeeklySessionCount > 0 {
		improvements = append(improvements,
			(float64(current.WeeklySessionCount)-float64(baseline.WeeklySessionCount))/float64(baseline.WeeklySessionCount))
	}
	if len(improvements) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range improvements {
		sum += v
	}
	return clamp01(sum / float64(len(improvements)))
}

// snapshotMetrics captures the behavioral metrics used for effectiveness
// comparison.
func (e *Engine) snapshotMetrics(ctx context.Context, userID string, now time.Time) (Metrics, error) {
	var m Metrics

	patterns, err := e.patterns.ListByUser(ctx, userID)
	if err != nil {
		return m, fmt.Errorf("list patterns: %w", err)
	}
	if len(patterns) > 0 {
		sum := 0.0
		for _, p := range patterns {
			sum += p.Confidence
		}
		m.MeanPatternConfidence = sum / float64(len(patterns))
	}

	profile, err := e.profiles.Get(ctx, userID)
	if err != nil {
		return m, fmt.Errorf("load profile: %w", err)
	}
	if profile != nil {
		m.DataQualityScore = profile.DataQualityScore
	}

	sessions, err := e.telemetry.Sessions(ctx, userID, telemetry.LastDays(now, 7))
	if err != nil {
		return m, fmt.Errorf("load sessions: %w", err)
	}
	m.WeeklySessionCount = len(sessions)
	return m, nil
}
