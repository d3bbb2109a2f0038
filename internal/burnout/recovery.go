package burnout

import (
	"context"
	"fmt"
	"math"
)

// RecoveryTrend compares the two most recent assessments.
type RecoveryTrend string

const (
	TrendImproving    RecoveryTrend = "improving"
	TrendStable       RecoveryTrend = "stable"
	TrendWorsening    RecoveryTrend = "worsening"
	TrendInsufficient RecoveryTrend = "insufficient-history"
)

// recoveryDelta is the score movement beyond which the trend counts as a
// real change rather than noise.
const recoveryDelta = 10

// Recovery summarizes the movement between the two latest assessments.
type Recovery struct {
	Trend       RecoveryTrend
	ScoreChange float64 // latest minus previous; negative is improvement
	DaysBetween int
	Latest      *Assessment
	Previous    *Assessment
}

// TrackRecovery reads the two most recent assessments and classifies the
// trend. With fewer than two snapshots the trend is insufficient-history.
func (e *Engine) TrackRecovery(ctx context.Context, userID string) (*Recovery, error) {
	recent, err := e.repo.Recent(ctx, userID, 2)
	if err != nil {
		return nil, fmt.Errorf("load recent assessments: %w", err)
	}
	if len(recent) < 2 {
		r := &Recovery{Trend: TrendInsufficient}
		if len(recent) == 1 {
			r.Latest = recent[0]
		}
		return r, nil
	}

	latest, previous := recent[0], recent[1]
	r := &Recovery{
		ScoreChange: latest.RiskScore - previous.RiskScore,
		DaysBetween: int(math.Round(latest.AssessmentDate.Sub(previous.AssessmentDate).Hours() / 24)),
		Latest:      latest,
		Previous:    previous,
	}
	switch {
	case r.ScoreChange < -recoveryDelta:
		r.Trend = TrendImproving
	case r.ScoreChange > recoveryDelta:
		r.Trend = TrendWorsening
	default:
		r.Trend = TrendStable
	}
	return r, nil
}
