package analyzer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/abhisek/cadence/internal/telemetry"
)

const (
	// fatigueMinSessions is the number of qualifying long sessions needed
	// before a fatigue point is reported.
	fatigueMinSessions = 5

	// fatigueMinSessionMinutes qualifies a session for fatigue segmentation.
	fatigueMinSessionMinutes = 60

	// fatigueMinReviews qualifies a session for fatigue segmentation.
	fatigueMinReviews = 10

	// fatigueSegmentMinutes is the width of each in-session window.
	fatigueSegmentMinutes = 10

	// fatigueDropRatio is the relative performance drop versus the first
	// segment that marks the fatigue point.
	fatigueDropRatio = 0.20

	// minBreakIntervalMinutes floors the recommended break interval.
	minBreakIntervalMinutes = 30
)

// FatigueResult reports where within long sessions performance breaks down.
type FatigueResult struct {
	Detected             bool
	FatiguePointMinutes  int // averaged onset of the ≥20% drop
	BreakIntervalMinutes int
	SessionsAnalyzed     int
	Confidence           float64
}

// FatigueAnalyzer finds the in-session minute at which review performance
// drops at least 20% relative to the session's opening segment.
type FatigueAnalyzer struct {
	Repo telemetry.Repository
}

// Analyze segments long, review-dense sessions into 10-minute windows and
// averages the first drop point across them. Fewer than 5 qualifying
// sessions yields an undetected result with confidence 0.
func (a *FatigueAnalyzer) Analyze(ctx context.Context, userID string, w telemetry.Window) (*FatigueResult, error) {
	sessions, err := a.Repo.Sessions(ctx, userID, w)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	var qualifying []telemetry.Session
	for _, s := range sessions {
		if s.Completed() && s.DurationMinutes() > fatigueMinSessionMinutes && len(s.Reviews) >= fatigueMinReviews {
			qualifying = append(qualifying, s)
		}
	}

	res := &FatigueResult{SessionsAnalyzed: len(qualifying)}
	if len(qualifying) < fatigueMinSessions {
		return res, nil
	}

	var points []float64
	for i := range qualifying {
		if p, ok := sessionFatiguePoint(&qualifying[i]); ok {
			points = append(points, float64(p))
		}
	}
	res.Confidence = sampleConfidence(len(qualifying), 20)
	if len(points) == 0 {
		return res, nil
	}

	res.Detected = true
	res.FatiguePointMinutes = int(math.Round(mean(points)))
	res.BreakIntervalMinutes = res.FatiguePointMinutes - fatigueSegmentMinutes
	if res.BreakIntervalMinutes < minBreakIntervalMinutes {
		res.BreakIntervalMinutes = minBreakIntervalMinutes
	}
	return res, nil
}

// sessionFatiguePoint returns the start minute of the first 10-minute
// segment whose performance falls ≥20% below the opening segment.
func sessionFatiguePoint(s *telemetry.Session) (int, bool) {
	segments := int(math.Ceil(s.DurationMinutes() / fatigueSegmentMinutes))
	if segments < 2 {
		return 0, false
	}

	correct := make([]int, segments)
	total := make([]int, segments)
	for _, r := range s.Reviews {
		offset := r.ReviewedAt.Sub(s.StartedAt)
		idx := int(offset / (fatigueSegmentMinutes * time.Minute))
		if idx < 0 || idx >= segments {
			continue
		}
		total[idx]++
		if r.Rating.Correct() {
			correct[idx]++
		}
	}

	if total[0] == 0 || correct[0] == 0 {
		return 0, false
	}
	baseline := float64(correct[0]) / float64(total[0])
	threshold := baseline * (1 - fatigueDropRatio)
	for i := 1; i < segments; i++ {
		if total[i] == 0 {
			continue
		}
		if float64(correct[i])/float64(total[i]) <= threshold {
			return i * fatigueSegmentMinutes, true
		}
	}
	return 0, false
}
