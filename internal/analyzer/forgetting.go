package analyzer

import (
	"context"
	"fmt"
	"math"

	"github.com/abhisek/cadence/internal/telemetry"
)

const (
	// DefaultStabilityDays is the assumed memory stability before any
	// reviews exist.
	DefaultStabilityDays = 2.0

	// recentStabilityWeight biases the fit toward the most recent third of
	// reviews, where the personalized curve has converged.
	recentStabilityWeight = 2.0

	// forgettingConfidenceSaturation is the review count at which curve
	// confidence reaches 1.0.
	forgettingConfidenceSaturation = 100
)

// ForgettingResult is the personalized retention-decay curve R(t)=e^(-t/S).
type ForgettingResult struct {
	StabilityDays float64 // S, the decay constant in days
	HalfLifeDays  float64 // time until R(t)=0.5
	Confidence    float64
	ReviewCount   int
}

// RetentionAt predicts retention after elapsedDays without review.
func (r *ForgettingResult) RetentionAt(elapsedDays float64) float64 {
	if r.StabilityDays <= 0 {
		return 0
	}
	return math.Exp(-elapsedDays / r.StabilityDays)
}

// ForgettingAnalyzer fits the per-user exponential retention-decay curve
// from scheduler stability samples.
type ForgettingAnalyzer struct {
	Repo telemetry.Repository
}

// Analyze estimates the decay constant as a recency-weighted mean of the
// scheduler's post-review stability estimates. With zero reviews it returns
// the default stability at confidence 0.
func (a *ForgettingAnalyzer) Analyze(ctx context.Context, userID string, w telemetry.Window) (*ForgettingResult, error) {
	reviews, err := a.Repo.Reviews(ctx, userID, w)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	res := &ForgettingResult{
		StabilityDays: DefaultStabilityDays,
		ReviewCount:   len(reviews),
	}
	if len(reviews) == 0 {
		res.HalfLifeDays = res.StabilityDays * math.Ln2
		return res, nil
	}

	recentCutoff := len(reviews) - len(reviews)/3
	weightedSum, weightTotal := 0.0, 0.0
	for i, r := range reviews {
		if r.StabilityAfter <= 0 {
			continue
		}
		weight := 1.0
		if i >= recentCutoff {
			weight = recentStabilityWeight
		}
		weightedSum += r.StabilityAfter * weight
		weightTotal += weight
	}
	if weightTotal > 0 {
		res.StabilityDays = weightedSum / weightTotal
	}
	res.HalfLifeDays = res.StabilityDays * math.Ln2
	res.Confidence = sampleConfidence(len(reviews), forgettingConfidenceSaturation)
	return res, nil
}
