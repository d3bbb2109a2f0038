package analyzer

import (
	"context"
	"fmt"

	"github.com/abhisek/cadence/internal/telemetry"
)

const (
	// MinBucketSessions is the statistical floor below which a duration
	// bucket is excluded from scoring.
	MinBucketSessions = 3

	// DefaultDurationMinutes is recommended when no sessions exist.
	DefaultDurationMinutes = 45

	// durationConfidenceSaturation is the session count at which duration
	// confidence reaches 1.0.
	durationConfidenceSaturation = 50

	// fatigueSplitMinReviews is the minimum reviews a session needs before
	// its first/second-half performance drop contributes to the fatigue
	// indicator.
	fatigueSplitMinReviews = 6
)

// Complexity grades content difficulty for duration offsets.
type Complexity string

const (
	ComplexityBasic        Complexity = "BASIC"
	ComplexityIntermediate Complexity = "INTERMEDIATE"
	ComplexityAdvanced     Complexity = "ADVANCED"
)

// durationRange is one fixed bucket boundary. Max of 0 means open-ended.
type durationRange struct {
	min, max int
	label    string
	midpoint int
}

var durationRanges = []durationRange{
	{0, 30, "<30 min", 25},
	{30, 40, "30-40 min", 35},
	{40, 50, "40-50 min", 45},
	{50, 60, "50-60 min", 55},
	{60, 90, "60-90 min", 75},
	{90, 0, "90+ min", 90},
}

// DurationBucket aggregates sessions of similar length.
type DurationBucket struct {
	DurationRange    string
	MinMinutes       int
	MaxMinutes       int // 0 = open-ended
	SessionCount     int
	AvgPerformance   float64 // 0–100
	CompletionRate   float64 // 0–1
	FatigueIndicator float64 // 0–1, mean in-session performance drop
	Score            float64
}

// DurationResult is the session-length recommendation.
type DurationResult struct {
	Buckets            []DurationBucket
	Optimal            *DurationBucket
	RecommendedMinutes int
	DisplayRangeMin    int
	DisplayRangeMax    int
	ByComplexity       map[Complexity]int // empty below the confidence floor
	Confidence         float64
	TotalSessions      int
}

// DurationAnalyzer recommends an optimal session length from bucketed
// session history.
type DurationAnalyzer struct {
	Repo telemetry.Repository
}

// Analyze buckets completed sessions by length, scores each qualifying
// bucket, and recommends the midpoint of the best one. With zero sessions
// it returns a 45-minute default at confidence 0 rather than failing.
func (a *DurationAnalyzer) Analyze(ctx context.Context, userID string, w telemetry.Window) (*DurationResult, error) {
	sessions, err := a.Repo.Sessions(ctx, userID, w)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	var completed []telemetry.Session
	for _, s := range sessions {
		if s.Completed() && s.DurationMinutes() > 0 {
			completed = append(completed, s)
		}
	}

	res := &DurationResult{
		RecommendedMinutes: DefaultDurationMinutes,
		TotalSessions:      len(completed),
		Confidence:         sampleConfidence(len(completed), durationConfidenceSaturation),
		ByComplexity:       map[Complexity]int{},
	}
	if len(completed) == 0 {
		res.Confidence = 0
		return res, nil
	}

	grouped := make([][]telemetry.Session, len(durationRanges))
	for _, s := range completed {
		idx := bucketIndex(s.DurationMinutes())
		grouped[idx] = append(grouped[idx], s)
	}

	for i, r := range durationRanges {
		if len(grouped[i]) < MinBucketSessions {
			continue
		}
		b := scoreBucket(r, grouped[i])
		res.Buckets = append(res.Buckets, b)
	}

	if len(res.Buckets) == 0 {
		// Data exists but no bucket clears the floor; keep the default.
		return res, nil
	}

	best := 0
	for i := range res.Buckets {
		if res.Buckets[i].Score > res.Buckets[best].Score {
			best = i
		}
	}
	res.Optimal = &res.Buckets[best]
	res.RecommendedMinutes = durationRanges[bucketIndexByLabel(res.Optimal.DurationRange)].midpoint
	res.DisplayRangeMin = res.Optimal.MinMinutes
	res.DisplayRangeMax = res.Optimal.MaxMinutes
	if res.Optimal.MaxMinutes == 0 {
		// The open-ended bucket recommends 90 with a capped display range.
		res.DisplayRangeMin = 90
		res.DisplayRangeMax = 120
	}

	if res.Confidence >= 0.4 {
		res.ByComplexity = complexityOffsets(res.RecommendedMinutes)
	}
	return res, nil
}

// complexityOffsets shifts the optimal duration per content complexity.
func complexityOffsets(optimal int) map[Complexity]int {
	basic := optimal - 10
	if basic < 30 {
		basic = 30
	}
	advanced := optimal + 15
	if advanced > 90 {
		advanced = 90
	}
	return map[Complexity]int{
		ComplexityBasic:        basic,
		ComplexityIntermediate: optimal,
		ComplexityAdvanced:     advanced,
	}
}

func bucketIndex(minutes float64) int {
	for i, r := range durationRanges {
		if r.max == 0 {
			return i
		}
		if minutes < float64(r.max) {
			return i
		}
	}
	return len(durationRanges) - 1
}

func bucketIndexByLabel(label string) int {
	for i, r := range durationRanges {
		if r.label == label {
			return i
		}
	}
	return 0
}

func scoreBucket(r durationRange, sessions []telemetry.Session) DurationBucket {
	b := DurationBucket{
		DurationRange: r.label,
		MinMinutes:    r.min,
		MaxMinutes:    r.max,
		SessionCount:  len(sessions),
	}

	var perf []float64
	objectivesDone, objectivesTotal := 0, 0
	var drops []float64
	for i := range sessions {
		s := &sessions[i]
		if len(s.Reviews) > 0 {
			perf = append(perf, s.Performance())
		}
		for _, o := range s.Objectives {
			objectivesTotal++
			if o.Done() {
				objectivesDone++
			}
		}
		if len(s.Reviews) >= fatigueSplitMinReviews {
			drops = append(drops, halfSplitDrop(s))
		}
	}

	b.AvgPerformance = mean(perf)
	if objectivesTotal > 0 {
		b.CompletionRate = float64(objectivesDone) / float64(objectivesTotal)
	}
	b.FatigueIndicator = clamp(mean(drops), 0, 1)
	b.Score = b.AvgPerformance*0.5 + b.CompletionRate*100*0.3 + (1-b.FatigueIndicator)*100*0.2
	return b
}

// halfSplitDrop measures how much review performance fell between the two
// halves of a session, split at the time midpoint. Returns a 0–1 fraction,
// never negative.
func halfSplitDrop(s *telemetry.Session) float64 {
	mid := s.StartedAt.Add(s.CompletedAt.Sub(s.StartedAt) / 2)

	firstCorrect, firstTotal := 0, 0
	secondCorrect, secondTotal := 0, 0
	for _, r := range s.Reviews {
		if r.ReviewedAt.Before(mid) {
			firstTotal++
			if r.Rating.Correct() {
				firstCorrect++
			}
		} else {
			secondTotal++
			if r.Rating.Correct() {
				secondCorrect++
			}
		}
	}
	if firstTotal == 0 || secondTotal == 0 {
		return 0
	}
	first := float64(firstCorrect) / float64(firstTotal)
	second := float64(secondCorrect) / float64(secondTotal)
	if drop := first - second; drop > 0 {
		return drop
	}
	return 0
}
