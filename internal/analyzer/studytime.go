package analyzer

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/cadence/internal/telemetry"
)

const (
	// minHourSessions is the statistical floor for an hour-of-day bucket.
	minHourSessions = 3

	// studyTimeConfidenceSaturation is the session count at which study-time
	// confidence reaches 1.0.
	studyTimeConfidenceSaturation = 40

	// maxOptimalWindows caps how many peak windows are reported.
	maxOptimalWindows = 3
)

// TimeBucket scores one hour of the day.
type TimeBucket struct {
	Hour           int // 0–23, session start hour
	SessionCount   int
	AvgPerformance float64 // 0–100
	CompletionRate float64 // 0–1
	Score          float64
}

// StudyWindow is a contiguous run of high-scoring hours.
type StudyWindow struct {
	StartHour int
	EndHour   int // exclusive
	Score     float64
}

// StudyTimeResult is the hour-of-day analysis.
type StudyTimeResult struct {
	Buckets        []TimeBucket
	OptimalWindows []StudyWindow
	Confidence     float64
	TotalSessions  int
}

// StudyTimeAnalyzer finds the hours of day at which the learner performs best.
type StudyTimeAnalyzer struct {
	Repo telemetry.Repository
}

// Analyze groups completed sessions by local start hour, scores each hour
// with ≥3 sessions on performance and objective completion, and merges the
// top hours into up to 3 optimal windows.
func (a *StudyTimeAnalyzer) Analyze(ctx context.Context, userID string, w telemetry.Window) (*StudyTimeResult, error) {
	sessions, err := a.Repo.Sessions(ctx, userID, w)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	byHour := map[int][]telemetry.Session{}
	completed := 0
	for _, s := range sessions {
		if !s.Completed() {
			continue
		}
		completed++
		h := s.StartedAt.Local().Hour()
		byHour[h] = append(byHour[h], s)
	}

	res := &StudyTimeResult{
		TotalSessions: completed,
		Confidence:    sampleConfidence(completed, studyTimeConfidenceSaturation),
	}
	if completed == 0 {
		return res, nil
	}

	for h := 0; h < 24; h++ {
		group := byHour[h]
		if len(group) < minHourSessions {
			continue
		}
		b := TimeBucket{Hour: h, SessionCount: len(group)}
		var perf []float64
		done, totalObj := 0, 0
		for i := range group {
			if len(group[i].Reviews) > 0 {
				perf = append(perf, group[i].Performance())
			}
			for _, o := range group[i].Objectives {
				totalObj++
				if o.Done() {
					done++
				}
			}
		}
		b.AvgPerformance = mean(perf)
		if totalObj > 0 {
			b.CompletionRate = float64(done) / float64(totalObj)
		}
		b.Score = b.AvgPerformance*0.6 + b.CompletionRate*100*0.4
		res.Buckets = append(res.Buckets, b)
	}

	res.OptimalWindows = mergeTopHours(res.Buckets)
	return res, nil
}

// mergeTopHours takes the best-scoring hours and merges adjacent ones into
// windows, keeping at most maxOptimalWindows.
func mergeTopHours(buckets []TimeBucket) []StudyWindow {
	if len(buckets) == 0 {
		return nil
	}
	top := make([]TimeBucket, len(buckets))
	copy(top, buckets)
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Score != top[j].Score {
			return top[i].Score > top[j].Score
		}
		return top[i].Hour < top[j].Hour
	})
	if len(top) > maxOptimalWindows {
		top = top[:maxOptimalWindows]
	}
	sort.Slice(top, func(i, j int) bool { return top[i].Hour < top[j].Hour })

	var windows []StudyWindow
	for _, b := range top {
		n := len(windows)
		if n > 0 && windows[n-1].EndHour == b.Hour {
			// Adjacent hour extends the previous window with the better score.
			windows[n-1].EndHour = b.Hour + 1
			if b.Score > windows[n-1].Score {
				windows[n-1].Score = b.Score
			}
			continue
		}
		windows = append(windows, StudyWindow{StartHour: b.Hour, EndHour: b.Hour + 1, Score: b.Score})
	}
	return windows
}
