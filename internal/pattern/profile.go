package pattern

import (
	"time"

	"github.com/abhisek/cadence/internal/analyzer"
)

// Profile is the per-user learning profile, upserted once per full
// analysis run and never deleted.
type Profile struct {
	UserID             string
	PreferredWindows   []StudyWindow
	OptimalDurationMin int
	ContentPreferences map[string]float64
	LearningStyle      analyzer.VARKProfile
	StabilityDays      float64
	HalfLifeDays       float64
	DataQualityScore   float64 // 0–1
	LastAnalyzedAt     time.Time
}

// dataQuality blends sample volumes into a 0–1 score. Each component
// saturates at a cap so one plentiful source can't mask the others.
func dataQuality(sessions, reviews, loadSamples int, historyWeeks float64) float64 {
	s := minf(float64(sessions)/100, 1)
	r := minf(float64(reviews)/500, 1)
	l := minf(float64(loadSamples)/200, 1)
	h := minf(historyWeeks/12, 1)
	score := s*0.35 + r*0.30 + h*0.20 + l*0.15
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
