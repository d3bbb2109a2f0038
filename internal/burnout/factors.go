package burnout

import (
	"time"

	"github.com/abhisek/cadence/internal/telemetry"
)

// Factor names, stable across assessments.
const (
	FactorIntensity          = "study-intensity"
	FactorPerformanceDecline = "performance-decline"
	FactorChronicLoad        = "chronic-load"
	FactorIrregularity       = "schedule-irregularity"
	FactorEngagementDecay    = "engagement-decay"
	FactorRecoveryDeficit    = "recovery-deficit"
)

// factorWeights sum to 1.0.
var factorWeights = map[string]float64{
	FactorIntensity:          0.20,
	FactorPerformanceDecline: 0.25,
	FactorChronicLoad:        0.25,
	FactorIrregularity:       0.15,
	FactorEngagementDecay:    0.10,
	FactorRecoveryDeficit:    0.05,
}

// factorOrder fixes the reporting order.
var factorOrder = []string{
	FactorIntensity,
	FactorPerformanceDecline,
	FactorChronicLoad,
	FactorIrregularity,
	FactorEngagementDecay,
	FactorRecoveryDeficit,
}

const (
	highLoadThreshold = 60 // daily mean load above this is a high-load day
	lowLoadThreshold  = 40 // daily mean load below this is a recovery day
	expectedMissions  = 14 // one per day in the assessment window
)

// windowData is the 14-day telemetry slice every factor scores against.
type windowData struct {
	sessions []telemetry.Session
	perf     []telemetry.PerformanceMetric
	loads    []telemetry.LoadMetric
	missions []telemetry.Mission
	now      time.Time
}

// intensityScore maps weekly study hours onto 0–100.
func intensityScore(d *windowData) float64 {
	totalHours := 0.0
	for i := range d.sessions {
		totalHours += d.sessions[i].DurationMinutes() / 60
	}
	weekly := totalHours / 2 // 14-day window

	switch {
	case weekly > 40:
		return 100
	case weekly > 30:
		return 75
	case weekly > 20:
		return 50
	default:
		return 25
	}
}

// performanceDeclineScore maps the relative retention drop between window
// halves onto 0–100.
func performanceDeclineScore(d *windowData) float64 {
	if len(d.perf) < 2 {
		return 0
	}
	mid := d.now.AddDate(0, 0, -7)
	var first, second []float64
	for _, m := range d.perf {
		if m.Date.Before(mid) {
			first = append(first, m.RetentionScore)
		} else {
			second = append(second, m.RetentionScore)
		}
	}
	if len(first) == 0 || len(second) == 0 {
		return 0
	}
	before, after := meanOf(first), meanOf(second)
	if before <= 0 {
		return 0
	}
	drop := (before - after) / before * 100

	switch {
	case drop > 35:
		return 100
	case drop > 25:
		return 75
	case drop > 15:
		return 50
	case drop > 5:
		return 25
	default:
		return 0
	}
}

// chronicLoadScore maps the fraction of high-load days onto 0–100.
func chronicLoadScore(d *windowData) float64 {
	days := dailyMeanLoad(d.loads)
	if len(days) == 0 {
		return 0
	}
	high := 0
	for _, load := range days {
		if load > highLoadThreshold {
			high++
		}
	}
	frac := float64(high) / float64(len(days)) * 100

	switch {
	case frac > 50:
		return 100
	case frac > 35:
		return 75
	case frac > 20:
		return 50
	case frac > 10:
		return 25
	default:
		return 0
	}
}

// irregularityScore maps skipped missions (of 14 expected) onto 0–100.
func irregularityScore(d *windowData) float64 {
	skipped := 0
	for _, m := range d.missions {
		if m.Status == telemetry.MissionSkipped {
			skipped++
		}
	}
	frac := float64(skipped) / expectedMissions * 100

	switch {
	case frac > 30:
		return 100
	case frac > 20:
		return 75
	case frac > 10:
		return 50
	case frac > 5:
		return 25
	default:
		return 0
	}
}

// engagementDecayScore maps disengaged missions (skipped or rated too easy)
// onto 0–100.
func engagementDecayScore(d *windowData) float64 {
	if len(d.missions) == 0 {
		return 0
	}
	decayed := 0
	for _, m := range d.missions {
		if m.Status == telemetry.MissionSkipped {
			decayed++
			continue
		}
		if m.DifficultyRating != nil && *m.DifficultyRating <= 2 {
			decayed++
		}
	}
	frac := float64(decayed) / float64(len(d.missions)) * 100

	switch {
	case frac > 40:
		return 100
	case frac > 30:
		return 75
	case frac > 20:
		return 50
	case frac > 10:
		return 25
	default:
		return 0
	}
}

// recoveryDeficitScore counts low-load days in the trailing 7 and maps the
// deficit onto 0–100: no recovery days at all scores 100. Absent load
// telemetry scores 0, like the other load-based factors.
func recoveryDeficitScore(d *windowData) float64 {
	cutoff := d.now.AddDate(0, 0, -7)
	var recent []telemetry.LoadMetric
	for _, m := range d.loads {
		if !m.Timestamp.Before(cutoff) {
			recent = append(recent, m)
		}
	}
	days := dailyMeanLoad(recent)
	if len(days) == 0 {
		return 0
	}
	low := 0
	for _, load := range days {
		if load < lowLoadThreshold {
			low++
		}
	}

	switch low {
	case 0:
		return 100
	case 1:
		return 50
	case 2:
		return 25
	default:
		return 0
	}
}

// dailyMeanLoad buckets load samples by calendar day and averages each day.
func dailyMeanLoad(metrics []telemetry.LoadMetric) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, m := range metrics {
		day := m.Timestamp.Format("2006-01-02")
		sums[day] += m.LoadScore
		counts[day]++
	}
	out := make(map[string]float64, len(sums))
	for day, sum := range sums {
		out[day] = sum / float64(counts[day])
	}
	return out
}

func meanOf(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}
