package adapt

import "math"

// Optimal load zone band: learners learn fastest with load held inside it.
const (
	OptimalZoneLow  = 40.0
	OptimalZoneHigh = 65.0
)

// ChallengeLevel is the next-content selection for an active session.
type ChallengeLevel struct {
	Difficulty      int     // 1–5
	Complexity      string  // BASIC / INTERMEDIATE / ADVANCED
	NewContentRatio float64 // share of new vs review content, 0–1
	SessionLenMin   int
	BreakEveryMin   int
}

// Challenge blends the personalized tolerance and the optimal load band
// into a concrete challenge level. Synchronous: no storage, no I/O.
//
// headroom is how far the current load sits below the personalized target
// (the optimal band midpoint shifted by tolerance); positive headroom buys
// difficulty and new content, negative sells them.
func Challenge(currentLoad, tolerance float64, optimalDurationMin int) ChallengeLevel {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	target := (OptimalZoneLow+OptimalZoneHigh)/2 + (tolerance-DefaultTolerance)*0.5
	headroom := target - currentLoad

	// Map headroom (-100..100) onto difficulty 1..5 around a base of 3.
	difficulty := 3 + int(math.Round(headroom/25))
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 5 {
		difficulty = 5
	}

	level := ChallengeLevel{Difficulty: difficulty}
	switch {
	case difficulty >= 4:
		level.Complexity = "ADVANCED"
	case difficulty >= 3:
		level.Complexity = "INTERMEDIATE"
	default:
		level.Complexity = "BASIC"
	}

	// New-content ratio follows the zone's review ratio, inverted.
	ad := Adjustment(currentLoad, tolerance, TrendStable)
	level.NewContentRatio = clampRatio(1 - ad.ReviewRatio)
	level.BreakEveryMin = ad.Mods.BreakEveryMin

	if optimalDurationMin <= 0 {
		optimalDurationMin = 45
	}
	level.SessionLenMin = optimalDurationMin
	if ad.Zone == ZoneEmergency || ad.Zone == ZoneReduce {
		// Overloaded learners get shorter sessions regardless of habit.
		level.SessionLenMin = optimalDurationMin * 2 / 3
		if level.SessionLenMin < 15 {
			level.SessionLenMin = 15
		}
	}
	return level
}

func clampRatio(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
