package pattern

import "time"

const (
	// SaveThreshold is the minimum confidence for persisting a newly
	// detected pattern.
	SaveThreshold = 0.6

	// EvolveIncrement is added to confidence on each reoccurrence.
	EvolveIncrement = 0.05

	// ConfidenceCap bounds evolved confidence.
	ConfidenceCap = 0.95

	// DecayDecrement is subtracted from confidence on each non-occurrence.
	DecayDecrement = 0.1

	// DeleteThreshold is the confidence below which a pattern is removed.
	DeleteThreshold = 0.4

	// MaxNonOccurrences removes a pattern after this many consecutive
	// analysis runs without re-detection.
	MaxNonOccurrences = 3
)

// Evolve applies a reoccurrence to an existing pattern, refreshing its
// payload and evidence from the latest detection. OccurrenceCount and
// LastSeenAt always move together.
func Evolve(p *Pattern, latest *Pattern, now time.Time) {
	p.OccurrenceCount++
	p.Confidence += EvolveIncrement
	if p.Confidence > ConfidenceCap {
		p.Confidence = ConfidenceCap
	}
	p.LastSeenAt = now
	p.ConsecutiveNonOccurrences = 0
	p.PatternName = latest.PatternName
	p.Data = latest.Data
	p.Evidence = latest.Evidence
}

// Decay applies a non-occurrence.
func Decay(p *Pattern) {
	p.Confidence -= DecayDecrement
	if p.Confidence < 0 {
		p.Confidence = 0
	}
	p.ConsecutiveNonOccurrences++
}

// Expired reports whether the pattern should be deleted.
func Expired(p *Pattern) bool {
	return p.Confidence < DeleteThreshold || p.ConsecutiveNonOccurrences >= MaxNonOccurrences
}
