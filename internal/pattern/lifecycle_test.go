package pattern

import (
	"math"
	"testing"
	"time"
)

func TestEvolve(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	p := &Pattern{
		PatternType:               TypeOptimalDuration,
		PatternName:               "Optimal session length",
		Confidence:                0.7,
		OccurrenceCount:           2,
		ConsecutiveNonOccurrences: 1,
		Data:                      DurationPayload{RecommendedMinutes: 45, DurationRange: "40-50 min"},
	}
	latest := &Pattern{
		PatternType: TypeOptimalDuration,
		PatternName: "Optimal session length",
		Confidence:  0.8,
		Data:        DurationPayload{RecommendedMinutes: 55, DurationRange: "50-60 min"},
		Evidence:    []string{"12 sessions in the 50-60 min range averaged 84.0% performance"},
	}

	Evolve(p, latest, now)

	if p.OccurrenceCount != 3 {
		t.Errorf("expected occurrence 3, got %d", p.OccurrenceCount)
	}
	if math.Abs(p.Confidence-0.75) > 1e-9 {
		t.Errorf("expected confidence 0.75, got %.2f", p.Confidence)
	}
	if p.ConsecutiveNonOccurrences != 0 {
		t.Error("expected non-occurrence streak reset")
	}
	if !p.LastSeenAt.Equal(now) {
		t.Error("expected LastSeenAt refreshed")
	}
	if p.Data.(DurationPayload).RecommendedMinutes != 55 {
		t.Error("expected payload refreshed from latest detection")
	}
}

func TestEvolve_ConfidenceCap(t *testing.T) {
	p := &Pattern{Confidence: 0.93, Data: ForgettingPayload{StabilityDays: 3, HalfLifeDays: 2}}
	latest := &Pattern{Data: ForgettingPayload{StabilityDays: 3, HalfLifeDays: 2}}
	Evolve(p, latest, time.Now())
	if p.Confidence != ConfidenceCap {
		t.Errorf("expected cap %.2f, got %.2f", ConfidenceCap, p.Confidence)
	}
}

func TestDecayAndExpiry(t *testing.T) {
	p := &Pattern{Confidence: 0.55}

	Decay(p)
	if math.Abs(p.Confidence-0.45) > 1e-9 {
		t.Errorf("expected 0.45, got %.2f", p.Confidence)
	}
	if Expired(p) {
		t.Error("0.45 should survive")
	}

	Decay(p)
	if !Expired(p) {
		t.Error("0.35 is below the delete threshold")
	}
}

func TestExpired_NonOccurrenceStreak(t *testing.T) {
	p := &Pattern{Confidence: 0.9, ConsecutiveNonOccurrences: MaxNonOccurrences}
	if !Expired(p) {
		t.Error("three consecutive non-occurrences should expire regardless of confidence")
	}

	p.ConsecutiveNonOccurrences = MaxNonOccurrences - 1
	if Expired(p) {
		t.Error("two non-occurrences at high confidence should survive")
	}
}
