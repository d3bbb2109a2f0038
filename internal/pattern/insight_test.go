package pattern

import (
	"testing"
	"time"
)

func insightPattern(t Type, confidence float64, data Payload) *Pattern {
	return &Pattern{
		ID:          "p-" + string(t),
		UserID:      "u1",
		PatternType: t,
		Confidence:  confidence,
		Data:        data,
	}
}

func TestDeriveInsights_RanksByImpact(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	patterns := []*Pattern{
		insightPattern(TypeContentPreference, 0.9, ContentPayload{DominantStyle: "visual"}),
		insightPattern(TypeOptimalStudyTime, 0.8, StudyTimePayload{Windows: []StudyWindow{{StartHour: 9, EndHour: 11, Score: 90}}}),
		insightPattern(TypeForgettingCurve, 0.5, ForgettingPayload{StabilityDays: 3, HalfLifeDays: 2}),
	}

	out := DeriveInsights(patterns, nil, now)

	// The forgetting pattern sits below the 0.7 threshold.
	if len(out) != 2 {
		t.Fatalf("expected 2 insights, got %d", len(out))
	}
	// studytime: 0.8*1.0 = 0.80 beats content: 0.9*0.7 = 0.63.
	if out[0].InsightType != TypeOptimalStudyTime {
		t.Errorf("expected study-time insight first, got %s", out[0].InsightType)
	}
	if out[0].Impact <= out[1].Impact {
		t.Error("expected descending impact")
	}
	if out[0].SourcePatternIDs[0] != "p-optimal-study-time" {
		t.Errorf("expected source pattern link, got %v", out[0].SourcePatternIDs)
	}
}

func TestDeriveInsights_DeduplicatesAgainstOpen(t *testing.T) {
	now := time.Now()
	p := insightPattern(TypeOptimalDuration, 0.8, DurationPayload{RecommendedMinutes: 45, DurationRange: "40-50 min"})

	first := DeriveInsights([]*Pattern{p}, nil, now)
	if len(first) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(first))
	}

	second := DeriveInsights([]*Pattern{p}, first, now)
	if len(second) != 0 {
		t.Errorf("expected dedupe against open insight, got %d", len(second))
	}

	// An acknowledged insight no longer blocks regeneration.
	first[0].Acknowledged = true
	third := DeriveInsights([]*Pattern{p}, first, now)
	if len(third) != 1 {
		t.Errorf("expected regeneration after acknowledgment, got %d", len(third))
	}
}

func TestDeriveInsights_EmptyWindowsSkipped(t *testing.T) {
	p := insightPattern(TypeOptimalStudyTime, 0.9, StudyTimePayload{})
	out := DeriveInsights([]*Pattern{p}, nil, time.Now())
	if len(out) != 0 {
		t.Errorf("expected no insight without windows, got %d", len(out))
	}
}
