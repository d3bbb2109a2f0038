package pattern

import "testing"

func TestValidatePayload(t *testing.T) {
	valid := []Payload{
		StudyTimePayload{Windows: []StudyWindow{{StartHour: 9, EndHour: 11, Score: 88.5}}},
		DurationPayload{RecommendedMinutes: 45, DurationRange: "40-50 min", ByComplexity: map[string]int{"BASIC": 35}},
		ContentPayload{
			Preferences:   map[string]float64{"diagram": 0.6, "text": 0.4},
			DominantStyle: "visual",
			Visual:        0.5, Auditory: 0.1, Reading: 0.3, Kinesthetic: 0.1,
		},
		ForgettingPayload{StabilityDays: 3.2, HalfLifeDays: 2.2},
	}
	for _, p := range valid {
		if err := ValidatePayload(p); err != nil {
			t.Errorf("%s: expected valid payload, got %v", p.Kind(), err)
		}
	}
}

func TestValidatePayload_Rejects(t *testing.T) {
	invalid := []Payload{
		// Hour out of range.
		StudyTimePayload{Windows: []StudyWindow{{StartHour: 25, EndHour: 26, Score: 10}}},
		// Zero minutes.
		DurationPayload{RecommendedMinutes: 0, DurationRange: "40-50 min"},
		// Unknown style.
		ContentPayload{
			Preferences:   map[string]float64{"diagram": 1},
			DominantStyle: "telepathic",
		},
		// Negative stability.
		ForgettingPayload{StabilityDays: -1, HalfLifeDays: 2},
	}
	for _, p := range invalid {
		if err := ValidatePayload(p); err == nil {
			t.Errorf("%s: expected validation failure", p.Kind())
		}
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	p := DurationPayload{RecommendedMinutes: 55, DurationRange: "50-60 min"}
	raw, err := EncodePayload(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodePayload(TypeOptimalDuration, raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got, ok := decoded.(DurationPayload)
	if !ok {
		t.Fatalf("expected DurationPayload, got %T", decoded)
	}
	if got.RecommendedMinutes != p.RecommendedMinutes || got.DurationRange != p.DurationRange {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestDecodePayload_UnknownType(t *testing.T) {
	if _, err := DecodePayload(Type("astrology"), []byte(`{}`)); err == nil {
		t.Error("expected error for unknown pattern type")
	}
}
