package pattern

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/cadence/internal/analyzer"
)

// Type identifies a behavioral pattern family. One family per analyzer.
type Type string

const (
	TypeOptimalStudyTime  Type = "optimal-study-time"
	TypeOptimalDuration   Type = "optimal-duration"
	TypeContentPreference Type = "content-preference"
	TypeForgettingCurve   Type = "forgetting-curve"
)

// Types lists the pattern families in stable order.
func Types() []Type {
	return []Type{TypeOptimalStudyTime, TypeOptimalDuration, TypeContentPreference, TypeForgettingCurve}
}

// Pattern is one detected behavioral pattern and its confidence lifecycle
// state. Owned exclusively by the Engine.
type Pattern struct {
	ID                        string
	UserID                    string
	PatternType               Type
	PatternName               string
	Confidence                float64 // 0–1
	Data                      Payload
	Evidence                  []string
	OccurrenceCount           int
	FirstDetectedAt           time.Time
	LastSeenAt                time.Time
	ConsecutiveNonOccurrences int
}

// Payload is the closed set of per-type pattern payloads.
type Payload interface {
	Kind() Type
}

// StudyTimePayload records the learner's peak study windows.
type StudyTimePayload struct {
	Windows []StudyWindow `json:"windows"`
}

// StudyWindow is one peak hour range (end exclusive).
type StudyWindow struct {
	StartHour int     `json:"start_hour"`
	EndHour   int     `json:"end_hour"`
	Score     float64 `json:"score"`
}

func (StudyTimePayload) Kind() Type { return TypeOptimalStudyTime }

// DurationPayload records the optimal session length.
type DurationPayload struct {
	RecommendedMinutes int            `json:"recommended_minutes"`
	DurationRange      string         `json:"duration_range"`
	ByComplexity       map[string]int `json:"by_complexity,omitempty"`
}

func (DurationPayload) Kind() Type { return TypeOptimalDuration }

// ContentPayload records content preferences and learning style.
type ContentPayload struct {
	Preferences   map[string]float64 `json:"preferences"`
	DominantStyle string             `json:"dominant_style"`
	Visual        float64            `json:"visual"`
	Auditory      float64            `json:"auditory"`
	Reading       float64            `json:"reading"`
	Kinesthetic   float64            `json:"kinesthetic"`
}

func (ContentPayload) Kind() Type { return TypeContentPreference }

// ForgettingPayload records the personalized decay curve.
type ForgettingPayload struct {
	StabilityDays float64 `json:"stability_days"`
	HalfLifeDays  float64 `json:"half_life_days"`
}

func (ForgettingPayload) Kind() Type { return TypeForgettingCurve }

// EncodePayload marshals a payload for persistence.
func EncodePayload(p Payload) (json.RawMessage, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", p.Kind(), err)
	}
	return raw, nil
}

// DecodePayload unmarshals a stored payload by its pattern type.
func DecodePayload(t Type, raw json.RawMessage) (Payload, error) {
	var p Payload
	switch t {
	case TypeOptimalStudyTime:
		p = &StudyTimePayload{}
	case TypeOptimalDuration:
		p = &DurationPayload{}
	case TypeContentPreference:
		p = &ContentPayload{}
	case TypeForgettingCurve:
		p = &ForgettingPayload{}
	default:
		return nil, fmt.Errorf("unknown pattern type %q", t)
	}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", t, err)
	}
	return deref(p), nil
}

func deref(p Payload) Payload {
	switch v := p.(type) {
	case *StudyTimePayload:
		return *v
	case *DurationPayload:
		return *v
	case *ContentPayload:
		return *v
	case *ForgettingPayload:
		return *v
	}
	return p
}

func contentPayloadFrom(res *analyzer.ContentResult) ContentPayload {
	prefs := map[string]float64{}
	for ct, v := range res.Preferences {
		prefs[string(ct)] = v
	}
	return ContentPayload{
		Preferences:   prefs,
		DominantStyle: res.Profile.Dominant(),
		Visual:        res.Profile.Visual,
		Auditory:      res.Profile.Auditory,
		Reading:       res.Profile.Reading,
		Kinesthetic:   res.Profile.Kinesthetic,
	}
}
