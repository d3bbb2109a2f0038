package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningProfile is the per-user aggregate, one row per user, upserted on
// each full analysis run and never deleted.
type LearningProfile struct {
	ent.Schema
}

// WindowSample is the serialized form of one preferred study window.
type WindowSample struct {
	StartHour int     `json:"start_hour"`
	EndHour   int     `json:"end_hour"`
	Score     float64 `json:"score"`
}

// StyleSample is the serialized VARK distribution.
type StyleSample struct {
	Visual      float64 `json:"visual"`
	Auditory    float64 `json:"auditory"`
	Reading     float64 `json:"reading"`
	Kinesthetic float64 `json:"kinesthetic"`
}

func (LearningProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique(),
		field.JSON("preferred_windows", []WindowSample{}).
			Optional(),
		field.Int("optimal_duration_min").
			Default(45),
		field.JSON("content_preferences", map[string]float64{}).
			Optional(),
		field.JSON("learning_style", &StyleSample{}).
			Optional(),
		field.Float("stability_days").
			Default(0),
		field.Float("half_life_days").
			Default(0),
		field.Float("data_quality_score").
			Default(0).
			Comment("0-1"),
		field.Time("last_analyzed_at"),
	}
}

func (LearningProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
