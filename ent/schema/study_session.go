package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession records one study session with its embedded review and
// objective outcomes.
type StudySession struct {
	ent.Schema
}

func (StudySession) Mixin() []ent.Mixin {
	return []ent.Mixin{UserMixin{}}
}

// ReviewSample is the serialized form of one in-session review.
type ReviewSample struct {
	ReviewedAt     int64   `json:"reviewed_at"` // unix millis
	Rating         string  `json:"rating"`
	StabilityAfter float64 `json:"stability_after"`
}

// ObjectiveSample is the serialized form of one session objective.
type ObjectiveSample struct {
	Completed      bool `json:"completed"`
	SelfAssessment int  `json:"self_assessment"`
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("UUID for the session"),
		field.Time("started_at"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Default(0),
		field.JSON("reviews", []ReviewSample{}).
			Optional(),
		field.JSON("objectives", []ObjectiveSample{}).
			Optional(),
		field.String("mission_id").
			Optional(),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "started_at"),
	}
}
