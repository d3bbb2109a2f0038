package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AppliedRecommendation tracks a recommendation after the learner applies it,
// holding the metric snapshots used for effectiveness evaluation.
type AppliedRecommendation struct {
	ent.Schema
}

func (AppliedRecommendation) Mixin() []ent.Mixin {
	return []ent.Mixin{UserMixin{}}
}

// MetricsSample is the serialized form of an effectiveness snapshot.
type MetricsSample struct {
	MeanPatternConfidence float64 `json:"mean_pattern_confidence"`
	DataQualityScore      float64 `json:"data_quality_score"`
	WeeklySessionCount    int     `json:"weekly_session_count"`
}

func (AppliedRecommendation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(func() string { return uuid.NewString() }),
		field.String("recommendation_id").
			NotEmpty().
			Unique(),
		field.Time("applied_at"),
		field.JSON("baseline", MetricsSample{}),
		field.JSON("current", &MetricsSample{}).
			Optional(),
		field.Float("effectiveness").
			Optional().
			Nillable(),
		field.Time("evaluated_at").
			Optional().
			Nillable(),
	}
}

func (AppliedRecommendation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "applied_at"),
	}
}
