package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// BurnoutAssessment is one immutable risk snapshot. History is append-only.
type BurnoutAssessment struct {
	ent.Schema
}

func (BurnoutAssessment) Mixin() []ent.Mixin {
	return []ent.Mixin{UserMixin{}}
}

// FactorSample is the serialized form of one contributing factor.
type FactorSample struct {
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Weight     float64 `json:"weight"`
	Percentage float64 `json:"percentage"`
}

// SignalSample is the serialized form of one warning signal.
type SignalSample struct {
	Name        string `json:"name"`
	Detected    bool   `json:"detected"`
	Severity    string `json:"severity,omitempty"`
	Description string `json:"description,omitempty"`
}

// InterventionSample is the serialized intervention plan.
type InterventionSample struct {
	Plan    string   `json:"plan"`
	Actions []string `json:"actions"`
}

func (BurnoutAssessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(func() string { return uuid.NewString() }),
		field.Float("risk_score").
			Comment("0-100"),
		field.String("risk_level").
			NotEmpty().
			Comment("LOW, MEDIUM, HIGH, or CRITICAL"),
		field.JSON("factors", []FactorSample{}),
		field.JSON("signals", []SignalSample{}).
			Optional(),
		field.JSON("intervention", &InterventionSample{}).
			Optional(),
		field.Time("assessment_date"),
		field.Float("confidence").
			Comment("0-1"),
	}
}

func (BurnoutAssessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "assessment_date"),
	}
}
