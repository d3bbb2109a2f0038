package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LoadMetric is one cognitive-load sample.
type LoadMetric struct {
	ent.Schema
}

func (LoadMetric) Mixin() []ent.Mixin {
	return []ent.Mixin{UserMixin{}}
}

func (LoadMetric) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp"),
		field.Float("load_score").
			Comment("0-100"),
	}
}

func (LoadMetric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "timestamp"),
	}
}
