package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// BehavioralPattern is one detected pattern with its confidence lifecycle
// state. One row per (user, pattern type).
type BehavioralPattern struct {
	ent.Schema
}

func (BehavioralPattern) Mixin() []ent.Mixin {
	return []ent.Mixin{UserMixin{}}
}

func (BehavioralPattern) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(func() string { return uuid.NewString() }),
		field.String("pattern_type").
			NotEmpty(),
		field.String("pattern_name").
			NotEmpty(),
		field.Float("confidence").
			Comment("0-1"),
		field.JSON("data", json.RawMessage{}).
			Comment("Tagged payload, shape fixed per pattern_type"),
		field.JSON("evidence", []string{}).
			Optional(),
		field.Int("occurrence_count").
			Default(1),
		field.Time("first_detected_at"),
		field.Time("last_seen_at"),
		field.Int("consecutive_non_occurrences").
			Default(0),
	}
}

func (BehavioralPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "pattern_type").
			Unique(),
	}
}
