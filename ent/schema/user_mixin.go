package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// UserMixin provides the user scoping shared by every row type. All
// queries are user-scoped, so every entity indexes user_id.
type UserMixin struct {
	mixin.Schema
}

func (UserMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Owning user"),
	}
}

func (UserMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
