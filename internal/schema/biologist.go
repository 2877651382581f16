package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Biologist is a lab principal who registers blood bags, derived components
// and distributions.
type Biologist struct {
	ent.Schema
}

func (Biologist) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Biologist) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.String("username").
			MaxLen(50).
			Unique(),

		field.String("email").
			MaxLen(255).
			Unique(),

		field.String("phone_number").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("password_hash").
			Sensitive(),
	}
}

func (Biologist) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("blood_bags", BloodBag.Type),
	}
}

func (Biologist) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username"),
		index.Fields("email"),
	}
}
