package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChefService is the supervising principal. It administers biologist accounts
// and reads aggregate statistics; it owns no inventory.
type ChefService struct {
	ent.Schema
}

func (ChefService) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ChefService) Fields() []ent.Field {
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

		field.String("password_hash").
			Sensitive(),
	}
}

func (ChefService) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username"),
	}
}
