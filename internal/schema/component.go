package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Component is a blood product derived from a bag: platelet concentrate (cps),
// fresh frozen plasma (pfc) or red cells (cg). Its expire_date is derived from
// the parent bag's collection_date plus a type-specific shelf life.
type Component struct {
	ent.Schema
}

func (Component) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Component) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("type").
			Values("cps", "pfc", "cg"),

		field.Float("weight").
			Comment("Weight in grams"),

		field.Time("expire_date"),

		field.Bool("is_distributed").
			Default(false),

		field.UUID("bagblood_id", uuid.UUID{}).
			Comment("FK → blood_bags.id (parent bag)"),
	}
}

func (Component) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("bag", BloodBag.Type).
			Ref("components").
			Unique().
			Required().
			Field("bagblood_id"),
	}
}

func (Component) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bagblood_id"),
		index.Fields("type"),
		index.Fields("type", "expire_date"),
	}
}
