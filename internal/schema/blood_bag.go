package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// BloodBag is a unit of whole-blood donation. expire_date is derived from
// collection_date (+35 days) and is recomputed whenever collection_date
// changes.
type BloodBag struct {
	ent.Schema
}

func (BloodBag) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (BloodBag) Fields() []ent.Field {
	return []ent.Field{
		field.String("bag_number").
			MaxLen(50).
			Unique().
			Comment("External label printed on the bag"),

		field.String("blood_group").
			MaxLen(5),

		field.String("donation_id").
			MaxLen(50).
			Comment("Donation reference (simdon)"),

		field.String("bag_type").
			MaxLen(50),

		field.Float("weight").
			Comment("Weight in grams"),

		field.Time("collection_date"),

		field.Time("expire_date").
			Comment("collection_date + 35 days"),

		// Serology markers, stored as the lab result text.
		field.String("hbs_ag").
			MaxLen(20),

		field.String("hcv").
			MaxLen(20),

		field.String("hiv").
			MaxLen(20),

		field.String("tpha").
			MaxLen(20),

		field.String("anti_htlv").
			MaxLen(20),

		field.Bool("is_distributed").
			Default(false),

		field.UUID("biologist_id", uuid.UUID{}).
			Comment("FK → biologists.id (registering biologist)"),
	}
}

func (BloodBag) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("biologist", Biologist.Type).
			Ref("blood_bags").
			Unique().
			Required().
			Field("biologist_id"),
		edge.To("components", Component.Type),
		edge.To("distributions", Distribution.Type),
	}
}

func (BloodBag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bag_number"),
		index.Fields("biologist_id"),
		index.Fields("is_distributed", "expire_date"),
	}
}
