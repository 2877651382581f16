package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Distribution records a bag being issued to a receiving establishment.
// A bag carries at most one live distribution; the invariant is enforced by
// the bag's is_distributed flag, checked and flipped in the same transaction
// as the insert.
type Distribution struct {
	ent.Schema
}

func (Distribution) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Distribution) Fields() []ent.Field {
	return []ent.Field{
		field.String("distribution_number").
			MaxLen(50),

		field.String("receiver_first_name").
			MaxLen(100),

		field.String("receiver_last_name").
			MaxLen(100),

		field.Int("receiver_age").
			Min(0),

		field.String("receiver_sex").
			MaxLen(10),

		field.String("establishment").
			MaxLen(255),

		field.String("requested_blood_group").
			MaxLen(5),

		field.Int("number_of_bags").
			Min(1),

		field.String("service").
			MaxLen(100).
			Comment("Hospital service the bag is issued to"),

		field.String("carrier_name").
			MaxLen(255),

		field.String("doctor_name").
			MaxLen(255),

		field.Time("issued_at"),

		field.UUID("bagblood_id", uuid.UUID{}).
			Comment("FK → blood_bags.id (distributed bag)"),
	}
}

func (Distribution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("bag", BloodBag.Type).
			Ref("distributions").
			Unique().
			Required().
			Field("bagblood_id"),
	}
}

func (Distribution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bagblood_id"),
		index.Fields("distribution_number"),
	}
}
