package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// YearlyStat is an explicitly saved snapshot of yearly inventory aggregates.
// A saved row is returned verbatim on later reads, even if the underlying
// inventory has changed since; recomputation happens only for unsaved years.
type YearlyStat struct {
	ent.Schema
}

func (YearlyStat) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (YearlyStat) Fields() []ent.Field {
	return []ent.Field{
		field.Int("year").
			Unique().
			Min(2000).
			Max(2100),

		field.Int("total_bags").
			Default(0),

		field.Int("total_cps").
			Default(0),

		field.Int("total_pfc").
			Default(0),

		field.Int("total_cg").
			Default(0),

		field.Int("total_expired").
			Default(0),

		field.UUID("recorded_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Principal who saved the snapshot"),
	}
}

func (YearlyStat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("year"),
	}
}
