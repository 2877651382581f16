// Code generated by ent, DO NOT EDIT.

package yearlystat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hemobank/hemobank_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldUpdatedAt, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldYear, v))
}

// TotalBags applies equality check predicate on the "total_bags" field. It's identical to TotalBagsEQ.
func TotalBags(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldTotalBags, v))
}

// TotalCps applies equality check predicate on the "total_cps" field. It's identical to TotalCpsEQ.
func TotalCps(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldTotalCps, v))
}

// TotalPfc applies equality check predicate on the "total_pfc" field. It's identical to TotalPfcEQ.
func TotalPfc(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldTotalPfc, v))
}

// TotalCg applies equality check predicate on the "total_cg" field. It's identical to TotalCgEQ.
func TotalCg(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldTotalCg, v))
}

// TotalExpired applies equality check predicate on the "total_expired" field. It's identical to TotalExpiredEQ.
func TotalExpired(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldTotalExpired, v))
}

// RecordedBy applies equality check predicate on the "recorded_by" field. It's identical to RecordedByEQ.
func RecordedBy(v uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldRecordedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLTE(FieldUpdatedAt, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLTE(FieldYear, v))
}

// TotalBagsEQ applies the EQ predicate on the "total_bags" field.
func TotalBagsEQ(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldTotalBags, v))
}

// TotalBagsNEQ applies the NEQ predicate on the "total_bags" field.
func TotalBagsNEQ(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNEQ(FieldTotalBags, v))
}

// TotalBagsIn applies the In predicate on the "total_bags" field.
func TotalBagsIn(vs ...int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldIn(FieldTotalBags, vs...))
}

// TotalBagsNotIn applies the NotIn predicate on the "total_bags" field.
func TotalBagsNotIn(vs ...int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNotIn(FieldTotalBags, vs...))
}

// TotalBagsGT applies the GT predicate on the "total_bags" field.
func TotalBagsGT(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGT(FieldTotalBags, v))
}

// TotalBagsGTE applies the GTE predicate on the "total_bags" field.
func TotalBagsGTE(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGTE(FieldTotalBags, v))
}

// TotalBagsLT applies the LT predicate on the "total_bags" field.
func TotalBagsLT(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLT(FieldTotalBags, v))
}

// TotalBagsLTE applies the LTE predicate on the "total_bags" field.
func TotalBagsLTE(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLTE(FieldTotalBags, v))
}

// TotalCpsEQ applies the EQ predicate on the "total_cps" field.
func TotalCpsEQ(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldTotalCps, v))
}

// TotalCpsNEQ applies the NEQ predicate on the "total_cps" field.
func TotalCpsNEQ(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNEQ(FieldTotalCps, v))
}

// TotalCpsIn applies the In predicate on the "total_cps" field.
func TotalCpsIn(vs ...int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldIn(FieldTotalCps, vs...))
}

// TotalCpsNotIn applies the NotIn predicate on the "total_cps" field.
func TotalCpsNotIn(vs ...int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNotIn(FieldTotalCps, vs...))
}

// TotalCpsGT applies the GT predicate on the "total_cps" field.
func TotalCpsGT(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGT(FieldTotalCps, v))
}

// TotalCpsGTE applies the GTE predicate on the "total_cps" field.
func TotalCpsGTE(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGTE(FieldTotalCps, v))
}

// TotalCpsLT applies the LT predicate on the "total_cps" field.
func TotalCpsLT(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLT(FieldTotalCps, v))
}

// TotalCpsLTE applies the LTE predicate on the "total_cps" field.
func TotalCpsLTE(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLTE(FieldTotalCps, v))
}

// TotalPfcEQ applies the EQ predicate on the "total_pfc" field.
func TotalPfcEQ(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldTotalPfc, v))
}

// TotalPfcNEQ applies the NEQ predicate on the "total_pfc" field.
func TotalPfcNEQ(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNEQ(FieldTotalPfc, v))
}

// TotalPfcIn applies the In predicate on the "total_pfc" field.
func TotalPfcIn(vs ...int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldIn(FieldTotalPfc, vs...))
}

// TotalPfcNotIn applies the NotIn predicate on the "total_pfc" field.
func TotalPfcNotIn(vs ...int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNotIn(FieldTotalPfc, vs...))
}

// TotalPfcGT applies the GT predicate on the "total_pfc" field.
func TotalPfcGT(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGT(FieldTotalPfc, v))
}

// TotalPfcGTE applies the GTE predicate on the "total_pfc" field.
func TotalPfcGTE(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGTE(FieldTotalPfc, v))
}

// TotalPfcLT applies the LT predicate on the "total_pfc" field.
func TotalPfcLT(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLT(FieldTotalPfc, v))
}

// TotalPfcLTE applies the LTE predicate on the "total_pfc" field.
func TotalPfcLTE(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLTE(FieldTotalPfc, v))
}

// TotalCgEQ applies the EQ predicate on the "total_cg" field.
func TotalCgEQ(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldTotalCg, v))
}

// TotalCgNEQ applies the NEQ predicate on the "total_cg" field.
func TotalCgNEQ(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNEQ(FieldTotalCg, v))
}

// TotalCgIn applies the In predicate on the "total_cg" field.
func TotalCgIn(vs ...int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldIn(FieldTotalCg, vs...))
}

// TotalCgNotIn applies the NotIn predicate on the "total_cg" field.
func TotalCgNotIn(vs ...int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNotIn(FieldTotalCg, vs...))
}

// TotalCgGT applies the GT predicate on the "total_cg" field.
func TotalCgGT(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGT(FieldTotalCg, v))
}

// TotalCgGTE applies the GTE predicate on the "total_cg" field.
func TotalCgGTE(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGTE(FieldTotalCg, v))
}

// TotalCgLT applies the LT predicate on the "total_cg" field.
func TotalCgLT(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLT(FieldTotalCg, v))
}

// TotalCgLTE applies the LTE predicate on the "total_cg" field.
func TotalCgLTE(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLTE(FieldTotalCg, v))
}

// TotalExpiredEQ applies the EQ predicate on the "total_expired" field.
func TotalExpiredEQ(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldTotalExpired, v))
}

// TotalExpiredNEQ applies the NEQ predicate on the "total_expired" field.
func TotalExpiredNEQ(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNEQ(FieldTotalExpired, v))
}

// TotalExpiredIn applies the In predicate on the "total_expired" field.
func TotalExpiredIn(vs ...int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldIn(FieldTotalExpired, vs...))
}

// TotalExpiredNotIn applies the NotIn predicate on the "total_expired" field.
func TotalExpiredNotIn(vs ...int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNotIn(FieldTotalExpired, vs...))
}

// TotalExpiredGT applies the GT predicate on the "total_expired" field.
func TotalExpiredGT(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGT(FieldTotalExpired, v))
}

// TotalExpiredGTE applies the GTE predicate on the "total_expired" field.
func TotalExpiredGTE(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGTE(FieldTotalExpired, v))
}

// TotalExpiredLT applies the LT predicate on the "total_expired" field.
func TotalExpiredLT(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLT(FieldTotalExpired, v))
}

// TotalExpiredLTE applies the LTE predicate on the "total_expired" field.
func TotalExpiredLTE(v int) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLTE(FieldTotalExpired, v))
}

// RecordedByEQ applies the EQ predicate on the "recorded_by" field.
func RecordedByEQ(v uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldEQ(FieldRecordedBy, v))
}

// RecordedByNEQ applies the NEQ predicate on the "recorded_by" field.
func RecordedByNEQ(v uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNEQ(FieldRecordedBy, v))
}

// RecordedByIn applies the In predicate on the "recorded_by" field.
func RecordedByIn(vs ...uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldIn(FieldRecordedBy, vs...))
}

// RecordedByNotIn applies the NotIn predicate on the "recorded_by" field.
func RecordedByNotIn(vs ...uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNotIn(FieldRecordedBy, vs...))
}

// RecordedByGT applies the GT predicate on the "recorded_by" field.
func RecordedByGT(v uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGT(FieldRecordedBy, v))
}

// RecordedByGTE applies the GTE predicate on the "recorded_by" field.
func RecordedByGTE(v uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldGTE(FieldRecordedBy, v))
}

// RecordedByLT applies the LT predicate on the "recorded_by" field.
func RecordedByLT(v uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLT(FieldRecordedBy, v))
}

// RecordedByLTE applies the LTE predicate on the "recorded_by" field.
func RecordedByLTE(v uuid.UUID) predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldLTE(FieldRecordedBy, v))
}

// RecordedByIsNil applies the IsNil predicate on the "recorded_by" field.
func RecordedByIsNil() predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldIsNull(FieldRecordedBy))
}

// RecordedByNotNil applies the NotNil predicate on the "recorded_by" field.
func RecordedByNotNil() predicate.YearlyStat {
	return predicate.YearlyStat(sql.FieldNotNull(FieldRecordedBy))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.YearlyStat) predicate.YearlyStat {
	return predicate.YearlyStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.YearlyStat) predicate.YearlyStat {
	return predicate.YearlyStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.YearlyStat) predicate.YearlyStat {
	return predicate.YearlyStat(sql.NotPredicates(p))
}
