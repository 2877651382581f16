// Code generated by ent, DO NOT EDIT.

package bloodbag

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hemobank/hemobank_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldUpdatedAt, v))
}

// BagNumber applies equality check predicate on the "bag_number" field. It's identical to BagNumberEQ.
func BagNumber(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldBagNumber, v))
}

// BloodGroup applies equality check predicate on the "blood_group" field. It's identical to BloodGroupEQ.
func BloodGroup(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldBloodGroup, v))
}

// DonationID applies equality check predicate on the "donation_id" field. It's identical to DonationIDEQ.
func DonationID(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldDonationID, v))
}

// BagType applies equality check predicate on the "bag_type" field. It's identical to BagTypeEQ.
func BagType(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldBagType, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v float64) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldWeight, v))
}

// CollectionDate applies equality check predicate on the "collection_date" field. It's identical to CollectionDateEQ.
func CollectionDate(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldCollectionDate, v))
}

// ExpireDate applies equality check predicate on the "expire_date" field. It's identical to ExpireDateEQ.
func ExpireDate(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldExpireDate, v))
}

// HbsAg applies equality check predicate on the "hbs_ag" field. It's identical to HbsAgEQ.
func HbsAg(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldHbsAg, v))
}

// Hcv applies equality check predicate on the "hcv" field. It's identical to HcvEQ.
func Hcv(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldHcv, v))
}

// Hiv applies equality check predicate on the "hiv" field. It's identical to HivEQ.
func Hiv(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldHiv, v))
}

// Tpha applies equality check predicate on the "tpha" field. It's identical to TphaEQ.
func Tpha(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldTpha, v))
}

// AntiHtlv applies equality check predicate on the "anti_htlv" field. It's identical to AntiHtlvEQ.
func AntiHtlv(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldAntiHtlv, v))
}

// IsDistributed applies equality check predicate on the "is_distributed" field. It's identical to IsDistributedEQ.
func IsDistributed(v bool) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldIsDistributed, v))
}

// BiologistID applies equality check predicate on the "biologist_id" field. It's identical to BiologistIDEQ.
func BiologistID(v uuid.UUID) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldBiologistID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLTE(FieldUpdatedAt, v))
}

// BagNumberEQ applies the EQ predicate on the "bag_number" field.
func BagNumberEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldBagNumber, v))
}

// BagNumberNEQ applies the NEQ predicate on the "bag_number" field.
func BagNumberNEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldBagNumber, v))
}

// BagNumberIn applies the In predicate on the "bag_number" field.
func BagNumberIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldBagNumber, vs...))
}

// BagNumberNotIn applies the NotIn predicate on the "bag_number" field.
func BagNumberNotIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldBagNumber, vs...))
}

// BagNumberGT applies the GT predicate on the "bag_number" field.
func BagNumberGT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGT(FieldBagNumber, v))
}

// BagNumberGTE applies the GTE predicate on the "bag_number" field.
func BagNumberGTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGTE(FieldBagNumber, v))
}

// BagNumberLT applies the LT predicate on the "bag_number" field.
func BagNumberLT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLT(FieldBagNumber, v))
}

// BagNumberLTE applies the LTE predicate on the "bag_number" field.
func BagNumberLTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLTE(FieldBagNumber, v))
}

// BagNumberContains applies the Contains predicate on the "bag_number" field.
func BagNumberContains(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContains(FieldBagNumber, v))
}

// BagNumberHasPrefix applies the HasPrefix predicate on the "bag_number" field.
func BagNumberHasPrefix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasPrefix(FieldBagNumber, v))
}

// BagNumberHasSuffix applies the HasSuffix predicate on the "bag_number" field.
func BagNumberHasSuffix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasSuffix(FieldBagNumber, v))
}

// BagNumberEqualFold applies the EqualFold predicate on the "bag_number" field.
func BagNumberEqualFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEqualFold(FieldBagNumber, v))
}

// BagNumberContainsFold applies the ContainsFold predicate on the "bag_number" field.
func BagNumberContainsFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContainsFold(FieldBagNumber, v))
}

// BloodGroupEQ applies the EQ predicate on the "blood_group" field.
func BloodGroupEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldBloodGroup, v))
}

// BloodGroupNEQ applies the NEQ predicate on the "blood_group" field.
func BloodGroupNEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldBloodGroup, v))
}

// BloodGroupIn applies the In predicate on the "blood_group" field.
func BloodGroupIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldBloodGroup, vs...))
}

// BloodGroupNotIn applies the NotIn predicate on the "blood_group" field.
func BloodGroupNotIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldBloodGroup, vs...))
}

// BloodGroupGT applies the GT predicate on the "blood_group" field.
func BloodGroupGT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGT(FieldBloodGroup, v))
}

// BloodGroupGTE applies the GTE predicate on the "blood_group" field.
func BloodGroupGTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGTE(FieldBloodGroup, v))
}

// BloodGroupLT applies the LT predicate on the "blood_group" field.
func BloodGroupLT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLT(FieldBloodGroup, v))
}

// BloodGroupLTE applies the LTE predicate on the "blood_group" field.
func BloodGroupLTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLTE(FieldBloodGroup, v))
}

// BloodGroupContains applies the Contains predicate on the "blood_group" field.
func BloodGroupContains(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContains(FieldBloodGroup, v))
}

// BloodGroupHasPrefix applies the HasPrefix predicate on the "blood_group" field.
func BloodGroupHasPrefix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasPrefix(FieldBloodGroup, v))
}

// BloodGroupHasSuffix applies the HasSuffix predicate on the "blood_group" field.
func BloodGroupHasSuffix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasSuffix(FieldBloodGroup, v))
}

// BloodGroupEqualFold applies the EqualFold predicate on the "blood_group" field.
func BloodGroupEqualFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEqualFold(FieldBloodGroup, v))
}

// BloodGroupContainsFold applies the ContainsFold predicate on the "blood_group" field.
func BloodGroupContainsFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContainsFold(FieldBloodGroup, v))
}

// DonationIDEQ applies the EQ predicate on the "donation_id" field.
func DonationIDEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldDonationID, v))
}

// DonationIDNEQ applies the NEQ predicate on the "donation_id" field.
func DonationIDNEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldDonationID, v))
}

// DonationIDIn applies the In predicate on the "donation_id" field.
func DonationIDIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldDonationID, vs...))
}

// DonationIDNotIn applies the NotIn predicate on the "donation_id" field.
func DonationIDNotIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldDonationID, vs...))
}

// DonationIDGT applies the GT predicate on the "donation_id" field.
func DonationIDGT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGT(FieldDonationID, v))
}

// DonationIDGTE applies the GTE predicate on the "donation_id" field.
func DonationIDGTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGTE(FieldDonationID, v))
}

// DonationIDLT applies the LT predicate on the "donation_id" field.
func DonationIDLT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLT(FieldDonationID, v))
}

// DonationIDLTE applies the LTE predicate on the "donation_id" field.
func DonationIDLTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLTE(FieldDonationID, v))
}

// DonationIDContains applies the Contains predicate on the "donation_id" field.
func DonationIDContains(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContains(FieldDonationID, v))
}

// DonationIDHasPrefix applies the HasPrefix predicate on the "donation_id" field.
func DonationIDHasPrefix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasPrefix(FieldDonationID, v))
}

// DonationIDHasSuffix applies the HasSuffix predicate on the "donation_id" field.
func DonationIDHasSuffix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasSuffix(FieldDonationID, v))
}

// DonationIDEqualFold applies the EqualFold predicate on the "donation_id" field.
func DonationIDEqualFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEqualFold(FieldDonationID, v))
}

// DonationIDContainsFold applies the ContainsFold predicate on the "donation_id" field.
func DonationIDContainsFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContainsFold(FieldDonationID, v))
}

// BagTypeEQ applies the EQ predicate on the "bag_type" field.
func BagTypeEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldBagType, v))
}

// BagTypeNEQ applies the NEQ predicate on the "bag_type" field.
func BagTypeNEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldBagType, v))
}

// BagTypeIn applies the In predicate on the "bag_type" field.
func BagTypeIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldBagType, vs...))
}

// BagTypeNotIn applies the NotIn predicate on the "bag_type" field.
func BagTypeNotIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldBagType, vs...))
}

// BagTypeGT applies the GT predicate on the "bag_type" field.
func BagTypeGT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGT(FieldBagType, v))
}

// BagTypeGTE applies the GTE predicate on the "bag_type" field.
func BagTypeGTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGTE(FieldBagType, v))
}

// BagTypeLT applies the LT predicate on the "bag_type" field.
func BagTypeLT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLT(FieldBagType, v))
}

// BagTypeLTE applies the LTE predicate on the "bag_type" field.
func BagTypeLTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLTE(FieldBagType, v))
}

// BagTypeContains applies the Contains predicate on the "bag_type" field.
func BagTypeContains(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContains(FieldBagType, v))
}

// BagTypeHasPrefix applies the HasPrefix predicate on the "bag_type" field.
func BagTypeHasPrefix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasPrefix(FieldBagType, v))
}

// BagTypeHasSuffix applies the HasSuffix predicate on the "bag_type" field.
func BagTypeHasSuffix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasSuffix(FieldBagType, v))
}

// BagTypeEqualFold applies the EqualFold predicate on the "bag_type" field.
func BagTypeEqualFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEqualFold(FieldBagType, v))
}

// BagTypeContainsFold applies the ContainsFold predicate on the "bag_type" field.
func BagTypeContainsFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContainsFold(FieldBagType, v))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v float64) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v float64) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...float64) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...float64) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v float64) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v float64) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v float64) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v float64) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLTE(FieldWeight, v))
}

// CollectionDateEQ applies the EQ predicate on the "collection_date" field.
func CollectionDateEQ(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldCollectionDate, v))
}

// CollectionDateNEQ applies the NEQ predicate on the "collection_date" field.
func CollectionDateNEQ(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldCollectionDate, v))
}

// CollectionDateIn applies the In predicate on the "collection_date" field.
func CollectionDateIn(vs ...time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldCollectionDate, vs...))
}

// CollectionDateNotIn applies the NotIn predicate on the "collection_date" field.
func CollectionDateNotIn(vs ...time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldCollectionDate, vs...))
}

// CollectionDateGT applies the GT predicate on the "collection_date" field.
func CollectionDateGT(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGT(FieldCollectionDate, v))
}

// CollectionDateGTE applies the GTE predicate on the "collection_date" field.
func CollectionDateGTE(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGTE(FieldCollectionDate, v))
}

// CollectionDateLT applies the LT predicate on the "collection_date" field.
func CollectionDateLT(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLT(FieldCollectionDate, v))
}

// CollectionDateLTE applies the LTE predicate on the "collection_date" field.
func CollectionDateLTE(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLTE(FieldCollectionDate, v))
}

// ExpireDateEQ applies the EQ predicate on the "expire_date" field.
func ExpireDateEQ(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldExpireDate, v))
}

// ExpireDateNEQ applies the NEQ predicate on the "expire_date" field.
func ExpireDateNEQ(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldExpireDate, v))
}

// ExpireDateIn applies the In predicate on the "expire_date" field.
func ExpireDateIn(vs ...time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldExpireDate, vs...))
}

// ExpireDateNotIn applies the NotIn predicate on the "expire_date" field.
func ExpireDateNotIn(vs ...time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldExpireDate, vs...))
}

// ExpireDateGT applies the GT predicate on the "expire_date" field.
func ExpireDateGT(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGT(FieldExpireDate, v))
}

// ExpireDateGTE applies the GTE predicate on the "expire_date" field.
func ExpireDateGTE(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGTE(FieldExpireDate, v))
}

// ExpireDateLT applies the LT predicate on the "expire_date" field.
func ExpireDateLT(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLT(FieldExpireDate, v))
}

// ExpireDateLTE applies the LTE predicate on the "expire_date" field.
func ExpireDateLTE(v time.Time) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLTE(FieldExpireDate, v))
}

// HbsAgEQ applies the EQ predicate on the "hbs_ag" field.
func HbsAgEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldHbsAg, v))
}

// HbsAgNEQ applies the NEQ predicate on the "hbs_ag" field.
func HbsAgNEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldHbsAg, v))
}

// HbsAgIn applies the In predicate on the "hbs_ag" field.
func HbsAgIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldHbsAg, vs...))
}

// HbsAgNotIn applies the NotIn predicate on the "hbs_ag" field.
func HbsAgNotIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldHbsAg, vs...))
}

// HbsAgGT applies the GT predicate on the "hbs_ag" field.
func HbsAgGT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGT(FieldHbsAg, v))
}

// HbsAgGTE applies the GTE predicate on the "hbs_ag" field.
func HbsAgGTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGTE(FieldHbsAg, v))
}

// HbsAgLT applies the LT predicate on the "hbs_ag" field.
func HbsAgLT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLT(FieldHbsAg, v))
}

// HbsAgLTE applies the LTE predicate on the "hbs_ag" field.
func HbsAgLTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLTE(FieldHbsAg, v))
}

// HbsAgContains applies the Contains predicate on the "hbs_ag" field.
func HbsAgContains(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContains(FieldHbsAg, v))
}

// HbsAgHasPrefix applies the HasPrefix predicate on the "hbs_ag" field.
func HbsAgHasPrefix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasPrefix(FieldHbsAg, v))
}

// HbsAgHasSuffix applies the HasSuffix predicate on the "hbs_ag" field.
func HbsAgHasSuffix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasSuffix(FieldHbsAg, v))
}

// HbsAgEqualFold applies the EqualFold predicate on the "hbs_ag" field.
func HbsAgEqualFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEqualFold(FieldHbsAg, v))
}

// HbsAgContainsFold applies the ContainsFold predicate on the "hbs_ag" field.
func HbsAgContainsFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContainsFold(FieldHbsAg, v))
}

// HcvEQ applies the EQ predicate on the "hcv" field.
func HcvEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldHcv, v))
}

// HcvNEQ applies the NEQ predicate on the "hcv" field.
func HcvNEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldHcv, v))
}

// HcvIn applies the In predicate on the "hcv" field.
func HcvIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldHcv, vs...))
}

// HcvNotIn applies the NotIn predicate on the "hcv" field.
func HcvNotIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldHcv, vs...))
}

// HcvGT applies the GT predicate on the "hcv" field.
func HcvGT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGT(FieldHcv, v))
}

// HcvGTE applies the GTE predicate on the "hcv" field.
func HcvGTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGTE(FieldHcv, v))
}

// HcvLT applies the LT predicate on the "hcv" field.
func HcvLT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLT(FieldHcv, v))
}

// HcvLTE applies the LTE predicate on the "hcv" field.
func HcvLTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLTE(FieldHcv, v))
}

// HcvContains applies the Contains predicate on the "hcv" field.
func HcvContains(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContains(FieldHcv, v))
}

// HcvHasPrefix applies the HasPrefix predicate on the "hcv" field.
func HcvHasPrefix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasPrefix(FieldHcv, v))
}

// HcvHasSuffix applies the HasSuffix predicate on the "hcv" field.
func HcvHasSuffix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasSuffix(FieldHcv, v))
}

// HcvEqualFold applies the EqualFold predicate on the "hcv" field.
func HcvEqualFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEqualFold(FieldHcv, v))
}

// HcvContainsFold applies the ContainsFold predicate on the "hcv" field.
func HcvContainsFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContainsFold(FieldHcv, v))
}

// HivEQ applies the EQ predicate on the "hiv" field.
func HivEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldHiv, v))
}

// HivNEQ applies the NEQ predicate on the "hiv" field.
func HivNEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldHiv, v))
}

// HivIn applies the In predicate on the "hiv" field.
func HivIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldHiv, vs...))
}

// HivNotIn applies the NotIn predicate on the "hiv" field.
func HivNotIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldHiv, vs...))
}

// HivGT applies the GT predicate on the "hiv" field.
func HivGT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGT(FieldHiv, v))
}

// HivGTE applies the GTE predicate on the "hiv" field.
func HivGTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGTE(FieldHiv, v))
}

// HivLT applies the LT predicate on the "hiv" field.
func HivLT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLT(FieldHiv, v))
}

// HivLTE applies the LTE predicate on the "hiv" field.
func HivLTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLTE(FieldHiv, v))
}

// HivContains applies the Contains predicate on the "hiv" field.
func HivContains(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContains(FieldHiv, v))
}

// HivHasPrefix applies the HasPrefix predicate on the "hiv" field.
func HivHasPrefix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasPrefix(FieldHiv, v))
}

// HivHasSuffix applies the HasSuffix predicate on the "hiv" field.
func HivHasSuffix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasSuffix(FieldHiv, v))
}

// HivEqualFold applies the EqualFold predicate on the "hiv" field.
func HivEqualFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEqualFold(FieldHiv, v))
}

// HivContainsFold applies the ContainsFold predicate on the "hiv" field.
func HivContainsFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContainsFold(FieldHiv, v))
}

// TphaEQ applies the EQ predicate on the "tpha" field.
func TphaEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldTpha, v))
}

// TphaNEQ applies the NEQ predicate on the "tpha" field.
func TphaNEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldTpha, v))
}

// TphaIn applies the In predicate on the "tpha" field.
func TphaIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldTpha, vs...))
}

// TphaNotIn applies the NotIn predicate on the "tpha" field.
func TphaNotIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldTpha, vs...))
}

// TphaGT applies the GT predicate on the "tpha" field.
func TphaGT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGT(FieldTpha, v))
}

// TphaGTE applies the GTE predicate on the "tpha" field.
func TphaGTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGTE(FieldTpha, v))
}

// TphaLT applies the LT predicate on the "tpha" field.
func TphaLT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLT(FieldTpha, v))
}

// TphaLTE applies the LTE predicate on the "tpha" field.
func TphaLTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLTE(FieldTpha, v))
}

// TphaContains applies the Contains predicate on the "tpha" field.
func TphaContains(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContains(FieldTpha, v))
}

// TphaHasPrefix applies the HasPrefix predicate on the "tpha" field.
func TphaHasPrefix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasPrefix(FieldTpha, v))
}

// TphaHasSuffix applies the HasSuffix predicate on the "tpha" field.
func TphaHasSuffix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasSuffix(FieldTpha, v))
}

// TphaEqualFold applies the EqualFold predicate on the "tpha" field.
func TphaEqualFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEqualFold(FieldTpha, v))
}

// TphaContainsFold applies the ContainsFold predicate on the "tpha" field.
func TphaContainsFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContainsFold(FieldTpha, v))
}

// AntiHtlvEQ applies the EQ predicate on the "anti_htlv" field.
func AntiHtlvEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldAntiHtlv, v))
}

// AntiHtlvNEQ applies the NEQ predicate on the "anti_htlv" field.
func AntiHtlvNEQ(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldAntiHtlv, v))
}

// AntiHtlvIn applies the In predicate on the "anti_htlv" field.
func AntiHtlvIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldAntiHtlv, vs...))
}

// AntiHtlvNotIn applies the NotIn predicate on the "anti_htlv" field.
func AntiHtlvNotIn(vs ...string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldAntiHtlv, vs...))
}

// AntiHtlvGT applies the GT predicate on the "anti_htlv" field.
func AntiHtlvGT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGT(FieldAntiHtlv, v))
}

// AntiHtlvGTE applies the GTE predicate on the "anti_htlv" field.
func AntiHtlvGTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldGTE(FieldAntiHtlv, v))
}

// AntiHtlvLT applies the LT predicate on the "anti_htlv" field.
func AntiHtlvLT(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLT(FieldAntiHtlv, v))
}

// AntiHtlvLTE applies the LTE predicate on the "anti_htlv" field.
func AntiHtlvLTE(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldLTE(FieldAntiHtlv, v))
}

// AntiHtlvContains applies the Contains predicate on the "anti_htlv" field.
func AntiHtlvContains(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContains(FieldAntiHtlv, v))
}

// AntiHtlvHasPrefix applies the HasPrefix predicate on the "anti_htlv" field.
func AntiHtlvHasPrefix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasPrefix(FieldAntiHtlv, v))
}

// AntiHtlvHasSuffix applies the HasSuffix predicate on the "anti_htlv" field.
func AntiHtlvHasSuffix(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldHasSuffix(FieldAntiHtlv, v))
}

// AntiHtlvEqualFold applies the EqualFold predicate on the "anti_htlv" field.
func AntiHtlvEqualFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEqualFold(FieldAntiHtlv, v))
}

// AntiHtlvContainsFold applies the ContainsFold predicate on the "anti_htlv" field.
func AntiHtlvContainsFold(v string) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldContainsFold(FieldAntiHtlv, v))
}

// IsDistributedEQ applies the EQ predicate on the "is_distributed" field.
func IsDistributedEQ(v bool) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldIsDistributed, v))
}

// IsDistributedNEQ applies the NEQ predicate on the "is_distributed" field.
func IsDistributedNEQ(v bool) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldIsDistributed, v))
}

// BiologistIDEQ applies the EQ predicate on the "biologist_id" field.
func BiologistIDEQ(v uuid.UUID) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldEQ(FieldBiologistID, v))
}

// BiologistIDNEQ applies the NEQ predicate on the "biologist_id" field.
func BiologistIDNEQ(v uuid.UUID) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNEQ(FieldBiologistID, v))
}

// BiologistIDIn applies the In predicate on the "biologist_id" field.
func BiologistIDIn(vs ...uuid.UUID) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldIn(FieldBiologistID, vs...))
}

// BiologistIDNotIn applies the NotIn predicate on the "biologist_id" field.
func BiologistIDNotIn(vs ...uuid.UUID) predicate.BloodBag {
	return predicate.BloodBag(sql.FieldNotIn(FieldBiologistID, vs...))
}

// HasBiologist applies the HasEdge predicate on the "biologist" edge.
func HasBiologist() predicate.BloodBag {
	return predicate.BloodBag(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BiologistTable, BiologistColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBiologistWith applies the HasEdge predicate on the "biologist" edge with a given conditions (other predicates).
func HasBiologistWith(preds ...predicate.Biologist) predicate.BloodBag {
	return predicate.BloodBag(func(s *sql.Selector) {
		step := newBiologistStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasComponents applies the HasEdge predicate on the "components" edge.
func HasComponents() predicate.BloodBag {
	return predicate.BloodBag(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ComponentsTable, ComponentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasComponentsWith applies the HasEdge predicate on the "components" edge with a given conditions (other predicates).
func HasComponentsWith(preds ...predicate.Component) predicate.BloodBag {
	return predicate.BloodBag(func(s *sql.Selector) {
		step := newComponentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDistributions applies the HasEdge predicate on the "distributions" edge.
func HasDistributions() predicate.BloodBag {
	return predicate.BloodBag(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DistributionsTable, DistributionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDistributionsWith applies the HasEdge predicate on the "distributions" edge with a given conditions (other predicates).
func HasDistributionsWith(preds ...predicate.Distribution) predicate.BloodBag {
	return predicate.BloodBag(func(s *sql.Selector) {
		step := newDistributionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BloodBag) predicate.BloodBag {
	return predicate.BloodBag(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BloodBag) predicate.BloodBag {
	return predicate.BloodBag(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BloodBag) predicate.BloodBag {
	return predicate.BloodBag(sql.NotPredicates(p))
}
