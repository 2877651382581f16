// Code generated by ent, DO NOT EDIT.

package distribution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hemobank/hemobank_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Distribution {
	return predicate.Distribution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Distribution {
	return predicate.Distribution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Distribution {
	return predicate.Distribution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Distribution {
	return predicate.Distribution(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldUpdatedAt, v))
}

// DistributionNumber applies equality check predicate on the "distribution_number" field. It's identical to DistributionNumberEQ.
func DistributionNumber(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldDistributionNumber, v))
}

// ReceiverFirstName applies equality check predicate on the "receiver_first_name" field. It's identical to ReceiverFirstNameEQ.
func ReceiverFirstName(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldReceiverFirstName, v))
}

// ReceiverLastName applies equality check predicate on the "receiver_last_name" field. It's identical to ReceiverLastNameEQ.
func ReceiverLastName(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldReceiverLastName, v))
}

// ReceiverAge applies equality check predicate on the "receiver_age" field. It's identical to ReceiverAgeEQ.
func ReceiverAge(v int) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldReceiverAge, v))
}

// ReceiverSex applies equality check predicate on the "receiver_sex" field. It's identical to ReceiverSexEQ.
func ReceiverSex(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldReceiverSex, v))
}

// Establishment applies equality check predicate on the "establishment" field. It's identical to EstablishmentEQ.
func Establishment(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldEstablishment, v))
}

// RequestedBloodGroup applies equality check predicate on the "requested_blood_group" field. It's identical to RequestedBloodGroupEQ.
func RequestedBloodGroup(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldRequestedBloodGroup, v))
}

// NumberOfBags applies equality check predicate on the "number_of_bags" field. It's identical to NumberOfBagsEQ.
func NumberOfBags(v int) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldNumberOfBags, v))
}

// Service applies equality check predicate on the "service" field. It's identical to ServiceEQ.
func Service(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldService, v))
}

// CarrierName applies equality check predicate on the "carrier_name" field. It's identical to CarrierNameEQ.
func CarrierName(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldCarrierName, v))
}

// DoctorName applies equality check predicate on the "doctor_name" field. It's identical to DoctorNameEQ.
func DoctorName(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldDoctorName, v))
}

// IssuedAt applies equality check predicate on the "issued_at" field. It's identical to IssuedAtEQ.
func IssuedAt(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldIssuedAt, v))
}

// BagbloodID applies equality check predicate on the "bagblood_id" field. It's identical to BagbloodIDEQ.
func BagbloodID(v uuid.UUID) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldBagbloodID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldLTE(FieldUpdatedAt, v))
}

// DistributionNumberEQ applies the EQ predicate on the "distribution_number" field.
func DistributionNumberEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldDistributionNumber, v))
}

// DistributionNumberNEQ applies the NEQ predicate on the "distribution_number" field.
func DistributionNumberNEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldDistributionNumber, v))
}

// DistributionNumberIn applies the In predicate on the "distribution_number" field.
func DistributionNumberIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldDistributionNumber, vs...))
}

// DistributionNumberNotIn applies the NotIn predicate on the "distribution_number" field.
func DistributionNumberNotIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldDistributionNumber, vs...))
}

// DistributionNumberGT applies the GT predicate on the "distribution_number" field.
func DistributionNumberGT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGT(FieldDistributionNumber, v))
}

// DistributionNumberGTE applies the GTE predicate on the "distribution_number" field.
func DistributionNumberGTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGTE(FieldDistributionNumber, v))
}

// DistributionNumberLT applies the LT predicate on the "distribution_number" field.
func DistributionNumberLT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLT(FieldDistributionNumber, v))
}

// DistributionNumberLTE applies the LTE predicate on the "distribution_number" field.
func DistributionNumberLTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLTE(FieldDistributionNumber, v))
}

// DistributionNumberContains applies the Contains predicate on the "distribution_number" field.
func DistributionNumberContains(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContains(FieldDistributionNumber, v))
}

// DistributionNumberHasPrefix applies the HasPrefix predicate on the "distribution_number" field.
func DistributionNumberHasPrefix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasPrefix(FieldDistributionNumber, v))
}

// DistributionNumberHasSuffix applies the HasSuffix predicate on the "distribution_number" field.
func DistributionNumberHasSuffix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasSuffix(FieldDistributionNumber, v))
}

// DistributionNumberEqualFold applies the EqualFold predicate on the "distribution_number" field.
func DistributionNumberEqualFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEqualFold(FieldDistributionNumber, v))
}

// DistributionNumberContainsFold applies the ContainsFold predicate on the "distribution_number" field.
func DistributionNumberContainsFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContainsFold(FieldDistributionNumber, v))
}

// ReceiverFirstNameEQ applies the EQ predicate on the "receiver_first_name" field.
func ReceiverFirstNameEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldReceiverFirstName, v))
}

// ReceiverFirstNameNEQ applies the NEQ predicate on the "receiver_first_name" field.
func ReceiverFirstNameNEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldReceiverFirstName, v))
}

// ReceiverFirstNameIn applies the In predicate on the "receiver_first_name" field.
func ReceiverFirstNameIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldReceiverFirstName, vs...))
}

// ReceiverFirstNameNotIn applies the NotIn predicate on the "receiver_first_name" field.
func ReceiverFirstNameNotIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldReceiverFirstName, vs...))
}

// ReceiverFirstNameGT applies the GT predicate on the "receiver_first_name" field.
func ReceiverFirstNameGT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGT(FieldReceiverFirstName, v))
}

// ReceiverFirstNameGTE applies the GTE predicate on the "receiver_first_name" field.
func ReceiverFirstNameGTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGTE(FieldReceiverFirstName, v))
}

// ReceiverFirstNameLT applies the LT predicate on the "receiver_first_name" field.
func ReceiverFirstNameLT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLT(FieldReceiverFirstName, v))
}

// ReceiverFirstNameLTE applies the LTE predicate on the "receiver_first_name" field.
func ReceiverFirstNameLTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLTE(FieldReceiverFirstName, v))
}

// ReceiverFirstNameContains applies the Contains predicate on the "receiver_first_name" field.
func ReceiverFirstNameContains(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContains(FieldReceiverFirstName, v))
}

// ReceiverFirstNameHasPrefix applies the HasPrefix predicate on the "receiver_first_name" field.
func ReceiverFirstNameHasPrefix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasPrefix(FieldReceiverFirstName, v))
}

// ReceiverFirstNameHasSuffix applies the HasSuffix predicate on the "receiver_first_name" field.
func ReceiverFirstNameHasSuffix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasSuffix(FieldReceiverFirstName, v))
}

// ReceiverFirstNameEqualFold applies the EqualFold predicate on the "receiver_first_name" field.
func ReceiverFirstNameEqualFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEqualFold(FieldReceiverFirstName, v))
}

// ReceiverFirstNameContainsFold applies the ContainsFold predicate on the "receiver_first_name" field.
func ReceiverFirstNameContainsFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContainsFold(FieldReceiverFirstName, v))
}

// ReceiverLastNameEQ applies the EQ predicate on the "receiver_last_name" field.
func ReceiverLastNameEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldReceiverLastName, v))
}

// ReceiverLastNameNEQ applies the NEQ predicate on the "receiver_last_name" field.
func ReceiverLastNameNEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldReceiverLastName, v))
}

// ReceiverLastNameIn applies the In predicate on the "receiver_last_name" field.
func ReceiverLastNameIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldReceiverLastName, vs...))
}

// ReceiverLastNameNotIn applies the NotIn predicate on the "receiver_last_name" field.
func ReceiverLastNameNotIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldReceiverLastName, vs...))
}

// ReceiverLastNameGT applies the GT predicate on the "receiver_last_name" field.
func ReceiverLastNameGT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGT(FieldReceiverLastName, v))
}

// ReceiverLastNameGTE applies the GTE predicate on the "receiver_last_name" field.
func ReceiverLastNameGTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGTE(FieldReceiverLastName, v))
}

// ReceiverLastNameLT applies the LT predicate on the "receiver_last_name" field.
func ReceiverLastNameLT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLT(FieldReceiverLastName, v))
}

// ReceiverLastNameLTE applies the LTE predicate on the "receiver_last_name" field.
func ReceiverLastNameLTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLTE(FieldReceiverLastName, v))
}

// ReceiverLastNameContains applies the Contains predicate on the "receiver_last_name" field.
func ReceiverLastNameContains(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContains(FieldReceiverLastName, v))
}

// ReceiverLastNameHasPrefix applies the HasPrefix predicate on the "receiver_last_name" field.
func ReceiverLastNameHasPrefix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasPrefix(FieldReceiverLastName, v))
}

// ReceiverLastNameHasSuffix applies the HasSuffix predicate on the "receiver_last_name" field.
func ReceiverLastNameHasSuffix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasSuffix(FieldReceiverLastName, v))
}

// ReceiverLastNameEqualFold applies the EqualFold predicate on the "receiver_last_name" field.
func ReceiverLastNameEqualFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEqualFold(FieldReceiverLastName, v))
}

// ReceiverLastNameContainsFold applies the ContainsFold predicate on the "receiver_last_name" field.
func ReceiverLastNameContainsFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContainsFold(FieldReceiverLastName, v))
}

// ReceiverAgeEQ applies the EQ predicate on the "receiver_age" field.
func ReceiverAgeEQ(v int) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldReceiverAge, v))
}

// ReceiverAgeNEQ applies the NEQ predicate on the "receiver_age" field.
func ReceiverAgeNEQ(v int) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldReceiverAge, v))
}

// ReceiverAgeIn applies the In predicate on the "receiver_age" field.
func ReceiverAgeIn(vs ...int) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldReceiverAge, vs...))
}

// ReceiverAgeNotIn applies the NotIn predicate on the "receiver_age" field.
func ReceiverAgeNotIn(vs ...int) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldReceiverAge, vs...))
}

// ReceiverAgeGT applies the GT predicate on the "receiver_age" field.
func ReceiverAgeGT(v int) predicate.Distribution {
	return predicate.Distribution(sql.FieldGT(FieldReceiverAge, v))
}

// ReceiverAgeGTE applies the GTE predicate on the "receiver_age" field.
func ReceiverAgeGTE(v int) predicate.Distribution {
	return predicate.Distribution(sql.FieldGTE(FieldReceiverAge, v))
}

// ReceiverAgeLT applies the LT predicate on the "receiver_age" field.
func ReceiverAgeLT(v int) predicate.Distribution {
	return predicate.Distribution(sql.FieldLT(FieldReceiverAge, v))
}

// ReceiverAgeLTE applies the LTE predicate on the "receiver_age" field.
func ReceiverAgeLTE(v int) predicate.Distribution {
	return predicate.Distribution(sql.FieldLTE(FieldReceiverAge, v))
}

// ReceiverSexEQ applies the EQ predicate on the "receiver_sex" field.
func ReceiverSexEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldReceiverSex, v))
}

// ReceiverSexNEQ applies the NEQ predicate on the "receiver_sex" field.
func ReceiverSexNEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldReceiverSex, v))
}

// ReceiverSexIn applies the In predicate on the "receiver_sex" field.
func ReceiverSexIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldReceiverSex, vs...))
}

// ReceiverSexNotIn applies the NotIn predicate on the "receiver_sex" field.
func ReceiverSexNotIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldReceiverSex, vs...))
}

// ReceiverSexGT applies the GT predicate on the "receiver_sex" field.
func ReceiverSexGT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGT(FieldReceiverSex, v))
}

// ReceiverSexGTE applies the GTE predicate on the "receiver_sex" field.
func ReceiverSexGTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGTE(FieldReceiverSex, v))
}

// ReceiverSexLT applies the LT predicate on the "receiver_sex" field.
func ReceiverSexLT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLT(FieldReceiverSex, v))
}

// ReceiverSexLTE applies the LTE predicate on the "receiver_sex" field.
func ReceiverSexLTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLTE(FieldReceiverSex, v))
}

// ReceiverSexContains applies the Contains predicate on the "receiver_sex" field.
func ReceiverSexContains(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContains(FieldReceiverSex, v))
}

// ReceiverSexHasPrefix applies the HasPrefix predicate on the "receiver_sex" field.
func ReceiverSexHasPrefix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasPrefix(FieldReceiverSex, v))
}

// ReceiverSexHasSuffix applies the HasSuffix predicate on the "receiver_sex" field.
func ReceiverSexHasSuffix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasSuffix(FieldReceiverSex, v))
}

// ReceiverSexEqualFold applies the EqualFold predicate on the "receiver_sex" field.
func ReceiverSexEqualFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEqualFold(FieldReceiverSex, v))
}

// ReceiverSexContainsFold applies the ContainsFold predicate on the "receiver_sex" field.
func ReceiverSexContainsFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContainsFold(FieldReceiverSex, v))
}

// EstablishmentEQ applies the EQ predicate on the "establishment" field.
func EstablishmentEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldEstablishment, v))
}

// EstablishmentNEQ applies the NEQ predicate on the "establishment" field.
func EstablishmentNEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldEstablishment, v))
}

// EstablishmentIn applies the In predicate on the "establishment" field.
func EstablishmentIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldEstablishment, vs...))
}

// EstablishmentNotIn applies the NotIn predicate on the "establishment" field.
func EstablishmentNotIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldEstablishment, vs...))
}

// EstablishmentGT applies the GT predicate on the "establishment" field.
func EstablishmentGT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGT(FieldEstablishment, v))
}

// EstablishmentGTE applies the GTE predicate on the "establishment" field.
func EstablishmentGTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGTE(FieldEstablishment, v))
}

// EstablishmentLT applies the LT predicate on the "establishment" field.
func EstablishmentLT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLT(FieldEstablishment, v))
}

// EstablishmentLTE applies the LTE predicate on the "establishment" field.
func EstablishmentLTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLTE(FieldEstablishment, v))
}

// EstablishmentContains applies the Contains predicate on the "establishment" field.
func EstablishmentContains(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContains(FieldEstablishment, v))
}

// EstablishmentHasPrefix applies the HasPrefix predicate on the "establishment" field.
func EstablishmentHasPrefix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasPrefix(FieldEstablishment, v))
}

// EstablishmentHasSuffix applies the HasSuffix predicate on the "establishment" field.
func EstablishmentHasSuffix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasSuffix(FieldEstablishment, v))
}

// EstablishmentEqualFold applies the EqualFold predicate on the "establishment" field.
func EstablishmentEqualFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEqualFold(FieldEstablishment, v))
}

// EstablishmentContainsFold applies the ContainsFold predicate on the "establishment" field.
func EstablishmentContainsFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContainsFold(FieldEstablishment, v))
}

// RequestedBloodGroupEQ applies the EQ predicate on the "requested_blood_group" field.
func RequestedBloodGroupEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldRequestedBloodGroup, v))
}

// RequestedBloodGroupNEQ applies the NEQ predicate on the "requested_blood_group" field.
func RequestedBloodGroupNEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldRequestedBloodGroup, v))
}

// RequestedBloodGroupIn applies the In predicate on the "requested_blood_group" field.
func RequestedBloodGroupIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldRequestedBloodGroup, vs...))
}

// RequestedBloodGroupNotIn applies the NotIn predicate on the "requested_blood_group" field.
func RequestedBloodGroupNotIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldRequestedBloodGroup, vs...))
}

// RequestedBloodGroupGT applies the GT predicate on the "requested_blood_group" field.
func RequestedBloodGroupGT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGT(FieldRequestedBloodGroup, v))
}

// RequestedBloodGroupGTE applies the GTE predicate on the "requested_blood_group" field.
func RequestedBloodGroupGTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGTE(FieldRequestedBloodGroup, v))
}

// RequestedBloodGroupLT applies the LT predicate on the "requested_blood_group" field.
func RequestedBloodGroupLT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLT(FieldRequestedBloodGroup, v))
}

// RequestedBloodGroupLTE applies the LTE predicate on the "requested_blood_group" field.
func RequestedBloodGroupLTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLTE(FieldRequestedBloodGroup, v))
}

// RequestedBloodGroupContains applies the Contains predicate on the "requested_blood_group" field.
func RequestedBloodGroupContains(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContains(FieldRequestedBloodGroup, v))
}

// RequestedBloodGroupHasPrefix applies the HasPrefix predicate on the "requested_blood_group" field.
func RequestedBloodGroupHasPrefix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasPrefix(FieldRequestedBloodGroup, v))
}

// RequestedBloodGroupHasSuffix applies the HasSuffix predicate on the "requested_blood_group" field.
func RequestedBloodGroupHasSuffix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasSuffix(FieldRequestedBloodGroup, v))
}

// RequestedBloodGroupEqualFold applies the EqualFold predicate on the "requested_blood_group" field.
func RequestedBloodGroupEqualFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEqualFold(FieldRequestedBloodGroup, v))
}

// RequestedBloodGroupContainsFold applies the ContainsFold predicate on the "requested_blood_group" field.
func RequestedBloodGroupContainsFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContainsFold(FieldRequestedBloodGroup, v))
}

// NumberOfBagsEQ applies the EQ predicate on the "number_of_bags" field.
func NumberOfBagsEQ(v int) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldNumberOfBags, v))
}

// NumberOfBagsNEQ applies the NEQ predicate on the "number_of_bags" field.
func NumberOfBagsNEQ(v int) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldNumberOfBags, v))
}

// NumberOfBagsIn applies the In predicate on the "number_of_bags" field.
func NumberOfBagsIn(vs ...int) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldNumberOfBags, vs...))
}

// NumberOfBagsNotIn applies the NotIn predicate on the "number_of_bags" field.
func NumberOfBagsNotIn(vs ...int) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldNumberOfBags, vs...))
}

// NumberOfBagsGT applies the GT predicate on the "number_of_bags" field.
func NumberOfBagsGT(v int) predicate.Distribution {
	return predicate.Distribution(sql.FieldGT(FieldNumberOfBags, v))
}

// NumberOfBagsGTE applies the GTE predicate on the "number_of_bags" field.
func NumberOfBagsGTE(v int) predicate.Distribution {
	return predicate.Distribution(sql.FieldGTE(FieldNumberOfBags, v))
}

// NumberOfBagsLT applies the LT predicate on the "number_of_bags" field.
func NumberOfBagsLT(v int) predicate.Distribution {
	return predicate.Distribution(sql.FieldLT(FieldNumberOfBags, v))
}

// NumberOfBagsLTE applies the LTE predicate on the "number_of_bags" field.
func NumberOfBagsLTE(v int) predicate.Distribution {
	return predicate.Distribution(sql.FieldLTE(FieldNumberOfBags, v))
}

// ServiceEQ applies the EQ predicate on the "service" field.
func ServiceEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldService, v))
}

// ServiceNEQ applies the NEQ predicate on the "service" field.
func ServiceNEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldService, v))
}

// ServiceIn applies the In predicate on the "service" field.
func ServiceIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldService, vs...))
}

// ServiceNotIn applies the NotIn predicate on the "service" field.
func ServiceNotIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldService, vs...))
}

// ServiceGT applies the GT predicate on the "service" field.
func ServiceGT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGT(FieldService, v))
}

// ServiceGTE applies the GTE predicate on the "service" field.
func ServiceGTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGTE(FieldService, v))
}

// ServiceLT applies the LT predicate on the "service" field.
func ServiceLT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLT(FieldService, v))
}

// ServiceLTE applies the LTE predicate on the "service" field.
func ServiceLTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLTE(FieldService, v))
}

// ServiceContains applies the Contains predicate on the "service" field.
func ServiceContains(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContains(FieldService, v))
}

// ServiceHasPrefix applies the HasPrefix predicate on the "service" field.
func ServiceHasPrefix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasPrefix(FieldService, v))
}

// ServiceHasSuffix applies the HasSuffix predicate on the "service" field.
func ServiceHasSuffix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasSuffix(FieldService, v))
}

// ServiceEqualFold applies the EqualFold predicate on the "service" field.
func ServiceEqualFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEqualFold(FieldService, v))
}

// ServiceContainsFold applies the ContainsFold predicate on the "service" field.
func ServiceContainsFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContainsFold(FieldService, v))
}

// CarrierNameEQ applies the EQ predicate on the "carrier_name" field.
func CarrierNameEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldCarrierName, v))
}

// CarrierNameNEQ applies the NEQ predicate on the "carrier_name" field.
func CarrierNameNEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldCarrierName, v))
}

// CarrierNameIn applies the In predicate on the "carrier_name" field.
func CarrierNameIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldCarrierName, vs...))
}

// CarrierNameNotIn applies the NotIn predicate on the "carrier_name" field.
func CarrierNameNotIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldCarrierName, vs...))
}

// CarrierNameGT applies the GT predicate on the "carrier_name" field.
func CarrierNameGT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGT(FieldCarrierName, v))
}

// CarrierNameGTE applies the GTE predicate on the "carrier_name" field.
func CarrierNameGTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGTE(FieldCarrierName, v))
}

// CarrierNameLT applies the LT predicate on the "carrier_name" field.
func CarrierNameLT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLT(FieldCarrierName, v))
}

// CarrierNameLTE applies the LTE predicate on the "carrier_name" field.
func CarrierNameLTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLTE(FieldCarrierName, v))
}

// CarrierNameContains applies the Contains predicate on the "carrier_name" field.
func CarrierNameContains(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContains(FieldCarrierName, v))
}

// CarrierNameHasPrefix applies the HasPrefix predicate on the "carrier_name" field.
func CarrierNameHasPrefix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasPrefix(FieldCarrierName, v))
}

// CarrierNameHasSuffix applies the HasSuffix predicate on the "carrier_name" field.
func CarrierNameHasSuffix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasSuffix(FieldCarrierName, v))
}

// CarrierNameEqualFold applies the EqualFold predicate on the "carrier_name" field.
func CarrierNameEqualFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEqualFold(FieldCarrierName, v))
}

// CarrierNameContainsFold applies the ContainsFold predicate on the "carrier_name" field.
func CarrierNameContainsFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContainsFold(FieldCarrierName, v))
}

// DoctorNameEQ applies the EQ predicate on the "doctor_name" field.
func DoctorNameEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldDoctorName, v))
}

// DoctorNameNEQ applies the NEQ predicate on the "doctor_name" field.
func DoctorNameNEQ(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldDoctorName, v))
}

// DoctorNameIn applies the In predicate on the "doctor_name" field.
func DoctorNameIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldDoctorName, vs...))
}

// DoctorNameNotIn applies the NotIn predicate on the "doctor_name" field.
func DoctorNameNotIn(vs ...string) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldDoctorName, vs...))
}

// DoctorNameGT applies the GT predicate on the "doctor_name" field.
func DoctorNameGT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGT(FieldDoctorName, v))
}

// DoctorNameGTE applies the GTE predicate on the "doctor_name" field.
func DoctorNameGTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldGTE(FieldDoctorName, v))
}

// DoctorNameLT applies the LT predicate on the "doctor_name" field.
func DoctorNameLT(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLT(FieldDoctorName, v))
}

// DoctorNameLTE applies the LTE predicate on the "doctor_name" field.
func DoctorNameLTE(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldLTE(FieldDoctorName, v))
}

// DoctorNameContains applies the Contains predicate on the "doctor_name" field.
func DoctorNameContains(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContains(FieldDoctorName, v))
}

// DoctorNameHasPrefix applies the HasPrefix predicate on the "doctor_name" field.
func DoctorNameHasPrefix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasPrefix(FieldDoctorName, v))
}

// DoctorNameHasSuffix applies the HasSuffix predicate on the "doctor_name" field.
func DoctorNameHasSuffix(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldHasSuffix(FieldDoctorName, v))
}

// DoctorNameEqualFold applies the EqualFold predicate on the "doctor_name" field.
func DoctorNameEqualFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldEqualFold(FieldDoctorName, v))
}

// DoctorNameContainsFold applies the ContainsFold predicate on the "doctor_name" field.
func DoctorNameContainsFold(v string) predicate.Distribution {
	return predicate.Distribution(sql.FieldContainsFold(FieldDoctorName, v))
}

// IssuedAtEQ applies the EQ predicate on the "issued_at" field.
func IssuedAtEQ(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldIssuedAt, v))
}

// IssuedAtNEQ applies the NEQ predicate on the "issued_at" field.
func IssuedAtNEQ(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldIssuedAt, v))
}

// IssuedAtIn applies the In predicate on the "issued_at" field.
func IssuedAtIn(vs ...time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldIssuedAt, vs...))
}

// IssuedAtNotIn applies the NotIn predicate on the "issued_at" field.
func IssuedAtNotIn(vs ...time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldIssuedAt, vs...))
}

// IssuedAtGT applies the GT predicate on the "issued_at" field.
func IssuedAtGT(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldGT(FieldIssuedAt, v))
}

// IssuedAtGTE applies the GTE predicate on the "issued_at" field.
func IssuedAtGTE(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldGTE(FieldIssuedAt, v))
}

// IssuedAtLT applies the LT predicate on the "issued_at" field.
func IssuedAtLT(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldLT(FieldIssuedAt, v))
}

// IssuedAtLTE applies the LTE predicate on the "issued_at" field.
func IssuedAtLTE(v time.Time) predicate.Distribution {
	return predicate.Distribution(sql.FieldLTE(FieldIssuedAt, v))
}

// BagbloodIDEQ applies the EQ predicate on the "bagblood_id" field.
func BagbloodIDEQ(v uuid.UUID) predicate.Distribution {
	return predicate.Distribution(sql.FieldEQ(FieldBagbloodID, v))
}

// BagbloodIDNEQ applies the NEQ predicate on the "bagblood_id" field.
func BagbloodIDNEQ(v uuid.UUID) predicate.Distribution {
	return predicate.Distribution(sql.FieldNEQ(FieldBagbloodID, v))
}

// BagbloodIDIn applies the In predicate on the "bagblood_id" field.
func BagbloodIDIn(vs ...uuid.UUID) predicate.Distribution {
	return predicate.Distribution(sql.FieldIn(FieldBagbloodID, vs...))
}

// BagbloodIDNotIn applies the NotIn predicate on the "bagblood_id" field.
func BagbloodIDNotIn(vs ...uuid.UUID) predicate.Distribution {
	return predicate.Distribution(sql.FieldNotIn(FieldBagbloodID, vs...))
}

// HasBag applies the HasEdge predicate on the "bag" edge.
func HasBag() predicate.Distribution {
	return predicate.Distribution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BagTable, BagColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBagWith applies the HasEdge predicate on the "bag" edge with a given conditions (other predicates).
func HasBagWith(preds ...predicate.BloodBag) predicate.Distribution {
	return predicate.Distribution(func(s *sql.Selector) {
		step := newBagStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Distribution) predicate.Distribution {
	return predicate.Distribution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Distribution) predicate.Distribution {
	return predicate.Distribution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Distribution) predicate.Distribution {
	return predicate.Distribution(sql.NotPredicates(p))
}
