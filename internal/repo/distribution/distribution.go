// Code generated by ent, DO NOT EDIT.

package distribution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the distribution type in the database.
	Label = "distribution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDistributionNumber holds the string denoting the distribution_number field in the database.
	FieldDistributionNumber = "distribution_number"
	// FieldReceiverFirstName holds the string denoting the receiver_first_name field in the database.
	FieldReceiverFirstName = "receiver_first_name"
	// FieldReceiverLastName holds the string denoting the receiver_last_name field in the database.
	FieldReceiverLastName = "receiver_last_name"
	// FieldReceiverAge holds the string denoting the receiver_age field in the database.
	FieldReceiverAge = "receiver_age"
	// FieldReceiverSex holds the string denoting the receiver_sex field in the database.
	FieldReceiverSex = "receiver_sex"
	// FieldEstablishment holds the string denoting the establishment field in the database.
	FieldEstablishment = "establishment"
	// FieldRequestedBloodGroup holds the string denoting the requested_blood_group field in the database.
	FieldRequestedBloodGroup = "requested_blood_group"
	// FieldNumberOfBags holds the string denoting the number_of_bags field in the database.
	FieldNumberOfBags = "number_of_bags"
	// FieldService holds the string denoting the service field in the database.
	FieldService = "service"
	// FieldCarrierName holds the string denoting the carrier_name field in the database.
	FieldCarrierName = "carrier_name"
	// FieldDoctorName holds the string denoting the doctor_name field in the database.
	FieldDoctorName = "doctor_name"
	// FieldIssuedAt holds the string denoting the issued_at field in the database.
	FieldIssuedAt = "issued_at"
	// FieldBagbloodID holds the string denoting the bagblood_id field in the database.
	FieldBagbloodID = "bagblood_id"
	// EdgeBag holds the string denoting the bag edge name in mutations.
	EdgeBag = "bag"
	// Table holds the table name of the distribution in the database.
	Table = "distributions"
	// BagTable is the table that holds the bag relation/edge.
	BagTable = "distributions"
	// BagInverseTable is the table name for the BloodBag entity.
	// It exists in this package in order to avoid circular dependency with the "bloodbag" package.
	BagInverseTable = "blood_bags"
	// BagColumn is the table column denoting the bag relation/edge.
	BagColumn = "bagblood_id"
)

// Columns holds all SQL columns for distribution fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDistributionNumber,
	FieldReceiverFirstName,
	FieldReceiverLastName,
	FieldReceiverAge,
	FieldReceiverSex,
	FieldEstablishment,
	FieldRequestedBloodGroup,
	FieldNumberOfBags,
	FieldService,
	FieldCarrierName,
	FieldDoctorName,
	FieldIssuedAt,
	FieldBagbloodID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DistributionNumberValidator is a validator for the "distribution_number" field. It is called by the builders before save.
	DistributionNumberValidator func(string) error
	// ReceiverFirstNameValidator is a validator for the "receiver_first_name" field. It is called by the builders before save.
	ReceiverFirstNameValidator func(string) error
	// ReceiverLastNameValidator is a validator for the "receiver_last_name" field. It is called by the builders before save.
	ReceiverLastNameValidator func(string) error
	// ReceiverAgeValidator is a validator for the "receiver_age" field. It is called by the builders before save.
	ReceiverAgeValidator func(int) error
	// ReceiverSexValidator is a validator for the "receiver_sex" field. It is called by the builders before save.
	ReceiverSexValidator func(string) error
	// EstablishmentValidator is a validator for the "establishment" field. It is called by the builders before save.
	EstablishmentValidator func(string) error
	// RequestedBloodGroupValidator is a validator for the "requested_blood_group" field. It is called by the builders before save.
	RequestedBloodGroupValidator func(string) error
	// NumberOfBagsValidator is a validator for the "number_of_bags" field. It is called by the builders before save.
	NumberOfBagsValidator func(int) error
	// ServiceValidator is a validator for the "service" field. It is called by the builders before save.
	ServiceValidator func(string) error
	// CarrierNameValidator is a validator for the "carrier_name" field. It is called by the builders before save.
	CarrierNameValidator func(string) error
	// DoctorNameValidator is a validator for the "doctor_name" field. It is called by the builders before save.
	DoctorNameValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Distribution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDistributionNumber orders the results by the distribution_number field.
func ByDistributionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistributionNumber, opts...).ToFunc()
}

// ByReceiverFirstName orders the results by the receiver_first_name field.
func ByReceiverFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceiverFirstName, opts...).ToFunc()
}

// ByReceiverLastName orders the results by the receiver_last_name field.
func ByReceiverLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceiverLastName, opts...).ToFunc()
}

// ByReceiverAge orders the results by the receiver_age field.
func ByReceiverAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceiverAge, opts...).ToFunc()
}

// ByReceiverSex orders the results by the receiver_sex field.
func ByReceiverSex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceiverSex, opts...).ToFunc()
}

// ByEstablishment orders the results by the establishment field.
func ByEstablishment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstablishment, opts...).ToFunc()
}

// ByRequestedBloodGroup orders the results by the requested_blood_group field.
func ByRequestedBloodGroup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedBloodGroup, opts...).ToFunc()
}

// ByNumberOfBags orders the results by the number_of_bags field.
func ByNumberOfBags(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumberOfBags, opts...).ToFunc()
}

// ByService orders the results by the service field.
func ByService(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldService, opts...).ToFunc()
}

// ByCarrierName orders the results by the carrier_name field.
func ByCarrierName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCarrierName, opts...).ToFunc()
}

// ByDoctorName orders the results by the doctor_name field.
func ByDoctorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorName, opts...).ToFunc()
}

// ByIssuedAt orders the results by the issued_at field.
func ByIssuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssuedAt, opts...).ToFunc()
}

// ByBagbloodID orders the results by the bagblood_id field.
func ByBagbloodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBagbloodID, opts...).ToFunc()
}

// ByBagField orders the results by bag field.
func ByBagField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBagStep(), sql.OrderByField(field, opts...))
	}
}
func newBagStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BagInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BagTable, BagColumn),
	)
}
