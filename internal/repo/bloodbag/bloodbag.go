// Code generated by ent, DO NOT EDIT.

package bloodbag

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the bloodbag type in the database.
	Label = "blood_bag"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldBagNumber holds the string denoting the bag_number field in the database.
	FieldBagNumber = "bag_number"
	// FieldBloodGroup holds the string denoting the blood_group field in the database.
	FieldBloodGroup = "blood_group"
	// FieldDonationID holds the string denoting the donation_id field in the database.
	FieldDonationID = "donation_id"
	// FieldBagType holds the string denoting the bag_type field in the database.
	FieldBagType = "bag_type"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldCollectionDate holds the string denoting the collection_date field in the database.
	FieldCollectionDate = "collection_date"
	// FieldExpireDate holds the string denoting the expire_date field in the database.
	FieldExpireDate = "expire_date"
	// FieldHbsAg holds the string denoting the hbs_ag field in the database.
	FieldHbsAg = "hbs_ag"
	// FieldHcv holds the string denoting the hcv field in the database.
	FieldHcv = "hcv"
	// FieldHiv holds the string denoting the hiv field in the database.
	FieldHiv = "hiv"
	// FieldTpha holds the string denoting the tpha field in the database.
	FieldTpha = "tpha"
	// FieldAntiHtlv holds the string denoting the anti_htlv field in the database.
	FieldAntiHtlv = "anti_htlv"
	// FieldIsDistributed holds the string denoting the is_distributed field in the database.
	FieldIsDistributed = "is_distributed"
	// FieldBiologistID holds the string denoting the biologist_id field in the database.
	FieldBiologistID = "biologist_id"
	// EdgeBiologist holds the string denoting the biologist edge name in mutations.
	EdgeBiologist = "biologist"
	// EdgeComponents holds the string denoting the components edge name in mutations.
	EdgeComponents = "components"
	// EdgeDistributions holds the string denoting the distributions edge name in mutations.
	EdgeDistributions = "distributions"
	// Table holds the table name of the bloodbag in the database.
	Table = "blood_bags"
	// BiologistTable is the table that holds the biologist relation/edge.
	BiologistTable = "blood_bags"
	// BiologistInverseTable is the table name for the Biologist entity.
	// It exists in this package in order to avoid circular dependency with the "biologist" package.
	BiologistInverseTable = "biologists"
	// BiologistColumn is the table column denoting the biologist relation/edge.
	BiologistColumn = "biologist_id"
	// ComponentsTable is the table that holds the components relation/edge.
	ComponentsTable = "components"
	// ComponentsInverseTable is the table name for the Component entity.
	// It exists in this package in order to avoid circular dependency with the "component" package.
	ComponentsInverseTable = "components"
	// ComponentsColumn is the table column denoting the components relation/edge.
	ComponentsColumn = "bagblood_id"
	// DistributionsTable is the table that holds the distributions relation/edge.
	DistributionsTable = "distributions"
	// DistributionsInverseTable is the table name for the Distribution entity.
	// It exists in this package in order to avoid circular dependency with the "distribution" package.
	DistributionsInverseTable = "distributions"
	// DistributionsColumn is the table column denoting the distributions relation/edge.
	DistributionsColumn = "bagblood_id"
)

// Columns holds all SQL columns for bloodbag fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldBagNumber,
	FieldBloodGroup,
	FieldDonationID,
	FieldBagType,
	FieldWeight,
	FieldCollectionDate,
	FieldExpireDate,
	FieldHbsAg,
	FieldHcv,
	FieldHiv,
	FieldTpha,
	FieldAntiHtlv,
	FieldIsDistributed,
	FieldBiologistID,
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
	// BagNumberValidator is a validator for the "bag_number" field. It is called by the builders before save.
	BagNumberValidator func(string) error
	// BloodGroupValidator is a validator for the "blood_group" field. It is called by the builders before save.
	BloodGroupValidator func(string) error
	// DonationIDValidator is a validator for the "donation_id" field. It is called by the builders before save.
	DonationIDValidator func(string) error
	// BagTypeValidator is a validator for the "bag_type" field. It is called by the builders before save.
	BagTypeValidator func(string) error
	// HbsAgValidator is a validator for the "hbs_ag" field. It is called by the builders before save.
	HbsAgValidator func(string) error
	// HcvValidator is a validator for the "hcv" field. It is called by the builders before save.
	HcvValidator func(string) error
	// HivValidator is a validator for the "hiv" field. It is called by the builders before save.
	HivValidator func(string) error
	// TphaValidator is a validator for the "tpha" field. It is called by the builders before save.
	TphaValidator func(string) error
	// AntiHtlvValidator is a validator for the "anti_htlv" field. It is called by the builders before save.
	AntiHtlvValidator func(string) error
	// DefaultIsDistributed holds the default value on creation for the "is_distributed" field.
	DefaultIsDistributed bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BloodBag queries.
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

// ByBagNumber orders the results by the bag_number field.
func ByBagNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBagNumber, opts...).ToFunc()
}

// ByBloodGroup orders the results by the blood_group field.
func ByBloodGroup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBloodGroup, opts...).ToFunc()
}

// ByDonationID orders the results by the donation_id field.
func ByDonationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDonationID, opts...).ToFunc()
}

// ByBagType orders the results by the bag_type field.
func ByBagType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBagType, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}

// ByCollectionDate orders the results by the collection_date field.
func ByCollectionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollectionDate, opts...).ToFunc()
}

// ByExpireDate orders the results by the expire_date field.
func ByExpireDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpireDate, opts...).ToFunc()
}

// ByHbsAg orders the results by the hbs_ag field.
func ByHbsAg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHbsAg, opts...).ToFunc()
}

// ByHcv orders the results by the hcv field.
func ByHcv(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHcv, opts...).ToFunc()
}

// ByHiv orders the results by the hiv field.
func ByHiv(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHiv, opts...).ToFunc()
}

// ByTpha orders the results by the tpha field.
func ByTpha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTpha, opts...).ToFunc()
}

// ByAntiHtlv orders the results by the anti_htlv field.
func ByAntiHtlv(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAntiHtlv, opts...).ToFunc()
}

// ByIsDistributed orders the results by the is_distributed field.
func ByIsDistributed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDistributed, opts...).ToFunc()
}

// ByBiologistID orders the results by the biologist_id field.
func ByBiologistID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBiologistID, opts...).ToFunc()
}

// ByBiologistField orders the results by biologist field.
func ByBiologistField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBiologistStep(), sql.OrderByField(field, opts...))
	}
}

// ByComponentsCount orders the results by components count.
func ByComponentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newComponentsStep(), opts...)
	}
}

// ByComponents orders the results by components terms.
func ByComponents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newComponentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDistributionsCount orders the results by distributions count.
func ByDistributionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDistributionsStep(), opts...)
	}
}

// ByDistributions orders the results by distributions terms.
func ByDistributions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDistributionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBiologistStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BiologistInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BiologistTable, BiologistColumn),
	)
}
func newComponentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ComponentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ComponentsTable, ComponentsColumn),
	)
}
func newDistributionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DistributionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DistributionsTable, DistributionsColumn),
	)
}
