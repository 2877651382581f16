// Code generated by ent, DO NOT EDIT.

package component

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the component type in the database.
	Label = "component"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldExpireDate holds the string denoting the expire_date field in the database.
	FieldExpireDate = "expire_date"
	// FieldIsDistributed holds the string denoting the is_distributed field in the database.
	FieldIsDistributed = "is_distributed"
	// FieldBagbloodID holds the string denoting the bagblood_id field in the database.
	FieldBagbloodID = "bagblood_id"
	// EdgeBag holds the string denoting the bag edge name in mutations.
	EdgeBag = "bag"
	// Table holds the table name of the component in the database.
	Table = "components"
	// BagTable is the table that holds the bag relation/edge.
	BagTable = "components"
	// BagInverseTable is the table name for the BloodBag entity.
	// It exists in this package in order to avoid circular dependency with the "bloodbag" package.
	BagInverseTable = "blood_bags"
	// BagColumn is the table column denoting the bag relation/edge.
	BagColumn = "bagblood_id"
)

// Columns holds all SQL columns for component fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldType,
	FieldWeight,
	FieldExpireDate,
	FieldIsDistributed,
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
	// DefaultIsDistributed holds the default value on creation for the "is_distributed" field.
	DefaultIsDistributed bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeCps Type = "cps"
	TypePfc Type = "pfc"
	TypeCg  Type = "cg"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeCps, TypePfc, TypeCg:
		return nil
	default:
		return fmt.Errorf("component: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Component queries.
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

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}

// ByExpireDate orders the results by the expire_date field.
func ByExpireDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpireDate, opts...).ToFunc()
}

// ByIsDistributed orders the results by the is_distributed field.
func ByIsDistributed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDistributed, opts...).ToFunc()
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
