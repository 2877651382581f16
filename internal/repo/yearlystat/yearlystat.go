// Code generated by ent, DO NOT EDIT.

package yearlystat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the yearlystat type in the database.
	Label = "yearly_stat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldTotalBags holds the string denoting the total_bags field in the database.
	FieldTotalBags = "total_bags"
	// FieldTotalCps holds the string denoting the total_cps field in the database.
	FieldTotalCps = "total_cps"
	// FieldTotalPfc holds the string denoting the total_pfc field in the database.
	FieldTotalPfc = "total_pfc"
	// FieldTotalCg holds the string denoting the total_cg field in the database.
	FieldTotalCg = "total_cg"
	// FieldTotalExpired holds the string denoting the total_expired field in the database.
	FieldTotalExpired = "total_expired"
	// FieldRecordedBy holds the string denoting the recorded_by field in the database.
	FieldRecordedBy = "recorded_by"
	// Table holds the table name of the yearlystat in the database.
	Table = "yearly_stats"
)

// Columns holds all SQL columns for yearlystat fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldYear,
	FieldTotalBags,
	FieldTotalCps,
	FieldTotalPfc,
	FieldTotalCg,
	FieldTotalExpired,
	FieldRecordedBy,
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
	// YearValidator is a validator for the "year" field. It is called by the builders before save.
	YearValidator func(int) error
	// DefaultTotalBags holds the default value on creation for the "total_bags" field.
	DefaultTotalBags int
	// DefaultTotalCps holds the default value on creation for the "total_cps" field.
	DefaultTotalCps int
	// DefaultTotalPfc holds the default value on creation for the "total_pfc" field.
	DefaultTotalPfc int
	// DefaultTotalCg holds the default value on creation for the "total_cg" field.
	DefaultTotalCg int
	// DefaultTotalExpired holds the default value on creation for the "total_expired" field.
	DefaultTotalExpired int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the YearlyStat queries.
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

// ByYear orders the results by the year field.
func ByYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYear, opts...).ToFunc()
}

// ByTotalBags orders the results by the total_bags field.
func ByTotalBags(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalBags, opts...).ToFunc()
}

// ByTotalCps orders the results by the total_cps field.
func ByTotalCps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCps, opts...).ToFunc()
}

// ByTotalPfc orders the results by the total_pfc field.
func ByTotalPfc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPfc, opts...).ToFunc()
}

// ByTotalCg orders the results by the total_cg field.
func ByTotalCg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCg, opts...).ToFunc()
}

// ByTotalExpired orders the results by the total_expired field.
func ByTotalExpired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalExpired, opts...).ToFunc()
}

// ByRecordedBy orders the results by the recorded_by field.
func ByRecordedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedBy, opts...).ToFunc()
}
