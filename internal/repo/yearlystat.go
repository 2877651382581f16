// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hemobank/hemobank_backend/internal/repo/yearlystat"
)

// YearlyStat is the model entity for the YearlyStat schema.
type YearlyStat struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Year holds the value of the "year" field.
	Year int `json:"year,omitempty"`
	// TotalBags holds the value of the "total_bags" field.
	TotalBags int `json:"total_bags,omitempty"`
	// TotalCps holds the value of the "total_cps" field.
	TotalCps int `json:"total_cps,omitempty"`
	// TotalPfc holds the value of the "total_pfc" field.
	TotalPfc int `json:"total_pfc,omitempty"`
	// TotalCg holds the value of the "total_cg" field.
	TotalCg int `json:"total_cg,omitempty"`
	// TotalExpired holds the value of the "total_expired" field.
	TotalExpired int `json:"total_expired,omitempty"`
	// Principal who saved the snapshot
	RecordedBy   *uuid.UUID `json:"recorded_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*YearlyStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case yearlystat.FieldRecordedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case yearlystat.FieldYear, yearlystat.FieldTotalBags, yearlystat.FieldTotalCps, yearlystat.FieldTotalPfc, yearlystat.FieldTotalCg, yearlystat.FieldTotalExpired:
			values[i] = new(sql.NullInt64)
		case yearlystat.FieldCreatedAt, yearlystat.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case yearlystat.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the YearlyStat fields.
func (_m *YearlyStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case yearlystat.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case yearlystat.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case yearlystat.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case yearlystat.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = int(value.Int64)
			}
		case yearlystat.FieldTotalBags:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_bags", values[i])
			} else if value.Valid {
				_m.TotalBags = int(value.Int64)
			}
		case yearlystat.FieldTotalCps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cps", values[i])
			} else if value.Valid {
				_m.TotalCps = int(value.Int64)
			}
		case yearlystat.FieldTotalPfc:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_pfc", values[i])
			} else if value.Valid {
				_m.TotalPfc = int(value.Int64)
			}
		case yearlystat.FieldTotalCg:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cg", values[i])
			} else if value.Valid {
				_m.TotalCg = int(value.Int64)
			}
		case yearlystat.FieldTotalExpired:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_expired", values[i])
			} else if value.Valid {
				_m.TotalExpired = int(value.Int64)
			}
		case yearlystat.FieldRecordedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_by", values[i])
			} else if value.Valid {
				_m.RecordedBy = new(uuid.UUID)
				*_m.RecordedBy = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the YearlyStat.
// This includes values selected through modifiers, order, etc.
func (_m *YearlyStat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this YearlyStat.
// Note that you need to call YearlyStat.Unwrap() before calling this method if this YearlyStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *YearlyStat) Update() *YearlyStatUpdateOne {
	return NewYearlyStatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the YearlyStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *YearlyStat) Unwrap() *YearlyStat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: YearlyStat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *YearlyStat) String() string {
	var builder strings.Builder
	builder.WriteString("YearlyStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("year=")
	builder.WriteString(fmt.Sprintf("%v", _m.Year))
	builder.WriteString(", ")
	builder.WriteString("total_bags=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalBags))
	builder.WriteString(", ")
	builder.WriteString("total_cps=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCps))
	builder.WriteString(", ")
	builder.WriteString("total_pfc=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPfc))
	builder.WriteString(", ")
	builder.WriteString("total_cg=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCg))
	builder.WriteString(", ")
	builder.WriteString("total_expired=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalExpired))
	builder.WriteString(", ")
	if v := _m.RecordedBy; v != nil {
		builder.WriteString("recorded_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// YearlyStats is a parsable slice of YearlyStat.
type YearlyStats []*YearlyStat
