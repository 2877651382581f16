// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hemobank/hemobank_backend/internal/repo/bloodbag"
	"github.com/hemobank/hemobank_backend/internal/repo/component"
)

// Component is the model entity for the Component schema.
type Component struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Type holds the value of the "type" field.
	Type component.Type `json:"type,omitempty"`
	// Weight in grams
	Weight float64 `json:"weight,omitempty"`
	// ExpireDate holds the value of the "expire_date" field.
	ExpireDate time.Time `json:"expire_date,omitempty"`
	// IsDistributed holds the value of the "is_distributed" field.
	IsDistributed bool `json:"is_distributed,omitempty"`
	// FK → blood_bags.id (parent bag)
	BagbloodID uuid.UUID `json:"bagblood_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ComponentQuery when eager-loading is set.
	Edges        ComponentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ComponentEdges holds the relations/edges for other nodes in the graph.
type ComponentEdges struct {
	// Bag holds the value of the bag edge.
	Bag *BloodBag `json:"bag,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BagOrErr returns the Bag value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ComponentEdges) BagOrErr() (*BloodBag, error) {
	if e.Bag != nil {
		return e.Bag, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: bloodbag.Label}
	}
	return nil, &NotLoadedError{edge: "bag"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Component) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case component.FieldIsDistributed:
			values[i] = new(sql.NullBool)
		case component.FieldWeight:
			values[i] = new(sql.NullFloat64)
		case component.FieldType:
			values[i] = new(sql.NullString)
		case component.FieldCreatedAt, component.FieldUpdatedAt, component.FieldExpireDate:
			values[i] = new(sql.NullTime)
		case component.FieldID, component.FieldBagbloodID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Component fields.
func (_m *Component) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case component.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case component.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case component.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case component.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = component.Type(value.String)
			}
		case component.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = value.Float64
			}
		case component.FieldExpireDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expire_date", values[i])
			} else if value.Valid {
				_m.ExpireDate = value.Time
			}
		case component.FieldIsDistributed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_distributed", values[i])
			} else if value.Valid {
				_m.IsDistributed = value.Bool
			}
		case component.FieldBagbloodID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field bagblood_id", values[i])
			} else if value != nil {
				_m.BagbloodID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Component.
// This includes values selected through modifiers, order, etc.
func (_m *Component) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBag queries the "bag" edge of the Component entity.
func (_m *Component) QueryBag() *BloodBagQuery {
	return NewComponentClient(_m.config).QueryBag(_m)
}

// Update returns a builder for updating this Component.
// Note that you need to call Component.Unwrap() before calling this method if this Component
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Component) Update() *ComponentUpdateOne {
	return NewComponentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Component entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Component) Unwrap() *Component {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Component is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Component) String() string {
	var builder strings.Builder
	builder.WriteString("Component(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
	builder.WriteString(", ")
	builder.WriteString("expire_date=")
	builder.WriteString(_m.ExpireDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_distributed=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDistributed))
	builder.WriteString(", ")
	builder.WriteString("bagblood_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BagbloodID))
	builder.WriteByte(')')
	return builder.String()
}

// Components is a parsable slice of Component.
type Components []*Component
