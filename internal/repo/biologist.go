// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hemobank/hemobank_backend/internal/repo/biologist"
)

// Biologist is the model entity for the Biologist schema.
type Biologist struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FirstName holds the value of the "first_name" field.
	FirstName string `json:"first_name,omitempty"`
	// LastName holds the value of the "last_name" field.
	LastName string `json:"last_name,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// PhoneNumber holds the value of the "phone_number" field.
	PhoneNumber *string `json:"phone_number,omitempty"`
	// PasswordHash holds the value of the "password_hash" field.
	PasswordHash string `json:"-"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BiologistQuery when eager-loading is set.
	Edges        BiologistEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BiologistEdges holds the relations/edges for other nodes in the graph.
type BiologistEdges struct {
	// BloodBags holds the value of the blood_bags edge.
	BloodBags []*BloodBag `json:"blood_bags,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BloodBagsOrErr returns the BloodBags value or an error if the edge
// was not loaded in eager-loading.
func (e BiologistEdges) BloodBagsOrErr() ([]*BloodBag, error) {
	if e.loadedTypes[0] {
		return e.BloodBags, nil
	}
	return nil, &NotLoadedError{edge: "blood_bags"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Biologist) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case biologist.FieldFirstName, biologist.FieldLastName, biologist.FieldUsername, biologist.FieldEmail, biologist.FieldPhoneNumber, biologist.FieldPasswordHash:
			values[i] = new(sql.NullString)
		case biologist.FieldCreatedAt, biologist.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case biologist.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Biologist fields.
func (_m *Biologist) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case biologist.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case biologist.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case biologist.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case biologist.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = value.String
			}
		case biologist.FieldLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_name", values[i])
			} else if value.Valid {
				_m.LastName = value.String
			}
		case biologist.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case biologist.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case biologist.FieldPhoneNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone_number", values[i])
			} else if value.Valid {
				_m.PhoneNumber = new(string)
				*_m.PhoneNumber = value.String
			}
		case biologist.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				_m.PasswordHash = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Biologist.
// This includes values selected through modifiers, order, etc.
func (_m *Biologist) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBloodBags queries the "blood_bags" edge of the Biologist entity.
func (_m *Biologist) QueryBloodBags() *BloodBagQuery {
	return NewBiologistClient(_m.config).QueryBloodBags(_m)
}

// Update returns a builder for updating this Biologist.
// Note that you need to call Biologist.Unwrap() before calling this method if this Biologist
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Biologist) Update() *BiologistUpdateOne {
	return NewBiologistClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Biologist entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Biologist) Unwrap() *Biologist {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Biologist is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Biologist) String() string {
	var builder strings.Builder
	builder.WriteString("Biologist(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("first_name=")
	builder.WriteString(_m.FirstName)
	builder.WriteString(", ")
	builder.WriteString("last_name=")
	builder.WriteString(_m.LastName)
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	if v := _m.PhoneNumber; v != nil {
		builder.WriteString("phone_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("password_hash=<sensitive>")
	builder.WriteByte(')')
	return builder.String()
}

// Biologists is a parsable slice of Biologist.
type Biologists []*Biologist
