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
	"github.com/hemobank/hemobank_backend/internal/repo/distribution"
)

// Distribution is the model entity for the Distribution schema.
type Distribution struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DistributionNumber holds the value of the "distribution_number" field.
	DistributionNumber string `json:"distribution_number,omitempty"`
	// ReceiverFirstName holds the value of the "receiver_first_name" field.
	ReceiverFirstName string `json:"receiver_first_name,omitempty"`
	// ReceiverLastName holds the value of the "receiver_last_name" field.
	ReceiverLastName string `json:"receiver_last_name,omitempty"`
	// ReceiverAge holds the value of the "receiver_age" field.
	ReceiverAge int `json:"receiver_age,omitempty"`
	// ReceiverSex holds the value of the "receiver_sex" field.
	ReceiverSex string `json:"receiver_sex,omitempty"`
	// Establishment holds the value of the "establishment" field.
	Establishment string `json:"establishment,omitempty"`
	// RequestedBloodGroup holds the value of the "requested_blood_group" field.
	RequestedBloodGroup string `json:"requested_blood_group,omitempty"`
	// NumberOfBags holds the value of the "number_of_bags" field.
	NumberOfBags int `json:"number_of_bags,omitempty"`
	// Hospital service the bag is issued to
	Service string `json:"service,omitempty"`
	// CarrierName holds the value of the "carrier_name" field.
	CarrierName string `json:"carrier_name,omitempty"`
	// DoctorName holds the value of the "doctor_name" field.
	DoctorName string `json:"doctor_name,omitempty"`
	// IssuedAt holds the value of the "issued_at" field.
	IssuedAt time.Time `json:"issued_at,omitempty"`
	// FK → blood_bags.id (distributed bag)
	BagbloodID uuid.UUID `json:"bagblood_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DistributionQuery when eager-loading is set.
	Edges        DistributionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DistributionEdges holds the relations/edges for other nodes in the graph.
type DistributionEdges struct {
	// Bag holds the value of the bag edge.
	Bag *BloodBag `json:"bag,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BagOrErr returns the Bag value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DistributionEdges) BagOrErr() (*BloodBag, error) {
	if e.Bag != nil {
		return e.Bag, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: bloodbag.Label}
	}
	return nil, &NotLoadedError{edge: "bag"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Distribution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case distribution.FieldReceiverAge, distribution.FieldNumberOfBags:
			values[i] = new(sql.NullInt64)
		case distribution.FieldDistributionNumber, distribution.FieldReceiverFirstName, distribution.FieldReceiverLastName, distribution.FieldReceiverSex, distribution.FieldEstablishment, distribution.FieldRequestedBloodGroup, distribution.FieldService, distribution.FieldCarrierName, distribution.FieldDoctorName:
			values[i] = new(sql.NullString)
		case distribution.FieldCreatedAt, distribution.FieldUpdatedAt, distribution.FieldIssuedAt:
			values[i] = new(sql.NullTime)
		case distribution.FieldID, distribution.FieldBagbloodID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Distribution fields.
func (_m *Distribution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case distribution.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case distribution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case distribution.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case distribution.FieldDistributionNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field distribution_number", values[i])
			} else if value.Valid {
				_m.DistributionNumber = value.String
			}
		case distribution.FieldReceiverFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field receiver_first_name", values[i])
			} else if value.Valid {
				_m.ReceiverFirstName = value.String
			}
		case distribution.FieldReceiverLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field receiver_last_name", values[i])
			} else if value.Valid {
				_m.ReceiverLastName = value.String
			}
		case distribution.FieldReceiverAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field receiver_age", values[i])
			} else if value.Valid {
				_m.ReceiverAge = int(value.Int64)
			}
		case distribution.FieldReceiverSex:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field receiver_sex", values[i])
			} else if value.Valid {
				_m.ReceiverSex = value.String
			}
		case distribution.FieldEstablishment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field establishment", values[i])
			} else if value.Valid {
				_m.Establishment = value.String
			}
		case distribution.FieldRequestedBloodGroup:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requested_blood_group", values[i])
			} else if value.Valid {
				_m.RequestedBloodGroup = value.String
			}
		case distribution.FieldNumberOfBags:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number_of_bags", values[i])
			} else if value.Valid {
				_m.NumberOfBags = int(value.Int64)
			}
		case distribution.FieldService:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service", values[i])
			} else if value.Valid {
				_m.Service = value.String
			}
		case distribution.FieldCarrierName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field carrier_name", values[i])
			} else if value.Valid {
				_m.CarrierName = value.String
			}
		case distribution.FieldDoctorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_name", values[i])
			} else if value.Valid {
				_m.DoctorName = value.String
			}
		case distribution.FieldIssuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field issued_at", values[i])
			} else if value.Valid {
				_m.IssuedAt = value.Time
			}
		case distribution.FieldBagbloodID:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Distribution.
// This includes values selected through modifiers, order, etc.
func (_m *Distribution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBag queries the "bag" edge of the Distribution entity.
func (_m *Distribution) QueryBag() *BloodBagQuery {
	return NewDistributionClient(_m.config).QueryBag(_m)
}

// Update returns a builder for updating this Distribution.
// Note that you need to call Distribution.Unwrap() before calling this method if this Distribution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Distribution) Update() *DistributionUpdateOne {
	return NewDistributionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Distribution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Distribution) Unwrap() *Distribution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Distribution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Distribution) String() string {
	var builder strings.Builder
	builder.WriteString("Distribution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("distribution_number=")
	builder.WriteString(_m.DistributionNumber)
	builder.WriteString(", ")
	builder.WriteString("receiver_first_name=")
	builder.WriteString(_m.ReceiverFirstName)
	builder.WriteString(", ")
	builder.WriteString("receiver_last_name=")
	builder.WriteString(_m.ReceiverLastName)
	builder.WriteString(", ")
	builder.WriteString("receiver_age=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReceiverAge))
	builder.WriteString(", ")
	builder.WriteString("receiver_sex=")
	builder.WriteString(_m.ReceiverSex)
	builder.WriteString(", ")
	builder.WriteString("establishment=")
	builder.WriteString(_m.Establishment)
	builder.WriteString(", ")
	builder.WriteString("requested_blood_group=")
	builder.WriteString(_m.RequestedBloodGroup)
	builder.WriteString(", ")
	builder.WriteString("number_of_bags=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumberOfBags))
	builder.WriteString(", ")
	builder.WriteString("service=")
	builder.WriteString(_m.Service)
	builder.WriteString(", ")
	builder.WriteString("carrier_name=")
	builder.WriteString(_m.CarrierName)
	builder.WriteString(", ")
	builder.WriteString("doctor_name=")
	builder.WriteString(_m.DoctorName)
	builder.WriteString(", ")
	builder.WriteString("issued_at=")
	builder.WriteString(_m.IssuedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("bagblood_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BagbloodID))
	builder.WriteByte(')')
	return builder.String()
}

// Distributions is a parsable slice of Distribution.
type Distributions []*Distribution
