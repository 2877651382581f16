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
	"github.com/hemobank/hemobank_backend/internal/repo/bloodbag"
)

// BloodBag is the model entity for the BloodBag schema.
type BloodBag struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// External label printed on the bag
	BagNumber string `json:"bag_number,omitempty"`
	// BloodGroup holds the value of the "blood_group" field.
	BloodGroup string `json:"blood_group,omitempty"`
	// Donation reference (simdon)
	DonationID string `json:"donation_id,omitempty"`
	// BagType holds the value of the "bag_type" field.
	BagType string `json:"bag_type,omitempty"`
	// Weight in grams
	Weight float64 `json:"weight,omitempty"`
	// CollectionDate holds the value of the "collection_date" field.
	CollectionDate time.Time `json:"collection_date,omitempty"`
	// collection_date + 35 days
	ExpireDate time.Time `json:"expire_date,omitempty"`
	// HbsAg holds the value of the "hbs_ag" field.
	HbsAg string `json:"hbs_ag,omitempty"`
	// Hcv holds the value of the "hcv" field.
	Hcv string `json:"hcv,omitempty"`
	// Hiv holds the value of the "hiv" field.
	Hiv string `json:"hiv,omitempty"`
	// Tpha holds the value of the "tpha" field.
	Tpha string `json:"tpha,omitempty"`
	// AntiHtlv holds the value of the "anti_htlv" field.
	AntiHtlv string `json:"anti_htlv,omitempty"`
	// IsDistributed holds the value of the "is_distributed" field.
	IsDistributed bool `json:"is_distributed,omitempty"`
	// FK → biologists.id (registering biologist)
	BiologistID uuid.UUID `json:"biologist_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BloodBagQuery when eager-loading is set.
	Edges        BloodBagEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BloodBagEdges holds the relations/edges for other nodes in the graph.
type BloodBagEdges struct {
	// Biologist holds the value of the biologist edge.
	Biologist *Biologist `json:"biologist,omitempty"`
	// Components holds the value of the components edge.
	Components []*Component `json:"components,omitempty"`
	// Distributions holds the value of the distributions edge.
	Distributions []*Distribution `json:"distributions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// BiologistOrErr returns the Biologist value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BloodBagEdges) BiologistOrErr() (*Biologist, error) {
	if e.Biologist != nil {
		return e.Biologist, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: biologist.Label}
	}
	return nil, &NotLoadedError{edge: "biologist"}
}

// ComponentsOrErr returns the Components value or an error if the edge
// was not loaded in eager-loading.
func (e BloodBagEdges) ComponentsOrErr() ([]*Component, error) {
	if e.loadedTypes[1] {
		return e.Components, nil
	}
	return nil, &NotLoadedError{edge: "components"}
}

// DistributionsOrErr returns the Distributions value or an error if the edge
// was not loaded in eager-loading.
func (e BloodBagEdges) DistributionsOrErr() ([]*Distribution, error) {
	if e.loadedTypes[2] {
		return e.Distributions, nil
	}
	return nil, &NotLoadedError{edge: "distributions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BloodBag) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bloodbag.FieldIsDistributed:
			values[i] = new(sql.NullBool)
		case bloodbag.FieldWeight:
			values[i] = new(sql.NullFloat64)
		case bloodbag.FieldBagNumber, bloodbag.FieldBloodGroup, bloodbag.FieldDonationID, bloodbag.FieldBagType, bloodbag.FieldHbsAg, bloodbag.FieldHcv, bloodbag.FieldHiv, bloodbag.FieldTpha, bloodbag.FieldAntiHtlv:
			values[i] = new(sql.NullString)
		case bloodbag.FieldCreatedAt, bloodbag.FieldUpdatedAt, bloodbag.FieldCollectionDate, bloodbag.FieldExpireDate:
			values[i] = new(sql.NullTime)
		case bloodbag.FieldID, bloodbag.FieldBiologistID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BloodBag fields.
func (_m *BloodBag) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bloodbag.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case bloodbag.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case bloodbag.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case bloodbag.FieldBagNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bag_number", values[i])
			} else if value.Valid {
				_m.BagNumber = value.String
			}
		case bloodbag.FieldBloodGroup:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blood_group", values[i])
			} else if value.Valid {
				_m.BloodGroup = value.String
			}
		case bloodbag.FieldDonationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field donation_id", values[i])
			} else if value.Valid {
				_m.DonationID = value.String
			}
		case bloodbag.FieldBagType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bag_type", values[i])
			} else if value.Valid {
				_m.BagType = value.String
			}
		case bloodbag.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = value.Float64
			}
		case bloodbag.FieldCollectionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field collection_date", values[i])
			} else if value.Valid {
				_m.CollectionDate = value.Time
			}
		case bloodbag.FieldExpireDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expire_date", values[i])
			} else if value.Valid {
				_m.ExpireDate = value.Time
			}
		case bloodbag.FieldHbsAg:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hbs_ag", values[i])
			} else if value.Valid {
				_m.HbsAg = value.String
			}
		case bloodbag.FieldHcv:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hcv", values[i])
			} else if value.Valid {
				_m.Hcv = value.String
			}
		case bloodbag.FieldHiv:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hiv", values[i])
			} else if value.Valid {
				_m.Hiv = value.String
			}
		case bloodbag.FieldTpha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tpha", values[i])
			} else if value.Valid {
				_m.Tpha = value.String
			}
		case bloodbag.FieldAntiHtlv:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anti_htlv", values[i])
			} else if value.Valid {
				_m.AntiHtlv = value.String
			}
		case bloodbag.FieldIsDistributed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_distributed", values[i])
			} else if value.Valid {
				_m.IsDistributed = value.Bool
			}
		case bloodbag.FieldBiologistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field biologist_id", values[i])
			} else if value != nil {
				_m.BiologistID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BloodBag.
// This includes values selected through modifiers, order, etc.
func (_m *BloodBag) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBiologist queries the "biologist" edge of the BloodBag entity.
func (_m *BloodBag) QueryBiologist() *BiologistQuery {
	return NewBloodBagClient(_m.config).QueryBiologist(_m)
}

// QueryComponents queries the "components" edge of the BloodBag entity.
func (_m *BloodBag) QueryComponents() *ComponentQuery {
	return NewBloodBagClient(_m.config).QueryComponents(_m)
}

// QueryDistributions queries the "distributions" edge of the BloodBag entity.
func (_m *BloodBag) QueryDistributions() *DistributionQuery {
	return NewBloodBagClient(_m.config).QueryDistributions(_m)
}

// Update returns a builder for updating this BloodBag.
// Note that you need to call BloodBag.Unwrap() before calling this method if this BloodBag
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BloodBag) Update() *BloodBagUpdateOne {
	return NewBloodBagClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BloodBag entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BloodBag) Unwrap() *BloodBag {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: BloodBag is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BloodBag) String() string {
	var builder strings.Builder
	builder.WriteString("BloodBag(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("bag_number=")
	builder.WriteString(_m.BagNumber)
	builder.WriteString(", ")
	builder.WriteString("blood_group=")
	builder.WriteString(_m.BloodGroup)
	builder.WriteString(", ")
	builder.WriteString("donation_id=")
	builder.WriteString(_m.DonationID)
	builder.WriteString(", ")
	builder.WriteString("bag_type=")
	builder.WriteString(_m.BagType)
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
	builder.WriteString(", ")
	builder.WriteString("collection_date=")
	builder.WriteString(_m.CollectionDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expire_date=")
	builder.WriteString(_m.ExpireDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("hbs_ag=")
	builder.WriteString(_m.HbsAg)
	builder.WriteString(", ")
	builder.WriteString("hcv=")
	builder.WriteString(_m.Hcv)
	builder.WriteString(", ")
	builder.WriteString("hiv=")
	builder.WriteString(_m.Hiv)
	builder.WriteString(", ")
	builder.WriteString("tpha=")
	builder.WriteString(_m.Tpha)
	builder.WriteString(", ")
	builder.WriteString("anti_htlv=")
	builder.WriteString(_m.AntiHtlv)
	builder.WriteString(", ")
	builder.WriteString("is_distributed=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDistributed))
	builder.WriteString(", ")
	builder.WriteString("biologist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BiologistID))
	builder.WriteByte(')')
	return builder.String()
}

// BloodBags is a parsable slice of BloodBag.
type BloodBags []*BloodBag
