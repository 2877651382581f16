// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hemobank/hemobank_backend/internal/repo/bloodbag"
	"github.com/hemobank/hemobank_backend/internal/repo/distribution"
	"github.com/hemobank/hemobank_backend/internal/repo/predicate"
)

// DistributionUpdate is the builder for updating Distribution entities.
type DistributionUpdate struct {
	config
	hooks    []Hook
	mutation *DistributionMutation
}

// Where appends a list predicates to the DistributionUpdate builder.
func (_u *DistributionUpdate) Where(ps ...predicate.Distribution) *DistributionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DistributionUpdate) SetUpdatedAt(v time.Time) *DistributionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDistributionNumber sets the "distribution_number" field.
func (_u *DistributionUpdate) SetDistributionNumber(v string) *DistributionUpdate {
	_u.mutation.SetDistributionNumber(v)
	return _u
}

// SetNillableDistributionNumber sets the "distribution_number" field if the given value is not nil.
func (_u *DistributionUpdate) SetNillableDistributionNumber(v *string) *DistributionUpdate {
	if v != nil {
		_u.SetDistributionNumber(*v)
	}
	return _u
}

// SetReceiverFirstName sets the "receiver_first_name" field.
func (_u *DistributionUpdate) SetReceiverFirstName(v string) *DistributionUpdate {
	_u.mutation.SetReceiverFirstName(v)
	return _u
}

// SetNillableReceiverFirstName sets the "receiver_first_name" field if the given value is not nil.
func (_u *DistributionUpdate) SetNillableReceiverFirstName(v *string) *DistributionUpdate {
	if v != nil {
		_u.SetReceiverFirstName(*v)
	}
	return _u
}

// SetReceiverLastName sets the "receiver_last_name" field.
func (_u *DistributionUpdate) SetReceiverLastName(v string) *DistributionUpdate {
	_u.mutation.SetReceiverLastName(v)
	return _u
}

// SetNillableReceiverLastName sets the "receiver_last_name" field if the given value is not nil.
func (_u *DistributionUpdate) SetNillableReceiverLastName(v *string) *DistributionUpdate {
	if v != nil {
		_u.SetReceiverLastName(*v)
	}
	return _u
}

// SetReceiverAge sets the "receiver_age" field.
func (_u *DistributionUpdate) SetReceiverAge(v int) *DistributionUpdate {
	_u.mutation.ResetReceiverAge()
	_u.mutation.SetReceiverAge(v)
	return _u
}

// SetNillableReceiverAge sets the "receiver_age" field if the given value is not nil.
func (_u *DistributionUpdate) SetNillableReceiverAge(v *int) *DistributionUpdate {
	if v != nil {
		_u.SetReceiverAge(*v)
	}
	return _u
}

// AddReceiverAge adds value to the "receiver_age" field.
func (_u *DistributionUpdate) AddReceiverAge(v int) *DistributionUpdate {
	_u.mutation.AddReceiverAge(v)
	return _u
}

// SetReceiverSex sets the "receiver_sex" field.
func (_u *DistributionUpdate) SetReceiverSex(v string) *DistributionUpdate {
	_u.mutation.SetReceiverSex(v)
	return _u
}

// SetNillableReceiverSex sets the "receiver_sex" field if the given value is not nil.
func (_u *DistributionUpdate) SetNillableReceiverSex(v *string) *DistributionUpdate {
	if v != nil {
		_u.SetReceiverSex(*v)
	}
	return _u
}

// SetEstablishment sets the "establishment" field.
func (_u *DistributionUpdate) SetEstablishment(v string) *DistributionUpdate {
	_u.mutation.SetEstablishment(v)
	return _u
}

// SetNillableEstablishment sets the "establishment" field if the given value is not nil.
func (_u *DistributionUpdate) SetNillableEstablishment(v *string) *DistributionUpdate {
	if v != nil {
		_u.SetEstablishment(*v)
	}
	return _u
}

// SetRequestedBloodGroup sets the "requested_blood_group" field.
func (_u *DistributionUpdate) SetRequestedBloodGroup(v string) *DistributionUpdate {
	_u.mutation.SetRequestedBloodGroup(v)
	return _u
}

// SetNillableRequestedBloodGroup sets the "requested_blood_group" field if the given value is not nil.
func (_u *DistributionUpdate) SetNillableRequestedBloodGroup(v *string) *DistributionUpdate {
	if v != nil {
		_u.SetRequestedBloodGroup(*v)
	}
	return _u
}

// SetNumberOfBags sets the "number_of_bags" field.
func (_u *DistributionUpdate) SetNumberOfBags(v int) *DistributionUpdate {
	_u.mutation.ResetNumberOfBags()
	_u.mutation.SetNumberOfBags(v)
	return _u
}

// SetNillableNumberOfBags sets the "number_of_bags" field if the given value is not nil.
func (_u *DistributionUpdate) SetNillableNumberOfBags(v *int) *DistributionUpdate {
	if v != nil {
		_u.SetNumberOfBags(*v)
	}
	return _u
}

// AddNumberOfBags adds value to the "number_of_bags" field.
func (_u *DistributionUpdate) AddNumberOfBags(v int) *DistributionUpdate {
	_u.mutation.AddNumberOfBags(v)
	return _u
}

// SetService sets the "service" field.
func (_u *DistributionUpdate) SetService(v string) *DistributionUpdate {
	_u.mutation.SetService(v)
	return _u
}

// SetNillableService sets the "service" field if the given value is not nil.
func (_u *DistributionUpdate) SetNillableService(v *string) *DistributionUpdate {
	if v != nil {
		_u.SetService(*v)
	}
	return _u
}

// SetCarrierName sets the "carrier_name" field.
func (_u *DistributionUpdate) SetCarrierName(v string) *DistributionUpdate {
	_u.mutation.SetCarrierName(v)
	return _u
}

// SetNillableCarrierName sets the "carrier_name" field if the given value is not nil.
func (_u *DistributionUpdate) SetNillableCarrierName(v *string) *DistributionUpdate {
	if v != nil {
		_u.SetCarrierName(*v)
	}
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *DistributionUpdate) SetDoctorName(v string) *DistributionUpdate {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *DistributionUpdate) SetNillableDoctorName(v *string) *DistributionUpdate {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// SetIssuedAt sets the "issued_at" field.
func (_u *DistributionUpdate) SetIssuedAt(v time.Time) *DistributionUpdate {
	_u.mutation.SetIssuedAt(v)
	return _u
}

// SetNillableIssuedAt sets the "issued_at" field if the given value is not nil.
func (_u *DistributionUpdate) SetNillableIssuedAt(v *time.Time) *DistributionUpdate {
	if v != nil {
		_u.SetIssuedAt(*v)
	}
	return _u
}

// SetBagbloodID sets the "bagblood_id" field.
func (_u *DistributionUpdate) SetBagbloodID(v uuid.UUID) *DistributionUpdate {
	_u.mutation.SetBagbloodID(v)
	return _u
}

// SetNillableBagbloodID sets the "bagblood_id" field if the given value is not nil.
func (_u *DistributionUpdate) SetNillableBagbloodID(v *uuid.UUID) *DistributionUpdate {
	if v != nil {
		_u.SetBagbloodID(*v)
	}
	return _u
}

// SetBagID sets the "bag" edge to the BloodBag entity by ID.
func (_u *DistributionUpdate) SetBagID(id uuid.UUID) *DistributionUpdate {
	_u.mutation.SetBagID(id)
	return _u
}

// SetBag sets the "bag" edge to the BloodBag entity.
func (_u *DistributionUpdate) SetBag(v *BloodBag) *DistributionUpdate {
	return _u.SetBagID(v.ID)
}

// Mutation returns the DistributionMutation object of the builder.
func (_u *DistributionUpdate) Mutation() *DistributionMutation {
	return _u.mutation
}

// ClearBag clears the "bag" edge to the BloodBag entity.
func (_u *DistributionUpdate) ClearBag() *DistributionUpdate {
	_u.mutation.ClearBag()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DistributionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DistributionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DistributionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DistributionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DistributionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := distribution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DistributionUpdate) check() error {
	if v, ok := _u.mutation.DistributionNumber(); ok {
		if err := distribution.DistributionNumberValidator(v); err != nil {
			return &ValidationError{Name: "distribution_number", err: fmt.Errorf(`repo: validator failed for field "Distribution.distribution_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReceiverFirstName(); ok {
		if err := distribution.ReceiverFirstNameValidator(v); err != nil {
			return &ValidationError{Name: "receiver_first_name", err: fmt.Errorf(`repo: validator failed for field "Distribution.receiver_first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReceiverLastName(); ok {
		if err := distribution.ReceiverLastNameValidator(v); err != nil {
			return &ValidationError{Name: "receiver_last_name", err: fmt.Errorf(`repo: validator failed for field "Distribution.receiver_last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReceiverAge(); ok {
		if err := distribution.ReceiverAgeValidator(v); err != nil {
			return &ValidationError{Name: "receiver_age", err: fmt.Errorf(`repo: validator failed for field "Distribution.receiver_age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReceiverSex(); ok {
		if err := distribution.ReceiverSexValidator(v); err != nil {
			return &ValidationError{Name: "receiver_sex", err: fmt.Errorf(`repo: validator failed for field "Distribution.receiver_sex": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Establishment(); ok {
		if err := distribution.EstablishmentValidator(v); err != nil {
			return &ValidationError{Name: "establishment", err: fmt.Errorf(`repo: validator failed for field "Distribution.establishment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestedBloodGroup(); ok {
		if err := distribution.RequestedBloodGroupValidator(v); err != nil {
			return &ValidationError{Name: "requested_blood_group", err: fmt.Errorf(`repo: validator failed for field "Distribution.requested_blood_group": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumberOfBags(); ok {
		if err := distribution.NumberOfBagsValidator(v); err != nil {
			return &ValidationError{Name: "number_of_bags", err: fmt.Errorf(`repo: validator failed for field "Distribution.number_of_bags": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Service(); ok {
		if err := distribution.ServiceValidator(v); err != nil {
			return &ValidationError{Name: "service", err: fmt.Errorf(`repo: validator failed for field "Distribution.service": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CarrierName(); ok {
		if err := distribution.CarrierNameValidator(v); err != nil {
			return &ValidationError{Name: "carrier_name", err: fmt.Errorf(`repo: validator failed for field "Distribution.carrier_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DoctorName(); ok {
		if err := distribution.DoctorNameValidator(v); err != nil {
			return &ValidationError{Name: "doctor_name", err: fmt.Errorf(`repo: validator failed for field "Distribution.doctor_name": %w`, err)}
		}
	}
	if _u.mutation.BagCleared() && len(_u.mutation.BagIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Distribution.bag"`)
	}
	return nil
}

func (_u *DistributionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(distribution.Table, distribution.Columns, sqlgraph.NewFieldSpec(distribution.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(distribution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DistributionNumber(); ok {
		_spec.SetField(distribution.FieldDistributionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReceiverFirstName(); ok {
		_spec.SetField(distribution.FieldReceiverFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReceiverLastName(); ok {
		_spec.SetField(distribution.FieldReceiverLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReceiverAge(); ok {
		_spec.SetField(distribution.FieldReceiverAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReceiverAge(); ok {
		_spec.AddField(distribution.FieldReceiverAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReceiverSex(); ok {
		_spec.SetField(distribution.FieldReceiverSex, field.TypeString, value)
	}
	if value, ok := _u.mutation.Establishment(); ok {
		_spec.SetField(distribution.FieldEstablishment, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestedBloodGroup(); ok {
		_spec.SetField(distribution.FieldRequestedBloodGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumberOfBags(); ok {
		_spec.SetField(distribution.FieldNumberOfBags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfBags(); ok {
		_spec.AddField(distribution.FieldNumberOfBags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Service(); ok {
		_spec.SetField(distribution.FieldService, field.TypeString, value)
	}
	if value, ok := _u.mutation.CarrierName(); ok {
		_spec.SetField(distribution.FieldCarrierName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(distribution.FieldDoctorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuedAt(); ok {
		_spec.SetField(distribution.FieldIssuedAt, field.TypeTime, value)
	}
	if _u.mutation.BagCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   distribution.BagTable,
			Columns: []string{distribution.BagColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bloodbag.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BagIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   distribution.BagTable,
			Columns: []string{distribution.BagColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bloodbag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{distribution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DistributionUpdateOne is the builder for updating a single Distribution entity.
type DistributionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DistributionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DistributionUpdateOne) SetUpdatedAt(v time.Time) *DistributionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDistributionNumber sets the "distribution_number" field.
func (_u *DistributionUpdateOne) SetDistributionNumber(v string) *DistributionUpdateOne {
	_u.mutation.SetDistributionNumber(v)
	return _u
}

// SetNillableDistributionNumber sets the "distribution_number" field if the given value is not nil.
func (_u *DistributionUpdateOne) SetNillableDistributionNumber(v *string) *DistributionUpdateOne {
	if v != nil {
		_u.SetDistributionNumber(*v)
	}
	return _u
}

// SetReceiverFirstName sets the "receiver_first_name" field.
func (_u *DistributionUpdateOne) SetReceiverFirstName(v string) *DistributionUpdateOne {
	_u.mutation.SetReceiverFirstName(v)
	return _u
}

// SetNillableReceiverFirstName sets the "receiver_first_name" field if the given value is not nil.
func (_u *DistributionUpdateOne) SetNillableReceiverFirstName(v *string) *DistributionUpdateOne {
	if v != nil {
		_u.SetReceiverFirstName(*v)
	}
	return _u
}

// SetReceiverLastName sets the "receiver_last_name" field.
func (_u *DistributionUpdateOne) SetReceiverLastName(v string) *DistributionUpdateOne {
	_u.mutation.SetReceiverLastName(v)
	return _u
}

// SetNillableReceiverLastName sets the "receiver_last_name" field if the given value is not nil.
func (_u *DistributionUpdateOne) SetNillableReceiverLastName(v *string) *DistributionUpdateOne {
	if v != nil {
		_u.SetReceiverLastName(*v)
	}
	return _u
}

// SetReceiverAge sets the "receiver_age" field.
func (_u *DistributionUpdateOne) SetReceiverAge(v int) *DistributionUpdateOne {
	_u.mutation.ResetReceiverAge()
	_u.mutation.SetReceiverAge(v)
	return _u
}

// SetNillableReceiverAge sets the "receiver_age" field if the given value is not nil.
func (_u *DistributionUpdateOne) SetNillableReceiverAge(v *int) *DistributionUpdateOne {
	if v != nil {
		_u.SetReceiverAge(*v)
	}
	return _u
}

// AddReceiverAge adds value to the "receiver_age" field.
func (_u *DistributionUpdateOne) AddReceiverAge(v int) *DistributionUpdateOne {
	_u.mutation.AddReceiverAge(v)
	return _u
}

// SetReceiverSex sets the "receiver_sex" field.
func (_u *DistributionUpdateOne) SetReceiverSex(v string) *DistributionUpdateOne {
	_u.mutation.SetReceiverSex(v)
	return _u
}

// SetNillableReceiverSex sets the "receiver_sex" field if the given value is not nil.
func (_u *DistributionUpdateOne) SetNillableReceiverSex(v *string) *DistributionUpdateOne {
	if v != nil {
		_u.SetReceiverSex(*v)
	}
	return _u
}

// SetEstablishment sets the "establishment" field.
func (_u *DistributionUpdateOne) SetEstablishment(v string) *DistributionUpdateOne {
	_u.mutation.SetEstablishment(v)
	return _u
}

// SetNillableEstablishment sets the "establishment" field if the given value is not nil.
func (_u *DistributionUpdateOne) SetNillableEstablishment(v *string) *DistributionUpdateOne {
	if v != nil {
		_u.SetEstablishment(*v)
	}
	return _u
}

// SetRequestedBloodGroup sets the "requested_blood_group" field.
func (_u *DistributionUpdateOne) SetRequestedBloodGroup(v string) *DistributionUpdateOne {
	_u.mutation.SetRequestedBloodGroup(v)
	return _u
}

// SetNillableRequestedBloodGroup sets the "requested_blood_group" field if the given value is not nil.
func (_u *DistributionUpdateOne) SetNillableRequestedBloodGroup(v *string) *DistributionUpdateOne {
	if v != nil {
		_u.SetRequestedBloodGroup(*v)
	}
	return _u
}

// SetNumberOfBags sets the "number_of_bags" field.
func (_u *DistributionUpdateOne) SetNumberOfBags(v int) *DistributionUpdateOne {
	_u.mutation.ResetNumberOfBags()
	_u.mutation.SetNumberOfBags(v)
	return _u
}

// SetNillableNumberOfBags sets the "number_of_bags" field if the given value is not nil.
func (_u *DistributionUpdateOne) SetNillableNumberOfBags(v *int) *DistributionUpdateOne {
	if v != nil {
		_u.SetNumberOfBags(*v)
	}
	return _u
}

// AddNumberOfBags adds value to the "number_of_bags" field.
func (_u *DistributionUpdateOne) AddNumberOfBags(v int) *DistributionUpdateOne {
	_u.mutation.AddNumberOfBags(v)
	return _u
}

// SetService sets the "service" field.
func (_u *DistributionUpdateOne) SetService(v string) *DistributionUpdateOne {
	_u.mutation.SetService(v)
	return _u
}

// SetNillableService sets the "service" field if the given value is not nil.
func (_u *DistributionUpdateOne) SetNillableService(v *string) *DistributionUpdateOne {
	if v != nil {
		_u.SetService(*v)
	}
	return _u
}

// SetCarrierName sets the "carrier_name" field.
func (_u *DistributionUpdateOne) SetCarrierName(v string) *DistributionUpdateOne {
	_u.mutation.SetCarrierName(v)
	return _u
}

// SetNillableCarrierName sets the "carrier_name" field if the given value is not nil.
func (_u *DistributionUpdateOne) SetNillableCarrierName(v *string) *DistributionUpdateOne {
	if v != nil {
		_u.SetCarrierName(*v)
	}
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *DistributionUpdateOne) SetDoctorName(v string) *DistributionUpdateOne {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *DistributionUpdateOne) SetNillableDoctorName(v *string) *DistributionUpdateOne {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// SetIssuedAt sets the "issued_at" field.
func (_u *DistributionUpdateOne) SetIssuedAt(v time.Time) *DistributionUpdateOne {
	_u.mutation.SetIssuedAt(v)
	return _u
}

// SetNillableIssuedAt sets the "issued_at" field if the given value is not nil.
func (_u *DistributionUpdateOne) SetNillableIssuedAt(v *time.Time) *DistributionUpdateOne {
	if v != nil {
		_u.SetIssuedAt(*v)
	}
	return _u
}

// SetBagbloodID sets the "bagblood_id" field.
func (_u *DistributionUpdateOne) SetBagbloodID(v uuid.UUID) *DistributionUpdateOne {
	_u.mutation.SetBagbloodID(v)
	return _u
}

// SetNillableBagbloodID sets the "bagblood_id" field if the given value is not nil.
func (_u *DistributionUpdateOne) SetNillableBagbloodID(v *uuid.UUID) *DistributionUpdateOne {
	if v != nil {
		_u.SetBagbloodID(*v)
	}
	return _u
}

// SetBagID sets the "bag" edge to the BloodBag entity by ID.
func (_u *DistributionUpdateOne) SetBagID(id uuid.UUID) *DistributionUpdateOne {
	_u.mutation.SetBagID(id)
	return _u
}

// SetBag sets the "bag" edge to the BloodBag entity.
func (_u *DistributionUpdateOne) SetBag(v *BloodBag) *DistributionUpdateOne {
	return _u.SetBagID(v.ID)
}

// Mutation returns the DistributionMutation object of the builder.
func (_u *DistributionUpdateOne) Mutation() *DistributionMutation {
	return _u.mutation
}

// ClearBag clears the "bag" edge to the BloodBag entity.
func (_u *DistributionUpdateOne) ClearBag() *DistributionUpdateOne {
	_u.mutation.ClearBag()
	return _u
}

// Where appends a list predicates to the DistributionUpdate builder.
func (_u *DistributionUpdateOne) Where(ps ...predicate.Distribution) *DistributionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DistributionUpdateOne) Select(field string, fields ...string) *DistributionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Distribution entity.
func (_u *DistributionUpdateOne) Save(ctx context.Context) (*Distribution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DistributionUpdateOne) SaveX(ctx context.Context) *Distribution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DistributionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DistributionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DistributionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := distribution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DistributionUpdateOne) check() error {
	if v, ok := _u.mutation.DistributionNumber(); ok {
		if err := distribution.DistributionNumberValidator(v); err != nil {
			return &ValidationError{Name: "distribution_number", err: fmt.Errorf(`repo: validator failed for field "Distribution.distribution_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReceiverFirstName(); ok {
		if err := distribution.ReceiverFirstNameValidator(v); err != nil {
			return &ValidationError{Name: "receiver_first_name", err: fmt.Errorf(`repo: validator failed for field "Distribution.receiver_first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReceiverLastName(); ok {
		if err := distribution.ReceiverLastNameValidator(v); err != nil {
			return &ValidationError{Name: "receiver_last_name", err: fmt.Errorf(`repo: validator failed for field "Distribution.receiver_last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReceiverAge(); ok {
		if err := distribution.ReceiverAgeValidator(v); err != nil {
			return &ValidationError{Name: "receiver_age", err: fmt.Errorf(`repo: validator failed for field "Distribution.receiver_age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReceiverSex(); ok {
		if err := distribution.ReceiverSexValidator(v); err != nil {
			return &ValidationError{Name: "receiver_sex", err: fmt.Errorf(`repo: validator failed for field "Distribution.receiver_sex": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Establishment(); ok {
		if err := distribution.EstablishmentValidator(v); err != nil {
			return &ValidationError{Name: "establishment", err: fmt.Errorf(`repo: validator failed for field "Distribution.establishment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestedBloodGroup(); ok {
		if err := distribution.RequestedBloodGroupValidator(v); err != nil {
			return &ValidationError{Name: "requested_blood_group", err: fmt.Errorf(`repo: validator failed for field "Distribution.requested_blood_group": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumberOfBags(); ok {
		if err := distribution.NumberOfBagsValidator(v); err != nil {
			return &ValidationError{Name: "number_of_bags", err: fmt.Errorf(`repo: validator failed for field "Distribution.number_of_bags": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Service(); ok {
		if err := distribution.ServiceValidator(v); err != nil {
			return &ValidationError{Name: "service", err: fmt.Errorf(`repo: validator failed for field "Distribution.service": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CarrierName(); ok {
		if err := distribution.CarrierNameValidator(v); err != nil {
			return &ValidationError{Name: "carrier_name", err: fmt.Errorf(`repo: validator failed for field "Distribution.carrier_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DoctorName(); ok {
		if err := distribution.DoctorNameValidator(v); err != nil {
			return &ValidationError{Name: "doctor_name", err: fmt.Errorf(`repo: validator failed for field "Distribution.doctor_name": %w`, err)}
		}
	}
	if _u.mutation.BagCleared() && len(_u.mutation.BagIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Distribution.bag"`)
	}
	return nil
}

func (_u *DistributionUpdateOne) sqlSave(ctx context.Context) (_node *Distribution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(distribution.Table, distribution.Columns, sqlgraph.NewFieldSpec(distribution.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Distribution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, distribution.FieldID)
		for _, f := range fields {
			if !distribution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != distribution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(distribution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DistributionNumber(); ok {
		_spec.SetField(distribution.FieldDistributionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReceiverFirstName(); ok {
		_spec.SetField(distribution.FieldReceiverFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReceiverLastName(); ok {
		_spec.SetField(distribution.FieldReceiverLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReceiverAge(); ok {
		_spec.SetField(distribution.FieldReceiverAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReceiverAge(); ok {
		_spec.AddField(distribution.FieldReceiverAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReceiverSex(); ok {
		_spec.SetField(distribution.FieldReceiverSex, field.TypeString, value)
	}
	if value, ok := _u.mutation.Establishment(); ok {
		_spec.SetField(distribution.FieldEstablishment, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestedBloodGroup(); ok {
		_spec.SetField(distribution.FieldRequestedBloodGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumberOfBags(); ok {
		_spec.SetField(distribution.FieldNumberOfBags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfBags(); ok {
		_spec.AddField(distribution.FieldNumberOfBags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Service(); ok {
		_spec.SetField(distribution.FieldService, field.TypeString, value)
	}
	if value, ok := _u.mutation.CarrierName(); ok {
		_spec.SetField(distribution.FieldCarrierName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(distribution.FieldDoctorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuedAt(); ok {
		_spec.SetField(distribution.FieldIssuedAt, field.TypeTime, value)
	}
	if _u.mutation.BagCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   distribution.BagTable,
			Columns: []string{distribution.BagColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bloodbag.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BagIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   distribution.BagTable,
			Columns: []string{distribution.BagColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bloodbag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Distribution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{distribution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
