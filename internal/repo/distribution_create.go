// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hemobank/hemobank_backend/internal/repo/bloodbag"
	"github.com/hemobank/hemobank_backend/internal/repo/distribution"
)

// DistributionCreate is the builder for creating a Distribution entity.
type DistributionCreate struct {
	config
	mutation *DistributionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DistributionCreate) SetCreatedAt(v time.Time) *DistributionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DistributionCreate) SetNillableCreatedAt(v *time.Time) *DistributionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DistributionCreate) SetUpdatedAt(v time.Time) *DistributionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DistributionCreate) SetNillableUpdatedAt(v *time.Time) *DistributionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDistributionNumber sets the "distribution_number" field.
func (_c *DistributionCreate) SetDistributionNumber(v string) *DistributionCreate {
	_c.mutation.SetDistributionNumber(v)
	return _c
}

// SetReceiverFirstName sets the "receiver_first_name" field.
func (_c *DistributionCreate) SetReceiverFirstName(v string) *DistributionCreate {
	_c.mutation.SetReceiverFirstName(v)
	return _c
}

// SetReceiverLastName sets the "receiver_last_name" field.
func (_c *DistributionCreate) SetReceiverLastName(v string) *DistributionCreate {
	_c.mutation.SetReceiverLastName(v)
	return _c
}

// SetReceiverAge sets the "receiver_age" field.
func (_c *DistributionCreate) SetReceiverAge(v int) *DistributionCreate {
	_c.mutation.SetReceiverAge(v)
	return _c
}

// SetReceiverSex sets the "receiver_sex" field.
func (_c *DistributionCreate) SetReceiverSex(v string) *DistributionCreate {
	_c.mutation.SetReceiverSex(v)
	return _c
}

// SetEstablishment sets the "establishment" field.
func (_c *DistributionCreate) SetEstablishment(v string) *DistributionCreate {
	_c.mutation.SetEstablishment(v)
	return _c
}

// SetRequestedBloodGroup sets the "requested_blood_group" field.
func (_c *DistributionCreate) SetRequestedBloodGroup(v string) *DistributionCreate {
	_c.mutation.SetRequestedBloodGroup(v)
	return _c
}

// SetNumberOfBags sets the "number_of_bags" field.
func (_c *DistributionCreate) SetNumberOfBags(v int) *DistributionCreate {
	_c.mutation.SetNumberOfBags(v)
	return _c
}

// SetService sets the "service" field.
func (_c *DistributionCreate) SetService(v string) *DistributionCreate {
	_c.mutation.SetService(v)
	return _c
}

// SetCarrierName sets the "carrier_name" field.
func (_c *DistributionCreate) SetCarrierName(v string) *DistributionCreate {
	_c.mutation.SetCarrierName(v)
	return _c
}

// SetDoctorName sets the "doctor_name" field.
func (_c *DistributionCreate) SetDoctorName(v string) *DistributionCreate {
	_c.mutation.SetDoctorName(v)
	return _c
}

// SetIssuedAt sets the "issued_at" field.
func (_c *DistributionCreate) SetIssuedAt(v time.Time) *DistributionCreate {
	_c.mutation.SetIssuedAt(v)
	return _c
}

// SetBagbloodID sets the "bagblood_id" field.
func (_c *DistributionCreate) SetBagbloodID(v uuid.UUID) *DistributionCreate {
	_c.mutation.SetBagbloodID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DistributionCreate) SetID(v uuid.UUID) *DistributionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DistributionCreate) SetNillableID(v *uuid.UUID) *DistributionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBagID sets the "bag" edge to the BloodBag entity by ID.
func (_c *DistributionCreate) SetBagID(id uuid.UUID) *DistributionCreate {
	_c.mutation.SetBagID(id)
	return _c
}

// SetBag sets the "bag" edge to the BloodBag entity.
func (_c *DistributionCreate) SetBag(v *BloodBag) *DistributionCreate {
	return _c.SetBagID(v.ID)
}

// Mutation returns the DistributionMutation object of the builder.
func (_c *DistributionCreate) Mutation() *DistributionMutation {
	return _c.mutation
}

// Save creates the Distribution in the database.
func (_c *DistributionCreate) Save(ctx context.Context) (*Distribution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DistributionCreate) SaveX(ctx context.Context) *Distribution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DistributionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DistributionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DistributionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := distribution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := distribution.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := distribution.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DistributionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Distribution.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Distribution.updated_at"`)}
	}
	if _, ok := _c.mutation.DistributionNumber(); !ok {
		return &ValidationError{Name: "distribution_number", err: errors.New(`repo: missing required field "Distribution.distribution_number"`)}
	}
	if v, ok := _c.mutation.DistributionNumber(); ok {
		if err := distribution.DistributionNumberValidator(v); err != nil {
			return &ValidationError{Name: "distribution_number", err: fmt.Errorf(`repo: validator failed for field "Distribution.distribution_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceiverFirstName(); !ok {
		return &ValidationError{Name: "receiver_first_name", err: errors.New(`repo: missing required field "Distribution.receiver_first_name"`)}
	}
	if v, ok := _c.mutation.ReceiverFirstName(); ok {
		if err := distribution.ReceiverFirstNameValidator(v); err != nil {
			return &ValidationError{Name: "receiver_first_name", err: fmt.Errorf(`repo: validator failed for field "Distribution.receiver_first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceiverLastName(); !ok {
		return &ValidationError{Name: "receiver_last_name", err: errors.New(`repo: missing required field "Distribution.receiver_last_name"`)}
	}
	if v, ok := _c.mutation.ReceiverLastName(); ok {
		if err := distribution.ReceiverLastNameValidator(v); err != nil {
			return &ValidationError{Name: "receiver_last_name", err: fmt.Errorf(`repo: validator failed for field "Distribution.receiver_last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceiverAge(); !ok {
		return &ValidationError{Name: "receiver_age", err: errors.New(`repo: missing required field "Distribution.receiver_age"`)}
	}
	if v, ok := _c.mutation.ReceiverAge(); ok {
		if err := distribution.ReceiverAgeValidator(v); err != nil {
			return &ValidationError{Name: "receiver_age", err: fmt.Errorf(`repo: validator failed for field "Distribution.receiver_age": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceiverSex(); !ok {
		return &ValidationError{Name: "receiver_sex", err: errors.New(`repo: missing required field "Distribution.receiver_sex"`)}
	}
	if v, ok := _c.mutation.ReceiverSex(); ok {
		if err := distribution.ReceiverSexValidator(v); err != nil {
			return &ValidationError{Name: "receiver_sex", err: fmt.Errorf(`repo: validator failed for field "Distribution.receiver_sex": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Establishment(); !ok {
		return &ValidationError{Name: "establishment", err: errors.New(`repo: missing required field "Distribution.establishment"`)}
	}
	if v, ok := _c.mutation.Establishment(); ok {
		if err := distribution.EstablishmentValidator(v); err != nil {
			return &ValidationError{Name: "establishment", err: fmt.Errorf(`repo: validator failed for field "Distribution.establishment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestedBloodGroup(); !ok {
		return &ValidationError{Name: "requested_blood_group", err: errors.New(`repo: missing required field "Distribution.requested_blood_group"`)}
	}
	if v, ok := _c.mutation.RequestedBloodGroup(); ok {
		if err := distribution.RequestedBloodGroupValidator(v); err != nil {
			return &ValidationError{Name: "requested_blood_group", err: fmt.Errorf(`repo: validator failed for field "Distribution.requested_blood_group": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NumberOfBags(); !ok {
		return &ValidationError{Name: "number_of_bags", err: errors.New(`repo: missing required field "Distribution.number_of_bags"`)}
	}
	if v, ok := _c.mutation.NumberOfBags(); ok {
		if err := distribution.NumberOfBagsValidator(v); err != nil {
			return &ValidationError{Name: "number_of_bags", err: fmt.Errorf(`repo: validator failed for field "Distribution.number_of_bags": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Service(); !ok {
		return &ValidationError{Name: "service", err: errors.New(`repo: missing required field "Distribution.service"`)}
	}
	if v, ok := _c.mutation.Service(); ok {
		if err := distribution.ServiceValidator(v); err != nil {
			return &ValidationError{Name: "service", err: fmt.Errorf(`repo: validator failed for field "Distribution.service": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CarrierName(); !ok {
		return &ValidationError{Name: "carrier_name", err: errors.New(`repo: missing required field "Distribution.carrier_name"`)}
	}
	if v, ok := _c.mutation.CarrierName(); ok {
		if err := distribution.CarrierNameValidator(v); err != nil {
			return &ValidationError{Name: "carrier_name", err: fmt.Errorf(`repo: validator failed for field "Distribution.carrier_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DoctorName(); !ok {
		return &ValidationError{Name: "doctor_name", err: errors.New(`repo: missing required field "Distribution.doctor_name"`)}
	}
	if v, ok := _c.mutation.DoctorName(); ok {
		if err := distribution.DoctorNameValidator(v); err != nil {
			return &ValidationError{Name: "doctor_name", err: fmt.Errorf(`repo: validator failed for field "Distribution.doctor_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IssuedAt(); !ok {
		return &ValidationError{Name: "issued_at", err: errors.New(`repo: missing required field "Distribution.issued_at"`)}
	}
	if _, ok := _c.mutation.BagbloodID(); !ok {
		return &ValidationError{Name: "bagblood_id", err: errors.New(`repo: missing required field "Distribution.bagblood_id"`)}
	}
	if len(_c.mutation.BagIDs()) == 0 {
		return &ValidationError{Name: "bag", err: errors.New(`repo: missing required edge "Distribution.bag"`)}
	}
	return nil
}

func (_c *DistributionCreate) sqlSave(ctx context.Context) (*Distribution, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DistributionCreate) createSpec() (*Distribution, *sqlgraph.CreateSpec) {
	var (
		_node = &Distribution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(distribution.Table, sqlgraph.NewFieldSpec(distribution.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(distribution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(distribution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DistributionNumber(); ok {
		_spec.SetField(distribution.FieldDistributionNumber, field.TypeString, value)
		_node.DistributionNumber = value
	}
	if value, ok := _c.mutation.ReceiverFirstName(); ok {
		_spec.SetField(distribution.FieldReceiverFirstName, field.TypeString, value)
		_node.ReceiverFirstName = value
	}
	if value, ok := _c.mutation.ReceiverLastName(); ok {
		_spec.SetField(distribution.FieldReceiverLastName, field.TypeString, value)
		_node.ReceiverLastName = value
	}
	if value, ok := _c.mutation.ReceiverAge(); ok {
		_spec.SetField(distribution.FieldReceiverAge, field.TypeInt, value)
		_node.ReceiverAge = value
	}
	if value, ok := _c.mutation.ReceiverSex(); ok {
		_spec.SetField(distribution.FieldReceiverSex, field.TypeString, value)
		_node.ReceiverSex = value
	}
	if value, ok := _c.mutation.Establishment(); ok {
		_spec.SetField(distribution.FieldEstablishment, field.TypeString, value)
		_node.Establishment = value
	}
	if value, ok := _c.mutation.RequestedBloodGroup(); ok {
		_spec.SetField(distribution.FieldRequestedBloodGroup, field.TypeString, value)
		_node.RequestedBloodGroup = value
	}
	if value, ok := _c.mutation.NumberOfBags(); ok {
		_spec.SetField(distribution.FieldNumberOfBags, field.TypeInt, value)
		_node.NumberOfBags = value
	}
	if value, ok := _c.mutation.Service(); ok {
		_spec.SetField(distribution.FieldService, field.TypeString, value)
		_node.Service = value
	}
	if value, ok := _c.mutation.CarrierName(); ok {
		_spec.SetField(distribution.FieldCarrierName, field.TypeString, value)
		_node.CarrierName = value
	}
	if value, ok := _c.mutation.DoctorName(); ok {
		_spec.SetField(distribution.FieldDoctorName, field.TypeString, value)
		_node.DoctorName = value
	}
	if value, ok := _c.mutation.IssuedAt(); ok {
		_spec.SetField(distribution.FieldIssuedAt, field.TypeTime, value)
		_node.IssuedAt = value
	}
	if nodes := _c.mutation.BagIDs(); len(nodes) > 0 {
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
		_node.BagbloodID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DistributionCreateBulk is the builder for creating many Distribution entities in bulk.
type DistributionCreateBulk struct {
	config
	err      error
	builders []*DistributionCreate
}

// Save creates the Distribution entities in the database.
func (_c *DistributionCreateBulk) Save(ctx context.Context) ([]*Distribution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Distribution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DistributionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DistributionCreateBulk) SaveX(ctx context.Context) []*Distribution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DistributionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DistributionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
