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
	"github.com/hemobank/hemobank_backend/internal/repo/biologist"
	"github.com/hemobank/hemobank_backend/internal/repo/bloodbag"
)

// BiologistCreate is the builder for creating a Biologist entity.
type BiologistCreate struct {
	config
	mutation *BiologistMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *BiologistCreate) SetCreatedAt(v time.Time) *BiologistCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BiologistCreate) SetNillableCreatedAt(v *time.Time) *BiologistCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BiologistCreate) SetUpdatedAt(v time.Time) *BiologistCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BiologistCreate) SetNillableUpdatedAt(v *time.Time) *BiologistCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *BiologistCreate) SetFirstName(v string) *BiologistCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *BiologistCreate) SetLastName(v string) *BiologistCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *BiologistCreate) SetUsername(v string) *BiologistCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *BiologistCreate) SetEmail(v string) *BiologistCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPhoneNumber sets the "phone_number" field.
func (_c *BiologistCreate) SetPhoneNumber(v string) *BiologistCreate {
	_c.mutation.SetPhoneNumber(v)
	return _c
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_c *BiologistCreate) SetNillablePhoneNumber(v *string) *BiologistCreate {
	if v != nil {
		_c.SetPhoneNumber(*v)
	}
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *BiologistCreate) SetPasswordHash(v string) *BiologistCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetID sets the "id" field.
func (_c *BiologistCreate) SetID(v uuid.UUID) *BiologistCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BiologistCreate) SetNillableID(v *uuid.UUID) *BiologistCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddBloodBagIDs adds the "blood_bags" edge to the BloodBag entity by IDs.
func (_c *BiologistCreate) AddBloodBagIDs(ids ...uuid.UUID) *BiologistCreate {
	_c.mutation.AddBloodBagIDs(ids...)
	return _c
}

// AddBloodBags adds the "blood_bags" edges to the BloodBag entity.
func (_c *BiologistCreate) AddBloodBags(v ...*BloodBag) *BiologistCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBloodBagIDs(ids...)
}

// Mutation returns the BiologistMutation object of the builder.
func (_c *BiologistCreate) Mutation() *BiologistMutation {
	return _c.mutation
}

// Save creates the Biologist in the database.
func (_c *BiologistCreate) Save(ctx context.Context) (*Biologist, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BiologistCreate) SaveX(ctx context.Context) *Biologist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BiologistCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BiologistCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BiologistCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := biologist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := biologist.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := biologist.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BiologistCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Biologist.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Biologist.updated_at"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`repo: missing required field "Biologist.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := biologist.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Biologist.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`repo: missing required field "Biologist.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := biologist.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Biologist.last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`repo: missing required field "Biologist.username"`)}
	}
	if v, ok := _c.mutation.Username(); ok {
		if err := biologist.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`repo: validator failed for field "Biologist.username": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "Biologist.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := biologist.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Biologist.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PhoneNumber(); ok {
		if err := biologist.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`repo: validator failed for field "Biologist.phone_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PasswordHash(); !ok {
		return &ValidationError{Name: "password_hash", err: errors.New(`repo: missing required field "Biologist.password_hash"`)}
	}
	return nil
}

func (_c *BiologistCreate) sqlSave(ctx context.Context) (*Biologist, error) {
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

func (_c *BiologistCreate) createSpec() (*Biologist, *sqlgraph.CreateSpec) {
	var (
		_node = &Biologist{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(biologist.Table, sqlgraph.NewFieldSpec(biologist.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(biologist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(biologist.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(biologist.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(biologist.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(biologist.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(biologist.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PhoneNumber(); ok {
		_spec.SetField(biologist.FieldPhoneNumber, field.TypeString, value)
		_node.PhoneNumber = &value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(biologist.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if nodes := _c.mutation.BloodBagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   biologist.BloodBagsTable,
			Columns: []string{biologist.BloodBagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bloodbag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BiologistCreateBulk is the builder for creating many Biologist entities in bulk.
type BiologistCreateBulk struct {
	config
	err      error
	builders []*BiologistCreate
}

// Save creates the Biologist entities in the database.
func (_c *BiologistCreateBulk) Save(ctx context.Context) ([]*Biologist, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Biologist, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BiologistMutation)
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
func (_c *BiologistCreateBulk) SaveX(ctx context.Context) []*Biologist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BiologistCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BiologistCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
