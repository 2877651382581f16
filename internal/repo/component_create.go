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
	"github.com/hemobank/hemobank_backend/internal/repo/component"
)

// ComponentCreate is the builder for creating a Component entity.
type ComponentCreate struct {
	config
	mutation *ComponentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ComponentCreate) SetCreatedAt(v time.Time) *ComponentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableCreatedAt(v *time.Time) *ComponentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ComponentCreate) SetUpdatedAt(v time.Time) *ComponentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableUpdatedAt(v *time.Time) *ComponentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *ComponentCreate) SetType(v component.Type) *ComponentCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *ComponentCreate) SetWeight(v float64) *ComponentCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetExpireDate sets the "expire_date" field.
func (_c *ComponentCreate) SetExpireDate(v time.Time) *ComponentCreate {
	_c.mutation.SetExpireDate(v)
	return _c
}

// SetIsDistributed sets the "is_distributed" field.
func (_c *ComponentCreate) SetIsDistributed(v bool) *ComponentCreate {
	_c.mutation.SetIsDistributed(v)
	return _c
}

// SetNillableIsDistributed sets the "is_distributed" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableIsDistributed(v *bool) *ComponentCreate {
	if v != nil {
		_c.SetIsDistributed(*v)
	}
	return _c
}

// SetBagbloodID sets the "bagblood_id" field.
func (_c *ComponentCreate) SetBagbloodID(v uuid.UUID) *ComponentCreate {
	_c.mutation.SetBagbloodID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ComponentCreate) SetID(v uuid.UUID) *ComponentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableID(v *uuid.UUID) *ComponentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBagID sets the "bag" edge to the BloodBag entity by ID.
func (_c *ComponentCreate) SetBagID(id uuid.UUID) *ComponentCreate {
	_c.mutation.SetBagID(id)
	return _c
}

// SetBag sets the "bag" edge to the BloodBag entity.
func (_c *ComponentCreate) SetBag(v *BloodBag) *ComponentCreate {
	return _c.SetBagID(v.ID)
}

// Mutation returns the ComponentMutation object of the builder.
func (_c *ComponentCreate) Mutation() *ComponentMutation {
	return _c.mutation
}

// Save creates the Component in the database.
func (_c *ComponentCreate) Save(ctx context.Context) (*Component, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ComponentCreate) SaveX(ctx context.Context) *Component {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComponentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComponentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ComponentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := component.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := component.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsDistributed(); !ok {
		v := component.DefaultIsDistributed
		_c.mutation.SetIsDistributed(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := component.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ComponentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Component.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Component.updated_at"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`repo: missing required field "Component.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := component.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Component.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`repo: missing required field "Component.weight"`)}
	}
	if _, ok := _c.mutation.ExpireDate(); !ok {
		return &ValidationError{Name: "expire_date", err: errors.New(`repo: missing required field "Component.expire_date"`)}
	}
	if _, ok := _c.mutation.IsDistributed(); !ok {
		return &ValidationError{Name: "is_distributed", err: errors.New(`repo: missing required field "Component.is_distributed"`)}
	}
	if _, ok := _c.mutation.BagbloodID(); !ok {
		return &ValidationError{Name: "bagblood_id", err: errors.New(`repo: missing required field "Component.bagblood_id"`)}
	}
	if len(_c.mutation.BagIDs()) == 0 {
		return &ValidationError{Name: "bag", err: errors.New(`repo: missing required edge "Component.bag"`)}
	}
	return nil
}

func (_c *ComponentCreate) sqlSave(ctx context.Context) (*Component, error) {
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

func (_c *ComponentCreate) createSpec() (*Component, *sqlgraph.CreateSpec) {
	var (
		_node = &Component{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(component.Table, sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(component.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(component.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(component.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(component.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.ExpireDate(); ok {
		_spec.SetField(component.FieldExpireDate, field.TypeTime, value)
		_node.ExpireDate = value
	}
	if value, ok := _c.mutation.IsDistributed(); ok {
		_spec.SetField(component.FieldIsDistributed, field.TypeBool, value)
		_node.IsDistributed = value
	}
	if nodes := _c.mutation.BagIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   component.BagTable,
			Columns: []string{component.BagColumn},
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

// ComponentCreateBulk is the builder for creating many Component entities in bulk.
type ComponentCreateBulk struct {
	config
	err      error
	builders []*ComponentCreate
}

// Save creates the Component entities in the database.
func (_c *ComponentCreateBulk) Save(ctx context.Context) ([]*Component, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Component, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ComponentMutation)
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
func (_c *ComponentCreateBulk) SaveX(ctx context.Context) []*Component {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComponentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComponentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
