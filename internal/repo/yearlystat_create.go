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
	"github.com/hemobank/hemobank_backend/internal/repo/yearlystat"
)

// YearlyStatCreate is the builder for creating a YearlyStat entity.
type YearlyStatCreate struct {
	config
	mutation *YearlyStatMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *YearlyStatCreate) SetCreatedAt(v time.Time) *YearlyStatCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *YearlyStatCreate) SetNillableCreatedAt(v *time.Time) *YearlyStatCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *YearlyStatCreate) SetUpdatedAt(v time.Time) *YearlyStatCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *YearlyStatCreate) SetNillableUpdatedAt(v *time.Time) *YearlyStatCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetYear sets the "year" field.
func (_c *YearlyStatCreate) SetYear(v int) *YearlyStatCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetTotalBags sets the "total_bags" field.
func (_c *YearlyStatCreate) SetTotalBags(v int) *YearlyStatCreate {
	_c.mutation.SetTotalBags(v)
	return _c
}

// SetNillableTotalBags sets the "total_bags" field if the given value is not nil.
func (_c *YearlyStatCreate) SetNillableTotalBags(v *int) *YearlyStatCreate {
	if v != nil {
		_c.SetTotalBags(*v)
	}
	return _c
}

// SetTotalCps sets the "total_cps" field.
func (_c *YearlyStatCreate) SetTotalCps(v int) *YearlyStatCreate {
	_c.mutation.SetTotalCps(v)
	return _c
}

// SetNillableTotalCps sets the "total_cps" field if the given value is not nil.
func (_c *YearlyStatCreate) SetNillableTotalCps(v *int) *YearlyStatCreate {
	if v != nil {
		_c.SetTotalCps(*v)
	}
	return _c
}

// SetTotalPfc sets the "total_pfc" field.
func (_c *YearlyStatCreate) SetTotalPfc(v int) *YearlyStatCreate {
	_c.mutation.SetTotalPfc(v)
	return _c
}

// SetNillableTotalPfc sets the "total_pfc" field if the given value is not nil.
func (_c *YearlyStatCreate) SetNillableTotalPfc(v *int) *YearlyStatCreate {
	if v != nil {
		_c.SetTotalPfc(*v)
	}
	return _c
}

// SetTotalCg sets the "total_cg" field.
func (_c *YearlyStatCreate) SetTotalCg(v int) *YearlyStatCreate {
	_c.mutation.SetTotalCg(v)
	return _c
}

// SetNillableTotalCg sets the "total_cg" field if the given value is not nil.
func (_c *YearlyStatCreate) SetNillableTotalCg(v *int) *YearlyStatCreate {
	if v != nil {
		_c.SetTotalCg(*v)
	}
	return _c
}

// SetTotalExpired sets the "total_expired" field.
func (_c *YearlyStatCreate) SetTotalExpired(v int) *YearlyStatCreate {
	_c.mutation.SetTotalExpired(v)
	return _c
}

// SetNillableTotalExpired sets the "total_expired" field if the given value is not nil.
func (_c *YearlyStatCreate) SetNillableTotalExpired(v *int) *YearlyStatCreate {
	if v != nil {
		_c.SetTotalExpired(*v)
	}
	return _c
}

// SetRecordedBy sets the "recorded_by" field.
func (_c *YearlyStatCreate) SetRecordedBy(v uuid.UUID) *YearlyStatCreate {
	_c.mutation.SetRecordedBy(v)
	return _c
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_c *YearlyStatCreate) SetNillableRecordedBy(v *uuid.UUID) *YearlyStatCreate {
	if v != nil {
		_c.SetRecordedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *YearlyStatCreate) SetID(v uuid.UUID) *YearlyStatCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *YearlyStatCreate) SetNillableID(v *uuid.UUID) *YearlyStatCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the YearlyStatMutation object of the builder.
func (_c *YearlyStatCreate) Mutation() *YearlyStatMutation {
	return _c.mutation
}

// Save creates the YearlyStat in the database.
func (_c *YearlyStatCreate) Save(ctx context.Context) (*YearlyStat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *YearlyStatCreate) SaveX(ctx context.Context) *YearlyStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *YearlyStatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *YearlyStatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *YearlyStatCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := yearlystat.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := yearlystat.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.TotalBags(); !ok {
		v := yearlystat.DefaultTotalBags
		_c.mutation.SetTotalBags(v)
	}
	if _, ok := _c.mutation.TotalCps(); !ok {
		v := yearlystat.DefaultTotalCps
		_c.mutation.SetTotalCps(v)
	}
	if _, ok := _c.mutation.TotalPfc(); !ok {
		v := yearlystat.DefaultTotalPfc
		_c.mutation.SetTotalPfc(v)
	}
	if _, ok := _c.mutation.TotalCg(); !ok {
		v := yearlystat.DefaultTotalCg
		_c.mutation.SetTotalCg(v)
	}
	if _, ok := _c.mutation.TotalExpired(); !ok {
		v := yearlystat.DefaultTotalExpired
		_c.mutation.SetTotalExpired(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := yearlystat.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *YearlyStatCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "YearlyStat.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "YearlyStat.updated_at"`)}
	}
	if _, ok := _c.mutation.Year(); !ok {
		return &ValidationError{Name: "year", err: errors.New(`repo: missing required field "YearlyStat.year"`)}
	}
	if v, ok := _c.mutation.Year(); ok {
		if err := yearlystat.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`repo: validator failed for field "YearlyStat.year": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalBags(); !ok {
		return &ValidationError{Name: "total_bags", err: errors.New(`repo: missing required field "YearlyStat.total_bags"`)}
	}
	if _, ok := _c.mutation.TotalCps(); !ok {
		return &ValidationError{Name: "total_cps", err: errors.New(`repo: missing required field "YearlyStat.total_cps"`)}
	}
	if _, ok := _c.mutation.TotalPfc(); !ok {
		return &ValidationError{Name: "total_pfc", err: errors.New(`repo: missing required field "YearlyStat.total_pfc"`)}
	}
	if _, ok := _c.mutation.TotalCg(); !ok {
		return &ValidationError{Name: "total_cg", err: errors.New(`repo: missing required field "YearlyStat.total_cg"`)}
	}
	if _, ok := _c.mutation.TotalExpired(); !ok {
		return &ValidationError{Name: "total_expired", err: errors.New(`repo: missing required field "YearlyStat.total_expired"`)}
	}
	return nil
}

func (_c *YearlyStatCreate) sqlSave(ctx context.Context) (*YearlyStat, error) {
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

func (_c *YearlyStatCreate) createSpec() (*YearlyStat, *sqlgraph.CreateSpec) {
	var (
		_node = &YearlyStat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(yearlystat.Table, sqlgraph.NewFieldSpec(yearlystat.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(yearlystat.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(yearlystat.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(yearlystat.FieldYear, field.TypeInt, value)
		_node.Year = value
	}
	if value, ok := _c.mutation.TotalBags(); ok {
		_spec.SetField(yearlystat.FieldTotalBags, field.TypeInt, value)
		_node.TotalBags = value
	}
	if value, ok := _c.mutation.TotalCps(); ok {
		_spec.SetField(yearlystat.FieldTotalCps, field.TypeInt, value)
		_node.TotalCps = value
	}
	if value, ok := _c.mutation.TotalPfc(); ok {
		_spec.SetField(yearlystat.FieldTotalPfc, field.TypeInt, value)
		_node.TotalPfc = value
	}
	if value, ok := _c.mutation.TotalCg(); ok {
		_spec.SetField(yearlystat.FieldTotalCg, field.TypeInt, value)
		_node.TotalCg = value
	}
	if value, ok := _c.mutation.TotalExpired(); ok {
		_spec.SetField(yearlystat.FieldTotalExpired, field.TypeInt, value)
		_node.TotalExpired = value
	}
	if value, ok := _c.mutation.RecordedBy(); ok {
		_spec.SetField(yearlystat.FieldRecordedBy, field.TypeUUID, value)
		_node.RecordedBy = &value
	}
	return _node, _spec
}

// YearlyStatCreateBulk is the builder for creating many YearlyStat entities in bulk.
type YearlyStatCreateBulk struct {
	config
	err      error
	builders []*YearlyStatCreate
}

// Save creates the YearlyStat entities in the database.
func (_c *YearlyStatCreateBulk) Save(ctx context.Context) ([]*YearlyStat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*YearlyStat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*YearlyStatMutation)
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
func (_c *YearlyStatCreateBulk) SaveX(ctx context.Context) []*YearlyStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *YearlyStatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *YearlyStatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
