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
	"github.com/hemobank/hemobank_backend/internal/repo/component"
	"github.com/hemobank/hemobank_backend/internal/repo/predicate"
)

// ComponentUpdate is the builder for updating Component entities.
type ComponentUpdate struct {
	config
	hooks    []Hook
	mutation *ComponentMutation
}

// Where appends a list predicates to the ComponentUpdate builder.
func (_u *ComponentUpdate) Where(ps ...predicate.Component) *ComponentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ComponentUpdate) SetUpdatedAt(v time.Time) *ComponentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetType sets the "type" field.
func (_u *ComponentUpdate) SetType(v component.Type) *ComponentUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableType(v *component.Type) *ComponentUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *ComponentUpdate) SetWeight(v float64) *ComponentUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableWeight(v *float64) *ComponentUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *ComponentUpdate) AddWeight(v float64) *ComponentUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetExpireDate sets the "expire_date" field.
func (_u *ComponentUpdate) SetExpireDate(v time.Time) *ComponentUpdate {
	_u.mutation.SetExpireDate(v)
	return _u
}

// SetNillableExpireDate sets the "expire_date" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableExpireDate(v *time.Time) *ComponentUpdate {
	if v != nil {
		_u.SetExpireDate(*v)
	}
	return _u
}

// SetIsDistributed sets the "is_distributed" field.
func (_u *ComponentUpdate) SetIsDistributed(v bool) *ComponentUpdate {
	_u.mutation.SetIsDistributed(v)
	return _u
}

// SetNillableIsDistributed sets the "is_distributed" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableIsDistributed(v *bool) *ComponentUpdate {
	if v != nil {
		_u.SetIsDistributed(*v)
	}
	return _u
}

// SetBagbloodID sets the "bagblood_id" field.
func (_u *ComponentUpdate) SetBagbloodID(v uuid.UUID) *ComponentUpdate {
	_u.mutation.SetBagbloodID(v)
	return _u
}

// SetNillableBagbloodID sets the "bagblood_id" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableBagbloodID(v *uuid.UUID) *ComponentUpdate {
	if v != nil {
		_u.SetBagbloodID(*v)
	}
	return _u
}

// SetBagID sets the "bag" edge to the BloodBag entity by ID.
func (_u *ComponentUpdate) SetBagID(id uuid.UUID) *ComponentUpdate {
	_u.mutation.SetBagID(id)
	return _u
}

// SetBag sets the "bag" edge to the BloodBag entity.
func (_u *ComponentUpdate) SetBag(v *BloodBag) *ComponentUpdate {
	return _u.SetBagID(v.ID)
}

// Mutation returns the ComponentMutation object of the builder.
func (_u *ComponentUpdate) Mutation() *ComponentMutation {
	return _u.mutation
}

// ClearBag clears the "bag" edge to the BloodBag entity.
func (_u *ComponentUpdate) ClearBag() *ComponentUpdate {
	_u.mutation.ClearBag()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ComponentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComponentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ComponentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComponentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ComponentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := component.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComponentUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := component.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Component.type": %w`, err)}
		}
	}
	if _u.mutation.BagCleared() && len(_u.mutation.BagIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Component.bag"`)
	}
	return nil
}

func (_u *ComponentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(component.Table, component.Columns, sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(component.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(component.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(component.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(component.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExpireDate(); ok {
		_spec.SetField(component.FieldExpireDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDistributed(); ok {
		_spec.SetField(component.FieldIsDistributed, field.TypeBool, value)
	}
	if _u.mutation.BagCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BagIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{component.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ComponentUpdateOne is the builder for updating a single Component entity.
type ComponentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ComponentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ComponentUpdateOne) SetUpdatedAt(v time.Time) *ComponentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetType sets the "type" field.
func (_u *ComponentUpdateOne) SetType(v component.Type) *ComponentUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableType(v *component.Type) *ComponentUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *ComponentUpdateOne) SetWeight(v float64) *ComponentUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableWeight(v *float64) *ComponentUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *ComponentUpdateOne) AddWeight(v float64) *ComponentUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetExpireDate sets the "expire_date" field.
func (_u *ComponentUpdateOne) SetExpireDate(v time.Time) *ComponentUpdateOne {
	_u.mutation.SetExpireDate(v)
	return _u
}

// SetNillableExpireDate sets the "expire_date" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableExpireDate(v *time.Time) *ComponentUpdateOne {
	if v != nil {
		_u.SetExpireDate(*v)
	}
	return _u
}

// SetIsDistributed sets the "is_distributed" field.
func (_u *ComponentUpdateOne) SetIsDistributed(v bool) *ComponentUpdateOne {
	_u.mutation.SetIsDistributed(v)
	return _u
}

// SetNillableIsDistributed sets the "is_distributed" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableIsDistributed(v *bool) *ComponentUpdateOne {
	if v != nil {
		_u.SetIsDistributed(*v)
	}
	return _u
}

// SetBagbloodID sets the "bagblood_id" field.
func (_u *ComponentUpdateOne) SetBagbloodID(v uuid.UUID) *ComponentUpdateOne {
	_u.mutation.SetBagbloodID(v)
	return _u
}

// SetNillableBagbloodID sets the "bagblood_id" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableBagbloodID(v *uuid.UUID) *ComponentUpdateOne {
	if v != nil {
		_u.SetBagbloodID(*v)
	}
	return _u
}

// SetBagID sets the "bag" edge to the BloodBag entity by ID.
func (_u *ComponentUpdateOne) SetBagID(id uuid.UUID) *ComponentUpdateOne {
	_u.mutation.SetBagID(id)
	return _u
}

// SetBag sets the "bag" edge to the BloodBag entity.
func (_u *ComponentUpdateOne) SetBag(v *BloodBag) *ComponentUpdateOne {
	return _u.SetBagID(v.ID)
}

// Mutation returns the ComponentMutation object of the builder.
func (_u *ComponentUpdateOne) Mutation() *ComponentMutation {
	return _u.mutation
}

// ClearBag clears the "bag" edge to the BloodBag entity.
func (_u *ComponentUpdateOne) ClearBag() *ComponentUpdateOne {
	_u.mutation.ClearBag()
	return _u
}

// Where appends a list predicates to the ComponentUpdate builder.
func (_u *ComponentUpdateOne) Where(ps ...predicate.Component) *ComponentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ComponentUpdateOne) Select(field string, fields ...string) *ComponentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Component entity.
func (_u *ComponentUpdateOne) Save(ctx context.Context) (*Component, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComponentUpdateOne) SaveX(ctx context.Context) *Component {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ComponentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComponentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ComponentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := component.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComponentUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := component.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Component.type": %w`, err)}
		}
	}
	if _u.mutation.BagCleared() && len(_u.mutation.BagIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Component.bag"`)
	}
	return nil
}

func (_u *ComponentUpdateOne) sqlSave(ctx context.Context) (_node *Component, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(component.Table, component.Columns, sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Component.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, component.FieldID)
		for _, f := range fields {
			if !component.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != component.FieldID {
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
		_spec.SetField(component.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(component.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(component.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(component.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExpireDate(); ok {
		_spec.SetField(component.FieldExpireDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDistributed(); ok {
		_spec.SetField(component.FieldIsDistributed, field.TypeBool, value)
	}
	if _u.mutation.BagCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BagIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Component{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{component.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
