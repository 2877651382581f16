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
	"github.com/hemobank/hemobank_backend/internal/repo/predicate"
	"github.com/hemobank/hemobank_backend/internal/repo/yearlystat"
)

// YearlyStatUpdate is the builder for updating YearlyStat entities.
type YearlyStatUpdate struct {
	config
	hooks    []Hook
	mutation *YearlyStatMutation
}

// Where appends a list predicates to the YearlyStatUpdate builder.
func (_u *YearlyStatUpdate) Where(ps ...predicate.YearlyStat) *YearlyStatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *YearlyStatUpdate) SetUpdatedAt(v time.Time) *YearlyStatUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetYear sets the "year" field.
func (_u *YearlyStatUpdate) SetYear(v int) *YearlyStatUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *YearlyStatUpdate) SetNillableYear(v *int) *YearlyStatUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *YearlyStatUpdate) AddYear(v int) *YearlyStatUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// SetTotalBags sets the "total_bags" field.
func (_u *YearlyStatUpdate) SetTotalBags(v int) *YearlyStatUpdate {
	_u.mutation.ResetTotalBags()
	_u.mutation.SetTotalBags(v)
	return _u
}

// SetNillableTotalBags sets the "total_bags" field if the given value is not nil.
func (_u *YearlyStatUpdate) SetNillableTotalBags(v *int) *YearlyStatUpdate {
	if v != nil {
		_u.SetTotalBags(*v)
	}
	return _u
}

// AddTotalBags adds value to the "total_bags" field.
func (_u *YearlyStatUpdate) AddTotalBags(v int) *YearlyStatUpdate {
	_u.mutation.AddTotalBags(v)
	return _u
}

// SetTotalCps sets the "total_cps" field.
func (_u *YearlyStatUpdate) SetTotalCps(v int) *YearlyStatUpdate {
	_u.mutation.ResetTotalCps()
	_u.mutation.SetTotalCps(v)
	return _u
}

// SetNillableTotalCps sets the "total_cps" field if the given value is not nil.
func (_u *YearlyStatUpdate) SetNillableTotalCps(v *int) *YearlyStatUpdate {
	if v != nil {
		_u.SetTotalCps(*v)
	}
	return _u
}

// AddTotalCps adds value to the "total_cps" field.
func (_u *YearlyStatUpdate) AddTotalCps(v int) *YearlyStatUpdate {
	_u.mutation.AddTotalCps(v)
	return _u
}

// SetTotalPfc sets the "total_pfc" field.
func (_u *YearlyStatUpdate) SetTotalPfc(v int) *YearlyStatUpdate {
	_u.mutation.ResetTotalPfc()
	_u.mutation.SetTotalPfc(v)
	return _u
}

// SetNillableTotalPfc sets the "total_pfc" field if the given value is not nil.
func (_u *YearlyStatUpdate) SetNillableTotalPfc(v *int) *YearlyStatUpdate {
	if v != nil {
		_u.SetTotalPfc(*v)
	}
	return _u
}

// AddTotalPfc adds value to the "total_pfc" field.
func (_u *YearlyStatUpdate) AddTotalPfc(v int) *YearlyStatUpdate {
	_u.mutation.AddTotalPfc(v)
	return _u
}

// SetTotalCg sets the "total_cg" field.
func (_u *YearlyStatUpdate) SetTotalCg(v int) *YearlyStatUpdate {
	_u.mutation.ResetTotalCg()
	_u.mutation.SetTotalCg(v)
	return _u
}

// SetNillableTotalCg sets the "total_cg" field if the given value is not nil.
func (_u *YearlyStatUpdate) SetNillableTotalCg(v *int) *YearlyStatUpdate {
	if v != nil {
		_u.SetTotalCg(*v)
	}
	return _u
}

// AddTotalCg adds value to the "total_cg" field.
func (_u *YearlyStatUpdate) AddTotalCg(v int) *YearlyStatUpdate {
	_u.mutation.AddTotalCg(v)
	return _u
}

// SetTotalExpired sets the "total_expired" field.
func (_u *YearlyStatUpdate) SetTotalExpired(v int) *YearlyStatUpdate {
	_u.mutation.ResetTotalExpired()
	_u.mutation.SetTotalExpired(v)
	return _u
}

// SetNillableTotalExpired sets the "total_expired" field if the given value is not nil.
func (_u *YearlyStatUpdate) SetNillableTotalExpired(v *int) *YearlyStatUpdate {
	if v != nil {
		_u.SetTotalExpired(*v)
	}
	return _u
}

// AddTotalExpired adds value to the "total_expired" field.
func (_u *YearlyStatUpdate) AddTotalExpired(v int) *YearlyStatUpdate {
	_u.mutation.AddTotalExpired(v)
	return _u
}

// SetRecordedBy sets the "recorded_by" field.
func (_u *YearlyStatUpdate) SetRecordedBy(v uuid.UUID) *YearlyStatUpdate {
	_u.mutation.SetRecordedBy(v)
	return _u
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_u *YearlyStatUpdate) SetNillableRecordedBy(v *uuid.UUID) *YearlyStatUpdate {
	if v != nil {
		_u.SetRecordedBy(*v)
	}
	return _u
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (_u *YearlyStatUpdate) ClearRecordedBy() *YearlyStatUpdate {
	_u.mutation.ClearRecordedBy()
	return _u
}

// Mutation returns the YearlyStatMutation object of the builder.
func (_u *YearlyStatUpdate) Mutation() *YearlyStatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *YearlyStatUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *YearlyStatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *YearlyStatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *YearlyStatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *YearlyStatUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := yearlystat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *YearlyStatUpdate) check() error {
	if v, ok := _u.mutation.Year(); ok {
		if err := yearlystat.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`repo: validator failed for field "YearlyStat.year": %w`, err)}
		}
	}
	return nil
}

func (_u *YearlyStatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(yearlystat.Table, yearlystat.Columns, sqlgraph.NewFieldSpec(yearlystat.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(yearlystat.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(yearlystat.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(yearlystat.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalBags(); ok {
		_spec.SetField(yearlystat.FieldTotalBags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalBags(); ok {
		_spec.AddField(yearlystat.FieldTotalBags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCps(); ok {
		_spec.SetField(yearlystat.FieldTotalCps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCps(); ok {
		_spec.AddField(yearlystat.FieldTotalCps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPfc(); ok {
		_spec.SetField(yearlystat.FieldTotalPfc, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPfc(); ok {
		_spec.AddField(yearlystat.FieldTotalPfc, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCg(); ok {
		_spec.SetField(yearlystat.FieldTotalCg, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCg(); ok {
		_spec.AddField(yearlystat.FieldTotalCg, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalExpired(); ok {
		_spec.SetField(yearlystat.FieldTotalExpired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalExpired(); ok {
		_spec.AddField(yearlystat.FieldTotalExpired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecordedBy(); ok {
		_spec.SetField(yearlystat.FieldRecordedBy, field.TypeUUID, value)
	}
	if _u.mutation.RecordedByCleared() {
		_spec.ClearField(yearlystat.FieldRecordedBy, field.TypeUUID)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{yearlystat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// YearlyStatUpdateOne is the builder for updating a single YearlyStat entity.
type YearlyStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *YearlyStatMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *YearlyStatUpdateOne) SetUpdatedAt(v time.Time) *YearlyStatUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetYear sets the "year" field.
func (_u *YearlyStatUpdateOne) SetYear(v int) *YearlyStatUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *YearlyStatUpdateOne) SetNillableYear(v *int) *YearlyStatUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *YearlyStatUpdateOne) AddYear(v int) *YearlyStatUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// SetTotalBags sets the "total_bags" field.
func (_u *YearlyStatUpdateOne) SetTotalBags(v int) *YearlyStatUpdateOne {
	_u.mutation.ResetTotalBags()
	_u.mutation.SetTotalBags(v)
	return _u
}

// SetNillableTotalBags sets the "total_bags" field if the given value is not nil.
func (_u *YearlyStatUpdateOne) SetNillableTotalBags(v *int) *YearlyStatUpdateOne {
	if v != nil {
		_u.SetTotalBags(*v)
	}
	return _u
}

// AddTotalBags adds value to the "total_bags" field.
func (_u *YearlyStatUpdateOne) AddTotalBags(v int) *YearlyStatUpdateOne {
	_u.mutation.AddTotalBags(v)
	return _u
}

// SetTotalCps sets the "total_cps" field.
func (_u *YearlyStatUpdateOne) SetTotalCps(v int) *YearlyStatUpdateOne {
	_u.mutation.ResetTotalCps()
	_u.mutation.SetTotalCps(v)
	return _u
}

// SetNillableTotalCps sets the "total_cps" field if the given value is not nil.
func (_u *YearlyStatUpdateOne) SetNillableTotalCps(v *int) *YearlyStatUpdateOne {
	if v != nil {
		_u.SetTotalCps(*v)
	}
	return _u
}

// AddTotalCps adds value to the "total_cps" field.
func (_u *YearlyStatUpdateOne) AddTotalCps(v int) *YearlyStatUpdateOne {
	_u.mutation.AddTotalCps(v)
	return _u
}

// SetTotalPfc sets the "total_pfc" field.
func (_u *YearlyStatUpdateOne) SetTotalPfc(v int) *YearlyStatUpdateOne {
	_u.mutation.ResetTotalPfc()
	_u.mutation.SetTotalPfc(v)
	return _u
}

// SetNillableTotalPfc sets the "total_pfc" field if the given value is not nil.
func (_u *YearlyStatUpdateOne) SetNillableTotalPfc(v *int) *YearlyStatUpdateOne {
	if v != nil {
		_u.SetTotalPfc(*v)
	}
	return _u
}

// AddTotalPfc adds value to the "total_pfc" field.
func (_u *YearlyStatUpdateOne) AddTotalPfc(v int) *YearlyStatUpdateOne {
	_u.mutation.AddTotalPfc(v)
	return _u
}

// SetTotalCg sets the "total_cg" field.
func (_u *YearlyStatUpdateOne) SetTotalCg(v int) *YearlyStatUpdateOne {
	_u.mutation.ResetTotalCg()
	_u.mutation.SetTotalCg(v)
	return _u
}

// SetNillableTotalCg sets the "total_cg" field if the given value is not nil.
func (_u *YearlyStatUpdateOne) SetNillableTotalCg(v *int) *YearlyStatUpdateOne {
	if v != nil {
		_u.SetTotalCg(*v)
	}
	return _u
}

// AddTotalCg adds value to the "total_cg" field.
func (_u *YearlyStatUpdateOne) AddTotalCg(v int) *YearlyStatUpdateOne {
	_u.mutation.AddTotalCg(v)
	return _u
}

// SetTotalExpired sets the "total_expired" field.
func (_u *YearlyStatUpdateOne) SetTotalExpired(v int) *YearlyStatUpdateOne {
	_u.mutation.ResetTotalExpired()
	_u.mutation.SetTotalExpired(v)
	return _u
}

// SetNillableTotalExpired sets the "total_expired" field if the given value is not nil.
func (_u *YearlyStatUpdateOne) SetNillableTotalExpired(v *int) *YearlyStatUpdateOne {
	if v != nil {
		_u.SetTotalExpired(*v)
	}
	return _u
}

// AddTotalExpired adds value to the "total_expired" field.
func (_u *YearlyStatUpdateOne) AddTotalExpired(v int) *YearlyStatUpdateOne {
	_u.mutation.AddTotalExpired(v)
	return _u
}

// SetRecordedBy sets the "recorded_by" field.
func (_u *YearlyStatUpdateOne) SetRecordedBy(v uuid.UUID) *YearlyStatUpdateOne {
	_u.mutation.SetRecordedBy(v)
	return _u
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_u *YearlyStatUpdateOne) SetNillableRecordedBy(v *uuid.UUID) *YearlyStatUpdateOne {
	if v != nil {
		_u.SetRecordedBy(*v)
	}
	return _u
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (_u *YearlyStatUpdateOne) ClearRecordedBy() *YearlyStatUpdateOne {
	_u.mutation.ClearRecordedBy()
	return _u
}

// Mutation returns the YearlyStatMutation object of the builder.
func (_u *YearlyStatUpdateOne) Mutation() *YearlyStatMutation {
	return _u.mutation
}

// Where appends a list predicates to the YearlyStatUpdate builder.
func (_u *YearlyStatUpdateOne) Where(ps ...predicate.YearlyStat) *YearlyStatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *YearlyStatUpdateOne) Select(field string, fields ...string) *YearlyStatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated YearlyStat entity.
func (_u *YearlyStatUpdateOne) Save(ctx context.Context) (*YearlyStat, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *YearlyStatUpdateOne) SaveX(ctx context.Context) *YearlyStat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *YearlyStatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *YearlyStatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *YearlyStatUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := yearlystat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *YearlyStatUpdateOne) check() error {
	if v, ok := _u.mutation.Year(); ok {
		if err := yearlystat.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`repo: validator failed for field "YearlyStat.year": %w`, err)}
		}
	}
	return nil
}

func (_u *YearlyStatUpdateOne) sqlSave(ctx context.Context) (_node *YearlyStat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(yearlystat.Table, yearlystat.Columns, sqlgraph.NewFieldSpec(yearlystat.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "YearlyStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, yearlystat.FieldID)
		for _, f := range fields {
			if !yearlystat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != yearlystat.FieldID {
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
		_spec.SetField(yearlystat.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(yearlystat.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(yearlystat.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalBags(); ok {
		_spec.SetField(yearlystat.FieldTotalBags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalBags(); ok {
		_spec.AddField(yearlystat.FieldTotalBags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCps(); ok {
		_spec.SetField(yearlystat.FieldTotalCps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCps(); ok {
		_spec.AddField(yearlystat.FieldTotalCps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPfc(); ok {
		_spec.SetField(yearlystat.FieldTotalPfc, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPfc(); ok {
		_spec.AddField(yearlystat.FieldTotalPfc, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCg(); ok {
		_spec.SetField(yearlystat.FieldTotalCg, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCg(); ok {
		_spec.AddField(yearlystat.FieldTotalCg, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalExpired(); ok {
		_spec.SetField(yearlystat.FieldTotalExpired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalExpired(); ok {
		_spec.AddField(yearlystat.FieldTotalExpired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecordedBy(); ok {
		_spec.SetField(yearlystat.FieldRecordedBy, field.TypeUUID, value)
	}
	if _u.mutation.RecordedByCleared() {
		_spec.ClearField(yearlystat.FieldRecordedBy, field.TypeUUID)
	}
	_node = &YearlyStat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{yearlystat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
