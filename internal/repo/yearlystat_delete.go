// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hemobank/hemobank_backend/internal/repo/predicate"
	"github.com/hemobank/hemobank_backend/internal/repo/yearlystat"
)

// YearlyStatDelete is the builder for deleting a YearlyStat entity.
type YearlyStatDelete struct {
	config
	hooks    []Hook
	mutation *YearlyStatMutation
}

// Where appends a list predicates to the YearlyStatDelete builder.
func (_d *YearlyStatDelete) Where(ps ...predicate.YearlyStat) *YearlyStatDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *YearlyStatDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *YearlyStatDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *YearlyStatDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(yearlystat.Table, sqlgraph.NewFieldSpec(yearlystat.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// YearlyStatDeleteOne is the builder for deleting a single YearlyStat entity.
type YearlyStatDeleteOne struct {
	_d *YearlyStatDelete
}

// Where appends a list predicates to the YearlyStatDelete builder.
func (_d *YearlyStatDeleteOne) Where(ps ...predicate.YearlyStat) *YearlyStatDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *YearlyStatDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{yearlystat.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *YearlyStatDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
