// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hemobank/hemobank_backend/internal/repo/bloodbag"
	"github.com/hemobank/hemobank_backend/internal/repo/predicate"
)

// BloodBagDelete is the builder for deleting a BloodBag entity.
type BloodBagDelete struct {
	config
	hooks    []Hook
	mutation *BloodBagMutation
}

// Where appends a list predicates to the BloodBagDelete builder.
func (_d *BloodBagDelete) Where(ps ...predicate.BloodBag) *BloodBagDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BloodBagDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BloodBagDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BloodBagDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(bloodbag.Table, sqlgraph.NewFieldSpec(bloodbag.FieldID, field.TypeUUID))
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

// BloodBagDeleteOne is the builder for deleting a single BloodBag entity.
type BloodBagDeleteOne struct {
	_d *BloodBagDelete
}

// Where appends a list predicates to the BloodBagDelete builder.
func (_d *BloodBagDeleteOne) Where(ps ...predicate.BloodBag) *BloodBagDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BloodBagDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{bloodbag.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BloodBagDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
