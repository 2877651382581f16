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
	"github.com/hemobank/hemobank_backend/internal/repo/biologist"
	"github.com/hemobank/hemobank_backend/internal/repo/bloodbag"
	"github.com/hemobank/hemobank_backend/internal/repo/predicate"
)

// BiologistUpdate is the builder for updating Biologist entities.
type BiologistUpdate struct {
	config
	hooks    []Hook
	mutation *BiologistMutation
}

// Where appends a list predicates to the BiologistUpdate builder.
func (_u *BiologistUpdate) Where(ps ...predicate.Biologist) *BiologistUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BiologistUpdate) SetUpdatedAt(v time.Time) *BiologistUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *BiologistUpdate) SetFirstName(v string) *BiologistUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *BiologistUpdate) SetNillableFirstName(v *string) *BiologistUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *BiologistUpdate) SetLastName(v string) *BiologistUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *BiologistUpdate) SetNillableLastName(v *string) *BiologistUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *BiologistUpdate) SetUsername(v string) *BiologistUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *BiologistUpdate) SetNillableUsername(v *string) *BiologistUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *BiologistUpdate) SetEmail(v string) *BiologistUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *BiologistUpdate) SetNillableEmail(v *string) *BiologistUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *BiologistUpdate) SetPhoneNumber(v string) *BiologistUpdate {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *BiologistUpdate) SetNillablePhoneNumber(v *string) *BiologistUpdate {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *BiologistUpdate) ClearPhoneNumber() *BiologistUpdate {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *BiologistUpdate) SetPasswordHash(v string) *BiologistUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *BiologistUpdate) SetNillablePasswordHash(v *string) *BiologistUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// AddBloodBagIDs adds the "blood_bags" edge to the BloodBag entity by IDs.
func (_u *BiologistUpdate) AddBloodBagIDs(ids ...uuid.UUID) *BiologistUpdate {
	_u.mutation.AddBloodBagIDs(ids...)
	return _u
}

// AddBloodBags adds the "blood_bags" edges to the BloodBag entity.
func (_u *BiologistUpdate) AddBloodBags(v ...*BloodBag) *BiologistUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBloodBagIDs(ids...)
}

// Mutation returns the BiologistMutation object of the builder.
func (_u *BiologistUpdate) Mutation() *BiologistMutation {
	return _u.mutation
}

// ClearBloodBags clears all "blood_bags" edges to the BloodBag entity.
func (_u *BiologistUpdate) ClearBloodBags() *BiologistUpdate {
	_u.mutation.ClearBloodBags()
	return _u
}

// RemoveBloodBagIDs removes the "blood_bags" edge to BloodBag entities by IDs.
func (_u *BiologistUpdate) RemoveBloodBagIDs(ids ...uuid.UUID) *BiologistUpdate {
	_u.mutation.RemoveBloodBagIDs(ids...)
	return _u
}

// RemoveBloodBags removes "blood_bags" edges to BloodBag entities.
func (_u *BiologistUpdate) RemoveBloodBags(v ...*BloodBag) *BiologistUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBloodBagIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BiologistUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BiologistUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BiologistUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BiologistUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BiologistUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := biologist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BiologistUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := biologist.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Biologist.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := biologist.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Biologist.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Username(); ok {
		if err := biologist.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`repo: validator failed for field "Biologist.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := biologist.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Biologist.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhoneNumber(); ok {
		if err := biologist.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`repo: validator failed for field "Biologist.phone_number": %w`, err)}
		}
	}
	return nil
}

func (_u *BiologistUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(biologist.Table, biologist.Columns, sqlgraph.NewFieldSpec(biologist.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(biologist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(biologist.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(biologist.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(biologist.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(biologist.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(biologist.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(biologist.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(biologist.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.BloodBagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBloodBagsIDs(); len(nodes) > 0 && !_u.mutation.BloodBagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BloodBagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{biologist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BiologistUpdateOne is the builder for updating a single Biologist entity.
type BiologistUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BiologistMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BiologistUpdateOne) SetUpdatedAt(v time.Time) *BiologistUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *BiologistUpdateOne) SetFirstName(v string) *BiologistUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *BiologistUpdateOne) SetNillableFirstName(v *string) *BiologistUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *BiologistUpdateOne) SetLastName(v string) *BiologistUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *BiologistUpdateOne) SetNillableLastName(v *string) *BiologistUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *BiologistUpdateOne) SetUsername(v string) *BiologistUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *BiologistUpdateOne) SetNillableUsername(v *string) *BiologistUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *BiologistUpdateOne) SetEmail(v string) *BiologistUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *BiologistUpdateOne) SetNillableEmail(v *string) *BiologistUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *BiologistUpdateOne) SetPhoneNumber(v string) *BiologistUpdateOne {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *BiologistUpdateOne) SetNillablePhoneNumber(v *string) *BiologistUpdateOne {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *BiologistUpdateOne) ClearPhoneNumber() *BiologistUpdateOne {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *BiologistUpdateOne) SetPasswordHash(v string) *BiologistUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *BiologistUpdateOne) SetNillablePasswordHash(v *string) *BiologistUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// AddBloodBagIDs adds the "blood_bags" edge to the BloodBag entity by IDs.
func (_u *BiologistUpdateOne) AddBloodBagIDs(ids ...uuid.UUID) *BiologistUpdateOne {
	_u.mutation.AddBloodBagIDs(ids...)
	return _u
}

// AddBloodBags adds the "blood_bags" edges to the BloodBag entity.
func (_u *BiologistUpdateOne) AddBloodBags(v ...*BloodBag) *BiologistUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBloodBagIDs(ids...)
}

// Mutation returns the BiologistMutation object of the builder.
func (_u *BiologistUpdateOne) Mutation() *BiologistMutation {
	return _u.mutation
}

// ClearBloodBags clears all "blood_bags" edges to the BloodBag entity.
func (_u *BiologistUpdateOne) ClearBloodBags() *BiologistUpdateOne {
	_u.mutation.ClearBloodBags()
	return _u
}

// RemoveBloodBagIDs removes the "blood_bags" edge to BloodBag entities by IDs.
func (_u *BiologistUpdateOne) RemoveBloodBagIDs(ids ...uuid.UUID) *BiologistUpdateOne {
	_u.mutation.RemoveBloodBagIDs(ids...)
	return _u
}

// RemoveBloodBags removes "blood_bags" edges to BloodBag entities.
func (_u *BiologistUpdateOne) RemoveBloodBags(v ...*BloodBag) *BiologistUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBloodBagIDs(ids...)
}

// Where appends a list predicates to the BiologistUpdate builder.
func (_u *BiologistUpdateOne) Where(ps ...predicate.Biologist) *BiologistUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BiologistUpdateOne) Select(field string, fields ...string) *BiologistUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Biologist entity.
func (_u *BiologistUpdateOne) Save(ctx context.Context) (*Biologist, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BiologistUpdateOne) SaveX(ctx context.Context) *Biologist {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BiologistUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BiologistUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BiologistUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := biologist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BiologistUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := biologist.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Biologist.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := biologist.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Biologist.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Username(); ok {
		if err := biologist.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`repo: validator failed for field "Biologist.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := biologist.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Biologist.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhoneNumber(); ok {
		if err := biologist.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`repo: validator failed for field "Biologist.phone_number": %w`, err)}
		}
	}
	return nil
}

func (_u *BiologistUpdateOne) sqlSave(ctx context.Context) (_node *Biologist, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(biologist.Table, biologist.Columns, sqlgraph.NewFieldSpec(biologist.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Biologist.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, biologist.FieldID)
		for _, f := range fields {
			if !biologist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != biologist.FieldID {
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
		_spec.SetField(biologist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(biologist.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(biologist.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(biologist.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(biologist.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(biologist.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(biologist.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(biologist.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.BloodBagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBloodBagsIDs(); len(nodes) > 0 && !_u.mutation.BloodBagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BloodBagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Biologist{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{biologist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
