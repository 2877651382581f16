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
	"github.com/hemobank/hemobank_backend/internal/repo/component"
	"github.com/hemobank/hemobank_backend/internal/repo/distribution"
	"github.com/hemobank/hemobank_backend/internal/repo/predicate"
)

// BloodBagUpdate is the builder for updating BloodBag entities.
type BloodBagUpdate struct {
	config
	hooks    []Hook
	mutation *BloodBagMutation
}

// Where appends a list predicates to the BloodBagUpdate builder.
func (_u *BloodBagUpdate) Where(ps ...predicate.BloodBag) *BloodBagUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BloodBagUpdate) SetUpdatedAt(v time.Time) *BloodBagUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBagNumber sets the "bag_number" field.
func (_u *BloodBagUpdate) SetBagNumber(v string) *BloodBagUpdate {
	_u.mutation.SetBagNumber(v)
	return _u
}

// SetNillableBagNumber sets the "bag_number" field if the given value is not nil.
func (_u *BloodBagUpdate) SetNillableBagNumber(v *string) *BloodBagUpdate {
	if v != nil {
		_u.SetBagNumber(*v)
	}
	return _u
}

// SetBloodGroup sets the "blood_group" field.
func (_u *BloodBagUpdate) SetBloodGroup(v string) *BloodBagUpdate {
	_u.mutation.SetBloodGroup(v)
	return _u
}

// SetNillableBloodGroup sets the "blood_group" field if the given value is not nil.
func (_u *BloodBagUpdate) SetNillableBloodGroup(v *string) *BloodBagUpdate {
	if v != nil {
		_u.SetBloodGroup(*v)
	}
	return _u
}

// SetDonationID sets the "donation_id" field.
func (_u *BloodBagUpdate) SetDonationID(v string) *BloodBagUpdate {
	_u.mutation.SetDonationID(v)
	return _u
}

// SetNillableDonationID sets the "donation_id" field if the given value is not nil.
func (_u *BloodBagUpdate) SetNillableDonationID(v *string) *BloodBagUpdate {
	if v != nil {
		_u.SetDonationID(*v)
	}
	return _u
}

// SetBagType sets the "bag_type" field.
func (_u *BloodBagUpdate) SetBagType(v string) *BloodBagUpdate {
	_u.mutation.SetBagType(v)
	return _u
}

// SetNillableBagType sets the "bag_type" field if the given value is not nil.
func (_u *BloodBagUpdate) SetNillableBagType(v *string) *BloodBagUpdate {
	if v != nil {
		_u.SetBagType(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *BloodBagUpdate) SetWeight(v float64) *BloodBagUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *BloodBagUpdate) SetNillableWeight(v *float64) *BloodBagUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *BloodBagUpdate) AddWeight(v float64) *BloodBagUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetCollectionDate sets the "collection_date" field.
func (_u *BloodBagUpdate) SetCollectionDate(v time.Time) *BloodBagUpdate {
	_u.mutation.SetCollectionDate(v)
	return _u
}

// SetNillableCollectionDate sets the "collection_date" field if the given value is not nil.
func (_u *BloodBagUpdate) SetNillableCollectionDate(v *time.Time) *BloodBagUpdate {
	if v != nil {
		_u.SetCollectionDate(*v)
	}
	return _u
}

// SetExpireDate sets the "expire_date" field.
func (_u *BloodBagUpdate) SetExpireDate(v time.Time) *BloodBagUpdate {
	_u.mutation.SetExpireDate(v)
	return _u
}

// SetNillableExpireDate sets the "expire_date" field if the given value is not nil.
func (_u *BloodBagUpdate) SetNillableExpireDate(v *time.Time) *BloodBagUpdate {
	if v != nil {
		_u.SetExpireDate(*v)
	}
	return _u
}

// SetHbsAg sets the "hbs_ag" field.
func (_u *BloodBagUpdate) SetHbsAg(v string) *BloodBagUpdate {
	_u.mutation.SetHbsAg(v)
	return _u
}

// SetNillableHbsAg sets the "hbs_ag" field if the given value is not nil.
func (_u *BloodBagUpdate) SetNillableHbsAg(v *string) *BloodBagUpdate {
	if v != nil {
		_u.SetHbsAg(*v)
	}
	return _u
}

// SetHcv sets the "hcv" field.
func (_u *BloodBagUpdate) SetHcv(v string) *BloodBagUpdate {
	_u.mutation.SetHcv(v)
	return _u
}

// SetNillableHcv sets the "hcv" field if the given value is not nil.
func (_u *BloodBagUpdate) SetNillableHcv(v *string) *BloodBagUpdate {
	if v != nil {
		_u.SetHcv(*v)
	}
	return _u
}

// SetHiv sets the "hiv" field.
func (_u *BloodBagUpdate) SetHiv(v string) *BloodBagUpdate {
	_u.mutation.SetHiv(v)
	return _u
}

// SetNillableHiv sets the "hiv" field if the given value is not nil.
func (_u *BloodBagUpdate) SetNillableHiv(v *string) *BloodBagUpdate {
	if v != nil {
		_u.SetHiv(*v)
	}
	return _u
}

// SetTpha sets the "tpha" field.
func (_u *BloodBagUpdate) SetTpha(v string) *BloodBagUpdate {
	_u.mutation.SetTpha(v)
	return _u
}

// SetNillableTpha sets the "tpha" field if the given value is not nil.
func (_u *BloodBagUpdate) SetNillableTpha(v *string) *BloodBagUpdate {
	if v != nil {
		_u.SetTpha(*v)
	}
	return _u
}

// SetAntiHtlv sets the "anti_htlv" field.
func (_u *BloodBagUpdate) SetAntiHtlv(v string) *BloodBagUpdate {
	_u.mutation.SetAntiHtlv(v)
	return _u
}

// SetNillableAntiHtlv sets the "anti_htlv" field if the given value is not nil.
func (_u *BloodBagUpdate) SetNillableAntiHtlv(v *string) *BloodBagUpdate {
	if v != nil {
		_u.SetAntiHtlv(*v)
	}
	return _u
}

// SetIsDistributed sets the "is_distributed" field.
func (_u *BloodBagUpdate) SetIsDistributed(v bool) *BloodBagUpdate {
	_u.mutation.SetIsDistributed(v)
	return _u
}

// SetNillableIsDistributed sets the "is_distributed" field if the given value is not nil.
func (_u *BloodBagUpdate) SetNillableIsDistributed(v *bool) *BloodBagUpdate {
	if v != nil {
		_u.SetIsDistributed(*v)
	}
	return _u
}

// SetBiologistID sets the "biologist_id" field.
func (_u *BloodBagUpdate) SetBiologistID(v uuid.UUID) *BloodBagUpdate {
	_u.mutation.SetBiologistID(v)
	return _u
}

// SetNillableBiologistID sets the "biologist_id" field if the given value is not nil.
func (_u *BloodBagUpdate) SetNillableBiologistID(v *uuid.UUID) *BloodBagUpdate {
	if v != nil {
		_u.SetBiologistID(*v)
	}
	return _u
}

// SetBiologist sets the "biologist" edge to the Biologist entity.
func (_u *BloodBagUpdate) SetBiologist(v *Biologist) *BloodBagUpdate {
	return _u.SetBiologistID(v.ID)
}

// AddComponentIDs adds the "components" edge to the Component entity by IDs.
func (_u *BloodBagUpdate) AddComponentIDs(ids ...uuid.UUID) *BloodBagUpdate {
	_u.mutation.AddComponentIDs(ids...)
	return _u
}

// AddComponents adds the "components" edges to the Component entity.
func (_u *BloodBagUpdate) AddComponents(v ...*Component) *BloodBagUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddComponentIDs(ids...)
}

// AddDistributionIDs adds the "distributions" edge to the Distribution entity by IDs.
func (_u *BloodBagUpdate) AddDistributionIDs(ids ...uuid.UUID) *BloodBagUpdate {
	_u.mutation.AddDistributionIDs(ids...)
	return _u
}

// AddDistributions adds the "distributions" edges to the Distribution entity.
func (_u *BloodBagUpdate) AddDistributions(v ...*Distribution) *BloodBagUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDistributionIDs(ids...)
}

// Mutation returns the BloodBagMutation object of the builder.
func (_u *BloodBagUpdate) Mutation() *BloodBagMutation {
	return _u.mutation
}

// ClearBiologist clears the "biologist" edge to the Biologist entity.
func (_u *BloodBagUpdate) ClearBiologist() *BloodBagUpdate {
	_u.mutation.ClearBiologist()
	return _u
}

// ClearComponents clears all "components" edges to the Component entity.
func (_u *BloodBagUpdate) ClearComponents() *BloodBagUpdate {
	_u.mutation.ClearComponents()
	return _u
}

// RemoveComponentIDs removes the "components" edge to Component entities by IDs.
func (_u *BloodBagUpdate) RemoveComponentIDs(ids ...uuid.UUID) *BloodBagUpdate {
	_u.mutation.RemoveComponentIDs(ids...)
	return _u
}

// RemoveComponents removes "components" edges to Component entities.
func (_u *BloodBagUpdate) RemoveComponents(v ...*Component) *BloodBagUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveComponentIDs(ids...)
}

// ClearDistributions clears all "distributions" edges to the Distribution entity.
func (_u *BloodBagUpdate) ClearDistributions() *BloodBagUpdate {
	_u.mutation.ClearDistributions()
	return _u
}

// RemoveDistributionIDs removes the "distributions" edge to Distribution entities by IDs.
func (_u *BloodBagUpdate) RemoveDistributionIDs(ids ...uuid.UUID) *BloodBagUpdate {
	_u.mutation.RemoveDistributionIDs(ids...)
	return _u
}

// RemoveDistributions removes "distributions" edges to Distribution entities.
func (_u *BloodBagUpdate) RemoveDistributions(v ...*Distribution) *BloodBagUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDistributionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BloodBagUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BloodBagUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BloodBagUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BloodBagUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BloodBagUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bloodbag.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BloodBagUpdate) check() error {
	if v, ok := _u.mutation.BagNumber(); ok {
		if err := bloodbag.BagNumberValidator(v); err != nil {
			return &ValidationError{Name: "bag_number", err: fmt.Errorf(`repo: validator failed for field "BloodBag.bag_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloodGroup(); ok {
		if err := bloodbag.BloodGroupValidator(v); err != nil {
			return &ValidationError{Name: "blood_group", err: fmt.Errorf(`repo: validator failed for field "BloodBag.blood_group": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DonationID(); ok {
		if err := bloodbag.DonationIDValidator(v); err != nil {
			return &ValidationError{Name: "donation_id", err: fmt.Errorf(`repo: validator failed for field "BloodBag.donation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BagType(); ok {
		if err := bloodbag.BagTypeValidator(v); err != nil {
			return &ValidationError{Name: "bag_type", err: fmt.Errorf(`repo: validator failed for field "BloodBag.bag_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HbsAg(); ok {
		if err := bloodbag.HbsAgValidator(v); err != nil {
			return &ValidationError{Name: "hbs_ag", err: fmt.Errorf(`repo: validator failed for field "BloodBag.hbs_ag": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hcv(); ok {
		if err := bloodbag.HcvValidator(v); err != nil {
			return &ValidationError{Name: "hcv", err: fmt.Errorf(`repo: validator failed for field "BloodBag.hcv": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hiv(); ok {
		if err := bloodbag.HivValidator(v); err != nil {
			return &ValidationError{Name: "hiv", err: fmt.Errorf(`repo: validator failed for field "BloodBag.hiv": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tpha(); ok {
		if err := bloodbag.TphaValidator(v); err != nil {
			return &ValidationError{Name: "tpha", err: fmt.Errorf(`repo: validator failed for field "BloodBag.tpha": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AntiHtlv(); ok {
		if err := bloodbag.AntiHtlvValidator(v); err != nil {
			return &ValidationError{Name: "anti_htlv", err: fmt.Errorf(`repo: validator failed for field "BloodBag.anti_htlv": %w`, err)}
		}
	}
	if _u.mutation.BiologistCleared() && len(_u.mutation.BiologistIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BloodBag.biologist"`)
	}
	return nil
}

func (_u *BloodBagUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bloodbag.Table, bloodbag.Columns, sqlgraph.NewFieldSpec(bloodbag.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bloodbag.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BagNumber(); ok {
		_spec.SetField(bloodbag.FieldBagNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.BloodGroup(); ok {
		_spec.SetField(bloodbag.FieldBloodGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.DonationID(); ok {
		_spec.SetField(bloodbag.FieldDonationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BagType(); ok {
		_spec.SetField(bloodbag.FieldBagType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(bloodbag.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(bloodbag.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CollectionDate(); ok {
		_spec.SetField(bloodbag.FieldCollectionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpireDate(); ok {
		_spec.SetField(bloodbag.FieldExpireDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.HbsAg(); ok {
		_spec.SetField(bloodbag.FieldHbsAg, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hcv(); ok {
		_spec.SetField(bloodbag.FieldHcv, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hiv(); ok {
		_spec.SetField(bloodbag.FieldHiv, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tpha(); ok {
		_spec.SetField(bloodbag.FieldTpha, field.TypeString, value)
	}
	if value, ok := _u.mutation.AntiHtlv(); ok {
		_spec.SetField(bloodbag.FieldAntiHtlv, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDistributed(); ok {
		_spec.SetField(bloodbag.FieldIsDistributed, field.TypeBool, value)
	}
	if _u.mutation.BiologistCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bloodbag.BiologistTable,
			Columns: []string{bloodbag.BiologistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biologist.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BiologistIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bloodbag.BiologistTable,
			Columns: []string{bloodbag.BiologistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biologist.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ComponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bloodbag.ComponentsTable,
			Columns: []string{bloodbag.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedComponentsIDs(); len(nodes) > 0 && !_u.mutation.ComponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bloodbag.ComponentsTable,
			Columns: []string{bloodbag.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ComponentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bloodbag.ComponentsTable,
			Columns: []string{bloodbag.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DistributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bloodbag.DistributionsTable,
			Columns: []string{bloodbag.DistributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distribution.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDistributionsIDs(); len(nodes) > 0 && !_u.mutation.DistributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bloodbag.DistributionsTable,
			Columns: []string{bloodbag.DistributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distribution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DistributionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bloodbag.DistributionsTable,
			Columns: []string{bloodbag.DistributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distribution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bloodbag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BloodBagUpdateOne is the builder for updating a single BloodBag entity.
type BloodBagUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BloodBagMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BloodBagUpdateOne) SetUpdatedAt(v time.Time) *BloodBagUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBagNumber sets the "bag_number" field.
func (_u *BloodBagUpdateOne) SetBagNumber(v string) *BloodBagUpdateOne {
	_u.mutation.SetBagNumber(v)
	return _u
}

// SetNillableBagNumber sets the "bag_number" field if the given value is not nil.
func (_u *BloodBagUpdateOne) SetNillableBagNumber(v *string) *BloodBagUpdateOne {
	if v != nil {
		_u.SetBagNumber(*v)
	}
	return _u
}

// SetBloodGroup sets the "blood_group" field.
func (_u *BloodBagUpdateOne) SetBloodGroup(v string) *BloodBagUpdateOne {
	_u.mutation.SetBloodGroup(v)
	return _u
}

// SetNillableBloodGroup sets the "blood_group" field if the given value is not nil.
func (_u *BloodBagUpdateOne) SetNillableBloodGroup(v *string) *BloodBagUpdateOne {
	if v != nil {
		_u.SetBloodGroup(*v)
	}
	return _u
}

// SetDonationID sets the "donation_id" field.
func (_u *BloodBagUpdateOne) SetDonationID(v string) *BloodBagUpdateOne {
	_u.mutation.SetDonationID(v)
	return _u
}

// SetNillableDonationID sets the "donation_id" field if the given value is not nil.
func (_u *BloodBagUpdateOne) SetNillableDonationID(v *string) *BloodBagUpdateOne {
	if v != nil {
		_u.SetDonationID(*v)
	}
	return _u
}

// SetBagType sets the "bag_type" field.
func (_u *BloodBagUpdateOne) SetBagType(v string) *BloodBagUpdateOne {
	_u.mutation.SetBagType(v)
	return _u
}

// SetNillableBagType sets the "bag_type" field if the given value is not nil.
func (_u *BloodBagUpdateOne) SetNillableBagType(v *string) *BloodBagUpdateOne {
	if v != nil {
		_u.SetBagType(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *BloodBagUpdateOne) SetWeight(v float64) *BloodBagUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *BloodBagUpdateOne) SetNillableWeight(v *float64) *BloodBagUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *BloodBagUpdateOne) AddWeight(v float64) *BloodBagUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetCollectionDate sets the "collection_date" field.
func (_u *BloodBagUpdateOne) SetCollectionDate(v time.Time) *BloodBagUpdateOne {
	_u.mutation.SetCollectionDate(v)
	return _u
}

// SetNillableCollectionDate sets the "collection_date" field if the given value is not nil.
func (_u *BloodBagUpdateOne) SetNillableCollectionDate(v *time.Time) *BloodBagUpdateOne {
	if v != nil {
		_u.SetCollectionDate(*v)
	}
	return _u
}

// SetExpireDate sets the "expire_date" field.
func (_u *BloodBagUpdateOne) SetExpireDate(v time.Time) *BloodBagUpdateOne {
	_u.mutation.SetExpireDate(v)
	return _u
}

// SetNillableExpireDate sets the "expire_date" field if the given value is not nil.
func (_u *BloodBagUpdateOne) SetNillableExpireDate(v *time.Time) *BloodBagUpdateOne {
	if v != nil {
		_u.SetExpireDate(*v)
	}
	return _u
}

// SetHbsAg sets the "hbs_ag" field.
func (_u *BloodBagUpdateOne) SetHbsAg(v string) *BloodBagUpdateOne {
	_u.mutation.SetHbsAg(v)
	return _u
}

// SetNillableHbsAg sets the "hbs_ag" field if the given value is not nil.
func (_u *BloodBagUpdateOne) SetNillableHbsAg(v *string) *BloodBagUpdateOne {
	if v != nil {
		_u.SetHbsAg(*v)
	}
	return _u
}

// SetHcv sets the "hcv" field.
func (_u *BloodBagUpdateOne) SetHcv(v string) *BloodBagUpdateOne {
	_u.mutation.SetHcv(v)
	return _u
}

// SetNillableHcv sets the "hcv" field if the given value is not nil.
func (_u *BloodBagUpdateOne) SetNillableHcv(v *string) *BloodBagUpdateOne {
	if v != nil {
		_u.SetHcv(*v)
	}
	return _u
}

// SetHiv sets the "hiv" field.
func (_u *BloodBagUpdateOne) SetHiv(v string) *BloodBagUpdateOne {
	_u.mutation.SetHiv(v)
	return _u
}

// SetNillableHiv sets the "hiv" field if the given value is not nil.
func (_u *BloodBagUpdateOne) SetNillableHiv(v *string) *BloodBagUpdateOne {
	if v != nil {
		_u.SetHiv(*v)
	}
	return _u
}

// SetTpha sets the "tpha" field.
func (_u *BloodBagUpdateOne) SetTpha(v string) *BloodBagUpdateOne {
	_u.mutation.SetTpha(v)
	return _u
}

// SetNillableTpha sets the "tpha" field if the given value is not nil.
func (_u *BloodBagUpdateOne) SetNillableTpha(v *string) *BloodBagUpdateOne {
	if v != nil {
		_u.SetTpha(*v)
	}
	return _u
}

// SetAntiHtlv sets the "anti_htlv" field.
func (_u *BloodBagUpdateOne) SetAntiHtlv(v string) *BloodBagUpdateOne {
	_u.mutation.SetAntiHtlv(v)
	return _u
}

// SetNillableAntiHtlv sets the "anti_htlv" field if the given value is not nil.
func (_u *BloodBagUpdateOne) SetNillableAntiHtlv(v *string) *BloodBagUpdateOne {
	if v != nil {
		_u.SetAntiHtlv(*v)
	}
	return _u
}

// SetIsDistributed sets the "is_distributed" field.
func (_u *BloodBagUpdateOne) SetIsDistributed(v bool) *BloodBagUpdateOne {
	_u.mutation.SetIsDistributed(v)
	return _u
}

// SetNillableIsDistributed sets the "is_distributed" field if the given value is not nil.
func (_u *BloodBagUpdateOne) SetNillableIsDistributed(v *bool) *BloodBagUpdateOne {
	if v != nil {
		_u.SetIsDistributed(*v)
	}
	return _u
}

// SetBiologistID sets the "biologist_id" field.
func (_u *BloodBagUpdateOne) SetBiologistID(v uuid.UUID) *BloodBagUpdateOne {
	_u.mutation.SetBiologistID(v)
	return _u
}

// SetNillableBiologistID sets the "biologist_id" field if the given value is not nil.
func (_u *BloodBagUpdateOne) SetNillableBiologistID(v *uuid.UUID) *BloodBagUpdateOne {
	if v != nil {
		_u.SetBiologistID(*v)
	}
	return _u
}

// SetBiologist sets the "biologist" edge to the Biologist entity.
func (_u *BloodBagUpdateOne) SetBiologist(v *Biologist) *BloodBagUpdateOne {
	return _u.SetBiologistID(v.ID)
}

// AddComponentIDs adds the "components" edge to the Component entity by IDs.
func (_u *BloodBagUpdateOne) AddComponentIDs(ids ...uuid.UUID) *BloodBagUpdateOne {
	_u.mutation.AddComponentIDs(ids...)
	return _u
}

// AddComponents adds the "components" edges to the Component entity.
func (_u *BloodBagUpdateOne) AddComponents(v ...*Component) *BloodBagUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddComponentIDs(ids...)
}

// AddDistributionIDs adds the "distributions" edge to the Distribution entity by IDs.
func (_u *BloodBagUpdateOne) AddDistributionIDs(ids ...uuid.UUID) *BloodBagUpdateOne {
	_u.mutation.AddDistributionIDs(ids...)
	return _u
}

// AddDistributions adds the "distributions" edges to the Distribution entity.
func (_u *BloodBagUpdateOne) AddDistributions(v ...*Distribution) *BloodBagUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDistributionIDs(ids...)
}

// Mutation returns the BloodBagMutation object of the builder.
func (_u *BloodBagUpdateOne) Mutation() *BloodBagMutation {
	return _u.mutation
}

// ClearBiologist clears the "biologist" edge to the Biologist entity.
func (_u *BloodBagUpdateOne) ClearBiologist() *BloodBagUpdateOne {
	_u.mutation.ClearBiologist()
	return _u
}

// ClearComponents clears all "components" edges to the Component entity.
func (_u *BloodBagUpdateOne) ClearComponents() *BloodBagUpdateOne {
	_u.mutation.ClearComponents()
	return _u
}

// RemoveComponentIDs removes the "components" edge to Component entities by IDs.
func (_u *BloodBagUpdateOne) RemoveComponentIDs(ids ...uuid.UUID) *BloodBagUpdateOne {
	_u.mutation.RemoveComponentIDs(ids...)
	return _u
}

// RemoveComponents removes "components" edges to Component entities.
func (_u *BloodBagUpdateOne) RemoveComponents(v ...*Component) *BloodBagUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveComponentIDs(ids...)
}

// ClearDistributions clears all "distributions" edges to the Distribution entity.
func (_u *BloodBagUpdateOne) ClearDistributions() *BloodBagUpdateOne {
	_u.mutation.ClearDistributions()
	return _u
}

// RemoveDistributionIDs removes the "distributions" edge to Distribution entities by IDs.
func (_u *BloodBagUpdateOne) RemoveDistributionIDs(ids ...uuid.UUID) *BloodBagUpdateOne {
	_u.mutation.RemoveDistributionIDs(ids...)
	return _u
}

// RemoveDistributions removes "distributions" edges to Distribution entities.
func (_u *BloodBagUpdateOne) RemoveDistributions(v ...*Distribution) *BloodBagUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDistributionIDs(ids...)
}

// Where appends a list predicates to the BloodBagUpdate builder.
func (_u *BloodBagUpdateOne) Where(ps ...predicate.BloodBag) *BloodBagUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BloodBagUpdateOne) Select(field string, fields ...string) *BloodBagUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BloodBag entity.
func (_u *BloodBagUpdateOne) Save(ctx context.Context) (*BloodBag, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BloodBagUpdateOne) SaveX(ctx context.Context) *BloodBag {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BloodBagUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BloodBagUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BloodBagUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bloodbag.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BloodBagUpdateOne) check() error {
	if v, ok := _u.mutation.BagNumber(); ok {
		if err := bloodbag.BagNumberValidator(v); err != nil {
			return &ValidationError{Name: "bag_number", err: fmt.Errorf(`repo: validator failed for field "BloodBag.bag_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloodGroup(); ok {
		if err := bloodbag.BloodGroupValidator(v); err != nil {
			return &ValidationError{Name: "blood_group", err: fmt.Errorf(`repo: validator failed for field "BloodBag.blood_group": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DonationID(); ok {
		if err := bloodbag.DonationIDValidator(v); err != nil {
			return &ValidationError{Name: "donation_id", err: fmt.Errorf(`repo: validator failed for field "BloodBag.donation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BagType(); ok {
		if err := bloodbag.BagTypeValidator(v); err != nil {
			return &ValidationError{Name: "bag_type", err: fmt.Errorf(`repo: validator failed for field "BloodBag.bag_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HbsAg(); ok {
		if err := bloodbag.HbsAgValidator(v); err != nil {
			return &ValidationError{Name: "hbs_ag", err: fmt.Errorf(`repo: validator failed for field "BloodBag.hbs_ag": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hcv(); ok {
		if err := bloodbag.HcvValidator(v); err != nil {
			return &ValidationError{Name: "hcv", err: fmt.Errorf(`repo: validator failed for field "BloodBag.hcv": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hiv(); ok {
		if err := bloodbag.HivValidator(v); err != nil {
			return &ValidationError{Name: "hiv", err: fmt.Errorf(`repo: validator failed for field "BloodBag.hiv": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tpha(); ok {
		if err := bloodbag.TphaValidator(v); err != nil {
			return &ValidationError{Name: "tpha", err: fmt.Errorf(`repo: validator failed for field "BloodBag.tpha": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AntiHtlv(); ok {
		if err := bloodbag.AntiHtlvValidator(v); err != nil {
			return &ValidationError{Name: "anti_htlv", err: fmt.Errorf(`repo: validator failed for field "BloodBag.anti_htlv": %w`, err)}
		}
	}
	if _u.mutation.BiologistCleared() && len(_u.mutation.BiologistIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BloodBag.biologist"`)
	}
	return nil
}

func (_u *BloodBagUpdateOne) sqlSave(ctx context.Context) (_node *BloodBag, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bloodbag.Table, bloodbag.Columns, sqlgraph.NewFieldSpec(bloodbag.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BloodBag.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bloodbag.FieldID)
		for _, f := range fields {
			if !bloodbag.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != bloodbag.FieldID {
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
		_spec.SetField(bloodbag.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BagNumber(); ok {
		_spec.SetField(bloodbag.FieldBagNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.BloodGroup(); ok {
		_spec.SetField(bloodbag.FieldBloodGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.DonationID(); ok {
		_spec.SetField(bloodbag.FieldDonationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BagType(); ok {
		_spec.SetField(bloodbag.FieldBagType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(bloodbag.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(bloodbag.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CollectionDate(); ok {
		_spec.SetField(bloodbag.FieldCollectionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpireDate(); ok {
		_spec.SetField(bloodbag.FieldExpireDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.HbsAg(); ok {
		_spec.SetField(bloodbag.FieldHbsAg, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hcv(); ok {
		_spec.SetField(bloodbag.FieldHcv, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hiv(); ok {
		_spec.SetField(bloodbag.FieldHiv, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tpha(); ok {
		_spec.SetField(bloodbag.FieldTpha, field.TypeString, value)
	}
	if value, ok := _u.mutation.AntiHtlv(); ok {
		_spec.SetField(bloodbag.FieldAntiHtlv, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDistributed(); ok {
		_spec.SetField(bloodbag.FieldIsDistributed, field.TypeBool, value)
	}
	if _u.mutation.BiologistCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bloodbag.BiologistTable,
			Columns: []string{bloodbag.BiologistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biologist.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BiologistIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bloodbag.BiologistTable,
			Columns: []string{bloodbag.BiologistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biologist.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ComponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bloodbag.ComponentsTable,
			Columns: []string{bloodbag.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedComponentsIDs(); len(nodes) > 0 && !_u.mutation.ComponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bloodbag.ComponentsTable,
			Columns: []string{bloodbag.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ComponentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bloodbag.ComponentsTable,
			Columns: []string{bloodbag.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DistributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bloodbag.DistributionsTable,
			Columns: []string{bloodbag.DistributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distribution.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDistributionsIDs(); len(nodes) > 0 && !_u.mutation.DistributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bloodbag.DistributionsTable,
			Columns: []string{bloodbag.DistributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distribution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DistributionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bloodbag.DistributionsTable,
			Columns: []string{bloodbag.DistributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distribution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BloodBag{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bloodbag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
