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
	"github.com/hemobank/hemobank_backend/internal/repo/component"
	"github.com/hemobank/hemobank_backend/internal/repo/distribution"
)

// BloodBagCreate is the builder for creating a BloodBag entity.
type BloodBagCreate struct {
	config
	mutation *BloodBagMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *BloodBagCreate) SetCreatedAt(v time.Time) *BloodBagCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BloodBagCreate) SetNillableCreatedAt(v *time.Time) *BloodBagCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BloodBagCreate) SetUpdatedAt(v time.Time) *BloodBagCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BloodBagCreate) SetNillableUpdatedAt(v *time.Time) *BloodBagCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBagNumber sets the "bag_number" field.
func (_c *BloodBagCreate) SetBagNumber(v string) *BloodBagCreate {
	_c.mutation.SetBagNumber(v)
	return _c
}

// SetBloodGroup sets the "blood_group" field.
func (_c *BloodBagCreate) SetBloodGroup(v string) *BloodBagCreate {
	_c.mutation.SetBloodGroup(v)
	return _c
}

// SetDonationID sets the "donation_id" field.
func (_c *BloodBagCreate) SetDonationID(v string) *BloodBagCreate {
	_c.mutation.SetDonationID(v)
	return _c
}

// SetBagType sets the "bag_type" field.
func (_c *BloodBagCreate) SetBagType(v string) *BloodBagCreate {
	_c.mutation.SetBagType(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *BloodBagCreate) SetWeight(v float64) *BloodBagCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetCollectionDate sets the "collection_date" field.
func (_c *BloodBagCreate) SetCollectionDate(v time.Time) *BloodBagCreate {
	_c.mutation.SetCollectionDate(v)
	return _c
}

// SetExpireDate sets the "expire_date" field.
func (_c *BloodBagCreate) SetExpireDate(v time.Time) *BloodBagCreate {
	_c.mutation.SetExpireDate(v)
	return _c
}

// SetHbsAg sets the "hbs_ag" field.
func (_c *BloodBagCreate) SetHbsAg(v string) *BloodBagCreate {
	_c.mutation.SetHbsAg(v)
	return _c
}

// SetHcv sets the "hcv" field.
func (_c *BloodBagCreate) SetHcv(v string) *BloodBagCreate {
	_c.mutation.SetHcv(v)
	return _c
}

// SetHiv sets the "hiv" field.
func (_c *BloodBagCreate) SetHiv(v string) *BloodBagCreate {
	_c.mutation.SetHiv(v)
	return _c
}

// SetTpha sets the "tpha" field.
func (_c *BloodBagCreate) SetTpha(v string) *BloodBagCreate {
	_c.mutation.SetTpha(v)
	return _c
}

// SetAntiHtlv sets the "anti_htlv" field.
func (_c *BloodBagCreate) SetAntiHtlv(v string) *BloodBagCreate {
	_c.mutation.SetAntiHtlv(v)
	return _c
}

// SetIsDistributed sets the "is_distributed" field.
func (_c *BloodBagCreate) SetIsDistributed(v bool) *BloodBagCreate {
	_c.mutation.SetIsDistributed(v)
	return _c
}

// SetNillableIsDistributed sets the "is_distributed" field if the given value is not nil.
func (_c *BloodBagCreate) SetNillableIsDistributed(v *bool) *BloodBagCreate {
	if v != nil {
		_c.SetIsDistributed(*v)
	}
	return _c
}

// SetBiologistID sets the "biologist_id" field.
func (_c *BloodBagCreate) SetBiologistID(v uuid.UUID) *BloodBagCreate {
	_c.mutation.SetBiologistID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *BloodBagCreate) SetID(v uuid.UUID) *BloodBagCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BloodBagCreate) SetNillableID(v *uuid.UUID) *BloodBagCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBiologist sets the "biologist" edge to the Biologist entity.
func (_c *BloodBagCreate) SetBiologist(v *Biologist) *BloodBagCreate {
	return _c.SetBiologistID(v.ID)
}

// AddComponentIDs adds the "components" edge to the Component entity by IDs.
func (_c *BloodBagCreate) AddComponentIDs(ids ...uuid.UUID) *BloodBagCreate {
	_c.mutation.AddComponentIDs(ids...)
	return _c
}

// AddComponents adds the "components" edges to the Component entity.
func (_c *BloodBagCreate) AddComponents(v ...*Component) *BloodBagCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddComponentIDs(ids...)
}

// AddDistributionIDs adds the "distributions" edge to the Distribution entity by IDs.
func (_c *BloodBagCreate) AddDistributionIDs(ids ...uuid.UUID) *BloodBagCreate {
	_c.mutation.AddDistributionIDs(ids...)
	return _c
}

// AddDistributions adds the "distributions" edges to the Distribution entity.
func (_c *BloodBagCreate) AddDistributions(v ...*Distribution) *BloodBagCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDistributionIDs(ids...)
}

// Mutation returns the BloodBagMutation object of the builder.
func (_c *BloodBagCreate) Mutation() *BloodBagMutation {
	return _c.mutation
}

// Save creates the BloodBag in the database.
func (_c *BloodBagCreate) Save(ctx context.Context) (*BloodBag, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BloodBagCreate) SaveX(ctx context.Context) *BloodBag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BloodBagCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BloodBagCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BloodBagCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bloodbag.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bloodbag.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsDistributed(); !ok {
		v := bloodbag.DefaultIsDistributed
		_c.mutation.SetIsDistributed(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bloodbag.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BloodBagCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "BloodBag.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "BloodBag.updated_at"`)}
	}
	if _, ok := _c.mutation.BagNumber(); !ok {
		return &ValidationError{Name: "bag_number", err: errors.New(`repo: missing required field "BloodBag.bag_number"`)}
	}
	if v, ok := _c.mutation.BagNumber(); ok {
		if err := bloodbag.BagNumberValidator(v); err != nil {
			return &ValidationError{Name: "bag_number", err: fmt.Errorf(`repo: validator failed for field "BloodBag.bag_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BloodGroup(); !ok {
		return &ValidationError{Name: "blood_group", err: errors.New(`repo: missing required field "BloodBag.blood_group"`)}
	}
	if v, ok := _c.mutation.BloodGroup(); ok {
		if err := bloodbag.BloodGroupValidator(v); err != nil {
			return &ValidationError{Name: "blood_group", err: fmt.Errorf(`repo: validator failed for field "BloodBag.blood_group": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DonationID(); !ok {
		return &ValidationError{Name: "donation_id", err: errors.New(`repo: missing required field "BloodBag.donation_id"`)}
	}
	if v, ok := _c.mutation.DonationID(); ok {
		if err := bloodbag.DonationIDValidator(v); err != nil {
			return &ValidationError{Name: "donation_id", err: fmt.Errorf(`repo: validator failed for field "BloodBag.donation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BagType(); !ok {
		return &ValidationError{Name: "bag_type", err: errors.New(`repo: missing required field "BloodBag.bag_type"`)}
	}
	if v, ok := _c.mutation.BagType(); ok {
		if err := bloodbag.BagTypeValidator(v); err != nil {
			return &ValidationError{Name: "bag_type", err: fmt.Errorf(`repo: validator failed for field "BloodBag.bag_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`repo: missing required field "BloodBag.weight"`)}
	}
	if _, ok := _c.mutation.CollectionDate(); !ok {
		return &ValidationError{Name: "collection_date", err: errors.New(`repo: missing required field "BloodBag.collection_date"`)}
	}
	if _, ok := _c.mutation.ExpireDate(); !ok {
		return &ValidationError{Name: "expire_date", err: errors.New(`repo: missing required field "BloodBag.expire_date"`)}
	}
	if _, ok := _c.mutation.HbsAg(); !ok {
		return &ValidationError{Name: "hbs_ag", err: errors.New(`repo: missing required field "BloodBag.hbs_ag"`)}
	}
	if v, ok := _c.mutation.HbsAg(); ok {
		if err := bloodbag.HbsAgValidator(v); err != nil {
			return &ValidationError{Name: "hbs_ag", err: fmt.Errorf(`repo: validator failed for field "BloodBag.hbs_ag": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hcv(); !ok {
		return &ValidationError{Name: "hcv", err: errors.New(`repo: missing required field "BloodBag.hcv"`)}
	}
	if v, ok := _c.mutation.Hcv(); ok {
		if err := bloodbag.HcvValidator(v); err != nil {
			return &ValidationError{Name: "hcv", err: fmt.Errorf(`repo: validator failed for field "BloodBag.hcv": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hiv(); !ok {
		return &ValidationError{Name: "hiv", err: errors.New(`repo: missing required field "BloodBag.hiv"`)}
	}
	if v, ok := _c.mutation.Hiv(); ok {
		if err := bloodbag.HivValidator(v); err != nil {
			return &ValidationError{Name: "hiv", err: fmt.Errorf(`repo: validator failed for field "BloodBag.hiv": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tpha(); !ok {
		return &ValidationError{Name: "tpha", err: errors.New(`repo: missing required field "BloodBag.tpha"`)}
	}
	if v, ok := _c.mutation.Tpha(); ok {
		if err := bloodbag.TphaValidator(v); err != nil {
			return &ValidationError{Name: "tpha", err: fmt.Errorf(`repo: validator failed for field "BloodBag.tpha": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AntiHtlv(); !ok {
		return &ValidationError{Name: "anti_htlv", err: errors.New(`repo: missing required field "BloodBag.anti_htlv"`)}
	}
	if v, ok := _c.mutation.AntiHtlv(); ok {
		if err := bloodbag.AntiHtlvValidator(v); err != nil {
			return &ValidationError{Name: "anti_htlv", err: fmt.Errorf(`repo: validator failed for field "BloodBag.anti_htlv": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDistributed(); !ok {
		return &ValidationError{Name: "is_distributed", err: errors.New(`repo: missing required field "BloodBag.is_distributed"`)}
	}
	if _, ok := _c.mutation.BiologistID(); !ok {
		return &ValidationError{Name: "biologist_id", err: errors.New(`repo: missing required field "BloodBag.biologist_id"`)}
	}
	if len(_c.mutation.BiologistIDs()) == 0 {
		return &ValidationError{Name: "biologist", err: errors.New(`repo: missing required edge "BloodBag.biologist"`)}
	}
	return nil
}

func (_c *BloodBagCreate) sqlSave(ctx context.Context) (*BloodBag, error) {
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

func (_c *BloodBagCreate) createSpec() (*BloodBag, *sqlgraph.CreateSpec) {
	var (
		_node = &BloodBag{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bloodbag.Table, sqlgraph.NewFieldSpec(bloodbag.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bloodbag.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bloodbag.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.BagNumber(); ok {
		_spec.SetField(bloodbag.FieldBagNumber, field.TypeString, value)
		_node.BagNumber = value
	}
	if value, ok := _c.mutation.BloodGroup(); ok {
		_spec.SetField(bloodbag.FieldBloodGroup, field.TypeString, value)
		_node.BloodGroup = value
	}
	if value, ok := _c.mutation.DonationID(); ok {
		_spec.SetField(bloodbag.FieldDonationID, field.TypeString, value)
		_node.DonationID = value
	}
	if value, ok := _c.mutation.BagType(); ok {
		_spec.SetField(bloodbag.FieldBagType, field.TypeString, value)
		_node.BagType = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(bloodbag.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.CollectionDate(); ok {
		_spec.SetField(bloodbag.FieldCollectionDate, field.TypeTime, value)
		_node.CollectionDate = value
	}
	if value, ok := _c.mutation.ExpireDate(); ok {
		_spec.SetField(bloodbag.FieldExpireDate, field.TypeTime, value)
		_node.ExpireDate = value
	}
	if value, ok := _c.mutation.HbsAg(); ok {
		_spec.SetField(bloodbag.FieldHbsAg, field.TypeString, value)
		_node.HbsAg = value
	}
	if value, ok := _c.mutation.Hcv(); ok {
		_spec.SetField(bloodbag.FieldHcv, field.TypeString, value)
		_node.Hcv = value
	}
	if value, ok := _c.mutation.Hiv(); ok {
		_spec.SetField(bloodbag.FieldHiv, field.TypeString, value)
		_node.Hiv = value
	}
	if value, ok := _c.mutation.Tpha(); ok {
		_spec.SetField(bloodbag.FieldTpha, field.TypeString, value)
		_node.Tpha = value
	}
	if value, ok := _c.mutation.AntiHtlv(); ok {
		_spec.SetField(bloodbag.FieldAntiHtlv, field.TypeString, value)
		_node.AntiHtlv = value
	}
	if value, ok := _c.mutation.IsDistributed(); ok {
		_spec.SetField(bloodbag.FieldIsDistributed, field.TypeBool, value)
		_node.IsDistributed = value
	}
	if nodes := _c.mutation.BiologistIDs(); len(nodes) > 0 {
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
		_node.BiologistID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ComponentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DistributionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BloodBagCreateBulk is the builder for creating many BloodBag entities in bulk.
type BloodBagCreateBulk struct {
	config
	err      error
	builders []*BloodBagCreate
}

// Save creates the BloodBag entities in the database.
func (_c *BloodBagCreateBulk) Save(ctx context.Context) ([]*BloodBag, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BloodBag, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BloodBagMutation)
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
func (_c *BloodBagCreateBulk) SaveX(ctx context.Context) []*BloodBag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BloodBagCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BloodBagCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
