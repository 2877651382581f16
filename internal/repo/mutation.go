// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hemobank/hemobank_backend/internal/repo/biologist"
	"github.com/hemobank/hemobank_backend/internal/repo/bloodbag"
	"github.com/hemobank/hemobank_backend/internal/repo/chefservice"
	"github.com/hemobank/hemobank_backend/internal/repo/component"
	"github.com/hemobank/hemobank_backend/internal/repo/distribution"
	"github.com/hemobank/hemobank_backend/internal/repo/predicate"
	"github.com/hemobank/hemobank_backend/internal/repo/yearlystat"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBiologist    = "Biologist"
	TypeBloodBag     = "BloodBag"
	TypeChefService  = "ChefService"
	TypeComponent    = "Component"
	TypeDistribution = "Distribution"
	TypeYearlyStat   = "YearlyStat"
)

// BiologistMutation represents an operation that mutates the Biologist nodes in the graph.
type BiologistMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	first_name        *string
	last_name         *string
	username          *string
	email             *string
	phone_number      *string
	password_hash     *string
	clearedFields     map[string]struct{}
	blood_bags        map[uuid.UUID]struct{}
	removedblood_bags map[uuid.UUID]struct{}
	clearedblood_bags bool
	done              bool
	oldValue          func(context.Context) (*Biologist, error)
	predicates        []predicate.Biologist
}

var _ ent.Mutation = (*BiologistMutation)(nil)

// biologistOption allows management of the mutation configuration using functional options.
type biologistOption func(*BiologistMutation)

// newBiologistMutation creates new mutation for the Biologist entity.
func newBiologistMutation(c config, op Op, opts ...biologistOption) *BiologistMutation {
	m := &BiologistMutation{
		config:        c,
		op:            op,
		typ:           TypeBiologist,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBiologistID sets the ID field of the mutation.
func withBiologistID(id uuid.UUID) biologistOption {
	return func(m *BiologistMutation) {
		var (
			err   error
			once  sync.Once
			value *Biologist
		)
		m.oldValue = func(ctx context.Context) (*Biologist, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Biologist.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBiologist sets the old Biologist of the mutation.
func withBiologist(node *Biologist) biologistOption {
	return func(m *BiologistMutation) {
		m.oldValue = func(context.Context) (*Biologist, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BiologistMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BiologistMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Biologist entities.
func (m *BiologistMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BiologistMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BiologistMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Biologist.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BiologistMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BiologistMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Biologist entity.
// If the Biologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiologistMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BiologistMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BiologistMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BiologistMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Biologist entity.
// If the Biologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiologistMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BiologistMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFirstName sets the "first_name" field.
func (m *BiologistMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *BiologistMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Biologist entity.
// If the Biologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiologistMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *BiologistMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *BiologistMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *BiologistMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Biologist entity.
// If the Biologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiologistMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *BiologistMutation) ResetLastName() {
	m.last_name = nil
}

// SetUsername sets the "username" field.
func (m *BiologistMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *BiologistMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the Biologist entity.
// If the Biologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiologistMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *BiologistMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *BiologistMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *BiologistMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Biologist entity.
// If the Biologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiologistMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *BiologistMutation) ResetEmail() {
	m.email = nil
}

// SetPhoneNumber sets the "phone_number" field.
func (m *BiologistMutation) SetPhoneNumber(s string) {
	m.phone_number = &s
}

// PhoneNumber returns the value of the "phone_number" field in the mutation.
func (m *BiologistMutation) PhoneNumber() (r string, exists bool) {
	v := m.phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumber returns the old "phone_number" field's value of the Biologist entity.
// If the Biologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiologistMutation) OldPhoneNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumber: %w", err)
	}
	return oldValue.PhoneNumber, nil
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (m *BiologistMutation) ClearPhoneNumber() {
	m.phone_number = nil
	m.clearedFields[biologist.FieldPhoneNumber] = struct{}{}
}

// PhoneNumberCleared returns if the "phone_number" field was cleared in this mutation.
func (m *BiologistMutation) PhoneNumberCleared() bool {
	_, ok := m.clearedFields[biologist.FieldPhoneNumber]
	return ok
}

// ResetPhoneNumber resets all changes to the "phone_number" field.
func (m *BiologistMutation) ResetPhoneNumber() {
	m.phone_number = nil
	delete(m.clearedFields, biologist.FieldPhoneNumber)
}

// SetPasswordHash sets the "password_hash" field.
func (m *BiologistMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *BiologistMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the Biologist entity.
// If the Biologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiologistMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *BiologistMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// AddBloodBagIDs adds the "blood_bags" edge to the BloodBag entity by ids.
func (m *BiologistMutation) AddBloodBagIDs(ids ...uuid.UUID) {
	if m.blood_bags == nil {
		m.blood_bags = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.blood_bags[ids[i]] = struct{}{}
	}
}

// ClearBloodBags clears the "blood_bags" edge to the BloodBag entity.
func (m *BiologistMutation) ClearBloodBags() {
	m.clearedblood_bags = true
}

// BloodBagsCleared reports if the "blood_bags" edge to the BloodBag entity was cleared.
func (m *BiologistMutation) BloodBagsCleared() bool {
	return m.clearedblood_bags
}

// RemoveBloodBagIDs removes the "blood_bags" edge to the BloodBag entity by IDs.
func (m *BiologistMutation) RemoveBloodBagIDs(ids ...uuid.UUID) {
	if m.removedblood_bags == nil {
		m.removedblood_bags = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.blood_bags, ids[i])
		m.removedblood_bags[ids[i]] = struct{}{}
	}
}

// RemovedBloodBags returns the removed IDs of the "blood_bags" edge to the BloodBag entity.
func (m *BiologistMutation) RemovedBloodBagsIDs() (ids []uuid.UUID) {
	for id := range m.removedblood_bags {
		ids = append(ids, id)
	}
	return
}

// BloodBagsIDs returns the "blood_bags" edge IDs in the mutation.
func (m *BiologistMutation) BloodBagsIDs() (ids []uuid.UUID) {
	for id := range m.blood_bags {
		ids = append(ids, id)
	}
	return
}

// ResetBloodBags resets all changes to the "blood_bags" edge.
func (m *BiologistMutation) ResetBloodBags() {
	m.blood_bags = nil
	m.clearedblood_bags = false
	m.removedblood_bags = nil
}

// Where appends a list predicates to the BiologistMutation builder.
func (m *BiologistMutation) Where(ps ...predicate.Biologist) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BiologistMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BiologistMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Biologist, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BiologistMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BiologistMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Biologist).
func (m *BiologistMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BiologistMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, biologist.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, biologist.FieldUpdatedAt)
	}
	if m.first_name != nil {
		fields = append(fields, biologist.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, biologist.FieldLastName)
	}
	if m.username != nil {
		fields = append(fields, biologist.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, biologist.FieldEmail)
	}
	if m.phone_number != nil {
		fields = append(fields, biologist.FieldPhoneNumber)
	}
	if m.password_hash != nil {
		fields = append(fields, biologist.FieldPasswordHash)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BiologistMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case biologist.FieldCreatedAt:
		return m.CreatedAt()
	case biologist.FieldUpdatedAt:
		return m.UpdatedAt()
	case biologist.FieldFirstName:
		return m.FirstName()
	case biologist.FieldLastName:
		return m.LastName()
	case biologist.FieldUsername:
		return m.Username()
	case biologist.FieldEmail:
		return m.Email()
	case biologist.FieldPhoneNumber:
		return m.PhoneNumber()
	case biologist.FieldPasswordHash:
		return m.PasswordHash()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BiologistMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case biologist.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case biologist.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case biologist.FieldFirstName:
		return m.OldFirstName(ctx)
	case biologist.FieldLastName:
		return m.OldLastName(ctx)
	case biologist.FieldUsername:
		return m.OldUsername(ctx)
	case biologist.FieldEmail:
		return m.OldEmail(ctx)
	case biologist.FieldPhoneNumber:
		return m.OldPhoneNumber(ctx)
	case biologist.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	}
	return nil, fmt.Errorf("unknown Biologist field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BiologistMutation) SetField(name string, value ent.Value) error {
	switch name {
	case biologist.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case biologist.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case biologist.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case biologist.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case biologist.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case biologist.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case biologist.FieldPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumber(v)
		return nil
	case biologist.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	}
	return fmt.Errorf("unknown Biologist field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BiologistMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BiologistMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BiologistMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Biologist numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BiologistMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(biologist.FieldPhoneNumber) {
		fields = append(fields, biologist.FieldPhoneNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BiologistMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BiologistMutation) ClearField(name string) error {
	switch name {
	case biologist.FieldPhoneNumber:
		m.ClearPhoneNumber()
		return nil
	}
	return fmt.Errorf("unknown Biologist nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BiologistMutation) ResetField(name string) error {
	switch name {
	case biologist.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case biologist.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case biologist.FieldFirstName:
		m.ResetFirstName()
		return nil
	case biologist.FieldLastName:
		m.ResetLastName()
		return nil
	case biologist.FieldUsername:
		m.ResetUsername()
		return nil
	case biologist.FieldEmail:
		m.ResetEmail()
		return nil
	case biologist.FieldPhoneNumber:
		m.ResetPhoneNumber()
		return nil
	case biologist.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	}
	return fmt.Errorf("unknown Biologist field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BiologistMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.blood_bags != nil {
		edges = append(edges, biologist.EdgeBloodBags)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BiologistMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case biologist.EdgeBloodBags:
		ids := make([]ent.Value, 0, len(m.blood_bags))
		for id := range m.blood_bags {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BiologistMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedblood_bags != nil {
		edges = append(edges, biologist.EdgeBloodBags)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BiologistMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case biologist.EdgeBloodBags:
		ids := make([]ent.Value, 0, len(m.removedblood_bags))
		for id := range m.removedblood_bags {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BiologistMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedblood_bags {
		edges = append(edges, biologist.EdgeBloodBags)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BiologistMutation) EdgeCleared(name string) bool {
	switch name {
	case biologist.EdgeBloodBags:
		return m.clearedblood_bags
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BiologistMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Biologist unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BiologistMutation) ResetEdge(name string) error {
	switch name {
	case biologist.EdgeBloodBags:
		m.ResetBloodBags()
		return nil
	}
	return fmt.Errorf("unknown Biologist edge %s", name)
}

// BloodBagMutation represents an operation that mutates the BloodBag nodes in the graph.
type BloodBagMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	bag_number           *string
	blood_group          *string
	donation_id          *string
	bag_type             *string
	weight               *float64
	addweight            *float64
	collection_date      *time.Time
	expire_date          *time.Time
	hbs_ag               *string
	hcv                  *string
	hiv                  *string
	tpha                 *string
	anti_htlv            *string
	is_distributed       *bool
	clearedFields        map[string]struct{}
	biologist            *uuid.UUID
	clearedbiologist     bool
	components           map[uuid.UUID]struct{}
	removedcomponents    map[uuid.UUID]struct{}
	clearedcomponents    bool
	distributions        map[uuid.UUID]struct{}
	removeddistributions map[uuid.UUID]struct{}
	cleareddistributions bool
	done                 bool
	oldValue             func(context.Context) (*BloodBag, error)
	predicates           []predicate.BloodBag
}

var _ ent.Mutation = (*BloodBagMutation)(nil)

// bloodbagOption allows management of the mutation configuration using functional options.
type bloodbagOption func(*BloodBagMutation)

// newBloodBagMutation creates new mutation for the BloodBag entity.
func newBloodBagMutation(c config, op Op, opts ...bloodbagOption) *BloodBagMutation {
	m := &BloodBagMutation{
		config:        c,
		op:            op,
		typ:           TypeBloodBag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBloodBagID sets the ID field of the mutation.
func withBloodBagID(id uuid.UUID) bloodbagOption {
	return func(m *BloodBagMutation) {
		var (
			err   error
			once  sync.Once
			value *BloodBag
		)
		m.oldValue = func(ctx context.Context) (*BloodBag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BloodBag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBloodBag sets the old BloodBag of the mutation.
func withBloodBag(node *BloodBag) bloodbagOption {
	return func(m *BloodBagMutation) {
		m.oldValue = func(context.Context) (*BloodBag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BloodBagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BloodBagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BloodBag entities.
func (m *BloodBagMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BloodBagMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BloodBagMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BloodBag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BloodBagMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BloodBagMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BloodBagMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BloodBagMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BloodBagMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BloodBagMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetBagNumber sets the "bag_number" field.
func (m *BloodBagMutation) SetBagNumber(s string) {
	m.bag_number = &s
}

// BagNumber returns the value of the "bag_number" field in the mutation.
func (m *BloodBagMutation) BagNumber() (r string, exists bool) {
	v := m.bag_number
	if v == nil {
		return
	}
	return *v, true
}

// OldBagNumber returns the old "bag_number" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldBagNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBagNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBagNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBagNumber: %w", err)
	}
	return oldValue.BagNumber, nil
}

// ResetBagNumber resets all changes to the "bag_number" field.
func (m *BloodBagMutation) ResetBagNumber() {
	m.bag_number = nil
}

// SetBloodGroup sets the "blood_group" field.
func (m *BloodBagMutation) SetBloodGroup(s string) {
	m.blood_group = &s
}

// BloodGroup returns the value of the "blood_group" field in the mutation.
func (m *BloodBagMutation) BloodGroup() (r string, exists bool) {
	v := m.blood_group
	if v == nil {
		return
	}
	return *v, true
}

// OldBloodGroup returns the old "blood_group" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldBloodGroup(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBloodGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBloodGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBloodGroup: %w", err)
	}
	return oldValue.BloodGroup, nil
}

// ResetBloodGroup resets all changes to the "blood_group" field.
func (m *BloodBagMutation) ResetBloodGroup() {
	m.blood_group = nil
}

// SetDonationID sets the "donation_id" field.
func (m *BloodBagMutation) SetDonationID(s string) {
	m.donation_id = &s
}

// DonationID returns the value of the "donation_id" field in the mutation.
func (m *BloodBagMutation) DonationID() (r string, exists bool) {
	v := m.donation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDonationID returns the old "donation_id" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldDonationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDonationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDonationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDonationID: %w", err)
	}
	return oldValue.DonationID, nil
}

// ResetDonationID resets all changes to the "donation_id" field.
func (m *BloodBagMutation) ResetDonationID() {
	m.donation_id = nil
}

// SetBagType sets the "bag_type" field.
func (m *BloodBagMutation) SetBagType(s string) {
	m.bag_type = &s
}

// BagType returns the value of the "bag_type" field in the mutation.
func (m *BloodBagMutation) BagType() (r string, exists bool) {
	v := m.bag_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBagType returns the old "bag_type" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldBagType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBagType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBagType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBagType: %w", err)
	}
	return oldValue.BagType, nil
}

// ResetBagType resets all changes to the "bag_type" field.
func (m *BloodBagMutation) ResetBagType() {
	m.bag_type = nil
}

// SetWeight sets the "weight" field.
func (m *BloodBagMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *BloodBagMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *BloodBagMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *BloodBagMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *BloodBagMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetCollectionDate sets the "collection_date" field.
func (m *BloodBagMutation) SetCollectionDate(t time.Time) {
	m.collection_date = &t
}

// CollectionDate returns the value of the "collection_date" field in the mutation.
func (m *BloodBagMutation) CollectionDate() (r time.Time, exists bool) {
	v := m.collection_date
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectionDate returns the old "collection_date" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldCollectionDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectionDate: %w", err)
	}
	return oldValue.CollectionDate, nil
}

// ResetCollectionDate resets all changes to the "collection_date" field.
func (m *BloodBagMutation) ResetCollectionDate() {
	m.collection_date = nil
}

// SetExpireDate sets the "expire_date" field.
func (m *BloodBagMutation) SetExpireDate(t time.Time) {
	m.expire_date = &t
}

// ExpireDate returns the value of the "expire_date" field in the mutation.
func (m *BloodBagMutation) ExpireDate() (r time.Time, exists bool) {
	v := m.expire_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExpireDate returns the old "expire_date" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldExpireDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpireDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpireDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpireDate: %w", err)
	}
	return oldValue.ExpireDate, nil
}

// ResetExpireDate resets all changes to the "expire_date" field.
func (m *BloodBagMutation) ResetExpireDate() {
	m.expire_date = nil
}

// SetHbsAg sets the "hbs_ag" field.
func (m *BloodBagMutation) SetHbsAg(s string) {
	m.hbs_ag = &s
}

// HbsAg returns the value of the "hbs_ag" field in the mutation.
func (m *BloodBagMutation) HbsAg() (r string, exists bool) {
	v := m.hbs_ag
	if v == nil {
		return
	}
	return *v, true
}

// OldHbsAg returns the old "hbs_ag" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldHbsAg(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHbsAg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHbsAg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHbsAg: %w", err)
	}
	return oldValue.HbsAg, nil
}

// ResetHbsAg resets all changes to the "hbs_ag" field.
func (m *BloodBagMutation) ResetHbsAg() {
	m.hbs_ag = nil
}

// SetHcv sets the "hcv" field.
func (m *BloodBagMutation) SetHcv(s string) {
	m.hcv = &s
}

// Hcv returns the value of the "hcv" field in the mutation.
func (m *BloodBagMutation) Hcv() (r string, exists bool) {
	v := m.hcv
	if v == nil {
		return
	}
	return *v, true
}

// OldHcv returns the old "hcv" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldHcv(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHcv is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHcv requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHcv: %w", err)
	}
	return oldValue.Hcv, nil
}

// ResetHcv resets all changes to the "hcv" field.
func (m *BloodBagMutation) ResetHcv() {
	m.hcv = nil
}

// SetHiv sets the "hiv" field.
func (m *BloodBagMutation) SetHiv(s string) {
	m.hiv = &s
}

// Hiv returns the value of the "hiv" field in the mutation.
func (m *BloodBagMutation) Hiv() (r string, exists bool) {
	v := m.hiv
	if v == nil {
		return
	}
	return *v, true
}

// OldHiv returns the old "hiv" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldHiv(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHiv is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHiv requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHiv: %w", err)
	}
	return oldValue.Hiv, nil
}

// ResetHiv resets all changes to the "hiv" field.
func (m *BloodBagMutation) ResetHiv() {
	m.hiv = nil
}

// SetTpha sets the "tpha" field.
func (m *BloodBagMutation) SetTpha(s string) {
	m.tpha = &s
}

// Tpha returns the value of the "tpha" field in the mutation.
func (m *BloodBagMutation) Tpha() (r string, exists bool) {
	v := m.tpha
	if v == nil {
		return
	}
	return *v, true
}

// OldTpha returns the old "tpha" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldTpha(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTpha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTpha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTpha: %w", err)
	}
	return oldValue.Tpha, nil
}

// ResetTpha resets all changes to the "tpha" field.
func (m *BloodBagMutation) ResetTpha() {
	m.tpha = nil
}

// SetAntiHtlv sets the "anti_htlv" field.
func (m *BloodBagMutation) SetAntiHtlv(s string) {
	m.anti_htlv = &s
}

// AntiHtlv returns the value of the "anti_htlv" field in the mutation.
func (m *BloodBagMutation) AntiHtlv() (r string, exists bool) {
	v := m.anti_htlv
	if v == nil {
		return
	}
	return *v, true
}

// OldAntiHtlv returns the old "anti_htlv" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldAntiHtlv(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAntiHtlv is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAntiHtlv requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAntiHtlv: %w", err)
	}
	return oldValue.AntiHtlv, nil
}

// ResetAntiHtlv resets all changes to the "anti_htlv" field.
func (m *BloodBagMutation) ResetAntiHtlv() {
	m.anti_htlv = nil
}

// SetIsDistributed sets the "is_distributed" field.
func (m *BloodBagMutation) SetIsDistributed(b bool) {
	m.is_distributed = &b
}

// IsDistributed returns the value of the "is_distributed" field in the mutation.
func (m *BloodBagMutation) IsDistributed() (r bool, exists bool) {
	v := m.is_distributed
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDistributed returns the old "is_distributed" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldIsDistributed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDistributed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDistributed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDistributed: %w", err)
	}
	return oldValue.IsDistributed, nil
}

// ResetIsDistributed resets all changes to the "is_distributed" field.
func (m *BloodBagMutation) ResetIsDistributed() {
	m.is_distributed = nil
}

// SetBiologistID sets the "biologist_id" field.
func (m *BloodBagMutation) SetBiologistID(u uuid.UUID) {
	m.biologist = &u
}

// BiologistID returns the value of the "biologist_id" field in the mutation.
func (m *BloodBagMutation) BiologistID() (r uuid.UUID, exists bool) {
	v := m.biologist
	if v == nil {
		return
	}
	return *v, true
}

// OldBiologistID returns the old "biologist_id" field's value of the BloodBag entity.
// If the BloodBag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodBagMutation) OldBiologistID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBiologistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBiologistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBiologistID: %w", err)
	}
	return oldValue.BiologistID, nil
}

// ResetBiologistID resets all changes to the "biologist_id" field.
func (m *BloodBagMutation) ResetBiologistID() {
	m.biologist = nil
}

// ClearBiologist clears the "biologist" edge to the Biologist entity.
func (m *BloodBagMutation) ClearBiologist() {
	m.clearedbiologist = true
	m.clearedFields[bloodbag.FieldBiologistID] = struct{}{}
}

// BiologistCleared reports if the "biologist" edge to the Biologist entity was cleared.
func (m *BloodBagMutation) BiologistCleared() bool {
	return m.clearedbiologist
}

// BiologistIDs returns the "biologist" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BiologistID instead. It exists only for internal usage by the builders.
func (m *BloodBagMutation) BiologistIDs() (ids []uuid.UUID) {
	if id := m.biologist; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBiologist resets all changes to the "biologist" edge.
func (m *BloodBagMutation) ResetBiologist() {
	m.biologist = nil
	m.clearedbiologist = false
}

// AddComponentIDs adds the "components" edge to the Component entity by ids.
func (m *BloodBagMutation) AddComponentIDs(ids ...uuid.UUID) {
	if m.components == nil {
		m.components = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.components[ids[i]] = struct{}{}
	}
}

// ClearComponents clears the "components" edge to the Component entity.
func (m *BloodBagMutation) ClearComponents() {
	m.clearedcomponents = true
}

// ComponentsCleared reports if the "components" edge to the Component entity was cleared.
func (m *BloodBagMutation) ComponentsCleared() bool {
	return m.clearedcomponents
}

// RemoveComponentIDs removes the "components" edge to the Component entity by IDs.
func (m *BloodBagMutation) RemoveComponentIDs(ids ...uuid.UUID) {
	if m.removedcomponents == nil {
		m.removedcomponents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.components, ids[i])
		m.removedcomponents[ids[i]] = struct{}{}
	}
}

// RemovedComponents returns the removed IDs of the "components" edge to the Component entity.
func (m *BloodBagMutation) RemovedComponentsIDs() (ids []uuid.UUID) {
	for id := range m.removedcomponents {
		ids = append(ids, id)
	}
	return
}

// ComponentsIDs returns the "components" edge IDs in the mutation.
func (m *BloodBagMutation) ComponentsIDs() (ids []uuid.UUID) {
	for id := range m.components {
		ids = append(ids, id)
	}
	return
}

// ResetComponents resets all changes to the "components" edge.
func (m *BloodBagMutation) ResetComponents() {
	m.components = nil
	m.clearedcomponents = false
	m.removedcomponents = nil
}

// AddDistributionIDs adds the "distributions" edge to the Distribution entity by ids.
func (m *BloodBagMutation) AddDistributionIDs(ids ...uuid.UUID) {
	if m.distributions == nil {
		m.distributions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.distributions[ids[i]] = struct{}{}
	}
}

// ClearDistributions clears the "distributions" edge to the Distribution entity.
func (m *BloodBagMutation) ClearDistributions() {
	m.cleareddistributions = true
}

// DistributionsCleared reports if the "distributions" edge to the Distribution entity was cleared.
func (m *BloodBagMutation) DistributionsCleared() bool {
	return m.cleareddistributions
}

// RemoveDistributionIDs removes the "distributions" edge to the Distribution entity by IDs.
func (m *BloodBagMutation) RemoveDistributionIDs(ids ...uuid.UUID) {
	if m.removeddistributions == nil {
		m.removeddistributions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.distributions, ids[i])
		m.removeddistributions[ids[i]] = struct{}{}
	}
}

// RemovedDistributions returns the removed IDs of the "distributions" edge to the Distribution entity.
func (m *BloodBagMutation) RemovedDistributionsIDs() (ids []uuid.UUID) {
	for id := range m.removeddistributions {
		ids = append(ids, id)
	}
	return
}

// DistributionsIDs returns the "distributions" edge IDs in the mutation.
func (m *BloodBagMutation) DistributionsIDs() (ids []uuid.UUID) {
	for id := range m.distributions {
		ids = append(ids, id)
	}
	return
}

// ResetDistributions resets all changes to the "distributions" edge.
func (m *BloodBagMutation) ResetDistributions() {
	m.distributions = nil
	m.cleareddistributions = false
	m.removeddistributions = nil
}

// Where appends a list predicates to the BloodBagMutation builder.
func (m *BloodBagMutation) Where(ps ...predicate.BloodBag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BloodBagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BloodBagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BloodBag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BloodBagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BloodBagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BloodBag).
func (m *BloodBagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BloodBagMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.created_at != nil {
		fields = append(fields, bloodbag.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, bloodbag.FieldUpdatedAt)
	}
	if m.bag_number != nil {
		fields = append(fields, bloodbag.FieldBagNumber)
	}
	if m.blood_group != nil {
		fields = append(fields, bloodbag.FieldBloodGroup)
	}
	if m.donation_id != nil {
		fields = append(fields, bloodbag.FieldDonationID)
	}
	if m.bag_type != nil {
		fields = append(fields, bloodbag.FieldBagType)
	}
	if m.weight != nil {
		fields = append(fields, bloodbag.FieldWeight)
	}
	if m.collection_date != nil {
		fields = append(fields, bloodbag.FieldCollectionDate)
	}
	if m.expire_date != nil {
		fields = append(fields, bloodbag.FieldExpireDate)
	}
	if m.hbs_ag != nil {
		fields = append(fields, bloodbag.FieldHbsAg)
	}
	if m.hcv != nil {
		fields = append(fields, bloodbag.FieldHcv)
	}
	if m.hiv != nil {
		fields = append(fields, bloodbag.FieldHiv)
	}
	if m.tpha != nil {
		fields = append(fields, bloodbag.FieldTpha)
	}
	if m.anti_htlv != nil {
		fields = append(fields, bloodbag.FieldAntiHtlv)
	}
	if m.is_distributed != nil {
		fields = append(fields, bloodbag.FieldIsDistributed)
	}
	if m.biologist != nil {
		fields = append(fields, bloodbag.FieldBiologistID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BloodBagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bloodbag.FieldCreatedAt:
		return m.CreatedAt()
	case bloodbag.FieldUpdatedAt:
		return m.UpdatedAt()
	case bloodbag.FieldBagNumber:
		return m.BagNumber()
	case bloodbag.FieldBloodGroup:
		return m.BloodGroup()
	case bloodbag.FieldDonationID:
		return m.DonationID()
	case bloodbag.FieldBagType:
		return m.BagType()
	case bloodbag.FieldWeight:
		return m.Weight()
	case bloodbag.FieldCollectionDate:
		return m.CollectionDate()
	case bloodbag.FieldExpireDate:
		return m.ExpireDate()
	case bloodbag.FieldHbsAg:
		return m.HbsAg()
	case bloodbag.FieldHcv:
		return m.Hcv()
	case bloodbag.FieldHiv:
		return m.Hiv()
	case bloodbag.FieldTpha:
		return m.Tpha()
	case bloodbag.FieldAntiHtlv:
		return m.AntiHtlv()
	case bloodbag.FieldIsDistributed:
		return m.IsDistributed()
	case bloodbag.FieldBiologistID:
		return m.BiologistID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BloodBagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bloodbag.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case bloodbag.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case bloodbag.FieldBagNumber:
		return m.OldBagNumber(ctx)
	case bloodbag.FieldBloodGroup:
		return m.OldBloodGroup(ctx)
	case bloodbag.FieldDonationID:
		return m.OldDonationID(ctx)
	case bloodbag.FieldBagType:
		return m.OldBagType(ctx)
	case bloodbag.FieldWeight:
		return m.OldWeight(ctx)
	case bloodbag.FieldCollectionDate:
		return m.OldCollectionDate(ctx)
	case bloodbag.FieldExpireDate:
		return m.OldExpireDate(ctx)
	case bloodbag.FieldHbsAg:
		return m.OldHbsAg(ctx)
	case bloodbag.FieldHcv:
		return m.OldHcv(ctx)
	case bloodbag.FieldHiv:
		return m.OldHiv(ctx)
	case bloodbag.FieldTpha:
		return m.OldTpha(ctx)
	case bloodbag.FieldAntiHtlv:
		return m.OldAntiHtlv(ctx)
	case bloodbag.FieldIsDistributed:
		return m.OldIsDistributed(ctx)
	case bloodbag.FieldBiologistID:
		return m.OldBiologistID(ctx)
	}
	return nil, fmt.Errorf("unknown BloodBag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BloodBagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bloodbag.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case bloodbag.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case bloodbag.FieldBagNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBagNumber(v)
		return nil
	case bloodbag.FieldBloodGroup:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBloodGroup(v)
		return nil
	case bloodbag.FieldDonationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDonationID(v)
		return nil
	case bloodbag.FieldBagType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBagType(v)
		return nil
	case bloodbag.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case bloodbag.FieldCollectionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectionDate(v)
		return nil
	case bloodbag.FieldExpireDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpireDate(v)
		return nil
	case bloodbag.FieldHbsAg:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHbsAg(v)
		return nil
	case bloodbag.FieldHcv:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHcv(v)
		return nil
	case bloodbag.FieldHiv:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHiv(v)
		return nil
	case bloodbag.FieldTpha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTpha(v)
		return nil
	case bloodbag.FieldAntiHtlv:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAntiHtlv(v)
		return nil
	case bloodbag.FieldIsDistributed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDistributed(v)
		return nil
	case bloodbag.FieldBiologistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBiologistID(v)
		return nil
	}
	return fmt.Errorf("unknown BloodBag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BloodBagMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, bloodbag.FieldWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BloodBagMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bloodbag.FieldWeight:
		return m.AddedWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BloodBagMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bloodbag.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	}
	return fmt.Errorf("unknown BloodBag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BloodBagMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BloodBagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BloodBagMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BloodBag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BloodBagMutation) ResetField(name string) error {
	switch name {
	case bloodbag.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case bloodbag.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case bloodbag.FieldBagNumber:
		m.ResetBagNumber()
		return nil
	case bloodbag.FieldBloodGroup:
		m.ResetBloodGroup()
		return nil
	case bloodbag.FieldDonationID:
		m.ResetDonationID()
		return nil
	case bloodbag.FieldBagType:
		m.ResetBagType()
		return nil
	case bloodbag.FieldWeight:
		m.ResetWeight()
		return nil
	case bloodbag.FieldCollectionDate:
		m.ResetCollectionDate()
		return nil
	case bloodbag.FieldExpireDate:
		m.ResetExpireDate()
		return nil
	case bloodbag.FieldHbsAg:
		m.ResetHbsAg()
		return nil
	case bloodbag.FieldHcv:
		m.ResetHcv()
		return nil
	case bloodbag.FieldHiv:
		m.ResetHiv()
		return nil
	case bloodbag.FieldTpha:
		m.ResetTpha()
		return nil
	case bloodbag.FieldAntiHtlv:
		m.ResetAntiHtlv()
		return nil
	case bloodbag.FieldIsDistributed:
		m.ResetIsDistributed()
		return nil
	case bloodbag.FieldBiologistID:
		m.ResetBiologistID()
		return nil
	}
	return fmt.Errorf("unknown BloodBag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BloodBagMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.biologist != nil {
		edges = append(edges, bloodbag.EdgeBiologist)
	}
	if m.components != nil {
		edges = append(edges, bloodbag.EdgeComponents)
	}
	if m.distributions != nil {
		edges = append(edges, bloodbag.EdgeDistributions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BloodBagMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bloodbag.EdgeBiologist:
		if id := m.biologist; id != nil {
			return []ent.Value{*id}
		}
	case bloodbag.EdgeComponents:
		ids := make([]ent.Value, 0, len(m.components))
		for id := range m.components {
			ids = append(ids, id)
		}
		return ids
	case bloodbag.EdgeDistributions:
		ids := make([]ent.Value, 0, len(m.distributions))
		for id := range m.distributions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BloodBagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedcomponents != nil {
		edges = append(edges, bloodbag.EdgeComponents)
	}
	if m.removeddistributions != nil {
		edges = append(edges, bloodbag.EdgeDistributions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BloodBagMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case bloodbag.EdgeComponents:
		ids := make([]ent.Value, 0, len(m.removedcomponents))
		for id := range m.removedcomponents {
			ids = append(ids, id)
		}
		return ids
	case bloodbag.EdgeDistributions:
		ids := make([]ent.Value, 0, len(m.removeddistributions))
		for id := range m.removeddistributions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BloodBagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedbiologist {
		edges = append(edges, bloodbag.EdgeBiologist)
	}
	if m.clearedcomponents {
		edges = append(edges, bloodbag.EdgeComponents)
	}
	if m.cleareddistributions {
		edges = append(edges, bloodbag.EdgeDistributions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BloodBagMutation) EdgeCleared(name string) bool {
	switch name {
	case bloodbag.EdgeBiologist:
		return m.clearedbiologist
	case bloodbag.EdgeComponents:
		return m.clearedcomponents
	case bloodbag.EdgeDistributions:
		return m.cleareddistributions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BloodBagMutation) ClearEdge(name string) error {
	switch name {
	case bloodbag.EdgeBiologist:
		m.ClearBiologist()
		return nil
	}
	return fmt.Errorf("unknown BloodBag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BloodBagMutation) ResetEdge(name string) error {
	switch name {
	case bloodbag.EdgeBiologist:
		m.ResetBiologist()
		return nil
	case bloodbag.EdgeComponents:
		m.ResetComponents()
		return nil
	case bloodbag.EdgeDistributions:
		m.ResetDistributions()
		return nil
	}
	return fmt.Errorf("unknown BloodBag edge %s", name)
}

// ChefServiceMutation represents an operation that mutates the ChefService nodes in the graph.
type ChefServiceMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	first_name    *string
	last_name     *string
	username      *string
	email         *string
	password_hash *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ChefService, error)
	predicates    []predicate.ChefService
}

var _ ent.Mutation = (*ChefServiceMutation)(nil)

// chefserviceOption allows management of the mutation configuration using functional options.
type chefserviceOption func(*ChefServiceMutation)

// newChefServiceMutation creates new mutation for the ChefService entity.
func newChefServiceMutation(c config, op Op, opts ...chefserviceOption) *ChefServiceMutation {
	m := &ChefServiceMutation{
		config:        c,
		op:            op,
		typ:           TypeChefService,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChefServiceID sets the ID field of the mutation.
func withChefServiceID(id uuid.UUID) chefserviceOption {
	return func(m *ChefServiceMutation) {
		var (
			err   error
			once  sync.Once
			value *ChefService
		)
		m.oldValue = func(ctx context.Context) (*ChefService, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChefService.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChefService sets the old ChefService of the mutation.
func withChefService(node *ChefService) chefserviceOption {
	return func(m *ChefServiceMutation) {
		m.oldValue = func(context.Context) (*ChefService, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChefServiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChefServiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChefService entities.
func (m *ChefServiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChefServiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChefServiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChefService.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ChefServiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChefServiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChefService entity.
// If the ChefService object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChefServiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChefServiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChefServiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChefServiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChefService entity.
// If the ChefService object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChefServiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChefServiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFirstName sets the "first_name" field.
func (m *ChefServiceMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *ChefServiceMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the ChefService entity.
// If the ChefService object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChefServiceMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *ChefServiceMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *ChefServiceMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *ChefServiceMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the ChefService entity.
// If the ChefService object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChefServiceMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *ChefServiceMutation) ResetLastName() {
	m.last_name = nil
}

// SetUsername sets the "username" field.
func (m *ChefServiceMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *ChefServiceMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the ChefService entity.
// If the ChefService object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChefServiceMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *ChefServiceMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *ChefServiceMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ChefServiceMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the ChefService entity.
// If the ChefService object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChefServiceMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ChefServiceMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *ChefServiceMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *ChefServiceMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the ChefService entity.
// If the ChefService object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChefServiceMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *ChefServiceMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// Where appends a list predicates to the ChefServiceMutation builder.
func (m *ChefServiceMutation) Where(ps ...predicate.ChefService) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChefServiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChefServiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChefService, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChefServiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChefServiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChefService).
func (m *ChefServiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChefServiceMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, chefservice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chefservice.FieldUpdatedAt)
	}
	if m.first_name != nil {
		fields = append(fields, chefservice.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, chefservice.FieldLastName)
	}
	if m.username != nil {
		fields = append(fields, chefservice.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, chefservice.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, chefservice.FieldPasswordHash)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChefServiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chefservice.FieldCreatedAt:
		return m.CreatedAt()
	case chefservice.FieldUpdatedAt:
		return m.UpdatedAt()
	case chefservice.FieldFirstName:
		return m.FirstName()
	case chefservice.FieldLastName:
		return m.LastName()
	case chefservice.FieldUsername:
		return m.Username()
	case chefservice.FieldEmail:
		return m.Email()
	case chefservice.FieldPasswordHash:
		return m.PasswordHash()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChefServiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chefservice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chefservice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case chefservice.FieldFirstName:
		return m.OldFirstName(ctx)
	case chefservice.FieldLastName:
		return m.OldLastName(ctx)
	case chefservice.FieldUsername:
		return m.OldUsername(ctx)
	case chefservice.FieldEmail:
		return m.OldEmail(ctx)
	case chefservice.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	}
	return nil, fmt.Errorf("unknown ChefService field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChefServiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chefservice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chefservice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case chefservice.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case chefservice.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case chefservice.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case chefservice.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case chefservice.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	}
	return fmt.Errorf("unknown ChefService field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChefServiceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChefServiceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChefServiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChefService numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChefServiceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChefServiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChefServiceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChefService nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChefServiceMutation) ResetField(name string) error {
	switch name {
	case chefservice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chefservice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case chefservice.FieldFirstName:
		m.ResetFirstName()
		return nil
	case chefservice.FieldLastName:
		m.ResetLastName()
		return nil
	case chefservice.FieldUsername:
		m.ResetUsername()
		return nil
	case chefservice.FieldEmail:
		m.ResetEmail()
		return nil
	case chefservice.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	}
	return fmt.Errorf("unknown ChefService field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChefServiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChefServiceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChefServiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChefServiceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChefServiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChefServiceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChefServiceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChefService unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChefServiceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChefService edge %s", name)
}

// ComponentMutation represents an operation that mutates the Component nodes in the graph.
type ComponentMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	_type          *component.Type
	weight         *float64
	addweight      *float64
	expire_date    *time.Time
	is_distributed *bool
	clearedFields  map[string]struct{}
	bag            *uuid.UUID
	clearedbag     bool
	done           bool
	oldValue       func(context.Context) (*Component, error)
	predicates     []predicate.Component
}

var _ ent.Mutation = (*ComponentMutation)(nil)

// componentOption allows management of the mutation configuration using functional options.
type componentOption func(*ComponentMutation)

// newComponentMutation creates new mutation for the Component entity.
func newComponentMutation(c config, op Op, opts ...componentOption) *ComponentMutation {
	m := &ComponentMutation{
		config:        c,
		op:            op,
		typ:           TypeComponent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withComponentID sets the ID field of the mutation.
func withComponentID(id uuid.UUID) componentOption {
	return func(m *ComponentMutation) {
		var (
			err   error
			once  sync.Once
			value *Component
		)
		m.oldValue = func(ctx context.Context) (*Component, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Component.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComponent sets the old Component of the mutation.
func withComponent(node *Component) componentOption {
	return func(m *ComponentMutation) {
		m.oldValue = func(context.Context) (*Component, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ComponentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ComponentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Component entities.
func (m *ComponentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ComponentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ComponentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Component.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ComponentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ComponentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ComponentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ComponentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ComponentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ComponentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetType sets the "type" field.
func (m *ComponentMutation) SetType(c component.Type) {
	m._type = &c
}

// GetType returns the value of the "type" field in the mutation.
func (m *ComponentMutation) GetType() (r component.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldType(ctx context.Context) (v component.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ComponentMutation) ResetType() {
	m._type = nil
}

// SetWeight sets the "weight" field.
func (m *ComponentMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *ComponentMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *ComponentMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *ComponentMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *ComponentMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetExpireDate sets the "expire_date" field.
func (m *ComponentMutation) SetExpireDate(t time.Time) {
	m.expire_date = &t
}

// ExpireDate returns the value of the "expire_date" field in the mutation.
func (m *ComponentMutation) ExpireDate() (r time.Time, exists bool) {
	v := m.expire_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExpireDate returns the old "expire_date" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldExpireDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpireDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpireDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpireDate: %w", err)
	}
	return oldValue.ExpireDate, nil
}

// ResetExpireDate resets all changes to the "expire_date" field.
func (m *ComponentMutation) ResetExpireDate() {
	m.expire_date = nil
}

// SetIsDistributed sets the "is_distributed" field.
func (m *ComponentMutation) SetIsDistributed(b bool) {
	m.is_distributed = &b
}

// IsDistributed returns the value of the "is_distributed" field in the mutation.
func (m *ComponentMutation) IsDistributed() (r bool, exists bool) {
	v := m.is_distributed
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDistributed returns the old "is_distributed" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldIsDistributed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDistributed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDistributed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDistributed: %w", err)
	}
	return oldValue.IsDistributed, nil
}

// ResetIsDistributed resets all changes to the "is_distributed" field.
func (m *ComponentMutation) ResetIsDistributed() {
	m.is_distributed = nil
}

// SetBagbloodID sets the "bagblood_id" field.
func (m *ComponentMutation) SetBagbloodID(u uuid.UUID) {
	m.bag = &u
}

// BagbloodID returns the value of the "bagblood_id" field in the mutation.
func (m *ComponentMutation) BagbloodID() (r uuid.UUID, exists bool) {
	v := m.bag
	if v == nil {
		return
	}
	return *v, true
}

// OldBagbloodID returns the old "bagblood_id" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldBagbloodID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBagbloodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBagbloodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBagbloodID: %w", err)
	}
	return oldValue.BagbloodID, nil
}

// ResetBagbloodID resets all changes to the "bagblood_id" field.
func (m *ComponentMutation) ResetBagbloodID() {
	m.bag = nil
}

// SetBagID sets the "bag" edge to the BloodBag entity by id.
func (m *ComponentMutation) SetBagID(id uuid.UUID) {
	m.bag = &id
}

// ClearBag clears the "bag" edge to the BloodBag entity.
func (m *ComponentMutation) ClearBag() {
	m.clearedbag = true
	m.clearedFields[component.FieldBagbloodID] = struct{}{}
}

// BagCleared reports if the "bag" edge to the BloodBag entity was cleared.
func (m *ComponentMutation) BagCleared() bool {
	return m.clearedbag
}

// BagID returns the "bag" edge ID in the mutation.
func (m *ComponentMutation) BagID() (id uuid.UUID, exists bool) {
	if m.bag != nil {
		return *m.bag, true
	}
	return
}

// BagIDs returns the "bag" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BagID instead. It exists only for internal usage by the builders.
func (m *ComponentMutation) BagIDs() (ids []uuid.UUID) {
	if id := m.bag; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBag resets all changes to the "bag" edge.
func (m *ComponentMutation) ResetBag() {
	m.bag = nil
	m.clearedbag = false
}

// Where appends a list predicates to the ComponentMutation builder.
func (m *ComponentMutation) Where(ps ...predicate.Component) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ComponentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ComponentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Component, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ComponentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ComponentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Component).
func (m *ComponentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ComponentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, component.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, component.FieldUpdatedAt)
	}
	if m._type != nil {
		fields = append(fields, component.FieldType)
	}
	if m.weight != nil {
		fields = append(fields, component.FieldWeight)
	}
	if m.expire_date != nil {
		fields = append(fields, component.FieldExpireDate)
	}
	if m.is_distributed != nil {
		fields = append(fields, component.FieldIsDistributed)
	}
	if m.bag != nil {
		fields = append(fields, component.FieldBagbloodID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ComponentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case component.FieldCreatedAt:
		return m.CreatedAt()
	case component.FieldUpdatedAt:
		return m.UpdatedAt()
	case component.FieldType:
		return m.GetType()
	case component.FieldWeight:
		return m.Weight()
	case component.FieldExpireDate:
		return m.ExpireDate()
	case component.FieldIsDistributed:
		return m.IsDistributed()
	case component.FieldBagbloodID:
		return m.BagbloodID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ComponentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case component.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case component.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case component.FieldType:
		return m.OldType(ctx)
	case component.FieldWeight:
		return m.OldWeight(ctx)
	case component.FieldExpireDate:
		return m.OldExpireDate(ctx)
	case component.FieldIsDistributed:
		return m.OldIsDistributed(ctx)
	case component.FieldBagbloodID:
		return m.OldBagbloodID(ctx)
	}
	return nil, fmt.Errorf("unknown Component field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComponentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case component.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case component.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case component.FieldType:
		v, ok := value.(component.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case component.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case component.FieldExpireDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpireDate(v)
		return nil
	case component.FieldIsDistributed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDistributed(v)
		return nil
	case component.FieldBagbloodID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBagbloodID(v)
		return nil
	}
	return fmt.Errorf("unknown Component field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ComponentMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, component.FieldWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ComponentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case component.FieldWeight:
		return m.AddedWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComponentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case component.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	}
	return fmt.Errorf("unknown Component numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ComponentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ComponentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ComponentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Component nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ComponentMutation) ResetField(name string) error {
	switch name {
	case component.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case component.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case component.FieldType:
		m.ResetType()
		return nil
	case component.FieldWeight:
		m.ResetWeight()
		return nil
	case component.FieldExpireDate:
		m.ResetExpireDate()
		return nil
	case component.FieldIsDistributed:
		m.ResetIsDistributed()
		return nil
	case component.FieldBagbloodID:
		m.ResetBagbloodID()
		return nil
	}
	return fmt.Errorf("unknown Component field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ComponentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.bag != nil {
		edges = append(edges, component.EdgeBag)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ComponentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case component.EdgeBag:
		if id := m.bag; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ComponentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ComponentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ComponentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbag {
		edges = append(edges, component.EdgeBag)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ComponentMutation) EdgeCleared(name string) bool {
	switch name {
	case component.EdgeBag:
		return m.clearedbag
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ComponentMutation) ClearEdge(name string) error {
	switch name {
	case component.EdgeBag:
		m.ClearBag()
		return nil
	}
	return fmt.Errorf("unknown Component unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ComponentMutation) ResetEdge(name string) error {
	switch name {
	case component.EdgeBag:
		m.ResetBag()
		return nil
	}
	return fmt.Errorf("unknown Component edge %s", name)
}

// DistributionMutation represents an operation that mutates the Distribution nodes in the graph.
type DistributionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	distribution_number   *string
	receiver_first_name   *string
	receiver_last_name    *string
	receiver_age          *int
	addreceiver_age       *int
	receiver_sex          *string
	establishment         *string
	requested_blood_group *string
	number_of_bags        *int
	addnumber_of_bags     *int
	service               *string
	carrier_name          *string
	doctor_name           *string
	issued_at             *time.Time
	clearedFields         map[string]struct{}
	bag                   *uuid.UUID
	clearedbag            bool
	done                  bool
	oldValue              func(context.Context) (*Distribution, error)
	predicates            []predicate.Distribution
}

var _ ent.Mutation = (*DistributionMutation)(nil)

// distributionOption allows management of the mutation configuration using functional options.
type distributionOption func(*DistributionMutation)

// newDistributionMutation creates new mutation for the Distribution entity.
func newDistributionMutation(c config, op Op, opts ...distributionOption) *DistributionMutation {
	m := &DistributionMutation{
		config:        c,
		op:            op,
		typ:           TypeDistribution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDistributionID sets the ID field of the mutation.
func withDistributionID(id uuid.UUID) distributionOption {
	return func(m *DistributionMutation) {
		var (
			err   error
			once  sync.Once
			value *Distribution
		)
		m.oldValue = func(ctx context.Context) (*Distribution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Distribution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDistribution sets the old Distribution of the mutation.
func withDistribution(node *Distribution) distributionOption {
	return func(m *DistributionMutation) {
		m.oldValue = func(context.Context) (*Distribution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DistributionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DistributionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Distribution entities.
func (m *DistributionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DistributionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DistributionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Distribution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DistributionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DistributionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Distribution entity.
// If the Distribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DistributionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DistributionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DistributionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Distribution entity.
// If the Distribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DistributionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDistributionNumber sets the "distribution_number" field.
func (m *DistributionMutation) SetDistributionNumber(s string) {
	m.distribution_number = &s
}

// DistributionNumber returns the value of the "distribution_number" field in the mutation.
func (m *DistributionMutation) DistributionNumber() (r string, exists bool) {
	v := m.distribution_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDistributionNumber returns the old "distribution_number" field's value of the Distribution entity.
// If the Distribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionMutation) OldDistributionNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistributionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistributionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistributionNumber: %w", err)
	}
	return oldValue.DistributionNumber, nil
}

// ResetDistributionNumber resets all changes to the "distribution_number" field.
func (m *DistributionMutation) ResetDistributionNumber() {
	m.distribution_number = nil
}

// SetReceiverFirstName sets the "receiver_first_name" field.
func (m *DistributionMutation) SetReceiverFirstName(s string) {
	m.receiver_first_name = &s
}

// ReceiverFirstName returns the value of the "receiver_first_name" field in the mutation.
func (m *DistributionMutation) ReceiverFirstName() (r string, exists bool) {
	v := m.receiver_first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiverFirstName returns the old "receiver_first_name" field's value of the Distribution entity.
// If the Distribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionMutation) OldReceiverFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiverFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiverFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiverFirstName: %w", err)
	}
	return oldValue.ReceiverFirstName, nil
}

// ResetReceiverFirstName resets all changes to the "receiver_first_name" field.
func (m *DistributionMutation) ResetReceiverFirstName() {
	m.receiver_first_name = nil
}

// SetReceiverLastName sets the "receiver_last_name" field.
func (m *DistributionMutation) SetReceiverLastName(s string) {
	m.receiver_last_name = &s
}

// ReceiverLastName returns the value of the "receiver_last_name" field in the mutation.
func (m *DistributionMutation) ReceiverLastName() (r string, exists bool) {
	v := m.receiver_last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiverLastName returns the old "receiver_last_name" field's value of the Distribution entity.
// If the Distribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionMutation) OldReceiverLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiverLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiverLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiverLastName: %w", err)
	}
	return oldValue.ReceiverLastName, nil
}

// ResetReceiverLastName resets all changes to the "receiver_last_name" field.
func (m *DistributionMutation) ResetReceiverLastName() {
	m.receiver_last_name = nil
}

// SetReceiverAge sets the "receiver_age" field.
func (m *DistributionMutation) SetReceiverAge(i int) {
	m.receiver_age = &i
	m.addreceiver_age = nil
}

// ReceiverAge returns the value of the "receiver_age" field in the mutation.
func (m *DistributionMutation) ReceiverAge() (r int, exists bool) {
	v := m.receiver_age
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiverAge returns the old "receiver_age" field's value of the Distribution entity.
// If the Distribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionMutation) OldReceiverAge(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiverAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiverAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiverAge: %w", err)
	}
	return oldValue.ReceiverAge, nil
}

// AddReceiverAge adds i to the "receiver_age" field.
func (m *DistributionMutation) AddReceiverAge(i int) {
	if m.addreceiver_age != nil {
		*m.addreceiver_age += i
	} else {
		m.addreceiver_age = &i
	}
}

// AddedReceiverAge returns the value that was added to the "receiver_age" field in this mutation.
func (m *DistributionMutation) AddedReceiverAge() (r int, exists bool) {
	v := m.addreceiver_age
	if v == nil {
		return
	}
	return *v, true
}

// ResetReceiverAge resets all changes to the "receiver_age" field.
func (m *DistributionMutation) ResetReceiverAge() {
	m.receiver_age = nil
	m.addreceiver_age = nil
}

// SetReceiverSex sets the "receiver_sex" field.
func (m *DistributionMutation) SetReceiverSex(s string) {
	m.receiver_sex = &s
}

// ReceiverSex returns the value of the "receiver_sex" field in the mutation.
func (m *DistributionMutation) ReceiverSex() (r string, exists bool) {
	v := m.receiver_sex
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiverSex returns the old "receiver_sex" field's value of the Distribution entity.
// If the Distribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionMutation) OldReceiverSex(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiverSex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiverSex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiverSex: %w", err)
	}
	return oldValue.ReceiverSex, nil
}

// ResetReceiverSex resets all changes to the "receiver_sex" field.
func (m *DistributionMutation) ResetReceiverSex() {
	m.receiver_sex = nil
}

// SetEstablishment sets the "establishment" field.
func (m *DistributionMutation) SetEstablishment(s string) {
	m.establishment = &s
}

// Establishment returns the value of the "establishment" field in the mutation.
func (m *DistributionMutation) Establishment() (r string, exists bool) {
	v := m.establishment
	if v == nil {
		return
	}
	return *v, true
}

// OldEstablishment returns the old "establishment" field's value of the Distribution entity.
// If the Distribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionMutation) OldEstablishment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstablishment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstablishment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstablishment: %w", err)
	}
	return oldValue.Establishment, nil
}

// ResetEstablishment resets all changes to the "establishment" field.
func (m *DistributionMutation) ResetEstablishment() {
	m.establishment = nil
}

// SetRequestedBloodGroup sets the "requested_blood_group" field.
func (m *DistributionMutation) SetRequestedBloodGroup(s string) {
	m.requested_blood_group = &s
}

// RequestedBloodGroup returns the value of the "requested_blood_group" field in the mutation.
func (m *DistributionMutation) RequestedBloodGroup() (r string, exists bool) {
	v := m.requested_blood_group
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedBloodGroup returns the old "requested_blood_group" field's value of the Distribution entity.
// If the Distribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionMutation) OldRequestedBloodGroup(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedBloodGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedBloodGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedBloodGroup: %w", err)
	}
	return oldValue.RequestedBloodGroup, nil
}

// ResetRequestedBloodGroup resets all changes to the "requested_blood_group" field.
func (m *DistributionMutation) ResetRequestedBloodGroup() {
	m.requested_blood_group = nil
}

// SetNumberOfBags sets the "number_of_bags" field.
func (m *DistributionMutation) SetNumberOfBags(i int) {
	m.number_of_bags = &i
	m.addnumber_of_bags = nil
}

// NumberOfBags returns the value of the "number_of_bags" field in the mutation.
func (m *DistributionMutation) NumberOfBags() (r int, exists bool) {
	v := m.number_of_bags
	if v == nil {
		return
	}
	return *v, true
}

// OldNumberOfBags returns the old "number_of_bags" field's value of the Distribution entity.
// If the Distribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionMutation) OldNumberOfBags(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumberOfBags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumberOfBags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumberOfBags: %w", err)
	}
	return oldValue.NumberOfBags, nil
}

// AddNumberOfBags adds i to the "number_of_bags" field.
func (m *DistributionMutation) AddNumberOfBags(i int) {
	if m.addnumber_of_bags != nil {
		*m.addnumber_of_bags += i
	} else {
		m.addnumber_of_bags = &i
	}
}

// AddedNumberOfBags returns the value that was added to the "number_of_bags" field in this mutation.
func (m *DistributionMutation) AddedNumberOfBags() (r int, exists bool) {
	v := m.addnumber_of_bags
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumberOfBags resets all changes to the "number_of_bags" field.
func (m *DistributionMutation) ResetNumberOfBags() {
	m.number_of_bags = nil
	m.addnumber_of_bags = nil
}

// SetService sets the "service" field.
func (m *DistributionMutation) SetService(s string) {
	m.service = &s
}

// Service returns the value of the "service" field in the mutation.
func (m *DistributionMutation) Service() (r string, exists bool) {
	v := m.service
	if v == nil {
		return
	}
	return *v, true
}

// OldService returns the old "service" field's value of the Distribution entity.
// If the Distribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionMutation) OldService(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldService is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldService requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldService: %w", err)
	}
	return oldValue.Service, nil
}

// ResetService resets all changes to the "service" field.
func (m *DistributionMutation) ResetService() {
	m.service = nil
}

// SetCarrierName sets the "carrier_name" field.
func (m *DistributionMutation) SetCarrierName(s string) {
	m.carrier_name = &s
}

// CarrierName returns the value of the "carrier_name" field in the mutation.
func (m *DistributionMutation) CarrierName() (r string, exists bool) {
	v := m.carrier_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCarrierName returns the old "carrier_name" field's value of the Distribution entity.
// If the Distribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionMutation) OldCarrierName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarrierName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarrierName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarrierName: %w", err)
	}
	return oldValue.CarrierName, nil
}

// ResetCarrierName resets all changes to the "carrier_name" field.
func (m *DistributionMutation) ResetCarrierName() {
	m.carrier_name = nil
}

// SetDoctorName sets the "doctor_name" field.
func (m *DistributionMutation) SetDoctorName(s string) {
	m.doctor_name = &s
}

// DoctorName returns the value of the "doctor_name" field in the mutation.
func (m *DistributionMutation) DoctorName() (r string, exists bool) {
	v := m.doctor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorName returns the old "doctor_name" field's value of the Distribution entity.
// If the Distribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionMutation) OldDoctorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorName: %w", err)
	}
	return oldValue.DoctorName, nil
}

// ResetDoctorName resets all changes to the "doctor_name" field.
func (m *DistributionMutation) ResetDoctorName() {
	m.doctor_name = nil
}

// SetIssuedAt sets the "issued_at" field.
func (m *DistributionMutation) SetIssuedAt(t time.Time) {
	m.issued_at = &t
}

// IssuedAt returns the value of the "issued_at" field in the mutation.
func (m *DistributionMutation) IssuedAt() (r time.Time, exists bool) {
	v := m.issued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuedAt returns the old "issued_at" field's value of the Distribution entity.
// If the Distribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionMutation) OldIssuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuedAt: %w", err)
	}
	return oldValue.IssuedAt, nil
}

// ResetIssuedAt resets all changes to the "issued_at" field.
func (m *DistributionMutation) ResetIssuedAt() {
	m.issued_at = nil
}

// SetBagbloodID sets the "bagblood_id" field.
func (m *DistributionMutation) SetBagbloodID(u uuid.UUID) {
	m.bag = &u
}

// BagbloodID returns the value of the "bagblood_id" field in the mutation.
func (m *DistributionMutation) BagbloodID() (r uuid.UUID, exists bool) {
	v := m.bag
	if v == nil {
		return
	}
	return *v, true
}

// OldBagbloodID returns the old "bagblood_id" field's value of the Distribution entity.
// If the Distribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionMutation) OldBagbloodID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBagbloodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBagbloodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBagbloodID: %w", err)
	}
	return oldValue.BagbloodID, nil
}

// ResetBagbloodID resets all changes to the "bagblood_id" field.
func (m *DistributionMutation) ResetBagbloodID() {
	m.bag = nil
}

// SetBagID sets the "bag" edge to the BloodBag entity by id.
func (m *DistributionMutation) SetBagID(id uuid.UUID) {
	m.bag = &id
}

// ClearBag clears the "bag" edge to the BloodBag entity.
func (m *DistributionMutation) ClearBag() {
	m.clearedbag = true
	m.clearedFields[distribution.FieldBagbloodID] = struct{}{}
}

// BagCleared reports if the "bag" edge to the BloodBag entity was cleared.
func (m *DistributionMutation) BagCleared() bool {
	return m.clearedbag
}

// BagID returns the "bag" edge ID in the mutation.
func (m *DistributionMutation) BagID() (id uuid.UUID, exists bool) {
	if m.bag != nil {
		return *m.bag, true
	}
	return
}

// BagIDs returns the "bag" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BagID instead. It exists only for internal usage by the builders.
func (m *DistributionMutation) BagIDs() (ids []uuid.UUID) {
	if id := m.bag; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBag resets all changes to the "bag" edge.
func (m *DistributionMutation) ResetBag() {
	m.bag = nil
	m.clearedbag = false
}

// Where appends a list predicates to the DistributionMutation builder.
func (m *DistributionMutation) Where(ps ...predicate.Distribution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DistributionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DistributionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Distribution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DistributionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DistributionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Distribution).
func (m *DistributionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DistributionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, distribution.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, distribution.FieldUpdatedAt)
	}
	if m.distribution_number != nil {
		fields = append(fields, distribution.FieldDistributionNumber)
	}
	if m.receiver_first_name != nil {
		fields = append(fields, distribution.FieldReceiverFirstName)
	}
	if m.receiver_last_name != nil {
		fields = append(fields, distribution.FieldReceiverLastName)
	}
	if m.receiver_age != nil {
		fields = append(fields, distribution.FieldReceiverAge)
	}
	if m.receiver_sex != nil {
		fields = append(fields, distribution.FieldReceiverSex)
	}
	if m.establishment != nil {
		fields = append(fields, distribution.FieldEstablishment)
	}
	if m.requested_blood_group != nil {
		fields = append(fields, distribution.FieldRequestedBloodGroup)
	}
	if m.number_of_bags != nil {
		fields = append(fields, distribution.FieldNumberOfBags)
	}
	if m.service != nil {
		fields = append(fields, distribution.FieldService)
	}
	if m.carrier_name != nil {
		fields = append(fields, distribution.FieldCarrierName)
	}
	if m.doctor_name != nil {
		fields = append(fields, distribution.FieldDoctorName)
	}
	if m.issued_at != nil {
		fields = append(fields, distribution.FieldIssuedAt)
	}
	if m.bag != nil {
		fields = append(fields, distribution.FieldBagbloodID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DistributionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case distribution.FieldCreatedAt:
		return m.CreatedAt()
	case distribution.FieldUpdatedAt:
		return m.UpdatedAt()
	case distribution.FieldDistributionNumber:
		return m.DistributionNumber()
	case distribution.FieldReceiverFirstName:
		return m.ReceiverFirstName()
	case distribution.FieldReceiverLastName:
		return m.ReceiverLastName()
	case distribution.FieldReceiverAge:
		return m.ReceiverAge()
	case distribution.FieldReceiverSex:
		return m.ReceiverSex()
	case distribution.FieldEstablishment:
		return m.Establishment()
	case distribution.FieldRequestedBloodGroup:
		return m.RequestedBloodGroup()
	case distribution.FieldNumberOfBags:
		return m.NumberOfBags()
	case distribution.FieldService:
		return m.Service()
	case distribution.FieldCarrierName:
		return m.CarrierName()
	case distribution.FieldDoctorName:
		return m.DoctorName()
	case distribution.FieldIssuedAt:
		return m.IssuedAt()
	case distribution.FieldBagbloodID:
		return m.BagbloodID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DistributionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case distribution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case distribution.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case distribution.FieldDistributionNumber:
		return m.OldDistributionNumber(ctx)
	case distribution.FieldReceiverFirstName:
		return m.OldReceiverFirstName(ctx)
	case distribution.FieldReceiverLastName:
		return m.OldReceiverLastName(ctx)
	case distribution.FieldReceiverAge:
		return m.OldReceiverAge(ctx)
	case distribution.FieldReceiverSex:
		return m.OldReceiverSex(ctx)
	case distribution.FieldEstablishment:
		return m.OldEstablishment(ctx)
	case distribution.FieldRequestedBloodGroup:
		return m.OldRequestedBloodGroup(ctx)
	case distribution.FieldNumberOfBags:
		return m.OldNumberOfBags(ctx)
	case distribution.FieldService:
		return m.OldService(ctx)
	case distribution.FieldCarrierName:
		return m.OldCarrierName(ctx)
	case distribution.FieldDoctorName:
		return m.OldDoctorName(ctx)
	case distribution.FieldIssuedAt:
		return m.OldIssuedAt(ctx)
	case distribution.FieldBagbloodID:
		return m.OldBagbloodID(ctx)
	}
	return nil, fmt.Errorf("unknown Distribution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DistributionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case distribution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case distribution.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case distribution.FieldDistributionNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistributionNumber(v)
		return nil
	case distribution.FieldReceiverFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiverFirstName(v)
		return nil
	case distribution.FieldReceiverLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiverLastName(v)
		return nil
	case distribution.FieldReceiverAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiverAge(v)
		return nil
	case distribution.FieldReceiverSex:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiverSex(v)
		return nil
	case distribution.FieldEstablishment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstablishment(v)
		return nil
	case distribution.FieldRequestedBloodGroup:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedBloodGroup(v)
		return nil
	case distribution.FieldNumberOfBags:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumberOfBags(v)
		return nil
	case distribution.FieldService:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetService(v)
		return nil
	case distribution.FieldCarrierName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarrierName(v)
		return nil
	case distribution.FieldDoctorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorName(v)
		return nil
	case distribution.FieldIssuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuedAt(v)
		return nil
	case distribution.FieldBagbloodID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBagbloodID(v)
		return nil
	}
	return fmt.Errorf("unknown Distribution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DistributionMutation) AddedFields() []string {
	var fields []string
	if m.addreceiver_age != nil {
		fields = append(fields, distribution.FieldReceiverAge)
	}
	if m.addnumber_of_bags != nil {
		fields = append(fields, distribution.FieldNumberOfBags)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DistributionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case distribution.FieldReceiverAge:
		return m.AddedReceiverAge()
	case distribution.FieldNumberOfBags:
		return m.AddedNumberOfBags()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DistributionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case distribution.FieldReceiverAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReceiverAge(v)
		return nil
	case distribution.FieldNumberOfBags:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumberOfBags(v)
		return nil
	}
	return fmt.Errorf("unknown Distribution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DistributionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DistributionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DistributionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Distribution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DistributionMutation) ResetField(name string) error {
	switch name {
	case distribution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case distribution.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case distribution.FieldDistributionNumber:
		m.ResetDistributionNumber()
		return nil
	case distribution.FieldReceiverFirstName:
		m.ResetReceiverFirstName()
		return nil
	case distribution.FieldReceiverLastName:
		m.ResetReceiverLastName()
		return nil
	case distribution.FieldReceiverAge:
		m.ResetReceiverAge()
		return nil
	case distribution.FieldReceiverSex:
		m.ResetReceiverSex()
		return nil
	case distribution.FieldEstablishment:
		m.ResetEstablishment()
		return nil
	case distribution.FieldRequestedBloodGroup:
		m.ResetRequestedBloodGroup()
		return nil
	case distribution.FieldNumberOfBags:
		m.ResetNumberOfBags()
		return nil
	case distribution.FieldService:
		m.ResetService()
		return nil
	case distribution.FieldCarrierName:
		m.ResetCarrierName()
		return nil
	case distribution.FieldDoctorName:
		m.ResetDoctorName()
		return nil
	case distribution.FieldIssuedAt:
		m.ResetIssuedAt()
		return nil
	case distribution.FieldBagbloodID:
		m.ResetBagbloodID()
		return nil
	}
	return fmt.Errorf("unknown Distribution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DistributionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.bag != nil {
		edges = append(edges, distribution.EdgeBag)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DistributionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case distribution.EdgeBag:
		if id := m.bag; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DistributionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DistributionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DistributionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbag {
		edges = append(edges, distribution.EdgeBag)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DistributionMutation) EdgeCleared(name string) bool {
	switch name {
	case distribution.EdgeBag:
		return m.clearedbag
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DistributionMutation) ClearEdge(name string) error {
	switch name {
	case distribution.EdgeBag:
		m.ClearBag()
		return nil
	}
	return fmt.Errorf("unknown Distribution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DistributionMutation) ResetEdge(name string) error {
	switch name {
	case distribution.EdgeBag:
		m.ResetBag()
		return nil
	}
	return fmt.Errorf("unknown Distribution edge %s", name)
}

// YearlyStatMutation represents an operation that mutates the YearlyStat nodes in the graph.
type YearlyStatMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	year             *int
	addyear          *int
	total_bags       *int
	addtotal_bags    *int
	total_cps        *int
	addtotal_cps     *int
	total_pfc        *int
	addtotal_pfc     *int
	total_cg         *int
	addtotal_cg      *int
	total_expired    *int
	addtotal_expired *int
	recorded_by      *uuid.UUID
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*YearlyStat, error)
	predicates       []predicate.YearlyStat
}

var _ ent.Mutation = (*YearlyStatMutation)(nil)

// yearlystatOption allows management of the mutation configuration using functional options.
type yearlystatOption func(*YearlyStatMutation)

// newYearlyStatMutation creates new mutation for the YearlyStat entity.
func newYearlyStatMutation(c config, op Op, opts ...yearlystatOption) *YearlyStatMutation {
	m := &YearlyStatMutation{
		config:        c,
		op:            op,
		typ:           TypeYearlyStat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withYearlyStatID sets the ID field of the mutation.
func withYearlyStatID(id uuid.UUID) yearlystatOption {
	return func(m *YearlyStatMutation) {
		var (
			err   error
			once  sync.Once
			value *YearlyStat
		)
		m.oldValue = func(ctx context.Context) (*YearlyStat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().YearlyStat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withYearlyStat sets the old YearlyStat of the mutation.
func withYearlyStat(node *YearlyStat) yearlystatOption {
	return func(m *YearlyStatMutation) {
		m.oldValue = func(context.Context) (*YearlyStat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m YearlyStatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m YearlyStatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of YearlyStat entities.
func (m *YearlyStatMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *YearlyStatMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *YearlyStatMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().YearlyStat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *YearlyStatMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *YearlyStatMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the YearlyStat entity.
// If the YearlyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *YearlyStatMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *YearlyStatMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *YearlyStatMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *YearlyStatMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the YearlyStat entity.
// If the YearlyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *YearlyStatMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *YearlyStatMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetYear sets the "year" field.
func (m *YearlyStatMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *YearlyStatMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the YearlyStat entity.
// If the YearlyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *YearlyStatMutation) OldYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *YearlyStatMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *YearlyStatMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ResetYear resets all changes to the "year" field.
func (m *YearlyStatMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
}

// SetTotalBags sets the "total_bags" field.
func (m *YearlyStatMutation) SetTotalBags(i int) {
	m.total_bags = &i
	m.addtotal_bags = nil
}

// TotalBags returns the value of the "total_bags" field in the mutation.
func (m *YearlyStatMutation) TotalBags() (r int, exists bool) {
	v := m.total_bags
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalBags returns the old "total_bags" field's value of the YearlyStat entity.
// If the YearlyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *YearlyStatMutation) OldTotalBags(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalBags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalBags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalBags: %w", err)
	}
	return oldValue.TotalBags, nil
}

// AddTotalBags adds i to the "total_bags" field.
func (m *YearlyStatMutation) AddTotalBags(i int) {
	if m.addtotal_bags != nil {
		*m.addtotal_bags += i
	} else {
		m.addtotal_bags = &i
	}
}

// AddedTotalBags returns the value that was added to the "total_bags" field in this mutation.
func (m *YearlyStatMutation) AddedTotalBags() (r int, exists bool) {
	v := m.addtotal_bags
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalBags resets all changes to the "total_bags" field.
func (m *YearlyStatMutation) ResetTotalBags() {
	m.total_bags = nil
	m.addtotal_bags = nil
}

// SetTotalCps sets the "total_cps" field.
func (m *YearlyStatMutation) SetTotalCps(i int) {
	m.total_cps = &i
	m.addtotal_cps = nil
}

// TotalCps returns the value of the "total_cps" field in the mutation.
func (m *YearlyStatMutation) TotalCps() (r int, exists bool) {
	v := m.total_cps
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCps returns the old "total_cps" field's value of the YearlyStat entity.
// If the YearlyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *YearlyStatMutation) OldTotalCps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCps: %w", err)
	}
	return oldValue.TotalCps, nil
}

// AddTotalCps adds i to the "total_cps" field.
func (m *YearlyStatMutation) AddTotalCps(i int) {
	if m.addtotal_cps != nil {
		*m.addtotal_cps += i
	} else {
		m.addtotal_cps = &i
	}
}

// AddedTotalCps returns the value that was added to the "total_cps" field in this mutation.
func (m *YearlyStatMutation) AddedTotalCps() (r int, exists bool) {
	v := m.addtotal_cps
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCps resets all changes to the "total_cps" field.
func (m *YearlyStatMutation) ResetTotalCps() {
	m.total_cps = nil
	m.addtotal_cps = nil
}

// SetTotalPfc sets the "total_pfc" field.
func (m *YearlyStatMutation) SetTotalPfc(i int) {
	m.total_pfc = &i
	m.addtotal_pfc = nil
}

// TotalPfc returns the value of the "total_pfc" field in the mutation.
func (m *YearlyStatMutation) TotalPfc() (r int, exists bool) {
	v := m.total_pfc
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPfc returns the old "total_pfc" field's value of the YearlyStat entity.
// If the YearlyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *YearlyStatMutation) OldTotalPfc(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPfc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPfc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPfc: %w", err)
	}
	return oldValue.TotalPfc, nil
}

// AddTotalPfc adds i to the "total_pfc" field.
func (m *YearlyStatMutation) AddTotalPfc(i int) {
	if m.addtotal_pfc != nil {
		*m.addtotal_pfc += i
	} else {
		m.addtotal_pfc = &i
	}
}

// AddedTotalPfc returns the value that was added to the "total_pfc" field in this mutation.
func (m *YearlyStatMutation) AddedTotalPfc() (r int, exists bool) {
	v := m.addtotal_pfc
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPfc resets all changes to the "total_pfc" field.
func (m *YearlyStatMutation) ResetTotalPfc() {
	m.total_pfc = nil
	m.addtotal_pfc = nil
}

// SetTotalCg sets the "total_cg" field.
func (m *YearlyStatMutation) SetTotalCg(i int) {
	m.total_cg = &i
	m.addtotal_cg = nil
}

// TotalCg returns the value of the "total_cg" field in the mutation.
func (m *YearlyStatMutation) TotalCg() (r int, exists bool) {
	v := m.total_cg
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCg returns the old "total_cg" field's value of the YearlyStat entity.
// If the YearlyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *YearlyStatMutation) OldTotalCg(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCg: %w", err)
	}
	return oldValue.TotalCg, nil
}

// AddTotalCg adds i to the "total_cg" field.
func (m *YearlyStatMutation) AddTotalCg(i int) {
	if m.addtotal_cg != nil {
		*m.addtotal_cg += i
	} else {
		m.addtotal_cg = &i
	}
}

// AddedTotalCg returns the value that was added to the "total_cg" field in this mutation.
func (m *YearlyStatMutation) AddedTotalCg() (r int, exists bool) {
	v := m.addtotal_cg
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCg resets all changes to the "total_cg" field.
func (m *YearlyStatMutation) ResetTotalCg() {
	m.total_cg = nil
	m.addtotal_cg = nil
}

// SetTotalExpired sets the "total_expired" field.
func (m *YearlyStatMutation) SetTotalExpired(i int) {
	m.total_expired = &i
	m.addtotal_expired = nil
}

// TotalExpired returns the value of the "total_expired" field in the mutation.
func (m *YearlyStatMutation) TotalExpired() (r int, exists bool) {
	v := m.total_expired
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalExpired returns the old "total_expired" field's value of the YearlyStat entity.
// If the YearlyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *YearlyStatMutation) OldTotalExpired(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalExpired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalExpired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalExpired: %w", err)
	}
	return oldValue.TotalExpired, nil
}

// AddTotalExpired adds i to the "total_expired" field.
func (m *YearlyStatMutation) AddTotalExpired(i int) {
	if m.addtotal_expired != nil {
		*m.addtotal_expired += i
	} else {
		m.addtotal_expired = &i
	}
}

// AddedTotalExpired returns the value that was added to the "total_expired" field in this mutation.
func (m *YearlyStatMutation) AddedTotalExpired() (r int, exists bool) {
	v := m.addtotal_expired
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalExpired resets all changes to the "total_expired" field.
func (m *YearlyStatMutation) ResetTotalExpired() {
	m.total_expired = nil
	m.addtotal_expired = nil
}

// SetRecordedBy sets the "recorded_by" field.
func (m *YearlyStatMutation) SetRecordedBy(u uuid.UUID) {
	m.recorded_by = &u
}

// RecordedBy returns the value of the "recorded_by" field in the mutation.
func (m *YearlyStatMutation) RecordedBy() (r uuid.UUID, exists bool) {
	v := m.recorded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedBy returns the old "recorded_by" field's value of the YearlyStat entity.
// If the YearlyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *YearlyStatMutation) OldRecordedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedBy: %w", err)
	}
	return oldValue.RecordedBy, nil
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (m *YearlyStatMutation) ClearRecordedBy() {
	m.recorded_by = nil
	m.clearedFields[yearlystat.FieldRecordedBy] = struct{}{}
}

// RecordedByCleared returns if the "recorded_by" field was cleared in this mutation.
func (m *YearlyStatMutation) RecordedByCleared() bool {
	_, ok := m.clearedFields[yearlystat.FieldRecordedBy]
	return ok
}

// ResetRecordedBy resets all changes to the "recorded_by" field.
func (m *YearlyStatMutation) ResetRecordedBy() {
	m.recorded_by = nil
	delete(m.clearedFields, yearlystat.FieldRecordedBy)
}

// Where appends a list predicates to the YearlyStatMutation builder.
func (m *YearlyStatMutation) Where(ps ...predicate.YearlyStat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the YearlyStatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *YearlyStatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.YearlyStat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *YearlyStatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *YearlyStatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (YearlyStat).
func (m *YearlyStatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *YearlyStatMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, yearlystat.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, yearlystat.FieldUpdatedAt)
	}
	if m.year != nil {
		fields = append(fields, yearlystat.FieldYear)
	}
	if m.total_bags != nil {
		fields = append(fields, yearlystat.FieldTotalBags)
	}
	if m.total_cps != nil {
		fields = append(fields, yearlystat.FieldTotalCps)
	}
	if m.total_pfc != nil {
		fields = append(fields, yearlystat.FieldTotalPfc)
	}
	if m.total_cg != nil {
		fields = append(fields, yearlystat.FieldTotalCg)
	}
	if m.total_expired != nil {
		fields = append(fields, yearlystat.FieldTotalExpired)
	}
	if m.recorded_by != nil {
		fields = append(fields, yearlystat.FieldRecordedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *YearlyStatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case yearlystat.FieldCreatedAt:
		return m.CreatedAt()
	case yearlystat.FieldUpdatedAt:
		return m.UpdatedAt()
	case yearlystat.FieldYear:
		return m.Year()
	case yearlystat.FieldTotalBags:
		return m.TotalBags()
	case yearlystat.FieldTotalCps:
		return m.TotalCps()
	case yearlystat.FieldTotalPfc:
		return m.TotalPfc()
	case yearlystat.FieldTotalCg:
		return m.TotalCg()
	case yearlystat.FieldTotalExpired:
		return m.TotalExpired()
	case yearlystat.FieldRecordedBy:
		return m.RecordedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *YearlyStatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case yearlystat.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case yearlystat.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case yearlystat.FieldYear:
		return m.OldYear(ctx)
	case yearlystat.FieldTotalBags:
		return m.OldTotalBags(ctx)
	case yearlystat.FieldTotalCps:
		return m.OldTotalCps(ctx)
	case yearlystat.FieldTotalPfc:
		return m.OldTotalPfc(ctx)
	case yearlystat.FieldTotalCg:
		return m.OldTotalCg(ctx)
	case yearlystat.FieldTotalExpired:
		return m.OldTotalExpired(ctx)
	case yearlystat.FieldRecordedBy:
		return m.OldRecordedBy(ctx)
	}
	return nil, fmt.Errorf("unknown YearlyStat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *YearlyStatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case yearlystat.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case yearlystat.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case yearlystat.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case yearlystat.FieldTotalBags:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalBags(v)
		return nil
	case yearlystat.FieldTotalCps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCps(v)
		return nil
	case yearlystat.FieldTotalPfc:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPfc(v)
		return nil
	case yearlystat.FieldTotalCg:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCg(v)
		return nil
	case yearlystat.FieldTotalExpired:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalExpired(v)
		return nil
	case yearlystat.FieldRecordedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedBy(v)
		return nil
	}
	return fmt.Errorf("unknown YearlyStat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *YearlyStatMutation) AddedFields() []string {
	var fields []string
	if m.addyear != nil {
		fields = append(fields, yearlystat.FieldYear)
	}
	if m.addtotal_bags != nil {
		fields = append(fields, yearlystat.FieldTotalBags)
	}
	if m.addtotal_cps != nil {
		fields = append(fields, yearlystat.FieldTotalCps)
	}
	if m.addtotal_pfc != nil {
		fields = append(fields, yearlystat.FieldTotalPfc)
	}
	if m.addtotal_cg != nil {
		fields = append(fields, yearlystat.FieldTotalCg)
	}
	if m.addtotal_expired != nil {
		fields = append(fields, yearlystat.FieldTotalExpired)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *YearlyStatMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case yearlystat.FieldYear:
		return m.AddedYear()
	case yearlystat.FieldTotalBags:
		return m.AddedTotalBags()
	case yearlystat.FieldTotalCps:
		return m.AddedTotalCps()
	case yearlystat.FieldTotalPfc:
		return m.AddedTotalPfc()
	case yearlystat.FieldTotalCg:
		return m.AddedTotalCg()
	case yearlystat.FieldTotalExpired:
		return m.AddedTotalExpired()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *YearlyStatMutation) AddField(name string, value ent.Value) error {
	switch name {
	case yearlystat.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	case yearlystat.FieldTotalBags:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalBags(v)
		return nil
	case yearlystat.FieldTotalCps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCps(v)
		return nil
	case yearlystat.FieldTotalPfc:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPfc(v)
		return nil
	case yearlystat.FieldTotalCg:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCg(v)
		return nil
	case yearlystat.FieldTotalExpired:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalExpired(v)
		return nil
	}
	return fmt.Errorf("unknown YearlyStat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *YearlyStatMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(yearlystat.FieldRecordedBy) {
		fields = append(fields, yearlystat.FieldRecordedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *YearlyStatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *YearlyStatMutation) ClearField(name string) error {
	switch name {
	case yearlystat.FieldRecordedBy:
		m.ClearRecordedBy()
		return nil
	}
	return fmt.Errorf("unknown YearlyStat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *YearlyStatMutation) ResetField(name string) error {
	switch name {
	case yearlystat.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case yearlystat.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case yearlystat.FieldYear:
		m.ResetYear()
		return nil
	case yearlystat.FieldTotalBags:
		m.ResetTotalBags()
		return nil
	case yearlystat.FieldTotalCps:
		m.ResetTotalCps()
		return nil
	case yearlystat.FieldTotalPfc:
		m.ResetTotalPfc()
		return nil
	case yearlystat.FieldTotalCg:
		m.ResetTotalCg()
		return nil
	case yearlystat.FieldTotalExpired:
		m.ResetTotalExpired()
		return nil
	case yearlystat.FieldRecordedBy:
		m.ResetRecordedBy()
		return nil
	}
	return fmt.Errorf("unknown YearlyStat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *YearlyStatMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *YearlyStatMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *YearlyStatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *YearlyStatMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *YearlyStatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *YearlyStatMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *YearlyStatMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown YearlyStat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *YearlyStatMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown YearlyStat edge %s", name)
}
