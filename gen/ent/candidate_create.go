// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nordstaff/consultant-matcher/gen/ent/candidate"
	"github.com/nordstaff/consultant-matcher/gen/ent/match"
)

// CandidateCreate is the builder for creating a Candidate entity.
type CandidateCreate struct {
	config
	mutation *CandidateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *CandidateCreate) SetName(v string) *CandidateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *CandidateCreate) SetRole(v string) *CandidateCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableRole(v *string) *CandidateCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetSeniority sets the "seniority" field.
func (_c *CandidateCreate) SetSeniority(v string) *CandidateCreate {
	_c.mutation.SetSeniority(v)
	return _c
}

// SetNillableSeniority sets the "seniority" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableSeniority(v *string) *CandidateCreate {
	if v != nil {
		_c.SetSeniority(*v)
	}
	return _c
}

// SetSkills sets the "skills" field.
func (_c *CandidateCreate) SetSkills(v []string) *CandidateCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetLanguages sets the "languages" field.
func (_c *CandidateCreate) SetLanguages(v []string) *CandidateCreate {
	_c.mutation.SetLanguages(v)
	return _c
}

// SetLocationCity sets the "location_city" field.
func (_c *CandidateCreate) SetLocationCity(v string) *CandidateCreate {
	_c.mutation.SetLocationCity(v)
	return _c
}

// SetNillableLocationCity sets the "location_city" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableLocationCity(v *string) *CandidateCreate {
	if v != nil {
		_c.SetLocationCity(*v)
	}
	return _c
}

// SetLocationCountry sets the "location_country" field.
func (_c *CandidateCreate) SetLocationCountry(v string) *CandidateCreate {
	_c.mutation.SetLocationCountry(v)
	return _c
}

// SetNillableLocationCountry sets the "location_country" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableLocationCountry(v *string) *CandidateCreate {
	if v != nil {
		_c.SetLocationCountry(*v)
	}
	return _c
}

// SetOnsiteMode sets the "onsite_mode" field.
func (_c *CandidateCreate) SetOnsiteMode(v candidate.OnsiteMode) *CandidateCreate {
	_c.mutation.SetOnsiteMode(v)
	return _c
}

// SetNillableOnsiteMode sets the "onsite_mode" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableOnsiteMode(v *candidate.OnsiteMode) *CandidateCreate {
	if v != nil {
		_c.SetOnsiteMode(*v)
	}
	return _c
}

// SetAvailabilityFrom sets the "availability_from" field.
func (_c *CandidateCreate) SetAvailabilityFrom(v time.Time) *CandidateCreate {
	_c.mutation.SetAvailabilityFrom(v)
	return _c
}

// SetNillableAvailabilityFrom sets the "availability_from" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableAvailabilityFrom(v *time.Time) *CandidateCreate {
	if v != nil {
		_c.SetAvailabilityFrom(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *CandidateCreate) SetNotes(v string) *CandidateCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableNotes(v *string) *CandidateCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetProfileURL sets the "profile_url" field.
func (_c *CandidateCreate) SetProfileURL(v string) *CandidateCreate {
	_c.mutation.SetProfileURL(v)
	return _c
}

// SetNillableProfileURL sets the "profile_url" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableProfileURL(v *string) *CandidateCreate {
	if v != nil {
		_c.SetProfileURL(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *CandidateCreate) SetActive(v bool) *CandidateCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableActive(v *bool) *CandidateCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CandidateCreate) SetCreatedAt(v time.Time) *CandidateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableCreatedAt(v *time.Time) *CandidateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CandidateCreate) SetUpdatedAt(v time.Time) *CandidateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableUpdatedAt(v *time.Time) *CandidateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CandidateCreate) SetID(v uuid.UUID) *CandidateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableID(v *uuid.UUID) *CandidateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_c *CandidateCreate) AddMatchIDs(ids ...uuid.UUID) *CandidateCreate {
	_c.mutation.AddMatchIDs(ids...)
	return _c
}

// AddMatches adds the "matches" edges to the Match entity.
func (_c *CandidateCreate) AddMatches(v ...*Match) *CandidateCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMatchIDs(ids...)
}

// Mutation returns the CandidateMutation object of the builder.
func (_c *CandidateCreate) Mutation() *CandidateMutation {
	return _c.mutation
}

// Save creates the Candidate in the database.
func (_c *CandidateCreate) Save(ctx context.Context) (*Candidate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CandidateCreate) SaveX(ctx context.Context) *Candidate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CandidateCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := candidate.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := candidate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := candidate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := candidate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CandidateCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Candidate.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := candidate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Candidate.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.OnsiteMode(); ok {
		if err := candidate.OnsiteModeValidator(v); err != nil {
			return &ValidationError{Name: "onsite_mode", err: fmt.Errorf(`ent: validator failed for field "Candidate.onsite_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Candidate.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Candidate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Candidate.updated_at"`)}
	}
	return nil
}

func (_c *CandidateCreate) sqlSave(ctx context.Context) (*Candidate, error) {
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

func (_c *CandidateCreate) createSpec() (*Candidate, *sqlgraph.CreateSpec) {
	var (
		_node = &Candidate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(candidate.Table, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(candidate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(candidate.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Seniority(); ok {
		_spec.SetField(candidate.FieldSeniority, field.TypeString, value)
		_node.Seniority = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(candidate.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.Languages(); ok {
		_spec.SetField(candidate.FieldLanguages, field.TypeJSON, value)
		_node.Languages = value
	}
	if value, ok := _c.mutation.LocationCity(); ok {
		_spec.SetField(candidate.FieldLocationCity, field.TypeString, value)
		_node.LocationCity = value
	}
	if value, ok := _c.mutation.LocationCountry(); ok {
		_spec.SetField(candidate.FieldLocationCountry, field.TypeString, value)
		_node.LocationCountry = value
	}
	if value, ok := _c.mutation.OnsiteMode(); ok {
		_spec.SetField(candidate.FieldOnsiteMode, field.TypeEnum, value)
		_node.OnsiteMode = value
	}
	if value, ok := _c.mutation.AvailabilityFrom(); ok {
		_spec.SetField(candidate.FieldAvailabilityFrom, field.TypeTime, value)
		_node.AvailabilityFrom = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(candidate.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.ProfileURL(); ok {
		_spec.SetField(candidate.FieldProfileURL, field.TypeString, value)
		_node.ProfileURL = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(candidate.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(candidate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.MatchesTable,
			Columns: []string{candidate.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Candidate.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CandidateUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *CandidateCreate) OnConflict(opts ...sql.ConflictOption) *CandidateUpsertOne {
	_c.conflict = opts
	return &CandidateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CandidateCreate) OnConflictColumns(columns ...string) *CandidateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CandidateUpsertOne{
		create: _c,
	}
}

type (
	// CandidateUpsertOne is the builder for "upsert"-ing
	//  one Candidate node.
	CandidateUpsertOne struct {
		create *CandidateCreate
	}

	// CandidateUpsert is the "OnConflict" setter.
	CandidateUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *CandidateUpsert) SetName(v string) *CandidateUpsert {
	u.Set(candidate.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateName() *CandidateUpsert {
	u.SetExcluded(candidate.FieldName)
	return u
}

// SetRole sets the "role" field.
func (u *CandidateUpsert) SetRole(v string) *CandidateUpsert {
	u.Set(candidate.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateRole() *CandidateUpsert {
	u.SetExcluded(candidate.FieldRole)
	return u
}

// ClearRole clears the value of the "role" field.
func (u *CandidateUpsert) ClearRole() *CandidateUpsert {
	u.SetNull(candidate.FieldRole)
	return u
}

// SetSeniority sets the "seniority" field.
func (u *CandidateUpsert) SetSeniority(v string) *CandidateUpsert {
	u.Set(candidate.FieldSeniority, v)
	return u
}

// UpdateSeniority sets the "seniority" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateSeniority() *CandidateUpsert {
	u.SetExcluded(candidate.FieldSeniority)
	return u
}

// ClearSeniority clears the value of the "seniority" field.
func (u *CandidateUpsert) ClearSeniority() *CandidateUpsert {
	u.SetNull(candidate.FieldSeniority)
	return u
}

// SetSkills sets the "skills" field.
func (u *CandidateUpsert) SetSkills(v []string) *CandidateUpsert {
	u.Set(candidate.FieldSkills, v)
	return u
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateSkills() *CandidateUpsert {
	u.SetExcluded(candidate.FieldSkills)
	return u
}

// ClearSkills clears the value of the "skills" field.
func (u *CandidateUpsert) ClearSkills() *CandidateUpsert {
	u.SetNull(candidate.FieldSkills)
	return u
}

// SetLanguages sets the "languages" field.
func (u *CandidateUpsert) SetLanguages(v []string) *CandidateUpsert {
	u.Set(candidate.FieldLanguages, v)
	return u
}

// UpdateLanguages sets the "languages" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateLanguages() *CandidateUpsert {
	u.SetExcluded(candidate.FieldLanguages)
	return u
}

// ClearLanguages clears the value of the "languages" field.
func (u *CandidateUpsert) ClearLanguages() *CandidateUpsert {
	u.SetNull(candidate.FieldLanguages)
	return u
}

// SetLocationCity sets the "location_city" field.
func (u *CandidateUpsert) SetLocationCity(v string) *CandidateUpsert {
	u.Set(candidate.FieldLocationCity, v)
	return u
}

// UpdateLocationCity sets the "location_city" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateLocationCity() *CandidateUpsert {
	u.SetExcluded(candidate.FieldLocationCity)
	return u
}

// ClearLocationCity clears the value of the "location_city" field.
func (u *CandidateUpsert) ClearLocationCity() *CandidateUpsert {
	u.SetNull(candidate.FieldLocationCity)
	return u
}

// SetLocationCountry sets the "location_country" field.
func (u *CandidateUpsert) SetLocationCountry(v string) *CandidateUpsert {
	u.Set(candidate.FieldLocationCountry, v)
	return u
}

// UpdateLocationCountry sets the "location_country" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateLocationCountry() *CandidateUpsert {
	u.SetExcluded(candidate.FieldLocationCountry)
	return u
}

// ClearLocationCountry clears the value of the "location_country" field.
func (u *CandidateUpsert) ClearLocationCountry() *CandidateUpsert {
	u.SetNull(candidate.FieldLocationCountry)
	return u
}

// SetOnsiteMode sets the "onsite_mode" field.
func (u *CandidateUpsert) SetOnsiteMode(v candidate.OnsiteMode) *CandidateUpsert {
	u.Set(candidate.FieldOnsiteMode, v)
	return u
}

// UpdateOnsiteMode sets the "onsite_mode" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateOnsiteMode() *CandidateUpsert {
	u.SetExcluded(candidate.FieldOnsiteMode)
	return u
}

// ClearOnsiteMode clears the value of the "onsite_mode" field.
func (u *CandidateUpsert) ClearOnsiteMode() *CandidateUpsert {
	u.SetNull(candidate.FieldOnsiteMode)
	return u
}

// SetAvailabilityFrom sets the "availability_from" field.
func (u *CandidateUpsert) SetAvailabilityFrom(v time.Time) *CandidateUpsert {
	u.Set(candidate.FieldAvailabilityFrom, v)
	return u
}

// UpdateAvailabilityFrom sets the "availability_from" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateAvailabilityFrom() *CandidateUpsert {
	u.SetExcluded(candidate.FieldAvailabilityFrom)
	return u
}

// ClearAvailabilityFrom clears the value of the "availability_from" field.
func (u *CandidateUpsert) ClearAvailabilityFrom() *CandidateUpsert {
	u.SetNull(candidate.FieldAvailabilityFrom)
	return u
}

// SetNotes sets the "notes" field.
func (u *CandidateUpsert) SetNotes(v string) *CandidateUpsert {
	u.Set(candidate.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateNotes() *CandidateUpsert {
	u.SetExcluded(candidate.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *CandidateUpsert) ClearNotes() *CandidateUpsert {
	u.SetNull(candidate.FieldNotes)
	return u
}

// SetProfileURL sets the "profile_url" field.
func (u *CandidateUpsert) SetProfileURL(v string) *CandidateUpsert {
	u.Set(candidate.FieldProfileURL, v)
	return u
}

// UpdateProfileURL sets the "profile_url" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateProfileURL() *CandidateUpsert {
	u.SetExcluded(candidate.FieldProfileURL)
	return u
}

// ClearProfileURL clears the value of the "profile_url" field.
func (u *CandidateUpsert) ClearProfileURL() *CandidateUpsert {
	u.SetNull(candidate.FieldProfileURL)
	return u
}

// SetActive sets the "active" field.
func (u *CandidateUpsert) SetActive(v bool) *CandidateUpsert {
	u.Set(candidate.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateActive() *CandidateUpsert {
	u.SetExcluded(candidate.FieldActive)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *CandidateUpsert) SetCreatedAt(v time.Time) *CandidateUpsert {
	u.Set(candidate.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateCreatedAt() *CandidateUpsert {
	u.SetExcluded(candidate.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CandidateUpsert) SetUpdatedAt(v time.Time) *CandidateUpsert {
	u.Set(candidate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateUpdatedAt() *CandidateUpsert {
	u.SetExcluded(candidate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(candidate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CandidateUpsertOne) UpdateNewValues() *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(candidate.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Candidate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CandidateUpsertOne) Ignore() *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CandidateUpsertOne) DoNothing() *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CandidateCreate.OnConflict
// documentation for more info.
func (u *CandidateUpsertOne) Update(set func(*CandidateUpsert)) *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CandidateUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CandidateUpsertOne) SetName(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateName() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateName()
	})
}

// SetRole sets the "role" field.
func (u *CandidateUpsertOne) SetRole(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateRole() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateRole()
	})
}

// ClearRole clears the value of the "role" field.
func (u *CandidateUpsertOne) ClearRole() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearRole()
	})
}

// SetSeniority sets the "seniority" field.
func (u *CandidateUpsertOne) SetSeniority(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetSeniority(v)
	})
}

// UpdateSeniority sets the "seniority" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateSeniority() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateSeniority()
	})
}

// ClearSeniority clears the value of the "seniority" field.
func (u *CandidateUpsertOne) ClearSeniority() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearSeniority()
	})
}

// SetSkills sets the "skills" field.
func (u *CandidateUpsertOne) SetSkills(v []string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetSkills(v)
	})
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateSkills() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateSkills()
	})
}

// ClearSkills clears the value of the "skills" field.
func (u *CandidateUpsertOne) ClearSkills() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearSkills()
	})
}

// SetLanguages sets the "languages" field.
func (u *CandidateUpsertOne) SetLanguages(v []string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetLanguages(v)
	})
}

// UpdateLanguages sets the "languages" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateLanguages() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateLanguages()
	})
}

// ClearLanguages clears the value of the "languages" field.
func (u *CandidateUpsertOne) ClearLanguages() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearLanguages()
	})
}

// SetLocationCity sets the "location_city" field.
func (u *CandidateUpsertOne) SetLocationCity(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetLocationCity(v)
	})
}

// UpdateLocationCity sets the "location_city" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateLocationCity() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateLocationCity()
	})
}

// ClearLocationCity clears the value of the "location_city" field.
func (u *CandidateUpsertOne) ClearLocationCity() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearLocationCity()
	})
}

// SetLocationCountry sets the "location_country" field.
func (u *CandidateUpsertOne) SetLocationCountry(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetLocationCountry(v)
	})
}

// UpdateLocationCountry sets the "location_country" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateLocationCountry() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateLocationCountry()
	})
}

// ClearLocationCountry clears the value of the "location_country" field.
func (u *CandidateUpsertOne) ClearLocationCountry() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearLocationCountry()
	})
}

// SetOnsiteMode sets the "onsite_mode" field.
func (u *CandidateUpsertOne) SetOnsiteMode(v candidate.OnsiteMode) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetOnsiteMode(v)
	})
}

// UpdateOnsiteMode sets the "onsite_mode" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateOnsiteMode() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateOnsiteMode()
	})
}

// ClearOnsiteMode clears the value of the "onsite_mode" field.
func (u *CandidateUpsertOne) ClearOnsiteMode() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearOnsiteMode()
	})
}

// SetAvailabilityFrom sets the "availability_from" field.
func (u *CandidateUpsertOne) SetAvailabilityFrom(v time.Time) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetAvailabilityFrom(v)
	})
}

// UpdateAvailabilityFrom sets the "availability_from" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateAvailabilityFrom() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateAvailabilityFrom()
	})
}

// ClearAvailabilityFrom clears the value of the "availability_from" field.
func (u *CandidateUpsertOne) ClearAvailabilityFrom() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearAvailabilityFrom()
	})
}

// SetNotes sets the "notes" field.
func (u *CandidateUpsertOne) SetNotes(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateNotes() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *CandidateUpsertOne) ClearNotes() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearNotes()
	})
}

// SetProfileURL sets the "profile_url" field.
func (u *CandidateUpsertOne) SetProfileURL(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetProfileURL(v)
	})
}

// UpdateProfileURL sets the "profile_url" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateProfileURL() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateProfileURL()
	})
}

// ClearProfileURL clears the value of the "profile_url" field.
func (u *CandidateUpsertOne) ClearProfileURL() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearProfileURL()
	})
}

// SetActive sets the "active" field.
func (u *CandidateUpsertOne) SetActive(v bool) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateActive() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateActive()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CandidateUpsertOne) SetCreatedAt(v time.Time) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateCreatedAt() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CandidateUpsertOne) SetUpdatedAt(v time.Time) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateUpdatedAt() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CandidateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CandidateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CandidateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CandidateUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CandidateUpsertOne.ID is not supported by MySQL driver. Use CandidateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CandidateUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CandidateCreateBulk is the builder for creating many Candidate entities in bulk.
type CandidateCreateBulk struct {
	config
	err      error
	builders []*CandidateCreate
	conflict []sql.ConflictOption
}

// Save creates the Candidate entities in the database.
func (_c *CandidateCreateBulk) Save(ctx context.Context) ([]*Candidate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Candidate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CandidateMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *CandidateCreateBulk) SaveX(ctx context.Context) []*Candidate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Candidate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CandidateUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *CandidateCreateBulk) OnConflict(opts ...sql.ConflictOption) *CandidateUpsertBulk {
	_c.conflict = opts
	return &CandidateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CandidateCreateBulk) OnConflictColumns(columns ...string) *CandidateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CandidateUpsertBulk{
		create: _c,
	}
}

// CandidateUpsertBulk is the builder for "upsert"-ing
// a bulk of Candidate nodes.
type CandidateUpsertBulk struct {
	create *CandidateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(candidate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CandidateUpsertBulk) UpdateNewValues() *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(candidate.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CandidateUpsertBulk) Ignore() *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CandidateUpsertBulk) DoNothing() *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CandidateCreateBulk.OnConflict
// documentation for more info.
func (u *CandidateUpsertBulk) Update(set func(*CandidateUpsert)) *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CandidateUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CandidateUpsertBulk) SetName(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateName() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateName()
	})
}

// SetRole sets the "role" field.
func (u *CandidateUpsertBulk) SetRole(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateRole() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateRole()
	})
}

// ClearRole clears the value of the "role" field.
func (u *CandidateUpsertBulk) ClearRole() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearRole()
	})
}

// SetSeniority sets the "seniority" field.
func (u *CandidateUpsertBulk) SetSeniority(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetSeniority(v)
	})
}

// UpdateSeniority sets the "seniority" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateSeniority() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateSeniority()
	})
}

// ClearSeniority clears the value of the "seniority" field.
func (u *CandidateUpsertBulk) ClearSeniority() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearSeniority()
	})
}

// SetSkills sets the "skills" field.
func (u *CandidateUpsertBulk) SetSkills(v []string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetSkills(v)
	})
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateSkills() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateSkills()
	})
}

// ClearSkills clears the value of the "skills" field.
func (u *CandidateUpsertBulk) ClearSkills() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearSkills()
	})
}

// SetLanguages sets the "languages" field.
func (u *CandidateUpsertBulk) SetLanguages(v []string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetLanguages(v)
	})
}

// UpdateLanguages sets the "languages" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateLanguages() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateLanguages()
	})
}

// ClearLanguages clears the value of the "languages" field.
func (u *CandidateUpsertBulk) ClearLanguages() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearLanguages()
	})
}

// SetLocationCity sets the "location_city" field.
func (u *CandidateUpsertBulk) SetLocationCity(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetLocationCity(v)
	})
}

// UpdateLocationCity sets the "location_city" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateLocationCity() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateLocationCity()
	})
}

// ClearLocationCity clears the value of the "location_city" field.
func (u *CandidateUpsertBulk) ClearLocationCity() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearLocationCity()
	})
}

// SetLocationCountry sets the "location_country" field.
func (u *CandidateUpsertBulk) SetLocationCountry(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetLocationCountry(v)
	})
}

// UpdateLocationCountry sets the "location_country" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateLocationCountry() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateLocationCountry()
	})
}

// ClearLocationCountry clears the value of the "location_country" field.
func (u *CandidateUpsertBulk) ClearLocationCountry() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearLocationCountry()
	})
}

// SetOnsiteMode sets the "onsite_mode" field.
func (u *CandidateUpsertBulk) SetOnsiteMode(v candidate.OnsiteMode) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetOnsiteMode(v)
	})
}

// UpdateOnsiteMode sets the "onsite_mode" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateOnsiteMode() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateOnsiteMode()
	})
}

// ClearOnsiteMode clears the value of the "onsite_mode" field.
func (u *CandidateUpsertBulk) ClearOnsiteMode() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearOnsiteMode()
	})
}

// SetAvailabilityFrom sets the "availability_from" field.
func (u *CandidateUpsertBulk) SetAvailabilityFrom(v time.Time) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetAvailabilityFrom(v)
	})
}

// UpdateAvailabilityFrom sets the "availability_from" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateAvailabilityFrom() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateAvailabilityFrom()
	})
}

// ClearAvailabilityFrom clears the value of the "availability_from" field.
func (u *CandidateUpsertBulk) ClearAvailabilityFrom() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearAvailabilityFrom()
	})
}

// SetNotes sets the "notes" field.
func (u *CandidateUpsertBulk) SetNotes(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateNotes() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *CandidateUpsertBulk) ClearNotes() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearNotes()
	})
}

// SetProfileURL sets the "profile_url" field.
func (u *CandidateUpsertBulk) SetProfileURL(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetProfileURL(v)
	})
}

// UpdateProfileURL sets the "profile_url" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateProfileURL() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateProfileURL()
	})
}

// ClearProfileURL clears the value of the "profile_url" field.
func (u *CandidateUpsertBulk) ClearProfileURL() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearProfileURL()
	})
}

// SetActive sets the "active" field.
func (u *CandidateUpsertBulk) SetActive(v bool) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateActive() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateActive()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CandidateUpsertBulk) SetCreatedAt(v time.Time) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateCreatedAt() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CandidateUpsertBulk) SetUpdatedAt(v time.Time) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateUpdatedAt() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CandidateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CandidateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CandidateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CandidateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
