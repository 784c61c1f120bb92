// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nordstaff/consultant-matcher/gen/ent/candidate"
	"github.com/nordstaff/consultant-matcher/gen/ent/match"
	"github.com/nordstaff/consultant-matcher/gen/ent/predicate"
)

// CandidateUpdate is the builder for updating Candidate entities.
type CandidateUpdate struct {
	config
	hooks    []Hook
	mutation *CandidateMutation
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdate) Where(ps ...predicate.Candidate) *CandidateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CandidateUpdate) SetName(v string) *CandidateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableName(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *CandidateUpdate) SetRole(v string) *CandidateUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableRole(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *CandidateUpdate) ClearRole() *CandidateUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetSeniority sets the "seniority" field.
func (_u *CandidateUpdate) SetSeniority(v string) *CandidateUpdate {
	_u.mutation.SetSeniority(v)
	return _u
}

// SetNillableSeniority sets the "seniority" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableSeniority(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetSeniority(*v)
	}
	return _u
}

// ClearSeniority clears the value of the "seniority" field.
func (_u *CandidateUpdate) ClearSeniority() *CandidateUpdate {
	_u.mutation.ClearSeniority()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *CandidateUpdate) SetSkills(v []string) *CandidateUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *CandidateUpdate) AppendSkills(v []string) *CandidateUpdate {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *CandidateUpdate) ClearSkills() *CandidateUpdate {
	_u.mutation.ClearSkills()
	return _u
}

// SetLanguages sets the "languages" field.
func (_u *CandidateUpdate) SetLanguages(v []string) *CandidateUpdate {
	_u.mutation.SetLanguages(v)
	return _u
}

// AppendLanguages appends value to the "languages" field.
func (_u *CandidateUpdate) AppendLanguages(v []string) *CandidateUpdate {
	_u.mutation.AppendLanguages(v)
	return _u
}

// ClearLanguages clears the value of the "languages" field.
func (_u *CandidateUpdate) ClearLanguages() *CandidateUpdate {
	_u.mutation.ClearLanguages()
	return _u
}

// SetLocationCity sets the "location_city" field.
func (_u *CandidateUpdate) SetLocationCity(v string) *CandidateUpdate {
	_u.mutation.SetLocationCity(v)
	return _u
}

// SetNillableLocationCity sets the "location_city" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableLocationCity(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetLocationCity(*v)
	}
	return _u
}

// ClearLocationCity clears the value of the "location_city" field.
func (_u *CandidateUpdate) ClearLocationCity() *CandidateUpdate {
	_u.mutation.ClearLocationCity()
	return _u
}

// SetLocationCountry sets the "location_country" field.
func (_u *CandidateUpdate) SetLocationCountry(v string) *CandidateUpdate {
	_u.mutation.SetLocationCountry(v)
	return _u
}

// SetNillableLocationCountry sets the "location_country" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableLocationCountry(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetLocationCountry(*v)
	}
	return _u
}

// ClearLocationCountry clears the value of the "location_country" field.
func (_u *CandidateUpdate) ClearLocationCountry() *CandidateUpdate {
	_u.mutation.ClearLocationCountry()
	return _u
}

// SetOnsiteMode sets the "onsite_mode" field.
func (_u *CandidateUpdate) SetOnsiteMode(v candidate.OnsiteMode) *CandidateUpdate {
	_u.mutation.SetOnsiteMode(v)
	return _u
}

// SetNillableOnsiteMode sets the "onsite_mode" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableOnsiteMode(v *candidate.OnsiteMode) *CandidateUpdate {
	if v != nil {
		_u.SetOnsiteMode(*v)
	}
	return _u
}

// ClearOnsiteMode clears the value of the "onsite_mode" field.
func (_u *CandidateUpdate) ClearOnsiteMode() *CandidateUpdate {
	_u.mutation.ClearOnsiteMode()
	return _u
}

// SetAvailabilityFrom sets the "availability_from" field.
func (_u *CandidateUpdate) SetAvailabilityFrom(v time.Time) *CandidateUpdate {
	_u.mutation.SetAvailabilityFrom(v)
	return _u
}

// SetNillableAvailabilityFrom sets the "availability_from" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableAvailabilityFrom(v *time.Time) *CandidateUpdate {
	if v != nil {
		_u.SetAvailabilityFrom(*v)
	}
	return _u
}

// ClearAvailabilityFrom clears the value of the "availability_from" field.
func (_u *CandidateUpdate) ClearAvailabilityFrom() *CandidateUpdate {
	_u.mutation.ClearAvailabilityFrom()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CandidateUpdate) SetNotes(v string) *CandidateUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableNotes(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CandidateUpdate) ClearNotes() *CandidateUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetProfileURL sets the "profile_url" field.
func (_u *CandidateUpdate) SetProfileURL(v string) *CandidateUpdate {
	_u.mutation.SetProfileURL(v)
	return _u
}

// SetNillableProfileURL sets the "profile_url" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableProfileURL(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetProfileURL(*v)
	}
	return _u
}

// ClearProfileURL clears the value of the "profile_url" field.
func (_u *CandidateUpdate) ClearProfileURL() *CandidateUpdate {
	_u.mutation.ClearProfileURL()
	return _u
}

// SetActive sets the "active" field.
func (_u *CandidateUpdate) SetActive(v bool) *CandidateUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableActive(v *bool) *CandidateUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CandidateUpdate) SetCreatedAt(v time.Time) *CandidateUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableCreatedAt(v *time.Time) *CandidateUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CandidateUpdate) SetUpdatedAt(v time.Time) *CandidateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *CandidateUpdate) AddMatchIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *CandidateUpdate) AddMatches(v ...*Match) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdate) Mutation() *CandidateMutation {
	return _u.mutation
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *CandidateUpdate) ClearMatches() *CandidateUpdate {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *CandidateUpdate) RemoveMatchIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *CandidateUpdate) RemoveMatches(v ...*Match) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CandidateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CandidateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CandidateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := candidate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := candidate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Candidate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OnsiteMode(); ok {
		if err := candidate.OnsiteModeValidator(v); err != nil {
			return &ValidationError{Name: "onsite_mode", err: fmt.Errorf(`ent: validator failed for field "Candidate.onsite_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *CandidateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(candidate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(candidate.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(candidate.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Seniority(); ok {
		_spec.SetField(candidate.FieldSeniority, field.TypeString, value)
	}
	if _u.mutation.SeniorityCleared() {
		_spec.ClearField(candidate.FieldSeniority, field.TypeString)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(candidate.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(candidate.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Languages(); ok {
		_spec.SetField(candidate.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldLanguages, value)
		})
	}
	if _u.mutation.LanguagesCleared() {
		_spec.ClearField(candidate.FieldLanguages, field.TypeJSON)
	}
	if value, ok := _u.mutation.LocationCity(); ok {
		_spec.SetField(candidate.FieldLocationCity, field.TypeString, value)
	}
	if _u.mutation.LocationCityCleared() {
		_spec.ClearField(candidate.FieldLocationCity, field.TypeString)
	}
	if value, ok := _u.mutation.LocationCountry(); ok {
		_spec.SetField(candidate.FieldLocationCountry, field.TypeString, value)
	}
	if _u.mutation.LocationCountryCleared() {
		_spec.ClearField(candidate.FieldLocationCountry, field.TypeString)
	}
	if value, ok := _u.mutation.OnsiteMode(); ok {
		_spec.SetField(candidate.FieldOnsiteMode, field.TypeEnum, value)
	}
	if _u.mutation.OnsiteModeCleared() {
		_spec.ClearField(candidate.FieldOnsiteMode, field.TypeEnum)
	}
	if value, ok := _u.mutation.AvailabilityFrom(); ok {
		_spec.SetField(candidate.FieldAvailabilityFrom, field.TypeTime, value)
	}
	if _u.mutation.AvailabilityFromCleared() {
		_spec.ClearField(candidate.FieldAvailabilityFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(candidate.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(candidate.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ProfileURL(); ok {
		_spec.SetField(candidate.FieldProfileURL, field.TypeString, value)
	}
	if _u.mutation.ProfileURLCleared() {
		_spec.ClearField(candidate.FieldProfileURL, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(candidate.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(candidate.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchesIDs(); len(nodes) > 0 && !_u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CandidateUpdateOne is the builder for updating a single Candidate entity.
type CandidateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CandidateMutation
}

// SetName sets the "name" field.
func (_u *CandidateUpdateOne) SetName(v string) *CandidateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableName(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *CandidateUpdateOne) SetRole(v string) *CandidateUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableRole(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *CandidateUpdateOne) ClearRole() *CandidateUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetSeniority sets the "seniority" field.
func (_u *CandidateUpdateOne) SetSeniority(v string) *CandidateUpdateOne {
	_u.mutation.SetSeniority(v)
	return _u
}

// SetNillableSeniority sets the "seniority" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableSeniority(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetSeniority(*v)
	}
	return _u
}

// ClearSeniority clears the value of the "seniority" field.
func (_u *CandidateUpdateOne) ClearSeniority() *CandidateUpdateOne {
	_u.mutation.ClearSeniority()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *CandidateUpdateOne) SetSkills(v []string) *CandidateUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *CandidateUpdateOne) AppendSkills(v []string) *CandidateUpdateOne {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *CandidateUpdateOne) ClearSkills() *CandidateUpdateOne {
	_u.mutation.ClearSkills()
	return _u
}

// SetLanguages sets the "languages" field.
func (_u *CandidateUpdateOne) SetLanguages(v []string) *CandidateUpdateOne {
	_u.mutation.SetLanguages(v)
	return _u
}

// AppendLanguages appends value to the "languages" field.
func (_u *CandidateUpdateOne) AppendLanguages(v []string) *CandidateUpdateOne {
	_u.mutation.AppendLanguages(v)
	return _u
}

// ClearLanguages clears the value of the "languages" field.
func (_u *CandidateUpdateOne) ClearLanguages() *CandidateUpdateOne {
	_u.mutation.ClearLanguages()
	return _u
}

// SetLocationCity sets the "location_city" field.
func (_u *CandidateUpdateOne) SetLocationCity(v string) *CandidateUpdateOne {
	_u.mutation.SetLocationCity(v)
	return _u
}

// SetNillableLocationCity sets the "location_city" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableLocationCity(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetLocationCity(*v)
	}
	return _u
}

// ClearLocationCity clears the value of the "location_city" field.
func (_u *CandidateUpdateOne) ClearLocationCity() *CandidateUpdateOne {
	_u.mutation.ClearLocationCity()
	return _u
}

// SetLocationCountry sets the "location_country" field.
func (_u *CandidateUpdateOne) SetLocationCountry(v string) *CandidateUpdateOne {
	_u.mutation.SetLocationCountry(v)
	return _u
}

// SetNillableLocationCountry sets the "location_country" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableLocationCountry(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetLocationCountry(*v)
	}
	return _u
}

// ClearLocationCountry clears the value of the "location_country" field.
func (_u *CandidateUpdateOne) ClearLocationCountry() *CandidateUpdateOne {
	_u.mutation.ClearLocationCountry()
	return _u
}

// SetOnsiteMode sets the "onsite_mode" field.
func (_u *CandidateUpdateOne) SetOnsiteMode(v candidate.OnsiteMode) *CandidateUpdateOne {
	_u.mutation.SetOnsiteMode(v)
	return _u
}

// SetNillableOnsiteMode sets the "onsite_mode" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableOnsiteMode(v *candidate.OnsiteMode) *CandidateUpdateOne {
	if v != nil {
		_u.SetOnsiteMode(*v)
	}
	return _u
}

// ClearOnsiteMode clears the value of the "onsite_mode" field.
func (_u *CandidateUpdateOne) ClearOnsiteMode() *CandidateUpdateOne {
	_u.mutation.ClearOnsiteMode()
	return _u
}

// SetAvailabilityFrom sets the "availability_from" field.
func (_u *CandidateUpdateOne) SetAvailabilityFrom(v time.Time) *CandidateUpdateOne {
	_u.mutation.SetAvailabilityFrom(v)
	return _u
}

// SetNillableAvailabilityFrom sets the "availability_from" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableAvailabilityFrom(v *time.Time) *CandidateUpdateOne {
	if v != nil {
		_u.SetAvailabilityFrom(*v)
	}
	return _u
}

// ClearAvailabilityFrom clears the value of the "availability_from" field.
func (_u *CandidateUpdateOne) ClearAvailabilityFrom() *CandidateUpdateOne {
	_u.mutation.ClearAvailabilityFrom()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CandidateUpdateOne) SetNotes(v string) *CandidateUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableNotes(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CandidateUpdateOne) ClearNotes() *CandidateUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetProfileURL sets the "profile_url" field.
func (_u *CandidateUpdateOne) SetProfileURL(v string) *CandidateUpdateOne {
	_u.mutation.SetProfileURL(v)
	return _u
}

// SetNillableProfileURL sets the "profile_url" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableProfileURL(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetProfileURL(*v)
	}
	return _u
}

// ClearProfileURL clears the value of the "profile_url" field.
func (_u *CandidateUpdateOne) ClearProfileURL() *CandidateUpdateOne {
	_u.mutation.ClearProfileURL()
	return _u
}

// SetActive sets the "active" field.
func (_u *CandidateUpdateOne) SetActive(v bool) *CandidateUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableActive(v *bool) *CandidateUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CandidateUpdateOne) SetCreatedAt(v time.Time) *CandidateUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableCreatedAt(v *time.Time) *CandidateUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CandidateUpdateOne) SetUpdatedAt(v time.Time) *CandidateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *CandidateUpdateOne) AddMatchIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *CandidateUpdateOne) AddMatches(v ...*Match) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdateOne) Mutation() *CandidateMutation {
	return _u.mutation
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *CandidateUpdateOne) ClearMatches() *CandidateUpdateOne {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *CandidateUpdateOne) RemoveMatchIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *CandidateUpdateOne) RemoveMatches(v ...*Match) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdateOne) Where(ps ...predicate.Candidate) *CandidateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CandidateUpdateOne) Select(field string, fields ...string) *CandidateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Candidate entity.
func (_u *CandidateUpdateOne) Save(ctx context.Context) (*Candidate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdateOne) SaveX(ctx context.Context) *Candidate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CandidateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CandidateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := candidate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := candidate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Candidate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OnsiteMode(); ok {
		if err := candidate.OnsiteModeValidator(v); err != nil {
			return &ValidationError{Name: "onsite_mode", err: fmt.Errorf(`ent: validator failed for field "Candidate.onsite_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *CandidateUpdateOne) sqlSave(ctx context.Context) (_node *Candidate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Candidate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, candidate.FieldID)
		for _, f := range fields {
			if !candidate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != candidate.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(candidate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(candidate.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(candidate.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Seniority(); ok {
		_spec.SetField(candidate.FieldSeniority, field.TypeString, value)
	}
	if _u.mutation.SeniorityCleared() {
		_spec.ClearField(candidate.FieldSeniority, field.TypeString)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(candidate.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(candidate.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Languages(); ok {
		_spec.SetField(candidate.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldLanguages, value)
		})
	}
	if _u.mutation.LanguagesCleared() {
		_spec.ClearField(candidate.FieldLanguages, field.TypeJSON)
	}
	if value, ok := _u.mutation.LocationCity(); ok {
		_spec.SetField(candidate.FieldLocationCity, field.TypeString, value)
	}
	if _u.mutation.LocationCityCleared() {
		_spec.ClearField(candidate.FieldLocationCity, field.TypeString)
	}
	if value, ok := _u.mutation.LocationCountry(); ok {
		_spec.SetField(candidate.FieldLocationCountry, field.TypeString, value)
	}
	if _u.mutation.LocationCountryCleared() {
		_spec.ClearField(candidate.FieldLocationCountry, field.TypeString)
	}
	if value, ok := _u.mutation.OnsiteMode(); ok {
		_spec.SetField(candidate.FieldOnsiteMode, field.TypeEnum, value)
	}
	if _u.mutation.OnsiteModeCleared() {
		_spec.ClearField(candidate.FieldOnsiteMode, field.TypeEnum)
	}
	if value, ok := _u.mutation.AvailabilityFrom(); ok {
		_spec.SetField(candidate.FieldAvailabilityFrom, field.TypeTime, value)
	}
	if _u.mutation.AvailabilityFromCleared() {
		_spec.ClearField(candidate.FieldAvailabilityFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(candidate.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(candidate.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ProfileURL(); ok {
		_spec.SetField(candidate.FieldProfileURL, field.TypeString, value)
	}
	if _u.mutation.ProfileURLCleared() {
		_spec.ClearField(candidate.FieldProfileURL, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(candidate.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(candidate.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchesIDs(); len(nodes) > 0 && !_u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Candidate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
