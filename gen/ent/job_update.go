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
	"github.com/nordstaff/consultant-matcher/gen/ent/job"
	"github.com/nordstaff/consultant-matcher/gen/ent/match"
	"github.com/nordstaff/consultant-matcher/gen/ent/organization"
	"github.com/nordstaff/consultant-matcher/gen/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobUID sets the "job_uid" field.
func (_u *JobUpdate) SetJobUID(v string) *JobUpdate {
	_u.mutation.SetJobUID(v)
	return _u
}

// SetNillableJobUID sets the "job_uid" field if the given value is not nil.
func (_u *JobUpdate) SetNillableJobUID(v *string) *JobUpdate {
	if v != nil {
		_u.SetJobUID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *JobUpdate) SetSource(v string) *JobUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSource(v *string) *JobUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *JobUpdate) SetTitle(v string) *JobUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTitle(v *string) *JobUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *JobUpdate) SetDescription(v string) *JobUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDescription(v *string) *JobUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *JobUpdate) ClearDescription() *JobUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *JobUpdate) SetSkills(v []string) *JobUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *JobUpdate) AppendSkills(v []string) *JobUpdate {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *JobUpdate) ClearSkills() *JobUpdate {
	_u.mutation.ClearSkills()
	return _u
}

// SetRole sets the "role" field.
func (_u *JobUpdate) SetRole(v string) *JobUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRole(v *string) *JobUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *JobUpdate) ClearRole() *JobUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetSeniority sets the "seniority" field.
func (_u *JobUpdate) SetSeniority(v string) *JobUpdate {
	_u.mutation.SetSeniority(v)
	return _u
}

// SetNillableSeniority sets the "seniority" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSeniority(v *string) *JobUpdate {
	if v != nil {
		_u.SetSeniority(*v)
	}
	return _u
}

// ClearSeniority clears the value of the "seniority" field.
func (_u *JobUpdate) ClearSeniority() *JobUpdate {
	_u.mutation.ClearSeniority()
	return _u
}

// SetLanguages sets the "languages" field.
func (_u *JobUpdate) SetLanguages(v []string) *JobUpdate {
	_u.mutation.SetLanguages(v)
	return _u
}

// AppendLanguages appends value to the "languages" field.
func (_u *JobUpdate) AppendLanguages(v []string) *JobUpdate {
	_u.mutation.AppendLanguages(v)
	return _u
}

// ClearLanguages clears the value of the "languages" field.
func (_u *JobUpdate) ClearLanguages() *JobUpdate {
	_u.mutation.ClearLanguages()
	return _u
}

// SetLocationCity sets the "location_city" field.
func (_u *JobUpdate) SetLocationCity(v string) *JobUpdate {
	_u.mutation.SetLocationCity(v)
	return _u
}

// SetNillableLocationCity sets the "location_city" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLocationCity(v *string) *JobUpdate {
	if v != nil {
		_u.SetLocationCity(*v)
	}
	return _u
}

// ClearLocationCity clears the value of the "location_city" field.
func (_u *JobUpdate) ClearLocationCity() *JobUpdate {
	_u.mutation.ClearLocationCity()
	return _u
}

// SetLocationCountry sets the "location_country" field.
func (_u *JobUpdate) SetLocationCountry(v string) *JobUpdate {
	_u.mutation.SetLocationCountry(v)
	return _u
}

// SetNillableLocationCountry sets the "location_country" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLocationCountry(v *string) *JobUpdate {
	if v != nil {
		_u.SetLocationCountry(*v)
	}
	return _u
}

// ClearLocationCountry clears the value of the "location_country" field.
func (_u *JobUpdate) ClearLocationCountry() *JobUpdate {
	_u.mutation.ClearLocationCountry()
	return _u
}

// SetOnsiteMode sets the "onsite_mode" field.
func (_u *JobUpdate) SetOnsiteMode(v job.OnsiteMode) *JobUpdate {
	_u.mutation.SetOnsiteMode(v)
	return _u
}

// SetNillableOnsiteMode sets the "onsite_mode" field if the given value is not nil.
func (_u *JobUpdate) SetNillableOnsiteMode(v *job.OnsiteMode) *JobUpdate {
	if v != nil {
		_u.SetOnsiteMode(*v)
	}
	return _u
}

// ClearOnsiteMode clears the value of the "onsite_mode" field.
func (_u *JobUpdate) ClearOnsiteMode() *JobUpdate {
	_u.mutation.ClearOnsiteMode()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *JobUpdate) SetDuration(v string) *JobUpdate {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDuration(v *string) *JobUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *JobUpdate) ClearDuration() *JobUpdate {
	_u.mutation.ClearDuration()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *JobUpdate) SetStartDate(v time.Time) *JobUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartDate(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *JobUpdate) ClearStartDate() *JobUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *JobUpdate) SetCompanyID(v uuid.UUID) *JobUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompanyID(v *uuid.UUID) *JobUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *JobUpdate) ClearCompanyID() *JobUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetBrokerID sets the "broker_id" field.
func (_u *JobUpdate) SetBrokerID(v uuid.UUID) *JobUpdate {
	_u.mutation.SetBrokerID(v)
	return _u
}

// SetNillableBrokerID sets the "broker_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableBrokerID(v *uuid.UUID) *JobUpdate {
	if v != nil {
		_u.SetBrokerID(*v)
	}
	return _u
}

// ClearBrokerID clears the value of the "broker_id" field.
func (_u *JobUpdate) ClearBrokerID() *JobUpdate {
	_u.mutation.ClearBrokerID()
	return _u
}

// SetURL sets the "url" field.
func (_u *JobUpdate) SetURL(v string) *JobUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *JobUpdate) SetNillableURL(v *string) *JobUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetPostedAt sets the "posted_at" field.
func (_u *JobUpdate) SetPostedAt(v time.Time) *JobUpdate {
	_u.mutation.SetPostedAt(v)
	return _u
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePostedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetPostedAt(*v)
	}
	return _u
}

// ClearPostedAt clears the value of the "posted_at" field.
func (_u *JobUpdate) ClearPostedAt() *JobUpdate {
	_u.mutation.ClearPostedAt()
	return _u
}

// SetEtag sets the "etag" field.
func (_u *JobUpdate) SetEtag(v string) *JobUpdate {
	_u.mutation.SetEtag(v)
	return _u
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_u *JobUpdate) SetNillableEtag(v *string) *JobUpdate {
	if v != nil {
		_u.SetEtag(*v)
	}
	return _u
}

// ClearEtag clears the value of the "etag" field.
func (_u *JobUpdate) ClearEtag() *JobUpdate {
	_u.mutation.ClearEtag()
	return _u
}

// SetLastModified sets the "last_modified" field.
func (_u *JobUpdate) SetLastModified(v string) *JobUpdate {
	_u.mutation.SetLastModified(v)
	return _u
}

// SetNillableLastModified sets the "last_modified" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastModified(v *string) *JobUpdate {
	if v != nil {
		_u.SetLastModified(*v)
	}
	return _u
}

// ClearLastModified clears the value of the "last_modified" field.
func (_u *JobUpdate) ClearLastModified() *JobUpdate {
	_u.mutation.ClearLastModified()
	return _u
}

// SetScrapedAt sets the "scraped_at" field.
func (_u *JobUpdate) SetScrapedAt(v time.Time) *JobUpdate {
	_u.mutation.SetScrapedAt(v)
	return _u
}

// SetNillableScrapedAt sets the "scraped_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableScrapedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetScrapedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdate) SetCreatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCreatedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Organization entity.
func (_u *JobUpdate) SetCompany(v *Organization) *JobUpdate {
	return _u.SetCompanyID(v.ID)
}

// SetBroker sets the "broker" edge to the Organization entity.
func (_u *JobUpdate) SetBroker(v *Organization) *JobUpdate {
	return _u.SetBrokerID(v.ID)
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *JobUpdate) AddMatchIDs(ids ...uuid.UUID) *JobUpdate {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *JobUpdate) AddMatches(v ...*Match) *JobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Organization entity.
func (_u *JobUpdate) ClearCompany() *JobUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// ClearBroker clears the "broker" edge to the Organization entity.
func (_u *JobUpdate) ClearBroker() *JobUpdate {
	_u.mutation.ClearBroker()
	return _u
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *JobUpdate) ClearMatches() *JobUpdate {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *JobUpdate) RemoveMatchIDs(ids ...uuid.UUID) *JobUpdate {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *JobUpdate) RemoveMatches(v ...*Match) *JobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.JobUID(); ok {
		if err := job.JobUIDValidator(v); err != nil {
			return &ValidationError{Name: "job_uid", err: fmt.Errorf(`ent: validator failed for field "Job.job_uid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := job.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Job.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := job.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Job.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OnsiteMode(); ok {
		if err := job.OnsiteModeValidator(v); err != nil {
			return &ValidationError{Name: "onsite_mode", err: fmt.Errorf(`ent: validator failed for field "Job.onsite_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := job.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Job.url": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobUID(); ok {
		_spec.SetField(job.FieldJobUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(job.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(job.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(job.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(job.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(job.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(job.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(job.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Seniority(); ok {
		_spec.SetField(job.FieldSeniority, field.TypeString, value)
	}
	if _u.mutation.SeniorityCleared() {
		_spec.ClearField(job.FieldSeniority, field.TypeString)
	}
	if value, ok := _u.mutation.Languages(); ok {
		_spec.SetField(job.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldLanguages, value)
		})
	}
	if _u.mutation.LanguagesCleared() {
		_spec.ClearField(job.FieldLanguages, field.TypeJSON)
	}
	if value, ok := _u.mutation.LocationCity(); ok {
		_spec.SetField(job.FieldLocationCity, field.TypeString, value)
	}
	if _u.mutation.LocationCityCleared() {
		_spec.ClearField(job.FieldLocationCity, field.TypeString)
	}
	if value, ok := _u.mutation.LocationCountry(); ok {
		_spec.SetField(job.FieldLocationCountry, field.TypeString, value)
	}
	if _u.mutation.LocationCountryCleared() {
		_spec.ClearField(job.FieldLocationCountry, field.TypeString)
	}
	if value, ok := _u.mutation.OnsiteMode(); ok {
		_spec.SetField(job.FieldOnsiteMode, field.TypeEnum, value)
	}
	if _u.mutation.OnsiteModeCleared() {
		_spec.ClearField(job.FieldOnsiteMode, field.TypeEnum)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(job.FieldDuration, field.TypeString, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(job.FieldDuration, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(job.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(job.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(job.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.PostedAt(); ok {
		_spec.SetField(job.FieldPostedAt, field.TypeTime, value)
	}
	if _u.mutation.PostedAtCleared() {
		_spec.ClearField(job.FieldPostedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Etag(); ok {
		_spec.SetField(job.FieldEtag, field.TypeString, value)
	}
	if _u.mutation.EtagCleared() {
		_spec.ClearField(job.FieldEtag, field.TypeString)
	}
	if value, ok := _u.mutation.LastModified(); ok {
		_spec.SetField(job.FieldLastModified, field.TypeString, value)
	}
	if _u.mutation.LastModifiedCleared() {
		_spec.ClearField(job.FieldLastModified, field.TypeString)
	}
	if value, ok := _u.mutation.ScrapedAt(); ok {
		_spec.SetField(job.FieldScrapedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.CompanyTable,
			Columns: []string{job.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.CompanyTable,
			Columns: []string{job.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BrokerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.BrokerTable,
			Columns: []string{job.BrokerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BrokerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.BrokerTable,
			Columns: []string{job.BrokerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.MatchesTable,
			Columns: []string{job.MatchesColumn},
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
			Table:   job.MatchesTable,
			Columns: []string{job.MatchesColumn},
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
			Table:   job.MatchesTable,
			Columns: []string{job.MatchesColumn},
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
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetJobUID sets the "job_uid" field.
func (_u *JobUpdateOne) SetJobUID(v string) *JobUpdateOne {
	_u.mutation.SetJobUID(v)
	return _u
}

// SetNillableJobUID sets the "job_uid" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableJobUID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetJobUID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *JobUpdateOne) SetSource(v string) *JobUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSource(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *JobUpdateOne) SetTitle(v string) *JobUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTitle(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *JobUpdateOne) SetDescription(v string) *JobUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDescription(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *JobUpdateOne) ClearDescription() *JobUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *JobUpdateOne) SetSkills(v []string) *JobUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *JobUpdateOne) AppendSkills(v []string) *JobUpdateOne {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *JobUpdateOne) ClearSkills() *JobUpdateOne {
	_u.mutation.ClearSkills()
	return _u
}

// SetRole sets the "role" field.
func (_u *JobUpdateOne) SetRole(v string) *JobUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRole(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *JobUpdateOne) ClearRole() *JobUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetSeniority sets the "seniority" field.
func (_u *JobUpdateOne) SetSeniority(v string) *JobUpdateOne {
	_u.mutation.SetSeniority(v)
	return _u
}

// SetNillableSeniority sets the "seniority" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSeniority(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSeniority(*v)
	}
	return _u
}

// ClearSeniority clears the value of the "seniority" field.
func (_u *JobUpdateOne) ClearSeniority() *JobUpdateOne {
	_u.mutation.ClearSeniority()
	return _u
}

// SetLanguages sets the "languages" field.
func (_u *JobUpdateOne) SetLanguages(v []string) *JobUpdateOne {
	_u.mutation.SetLanguages(v)
	return _u
}

// AppendLanguages appends value to the "languages" field.
func (_u *JobUpdateOne) AppendLanguages(v []string) *JobUpdateOne {
	_u.mutation.AppendLanguages(v)
	return _u
}

// ClearLanguages clears the value of the "languages" field.
func (_u *JobUpdateOne) ClearLanguages() *JobUpdateOne {
	_u.mutation.ClearLanguages()
	return _u
}

// SetLocationCity sets the "location_city" field.
func (_u *JobUpdateOne) SetLocationCity(v string) *JobUpdateOne {
	_u.mutation.SetLocationCity(v)
	return _u
}

// SetNillableLocationCity sets the "location_city" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLocationCity(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLocationCity(*v)
	}
	return _u
}

// ClearLocationCity clears the value of the "location_city" field.
func (_u *JobUpdateOne) ClearLocationCity() *JobUpdateOne {
	_u.mutation.ClearLocationCity()
	return _u
}

// SetLocationCountry sets the "location_country" field.
func (_u *JobUpdateOne) SetLocationCountry(v string) *JobUpdateOne {
	_u.mutation.SetLocationCountry(v)
	return _u
}

// SetNillableLocationCountry sets the "location_country" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLocationCountry(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLocationCountry(*v)
	}
	return _u
}

// ClearLocationCountry clears the value of the "location_country" field.
func (_u *JobUpdateOne) ClearLocationCountry() *JobUpdateOne {
	_u.mutation.ClearLocationCountry()
	return _u
}

// SetOnsiteMode sets the "onsite_mode" field.
func (_u *JobUpdateOne) SetOnsiteMode(v job.OnsiteMode) *JobUpdateOne {
	_u.mutation.SetOnsiteMode(v)
	return _u
}

// SetNillableOnsiteMode sets the "onsite_mode" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableOnsiteMode(v *job.OnsiteMode) *JobUpdateOne {
	if v != nil {
		_u.SetOnsiteMode(*v)
	}
	return _u
}

// ClearOnsiteMode clears the value of the "onsite_mode" field.
func (_u *JobUpdateOne) ClearOnsiteMode() *JobUpdateOne {
	_u.mutation.ClearOnsiteMode()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *JobUpdateOne) SetDuration(v string) *JobUpdateOne {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDuration(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *JobUpdateOne) ClearDuration() *JobUpdateOne {
	_u.mutation.ClearDuration()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *JobUpdateOne) SetStartDate(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartDate(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *JobUpdateOne) ClearStartDate() *JobUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *JobUpdateOne) SetCompanyID(v uuid.UUID) *JobUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompanyID(v *uuid.UUID) *JobUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *JobUpdateOne) ClearCompanyID() *JobUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetBrokerID sets the "broker_id" field.
func (_u *JobUpdateOne) SetBrokerID(v uuid.UUID) *JobUpdateOne {
	_u.mutation.SetBrokerID(v)
	return _u
}

// SetNillableBrokerID sets the "broker_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableBrokerID(v *uuid.UUID) *JobUpdateOne {
	if v != nil {
		_u.SetBrokerID(*v)
	}
	return _u
}

// ClearBrokerID clears the value of the "broker_id" field.
func (_u *JobUpdateOne) ClearBrokerID() *JobUpdateOne {
	_u.mutation.ClearBrokerID()
	return _u
}

// SetURL sets the "url" field.
func (_u *JobUpdateOne) SetURL(v string) *JobUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableURL(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetPostedAt sets the "posted_at" field.
func (_u *JobUpdateOne) SetPostedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetPostedAt(v)
	return _u
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePostedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetPostedAt(*v)
	}
	return _u
}

// ClearPostedAt clears the value of the "posted_at" field.
func (_u *JobUpdateOne) ClearPostedAt() *JobUpdateOne {
	_u.mutation.ClearPostedAt()
	return _u
}

// SetEtag sets the "etag" field.
func (_u *JobUpdateOne) SetEtag(v string) *JobUpdateOne {
	_u.mutation.SetEtag(v)
	return _u
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableEtag(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetEtag(*v)
	}
	return _u
}

// ClearEtag clears the value of the "etag" field.
func (_u *JobUpdateOne) ClearEtag() *JobUpdateOne {
	_u.mutation.ClearEtag()
	return _u
}

// SetLastModified sets the "last_modified" field.
func (_u *JobUpdateOne) SetLastModified(v string) *JobUpdateOne {
	_u.mutation.SetLastModified(v)
	return _u
}

// SetNillableLastModified sets the "last_modified" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastModified(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLastModified(*v)
	}
	return _u
}

// ClearLastModified clears the value of the "last_modified" field.
func (_u *JobUpdateOne) ClearLastModified() *JobUpdateOne {
	_u.mutation.ClearLastModified()
	return _u
}

// SetScrapedAt sets the "scraped_at" field.
func (_u *JobUpdateOne) SetScrapedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetScrapedAt(v)
	return _u
}

// SetNillableScrapedAt sets the "scraped_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableScrapedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetScrapedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdateOne) SetCreatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCreatedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Organization entity.
func (_u *JobUpdateOne) SetCompany(v *Organization) *JobUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// SetBroker sets the "broker" edge to the Organization entity.
func (_u *JobUpdateOne) SetBroker(v *Organization) *JobUpdateOne {
	return _u.SetBrokerID(v.ID)
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *JobUpdateOne) AddMatchIDs(ids ...uuid.UUID) *JobUpdateOne {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *JobUpdateOne) AddMatches(v ...*Match) *JobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Organization entity.
func (_u *JobUpdateOne) ClearCompany() *JobUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// ClearBroker clears the "broker" edge to the Organization entity.
func (_u *JobUpdateOne) ClearBroker() *JobUpdateOne {
	_u.mutation.ClearBroker()
	return _u
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *JobUpdateOne) ClearMatches() *JobUpdateOne {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *JobUpdateOne) RemoveMatchIDs(ids ...uuid.UUID) *JobUpdateOne {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *JobUpdateOne) RemoveMatches(v ...*Match) *JobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.JobUID(); ok {
		if err := job.JobUIDValidator(v); err != nil {
			return &ValidationError{Name: "job_uid", err: fmt.Errorf(`ent: validator failed for field "Job.job_uid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := job.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Job.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := job.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Job.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OnsiteMode(); ok {
		if err := job.OnsiteModeValidator(v); err != nil {
			return &ValidationError{Name: "onsite_mode", err: fmt.Errorf(`ent: validator failed for field "Job.onsite_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := job.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Job.url": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
	if value, ok := _u.mutation.JobUID(); ok {
		_spec.SetField(job.FieldJobUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(job.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(job.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(job.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(job.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(job.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(job.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(job.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Seniority(); ok {
		_spec.SetField(job.FieldSeniority, field.TypeString, value)
	}
	if _u.mutation.SeniorityCleared() {
		_spec.ClearField(job.FieldSeniority, field.TypeString)
	}
	if value, ok := _u.mutation.Languages(); ok {
		_spec.SetField(job.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldLanguages, value)
		})
	}
	if _u.mutation.LanguagesCleared() {
		_spec.ClearField(job.FieldLanguages, field.TypeJSON)
	}
	if value, ok := _u.mutation.LocationCity(); ok {
		_spec.SetField(job.FieldLocationCity, field.TypeString, value)
	}
	if _u.mutation.LocationCityCleared() {
		_spec.ClearField(job.FieldLocationCity, field.TypeString)
	}
	if value, ok := _u.mutation.LocationCountry(); ok {
		_spec.SetField(job.FieldLocationCountry, field.TypeString, value)
	}
	if _u.mutation.LocationCountryCleared() {
		_spec.ClearField(job.FieldLocationCountry, field.TypeString)
	}
	if value, ok := _u.mutation.OnsiteMode(); ok {
		_spec.SetField(job.FieldOnsiteMode, field.TypeEnum, value)
	}
	if _u.mutation.OnsiteModeCleared() {
		_spec.ClearField(job.FieldOnsiteMode, field.TypeEnum)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(job.FieldDuration, field.TypeString, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(job.FieldDuration, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(job.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(job.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(job.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.PostedAt(); ok {
		_spec.SetField(job.FieldPostedAt, field.TypeTime, value)
	}
	if _u.mutation.PostedAtCleared() {
		_spec.ClearField(job.FieldPostedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Etag(); ok {
		_spec.SetField(job.FieldEtag, field.TypeString, value)
	}
	if _u.mutation.EtagCleared() {
		_spec.ClearField(job.FieldEtag, field.TypeString)
	}
	if value, ok := _u.mutation.LastModified(); ok {
		_spec.SetField(job.FieldLastModified, field.TypeString, value)
	}
	if _u.mutation.LastModifiedCleared() {
		_spec.ClearField(job.FieldLastModified, field.TypeString)
	}
	if value, ok := _u.mutation.ScrapedAt(); ok {
		_spec.SetField(job.FieldScrapedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.CompanyTable,
			Columns: []string{job.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.CompanyTable,
			Columns: []string{job.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BrokerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.BrokerTable,
			Columns: []string{job.BrokerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BrokerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.BrokerTable,
			Columns: []string{job.BrokerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.MatchesTable,
			Columns: []string{job.MatchesColumn},
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
			Table:   job.MatchesTable,
			Columns: []string{job.MatchesColumn},
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
			Table:   job.MatchesTable,
			Columns: []string{job.MatchesColumn},
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
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
