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
	"github.com/nordstaff/consultant-matcher/gen/ent/job"
	"github.com/nordstaff/consultant-matcher/gen/ent/match"
	"github.com/nordstaff/consultant-matcher/gen/ent/organization"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobUID sets the "job_uid" field.
func (_c *JobCreate) SetJobUID(v string) *JobCreate {
	_c.mutation.SetJobUID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *JobCreate) SetSource(v string) *JobCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *JobCreate) SetTitle(v string) *JobCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *JobCreate) SetDescription(v string) *JobCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *JobCreate) SetNillableDescription(v *string) *JobCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSkills sets the "skills" field.
func (_c *JobCreate) SetSkills(v []string) *JobCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *JobCreate) SetRole(v string) *JobCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *JobCreate) SetNillableRole(v *string) *JobCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetSeniority sets the "seniority" field.
func (_c *JobCreate) SetSeniority(v string) *JobCreate {
	_c.mutation.SetSeniority(v)
	return _c
}

// SetNillableSeniority sets the "seniority" field if the given value is not nil.
func (_c *JobCreate) SetNillableSeniority(v *string) *JobCreate {
	if v != nil {
		_c.SetSeniority(*v)
	}
	return _c
}

// SetLanguages sets the "languages" field.
func (_c *JobCreate) SetLanguages(v []string) *JobCreate {
	_c.mutation.SetLanguages(v)
	return _c
}

// SetLocationCity sets the "location_city" field.
func (_c *JobCreate) SetLocationCity(v string) *JobCreate {
	_c.mutation.SetLocationCity(v)
	return _c
}

// SetNillableLocationCity sets the "location_city" field if the given value is not nil.
func (_c *JobCreate) SetNillableLocationCity(v *string) *JobCreate {
	if v != nil {
		_c.SetLocationCity(*v)
	}
	return _c
}

// SetLocationCountry sets the "location_country" field.
func (_c *JobCreate) SetLocationCountry(v string) *JobCreate {
	_c.mutation.SetLocationCountry(v)
	return _c
}

// SetNillableLocationCountry sets the "location_country" field if the given value is not nil.
func (_c *JobCreate) SetNillableLocationCountry(v *string) *JobCreate {
	if v != nil {
		_c.SetLocationCountry(*v)
	}
	return _c
}

// SetOnsiteMode sets the "onsite_mode" field.
func (_c *JobCreate) SetOnsiteMode(v job.OnsiteMode) *JobCreate {
	_c.mutation.SetOnsiteMode(v)
	return _c
}

// SetNillableOnsiteMode sets the "onsite_mode" field if the given value is not nil.
func (_c *JobCreate) SetNillableOnsiteMode(v *job.OnsiteMode) *JobCreate {
	if v != nil {
		_c.SetOnsiteMode(*v)
	}
	return _c
}

// SetDuration sets the "duration" field.
func (_c *JobCreate) SetDuration(v string) *JobCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_c *JobCreate) SetNillableDuration(v *string) *JobCreate {
	if v != nil {
		_c.SetDuration(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *JobCreate) SetStartDate(v time.Time) *JobCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *JobCreate) SetNillableStartDate(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *JobCreate) SetCompanyID(v uuid.UUID) *JobCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableCompanyID(v *uuid.UUID) *JobCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetBrokerID sets the "broker_id" field.
func (_c *JobCreate) SetBrokerID(v uuid.UUID) *JobCreate {
	_c.mutation.SetBrokerID(v)
	return _c
}

// SetNillableBrokerID sets the "broker_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableBrokerID(v *uuid.UUID) *JobCreate {
	if v != nil {
		_c.SetBrokerID(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *JobCreate) SetURL(v string) *JobCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetPostedAt sets the "posted_at" field.
func (_c *JobCreate) SetPostedAt(v time.Time) *JobCreate {
	_c.mutation.SetPostedAt(v)
	return _c
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_c *JobCreate) SetNillablePostedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetPostedAt(*v)
	}
	return _c
}

// SetEtag sets the "etag" field.
func (_c *JobCreate) SetEtag(v string) *JobCreate {
	_c.mutation.SetEtag(v)
	return _c
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_c *JobCreate) SetNillableEtag(v *string) *JobCreate {
	if v != nil {
		_c.SetEtag(*v)
	}
	return _c
}

// SetLastModified sets the "last_modified" field.
func (_c *JobCreate) SetLastModified(v string) *JobCreate {
	_c.mutation.SetLastModified(v)
	return _c
}

// SetNillableLastModified sets the "last_modified" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastModified(v *string) *JobCreate {
	if v != nil {
		_c.SetLastModified(*v)
	}
	return _c
}

// SetScrapedAt sets the "scraped_at" field.
func (_c *JobCreate) SetScrapedAt(v time.Time) *JobCreate {
	_c.mutation.SetScrapedAt(v)
	return _c
}

// SetNillableScrapedAt sets the "scraped_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableScrapedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetScrapedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v uuid.UUID) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobCreate) SetNillableID(v *uuid.UUID) *JobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Organization entity.
func (_c *JobCreate) SetCompany(v *Organization) *JobCreate {
	return _c.SetCompanyID(v.ID)
}

// SetBroker sets the "broker" edge to the Organization entity.
func (_c *JobCreate) SetBroker(v *Organization) *JobCreate {
	return _c.SetBrokerID(v.ID)
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_c *JobCreate) AddMatchIDs(ids ...uuid.UUID) *JobCreate {
	_c.mutation.AddMatchIDs(ids...)
	return _c
}

// AddMatches adds the "matches" edges to the Match entity.
func (_c *JobCreate) AddMatches(v ...*Match) *JobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMatchIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.ScrapedAt(); !ok {
		v := job.DefaultScrapedAt()
		_c.mutation.SetScrapedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := job.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.JobUID(); !ok {
		return &ValidationError{Name: "job_uid", err: errors.New(`ent: missing required field "Job.job_uid"`)}
	}
	if v, ok := _c.mutation.JobUID(); ok {
		if err := job.JobUIDValidator(v); err != nil {
			return &ValidationError{Name: "job_uid", err: fmt.Errorf(`ent: validator failed for field "Job.job_uid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Job.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := job.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Job.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Job.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := job.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Job.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.OnsiteMode(); ok {
		if err := job.OnsiteModeValidator(v); err != nil {
			return &ValidationError{Name: "onsite_mode", err: fmt.Errorf(`ent: validator failed for field "Job.onsite_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Job.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := job.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Job.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScrapedAt(); !ok {
		return &ValidationError{Name: "scraped_at", err: errors.New(`ent: missing required field "Job.scraped_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
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

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobUID(); ok {
		_spec.SetField(job.FieldJobUID, field.TypeString, value)
		_node.JobUID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(job.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(job.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(job.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(job.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Seniority(); ok {
		_spec.SetField(job.FieldSeniority, field.TypeString, value)
		_node.Seniority = value
	}
	if value, ok := _c.mutation.Languages(); ok {
		_spec.SetField(job.FieldLanguages, field.TypeJSON, value)
		_node.Languages = value
	}
	if value, ok := _c.mutation.LocationCity(); ok {
		_spec.SetField(job.FieldLocationCity, field.TypeString, value)
		_node.LocationCity = value
	}
	if value, ok := _c.mutation.LocationCountry(); ok {
		_spec.SetField(job.FieldLocationCountry, field.TypeString, value)
		_node.LocationCountry = value
	}
	if value, ok := _c.mutation.OnsiteMode(); ok {
		_spec.SetField(job.FieldOnsiteMode, field.TypeEnum, value)
		_node.OnsiteMode = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(job.FieldDuration, field.TypeString, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(job.FieldStartDate, field.TypeTime, value)
		_node.StartDate = &value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(job.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.PostedAt(); ok {
		_spec.SetField(job.FieldPostedAt, field.TypeTime, value)
		_node.PostedAt = &value
	}
	if value, ok := _c.mutation.Etag(); ok {
		_spec.SetField(job.FieldEtag, field.TypeString, value)
		_node.Etag = value
	}
	if value, ok := _c.mutation.LastModified(); ok {
		_spec.SetField(job.FieldLastModified, field.TypeString, value)
		_node.LastModified = value
	}
	if value, ok := _c.mutation.ScrapedAt(); ok {
		_spec.SetField(job.FieldScrapedAt, field.TypeTime, value)
		_node.ScrapedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_node.CompanyID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BrokerIDs(); len(nodes) > 0 {
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
		_node.BrokerID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.Create().
//		SetJobUID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetJobUID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreate) OnConflict(opts ...sql.ConflictOption) *JobUpsertOne {
	_c.conflict = opts
	return &JobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreate) OnConflictColumns(columns ...string) *JobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertOne{
		create: _c,
	}
}

type (
	// JobUpsertOne is the builder for "upsert"-ing
	//  one Job node.
	JobUpsertOne struct {
		create *JobCreate
	}

	// JobUpsert is the "OnConflict" setter.
	JobUpsert struct {
		*sql.UpdateSet
	}
)

// SetJobUID sets the "job_uid" field.
func (u *JobUpsert) SetJobUID(v string) *JobUpsert {
	u.Set(job.FieldJobUID, v)
	return u
}

// UpdateJobUID sets the "job_uid" field to the value that was provided on create.
func (u *JobUpsert) UpdateJobUID() *JobUpsert {
	u.SetExcluded(job.FieldJobUID)
	return u
}

// SetSource sets the "source" field.
func (u *JobUpsert) SetSource(v string) *JobUpsert {
	u.Set(job.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *JobUpsert) UpdateSource() *JobUpsert {
	u.SetExcluded(job.FieldSource)
	return u
}

// SetTitle sets the "title" field.
func (u *JobUpsert) SetTitle(v string) *JobUpsert {
	u.Set(job.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *JobUpsert) UpdateTitle() *JobUpsert {
	u.SetExcluded(job.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *JobUpsert) SetDescription(v string) *JobUpsert {
	u.Set(job.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *JobUpsert) UpdateDescription() *JobUpsert {
	u.SetExcluded(job.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *JobUpsert) ClearDescription() *JobUpsert {
	u.SetNull(job.FieldDescription)
	return u
}

// SetSkills sets the "skills" field.
func (u *JobUpsert) SetSkills(v []string) *JobUpsert {
	u.Set(job.FieldSkills, v)
	return u
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *JobUpsert) UpdateSkills() *JobUpsert {
	u.SetExcluded(job.FieldSkills)
	return u
}

// ClearSkills clears the value of the "skills" field.
func (u *JobUpsert) ClearSkills() *JobUpsert {
	u.SetNull(job.FieldSkills)
	return u
}

// SetRole sets the "role" field.
func (u *JobUpsert) SetRole(v string) *JobUpsert {
	u.Set(job.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *JobUpsert) UpdateRole() *JobUpsert {
	u.SetExcluded(job.FieldRole)
	return u
}

// ClearRole clears the value of the "role" field.
func (u *JobUpsert) ClearRole() *JobUpsert {
	u.SetNull(job.FieldRole)
	return u
}

// SetSeniority sets the "seniority" field.
func (u *JobUpsert) SetSeniority(v string) *JobUpsert {
	u.Set(job.FieldSeniority, v)
	return u
}

// UpdateSeniority sets the "seniority" field to the value that was provided on create.
func (u *JobUpsert) UpdateSeniority() *JobUpsert {
	u.SetExcluded(job.FieldSeniority)
	return u
}

// ClearSeniority clears the value of the "seniority" field.
func (u *JobUpsert) ClearSeniority() *JobUpsert {
	u.SetNull(job.FieldSeniority)
	return u
}

// SetLanguages sets the "languages" field.
func (u *JobUpsert) SetLanguages(v []string) *JobUpsert {
	u.Set(job.FieldLanguages, v)
	return u
}

// UpdateLanguages sets the "languages" field to the value that was provided on create.
func (u *JobUpsert) UpdateLanguages() *JobUpsert {
	u.SetExcluded(job.FieldLanguages)
	return u
}

// ClearLanguages clears the value of the "languages" field.
func (u *JobUpsert) ClearLanguages() *JobUpsert {
	u.SetNull(job.FieldLanguages)
	return u
}

// SetLocationCity sets the "location_city" field.
func (u *JobUpsert) SetLocationCity(v string) *JobUpsert {
	u.Set(job.FieldLocationCity, v)
	return u
}

// UpdateLocationCity sets the "location_city" field to the value that was provided on create.
func (u *JobUpsert) UpdateLocationCity() *JobUpsert {
	u.SetExcluded(job.FieldLocationCity)
	return u
}

// ClearLocationCity clears the value of the "location_city" field.
func (u *JobUpsert) ClearLocationCity() *JobUpsert {
	u.SetNull(job.FieldLocationCity)
	return u
}

// SetLocationCountry sets the "location_country" field.
func (u *JobUpsert) SetLocationCountry(v string) *JobUpsert {
	u.Set(job.FieldLocationCountry, v)
	return u
}

// UpdateLocationCountry sets the "location_country" field to the value that was provided on create.
func (u *JobUpsert) UpdateLocationCountry() *JobUpsert {
	u.SetExcluded(job.FieldLocationCountry)
	return u
}

// ClearLocationCountry clears the value of the "location_country" field.
func (u *JobUpsert) ClearLocationCountry() *JobUpsert {
	u.SetNull(job.FieldLocationCountry)
	return u
}

// SetOnsiteMode sets the "onsite_mode" field.
func (u *JobUpsert) SetOnsiteMode(v job.OnsiteMode) *JobUpsert {
	u.Set(job.FieldOnsiteMode, v)
	return u
}

// UpdateOnsiteMode sets the "onsite_mode" field to the value that was provided on create.
func (u *JobUpsert) UpdateOnsiteMode() *JobUpsert {
	u.SetExcluded(job.FieldOnsiteMode)
	return u
}

// ClearOnsiteMode clears the value of the "onsite_mode" field.
func (u *JobUpsert) ClearOnsiteMode() *JobUpsert {
	u.SetNull(job.FieldOnsiteMode)
	return u
}

// SetDuration sets the "duration" field.
func (u *JobUpsert) SetDuration(v string) *JobUpsert {
	u.Set(job.FieldDuration, v)
	return u
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *JobUpsert) UpdateDuration() *JobUpsert {
	u.SetExcluded(job.FieldDuration)
	return u
}

// ClearDuration clears the value of the "duration" field.
func (u *JobUpsert) ClearDuration() *JobUpsert {
	u.SetNull(job.FieldDuration)
	return u
}

// SetStartDate sets the "start_date" field.
func (u *JobUpsert) SetStartDate(v time.Time) *JobUpsert {
	u.Set(job.FieldStartDate, v)
	return u
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *JobUpsert) UpdateStartDate() *JobUpsert {
	u.SetExcluded(job.FieldStartDate)
	return u
}

// ClearStartDate clears the value of the "start_date" field.
func (u *JobUpsert) ClearStartDate() *JobUpsert {
	u.SetNull(job.FieldStartDate)
	return u
}

// SetCompanyID sets the "company_id" field.
func (u *JobUpsert) SetCompanyID(v uuid.UUID) *JobUpsert {
	u.Set(job.FieldCompanyID, v)
	return u
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *JobUpsert) UpdateCompanyID() *JobUpsert {
	u.SetExcluded(job.FieldCompanyID)
	return u
}

// ClearCompanyID clears the value of the "company_id" field.
func (u *JobUpsert) ClearCompanyID() *JobUpsert {
	u.SetNull(job.FieldCompanyID)
	return u
}

// SetBrokerID sets the "broker_id" field.
func (u *JobUpsert) SetBrokerID(v uuid.UUID) *JobUpsert {
	u.Set(job.FieldBrokerID, v)
	return u
}

// UpdateBrokerID sets the "broker_id" field to the value that was provided on create.
func (u *JobUpsert) UpdateBrokerID() *JobUpsert {
	u.SetExcluded(job.FieldBrokerID)
	return u
}

// ClearBrokerID clears the value of the "broker_id" field.
func (u *JobUpsert) ClearBrokerID() *JobUpsert {
	u.SetNull(job.FieldBrokerID)
	return u
}

// SetURL sets the "url" field.
func (u *JobUpsert) SetURL(v string) *JobUpsert {
	u.Set(job.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *JobUpsert) UpdateURL() *JobUpsert {
	u.SetExcluded(job.FieldURL)
	return u
}

// SetPostedAt sets the "posted_at" field.
func (u *JobUpsert) SetPostedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldPostedAt, v)
	return u
}

// UpdatePostedAt sets the "posted_at" field to the value that was provided on create.
func (u *JobUpsert) UpdatePostedAt() *JobUpsert {
	u.SetExcluded(job.FieldPostedAt)
	return u
}

// ClearPostedAt clears the value of the "posted_at" field.
func (u *JobUpsert) ClearPostedAt() *JobUpsert {
	u.SetNull(job.FieldPostedAt)
	return u
}

// SetEtag sets the "etag" field.
func (u *JobUpsert) SetEtag(v string) *JobUpsert {
	u.Set(job.FieldEtag, v)
	return u
}

// UpdateEtag sets the "etag" field to the value that was provided on create.
func (u *JobUpsert) UpdateEtag() *JobUpsert {
	u.SetExcluded(job.FieldEtag)
	return u
}

// ClearEtag clears the value of the "etag" field.
func (u *JobUpsert) ClearEtag() *JobUpsert {
	u.SetNull(job.FieldEtag)
	return u
}

// SetLastModified sets the "last_modified" field.
func (u *JobUpsert) SetLastModified(v string) *JobUpsert {
	u.Set(job.FieldLastModified, v)
	return u
}

// UpdateLastModified sets the "last_modified" field to the value that was provided on create.
func (u *JobUpsert) UpdateLastModified() *JobUpsert {
	u.SetExcluded(job.FieldLastModified)
	return u
}

// ClearLastModified clears the value of the "last_modified" field.
func (u *JobUpsert) ClearLastModified() *JobUpsert {
	u.SetNull(job.FieldLastModified)
	return u
}

// SetScrapedAt sets the "scraped_at" field.
func (u *JobUpsert) SetScrapedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldScrapedAt, v)
	return u
}

// UpdateScrapedAt sets the "scraped_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateScrapedAt() *JobUpsert {
	u.SetExcluded(job.FieldScrapedAt)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *JobUpsert) SetCreatedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateCreatedAt() *JobUpsert {
	u.SetExcluded(job.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsert) SetUpdatedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateUpdatedAt() *JobUpsert {
	u.SetExcluded(job.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertOne) UpdateNewValues() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(job.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JobUpsertOne) Ignore() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertOne) DoNothing() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreate.OnConflict
// documentation for more info.
func (u *JobUpsertOne) Update(set func(*JobUpsert)) *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetJobUID sets the "job_uid" field.
func (u *JobUpsertOne) SetJobUID(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetJobUID(v)
	})
}

// UpdateJobUID sets the "job_uid" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateJobUID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateJobUID()
	})
}

// SetSource sets the "source" field.
func (u *JobUpsertOne) SetSource(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateSource() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSource()
	})
}

// SetTitle sets the "title" field.
func (u *JobUpsertOne) SetTitle(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateTitle() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *JobUpsertOne) SetDescription(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateDescription() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *JobUpsertOne) ClearDescription() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearDescription()
	})
}

// SetSkills sets the "skills" field.
func (u *JobUpsertOne) SetSkills(v []string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetSkills(v)
	})
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateSkills() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSkills()
	})
}

// ClearSkills clears the value of the "skills" field.
func (u *JobUpsertOne) ClearSkills() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearSkills()
	})
}

// SetRole sets the "role" field.
func (u *JobUpsertOne) SetRole(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateRole() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRole()
	})
}

// ClearRole clears the value of the "role" field.
func (u *JobUpsertOne) ClearRole() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearRole()
	})
}

// SetSeniority sets the "seniority" field.
func (u *JobUpsertOne) SetSeniority(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetSeniority(v)
	})
}

// UpdateSeniority sets the "seniority" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateSeniority() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSeniority()
	})
}

// ClearSeniority clears the value of the "seniority" field.
func (u *JobUpsertOne) ClearSeniority() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearSeniority()
	})
}

// SetLanguages sets the "languages" field.
func (u *JobUpsertOne) SetLanguages(v []string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLanguages(v)
	})
}

// UpdateLanguages sets the "languages" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLanguages() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLanguages()
	})
}

// ClearLanguages clears the value of the "languages" field.
func (u *JobUpsertOne) ClearLanguages() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLanguages()
	})
}

// SetLocationCity sets the "location_city" field.
func (u *JobUpsertOne) SetLocationCity(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLocationCity(v)
	})
}

// UpdateLocationCity sets the "location_city" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLocationCity() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLocationCity()
	})
}

// ClearLocationCity clears the value of the "location_city" field.
func (u *JobUpsertOne) ClearLocationCity() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLocationCity()
	})
}

// SetLocationCountry sets the "location_country" field.
func (u *JobUpsertOne) SetLocationCountry(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLocationCountry(v)
	})
}

// UpdateLocationCountry sets the "location_country" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLocationCountry() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLocationCountry()
	})
}

// ClearLocationCountry clears the value of the "location_country" field.
func (u *JobUpsertOne) ClearLocationCountry() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLocationCountry()
	})
}

// SetOnsiteMode sets the "onsite_mode" field.
func (u *JobUpsertOne) SetOnsiteMode(v job.OnsiteMode) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetOnsiteMode(v)
	})
}

// UpdateOnsiteMode sets the "onsite_mode" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateOnsiteMode() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateOnsiteMode()
	})
}

// ClearOnsiteMode clears the value of the "onsite_mode" field.
func (u *JobUpsertOne) ClearOnsiteMode() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearOnsiteMode()
	})
}

// SetDuration sets the "duration" field.
func (u *JobUpsertOne) SetDuration(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateDuration() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDuration()
	})
}

// ClearDuration clears the value of the "duration" field.
func (u *JobUpsertOne) ClearDuration() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearDuration()
	})
}

// SetStartDate sets the "start_date" field.
func (u *JobUpsertOne) SetStartDate(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateStartDate() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStartDate()
	})
}

// ClearStartDate clears the value of the "start_date" field.
func (u *JobUpsertOne) ClearStartDate() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearStartDate()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *JobUpsertOne) SetCompanyID(v uuid.UUID) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateCompanyID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCompanyID()
	})
}

// ClearCompanyID clears the value of the "company_id" field.
func (u *JobUpsertOne) ClearCompanyID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearCompanyID()
	})
}

// SetBrokerID sets the "broker_id" field.
func (u *JobUpsertOne) SetBrokerID(v uuid.UUID) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetBrokerID(v)
	})
}

// UpdateBrokerID sets the "broker_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateBrokerID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateBrokerID()
	})
}

// ClearBrokerID clears the value of the "broker_id" field.
func (u *JobUpsertOne) ClearBrokerID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearBrokerID()
	})
}

// SetURL sets the "url" field.
func (u *JobUpsertOne) SetURL(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateURL() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateURL()
	})
}

// SetPostedAt sets the "posted_at" field.
func (u *JobUpsertOne) SetPostedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetPostedAt(v)
	})
}

// UpdatePostedAt sets the "posted_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdatePostedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePostedAt()
	})
}

// ClearPostedAt clears the value of the "posted_at" field.
func (u *JobUpsertOne) ClearPostedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearPostedAt()
	})
}

// SetEtag sets the "etag" field.
func (u *JobUpsertOne) SetEtag(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetEtag(v)
	})
}

// UpdateEtag sets the "etag" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateEtag() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateEtag()
	})
}

// ClearEtag clears the value of the "etag" field.
func (u *JobUpsertOne) ClearEtag() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearEtag()
	})
}

// SetLastModified sets the "last_modified" field.
func (u *JobUpsertOne) SetLastModified(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLastModified(v)
	})
}

// UpdateLastModified sets the "last_modified" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLastModified() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastModified()
	})
}

// ClearLastModified clears the value of the "last_modified" field.
func (u *JobUpsertOne) ClearLastModified() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastModified()
	})
}

// SetScrapedAt sets the "scraped_at" field.
func (u *JobUpsertOne) SetScrapedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetScrapedAt(v)
	})
}

// UpdateScrapedAt sets the "scraped_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateScrapedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateScrapedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *JobUpsertOne) SetCreatedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateCreatedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsertOne) SetUpdatedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateUpdatedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JobUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: JobUpsertOne.ID is not supported by MySQL driver. Use JobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JobUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
	conflict []sql.ConflictOption
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetJobUID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflict(opts ...sql.ConflictOption) *JobUpsertBulk {
	_c.conflict = opts
	return &JobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflictColumns(columns ...string) *JobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertBulk{
		create: _c,
	}
}

// JobUpsertBulk is the builder for "upsert"-ing
// a bulk of Job nodes.
type JobUpsertBulk struct {
	create *JobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertBulk) UpdateNewValues() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(job.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JobUpsertBulk) Ignore() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertBulk) DoNothing() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreateBulk.OnConflict
// documentation for more info.
func (u *JobUpsertBulk) Update(set func(*JobUpsert)) *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetJobUID sets the "job_uid" field.
func (u *JobUpsertBulk) SetJobUID(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetJobUID(v)
	})
}

// UpdateJobUID sets the "job_uid" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateJobUID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateJobUID()
	})
}

// SetSource sets the "source" field.
func (u *JobUpsertBulk) SetSource(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateSource() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSource()
	})
}

// SetTitle sets the "title" field.
func (u *JobUpsertBulk) SetTitle(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateTitle() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *JobUpsertBulk) SetDescription(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateDescription() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *JobUpsertBulk) ClearDescription() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearDescription()
	})
}

// SetSkills sets the "skills" field.
func (u *JobUpsertBulk) SetSkills(v []string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetSkills(v)
	})
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateSkills() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSkills()
	})
}

// ClearSkills clears the value of the "skills" field.
func (u *JobUpsertBulk) ClearSkills() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearSkills()
	})
}

// SetRole sets the "role" field.
func (u *JobUpsertBulk) SetRole(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateRole() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRole()
	})
}

// ClearRole clears the value of the "role" field.
func (u *JobUpsertBulk) ClearRole() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearRole()
	})
}

// SetSeniority sets the "seniority" field.
func (u *JobUpsertBulk) SetSeniority(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetSeniority(v)
	})
}

// UpdateSeniority sets the "seniority" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateSeniority() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSeniority()
	})
}

// ClearSeniority clears the value of the "seniority" field.
func (u *JobUpsertBulk) ClearSeniority() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearSeniority()
	})
}

// SetLanguages sets the "languages" field.
func (u *JobUpsertBulk) SetLanguages(v []string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLanguages(v)
	})
}

// UpdateLanguages sets the "languages" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLanguages() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLanguages()
	})
}

// ClearLanguages clears the value of the "languages" field.
func (u *JobUpsertBulk) ClearLanguages() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLanguages()
	})
}

// SetLocationCity sets the "location_city" field.
func (u *JobUpsertBulk) SetLocationCity(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLocationCity(v)
	})
}

// UpdateLocationCity sets the "location_city" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLocationCity() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLocationCity()
	})
}

// ClearLocationCity clears the value of the "location_city" field.
func (u *JobUpsertBulk) ClearLocationCity() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLocationCity()
	})
}

// SetLocationCountry sets the "location_country" field.
func (u *JobUpsertBulk) SetLocationCountry(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLocationCountry(v)
	})
}

// UpdateLocationCountry sets the "location_country" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLocationCountry() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLocationCountry()
	})
}

// ClearLocationCountry clears the value of the "location_country" field.
func (u *JobUpsertBulk) ClearLocationCountry() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLocationCountry()
	})
}

// SetOnsiteMode sets the "onsite_mode" field.
func (u *JobUpsertBulk) SetOnsiteMode(v job.OnsiteMode) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetOnsiteMode(v)
	})
}

// UpdateOnsiteMode sets the "onsite_mode" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateOnsiteMode() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateOnsiteMode()
	})
}

// ClearOnsiteMode clears the value of the "onsite_mode" field.
func (u *JobUpsertBulk) ClearOnsiteMode() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearOnsiteMode()
	})
}

// SetDuration sets the "duration" field.
func (u *JobUpsertBulk) SetDuration(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateDuration() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDuration()
	})
}

// ClearDuration clears the value of the "duration" field.
func (u *JobUpsertBulk) ClearDuration() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearDuration()
	})
}

// SetStartDate sets the "start_date" field.
func (u *JobUpsertBulk) SetStartDate(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateStartDate() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStartDate()
	})
}

// ClearStartDate clears the value of the "start_date" field.
func (u *JobUpsertBulk) ClearStartDate() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearStartDate()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *JobUpsertBulk) SetCompanyID(v uuid.UUID) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateCompanyID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCompanyID()
	})
}

// ClearCompanyID clears the value of the "company_id" field.
func (u *JobUpsertBulk) ClearCompanyID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearCompanyID()
	})
}

// SetBrokerID sets the "broker_id" field.
func (u *JobUpsertBulk) SetBrokerID(v uuid.UUID) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetBrokerID(v)
	})
}

// UpdateBrokerID sets the "broker_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateBrokerID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateBrokerID()
	})
}

// ClearBrokerID clears the value of the "broker_id" field.
func (u *JobUpsertBulk) ClearBrokerID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearBrokerID()
	})
}

// SetURL sets the "url" field.
func (u *JobUpsertBulk) SetURL(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateURL() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateURL()
	})
}

// SetPostedAt sets the "posted_at" field.
func (u *JobUpsertBulk) SetPostedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetPostedAt(v)
	})
}

// UpdatePostedAt sets the "posted_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdatePostedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePostedAt()
	})
}

// ClearPostedAt clears the value of the "posted_at" field.
func (u *JobUpsertBulk) ClearPostedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearPostedAt()
	})
}

// SetEtag sets the "etag" field.
func (u *JobUpsertBulk) SetEtag(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetEtag(v)
	})
}

// UpdateEtag sets the "etag" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateEtag() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateEtag()
	})
}

// ClearEtag clears the value of the "etag" field.
func (u *JobUpsertBulk) ClearEtag() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearEtag()
	})
}

// SetLastModified sets the "last_modified" field.
func (u *JobUpsertBulk) SetLastModified(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLastModified(v)
	})
}

// UpdateLastModified sets the "last_modified" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLastModified() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastModified()
	})
}

// ClearLastModified clears the value of the "last_modified" field.
func (u *JobUpsertBulk) ClearLastModified() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastModified()
	})
}

// SetScrapedAt sets the "scraped_at" field.
func (u *JobUpsertBulk) SetScrapedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetScrapedAt(v)
	})
}

// UpdateScrapedAt sets the "scraped_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateScrapedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateScrapedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *JobUpsertBulk) SetCreatedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateCreatedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsertBulk) SetUpdatedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateUpdatedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
