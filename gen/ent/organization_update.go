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
	"github.com/nordstaff/consultant-matcher/gen/ent/organization"
	"github.com/nordstaff/consultant-matcher/gen/ent/predicate"
)

// OrganizationUpdate is the builder for updating Organization entities.
type OrganizationUpdate struct {
	config
	hooks    []Hook
	mutation *OrganizationMutation
}

// Where appends a list predicates to the OrganizationUpdate builder.
func (_u *OrganizationUpdate) Where(ps ...predicate.Organization) *OrganizationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *OrganizationUpdate) SetKind(v organization.Kind) *OrganizationUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableKind(v *organization.Kind) *OrganizationUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *OrganizationUpdate) SetNormalizedName(v string) *OrganizationUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableNormalizedName(v *string) *OrganizationUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *OrganizationUpdate) SetAliases(v []string) *OrganizationUpdate {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *OrganizationUpdate) AppendAliases(v []string) *OrganizationUpdate {
	_u.mutation.AppendAliases(v)
	return _u
}

// SetPortalURL sets the "portal_url" field.
func (_u *OrganizationUpdate) SetPortalURL(v string) *OrganizationUpdate {
	_u.mutation.SetPortalURL(v)
	return _u
}

// SetNillablePortalURL sets the "portal_url" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillablePortalURL(v *string) *OrganizationUpdate {
	if v != nil {
		_u.SetPortalURL(*v)
	}
	return _u
}

// ClearPortalURL clears the value of the "portal_url" field.
func (_u *OrganizationUpdate) ClearPortalURL() *OrganizationUpdate {
	_u.mutation.ClearPortalURL()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *OrganizationUpdate) SetNeedsReview(v bool) *OrganizationUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableNeedsReview(v *bool) *OrganizationUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrganizationUpdate) SetCreatedAt(v time.Time) *OrganizationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableCreatedAt(v *time.Time) *OrganizationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrganizationUpdate) SetUpdatedAt(v time.Time) *OrganizationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCompanyJobIDs adds the "company_jobs" edge to the Job entity by IDs.
func (_u *OrganizationUpdate) AddCompanyJobIDs(ids ...uuid.UUID) *OrganizationUpdate {
	_u.mutation.AddCompanyJobIDs(ids...)
	return _u
}

// AddCompanyJobs adds the "company_jobs" edges to the Job entity.
func (_u *OrganizationUpdate) AddCompanyJobs(v ...*Job) *OrganizationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCompanyJobIDs(ids...)
}

// AddBrokerJobIDs adds the "broker_jobs" edge to the Job entity by IDs.
func (_u *OrganizationUpdate) AddBrokerJobIDs(ids ...uuid.UUID) *OrganizationUpdate {
	_u.mutation.AddBrokerJobIDs(ids...)
	return _u
}

// AddBrokerJobs adds the "broker_jobs" edges to the Job entity.
func (_u *OrganizationUpdate) AddBrokerJobs(v ...*Job) *OrganizationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBrokerJobIDs(ids...)
}

// Mutation returns the OrganizationMutation object of the builder.
func (_u *OrganizationUpdate) Mutation() *OrganizationMutation {
	return _u.mutation
}

// ClearCompanyJobs clears all "company_jobs" edges to the Job entity.
func (_u *OrganizationUpdate) ClearCompanyJobs() *OrganizationUpdate {
	_u.mutation.ClearCompanyJobs()
	return _u
}

// RemoveCompanyJobIDs removes the "company_jobs" edge to Job entities by IDs.
func (_u *OrganizationUpdate) RemoveCompanyJobIDs(ids ...uuid.UUID) *OrganizationUpdate {
	_u.mutation.RemoveCompanyJobIDs(ids...)
	return _u
}

// RemoveCompanyJobs removes "company_jobs" edges to Job entities.
func (_u *OrganizationUpdate) RemoveCompanyJobs(v ...*Job) *OrganizationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCompanyJobIDs(ids...)
}

// ClearBrokerJobs clears all "broker_jobs" edges to the Job entity.
func (_u *OrganizationUpdate) ClearBrokerJobs() *OrganizationUpdate {
	_u.mutation.ClearBrokerJobs()
	return _u
}

// RemoveBrokerJobIDs removes the "broker_jobs" edge to Job entities by IDs.
func (_u *OrganizationUpdate) RemoveBrokerJobIDs(ids ...uuid.UUID) *OrganizationUpdate {
	_u.mutation.RemoveBrokerJobIDs(ids...)
	return _u
}

// RemoveBrokerJobs removes "broker_jobs" edges to Job entities.
func (_u *OrganizationUpdate) RemoveBrokerJobs(v ...*Job) *OrganizationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBrokerJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrganizationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrganizationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrganizationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrganizationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrganizationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := organization.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrganizationUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := organization.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Organization.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := organization.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Organization.normalized_name": %w`, err)}
		}
	}
	return nil
}

func (_u *OrganizationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(organization.Table, organization.Columns, sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(organization.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(organization.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(organization.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, organization.FieldAliases, value)
		})
	}
	if value, ok := _u.mutation.PortalURL(); ok {
		_spec.SetField(organization.FieldPortalURL, field.TypeString, value)
	}
	if _u.mutation.PortalURLCleared() {
		_spec.ClearField(organization.FieldPortalURL, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(organization.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(organization.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(organization.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.CompanyJobsTable,
			Columns: []string{organization.CompanyJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCompanyJobsIDs(); len(nodes) > 0 && !_u.mutation.CompanyJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.CompanyJobsTable,
			Columns: []string{organization.CompanyJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.CompanyJobsTable,
			Columns: []string{organization.CompanyJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BrokerJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.BrokerJobsTable,
			Columns: []string{organization.BrokerJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBrokerJobsIDs(); len(nodes) > 0 && !_u.mutation.BrokerJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.BrokerJobsTable,
			Columns: []string{organization.BrokerJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BrokerJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.BrokerJobsTable,
			Columns: []string{organization.BrokerJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{organization.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrganizationUpdateOne is the builder for updating a single Organization entity.
type OrganizationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrganizationMutation
}

// SetKind sets the "kind" field.
func (_u *OrganizationUpdateOne) SetKind(v organization.Kind) *OrganizationUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableKind(v *organization.Kind) *OrganizationUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *OrganizationUpdateOne) SetNormalizedName(v string) *OrganizationUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableNormalizedName(v *string) *OrganizationUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *OrganizationUpdateOne) SetAliases(v []string) *OrganizationUpdateOne {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *OrganizationUpdateOne) AppendAliases(v []string) *OrganizationUpdateOne {
	_u.mutation.AppendAliases(v)
	return _u
}

// SetPortalURL sets the "portal_url" field.
func (_u *OrganizationUpdateOne) SetPortalURL(v string) *OrganizationUpdateOne {
	_u.mutation.SetPortalURL(v)
	return _u
}

// SetNillablePortalURL sets the "portal_url" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillablePortalURL(v *string) *OrganizationUpdateOne {
	if v != nil {
		_u.SetPortalURL(*v)
	}
	return _u
}

// ClearPortalURL clears the value of the "portal_url" field.
func (_u *OrganizationUpdateOne) ClearPortalURL() *OrganizationUpdateOne {
	_u.mutation.ClearPortalURL()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *OrganizationUpdateOne) SetNeedsReview(v bool) *OrganizationUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableNeedsReview(v *bool) *OrganizationUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrganizationUpdateOne) SetCreatedAt(v time.Time) *OrganizationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableCreatedAt(v *time.Time) *OrganizationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrganizationUpdateOne) SetUpdatedAt(v time.Time) *OrganizationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCompanyJobIDs adds the "company_jobs" edge to the Job entity by IDs.
func (_u *OrganizationUpdateOne) AddCompanyJobIDs(ids ...uuid.UUID) *OrganizationUpdateOne {
	_u.mutation.AddCompanyJobIDs(ids...)
	return _u
}

// AddCompanyJobs adds the "company_jobs" edges to the Job entity.
func (_u *OrganizationUpdateOne) AddCompanyJobs(v ...*Job) *OrganizationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCompanyJobIDs(ids...)
}

// AddBrokerJobIDs adds the "broker_jobs" edge to the Job entity by IDs.
func (_u *OrganizationUpdateOne) AddBrokerJobIDs(ids ...uuid.UUID) *OrganizationUpdateOne {
	_u.mutation.AddBrokerJobIDs(ids...)
	return _u
}

// AddBrokerJobs adds the "broker_jobs" edges to the Job entity.
func (_u *OrganizationUpdateOne) AddBrokerJobs(v ...*Job) *OrganizationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBrokerJobIDs(ids...)
}

// Mutation returns the OrganizationMutation object of the builder.
func (_u *OrganizationUpdateOne) Mutation() *OrganizationMutation {
	return _u.mutation
}

// ClearCompanyJobs clears all "company_jobs" edges to the Job entity.
func (_u *OrganizationUpdateOne) ClearCompanyJobs() *OrganizationUpdateOne {
	_u.mutation.ClearCompanyJobs()
	return _u
}

// RemoveCompanyJobIDs removes the "company_jobs" edge to Job entities by IDs.
func (_u *OrganizationUpdateOne) RemoveCompanyJobIDs(ids ...uuid.UUID) *OrganizationUpdateOne {
	_u.mutation.RemoveCompanyJobIDs(ids...)
	return _u
}

// RemoveCompanyJobs removes "company_jobs" edges to Job entities.
func (_u *OrganizationUpdateOne) RemoveCompanyJobs(v ...*Job) *OrganizationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCompanyJobIDs(ids...)
}

// ClearBrokerJobs clears all "broker_jobs" edges to the Job entity.
func (_u *OrganizationUpdateOne) ClearBrokerJobs() *OrganizationUpdateOne {
	_u.mutation.ClearBrokerJobs()
	return _u
}

// RemoveBrokerJobIDs removes the "broker_jobs" edge to Job entities by IDs.
func (_u *OrganizationUpdateOne) RemoveBrokerJobIDs(ids ...uuid.UUID) *OrganizationUpdateOne {
	_u.mutation.RemoveBrokerJobIDs(ids...)
	return _u
}

// RemoveBrokerJobs removes "broker_jobs" edges to Job entities.
func (_u *OrganizationUpdateOne) RemoveBrokerJobs(v ...*Job) *OrganizationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBrokerJobIDs(ids...)
}

// Where appends a list predicates to the OrganizationUpdate builder.
func (_u *OrganizationUpdateOne) Where(ps ...predicate.Organization) *OrganizationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrganizationUpdateOne) Select(field string, fields ...string) *OrganizationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Organization entity.
func (_u *OrganizationUpdateOne) Save(ctx context.Context) (*Organization, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrganizationUpdateOne) SaveX(ctx context.Context) *Organization {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrganizationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrganizationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrganizationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := organization.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrganizationUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := organization.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Organization.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := organization.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Organization.normalized_name": %w`, err)}
		}
	}
	return nil
}

func (_u *OrganizationUpdateOne) sqlSave(ctx context.Context) (_node *Organization, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(organization.Table, organization.Columns, sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Organization.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, organization.FieldID)
		for _, f := range fields {
			if !organization.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != organization.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(organization.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(organization.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(organization.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, organization.FieldAliases, value)
		})
	}
	if value, ok := _u.mutation.PortalURL(); ok {
		_spec.SetField(organization.FieldPortalURL, field.TypeString, value)
	}
	if _u.mutation.PortalURLCleared() {
		_spec.ClearField(organization.FieldPortalURL, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(organization.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(organization.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(organization.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.CompanyJobsTable,
			Columns: []string{organization.CompanyJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCompanyJobsIDs(); len(nodes) > 0 && !_u.mutation.CompanyJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.CompanyJobsTable,
			Columns: []string{organization.CompanyJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.CompanyJobsTable,
			Columns: []string{organization.CompanyJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BrokerJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.BrokerJobsTable,
			Columns: []string{organization.BrokerJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBrokerJobsIDs(); len(nodes) > 0 && !_u.mutation.BrokerJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.BrokerJobsTable,
			Columns: []string{organization.BrokerJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BrokerJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.BrokerJobsTable,
			Columns: []string{organization.BrokerJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Organization{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{organization.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
