// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nordstaff/consultant-matcher/gen/ent/candidate"
	"github.com/nordstaff/consultant-matcher/gen/ent/job"
	"github.com/nordstaff/consultant-matcher/gen/ent/match"
	"github.com/nordstaff/consultant-matcher/gen/ent/predicate"
	"github.com/nordstaff/consultant-matcher/internal/entity"
)

// MatchUpdate is the builder for updating Match entities.
type MatchUpdate struct {
	config
	hooks    []Hook
	mutation *MatchMutation
}

// Where appends a list predicates to the MatchUpdate builder.
func (_u *MatchUpdate) Where(ps ...predicate.Match) *MatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *MatchUpdate) SetJobID(v uuid.UUID) *MatchUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableJobID(v *uuid.UUID) *MatchUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *MatchUpdate) SetCandidateID(v uuid.UUID) *MatchUpdate {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableCandidateID(v *uuid.UUID) *MatchUpdate {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MatchUpdate) SetScore(v float64) *MatchUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableScore(v *float64) *MatchUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MatchUpdate) AddScore(v float64) *MatchUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *MatchUpdate) SetReasoning(v entity.Breakdown) *MatchUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableReasoning(v *entity.Breakdown) *MatchUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MatchUpdate) SetCreatedAt(v time.Time) *MatchUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *MatchUpdate) SetJob(v *Job) *MatchUpdate {
	return _u.SetJobID(v.ID)
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *MatchUpdate) SetCandidate(v *Candidate) *MatchUpdate {
	return _u.SetCandidateID(v.ID)
}

// Mutation returns the MatchMutation object of the builder.
func (_u *MatchUpdate) Mutation() *MatchMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *MatchUpdate) ClearJob() *MatchUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *MatchUpdate) ClearCandidate() *MatchUpdate {
	_u.mutation.ClearCandidate()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatchUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MatchUpdate) defaults() {
	if _, ok := _u.mutation.CreatedAt(); !ok {
		v := match.UpdateDefaultCreatedAt()
		_u.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.job"`)
	}
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.candidate"`)
	}
	return nil
}

func (_u *MatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(match.Table, match.Columns, sqlgraph.NewFieldSpec(match.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(match.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(match.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(match.FieldReasoning, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(match.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   match.JobTable,
			Columns: []string{match.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   match.JobTable,
			Columns: []string{match.JobColumn},
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
	if _u.mutation.CandidateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   match.CandidateTable,
			Columns: []string{match.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CandidateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   match.CandidateTable,
			Columns: []string{match.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{match.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatchUpdateOne is the builder for updating a single Match entity.
type MatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatchMutation
}

// SetJobID sets the "job_id" field.
func (_u *MatchUpdateOne) SetJobID(v uuid.UUID) *MatchUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableJobID(v *uuid.UUID) *MatchUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *MatchUpdateOne) SetCandidateID(v uuid.UUID) *MatchUpdateOne {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableCandidateID(v *uuid.UUID) *MatchUpdateOne {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MatchUpdateOne) SetScore(v float64) *MatchUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableScore(v *float64) *MatchUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MatchUpdateOne) AddScore(v float64) *MatchUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *MatchUpdateOne) SetReasoning(v entity.Breakdown) *MatchUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableReasoning(v *entity.Breakdown) *MatchUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MatchUpdateOne) SetCreatedAt(v time.Time) *MatchUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *MatchUpdateOne) SetJob(v *Job) *MatchUpdateOne {
	return _u.SetJobID(v.ID)
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *MatchUpdateOne) SetCandidate(v *Candidate) *MatchUpdateOne {
	return _u.SetCandidateID(v.ID)
}

// Mutation returns the MatchMutation object of the builder.
func (_u *MatchUpdateOne) Mutation() *MatchMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *MatchUpdateOne) ClearJob() *MatchUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *MatchUpdateOne) ClearCandidate() *MatchUpdateOne {
	_u.mutation.ClearCandidate()
	return _u
}

// Where appends a list predicates to the MatchUpdate builder.
func (_u *MatchUpdateOne) Where(ps ...predicate.Match) *MatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatchUpdateOne) Select(field string, fields ...string) *MatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Match entity.
func (_u *MatchUpdateOne) Save(ctx context.Context) (*Match, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchUpdateOne) SaveX(ctx context.Context) *Match {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MatchUpdateOne) defaults() {
	if _, ok := _u.mutation.CreatedAt(); !ok {
		v := match.UpdateDefaultCreatedAt()
		_u.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.job"`)
	}
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.candidate"`)
	}
	return nil
}

func (_u *MatchUpdateOne) sqlSave(ctx context.Context) (_node *Match, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(match.Table, match.Columns, sqlgraph.NewFieldSpec(match.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Match.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, match.FieldID)
		for _, f := range fields {
			if !match.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != match.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(match.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(match.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(match.FieldReasoning, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(match.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   match.JobTable,
			Columns: []string{match.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   match.JobTable,
			Columns: []string{match.JobColumn},
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
	if _u.mutation.CandidateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   match.CandidateTable,
			Columns: []string{match.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CandidateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   match.CandidateTable,
			Columns: []string{match.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Match{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{match.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
