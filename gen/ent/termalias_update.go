// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nordstaff/consultant-matcher/gen/ent/predicate"
	"github.com/nordstaff/consultant-matcher/gen/ent/termalias"
)

// TermAliasUpdate is the builder for updating TermAlias entities.
type TermAliasUpdate struct {
	config
	hooks    []Hook
	mutation *TermAliasMutation
}

// Where appends a list predicates to the TermAliasUpdate builder.
func (_u *TermAliasUpdate) Where(ps ...predicate.TermAlias) *TermAliasUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *TermAliasUpdate) SetKind(v termalias.Kind) *TermAliasUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TermAliasUpdate) SetNillableKind(v *termalias.Kind) *TermAliasUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCanonical sets the "canonical" field.
func (_u *TermAliasUpdate) SetCanonical(v string) *TermAliasUpdate {
	_u.mutation.SetCanonical(v)
	return _u
}

// SetNillableCanonical sets the "canonical" field if the given value is not nil.
func (_u *TermAliasUpdate) SetNillableCanonical(v *string) *TermAliasUpdate {
	if v != nil {
		_u.SetCanonical(*v)
	}
	return _u
}

// SetAlias sets the "alias" field.
func (_u *TermAliasUpdate) SetAlias(v string) *TermAliasUpdate {
	_u.mutation.SetAlias(v)
	return _u
}

// SetNillableAlias sets the "alias" field if the given value is not nil.
func (_u *TermAliasUpdate) SetNillableAlias(v *string) *TermAliasUpdate {
	if v != nil {
		_u.SetAlias(*v)
	}
	return _u
}

// Mutation returns the TermAliasMutation object of the builder.
func (_u *TermAliasUpdate) Mutation() *TermAliasMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TermAliasUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TermAliasUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TermAliasUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TermAliasUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TermAliasUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := termalias.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TermAlias.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Canonical(); ok {
		if err := termalias.CanonicalValidator(v); err != nil {
			return &ValidationError{Name: "canonical", err: fmt.Errorf(`ent: validator failed for field "TermAlias.canonical": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Alias(); ok {
		if err := termalias.AliasValidator(v); err != nil {
			return &ValidationError{Name: "alias", err: fmt.Errorf(`ent: validator failed for field "TermAlias.alias": %w`, err)}
		}
	}
	return nil
}

func (_u *TermAliasUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(termalias.Table, termalias.Columns, sqlgraph.NewFieldSpec(termalias.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(termalias.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Canonical(); ok {
		_spec.SetField(termalias.FieldCanonical, field.TypeString, value)
	}
	if value, ok := _u.mutation.Alias(); ok {
		_spec.SetField(termalias.FieldAlias, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{termalias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TermAliasUpdateOne is the builder for updating a single TermAlias entity.
type TermAliasUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TermAliasMutation
}

// SetKind sets the "kind" field.
func (_u *TermAliasUpdateOne) SetKind(v termalias.Kind) *TermAliasUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TermAliasUpdateOne) SetNillableKind(v *termalias.Kind) *TermAliasUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCanonical sets the "canonical" field.
func (_u *TermAliasUpdateOne) SetCanonical(v string) *TermAliasUpdateOne {
	_u.mutation.SetCanonical(v)
	return _u
}

// SetNillableCanonical sets the "canonical" field if the given value is not nil.
func (_u *TermAliasUpdateOne) SetNillableCanonical(v *string) *TermAliasUpdateOne {
	if v != nil {
		_u.SetCanonical(*v)
	}
	return _u
}

// SetAlias sets the "alias" field.
func (_u *TermAliasUpdateOne) SetAlias(v string) *TermAliasUpdateOne {
	_u.mutation.SetAlias(v)
	return _u
}

// SetNillableAlias sets the "alias" field if the given value is not nil.
func (_u *TermAliasUpdateOne) SetNillableAlias(v *string) *TermAliasUpdateOne {
	if v != nil {
		_u.SetAlias(*v)
	}
	return _u
}

// Mutation returns the TermAliasMutation object of the builder.
func (_u *TermAliasUpdateOne) Mutation() *TermAliasMutation {
	return _u.mutation
}

// Where appends a list predicates to the TermAliasUpdate builder.
func (_u *TermAliasUpdateOne) Where(ps ...predicate.TermAlias) *TermAliasUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TermAliasUpdateOne) Select(field string, fields ...string) *TermAliasUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TermAlias entity.
func (_u *TermAliasUpdateOne) Save(ctx context.Context) (*TermAlias, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TermAliasUpdateOne) SaveX(ctx context.Context) *TermAlias {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TermAliasUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TermAliasUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TermAliasUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := termalias.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TermAlias.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Canonical(); ok {
		if err := termalias.CanonicalValidator(v); err != nil {
			return &ValidationError{Name: "canonical", err: fmt.Errorf(`ent: validator failed for field "TermAlias.canonical": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Alias(); ok {
		if err := termalias.AliasValidator(v); err != nil {
			return &ValidationError{Name: "alias", err: fmt.Errorf(`ent: validator failed for field "TermAlias.alias": %w`, err)}
		}
	}
	return nil
}

func (_u *TermAliasUpdateOne) sqlSave(ctx context.Context) (_node *TermAlias, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(termalias.Table, termalias.Columns, sqlgraph.NewFieldSpec(termalias.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TermAlias.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, termalias.FieldID)
		for _, f := range fields {
			if !termalias.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != termalias.FieldID {
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
		_spec.SetField(termalias.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Canonical(); ok {
		_spec.SetField(termalias.FieldCanonical, field.TypeString, value)
	}
	if value, ok := _u.mutation.Alias(); ok {
		_spec.SetField(termalias.FieldAlias, field.TypeString, value)
	}
	_node = &TermAlias{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{termalias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
