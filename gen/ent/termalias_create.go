// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nordstaff/consultant-matcher/gen/ent/termalias"
)

// TermAliasCreate is the builder for creating a TermAlias entity.
type TermAliasCreate struct {
	config
	mutation *TermAliasMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKind sets the "kind" field.
func (_c *TermAliasCreate) SetKind(v termalias.Kind) *TermAliasCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetCanonical sets the "canonical" field.
func (_c *TermAliasCreate) SetCanonical(v string) *TermAliasCreate {
	_c.mutation.SetCanonical(v)
	return _c
}

// SetAlias sets the "alias" field.
func (_c *TermAliasCreate) SetAlias(v string) *TermAliasCreate {
	_c.mutation.SetAlias(v)
	return _c
}

// Mutation returns the TermAliasMutation object of the builder.
func (_c *TermAliasCreate) Mutation() *TermAliasMutation {
	return _c.mutation
}

// Save creates the TermAlias in the database.
func (_c *TermAliasCreate) Save(ctx context.Context) (*TermAlias, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TermAliasCreate) SaveX(ctx context.Context) *TermAlias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TermAliasCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TermAliasCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TermAliasCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "TermAlias.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := termalias.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TermAlias.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Canonical(); !ok {
		return &ValidationError{Name: "canonical", err: errors.New(`ent: missing required field "TermAlias.canonical"`)}
	}
	if v, ok := _c.mutation.Canonical(); ok {
		if err := termalias.CanonicalValidator(v); err != nil {
			return &ValidationError{Name: "canonical", err: fmt.Errorf(`ent: validator failed for field "TermAlias.canonical": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Alias(); !ok {
		return &ValidationError{Name: "alias", err: errors.New(`ent: missing required field "TermAlias.alias"`)}
	}
	if v, ok := _c.mutation.Alias(); ok {
		if err := termalias.AliasValidator(v); err != nil {
			return &ValidationError{Name: "alias", err: fmt.Errorf(`ent: validator failed for field "TermAlias.alias": %w`, err)}
		}
	}
	return nil
}

func (_c *TermAliasCreate) sqlSave(ctx context.Context) (*TermAlias, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TermAliasCreate) createSpec() (*TermAlias, *sqlgraph.CreateSpec) {
	var (
		_node = &TermAlias{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(termalias.Table, sqlgraph.NewFieldSpec(termalias.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(termalias.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Canonical(); ok {
		_spec.SetField(termalias.FieldCanonical, field.TypeString, value)
		_node.Canonical = value
	}
	if value, ok := _c.mutation.Alias(); ok {
		_spec.SetField(termalias.FieldAlias, field.TypeString, value)
		_node.Alias = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TermAlias.Create().
//		SetKind(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TermAliasUpsert) {
//			SetKind(v+v).
//		}).
//		Exec(ctx)
func (_c *TermAliasCreate) OnConflict(opts ...sql.ConflictOption) *TermAliasUpsertOne {
	_c.conflict = opts
	return &TermAliasUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TermAlias.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TermAliasCreate) OnConflictColumns(columns ...string) *TermAliasUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TermAliasUpsertOne{
		create: _c,
	}
}

type (
	// TermAliasUpsertOne is the builder for "upsert"-ing
	//  one TermAlias node.
	TermAliasUpsertOne struct {
		create *TermAliasCreate
	}

	// TermAliasUpsert is the "OnConflict" setter.
	TermAliasUpsert struct {
		*sql.UpdateSet
	}
)

// SetKind sets the "kind" field.
func (u *TermAliasUpsert) SetKind(v termalias.Kind) *TermAliasUpsert {
	u.Set(termalias.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *TermAliasUpsert) UpdateKind() *TermAliasUpsert {
	u.SetExcluded(termalias.FieldKind)
	return u
}

// SetCanonical sets the "canonical" field.
func (u *TermAliasUpsert) SetCanonical(v string) *TermAliasUpsert {
	u.Set(termalias.FieldCanonical, v)
	return u
}

// UpdateCanonical sets the "canonical" field to the value that was provided on create.
func (u *TermAliasUpsert) UpdateCanonical() *TermAliasUpsert {
	u.SetExcluded(termalias.FieldCanonical)
	return u
}

// SetAlias sets the "alias" field.
func (u *TermAliasUpsert) SetAlias(v string) *TermAliasUpsert {
	u.Set(termalias.FieldAlias, v)
	return u
}

// UpdateAlias sets the "alias" field to the value that was provided on create.
func (u *TermAliasUpsert) UpdateAlias() *TermAliasUpsert {
	u.SetExcluded(termalias.FieldAlias)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TermAlias.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TermAliasUpsertOne) UpdateNewValues() *TermAliasUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TermAlias.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TermAliasUpsertOne) Ignore() *TermAliasUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TermAliasUpsertOne) DoNothing() *TermAliasUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TermAliasCreate.OnConflict
// documentation for more info.
func (u *TermAliasUpsertOne) Update(set func(*TermAliasUpsert)) *TermAliasUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TermAliasUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *TermAliasUpsertOne) SetKind(v termalias.Kind) *TermAliasUpsertOne {
	return u.Update(func(s *TermAliasUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *TermAliasUpsertOne) UpdateKind() *TermAliasUpsertOne {
	return u.Update(func(s *TermAliasUpsert) {
		s.UpdateKind()
	})
}

// SetCanonical sets the "canonical" field.
func (u *TermAliasUpsertOne) SetCanonical(v string) *TermAliasUpsertOne {
	return u.Update(func(s *TermAliasUpsert) {
		s.SetCanonical(v)
	})
}

// UpdateCanonical sets the "canonical" field to the value that was provided on create.
func (u *TermAliasUpsertOne) UpdateCanonical() *TermAliasUpsertOne {
	return u.Update(func(s *TermAliasUpsert) {
		s.UpdateCanonical()
	})
}

// SetAlias sets the "alias" field.
func (u *TermAliasUpsertOne) SetAlias(v string) *TermAliasUpsertOne {
	return u.Update(func(s *TermAliasUpsert) {
		s.SetAlias(v)
	})
}

// UpdateAlias sets the "alias" field to the value that was provided on create.
func (u *TermAliasUpsertOne) UpdateAlias() *TermAliasUpsertOne {
	return u.Update(func(s *TermAliasUpsert) {
		s.UpdateAlias()
	})
}

// Exec executes the query.
func (u *TermAliasUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TermAliasCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TermAliasUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TermAliasUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TermAliasUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TermAliasCreateBulk is the builder for creating many TermAlias entities in bulk.
type TermAliasCreateBulk struct {
	config
	err      error
	builders []*TermAliasCreate
	conflict []sql.ConflictOption
}

// Save creates the TermAlias entities in the database.
func (_c *TermAliasCreateBulk) Save(ctx context.Context) ([]*TermAlias, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TermAlias, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TermAliasMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *TermAliasCreateBulk) SaveX(ctx context.Context) []*TermAlias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TermAliasCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TermAliasCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TermAlias.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TermAliasUpsert) {
//			SetKind(v+v).
//		}).
//		Exec(ctx)
func (_c *TermAliasCreateBulk) OnConflict(opts ...sql.ConflictOption) *TermAliasUpsertBulk {
	_c.conflict = opts
	return &TermAliasUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TermAlias.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TermAliasCreateBulk) OnConflictColumns(columns ...string) *TermAliasUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TermAliasUpsertBulk{
		create: _c,
	}
}

// TermAliasUpsertBulk is the builder for "upsert"-ing
// a bulk of TermAlias nodes.
type TermAliasUpsertBulk struct {
	create *TermAliasCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TermAlias.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TermAliasUpsertBulk) UpdateNewValues() *TermAliasUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TermAlias.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TermAliasUpsertBulk) Ignore() *TermAliasUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TermAliasUpsertBulk) DoNothing() *TermAliasUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TermAliasCreateBulk.OnConflict
// documentation for more info.
func (u *TermAliasUpsertBulk) Update(set func(*TermAliasUpsert)) *TermAliasUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TermAliasUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *TermAliasUpsertBulk) SetKind(v termalias.Kind) *TermAliasUpsertBulk {
	return u.Update(func(s *TermAliasUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *TermAliasUpsertBulk) UpdateKind() *TermAliasUpsertBulk {
	return u.Update(func(s *TermAliasUpsert) {
		s.UpdateKind()
	})
}

// SetCanonical sets the "canonical" field.
func (u *TermAliasUpsertBulk) SetCanonical(v string) *TermAliasUpsertBulk {
	return u.Update(func(s *TermAliasUpsert) {
		s.SetCanonical(v)
	})
}

// UpdateCanonical sets the "canonical" field to the value that was provided on create.
func (u *TermAliasUpsertBulk) UpdateCanonical() *TermAliasUpsertBulk {
	return u.Update(func(s *TermAliasUpsert) {
		s.UpdateCanonical()
	})
}

// SetAlias sets the "alias" field.
func (u *TermAliasUpsertBulk) SetAlias(v string) *TermAliasUpsertBulk {
	return u.Update(func(s *TermAliasUpsert) {
		s.SetAlias(v)
	})
}

// UpdateAlias sets the "alias" field to the value that was provided on create.
func (u *TermAliasUpsertBulk) UpdateAlias() *TermAliasUpsertBulk {
	return u.Update(func(s *TermAliasUpsert) {
		s.UpdateAlias()
	})
}

// Exec executes the query.
func (u *TermAliasUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TermAliasCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TermAliasCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TermAliasUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
