// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nordstaff/consultant-matcher/gen/ent/candidate"
	"github.com/nordstaff/consultant-matcher/gen/ent/job"
	"github.com/nordstaff/consultant-matcher/gen/ent/match"
	"github.com/nordstaff/consultant-matcher/gen/ent/organization"
	"github.com/nordstaff/consultant-matcher/gen/ent/predicate"
	"github.com/nordstaff/consultant-matcher/gen/ent/termalias"
	"github.com/nordstaff/consultant-matcher/internal/entity"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCandidate    = "Candidate"
	TypeJob          = "Job"
	TypeMatch        = "Match"
	TypeOrganization = "Organization"
	TypeTermAlias    = "TermAlias"
)

// CandidateMutation represents an operation that mutates the Candidate nodes in the graph.
type CandidateMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	role              *string
	seniority         *string
	skills            *[]string
	appendskills      []string
	languages         *[]string
	appendlanguages   []string
	location_city     *string
	location_country  *string
	onsite_mode       *candidate.OnsiteMode
	availability_from *time.Time
	notes             *string
	profile_url       *string
	active            *bool
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	matches           map[uuid.UUID]struct{}
	removedmatches    map[uuid.UUID]struct{}
	clearedmatches    bool
	done              bool
	oldValue          func(context.Context) (*Candidate, error)
	predicates        []predicate.Candidate
}

var _ ent.Mutation = (*CandidateMutation)(nil)

// candidateOption allows management of the mutation configuration using functional options.
type candidateOption func(*CandidateMutation)

// newCandidateMutation creates new mutation for the Candidate entity.
func newCandidateMutation(c config, op Op, opts ...candidateOption) *CandidateMutation {
	m := &CandidateMutation{
		config:        c,
		op:            op,
		typ:           TypeCandidate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCandidateID sets the ID field of the mutation.
func withCandidateID(id uuid.UUID) candidateOption {
	return func(m *CandidateMutation) {
		var (
			err   error
			once  sync.Once
			value *Candidate
		)
		m.oldValue = func(ctx context.Context) (*Candidate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Candidate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCandidate sets the old Candidate of the mutation.
func withCandidate(node *Candidate) candidateOption {
	return func(m *CandidateMutation) {
		m.oldValue = func(context.Context) (*Candidate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CandidateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CandidateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Candidate entities.
func (m *CandidateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CandidateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CandidateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Candidate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CandidateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CandidateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CandidateMutation) ResetName() {
	m.name = nil
}

// SetRole sets the "role" field.
func (m *CandidateMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *CandidateMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *CandidateMutation) ClearRole() {
	m.role = nil
	m.clearedFields[candidate.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *CandidateMutation) RoleCleared() bool {
	_, ok := m.clearedFields[candidate.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *CandidateMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, candidate.FieldRole)
}

// SetSeniority sets the "seniority" field.
func (m *CandidateMutation) SetSeniority(s string) {
	m.seniority = &s
}

// Seniority returns the value of the "seniority" field in the mutation.
func (m *CandidateMutation) Seniority() (r string, exists bool) {
	v := m.seniority
	if v == nil {
		return
	}
	return *v, true
}

// OldSeniority returns the old "seniority" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldSeniority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeniority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeniority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeniority: %w", err)
	}
	return oldValue.Seniority, nil
}

// ClearSeniority clears the value of the "seniority" field.
func (m *CandidateMutation) ClearSeniority() {
	m.seniority = nil
	m.clearedFields[candidate.FieldSeniority] = struct{}{}
}

// SeniorityCleared returns if the "seniority" field was cleared in this mutation.
func (m *CandidateMutation) SeniorityCleared() bool {
	_, ok := m.clearedFields[candidate.FieldSeniority]
	return ok
}

// ResetSeniority resets all changes to the "seniority" field.
func (m *CandidateMutation) ResetSeniority() {
	m.seniority = nil
	delete(m.clearedFields, candidate.FieldSeniority)
}

// SetSkills sets the "skills" field.
func (m *CandidateMutation) SetSkills(s []string) {
	m.skills = &s
	m.appendskills = nil
}

// Skills returns the value of the "skills" field in the mutation.
func (m *CandidateMutation) Skills() (r []string, exists bool) {
	v := m.skills
	if v == nil {
		return
	}
	return *v, true
}

// OldSkills returns the old "skills" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldSkills(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkills: %w", err)
	}
	return oldValue.Skills, nil
}

// AppendSkills adds s to the "skills" field.
func (m *CandidateMutation) AppendSkills(s []string) {
	m.appendskills = append(m.appendskills, s...)
}

// AppendedSkills returns the list of values that were appended to the "skills" field in this mutation.
func (m *CandidateMutation) AppendedSkills() ([]string, bool) {
	if len(m.appendskills) == 0 {
		return nil, false
	}
	return m.appendskills, true
}

// ClearSkills clears the value of the "skills" field.
func (m *CandidateMutation) ClearSkills() {
	m.skills = nil
	m.appendskills = nil
	m.clearedFields[candidate.FieldSkills] = struct{}{}
}

// SkillsCleared returns if the "skills" field was cleared in this mutation.
func (m *CandidateMutation) SkillsCleared() bool {
	_, ok := m.clearedFields[candidate.FieldSkills]
	return ok
}

// ResetSkills resets all changes to the "skills" field.
func (m *CandidateMutation) ResetSkills() {
	m.skills = nil
	m.appendskills = nil
	delete(m.clearedFields, candidate.FieldSkills)
}

// SetLanguages sets the "languages" field.
func (m *CandidateMutation) SetLanguages(s []string) {
	m.languages = &s
	m.appendlanguages = nil
}

// Languages returns the value of the "languages" field in the mutation.
func (m *CandidateMutation) Languages() (r []string, exists bool) {
	v := m.languages
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguages returns the old "languages" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldLanguages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguages: %w", err)
	}
	return oldValue.Languages, nil
}

// AppendLanguages adds s to the "languages" field.
func (m *CandidateMutation) AppendLanguages(s []string) {
	m.appendlanguages = append(m.appendlanguages, s...)
}

// AppendedLanguages returns the list of values that were appended to the "languages" field in this mutation.
func (m *CandidateMutation) AppendedLanguages() ([]string, bool) {
	if len(m.appendlanguages) == 0 {
		return nil, false
	}
	return m.appendlanguages, true
}

// ClearLanguages clears the value of the "languages" field.
func (m *CandidateMutation) ClearLanguages() {
	m.languages = nil
	m.appendlanguages = nil
	m.clearedFields[candidate.FieldLanguages] = struct{}{}
}

// LanguagesCleared returns if the "languages" field was cleared in this mutation.
func (m *CandidateMutation) LanguagesCleared() bool {
	_, ok := m.clearedFields[candidate.FieldLanguages]
	return ok
}

// ResetLanguages resets all changes to the "languages" field.
func (m *CandidateMutation) ResetLanguages() {
	m.languages = nil
	m.appendlanguages = nil
	delete(m.clearedFields, candidate.FieldLanguages)
}

// SetLocationCity sets the "location_city" field.
func (m *CandidateMutation) SetLocationCity(s string) {
	m.location_city = &s
}

// LocationCity returns the value of the "location_city" field in the mutation.
func (m *CandidateMutation) LocationCity() (r string, exists bool) {
	v := m.location_city
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationCity returns the old "location_city" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldLocationCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationCity: %w", err)
	}
	return oldValue.LocationCity, nil
}

// ClearLocationCity clears the value of the "location_city" field.
func (m *CandidateMutation) ClearLocationCity() {
	m.location_city = nil
	m.clearedFields[candidate.FieldLocationCity] = struct{}{}
}

// LocationCityCleared returns if the "location_city" field was cleared in this mutation.
func (m *CandidateMutation) LocationCityCleared() bool {
	_, ok := m.clearedFields[candidate.FieldLocationCity]
	return ok
}

// ResetLocationCity resets all changes to the "location_city" field.
func (m *CandidateMutation) ResetLocationCity() {
	m.location_city = nil
	delete(m.clearedFields, candidate.FieldLocationCity)
}

// SetLocationCountry sets the "location_country" field.
func (m *CandidateMutation) SetLocationCountry(s string) {
	m.location_country = &s
}

// LocationCountry returns the value of the "location_country" field in the mutation.
func (m *CandidateMutation) LocationCountry() (r string, exists bool) {
	v := m.location_country
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationCountry returns the old "location_country" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldLocationCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationCountry: %w", err)
	}
	return oldValue.LocationCountry, nil
}

// ClearLocationCountry clears the value of the "location_country" field.
func (m *CandidateMutation) ClearLocationCountry() {
	m.location_country = nil
	m.clearedFields[candidate.FieldLocationCountry] = struct{}{}
}

// LocationCountryCleared returns if the "location_country" field was cleared in this mutation.
func (m *CandidateMutation) LocationCountryCleared() bool {
	_, ok := m.clearedFields[candidate.FieldLocationCountry]
	return ok
}

// ResetLocationCountry resets all changes to the "location_country" field.
func (m *CandidateMutation) ResetLocationCountry() {
	m.location_country = nil
	delete(m.clearedFields, candidate.FieldLocationCountry)
}

// SetOnsiteMode sets the "onsite_mode" field.
func (m *CandidateMutation) SetOnsiteMode(cm candidate.OnsiteMode) {
	m.onsite_mode = &cm
}

// OnsiteMode returns the value of the "onsite_mode" field in the mutation.
func (m *CandidateMutation) OnsiteMode() (r candidate.OnsiteMode, exists bool) {
	v := m.onsite_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldOnsiteMode returns the old "onsite_mode" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldOnsiteMode(ctx context.Context) (v candidate.OnsiteMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnsiteMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnsiteMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnsiteMode: %w", err)
	}
	return oldValue.OnsiteMode, nil
}

// ClearOnsiteMode clears the value of the "onsite_mode" field.
func (m *CandidateMutation) ClearOnsiteMode() {
	m.onsite_mode = nil
	m.clearedFields[candidate.FieldOnsiteMode] = struct{}{}
}

// OnsiteModeCleared returns if the "onsite_mode" field was cleared in this mutation.
func (m *CandidateMutation) OnsiteModeCleared() bool {
	_, ok := m.clearedFields[candidate.FieldOnsiteMode]
	return ok
}

// ResetOnsiteMode resets all changes to the "onsite_mode" field.
func (m *CandidateMutation) ResetOnsiteMode() {
	m.onsite_mode = nil
	delete(m.clearedFields, candidate.FieldOnsiteMode)
}

// SetAvailabilityFrom sets the "availability_from" field.
func (m *CandidateMutation) SetAvailabilityFrom(t time.Time) {
	m.availability_from = &t
}

// AvailabilityFrom returns the value of the "availability_from" field in the mutation.
func (m *CandidateMutation) AvailabilityFrom() (r time.Time, exists bool) {
	v := m.availability_from
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailabilityFrom returns the old "availability_from" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldAvailabilityFrom(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailabilityFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailabilityFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailabilityFrom: %w", err)
	}
	return oldValue.AvailabilityFrom, nil
}

// ClearAvailabilityFrom clears the value of the "availability_from" field.
func (m *CandidateMutation) ClearAvailabilityFrom() {
	m.availability_from = nil
	m.clearedFields[candidate.FieldAvailabilityFrom] = struct{}{}
}

// AvailabilityFromCleared returns if the "availability_from" field was cleared in this mutation.
func (m *CandidateMutation) AvailabilityFromCleared() bool {
	_, ok := m.clearedFields[candidate.FieldAvailabilityFrom]
	return ok
}

// ResetAvailabilityFrom resets all changes to the "availability_from" field.
func (m *CandidateMutation) ResetAvailabilityFrom() {
	m.availability_from = nil
	delete(m.clearedFields, candidate.FieldAvailabilityFrom)
}

// SetNotes sets the "notes" field.
func (m *CandidateMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *CandidateMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *CandidateMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[candidate.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *CandidateMutation) NotesCleared() bool {
	_, ok := m.clearedFields[candidate.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *CandidateMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, candidate.FieldNotes)
}

// SetProfileURL sets the "profile_url" field.
func (m *CandidateMutation) SetProfileURL(s string) {
	m.profile_url = &s
}

// ProfileURL returns the value of the "profile_url" field in the mutation.
func (m *CandidateMutation) ProfileURL() (r string, exists bool) {
	v := m.profile_url
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileURL returns the old "profile_url" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldProfileURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileURL: %w", err)
	}
	return oldValue.ProfileURL, nil
}

// ClearProfileURL clears the value of the "profile_url" field.
func (m *CandidateMutation) ClearProfileURL() {
	m.profile_url = nil
	m.clearedFields[candidate.FieldProfileURL] = struct{}{}
}

// ProfileURLCleared returns if the "profile_url" field was cleared in this mutation.
func (m *CandidateMutation) ProfileURLCleared() bool {
	_, ok := m.clearedFields[candidate.FieldProfileURL]
	return ok
}

// ResetProfileURL resets all changes to the "profile_url" field.
func (m *CandidateMutation) ResetProfileURL() {
	m.profile_url = nil
	delete(m.clearedFields, candidate.FieldProfileURL)
}

// SetActive sets the "active" field.
func (m *CandidateMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *CandidateMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *CandidateMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CandidateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CandidateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CandidateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CandidateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CandidateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CandidateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMatchIDs adds the "matches" edge to the Match entity by ids.
func (m *CandidateMutation) AddMatchIDs(ids ...uuid.UUID) {
	if m.matches == nil {
		m.matches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.matches[ids[i]] = struct{}{}
	}
}

// ClearMatches clears the "matches" edge to the Match entity.
func (m *CandidateMutation) ClearMatches() {
	m.clearedmatches = true
}

// MatchesCleared reports if the "matches" edge to the Match entity was cleared.
func (m *CandidateMutation) MatchesCleared() bool {
	return m.clearedmatches
}

// RemoveMatchIDs removes the "matches" edge to the Match entity by IDs.
func (m *CandidateMutation) RemoveMatchIDs(ids ...uuid.UUID) {
	if m.removedmatches == nil {
		m.removedmatches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.matches, ids[i])
		m.removedmatches[ids[i]] = struct{}{}
	}
}

// RemovedMatches returns the removed IDs of the "matches" edge to the Match entity.
func (m *CandidateMutation) RemovedMatchesIDs() (ids []uuid.UUID) {
	for id := range m.removedmatches {
		ids = append(ids, id)
	}
	return
}

// MatchesIDs returns the "matches" edge IDs in the mutation.
func (m *CandidateMutation) MatchesIDs() (ids []uuid.UUID) {
	for id := range m.matches {
		ids = append(ids, id)
	}
	return
}

// ResetMatches resets all changes to the "matches" edge.
func (m *CandidateMutation) ResetMatches() {
	m.matches = nil
	m.clearedmatches = false
	m.removedmatches = nil
}

// Where appends a list predicates to the CandidateMutation builder.
func (m *CandidateMutation) Where(ps ...predicate.Candidate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CandidateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CandidateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Candidate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CandidateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CandidateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Candidate).
func (m *CandidateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CandidateMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.name != nil {
		fields = append(fields, candidate.FieldName)
	}
	if m.role != nil {
		fields = append(fields, candidate.FieldRole)
	}
	if m.seniority != nil {
		fields = append(fields, candidate.FieldSeniority)
	}
	if m.skills != nil {
		fields = append(fields, candidate.FieldSkills)
	}
	if m.languages != nil {
		fields = append(fields, candidate.FieldLanguages)
	}
	if m.location_city != nil {
		fields = append(fields, candidate.FieldLocationCity)
	}
	if m.location_country != nil {
		fields = append(fields, candidate.FieldLocationCountry)
	}
	if m.onsite_mode != nil {
		fields = append(fields, candidate.FieldOnsiteMode)
	}
	if m.availability_from != nil {
		fields = append(fields, candidate.FieldAvailabilityFrom)
	}
	if m.notes != nil {
		fields = append(fields, candidate.FieldNotes)
	}
	if m.profile_url != nil {
		fields = append(fields, candidate.FieldProfileURL)
	}
	if m.active != nil {
		fields = append(fields, candidate.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, candidate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, candidate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CandidateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case candidate.FieldName:
		return m.Name()
	case candidate.FieldRole:
		return m.Role()
	case candidate.FieldSeniority:
		return m.Seniority()
	case candidate.FieldSkills:
		return m.Skills()
	case candidate.FieldLanguages:
		return m.Languages()
	case candidate.FieldLocationCity:
		return m.LocationCity()
	case candidate.FieldLocationCountry:
		return m.LocationCountry()
	case candidate.FieldOnsiteMode:
		return m.OnsiteMode()
	case candidate.FieldAvailabilityFrom:
		return m.AvailabilityFrom()
	case candidate.FieldNotes:
		return m.Notes()
	case candidate.FieldProfileURL:
		return m.ProfileURL()
	case candidate.FieldActive:
		return m.Active()
	case candidate.FieldCreatedAt:
		return m.CreatedAt()
	case candidate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CandidateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case candidate.FieldName:
		return m.OldName(ctx)
	case candidate.FieldRole:
		return m.OldRole(ctx)
	case candidate.FieldSeniority:
		return m.OldSeniority(ctx)
	case candidate.FieldSkills:
		return m.OldSkills(ctx)
	case candidate.FieldLanguages:
		return m.OldLanguages(ctx)
	case candidate.FieldLocationCity:
		return m.OldLocationCity(ctx)
	case candidate.FieldLocationCountry:
		return m.OldLocationCountry(ctx)
	case candidate.FieldOnsiteMode:
		return m.OldOnsiteMode(ctx)
	case candidate.FieldAvailabilityFrom:
		return m.OldAvailabilityFrom(ctx)
	case candidate.FieldNotes:
		return m.OldNotes(ctx)
	case candidate.FieldProfileURL:
		return m.OldProfileURL(ctx)
	case candidate.FieldActive:
		return m.OldActive(ctx)
	case candidate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case candidate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Candidate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CandidateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case candidate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case candidate.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case candidate.FieldSeniority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeniority(v)
		return nil
	case candidate.FieldSkills:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkills(v)
		return nil
	case candidate.FieldLanguages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguages(v)
		return nil
	case candidate.FieldLocationCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationCity(v)
		return nil
	case candidate.FieldLocationCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationCountry(v)
		return nil
	case candidate.FieldOnsiteMode:
		v, ok := value.(candidate.OnsiteMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnsiteMode(v)
		return nil
	case candidate.FieldAvailabilityFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailabilityFrom(v)
		return nil
	case candidate.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case candidate.FieldProfileURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileURL(v)
		return nil
	case candidate.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case candidate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case candidate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Candidate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CandidateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CandidateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CandidateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Candidate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CandidateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(candidate.FieldRole) {
		fields = append(fields, candidate.FieldRole)
	}
	if m.FieldCleared(candidate.FieldSeniority) {
		fields = append(fields, candidate.FieldSeniority)
	}
	if m.FieldCleared(candidate.FieldSkills) {
		fields = append(fields, candidate.FieldSkills)
	}
	if m.FieldCleared(candidate.FieldLanguages) {
		fields = append(fields, candidate.FieldLanguages)
	}
	if m.FieldCleared(candidate.FieldLocationCity) {
		fields = append(fields, candidate.FieldLocationCity)
	}
	if m.FieldCleared(candidate.FieldLocationCountry) {
		fields = append(fields, candidate.FieldLocationCountry)
	}
	if m.FieldCleared(candidate.FieldOnsiteMode) {
		fields = append(fields, candidate.FieldOnsiteMode)
	}
	if m.FieldCleared(candidate.FieldAvailabilityFrom) {
		fields = append(fields, candidate.FieldAvailabilityFrom)
	}
	if m.FieldCleared(candidate.FieldNotes) {
		fields = append(fields, candidate.FieldNotes)
	}
	if m.FieldCleared(candidate.FieldProfileURL) {
		fields = append(fields, candidate.FieldProfileURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CandidateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CandidateMutation) ClearField(name string) error {
	switch name {
	case candidate.FieldRole:
		m.ClearRole()
		return nil
	case candidate.FieldSeniority:
		m.ClearSeniority()
		return nil
	case candidate.FieldSkills:
		m.ClearSkills()
		return nil
	case candidate.FieldLanguages:
		m.ClearLanguages()
		return nil
	case candidate.FieldLocationCity:
		m.ClearLocationCity()
		return nil
	case candidate.FieldLocationCountry:
		m.ClearLocationCountry()
		return nil
	case candidate.FieldOnsiteMode:
		m.ClearOnsiteMode()
		return nil
	case candidate.FieldAvailabilityFrom:
		m.ClearAvailabilityFrom()
		return nil
	case candidate.FieldNotes:
		m.ClearNotes()
		return nil
	case candidate.FieldProfileURL:
		m.ClearProfileURL()
		return nil
	}
	return fmt.Errorf("unknown Candidate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CandidateMutation) ResetField(name string) error {
	switch name {
	case candidate.FieldName:
		m.ResetName()
		return nil
	case candidate.FieldRole:
		m.ResetRole()
		return nil
	case candidate.FieldSeniority:
		m.ResetSeniority()
		return nil
	case candidate.FieldSkills:
		m.ResetSkills()
		return nil
	case candidate.FieldLanguages:
		m.ResetLanguages()
		return nil
	case candidate.FieldLocationCity:
		m.ResetLocationCity()
		return nil
	case candidate.FieldLocationCountry:
		m.ResetLocationCountry()
		return nil
	case candidate.FieldOnsiteMode:
		m.ResetOnsiteMode()
		return nil
	case candidate.FieldAvailabilityFrom:
		m.ResetAvailabilityFrom()
		return nil
	case candidate.FieldNotes:
		m.ResetNotes()
		return nil
	case candidate.FieldProfileURL:
		m.ResetProfileURL()
		return nil
	case candidate.FieldActive:
		m.ResetActive()
		return nil
	case candidate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case candidate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Candidate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CandidateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.matches != nil {
		edges = append(edges, candidate.EdgeMatches)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CandidateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case candidate.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.matches))
		for id := range m.matches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CandidateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmatches != nil {
		edges = append(edges, candidate.EdgeMatches)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CandidateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case candidate.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.removedmatches))
		for id := range m.removedmatches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CandidateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmatches {
		edges = append(edges, candidate.EdgeMatches)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CandidateMutation) EdgeCleared(name string) bool {
	switch name {
	case candidate.EdgeMatches:
		return m.clearedmatches
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CandidateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Candidate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CandidateMutation) ResetEdge(name string) error {
	switch name {
	case candidate.EdgeMatches:
		m.ResetMatches()
		return nil
	}
	return fmt.Errorf("unknown Candidate edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	job_uid          *string
	source           *string
	title            *string
	description      *string
	skills           *[]string
	appendskills     []string
	role             *string
	seniority        *string
	languages        *[]string
	appendlanguages  []string
	location_city    *string
	location_country *string
	onsite_mode      *job.OnsiteMode
	duration         *string
	start_date       *time.Time
	url              *string
	posted_at        *time.Time
	etag             *string
	last_modified    *string
	scraped_at       *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	company          *uuid.UUID
	clearedcompany   bool
	broker           *uuid.UUID
	clearedbroker    bool
	matches          map[uuid.UUID]struct{}
	removedmatches   map[uuid.UUID]struct{}
	clearedmatches   bool
	done             bool
	oldValue         func(context.Context) (*Job, error)
	predicates       []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id uuid.UUID) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobUID sets the "job_uid" field.
func (m *JobMutation) SetJobUID(s string) {
	m.job_uid = &s
}

// JobUID returns the value of the "job_uid" field in the mutation.
func (m *JobMutation) JobUID() (r string, exists bool) {
	v := m.job_uid
	if v == nil {
		return
	}
	return *v, true
}

// OldJobUID returns the old "job_uid" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJobUID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobUID: %w", err)
	}
	return oldValue.JobUID, nil
}

// ResetJobUID resets all changes to the "job_uid" field.
func (m *JobMutation) ResetJobUID() {
	m.job_uid = nil
}

// SetSource sets the "source" field.
func (m *JobMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *JobMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *JobMutation) ResetSource() {
	m.source = nil
}

// SetTitle sets the "title" field.
func (m *JobMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *JobMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *JobMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *JobMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *JobMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *JobMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[job.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *JobMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[job.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *JobMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, job.FieldDescription)
}

// SetSkills sets the "skills" field.
func (m *JobMutation) SetSkills(s []string) {
	m.skills = &s
	m.appendskills = nil
}

// Skills returns the value of the "skills" field in the mutation.
func (m *JobMutation) Skills() (r []string, exists bool) {
	v := m.skills
	if v == nil {
		return
	}
	return *v, true
}

// OldSkills returns the old "skills" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSkills(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkills: %w", err)
	}
	return oldValue.Skills, nil
}

// AppendSkills adds s to the "skills" field.
func (m *JobMutation) AppendSkills(s []string) {
	m.appendskills = append(m.appendskills, s...)
}

// AppendedSkills returns the list of values that were appended to the "skills" field in this mutation.
func (m *JobMutation) AppendedSkills() ([]string, bool) {
	if len(m.appendskills) == 0 {
		return nil, false
	}
	return m.appendskills, true
}

// ClearSkills clears the value of the "skills" field.
func (m *JobMutation) ClearSkills() {
	m.skills = nil
	m.appendskills = nil
	m.clearedFields[job.FieldSkills] = struct{}{}
}

// SkillsCleared returns if the "skills" field was cleared in this mutation.
func (m *JobMutation) SkillsCleared() bool {
	_, ok := m.clearedFields[job.FieldSkills]
	return ok
}

// ResetSkills resets all changes to the "skills" field.
func (m *JobMutation) ResetSkills() {
	m.skills = nil
	m.appendskills = nil
	delete(m.clearedFields, job.FieldSkills)
}

// SetRole sets the "role" field.
func (m *JobMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *JobMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *JobMutation) ClearRole() {
	m.role = nil
	m.clearedFields[job.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *JobMutation) RoleCleared() bool {
	_, ok := m.clearedFields[job.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *JobMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, job.FieldRole)
}

// SetSeniority sets the "seniority" field.
func (m *JobMutation) SetSeniority(s string) {
	m.seniority = &s
}

// Seniority returns the value of the "seniority" field in the mutation.
func (m *JobMutation) Seniority() (r string, exists bool) {
	v := m.seniority
	if v == nil {
		return
	}
	return *v, true
}

// OldSeniority returns the old "seniority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSeniority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeniority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeniority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeniority: %w", err)
	}
	return oldValue.Seniority, nil
}

// ClearSeniority clears the value of the "seniority" field.
func (m *JobMutation) ClearSeniority() {
	m.seniority = nil
	m.clearedFields[job.FieldSeniority] = struct{}{}
}

// SeniorityCleared returns if the "seniority" field was cleared in this mutation.
func (m *JobMutation) SeniorityCleared() bool {
	_, ok := m.clearedFields[job.FieldSeniority]
	return ok
}

// ResetSeniority resets all changes to the "seniority" field.
func (m *JobMutation) ResetSeniority() {
	m.seniority = nil
	delete(m.clearedFields, job.FieldSeniority)
}

// SetLanguages sets the "languages" field.
func (m *JobMutation) SetLanguages(s []string) {
	m.languages = &s
	m.appendlanguages = nil
}

// Languages returns the value of the "languages" field in the mutation.
func (m *JobMutation) Languages() (r []string, exists bool) {
	v := m.languages
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguages returns the old "languages" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLanguages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguages: %w", err)
	}
	return oldValue.Languages, nil
}

// AppendLanguages adds s to the "languages" field.
func (m *JobMutation) AppendLanguages(s []string) {
	m.appendlanguages = append(m.appendlanguages, s...)
}

// AppendedLanguages returns the list of values that were appended to the "languages" field in this mutation.
func (m *JobMutation) AppendedLanguages() ([]string, bool) {
	if len(m.appendlanguages) == 0 {
		return nil, false
	}
	return m.appendlanguages, true
}

// ClearLanguages clears the value of the "languages" field.
func (m *JobMutation) ClearLanguages() {
	m.languages = nil
	m.appendlanguages = nil
	m.clearedFields[job.FieldLanguages] = struct{}{}
}

// LanguagesCleared returns if the "languages" field was cleared in this mutation.
func (m *JobMutation) LanguagesCleared() bool {
	_, ok := m.clearedFields[job.FieldLanguages]
	return ok
}

// ResetLanguages resets all changes to the "languages" field.
func (m *JobMutation) ResetLanguages() {
	m.languages = nil
	m.appendlanguages = nil
	delete(m.clearedFields, job.FieldLanguages)
}

// SetLocationCity sets the "location_city" field.
func (m *JobMutation) SetLocationCity(s string) {
	m.location_city = &s
}

// LocationCity returns the value of the "location_city" field in the mutation.
func (m *JobMutation) LocationCity() (r string, exists bool) {
	v := m.location_city
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationCity returns the old "location_city" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLocationCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationCity: %w", err)
	}
	return oldValue.LocationCity, nil
}

// ClearLocationCity clears the value of the "location_city" field.
func (m *JobMutation) ClearLocationCity() {
	m.location_city = nil
	m.clearedFields[job.FieldLocationCity] = struct{}{}
}

// LocationCityCleared returns if the "location_city" field was cleared in this mutation.
func (m *JobMutation) LocationCityCleared() bool {
	_, ok := m.clearedFields[job.FieldLocationCity]
	return ok
}

// ResetLocationCity resets all changes to the "location_city" field.
func (m *JobMutation) ResetLocationCity() {
	m.location_city = nil
	delete(m.clearedFields, job.FieldLocationCity)
}

// SetLocationCountry sets the "location_country" field.
func (m *JobMutation) SetLocationCountry(s string) {
	m.location_country = &s
}

// LocationCountry returns the value of the "location_country" field in the mutation.
func (m *JobMutation) LocationCountry() (r string, exists bool) {
	v := m.location_country
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationCountry returns the old "location_country" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLocationCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationCountry: %w", err)
	}
	return oldValue.LocationCountry, nil
}

// ClearLocationCountry clears the value of the "location_country" field.
func (m *JobMutation) ClearLocationCountry() {
	m.location_country = nil
	m.clearedFields[job.FieldLocationCountry] = struct{}{}
}

// LocationCountryCleared returns if the "location_country" field was cleared in this mutation.
func (m *JobMutation) LocationCountryCleared() bool {
	_, ok := m.clearedFields[job.FieldLocationCountry]
	return ok
}

// ResetLocationCountry resets all changes to the "location_country" field.
func (m *JobMutation) ResetLocationCountry() {
	m.location_country = nil
	delete(m.clearedFields, job.FieldLocationCountry)
}

// SetOnsiteMode sets the "onsite_mode" field.
func (m *JobMutation) SetOnsiteMode(jm job.OnsiteMode) {
	m.onsite_mode = &jm
}

// OnsiteMode returns the value of the "onsite_mode" field in the mutation.
func (m *JobMutation) OnsiteMode() (r job.OnsiteMode, exists bool) {
	v := m.onsite_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldOnsiteMode returns the old "onsite_mode" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldOnsiteMode(ctx context.Context) (v job.OnsiteMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnsiteMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnsiteMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnsiteMode: %w", err)
	}
	return oldValue.OnsiteMode, nil
}

// ClearOnsiteMode clears the value of the "onsite_mode" field.
func (m *JobMutation) ClearOnsiteMode() {
	m.onsite_mode = nil
	m.clearedFields[job.FieldOnsiteMode] = struct{}{}
}

// OnsiteModeCleared returns if the "onsite_mode" field was cleared in this mutation.
func (m *JobMutation) OnsiteModeCleared() bool {
	_, ok := m.clearedFields[job.FieldOnsiteMode]
	return ok
}

// ResetOnsiteMode resets all changes to the "onsite_mode" field.
func (m *JobMutation) ResetOnsiteMode() {
	m.onsite_mode = nil
	delete(m.clearedFields, job.FieldOnsiteMode)
}

// SetDuration sets the "duration" field.
func (m *JobMutation) SetDuration(s string) {
	m.duration = &s
}

// Duration returns the value of the "duration" field in the mutation.
func (m *JobMutation) Duration() (r string, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDuration(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// ClearDuration clears the value of the "duration" field.
func (m *JobMutation) ClearDuration() {
	m.duration = nil
	m.clearedFields[job.FieldDuration] = struct{}{}
}

// DurationCleared returns if the "duration" field was cleared in this mutation.
func (m *JobMutation) DurationCleared() bool {
	_, ok := m.clearedFields[job.FieldDuration]
	return ok
}

// ResetDuration resets all changes to the "duration" field.
func (m *JobMutation) ResetDuration() {
	m.duration = nil
	delete(m.clearedFields, job.FieldDuration)
}

// SetStartDate sets the "start_date" field.
func (m *JobMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *JobMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ClearStartDate clears the value of the "start_date" field.
func (m *JobMutation) ClearStartDate() {
	m.start_date = nil
	m.clearedFields[job.FieldStartDate] = struct{}{}
}

// StartDateCleared returns if the "start_date" field was cleared in this mutation.
func (m *JobMutation) StartDateCleared() bool {
	_, ok := m.clearedFields[job.FieldStartDate]
	return ok
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *JobMutation) ResetStartDate() {
	m.start_date = nil
	delete(m.clearedFields, job.FieldStartDate)
}

// SetCompanyID sets the "company_id" field.
func (m *JobMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *JobMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompanyID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ClearCompanyID clears the value of the "company_id" field.
func (m *JobMutation) ClearCompanyID() {
	m.company = nil
	m.clearedFields[job.FieldCompanyID] = struct{}{}
}

// CompanyIDCleared returns if the "company_id" field was cleared in this mutation.
func (m *JobMutation) CompanyIDCleared() bool {
	_, ok := m.clearedFields[job.FieldCompanyID]
	return ok
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *JobMutation) ResetCompanyID() {
	m.company = nil
	delete(m.clearedFields, job.FieldCompanyID)
}

// SetBrokerID sets the "broker_id" field.
func (m *JobMutation) SetBrokerID(u uuid.UUID) {
	m.broker = &u
}

// BrokerID returns the value of the "broker_id" field in the mutation.
func (m *JobMutation) BrokerID() (r uuid.UUID, exists bool) {
	v := m.broker
	if v == nil {
		return
	}
	return *v, true
}

// OldBrokerID returns the old "broker_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldBrokerID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrokerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrokerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrokerID: %w", err)
	}
	return oldValue.BrokerID, nil
}

// ClearBrokerID clears the value of the "broker_id" field.
func (m *JobMutation) ClearBrokerID() {
	m.broker = nil
	m.clearedFields[job.FieldBrokerID] = struct{}{}
}

// BrokerIDCleared returns if the "broker_id" field was cleared in this mutation.
func (m *JobMutation) BrokerIDCleared() bool {
	_, ok := m.clearedFields[job.FieldBrokerID]
	return ok
}

// ResetBrokerID resets all changes to the "broker_id" field.
func (m *JobMutation) ResetBrokerID() {
	m.broker = nil
	delete(m.clearedFields, job.FieldBrokerID)
}

// SetURL sets the "url" field.
func (m *JobMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *JobMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *JobMutation) ResetURL() {
	m.url = nil
}

// SetPostedAt sets the "posted_at" field.
func (m *JobMutation) SetPostedAt(t time.Time) {
	m.posted_at = &t
}

// PostedAt returns the value of the "posted_at" field in the mutation.
func (m *JobMutation) PostedAt() (r time.Time, exists bool) {
	v := m.posted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPostedAt returns the old "posted_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPostedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostedAt: %w", err)
	}
	return oldValue.PostedAt, nil
}

// ClearPostedAt clears the value of the "posted_at" field.
func (m *JobMutation) ClearPostedAt() {
	m.posted_at = nil
	m.clearedFields[job.FieldPostedAt] = struct{}{}
}

// PostedAtCleared returns if the "posted_at" field was cleared in this mutation.
func (m *JobMutation) PostedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldPostedAt]
	return ok
}

// ResetPostedAt resets all changes to the "posted_at" field.
func (m *JobMutation) ResetPostedAt() {
	m.posted_at = nil
	delete(m.clearedFields, job.FieldPostedAt)
}

// SetEtag sets the "etag" field.
func (m *JobMutation) SetEtag(s string) {
	m.etag = &s
}

// Etag returns the value of the "etag" field in the mutation.
func (m *JobMutation) Etag() (r string, exists bool) {
	v := m.etag
	if v == nil {
		return
	}
	return *v, true
}

// OldEtag returns the old "etag" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldEtag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEtag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEtag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEtag: %w", err)
	}
	return oldValue.Etag, nil
}

// ClearEtag clears the value of the "etag" field.
func (m *JobMutation) ClearEtag() {
	m.etag = nil
	m.clearedFields[job.FieldEtag] = struct{}{}
}

// EtagCleared returns if the "etag" field was cleared in this mutation.
func (m *JobMutation) EtagCleared() bool {
	_, ok := m.clearedFields[job.FieldEtag]
	return ok
}

// ResetEtag resets all changes to the "etag" field.
func (m *JobMutation) ResetEtag() {
	m.etag = nil
	delete(m.clearedFields, job.FieldEtag)
}

// SetLastModified sets the "last_modified" field.
func (m *JobMutation) SetLastModified(s string) {
	m.last_modified = &s
}

// LastModified returns the value of the "last_modified" field in the mutation.
func (m *JobMutation) LastModified() (r string, exists bool) {
	v := m.last_modified
	if v == nil {
		return
	}
	return *v, true
}

// OldLastModified returns the old "last_modified" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastModified(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastModified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastModified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastModified: %w", err)
	}
	return oldValue.LastModified, nil
}

// ClearLastModified clears the value of the "last_modified" field.
func (m *JobMutation) ClearLastModified() {
	m.last_modified = nil
	m.clearedFields[job.FieldLastModified] = struct{}{}
}

// LastModifiedCleared returns if the "last_modified" field was cleared in this mutation.
func (m *JobMutation) LastModifiedCleared() bool {
	_, ok := m.clearedFields[job.FieldLastModified]
	return ok
}

// ResetLastModified resets all changes to the "last_modified" field.
func (m *JobMutation) ResetLastModified() {
	m.last_modified = nil
	delete(m.clearedFields, job.FieldLastModified)
}

// SetScrapedAt sets the "scraped_at" field.
func (m *JobMutation) SetScrapedAt(t time.Time) {
	m.scraped_at = &t
}

// ScrapedAt returns the value of the "scraped_at" field in the mutation.
func (m *JobMutation) ScrapedAt() (r time.Time, exists bool) {
	v := m.scraped_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScrapedAt returns the old "scraped_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldScrapedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScrapedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScrapedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScrapedAt: %w", err)
	}
	return oldValue.ScrapedAt, nil
}

// ResetScrapedAt resets all changes to the "scraped_at" field.
func (m *JobMutation) ResetScrapedAt() {
	m.scraped_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCompany clears the "company" edge to the Organization entity.
func (m *JobMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[job.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Organization entity was cleared.
func (m *JobMutation) CompanyCleared() bool {
	return m.CompanyIDCleared() || m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *JobMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *JobMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// ClearBroker clears the "broker" edge to the Organization entity.
func (m *JobMutation) ClearBroker() {
	m.clearedbroker = true
	m.clearedFields[job.FieldBrokerID] = struct{}{}
}

// BrokerCleared reports if the "broker" edge to the Organization entity was cleared.
func (m *JobMutation) BrokerCleared() bool {
	return m.BrokerIDCleared() || m.clearedbroker
}

// BrokerIDs returns the "broker" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BrokerID instead. It exists only for internal usage by the builders.
func (m *JobMutation) BrokerIDs() (ids []uuid.UUID) {
	if id := m.broker; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBroker resets all changes to the "broker" edge.
func (m *JobMutation) ResetBroker() {
	m.broker = nil
	m.clearedbroker = false
}

// AddMatchIDs adds the "matches" edge to the Match entity by ids.
func (m *JobMutation) AddMatchIDs(ids ...uuid.UUID) {
	if m.matches == nil {
		m.matches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.matches[ids[i]] = struct{}{}
	}
}

// ClearMatches clears the "matches" edge to the Match entity.
func (m *JobMutation) ClearMatches() {
	m.clearedmatches = true
}

// MatchesCleared reports if the "matches" edge to the Match entity was cleared.
func (m *JobMutation) MatchesCleared() bool {
	return m.clearedmatches
}

// RemoveMatchIDs removes the "matches" edge to the Match entity by IDs.
func (m *JobMutation) RemoveMatchIDs(ids ...uuid.UUID) {
	if m.removedmatches == nil {
		m.removedmatches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.matches, ids[i])
		m.removedmatches[ids[i]] = struct{}{}
	}
}

// RemovedMatches returns the removed IDs of the "matches" edge to the Match entity.
func (m *JobMutation) RemovedMatchesIDs() (ids []uuid.UUID) {
	for id := range m.removedmatches {
		ids = append(ids, id)
	}
	return
}

// MatchesIDs returns the "matches" edge IDs in the mutation.
func (m *JobMutation) MatchesIDs() (ids []uuid.UUID) {
	for id := range m.matches {
		ids = append(ids, id)
	}
	return
}

// ResetMatches resets all changes to the "matches" edge.
func (m *JobMutation) ResetMatches() {
	m.matches = nil
	m.clearedmatches = false
	m.removedmatches = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.job_uid != nil {
		fields = append(fields, job.FieldJobUID)
	}
	if m.source != nil {
		fields = append(fields, job.FieldSource)
	}
	if m.title != nil {
		fields = append(fields, job.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, job.FieldDescription)
	}
	if m.skills != nil {
		fields = append(fields, job.FieldSkills)
	}
	if m.role != nil {
		fields = append(fields, job.FieldRole)
	}
	if m.seniority != nil {
		fields = append(fields, job.FieldSeniority)
	}
	if m.languages != nil {
		fields = append(fields, job.FieldLanguages)
	}
	if m.location_city != nil {
		fields = append(fields, job.FieldLocationCity)
	}
	if m.location_country != nil {
		fields = append(fields, job.FieldLocationCountry)
	}
	if m.onsite_mode != nil {
		fields = append(fields, job.FieldOnsiteMode)
	}
	if m.duration != nil {
		fields = append(fields, job.FieldDuration)
	}
	if m.start_date != nil {
		fields = append(fields, job.FieldStartDate)
	}
	if m.company != nil {
		fields = append(fields, job.FieldCompanyID)
	}
	if m.broker != nil {
		fields = append(fields, job.FieldBrokerID)
	}
	if m.url != nil {
		fields = append(fields, job.FieldURL)
	}
	if m.posted_at != nil {
		fields = append(fields, job.FieldPostedAt)
	}
	if m.etag != nil {
		fields = append(fields, job.FieldEtag)
	}
	if m.last_modified != nil {
		fields = append(fields, job.FieldLastModified)
	}
	if m.scraped_at != nil {
		fields = append(fields, job.FieldScrapedAt)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldJobUID:
		return m.JobUID()
	case job.FieldSource:
		return m.Source()
	case job.FieldTitle:
		return m.Title()
	case job.FieldDescription:
		return m.Description()
	case job.FieldSkills:
		return m.Skills()
	case job.FieldRole:
		return m.Role()
	case job.FieldSeniority:
		return m.Seniority()
	case job.FieldLanguages:
		return m.Languages()
	case job.FieldLocationCity:
		return m.LocationCity()
	case job.FieldLocationCountry:
		return m.LocationCountry()
	case job.FieldOnsiteMode:
		return m.OnsiteMode()
	case job.FieldDuration:
		return m.Duration()
	case job.FieldStartDate:
		return m.StartDate()
	case job.FieldCompanyID:
		return m.CompanyID()
	case job.FieldBrokerID:
		return m.BrokerID()
	case job.FieldURL:
		return m.URL()
	case job.FieldPostedAt:
		return m.PostedAt()
	case job.FieldEtag:
		return m.Etag()
	case job.FieldLastModified:
		return m.LastModified()
	case job.FieldScrapedAt:
		return m.ScrapedAt()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldJobUID:
		return m.OldJobUID(ctx)
	case job.FieldSource:
		return m.OldSource(ctx)
	case job.FieldTitle:
		return m.OldTitle(ctx)
	case job.FieldDescription:
		return m.OldDescription(ctx)
	case job.FieldSkills:
		return m.OldSkills(ctx)
	case job.FieldRole:
		return m.OldRole(ctx)
	case job.FieldSeniority:
		return m.OldSeniority(ctx)
	case job.FieldLanguages:
		return m.OldLanguages(ctx)
	case job.FieldLocationCity:
		return m.OldLocationCity(ctx)
	case job.FieldLocationCountry:
		return m.OldLocationCountry(ctx)
	case job.FieldOnsiteMode:
		return m.OldOnsiteMode(ctx)
	case job.FieldDuration:
		return m.OldDuration(ctx)
	case job.FieldStartDate:
		return m.OldStartDate(ctx)
	case job.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case job.FieldBrokerID:
		return m.OldBrokerID(ctx)
	case job.FieldURL:
		return m.OldURL(ctx)
	case job.FieldPostedAt:
		return m.OldPostedAt(ctx)
	case job.FieldEtag:
		return m.OldEtag(ctx)
	case job.FieldLastModified:
		return m.OldLastModified(ctx)
	case job.FieldScrapedAt:
		return m.OldScrapedAt(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldJobUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobUID(v)
		return nil
	case job.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case job.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case job.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case job.FieldSkills:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkills(v)
		return nil
	case job.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case job.FieldSeniority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeniority(v)
		return nil
	case job.FieldLanguages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguages(v)
		return nil
	case job.FieldLocationCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationCity(v)
		return nil
	case job.FieldLocationCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationCountry(v)
		return nil
	case job.FieldOnsiteMode:
		v, ok := value.(job.OnsiteMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnsiteMode(v)
		return nil
	case job.FieldDuration:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case job.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case job.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case job.FieldBrokerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrokerID(v)
		return nil
	case job.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case job.FieldPostedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostedAt(v)
		return nil
	case job.FieldEtag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEtag(v)
		return nil
	case job.FieldLastModified:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastModified(v)
		return nil
	case job.FieldScrapedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScrapedAt(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldDescription) {
		fields = append(fields, job.FieldDescription)
	}
	if m.FieldCleared(job.FieldSkills) {
		fields = append(fields, job.FieldSkills)
	}
	if m.FieldCleared(job.FieldRole) {
		fields = append(fields, job.FieldRole)
	}
	if m.FieldCleared(job.FieldSeniority) {
		fields = append(fields, job.FieldSeniority)
	}
	if m.FieldCleared(job.FieldLanguages) {
		fields = append(fields, job.FieldLanguages)
	}
	if m.FieldCleared(job.FieldLocationCity) {
		fields = append(fields, job.FieldLocationCity)
	}
	if m.FieldCleared(job.FieldLocationCountry) {
		fields = append(fields, job.FieldLocationCountry)
	}
	if m.FieldCleared(job.FieldOnsiteMode) {
		fields = append(fields, job.FieldOnsiteMode)
	}
	if m.FieldCleared(job.FieldDuration) {
		fields = append(fields, job.FieldDuration)
	}
	if m.FieldCleared(job.FieldStartDate) {
		fields = append(fields, job.FieldStartDate)
	}
	if m.FieldCleared(job.FieldCompanyID) {
		fields = append(fields, job.FieldCompanyID)
	}
	if m.FieldCleared(job.FieldBrokerID) {
		fields = append(fields, job.FieldBrokerID)
	}
	if m.FieldCleared(job.FieldPostedAt) {
		fields = append(fields, job.FieldPostedAt)
	}
	if m.FieldCleared(job.FieldEtag) {
		fields = append(fields, job.FieldEtag)
	}
	if m.FieldCleared(job.FieldLastModified) {
		fields = append(fields, job.FieldLastModified)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldDescription:
		m.ClearDescription()
		return nil
	case job.FieldSkills:
		m.ClearSkills()
		return nil
	case job.FieldRole:
		m.ClearRole()
		return nil
	case job.FieldSeniority:
		m.ClearSeniority()
		return nil
	case job.FieldLanguages:
		m.ClearLanguages()
		return nil
	case job.FieldLocationCity:
		m.ClearLocationCity()
		return nil
	case job.FieldLocationCountry:
		m.ClearLocationCountry()
		return nil
	case job.FieldOnsiteMode:
		m.ClearOnsiteMode()
		return nil
	case job.FieldDuration:
		m.ClearDuration()
		return nil
	case job.FieldStartDate:
		m.ClearStartDate()
		return nil
	case job.FieldCompanyID:
		m.ClearCompanyID()
		return nil
	case job.FieldBrokerID:
		m.ClearBrokerID()
		return nil
	case job.FieldPostedAt:
		m.ClearPostedAt()
		return nil
	case job.FieldEtag:
		m.ClearEtag()
		return nil
	case job.FieldLastModified:
		m.ClearLastModified()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldJobUID:
		m.ResetJobUID()
		return nil
	case job.FieldSource:
		m.ResetSource()
		return nil
	case job.FieldTitle:
		m.ResetTitle()
		return nil
	case job.FieldDescription:
		m.ResetDescription()
		return nil
	case job.FieldSkills:
		m.ResetSkills()
		return nil
	case job.FieldRole:
		m.ResetRole()
		return nil
	case job.FieldSeniority:
		m.ResetSeniority()
		return nil
	case job.FieldLanguages:
		m.ResetLanguages()
		return nil
	case job.FieldLocationCity:
		m.ResetLocationCity()
		return nil
	case job.FieldLocationCountry:
		m.ResetLocationCountry()
		return nil
	case job.FieldOnsiteMode:
		m.ResetOnsiteMode()
		return nil
	case job.FieldDuration:
		m.ResetDuration()
		return nil
	case job.FieldStartDate:
		m.ResetStartDate()
		return nil
	case job.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case job.FieldBrokerID:
		m.ResetBrokerID()
		return nil
	case job.FieldURL:
		m.ResetURL()
		return nil
	case job.FieldPostedAt:
		m.ResetPostedAt()
		return nil
	case job.FieldEtag:
		m.ResetEtag()
		return nil
	case job.FieldLastModified:
		m.ResetLastModified()
		return nil
	case job.FieldScrapedAt:
		m.ResetScrapedAt()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.company != nil {
		edges = append(edges, job.EdgeCompany)
	}
	if m.broker != nil {
		edges = append(edges, job.EdgeBroker)
	}
	if m.matches != nil {
		edges = append(edges, job.EdgeMatches)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case job.EdgeBroker:
		if id := m.broker; id != nil {
			return []ent.Value{*id}
		}
	case job.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.matches))
		for id := range m.matches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmatches != nil {
		edges = append(edges, job.EdgeMatches)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.removedmatches))
		for id := range m.removedmatches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcompany {
		edges = append(edges, job.EdgeCompany)
	}
	if m.clearedbroker {
		edges = append(edges, job.EdgeBroker)
	}
	if m.clearedmatches {
		edges = append(edges, job.EdgeMatches)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeCompany:
		return m.clearedcompany
	case job.EdgeBroker:
		return m.clearedbroker
	case job.EdgeMatches:
		return m.clearedmatches
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeCompany:
		m.ClearCompany()
		return nil
	case job.EdgeBroker:
		m.ClearBroker()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeCompany:
		m.ResetCompany()
		return nil
	case job.EdgeBroker:
		m.ResetBroker()
		return nil
	case job.EdgeMatches:
		m.ResetMatches()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// MatchMutation represents an operation that mutates the Match nodes in the graph.
type MatchMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	score            *float64
	addscore         *float64
	reasoning        *entity.Breakdown
	created_at       *time.Time
	clearedFields    map[string]struct{}
	job              *uuid.UUID
	clearedjob       bool
	candidate        *uuid.UUID
	clearedcandidate bool
	done             bool
	oldValue         func(context.Context) (*Match, error)
	predicates       []predicate.Match
}

var _ ent.Mutation = (*MatchMutation)(nil)

// matchOption allows management of the mutation configuration using functional options.
type matchOption func(*MatchMutation)

// newMatchMutation creates new mutation for the Match entity.
func newMatchMutation(c config, op Op, opts ...matchOption) *MatchMutation {
	m := &MatchMutation{
		config:        c,
		op:            op,
		typ:           TypeMatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMatchID sets the ID field of the mutation.
func withMatchID(id uuid.UUID) matchOption {
	return func(m *MatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Match
		)
		m.oldValue = func(ctx context.Context) (*Match, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Match.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMatch sets the old Match of the mutation.
func withMatch(node *Match) matchOption {
	return func(m *MatchMutation) {
		m.oldValue = func(context.Context) (*Match, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Match entities.
func (m *MatchMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MatchMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MatchMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Match.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *MatchMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *MatchMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *MatchMutation) ResetJobID() {
	m.job = nil
}

// SetCandidateID sets the "candidate_id" field.
func (m *MatchMutation) SetCandidateID(u uuid.UUID) {
	m.candidate = &u
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *MatchMutation) CandidateID() (r uuid.UUID, exists bool) {
	v := m.candidate
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldCandidateID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *MatchMutation) ResetCandidateID() {
	m.candidate = nil
}

// SetScore sets the "score" field.
func (m *MatchMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *MatchMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *MatchMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *MatchMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *MatchMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetReasoning sets the "reasoning" field.
func (m *MatchMutation) SetReasoning(e entity.Breakdown) {
	m.reasoning = &e
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *MatchMutation) Reasoning() (r entity.Breakdown, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldReasoning(ctx context.Context) (v entity.Breakdown, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *MatchMutation) ResetReasoning() {
	m.reasoning = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *MatchMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[match.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *MatchMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *MatchMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *MatchMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (m *MatchMutation) ClearCandidate() {
	m.clearedcandidate = true
	m.clearedFields[match.FieldCandidateID] = struct{}{}
}

// CandidateCleared reports if the "candidate" edge to the Candidate entity was cleared.
func (m *MatchMutation) CandidateCleared() bool {
	return m.clearedcandidate
}

// CandidateIDs returns the "candidate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CandidateID instead. It exists only for internal usage by the builders.
func (m *MatchMutation) CandidateIDs() (ids []uuid.UUID) {
	if id := m.candidate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCandidate resets all changes to the "candidate" edge.
func (m *MatchMutation) ResetCandidate() {
	m.candidate = nil
	m.clearedcandidate = false
}

// Where appends a list predicates to the MatchMutation builder.
func (m *MatchMutation) Where(ps ...predicate.Match) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Match, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Match).
func (m *MatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MatchMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.job != nil {
		fields = append(fields, match.FieldJobID)
	}
	if m.candidate != nil {
		fields = append(fields, match.FieldCandidateID)
	}
	if m.score != nil {
		fields = append(fields, match.FieldScore)
	}
	if m.reasoning != nil {
		fields = append(fields, match.FieldReasoning)
	}
	if m.created_at != nil {
		fields = append(fields, match.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case match.FieldJobID:
		return m.JobID()
	case match.FieldCandidateID:
		return m.CandidateID()
	case match.FieldScore:
		return m.Score()
	case match.FieldReasoning:
		return m.Reasoning()
	case match.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case match.FieldJobID:
		return m.OldJobID(ctx)
	case match.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case match.FieldScore:
		return m.OldScore(ctx)
	case match.FieldReasoning:
		return m.OldReasoning(ctx)
	case match.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Match field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case match.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case match.FieldCandidateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case match.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case match.FieldReasoning:
		v, ok := value.(entity.Breakdown)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case match.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Match field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MatchMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, match.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case match.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case match.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Match numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MatchMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MatchMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Match nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MatchMutation) ResetField(name string) error {
	switch name {
	case match.FieldJobID:
		m.ResetJobID()
		return nil
	case match.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case match.FieldScore:
		m.ResetScore()
		return nil
	case match.FieldReasoning:
		m.ResetReasoning()
		return nil
	case match.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Match field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, match.EdgeJob)
	}
	if m.candidate != nil {
		edges = append(edges, match.EdgeCandidate)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case match.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case match.EdgeCandidate:
		if id := m.candidate; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MatchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, match.EdgeJob)
	}
	if m.clearedcandidate {
		edges = append(edges, match.EdgeCandidate)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MatchMutation) EdgeCleared(name string) bool {
	switch name {
	case match.EdgeJob:
		return m.clearedjob
	case match.EdgeCandidate:
		return m.clearedcandidate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MatchMutation) ClearEdge(name string) error {
	switch name {
	case match.EdgeJob:
		m.ClearJob()
		return nil
	case match.EdgeCandidate:
		m.ClearCandidate()
		return nil
	}
	return fmt.Errorf("unknown Match unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MatchMutation) ResetEdge(name string) error {
	switch name {
	case match.EdgeJob:
		m.ResetJob()
		return nil
	case match.EdgeCandidate:
		m.ResetCandidate()
		return nil
	}
	return fmt.Errorf("unknown Match edge %s", name)
}

// OrganizationMutation represents an operation that mutates the Organization nodes in the graph.
type OrganizationMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	kind                *organization.Kind
	normalized_name     *string
	aliases             *[]string
	appendaliases       []string
	portal_url          *string
	needs_review        *bool
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	company_jobs        map[uuid.UUID]struct{}
	removedcompany_jobs map[uuid.UUID]struct{}
	clearedcompany_jobs bool
	broker_jobs         map[uuid.UUID]struct{}
	removedbroker_jobs  map[uuid.UUID]struct{}
	clearedbroker_jobs  bool
	done                bool
	oldValue            func(context.Context) (*Organization, error)
	predicates          []predicate.Organization
}

var _ ent.Mutation = (*OrganizationMutation)(nil)

// organizationOption allows management of the mutation configuration using functional options.
type organizationOption func(*OrganizationMutation)

// newOrganizationMutation creates new mutation for the Organization entity.
func newOrganizationMutation(c config, op Op, opts ...organizationOption) *OrganizationMutation {
	m := &OrganizationMutation{
		config:        c,
		op:            op,
		typ:           TypeOrganization,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrganizationID sets the ID field of the mutation.
func withOrganizationID(id uuid.UUID) organizationOption {
	return func(m *OrganizationMutation) {
		var (
			err   error
			once  sync.Once
			value *Organization
		)
		m.oldValue = func(ctx context.Context) (*Organization, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Organization.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrganization sets the old Organization of the mutation.
func withOrganization(node *Organization) organizationOption {
	return func(m *OrganizationMutation) {
		m.oldValue = func(context.Context) (*Organization, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrganizationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrganizationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Organization entities.
func (m *OrganizationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrganizationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrganizationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Organization.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *OrganizationMutation) SetKind(o organization.Kind) {
	m.kind = &o
}

// Kind returns the value of the "kind" field in the mutation.
func (m *OrganizationMutation) Kind() (r organization.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldKind(ctx context.Context) (v organization.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *OrganizationMutation) ResetKind() {
	m.kind = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *OrganizationMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *OrganizationMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *OrganizationMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetAliases sets the "aliases" field.
func (m *OrganizationMutation) SetAliases(s []string) {
	m.aliases = &s
	m.appendaliases = nil
}

// Aliases returns the value of the "aliases" field in the mutation.
func (m *OrganizationMutation) Aliases() (r []string, exists bool) {
	v := m.aliases
	if v == nil {
		return
	}
	return *v, true
}

// OldAliases returns the old "aliases" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldAliases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAliases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAliases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAliases: %w", err)
	}
	return oldValue.Aliases, nil
}

// AppendAliases adds s to the "aliases" field.
func (m *OrganizationMutation) AppendAliases(s []string) {
	m.appendaliases = append(m.appendaliases, s...)
}

// AppendedAliases returns the list of values that were appended to the "aliases" field in this mutation.
func (m *OrganizationMutation) AppendedAliases() ([]string, bool) {
	if len(m.appendaliases) == 0 {
		return nil, false
	}
	return m.appendaliases, true
}

// ResetAliases resets all changes to the "aliases" field.
func (m *OrganizationMutation) ResetAliases() {
	m.aliases = nil
	m.appendaliases = nil
}

// SetPortalURL sets the "portal_url" field.
func (m *OrganizationMutation) SetPortalURL(s string) {
	m.portal_url = &s
}

// PortalURL returns the value of the "portal_url" field in the mutation.
func (m *OrganizationMutation) PortalURL() (r string, exists bool) {
	v := m.portal_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPortalURL returns the old "portal_url" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldPortalURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPortalURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPortalURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPortalURL: %w", err)
	}
	return oldValue.PortalURL, nil
}

// ClearPortalURL clears the value of the "portal_url" field.
func (m *OrganizationMutation) ClearPortalURL() {
	m.portal_url = nil
	m.clearedFields[organization.FieldPortalURL] = struct{}{}
}

// PortalURLCleared returns if the "portal_url" field was cleared in this mutation.
func (m *OrganizationMutation) PortalURLCleared() bool {
	_, ok := m.clearedFields[organization.FieldPortalURL]
	return ok
}

// ResetPortalURL resets all changes to the "portal_url" field.
func (m *OrganizationMutation) ResetPortalURL() {
	m.portal_url = nil
	delete(m.clearedFields, organization.FieldPortalURL)
}

// SetNeedsReview sets the "needs_review" field.
func (m *OrganizationMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *OrganizationMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *OrganizationMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OrganizationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrganizationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OrganizationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OrganizationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OrganizationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OrganizationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddCompanyJobIDs adds the "company_jobs" edge to the Job entity by ids.
func (m *OrganizationMutation) AddCompanyJobIDs(ids ...uuid.UUID) {
	if m.company_jobs == nil {
		m.company_jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.company_jobs[ids[i]] = struct{}{}
	}
}

// ClearCompanyJobs clears the "company_jobs" edge to the Job entity.
func (m *OrganizationMutation) ClearCompanyJobs() {
	m.clearedcompany_jobs = true
}

// CompanyJobsCleared reports if the "company_jobs" edge to the Job entity was cleared.
func (m *OrganizationMutation) CompanyJobsCleared() bool {
	return m.clearedcompany_jobs
}

// RemoveCompanyJobIDs removes the "company_jobs" edge to the Job entity by IDs.
func (m *OrganizationMutation) RemoveCompanyJobIDs(ids ...uuid.UUID) {
	if m.removedcompany_jobs == nil {
		m.removedcompany_jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.company_jobs, ids[i])
		m.removedcompany_jobs[ids[i]] = struct{}{}
	}
}

// RemovedCompanyJobs returns the removed IDs of the "company_jobs" edge to the Job entity.
func (m *OrganizationMutation) RemovedCompanyJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedcompany_jobs {
		ids = append(ids, id)
	}
	return
}

// CompanyJobsIDs returns the "company_jobs" edge IDs in the mutation.
func (m *OrganizationMutation) CompanyJobsIDs() (ids []uuid.UUID) {
	for id := range m.company_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetCompanyJobs resets all changes to the "company_jobs" edge.
func (m *OrganizationMutation) ResetCompanyJobs() {
	m.company_jobs = nil
	m.clearedcompany_jobs = false
	m.removedcompany_jobs = nil
}

// AddBrokerJobIDs adds the "broker_jobs" edge to the Job entity by ids.
func (m *OrganizationMutation) AddBrokerJobIDs(ids ...uuid.UUID) {
	if m.broker_jobs == nil {
		m.broker_jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.broker_jobs[ids[i]] = struct{}{}
	}
}

// ClearBrokerJobs clears the "broker_jobs" edge to the Job entity.
func (m *OrganizationMutation) ClearBrokerJobs() {
	m.clearedbroker_jobs = true
}

// BrokerJobsCleared reports if the "broker_jobs" edge to the Job entity was cleared.
func (m *OrganizationMutation) BrokerJobsCleared() bool {
	return m.clearedbroker_jobs
}

// RemoveBrokerJobIDs removes the "broker_jobs" edge to the Job entity by IDs.
func (m *OrganizationMutation) RemoveBrokerJobIDs(ids ...uuid.UUID) {
	if m.removedbroker_jobs == nil {
		m.removedbroker_jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.broker_jobs, ids[i])
		m.removedbroker_jobs[ids[i]] = struct{}{}
	}
}

// RemovedBrokerJobs returns the removed IDs of the "broker_jobs" edge to the Job entity.
func (m *OrganizationMutation) RemovedBrokerJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedbroker_jobs {
		ids = append(ids, id)
	}
	return
}

// BrokerJobsIDs returns the "broker_jobs" edge IDs in the mutation.
func (m *OrganizationMutation) BrokerJobsIDs() (ids []uuid.UUID) {
	for id := range m.broker_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetBrokerJobs resets all changes to the "broker_jobs" edge.
func (m *OrganizationMutation) ResetBrokerJobs() {
	m.broker_jobs = nil
	m.clearedbroker_jobs = false
	m.removedbroker_jobs = nil
}

// Where appends a list predicates to the OrganizationMutation builder.
func (m *OrganizationMutation) Where(ps ...predicate.Organization) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrganizationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrganizationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Organization, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrganizationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrganizationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Organization).
func (m *OrganizationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrganizationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.kind != nil {
		fields = append(fields, organization.FieldKind)
	}
	if m.normalized_name != nil {
		fields = append(fields, organization.FieldNormalizedName)
	}
	if m.aliases != nil {
		fields = append(fields, organization.FieldAliases)
	}
	if m.portal_url != nil {
		fields = append(fields, organization.FieldPortalURL)
	}
	if m.needs_review != nil {
		fields = append(fields, organization.FieldNeedsReview)
	}
	if m.created_at != nil {
		fields = append(fields, organization.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, organization.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrganizationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case organization.FieldKind:
		return m.Kind()
	case organization.FieldNormalizedName:
		return m.NormalizedName()
	case organization.FieldAliases:
		return m.Aliases()
	case organization.FieldPortalURL:
		return m.PortalURL()
	case organization.FieldNeedsReview:
		return m.NeedsReview()
	case organization.FieldCreatedAt:
		return m.CreatedAt()
	case organization.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrganizationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case organization.FieldKind:
		return m.OldKind(ctx)
	case organization.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case organization.FieldAliases:
		return m.OldAliases(ctx)
	case organization.FieldPortalURL:
		return m.OldPortalURL(ctx)
	case organization.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case organization.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case organization.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Organization field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganizationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case organization.FieldKind:
		v, ok := value.(organization.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case organization.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case organization.FieldAliases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAliases(v)
		return nil
	case organization.FieldPortalURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPortalURL(v)
		return nil
	case organization.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case organization.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case organization.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Organization field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrganizationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrganizationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganizationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Organization numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrganizationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(organization.FieldPortalURL) {
		fields = append(fields, organization.FieldPortalURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrganizationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrganizationMutation) ClearField(name string) error {
	switch name {
	case organization.FieldPortalURL:
		m.ClearPortalURL()
		return nil
	}
	return fmt.Errorf("unknown Organization nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrganizationMutation) ResetField(name string) error {
	switch name {
	case organization.FieldKind:
		m.ResetKind()
		return nil
	case organization.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case organization.FieldAliases:
		m.ResetAliases()
		return nil
	case organization.FieldPortalURL:
		m.ResetPortalURL()
		return nil
	case organization.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case organization.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case organization.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Organization field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrganizationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.company_jobs != nil {
		edges = append(edges, organization.EdgeCompanyJobs)
	}
	if m.broker_jobs != nil {
		edges = append(edges, organization.EdgeBrokerJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrganizationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case organization.EdgeCompanyJobs:
		ids := make([]ent.Value, 0, len(m.company_jobs))
		for id := range m.company_jobs {
			ids = append(ids, id)
		}
		return ids
	case organization.EdgeBrokerJobs:
		ids := make([]ent.Value, 0, len(m.broker_jobs))
		for id := range m.broker_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrganizationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcompany_jobs != nil {
		edges = append(edges, organization.EdgeCompanyJobs)
	}
	if m.removedbroker_jobs != nil {
		edges = append(edges, organization.EdgeBrokerJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrganizationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case organization.EdgeCompanyJobs:
		ids := make([]ent.Value, 0, len(m.removedcompany_jobs))
		for id := range m.removedcompany_jobs {
			ids = append(ids, id)
		}
		return ids
	case organization.EdgeBrokerJobs:
		ids := make([]ent.Value, 0, len(m.removedbroker_jobs))
		for id := range m.removedbroker_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrganizationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcompany_jobs {
		edges = append(edges, organization.EdgeCompanyJobs)
	}
	if m.clearedbroker_jobs {
		edges = append(edges, organization.EdgeBrokerJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrganizationMutation) EdgeCleared(name string) bool {
	switch name {
	case organization.EdgeCompanyJobs:
		return m.clearedcompany_jobs
	case organization.EdgeBrokerJobs:
		return m.clearedbroker_jobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrganizationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Organization unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrganizationMutation) ResetEdge(name string) error {
	switch name {
	case organization.EdgeCompanyJobs:
		m.ResetCompanyJobs()
		return nil
	case organization.EdgeBrokerJobs:
		m.ResetBrokerJobs()
		return nil
	}
	return fmt.Errorf("unknown Organization edge %s", name)
}

// TermAliasMutation represents an operation that mutates the TermAlias nodes in the graph.
type TermAliasMutation struct {
	config
	op            Op
	typ           string
	id            *int
	kind          *termalias.Kind
	canonical     *string
	alias         *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TermAlias, error)
	predicates    []predicate.TermAlias
}

var _ ent.Mutation = (*TermAliasMutation)(nil)

// termaliasOption allows management of the mutation configuration using functional options.
type termaliasOption func(*TermAliasMutation)

// newTermAliasMutation creates new mutation for the TermAlias entity.
func newTermAliasMutation(c config, op Op, opts ...termaliasOption) *TermAliasMutation {
	m := &TermAliasMutation{
		config:        c,
		op:            op,
		typ:           TypeTermAlias,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTermAliasID sets the ID field of the mutation.
func withTermAliasID(id int) termaliasOption {
	return func(m *TermAliasMutation) {
		var (
			err   error
			once  sync.Once
			value *TermAlias
		)
		m.oldValue = func(ctx context.Context) (*TermAlias, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TermAlias.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTermAlias sets the old TermAlias of the mutation.
func withTermAlias(node *TermAlias) termaliasOption {
	return func(m *TermAliasMutation) {
		m.oldValue = func(context.Context) (*TermAlias, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TermAliasMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TermAliasMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TermAliasMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TermAliasMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TermAlias.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *TermAliasMutation) SetKind(t termalias.Kind) {
	m.kind = &t
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TermAliasMutation) Kind() (r termalias.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the TermAlias entity.
// If the TermAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermAliasMutation) OldKind(ctx context.Context) (v termalias.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TermAliasMutation) ResetKind() {
	m.kind = nil
}

// SetCanonical sets the "canonical" field.
func (m *TermAliasMutation) SetCanonical(s string) {
	m.canonical = &s
}

// Canonical returns the value of the "canonical" field in the mutation.
func (m *TermAliasMutation) Canonical() (r string, exists bool) {
	v := m.canonical
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonical returns the old "canonical" field's value of the TermAlias entity.
// If the TermAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermAliasMutation) OldCanonical(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonical is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonical requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonical: %w", err)
	}
	return oldValue.Canonical, nil
}

// ResetCanonical resets all changes to the "canonical" field.
func (m *TermAliasMutation) ResetCanonical() {
	m.canonical = nil
}

// SetAlias sets the "alias" field.
func (m *TermAliasMutation) SetAlias(s string) {
	m.alias = &s
}

// Alias returns the value of the "alias" field in the mutation.
func (m *TermAliasMutation) Alias() (r string, exists bool) {
	v := m.alias
	if v == nil {
		return
	}
	return *v, true
}

// OldAlias returns the old "alias" field's value of the TermAlias entity.
// If the TermAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermAliasMutation) OldAlias(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlias is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlias requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlias: %w", err)
	}
	return oldValue.Alias, nil
}

// ResetAlias resets all changes to the "alias" field.
func (m *TermAliasMutation) ResetAlias() {
	m.alias = nil
}

// Where appends a list predicates to the TermAliasMutation builder.
func (m *TermAliasMutation) Where(ps ...predicate.TermAlias) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TermAliasMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TermAliasMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TermAlias, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TermAliasMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TermAliasMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TermAlias).
func (m *TermAliasMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TermAliasMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.kind != nil {
		fields = append(fields, termalias.FieldKind)
	}
	if m.canonical != nil {
		fields = append(fields, termalias.FieldCanonical)
	}
	if m.alias != nil {
		fields = append(fields, termalias.FieldAlias)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TermAliasMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case termalias.FieldKind:
		return m.Kind()
	case termalias.FieldCanonical:
		return m.Canonical()
	case termalias.FieldAlias:
		return m.Alias()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TermAliasMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case termalias.FieldKind:
		return m.OldKind(ctx)
	case termalias.FieldCanonical:
		return m.OldCanonical(ctx)
	case termalias.FieldAlias:
		return m.OldAlias(ctx)
	}
	return nil, fmt.Errorf("unknown TermAlias field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TermAliasMutation) SetField(name string, value ent.Value) error {
	switch name {
	case termalias.FieldKind:
		v, ok := value.(termalias.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case termalias.FieldCanonical:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonical(v)
		return nil
	case termalias.FieldAlias:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlias(v)
		return nil
	}
	return fmt.Errorf("unknown TermAlias field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TermAliasMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TermAliasMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TermAliasMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TermAlias numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TermAliasMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TermAliasMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TermAliasMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TermAlias nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TermAliasMutation) ResetField(name string) error {
	switch name {
	case termalias.FieldKind:
		m.ResetKind()
		return nil
	case termalias.FieldCanonical:
		m.ResetCanonical()
		return nil
	case termalias.FieldAlias:
		m.ResetAlias()
		return nil
	}
	return fmt.Errorf("unknown TermAlias field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TermAliasMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TermAliasMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TermAliasMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TermAliasMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TermAliasMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TermAliasMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TermAliasMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TermAlias unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TermAliasMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TermAlias edge %s", name)
}
