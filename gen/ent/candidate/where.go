// Code generated by ent, DO NOT EDIT.

package candidate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/nordstaff/consultant-matcher/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldName, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldRole, v))
}

// Seniority applies equality check predicate on the "seniority" field. It's identical to SeniorityEQ.
func Seniority(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldSeniority, v))
}

// LocationCity applies equality check predicate on the "location_city" field. It's identical to LocationCityEQ.
func LocationCity(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldLocationCity, v))
}

// LocationCountry applies equality check predicate on the "location_country" field. It's identical to LocationCountryEQ.
func LocationCountry(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldLocationCountry, v))
}

// AvailabilityFrom applies equality check predicate on the "availability_from" field. It's identical to AvailabilityFromEQ.
func AvailabilityFrom(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldAvailabilityFrom, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldNotes, v))
}

// ProfileURL applies equality check predicate on the "profile_url" field. It's identical to ProfileURLEQ.
func ProfileURL(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldProfileURL, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldName, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldRole, v))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldRole))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldRole, v))
}

// SeniorityEQ applies the EQ predicate on the "seniority" field.
func SeniorityEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldSeniority, v))
}

// SeniorityNEQ applies the NEQ predicate on the "seniority" field.
func SeniorityNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldSeniority, v))
}

// SeniorityIn applies the In predicate on the "seniority" field.
func SeniorityIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldSeniority, vs...))
}

// SeniorityNotIn applies the NotIn predicate on the "seniority" field.
func SeniorityNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldSeniority, vs...))
}

// SeniorityGT applies the GT predicate on the "seniority" field.
func SeniorityGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldSeniority, v))
}

// SeniorityGTE applies the GTE predicate on the "seniority" field.
func SeniorityGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldSeniority, v))
}

// SeniorityLT applies the LT predicate on the "seniority" field.
func SeniorityLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldSeniority, v))
}

// SeniorityLTE applies the LTE predicate on the "seniority" field.
func SeniorityLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldSeniority, v))
}

// SeniorityContains applies the Contains predicate on the "seniority" field.
func SeniorityContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldSeniority, v))
}

// SeniorityHasPrefix applies the HasPrefix predicate on the "seniority" field.
func SeniorityHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldSeniority, v))
}

// SeniorityHasSuffix applies the HasSuffix predicate on the "seniority" field.
func SeniorityHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldSeniority, v))
}

// SeniorityIsNil applies the IsNil predicate on the "seniority" field.
func SeniorityIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldSeniority))
}

// SeniorityNotNil applies the NotNil predicate on the "seniority" field.
func SeniorityNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldSeniority))
}

// SeniorityEqualFold applies the EqualFold predicate on the "seniority" field.
func SeniorityEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldSeniority, v))
}

// SeniorityContainsFold applies the ContainsFold predicate on the "seniority" field.
func SeniorityContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldSeniority, v))
}

// SkillsIsNil applies the IsNil predicate on the "skills" field.
func SkillsIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldSkills))
}

// SkillsNotNil applies the NotNil predicate on the "skills" field.
func SkillsNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldSkills))
}

// LanguagesIsNil applies the IsNil predicate on the "languages" field.
func LanguagesIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldLanguages))
}

// LanguagesNotNil applies the NotNil predicate on the "languages" field.
func LanguagesNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldLanguages))
}

// LocationCityEQ applies the EQ predicate on the "location_city" field.
func LocationCityEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldLocationCity, v))
}

// LocationCityNEQ applies the NEQ predicate on the "location_city" field.
func LocationCityNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldLocationCity, v))
}

// LocationCityIn applies the In predicate on the "location_city" field.
func LocationCityIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldLocationCity, vs...))
}

// LocationCityNotIn applies the NotIn predicate on the "location_city" field.
func LocationCityNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldLocationCity, vs...))
}

// LocationCityGT applies the GT predicate on the "location_city" field.
func LocationCityGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldLocationCity, v))
}

// LocationCityGTE applies the GTE predicate on the "location_city" field.
func LocationCityGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldLocationCity, v))
}

// LocationCityLT applies the LT predicate on the "location_city" field.
func LocationCityLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldLocationCity, v))
}

// LocationCityLTE applies the LTE predicate on the "location_city" field.
func LocationCityLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldLocationCity, v))
}

// LocationCityContains applies the Contains predicate on the "location_city" field.
func LocationCityContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldLocationCity, v))
}

// LocationCityHasPrefix applies the HasPrefix predicate on the "location_city" field.
func LocationCityHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldLocationCity, v))
}

// LocationCityHasSuffix applies the HasSuffix predicate on the "location_city" field.
func LocationCityHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldLocationCity, v))
}

// LocationCityIsNil applies the IsNil predicate on the "location_city" field.
func LocationCityIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldLocationCity))
}

// LocationCityNotNil applies the NotNil predicate on the "location_city" field.
func LocationCityNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldLocationCity))
}

// LocationCityEqualFold applies the EqualFold predicate on the "location_city" field.
func LocationCityEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldLocationCity, v))
}

// LocationCityContainsFold applies the ContainsFold predicate on the "location_city" field.
func LocationCityContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldLocationCity, v))
}

// LocationCountryEQ applies the EQ predicate on the "location_country" field.
func LocationCountryEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldLocationCountry, v))
}

// LocationCountryNEQ applies the NEQ predicate on the "location_country" field.
func LocationCountryNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldLocationCountry, v))
}

// LocationCountryIn applies the In predicate on the "location_country" field.
func LocationCountryIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldLocationCountry, vs...))
}

// LocationCountryNotIn applies the NotIn predicate on the "location_country" field.
func LocationCountryNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldLocationCountry, vs...))
}

// LocationCountryGT applies the GT predicate on the "location_country" field.
func LocationCountryGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldLocationCountry, v))
}

// LocationCountryGTE applies the GTE predicate on the "location_country" field.
func LocationCountryGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldLocationCountry, v))
}

// LocationCountryLT applies the LT predicate on the "location_country" field.
func LocationCountryLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldLocationCountry, v))
}

// LocationCountryLTE applies the LTE predicate on the "location_country" field.
func LocationCountryLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldLocationCountry, v))
}

// LocationCountryContains applies the Contains predicate on the "location_country" field.
func LocationCountryContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldLocationCountry, v))
}

// LocationCountryHasPrefix applies the HasPrefix predicate on the "location_country" field.
func LocationCountryHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldLocationCountry, v))
}

// LocationCountryHasSuffix applies the HasSuffix predicate on the "location_country" field.
func LocationCountryHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldLocationCountry, v))
}

// LocationCountryIsNil applies the IsNil predicate on the "location_country" field.
func LocationCountryIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldLocationCountry))
}

// LocationCountryNotNil applies the NotNil predicate on the "location_country" field.
func LocationCountryNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldLocationCountry))
}

// LocationCountryEqualFold applies the EqualFold predicate on the "location_country" field.
func LocationCountryEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldLocationCountry, v))
}

// LocationCountryContainsFold applies the ContainsFold predicate on the "location_country" field.
func LocationCountryContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldLocationCountry, v))
}

// OnsiteModeEQ applies the EQ predicate on the "onsite_mode" field.
func OnsiteModeEQ(v OnsiteMode) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldOnsiteMode, v))
}

// OnsiteModeNEQ applies the NEQ predicate on the "onsite_mode" field.
func OnsiteModeNEQ(v OnsiteMode) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldOnsiteMode, v))
}

// OnsiteModeIn applies the In predicate on the "onsite_mode" field.
func OnsiteModeIn(vs ...OnsiteMode) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldOnsiteMode, vs...))
}

// OnsiteModeNotIn applies the NotIn predicate on the "onsite_mode" field.
func OnsiteModeNotIn(vs ...OnsiteMode) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldOnsiteMode, vs...))
}

// OnsiteModeIsNil applies the IsNil predicate on the "onsite_mode" field.
func OnsiteModeIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldOnsiteMode))
}

// OnsiteModeNotNil applies the NotNil predicate on the "onsite_mode" field.
func OnsiteModeNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldOnsiteMode))
}

// AvailabilityFromEQ applies the EQ predicate on the "availability_from" field.
func AvailabilityFromEQ(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldAvailabilityFrom, v))
}

// AvailabilityFromNEQ applies the NEQ predicate on the "availability_from" field.
func AvailabilityFromNEQ(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldAvailabilityFrom, v))
}

// AvailabilityFromIn applies the In predicate on the "availability_from" field.
func AvailabilityFromIn(vs ...time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldAvailabilityFrom, vs...))
}

// AvailabilityFromNotIn applies the NotIn predicate on the "availability_from" field.
func AvailabilityFromNotIn(vs ...time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldAvailabilityFrom, vs...))
}

// AvailabilityFromGT applies the GT predicate on the "availability_from" field.
func AvailabilityFromGT(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldAvailabilityFrom, v))
}

// AvailabilityFromGTE applies the GTE predicate on the "availability_from" field.
func AvailabilityFromGTE(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldAvailabilityFrom, v))
}

// AvailabilityFromLT applies the LT predicate on the "availability_from" field.
func AvailabilityFromLT(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldAvailabilityFrom, v))
}

// AvailabilityFromLTE applies the LTE predicate on the "availability_from" field.
func AvailabilityFromLTE(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldAvailabilityFrom, v))
}

// AvailabilityFromIsNil applies the IsNil predicate on the "availability_from" field.
func AvailabilityFromIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldAvailabilityFrom))
}

// AvailabilityFromNotNil applies the NotNil predicate on the "availability_from" field.
func AvailabilityFromNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldAvailabilityFrom))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldNotes, v))
}

// ProfileURLEQ applies the EQ predicate on the "profile_url" field.
func ProfileURLEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldProfileURL, v))
}

// ProfileURLNEQ applies the NEQ predicate on the "profile_url" field.
func ProfileURLNEQ(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldProfileURL, v))
}

// ProfileURLIn applies the In predicate on the "profile_url" field.
func ProfileURLIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldProfileURL, vs...))
}

// ProfileURLNotIn applies the NotIn predicate on the "profile_url" field.
func ProfileURLNotIn(vs ...string) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldProfileURL, vs...))
}

// ProfileURLGT applies the GT predicate on the "profile_url" field.
func ProfileURLGT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldProfileURL, v))
}

// ProfileURLGTE applies the GTE predicate on the "profile_url" field.
func ProfileURLGTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldProfileURL, v))
}

// ProfileURLLT applies the LT predicate on the "profile_url" field.
func ProfileURLLT(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldProfileURL, v))
}

// ProfileURLLTE applies the LTE predicate on the "profile_url" field.
func ProfileURLLTE(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldProfileURL, v))
}

// ProfileURLContains applies the Contains predicate on the "profile_url" field.
func ProfileURLContains(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContains(FieldProfileURL, v))
}

// ProfileURLHasPrefix applies the HasPrefix predicate on the "profile_url" field.
func ProfileURLHasPrefix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasPrefix(FieldProfileURL, v))
}

// ProfileURLHasSuffix applies the HasSuffix predicate on the "profile_url" field.
func ProfileURLHasSuffix(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldHasSuffix(FieldProfileURL, v))
}

// ProfileURLIsNil applies the IsNil predicate on the "profile_url" field.
func ProfileURLIsNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldIsNull(FieldProfileURL))
}

// ProfileURLNotNil applies the NotNil predicate on the "profile_url" field.
func ProfileURLNotNil() predicate.Candidate {
	return predicate.Candidate(sql.FieldNotNull(FieldProfileURL))
}

// ProfileURLEqualFold applies the EqualFold predicate on the "profile_url" field.
func ProfileURLEqualFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldEqualFold(FieldProfileURL, v))
}

// ProfileURLContainsFold applies the ContainsFold predicate on the "profile_url" field.
func ProfileURLContainsFold(v string) predicate.Candidate {
	return predicate.Candidate(sql.FieldContainsFold(FieldProfileURL, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Candidate {
	return predicate.Candidate(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMatches applies the HasEdge predicate on the "matches" edge.
func HasMatches() predicate.Candidate {
	return predicate.Candidate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatchesWith applies the HasEdge predicate on the "matches" edge with a given conditions (other predicates).
func HasMatchesWith(preds ...predicate.Match) predicate.Candidate {
	return predicate.Candidate(func(s *sql.Selector) {
		step := newMatchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Candidate) predicate.Candidate {
	return predicate.Candidate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Candidate) predicate.Candidate {
	return predicate.Candidate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Candidate) predicate.Candidate {
	return predicate.Candidate(sql.NotPredicates(p))
}
