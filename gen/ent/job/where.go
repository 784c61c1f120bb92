// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/nordstaff/consultant-matcher/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// JobUID applies equality check predicate on the "job_uid" field. It's identical to JobUIDEQ.
func JobUID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldJobUID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSource, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDescription, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRole, v))
}

// Seniority applies equality check predicate on the "seniority" field. It's identical to SeniorityEQ.
func Seniority(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSeniority, v))
}

// LocationCity applies equality check predicate on the "location_city" field. It's identical to LocationCityEQ.
func LocationCity(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLocationCity, v))
}

// LocationCountry applies equality check predicate on the "location_country" field. It's identical to LocationCountryEQ.
func LocationCountry(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLocationCountry, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDuration, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartDate, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompanyID, v))
}

// BrokerID applies equality check predicate on the "broker_id" field. It's identical to BrokerIDEQ.
func BrokerID(v uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldBrokerID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldURL, v))
}

// PostedAt applies equality check predicate on the "posted_at" field. It's identical to PostedAtEQ.
func PostedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPostedAt, v))
}

// Etag applies equality check predicate on the "etag" field. It's identical to EtagEQ.
func Etag(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEtag, v))
}

// LastModified applies equality check predicate on the "last_modified" field. It's identical to LastModifiedEQ.
func LastModified(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastModified, v))
}

// ScrapedAt applies equality check predicate on the "scraped_at" field. It's identical to ScrapedAtEQ.
func ScrapedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldScrapedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobUIDEQ applies the EQ predicate on the "job_uid" field.
func JobUIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldJobUID, v))
}

// JobUIDNEQ applies the NEQ predicate on the "job_uid" field.
func JobUIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldJobUID, v))
}

// JobUIDIn applies the In predicate on the "job_uid" field.
func JobUIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldJobUID, vs...))
}

// JobUIDNotIn applies the NotIn predicate on the "job_uid" field.
func JobUIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldJobUID, vs...))
}

// JobUIDGT applies the GT predicate on the "job_uid" field.
func JobUIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldJobUID, v))
}

// JobUIDGTE applies the GTE predicate on the "job_uid" field.
func JobUIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldJobUID, v))
}

// JobUIDLT applies the LT predicate on the "job_uid" field.
func JobUIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldJobUID, v))
}

// JobUIDLTE applies the LTE predicate on the "job_uid" field.
func JobUIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldJobUID, v))
}

// JobUIDContains applies the Contains predicate on the "job_uid" field.
func JobUIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldJobUID, v))
}

// JobUIDHasPrefix applies the HasPrefix predicate on the "job_uid" field.
func JobUIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldJobUID, v))
}

// JobUIDHasSuffix applies the HasSuffix predicate on the "job_uid" field.
func JobUIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldJobUID, v))
}

// JobUIDEqualFold applies the EqualFold predicate on the "job_uid" field.
func JobUIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldJobUID, v))
}

// JobUIDContainsFold applies the ContainsFold predicate on the "job_uid" field.
func JobUIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldJobUID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldSource, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldDescription, v))
}

// SkillsIsNil applies the IsNil predicate on the "skills" field.
func SkillsIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldSkills))
}

// SkillsNotNil applies the NotNil predicate on the "skills" field.
func SkillsNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldSkills))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldRole, v))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldRole))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldRole, v))
}

// SeniorityEQ applies the EQ predicate on the "seniority" field.
func SeniorityEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSeniority, v))
}

// SeniorityNEQ applies the NEQ predicate on the "seniority" field.
func SeniorityNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSeniority, v))
}

// SeniorityIn applies the In predicate on the "seniority" field.
func SeniorityIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSeniority, vs...))
}

// SeniorityNotIn applies the NotIn predicate on the "seniority" field.
func SeniorityNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSeniority, vs...))
}

// SeniorityGT applies the GT predicate on the "seniority" field.
func SeniorityGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSeniority, v))
}

// SeniorityGTE applies the GTE predicate on the "seniority" field.
func SeniorityGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSeniority, v))
}

// SeniorityLT applies the LT predicate on the "seniority" field.
func SeniorityLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSeniority, v))
}

// SeniorityLTE applies the LTE predicate on the "seniority" field.
func SeniorityLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSeniority, v))
}

// SeniorityContains applies the Contains predicate on the "seniority" field.
func SeniorityContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldSeniority, v))
}

// SeniorityHasPrefix applies the HasPrefix predicate on the "seniority" field.
func SeniorityHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldSeniority, v))
}

// SeniorityHasSuffix applies the HasSuffix predicate on the "seniority" field.
func SeniorityHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldSeniority, v))
}

// SeniorityIsNil applies the IsNil predicate on the "seniority" field.
func SeniorityIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldSeniority))
}

// SeniorityNotNil applies the NotNil predicate on the "seniority" field.
func SeniorityNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldSeniority))
}

// SeniorityEqualFold applies the EqualFold predicate on the "seniority" field.
func SeniorityEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldSeniority, v))
}

// SeniorityContainsFold applies the ContainsFold predicate on the "seniority" field.
func SeniorityContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldSeniority, v))
}

// LanguagesIsNil applies the IsNil predicate on the "languages" field.
func LanguagesIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLanguages))
}

// LanguagesNotNil applies the NotNil predicate on the "languages" field.
func LanguagesNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLanguages))
}

// LocationCityEQ applies the EQ predicate on the "location_city" field.
func LocationCityEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLocationCity, v))
}

// LocationCityNEQ applies the NEQ predicate on the "location_city" field.
func LocationCityNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLocationCity, v))
}

// LocationCityIn applies the In predicate on the "location_city" field.
func LocationCityIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLocationCity, vs...))
}

// LocationCityNotIn applies the NotIn predicate on the "location_city" field.
func LocationCityNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLocationCity, vs...))
}

// LocationCityGT applies the GT predicate on the "location_city" field.
func LocationCityGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLocationCity, v))
}

// LocationCityGTE applies the GTE predicate on the "location_city" field.
func LocationCityGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLocationCity, v))
}

// LocationCityLT applies the LT predicate on the "location_city" field.
func LocationCityLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLocationCity, v))
}

// LocationCityLTE applies the LTE predicate on the "location_city" field.
func LocationCityLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLocationCity, v))
}

// LocationCityContains applies the Contains predicate on the "location_city" field.
func LocationCityContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldLocationCity, v))
}

// LocationCityHasPrefix applies the HasPrefix predicate on the "location_city" field.
func LocationCityHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldLocationCity, v))
}

// LocationCityHasSuffix applies the HasSuffix predicate on the "location_city" field.
func LocationCityHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldLocationCity, v))
}

// LocationCityIsNil applies the IsNil predicate on the "location_city" field.
func LocationCityIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLocationCity))
}

// LocationCityNotNil applies the NotNil predicate on the "location_city" field.
func LocationCityNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLocationCity))
}

// LocationCityEqualFold applies the EqualFold predicate on the "location_city" field.
func LocationCityEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldLocationCity, v))
}

// LocationCityContainsFold applies the ContainsFold predicate on the "location_city" field.
func LocationCityContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldLocationCity, v))
}

// LocationCountryEQ applies the EQ predicate on the "location_country" field.
func LocationCountryEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLocationCountry, v))
}

// LocationCountryNEQ applies the NEQ predicate on the "location_country" field.
func LocationCountryNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLocationCountry, v))
}

// LocationCountryIn applies the In predicate on the "location_country" field.
func LocationCountryIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLocationCountry, vs...))
}

// LocationCountryNotIn applies the NotIn predicate on the "location_country" field.
func LocationCountryNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLocationCountry, vs...))
}

// LocationCountryGT applies the GT predicate on the "location_country" field.
func LocationCountryGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLocationCountry, v))
}

// LocationCountryGTE applies the GTE predicate on the "location_country" field.
func LocationCountryGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLocationCountry, v))
}

// LocationCountryLT applies the LT predicate on the "location_country" field.
func LocationCountryLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLocationCountry, v))
}

// LocationCountryLTE applies the LTE predicate on the "location_country" field.
func LocationCountryLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLocationCountry, v))
}

// LocationCountryContains applies the Contains predicate on the "location_country" field.
func LocationCountryContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldLocationCountry, v))
}

// LocationCountryHasPrefix applies the HasPrefix predicate on the "location_country" field.
func LocationCountryHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldLocationCountry, v))
}

// LocationCountryHasSuffix applies the HasSuffix predicate on the "location_country" field.
func LocationCountryHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldLocationCountry, v))
}

// LocationCountryIsNil applies the IsNil predicate on the "location_country" field.
func LocationCountryIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLocationCountry))
}

// LocationCountryNotNil applies the NotNil predicate on the "location_country" field.
func LocationCountryNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLocationCountry))
}

// LocationCountryEqualFold applies the EqualFold predicate on the "location_country" field.
func LocationCountryEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldLocationCountry, v))
}

// LocationCountryContainsFold applies the ContainsFold predicate on the "location_country" field.
func LocationCountryContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldLocationCountry, v))
}

// OnsiteModeEQ applies the EQ predicate on the "onsite_mode" field.
func OnsiteModeEQ(v OnsiteMode) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldOnsiteMode, v))
}

// OnsiteModeNEQ applies the NEQ predicate on the "onsite_mode" field.
func OnsiteModeNEQ(v OnsiteMode) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldOnsiteMode, v))
}

// OnsiteModeIn applies the In predicate on the "onsite_mode" field.
func OnsiteModeIn(vs ...OnsiteMode) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldOnsiteMode, vs...))
}

// OnsiteModeNotIn applies the NotIn predicate on the "onsite_mode" field.
func OnsiteModeNotIn(vs ...OnsiteMode) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldOnsiteMode, vs...))
}

// OnsiteModeIsNil applies the IsNil predicate on the "onsite_mode" field.
func OnsiteModeIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldOnsiteMode))
}

// OnsiteModeNotNil applies the NotNil predicate on the "onsite_mode" field.
func OnsiteModeNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldOnsiteMode))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldDuration, v))
}

// DurationContains applies the Contains predicate on the "duration" field.
func DurationContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldDuration, v))
}

// DurationHasPrefix applies the HasPrefix predicate on the "duration" field.
func DurationHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldDuration, v))
}

// DurationHasSuffix applies the HasSuffix predicate on the "duration" field.
func DurationHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldDuration, v))
}

// DurationIsNil applies the IsNil predicate on the "duration" field.
func DurationIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldDuration))
}

// DurationNotNil applies the NotNil predicate on the "duration" field.
func DurationNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldDuration))
}

// DurationEqualFold applies the EqualFold predicate on the "duration" field.
func DurationEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldDuration, v))
}

// DurationContainsFold applies the ContainsFold predicate on the "duration" field.
func DurationContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldDuration, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStartDate, v))
}

// StartDateIsNil applies the IsNil predicate on the "start_date" field.
func StartDateIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldStartDate))
}

// StartDateNotNil applies the NotNil predicate on the "start_date" field.
func StartDateNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldStartDate))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDIsNil applies the IsNil predicate on the "company_id" field.
func CompanyIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldCompanyID))
}

// CompanyIDNotNil applies the NotNil predicate on the "company_id" field.
func CompanyIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldCompanyID))
}

// BrokerIDEQ applies the EQ predicate on the "broker_id" field.
func BrokerIDEQ(v uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldBrokerID, v))
}

// BrokerIDNEQ applies the NEQ predicate on the "broker_id" field.
func BrokerIDNEQ(v uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldBrokerID, v))
}

// BrokerIDIn applies the In predicate on the "broker_id" field.
func BrokerIDIn(vs ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldBrokerID, vs...))
}

// BrokerIDNotIn applies the NotIn predicate on the "broker_id" field.
func BrokerIDNotIn(vs ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldBrokerID, vs...))
}

// BrokerIDIsNil applies the IsNil predicate on the "broker_id" field.
func BrokerIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldBrokerID))
}

// BrokerIDNotNil applies the NotNil predicate on the "broker_id" field.
func BrokerIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldBrokerID))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldURL, v))
}

// PostedAtEQ applies the EQ predicate on the "posted_at" field.
func PostedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPostedAt, v))
}

// PostedAtNEQ applies the NEQ predicate on the "posted_at" field.
func PostedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldPostedAt, v))
}

// PostedAtIn applies the In predicate on the "posted_at" field.
func PostedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldPostedAt, vs...))
}

// PostedAtNotIn applies the NotIn predicate on the "posted_at" field.
func PostedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldPostedAt, vs...))
}

// PostedAtGT applies the GT predicate on the "posted_at" field.
func PostedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldPostedAt, v))
}

// PostedAtGTE applies the GTE predicate on the "posted_at" field.
func PostedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldPostedAt, v))
}

// PostedAtLT applies the LT predicate on the "posted_at" field.
func PostedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldPostedAt, v))
}

// PostedAtLTE applies the LTE predicate on the "posted_at" field.
func PostedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldPostedAt, v))
}

// PostedAtIsNil applies the IsNil predicate on the "posted_at" field.
func PostedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldPostedAt))
}

// PostedAtNotNil applies the NotNil predicate on the "posted_at" field.
func PostedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldPostedAt))
}

// EtagEQ applies the EQ predicate on the "etag" field.
func EtagEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEtag, v))
}

// EtagNEQ applies the NEQ predicate on the "etag" field.
func EtagNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldEtag, v))
}

// EtagIn applies the In predicate on the "etag" field.
func EtagIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldEtag, vs...))
}

// EtagNotIn applies the NotIn predicate on the "etag" field.
func EtagNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldEtag, vs...))
}

// EtagGT applies the GT predicate on the "etag" field.
func EtagGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldEtag, v))
}

// EtagGTE applies the GTE predicate on the "etag" field.
func EtagGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldEtag, v))
}

// EtagLT applies the LT predicate on the "etag" field.
func EtagLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldEtag, v))
}

// EtagLTE applies the LTE predicate on the "etag" field.
func EtagLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldEtag, v))
}

// EtagContains applies the Contains predicate on the "etag" field.
func EtagContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldEtag, v))
}

// EtagHasPrefix applies the HasPrefix predicate on the "etag" field.
func EtagHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldEtag, v))
}

// EtagHasSuffix applies the HasSuffix predicate on the "etag" field.
func EtagHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldEtag, v))
}

// EtagIsNil applies the IsNil predicate on the "etag" field.
func EtagIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldEtag))
}

// EtagNotNil applies the NotNil predicate on the "etag" field.
func EtagNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldEtag))
}

// EtagEqualFold applies the EqualFold predicate on the "etag" field.
func EtagEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldEtag, v))
}

// EtagContainsFold applies the ContainsFold predicate on the "etag" field.
func EtagContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldEtag, v))
}

// LastModifiedEQ applies the EQ predicate on the "last_modified" field.
func LastModifiedEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastModified, v))
}

// LastModifiedNEQ applies the NEQ predicate on the "last_modified" field.
func LastModifiedNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLastModified, v))
}

// LastModifiedIn applies the In predicate on the "last_modified" field.
func LastModifiedIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLastModified, vs...))
}

// LastModifiedNotIn applies the NotIn predicate on the "last_modified" field.
func LastModifiedNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLastModified, vs...))
}

// LastModifiedGT applies the GT predicate on the "last_modified" field.
func LastModifiedGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLastModified, v))
}

// LastModifiedGTE applies the GTE predicate on the "last_modified" field.
func LastModifiedGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLastModified, v))
}

// LastModifiedLT applies the LT predicate on the "last_modified" field.
func LastModifiedLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLastModified, v))
}

// LastModifiedLTE applies the LTE predicate on the "last_modified" field.
func LastModifiedLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLastModified, v))
}

// LastModifiedContains applies the Contains predicate on the "last_modified" field.
func LastModifiedContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldLastModified, v))
}

// LastModifiedHasPrefix applies the HasPrefix predicate on the "last_modified" field.
func LastModifiedHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldLastModified, v))
}

// LastModifiedHasSuffix applies the HasSuffix predicate on the "last_modified" field.
func LastModifiedHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldLastModified, v))
}

// LastModifiedIsNil applies the IsNil predicate on the "last_modified" field.
func LastModifiedIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLastModified))
}

// LastModifiedNotNil applies the NotNil predicate on the "last_modified" field.
func LastModifiedNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLastModified))
}

// LastModifiedEqualFold applies the EqualFold predicate on the "last_modified" field.
func LastModifiedEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldLastModified, v))
}

// LastModifiedContainsFold applies the ContainsFold predicate on the "last_modified" field.
func LastModifiedContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldLastModified, v))
}

// ScrapedAtEQ applies the EQ predicate on the "scraped_at" field.
func ScrapedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldScrapedAt, v))
}

// ScrapedAtNEQ applies the NEQ predicate on the "scraped_at" field.
func ScrapedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldScrapedAt, v))
}

// ScrapedAtIn applies the In predicate on the "scraped_at" field.
func ScrapedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldScrapedAt, vs...))
}

// ScrapedAtNotIn applies the NotIn predicate on the "scraped_at" field.
func ScrapedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldScrapedAt, vs...))
}

// ScrapedAtGT applies the GT predicate on the "scraped_at" field.
func ScrapedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldScrapedAt, v))
}

// ScrapedAtGTE applies the GTE predicate on the "scraped_at" field.
func ScrapedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldScrapedAt, v))
}

// ScrapedAtLT applies the LT predicate on the "scraped_at" field.
func ScrapedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldScrapedAt, v))
}

// ScrapedAtLTE applies the LTE predicate on the "scraped_at" field.
func ScrapedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldScrapedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Organization) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBroker applies the HasEdge predicate on the "broker" edge.
func HasBroker() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BrokerTable, BrokerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBrokerWith applies the HasEdge predicate on the "broker" edge with a given conditions (other predicates).
func HasBrokerWith(preds ...predicate.Organization) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newBrokerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMatches applies the HasEdge predicate on the "matches" edge.
func HasMatches() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatchesWith applies the HasEdge predicate on the "matches" edge with a given conditions (other predicates).
func HasMatchesWith(preds ...predicate.Match) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newMatchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
