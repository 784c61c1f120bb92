// Code generated by ent, DO NOT EDIT.

package candidate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the candidate type in the database.
	Label = "candidate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldSeniority holds the string denoting the seniority field in the database.
	FieldSeniority = "seniority"
	// FieldSkills holds the string denoting the skills field in the database.
	FieldSkills = "skills"
	// FieldLanguages holds the string denoting the languages field in the database.
	FieldLanguages = "languages"
	// FieldLocationCity holds the string denoting the location_city field in the database.
	FieldLocationCity = "location_city"
	// FieldLocationCountry holds the string denoting the location_country field in the database.
	FieldLocationCountry = "location_country"
	// FieldOnsiteMode holds the string denoting the onsite_mode field in the database.
	FieldOnsiteMode = "onsite_mode"
	// FieldAvailabilityFrom holds the string denoting the availability_from field in the database.
	FieldAvailabilityFrom = "availability_from"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldProfileURL holds the string denoting the profile_url field in the database.
	FieldProfileURL = "profile_url"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMatches holds the string denoting the matches edge name in mutations.
	EdgeMatches = "matches"
	// Table holds the table name of the candidate in the database.
	Table = "candidates"
	// MatchesTable is the table that holds the matches relation/edge.
	MatchesTable = "matches"
	// MatchesInverseTable is the table name for the Match entity.
	// It exists in this package in order to avoid circular dependency with the "match" package.
	MatchesInverseTable = "matches"
	// MatchesColumn is the table column denoting the matches relation/edge.
	MatchesColumn = "candidate_id"
)

// Columns holds all SQL columns for candidate fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldRole,
	FieldSeniority,
	FieldSkills,
	FieldLanguages,
	FieldLocationCity,
	FieldLocationCountry,
	FieldOnsiteMode,
	FieldAvailabilityFrom,
	FieldNotes,
	FieldProfileURL,
	FieldActive,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OnsiteMode defines the type for the "onsite_mode" enum field.
type OnsiteMode string

// OnsiteMode values.
const (
	OnsiteModeOnsite OnsiteMode = "onsite"
	OnsiteModeRemote OnsiteMode = "remote"
	OnsiteModeHybrid OnsiteMode = "hybrid"
)

func (om OnsiteMode) String() string {
	return string(om)
}

// OnsiteModeValidator is a validator for the "onsite_mode" field enum values. It is called by the builders before save.
func OnsiteModeValidator(om OnsiteMode) error {
	switch om {
	case OnsiteModeOnsite, OnsiteModeRemote, OnsiteModeHybrid:
		return nil
	default:
		return fmt.Errorf("candidate: invalid enum value for onsite_mode field: %q", om)
	}
}

// OrderOption defines the ordering options for the Candidate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// BySeniority orders the results by the seniority field.
func BySeniority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeniority, opts...).ToFunc()
}

// ByLocationCity orders the results by the location_city field.
func ByLocationCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationCity, opts...).ToFunc()
}

// ByLocationCountry orders the results by the location_country field.
func ByLocationCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationCountry, opts...).ToFunc()
}

// ByOnsiteMode orders the results by the onsite_mode field.
func ByOnsiteMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOnsiteMode, opts...).ToFunc()
}

// ByAvailabilityFrom orders the results by the availability_from field.
func ByAvailabilityFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailabilityFrom, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByProfileURL orders the results by the profile_url field.
func ByProfileURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileURL, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMatchesCount orders the results by matches count.
func ByMatchesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMatchesStep(), opts...)
	}
}

// ByMatches orders the results by matches terms.
func ByMatches(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMatchesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMatchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatchesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
	)
}
