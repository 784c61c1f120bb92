// Code generated by ent, DO NOT EDIT.

package job

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobUID holds the string denoting the job_uid field in the database.
	FieldJobUID = "job_uid"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSkills holds the string denoting the skills field in the database.
	FieldSkills = "skills"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldSeniority holds the string denoting the seniority field in the database.
	FieldSeniority = "seniority"
	// FieldLanguages holds the string denoting the languages field in the database.
	FieldLanguages = "languages"
	// FieldLocationCity holds the string denoting the location_city field in the database.
	FieldLocationCity = "location_city"
	// FieldLocationCountry holds the string denoting the location_country field in the database.
	FieldLocationCountry = "location_country"
	// FieldOnsiteMode holds the string denoting the onsite_mode field in the database.
	FieldOnsiteMode = "onsite_mode"
	// FieldDuration holds the string denoting the duration field in the database.
	FieldDuration = "duration"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldBrokerID holds the string denoting the broker_id field in the database.
	FieldBrokerID = "broker_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldPostedAt holds the string denoting the posted_at field in the database.
	FieldPostedAt = "posted_at"
	// FieldEtag holds the string denoting the etag field in the database.
	FieldEtag = "etag"
	// FieldLastModified holds the string denoting the last_modified field in the database.
	FieldLastModified = "last_modified"
	// FieldScrapedAt holds the string denoting the scraped_at field in the database.
	FieldScrapedAt = "scraped_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// EdgeBroker holds the string denoting the broker edge name in mutations.
	EdgeBroker = "broker"
	// EdgeMatches holds the string denoting the matches edge name in mutations.
	EdgeMatches = "matches"
	// Table holds the table name of the job in the database.
	Table = "jobs"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "jobs"
	// CompanyInverseTable is the table name for the Organization entity.
	// It exists in this package in order to avoid circular dependency with the "organization" package.
	CompanyInverseTable = "organizations"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
	// BrokerTable is the table that holds the broker relation/edge.
	BrokerTable = "jobs"
	// BrokerInverseTable is the table name for the Organization entity.
	// It exists in this package in order to avoid circular dependency with the "organization" package.
	BrokerInverseTable = "organizations"
	// BrokerColumn is the table column denoting the broker relation/edge.
	BrokerColumn = "broker_id"
	// MatchesTable is the table that holds the matches relation/edge.
	MatchesTable = "matches"
	// MatchesInverseTable is the table name for the Match entity.
	// It exists in this package in order to avoid circular dependency with the "match" package.
	MatchesInverseTable = "matches"
	// MatchesColumn is the table column denoting the matches relation/edge.
	MatchesColumn = "job_id"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldJobUID,
	FieldSource,
	FieldTitle,
	FieldDescription,
	FieldSkills,
	FieldRole,
	FieldSeniority,
	FieldLanguages,
	FieldLocationCity,
	FieldLocationCountry,
	FieldOnsiteMode,
	FieldDuration,
	FieldStartDate,
	FieldCompanyID,
	FieldBrokerID,
	FieldURL,
	FieldPostedAt,
	FieldEtag,
	FieldLastModified,
	FieldScrapedAt,
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
	// JobUIDValidator is a validator for the "job_uid" field. It is called by the builders before save.
	JobUIDValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// URLValidator is a validator for the "url" field. It is called by the builders before save.
	URLValidator func(string) error
	// DefaultScrapedAt holds the default value on creation for the "scraped_at" field.
	DefaultScrapedAt func() time.Time
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
		return fmt.Errorf("job: invalid enum value for onsite_mode field: %q", om)
	}
}

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobUID orders the results by the job_uid field.
func ByJobUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobUID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
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

// ByDuration orders the results by the duration field.
func ByDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuration, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByBrokerID orders the results by the broker_id field.
func ByBrokerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrokerID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByPostedAt orders the results by the posted_at field.
func ByPostedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostedAt, opts...).ToFunc()
}

// ByEtag orders the results by the etag field.
func ByEtag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEtag, opts...).ToFunc()
}

// ByLastModified orders the results by the last_modified field.
func ByLastModified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastModified, opts...).ToFunc()
}

// ByScrapedAt orders the results by the scraped_at field.
func ByScrapedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScrapedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}

// ByBrokerField orders the results by broker field.
func ByBrokerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBrokerStep(), sql.OrderByField(field, opts...))
	}
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
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
func newBrokerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BrokerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BrokerTable, BrokerColumn),
	)
}
func newMatchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatchesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
	)
}
