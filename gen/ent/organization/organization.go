// Code generated by ent, DO NOT EDIT.

package organization

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the organization type in the database.
	Label = "organization"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldNormalizedName holds the string denoting the normalized_name field in the database.
	FieldNormalizedName = "normalized_name"
	// FieldAliases holds the string denoting the aliases field in the database.
	FieldAliases = "aliases"
	// FieldPortalURL holds the string denoting the portal_url field in the database.
	FieldPortalURL = "portal_url"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCompanyJobs holds the string denoting the company_jobs edge name in mutations.
	EdgeCompanyJobs = "company_jobs"
	// EdgeBrokerJobs holds the string denoting the broker_jobs edge name in mutations.
	EdgeBrokerJobs = "broker_jobs"
	// Table holds the table name of the organization in the database.
	Table = "organizations"
	// CompanyJobsTable is the table that holds the company_jobs relation/edge.
	CompanyJobsTable = "jobs"
	// CompanyJobsInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	CompanyJobsInverseTable = "jobs"
	// CompanyJobsColumn is the table column denoting the company_jobs relation/edge.
	CompanyJobsColumn = "company_id"
	// BrokerJobsTable is the table that holds the broker_jobs relation/edge.
	BrokerJobsTable = "jobs"
	// BrokerJobsInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	BrokerJobsInverseTable = "jobs"
	// BrokerJobsColumn is the table column denoting the broker_jobs relation/edge.
	BrokerJobsColumn = "broker_id"
)

// Columns holds all SQL columns for organization fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldNormalizedName,
	FieldAliases,
	FieldPortalURL,
	FieldNeedsReview,
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
	// NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	NormalizedNameValidator func(string) error
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindCompany Kind = "company"
	KindBroker  Kind = "broker"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindCompany, KindBroker:
		return nil
	default:
		return fmt.Errorf("organization: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the Organization queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByNormalizedName orders the results by the normalized_name field.
func ByNormalizedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedName, opts...).ToFunc()
}

// ByPortalURL orders the results by the portal_url field.
func ByPortalURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPortalURL, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompanyJobsCount orders the results by company_jobs count.
func ByCompanyJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCompanyJobsStep(), opts...)
	}
}

// ByCompanyJobs orders the results by company_jobs terms.
func ByCompanyJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBrokerJobsCount orders the results by broker_jobs count.
func ByBrokerJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBrokerJobsStep(), opts...)
	}
}

// ByBrokerJobs orders the results by broker_jobs terms.
func ByBrokerJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBrokerJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCompanyJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyJobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CompanyJobsTable, CompanyJobsColumn),
	)
}
func newBrokerJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BrokerJobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BrokerJobsTable, BrokerJobsColumn),
	)
}
