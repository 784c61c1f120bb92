// Code generated by ent, DO NOT EDIT.

package termalias

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the termalias type in the database.
	Label = "term_alias"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldCanonical holds the string denoting the canonical field in the database.
	FieldCanonical = "canonical"
	// FieldAlias holds the string denoting the alias field in the database.
	FieldAlias = "alias"
	// Table holds the table name of the termalias in the database.
	Table = "term_aliases"
)

// Columns holds all SQL columns for termalias fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldCanonical,
	FieldAlias,
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
	// CanonicalValidator is a validator for the "canonical" field. It is called by the builders before save.
	CanonicalValidator func(string) error
	// AliasValidator is a validator for the "alias" field. It is called by the builders before save.
	AliasValidator func(string) error
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindSkill Kind = "skill"
	KindRole  Kind = "role"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindSkill, KindRole:
		return nil
	default:
		return fmt.Errorf("termalias: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the TermAlias queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByCanonical orders the results by the canonical field.
func ByCanonical(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonical, opts...).ToFunc()
}

// ByAlias orders the results by the alias field.
func ByAlias(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlias, opts...).ToFunc()
}
