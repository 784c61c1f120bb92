// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Candidate is the predicate function for candidate builders.
type Candidate func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Match is the predicate function for match builders.
type Match func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// TermAlias is the predicate function for termalias builders.
type TermAlias func(*sql.Selector)
