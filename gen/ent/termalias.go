// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nordstaff/consultant-matcher/gen/ent/termalias"
)

// TermAlias is the model entity for the TermAlias schema.
type TermAlias struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind termalias.Kind `json:"kind,omitempty"`
	// Canonical holds the value of the "canonical" field.
	Canonical string `json:"canonical,omitempty"`
	// Alias holds the value of the "alias" field.
	Alias        string `json:"alias,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TermAlias) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case termalias.FieldID:
			values[i] = new(sql.NullInt64)
		case termalias.FieldKind, termalias.FieldCanonical, termalias.FieldAlias:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TermAlias fields.
func (_m *TermAlias) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case termalias.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case termalias.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = termalias.Kind(value.String)
			}
		case termalias.FieldCanonical:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical", values[i])
			} else if value.Valid {
				_m.Canonical = value.String
			}
		case termalias.FieldAlias:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alias", values[i])
			} else if value.Valid {
				_m.Alias = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TermAlias.
// This includes values selected through modifiers, order, etc.
func (_m *TermAlias) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TermAlias.
// Note that you need to call TermAlias.Unwrap() before calling this method if this TermAlias
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TermAlias) Update() *TermAliasUpdateOne {
	return NewTermAliasClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TermAlias entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TermAlias) Unwrap() *TermAlias {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TermAlias is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TermAlias) String() string {
	var builder strings.Builder
	builder.WriteString("TermAlias(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("canonical=")
	builder.WriteString(_m.Canonical)
	builder.WriteString(", ")
	builder.WriteString("alias=")
	builder.WriteString(_m.Alias)
	builder.WriteByte(')')
	return builder.String()
}

// TermAliasSlice is a parsable slice of TermAlias.
type TermAliasSlice []*TermAlias
