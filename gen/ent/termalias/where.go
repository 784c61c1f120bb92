// Code generated by ent, DO NOT EDIT.

package termalias

import (
	"entgo.io/ent/dialect/sql"
	"github.com/nordstaff/consultant-matcher/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldLTE(FieldID, id))
}

// Canonical applies equality check predicate on the "canonical" field. It's identical to CanonicalEQ.
func Canonical(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldEQ(FieldCanonical, v))
}

// Alias applies equality check predicate on the "alias" field. It's identical to AliasEQ.
func Alias(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldEQ(FieldAlias, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldNotIn(FieldKind, vs...))
}

// CanonicalEQ applies the EQ predicate on the "canonical" field.
func CanonicalEQ(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldEQ(FieldCanonical, v))
}

// CanonicalNEQ applies the NEQ predicate on the "canonical" field.
func CanonicalNEQ(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldNEQ(FieldCanonical, v))
}

// CanonicalIn applies the In predicate on the "canonical" field.
func CanonicalIn(vs ...string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldIn(FieldCanonical, vs...))
}

// CanonicalNotIn applies the NotIn predicate on the "canonical" field.
func CanonicalNotIn(vs ...string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldNotIn(FieldCanonical, vs...))
}

// CanonicalGT applies the GT predicate on the "canonical" field.
func CanonicalGT(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldGT(FieldCanonical, v))
}

// CanonicalGTE applies the GTE predicate on the "canonical" field.
func CanonicalGTE(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldGTE(FieldCanonical, v))
}

// CanonicalLT applies the LT predicate on the "canonical" field.
func CanonicalLT(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldLT(FieldCanonical, v))
}

// CanonicalLTE applies the LTE predicate on the "canonical" field.
func CanonicalLTE(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldLTE(FieldCanonical, v))
}

// CanonicalContains applies the Contains predicate on the "canonical" field.
func CanonicalContains(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldContains(FieldCanonical, v))
}

// CanonicalHasPrefix applies the HasPrefix predicate on the "canonical" field.
func CanonicalHasPrefix(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldHasPrefix(FieldCanonical, v))
}

// CanonicalHasSuffix applies the HasSuffix predicate on the "canonical" field.
func CanonicalHasSuffix(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldHasSuffix(FieldCanonical, v))
}

// CanonicalEqualFold applies the EqualFold predicate on the "canonical" field.
func CanonicalEqualFold(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldEqualFold(FieldCanonical, v))
}

// CanonicalContainsFold applies the ContainsFold predicate on the "canonical" field.
func CanonicalContainsFold(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldContainsFold(FieldCanonical, v))
}

// AliasEQ applies the EQ predicate on the "alias" field.
func AliasEQ(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldEQ(FieldAlias, v))
}

// AliasNEQ applies the NEQ predicate on the "alias" field.
func AliasNEQ(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldNEQ(FieldAlias, v))
}

// AliasIn applies the In predicate on the "alias" field.
func AliasIn(vs ...string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldIn(FieldAlias, vs...))
}

// AliasNotIn applies the NotIn predicate on the "alias" field.
func AliasNotIn(vs ...string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldNotIn(FieldAlias, vs...))
}

// AliasGT applies the GT predicate on the "alias" field.
func AliasGT(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldGT(FieldAlias, v))
}

// AliasGTE applies the GTE predicate on the "alias" field.
func AliasGTE(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldGTE(FieldAlias, v))
}

// AliasLT applies the LT predicate on the "alias" field.
func AliasLT(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldLT(FieldAlias, v))
}

// AliasLTE applies the LTE predicate on the "alias" field.
func AliasLTE(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldLTE(FieldAlias, v))
}

// AliasContains applies the Contains predicate on the "alias" field.
func AliasContains(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldContains(FieldAlias, v))
}

// AliasHasPrefix applies the HasPrefix predicate on the "alias" field.
func AliasHasPrefix(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldHasPrefix(FieldAlias, v))
}

// AliasHasSuffix applies the HasSuffix predicate on the "alias" field.
func AliasHasSuffix(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldHasSuffix(FieldAlias, v))
}

// AliasEqualFold applies the EqualFold predicate on the "alias" field.
func AliasEqualFold(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldEqualFold(FieldAlias, v))
}

// AliasContainsFold applies the ContainsFold predicate on the "alias" field.
func AliasContainsFold(v string) predicate.TermAlias {
	return predicate.TermAlias(sql.FieldContainsFold(FieldAlias, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TermAlias) predicate.TermAlias {
	return predicate.TermAlias(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TermAlias) predicate.TermAlias {
	return predicate.TermAlias(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TermAlias) predicate.TermAlias {
	return predicate.TermAlias(sql.NotPredicates(p))
}
