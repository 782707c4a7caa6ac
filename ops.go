/*
Package hstore – operator catalog.

Chainable builders for the hstore operators, one method per engine token.
The containment pair follows the engine's semantics, not the symbol
shapes: Contains renders <@ (every entry of the receiver appears in the
operand) and IsContainedBy renders @>.
*/
package hstore

// GetValue renders h -> key: the value for key, or NULL if absent.
func (e HstoreExpr) GetValue(key TextExpr) TextExpr {
	return TextExpr{infixNode{op: "->", left: e.n, right: key.n}}
}

// GetArray renders h -> keys: per-key values in input key order, NULL
// where absent.
func (e HstoreExpr) GetArray(keys TextArrayExpr) TextArrayExpr {
	return TextArrayExpr{infixNode{op: "->", left: e.n, right: keys.n}}
}

// Concat renders h || other. On key collision the right operand wins.
func (e HstoreExpr) Concat(other HstoreExpr) HstoreExpr {
	return HstoreExpr{infixNode{op: "||", left: e.n, right: other.n}}
}

// HasKey renders h ? key.
func (e HstoreExpr) HasKey(key TextExpr) BoolExpr {
	return BoolExpr{infixNode{op: "?", left: e.n, right: key.n}}
}

// HasAllKeys renders h ?& keys: true iff every listed key is present.
func (e HstoreExpr) HasAllKeys(keys TextArrayExpr) BoolExpr {
	return BoolExpr{infixNode{op: "?&", left: e.n, right: keys.n}}
}

// HasAnyKeys renders h ?| keys: true iff at least one listed key is
// present.
func (e HstoreExpr) HasAnyKeys(keys TextArrayExpr) BoolExpr {
	return BoolExpr{infixNode{op: "?|", left: e.n, right: keys.n}}
}

// Contains renders h <@ other: true iff every entry of h is present, with
// an equal value, in other.
func (e HstoreExpr) Contains(other HstoreExpr) BoolExpr {
	return BoolExpr{infixNode{op: "<@", left: e.n, right: other.n}}
}

// IsContainedBy renders h @> other: true iff every entry of other is
// present, with an equal value, in h.
func (e HstoreExpr) IsContainedBy(other HstoreExpr) BoolExpr {
	return BoolExpr{infixNode{op: "@>", left: e.n, right: other.n}}
}

// RemoveKey renders h - key.
func (e HstoreExpr) RemoveKey(key TextExpr) HstoreExpr {
	return HstoreExpr{infixNode{op: "-", left: e.n, right: key.n}}
}

// RemoveKeys renders h - keys: drops every listed key.
func (e HstoreExpr) RemoveKeys(keys TextArrayExpr) HstoreExpr {
	return HstoreExpr{infixNode{op: "-", left: e.n, right: keys.n}}
}

// Difference renders h - other: drops entries whose key and value both
// match an entry of other.
func (e HstoreExpr) Difference(other HstoreExpr) HstoreExpr {
	return HstoreExpr{infixNode{op: "-", left: e.n, right: other.n}}
}

// ToFlatArray renders %% h: alternating key, value, key, value… in
// engine-defined order.
func (e HstoreExpr) ToFlatArray() TextArrayExpr {
	return TextArrayExpr{prefixNode{op: "%%", operand: e.n}}
}
