/*
Package hstore – function catalog.

Typed wrappers for the engine-side hstore functions. Constructing a map
from a composite record and the two-dimensional array conversion are out
of scope: both need record introspection or multi-dimensional arrays that
this catalog's type model does not carry.
*/
package hstore

// FromArray renders hstore(arr): builds a map from an array of
// alternating key/value elements.
func FromArray(arr TextArrayExpr) HstoreExpr {
	return HstoreExpr{callNode{name: "hstore", args: []node{arr.n}}}
}

// FromKVArrays renders hstore(keys, values): positional key and value
// arrays zipped by index. A length mismatch is an engine-side error.
func FromKVArrays(keys, values TextArrayExpr) HstoreExpr {
	return HstoreExpr{callNode{name: "hstore", args: []node{keys.n, values.n}}}
}

// FromKV renders hstore(key, value): a single-pair map.
func FromKV(key, value TextExpr) HstoreExpr {
	return HstoreExpr{callNode{name: "hstore", args: []node{key.n, value.n}}}
}

// ToArray renders hstore_to_array(h): alternating keys and values.
func ToArray(h HstoreExpr) TextArrayExpr {
	return TextArrayExpr{callNode{name: "hstore_to_array", args: []node{h.n}}}
}

// ToKeys renders akeys(h): the keys as an array.
func ToKeys(h HstoreExpr) TextArrayExpr {
	return TextArrayExpr{callNode{name: "akeys", args: []node{h.n}}}
}

// ToValues renders avals(h): the values as an array.
func ToValues(h HstoreExpr) TextArrayExpr {
	return TextArrayExpr{callNode{name: "avals", args: []node{h.n}}}
}

// Slice renders slice(h, keys): the projection of h onto the listed keys.
// Missing keys are silently omitted.
func Slice(h HstoreExpr, keys TextArrayExpr) HstoreExpr {
	return HstoreExpr{callNode{name: "slice", args: []node{h.n, keys.n}}}
}

// Exist renders exist(h, key): true iff key is present.
func Exist(h HstoreExpr, key TextExpr) BoolExpr {
	return BoolExpr{callNode{name: "exist", args: []node{h.n, key.n}}}
}

// Defined renders defined(h, key): true iff key is present and its value
// is not NULL.
func Defined(h HstoreExpr, key TextExpr) BoolExpr {
	return BoolExpr{callNode{name: "defined", args: []node{h.n, key.n}}}
}

// DeleteKey renders delete(h, key).
func DeleteKey(h HstoreExpr, key TextExpr) HstoreExpr {
	return HstoreExpr{callNode{name: "delete", args: []node{h.n, key.n}}}
}

// DeleteKeys renders delete(h, keys): drops every listed key.
func DeleteKeys(h HstoreExpr, keys TextArrayExpr) HstoreExpr {
	return HstoreExpr{callNode{name: "delete", args: []node{h.n, keys.n}}}
}

// DeleteMatching renders delete(h, other): drops entries whose key and
// value both match an entry of other.
func DeleteMatching(h HstoreExpr, other HstoreExpr) HstoreExpr {
	return HstoreExpr{callNode{name: "delete", args: []node{h.n, other.n}}}
}
