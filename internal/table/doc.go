// Package table implements the associative container used by the built-in
// library: an insertion-ordered mapping with raw access, an optional
// fallback resolver consulted on misses, a border-based length and two
// traversal forms.
//
// # Lookup
//
// Get performs an explicit two-stage lookup. The raw entry is returned when
// present; otherwise the configured Resolver (if any) is asked once. There
// is no inheritance chain: a Delegate resolver reads its source table raw.
//
// # Traversal
//
// All and Next visit every live entry in insertion order. Sequence is the
// enumerated traversal: it yields (1, t[1]), (2, t[2]), ... and stops at the
// first missing index.
package table
