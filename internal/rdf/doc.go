// Package rdf provides the in-memory triple collector used to build the data cube,
// plus its serializers.
//
// A Graph is append-only with set semantics: adding a triple that is already
// present is a no-op. Triples are kept in first-insertion order so that
// serialization is byte-for-byte reproducible for a fixed build.
//
// Serialization:
//   - Turtle: prefixed names, subjects grouped, used prefixes only (sorted)
//   - N-Triples: one triple per line, written through github.com/knakk/rdf
//
// Parse reads either format back through github.com/knakk/rdf so callers can
// verify that what was written round-trips to the same triple set.
package rdf
