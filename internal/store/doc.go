// Package store persists built data cube graphs in SQLite.
//
// Each graph is stored under its dataset IRI. Writing a dataset replaces any
// earlier snapshot of it in one transaction, so readers see either the old
// graph or the new one, never a mix.
//
// Tables:
//   - graphs: one row per dataset with its triple count and content hash
//   - triples: the triples of each dataset, in emission order (seq)
//
// Terms are stored by kind (iri, blank, literal) with literal language and
// datatype in separate columns, so a graph read back is equal term for term
// to the graph written.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
