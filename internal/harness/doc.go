// Package harness runs conformance scenarios against the conversion pipeline.
//
// A scenario is a YAML file holding a small CSV input (inline or as a file next
// to the scenario), optional configuration and output settings, and a list of
// assertions about the resulting graph. Each run is isolated: it loads its own
// configuration, builds a fresh graph, and snapshots it into a private
// in-memory store.
//
// Assertion types:
//   - observation_count: number of qb:Observation resources
//   - observation: an observation with the given key and count exists
//   - contains: a specific triple is present
//   - triple_count: total number of triples
//   - round_trip: the serialized output parses back to an equal graph
//   - store_round_trip: the snapshot read back from the store equals the graph
//
// A scenario may instead declare expect_error; it then passes only when the
// conversion fails with a message containing that text.
//
// Serialized output can also be compared with a golden file, see AssertGolden.
package harness
