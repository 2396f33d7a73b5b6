// Package cube turns care-provider records into an RDF Data Cube graph.
//
// The build is one sequential pass into a single rdf.Graph:
//
//  1. BuildSchema emits the input-independent part: three dimensions
//     (county, region, field of care), one measure (number of care providers),
//     the data structure definition and the dataset resource.
//  2. Aggregate counts records per exact (county, region, field of care) key.
//  3. EmitObservations writes one qb:Observation per group.
//
// Groups are ordered by first appearance in the input, and observation
// identifiers are assigned from that order, so a fixed input always yields the
// same identifiers. Reordering the input rows can change them.
package cube
