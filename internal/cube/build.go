package cube

import (
	"log/slog"

	"github.com/roach88/carecube/internal/loader"
	"github.com/roach88/carecube/internal/rdf"
)

// Result is everything a build produced.
type Result struct {
	Graph  *rdf.Graph
	Schema Schema
	Groups []Group
}

// Build runs schema emission, aggregation and observation emission into a new graph.
func Build(records []loader.Record, opts Options) *Result {
	g := rdf.NewGraph()

	schema := BuildSchema(g, opts)
	schemaTriples := g.Len()

	groups := Aggregate(records)
	EmitObservations(g, schema.Dataset, groups)

	slog.Debug("cube built",
		"variant", opts.Variant.String(),
		"records", len(records),
		"observations", len(groups),
		"schema_triples", schemaTriples,
		"triples", g.Len(),
	)

	return &Result{Graph: g, Schema: schema, Groups: groups}
}
