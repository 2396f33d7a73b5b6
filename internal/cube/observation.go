package cube

import (
	"fmt"

	"github.com/roach88/carecube/internal/rdf"
	"github.com/roach88/carecube/internal/vocab"
)

// ObservationID returns the local name of the i-th observation (1-based).
func ObservationID(i int) string {
	return fmt.Sprintf("observation-%08d", i)
}

// ObservationIRI returns the full IRI of the i-th observation.
func ObservationIRI(i int) string {
	return vocab.NSR.Term(ObservationID(i))
}

// EmitObservations writes one observation per group, numbered in slice order.
func EmitObservations(g *rdf.Graph, dataset rdf.Term, groups []Group) {
	for i, grp := range groups {
		obs := rdf.IRI(ObservationIRI(i + 1))
		g.Add(obs, rdfType, rdf.IRI(vocab.QBObservation))
		g.Add(obs, rdf.IRI(vocab.QBDataSetLink), dataset)
		g.Add(obs, rdf.IRI(vocab.County), rdf.String(grp.Key.County))
		g.Add(obs, rdf.IRI(vocab.Region), rdf.String(grp.Key.Region))
		g.Add(obs, rdf.IRI(vocab.FieldOfCare), rdf.String(grp.Key.FieldOfCare))
		g.Add(obs, rdf.IRI(vocab.NumberOfCareProviders), rdf.Integer(int64(grp.Count)))
	}
}
