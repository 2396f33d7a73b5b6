package cube

import (
	"github.com/roach88/carecube/internal/rdf"
	"github.com/roach88/carecube/internal/vocab"
)

// Schema holds the resources created by BuildSchema.
type Schema struct {
	Dimensions []rdf.Term
	Measures   []rdf.Term
	Structure  rdf.Term
	Dataset    rdf.Term
}

type property struct {
	iri     string
	labelCS string
	labelEN string
	rng     string
	concept string
}

var dimensions = []property{
	{iri: vocab.County, labelCS: "Okres", labelEN: "County", rng: vocab.XSDString, concept: vocab.SDMXRefArea},
	{iri: vocab.Region, labelCS: "Kraj", labelEN: "Region", rng: vocab.XSDString, concept: vocab.SDMXRefArea},
	{iri: vocab.FieldOfCare, labelCS: "Obor péče", labelEN: "Field of care", rng: vocab.XSDString, concept: vocab.SDMXCoverageSector},
}

var measure = property{
	iri:     vocab.NumberOfCareProviders,
	labelCS: "Počet poskytovatelů péče",
	labelEN: "Number of care providers",
	rng:     vocab.XSDInteger,
}

var (
	rdfType = rdf.IRI(vocab.RDFType)
	label   = rdf.IRI(vocab.RDFSLabel)
)

// BuildSchema emits dimensions, measure, structure and dataset into g.
// The emitted triples do not depend on any input data.
func BuildSchema(g *rdf.Graph, opts Options) Schema {
	dims := createDimensions(g, opts.Variant)
	measures := createMeasures(g, opts.Variant)
	structure := createStructure(g, opts.blanks(), dims, measures)
	dataset := createDataset(g, opts, structure)

	return Schema{
		Dimensions: dims,
		Measures:   measures,
		Structure:  structure,
		Dataset:    dataset,
	}
}

func createDimensions(g *rdf.Graph, variant Variant) []rdf.Term {
	out := make([]rdf.Term, 0, len(dimensions))
	for _, d := range dimensions {
		dim := rdf.IRI(d.iri)
		g.Add(dim, rdfType, rdf.IRI(vocab.RDFSProperty))
		g.Add(dim, rdfType, rdf.IRI(vocab.QBDimensionProperty))
		g.Add(dim, label, rdf.LangString(d.labelCS, "cs"))
		g.Add(dim, label, rdf.LangString(d.labelEN, "en"))
		g.Add(dim, rdf.IRI(vocab.RDFSRange), rdf.IRI(d.rng))
		if variant == VariantEnriched {
			g.Add(dim, rdf.IRI(vocab.QBConcept), rdf.IRI(d.concept))
		}
		out = append(out, dim)
	}
	return out
}

func createMeasures(g *rdf.Graph, variant Variant) []rdf.Term {
	m := rdf.IRI(measure.iri)
	g.Add(m, rdfType, rdf.IRI(vocab.RDFSProperty))
	g.Add(m, rdfType, rdf.IRI(vocab.QBMeasureProperty))
	g.Add(m, label, rdf.LangString(measure.labelCS, "cs"))
	g.Add(m, label, rdf.LangString(measure.labelEN, "en"))
	g.Add(m, rdf.IRI(vocab.RDFSRange), rdf.IRI(measure.rng))
	if variant == VariantEnriched {
		g.Add(m, rdf.IRI(vocab.RDFSSubProperty), rdf.IRI(vocab.SDMXObsValue))
	}
	return []rdf.Term{m}
}

// createStructure links every dimension and measure through its own
// component node: structure -qb:component-> _:c -qb:dimension|qb:measure-> property.
func createStructure(g *rdf.Graph, blanks rdf.BlankGenerator, dims, measures []rdf.Term) rdf.Term {
	structure := rdf.IRI(vocab.Structure)
	g.Add(structure, rdfType, rdf.IRI(vocab.QBDataStructureDefinition))

	for _, d := range dims {
		component := rdf.Blank(blanks.Generate())
		g.Add(structure, rdf.IRI(vocab.QBComponent), component)
		g.Add(component, rdf.IRI(vocab.QBDimension), d)
	}
	for _, m := range measures {
		component := rdf.Blank(blanks.Generate())
		g.Add(structure, rdf.IRI(vocab.QBComponent), component)
		g.Add(component, rdf.IRI(vocab.QBMeasure), m)
	}
	return structure
}

func createDataset(g *rdf.Graph, opts Options, structure rdf.Term) rdf.Term {
	dataset := rdf.IRI(vocab.Dataset)
	g.Add(dataset, rdfType, rdf.IRI(vocab.QBDataSet))

	if opts.Variant == VariantMinimal {
		g.Add(dataset, label, rdf.LangString(measure.labelEN, "en"))
		g.Add(dataset, rdf.IRI(vocab.QBStructure), structure)
		return dataset
	}

	meta := opts.Metadata
	addLabels(g, dataset, label, meta.Label.CS, meta.Label.EN)
	g.Add(dataset, rdf.IRI(vocab.QBStructure), structure)

	if meta.Issued != "" {
		g.Add(dataset, rdf.IRI(vocab.DCTIssued), rdf.Date(meta.Issued))
	}
	if meta.Modified != "" {
		g.Add(dataset, rdf.IRI(vocab.DCTModified), rdf.Date(meta.Modified))
	}
	if meta.Publisher != "" {
		g.Add(dataset, rdf.IRI(vocab.DCTPublisher), rdf.IRI(meta.Publisher))
	}
	if meta.License != "" {
		g.Add(dataset, rdf.IRI(vocab.DCTLicense), rdf.IRI(meta.License))
	}
	addLabels(g, dataset, rdf.IRI(vocab.DCTTitle), meta.Title.CS, meta.Title.EN)
	for _, s := range meta.Subjects {
		g.Add(dataset, rdf.IRI(vocab.DCTSubject), rdf.IRI(s))
	}
	addLabels(g, dataset, rdf.IRI(vocab.DCTDescription), meta.Description.CS, meta.Description.EN)
	addLabels(g, dataset, rdf.IRI(vocab.RDFSComment), meta.Comment.CS, meta.Comment.EN)

	return dataset
}

func addLabels(g *rdf.Graph, subject, predicate rdf.Term, cs, en string) {
	if cs != "" {
		g.Add(subject, predicate, rdf.LangString(cs, "cs"))
	}
	if en != "" {
		g.Add(subject, predicate, rdf.LangString(en, "en"))
	}
}
