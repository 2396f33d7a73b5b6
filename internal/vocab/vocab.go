package vocab

// Namespace is an IRI prefix. Terms are formed by appending a local name.
type Namespace string

// Term returns the IRI for local within the namespace.
func (ns Namespace) Term(local string) string {
	return string(ns) + local
}

// Namespaces.
const (
	NS  Namespace = "https://stochel.cz/ontology#"
	NSR Namespace = "https://stochel.cz/resources/"

	QB   Namespace = "http://purl.org/linked-data/cube#"
	RDF  Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS Namespace = "http://www.w3.org/2000/01/rdf-schema#"
	XSD  Namespace = "http://www.w3.org/2001/XMLSchema#"
	DCT  Namespace = "http://purl.org/dc/terms/"

	SDMXConcept   Namespace = "http://purl.org/linked-data/sdmx/2009/concept#"
	SDMXCode      Namespace = "http://purl.org/linked-data/sdmx/2009/code#"
	SDMXDimension Namespace = "http://purl.org/linked-data/sdmx/2009/dimension#"
	SDMXAttribute Namespace = "http://purl.org/linked-data/sdmx/2009/attribute#"
	SDMXMeasure   Namespace = "http://purl.org/linked-data/sdmx/2009/measure#"
)

// RDF / RDFS / XSD terms.
const (
	RDFType = string(RDF) + "type"

	RDFSProperty    = string(RDFS) + "Property"
	RDFSLabel       = string(RDFS) + "label"
	RDFSRange       = string(RDFS) + "range"
	RDFSComment     = string(RDFS) + "comment"
	RDFSSubProperty = string(RDFS) + "subPropertyOf"

	XSDString  = string(XSD) + "string"
	XSDInteger = string(XSD) + "integer"
	XSDDate    = string(XSD) + "date"
)

// RDF Data Cube terms.
const (
	QBDimensionProperty       = string(QB) + "DimensionProperty"
	QBMeasureProperty         = string(QB) + "MeasureProperty"
	QBDataStructureDefinition = string(QB) + "DataStructureDefinition"
	QBDataSet                 = string(QB) + "DataSet"
	QBObservation             = string(QB) + "Observation"
	QBComponent               = string(QB) + "component"
	QBDimension               = string(QB) + "dimension"
	QBMeasure                 = string(QB) + "measure"
	QBStructure               = string(QB) + "structure"
	QBDataSetLink             = string(QB) + "dataSet"
	QBConcept                 = string(QB) + "concept"
)

// SDMX terms referenced by the enriched schema.
const (
	SDMXRefArea        = string(SDMXConcept) + "refArea"
	SDMXCoverageSector = string(SDMXConcept) + "coverageSector"
	SDMXObsValue       = string(SDMXMeasure) + "obsValue"
)

// Dublin Core terms for dataset metadata.
const (
	DCTIssued      = string(DCT) + "issued"
	DCTModified    = string(DCT) + "modified"
	DCTPublisher   = string(DCT) + "publisher"
	DCTLicense     = string(DCT) + "license"
	DCTTitle       = string(DCT) + "title"
	DCTSubject     = string(DCT) + "subject"
	DCTDescription = string(DCT) + "description"
)

// Cube resources. These are input independent.
const (
	County                = string(NS) + "county"
	Region                = string(NS) + "region"
	FieldOfCare           = string(NS) + "field_of_care"
	NumberOfCareProviders = string(NS) + "number_of_care_providers"
	Structure             = string(NS) + "structure"
	Dataset               = string(NSR) + "dataCubeInstance"
)

// Prefix binds a short name to a namespace for serialization.
type Prefix struct {
	Name      string
	Namespace Namespace
}

// Prefixes returns the prefix table used when writing Turtle.
// A new slice is returned on every call.
func Prefixes() []Prefix {
	return []Prefix{
		{Name: "ns", Namespace: NS},
		{Name: "nsr", Namespace: NSR},
		{Name: "qb", Namespace: QB},
		{Name: "rdf", Namespace: RDF},
		{Name: "rdfs", Namespace: RDFS},
		{Name: "xsd", Namespace: XSD},
		{Name: "dct", Namespace: DCT},
		{Name: "sdmx-concept", Namespace: SDMXConcept},
		{Name: "sdmx-code", Namespace: SDMXCode},
		{Name: "sdmx-dimension", Namespace: SDMXDimension},
		{Name: "sdmx-attribute", Namespace: SDMXAttribute},
		{Name: "sdmx-measure", Namespace: SDMXMeasure},
	}
}
