// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/roach88/carecube/internal/loader"
	"github.com/roach88/carecube/internal/rdf"
	"github.com/roach88/carecube/internal/vocab"
)

// TwoGroupsCSV has a duplicated row, so it yields two groups from three records.
const TwoGroupsCSV = "Okres,Kraj,OborPece\nA,X,derm\nA,X,derm\nB,Y,cardio\n"

// TwoGroupRecords returns the records TwoGroupsCSV loads to.
func TwoGroupRecords() []loader.Record {
	return []loader.Record{
		{Line: 2, County: "A", Region: "X", FieldOfCare: "derm"},
		{Line: 3, County: "A", Region: "X", FieldOfCare: "derm"},
		{Line: 4, County: "B", Region: "Y", FieldOfCare: "cardio"},
	}
}

// SampleGraph builds a small graph with every term kind the cube emits:
// IRIs, a blank node, plain, language-tagged and typed literals.
func SampleGraph() *rdf.Graph {
	g := rdf.NewGraph()
	county := rdf.IRI(vocab.County)
	obs := rdf.IRI(vocab.NSR.Term("observation-00000001"))
	component := rdf.Blank("b1")

	g.Add(county, rdf.IRI(vocab.RDFType), rdf.IRI(vocab.QBDimensionProperty))
	g.Add(county, rdf.IRI(vocab.RDFSLabel), rdf.LangString("Okres", "cs"))
	g.Add(rdf.IRI(vocab.Structure), rdf.IRI(vocab.QBComponent), component)
	g.Add(component, rdf.IRI(vocab.QBDimension), county)
	g.Add(obs, county, rdf.String(`Praha, "hlavní" město`))
	g.Add(obs, rdf.IRI(vocab.NumberOfCareProviders), rdf.Integer(3))
	g.Add(rdf.IRI(vocab.Dataset), rdf.IRI(vocab.DCTIssued), rdf.Date("2023-03-11"))
	return g
}

// WriteFile writes content to name inside a fresh temp dir and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
