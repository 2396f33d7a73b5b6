package rdf

import (
	"errors"
	"fmt"
	"io"

	knakk "github.com/knakk/rdf"
)

// Parse decodes Turtle or N-Triples text into a new Graph.
func Parse(r io.Reader, format Format) (*Graph, error) {
	var kf knakk.Format
	switch format {
	case FormatTurtle:
		kf = knakk.Turtle
	case FormatNTriples:
		kf = knakk.NTriples
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	g := NewGraph()
	dec := knakk.NewTripleDecoder(r, kf)
	for {
		t, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", format, err)
		}
		g.AddTriple(fromKnakkTriple(t))
	}
	return g, nil
}
