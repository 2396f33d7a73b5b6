package rdf

import (
	"fmt"
	"io"

	knakk "github.com/knakk/rdf"
)

// WriteNTriples serializes g as N-Triples in insertion order.
func WriteNTriples(w io.Writer, g *Graph) error {
	enc := knakk.NewTripleEncoder(w, knakk.NTriples)
	for _, t := range g.triples {
		kt, err := toKnakkTriple(t)
		if err != nil {
			return fmt.Errorf("write ntriples: %w", err)
		}
		if err := enc.Encode(kt); err != nil {
			return fmt.Errorf("write ntriples: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("write ntriples: %w", err)
	}
	return nil
}
