package rdf

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/roach88/carecube/internal/vocab"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"
)

// FormatInfo provides metadata about a serialization format.
type FormatInfo struct {
	Name      Format
	MIMEType  string
	Extension string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:      FormatTurtle,
		MIMEType:  "text/turtle",
		Extension: ".ttl",
	},
	FormatNTriples: {
		Name:      FormatNTriples,
		MIMEType:  "application/n-triples",
		Extension: ".nt",
	},
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(FormatRegistry))
	for name := range FormatRegistry {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// ParseFormat maps a format name or its file extension ("ttl", ".nt") to a
// registered Format. Matching ignores case.
func ParseFormat(name string) (Format, error) {
	lower := strings.ToLower(name)
	for _, info := range FormatRegistry {
		if lower == string(info.Name) || "."+strings.TrimPrefix(lower, ".") == info.Extension {
			return info.Name, nil
		}
	}
	return "", fmt.Errorf("unsupported RDF format %q: must be one of %s", name, strings.Join(Formats(), ", "))
}

// Serialize writes g to w in the given format. Prefixes are only used by Turtle.
func Serialize(w io.Writer, g *Graph, format Format, prefixes []vocab.Prefix) error {
	switch format {
	case FormatTurtle:
		return WriteTurtle(w, g, prefixes)
	case FormatNTriples:
		return WriteNTriples(w, g)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
