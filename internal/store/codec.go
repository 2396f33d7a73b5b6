package store

import (
	"fmt"

	"github.com/roach88/carecube/internal/rdf"
)

// Stored term kinds, matching the CHECK constraints in schema.sql.
const (
	kindIRI     = "iri"
	kindBlank   = "blank"
	kindLiteral = "literal"
)

func encodeKind(k rdf.Kind) (string, error) {
	switch k {
	case rdf.KindIRI:
		return kindIRI, nil
	case rdf.KindBlank:
		return kindBlank, nil
	case rdf.KindLiteral:
		return kindLiteral, nil
	default:
		return "", fmt.Errorf("unknown term kind %d", int(k))
	}
}

func decodeTerm(kind, value, lang, datatype string) (rdf.Term, error) {
	switch kind {
	case kindIRI:
		return rdf.IRI(value), nil
	case kindBlank:
		return rdf.Blank(value), nil
	case kindLiteral:
		return rdf.Term{Kind: rdf.KindLiteral, Value: value, Lang: lang, Datatype: datatype}, nil
	default:
		return rdf.Term{}, fmt.Errorf("unknown stored term kind %q", kind)
	}
}
