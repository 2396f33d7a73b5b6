package rdf

import (
	"fmt"
	"strings"

	knakk "github.com/knakk/rdf"
)

// toKnakkTerm converts a Term to its github.com/knakk/rdf representation.
func toKnakkTerm(t Term) (knakk.Term, error) {
	switch t.Kind {
	case KindIRI:
		iri, err := knakk.NewIRI(t.Value)
		if err != nil {
			return nil, fmt.Errorf("iri %q: %w", t.Value, err)
		}
		return iri, nil
	case KindBlank:
		b, err := knakk.NewBlank(t.Value)
		if err != nil {
			return nil, fmt.Errorf("blank node %q: %w", t.Value, err)
		}
		return b, nil
	default:
		if t.Lang != "" {
			lit, err := knakk.NewLangLiteral(t.Value, t.Lang)
			if err != nil {
				return nil, fmt.Errorf("literal %q@%s: %w", t.Value, t.Lang, err)
			}
			return lit, nil
		}
		dt, err := knakk.NewIRI(Typed(t.Value, t.Datatype).Datatype)
		if err != nil {
			return nil, fmt.Errorf("datatype %q: %w", t.Datatype, err)
		}
		return knakk.NewTypedLiteral(t.Value, dt), nil
	}
}

func toKnakkTriple(t Triple) (knakk.Triple, error) {
	s, err := toKnakkTerm(t.Subject)
	if err != nil {
		return knakk.Triple{}, err
	}
	p, err := toKnakkTerm(t.Predicate)
	if err != nil {
		return knakk.Triple{}, err
	}
	o, err := toKnakkTerm(t.Object)
	if err != nil {
		return knakk.Triple{}, err
	}
	return knakk.Triple{
		Subj: s.(knakk.Subject),
		Pred: p.(knakk.Predicate),
		Obj:  o.(knakk.Object),
	}, nil
}

// fromKnakkTerm converts a decoded term back to a Term.
func fromKnakkTerm(t knakk.Term) Term {
	switch t.Type() {
	case knakk.TermIRI:
		return IRI(t.String())
	case knakk.TermBlank:
		return Blank(strings.TrimPrefix(t.String(), "_:"))
	default:
		lit, ok := t.(knakk.Literal)
		if !ok {
			return String(t.String())
		}
		if lit.Lang() != "" {
			return LangString(lit.String(), lit.Lang())
		}
		return Typed(lit.String(), lit.DataType.String())
	}
}

func fromKnakkTriple(t knakk.Triple) Triple {
	return Triple{
		Subject:   fromKnakkTerm(t.Subj),
		Predicate: fromKnakkTerm(t.Pred),
		Object:    fromKnakkTerm(t.Obj),
	}
}
