package rdf

import (
	"strconv"

	"github.com/roach88/carecube/internal/vocab"
)

// Kind distinguishes the three RDF term types.
type Kind int

const (
	KindIRI Kind = iota
	KindBlank
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBlank:
		return "blank"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Term is an IRI, a blank node or a literal.
//
// For literals, Value is the lexical form. Lang is set for language-tagged
// strings; otherwise Datatype holds the datatype IRI (xsd:string when plain).
// For blank nodes, Value is the label without the "_:" prefix.
type Term struct {
	Kind     Kind
	Value    string
	Lang     string
	Datatype string
}

// IRI returns an IRI term.
func IRI(iri string) Term {
	return Term{Kind: KindIRI, Value: iri}
}

// Blank returns a blank node term with the given label.
func Blank(label string) Term {
	return Term{Kind: KindBlank, Value: label}
}

// String returns a plain string literal (xsd:string).
func String(s string) Term {
	return Term{Kind: KindLiteral, Value: s, Datatype: vocab.XSDString}
}

// LangString returns a language-tagged string literal.
func LangString(s, lang string) Term {
	return Term{Kind: KindLiteral, Value: s, Lang: lang}
}

// Typed returns a literal with an explicit datatype.
func Typed(lexical, datatype string) Term {
	if datatype == "" {
		datatype = vocab.XSDString
	}
	return Term{Kind: KindLiteral, Value: lexical, Datatype: datatype}
}

// Integer returns an xsd:integer literal.
func Integer(n int64) Term {
	return Term{Kind: KindLiteral, Value: strconv.FormatInt(n, 10), Datatype: vocab.XSDInteger}
}

// Date returns an xsd:date literal. The lexical form is not validated here.
func Date(yyyymmdd string) Term {
	return Term{Kind: KindLiteral, Value: yyyymmdd, Datatype: vocab.XSDDate}
}

// IsIRI reports whether t is an IRI.
func (t Term) IsIRI() bool { return t.Kind == KindIRI }

// IsBlank reports whether t is a blank node.
func (t Term) IsBlank() bool { return t.Kind == KindBlank }

// IsLiteral reports whether t is a literal.
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }

// key identifies a term for set membership. Plain literals with an empty
// datatype and xsd:string literals are the same term.
func (t Term) key() string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	default:
		if t.Lang != "" {
			return strconv.Quote(t.Value) + "@" + t.Lang
		}
		dt := t.Datatype
		if dt == "" {
			dt = vocab.XSDString
		}
		return strconv.Quote(t.Value) + "^^<" + dt + ">"
	}
}

// Triple is a single subject-predicate-object statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

func (t Triple) key() string {
	return t.Subject.key() + " " + t.Predicate.key() + " " + t.Object.key()
}

// String renders the triple in an N-Triples-like form for diagnostics.
func (t Triple) String() string {
	return t.key() + " ."
}
