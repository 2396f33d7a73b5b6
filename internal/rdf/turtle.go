package rdf

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/roach88/carecube/internal/vocab"
)

var (
	localNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)
	integerRe   = regexp.MustCompile(`^[+-]?[0-9]+$`)
)

// turtleWriter renders one graph. It records which prefixes were used so the
// header only declares those.
type turtleWriter struct {
	prefixes []vocab.Prefix
	used     map[string]vocab.Prefix
}

type turtleBlock struct {
	subject    Term
	predicates []Term
	objects    map[string][]Term
}

// WriteTurtle serializes g as Turtle.
//
// Output layout is deterministic: used prefixes sorted by name, then one block
// per subject in order of first appearance, predicates in order of first
// appearance, and objects of a repeated predicate joined with commas.
func WriteTurtle(w io.Writer, g *Graph, prefixes []vocab.Prefix) error {
	tw := &turtleWriter{
		prefixes: sortByNamespaceLength(prefixes),
		used:     make(map[string]vocab.Prefix),
	}

	blocks := groupBySubject(g.triples)

	rendered := make([]string, 0, len(blocks))
	for _, b := range blocks {
		rendered = append(rendered, tw.renderBlock(b))
	}

	var sb strings.Builder
	names := make([]string, 0, len(tw.used))
	for name := range tw.used {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", name, tw.used[name].Namespace))
	}

	for i, block := range rendered {
		if i > 0 || len(names) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(block)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write turtle: %w", err)
	}
	return nil
}

func groupBySubject(triples []Triple) []*turtleBlock {
	var blocks []*turtleBlock
	bySubject := make(map[string]*turtleBlock)

	for _, t := range triples {
		sk := t.Subject.key()
		b, ok := bySubject[sk]
		if !ok {
			b = &turtleBlock{subject: t.Subject, objects: make(map[string][]Term)}
			bySubject[sk] = b
			blocks = append(blocks, b)
		}
		pk := t.Predicate.key()
		if _, ok := b.objects[pk]; !ok {
			b.predicates = append(b.predicates, t.Predicate)
		}
		b.objects[pk] = append(b.objects[pk], t.Object)
	}
	return blocks
}

func (tw *turtleWriter) renderBlock(b *turtleBlock) string {
	var sb strings.Builder
	sb.WriteString(tw.renderTerm(b.subject))

	for i, p := range b.predicates {
		if i == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(" ;\n    ")
		}
		sb.WriteString(tw.renderPredicate(p))
		sb.WriteString(" ")

		objs := b.objects[p.key()]
		for j, o := range objs {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(tw.renderTerm(o))
		}
	}
	sb.WriteString(" .\n")
	return sb.String()
}

func (tw *turtleWriter) renderPredicate(p Term) string {
	if p.Kind == KindIRI && p.Value == vocab.RDFType {
		return "a"
	}
	return tw.renderTerm(p)
}

func (tw *turtleWriter) renderTerm(t Term) string {
	switch t.Kind {
	case KindIRI:
		return tw.renderIRI(t.Value)
	case KindBlank:
		return "_:" + t.Value
	default:
		return tw.renderLiteral(t)
	}
}

func (tw *turtleWriter) renderIRI(iri string) string {
	for _, p := range tw.prefixes {
		ns := string(p.Namespace)
		if !strings.HasPrefix(iri, ns) {
			continue
		}
		local := iri[len(ns):]
		if localNameRe.MatchString(local) {
			tw.used[p.Name] = p
			return p.Name + ":" + local
		}
	}
	return "<" + escapeIRI(iri) + ">"
}

func (tw *turtleWriter) renderLiteral(t Term) string {
	if t.Lang != "" {
		return quoteLiteral(t.Value) + "@" + t.Lang
	}
	switch t.Datatype {
	case "", vocab.XSDString:
		return quoteLiteral(t.Value)
	case vocab.XSDInteger:
		if integerRe.MatchString(t.Value) {
			return t.Value
		}
	}
	return quoteLiteral(t.Value) + "^^" + tw.renderIRI(t.Datatype)
}

// sortByNamespaceLength orders prefixes longest namespace first so the most
// specific namespace wins when several match.
func sortByNamespaceLength(prefixes []vocab.Prefix) []vocab.Prefix {
	out := make([]vocab.Prefix, len(prefixes))
	copy(out, prefixes)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Namespace) > len(out[j].Namespace)
	})
	return out
}

// quoteLiteral escapes a lexical form for a double-quoted Turtle/N-Triples string.
func quoteLiteral(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				sb.WriteString(fmt.Sprintf(`\u%04X`, r))
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// escapeIRI escapes characters that may not appear inside <...>.
func escapeIRI(iri string) string {
	var sb strings.Builder
	for _, r := range iri {
		if r <= 0x20 || strings.ContainsRune(`<>"{}|^`+"`"+`\`, r) {
			sb.WriteString(fmt.Sprintf(`\u%04X`, r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
