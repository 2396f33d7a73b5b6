package rdf

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Hash domains keep blank node signatures and graph hashes apart.
const (
	domainBlank = "carecube/blank/v1"
	domainGraph = "carecube/graph/v1"
)

// Equal reports whether a and b hold the same triple set, treating blank nodes
// as equal when their non-blank neighbourhoods match.
func Equal(a, b *Graph) bool {
	onlyA, onlyB := Diff(a, b)
	return len(onlyA) == 0 && len(onlyB) == 0 && a.Len() == b.Len()
}

// Diff returns the canonical forms of triples present only in a and only in b,
// each sorted.
//
// Blank nodes are replaced by a hash of their incoming and outgoing edges to
// non-blank terms. Two blank nodes with identical neighbourhoods collapse to
// the same signature; the cube never produces such pairs.
func Diff(a, b *Graph) (onlyA, onlyB []string) {
	ka := canonicalKeys(a)
	kb := canonicalKeys(b)
	for k := range ka {
		if _, ok := kb[k]; !ok {
			onlyA = append(onlyA, k)
		}
	}
	for k := range kb {
		if _, ok := ka[k]; !ok {
			onlyB = append(onlyB, k)
		}
	}
	sort.Strings(onlyA)
	sort.Strings(onlyB)
	return onlyA, onlyB
}

// Hash returns a content hash of g that ignores triple order and blank node
// labels. Graphs that are Equal hash the same.
func Hash(g *Graph) string {
	keys := canonicalKeys(g)
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)
	return hashWithDomain(domainGraph, strings.Join(sorted, "\n"))
}

func canonicalKeys(g *Graph) map[string]struct{} {
	sigs := blankSignatures(g)
	keys := make(map[string]struct{}, len(g.triples))
	for _, t := range g.triples {
		k := canonicalTerm(t.Subject, sigs) + " " + t.Predicate.key() + " " + canonicalTerm(t.Object, sigs)
		keys[k] = struct{}{}
	}
	return keys
}

func canonicalTerm(t Term, sigs map[string]string) string {
	if t.Kind == KindBlank {
		return sigs[t.Value]
	}
	return t.key()
}

func blankSignatures(g *Graph) map[string]string {
	edges := make(map[string][]string)
	for _, t := range g.triples {
		if t.Subject.Kind == KindBlank {
			if _, ok := edges[t.Subject.Value]; !ok {
				edges[t.Subject.Value] = nil
			}
			if t.Object.Kind != KindBlank {
				edges[t.Subject.Value] = append(edges[t.Subject.Value], "out "+t.Predicate.key()+" "+t.Object.key())
			}
		}
		if t.Object.Kind == KindBlank {
			if _, ok := edges[t.Object.Value]; !ok {
				edges[t.Object.Value] = nil
			}
			if t.Subject.Kind != KindBlank {
				edges[t.Object.Value] = append(edges[t.Object.Value], "in "+t.Subject.key()+" "+t.Predicate.key())
			}
		}
	}

	sigs := make(map[string]string, len(edges))
	for label, e := range edges {
		sort.Strings(e)
		sigs[label] = "_:" + hashWithDomain(domainBlank, strings.Join(e, "\n"))
	}
	return sigs
}

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain, data string) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))[:16]
}
