package rdf

// Graph is an append-only set of triples that remembers insertion order.
// It is not safe for concurrent use.
type Graph struct {
	triples []Triple
	index   map[string]struct{}
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[string]struct{})}
}

// Add inserts a triple. It returns false if the triple was already present.
func (g *Graph) Add(subject, predicate, object Term) bool {
	return g.AddTriple(Triple{Subject: subject, Predicate: predicate, Object: object})
}

// AddTriple inserts t. It returns false if t was already present.
func (g *Graph) AddTriple(t Triple) bool {
	k := t.key()
	if _, ok := g.index[k]; ok {
		return false
	}
	g.index[k] = struct{}{}
	g.triples = append(g.triples, t)
	return true
}

// Contains reports whether the graph holds t.
func (g *Graph) Contains(t Triple) bool {
	_, ok := g.index[t.key()]
	return ok
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns a copy of the triples in insertion order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// Match returns the triples whose subject, predicate and object equal the
// given terms. A nil pattern position matches anything.
func (g *Graph) Match(subject, predicate, object *Term) []Triple {
	var out []Triple
	for _, t := range g.triples {
		if subject != nil && t.Subject.key() != subject.key() {
			continue
		}
		if predicate != nil && t.Predicate.key() != predicate.key() {
			continue
		}
		if object != nil && t.Object.key() != object.key() {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Subjects returns the distinct subjects that have predicate p with object o,
// in insertion order.
func (g *Graph) Subjects(p, o Term) []Term {
	seen := make(map[string]struct{})
	var out []Term
	for _, t := range g.Match(nil, &p, &o) {
		k := t.Subject.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t.Subject)
	}
	return out
}

// Objects returns the objects of all triples with subject s and predicate p.
func (g *Graph) Objects(s, p Term) []Term {
	var out []Term
	for _, t := range g.Match(&s, &p, nil) {
		out = append(out, t.Object)
	}
	return out
}
