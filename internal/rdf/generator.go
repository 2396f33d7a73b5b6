package rdf

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// BlankGenerator produces blank node labels. Labels are only required to be
// unique within one graph.
type BlankGenerator interface {
	Generate() string
}

// SequenceGenerator yields "b1", "b2", ... so that output is reproducible.
//
// Thread-safety: SequenceGenerator is safe for concurrent use via internal mutex.
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequenceGenerator creates a generator whose labels start with prefix.
// An empty prefix defaults to "b".
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	if prefix == "" {
		prefix = "b"
	}
	return &SequenceGenerator{prefix: prefix}
}

// Generate returns the next label in the sequence.
func (g *SequenceGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return g.prefix + strconv.Itoa(g.n)
}

// UUIDGenerator generates labels from time-sortable UUIDv7 values.
//
// The hyphens are dropped and a leading "b" is added so the label is always a
// valid Turtle BLANK_NODE_LABEL.
//
// Thread-safety: UUIDGenerator is stateless and safe for concurrent use.
type UUIDGenerator struct{}

// Generate creates a new label.
//
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDGenerator) Generate() string {
	return "b" + strings.ReplaceAll(uuid.Must(uuid.NewV7()).String(), "-", "")
}

// FixedGenerator returns predetermined labels for testing.
//
// Thread-safety: FixedGenerator is safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu     sync.Mutex
	labels []string
	idx    int
}

// NewFixedGenerator creates a generator that returns labels in order.
//
// Example:
//
//	gen := NewFixedGenerator("c1", "c2")
//	gen.Generate() // "c1"
//	gen.Generate() // "c2"
//	gen.Generate() // panic: all labels exhausted
func NewFixedGenerator(labels ...string) *FixedGenerator {
	return &FixedGenerator{labels: labels}
}

// Generate returns the next predetermined label.
//
// Panics if all labels have been consumed, which means a test built more blank
// nodes than it declared.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.labels) {
		panic("FixedGenerator: all labels exhausted")
	}
	label := g.labels[g.idx]
	g.idx++
	return label
}
