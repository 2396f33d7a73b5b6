package harness

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/carecube/internal/rdf"
	"github.com/roach88/carecube/internal/store"
	"github.com/roach88/carecube/internal/vocab"
)

// AssertionContext provides what assertions need beyond the result itself.
type AssertionContext struct {
	Store  *store.Store
	Ctx    context.Context
	Format rdf.Format
}

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Details  []string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	for _, d := range e.Details {
		fmt.Fprintf(&buf, "    %s\n", d)
	}

	return buf.String()
}

// EvaluateAssertions runs all assertions against the result and returns the
// messages of the failed ones.
func EvaluateAssertions(result *Result, assertions []Assertion, actx *AssertionContext) []string {
	var errs []string
	for i, a := range assertions {
		if err := evaluate(result, a, actx); err != nil {
			errs = append(errs, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return errs
}

func evaluate(result *Result, a Assertion, actx *AssertionContext) error {
	switch a.Type {
	case AssertObservationCount:
		return assertObservationCount(result.Graph, a)
	case AssertObservation:
		return assertObservation(result.Graph, a)
	case AssertContains:
		return assertContains(result.Graph, a)
	case AssertTripleCount:
		return assertTripleCount(result.Graph, a)
	case AssertRoundTrip:
		return assertRoundTrip(result, actx.Format)
	case AssertStoreRoundTrip:
		return assertStoreRoundTrip(result.Graph, actx)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func assertObservationCount(g *rdf.Graph, a Assertion) error {
	got := len(observations(g))
	if got != a.Count {
		return &AssertionError{
			Type:     AssertObservationCount,
			Expected: fmt.Sprintf("%d observations", a.Count),
			Actual:   fmt.Sprintf("%d observations", got),
		}
	}
	return nil
}

// assertObservation looks for an observation whose three dimension values
// equal the key, then checks its count.
func assertObservation(g *rdf.Graph, a Assertion) error {
	key := fmt.Sprintf("(%q, %q, %q)", a.County, a.Region, a.FieldOfCare)

	for _, obs := range observations(g) {
		if !hasValue(g, obs, vocab.County, a.County) ||
			!hasValue(g, obs, vocab.Region, a.Region) ||
			!hasValue(g, obs, vocab.FieldOfCare, a.FieldOfCare) {
			continue
		}

		counts := g.Objects(obs, rdf.IRI(vocab.NumberOfCareProviders))
		want := rdf.Integer(int64(a.Count))
		if len(counts) == 1 && counts[0] == want {
			return nil
		}
		return &AssertionError{
			Type:     AssertObservation,
			Expected: fmt.Sprintf("count %d for %s", a.Count, key),
			Actual:   fmt.Sprintf("%v on %s", counts, obs.Value),
		}
	}

	return &AssertionError{
		Type:     AssertObservation,
		Expected: fmt.Sprintf("observation for %s", key),
		Actual:   "not found",
	}
}

func hasValue(g *rdf.Graph, subject rdf.Term, predicate, value string) bool {
	for _, o := range g.Objects(subject, rdf.IRI(predicate)) {
		if o == rdf.String(value) {
			return true
		}
	}
	return false
}

func assertContains(g *rdf.Graph, a Assertion) error {
	t := rdf.Triple{
		Subject:   rdf.IRI(a.Subject),
		Predicate: rdf.IRI(a.Predicate),
	}
	switch {
	case a.Literal == nil:
		t.Object = rdf.IRI(a.Object)
	case a.Lang != "":
		t.Object = rdf.LangString(*a.Literal, a.Lang)
	default:
		t.Object = rdf.Typed(*a.Literal, a.Datatype)
	}

	if !g.Contains(t) {
		return &AssertionError{
			Type:     AssertContains,
			Expected: t.String(),
			Actual:   "not in graph",
		}
	}
	return nil
}

func assertTripleCount(g *rdf.Graph, a Assertion) error {
	if g.Len() != a.Count {
		return &AssertionError{
			Type:     AssertTripleCount,
			Expected: fmt.Sprintf("%d triples", a.Count),
			Actual:   fmt.Sprintf("%d triples", g.Len()),
		}
	}
	return nil
}

func assertRoundTrip(result *Result, format rdf.Format) error {
	parsed, err := rdf.Parse(strings.NewReader(result.Output), format)
	if err != nil {
		return fmt.Errorf("parse %s output: %w", format, err)
	}
	return compareGraphs(AssertRoundTrip, result.Graph, parsed)
}

func assertStoreRoundTrip(g *rdf.Graph, actx *AssertionContext) error {
	stored, err := actx.Store.ReadGraph(actx.Ctx, vocab.Dataset)
	if err != nil {
		return err
	}
	return compareGraphs(AssertStoreRoundTrip, g, stored)
}

func compareGraphs(kind string, want, got *rdf.Graph) error {
	if rdf.Equal(want, got) {
		return nil
	}
	onlyWant, onlyGot := rdf.Diff(want, got)
	details := make([]string, 0, len(onlyWant)+len(onlyGot))
	for _, k := range onlyWant {
		details = append(details, "- "+k)
	}
	for _, k := range onlyGot {
		details = append(details, "+ "+k)
	}
	return &AssertionError{
		Type:     kind,
		Expected: fmt.Sprintf("%d triples", want.Len()),
		Actual:   fmt.Sprintf("%d triples", got.Len()),
		Details:  details,
	}
}
