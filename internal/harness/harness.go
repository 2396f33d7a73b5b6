package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/carecube/internal/config"
	"github.com/roach88/carecube/internal/cube"
	"github.com/roach88/carecube/internal/rdf"
	"github.com/roach88/carecube/internal/store"
	"github.com/roach88/carecube/internal/vocab"
)

// Harness is the test execution context of one scenario run.
type Harness struct {
	store  *store.Store
	logger *slog.Logger
}

// Run executes a test scenario and returns the result.
//
// Each scenario runs against a fresh in-memory database for isolation.
// Blank nodes are labelled sequentially, so output is reproducible.
//
// Execution flow:
// 1. Load configuration and apply scenario input overrides
// 2. Read the CSV and build the cube
// 3. Serialize the graph and snapshot it into the store
// 4. Evaluate assertions (or match expect_error)
//
// A returned error means the scenario could not be executed at all.
// Assertion failures are reported through Result.
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	h := &Harness{
		store:  st,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}

	ctx := context.Background()
	result := NewResult()

	format := rdf.FormatTurtle
	if scenario.Format != "" {
		if format, err = rdf.ParseFormat(scenario.Format); err != nil {
			return nil, err
		}
	}

	graph, output, convErr := h.convert(ctx, scenario, format)

	if scenario.ExpectError != "" {
		switch {
		case convErr == nil:
			result.AddError(fmt.Sprintf("expected error containing %q, conversion succeeded", scenario.ExpectError))
		case !strings.Contains(convErr.Error(), scenario.ExpectError):
			result.AddError(fmt.Sprintf("expected error containing %q, got: %v", scenario.ExpectError, convErr))
		}
		return result, nil
	}
	if convErr != nil {
		return nil, fmt.Errorf("failed to convert input: %w", convErr)
	}

	result.Graph = graph
	result.Output = output
	result.Triples = graph.Len()
	result.Observations = len(observations(graph))

	actx := &AssertionContext{
		Store:  st,
		Ctx:    ctx,
		Format: format,
	}
	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions, actx) {
		result.AddError(errMsg)
	}

	return result, nil
}

// convert runs the pipeline for a scenario and stores the graph under the
// dataset IRI.
func (h *Harness) convert(ctx context.Context, s *Scenario, format rdf.Format) (*rdf.Graph, string, error) {
	cfg, err := config.Load(s.Config)
	if err != nil {
		return nil, "", err
	}
	if s.Input.Delimiter != "" {
		cfg.Input.Delimiter = s.Input.Delimiter
	}
	if s.Input.Encoding != "" {
		cfg.Input.Encoding = s.Input.Encoding
	}

	req := cube.Request{Config: cfg, Format: format}
	if s.Minimal {
		req.Variant = cube.VariantMinimal
	}

	var conv *cube.Conversion
	if s.Input.File != "" {
		conv, err = cube.ConvertFile(s.Input.File, req)
	} else {
		conv, err = cube.Convert(strings.NewReader(s.Input.CSV), req)
	}
	if err != nil {
		return nil, "", err
	}

	if err := h.store.WriteGraph(ctx, conv.Schema.Dataset.Value, conv.Graph); err != nil {
		return nil, "", err
	}

	h.logger.Debug("scenario converted",
		"scenario", s.Name,
		"records", conv.Records,
		"triples", conv.Graph.Len(),
	)
	return conv.Graph, string(conv.Output), nil
}

func observations(g *rdf.Graph) []rdf.Term {
	return g.Subjects(rdf.IRI(vocab.RDFType), rdf.IRI(vocab.QBObservation))
}
