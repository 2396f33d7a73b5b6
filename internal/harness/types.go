package harness

import "github.com/roach88/carecube/internal/rdf"

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	Pass bool `json:"pass"`

	// Errors contains failed assertion messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Output is the serialized graph. Empty for expect_error scenarios.
	Output string `json:"-"`

	// Observations and Triples summarize the built graph.
	Observations int `json:"observations"`
	Triples      int `json:"triples"`

	// Graph is the built graph, nil for expect_error scenarios.
	Graph *rdf.Graph `json:"-"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
