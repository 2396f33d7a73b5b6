package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/roach88/carecube/internal/rdf"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Input is the CSV to convert.
	Input Input `yaml:"input"`

	// Config is an optional CUE file applied over the defaults.
	// Relative paths are resolved against the scenario file location.
	Config string `yaml:"config,omitempty"`

	// Minimal selects the minimal schema variant.
	Minimal bool `yaml:"minimal,omitempty"`

	// Format is the serialization format. Empty means turtle.
	Format string `yaml:"format,omitempty"`

	// ExpectError, when set, makes the scenario pass only if conversion
	// fails with an error containing this text.
	ExpectError string `yaml:"expect_error,omitempty"`

	// Assertions validate the built graph.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Input holds the CSV source of a scenario. Exactly one of CSV and File is set.
type Input struct {
	// CSV is inline CSV text.
	CSV string `yaml:"csv,omitempty"`

	// File is a CSV file path, relative to the scenario file location.
	File string `yaml:"file,omitempty"`

	// Delimiter overrides the configured field separator (one character).
	Delimiter string `yaml:"delimiter,omitempty"`

	// Encoding overrides the configured charset.
	Encoding string `yaml:"encoding,omitempty"`
}

// Assertion validates the built graph.
type Assertion struct {
	// Type specifies the assertion type:
	// - "observation_count": exactly Count observations
	// - "observation": an observation with County/Region/FieldOfCare and Count
	// - "contains": triple Subject Predicate (Object | Literal) is present
	// - "triple_count": exactly Count triples
	// - "round_trip": serialized output parses back to an equal graph
	// - "store_round_trip": stored snapshot reads back as an equal graph
	Type string `yaml:"type"`

	// Count is the expected number (observation_count, observation, triple_count).
	Count int `yaml:"count,omitempty"`

	// Key fields (used by observation).
	County      string `yaml:"county,omitempty"`
	Region      string `yaml:"region,omitempty"`
	FieldOfCare string `yaml:"field_of_care,omitempty"`

	// Triple pattern (used by contains). Object is an IRI; Literal is a
	// string literal with optional Lang or Datatype.
	Subject   string  `yaml:"subject,omitempty"`
	Predicate string  `yaml:"predicate,omitempty"`
	Object    string  `yaml:"object,omitempty"`
	Literal   *string `yaml:"literal,omitempty"`
	Lang      string  `yaml:"lang,omitempty"`
	Datatype  string  `yaml:"datatype,omitempty"`
}

// Assertion type constants.
const (
	AssertObservationCount = "observation_count"
	AssertObservation      = "observation"
	AssertContains         = "contains"
	AssertTripleCount      = "triple_count"
	AssertRoundTrip        = "round_trip"
	AssertStoreRoundTrip   = "store_round_trip"
)

// LoadScenario reads and parses a scenario YAML file.
// Relative input and config paths are resolved against the file's directory.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	base := filepath.Dir(path)
	scenario.Input.File = resolve(base, scenario.Input.File)
	scenario.Config = resolve(base, scenario.Config)

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch {
	case s.Input.CSV == "" && s.Input.File == "":
		return fmt.Errorf("input: one of csv or file is required")
	case s.Input.CSV != "" && s.Input.File != "":
		return fmt.Errorf("input: csv and file are mutually exclusive")
	}

	if s.Input.File != "" {
		if _, err := os.Stat(s.Input.File); os.IsNotExist(err) {
			return fmt.Errorf("input file not found: %s", s.Input.File)
		}
	}
	if s.Config != "" {
		if _, err := os.Stat(s.Config); os.IsNotExist(err) {
			return fmt.Errorf("config file not found: %s", s.Config)
		}
	}

	if s.Input.Delimiter != "" && utf8.RuneCountInString(s.Input.Delimiter) != 1 {
		return fmt.Errorf("input.delimiter must be a single character, got %q", s.Input.Delimiter)
	}

	if s.Format != "" {
		if _, err := rdf.ParseFormat(s.Format); err != nil {
			return err
		}
	}

	if s.ExpectError == "" && len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required unless expect_error is set")
	}
	if s.ExpectError != "" && len(s.Assertions) > 0 {
		return fmt.Errorf("assertions cannot be combined with expect_error")
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertObservationCount, AssertTripleCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for %s", index, a.Type)
		}
	case AssertObservation:
		if a.Count < 1 {
			return fmt.Errorf("assertions[%d]: count must be at least 1 for observation", index)
		}
	case AssertContains:
		if a.Subject == "" || a.Predicate == "" {
			return fmt.Errorf("assertions[%d]: subject and predicate are required for contains", index)
		}
		if (a.Object == "") == (a.Literal == nil) {
			return fmt.Errorf("assertions[%d]: exactly one of object or literal is required for contains", index)
		}
		if a.Lang != "" && a.Datatype != "" {
			return fmt.Errorf("assertions[%d]: lang and datatype are mutually exclusive", index)
		}
	case AssertRoundTrip, AssertStoreRoundTrip:
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
