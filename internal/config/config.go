// Package config loads carecube settings: where the input is, how to read it,
// which columns hold the grouping fields, and the dataset metadata.
//
// Settings are described by an embedded CUE schema with defaults. A user file
// is unified with that schema, so typos and out-of-range values are rejected
// before any input is read.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"

	"github.com/roach88/carecube/internal/loader"
)

//go:embed schema.cue
var schemaCUE string

// Labels is a Czech/English pair.
type Labels struct {
	CS string `json:"cs"`
	EN string `json:"en"`
}

// Input describes the CSV source.
type Input struct {
	Path      string `json:"path"`
	Encoding  string `json:"encoding"`
	Delimiter string `json:"delimiter"`
}

// Columns names the header cells of the grouping fields.
type Columns struct {
	County      string `json:"county"`
	Region      string `json:"region"`
	FieldOfCare string `json:"field_of_care"`
}

// Dataset is the publication metadata attached to the dataset resource.
type Dataset struct {
	Label       Labels   `json:"label"`
	Title       Labels   `json:"title"`
	Description Labels   `json:"description"`
	Comment     Labels   `json:"comment"`
	Issued      string   `json:"issued"`
	Modified    string   `json:"modified"`
	Publisher   string   `json:"publisher"`
	License     string   `json:"license"`
	Subjects    []string `json:"subjects"`
}

// Config is the complete, validated configuration.
type Config struct {
	Input   Input   `json:"input"`
	Columns Columns `json:"columns"`
	Dataset Dataset `json:"dataset"`
}

// Error reports an invalid configuration file.
type Error struct {
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "config: " + e.Message
	}
	return fmt.Sprintf("config %s: %s", e.Path, e.Message)
}

// Default returns the configuration with every default applied.
func Default() (*Config, error) {
	return load("", nil)
}

// Load reads a CUE file and applies it over the defaults.
// An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Message: err.Error()}
	}
	return load(path, data)
}

// Parse applies CUE source over the defaults. name is used in error messages.
func Parse(name string, src []byte) (*Config, error) {
	return load(name, src)
}

func load(name string, src []byte) (*Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, &Error{Message: fmt.Sprintf("embedded schema: %v", err)}
	}

	v := schema.LookupPath(cue.ParsePath("#Config"))
	if src != nil {
		user := ctx.CompileBytes(src, cue.Filename(name))
		if err := user.Err(); err != nil {
			return nil, &Error{Path: name, Message: formatCUEError(err)}
		}
		v = v.Unify(user)
	}

	if err := v.Validate(cue.Final(), cue.Concrete(true)); err != nil {
		return nil, &Error{Path: name, Message: formatCUEError(err)}
	}

	var cfg Config
	if err := v.Decode(&cfg); err != nil {
		return nil, &Error{Path: name, Message: formatCUEError(err)}
	}
	return &cfg, nil
}

// Delimiter returns the configured field separator as a rune.
func (c *Config) Delimiter() rune {
	for _, r := range c.Input.Delimiter {
		return r
	}
	return ','
}

// LoaderOptions returns the CSV reading options.
func (c *Config) LoaderOptions() loader.Options {
	return loader.Options{Delimiter: c.Delimiter(), Encoding: c.Input.Encoding}
}

// LoaderColumns returns the grouping column names.
func (c *Config) LoaderColumns() loader.Columns {
	return loader.Columns{
		County:      c.Columns.County,
		Region:      c.Columns.Region,
		FieldOfCare: c.Columns.FieldOfCare,
	}
}

// formatCUEError flattens a CUE error list into one message.
func formatCUEError(err error) string {
	errs := errors.Errors(err)
	if len(errs) <= 1 {
		return err.Error()
	}
	msg := errs[0].Error()
	for _, e := range errs[1:] {
		msg += "; " + e.Error()
	}
	return msg
}
