package cli

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/roach88/carecube/internal/config"
	"github.com/roach88/carecube/internal/cube"
	"github.com/roach88/carecube/internal/rdf"
	"github.com/roach88/carecube/internal/store"
)

// Separator is printed after the serialized graph.
var Separator = strings.Repeat("-", 80)

// Blank node strategies for --blank-nodes.
const (
	BlankNodesSeq  = "seq"
	BlankNodesUUID = "uuid"
)

// InputOptions holds the flags that locate and decode the CSV.
type InputOptions struct {
	Config    string // CUE config file
	Encoding  string // overrides input.encoding
	Delimiter string // overrides input.delimiter
}

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	InputOptions
	RDFFormat  string // turtle | ntriples
	BlankNodes string // seq | uuid
	Minimal    bool   // minimal schema variant
	Verify     bool   // reparse output and compare
	DB         string // SQLite export path
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert [csv-file]",
		Short: "Convert the registry CSV to an RDF Data Cube",
		Long: `Convert the registry CSV to an RDF Data Cube and print it.

The input path defaults to the configured input.path, which is the registry
file name in the working directory. Nothing is printed unless the whole
conversion succeeds.

Exit codes:
  0 - Success
  1 - --verify found the reparsed output differs from the graph
  2 - Command error (missing file, malformed CSV, missing column, bad config)

Examples:
  carecube convert
  carecube convert registry.csv --encoding windows-1250 --delimiter ";"
  carecube convert registry.csv --rdf-format ntriples --verify
  carecube convert registry.csv --db cube.db`,
		Args:          commandArgs(cobra.MaximumNArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args, cmd)
		},
	}

	addConvertFlags(cmd, opts)
	return cmd
}

func addInputFlags(cmd *cobra.Command, opts *InputOptions) {
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "CUE config file")
	cmd.Flags().StringVar(&opts.Encoding, "encoding", "", "input charset (utf-8|windows-1250|iso-8859-2)")
	cmd.Flags().StringVar(&opts.Delimiter, "delimiter", "", "CSV field separator")
}

func addConvertFlags(cmd *cobra.Command, opts *ConvertOptions) {
	addInputFlags(cmd, &opts.InputOptions)
	cmd.Flags().StringVar(&opts.RDFFormat, "rdf-format", string(rdf.FormatTurtle), "serialization ("+strings.Join(rdf.Formats(), "|")+")")
	cmd.Flags().StringVar(&opts.BlankNodes, "blank-nodes", BlankNodesSeq, "blank node labels (seq|uuid)")
	cmd.Flags().BoolVar(&opts.Minimal, "minimal", false, "emit the minimal schema without SDMX links and metadata")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "reparse the output and compare it with the graph")
	cmd.Flags().StringVar(&opts.DB, "db", "", "also store the graph in this SQLite database")
}

// resolveInput loads the config and applies flag overrides. The returned path
// is the CSV to read.
func resolveInput(opts *InputOptions, args []string) (*config.Config, string, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, "", commandError(ErrCodeInvalidConfig, err)
	}

	if opts.Encoding != "" {
		cfg.Input.Encoding = opts.Encoding
	}
	if opts.Delimiter != "" {
		if utf8.RuneCountInString(opts.Delimiter) != 1 {
			return nil, "", NewExitError(ExitCommandError,
				fmt.Sprintf("%s: invalid --delimiter %q: must be a single character", ErrCodeInvalidFlag, opts.Delimiter))
		}
		cfg.Input.Delimiter = opts.Delimiter
	}

	path := cfg.Input.Path
	if len(args) > 0 {
		path = args[0]
	}
	return cfg, path, nil
}

func runConvert(opts *ConvertOptions, args []string, cmd *cobra.Command) error {
	format, err := rdf.ParseFormat(opts.RDFFormat)
	if err != nil {
		return flagError("rdf-format", opts.RDFFormat, rdf.Formats())
	}

	var blanks rdf.BlankGenerator
	switch opts.BlankNodes {
	case BlankNodesSeq:
		blanks = rdf.NewSequenceGenerator("b")
	case BlankNodesUUID:
		blanks = rdf.UUIDGenerator{}
	default:
		return flagError("blank-nodes", opts.BlankNodes, []string{BlankNodesSeq, BlankNodesUUID})
	}

	cfg, path, err := resolveInput(&opts.InputOptions, args)
	if err != nil {
		return err
	}

	variant := cube.VariantEnriched
	if opts.Minimal {
		variant = cube.VariantMinimal
	}

	// The output is buffered, so a failure leaves stdout untouched.
	conv, err := cube.ConvertFile(path, cube.Request{
		Config:  cfg,
		Variant: variant,
		Blanks:  blanks,
		Format:  format,
	})
	if err != nil {
		return commandError(classifyError(err), err)
	}

	if opts.Verify {
		if err := verifyRoundTrip(conv.Graph, conv.Output, format); err != nil {
			return err
		}
	}

	if opts.DB != "" {
		if err := exportGraph(cmd.Context(), opts.DB, conv.Result); err != nil {
			return commandError(ErrCodeStore, err)
		}
	}

	w := cmd.OutOrStdout()
	if _, err := w.Write(conv.Output); err != nil {
		return commandError(ErrCodeWriteFailed, err)
	}
	if _, err := fmt.Fprintln(w, Separator); err != nil {
		return commandError(ErrCodeWriteFailed, err)
	}
	return nil
}

// verifyRoundTrip parses the serialized output and compares it with g.
func verifyRoundTrip(g *rdf.Graph, data []byte, format rdf.Format) error {
	parsed, err := rdf.Parse(bytes.NewReader(data), format)
	if err != nil {
		return WrapExitError(ExitFailure, ErrCodeRoundTrip+": output does not parse", err)
	}

	onlyGraph, onlyParsed := rdf.Diff(g, parsed)
	if len(onlyGraph) > 0 || len(onlyParsed) > 0 {
		for _, k := range onlyGraph {
			slog.Debug("missing after reparse", "triple", k)
		}
		for _, k := range onlyParsed {
			slog.Debug("unexpected after reparse", "triple", k)
		}
		return NewExitError(ExitFailure, fmt.Sprintf(
			"%s: round trip mismatch: %d triple(s) lost, %d triple(s) added",
			ErrCodeRoundTrip, len(onlyGraph), len(onlyParsed)))
	}

	slog.Debug("round trip verified", "triples", parsed.Len())
	return nil
}

func exportGraph(ctx context.Context, path string, built *cube.Result) error {
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.WriteGraph(ctx, built.Schema.Dataset.Value, built.Graph); err != nil {
		return err
	}
	slog.Debug("graph stored", "db", path, "dataset", built.Schema.Dataset.Value, "triples", built.Graph.Len())
	return nil
}
