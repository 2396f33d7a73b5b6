package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/carecube/internal/cube"
	"github.com/roach88/carecube/internal/loader"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid   bool     `json:"valid"`
	Path    string   `json:"path"`
	Rows    int      `json:"rows"`
	Groups  int      `json:"groups"`
	Header  []string `json:"header"`
	Columns []string `json:"columns"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InputOptions{}

	cmd := &cobra.Command{
		Use:   "validate [csv-file]",
		Short: "Check the input CSV without producing a cube",
		Long: `Check that the input CSV can be read and has the grouping columns.

Reports the number of data rows and distinct (county, region, field of care)
groups, which is the number of observations a conversion would emit.`,
		Args:          commandArgs(cobra.MaximumNArgs(1)),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, opts, args, cmd)
		},
	}

	addInputFlags(cmd, opts)
	return cmd
}

func runValidate(rootOpts *RootOptions, opts *InputOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  rootOpts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: rootOpts.Verbose,
	}

	cfg, path, err := resolveInput(opts, args)
	if err != nil {
		return outputValidateError(formatter, err)
	}
	slog.Debug("reading input", "path", path, "encoding", cfg.Input.Encoding, "delimiter", cfg.Input.Delimiter)

	table, err := loader.LoadTable(path, cfg.LoaderOptions())
	if err != nil {
		return outputValidateError(formatter, commandError(classifyError(err), err))
	}

	cols := cfg.LoaderColumns()
	records, err := table.Records(cols)
	if err != nil {
		return outputValidateError(formatter, commandError(classifyError(err), err))
	}

	result := ValidationResult{
		Valid:   true,
		Path:    path,
		Rows:    len(records),
		Groups:  len(cube.Aggregate(records)),
		Header:  table.Header,
		Columns: []string{cols.County, cols.Region, cols.FieldOfCare},
	}
	return outputValidateSuccess(formatter, result)
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "✓ %s: %d rows, %d groups\n", result.Path, result.Rows, result.Groups)
	fmt.Fprintf(w, "  columns: %s\n", strings.Join(result.Columns, ", "))
	return nil
}

// outputValidateError reports err through the formatter and returns it.
// Validation errors are command-level errors (exit code 2).
func outputValidateError(formatter *OutputFormatter, err error) error {
	code, message := splitCode(err)
	_ = formatter.Error(code, message, nil)
	return err
}

// splitCode separates the "E0xx" prefix an ExitError message carries.
func splitCode(err error) (code, message string) {
	code, rest, ok := strings.Cut(err.Error(), ": ")
	if !ok || len(code) != 4 || code[0] != 'E' {
		return ErrCodeGeneric, err.Error()
	}
	return code, rest
}
