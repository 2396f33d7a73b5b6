package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/carecube/internal/config"
	"github.com/roach88/carecube/internal/cube"
	"github.com/roach88/carecube/internal/loader"
)

// Error codes reported in CLI errors and JSON responses.
const (
	ErrCodeGeneric        = "E001" // Generic/unknown error
	ErrCodeInputFile      = "E002" // Input file missing or unreadable
	ErrCodeMalformedCSV   = "E003" // CSV syntax or field count error
	ErrCodeMissingColumn  = "E004" // Required column absent from header
	ErrCodeNotFound       = "E005" // Path not found
	ErrCodeInvalidConfig  = "E006" // Config file rejected
	ErrCodeWriteFailed    = "E007" // Output write error
	ErrCodeEncoding       = "E008" // Unsupported or invalid character encoding
	ErrCodeInvalidFlag    = "E009" // Invalid flag or argument
	ErrCodeSerialize      = "E010" // RDF serialization failed
	ErrCodeRoundTrip      = "E011" // Reparsed output differs from the graph
	ErrCodeStore          = "E012" // SQLite export failed
	ErrCodeScenarioFailed = "E013" // One or more scenarios failed
)

// classifyError maps pipeline errors to error codes.
func classifyError(err error) string {
	var (
		encErr    *loader.EncodingError
		colErr    *loader.MissingColumnError
		parseErr  *loader.ParseError
		fileErr   *loader.FileError
		configErr *config.Error
	)

	switch {
	case errors.As(err, &encErr), errors.Is(err, loader.ErrInvalidUTF8):
		return ErrCodeEncoding
	case errors.As(err, &colErr):
		return ErrCodeMissingColumn
	case errors.As(err, &fileErr):
		return ErrCodeInputFile
	case errors.As(err, &parseErr):
		return ErrCodeMalformedCSV
	case errors.As(err, &configErr):
		return ErrCodeInvalidConfig
	case errors.Is(err, cube.ErrSerialize):
		return ErrCodeSerialize
	default:
		return ErrCodeGeneric
	}
}

// commandError wraps err as an exit-code-2 error tagged with its code.
func commandError(code string, err error) *ExitError {
	return WrapExitError(ExitCommandError, code, err)
}

// flagError reports an invalid flag value.
func flagError(flag, value string, allowed []string) *ExitError {
	return NewExitError(ExitCommandError,
		fmt.Sprintf("%s: invalid --%s %q: must be one of %v", ErrCodeInvalidFlag, flag, value, allowed))
}

// commandArgs reports a failed positional argument check as a command error.
func commandArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return commandError(ErrCodeInvalidFlag, err)
		}
		return nil
	}
}
