package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

var (
	// ErrFileNotFound matches any load error caused by a missing input file.
	ErrFileNotFound = errors.New("input file not found")

	// ErrNoHeader is returned for input without a header row.
	ErrNoHeader = errors.New("missing header row")

	// ErrInvalidUTF8 is returned when a UTF-8 input contains invalid byte sequences.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// FileError reports a failure to open or read the input file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFileNotFound) true for missing files.
func (e *FileError) Is(target error) bool {
	return target == ErrFileNotFound && errors.Is(e.Err, fs.ErrNotExist)
}

// ParseError reports malformed CSV content.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	if e.Column > 0 {
		return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingColumnError reports required columns absent from the header.
type MissingColumnError struct {
	Missing []string
	Header  []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column(s) %s; header has %s",
		quoteAll(e.Missing), quoteAll(e.Header))
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// EncodingError reports an unknown character encoding name.
type EncodingError struct {
	Name string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unsupported encoding %q", e.Name)
}
