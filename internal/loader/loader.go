package loader

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
)

// DefaultPath is the registry export name looked up in the working directory.
const DefaultPath = "narodni-registr-poskytovatelu-zdravotnich-sluzeb.csv"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options controls how the CSV bytes are interpreted.
type Options struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter rune

	// Encoding is an IANA charset name. Empty means UTF-8.
	Encoding string
}

// Columns names the header cells that hold the grouping fields.
type Columns struct {
	County      string
	Region      string
	FieldOfCare string
}

// DefaultColumns returns the registry's column names.
func DefaultColumns() Columns {
	return Columns{
		County:      "Okres",
		Region:      "Kraj",
		FieldOfCare: "OborPece",
	}
}

// Record is one input row reduced to the fields the cube uses.
type Record struct {
	// Line is the 1-based line where the row starts, for diagnostics.
	Line int

	County      string
	Region      string
	FieldOfCare string
}

// Table is the whole CSV held in memory as strings.
type Table struct {
	Header []string
	Rows   [][]string
	Lines  []int

	index map[string]int
}

// Column returns the position of the named column.
// If the header repeats a name, the first occurrence wins.
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Value returns the cell of row in the named column.
func (t *Table) Value(row int, column string) (string, bool) {
	i, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	return t.Rows[row][i], true
}

// Records projects the grouping columns. All missing columns are reported at once.
func (t *Table) Records(cols Columns) ([]Record, error) {
	var missing []string
	positions := make([]int, 0, 3)
	for _, name := range []string{cols.County, cols.Region, cols.FieldOfCare} {
		i, ok := t.index[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		positions = append(positions, i)
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Missing: missing, Header: t.Header}
	}

	records := make([]Record, len(t.Rows))
	for r, row := range t.Rows {
		records[r] = Record{
			Line:        t.Lines[r],
			County:      row[positions[0]],
			Region:      row[positions[1]],
			FieldOfCare: row[positions[2]],
		}
	}
	return records, nil
}

// ReadTable parses CSV text with a header row.
// Every row must have the same number of fields as the header.
func ReadTable(r io.Reader, opts Options) (*Table, error) {
	decoded, checkUTF8, err := decode(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(decoded)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Line: 1, Err: ErrNoHeader}
	}
	if err != nil {
		return nil, convertCSVError(err)
	}
	if checkUTF8 {
		if err := validateUTF8(header, 1); err != nil {
			return nil, err
		}
	}

	t := &Table{
		Header: header,
		index:  make(map[string]int, len(header)),
	}
	for i, name := range header {
		if _, dup := t.index[name]; !dup {
			t.index[name] = i
		}
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, convertCSVError(err)
		}
		line, _ := cr.FieldPos(0)
		if checkUTF8 {
			if err := validateUTF8(row, line); err != nil {
				return nil, err
			}
		}
		t.Rows = append(t.Rows, row)
		t.Lines = append(t.Lines, line)
	}

	return t, nil
}

// ReadRecords parses CSV text and projects the grouping columns.
func ReadRecords(r io.Reader, opts Options, cols Columns) ([]Record, error) {
	t, err := ReadTable(r, opts)
	if err != nil {
		return nil, err
	}
	return t.Records(cols)
}

// LoadFile reads the CSV at path.
func LoadFile(path string, opts Options, cols Columns) ([]Record, error) {
	t, err := LoadTable(path, opts)
	if err != nil {
		return nil, err
	}
	return t.Records(cols)
}

// LoadTable reads the CSV at path into a Table.
func LoadTable(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	t, err := ReadTable(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// decode wraps r so that it yields UTF-8. For UTF-8 input the bytes pass
// through untouched (minus a leading BOM) and the caller must validate them.
func decode(r io.Reader, name string) (io.Reader, bool, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		br := bufio.NewReader(r)
		if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
			_, _ = br.Discard(len(utf8BOM))
		}
		return br, true, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, false, &EncodingError{Name: name}
	}
	return enc.NewDecoder().Reader(r), false, nil
}

func validateUTF8(fields []string, line int) error {
	for i, f := range fields {
		if !utf8.ValidString(f) {
			return &ParseError{Line: line, Column: i + 1, Err: ErrInvalidUTF8}
		}
	}
	return nil
}

func convertCSVError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Line: pe.Line, Column: pe.Column, Err: pe.Err}
	}
	return &ParseError{Err: err}
}
