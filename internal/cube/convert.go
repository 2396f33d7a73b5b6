package cube

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/carecube/internal/config"
	"github.com/roach88/carecube/internal/loader"
	"github.com/roach88/carecube/internal/rdf"
	"github.com/roach88/carecube/internal/vocab"
)

// ErrSerialize marks a failure to serialize the built graph.
var ErrSerialize = errors.New("serialize graph")

// Request is one end-to-end conversion: read records, build, serialize.
type Request struct {
	// Config supplies loader options, column names and dataset metadata.
	Config *config.Config

	Variant Variant
	Blanks  rdf.BlankGenerator

	// Format is the serialization. Empty means Turtle.
	Format rdf.Format
}

// Conversion is the outcome of a Request.
type Conversion struct {
	*Result

	// Records is the number of data rows read.
	Records int

	// Output is the serialized graph.
	Output []byte
}

// ConvertFile converts the CSV at path.
func ConvertFile(path string, req Request) (*Conversion, error) {
	records, err := loader.LoadFile(path, req.Config.LoaderOptions(), req.Config.LoaderColumns())
	if err != nil {
		return nil, err
	}
	slog.Debug("records loaded", "path", path, "records", len(records), "encoding", req.Config.Input.Encoding)
	return convert(records, req)
}

// Convert converts CSV text read from r.
func Convert(r io.Reader, req Request) (*Conversion, error) {
	records, err := loader.ReadRecords(r, req.Config.LoaderOptions(), req.Config.LoaderColumns())
	if err != nil {
		return nil, err
	}
	slog.Debug("records loaded", "records", len(records), "encoding", req.Config.Input.Encoding)
	return convert(records, req)
}

func convert(records []loader.Record, req Request) (*Conversion, error) {
	format := req.Format
	if format == "" {
		format = rdf.FormatTurtle
	}

	built := Build(records, Options{
		Variant:  req.Variant,
		Metadata: req.Config.Dataset,
		Blanks:   req.Blanks,
	})

	var buf bytes.Buffer
	if err := rdf.Serialize(&buf, built.Graph, format, vocab.Prefixes()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	slog.Debug("graph serialized",
		"format", string(format),
		"media_type", rdf.FormatRegistry[format].MIMEType,
		"bytes", buf.Len(),
	)

	return &Conversion{Result: built, Records: len(records), Output: buf.Bytes()}, nil
}
