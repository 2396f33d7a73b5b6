package cube

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/carecube/internal/config"
	"github.com/roach88/carecube/internal/loader"
	"github.com/roach88/carecube/internal/rdf"
	"github.com/roach88/carecube/internal/testutil"
	"github.com/roach88/carecube/internal/vocab"
)

func defaultRequest(t *testing.T) Request {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return Request{Config: cfg}
}

func TestConvert_MatchesBuildAndSerialize(t *testing.T) {
	req := defaultRequest(t)

	conv, err := Convert(strings.NewReader(testutil.TwoGroupsCSV), req)
	require.NoError(t, err)
	assert.Equal(t, 3, conv.Records)
	assert.Len(t, conv.Groups, 2)

	built := Build(testutil.TwoGroupRecords(), Options{Metadata: req.Config.Dataset})
	var want bytes.Buffer
	require.NoError(t, rdf.WriteTurtle(&want, built.Graph, vocab.Prefixes()))
	assert.Equal(t, want.String(), string(conv.Output))
	assert.True(t, rdf.Equal(built.Graph, conv.Graph))
}

func TestConvertFile_SameAsReader(t *testing.T) {
	req := defaultRequest(t)
	path := testutil.WriteFile(t, "registry.csv", testutil.TwoGroupsCSV)

	fromFile, err := ConvertFile(path, req)
	require.NoError(t, err)
	fromReader, err := Convert(strings.NewReader(testutil.TwoGroupsCSV), req)
	require.NoError(t, err)

	assert.Equal(t, fromReader.Output, fromFile.Output)
}

func TestConvert_RequestOptions(t *testing.T) {
	req := defaultRequest(t)
	req.Variant = VariantMinimal
	req.Format = rdf.FormatNTriples
	req.Blanks = rdf.NewFixedGenerator("c1", "c2", "c3", "c4")

	conv, err := Convert(strings.NewReader(testutil.TwoGroupsCSV), req)
	require.NoError(t, err)

	out := string(conv.Output)
	assert.NotContains(t, out, "@prefix")
	assert.NotContains(t, out, "sdmx")
	assert.Contains(t, out, "_:c1 ")

	parsed, err := rdf.Parse(bytes.NewReader(conv.Output), rdf.FormatNTriples)
	require.NoError(t, err)
	assert.True(t, rdf.Equal(conv.Graph, parsed))
}

func TestConvert_LoaderSettingsFromConfig(t *testing.T) {
	req := defaultRequest(t)
	req.Config.Input.Delimiter = ";"
	req.Config.Columns.County = "District"

	conv, err := Convert(strings.NewReader("District;Kraj;OborPece\nNorth;Upland;derm\n"), req)
	require.NoError(t, err)
	assert.Equal(t, []Group{{Key: Key{County: "North", Region: "Upland", FieldOfCare: "derm"}, Count: 1}}, conv.Groups)
}

func TestConvert_LoadErrors(t *testing.T) {
	req := defaultRequest(t)

	_, err := Convert(strings.NewReader("Okres,Kraj\nA,X\n"), req)
	var colErr *loader.MissingColumnError
	require.ErrorAs(t, err, &colErr)

	_, err = ConvertFile(filepath.Join(t.TempDir(), "missing.csv"), req)
	assert.ErrorIs(t, err, loader.ErrFileNotFound)
}

func TestConvert_SerializeError(t *testing.T) {
	req := defaultRequest(t)
	req.Format = rdf.Format("rdfxml")

	_, err := Convert(strings.NewReader(testutil.TwoGroupsCSV), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSerialize))
}
