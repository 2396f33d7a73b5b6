package cli

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/roach88/carecube/internal/config"
	"github.com/roach88/carecube/internal/cube"
	"github.com/roach88/carecube/internal/loader"
	"github.com/roach88/carecube/internal/rdf"
	"github.com/roach88/carecube/internal/store"
	"github.com/roach88/carecube/internal/testutil"
	"github.com/roach88/carecube/internal/vocab"
)

func expectedGraph(t *testing.T) *rdf.Graph {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	records, err := loader.ReadRecords(strings.NewReader(testutil.TwoGroupsCSV), cfg.LoaderOptions(), cfg.LoaderColumns())
	require.NoError(t, err)
	return cube.Build(records, cube.Options{Metadata: cfg.Dataset}).Graph
}

func TestConvert_Turtle(t *testing.T) {
	input := testutil.WriteFile(t, "registry.csv", testutil.TwoGroupsCSV)

	stdout, stderr, err := execute(t, input)
	require.NoError(t, err)
	assert.Equal(t, readGolden(t)+Separator+"\n", stdout)
	assert.Empty(t, stderr)
}

func TestConvert_SubcommandMatchesRoot(t *testing.T) {
	input := testutil.WriteFile(t, "registry.csv", testutil.TwoGroupsCSV)

	fromRoot, _, err := execute(t, input)
	require.NoError(t, err)
	fromConvert, _, err := execute(t, "convert", input)
	require.NoError(t, err)

	assert.Equal(t, fromRoot, fromConvert)
}

func TestConvert_DefaultInputPath(t *testing.T) {
	want := readGolden(t) + Separator + "\n"
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, loader.DefaultPath), []byte(testutil.TwoGroupsCSV), 0644))
	t.Chdir(dir)

	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, want, stdout)
}

func TestConvert_SeparatorIs80Hyphens(t *testing.T) {
	assert.Equal(t, 80, len(Separator))
	assert.Equal(t, strings.Repeat("-", 80), Separator)
}

func TestConvert_NTriples(t *testing.T) {
	input := testutil.WriteFile(t, "registry.csv", testutil.TwoGroupsCSV)

	stdout, _, err := execute(t, input, "--rdf-format", "ntriples")
	require.NoError(t, err)

	body, ok := strings.CutSuffix(stdout, Separator+"\n")
	require.True(t, ok)
	assert.NotContains(t, body, "@prefix")

	parsed, err := rdf.Parse(strings.NewReader(body), rdf.FormatNTriples)
	require.NoError(t, err)
	assert.True(t, rdf.Equal(expectedGraph(t), parsed))
}

func TestConvert_Verify(t *testing.T) {
	input := testutil.WriteFile(t, "registry.csv", `Okres,Kraj,OborPece
"Praha, hlavní město",Hlavní město Praha,"lékař ""první"" volby"
`)

	for _, format := range []string{"turtle", "ntriples"} {
		t.Run(format, func(t *testing.T) {
			_, _, err := execute(t, input, "--verify", "--rdf-format", format)
			assert.NoError(t, err)
		})
	}
}

func TestVerifyRoundTrip_Mismatch(t *testing.T) {
	g := rdf.NewGraph()
	g.Add(rdf.IRI(vocab.Dataset), rdf.IRI(vocab.RDFType), rdf.IRI(vocab.QBDataSet))
	g.Add(rdf.IRI(vocab.Dataset), rdf.IRI(vocab.RDFSLabel), rdf.LangString("Number of care providers", "en"))

	data := "<" + vocab.Dataset + "> <" + vocab.RDFType + "> <" + vocab.QBDataSet + "> .\n"
	err := verifyRoundTrip(g, []byte(data), rdf.FormatNTriples)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "1 triple(s) lost, 0 triple(s) added")
}

func TestVerifyRoundTrip_Unparseable(t *testing.T) {
	err := verifyRoundTrip(rdf.NewGraph(), []byte("<not a triple"), rdf.FormatNTriples)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeRoundTrip)
}

func TestConvert_Minimal(t *testing.T) {
	input := testutil.WriteFile(t, "registry.csv", testutil.TwoGroupsCSV)

	stdout, _, err := execute(t, input, "--minimal")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "sdmx")
	assert.NotContains(t, stdout, "dct:")
	assert.Contains(t, stdout, "ns:field_of_care a rdfs:Property, qb:DimensionProperty")
}

func TestConvert_UUIDBlankNodes(t *testing.T) {
	input := testutil.WriteFile(t, "registry.csv", testutil.TwoGroupsCSV)

	stdout, _, err := execute(t, input, "--blank-nodes", "uuid", "--verify")
	require.NoError(t, err)

	labels := regexp.MustCompile(`_:b[0-9a-f]{32}\b`).FindAllString(stdout, -1)
	assert.NotEmpty(t, labels)
	assert.NotContains(t, stdout, "_:b1 ")
}

func TestConvert_DB(t *testing.T) {
	input := testutil.WriteFile(t, "registry.csv", testutil.TwoGroupsCSV)
	dbPath := filepath.Join(t.TempDir(), "cube.db")

	_, _, err := execute(t, input, "--db", dbPath)
	require.NoError(t, err)

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	stored, err := st.ReadGraph(context.Background(), vocab.Dataset)
	require.NoError(t, err)
	assert.True(t, rdf.Equal(expectedGraph(t), stored))
}

func TestConvert_EncodingAndDelimiter(t *testing.T) {
	text := "Okres;Kraj;OborPece\nPraha-západ;Středočeský kraj;všeobecné praktické lékařství\n"
	encoded, err := charmap.Windows1250.NewEncoder().String(text)
	require.NoError(t, err)
	input := testutil.WriteFile(t, "registry.csv", encoded)

	stdout, _, err := execute(t, input, "--encoding", "windows-1250", "--delimiter", ";")
	require.NoError(t, err)
	assert.Contains(t, stdout, `ns:county "Praha-západ"`)
	assert.Contains(t, stdout, `ns:field_of_care "všeobecné praktické lékařství"`)
}

func TestConvert_ConfigFile(t *testing.T) {
	cfgPath := testutil.WriteFile(t, "carecube.cue", `
columns: {county: "District", region: "Province", field_of_care: "Specialty"}
dataset: issued: "2024-01-31"
`)
	input := testutil.WriteFile(t, "registry.csv", "District,Province,Specialty\nNorth,Upland,dermatology\n")

	stdout, _, err := execute(t, input, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, `ns:county "North"`)
	assert.Contains(t, stdout, `dct:issued "2024-01-31"^^xsd:date`)
}

func TestConvert_VerboseLogsToStderr(t *testing.T) {
	input := testutil.WriteFile(t, "registry.csv", testutil.TwoGroupsCSV)

	stdout, stderr, err := execute(t, input, "--verbose")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "@prefix"))
	assert.Contains(t, stderr, "records loaded")
	assert.Contains(t, stderr, "cube built")
	assert.Contains(t, stderr, "observations=2")
}

func TestConvert_Errors(t *testing.T) {
	valid := testutil.WriteFile(t, "registry.csv", testutil.TwoGroupsCSV)
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"missing file", []string{filepath.Join(dir, "nope.csv")}, ErrCodeInputFile},
		{"malformed csv", []string{testutil.WriteFile(t, "bad.csv", "Okres,Kraj,OborPece\nA,X\n")}, ErrCodeMalformedCSV},
		{"missing column", []string{testutil.WriteFile(t, "cols.csv", "Okres,Kraj\nA,X\n")}, ErrCodeMissingColumn},
		{"invalid utf-8", []string{testutil.WriteFile(t, "latin.csv", "Okres,Kraj,OborPece\nA,X,\xe9\n")}, ErrCodeEncoding},
		{"unknown encoding", []string{valid, "--encoding", "klingon"}, ErrCodeEncoding},
		{"invalid config", []string{valid, "--config", testutil.WriteFile(t, "bad.cue", `input: delimiter: "::"`)}, ErrCodeInvalidConfig},
		{"missing config", []string{valid, "--config", filepath.Join(dir, "none.cue")}, ErrCodeInvalidConfig},
		{"bad rdf format", []string{valid, "--rdf-format", "rdfxml"}, ErrCodeInvalidFlag},
		{"bad blank nodes", []string{valid, "--blank-nodes", "random"}, ErrCodeInvalidFlag},
		{"bad delimiter", []string{valid, "--delimiter", ";;"}, ErrCodeInvalidFlag},
		{"db in missing dir", []string{valid, "--db", filepath.Join(dir, "a", "b", "cube.db")}, ErrCodeStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), tt.code+": "), "got %q", err.Error())
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Empty(t, stdout, "nothing may be printed on failure")
		})
	}
}

func TestConvert_FormatAliases(t *testing.T) {
	input := testutil.WriteFile(t, "registry.csv", testutil.TwoGroupsCSV)

	full, _, err := execute(t, input, "--rdf-format", "ntriples")
	require.NoError(t, err)
	alias, _, err := execute(t, input, "--rdf-format", ".nt")
	require.NoError(t, err)
	assert.Equal(t, full, alias)
}
