package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/carecube/internal/loader"
)

func TestTwoGroupRecords_MatchCSV(t *testing.T) {
	records, err := loader.ReadRecords(strings.NewReader(TwoGroupsCSV), loader.Options{}, loader.DefaultColumns())
	require.NoError(t, err)
	assert.Equal(t, TwoGroupRecords(), records)
}

func TestSampleGraph(t *testing.T) {
	g := SampleGraph()
	assert.Equal(t, 7, g.Len())

	var blanks, literals int
	for _, tr := range g.Triples() {
		if tr.Subject.IsBlank() || tr.Object.IsBlank() {
			blanks++
		}
		if tr.Object.IsLiteral() {
			literals++
		}
	}
	assert.Equal(t, 2, blanks)
	assert.Equal(t, 4, literals)
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "a.csv", "x")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}
