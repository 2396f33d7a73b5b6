package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const registryCSV = `ZdravotnickeZarizeniId,Okres,Kraj,OborPece,Ico
1,Praha,Hlavní město Praha,dermatovenerologie,123
2,Praha,Hlavní město Praha,dermatovenerologie,456
3,Brno-město,Jihomoravský kraj,kardiologie,789
`

func TestReadRecords_ProjectsGroupingColumns(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(registryCSV), Options{}, DefaultColumns())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Record{Line: 2, County: "Praha", Region: "Hlavní město Praha", FieldOfCare: "dermatovenerologie"}, records[0])
	assert.Equal(t, "Brno-město", records[2].County)
	assert.Equal(t, 4, records[2].Line)
}

func TestReadTable_KeepsAllColumns(t *testing.T) {
	table, err := ReadTable(strings.NewReader(registryCSV), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"ZdravotnickeZarizeniId", "Okres", "Kraj", "OborPece", "Ico"}, table.Header)
	assert.Len(t, table.Rows, 3)

	v, ok := table.Value(1, "Ico")
	require.True(t, ok)
	assert.Equal(t, "456", v, "numeric-looking cells stay strings")

	_, ok = table.Value(5, "Ico")
	assert.False(t, ok)
	_, ok = table.Column("Nope")
	assert.False(t, ok)
}

func TestReadRecords_HeaderOnly(t *testing.T) {
	records, err := ReadRecords(strings.NewReader("Okres,Kraj,OborPece\n"), Options{}, DefaultColumns())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadRecords_EmptyInput(t *testing.T) {
	_, err := ReadRecords(strings.NewReader(""), Options{}, DefaultColumns())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoHeader)

	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestReadRecords_MissingColumns(t *testing.T) {
	_, err := ReadRecords(strings.NewReader("Okres,Region\nA,B\n"), Options{}, DefaultColumns())
	require.Error(t, err)

	var mce *MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, []string{"Kraj", "OborPece"}, mce.Missing)
	assert.Contains(t, err.Error(), `"Kraj"`)
	assert.Contains(t, err.Error(), `"OborPece"`)
}

func TestReadRecords_InconsistentFieldCount(t *testing.T) {
	input := "Okres,Kraj,OborPece\nA,X,derm\nB,Y\n"
	_, err := ReadRecords(strings.NewReader(input), Options{}, DefaultColumns())
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
}

func TestReadRecords_QuotedPunctuation(t *testing.T) {
	input := "Okres,Kraj,OborPece\n\"Praha, západ\",\"Kraj \"\"Střed\"\"\",derm\n"
	records, err := ReadRecords(strings.NewReader(input), Options{}, DefaultColumns())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "Praha, západ", records[0].County)
	assert.Equal(t, `Kraj "Střed"`, records[0].Region)
}

func TestReadRecords_ValuesNotNormalized(t *testing.T) {
	input := "Okres,Kraj,OborPece\n Praha ,X,derm\npraha,X,derm\n"
	records, err := ReadRecords(strings.NewReader(input), Options{}, DefaultColumns())
	require.NoError(t, err)

	assert.Equal(t, " Praha ", records[0].County)
	assert.Equal(t, "praha", records[1].County)
}

func TestReadRecords_Delimiter(t *testing.T) {
	input := "Okres;Kraj;OborPece\nA;X;derm\n"
	records, err := ReadRecords(strings.NewReader(input), Options{Delimiter: ';'}, DefaultColumns())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "derm", records[0].FieldOfCare)
}

func TestReadRecords_StripsUTF8BOM(t *testing.T) {
	input := "\xEF\xBB\xBFOkres,Kraj,OborPece\nA,X,derm\n"
	records, err := ReadRecords(strings.NewReader(input), Options{}, DefaultColumns())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestReadRecords_InvalidUTF8(t *testing.T) {
	input := "Okres,Kraj,OborPece\nA,\xff\xfe,derm\n"
	_, err := ReadRecords(strings.NewReader(input), Options{}, DefaultColumns())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 2, pe.Column)
}

func TestReadRecords_Windows1250(t *testing.T) {
	utf := "Okres,Kraj,OborPece\nŽďár nad Sázavou,Kraj Vysočina,všeobecné praktické lékařství\n"
	encoded, err := charmap.Windows1250.NewEncoder().String(utf)
	require.NoError(t, err)

	records, err := ReadRecords(strings.NewReader(encoded), Options{Encoding: "windows-1250"}, DefaultColumns())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Žďár nad Sázavou", records[0].County)
	assert.Equal(t, "všeobecné praktické lékařství", records[0].FieldOfCare)
}

func TestReadRecords_UnknownEncoding(t *testing.T) {
	_, err := ReadRecords(strings.NewReader("Okres\n"), Options{Encoding: "klingon-1"}, DefaultColumns())
	var ee *EncodingError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "klingon-1", ee.Name)
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv"), Options{}, DefaultColumns())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_ReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(registryCSV), 0644))

	records, err := LoadFile(path, Options{}, DefaultColumns())
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestLoadFile_ParseErrorMentionsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("Okres,Kraj,OborPece\n\"unterminated,X,Y\n"), 0644))

	_, err := LoadFile(path, Options{}, DefaultColumns())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.csv")

	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}
