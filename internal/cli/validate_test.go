package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/carecube/internal/testutil"
)

func TestValidate_Text(t *testing.T) {
	input := testutil.WriteFile(t, "registry.csv", testutil.TwoGroupsCSV)

	stdout, _, err := execute(t, "validate", input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ "+input+": 3 rows, 2 groups")
	assert.Contains(t, stdout, "columns: Okres, Kraj, OborPece")
}

func TestValidate_JSON(t *testing.T) {
	input := testutil.WriteFile(t, "registry.csv", testutil.TwoGroupsCSV)

	stdout, _, err := execute(t, "validate", input, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Valid)
	assert.Equal(t, 3, resp.Data.Rows)
	assert.Equal(t, 2, resp.Data.Groups)
	assert.Equal(t, []string{"Okres", "Kraj", "OborPece"}, resp.Data.Header)
}

func TestValidate_MissingColumn(t *testing.T) {
	input := testutil.WriteFile(t, "registry.csv", "Okres,Kraj\nA,X\n")

	stdout, _, err := execute(t, "validate", input)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E004]: missing required column(s) [\"OborPece\"]")
}

func TestValidate_MissingFileJSON(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")

	stdout, _, err := execute(t, "validate", missing, "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInputFile, resp.Error.Code)
}

func TestValidate_Semicolon(t *testing.T) {
	input := testutil.WriteFile(t, "registry.csv", "Okres;Kraj;OborPece\nA;X;derm\n")

	stdout, _, err := execute(t, "validate", input, "--delimiter", ";")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 rows, 1 groups")
}

func TestValidate_VerboseLogsToStderr(t *testing.T) {
	input := testutil.WriteFile(t, "registry.csv", testutil.TwoGroupsCSV)

	stdout, stderr, err := execute(t, "validate", input, "--verbose", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "reading input")
	assert.Contains(t, stderr, "encoding=utf-8")
	assert.NotContains(t, stdout, "reading input")

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
}
