package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "carecube", cmd.Name())
	assert.Contains(t, cmd.Long, "RDF Data Cube")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"convert", "validate", "test"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestConvertFlagsOnRootAndSubcommand(t *testing.T) {
	root := NewRootCommand()
	convert, _, err := root.Find([]string{"convert"})
	require.NoError(t, err)

	defaults := map[string]string{
		"config":      "",
		"encoding":    "",
		"delimiter":   "",
		"rdf-format":  "turtle",
		"blank-nodes": "seq",
		"minimal":     "false",
		"verify":      "false",
		"db":          "",
	}
	for name, def := range defaults {
		rootFlag := root.Flags().Lookup(name)
		require.NotNil(t, rootFlag, "root --%s", name)
		assert.Equal(t, def, rootFlag.DefValue)

		subFlag := convert.Flags().Lookup(name)
		require.NotNil(t, subFlag, "convert --%s", name)
		assert.Equal(t, def, subFlag.DefValue)
	}
}

func TestValidateCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	validateCmd, _, err := cmd.Find([]string{"validate"})
	require.NoError(t, err)

	configFlag := validateCmd.Flags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Nil(t, validateCmd.Flags().Lookup("rdf-format"))
}

func TestTestCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	testCmd, _, err := cmd.Find([]string{"test"})
	require.NoError(t, err)

	assert.NotNil(t, testCmd.Flags().Lookup("update"))
	assert.NotNil(t, testCmd.Flags().Lookup("filter"))
}

func TestInvalidReportFormat(t *testing.T) {
	_, _, err := execute(t, "validate", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeInvalidFlag)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestParseErrorsAreCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown root flag", []string{"--bogus"}},
		{"unknown convert flag", []string{"convert", "--nope"}},
		{"bad bool", []string{"--verify=maybe"}},
		{"unknown validate flag", []string{"validate", "--minimal"}},
		{"bad test bool", []string{"test", ".", "--update=x"}},
		{"too many inputs", []string{"a.csv", "b.csv"}},
		{"test without dir", []string{"test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.True(t, strings.HasPrefix(err.Error(), ErrCodeInvalidFlag+": "), "got %q", err.Error())
			assert.Empty(t, stdout)
		})
	}
}
