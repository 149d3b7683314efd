package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cages/internal/runid"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "cages", cmd.Use)
	assert.Contains(t, cmd.Long, "Killer Sudoku")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, cmdName := range []string{"solve", "test"} {
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

func TestSolveCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	solveCmd, _, err := cmd.Find([]string{"solve"})
	require.NoError(t, err)

	for _, name := range []string{"sum", "digits", "exclude", "max-digit", "limit", "file"} {
		assert.NotNil(t, solveCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "f", solveCmd.Flags().Lookup("file").Shorthand)
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	opts := &RootOptions{Env: map[string]string{}, RunIDs: runid.NewFixedGenerator("run-1")}
	cmd := newRootCommand(opts)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"solve", "--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid format "xml"`)
	assert.Empty(t, buf.String())
}

func TestRootCommand_VerboseLogsToStderr(t *testing.T) {
	opts := &RootOptions{Env: map[string]string{}, RunIDs: runid.NewFixedGenerator("run-verbose")}
	cmd := newRootCommand(opts)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"solve", "-v"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "[9, 6, 4, 1]\n[8, 6, 5, 1]\n[8, 5, 4, 3]\n", out.String())
	assert.Contains(t, errOut.String(), "level=DEBUG")
	assert.Contains(t, errOut.String(), "run_id=run-verbose")
	assert.Contains(t, errOut.String(), "combinations=3")
}
