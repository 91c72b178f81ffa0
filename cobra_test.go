package args

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newCommand(t *testing.T, run RunFunc, words ...string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	set := MustSet([]Spec{
		Arg[string]("file", Desc("File to read")),
		OptDefault("lines|n", 10, Desc("Number of lines")),
	})

	cmd := set.Command("head", run)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(words)

	return cmd, stdout, stderr
}

func TestCommand(t *testing.T) {
	t.Parallel()

	var got *Result

	run := func(_ *cobra.Command, res *Result) error {
		got = res

		return nil
	}

	cmd, _, _ := newCommand(t, run, "-n", "3", "notes.txt")
	require.NoError(t, cmd.Execute())

	require.NotNil(t, got)
	require.Equal(t, "notes.txt", got.Operands["file"])
	require.Equal(t, 3, got.Options["lines"])
}

func TestCommandHelp(t *testing.T) {
	t.Parallel()

	run := func(*cobra.Command, *Result) error {
		t.Fatal("command should not run when help is wanted")

		return nil
	}

	cmd, stdout, _ := newCommand(t, run, "--help")
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	require.Contains(t, out, "Usage: head <file> [options]\n\n")
	require.Contains(t, out, "-n, --lines int")
	require.Contains(t, out, "File to read")
}

func TestCommandError(t *testing.T) {
	t.Parallel()

	cmd, _, stderr := newCommand(t, nil, "--lines", "ten", "notes.txt")
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Equal(t, "Usage: head <file> [options]\n", stderr.String())
}
