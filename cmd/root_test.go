package cmd

import (
	"bytes"
	"minimax/game"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunSearch(t *testing.T) {
	t.Run("king escape ends the game", func(t *testing.T) {
		input := writeInput(t, "WbbbbbbbbbbbbbbB\n")
		output := filepath.Join(t.TempDir(), "output.txt")

		code, stdout, _ := runCLI(input, output, "3")

		require.Equal(t, 0, code)
		require.Equal(t, "Board Position: xbbbbbbbbbbbbbbB\n"+
			"Positions evaluated by static estimation: 1\n"+
			"MINIMAX-Basic estimate: -100\n", stdout)
		written, err := os.ReadFile(output)
		require.NoError(t, err)
		require.Equal(t, "xbbbbbbbbbbbbbbB", string(written), "Output file holds only the position")
	})

	t.Run("improved evaluator", func(t *testing.T) {
		input := writeInput(t, "WxxxxxxxxxxxxxxB\r\n")
		output := filepath.Join(t.TempDir(), "output.txt")

		code, stdout, _ := runCLI(input, output, "1", "--evaluator", "improved")

		require.Equal(t, 0, code)
		require.Contains(t, stdout, "Board Position: xWxxxxxxxxxxxxxB\n")
		require.Contains(t, stdout, "Positions evaluated by static estimation: 1\n")
		require.Contains(t, stdout, "MINIMAX-Improved estimate: -70\n")
	})

	t.Run("black to move", func(t *testing.T) {
		input := writeInput(t, "WxwxxxxxxxxxxbxB")
		output := filepath.Join(t.TempDir(), "output.txt")

		code, stdout, _ := runCLI(input, output, "1", "--side", "black")

		require.Equal(t, 0, code)
		require.Contains(t, stdout, "Board Position: WxwxxxxxxxxxxbBx\n")
		require.Contains(t, stdout, "Positions evaluated by static estimation: 2\n")
		require.Contains(t, stdout, "MINIMAX-Basic-Black estimate: -1\n")
	})
}

func TestRunErrors(t *testing.T) {
	t.Run("wrong argument count", func(t *testing.T) {
		code, stdout, stderr := runCLI("only-input.txt")

		require.Equal(t, 2, code)
		require.Empty(t, stdout, "No search should run")
		require.Contains(t, stderr, "expected 3 arguments, got 1")
		require.Contains(t, stderr, "Usage:")
	})

	t.Run("negative depth", func(t *testing.T) {
		input := writeInput(t, "WxxxxxxxxxxxxxxB")
		code, stdout, stderr := runCLI(input, filepath.Join(t.TempDir(), "out.txt"), "--", "-1")

		require.Equal(t, 2, code)
		require.Empty(t, stdout)
		require.Contains(t, stderr, "depth must be a non-negative integer")
	})

	t.Run("non-numeric depth", func(t *testing.T) {
		input := writeInput(t, "WxxxxxxxxxxxxxxB")
		code, _, stderr := runCLI(input, filepath.Join(t.TempDir(), "out.txt"), "two")

		require.Equal(t, 2, code)
		require.Contains(t, stderr, `got "two"`)
	})

	t.Run("unknown evaluator", func(t *testing.T) {
		input := writeInput(t, "WxxxxxxxxxxxxxxB")
		code, _, stderr := runCLI(input, filepath.Join(t.TempDir(), "out.txt"), "1", "-e", "neural")

		require.Equal(t, 2, code)
		require.Contains(t, stderr, "unknown evaluator")
	})

	t.Run("missing input file", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "out.txt")
		code, stdout, stderr := runCLI(filepath.Join(t.TempDir(), "missing.txt"), output, "2")

		require.Equal(t, 1, code)
		require.Empty(t, stdout)
		require.Contains(t, stderr, "input file not found")
		require.NoFileExists(t, output, "Nothing should be written")
	})

	t.Run("malformed position", func(t *testing.T) {
		for _, content := range []string{"WxxxB\n", "WxxxxxxxQxxxxxxB\n", ""} {
			input := writeInput(t, content)
			output := filepath.Join(t.TempDir(), "out.txt")

			code, stdout, stderr := runCLI(input, output, "2")

			require.Equal(t, 1, code, "input %q", content)
			require.Empty(t, stdout)
			require.Contains(t, stderr, "invalid position")
			require.NoFileExists(t, output)
		}
	})

	t.Run("overlong first line reports its length", func(t *testing.T) {
		input := writeInput(t, strings.Repeat("x", 70000)+"\nWxxxxxxxxxxxxxxB\n")
		output := filepath.Join(t.TempDir(), "out.txt")

		code, stdout, stderr := runCLI(input, output, "2")

		require.Equal(t, 1, code)
		require.Empty(t, stdout)
		require.Contains(t, stderr, "expected 16 characters, got 70000")
		require.NoFileExists(t, output)
	})

	t.Run("unwritable output keeps the report", func(t *testing.T) {
		input := writeInput(t, "WxxxxxxxxxxxxxxB")
		output := filepath.Join(t.TempDir(), "missing-dir", "out.txt")

		code, stdout, stderr := runCLI(input, output, "1")

		require.Equal(t, 1, code)
		require.Contains(t, stdout, "Board Position: xWxxxxxxxxxxxxxB", "The result is reported before writing")
		require.Contains(t, stderr, "failed to write output file")
	})
}

func TestExperimentCommand(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "experiment.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`
name: cli
games: 2
seed: 5
agents:
  - {id: 1, evaluator: basic, depth: 1}
  - {id: 2, evaluator: improved, depth: 1}
matchups:
  - [1, 2]
`), 0644))

	code, stdout, stderr := runCLI("experiment", "--config", config, "--output", dir)

	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "Games played: 2\n")
	require.Contains(t, stdout, "Matchup 1v2:")
	require.Contains(t, stdout, "Results: "+filepath.Join(dir, "cli"))
}

func TestReportLabel(t *testing.T) {
	require.Equal(t, "MINIMAX-Basic", reportLabel("basic", game.White))
	require.Equal(t, "MINIMAX-Improved-Black", reportLabel("improved", game.Black))
	require.Equal(t, "MINIMAX", reportLabel("", game.White))
}

func TestThroughputCommand(t *testing.T) {
	dir := t.TempDir()

	code, stdout, stderr := runCLI("throughput", "--output", dir, "-n", "2", "-d", "1", "--evaluators", "improved")

	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "Searches: 4\n")
	require.Contains(t, stdout, "Results: "+filepath.Join(dir, "throughput"))
}
