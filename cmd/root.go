package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"minimax/game"
	"minimax/searcher"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	ErrUsage         = errors.New("usage error")
	ErrInputNotFound = errors.New("input file not found")
	ErrOutputWrite   = errors.New("failed to write output file")
)

type options struct {
	evaluator string
	side      string
	logLevel  string
}

// Execute runs the command line and exits with a non-zero code on failure
func Execute() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	cmd, err := root.ExecuteC()
	if err == nil {
		return 0
	}

	if errors.Is(err, ErrUsage) {
		fmt.Fprintf(stderr, "Error: %v\n%s", err, cmd.UsageString())
		return 2
	}
	log.Error().Err(err).Msg("minimax failed")
	return 1
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "minimax <input_file> <output_file> <depth>",
		Short: "Pick the best move on a 16-cell king and pawns board with minimax",
		Long: `Reads a 16-character position (W, B: kings, w, b: pawns, x: empty) from the
input file, searches it to the given depth and writes the chosen position to
the output file.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("%w: expected 3 arguments, got %d", ErrUsage, len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(stderr, opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args, stdout)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	root.Flags().StringVarP(&opts.evaluator, "evaluator", "e", "basic", "static evaluator: basic or improved")
	root.Flags().StringVarP(&opts.side, "side", "s", "white", "side to move: white or black")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newExperimentCmd(stdout), newThroughputCmd(stdout))
	return root
}

func setupLogger(w io.Writer, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	return nil
}

func run(opts *options, args []string, stdout io.Writer) error {
	inputPath, outputPath := args[0], args[1]

	depth, err := strconv.Atoi(args[2])
	if err != nil || depth < 0 {
		return fmt.Errorf("%w: depth must be a non-negative integer, got %q", ErrUsage, args[2])
	}
	evaluator, err := game.LookupEvaluator(opts.evaluator)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	side, err := game.ParseSide(opts.side)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	pos, err := readPosition(inputPath)
	if err != nil {
		return err
	}

	log.Info().Msgf("searching %s for %s to depth %d with the %s evaluator", pos, side, depth, evaluator.Name)

	m := searcher.NewMinimax(searcher.WithDepth(depth), searcher.WithEvaluator(evaluator), searcher.WithMetrics())
	result := m.Search(pos, side)

	log.Info().Msgf("expanded %d nodes in %s", result.Metric.Nodes, result.Metric.Duration)

	board := result.Best.Position.String()
	fmt.Fprintf(stdout, "Board Position: %s\n", board)
	fmt.Fprintf(stdout, "Positions evaluated by static estimation: %d\n", len(result.Leaves))
	fmt.Fprintf(stdout, "%s estimate: %d\n", reportLabel(evaluator.Name, side), result.Best.Estimate)

	if err := os.WriteFile(outputPath, []byte(board), 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}

// readPosition parses the first line of the input file
func readPosition(path string) (game.Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Position{}, fmt.Errorf("%w: %v", ErrInputNotFound, err)
	}

	line, err := bufio.NewReader(bytes.NewReader(data)).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return game.Position{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	pos, err := game.ParsePosition(strings.TrimRight(line, "\r\n"))
	if err != nil {
		return game.Position{}, fmt.Errorf("malformed position in %s: %w", path, err)
	}
	return pos, nil
}

// reportLabel names the search variant, e.g. MINIMAX-Improved or MINIMAX-Basic-Black
func reportLabel(evaluator string, side game.Side) string {
	label := "MINIMAX"
	if evaluator != "" {
		label += "-" + strings.ToUpper(evaluator[:1]) + evaluator[1:]
	}
	if side == game.Black {
		label += "-Black"
	}
	return label
}
