package cmd

import (
	"fmt"
	"io"
	"minimax/experiments"
	"minimax/meta"
	"sort"

	"github.com/spf13/cobra"
)

func newExperimentCmd(stdout io.Writer) *cobra.Command {
	var configPath, output string

	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Play self-play matchups between search agents and store the results as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := experiments.DefaultConfig()
			if configPath != "" {
				var err error
				config, err = experiments.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}
			if output != "" {
				config.Output = output
			}

			summary, err := experiments.Run(config)
			if err != nil {
				return err
			}

			printSummary(stdout, summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "experiment config file (yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "directory for result files (overrides the config)")
	return cmd
}

func newThroughputCmd(stdout io.Writer) *cobra.Command {
	config := experiments.ThroughputConfig{
		Output:     "experiments",
		Positions:  10,
		Seed:       1,
		Pawns:      meta.PAWNS,
		MaxDepth:   meta.DEPTH,
		Evaluators: []string{"basic", "improved"},
	}

	cmd := &cobra.Command{
		Use:   "throughput",
		Short: "Measure how many positions the full-width search evaluates at each depth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, dir, err := experiments.RunThroughput(config)
			if err != nil {
				return err
			}

			leaves := 0
			for _, record := range records {
				leaves += record.Leaves
			}
			fmt.Fprintf(stdout, "Searches: %d\n", len(records))
			fmt.Fprintf(stdout, "Positions evaluated by static estimation: %d\n", leaves)
			fmt.Fprintf(stdout, "Results: %s\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&config.Output, "output", "o", config.Output, "directory for result files")
	cmd.Flags().IntVarP(&config.Positions, "positions", "n", config.Positions, "random start positions per depth")
	cmd.Flags().Uint64Var(&config.Seed, "seed", config.Seed, "random seed for start positions")
	cmd.Flags().IntVar(&config.Pawns, "pawns", config.Pawns, "pawns per side in start positions")
	cmd.Flags().IntVarP(&config.MaxDepth, "max-depth", "d", config.MaxDepth, "deepest search to measure")
	cmd.Flags().StringSliceVar(&config.Evaluators, "evaluators", config.Evaluators, "evaluators to measure")
	return cmd
}

func printSummary(w io.Writer, summary experiments.Summary) {
	fmt.Fprintf(w, "Games played: %d\n", summary.Games)
	fmt.Fprintf(w, "Moves played: %d\n", summary.Moves)
	fmt.Fprintf(w, "Positions evaluated by static estimation: %d\n", summary.Searched)

	keys := make([]string, 0, len(summary.Wins))
	for key := range summary.Wins {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		wins := summary.Wins[key]
		fmt.Fprintf(w, "Matchup %s: white %d, black %d, draw %d\n", key, wins["white"], wins["black"], wins["draw"])
	}
	fmt.Fprintf(w, "Results: %s\n", summary.Dir)
}
