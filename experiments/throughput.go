package experiments

import (
	"fmt"
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type ThroughputConfig struct {
	Output     string
	Positions  int // Random positions searched per depth
	Seed       uint64
	Pawns      int
	MaxDepth   int
	Evaluators []string
}

// RunThroughput searches the same random positions at every depth up to
// MaxDepth to measure how the full-width tree grows. Returns the records it
// stored.
func RunThroughput(config ThroughputConfig) ([]metrics.SearchRecord, string, error) {
	if config.Positions <= 0 || config.MaxDepth < 0 {
		return nil, "", fmt.Errorf("%w: positions must be positive and max depth non-negative", ErrInvalidConfig)
	}

	evaluators := make([]game.Evaluator, 0, len(config.Evaluators))
	for _, name := range config.Evaluators {
		evaluator, err := game.LookupEvaluator(name)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		evaluators = append(evaluators, evaluator)
	}

	rng := rand.New(rand.NewSource(config.Seed))
	positions := make([]game.Position, config.Positions)
	for i := range positions {
		positions[i] = game.RandomPosition(rng, config.Pawns)
	}

	log.Info().Msg("starting throughput experiment...")

	records := []metrics.SearchRecord{}
	for _, evaluator := range evaluators {
		for depth := 0; depth <= config.MaxDepth; depth++ {
			m := searcher.NewMinimax(searcher.WithDepth(depth), searcher.WithEvaluator(evaluator), searcher.WithMetrics())
			leaves := 0
			for i, pos := range positions {
				result := m.Search(pos, game.White)
				records = append(records, metrics.SearchRecord{
					Position:     i + 1,
					Start:        pos.String(),
					SearchMetric: result.Metric,
				})
				leaves += len(result.Leaves)
			}
			log.Info().Msgf("completed depth %d with the %s evaluator: %d leaves", depth, evaluator.Name, leaves)
		}
	}

	log.Info().Msg("completed throughput experiment")

	writer, err := metrics.NewWriter(config.Output, "throughput")
	if err != nil {
		return records, "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSearchRecords(records)
	if err != nil {
		return records, writer.Dir(), fmt.Errorf("failed to write search records: %w", err)
	}
	log.Info().Msgf("stored search records in %s", writer.Dir())

	return records, writer.Dir(), nil
}
