package experiments

import (
	"fmt"
	"minimax/engine"
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Summary tallies results per matchup, keyed by "<white id>v<black id>"
type Summary struct {
	Dir      string
	Wins     map[string]map[string]int // matchup -> winner ("white", "black", "draw") -> games
	Games    int
	Moves    int
	Searched int // Leaves evaluated over all moves
}

// Run plays every matchup Games times from the same seeded start positions and
// stores agent configs, game records and move records as CSV.
func Run(config Config) (Summary, error) {
	if err := config.Validate(); err != nil {
		return Summary{}, err
	}

	rng := rand.New(rand.NewSource(config.Seed))
	starts := make([]game.Position, config.Games)
	for i := range starts {
		starts[i] = game.RandomPosition(rng, config.Pawns)
	}

	summary := Summary{Wins: make(map[string]map[string]int)}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", config.Name)

	count := 0
	for mi, matchup := range config.Matchups {
		config1 := config.agent(matchup[0])
		config2 := config.agent(matchup[1])
		key := fmt.Sprintf("%dv%d", config1.ID, config2.ID)
		if summary.Wins[key] == nil {
			summary.Wins[key] = make(map[string]int)
		}

		log.Info().Msgf("starting matchup %d of %d between white=%+v and black=%+v...", mi+1, len(config.Matchups), config1, config2)

		for i, start := range starts {
			winner, gameMetric, moveMetrics, err := runGame(config1, config2, start, config.MaxTurns)
			if err != nil {
				return summary, err
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
				summary.Searched += mm.Leaves
			}

			if winner == "" {
				winner = "draw"
			}
			summary.Wins[key][winner]++
			summary.Moves += len(moveMetrics)

			log.Debug().Msgf("completed matchup %d game %d of %d from %s with winner: %s", mi+1, i+1, len(starts), start, winner)
		}
		log.Info().Msgf("completed matchup %d of %d: %v", mi+1, len(config.Matchups), summary.Wins[key])
	}
	summary.Games = count

	log.Info().Msgf("completed %s experiment", config.Name)

	writer, err := metrics.NewWriter(config.Output, config.Name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	err = writer.WriteAgentConfigs(config.Agents)
	if err != nil {
		return summary, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return summary, nil
}

// runGame plays a single game, config1 as White and config2 as Black
func runGame(config1, config2 metrics.AgentConfig, start game.Position, maxTurns int) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	white, err := createAgent(config1)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	black, err := createAgent(config2)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocalEngine([2]engine.Agent{white, black}, start)
	e.MaxTurns = maxTurns

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

func createAgent(config metrics.AgentConfig) (engine.Agent, error) {
	evaluator, err := game.LookupEvaluator(config.Evaluate)
	if err != nil {
		return nil, err
	}

	m := searcher.NewMinimax(
		searcher.WithDepth(config.Depth),
		searcher.WithEvaluator(evaluator),
		searcher.WithMetrics(),
	)
	return &engine.MinimaxAdapter{Searcher: m}, nil
}
