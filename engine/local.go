package engine

import (
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/meta"
	"minimax/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	Position game.Position
	Agents   [2]Agent // Indexed by side: White first
	MaxTurns int
}

func NewLocalEngine(agents [2]Agent, start game.Position) *LocalEngine {
	for _, agent := range agents {
		if agent == nil {
			panic("both sides need an agent")
		}
	}

	return &LocalEngine{
		Position: start,
		Agents:   agents,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the game loop, White moving first, until one king is gone.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Start:     e.Position.String(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("starting game from %s", e.Position)

	side := game.White
	for turn := 1; turn <= e.MaxTurns; turn++ {
		if _, decided := e.Position.Winner(); decided {
			break
		}

		next, metric := e.Agents[side].FindMove(e.Position, side)
		if next == e.Position {
			// Depth 0, or a root scored as terminal, returns the board unchanged
			log.Warn().Msgf("%s agent did not move from %s", side, e.Position)
			break
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Position:     next.String(),
			SearchMetric: metric,
		})

		log.Debug().Msgf("turn %d: %s moved to %s (estimate %d)", turn, side, next, metric.Estimate)

		e.Position = next
		side = side.Opponent()
	}

	winner := ""
	if side, decided := e.Position.Winner(); decided {
		winner = side.String()
	}

	gameMetric.Final = e.Position.String()
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Debug().Msgf("game over after %d moves, winner: %q", gameMetric.TotalMoves, winner)

	return winner, gameMetric, moveMetrics
}

type MinimaxAdapter struct {
	Searcher searcher.Searcher
}

func (ma *MinimaxAdapter) FindMove(pos game.Position, side game.Side) (game.Position, metrics.SearchMetric) {
	result := ma.Searcher.Search(pos, side)
	metric := result.Metric
	metric.Leaves = len(result.Leaves)
	metric.Estimate = result.Best.Estimate
	return result.Best.Position, metric
}
