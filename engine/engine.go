package engine

import (
	"minimax/experiments/metrics"
	"minimax/game"
)

type Engine interface {
	// Run plays a game till a king is gone or the turn cap is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

type Agent interface {
	// FindMove returns the position side chooses to move to and the search metrics (if collected)
	FindMove(pos game.Position, side game.Side) (game.Position, metrics.SearchMetric)
}
