package searcher

import (
	"minimax/experiments/metrics"
	"minimax/game"
)

// ScoredLeaf is a position paired with its static estimate
type ScoredLeaf struct {
	Position game.Position
	Estimate int
}

type Result struct {
	// Best is the position the side to move should play, with its minimax value.
	// When the root is itself a leaf it is the root position.
	Best ScoredLeaf
	// Leaves holds every position evaluated by static estimation, in
	// depth-first, left-to-right order.
	Leaves []ScoredLeaf
	Metric metrics.SearchMetric
}

type Searcher interface {
	Search(pos game.Position, side game.Side) Result
}
