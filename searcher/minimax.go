package searcher

import (
	"minimax/experiments/metrics"
	"minimax/game"
)

type Option func(m *Minimax)

// Minimax is a full-width search without pruning. White maximizes the estimate
// and Black minimizes it.
type Minimax struct {
	depth     int
	evaluator game.Evaluator
	metrics   metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

// WithEvaluationFn installs an unregistered evaluation function, reported as "custom"
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return WithEvaluator(game.Evaluator{Name: "custom", Fn: evaluate})
}

func WithEvaluator(evaluator game.Evaluator) Option {
	return func(m *Minimax) {
		if evaluator.Fn != nil {
			m.evaluator = evaluator
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:     DefaultDepth,
		evaluator: game.Basic,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) Evaluator() game.Evaluator {
	return m.evaluator
}

// Search picks side's best next position. Ties keep the first child found in
// ascending cell order. A root that is a leaf, or where side has no piece to
// move, is returned unchanged with its own estimate.
func (m *Minimax) Search(pos game.Position, side game.Side) Result {
	m.metrics.Start(m.depth, side, m.evaluator.Name)

	var leaves []ScoredLeaf
	estimate, children := m.expand(pos, m.depth, side)
	if children == nil {
		leaves = m.record(leaves, pos, estimate)
		return Result{
			Best:   ScoredLeaf{Position: pos, Estimate: estimate},
			Leaves: leaves,
			Metric: m.metrics.Complete(estimate),
		}
	}

	var best ScoredLeaf
	for i, child := range children {
		var value int
		value, leaves = m.value(child, m.depth-1, side.Opponent(), leaves)
		if i == 0 || better(side, value, best.Estimate) {
			best = ScoredLeaf{Position: child, Estimate: value}
		}
	}

	return Result{
		Best:   best,
		Leaves: leaves,
		Metric: m.metrics.Complete(best.Estimate),
	}
}

// value returns the minimax value of pos with side to move, appending every
// leaf it scores to leaves
func (m *Minimax) value(pos game.Position, depth int, side game.Side, leaves []ScoredLeaf) (int, []ScoredLeaf) {
	estimate, children := m.expand(pos, depth, side)
	if children == nil {
		return estimate, m.record(leaves, pos, estimate)
	}

	var best int
	for i, child := range children {
		var value int
		value, leaves = m.value(child, depth-1, side.Opponent(), leaves)
		if i == 0 || better(side, value, best) {
			best = value
		}
	}
	return best, leaves
}

// expand scores pos and returns its children. Children are nil at depth 0, on
// a terminal estimate, or when side has no piece left to move.
func (m *Minimax) expand(pos game.Position, depth int, side game.Side) (int, []game.Position) {
	estimate := m.evaluator.Fn(pos)
	if depth <= 0 || game.IsTerminal(estimate) {
		return estimate, nil
	}
	children := game.Successors(pos, side)
	if len(children) == 0 {
		return estimate, nil
	}
	m.metrics.AddNode()
	return estimate, children
}

func (m *Minimax) record(leaves []ScoredLeaf, pos game.Position, estimate int) []ScoredLeaf {
	m.metrics.AddLeaf()
	return append(leaves, ScoredLeaf{Position: pos, Estimate: estimate})
}

// Strict comparison keeps the earliest child on ties
func better(side game.Side, value, best int) bool {
	if side == game.White {
		return value > best
	}
	return value < best
}
