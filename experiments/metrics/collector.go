package metrics

import (
	"minimax/game"
	"time"
)

type SearchMetric struct {
	Depth    int
	Evaluate string // Evaluator name
	Side     game.Side
	Duration time.Duration
	Nodes    int // Internal nodes expanded
	Leaves   int // Positions evaluated by static estimation
	Estimate int
}

type MoveMetric struct {
	Step     int
	Position string // Position after the move
	SearchMetric
}

type GameMetric struct {
	Start      string // Starting position
	Final      string
	Winner     string // "white", "black" or "" when the turn cap was hit
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(depth int, side game.Side, evaluator string)
	AddNode()
	AddLeaf()
	Complete(estimate int) SearchMetric
}

// Search is single threaded, so plain counters are enough
type collector struct {
	depth     int
	side      game.Side
	evaluator string
	startTime time.Time
	nodes     int
	leaves    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, side game.Side, evaluator string) {
	m.startTime = time.Now()
	m.depth = depth
	m.side = side
	m.evaluator = evaluator
	m.nodes = 0
	m.leaves = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) Complete(estimate int) SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Evaluate: m.evaluator,
		Side:     m.side,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Estimate: estimate,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, side game.Side, evaluator string) {}
func (m *dummyCollector) AddNode()                                          {}
func (m *dummyCollector) AddLeaf()                                          {}
func (m *dummyCollector) Complete(estimate int) SearchMetric                { return SearchMetric{} }
