package game

import (
	"fmt"
	"minimax/meta"
	"strings"
)

// EvaluateBasic scores only the kings: the sum of their cells, centred on zero.
func EvaluateBasic(p Position) int {
	i := p.KingIndex(White)
	j := p.KingIndex(Black)

	if i == -1 {
		return -meta.WIN_SCORE
	}
	if j == -1 {
		return meta.WIN_SCORE
	}
	return i + j - meta.LAST_CELL
}

// EvaluateImproved weighs how far each king has advanced (x5) and rewards pawns
// linearly for advancing towards the far end.
func EvaluateImproved(p Position) int {
	whiteKingPos, blackKingPos := -1, -1
	whitePawnScore, blackPawnScore := 0, 0

	for i, piece := range p {
		switch piece {
		case WhiteKing:
			whiteKingPos = i
		case BlackKing:
			blackKingPos = i
		case WhitePawn:
			whitePawnScore += 2 * i
		case BlackPawn:
			blackPawnScore += 2 * (meta.LAST_CELL - i)
		}
	}

	if whiteKingPos == -1 {
		return -meta.WIN_SCORE
	}
	if blackKingPos == -1 {
		return meta.WIN_SCORE
	}

	positionScore := 5 * (whiteKingPos - blackKingPos)
	return positionScore + whitePawnScore - blackPawnScore
}

// IsTerminal reports whether an estimate marks a captured king
func IsTerminal(estimate int) bool {
	return estimate == meta.WIN_SCORE || estimate == -meta.WIN_SCORE
}

// Evaluator pairs an evaluation function with the name configs and reports use
type Evaluator struct {
	Name string
	Fn   Evaluate
}

var (
	Basic    = Evaluator{Name: "basic", Fn: EvaluateBasic}
	Improved = Evaluator{Name: "improved", Fn: EvaluateImproved}
)

var evaluators = []Evaluator{Basic, Improved}

// LookupEvaluator resolves an evaluator by its configuration name
func LookupEvaluator(name string) (Evaluator, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, evaluator := range evaluators {
		if evaluator.Name == key {
			return evaluator, nil
		}
	}
	return Evaluator{}, fmt.Errorf("%w: %q", ErrUnknownEvaluator, name)
}
