package game

import "errors"

var (
	ErrInvalidPosition  = errors.New("invalid position")
	ErrUnknownEvaluator = errors.New("unknown evaluator")
)

// Evaluates the position to a static estimate from White's perspective:
// positive favours White, negative favours Black, and +-100 means a king is gone.
type Evaluate func(Position) int
