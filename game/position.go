package game

import (
	"fmt"
	"minimax/meta"
	"minimax/utils"
)

// Position is the whole board. It is a value: moves return a new copy and
// never modify the receiver.
type Position [meta.BOARD_SIZE]Piece

// NewPosition builds a position from exactly 16 valid pieces.
func NewPosition(pieces []Piece) (Position, error) {
	var p Position
	if len(pieces) != len(p) {
		return p, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidPosition, len(p), len(pieces))
	}
	for i, piece := range pieces {
		if !piece.IsValid() {
			return Position{}, fmt.Errorf("%w: unknown piece %q at cell %d", ErrInvalidPosition, byte(piece), i)
		}
		p[i] = piece
	}
	return p, nil
}

// ParsePosition reads the 16-character form, e.g. "WxxxxwxxxxbxxxxB".
func ParsePosition(s string) (Position, error) {
	var p Position
	if len(s) != len(p) {
		return p, fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidPosition, len(p), len(s))
	}
	for i := 0; i < len(s); i++ {
		piece, err := ParsePiece(s[i])
		if err != nil {
			return Position{}, fmt.Errorf("%w: cell %d: %v", ErrInvalidPosition, i, err)
		}
		p[i] = piece
	}
	return p, nil
}

// MustParsePosition is ParsePosition for literals known to be valid
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Position) At(i int) Piece {
	return p[i]
}

func (p Position) String() string {
	return string(p[:])
}

// MirrorIndex maps a cell to its place on the mirrored board.
func MirrorIndex(i int) int {
	return meta.LAST_CELL - i
}

// Mirror reverses the board end to end and swaps the colour of every piece.
// Black's moves are computed as White's moves on the mirrored board.
func (p Position) Mirror() Position {
	var m Position
	for i, piece := range p {
		m[MirrorIndex(i)] = piece.Swap()
	}
	return m
}

// KingIndex returns the cell of side's king, or -1 once it has left the board
func (p Position) KingIndex(side Side) int {
	return utils.FindIndex(p[:], side.King())
}

func (p Position) Count(side Side) int {
	return utils.CountFunc(p[:], func(piece Piece) bool { return piece.Belongs(side) })
}

// Indices lists the cells holding side's pieces in ascending order.
func (p Position) Indices(side Side) []int {
	indices := make([]int, 0, len(p))
	for i, piece := range p {
		if piece.Belongs(side) {
			indices = append(indices, i)
		}
	}
	return indices
}

// Winner reports the side whose opponent has lost its king. A missing White
// king is checked first, matching the evaluators.
func (p Position) Winner() (Side, bool) {
	if p.KingIndex(White) == -1 {
		return Black, true
	}
	if p.KingIndex(Black) == -1 {
		return White, true
	}
	return White, false
}
