package game

import (
	"minimax/meta"

	"golang.org/x/exp/rand"
)

// RandomPosition places the White king in the lower half, the Black king in the
// upper half and the given number of pawns per side on random empty cells.
func RandomPosition(rng *rand.Rand, pawns int) Position {
	var p Position
	for i := range p {
		p[i] = Empty
	}

	half := len(p) / 2
	p[rng.Intn(half)] = WhiteKing
	p[half+rng.Intn(half)] = BlackKing

	// Leave at least one empty cell so that moves have somewhere to land
	maxPawns := (len(p) - 3) / 2
	if pawns > maxPawns {
		pawns = maxPawns
	}
	if pawns < 0 {
		pawns = 0
	}

	for _, pawn := range []Piece{WhitePawn, BlackPawn} {
		for placed := 0; placed < pawns; {
			i := rng.Intn(meta.BOARD_SIZE)
			if p[i] == Empty {
				p[i] = pawn
				placed++
			}
		}
	}

	return p
}
