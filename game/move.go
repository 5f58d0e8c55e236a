package game

import (
	"fmt"
	"minimax/meta"
	"minimax/utils"
)

// GenerateMove advances the White piece at cell i to the first empty cell above
// it. A piece on the last cell, or one with no empty cell ahead, escapes the
// board. Jumping exactly one Black piece pushes that piece to the rightmost
// empty cell.
func GenerateMove(board Position, i int) Position {
	if !board[i].Belongs(White) {
		panic(fmt.Sprintf("no white piece at cell %d of %s", i, board))
	}

	p := board
	if i == meta.LAST_CELL {
		p[i] = Empty
		return p
	}

	for j := i + 1; j < len(p); j++ {
		if j == meta.LAST_CELL && p[j] != Empty {
			p[i] = Empty
			break
		}
		if p[j] != Empty {
			continue
		}

		p[j] = p[i]
		p[i] = Empty

		// Single capture: the jumped piece is displaced unless the only
		// free cell is the one just vacated
		if j-i == 2 && p[j-1].Belongs(Black) {
			k := utils.FindLastIndex(p[:], Empty)
			if k != j-2 {
				p[k] = p[j-1]
				p[j-1] = Empty
			}
		}
		break
	}

	return p
}

// Play moves side's piece at cell i. Black moves reuse White's rule on the
// mirrored board.
func Play(p Position, side Side, i int) Position {
	if side == White {
		return GenerateMove(p, i)
	}
	return GenerateMove(p.Mirror(), MirrorIndex(i)).Mirror()
}

// Successors plays each of side's pieces once, in ascending cell order.
func Successors(p Position, side Side) []Position {
	indices := p.Indices(side)
	children := make([]Position, 0, len(indices))
	for _, i := range indices {
		children = append(children, Play(p, side, i))
	}
	return children
}
