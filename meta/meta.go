// meta/meta.go
package meta

// BOARD_SIZE is the number of cells on the board.
const BOARD_SIZE = 16

// LAST_CELL is the index a piece escapes from.
const LAST_CELL = BOARD_SIZE - 1

// WIN_SCORE is the static estimate of a position where a king is gone.
const WIN_SCORE = 100

// DEPTH defines the default search depth in plies.
const DEPTH = 3

// MAX_TURNS caps self-play games that never lose a king.
const MAX_TURNS = 200

// PAWNS defines the default number of pawns per side in random start positions.
const PAWNS = 3
