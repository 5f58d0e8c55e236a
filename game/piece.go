package game

import "fmt"

// Piece is a single cell symbol, stored as its character in the position string
type Piece byte

const (
	Empty     Piece = 'x'
	WhiteKing Piece = 'W'
	BlackKing Piece = 'B'
	WhitePawn Piece = 'w'
	BlackPawn Piece = 'b'
)

type Side int

const (
	White Side = iota
	Black
)

func ParsePiece(symbol byte) (Piece, error) {
	p := Piece(symbol)
	if !p.IsValid() {
		return Empty, fmt.Errorf("unknown piece symbol %q", symbol)
	}
	return p, nil
}

func (p Piece) IsValid() bool {
	switch p {
	case Empty, WhiteKing, BlackKing, WhitePawn, BlackPawn:
		return true
	}
	return false
}

func (p Piece) IsKing() bool {
	return p == WhiteKing || p == BlackKing
}

// Belongs reports whether the piece is owned by side. Empty belongs to no side.
func (p Piece) Belongs(side Side) bool {
	if side == White {
		return p == WhiteKing || p == WhitePawn
	}
	return p == BlackKing || p == BlackPawn
}

// Swap exchanges the colour of a piece, keeping its kind
func (p Piece) Swap() Piece {
	switch p {
	case WhiteKing:
		return BlackKing
	case BlackKing:
		return WhiteKing
	case WhitePawn:
		return BlackPawn
	case BlackPawn:
		return WhitePawn
	}
	return p
}

func (p Piece) String() string {
	return string(p)
}

func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

func (s Side) King() Piece {
	if s == White {
		return WhiteKing
	}
	return BlackKing
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

func ParseSide(name string) (Side, error) {
	switch name {
	case "white", "White", "w", "W":
		return White, nil
	case "black", "Black", "b", "B":
		return Black, nil
	}
	return White, fmt.Errorf("unknown side %q", name)
}
