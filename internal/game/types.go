// path: internal/game/types.go
package game

import "fmt"

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type PieceKind uint8

const (
	King PieceKind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

func (k PieceKind) String() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	default:
		return fmt.Sprintf("piece(%d)", k)
	}
}

func (k PieceKind) Name() string {
	switch k {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	default:
		return "?"
	}
}

// Piece is a value type; it has no identity beyond the square it occupies.
type Piece struct {
	Kind     PieceKind `json:"kind"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
}

func NewPiece(kind PieceKind, color Color) Piece {
	return Piece{Kind: kind, Color: color}
}

// Glyph returns the unicode chess symbol for the piece.
func (p Piece) Glyph() string {
	if p.Color == White {
		switch p.Kind {
		case King:
			return "♔"
		case Queen:
			return "♕"
		case Rook:
			return "♖"
		case Bishop:
			return "♗"
		case Knight:
			return "♘"
		case Pawn:
			return "♙"
		}
	}
	switch p.Kind {
	case King:
		return "♚"
	case Queen:
		return "♛"
	case Rook:
		return "♜"
	case Bishop:
		return "♝"
	case Knight:
		return "♞"
	case Pawn:
		return "♟"
	}
	return "?"
}

// Position is a signed (row, col) coordinate. Validity is board-relative;
// a Position by itself is just a vector and may also express an offset.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) Add(q Position) Position {
	return Position{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
