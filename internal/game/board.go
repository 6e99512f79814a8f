// path: internal/game/board.go
// Package game implements the chess board model and the move generation and
// execution rules that operate on it.
package game

import (
	"fmt"
	"strings"
)

// Board is a size-N grid with a sparse occupancy map. A square absent from the
// map is empty. The board carries no move history and no turn indicator; those
// belong to the layers above it.
type Board struct {
	size    int
	squares map[Position]Piece
}

// NewBoard creates an empty size×size board.
func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Board{
		size:    size,
		squares: make(map[Position]Piece),
	}, nil
}

func (b *Board) Size() int { return b.size }

// ValidatePosition rejects any coordinate outside [0, size) on either axis.
// Out-of-range access is always an error, never clamped.
func (b *Board) ValidatePosition(p Position) error {
	if p.Row < 0 || p.Row >= b.size || p.Col < 0 || p.Col >= b.size {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	return nil
}

// Space returns the occupant of p, and whether p is occupied at all.
func (b *Board) Space(p Position) (Piece, bool, error) {
	if err := b.ValidatePosition(p); err != nil {
		return Piece{}, false, err
	}
	pc, ok := b.squares[p]
	return pc, ok, nil
}

// IsEmpty reports whether p is an in-bounds, unoccupied square.
func (b *Board) IsEmpty(p Position) bool {
	if err := b.ValidatePosition(p); err != nil {
		return false
	}
	_, ok := b.squares[p]
	return !ok
}

// SetSpace places pc at p, returning the displaced occupant if any.
func (b *Board) SetSpace(p Position, pc Piece) (*Piece, error) {
	if err := b.ValidatePosition(p); err != nil {
		return nil, err
	}
	prev, ok := b.squares[p]
	b.squares[p] = pc
	if !ok {
		return nil, nil
	}
	return &prev, nil
}

// ClearSpace removes the occupant of p, returning it if there was one.
func (b *Board) ClearSpace(p Position) (*Piece, error) {
	if err := b.ValidatePosition(p); err != nil {
		return nil, err
	}
	prev, ok := b.squares[p]
	if !ok {
		return nil, nil
	}
	delete(b.squares, p)
	return &prev, nil
}

// FillRow places a copy of pc on every square of the given row.
func (b *Board) FillRow(row int, pc Piece) error {
	for col := 0; col < b.size; col++ {
		if _, err := b.SetSpace(Position{Row: row, Col: col}, pc); err != nil {
			return err
		}
	}
	return nil
}

// FillColumn places a copy of pc on every square of the given column.
func (b *Board) FillColumn(col int, pc Piece) error {
	for row := 0; row < b.size; row++ {
		if _, err := b.SetSpace(Position{Row: row, Col: col}, pc); err != nil {
			return err
		}
	}
	return nil
}

// Populate bulk-inserts a placement map, used for game setup.
func (b *Board) Populate(placement map[Position]Piece) error {
	for p, pc := range placement {
		if _, err := b.SetSpace(p, pc); err != nil {
			return err
		}
	}
	return nil
}

// MovePiece relocates the occupant of from to to, marking it as moved and
// returning whatever piece the relocation displaced. It does not check move
// legality; that is ExecuteMove's job.
func (b *Board) MovePiece(from, to Position) (*Piece, error) {
	if err := b.ValidatePosition(from); err != nil {
		return nil, err
	}
	if err := b.ValidatePosition(to); err != nil {
		return nil, err
	}
	pc, ok := b.squares[from]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoPieceAtOrigin, from)
	}
	delete(b.squares, from)
	pc.HasMoved = true
	prev, had := b.squares[to]
	b.squares[to] = pc
	if !had {
		return nil, nil
	}
	return &prev, nil
}

// PiecePositions returns a copy of the occupancy map.
func (b *Board) PiecePositions() map[Position]Piece {
	out := make(map[Position]Piece, len(b.squares))
	for p, pc := range b.squares {
		out[p] = pc
	}
	return out
}

// Clone returns an independent copy of the board, used by the store to keep
// immutable snapshots.
func (b *Board) Clone() *Board {
	return &Board{size: b.size, squares: b.PiecePositions()}
}

// Pretty renders the board as a text grid with unicode piece glyphs.
func (b *Board) Pretty() string {
	var sb strings.Builder
	border := strings.Repeat("------", b.size)
	sb.WriteString(border)
	sb.WriteByte('\n')
	for row := 0; row < b.size; row++ {
		sb.WriteByte('|')
		for col := 0; col < b.size; col++ {
			symbol := " "
			if pc, ok := b.squares[Position{Row: row, Col: col}]; ok {
				symbol = pc.Glyph()
			}
			sb.WriteString("  ")
			sb.WriteString(symbol)
			sb.WriteString("  |")
		}
		sb.WriteByte('\n')
		sb.WriteString(border)
		sb.WriteByte('\n')
	}
	return sb.String()
}
