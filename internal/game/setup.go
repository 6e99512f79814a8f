// path: internal/game/setup.go
package game

const standardSize = 8

// NewBasicBoard builds the standard starting arrangement on an 8×8 board.
// White occupies rows 0 and 1, Black rows 6 and 7.
func NewBasicBoard() (*Board, error) {
	b, err := NewBoard(standardSize)
	if err != nil {
		return nil, err
	}
	if err := b.FillRow(1, NewPiece(Pawn, White)); err != nil {
		return nil, err
	}
	if err := b.FillRow(6, NewPiece(Pawn, Black)); err != nil {
		return nil, err
	}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	placement := make(map[Position]Piece, 2*len(backRank))
	for col, kind := range backRank {
		placement[Position{Row: 0, Col: col}] = NewPiece(kind, White)
		placement[Position{Row: 7, Col: col}] = NewPiece(kind, Black)
	}
	if err := b.Populate(placement); err != nil {
		return nil, err
	}
	return b, nil
}
