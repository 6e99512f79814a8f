// path: internal/game/engine.go
package game

import "fmt"

// kingOffsets is the eight-neighbor step set, derived from the same
// generating vectors the queen pattern uses.
var kingOffsets = expandWithInverses(Position{0, 1}, Position{1, 0}, Position{1, 1})

// PossibleMoves returns the destinations reachable by the piece at p. An empty
// in-bounds square yields an empty slice; an out-of-bounds square is an error.
func PossibleMoves(b *Board, p Position) ([]Position, error) {
	pc, ok, err := b.Space(p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Position{}, nil
	}

	switch pc.Kind {
	case Pawn:
		return pawnMoves(b, p, pc), nil
	case King:
		return kingMoves(b, p, pc), nil
	default:
		pattern, err := movePatternFor(pc.Kind)
		if err != nil {
			return nil, err
		}
		moves := make([]Position, 0, 16)
		for _, offset := range pattern.offsets {
			moves = walkOffset(b, moves, p, offset, pc.Color, pattern.repeatable)
		}
		return moves, nil
	}
}

// walkOffset scans from origin along offset, appending reachable squares to
// acc. Empty squares are recorded and, for repeatable patterns, the walk
// continues; an enemy occupant is recorded and ends the walk; a friendly
// occupant or the board edge ends the walk unrecorded.
func walkOffset(b *Board, acc []Position, origin, offset Position, mover Color, repeat bool) []Position {
	for cand := origin.Add(offset); ; cand = cand.Add(offset) {
		if b.ValidatePosition(cand) != nil {
			return acc
		}
		occupant, occupied, _ := b.Space(cand)
		if !occupied {
			acc = append(acc, cand)
			if !repeat {
				return acc
			}
			continue
		}
		if occupant.Color != mover {
			acc = append(acc, cand)
		}
		return acc
	}
}

// pawnMoves: one square forward if empty, two if unmoved and both empty, and
// the forward diagonals only when they hold an enemy piece.
func pawnMoves(b *Board, p Position, pc Piece) []Position {
	dir := 1
	if pc.Color == Black {
		dir = -1
	}
	moves := make([]Position, 0, 4)

	forward := Position{Row: p.Row + dir, Col: p.Col}
	if b.IsEmpty(forward) {
		moves = append(moves, forward)
		if !pc.HasMoved {
			double := Position{Row: p.Row + 2*dir, Col: p.Col}
			if b.IsEmpty(double) {
				moves = append(moves, double)
			}
		}
	}
	for _, dc := range [2]int{1, -1} {
		diag := Position{Row: p.Row + dir, Col: p.Col + dc}
		if isEnemySpace(b, diag, pc.Color) {
			moves = append(moves, diag)
		}
	}
	return moves
}

// kingMoves: the eight neighbors, each admitted when empty or enemy-occupied
// and not currently threatened, plus a two-square castle destination per side
// while the king is unmoved. Castle eligibility checks only that the corner
// rook is an unmoved rook of the same color and that the squares strictly
// between are empty; the king's own and transit squares are not checked for
// attacks.
func kingMoves(b *Board, p Position, pc Piece) []Position {
	moves := make([]Position, 0, 10)
	if !pc.HasMoved {
		for _, dir := range [2]int{-1, 1} {
			if canCastleSide(b, p, pc.Color, dir) {
				moves = append(moves, Position{Row: p.Row, Col: p.Col + 2*dir})
			}
		}
	}
	for _, offset := range kingOffsets {
		cand := p.Add(offset)
		if b.ValidatePosition(cand) != nil {
			continue
		}
		if !b.IsEmpty(cand) && !isEnemySpace(b, cand, pc.Color) {
			continue
		}
		if isThreatened(b, cand, pc.Color) {
			continue
		}
		moves = append(moves, cand)
	}
	return moves
}

// canCastleSide reports castle eligibility toward dir (-1 left, +1 right):
// the corner square on that side must hold an unmoved rook of the king's
// color and every square strictly between king and rook must be empty.
func canCastleSide(b *Board, kingPos Position, color Color, dir int) bool {
	rookCol := 0
	if dir > 0 {
		rookCol = b.Size() - 1
	}
	rookPos := Position{Row: kingPos.Row, Col: rookCol}
	rook, ok, err := b.Space(rookPos)
	if err != nil || !ok {
		return false
	}
	if rook.Kind != Rook || rook.Color != color || rook.HasMoved {
		return false
	}
	dest := Position{Row: kingPos.Row, Col: kingPos.Col + 2*dir}
	if b.ValidatePosition(dest) != nil || dest.Col == rookCol {
		return false
	}
	for col := kingPos.Col + dir; col != rookCol; col += dir {
		if !b.IsEmpty(Position{Row: kingPos.Row, Col: col}) {
			return false
		}
	}
	return true
}

func isEnemySpace(b *Board, p Position, mover Color) bool {
	pc, ok, err := b.Space(p)
	if err != nil || !ok {
		return false
	}
	return pc.Color != mover
}

// isThreatened reports whether any piece of the color opposing friendly
// attacks target. Used only to filter king destinations.
func isThreatened(b *Board, target Position, friendly Color) bool {
	for pos, pc := range b.squares {
		if pc.Color == friendly {
			continue
		}
		for _, atk := range attackSquares(b, pos, pc) {
			if atk == target {
				return true
			}
		}
	}
	return false
}

// attackSquares computes plain geometric reachability for threat checking:
// pattern walks for sliders and knights, forward diagonals for pawns, and the
// eight unfiltered neighbors for kings. It must never call back into the
// filtered king generator — that would make two kings' threat checks mutually
// recursive with no base case.
func attackSquares(b *Board, p Position, pc Piece) []Position {
	switch pc.Kind {
	case Pawn:
		dir := 1
		if pc.Color == Black {
			dir = -1
		}
		attacks := make([]Position, 0, 2)
		for _, dc := range [2]int{1, -1} {
			diag := Position{Row: p.Row + dir, Col: p.Col + dc}
			if b.ValidatePosition(diag) == nil {
				attacks = append(attacks, diag)
			}
		}
		return attacks
	case King:
		attacks := make([]Position, 0, 8)
		for _, offset := range kingOffsets {
			cand := p.Add(offset)
			if b.ValidatePosition(cand) == nil {
				attacks = append(attacks, cand)
			}
		}
		return attacks
	default:
		pattern, err := movePatternFor(pc.Kind)
		if err != nil {
			return nil
		}
		attacks := make([]Position, 0, 16)
		for _, offset := range pattern.offsets {
			attacks = walkOffset(b, attacks, p, offset, pc.Color, pattern.repeatable)
		}
		return attacks
	}
}

// ExecuteMove validates from→to against the generator's output and applies it,
// returning the piece the move displaced, if any. A castle also relocates the
// corresponding rook; the rook's sub-move is itself validated before either
// piece mutates, so a failed call leaves the board untouched.
func ExecuteMove(b *Board, from, to Position) (*Piece, error) {
	moves, err := PossibleMoves(b, from)
	if err != nil {
		return nil, err
	}
	pc, ok, err := b.Space(from)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoPieceAtOrigin, from)
	}
	if err := b.ValidatePosition(to); err != nil {
		return nil, err
	}
	if !containsPosition(moves, to) {
		return nil, fmt.Errorf("%w: %s to %s", ErrNotAllowed, from, to)
	}
	if isCastle(pc, from, to) {
		if err := castleRook(b, from, to); err != nil {
			return nil, err
		}
	}
	return b.MovePiece(from, to)
}

// isCastle: a king displaced exactly two columns along its own row.
func isCastle(pc Piece, from, to Position) bool {
	if pc.Kind != King || from.Row != to.Row {
		return false
	}
	return from.Col-to.Col == 2 || to.Col-from.Col == 2
}

// castleRook moves the corner rook to the square the king jumps over.
func castleRook(b *Board, kingFrom, kingTo Position) error {
	dir := 1
	if kingTo.Col < kingFrom.Col {
		dir = -1
	}
	rookCol := 0
	if dir > 0 {
		rookCol = b.Size() - 1
	}
	rookFrom := Position{Row: kingFrom.Row, Col: rookCol}
	rookTo := Position{Row: kingTo.Row, Col: kingTo.Col - dir}
	if _, err := ExecuteMove(b, rookFrom, rookTo); err != nil {
		return fmt.Errorf("castle rook %s to %s: %w", rookFrom, rookTo, err)
	}
	return nil
}

func containsPosition(moves []Position, target Position) bool {
	for _, m := range moves {
		if m == target {
			return true
		}
	}
	return false
}
