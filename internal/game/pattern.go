// path: internal/game/pattern.go
package game

import "fmt"

// movePattern describes the movement geometry of a sliding or stepping piece:
// a set of direction offsets and whether each may be applied repeatedly per
// move (sliders) or at most once (steppers).
type movePattern struct {
	repeatable bool
	offsets    []Position
}

// movePatternFor returns the pattern for a sliding or stepping piece kind.
// King and Pawn have no pattern; their legality depends on board state beyond
// geometry and they are dispatched to bespoke generators instead.
func movePatternFor(kind PieceKind) (movePattern, error) {
	switch kind {
	case Queen:
		return movePattern{
			repeatable: true,
			offsets:    expandWithInverses(Position{0, 1}, Position{1, 0}, Position{1, 1}),
		}, nil
	case Rook:
		return movePattern{
			repeatable: true,
			offsets:    expandWithInverses(Position{0, 1}, Position{1, 0}),
		}, nil
	case Bishop:
		return movePattern{
			repeatable: true,
			offsets:    expandWithInverses(Position{1, 1}),
		}, nil
	case Knight:
		return movePattern{
			repeatable: false,
			offsets:    expandWithInverses(Position{1, 2}, Position{2, 1}),
		}, nil
	default:
		return movePattern{}, fmt.Errorf("%w: %s", ErrPatternUnsupported, kind.Name())
	}
}

var signPairs = [4]Position{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// expandWithInverses expands a generating set of offsets into the full offset
// set by taking all four sign combinations of each vector, deduplicated.
// Output order is deterministic.
func expandWithInverses(generators ...Position) []Position {
	seen := make(map[Position]struct{}, len(generators)*4)
	out := make([]Position, 0, len(generators)*4)
	for _, g := range generators {
		for _, s := range signPairs {
			offset := Position{Row: s.Row * g.Row, Col: s.Col * g.Col}
			if _, dup := seen[offset]; dup {
				continue
			}
			seen[offset] = struct{}{}
			out = append(out, offset)
		}
	}
	return out
}
