// path: internal/game/board_test.go
package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBoardRejectsBadSize(t *testing.T) {
	for _, size := range []int{0, -1, -8} {
		if _, err := NewBoard(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewBoard(%d): expected ErrInvalidSize, got %v", size, err)
		}
	}
}

func TestValidatePosition(t *testing.T) {
	b, err := NewBoard(8)
	if err != nil {
		t.Fatalf("new board: %v", err)
	}
	tests := []struct {
		name string
		pos  Position
		ok   bool
	}{
		{"origin", Position{0, 0}, true},
		{"far corner", Position{7, 7}, true},
		{"row too high", Position{8, 0}, false},
		{"col too high", Position{0, 8}, false},
		{"negative row", Position{-1, 3}, false},
		{"negative col", Position{3, -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.ValidatePosition(tt.pos)
			if tt.ok && err != nil {
				t.Fatalf("expected %s valid, got %v", tt.pos, err)
			}
			if !tt.ok && !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("expected ErrOutOfBounds for %s, got %v", tt.pos, err)
			}
		})
	}
}

func TestSpaceOutOfBounds(t *testing.T) {
	b, _ := NewBoard(4)
	if _, _, err := b.Space(Position{4, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestFillRowAndColumn(t *testing.T) {
	b, _ := NewBoard(8)
	if err := b.FillRow(1, NewPiece(Pawn, White)); err != nil {
		t.Fatalf("fill row: %v", err)
	}
	if err := b.FillColumn(5, NewPiece(Pawn, Black)); err != nil {
		t.Fatalf("fill column: %v", err)
	}
	for col := 0; col < 8; col++ {
		pc, ok, err := b.Space(Position{1, col})
		if err != nil || !ok {
			t.Fatalf("row fill missing at col %d: %v", col, err)
		}
		if col != 5 && pc.Color != White {
			t.Fatalf("expected white pawn at (1,%d), got %v", col, pc)
		}
	}
	// Column fill overwrote the row fill where they cross.
	pc, _, _ := b.Space(Position{1, 5})
	if pc.Color != Black {
		t.Fatalf("expected column fill to overwrite at (1,5), got %v", pc)
	}
	count := len(b.PiecePositions())
	if count != 15 {
		t.Fatalf("expected 15 occupied squares, got %d", count)
	}
}

func TestSetAndClearSpace(t *testing.T) {
	b, _ := NewBoard(8)
	pos := Position{0, 1}
	if displaced, err := b.SetSpace(pos, NewPiece(Knight, White)); err != nil || displaced != nil {
		t.Fatalf("set on empty square: displaced=%v err=%v", displaced, err)
	}
	displaced, err := b.SetSpace(pos, NewPiece(Bishop, Black))
	if err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if displaced == nil || displaced.Kind != Knight {
		t.Fatalf("expected displaced knight, got %v", displaced)
	}
	cleared, err := b.ClearSpace(pos)
	if err != nil || cleared == nil || cleared.Kind != Bishop {
		t.Fatalf("clear: cleared=%v err=%v", cleared, err)
	}
	if !b.IsEmpty(pos) {
		t.Fatalf("expected %s empty after clear", pos)
	}
}

func TestMovePiece(t *testing.T) {
	b, _ := NewBoard(8)
	from := Position{1, 1}
	to := Position{2, 1}
	if _, err := b.SetSpace(from, NewPiece(Pawn, White)); err != nil {
		t.Fatalf("setup: %v", err)
	}

	captured, err := b.MovePiece(from, to)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if captured != nil {
		t.Fatalf("expected no capture, got %v", captured)
	}
	if !b.IsEmpty(from) {
		t.Fatalf("origin not cleared")
	}
	moved, ok, _ := b.Space(to)
	if !ok || !moved.HasMoved {
		t.Fatalf("expected moved pawn with HasMoved=true at %s, got %v ok=%v", to, moved, ok)
	}

	if _, err := b.MovePiece(from, to); !errors.Is(err, ErrNoPieceAtOrigin) {
		t.Fatalf("expected ErrNoPieceAtOrigin, got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := NewBasicBoard()
	if err != nil {
		t.Fatalf("basic board: %v", err)
	}
	snapshot := b.Clone()
	if diff := cmp.Diff(b.PiecePositions(), snapshot.PiecePositions()); diff != "" {
		t.Fatalf("clone differs from original (-want +got):\n%s", diff)
	}
	if _, err := b.MovePiece(Position{1, 0}, Position{3, 0}); err != nil {
		t.Fatalf("mutate original: %v", err)
	}
	if diff := cmp.Diff(b.PiecePositions(), snapshot.PiecePositions()); diff == "" {
		t.Fatalf("expected clone to be unaffected by mutation of original")
	}
}

func TestBasicBoardSetup(t *testing.T) {
	b, err := NewBasicBoard()
	if err != nil {
		t.Fatalf("basic board: %v", err)
	}
	if got := len(b.PiecePositions()); got != 32 {
		t.Fatalf("expected 32 pieces, got %d", got)
	}
	pc, ok, err := b.Space(Position{0, 1})
	if err != nil || !ok {
		t.Fatalf("expected piece at (0,1): %v", err)
	}
	want := Piece{Kind: Knight, Color: White}
	if diff := cmp.Diff(want, pc); diff != "" {
		t.Fatalf("piece at (0,1) (-want +got):\n%s", diff)
	}
}

func TestPrettyRendersGlyphs(t *testing.T) {
	b, err := NewBasicBoard()
	if err != nil {
		t.Fatalf("basic board: %v", err)
	}
	out := b.Pretty()
	for _, glyph := range []string{"♔", "♚", "♙", "♟"} {
		if !strings.Contains(out, glyph) {
			t.Errorf("expected rendering to contain %s", glyph)
		}
	}
}
