// path: internal/controller/controller.go
// Package controller translates between the human-facing square-name notation
// and the engine's coordinates, and drives games held in the store.
package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"chess_server_poc/internal/archive"
	"chess_server_poc/internal/game"
	"chess_server_poc/internal/store"
)

var ErrBadSquare = errors.New("invalid square name")

type Controller struct {
	store *store.Store
}

func New(st *store.Store) *Controller {
	return &Controller{store: st}
}

// PieceState is the serializable representation of a piece.
type PieceState struct {
	Kind      game.PieceKind `json:"kind"`
	KindName  string         `json:"kindName"`
	Color     game.Color     `json:"color"`
	ColorName string         `json:"colorName"`
	HasMoved  bool           `json:"hasMoved"`
}

func pieceState(pc game.Piece) PieceState {
	return PieceState{
		Kind:      pc.Kind,
		KindName:  pc.Kind.Name(),
		Color:     pc.Color,
		ColorName: pc.Color.String(),
		HasMoved:  pc.HasMoved,
	}
}

// StartGame creates a game with the standard starting arrangement and returns
// its identifier.
func (c *Controller) StartGame() (uint32, error) {
	board, err := game.NewBasicBoard()
	if err != nil {
		return 0, err
	}
	return c.store.Create(board)
}

// Game returns the external representation of the latest board for id: a map
// from square name to piece.
func (c *Controller) Game(id uint32) (map[string]PieceState, error) {
	board, err := c.store.LatestBoard(id)
	if err != nil {
		return nil, err
	}
	return externalRep(board), nil
}

// MoveOptions returns the legal destinations for the piece on the named
// square, as square names.
func (c *Controller) MoveOptions(id uint32, square string) ([]string, error) {
	board, err := c.store.LatestBoard(id)
	if err != nil {
		return nil, err
	}
	pos, err := ParseSpaceName(board.Size(), square)
	if err != nil {
		return nil, err
	}
	moves, err := game.PossibleMoves(board, pos)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = SpaceName(board.Size(), m)
	}
	return names, nil
}

// PlayMove applies src→dest to the latest board of id and appends the result
// as the new latest snapshot. The move runs against a private clone, so no
// concurrent reader ever observes a half-applied move.
func (c *Controller) PlayMove(id uint32, src, dest string) error {
	board, err := c.store.LatestBoard(id)
	if err != nil {
		return err
	}
	from, err := ParseSpaceName(board.Size(), src)
	if err != nil {
		return err
	}
	to, err := ParseSpaceName(board.Size(), dest)
	if err != nil {
		return err
	}
	if _, err := game.ExecuteMove(board, from, to); err != nil {
		return err
	}
	return c.store.Append(id, board)
}

// Archive exports every game's snapshot history to a parquet file at path and
// returns the number of games written.
func (c *Controller) Archive(path string) (int, error) {
	ids := c.store.GameIDs()
	records := make([]archive.GameRecord, 0, len(ids))
	for _, id := range ids {
		history, err := c.store.History(id)
		if err != nil {
			return 0, err
		}
		record := archive.GameRecord{
			GameID:    strconv.FormatUint(uint64(id), 10),
			Snapshots: int32(len(history)),
			States:    make([]archive.BoardSnapshot, 0, len(history)),
		}
		// History is newest first; archive chronologically.
		for i := len(history) - 1; i >= 0; i-- {
			encoded, err := json.Marshal(externalRep(history[i]))
			if err != nil {
				return 0, err
			}
			record.States = append(record.States, archive.BoardSnapshot{
				Index: int32(len(history) - 1 - i),
				Board: string(encoded),
			})
		}
		records = append(records, record)
	}
	if err := archive.WriteGames(path, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

func externalRep(board *game.Board) map[string]PieceState {
	out := make(map[string]PieceState)
	for pos, pc := range board.PiecePositions() {
		out[SpaceName(board.Size(), pos)] = pieceState(pc)
	}
	return out
}

// SpaceName renders a position as a column letter and a rank digit, oriented
// so row 0 carries the numerically-highest rank.
func SpaceName(boardSize int, p game.Position) string {
	letter := rune('A' + p.Col)
	return fmt.Sprintf("%c%d", letter, boardSize-p.Row)
}

// ParseSpaceName is the inverse of SpaceName. It rejects names that do not
// resolve to an in-bounds position.
func ParseSpaceName(boardSize int, name string) (game.Position, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(name))
	if len(trimmed) < 2 {
		return game.Position{}, fmt.Errorf("%w: %q", ErrBadSquare, name)
	}
	letter := trimmed[0]
	if letter < 'A' || letter > 'Z' {
		return game.Position{}, fmt.Errorf("%w: %q", ErrBadSquare, name)
	}
	digit, err := strconv.Atoi(trimmed[1:])
	if err != nil {
		return game.Position{}, fmt.Errorf("%w: %q", ErrBadSquare, name)
	}
	pos := game.Position{Row: boardSize - digit, Col: int(letter - 'A')}
	if pos.Row < 0 || pos.Row >= boardSize || pos.Col >= boardSize {
		return game.Position{}, fmt.Errorf("%w: %q", ErrBadSquare, name)
	}
	return pos, nil
}
