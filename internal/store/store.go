// path: internal/store/store.go
// Package store keeps, per game identifier, an ordered history of board
// snapshots and serves reads and writes under concurrent access.
package store

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"chess_server_poc/internal/game"
)

var (
	ErrGameNotFound = errors.New("game does not exist")
	ErrIDExhausted  = errors.New("could not generate a game id")
)

const idAttempts = 10

// Store is safe for concurrent use. Games are independent; within one game,
// readers always see a fully-formed snapshot and writers are serialized.
type Store struct {
	mu    sync.RWMutex
	games map[uint32]*entry
}

// entry holds one game's snapshot history, newest first.
type entry struct {
	mu      sync.RWMutex
	history []*game.Board
}

func New() *Store {
	return &Store{games: make(map[uint32]*entry)}
}

// Create registers a new game whose initial snapshot is board, returning the
// generated identifier.
func (s *Store) Create(board *game.Board) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.uniqueIDLocked()
	if err != nil {
		return 0, err
	}
	s.games[id] = &entry{history: []*game.Board{board.Clone()}}
	return id, nil
}

// LatestBoard returns a clone of the newest snapshot for id.
func (s *Store) LatestBoard(id uint32) (*game.Board, error) {
	e, err := s.entryFor(id)
	if err != nil {
		return nil, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.history[0].Clone(), nil
}

// Append records board as the new latest snapshot for id.
func (s *Store) Append(id uint32, board *game.Board) error {
	e, err := s.entryFor(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.history = append([]*game.Board{board.Clone()}, e.history...)
	return nil
}

// History returns clones of every snapshot for id, newest first.
func (s *Store) History(id uint32) ([]*game.Board, error) {
	e, err := s.entryFor(id)
	if err != nil {
		return nil, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*game.Board, len(e.history))
	for i, b := range e.history {
		out[i] = b.Clone()
	}
	return out, nil
}

// GameIDs returns the identifiers of all known games.
func (s *Store) GameIDs() []uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]uint32, 0, len(s.games))
	for id := range s.games {
		out = append(out, id)
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

func (s *Store) entryFor(id uint32) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrGameNotFound, id)
	}
	return e, nil
}

func (s *Store) uniqueIDLocked() (uint32, error) {
	for i := 0; i < idAttempts; i++ {
		id := rand.Uint32()
		if _, taken := s.games[id]; !taken {
			return id, nil
		}
	}
	return 0, ErrIDExhausted
}
