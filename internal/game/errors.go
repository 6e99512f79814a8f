// path: internal/game/errors.go
package game

import "errors"

var (
	ErrInvalidSize        = errors.New("invalid board size")
	ErrOutOfBounds        = errors.New("position out of bounds")
	ErrNotAllowed         = errors.New("move not allowed")
	ErrNoPieceAtOrigin    = errors.New("no piece at origin")
	ErrPatternUnsupported = errors.New("no move pattern for piece kind")
)
