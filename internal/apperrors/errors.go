// Package apperrors holds the coded errors returned at the wire and config
// boundaries.
package apperrors

import (
	"errors"

	"github.com/oakgame/oak/internal/protocol"
)

// GameError is an error with a stable numeric code.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

func newError(code int) *GameError {
	return &GameError{Code: code, Message: protocol.ErrorMessages[code]}
}

// Predefined errors
var (
	ErrInvalidMsg    = newError(protocol.ErrCodeInvalidMsg)
	ErrInvalidCard   = newError(protocol.ErrCodeInvalidCard)
	ErrInvalidSeat   = newError(protocol.ErrCodeInvalidSeat)
	ErrInvalidPlayer = newError(protocol.ErrCodeInvalidPlayer)
	ErrInvalidConfig = newError(protocol.ErrCodeInvalidConfig)
)

// Code returns the code of the first GameError in err's chain, or
// protocol.ErrCodeUnknown if there is none.
func Code(err error) int {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return protocol.ErrCodeUnknown
}
