package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oakgame/oak/internal/protocol"
)

func TestCode(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("hand 9: %w", ErrInvalidSeat)

	assert.Equal(t, protocol.ErrCodeInvalidSeat, Code(wrapped))
	assert.Equal(t, protocol.ErrCodeInvalidCard, Code(ErrInvalidCard))
	assert.Equal(t, protocol.ErrCodeUnknown, Code(errors.New("boom")))
	assert.Equal(t, protocol.ErrCodeUnknown, Code(nil))
}

func TestGameError_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "invalid card", ErrInvalidCard.Error())
	assert.True(t, errors.Is(fmt.Errorf("x: %w", ErrInvalidConfig), ErrInvalidConfig))
	assert.False(t, errors.Is(ErrInvalidCard, ErrInvalidSeat))
}
