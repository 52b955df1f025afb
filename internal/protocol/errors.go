package protocol

// Error codes
const (
	ErrCodeUnknown       = 1000
	ErrCodeInvalidMsg    = 1001
	ErrCodeInvalidCard   = 3001
	ErrCodeInvalidSeat   = 3002
	ErrCodeInvalidPlayer = 3003
	ErrCodeInvalidConfig = 5001
)

// ErrorMessages maps each code to its message.
var ErrorMessages = map[int]string{
	ErrCodeUnknown:       "unknown error",
	ErrCodeInvalidMsg:    "invalid message format",
	ErrCodeInvalidCard:   "invalid card",
	ErrCodeInvalidSeat:   "invalid seat",
	ErrCodeInvalidPlayer: "invalid player",
	ErrCodeInvalidConfig: "invalid configuration",
}
