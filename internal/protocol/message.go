package protocol

import (
	"encoding/json"
	"fmt"
)

// Message is the envelope for every payload.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType names the payload carried by a Message.
type MessageType string

const (
	MsgHand  MessageType = "hand"  // HandPayload
	MsgTable MessageType = "table" // TablePayload
)

// NewMessage encodes payload into a Message of the given type.
func NewMessage(msgType MessageType, payload any) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", msgType, err)
	}
	return &Message{Type: msgType, Payload: data}, nil
}

// ParsePayload decodes the message payload into T.
func ParsePayload[T any](msg *Message) (*T, error) {
	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", msg.Type, err)
	}
	return &payload, nil
}

// Encode serializes the message.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode parses a serialized message.
func Decode(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
