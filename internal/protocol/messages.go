// Package protocol defines the JSON messages exchanged with a remote game
// acting as the feedback oracle.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MessageType identifies the type of message.
type MessageType string

const (
	// Client -> Server
	TypeConnect = "connect"
	TypeGuess   = "guess"

	// Server -> Client
	TypeGameStart = "game_start"
	TypeFeedback  = "feedback"
	TypeGameOver  = "game_over"
	TypeError     = "error"
)

// ErrUnknownMessageType indicates a message whose type field matched nothing
// we understand.
var ErrUnknownMessageType = errors.New("unknown message type")

// Connect is sent by the solver when connecting.
type Connect struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Guess carries one guess word to the server.
type Guess struct {
	Type  string `json:"type"`
	Round int    `json:"round"`
	Word  string `json:"word"`
}

// GameStart is sent when the server begins a game.
type GameStart struct {
	Type      string `json:"type"`
	GameID    string `json:"game_id"`
	MaxRounds int    `json:"max_rounds"`
}

// Feedback carries the per-letter response pattern for the last guess,
// encoded as b/y/g symbols.
type Feedback struct {
	Type    string `json:"type"`
	Round   int    `json:"round"`
	Pattern string `json:"pattern"`
}

// GameOver is sent when the game ends.
type GameOver struct {
	Type   string `json:"type"`
	Won    bool   `json:"won"`
	Answer string `json:"answer,omitempty"`
	Rounds int    `json:"rounds"`
}

// Error reports a server-side failure, e.g. a guess outside the allowed list.
type Error struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope is the minimal decode used to dispatch on message type.
type Envelope struct {
	Type string `json:"type"`
}

// PeekType extracts the message type from raw JSON.
func PeekType(data []byte) (string, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return "", fmt.Errorf("malformed message: %w", err)
	}
	if env.Type == "" {
		return "", ErrUnknownMessageType
	}
	return env.Type, nil
}
