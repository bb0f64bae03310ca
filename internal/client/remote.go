// Package client implements the websocket oracle: the solver connects to an
// external game server, relays guesses and parses the returned feedback.
package client

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lox/wordlebot/internal/feedback"
	"github.com/lox/wordlebot/internal/protocol"
	"github.com/lox/wordlebot/internal/words"
)

// RemoteOracle obtains feedback for guesses from a remote game server over a
// websocket connection. It implements game.Oracle.
type RemoteOracle struct {
	conn   *websocket.Conn
	logger zerolog.Logger
	round  int
}

// Dial connects to the server and announces the solver by name.
func Dial(serverURL, name string, logger zerolog.Logger) (*RemoteOracle, error) {
	conn, _, err := websocket.DefaultDialer.Dial(serverURL, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", serverURL, err)
	}

	o := &RemoteOracle{conn: conn, logger: logger}
	if err := o.write(&protocol.Connect{Type: protocol.TypeConnect, Name: name}); err != nil {
		conn.Close()
		return nil, err
	}
	logger.Info().Str("server", serverURL).Str("name", name).Msg("connected")
	return o, nil
}

// Feedback sends the guess and waits for the server's response pattern.
// A game_over for a winning guess is translated into all-hit feedback so the
// controller observes a normal win.
func (o *RemoteOracle) Feedback(guess words.Word) (feedback.Feedback, error) {
	o.round++
	if err := o.write(&protocol.Guess{Type: protocol.TypeGuess, Round: o.round, Word: guess.String()}); err != nil {
		return feedback.Feedback{}, err
	}

	for {
		_, data, err := o.conn.ReadMessage()
		if err != nil {
			return feedback.Feedback{}, fmt.Errorf("reading feedback: %w", err)
		}
		msgType, err := protocol.PeekType(data)
		if err != nil {
			return feedback.Feedback{}, err
		}

		switch msgType {
		case protocol.TypeFeedback:
			var msg protocol.Feedback
			if err := json.Unmarshal(data, &msg); err != nil {
				return feedback.Feedback{}, fmt.Errorf("decoding feedback: %w", err)
			}
			fb, err := feedback.Parse(msg.Pattern)
			if err != nil {
				return feedback.Feedback{}, err
			}
			o.logger.Debug().Int("round", o.round).Stringer("guess", guess).Str("pattern", fb.String()).Msg("feedback received")
			return fb, nil

		case protocol.TypeGameOver:
			var msg protocol.GameOver
			if err := json.Unmarshal(data, &msg); err != nil {
				return feedback.Feedback{}, fmt.Errorf("decoding game_over: %w", err)
			}
			if msg.Won {
				return allHit(), nil
			}
			return feedback.Feedback{}, fmt.Errorf("game over after round %d, answer was %s", msg.Rounds, msg.Answer)

		case protocol.TypeError:
			var msg protocol.Error
			if err := json.Unmarshal(data, &msg); err != nil {
				return feedback.Feedback{}, fmt.Errorf("decoding error message: %w", err)
			}
			return feedback.Feedback{}, fmt.Errorf("server error %s: %s", msg.Code, msg.Message)

		case protocol.TypeGameStart:
			// Informational, keep waiting for the pattern.
			continue

		default:
			return feedback.Feedback{}, fmt.Errorf("%w: %s", protocol.ErrUnknownMessageType, msgType)
		}
	}
}

// Close shuts the connection down.
func (o *RemoteOracle) Close() error {
	return o.conn.Close()
}

func (o *RemoteOracle) write(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}
	if err := o.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	return nil
}

func allHit() feedback.Feedback {
	var fb feedback.Feedback
	for i := range fb {
		fb[i] = feedback.Hit
	}
	return fb
}
