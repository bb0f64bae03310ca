package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeekType(t *testing.T) {
	t.Parallel()

	typ, err := PeekType([]byte(`{"type":"feedback","round":1,"pattern":"bygbb"}`))
	require.NoError(t, err)
	assert.Equal(t, TypeFeedback, typ)

	_, err = PeekType([]byte(`{"round":1}`))
	assert.ErrorIs(t, err, ErrUnknownMessageType)

	_, err = PeekType([]byte(`not json`))
	assert.Error(t, err)
}

func TestGuessWireFormat(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(&Guess{Type: TypeGuess, Round: 2, Word: "CRANK"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"guess","round":2,"word":"CRANK"}`, string(data))
}

func TestGameOverOmitsEmptyAnswer(t *testing.T) {
	t.Parallel()

	// A win doesn't reveal the answer field at all.
	data, err := json.Marshal(&GameOver{Type: TypeGameOver, Won: true, Rounds: 4})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "answer")

	var msg GameOver
	require.NoError(t, json.Unmarshal([]byte(`{"type":"game_over","won":false,"answer":"KNOLL","rounds":6}`), &msg))
	assert.False(t, msg.Won)
	assert.Equal(t, "KNOLL", msg.Answer)
}
