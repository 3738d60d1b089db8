package proto

import (
	"ctchen222/ox-game/internal/game"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    game.Msg
		wantErr bool
	}{
		{name: "put first cell", raw: `{"type":"put","position":0}`, want: game.Put{Position: 0}},
		{name: "put last cell", raw: `{"type":"put","position":8}`, want: game.Put{Position: 8}},
		{name: "reset", raw: `{"type":"reset"}`, want: game.Reset{}},
		{name: "reset ignores position", raw: `{"type":"reset","position":4}`, want: game.Reset{}},
		{name: "put without position", raw: `{"type":"put"}`, wantErr: true},
		{name: "put below board", raw: `{"type":"put","position":-1}`, wantErr: true},
		{name: "put above board", raw: `{"type":"put","position":9}`, wantErr: true},
		{name: "unknown type", raw: `{"type":"undo"}`, wantErr: true},
		{name: "missing type", raw: `{"position":1}`, wantErr: true},
		{name: "not json", raw: `put 1`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message, err := Decode([]byte(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			msg, err := message.ToMsg()
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg)
		})
	}
}

func TestToMsgUnknown(t *testing.T) {
	_, err := (&ClientToServerMessage{Type: "undo"}).ToMsg()
	assert.ErrorIs(t, err, ErrUnknownMessage)
}

func TestSnapshotJSON(t *testing.T) {
	m := game.New()
	m.Update(game.Put{Position: 4})

	data, err := json.Marshal(NewSnapshot("abc", *m))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"session_id": "abc",
		"board": ["", "", "", "", "O", "", "", "", ""],
		"turn": "X",
		"winner": "",
		"status": "X's turn"
	}`, string(data))
}
