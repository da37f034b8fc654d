package ws_game

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(gameID int64, buffer int) *Client {
	return &Client{
		Send:   make(chan []byte, buffer),
		GameID: gameID,
	}
}

func receiveMessage(t *testing.T, client *Client) Message {
	t.Helper()

	select {
	case raw := <-client.Send:
		var msg Message
		require.NoError(t, json.Unmarshal(raw, &msg))
		return msg
	default:
		t.Fatal("expected a message")
		return Message{}
	}
}

func TestBroadcastReachesEveryWatcher(t *testing.T) {
	t.Parallel()

	hub := New(slog.Default())
	first := newTestClient(1, 1)
	second := newTestClient(1, 1)
	otherGame := newTestClient(2, 1)
	hub.RegisterClient(first)
	hub.RegisterClient(second)
	hub.RegisterClient(otherGame)

	hub.NotifyMovePlayed(1, "bob")

	for _, client := range []*Client{first, second} {
		msg := receiveMessage(t, client)
		assert.Equal(t, MovePlayed, msg.Type)
		assert.Equal(t, int64(1), msg.GameID)
		assert.Equal(t, "bob", msg.Data["next_player"])
	}
	assert.Empty(t, otherGame.Send, "watchers of other games stay quiet")
}

func TestBroadcastSkipsRemovedClients(t *testing.T) {
	t.Parallel()

	hub := New(slog.Default())
	gone := newTestClient(1, 1)
	stays := newTestClient(1, 1)
	hub.RegisterClient(gone)
	hub.RegisterClient(stays)
	hub.RemoveClient(gone)

	hub.NotifyPlayerJoined(1, "bob")

	assert.Empty(t, gone.Send)
	msg := receiveMessage(t, stays)
	assert.Equal(t, PlayerJoined, msg.Type)
	assert.Equal(t, "bob", msg.Data["guest"])
}

func TestSlowWatcherIsDropped(t *testing.T) {
	t.Parallel()

	hub := New(slog.Default())
	stuck := newTestClient(1, 0)
	alive := newTestClient(1, 2)
	hub.RegisterClient(stuck)
	hub.RegisterClient(alive)

	hub.NotifyGameFinished(1, "alice")
	hub.NotifyPlayerLeft(1, "bob")

	assert.Len(t, alive.Send, 2)

	_, open := <-stuck.Send
	assert.False(t, open, "a watcher with a full buffer is evicted and its channel closed")
}
