package ws_game

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

type MessageType string

const (
	PlayerJoined MessageType = "PLAYER_JOINED"
	MovePlayed   MessageType = "MOVE_PLAYED"
	GameFinished MessageType = "GAME_FINISHED"
	PlayerLeft   MessageType = "PLAYER_LEFT"
)

type Message struct {
	Type   MessageType            `json:"type"`
	GameID int64                  `json:"game_id"`
	Data   map[string]interface{} `json:"data,omitempty"`
}

type Client struct {
	Hub    *Hub
	Conn   *websocket.Conn
	Send   chan []byte
	GameID int64
}

// Hub fans game events out to the clients watching each game.
type Hub struct {
	mu sync.RWMutex

	// Keep track of sets of clients within each game
	games map[int64]map[*Client]bool

	logger *slog.Logger
}

func New(logger *slog.Logger) *Hub {
	return &Hub{
		games:  make(map[int64]map[*Client]bool),
		logger: logger,
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.games[client.GameID]; !ok {
		h.games[client.GameID] = make(map[*Client]bool)
	}
	h.games[client.GameID][client] = true

	h.logger.Info("client registered", "game_id", client.GameID)
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if game, ok := h.games[client.GameID]; ok {
		delete(game, client)
		if len(game) == 0 {
			delete(h.games, client.GameID)
		}
	}
	h.logger.Info("client unregistered", "game_id", client.GameID)
}

// BroadcastToGame drops clients whose send buffer is full, so it needs the
// write lock.
func (h *Hub) BroadcastToGame(gameID int64, message Message) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("failed to marshal event", slog.String("error", err.Error()))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.games[gameID]; ok {
		for client := range clients {
			select {
			case client.Send <- messageBytes:
			default:
				close(client.Send)
				delete(h.games[gameID], client)
			}
		}
	}
}

func (h *Hub) NotifyPlayerJoined(gameID int64, guest string) {
	h.BroadcastToGame(gameID, Message{
		Type:   PlayerJoined,
		GameID: gameID,
		Data:   map[string]interface{}{"guest": guest},
	})
}

func (h *Hub) NotifyMovePlayed(gameID int64, nextPlayer string) {
	h.BroadcastToGame(gameID, Message{
		Type:   MovePlayed,
		GameID: gameID,
		Data:   map[string]interface{}{"next_player": nextPlayer},
	})
}

func (h *Hub) NotifyGameFinished(gameID int64, winner string) {
	h.BroadcastToGame(gameID, Message{
		Type:   GameFinished,
		GameID: gameID,
		Data:   map[string]interface{}{"winner": winner},
	})
}

func (h *Hub) NotifyPlayerLeft(gameID int64, username string) {
	h.BroadcastToGame(gameID, Message{
		Type:   PlayerLeft,
		GameID: gameID,
		Data:   map[string]interface{}{"username": username},
	})
}

func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.RemoveClient(client)
		client.Conn.Close()
	}()

	for {
		_, _, err := client.Conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.Conn.Close()

	for message := range client.Send {
		err := client.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			break
		}
	}
}
