package kds

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/inatfood/pos-backend/utils"
)

// Event names shared with the KDS and waitress clients.
const (
	EventNewOrder           = "new_order"
	EventOrderStatusUpdated = "order_status_updated"
	EventKdsCleared         = "kds_cleared"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// Hub tracks connected display clients and the rooms they joined. A room
// is identified by the exact preparation station string; clients only
// receive room-scoped events after an explicit join. Delivery is
// fire-and-forget: a write error drops the client, nothing is buffered or
// replayed, and clients are expected to resynchronize through the
// active-orders endpoints on reconnect.
//
// One mutex guards both the membership table and every write, which makes
// the hub the single dispatch point: events sent to a room are observed in
// broadcast order.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]map[string]bool // conn -> joined rooms
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]map[string]bool),
	}
}

// Register adds a connection with no room memberships.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = make(map[string]bool)
}

// Unregister drops the connection and closes it.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// Join subscribes an already registered connection to a room. Unknown
// connections are ignored.
func (h *Hub) Join(conn *websocket.Conn, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if rooms, ok := h.clients[conn]; ok {
		rooms[room] = true
		utils.InfoLogger.Printf("kds: client joined room %q (%d clients connected)", room, len(h.clients))
	}
}

// RoomCount reports how many connections joined the room.
func (h *Hub) RoomCount(room string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, rooms := range h.clients {
		if rooms[room] {
			n++
		}
	}
	return n
}

// EmitToRooms delivers an event to every client that joined at least one
// of the given rooms.
func (h *Hub) EmitToRooms(event string, data interface{}, rooms ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		utils.ErrorLogger.Printf("kds: marshal %s: %v", event, err)
		return
	}

	for conn, joined := range h.clients {
		for _, room := range rooms {
			if joined[room] {
				h.write(conn, event, payload)
				break
			}
		}
	}
}

// EmitAll delivers an event to every connected client regardless of rooms.
func (h *Hub) EmitAll(event string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		utils.ErrorLogger.Printf("kds: marshal %s: %v", event, err)
		return
	}

	for conn := range h.clients {
		h.write(conn, event, payload)
	}
}

// Reply sends an event to a single connection, used for acknowledgements.
func (h *Hub) Reply(conn *websocket.Conn, event string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		utils.ErrorLogger.Printf("kds: marshal %s: %v", event, err)
		return
	}
	h.write(conn, event, payload)
}

// write must be called with h.mu held. Failed clients are removed so a
// dead display does not stall later broadcasts.
func (h *Hub) write(conn *websocket.Conn, event string, payload []byte) {
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		utils.ErrorLogger.Printf("kds: send %s: %v", event, err)
		delete(h.clients, conn)
		conn.Close()
	}
}
