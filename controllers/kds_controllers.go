package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/inatfood/pos-backend/kds"
	"github.com/inatfood/pos-backend/models"
	"github.com/inatfood/pos-backend/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client-to-server events.
const (
	eventJoinRoom      = "join_room"
	eventAdminResetKds = "admin_reset_kds"
)

type KDSController struct {
	Hub *kds.Hub
}

func NewKDSController(hub *kds.Hub) *KDSController {
	return &KDSController{Hub: hub}
}

type clientMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Handle upgrades the connection and serves the client's event loop. A
// connection receives nothing room-scoped until it sends join_room with
// the station name it wants to watch.
func (kc *KDSController) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	kc.Hub.Register(conn)
	defer kc.Hub.Unregister(conn)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			utils.ErrorLogger.Printf("kds: bad client message: %v", err)
			continue
		}

		switch msg.Event {
		case eventJoinRoom:
			var room string
			if err := json.Unmarshal(msg.Data, &room); err == nil && room != "" {
				kc.Hub.Join(conn, room)
			}
		case eventAdminResetKds:
			// Ack as soon as the clear is enqueued; delivery to the
			// displays stays best-effort.
			kc.Hub.EmitToRooms(kds.EventKdsCleared, nil, models.StationKitchen, models.StationJuiceBar)
			kc.Hub.Reply(conn, eventAdminResetKds, gin.H{
				"success": true,
				"message": "Reset broadcasted.",
			})
		}
	}
}
