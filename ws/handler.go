package ws

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/cooper235/Canteen-project-sub000/repository"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades authenticated clients and runs their join loop. Rooms are
// never restored server-side: a client that reconnects must join again.
type Handler struct {
	hub      *Hub
	canteens *repository.CanteenRepository
	log      zerolog.Logger
}

func NewHandler(hub *Hub, canteens *repository.CanteenRepository, log zerolog.Logger) *Handler {
	return &Handler{hub: hub, canteens: canteens, log: log}
}

// WS route: /ws  (token checked by WSAuthMiddleware)
func (h *Handler) HandleWebSocket(c *gin.Context) {
	userIDVal, _ := c.Get("userId")
	userID, _ := userIDVal.(uint)
	roleVal, _ := c.Get("role")
	role, _ := roleVal.(string)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("ws upgrade error")
		return
	}

	client := NewClient(conn)
	go h.listen(client, conn, userID, role)
}

type clientMessage struct {
	Action string `json:"action"`
	Room   string `json:"room"`
}

// listen reads join requests until the connection drops, then removes the
// client from every room.
func (h *Handler) listen(client *Client, conn *websocket.Conn, userID uint, role string) {
	defer h.hub.Remove(client)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.log.Debug().Err(err).Msg("ws invalid payload")
			continue
		}
		if msg.Action != "join" {
			continue
		}

		ok, err := h.authorizeRoom(userID, role, msg.Room)
		if err != nil {
			h.log.Warn().Err(err).Str("room", msg.Room).Msg("ws room check failed")
			continue
		}
		if !ok {
			h.log.Debug().Uint("userId", userID).Str("room", msg.Room).Msg("ws join denied")
			continue
		}

		h.hub.Join(client, msg.Room)
	}
}

// authorizeRoom: a user room only for its own user, a canteen room only for
// the owning vendor or an admin.
func (h *Handler) authorizeRoom(userID uint, role, room string) (bool, error) {
	switch {
	case strings.HasPrefix(room, "user:"):
		id, err := parseRoomID(room, "user:")
		if err != nil {
			return false, nil
		}
		return id == userID, nil

	case strings.HasPrefix(room, "canteen:"):
		id, err := parseRoomID(room, "canteen:")
		if err != nil {
			return false, nil
		}
		if role == "admin" {
			return true, nil
		}
		return h.canteens.IsOwnedBy(id, userID)

	default:
		return false, nil
	}
}

func parseRoomID(room, prefix string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(room, prefix), 10, 64)
	return uint(n), err
}
