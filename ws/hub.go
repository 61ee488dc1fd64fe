package ws

import (
	"sync"

	"github.com/rs/zerolog"
)

// Conn is the slice of *websocket.Conn the hub needs. Tests plug in fakes.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// Client is one connected socket. Writes are serialized per connection;
// gorilla conns do not allow concurrent writers.
type Client struct {
	conn Conn
	mu   sync.Mutex
}

func NewClient(conn Conn) *Client {
	return &Client{conn: conn}
}

func (c *Client) write(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Hub fans typed events out to every socket currently joined to a room.
// Membership is ephemeral: nothing is persisted, nothing is replayed, and a
// publish to an empty room is silently dropped. The lock covers only the
// membership map; fan-out writes happen on a snapshot taken under RLock so
// publishes proceed in parallel.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
	log   zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
		log:   log,
	}
}

// Join adds the client to a room. A client may sit in several rooms at once.
func (h *Hub) Join(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][c] = struct{}{}
}

// Remove drops the client from every room and closes it. Called once when
// the connection's read loop ends.
func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	for room, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

// Publish is fire-and-forget: the caller never learns whether anyone was
// listening. A failed write evicts that one client and nothing else.
func (h *Hub) Publish(room, event string, payload any) {
	h.mu.RLock()
	members := make([]*Client, 0, len(h.rooms[room]))
	for c := range h.rooms[room] {
		members = append(members, c)
	}
	h.mu.RUnlock()

	if len(members) == 0 {
		return
	}

	env := Envelope{Event: event, Data: payload}
	for _, c := range members {
		if err := c.write(env); err != nil {
			h.log.Warn().Err(err).Str("room", room).Str("event", event).
				Msg("ws write failed, evicting client")
			h.Remove(c)
		}
	}
}

// RoomSize reports current membership, for the read loop and tests.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
