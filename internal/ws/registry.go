package ws

import (
	"sync"

	"github.com/KBARATH13/QuizCraft/internal/metrics"
)

// wireConn is the slice of a websocket connection the registry needs;
// satisfied by *websocket.Conn and by fakes in tests.
type wireConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Conn is one registered client connection. Writes are serialized and
// guarded by an open flag: sends after the peer is gone are dropped.
type Conn struct {
	UserID string

	mu   sync.Mutex
	ws   wireConn
	open bool
}

func NewConn(ws wireConn, userID string) *Conn {
	return &Conn{UserID: userID, ws: ws, open: true}
}

// Send writes a JSON payload if the connection is still open and reports
// whether the write happened.
func (c *Conn) Send(v interface{}) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return false
	}
	if err := c.ws.WriteJSON(v); err != nil {
		c.open = false
		return false
	}
	return true
}

func (c *Conn) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.open {
		c.open = false
		_ = c.ws.Close()
	}
}

// Registry tracks live connections by user and by chat room. It is
// injected into the handlers and services that need to reach a client;
// connections register on connect and deregister on disconnect or error.
type Registry struct {
	mu     sync.Mutex
	byUser map[string]*Conn
	rooms  map[string]map[*Conn]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		byUser: make(map[string]*Conn),
		rooms:  make(map[string]map[*Conn]struct{}),
	}
}

// Register adds the connection, closing and replacing any previous
// connection for the same user.
func (r *Registry) Register(conn *Conn) {
	r.mu.Lock()
	old := r.byUser[conn.UserID]
	r.byUser[conn.UserID] = conn
	if old != nil {
		r.removeFromRoomsLocked(old)
	}
	r.mu.Unlock()

	if old != nil {
		old.close()
	} else {
		metrics.WebsocketConnections.Inc()
	}
}

// Unregister removes the connection from the user map and all rooms. A
// stale connection that was already replaced is ignored.
func (r *Registry) Unregister(conn *Conn) {
	r.mu.Lock()
	current, ok := r.byUser[conn.UserID]
	if ok && current == conn {
		delete(r.byUser, conn.UserID)
		metrics.WebsocketConnections.Dec()
	}
	r.removeFromRoomsLocked(conn)
	r.mu.Unlock()

	conn.close()
}

func (r *Registry) removeFromRoomsLocked(conn *Conn) {
	for roomID, members := range r.rooms {
		if _, ok := members[conn]; ok {
			delete(members, conn)
			if len(members) == 0 {
				delete(r.rooms, roomID)
			}
		}
	}
}

func (r *Registry) UserConn(userID string) *Conn {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byUser[userID]
}

func (r *Registry) JoinRoom(roomID string, conn *Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	members, ok := r.rooms[roomID]
	if !ok {
		members = make(map[*Conn]struct{})
		r.rooms[roomID] = members
	}
	members[conn] = struct{}{}
}

// BroadcastToRoom sends a payload to every connection in the room.
func (r *Registry) BroadcastToRoom(roomID string, payload interface{}) {
	r.mu.Lock()
	conns := make([]*Conn, 0, len(r.rooms[roomID]))
	for conn := range r.rooms[roomID] {
		conns = append(conns, conn)
	}
	r.mu.Unlock()

	for _, conn := range conns {
		conn.Send(payload)
	}
}

// SendToUser delivers a payload to the user's connection if one is
// registered; reports whether it was sent.
func (r *Registry) SendToUser(userID string, payload interface{}) bool {
	conn := r.UserConn(userID)
	if conn == nil {
		return false
	}
	return conn.Send(payload)
}
