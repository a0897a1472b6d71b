package notify

import "sync"

// wsConn is the slice of a websocket connection the hub needs. Narrowed
// from *websocket.Conn so the hub can be exercised without a live socket.
type wsConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Hub tracks one websocket connection per user and pushes event payloads
// to them. Registering a second connection for the same user replaces the
// first.
type Hub struct {
	connections map[int64]wsConn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]wsConn),
	}
}

func (h *Hub) Register(userID int64, conn wsConn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

// Unregister drops the user's connection only while the map still holds
// the caller's conn. A reader whose socket was replaced by a reconnect
// must not tear down the replacement.
func (h *Hub) Unregister(userID int64, conn wsConn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	current, exists := h.connections[userID]
	if !exists || current != conn {
		return
	}
	_ = current.Close()
	delete(h.connections, userID)
}

// SendToUser writes the message to the user's connection, dropping the
// connection on write failure.
func (h *Hub) SendToUser(userID int64, message interface{}) bool {
	h.mutex.RLock()
	conn, exists := h.connections[userID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	if err := conn.WriteJSON(message); err != nil {
		h.Unregister(userID, conn)
		return false
	}

	return true
}

func (h *Hub) IsOnline(userID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[userID]
	return exists
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}
